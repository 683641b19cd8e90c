// Package history provides optional PostgreSQL persistence of generation runs.
// Each run records which job was targeted, which model generated the documents,
// and the documents themselves.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Document kinds stored per run.
const (
	DocResume      = "resume"
	DocCoverLetter = "cover_letter"
)

// Run represents one recorded generation run.
type Run struct {
	ID              uuid.UUID
	Company         string
	PositionTitle   string
	Model           string
	ResumePath      string
	CoverLetterPath string
	CreatedAt       time.Time
}

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database and ensures the
// history tables exist.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{pool: pool}
	if err := db.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

func (db *DB) ensureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS generation_runs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			company TEXT NOT NULL,
			position_title TEXT NOT NULL,
			model TEXT NOT NULL,
			resume_path TEXT NOT NULL,
			cover_letter_path TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS generation_documents (
			run_id UUID NOT NULL REFERENCES generation_runs(id) ON DELETE CASCADE,
			kind TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (run_id, kind)
		);`)
	if err != nil {
		return fmt.Errorf("failed to ensure history schema: %w", err)
	}
	return nil
}

// RecordRun inserts a run record and returns its ID.
func (db *DB) RecordRun(ctx context.Context, run Run) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO generation_runs (company, position_title, model, resume_path, cover_letter_path)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		run.Company, run.PositionTitle, run.Model, run.ResumePath, run.CoverLetterPath,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to record run: %w", err)
	}
	return id, nil
}

// SaveDocument stores a generated document's text for a run, replacing any
// previous document of the same kind.
func (db *DB) SaveDocument(ctx context.Context, runID uuid.UUID, kind, content string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO generation_documents (run_id, kind, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (run_id, kind) DO UPDATE SET content = $3, created_at = NOW()`,
		runID, kind, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save %s document: %w", kind, err)
	}
	return nil
}

// GetDocument retrieves a stored document by run ID and kind. Missing
// documents return an empty string, not an error.
func (db *DB) GetDocument(ctx context.Context, runID uuid.UUID, kind string) (string, error) {
	var content string
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM generation_documents WHERE run_id = $1 AND kind = $2`,
		runID, kind,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to get %s document: %w", kind, err)
	}
	return content, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, company, position_title, model, resume_path, cover_letter_path, created_at
		 FROM generation_runs
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Company, &run.PositionTitle, &run.Model,
			&run.ResumePath, &run.CoverLetterPath, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}

	return runs, nil
}
