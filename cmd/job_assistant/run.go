package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hchandra1/Job-Application-Assistant/internal/console"
	"github.com/hchandra1/Job-Application-Assistant/internal/generation"
	"github.com/hchandra1/Job-Application-Assistant/internal/history"
	"github.com/hchandra1/Job-Application-Assistant/internal/llm"
	"github.com/hchandra1/Job-Application-Assistant/internal/store"
	"github.com/hchandra1/Job-Application-Assistant/internal/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate a tailored resume and cover letter for a job",
	Long:  "Load or interactively build a user profile and job description, then generate a tailored resume and cover letter and write both to timestamped files.",
	RunE:  runRun,
}

var (
	runProfileFile string
	runJobFile     string
	runOutBase     string
	runAPIKey      string
	runModel       string
	runDatabaseURL string
)

func init() {
	runCmd.Flags().StringVar(&runProfileFile, "profile", store.DefaultProfileFile, "Path to the user profile JSON file")
	runCmd.Flags().StringVar(&runJobFile, "job", store.DefaultJobFile, "Path to the job description JSON file")
	runCmd.Flags().StringVar(&runOutBase, "out", "job_app", "Base name for the output files")
	runCmd.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	runCmd.Flags().StringVar(&runModel, "model", "", "Model name (default "+llm.DefaultModel+")")
	runCmd.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL URL for run history (overrides DATABASE_URL env var)")

	rootCmd.AddCommand(runCmd)
}

func runRun(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	con := console.New(os.Stdin, os.Stdout)
	out := os.Stdout

	fmt.Fprintln(out, "=============================================")
	fmt.Fprintln(out, "      Welcome to the Job Application Assistant")
	fmt.Fprintln(out, "=============================================")

	profile, err := loadOrGatherProfile(con)
	if err != nil {
		return err
	}

	job, err := loadOrGatherJob(con)
	if err != nil {
		return err
	}

	// Resolve credential: flag first, then environment. Absence does not abort
	// the run; generation degrades to sentinel error strings.
	apiKey := runAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	config := llm.DefaultConfig().WithModel(runModel)
	var client llm.Client
	if apiKey == "" {
		logger.Warn("no Gemini API key configured, generation will be skipped")
	} else {
		geminiClient, err := llm.NewGeminiClient(ctx, config, apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = geminiClient.Close() }()
		client = geminiClient
	}

	gen := generation.NewGenerator(client)

	fmt.Fprintln(out, "\nGenerating a tailored resume in Jake's format...")
	resume, err := gen.GenerateTailoredResume(ctx, profile, job)
	if err != nil {
		return fmt.Errorf("resume generation failed: %w", err)
	}

	fmt.Fprintln(out, "Generating the cover letter in Dedy's format...")
	coverLetter, err := gen.GenerateCoverLetter(ctx, profile, job)
	if err != nil {
		return fmt.Errorf("cover letter generation failed: %w", err)
	}

	resumePath, coverLetterPath := store.OutputNames(runOutBase, time.Now())
	if err := store.SaveDocument(resumePath, resume); err != nil {
		return err
	}
	if err := store.SaveDocument(coverLetterPath, coverLetter); err != nil {
		return err
	}
	logger.Info("documents saved", "resume", resumePath, "cover_letter", coverLetterPath)

	recordHistory(ctx, job, config.Model, resumePath, coverLetterPath, resume, coverLetter)

	fmt.Fprintln(out, "\nYour tailored resume and cover letter have been generated and saved.")
	fmt.Fprintf(out, "Resume: %s\n", resumePath)
	fmt.Fprintf(out, "Cover Letter: %s\n", coverLetterPath)

	return nil
}

func loadOrGatherProfile(con *console.Console) (*types.UserProfile, error) {
	fmt.Fprintln(os.Stdout, "\nDo you want to (l)oad an existing user profile or (c)reate a new one?")
	if con.AskChoice("> ") == "l" {
		logger.Info("loading user profile", "path", runProfileFile)
		return store.LoadProfile(runProfileFile, logger)
	}

	profile := con.GatherProfile()
	warnInvalid(profile)
	if err := store.SaveProfile(runProfileFile, profile); err != nil {
		return nil, err
	}
	logger.Info("user profile saved", "path", runProfileFile)
	return profile, nil
}

func loadOrGatherJob(con *console.Console) (*types.JobDescription, error) {
	fmt.Fprintln(os.Stdout, "\nDo you want to (l)oad a job description or (c)reate a new one?")
	if con.AskChoice("> ") == "l" {
		logger.Info("loading job description", "path", runJobFile)
		return store.LoadJob(runJobFile, logger)
	}

	job := con.GatherJob()
	warnInvalid(job)
	if err := store.SaveJob(runJobFile, job); err != nil {
		return nil, err
	}
	logger.Info("job description saved", "path", runJobFile)
	return job, nil
}

// warnInvalid reports format problems in interactively entered records without
// rejecting them.
func warnInvalid(record interface{ Validate() error }) {
	if err := record.Validate(); err != nil {
		logger.Warn("record has format problems", "err", err)
	}
}

// recordHistory persists the run to Postgres when a database URL is
// configured. Failures are logged and do not abort the run.
func recordHistory(ctx context.Context, job *types.JobDescription, model, resumePath, coverLetterPath, resume, coverLetter string) {
	databaseURL := runDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return
	}

	db, err := history.Connect(ctx, databaseURL)
	if err != nil {
		logger.Warn("failed to connect to database, continuing without run history", "err", err)
		return
	}
	defer db.Close()

	runID, err := db.RecordRun(ctx, history.Run{
		Company:         job.CompanyName,
		PositionTitle:   job.PositionTitle,
		Model:           model,
		ResumePath:      resumePath,
		CoverLetterPath: coverLetterPath,
	})
	if err != nil {
		logger.Warn("failed to record run history", "err", err)
		return
	}

	if err := db.SaveDocument(ctx, runID, history.DocResume, resume); err != nil {
		logger.Warn("failed to store resume document", "err", err)
	}
	if err := db.SaveDocument(ctx, runID, history.DocCoverLetter, coverLetter); err != nil {
		logger.Warn("failed to store cover letter document", "err", err)
	}
	logger.Info("run recorded", "run_id", runID)
}
