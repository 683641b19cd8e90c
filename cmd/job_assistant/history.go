package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hchandra1/Job-Application-Assistant/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past generation runs",
	Long:  "List recent generation runs recorded in the PostgreSQL run history, newest first.",
	RunE:  runHistory,
}

var (
	historyDatabaseURL string
	historyLimit       int
)

func init() {
	historyCmd.Flags().StringVar(&historyDatabaseURL, "db-url", "", "PostgreSQL URL (overrides DATABASE_URL env var)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to list")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	databaseURL := historyDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL environment variable or use --db-url flag)")
	}

	ctx := context.Background()
	db, err := history.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := db.ListRuns(ctx, historyLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(os.Stdout, "No runs recorded yet.")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(os.Stdout, "%s  %s  %s @ %s\n    resume: %s\n    cover letter: %s\n",
			run.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			run.ID, run.PositionTitle, run.Company,
			run.ResumePath, run.CoverLetterPath)
	}

	return nil
}
