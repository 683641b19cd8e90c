package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hchandra1/Job-Application-Assistant/internal/ingestion"
	"github.com/hchandra1/Job-Application-Assistant/internal/llm"
	"github.com/hchandra1/Job-Application-Assistant/internal/store"
)

var ingestJobCmd = &cobra.Command{
	Use:   "ingest-job",
	Short: "Fetch a job posting URL into a job description JSON file",
	Long:  "Fetch a job posting page, extract its text, structure it into a job description record with the LLM, and save it for later runs.",
	RunE:  runIngestJob,
}

var (
	ingestURL        string
	ingestOutputFile string
	ingestAPIKey     string
	ingestModel      string
	ingestUseBrowser bool
)

func init() {
	ingestJobCmd.Flags().StringVar(&ingestURL, "url", "", "Job posting URL (required)")
	ingestJobCmd.Flags().StringVarP(&ingestOutputFile, "out", "o", store.DefaultJobFile, "Path to output job description JSON file")
	ingestJobCmd.Flags().StringVar(&ingestAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	ingestJobCmd.Flags().StringVar(&ingestModel, "model", "", "Model name (default "+llm.DefaultModel+")")
	ingestJobCmd.Flags().BoolVar(&ingestUseBrowser, "use-browser", false, "Fall back to a headless browser for JavaScript-rendered pages")
	_ = ingestJobCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(ingestJobCmd)
}

func runIngestJob(_ *cobra.Command, _ []string) error {
	apiKey := ingestAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ctx := context.Background()

	logger.Info("fetching job posting", "url", ingestURL)
	text, err := ingestion.FetchText(ctx, ingestURL, ingestion.Options{
		UseBrowser: ingestUseBrowser,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig().WithModel(ingestModel), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	logger.Info("extracting job description", "model", client.Model(), "chars", len(text))
	job, err := ingestion.ExtractJobDescription(ctx, client, text)
	if err != nil {
		return err
	}

	if err := job.Validate(); err != nil {
		logger.Warn("extracted record has format problems", "err", err)
	}

	if err := store.SaveJob(ingestOutputFile, job); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Saved job description for %s (%s) to %s\n",
		job.CompanyName, job.PositionTitle, ingestOutputFile)

	return nil
}
