// Package ingestion turns a job posting URL into a structured JobDescription
// record using HTML extraction and one LLM extraction call.
package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hchandra1/Job-Application-Assistant/internal/fetch"
	"github.com/hchandra1/Job-Application-Assistant/internal/llm"
	"github.com/hchandra1/Job-Application-Assistant/internal/prompts"
	"github.com/hchandra1/Job-Application-Assistant/internal/schemas"
	"github.com/hchandra1/Job-Application-Assistant/internal/types"
)

// Options configures a job posting ingest.
type Options struct {
	// UseBrowser enables the headless-browser fallback for pages that render
	// their content with JavaScript.
	UseBrowser bool
	Logger     *slog.Logger
}

// FetchText retrieves a job posting URL and reduces it to plain text, falling
// back to browser rendering when the HTTP content is too short and the
// fallback is enabled.
func FetchText(ctx context.Context, urlStr string, opts Options) (string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	result, err := fetch.URL(ctx, urlStr)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}

	text, err := fetch.ExtractMainText(result.HTML)
	if err != nil {
		return "", fmt.Errorf("failed to extract posting text: %w", err)
	}

	if opts.UseBrowser && fetch.ShouldUseBrowser(text) {
		logger.Info("content too short, falling back to browser rendering",
			"url", urlStr, "chars", len(text))

		browserHTML, browserErr := fetch.WithBrowser(ctx, urlStr)
		if browserErr != nil {
			logger.Warn("browser rendering failed, using HTTP content", "err", browserErr)
		} else {
			text, err = fetch.ExtractMainText(browserHTML)
			if err != nil {
				return "", fmt.Errorf("failed to extract browser-rendered text: %w", err)
			}
		}
	}

	if text == "" {
		return "", &ExtractionError{Message: "no text content found at URL"}
	}

	return text, nil
}

// ExtractJobDescription asks the model to structure raw posting text into a
// JobDescription and validates the result against the embedded schema.
func ExtractJobDescription(ctx context.Context, client llm.Client, postingText string) (*types.JobDescription, error) {
	template := prompts.MustGet("ingestion.json", "extract-job")
	prompt := prompts.Format(template, map[string]string{
		"JobText": postingText,
	})

	responseText, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, &ExtractionError{Message: "LLM extraction call failed", Cause: err}
	}

	cleaned := llm.CleanJSONBlock(responseText)
	if err := schemas.Validate(schemas.JobDescriptionSchema, []byte(cleaned)); err != nil {
		return nil, &ExtractionError{Message: "extracted JSON does not match the job description schema", Cause: err}
	}

	var job types.JobDescription
	if err := json.Unmarshal([]byte(cleaned), &job); err != nil {
		return nil, &ExtractionError{Message: "failed to parse extracted JSON", Cause: err}
	}

	return &job, nil
}
