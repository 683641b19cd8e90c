// Package generation builds prompts from a user profile and a job description and
// turns them into a tailored resume and a cover letter via one completion call each.
package generation

import (
	"context"
	"strings"

	"github.com/hchandra1/Job-Application-Assistant/internal/llm"
)

// Sentinel strings returned in place of generated content when no credential is
// configured. They are written to the output files verbatim.
const (
	ErrNoKeyResume      = "[ERROR] Gemini API key not found. Cannot generate tailored resume."
	ErrNoKeyCoverLetter = "[ERROR] Gemini API key not found. Cannot generate cover letter."
)

// PostProcessor adjusts generated text before it is returned. The default is
// the identity function; it exists as a hook for future formatting passes.
type PostProcessor func(string) string

// Identity returns text unchanged.
func Identity(text string) string { return text }

// Generator produces tailored documents. A nil Client means no credential is
// configured: generation degrades to the sentinel error strings and performs
// no network calls.
type Generator struct {
	Client            llm.Client
	PostProcessResume PostProcessor
	PostProcessLetter PostProcessor
}

// NewGenerator returns a Generator with identity post-processing hooks.
// client may be nil when no API key is available.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{
		Client:            client,
		PostProcessResume: Identity,
		PostProcessLetter: Identity,
	}
}

func (g *Generator) generate(ctx context.Context, prompt string, post PostProcessor) (string, error) {
	text, err := g.Client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", &APICallError{Message: "completion call failed", Cause: err}
	}

	text = strings.TrimSpace(text)
	if post != nil {
		text = post(text)
	}
	return text, nil
}
