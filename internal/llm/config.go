// Package llm provides the text-completion client used to generate documents.
package llm

// DefaultModel is the model used for all document generation.
const DefaultModel = "gemini-2.5-flash"

// Generation parameters applied to every completion call. Each document is
// produced by exactly one call with these fixed values.
const (
	MaxOutputTokens = 1000
	Temperature     = 0.7
)

// Config holds the model configuration for completion calls.
type Config struct {
	Model           string
	MaxOutputTokens int32
	Temperature     float32
}

// DefaultConfig returns the default generation configuration.
func DefaultConfig() *Config {
	return &Config{
		Model:           DefaultModel,
		MaxOutputTokens: MaxOutputTokens,
		Temperature:     Temperature,
	}
}

// WithModel returns a copy of the config using a different model name.
// Empty names keep the current model.
func (c *Config) WithModel(model string) *Config {
	out := *c
	if model != "" {
		out.Model = model
	}
	return &out
}
