// Package llm provides the language-model client used by the narrative
// generator, with centralized model configuration.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
)

// Config holds the model configuration for narrative generation. The low
// temperature keeps the structured JSON output stable across calls.
type Config struct {
	Provider    Provider
	Model       string
	Temperature float32
	MaxTokens   int32
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       "gemini-2.5-flash",
		Temperature: 0.3,
		MaxTokens:   1500,
	}
}

// WithModel returns a copy of the config with a different model
func (c *Config) WithModel(model string) *Config {
	copied := *c
	copied.Model = model
	return &copied
}
