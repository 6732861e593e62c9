package ai

import (
	"errors"

	"github.com/marchelxyz/calendar/internal/profile"
)

// LLMConfig represents LLM configuration.
type LLMConfig struct {
	Model       string  // gpt-4o-mini
	APIKey      string
	BaseURL     string
	Temperature float32 // default: 0.3
}

// DefaultLLMConfig returns the default configuration.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Model:       "gpt-4o-mini",
		BaseURL:     "https://api.openai.com/v1",
		Temperature: 0.3,
	}
}

// applyDefaults fills in defaults for unset values.
func (c *LLMConfig) applyDefaults() {
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openai.com/v1"
	}
	if c.Temperature == 0 {
		c.Temperature = 0.3
	}
}

// NewLLMConfigFromProfile creates LLM config from the service profile.
func NewLLMConfigFromProfile(p *profile.Profile) *LLMConfig {
	return &LLMConfig{
		Model:       p.LLMModel,
		APIKey:      p.OpenAIAPIKey,
		BaseURL:     p.OpenAIBaseURL,
		Temperature: p.LLMTemperature,
	}
}

// Validate validates the configuration.
func (c *LLMConfig) Validate() error {
	if c.APIKey == "" {
		return errors.New("LLM API key is required")
	}
	if c.Model == "" {
		return errors.New("LLM model is required")
	}
	return nil
}
