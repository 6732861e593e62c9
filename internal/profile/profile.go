package profile

import (
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/marchelxyz/calendar/server/timezone"
)

// Profile is the configuration for the calendar NLU service.
type Profile struct {
	// Mode can be "prod" or "dev" or "demo"
	Mode string
	// Version is the current version of the service
	Version string

	// OpenAIAPIKey is the credential for the completion endpoint.
	OpenAIAPIKey string // CALENDAR_OPENAI_API_KEY (legacy: OPENAI_API_KEY)
	// OpenAIBaseURL overrides the completion endpoint base URL.
	OpenAIBaseURL string // CALENDAR_OPENAI_BASE_URL (default: https://api.openai.com/v1)
	// LLMModel is the completion model identifier.
	LLMModel string // CALENDAR_LLM_MODEL (default: gpt-4o-mini)
	// LLMTemperature is the sampling temperature for completions.
	LLMTemperature float32 // CALENDAR_LLM_TEMPERATURE (default: 0.3)
	// Timezone is the IANA timezone used to resolve relative dates.
	Timezone string // CALENDAR_TIMEZONE (legacy: TIMEZONE, default: Europe/Moscow)
}

// getEnvOrDefault returns the environment variable value or the default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// FromEnv loads configuration from environment variables.
// Supports both CALENDAR_* (new) and bare legacy names used by early deployments.
func (p *Profile) FromEnv() {
	// Helper to get env value with legacy fallback
	// Skips empty values to allow defaults to take effect
	getEnvWithFallback := func(newKey, legacyKey string) string {
		if val := os.Getenv(newKey); val != "" {
			return val
		}
		return os.Getenv(legacyKey)
	}

	// Helper to get env value with legacy fallback and default value
	getEnvWithDefault := func(newKey, legacyKey, defaultValue string) string {
		if val := getEnvWithFallback(newKey, legacyKey); val != "" {
			return val
		}
		return defaultValue
	}

	p.OpenAIAPIKey = getEnvWithFallback("CALENDAR_OPENAI_API_KEY", "OPENAI_API_KEY")
	p.OpenAIBaseURL = getEnvOrDefault("CALENDAR_OPENAI_BASE_URL", "https://api.openai.com/v1")
	p.LLMModel = getEnvOrDefault("CALENDAR_LLM_MODEL", "gpt-4o-mini")
	p.Timezone = getEnvWithDefault("CALENDAR_TIMEZONE", "TIMEZONE", timezone.TimezoneEuropeMoscow)

	p.LLMTemperature = 0.3
	if raw := os.Getenv("CALENDAR_LLM_TEMPERATURE"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 32); err == nil {
			p.LLMTemperature = float32(v)
		}
	}
}

// Validate checks that the profile is usable.
func (p *Profile) Validate() error {
	if p.Mode != "demo" && p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "demo"
	}

	if p.OpenAIAPIKey == "" {
		return errors.New("OpenAI API key is required, set CALENDAR_OPENAI_API_KEY")
	}

	if !timezone.IsValidTimezone(p.Timezone) {
		return errors.Errorf("invalid timezone %q", p.Timezone)
	}

	return nil
}
