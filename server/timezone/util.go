// Package timezone provides timezone utilities for the calendar NLU service.
//
// This package handles timezone parsing and "current time" computation
// to ensure consistent time handling across the application.
package timezone

import (
	"fmt"
	"time"
)

// UTC is the coordinated universal time timezone
var UTC = time.UTC

// ParseTimezone parses an IANA timezone identifier (e.g., "Europe/Moscow").
// If the timezone is invalid, returns UTC and an error.
func ParseTimezone(tz string) (*time.Location, error) {
	if tz == "" || tz == "UTC" {
		return UTC, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return UTC, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}

	return loc, nil
}

// MustParseTimezone parses a timezone or panics if invalid.
// Use this for constants that are known to be valid at compile time.
func MustParseTimezone(tz string) *time.Location {
	loc, err := ParseTimezone(tz)
	if err != nil {
		panic(err)
	}
	return loc
}

// IsValidTimezone checks if a timezone identifier is valid.
func IsValidTimezone(tz string) bool {
	if tz == "" || tz == "UTC" {
		return true
	}

	_, err := time.LoadLocation(tz)
	return err == nil
}

// FormatPromptTime formats a time the way it is embedded into LLM prompts.
func FormatPromptTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// Common timezone constants
const (
	// TimezoneUTC is the UTC timezone identifier
	TimezoneUTC = "UTC"

	// TimezoneEuropeMoscow is the Moscow Standard Time timezone,
	// the default for this deployment
	TimezoneEuropeMoscow = "Europe/Moscow"

	// TimezoneAmericaNewYork is the Eastern Time timezone
	TimezoneAmericaNewYork = "America/New_York"
)

// Common timezone locations (pre-loaded for performance)
var (
	// LocationEuropeMoscow is the pre-loaded Europe/Moscow location
	LocationEuropeMoscow = MustParseTimezone(TimezoneEuropeMoscow)

	// LocationAmericaNewYork is the pre-loaded America/New_York location
	LocationAmericaNewYork = MustParseTimezone(TimezoneAmericaNewYork)
)
