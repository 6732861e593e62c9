package event

import (
	"fmt"
	"strings"
	"time"
)

// datetimeFormats are the accepted model output formats, most specific first.
// Only RFC3339 carries an explicit offset; the naive formats are interpreted
// in the configured timezone via time.ParseInLocation.
var datetimeFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseDatetime parses a model-provided datetime string into a zoned instant.
// Values without timezone information are localized to loc rather than UTC.
func parseDatetime(input string, loc *time.Location) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("empty datetime")
	}

	for _, format := range datetimeFormats {
		if t, err := time.ParseInLocation(format, input, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized datetime format: %q", input)
}
