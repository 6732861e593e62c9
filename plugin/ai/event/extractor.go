package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/marchelxyz/calendar/internal/errors"
	"github.com/marchelxyz/calendar/internal/observability"
	"github.com/marchelxyz/calendar/plugin/ai"
	"github.com/marchelxyz/calendar/server/timezone"
)

const (
	// MaxInputLength bounds the transcribed text accepted per call.
	MaxInputLength = 1000

	// DefaultDurationMinutes is applied when the model omits a duration.
	DefaultDurationMinutes = 60
)

// ErrMsgUnprocessable is the user-facing message for a model reply that
// could not be understood. The underlying parse detail stays in the logs.
const ErrMsgUnprocessable = "Не удалось обработать запрос. Попробуйте сформулировать иначе."

// Extractor converts transcribed voice-message text into an EventAction
// by delegating interpretation to an LLM completion endpoint.
// The timezone and credential are read-only for the lifetime of the instance;
// concurrent calls are independent and need no coordination.
type Extractor struct {
	llm      ai.LLMService
	location *time.Location
	now      func() time.Time
}

// NewExtractor creates an extractor resolving relative dates in the given
// IANA timezone.
func NewExtractor(llm ai.LLMService, tz string) (*Extractor, error) {
	loc, err := timezone.ParseTimezone(tz)
	if err != nil {
		return nil, err
	}

	return &Extractor{
		llm:      llm,
		location: loc,
		now:      time.Now,
	}, nil
}

// llmEventResponse is the intermediate JSON structure for the model output.
// Pointer fields distinguish "absent" from explicit zero values.
type llmEventResponse struct {
	Action          string  `json:"action"`
	Summary         string  `json:"summary"`
	StartDatetime   string  `json:"start_datetime"`
	DurationMinutes *int    `json:"duration_minutes"`
	Description     *string `json:"description"`
}

// ExtractEventInfo extracts calendar-event information from transcribed text.
//
// It makes exactly one completion request. A reply that is not valid JSON is
// surfaced as an UNPROCESSABLE error; an unparseable start_datetime is
// replaced with now + 1 day in the configured timezone and the call still
// succeeds; any transport or endpoint error is logged and returned unmodified.
func (e *Extractor) ExtractEventInfo(ctx context.Context, text string) (*EventAction, error) {
	reqCtx := observability.NewRequestContext(slog.Default(), "extract_event_info")

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.InvalidArgument("empty input")
	}
	if n := utf8.RuneCountInString(text); n > MaxInputLength {
		return nil, apperrors.InvalidArgument(fmt.Sprintf("input too long: maximum %d characters, got %d", MaxInputLength, n))
	}

	now := e.now().In(e.location)
	prompt := buildPrompt(text, now, e.location)

	reply, err := e.llm.ChatJSON(ctx, ai.FormatMessages(extractorSystemPrompt, prompt))
	if err != nil {
		reqCtx.Error("completion request failed", err,
			slog.Int(observability.LogFieldTextLen, len(text)))
		return nil, err
	}

	var raw llmEventResponse
	if err := json.Unmarshal([]byte(cleanJSONReply(reply)), &raw); err != nil {
		reqCtx.Error("failed to parse model reply as JSON", err,
			slog.String("reply", truncateForLog(reply, 200)))
		return nil, apperrors.Unprocessable(ErrMsgUnprocessable, err)
	}

	start, err := parseDatetime(raw.StartDatetime, e.location)
	if err != nil {
		// Best-effort fallback masks the parse failure from the caller.
		reqCtx.Error("failed to parse start_datetime, using fallback", err,
			slog.String("start_datetime", raw.StartDatetime))
		start = now.AddDate(0, 0, 1)
	}

	duration := DefaultDurationMinutes
	if raw.DurationMinutes != nil {
		duration = *raw.DurationMinutes
	}

	result := &EventAction{
		Action:          ParseAction(raw.Action),
		Summary:         raw.Summary,
		StartDatetime:   start,
		DurationMinutes: duration,
		Description:     raw.Description,
	}

	reqCtx.Info("event info extracted",
		slog.String("action", string(result.Action)),
		slog.String("summary", result.Summary),
		slog.String("start_datetime", result.StartDatetime.Format(time.RFC3339)),
		slog.Int("duration_minutes", result.DurationMinutes),
		slog.Int64(observability.LogFieldDuration, reqCtx.DurationMs()))

	return result, nil
}

// cleanJSONReply strips markdown code fences some models wrap around JSON.
func cleanJSONReply(reply string) string {
	jsonStr := strings.TrimSpace(reply)
	jsonStr = strings.TrimPrefix(jsonStr, "```json")
	jsonStr = strings.TrimPrefix(jsonStr, "```")
	jsonStr = strings.TrimSuffix(jsonStr, "```")
	return strings.TrimSpace(jsonStr)
}

// truncateForLog truncates a string for logging purposes.
func truncateForLog(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
