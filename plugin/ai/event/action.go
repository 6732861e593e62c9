// Package event extracts structured calendar-event actions from
// transcribed voice-message text via an LLM completion endpoint.
package event

import (
	"strings"
	"time"
)

// Action is the calendar operation requested by the user.
type Action string

const (
	ActionCreateEvent Action = "create_event"
	ActionDeleteEvent Action = "delete_event"
	ActionUpdateEvent Action = "update_event"
)

// ParseAction maps a model-provided action string to an Action.
// Unknown or empty values default to ActionCreateEvent.
func ParseAction(s string) Action {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ActionDeleteEvent), "delete", "remove":
		return ActionDeleteEvent
	case string(ActionUpdateEvent), "update", "modify", "change":
		return ActionUpdateEvent
	default:
		return ActionCreateEvent
	}
}

// EventAction is the structured result of extracting a calendar event
// from free-form text.
type EventAction struct {
	// Action is the requested calendar operation.
	Action Action
	// Summary is the short event title provided by the model.
	Summary string
	// StartDatetime is always a concrete zoned instant. Naive values from
	// the model are interpreted in the configured timezone; unparseable
	// values are replaced with a fallback of now + 1 day.
	StartDatetime time.Time
	// DurationMinutes is the event length, 60 if the model omitted it.
	DurationMinutes int
	// Description is nil when the model provided no description.
	// An empty string means the model explicitly returned one.
	Description *string
}
