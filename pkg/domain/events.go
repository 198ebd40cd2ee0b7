package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventEdit   EventType = "edit"
	EventSolve  EventType = "solve"
	EventReject EventType = "reject"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id,omitempty"`
}

// EditEvent is emitted after a command changed the session.
type EditEvent struct {
	EventBase
	Command CommandKind `json:"command"`
	Mode    EditMode    `json:"mode"`
	Pos     *Position   `json:"pos,omitempty"`
	Width   int         `json:"width"`
	Height  int         `json:"height"`
}

// SolveEvent is emitted after a search finished, found or not.
type SolveEvent struct {
	EventBase
	Found    bool          `json:"found"`
	Length   int           `json:"length"`
	Visited  int           `json:"visited"`
	Duration time.Duration `json:"duration"`
}

// RejectEvent is emitted when a command failed validation. The session is unchanged.
type RejectEvent struct {
	EventBase
	Command CommandKind `json:"command"`
	Err     error       `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnEdit   func(context.Context, *EditEvent)
	OnSolve  func(context.Context, *SolveEvent)
	OnReject func(context.Context, *RejectEvent)
}
