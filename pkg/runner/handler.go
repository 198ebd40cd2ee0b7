package runner

import (
	"context"

	"github.com/Rangchakdv/MazeSolver/pkg/animation"
	"github.com/Rangchakdv/MazeSolver/pkg/domain"
)

// EventKind classifies what the runner reports to the handler.
type EventKind string

const (
	EventResult EventKind = "result" // A command was applied; State holds the new maze
	EventError  EventKind = "error"  // A command was rejected; Message is user-facing
	EventFrame  EventKind = "frame"  // One animation step; State.Path holds the revealed prefix
	EventHelp   EventKind = "help"   // Message holds HelpMarkdown
	EventBye    EventKind = "bye"
)

// Event is one unit of REPL output.
type Event struct {
	Kind    EventKind        `json:"kind"`
	Command string           `json:"command,omitempty"`
	Message string           `json:"message,omitempty"`
	Outcome *domain.Outcome  `json:"outcome,omitempty"`
	State   *domain.Snapshot `json:"state,omitempty"`
	Frame   *animation.Frame `json:"frame,omitempty"`
}

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (terminal) and JSON (structured) modes.
type IOHandler interface {
	// Output presents one event to the user.
	Output(ctx context.Context, ev Event) error

	// Input reads the next command line. It returns io.EOF when the input is exhausted.
	Input(ctx context.Context) (string, error)

	// Animated reports whether solved paths should be revealed frame by frame.
	Animated() bool
}
