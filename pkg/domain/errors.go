package domain

import "errors"

// ErrInvalidDimension is returned when a grid is created or resized with a non-positive width or height.
var ErrInvalidDimension = errors.New("invalid dimension")

// ErrOutOfBounds is returned when a position lies outside the current grid.
var ErrOutOfBounds = errors.New("position out of bounds")

// ErrMissingEndpoint is returned when a solve is requested without both start and goal resolved.
var ErrMissingEndpoint = errors.New("start or goal not set")

// ErrInvalidCell is returned when a textual grid contains an unknown cell symbol.
var ErrInvalidCell = errors.New("invalid cell symbol")

// ErrInvalidMode is returned when an edit mode name cannot be parsed.
var ErrInvalidMode = errors.New("invalid edit mode")

// ErrUnknownCommand is returned when a command kind is not recognised by the engine.
var ErrUnknownCommand = errors.New("unknown command")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrInvalidInput is returned when a numeric argument cannot be parsed.
var ErrInvalidInput = errors.New("invalid input")

// UserMessage maps an error to the message shown by interactive shells.
// Errors without a dedicated message fall back to err.Error().
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingEndpoint):
		return MsgMissingEndpoint
	case errors.Is(err, ErrInvalidDimension):
		return MsgInvalidDimension
	case errors.Is(err, ErrInvalidInput):
		return MsgInvalidInput
	default:
		return err.Error()
	}
}
