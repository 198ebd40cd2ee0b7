package domain

import "time"

// Defaults for a fresh editor session.
const (
	DefaultWidth  = 15
	DefaultHeight = 15

	// DefaultDensity is the divisor applied to the cell count when placing random
	// obstacles: one attempt per DefaultDensity cells.
	DefaultDensity = 4

	// DefaultStepDelay separates two frames of the path animation.
	DefaultStepDelay = 200 * time.Millisecond
)

// User-facing messages shared by every shell.
const (
	MsgMissingEndpoint  = "Start or goal not set!"
	MsgNoPath           = "No path found!"
	MsgInvalidDimension = "Width and Height must be positive integers!"
	MsgInvalidInput     = "Invalid input! Please enter valid integers for width and height."
)
