package domain

import (
	"fmt"
	"strings"
)

// EditMode selects what a click on a cell writes.
type EditMode uint8

const (
	// ModeNone is the initial mode. Painting in it is a no-op.
	ModeNone EditMode = iota
	ModeObstacle
	ModeStart
	ModeGoal
	ModeErase
)

func (m EditMode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeObstacle:
		return "obstacle"
	case ModeStart:
		return "start"
	case ModeGoal:
		return "goal"
	case ModeErase:
		return "erase"
	default:
		return fmt.Sprintf("EditMode(%d)", uint8(m))
	}
}

// ParseMode accepts a mode name or its one-letter alias.
func ParseMode(s string) (EditMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return ModeNone, nil
	case "obstacle", "o", "wall":
		return ModeObstacle, nil
	case "start", "s":
		return ModeStart, nil
	case "goal", "g":
		return ModeGoal, nil
	case "erase", "e", "empty":
		return ModeErase, nil
	default:
		return ModeNone, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

func (m EditMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *EditMode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// CommandKind enumerates the user actions the engine understands.
type CommandKind string

const (
	// CommandPaint writes the command's Mode (or the session mode when unset) at Pos.
	CommandPaint CommandKind = "paint"

	// CommandSetMode changes the session edit mode.
	CommandSetMode CommandKind = "mode"

	// CommandResize rebuilds the grid at Width x Height.
	CommandResize CommandKind = "resize"

	// CommandReset clears the grid.
	CommandReset CommandKind = "reset"

	// CommandRandomize clears the grid and places random obstacles.
	// Seed is used when HasSeed is true.
	CommandRandomize CommandKind = "randomize"

	// CommandSolve searches a shortest path between start and goal.
	CommandSolve CommandKind = "solve"
)

// Command is a discrete editor event.
type Command struct {
	Kind CommandKind `json:"kind"`

	// Mode overrides the session mode for Paint, and is the target of SetMode.
	Mode *EditMode `json:"mode,omitempty"`

	Pos Position `json:"pos"`

	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	Seed    uint64 `json:"seed,omitempty"`
	HasSeed bool   `json:"-"`
}

// Paint builds a Paint command at p with an explicit mode.
func Paint(mode EditMode, p Position) Command {
	return Command{Kind: CommandPaint, Mode: &mode, Pos: p}
}

// Click builds a Paint command that uses the session's current mode.
func Click(p Position) Command {
	return Command{Kind: CommandPaint, Pos: p}
}

// SetMode builds a SetMode command.
func SetMode(mode EditMode) Command {
	return Command{Kind: CommandSetMode, Mode: &mode}
}

// Resize builds a Resize command.
func Resize(width, height int) Command {
	return Command{Kind: CommandResize, Width: width, Height: height}
}

// Reset builds a Reset command.
func Reset() Command {
	return Command{Kind: CommandReset}
}

// Randomize builds a Randomize command with an explicit seed.
func Randomize(seed uint64) Command {
	return Command{Kind: CommandRandomize, Seed: seed, HasSeed: true}
}

// RandomizeUnseeded builds a Randomize command that lets the engine pick a seed.
func RandomizeUnseeded() Command {
	return Command{Kind: CommandRandomize}
}

// Solve builds a Solve command.
func Solve() Command {
	return Command{Kind: CommandSolve}
}

// Outcome describes what an applied command did to the session.
type Outcome struct {
	// Changed is false for commands that left the state untouched, such as painting in ModeNone.
	Changed bool `json:"changed"`

	// Searched, Found and Visited are set by Solve.
	Searched bool `json:"searched,omitempty"`
	Found    bool `json:"found,omitempty"`
	Visited  int  `json:"visited,omitempty"`

	// Placed and Seed are set by Randomize.
	Placed int    `json:"placed,omitempty"`
	Seed   uint64 `json:"seed,omitempty"`
}
