package domain

import "fmt"

// CellState classifies a single grid position.
type CellState uint8

const (
	Empty CellState = iota
	Obstacle
	Start
	Goal
)

// String returns the lowercase name of the state.
func (c CellState) String() string {
	switch c {
	case Empty:
		return "empty"
	case Obstacle:
		return "obstacle"
	case Start:
		return "start"
	case Goal:
		return "goal"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(c))
	}
}

// Symbol returns the single-character form used by textual grids.
func (c CellState) Symbol() rune {
	switch c {
	case Obstacle:
		return '#'
	case Start:
		return 'S'
	case Goal:
		return 'G'
	default:
		return '.'
	}
}

// Traversable reports whether a search may step onto a cell in this state.
// Start and Goal markers are traversable; obstacles never are.
func (c CellState) Traversable() bool {
	return c != Obstacle
}

// ParseSymbol maps a textual grid character back to a CellState.
func ParseSymbol(r rune) (CellState, error) {
	switch r {
	case '.', ' ':
		return Empty, nil
	case '#', 'X', 'x':
		return Obstacle, nil
	case 'S', 's':
		return Start, nil
	case 'G', 'g':
		return Goal, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrInvalidCell, r)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c CellState) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CellState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "empty":
		*c = Empty
	case "obstacle":
		*c = Obstacle
	case "start":
		*c = Start
	case "goal":
		*c = Goal
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCell, string(text))
	}
	return nil
}
