package domain

import "fmt"

// Position addresses a grid cell by row and column.
type Position struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// NoPosition marks an unresolved start or goal.
var NoPosition = Position{Row: -1, Col: -1}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns the neighbour of p one step in direction d.
func (p Position) Add(d Direction) Position {
	off := d.Offset()
	return Position{Row: p.Row + off.Row, Col: p.Col + off.Col}
}

// Manhattan returns the 4-directional distance between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// Adjacent reports whether p and q differ by exactly one unit in exactly one axis.
func (p Position) Adjacent(q Position) bool {
	return p.Manhattan(q) == 1
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is one of the four axis-aligned moves.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions is the neighbour expansion order of every search.
// It decides which of several equal-length shortest paths is returned.
var Directions = [4]Direction{Up, Down, Left, Right}

// Offset converts a direction to a row/column delta.
func (d Direction) Offset() Position {
	switch d {
	case Up:
		return Position{Row: -1, Col: 0}
	case Down:
		return Position{Row: 1, Col: 0}
	case Left:
		return Position{Row: 0, Col: -1}
	case Right:
		return Position{Row: 0, Col: 1}
	default:
		return Position{}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
