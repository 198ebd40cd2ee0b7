package domain

import (
	"fmt"
	"strings"
)

// GridReader is the read-only view of a maze consumed by searches and renderers.
type GridReader interface {
	Width() int
	Height() int
	InBounds(p Position) bool
	At(p Position) CellState
}

// RandomSource yields uniform integers in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// Grid is a rectangular maze. Cells are stored row-major and never escape the grid;
// accessors hand out copies.
//
// A Grid holds at most one Start and one Goal cell. start and goal mirror those cells
// and are NoPosition while unset.
type Grid struct {
	width  int
	height int
	cells  []CellState
	start  Position
	goal   Position
}

// NewGrid creates an all-Empty grid with no start or goal.
func NewGrid(width, height int) (*Grid, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
		start:  NoPosition,
		goal:   NoPosition,
	}, nil
}

// ParseGrid builds a grid from textual rows using the symbols of CellState.Symbol.
// All rows must share the same non-zero length. When several S or G symbols appear the
// last one wins, as if SetStart/SetGoal had been applied left to right, top to bottom.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimension)
	}
	width := len([]rune(rows[0]))
	g, err := NewGrid(width, len(rows))
	if err != nil {
		return nil, err
	}
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimension, r, len(runes), width)
		}
		for c, sym := range runes {
			state, err := ParseSymbol(sym)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			p := Pos(r, c)
			switch state {
			case Obstacle:
				_ = g.SetObstacle(p)
			case Start:
				_ = g.SetStart(p)
			case Goal:
				_ = g.SetGoal(p)
			case Empty:
			}
		}
	}
	return g, nil
}

func validateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// At returns the state of p, or Obstacle when p is outside the grid.
// Treating the border as a wall lets searches skip a separate bounds check.
func (g *Grid) At(p Position) CellState {
	if !g.InBounds(p) {
		return Obstacle
	}
	return g.cells[g.index(p)]
}

// Cell is the checked variant of At.
func (g *Grid) Cell(p Position) (CellState, error) {
	if err := g.check(p); err != nil {
		return Empty, err
	}
	return g.cells[g.index(p)], nil
}

// Start returns the start position and whether one is set.
func (g *Grid) Start() (Position, bool) {
	return g.start, g.start != NoPosition
}

// Goal returns the goal position and whether one is set.
func (g *Grid) Goal() (Position, bool) {
	return g.goal, g.goal != NoPosition
}

// SetObstacle marks p as an obstacle. A start or goal previously at p is unset.
func (g *Grid) SetObstacle(p Position) error {
	return g.paint(p, Obstacle)
}

// Erase marks p as empty. A start or goal previously at p is unset.
func (g *Grid) Erase(p Position) error {
	return g.paint(p, Empty)
}

// SetStart moves the start to p. The previous start cell becomes Empty; a goal at p is unset.
func (g *Grid) SetStart(p Position) error {
	if err := g.check(p); err != nil {
		return err
	}
	if g.start != NoPosition && g.start != p {
		g.cells[g.index(g.start)] = Empty
	}
	g.release(p)
	g.cells[g.index(p)] = Start
	g.start = p
	return nil
}

// SetGoal moves the goal to p. The previous goal cell becomes Empty; a start at p is unset.
func (g *Grid) SetGoal(p Position) error {
	if err := g.check(p); err != nil {
		return err
	}
	if g.goal != NoPosition && g.goal != p {
		g.cells[g.index(g.goal)] = Empty
	}
	g.release(p)
	g.cells[g.index(p)] = Goal
	g.goal = p
	return nil
}

// Clear empties every cell and unsets start and goal. Dimensions are kept.
func (g *Grid) Clear() {
	clear(g.cells)
	g.start = NoPosition
	g.goal = NoPosition
}

// Resize rebuilds the grid all-Empty at the new dimensions.
// On error the grid is left untouched.
func (g *Grid) Resize(width, height int) error {
	if err := validateDimensions(width, height); err != nil {
		return err
	}
	g.width = width
	g.height = height
	g.cells = make([]CellState, width*height)
	g.start = NoPosition
	g.goal = NoPosition
	return nil
}

// RandomizeObstacles clears the grid and then makes floor(width*height/density) attempts
// to place an obstacle on a uniformly chosen cell. An attempt that lands on a non-empty
// cell is skipped, so the realized count can be lower than the attempt count.
// A density <= 0 selects DefaultDensity.
func (g *Grid) RandomizeObstacles(rng RandomSource, density int) int {
	if density <= 0 {
		density = DefaultDensity
	}
	g.Clear()
	placed := 0
	attempts := g.width * g.height / density
	for range attempts {
		row := rng.IntN(g.height)
		col := rng.IntN(g.width)
		i := row*g.width + col
		if g.cells[i] == Empty {
			g.cells[i] = Obstacle
			placed++
		}
	}
	return placed
}

// Rows returns a copy of the cells as a row-major matrix.
func (g *Grid) Rows() [][]CellState {
	rows := make([][]CellState, g.height)
	for r := range rows {
		rows[r] = append([]CellState(nil), g.cells[r*g.width:(r+1)*g.width]...)
	}
	return rows
}

// Count returns how many cells are in the given state.
func (g *Grid) Count(state CellState) int {
	n := 0
	for _, c := range g.cells {
		if c == state {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	cp := *g
	cp.cells = append([]CellState(nil), g.cells...)
	return &cp
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return g.start == other.start && g.goal == other.goal
}

// Text renders the grid one line per row using CellState symbols.
func (g *Grid) Text() []string {
	lines := make([]string, g.height)
	var sb strings.Builder
	for r := 0; r < g.height; r++ {
		sb.Reset()
		for c := 0; c < g.width; c++ {
			sb.WriteRune(g.cells[r*g.width+c].Symbol())
		}
		lines[r] = sb.String()
	}
	return lines
}

func (g *Grid) String() string {
	return strings.Join(g.Text(), "\n")
}

func (g *Grid) paint(p Position, state CellState) error {
	if err := g.check(p); err != nil {
		return err
	}
	g.release(p)
	g.cells[g.index(p)] = state
	return nil
}

// release unsets a start or goal reference that points at p.
func (g *Grid) release(p Position) {
	if g.start == p {
		g.start = NoPosition
	}
	if g.goal == p {
		g.goal = NoPosition
	}
}

func (g *Grid) check(p Position) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, p, g.width, g.height)
	}
	return nil
}

func (g *Grid) index(p Position) int {
	return p.Row*g.width + p.Col
}
