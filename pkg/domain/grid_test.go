package domain

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(4, 3)
	require.NoError(t, err)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 12, g.Count(Empty))
	_, ok := g.Start()
	assert.False(t, ok)
	_, ok = g.Goal()
	assert.False(t, ok)
}

func TestNewGrid_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		g, err := NewGrid(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimension, "dims %v", dims)
		assert.Nil(t, g)
	}
}

func TestGrid_OutOfBounds(t *testing.T) {
	g, _ := NewGrid(3, 3)
	outside := []Position{{-1, 0}, {0, -1}, {3, 0}, {0, 3}}

	for _, p := range outside {
		assert.ErrorIs(t, g.SetObstacle(p), ErrOutOfBounds)
		assert.ErrorIs(t, g.SetStart(p), ErrOutOfBounds)
		assert.ErrorIs(t, g.SetGoal(p), ErrOutOfBounds)
		assert.ErrorIs(t, g.Erase(p), ErrOutOfBounds)
		_, err := g.Cell(p)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.Equal(t, Obstacle, g.At(p), "outside cells read as walls")
	}

	assert.Equal(t, 9, g.Count(Empty), "failed mutations must not write")
}

func TestGrid_SetStartMovesReference(t *testing.T) {
	g, _ := NewGrid(5, 5)
	p, q := Pos(1, 1), Pos(3, 2)

	require.NoError(t, g.SetStart(p))
	require.NoError(t, g.SetStart(q))

	assert.Equal(t, Empty, g.At(p))
	assert.Equal(t, Start, g.At(q))
	start, ok := g.Start()
	assert.True(t, ok)
	assert.Equal(t, q, start)
	assert.Equal(t, 1, g.Count(Start))
}

func TestGrid_SetGoalMovesReference(t *testing.T) {
	g, _ := NewGrid(5, 5)
	require.NoError(t, g.SetGoal(Pos(0, 0)))
	require.NoError(t, g.SetGoal(Pos(4, 4)))

	assert.Equal(t, Empty, g.At(Pos(0, 0)))
	goal, _ := g.Goal()
	assert.Equal(t, Pos(4, 4), goal)
	assert.Equal(t, 1, g.Count(Goal))
}

func TestGrid_SetStartTwiceOnSameCell(t *testing.T) {
	g, _ := NewGrid(2, 2)
	require.NoError(t, g.SetStart(Pos(0, 0)))
	require.NoError(t, g.SetStart(Pos(0, 0)))

	assert.Equal(t, Start, g.At(Pos(0, 0)))
	start, ok := g.Start()
	assert.True(t, ok)
	assert.Equal(t, Pos(0, 0), start)
}

func TestGrid_OverwritingEndpointsClearsReference(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(g *Grid) error
		wantStart bool
		wantGoal  bool
		wantCell  CellState
	}{
		{"obstacle over start", func(g *Grid) error { return g.SetObstacle(Pos(0, 0)) }, false, true, Obstacle},
		{"obstacle over goal", func(g *Grid) error { return g.SetObstacle(Pos(1, 1)) }, true, false, Obstacle},
		{"erase start", func(g *Grid) error { return g.Erase(Pos(0, 0)) }, false, true, Empty},
		{"goal over start", func(g *Grid) error { return g.SetGoal(Pos(0, 0)) }, false, true, Goal},
		{"start over goal", func(g *Grid) error { return g.SetStart(Pos(1, 1)) }, true, false, Start},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseGrid([]string{"S.", ".G"})
			require.NoError(t, err)
			require.NoError(t, tt.mutate(g))

			_, hasStart := g.Start()
			_, hasGoal := g.Goal()
			assert.Equal(t, tt.wantStart, hasStart)
			assert.Equal(t, tt.wantGoal, hasGoal)
			assert.LessOrEqual(t, g.Count(Start), 1)
			assert.LessOrEqual(t, g.Count(Goal), 1)
		})
	}
}

func TestGrid_StartOverridesObstacle(t *testing.T) {
	g, _ := NewGrid(3, 1)
	require.NoError(t, g.SetObstacle(Pos(0, 1)))
	require.NoError(t, g.SetStart(Pos(0, 1)))
	assert.Equal(t, Start, g.At(Pos(0, 1)))
	assert.Equal(t, 0, g.Count(Obstacle))
}

func TestGrid_ResizeInvalidLeavesGridUntouched(t *testing.T) {
	g, err := ParseGrid([]string{"S#", ".G"})
	require.NoError(t, err)
	before := g.Clone()

	err = g.Resize(0, 5)
	assert.ErrorIs(t, err, ErrInvalidDimension)
	assert.True(t, g.Equal(before))
}

func TestGrid_Resize(t *testing.T) {
	g, _ := ParseGrid([]string{"S#", ".G"})
	require.NoError(t, g.Resize(6, 4))

	assert.Equal(t, 6, g.Width())
	assert.Equal(t, 4, g.Height())
	assert.Equal(t, 24, g.Count(Empty))
	_, ok := g.Start()
	assert.False(t, ok)
}

func TestGrid_RandomizeThenClearEqualsFresh(t *testing.T) {
	g, _ := NewGrid(10, 8)
	require.NoError(t, g.SetStart(Pos(0, 0)))
	g.RandomizeObstacles(rand.New(rand.NewPCG(7, 7)), DefaultDensity)
	g.Clear()

	fresh, _ := NewGrid(10, 8)
	assert.True(t, g.Equal(fresh))
}

func TestGrid_RandomizeObstacles(t *testing.T) {
	g, _ := NewGrid(15, 15)
	require.NoError(t, g.SetStart(Pos(0, 0)))
	require.NoError(t, g.SetGoal(Pos(14, 14)))

	placed := g.RandomizeObstacles(rand.New(rand.NewPCG(42, 42)), 0)

	attempts := 15 * 15 / DefaultDensity
	assert.Equal(t, placed, g.Count(Obstacle))
	assert.LessOrEqual(t, placed, attempts)
	assert.Positive(t, placed)
	_, ok := g.Start()
	assert.False(t, ok, "randomize resets endpoints")
	assert.Equal(t, 0, g.Count(Start)+g.Count(Goal))
}

// fixedSource replays a scripted sequence of draws.
type fixedSource struct {
	draws []int
	i     int
}

func (f *fixedSource) IntN(n int) int {
	v := f.draws[f.i%len(f.draws)] % n
	f.i++
	return v
}

func TestGrid_RandomizeSkipsOccupiedCells(t *testing.T) {
	g, _ := NewGrid(2, 2)
	// One attempt per cell, every attempt draws (row 1, col 0).
	placed := g.RandomizeObstacles(&fixedSource{draws: []int{1, 0}}, 1)

	assert.Equal(t, 1, placed)
	assert.Equal(t, Obstacle, g.At(Pos(1, 0)))
	assert.Equal(t, 3, g.Count(Empty))
}

func TestGrid_RandomizeDeterministicForSeed(t *testing.T) {
	a, _ := NewGrid(12, 9)
	b, _ := NewGrid(12, 9)
	a.RandomizeObstacles(rand.New(rand.NewPCG(3, 3)), DefaultDensity)
	b.RandomizeObstacles(rand.New(rand.NewPCG(3, 3)), DefaultDensity)
	assert.True(t, a.Equal(b))
}

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid([]string{"S..#", ".#..", "...G"})
	require.NoError(t, err)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	start, _ := g.Start()
	goal, _ := g.Goal()
	assert.Equal(t, Pos(0, 0), start)
	assert.Equal(t, Pos(2, 3), goal)
	assert.Equal(t, 2, g.Count(Obstacle))
	assert.Equal(t, []string{"S..#", ".#..", "...G"}, g.Text())
}

func TestParseGrid_Errors(t *testing.T) {
	_, err := ParseGrid(nil)
	assert.ErrorIs(t, err, ErrInvalidDimension)

	_, err = ParseGrid([]string{""})
	assert.ErrorIs(t, err, ErrInvalidDimension)

	_, err = ParseGrid([]string{"...", ".."})
	assert.ErrorIs(t, err, ErrInvalidDimension)

	_, err = ParseGrid([]string{"..?"})
	assert.ErrorIs(t, err, ErrInvalidCell)
}

func TestParseGrid_LastEndpointWins(t *testing.T) {
	g, err := ParseGrid([]string{"S.S"})
	require.NoError(t, err)
	start, _ := g.Start()
	assert.Equal(t, Pos(0, 2), start)
	assert.Equal(t, 1, g.Count(Start))
}

func TestGrid_RowsIsACopy(t *testing.T) {
	g, _ := NewGrid(2, 2)
	rows := g.Rows()
	rows[0][0] = Obstacle
	assert.Equal(t, Empty, g.At(Pos(0, 0)))
}
