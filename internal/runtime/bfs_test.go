package runtime_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/Rangchakdv/MazeSolver/internal/runtime"
	"github.com/Rangchakdv/MazeSolver/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, rows ...string) *domain.Grid {
	t.Helper()
	g, err := domain.ParseGrid(rows)
	require.NoError(t, err)
	return g
}

func TestFindPath_StraightLine(t *testing.T) {
	g, _ := domain.NewGrid(5, 5)

	res, err := runtime.FindPath(g, domain.Pos(0, 0), domain.Pos(0, 4))
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, domain.Path{
		domain.Pos(0, 0), domain.Pos(0, 1), domain.Pos(0, 2), domain.Pos(0, 3), domain.Pos(0, 4),
	}, res.Path)
}

func TestFindPath_WallBlocks(t *testing.T) {
	g := mustGrid(t,
		".#.",
		".#.",
		".#.",
	)

	res, err := runtime.FindPath(g, domain.Pos(0, 0), domain.Pos(0, 2))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Equal(t, 3, res.Visited, "only the left column is reachable")
}

func TestFindPath_ManhattanOnEmptyGrid(t *testing.T) {
	g, _ := domain.NewGrid(4, 3)

	for sr := 0; sr < 3; sr++ {
		for sc := 0; sc < 4; sc++ {
			for gr := 0; gr < 3; gr++ {
				for gc := 0; gc < 4; gc++ {
					start, goal := domain.Pos(sr, sc), domain.Pos(gr, gc)
					res, err := runtime.FindPath(g, start, goal)
					require.NoError(t, err)
					require.True(t, res.Found)
					assert.Equal(t, start.Manhattan(goal)+1, len(res.Path), "%s -> %s", start, goal)
					assert.True(t, res.Path.Valid(g))
				}
			}
		}
	}
}

func TestFindPath_PrefersUpDownLeftRight(t *testing.T) {
	g, _ := domain.NewGrid(3, 3)

	// Two shortest paths exist; Down is expanded before Right.
	res, err := runtime.FindPath(g, domain.Pos(0, 0), domain.Pos(1, 1))
	require.NoError(t, err)
	assert.Equal(t, domain.Path{domain.Pos(0, 0), domain.Pos(1, 0), domain.Pos(1, 1)}, res.Path)
}

func TestFindPath_Deterministic(t *testing.T) {
	g, _ := domain.NewGrid(20, 20)
	g.RandomizeObstacles(rand.New(rand.NewPCG(11, 11)), domain.DefaultDensity)
	require.NoError(t, g.SetStart(domain.Pos(0, 0)))
	require.NoError(t, g.SetGoal(domain.Pos(19, 19)))

	first, err := runtime.Solve(g)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := runtime.Solve(g)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestFindPath_AroundObstacles(t *testing.T) {
	g := mustGrid(t,
		"S..#",
		".#..",
		"...G",
	)
	before := g.Clone()

	res, err := runtime.Solve(g)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 5, res.Path.Steps())
	assert.True(t, res.Path.Valid(g))
	assert.Equal(t, domain.Pos(0, 0), res.Path[0])
	assert.Equal(t, domain.Pos(2, 3), res.Path[len(res.Path)-1])
	assert.True(t, g.Equal(before), "search must not mutate the grid")
}

func TestFindPath_StartEqualsGoal(t *testing.T) {
	g, _ := domain.NewGrid(2, 2)
	res, err := runtime.FindPath(g, domain.Pos(1, 1), domain.Pos(1, 1))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, domain.Path{domain.Pos(1, 1)}, res.Path)
	assert.Equal(t, 0, res.Path.Steps())
}

func TestFindPath_EndpointOnObstacle(t *testing.T) {
	g := mustGrid(t, "..#")
	res, err := runtime.FindPath(g, domain.Pos(0, 0), domain.Pos(0, 2))
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestFindPath_Errors(t *testing.T) {
	g, _ := domain.NewGrid(3, 3)

	_, err := runtime.FindPath(g, domain.NoPosition, domain.Pos(0, 0))
	assert.ErrorIs(t, err, domain.ErrMissingEndpoint)

	_, err = runtime.FindPath(g, domain.Pos(0, 0), domain.Pos(3, 0))
	assert.ErrorIs(t, err, domain.ErrOutOfBounds)

	_, err = runtime.Solve(g)
	assert.ErrorIs(t, err, domain.ErrMissingEndpoint)
}

func TestFindPath_OnVisitDepths(t *testing.T) {
	g, _ := domain.NewGrid(3, 1)
	var depths []int

	_, err := runtime.FindPath(g, domain.Pos(0, 0), domain.Pos(0, 2),
		runtime.WithOnVisit(func(_ domain.Position, depth int) {
			depths = append(depths, depth)
		}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, depths)
}

func TestFindPath_ContextCancelled(t *testing.T) {
	g, _ := domain.NewGrid(10, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runtime.FindPath(g, domain.Pos(0, 0), domain.Pos(9, 9), runtime.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
