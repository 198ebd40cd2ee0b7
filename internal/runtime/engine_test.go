package runtime_test

import (
	"context"
	"testing"

	"github.com/Rangchakdv/MazeSolver/internal/runtime"
	"github.com/Rangchakdv/MazeSolver/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState(t *testing.T, w, h int) *domain.State {
	t.Helper()
	s, err := domain.NewState(w, h)
	require.NoError(t, err)
	s.SessionID = "test"
	return s
}

func TestEngine_PaintAndSolve(t *testing.T) {
	ctx := context.Background()
	engine := runtime.NewEngine()
	state := newState(t, 5, 5)

	for _, cmd := range []domain.Command{
		domain.Paint(domain.ModeStart, domain.Pos(0, 0)),
		domain.Paint(domain.ModeGoal, domain.Pos(0, 4)),
	} {
		_, err := engine.Apply(ctx, state, cmd)
		require.NoError(t, err)
	}

	out, err := engine.Apply(ctx, state, domain.Solve())
	require.NoError(t, err)
	require.True(t, out.Searched)
	assert.True(t, out.Found)
	assert.Equal(t, domain.StatusSolved, state.Status)
	assert.Equal(t, 4, state.Path.Steps())

	// Any edit drops the stale path.
	_, err = engine.Apply(ctx, state, domain.Paint(domain.ModeObstacle, domain.Pos(2, 2)))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnsolved, state.Status)
	assert.Nil(t, state.Path)
}

func TestEngine_ClickUsesCurrentMode(t *testing.T) {
	ctx := context.Background()
	engine := runtime.NewEngine()
	state := newState(t, 3, 3)

	out, err := engine.Apply(ctx, state, domain.Click(domain.Pos(1, 1)))
	require.NoError(t, err)
	assert.False(t, out.Changed, "clicks in ModeNone do nothing")
	assert.Equal(t, domain.Empty, state.Grid.At(domain.Pos(1, 1)))

	_, err = engine.Apply(ctx, state, domain.SetMode(domain.ModeObstacle))
	require.NoError(t, err)
	out, err = engine.Apply(ctx, state, domain.Click(domain.Pos(1, 1)))
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, domain.Obstacle, state.Grid.At(domain.Pos(1, 1)))
}

func TestEngine_SolveWithoutEndpoints(t *testing.T) {
	var rejected []error
	engine := runtime.NewEngine(runtime.WithHooks(domain.LifecycleHooks{
		OnReject: func(_ context.Context, e *domain.RejectEvent) {
			rejected = append(rejected, e.Err)
		},
	}))
	state := newState(t, 3, 3)

	_, err := engine.Apply(context.Background(), state, domain.Solve())
	assert.ErrorIs(t, err, domain.ErrMissingEndpoint)
	require.Len(t, rejected, 1)
	assert.ErrorIs(t, rejected[0], domain.ErrMissingEndpoint)
	assert.Equal(t, domain.StatusUnsolved, state.Status)
}

func TestEngine_Unreachable(t *testing.T) {
	engine := runtime.NewEngine()
	g, err := domain.ParseGrid([]string{"S#G"})
	require.NoError(t, err)
	state := &domain.State{Grid: g, Status: domain.StatusUnsolved}

	out, err := engine.Apply(context.Background(), state, domain.Solve())
	require.NoError(t, err)
	assert.False(t, out.Found)
	assert.Equal(t, domain.StatusUnreachable, state.Status)
}

func TestEngine_ResizeRejectionKeepsGrid(t *testing.T) {
	engine := runtime.NewEngine()
	state := newState(t, 4, 4)

	_, err := engine.Apply(context.Background(), state, domain.Resize(0, 5))
	assert.ErrorIs(t, err, domain.ErrInvalidDimension)
	assert.Equal(t, 4, state.Grid.Width())
	assert.Equal(t, 4, state.Grid.Height())

	_, err = engine.Apply(context.Background(), state, domain.Resize(7, 2))
	require.NoError(t, err)
	assert.Equal(t, 7, state.Grid.Width())
	assert.Equal(t, 2, state.Grid.Height())
}

func TestEngine_OutOfBoundsPaint(t *testing.T) {
	engine := runtime.NewEngine()
	state := newState(t, 2, 2)

	_, err := engine.Apply(context.Background(), state, domain.Paint(domain.ModeStart, domain.Pos(5, 5)))
	assert.ErrorIs(t, err, domain.ErrOutOfBounds)
	_, ok := state.Grid.Start()
	assert.False(t, ok)
}

func TestEngine_RandomizeSeeded(t *testing.T) {
	engine := runtime.NewEngine()
	a := newState(t, 15, 15)
	b := newState(t, 15, 15)

	outA, err := engine.Apply(context.Background(), a, domain.Randomize(99))
	require.NoError(t, err)
	outB, err := engine.Apply(context.Background(), b, domain.Randomize(99))
	require.NoError(t, err)

	assert.Equal(t, uint64(99), outA.Seed)
	assert.Equal(t, outA.Placed, outB.Placed)
	assert.True(t, a.Grid.Equal(b.Grid))
}

func TestEngine_RandomizeUnseededUsesSeedSource(t *testing.T) {
	engine := runtime.NewEngine(runtime.WithSeedSource(func() uint64 { return 5 }), runtime.WithDensity(2))
	state := newState(t, 4, 4)

	out, err := engine.Apply(context.Background(), state, domain.RandomizeUnseeded())
	require.NoError(t, err)
	assert.Equal(t, uint64(5), out.Seed)
	assert.LessOrEqual(t, out.Placed, 8)
}

func TestEngine_LifecycleHooks(t *testing.T) {
	var edits []domain.CommandKind
	var solves []*domain.SolveEvent

	engine := runtime.NewEngine(runtime.WithHooks(domain.LifecycleHooks{
		OnEdit: func(_ context.Context, e *domain.EditEvent) {
			edits = append(edits, e.Command)
		},
		OnSolve: func(_ context.Context, e *domain.SolveEvent) {
			solves = append(solves, e)
		},
	}))
	state := newState(t, 3, 3)
	ctx := context.Background()

	cmds := []domain.Command{
		domain.Click(domain.Pos(0, 0)), // no-op, no event
		domain.Paint(domain.ModeStart, domain.Pos(0, 0)),
		domain.Paint(domain.ModeGoal, domain.Pos(2, 2)),
		domain.Solve(),
		domain.Reset(),
	}
	for _, cmd := range cmds {
		_, err := engine.Apply(ctx, state, cmd)
		require.NoError(t, err)
	}

	assert.Equal(t, []domain.CommandKind{domain.CommandPaint, domain.CommandPaint, domain.CommandReset}, edits)
	require.Len(t, solves, 1)
	assert.True(t, solves[0].Found)
	assert.Equal(t, 4, solves[0].Length)
	assert.Equal(t, "test", solves[0].SessionID)
}

func TestEngine_UnknownCommand(t *testing.T) {
	engine := runtime.NewEngine()
	state := newState(t, 2, 2)
	_, err := engine.Apply(context.Background(), state, domain.Command{Kind: "teleport"})
	assert.ErrorIs(t, err, domain.ErrUnknownCommand)
}
