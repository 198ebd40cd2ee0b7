package screen

import (
	"context"
	"testing"
	"time"

	"github.com/Rangchakdv/MazeSolver/internal/presentation/tui"
	"github.com/Rangchakdv/MazeSolver/internal/runtime"
	"github.com/Rangchakdv/MazeSolver/pkg/animation"
	"github.com/Rangchakdv/MazeSolver/pkg/domain"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEditor(t *testing.T, rows ...string) (*Editor, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(40, 20)
	t.Cleanup(sim.Fini)

	g, err := domain.ParseGrid(rows)
	require.NoError(t, err)
	state := &domain.State{Grid: g, Status: domain.StatusUnsolved}
	return New(sim, runtime.NewEngine(), state, WithStepDelay(time.Millisecond)), sim
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func click(row, col int) *tcell.EventMouse {
	return tcell.NewEventMouse(col*cellWidth, row, tcell.Button1, tcell.ModNone)
}

func background(t *testing.T, sim tcell.SimulationScreen, row, col int) tcell.Color {
	t.Helper()
	_, _, style, _ := sim.GetContent(col*cellWidth, row)
	_, bg, _ := style.Decompose()
	return bg
}

func TestEditor_ClickPaintsWithCurrentMode(t *testing.T) {
	e, sim := newTestEditor(t, "...", "...")
	ctx := context.Background()

	e.HandleEvent(ctx, click(1, 1))
	assert.Equal(t, domain.Empty, e.state.Grid.At(domain.Pos(1, 1)), "no mode selected yet")

	e.HandleEvent(ctx, key('s'))
	e.HandleEvent(ctx, click(1, 1))
	e.HandleEvent(ctx, key('o'))
	e.HandleEvent(ctx, click(0, 2))
	// Right-hand column of a cell maps to the same cell.
	e.HandleEvent(ctx, tcell.NewEventMouse(1, 0, tcell.Button1, tcell.ModNone))
	e.Draw()

	assert.Equal(t, domain.Start, e.state.Grid.At(domain.Pos(1, 1)))
	assert.Equal(t, domain.Obstacle, e.state.Grid.At(domain.Pos(0, 2)))
	assert.Equal(t, domain.Obstacle, e.state.Grid.At(domain.Pos(0, 0)))
	assert.Equal(t, tcell.GetColor(tui.ColorStart), background(t, sim, 1, 1))
	assert.Equal(t, tcell.GetColor(tui.ColorObstacle), background(t, sim, 0, 2))
	assert.Equal(t, tcell.GetColor(tui.ColorEmpty), background(t, sim, 1, 0))
}

func TestEditor_ClickOutsideGridIgnored(t *testing.T) {
	e, _ := newTestEditor(t, "..")
	e.HandleEvent(context.Background(), key('o'))
	e.HandleEvent(context.Background(), click(5, 5))
	assert.Equal(t, 0, e.state.Grid.Count(domain.Obstacle))
}

func TestEditor_SolveAnimatesPath(t *testing.T) {
	e, sim := newTestEditor(t, "S...G")
	ctx := context.Background()

	e.HandleEvent(ctx, key(' '))
	require.NotNil(t, e.ticker)
	assert.Contains(t, e.message, "Path found: 4 steps")

	e.advance()
	e.Draw()
	assert.Equal(t, tcell.GetColor(tui.ColorPath), background(t, sim, 0, 1))
	assert.Equal(t, tcell.GetColor(tui.ColorEmpty), background(t, sim, 0, 2), "not revealed yet")

	e.advance()
	e.advance()
	assert.Nil(t, e.ticker, "ticker stops after the last frame")
	_, phase := e.player.Current()
	assert.Equal(t, animation.Done, phase)

	e.Draw()
	assert.Equal(t, tcell.GetColor(tui.ColorStart), background(t, sim, 0, 0))
	assert.Equal(t, tcell.GetColor(tui.ColorPath), background(t, sim, 0, 3))
	assert.Equal(t, tcell.GetColor(tui.ColorGoal), background(t, sim, 0, 4))
}

func TestEditor_EditCancelsAnimation(t *testing.T) {
	e, _ := newTestEditor(t, "S...G", ".....")
	ctx := context.Background()

	e.HandleEvent(ctx, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	e.advance()
	require.NotEmpty(t, e.player.Revealed())

	e.HandleEvent(ctx, key('e')) // mode changes keep the run
	assert.NotEmpty(t, e.player.Revealed())

	e.HandleEvent(ctx, click(1, 1))
	assert.Empty(t, e.player.Revealed())
	assert.Nil(t, e.ticker)
	assert.Equal(t, domain.StatusUnsolved, e.state.Status)
}

func TestEditor_SolveMessages(t *testing.T) {
	e, sim := newTestEditor(t, "...")
	ctx := context.Background()

	e.HandleEvent(ctx, key(' '))
	assert.Equal(t, domain.MsgMissingEndpoint, e.message)

	e.state.Grid, _ = domain.ParseGrid([]string{"S#G"})
	e.HandleEvent(ctx, key(' '))
	assert.Equal(t, domain.MsgNoPath, e.message)
	assert.Nil(t, e.ticker)

	e.Draw()
	cells, w, _ := sim.GetContents()
	line := make([]rune, 0, w)
	for _, c := range cells[3*w : 4*w] {
		if len(c.Runes) > 0 {
			line = append(line, c.Runes[0])
		}
	}
	assert.Contains(t, string(line), domain.MsgNoPath)
}

func TestEditor_ResizePrompt(t *testing.T) {
	e, _ := newTestEditor(t, "S.", ".G")
	ctx := context.Background()
	enter := tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)

	e.HandleEvent(ctx, key(':'))
	assert.Equal(t, InputCommand, e.input)
	for _, r := range "4 39" {
		e.HandleEvent(ctx, key(r))
	}
	e.HandleEvent(ctx, tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	assert.False(t, e.HandleEvent(ctx, key('q')), "q is text inside the prompt")
	e.HandleEvent(ctx, tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	e.HandleEvent(ctx, enter)

	assert.Equal(t, InputNormal, e.input)
	assert.Equal(t, 4, e.state.Grid.Width())
	assert.Equal(t, 3, e.state.Grid.Height())
	_, ok := e.state.Grid.Start()
	assert.False(t, ok, "resize clears the maze")

	e.HandleEvent(ctx, key(':'))
	for _, r := range "a b" {
		e.HandleEvent(ctx, key(r))
	}
	e.HandleEvent(ctx, enter)
	assert.Equal(t, domain.MsgInvalidInput, e.message)

	e.HandleEvent(ctx, key(':'))
	e.HandleEvent(ctx, key('0'))
	e.HandleEvent(ctx, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.Equal(t, InputNormal, e.input)
	assert.Equal(t, 4, e.state.Grid.Width(), "escape discards the prompt")
}

func TestEditor_GrowShrinkAndRandomize(t *testing.T) {
	e, _ := newTestEditor(t, ".")
	ctx := context.Background()

	e.HandleEvent(ctx, key('-'))
	assert.Equal(t, domain.MsgInvalidDimension, e.message)
	assert.Equal(t, 1, e.state.Grid.Width())

	for i := 0; i < 7; i++ {
		e.HandleEvent(ctx, key('+'))
	}
	assert.Equal(t, 8, e.state.Grid.Width())
	assert.Equal(t, 8, e.state.Grid.Height())

	e.HandleEvent(ctx, key('x'))
	placed := e.state.Grid.Count(domain.Obstacle)
	assert.Greater(t, placed, 0)
	assert.LessOrEqual(t, placed, 16)

	e.HandleEvent(ctx, key('r'))
	assert.Equal(t, 0, e.state.Grid.Count(domain.Obstacle))
}

func TestEditor_QuitKeys(t *testing.T) {
	e, _ := newTestEditor(t, ".")
	ctx := context.Background()
	assert.True(t, e.HandleEvent(ctx, key('q')))
	assert.True(t, e.HandleEvent(ctx, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, e.HandleEvent(ctx, tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
}

func TestEditor_Run(t *testing.T) {
	e, sim := newTestEditor(t, "S...G")

	done := make(chan error, 1)
	go func() { done <- e.Run(context.Background()) }()

	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("editor did not quit")
	}
	assert.Equal(t, domain.StatusSolved, e.state.Status)
}

func TestEditor_RunStopsOnContext(t *testing.T) {
	e, _ := newTestEditor(t, ".")
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("editor ignored cancellation")
	}
}
