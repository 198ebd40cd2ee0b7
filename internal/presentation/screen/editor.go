// Package screen implements the full-screen mouse-driven maze editor.
package screen

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Rangchakdv/MazeSolver/internal/logging"
	"github.com/Rangchakdv/MazeSolver/pkg/animation"
	"github.com/Rangchakdv/MazeSolver/pkg/domain"
	"github.com/Rangchakdv/MazeSolver/pkg/ports"
	"github.com/Rangchakdv/MazeSolver/pkg/runner"
	"github.com/gdamore/tcell/v2"
)

// InputMode represents what keystrokes currently mean.
type InputMode int

const (
	InputNormal  InputMode = iota // Keys select modes and run commands
	InputCommand                  // Keys fill the ":" resize prompt
)

// String returns the input mode name for display
func (m InputMode) String() string {
	switch m {
	case InputNormal:
		return "NORMAL"
	case InputCommand:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

// cellWidth is the number of terminal columns per maze cell, so cells look square.
const cellWidth = 2

// Editor draws a maze session on a tcell screen and applies mouse and key input to it.
type Editor struct {
	screen tcell.Screen
	editor ports.Editor
	state  *domain.State
	logger *slog.Logger
	delay  time.Duration

	player *animation.Player
	run    animation.RunID
	ticker *time.Ticker

	input         InputMode
	commandBuffer []rune
	message       string
}

// Option configures the Editor.
type Option func(*Editor)

// WithLogger sets the logger. The screen owns the terminal, so it should not write to it.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithStepDelay sets the pause between animation frames.
func WithStepDelay(delay time.Duration) Option {
	return func(e *Editor) {
		if delay > 0 {
			e.delay = delay
		}
	}
}

// New creates an editor over an initialised screen.
func New(s tcell.Screen, editor ports.Editor, state *domain.State, opts ...Option) *Editor {
	e := &Editor{
		screen: s,
		editor: editor,
		state:  state,
		logger: logging.NewNop(),
		delay:  domain.DefaultStepDelay,
		player: animation.NewPlayer(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run processes screen events until the user quits or ctx is done.
// The caller owns Init and Fini of the screen.
func (e *Editor) Run(ctx context.Context) error {
	e.screen.EnableMouse()
	defer e.screen.DisableMouse()
	defer e.stopTicker()

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go e.screen.ChannelEvents(events, quit)

	e.Draw()
	for {
		var tick <-chan time.Time
		if e.ticker != nil {
			tick = e.ticker.C
		}

		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if e.HandleEvent(ctx, ev) {
				return nil
			}
		case <-tick:
			e.advance()
		}
		e.Draw()
	}
}

// HandleEvent applies one screen event. It returns true when the editor should quit.
func (e *Editor) HandleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		e.screen.Sync()
	case *tcell.EventKey:
		if e.input == InputCommand {
			e.handleCommandKey(ctx, ev)
			return false
		}
		return e.handleNormalKey(ctx, ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return false
		}
		x, y := ev.Position()
		p := domain.Pos(y, x/cellWidth)
		if e.state.Grid.InBounds(p) {
			e.apply(ctx, domain.Click(p))
		}
	}
	return false
}

// handleNormalKey processes keys in normal mode
func (e *Editor) handleNormalKey(ctx context.Context, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		e.apply(ctx, domain.Solve())
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	g := e.state.Grid
	switch ev.Rune() {
	case 'q':
		return true
	case 'o':
		e.apply(ctx, domain.SetMode(domain.ModeObstacle))
	case 's':
		e.apply(ctx, domain.SetMode(domain.ModeStart))
	case 'g':
		e.apply(ctx, domain.SetMode(domain.ModeGoal))
	case 'e':
		e.apply(ctx, domain.SetMode(domain.ModeErase))
	case ' ':
		e.apply(ctx, domain.Solve())
	case 'r':
		e.apply(ctx, domain.Reset())
	case 'x':
		e.apply(ctx, domain.RandomizeUnseeded())
	case '+':
		e.apply(ctx, domain.Resize(g.Width()+1, g.Height()+1))
	case '-':
		e.apply(ctx, domain.Resize(g.Width()-1, g.Height()-1))
	case ':':
		e.input = InputCommand
		e.commandBuffer = e.commandBuffer[:0]
	}
	return false
}

// handleCommandKey processes keys of the resize prompt
func (e *Editor) handleCommandKey(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		e.input = InputNormal
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(e.commandBuffer) > 0 {
			e.commandBuffer = e.commandBuffer[:len(e.commandBuffer)-1]
		}
	case tcell.KeyEnter:
		e.input = InputNormal
		req, err := runner.ParseRequest("resize " + string(e.commandBuffer))
		if err != nil {
			e.message = domain.UserMessage(err)
			return
		}
		e.apply(ctx, *req.Command)
	case tcell.KeyRune:
		e.commandBuffer = append(e.commandBuffer, ev.Rune())
	}
}

func (e *Editor) apply(ctx context.Context, cmd domain.Command) {
	if cmd.Kind != domain.CommandSetMode {
		e.player.Cancel()
		e.stopTicker()
	}

	out, err := e.editor.Apply(ctx, e.state, cmd)
	if err != nil {
		e.logger.Debug("command rejected", "command", cmd.Kind, "error", err)
		e.message = domain.UserMessage(err)
		return
	}

	e.message = ""
	switch {
	case !out.Searched:
	case !out.Found:
		e.message = domain.MsgNoPath
	default:
		e.message = fmt.Sprintf("Path found: %d steps, %d cells explored.", e.state.Path.Steps(), out.Visited)
		e.run = e.player.Start(e.state.Path)
		if _, phase := e.player.Current(); phase == animation.Playing {
			e.ticker = time.NewTicker(e.delay)
		}
	}
}

// advance reveals the next path cell of the current run.
func (e *Editor) advance() {
	frame, ok := e.player.Step(e.run)
	if !ok || frame.Last() {
		e.stopTicker()
	}
}

func (e *Editor) stopTicker() {
	if e.ticker != nil {
		e.ticker.Stop()
		e.ticker = nil
	}
}
