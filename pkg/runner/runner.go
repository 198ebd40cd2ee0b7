package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Rangchakdv/MazeSolver/internal/logging"
	"github.com/Rangchakdv/MazeSolver/pkg/animation"
	"github.com/Rangchakdv/MazeSolver/pkg/domain"
	"github.com/Rangchakdv/MazeSolver/pkg/ports"
)

// Runner is the read-apply-print loop of the terminal editor.
// It uses an IOHandler strategy to abstract the interaction mode (Text vs JSON).
type Runner struct {
	Editor  ports.Editor
	Handler IOHandler
	Logger  *slog.Logger

	// Delay separates animation frames. Zero selects domain.DefaultStepDelay.
	Delay time.Duration

	player *animation.Player
}

// NewRunner creates a Runner reading commands from Stdin as text.
func NewRunner(editor ports.Editor, opts ...Option) *Runner {
	r := &Runner{
		Editor: editor,
		Logger: logging.NewNop(),
		player: animation.NewPlayer(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(nil, nil)
	}
	return r
}

// Run processes commands against state until quit, end of input, an interrupt at the
// prompt, or ctx cancellation. Rejected commands are reported and never end the loop.
func (r *Runner) Run(ctx context.Context, state *domain.State) error {
	signals := NewSignalManager(ctx)
	defer signals.Stop()

	if err := r.emit(ctx, Event{Kind: EventResult, Command: "show", State: snapshot(state)}); err != nil {
		return err
	}

	for {
		current := signals.Context()
		line, err := r.Handler.Input(current)
		if err != nil {
			if errors.Is(err, io.EOF) || current.Err() != nil {
				return r.emit(ctx, Event{Kind: EventBye})
			}
			return fmt.Errorf("input error: %w", err)
		}

		quit, err := r.handleLine(signals, state, line)
		if err != nil {
			return err
		}
		if quit {
			return r.emit(ctx, Event{Kind: EventBye})
		}
	}
}

// handleLine processes one input line. It only returns an error when output fails.
func (r *Runner) handleLine(signals *SignalManager, state *domain.State, line string) (bool, error) {
	ctx := signals.Context()

	clean, err := SanitizeInput(line)
	if err != nil {
		return false, r.reject(ctx, "", err)
	}
	req, err := ParseRequest(clean)
	if err != nil {
		return false, r.reject(ctx, "", err)
	}

	switch req.Meta {
	case MetaQuit:
		return true, nil
	case MetaHelp:
		return false, r.emit(ctx, Event{Kind: EventHelp, Command: req.Verb, Message: HelpMarkdown})
	case MetaShow:
		return false, r.emit(ctx, Event{Kind: EventResult, Command: req.Verb, State: snapshot(state)})
	}
	if req.Command == nil {
		return false, nil
	}

	if req.Command.Kind != domain.CommandSetMode {
		r.player.Cancel()
	}

	out, err := r.Editor.Apply(ctx, state, *req.Command)
	if err != nil {
		return false, r.reject(ctx, req.Verb, err)
	}

	ev := Event{Kind: EventResult, Command: req.Verb, Outcome: &out, State: snapshot(state)}
	if !out.Searched {
		return false, r.emit(ctx, ev)
	}

	if !out.Found {
		ev.Message = domain.MsgNoPath
		return false, r.emit(ctx, ev)
	}
	ev.Message = fmt.Sprintf("Path found: %d steps, %d cells explored.", state.Path.Steps(), out.Visited)
	if !r.Handler.Animated() {
		return false, r.emit(ctx, ev)
	}

	ev.State.Path = nil
	if err := r.emit(ctx, ev); err != nil {
		return false, err
	}
	return false, r.animate(signals, state)
}

// animate reveals state.Path frame by frame. An interrupt skips to the full path.
func (r *Runner) animate(signals *SignalManager, state *domain.State) error {
	ctx := signals.Context()
	id := r.player.Start(state.Path)

	var outErr error
	err := r.player.Play(ctx, id, r.Delay, func(f animation.Frame) {
		if outErr != nil {
			return
		}
		snap := snapshot(state)
		snap.Path = r.player.Revealed()
		outErr = r.emit(ctx, Event{Kind: EventFrame, Frame: &f, State: snap})
	})
	if outErr != nil {
		return outErr
	}
	if err != nil && signals.Interrupted() {
		r.Logger.Debug("animation interrupted", "session_id", state.SessionID)
		signals.Reset()
		r.player.Cancel()
		return r.emit(signals.Context(), Event{Kind: EventFrame, State: snapshot(state)})
	}
	return nil
}

func (r *Runner) reject(ctx context.Context, verb string, err error) error {
	r.Logger.Debug("command rejected", "command", verb, "error", err)
	return r.emit(ctx, Event{Kind: EventError, Command: verb, Message: domain.UserMessage(err)})
}

func (r *Runner) emit(ctx context.Context, ev Event) error {
	if err := r.Handler.Output(ctx, ev); err != nil {
		return fmt.Errorf("output error: %w", err)
	}
	return nil
}

func snapshot(state *domain.State) *domain.Snapshot {
	snap := state.Snapshot()
	return &snap
}
