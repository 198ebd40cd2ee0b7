package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/Rangchakdv/MazeSolver/internal/logging"
	"github.com/Rangchakdv/MazeSolver/pkg/domain"
)

// Engine applies editor commands to session states.
// It is stateless and safe for concurrent use on distinct states.
type Engine struct {
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	density int
	seed    func() uint64
	now     func() time.Time
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithHooks registers lifecycle callbacks.
func WithHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithEngineLogger sets the logger used for debug traces.
func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithDensity sets the obstacle density divisor used by Randomize.
func WithDensity(density int) EngineOption {
	return func(e *Engine) {
		e.density = density
	}
}

// WithSeedSource sets the generator of seeds for unseeded Randomize commands.
func WithSeedSource(fn func() uint64) EngineOption {
	return func(e *Engine) {
		if fn != nil {
			e.seed = fn
		}
	}
}

// NewEngine creates a new engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger:  logging.NewNop(),
		density: domain.DefaultDensity,
		seed:    rand.Uint64,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply executes cmd against state, mutating it in place.
// A rejected command returns a wrapped domain sentinel and leaves state unchanged.
func (e *Engine) Apply(ctx context.Context, state *domain.State, cmd domain.Command) (domain.Outcome, error) {
	if state == nil || state.Grid == nil {
		return domain.Outcome{}, fmt.Errorf("apply %s: nil state", cmd.Kind)
	}

	out, err := e.apply(ctx, state, cmd)
	if err != nil {
		e.logger.Debug("command rejected", "session_id", state.SessionID, "command", cmd.Kind, "error", err)
		if e.hooks.OnReject != nil {
			e.hooks.OnReject(ctx, &domain.RejectEvent{
				EventBase: e.base(domain.EventReject, state),
				Command:   cmd.Kind,
				Err:       err,
			})
		}
		return domain.Outcome{}, err
	}

	if out.Changed && cmd.Kind != domain.CommandSolve && e.hooks.OnEdit != nil {
		ev := &domain.EditEvent{
			EventBase: e.base(domain.EventEdit, state),
			Command:   cmd.Kind,
			Mode:      state.Mode,
			Width:     state.Grid.Width(),
			Height:    state.Grid.Height(),
		}
		if cmd.Kind == domain.CommandPaint {
			pos := cmd.Pos
			ev.Pos = &pos
			ev.Mode = paintMode(state, cmd)
		}
		e.hooks.OnEdit(ctx, ev)
	}
	return out, nil
}

func (e *Engine) apply(ctx context.Context, state *domain.State, cmd domain.Command) (domain.Outcome, error) {
	g := state.Grid
	switch cmd.Kind {
	case domain.CommandPaint:
		mode := paintMode(state, cmd)
		var err error
		switch mode {
		case domain.ModeNone:
			return domain.Outcome{}, nil
		case domain.ModeObstacle:
			err = g.SetObstacle(cmd.Pos)
		case domain.ModeStart:
			err = g.SetStart(cmd.Pos)
		case domain.ModeGoal:
			err = g.SetGoal(cmd.Pos)
		case domain.ModeErase:
			err = g.Erase(cmd.Pos)
		default:
			err = fmt.Errorf("%w: %s", domain.ErrInvalidMode, mode)
		}
		if err != nil {
			return domain.Outcome{}, fmt.Errorf("paint %s: %w", mode, err)
		}
		state.Invalidate()
		return domain.Outcome{Changed: true}, nil

	case domain.CommandSetMode:
		if cmd.Mode == nil {
			return domain.Outcome{}, fmt.Errorf("set mode: %w", domain.ErrInvalidMode)
		}
		if *cmd.Mode > domain.ModeErase {
			return domain.Outcome{}, fmt.Errorf("set mode: %w: %s", domain.ErrInvalidMode, *cmd.Mode)
		}
		changed := state.Mode != *cmd.Mode
		state.Mode = *cmd.Mode
		return domain.Outcome{Changed: changed}, nil

	case domain.CommandResize:
		if err := g.Resize(cmd.Width, cmd.Height); err != nil {
			return domain.Outcome{}, fmt.Errorf("resize: %w", err)
		}
		state.Invalidate()
		return domain.Outcome{Changed: true}, nil

	case domain.CommandReset:
		g.Clear()
		state.Invalidate()
		return domain.Outcome{Changed: true}, nil

	case domain.CommandRandomize:
		seed := cmd.Seed
		if !cmd.HasSeed {
			seed = e.seed()
		}
		placed := g.RandomizeObstacles(rand.New(rand.NewPCG(seed, seed)), e.density)
		state.Invalidate()
		e.logger.Debug("obstacles placed", "session_id", state.SessionID, "seed", seed, "placed", placed)
		return domain.Outcome{Changed: true, Placed: placed, Seed: seed}, nil

	case domain.CommandSolve:
		return e.solve(ctx, state)

	default:
		return domain.Outcome{}, fmt.Errorf("%w: %q", domain.ErrUnknownCommand, cmd.Kind)
	}
}

func (e *Engine) solve(ctx context.Context, state *domain.State) (domain.Outcome, error) {
	began := e.now()
	res, err := Solve(state.Grid, WithContext(ctx))
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("solve: %w", err)
	}

	state.Path = res.Path
	state.Visited = res.Visited
	if res.Found {
		state.Status = domain.StatusSolved
	} else {
		state.Status = domain.StatusUnreachable
	}

	if e.hooks.OnSolve != nil {
		e.hooks.OnSolve(ctx, &domain.SolveEvent{
			EventBase: e.base(domain.EventSolve, state),
			Found:     res.Found,
			Length:    res.Path.Steps(),
			Visited:   res.Visited,
			Duration:  e.now().Sub(began),
		})
	}
	return domain.Outcome{Changed: true, Searched: true, Found: res.Found, Visited: res.Visited}, nil
}

func (e *Engine) base(t domain.EventType, state *domain.State) domain.EventBase {
	return domain.EventBase{
		Timestamp: e.now(),
		Type:      t,
		SessionID: state.SessionID,
	}
}

func paintMode(state *domain.State, cmd domain.Command) domain.EditMode {
	if cmd.Mode != nil {
		return *cmd.Mode
	}
	return state.Mode
}
