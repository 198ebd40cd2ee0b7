package mazesolver

import (
	"context"
	"log/slog"

	"github.com/Rangchakdv/MazeSolver/internal/runtime"
	"github.com/Rangchakdv/MazeSolver/pkg/domain"
)

// Version is the release version, overridden at build time with -ldflags.
var Version = "dev"

// SearchResult is the outcome of FindPath.
type SearchResult = runtime.SearchResult

// SearchOption configures FindPath.
type SearchOption = runtime.SearchOption

var (
	// WithSearchContext aborts a search once ctx is done.
	WithSearchContext = runtime.WithContext

	// WithOnVisit observes every cell a search dequeues.
	WithOnVisit = runtime.WithOnVisit
)

// FindPath returns a shortest 4-directional path between start and goal.
// Ties are broken by expanding neighbours up, down, left, right.
func FindPath(g domain.GridReader, start, goal domain.Position, opts ...SearchOption) (SearchResult, error) {
	return runtime.FindPath(g, start, goal, opts...)
}

// Solve runs FindPath between the grid's own start and goal cells.
// It returns domain.ErrMissingEndpoint when either is unset.
func Solve(g *domain.Grid, opts ...SearchOption) (SearchResult, error) {
	return runtime.Solve(g, opts...)
}

// Engine is the high-level entry point of the maze editor.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	density int
	seed    func() uint64
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithDensity sets the divisor of random obstacle placement (default 4, one attempt per four cells).
func WithDensity(density int) Option {
	return func(e *Engine) {
		e.density = density
	}
}

// WithSeedSource sets the seed generator used when randomizing without an explicit seed.
func WithSeedSource(fn func() uint64) Option {
	return func(e *Engine) {
		e.seed = fn
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{density: domain.DefaultDensity}
	for _, opt := range opts {
		opt(eng)
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithHooks(eng.hooks),
		runtime.WithEngineLogger(eng.logger),
		runtime.WithDensity(eng.density),
		runtime.WithSeedSource(eng.seed),
	}
	eng.runtime = runtime.NewEngine(runtimeOpts...)
	return eng
}

// NewState creates an all-Empty session state.
func (e *Engine) NewState(width, height int) (*domain.State, error) {
	return domain.NewState(width, height)
}

// Apply executes an editor command against state. On error state is unchanged.
func (e *Engine) Apply(ctx context.Context, state *domain.State, cmd domain.Command) (domain.Outcome, error) {
	return e.runtime.Apply(ctx, state, cmd)
}
