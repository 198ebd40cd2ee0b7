package cli

import (
	"log/slog"

	mazesolver "github.com/Rangchakdv/MazeSolver"
	"github.com/Rangchakdv/MazeSolver/internal/config"
	"github.com/Rangchakdv/MazeSolver/pkg/domain"
	"github.com/Rangchakdv/MazeSolver/pkg/observability"
)

// createEngine builds the editor engine with the CLI conventions:
// the configured density, a fixed seed when the config pins one, and
// debug logging hooks chained before any extra hooks.
func createEngine(cfg config.Config, logger *slog.Logger, extra ...domain.LifecycleHooks) *mazesolver.Engine {
	opts := []mazesolver.Option{
		mazesolver.WithLogger(logger),
		mazesolver.WithDensity(cfg.Density),
	}

	if cfg.Seed != nil {
		seed := *cfg.Seed
		opts = append(opts, mazesolver.WithSeedSource(func() uint64 { return seed }))
	}

	hooks := append([]domain.LifecycleHooks{observability.LoggingHooks(logger)}, extra...)
	opts = append(opts, mazesolver.WithLifecycleHooks(observability.Combine(hooks...)))

	return mazesolver.New(opts...)
}
