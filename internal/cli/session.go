package cli

import (
	"context"
	"fmt"

	mazesolver "github.com/Rangchakdv/MazeSolver"
	"github.com/Rangchakdv/MazeSolver/internal/presentation/tui"
	"github.com/Rangchakdv/MazeSolver/pkg/domain"
	"github.com/Rangchakdv/MazeSolver/pkg/runner"
)

// RunSession runs the line-oriented editor until quit, end of input or interrupt.
func RunSession(ctx context.Context, opts RunOptions) error {
	in, out := opts.streams()
	logger := NewLogger(opts.Debug, opts.Config.LogLevel, true)
	engine := createEngine(opts.Config, logger)

	state, err := engine.NewState(opts.Config.Width, opts.Config.Height)
	if err != nil {
		return fmt.Errorf("failed to create maze: %w", err)
	}
	state.SessionID = "repl"

	var handler runner.IOHandler
	if opts.JSON {
		handler = runner.NewJSONHandler(in, out)
	} else {
		profile := ColorProfile(out)
		style := ""
		if !IsTerminal(out) {
			style = "notty"
		}
		tui.PrintBanner(out, profile)
		printSystemMessage(out, "mazesolver %s: %dx%d maze, type 'help' for commands.", mazesolver.Version, state.Grid.Width(), state.Grid.Height())
		handler = runner.NewTextHandler(in, out,
			runner.WithGridRenderer(tui.Grid(profile)),
			runner.WithMarkdownRenderer(tui.NewRenderer(style)),
			runner.WithRedraw(IsTerminal(out)),
		)
	}

	r := runner.NewRunner(engine,
		runner.WithLogger(logger),
		runner.WithInputHandler(handler),
		runner.WithStepDelay(opts.Config.Delay),
	)
	logger.Debug("session started", "session_id", state.SessionID, "json", opts.JSON)
	return handleExecutionError(r.Run(ctx, state))
}

// newMaze builds the state used by one-shot commands.
func newMaze(engine *mazesolver.Engine, width, height int) (*domain.State, error) {
	state, err := engine.NewState(width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create maze: %w", err)
	}
	return state, nil
}
