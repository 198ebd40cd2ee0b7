package cli

import (
	"context"
	"fmt"

	"github.com/Rangchakdv/MazeSolver/internal/presentation/screen"
	"github.com/gdamore/tcell/v2"
)

// RunEditor opens the full-screen mouse editor on s, or on the real terminal when s is nil.
// The screen is always restored before returning.
func RunEditor(ctx context.Context, opts RunOptions, s tcell.Screen) error {
	logger := NewLogger(opts.Debug, opts.Config.LogLevel, true)
	engine := createEngine(opts.Config, logger)

	state, err := newMaze(engine, opts.Config.Width, opts.Config.Height)
	if err != nil {
		return err
	}
	state.SessionID = "editor"

	if s == nil {
		if s, err = tcell.NewScreen(); err != nil {
			return fmt.Errorf("failed to open terminal: %w", err)
		}
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer s.Fini()

	ed := screen.New(s, engine, state,
		screen.WithLogger(logger),
		screen.WithStepDelay(opts.Config.Delay),
	)
	return handleExecutionError(ed.Run(ctx))
}
