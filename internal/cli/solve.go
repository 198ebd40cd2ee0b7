package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	mazesolver "github.com/Rangchakdv/MazeSolver"
	"github.com/Rangchakdv/MazeSolver/internal/presentation/graph"
	"github.com/Rangchakdv/MazeSolver/internal/presentation/tui"
	"github.com/Rangchakdv/MazeSolver/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Output formats of the solve command.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatMermaid = "mermaid"
)

// SolveOptions configures a one-shot solve.
type SolveOptions struct {
	RunOptions

	// Rows describes the maze as '/'-separated rows of S, G, # and '.'.
	// Empty generates a random maze with start top-left and goal bottom-right.
	Rows   string
	Seed   *uint64
	Format string
}

// SolveReport is the machine-readable result of a one-shot solve.
type SolveReport struct {
	Maze    domain.Snapshot `json:"maze" yaml:"maze"`
	Found   bool            `json:"found" yaml:"found"`
	Length  int             `json:"length" yaml:"length"`
	Visited int             `json:"visited" yaml:"visited"`
	Seed    *uint64         `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// Solve builds a maze, solves it once and prints the result in the requested format.
// An unreachable goal is reported, not returned as an error.
func Solve(ctx context.Context, opts SolveOptions) error {
	_, out := opts.streams()
	logger := NewLogger(opts.Debug, opts.Config.LogLevel, false)
	engine := createEngine(opts.Config, logger)

	state, seed, err := buildMaze(ctx, engine, opts)
	if err != nil {
		return err
	}

	outcome, err := engine.Apply(ctx, state, domain.Solve())
	if err != nil {
		return err
	}

	report := SolveReport{
		Maze:    state.Snapshot(),
		Found:   outcome.Found,
		Length:  state.Path.Steps(),
		Visited: outcome.Visited,
		Seed:    seed,
	}
	return writeReport(out, opts.Format, report)
}

func buildMaze(ctx context.Context, engine *mazesolver.Engine, opts SolveOptions) (*domain.State, *uint64, error) {
	if opts.Rows != "" {
		g, err := domain.ParseGrid(strings.Split(opts.Rows, "/"))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse rows: %w", err)
		}
		return &domain.State{SessionID: "solve", Grid: g, Status: domain.StatusUnsolved}, nil, nil
	}

	state, err := newMaze(engine, opts.Config.Width, opts.Config.Height)
	if err != nil {
		return nil, nil, err
	}
	state.SessionID = "solve"

	cmd := domain.RandomizeUnseeded()
	if opts.Seed != nil {
		cmd = domain.Randomize(*opts.Seed)
	}
	outcome, err := engine.Apply(ctx, state, cmd)
	if err != nil {
		return nil, nil, err
	}
	seed := outcome.Seed

	last := domain.Pos(state.Grid.Height()-1, state.Grid.Width()-1)
	for _, paint := range []domain.Command{
		domain.Paint(domain.ModeStart, domain.Pos(0, 0)),
		domain.Paint(domain.ModeGoal, last),
	} {
		if _, err := engine.Apply(ctx, state, paint); err != nil {
			return nil, nil, err
		}
	}
	return state, &seed, nil
}

func writeReport(w io.Writer, format string, report SolveReport) error {
	switch strings.ToLower(format) {
	case "", FormatText:
		return writeText(w, report)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case FormatMermaid:
		_, err := fmt.Fprintln(w, graph.GenerateMermaid(report.Maze, &graph.Overlay{Path: report.Maze.Path}))
		return err
	default:
		return fmt.Errorf("%w: unknown format %q", domain.ErrInvalidInput, format)
	}
}

func writeText(w io.Writer, report SolveReport) error {
	if _, err := fmt.Fprint(w, tui.Grid(ColorProfile(w))(report.Maze)); err != nil {
		return err
	}
	if report.Seed != nil {
		if _, err := fmt.Fprintf(w, "seed: %d\n", *report.Seed); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, tui.Status(report.Maze)); err != nil {
		return err
	}
	if !report.Found {
		return nil
	}
	_, err := fmt.Fprintf(w, "Path found: %d steps, %d cells explored.\n", report.Length, report.Visited)
	return err
}
