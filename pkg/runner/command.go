package runner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rangchakdv/MazeSolver/pkg/domain"
)

// Meta is a REPL instruction that does not reach the engine.
type Meta int

const (
	MetaNone Meta = iota
	MetaShow
	MetaHelp
	MetaQuit
)

// Request is one parsed input line.
type Request struct {
	// Verb is the canonical command name, used in output events.
	Verb    string
	Command *domain.Command
	Meta    Meta
}

var paintVerbs = map[string]domain.EditMode{
	"obstacle": domain.ModeObstacle,
	"o":        domain.ModeObstacle,
	"start":    domain.ModeStart,
	"s":        domain.ModeStart,
	"goal":     domain.ModeGoal,
	"g":        domain.ModeGoal,
	"erase":    domain.ModeErase,
	"e":        domain.ModeErase,
}

// ParseRequest parses a REPL line such as "obstacle 2 3", "resize 10 8" or "solve".
// Blank lines parse to a zero Request.
func ParseRequest(line string) (Request, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Request{}, nil
	}
	verb := strings.ToLower(fields[0])
	args := fields[1:]

	if mode, ok := paintVerbs[verb]; ok {
		p, err := parsePosition(args)
		if err != nil {
			return Request{}, fmt.Errorf("%s: %w", verb, err)
		}
		cmd := domain.Paint(mode, p)
		return Request{Verb: mode.String(), Command: &cmd}, nil
	}

	switch verb {
	case "click":
		p, err := parsePosition(args)
		if err != nil {
			return Request{}, fmt.Errorf("click: %w", err)
		}
		cmd := domain.Click(p)
		return Request{Verb: verb, Command: &cmd}, nil

	case "mode":
		if len(args) != 1 {
			return Request{}, fmt.Errorf("mode: %w", domain.ErrInvalidMode)
		}
		mode, err := domain.ParseMode(args[0])
		if err != nil {
			return Request{}, err
		}
		cmd := domain.SetMode(mode)
		return Request{Verb: verb, Command: &cmd}, nil

	case "resize":
		w, h, err := parseDimensions(args)
		if err != nil {
			return Request{}, err
		}
		cmd := domain.Resize(w, h)
		return Request{Verb: verb, Command: &cmd}, nil

	case "reset", "clear":
		cmd := domain.Reset()
		return Request{Verb: "reset", Command: &cmd}, nil

	case "random", "randomize":
		cmd := domain.RandomizeUnseeded()
		if len(args) > 0 {
			seed, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return Request{}, fmt.Errorf("random: %w: seed %q", domain.ErrInvalidInput, args[0])
			}
			cmd = domain.Randomize(seed)
		}
		return Request{Verb: "randomize", Command: &cmd}, nil

	case "solve":
		cmd := domain.Solve()
		return Request{Verb: verb, Command: &cmd}, nil

	case "show", "print":
		return Request{Verb: "show", Meta: MetaShow}, nil
	case "help", "?":
		return Request{Verb: "help", Meta: MetaHelp}, nil
	case "quit", "exit", "q":
		return Request{Verb: "quit", Meta: MetaQuit}, nil
	}

	return Request{}, fmt.Errorf("%w: %q", domain.ErrUnknownCommand, verb)
}

// parseDimensions reads "W H". Non-integers are ErrInvalidInput, non-positive values
// ErrInvalidDimension.
func parseDimensions(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("resize: %w", domain.ErrInvalidInput)
	}
	w, errW := strconv.Atoi(args[0])
	h, errH := strconv.Atoi(args[1])
	if errW != nil || errH != nil {
		return 0, 0, fmt.Errorf("resize: %w: %q %q", domain.ErrInvalidInput, args[0], args[1])
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("resize: %w: %dx%d", domain.ErrInvalidDimension, w, h)
	}
	return w, h, nil
}

func parsePosition(args []string) (domain.Position, error) {
	if len(args) != 2 {
		return domain.Position{}, fmt.Errorf("%w: expected ROW COL", domain.ErrInvalidInput)
	}
	row, errR := strconv.Atoi(args[0])
	col, errC := strconv.Atoi(args[1])
	if errR != nil || errC != nil {
		return domain.Position{}, fmt.Errorf("%w: %q %q", domain.ErrInvalidInput, args[0], args[1])
	}
	return domain.Pos(row, col), nil
}
