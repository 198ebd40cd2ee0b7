package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/Rangchakdv/MazeSolver/pkg/domain"
	"github.com/muesli/termenv"
)

// GridRenderer draws a maze snapshot, including its path, as terminal text.
type GridRenderer func(domain.Snapshot) string

// ContentRenderer transforms markdown before it is printed (help text).
type ContentRenderer func(string) (string, error)

// TextHandler implements the interactive terminal interface.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Grid     GridRenderer
	Markdown ContentRenderer
	Prompt   string

	// Redraw moves the cursor back over the previous drawing for animation frames,
	// so a path grows in place. Only meaningful on a real terminal.
	Redraw bool

	lastHeight int
	inputChan  chan inputResult
	startOnce  sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithGridRenderer configures how snapshots are drawn.
func WithGridRenderer(r GridRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Grid = r
	}
}

// WithMarkdownRenderer configures the help renderer.
func WithMarkdownRenderer(r ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Markdown = r
	}
}

// WithPrompt sets the prompt printed before each read.
func WithPrompt(prompt string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Prompt = prompt
	}
}

// WithRedraw enables in-place animation.
func WithRedraw(redraw bool) TextHandlerOption {
	return func(h *TextHandler) {
		h.Redraw = redraw
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
		Grid:   PlainGrid,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

func (h *TextHandler) pump() {
	for {
		text, err := h.Reader.ReadString('\n')
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}
		if err != nil {
			if err != io.EOF {
				h.inputChan <- inputResult{err: err}
			}
			close(h.inputChan)
			return
		}
	}
}

// Input reads a line, returning early with ctx.Err() when ctx is cancelled.
func (h *TextHandler) Input(ctx context.Context) (string, error) {
	h.initPump()
	if h.Prompt != "" {
		fmt.Fprint(h.Writer, h.Prompt)
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-h.inputChan:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			return "", res.err
		}
		return strings.TrimRight(res.text, "\r\n"), nil
	}
}

func (h *TextHandler) Output(ctx context.Context, ev Event) error {
	switch ev.Kind {
	case EventFrame:
		if h.Redraw && h.lastHeight > 0 {
			termenv.NewOutput(h.Writer).CursorPrevLine(h.lastHeight)
		}
		return h.drawGrid(ev.State)

	case EventHelp:
		text := ev.Message
		if h.Markdown != nil {
			if rendered, err := h.Markdown(text); err == nil {
				text = rendered
			}
		}
		_, err := fmt.Fprintln(h.Writer, strings.TrimRight(text, "\n"))
		return err

	case EventError:
		h.lastHeight = 0
		_, err := fmt.Fprintln(h.Writer, ev.Message)
		return err

	case EventBye:
		return nil

	default:
		if ev.Message != "" {
			if _, err := fmt.Fprintln(h.Writer, ev.Message); err != nil {
				return err
			}
		}
		return h.drawGrid(ev.State)
	}
}

func (h *TextHandler) Animated() bool {
	return h.Redraw
}

func (h *TextHandler) drawGrid(snap *domain.Snapshot) error {
	if snap == nil {
		return nil
	}
	text := strings.TrimRight(h.Grid(*snap), "\n")
	h.lastHeight = strings.Count(text, "\n") + 1
	_, err := fmt.Fprintln(h.Writer, text)
	return err
}

// PlainGrid draws the snapshot rows with path cells marked '*'.
func PlainGrid(snap domain.Snapshot) string {
	rows := make([][]rune, len(snap.Rows))
	for r, line := range snap.Rows {
		rows[r] = []rune(line)
	}
	for _, p := range snap.Path {
		if p.Row < 0 || p.Row >= len(rows) || p.Col < 0 || p.Col >= len(rows[p.Row]) {
			continue
		}
		if rows[p.Row][p.Col] == domain.Empty.Symbol() {
			rows[p.Row][p.Col] = '*'
		}
	}
	var sb strings.Builder
	for _, line := range rows {
		sb.WriteString(string(line))
		sb.WriteByte('\n')
	}
	return sb.String()
}
