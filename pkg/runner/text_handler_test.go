package runner

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/Rangchakdv/MazeSolver/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextHandler_OutputResult(t *testing.T) {
	out := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader(""), out)

	snap := domain.Snapshot{
		Rows: []string{"S..", ".#.", "..G"},
		Path: domain.Path{domain.Pos(0, 0), domain.Pos(0, 1), domain.Pos(0, 2), domain.Pos(1, 2), domain.Pos(2, 2)},
	}
	err := handler.Output(context.Background(), Event{Kind: EventResult, Message: "Path found", State: &snap})
	require.NoError(t, err)

	assert.Equal(t, "Path found\nS**\n.#*\n..G\n", out.String())
}

func TestTextHandler_HelpUsesMarkdownRenderer(t *testing.T) {
	out := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader(""), out, WithMarkdownRenderer(func(s string) (string, error) {
		return "Rendered: " + s, nil
	}))

	require.NoError(t, handler.Output(context.Background(), Event{Kind: EventHelp, Message: "# Help"}))
	assert.Equal(t, "Rendered: # Help\n", out.String())
}

func TestTextHandler_RedrawMovesCursorForFrames(t *testing.T) {
	out := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader(""), out, WithRedraw(true))
	snap := &domain.Snapshot{Rows: []string{"S.G", "..."}}

	require.NoError(t, handler.Output(context.Background(), Event{Kind: EventResult, State: snap}))
	out.Reset()
	require.NoError(t, handler.Output(context.Background(), Event{Kind: EventFrame, State: snap}))

	assert.True(t, strings.HasPrefix(out.String(), "\x1b[2F"), "cursor moves back over the two grid lines, got %q", out.String())
	assert.True(t, handler.Animated())
}

func TestTextHandler_Input(t *testing.T) {
	out := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader("solve\r\nquit"), out, WithPrompt("> "))
	ctx := context.Background()

	line, err := handler.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, "solve", line)

	line, err = handler.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, "quit", line)

	_, err = handler.Input(ctx)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > ", out.String())
}

func TestTextHandler_InputCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	handler := NewTextHandler(pr, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := handler.Input(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
