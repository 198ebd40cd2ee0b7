package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/Rangchakdv/MazeSolver/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONHandler_Input(t *testing.T) {
	input := strings.Join([]string{
		`{"command":"obstacle","row":1,"col":2}`,
		`{"command":"resize","width":8,"height":6}`,
		`{"command":"mode","mode":"goal"}`,
		`{"command":"random","seed":7}`,
		`"solve"`,
		`show`,
	}, "\n")
	handler := NewJSONHandler(strings.NewReader(input), io.Discard)
	ctx := context.Background()

	for _, want := range []string{"obstacle 1 2", "resize 8 6", "mode goal", "random 7", "solve", "show"} {
		got, err := handler.Input(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := handler.Input(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestJSONHandler_InputBadObject(t *testing.T) {
	handler := NewJSONHandler(strings.NewReader("{not json}\n"), io.Discard)
	_, err := handler.Input(context.Background())
	assert.Error(t, err)
}

func TestJSONHandler_OutputIsNDJSON(t *testing.T) {
	out := &bytes.Buffer{}
	handler := NewJSONHandler(strings.NewReader(""), out)
	ctx := context.Background()

	snap := domain.Snapshot{Width: 2, Height: 1, Rows: []string{"SG"}, Status: domain.StatusUnsolved}
	require.NoError(t, handler.Output(ctx, Event{Kind: EventResult, Command: "show", State: &snap}))
	require.NoError(t, handler.Output(ctx, Event{Kind: EventError, Message: domain.MsgNoPath}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "result", first["kind"])
	assert.Equal(t, "show", first["command"])
	state := first["state"].(map[string]any)
	assert.Equal(t, []any{"SG"}, state["rows"])
	assert.Equal(t, "none", state["mode"])

	assert.JSONEq(t, `{"kind":"error","message":"No path found!"}`, lines[1])
	assert.False(t, handler.Animated())
}
