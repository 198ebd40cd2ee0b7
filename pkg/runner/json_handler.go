package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
// Each output event is one JSON object per line. Input lines may be plain REPL text,
// a JSON string, or a JSONCommand object.
type JSONHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Encoder *json.Encoder
}

// JSONCommand is the object form of a REPL line.
type JSONCommand struct {
	Command string  `json:"command"`
	Row     *int    `json:"row,omitempty"`
	Col     *int    `json:"col,omitempty"`
	Width   *int    `json:"width,omitempty"`
	Height  *int    `json:"height,omitempty"`
	Mode    string  `json:"mode,omitempty"`
	Seed    *uint64 `json:"seed,omitempty"`
}

// Line renders the command in REPL syntax.
func (c JSONCommand) Line() string {
	parts := []string{c.Command}
	if c.Mode != "" {
		parts = append(parts, c.Mode)
	}
	if c.Row != nil && c.Col != nil {
		parts = append(parts, fmt.Sprint(*c.Row), fmt.Sprint(*c.Col))
	}
	if c.Width != nil && c.Height != nil {
		parts = append(parts, fmt.Sprint(*c.Width), fmt.Sprint(*c.Height))
	}
	if c.Seed != nil {
		parts = append(parts, fmt.Sprint(*c.Seed))
	}
	return strings.Join(parts, " ")
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Output(ctx context.Context, ev Event) error {
	return h.Encoder.Encode(ev)
}

func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	text, err := h.Reader.ReadString('\n')
	if err != nil && (err != io.EOF || text == "") {
		return "", err
	}
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "{") {
		var cmd JSONCommand
		if err := json.Unmarshal([]byte(text), &cmd); err != nil {
			return "", fmt.Errorf("decode command: %w", err)
		}
		return cmd.Line(), nil
	}

	var val string
	if err := json.Unmarshal([]byte(text), &val); err == nil {
		return val, nil
	}
	return text, nil
}

// Animated is false: JSON clients receive the full path in the solve result.
func (h *JSONHandler) Animated() bool {
	return false
}
