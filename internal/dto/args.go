// Package dto holds the loosely typed argument shapes accepted by the tool adapters.
package dto

import (
	"fmt"

	"github.com/Rangchakdv/MazeSolver/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// SessionArgs addresses an existing maze.
type SessionArgs struct {
	SessionID string `json:"session_id" mapstructure:"session_id"`
}

// SizeArgs carries maze dimensions. Nil fields fall back to the defaults on create.
type SizeArgs struct {
	SessionID string `json:"session_id" mapstructure:"session_id"`
	Width     *int   `json:"width" mapstructure:"width"`
	Height    *int   `json:"height" mapstructure:"height"`
}

// CellArgs paints one cell.
type CellArgs struct {
	SessionID string `json:"session_id" mapstructure:"session_id"`
	Mode      string `json:"mode" mapstructure:"mode"`
	Row       int    `json:"row" mapstructure:"row"`
	Col       int    `json:"col" mapstructure:"col"`
}

// RandomizeArgs optionally fixes the seed.
type RandomizeArgs struct {
	SessionID string  `json:"session_id" mapstructure:"session_id"`
	Seed      *uint64 `json:"seed" mapstructure:"seed"`
}

// RenderArgs selects the drawing format: "text" (default), "mermaid" or "json".
type RenderArgs struct {
	SessionID string `json:"session_id" mapstructure:"session_id"`
	Format    string `json:"format" mapstructure:"format"`
}

// Decode copies raw tool arguments into out. Numbers may arrive as floats or strings.
func Decode(raw map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
