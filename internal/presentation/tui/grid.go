package tui

import (
	"fmt"
	"strings"

	"github.com/Rangchakdv/MazeSolver/pkg/domain"
	"github.com/muesli/termenv"
)

// Cell colours of the editor.
const (
	ColorEmpty    = "#ffffff"
	ColorObstacle = "#000000"
	ColorStart    = "#00ff00"
	ColorGoal     = "#ff0000"
	ColorPath     = "#ffff00"
)

// PathSymbol marks path cells when the profile has no colours.
const PathSymbol = '*'

// Grid returns a renderer drawing each cell as a two-column coloured block.
// With the Ascii profile it falls back to the cell symbols, path cells drawn as PathSymbol.
func Grid(p termenv.Profile) func(domain.Snapshot) string {
	return func(snap domain.Snapshot) string {
		onPath := make(map[domain.Position]bool, len(snap.Path))
		for _, pos := range snap.Path {
			onPath[pos] = true
		}

		var sb strings.Builder
		for r, line := range snap.Rows {
			for c, sym := range []rune(line) {
				cell, err := domain.ParseSymbol(sym)
				if err != nil {
					cell = domain.Empty
				}
				path := onPath[domain.Pos(r, c)] && cell == domain.Empty
				sb.WriteString(drawCell(p, cell, path))
			}
			sb.WriteByte('\n')
		}
		return sb.String()
	}
}

func drawCell(p termenv.Profile, cell domain.CellState, path bool) string {
	if p == termenv.Ascii {
		if path {
			return string(PathSymbol)
		}
		return string(cell.Symbol())
	}
	return p.String("  ").Background(p.Color(CellColor(cell, path))).String()
}

// CellColor maps a cell to its hex colour. Path colouring only applies to empty cells.
func CellColor(cell domain.CellState, path bool) string {
	switch cell {
	case domain.Obstacle:
		return ColorObstacle
	case domain.Start:
		return ColorStart
	case domain.Goal:
		return ColorGoal
	}
	if path {
		return ColorPath
	}
	return ColorEmpty
}

// Status renders the one-line editor status: mode, size and the last solve result.
func Status(snap domain.Snapshot) string {
	line := fmt.Sprintf("mode: %s  size: %dx%d", snap.Mode, snap.Width, snap.Height)
	switch snap.Status {
	case domain.StatusSolved:
		line += fmt.Sprintf("  path: %d steps", snap.Length)
	case domain.StatusUnreachable:
		line += "  " + domain.MsgNoPath
	}
	return line
}
