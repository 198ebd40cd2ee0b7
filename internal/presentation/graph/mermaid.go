package graph

import (
	"fmt"
	"strings"

	"github.com/Rangchakdv/MazeSolver/pkg/domain"
)

// Overlay contains search data to visualize on the graph.
type Overlay struct {
	Path    domain.Path
	Current *domain.Position
}

// GenerateMermaid produces a Mermaid flowchart of the maze's search graph:
// one node per traversable cell and one undirected edge per pair of 4-adjacent
// traversable cells. Obstacles are omitted.
// It applies semantic styling:
// - Start: ((Circle))
// - Goal: (((Double circle)))
// - Default: [Rectangle]
// The overlay marks path cells and the current animation frame.
func GenerateMermaid(snap domain.Snapshot, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	open := func(r, c int) bool {
		if r < 0 || r >= len(snap.Rows) || c < 0 || c >= len(snap.Rows[r]) {
			return false
		}
		cell, err := domain.ParseSymbol(rune(snap.Rows[r][c]))
		return err == nil && cell.Traversable()
	}

	for r, line := range snap.Rows {
		for c := range line {
			if !open(r, c) {
				continue
			}
			p := domain.Pos(r, c)
			opener, closer := "[", "]"
			switch {
			case snap.Start != nil && *snap.Start == p:
				opener, closer = "((", "))"
			case snap.Goal != nil && *snap.Goal == p:
				opener, closer = "(((", ")))"
			}
			sb.WriteString(fmt.Sprintf("    %s%s\"%d,%d\"%s\n", nodeID(p), opener, r, c, closer))
		}
	}

	// Right and down edges only; each adjacency is written once.
	for r, line := range snap.Rows {
		for c := range line {
			if !open(r, c) {
				continue
			}
			from := domain.Pos(r, c)
			for _, d := range []domain.Direction{domain.Right, domain.Down} {
				to := from.Add(d)
				if open(to.Row, to.Col) {
					sb.WriteString(fmt.Sprintf("    %s --- %s\n", nodeID(from), nodeID(to)))
				}
			}
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast on both themes
		sb.WriteString("    classDef path fill:#ffff00,stroke:#a16207,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#f97316,stroke:#c2410c,stroke-width:4px,color:#000;\n")

		seen := make(map[domain.Position]bool, len(overlay.Path))
		for _, p := range overlay.Path {
			if seen[p] || !open(p.Row, p.Col) {
				continue
			}
			seen[p] = true
			sb.WriteString(fmt.Sprintf("    class %s path;\n", nodeID(p)))
		}

		if overlay.Current != nil && open(overlay.Current.Row, overlay.Current.Col) {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", nodeID(*overlay.Current)))
		}
	}

	return sb.String()
}

func nodeID(p domain.Position) string {
	return fmt.Sprintf("c%d_%d", p.Row, p.Col)
}
