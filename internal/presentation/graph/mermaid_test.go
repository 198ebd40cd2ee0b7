package graph_test

import (
	"strings"
	"testing"

	"github.com/Rangchakdv/MazeSolver/internal/presentation/graph"
	"github.com/Rangchakdv/MazeSolver/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(t *testing.T, rows ...string) domain.Snapshot {
	t.Helper()
	g, err := domain.ParseGrid(rows)
	require.NoError(t, err)
	return (&domain.State{Grid: g}).Snapshot()
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name        string
		rows        []string
		contains    []string
		notContains []string
	}{
		{
			name: "Endpoint Shapes",
			rows: []string{"S.G"},
			contains: []string{
				`c0_0(("0,0"))`,
				`c0_1["0,1"]`,
				`c0_2((("0,2")))`,
			},
		},
		{
			name:        "Obstacles Are Omitted",
			rows:        []string{"S#G"},
			contains:    []string{"c0_0", "c0_2"},
			notContains: []string{"c0_1", "---"},
		},
		{
			name: "Edges Right And Down",
			rows: []string{"..", ".."},
			contains: []string{
				"c0_0 --- c0_1",
				"c0_0 --- c1_0",
				"c0_1 --- c1_1",
				"c1_0 --- c1_1",
			},
			notContains: []string{"c0_1 --- c0_0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := graph.GenerateMermaid(snapshot(t, tt.rows...), nil)
			assert.True(t, strings.HasPrefix(out, "graph TD\n"))
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	snap := snapshot(t, "S..", "#.G")
	cur := domain.Pos(0, 1)
	out := graph.GenerateMermaid(snap, &graph.Overlay{
		Path:    domain.Path{domain.Pos(0, 0), domain.Pos(0, 1), domain.Pos(0, 1), domain.Pos(1, 0)},
		Current: &cur,
	})

	assert.Contains(t, out, "classDef path")
	assert.Equal(t, 1, strings.Count(out, "class c0_1 path;"), "deduplicated")
	assert.NotContains(t, out, "class c1_0 path;", "obstacle cells are not styled")
	assert.Contains(t, out, "class c0_1 current;")
}
