package ports

import (
	"context"

	"github.com/Rangchakdv/MazeSolver/pkg/domain"
)

// Editor applies editor commands to a session state.
// Adapters (HTTP, MCP, REPL, screen) depend on this instead of the concrete engine.
type Editor interface {
	// Apply mutates state in place. On error the state is left unchanged.
	Apply(ctx context.Context, state *domain.State, cmd domain.Command) (domain.Outcome, error)
}
