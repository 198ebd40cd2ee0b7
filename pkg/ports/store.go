package ports

import (
	"context"

	"github.com/Rangchakdv/MazeSolver/pkg/domain"
)

// StateStore keeps maze sessions for the lifetime of the process.
type StateStore interface {
	// Save stores a copy of the state under sessionID.
	Save(ctx context.Context, sessionID string, state *domain.State) error

	// Load returns a copy of the stored state.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.State, error)

	// Delete removes the state for a given session ID.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of all stored sessions.
	List(ctx context.Context) ([]string, error)
}
