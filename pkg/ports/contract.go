package ports

import (
	"context"
	"testing"
	"time"

	"github.com/Rangchakdv/MazeSolver/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStateStoreContract runs a suite of tests to verify that a StateStore implementation
// adheres to the defined interface contract.
func RunStateStoreContract(t *testing.T, store StateStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	newState := func(t *testing.T) *domain.State {
		s, err := domain.NewState(4, 3)
		require.NoError(t, err)
		s.SessionID = sessionID
		return s
	}

	t.Run("Save and Load", func(t *testing.T) {
		state := newState(t)
		require.NoError(t, state.Grid.SetStart(domain.Pos(0, 0)))
		require.NoError(t, state.Grid.SetObstacle(domain.Pos(1, 1)))
		state.Mode = domain.ModeGoal

		err := store.Save(ctx, sessionID, state)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.True(t, state.Grid.Equal(loaded.Grid))
		assert.Equal(t, domain.ModeGoal, loaded.Mode)
	})

	t.Run("Isolation", func(t *testing.T) {
		state := newState(t)
		require.NoError(t, store.Save(ctx, sessionID, state))

		// Mutating the saved value or a loaded copy must not leak into the store.
		require.NoError(t, state.Grid.SetObstacle(domain.Pos(0, 0)))
		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, domain.Empty, loaded.Grid.At(domain.Pos(0, 0)))

		require.NoError(t, loaded.Grid.SetGoal(domain.Pos(2, 3)))
		again, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		_, ok := again.Grid.Goal()
		assert.False(t, ok)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sessionID, newState(t))
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		_ = store.Save(ctx, id1, newState(t))
		_ = store.Save(ctx, id2, newState(t))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
