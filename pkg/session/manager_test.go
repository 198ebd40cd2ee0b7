package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Rangchakdv/MazeSolver/pkg/adapters/memory"
	"github.com/Rangchakdv/MazeSolver/pkg/domain"
	"github.com/Rangchakdv/MazeSolver/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SlowStore simulates latency to provoke race conditions if locking is missing.
type SlowStore struct {
	*memory.Store
}

func (s SlowStore) Load(ctx context.Context, sessionID string) (*domain.State, error) {
	time.Sleep(2 * time.Millisecond)
	return s.Store.Load(ctx, sessionID)
}

func (s SlowStore) Save(ctx context.Context, sessionID string, state *domain.State) error {
	time.Sleep(2 * time.Millisecond)
	return s.Store.Save(ctx, sessionID, state)
}

func TestManager_UpdateSerializesWrites(t *testing.T) {
	manager := session.NewManager(SlowStore{memory.NewStore()})
	ctx := context.Background()
	id := "race-test"

	_, err := manager.LoadOrStart(ctx, id, 10, 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for col := 0; col < 10; col++ {
		wg.Add(1)
		go func(col int) {
			defer wg.Done()
			_, err := manager.Update(ctx, id, func(s *domain.State) error {
				return s.Grid.SetObstacle(domain.Pos(0, col))
			})
			assert.NoError(t, err)
		}(col)
	}
	wg.Wait()

	// Without the session lock some read-modify-write cycles would be lost.
	state, err := manager.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 10, state.Grid.Count(domain.Obstacle))
}

func TestManager_LoadOrStart(t *testing.T) {
	manager := session.NewManager(SlowStore{memory.NewStore()})
	ctx := context.Background()
	id := "atomic-init"

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			state, err := manager.LoadOrStart(ctx, id, 6, 4)
			assert.NoError(t, err)
			assert.NotNil(t, state)
		}()
	}
	wg.Wait()

	state, err := manager.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 6, state.Grid.Width())
	assert.Equal(t, id, state.SessionID)
}

func TestManager_Create(t *testing.T) {
	manager := session.NewManager(memory.NewStore(), session.WithIDGenerator(func() string { return "fixed" }))
	ctx := context.Background()

	state, err := manager.Create(ctx, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, "fixed", state.SessionID)

	ids, err := manager.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"fixed"}, ids)

	_, err = manager.Create(ctx, 0, 3)
	assert.ErrorIs(t, err, domain.ErrInvalidDimension)
}

func TestManager_CreateUsesUUIDs(t *testing.T) {
	manager := session.NewManager(memory.NewStore())
	a, err := manager.Create(context.Background(), 2, 2)
	require.NoError(t, err)
	b, err := manager.Create(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Len(t, a.SessionID, 36)
	assert.NotEqual(t, a.SessionID, b.SessionID)
}

func TestManager_UpdateFailureDoesNotSave(t *testing.T) {
	manager := session.NewManager(memory.NewStore())
	ctx := context.Background()
	_, err := manager.LoadOrStart(ctx, "m", 2, 2)
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = manager.Update(ctx, "m", func(s *domain.State) error {
		_ = s.Grid.SetObstacle(domain.Pos(0, 0))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	state, err := manager.Load(ctx, "m")
	require.NoError(t, err)
	assert.Equal(t, domain.Empty, state.Grid.At(domain.Pos(0, 0)))
}

func TestManager_UnknownSession(t *testing.T) {
	manager := session.NewManager(memory.NewStore())
	ctx := context.Background()

	_, err := manager.Update(ctx, "nope", func(*domain.State) error { return nil })
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, manager.Delete(ctx, "nope"), domain.ErrSessionNotFound)
}
