package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/Rangchakdv/MazeSolver/pkg/adapters/memory"
	"github.com/Rangchakdv/MazeSolver/pkg/domain"
)

func TestManager_LockLifecycle(t *testing.T) {
	mgr := NewManager(memory.NewStore())
	ctx := context.Background()
	count := 1000
	state, _ := domain.NewState(1, 1)

	for i := 0; i < count; i++ {
		sid := fmt.Sprintf("session-%d", i)
		_ = mgr.Save(ctx, sid, state)
		_ = mgr.Delete(ctx, sid)
	}

	if lockCount := len(mgr.locks); lockCount != 0 {
		t.Errorf("Memory Leak Detected: %d locks remaining in memory after Delete", lockCount)
	}
}
