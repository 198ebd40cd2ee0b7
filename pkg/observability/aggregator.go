package observability

import (
	"context"
	"log/slog"

	"github.com/Rangchakdv/MazeSolver/pkg/domain"
)

// Combine merges hook sets into one. Each event is delivered to every set, in order.
func Combine(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var onEdit []func(context.Context, *domain.EditEvent)
	var onSolve []func(context.Context, *domain.SolveEvent)
	var onReject []func(context.Context, *domain.RejectEvent)

	for _, s := range sets {
		if s.OnEdit != nil {
			onEdit = append(onEdit, s.OnEdit)
		}
		if s.OnSolve != nil {
			onSolve = append(onSolve, s.OnSolve)
		}
		if s.OnReject != nil {
			onReject = append(onReject, s.OnReject)
		}
	}

	var combined domain.LifecycleHooks
	if len(onEdit) > 0 {
		combined.OnEdit = func(ctx context.Context, e *domain.EditEvent) {
			for _, fn := range onEdit {
				fn(ctx, e)
			}
		}
	}
	if len(onSolve) > 0 {
		combined.OnSolve = func(ctx context.Context, e *domain.SolveEvent) {
			for _, fn := range onSolve {
				fn(ctx, e)
			}
		}
	}
	if len(onReject) > 0 {
		combined.OnReject = func(ctx context.Context, e *domain.RejectEvent) {
			for _, fn := range onReject {
				fn(ctx, e)
			}
		}
	}
	return combined
}

// LoggingHooks logs every engine event.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnEdit: func(ctx context.Context, e *domain.EditEvent) {
			args := []any{"session_id", e.SessionID, "command", e.Command, "mode", e.Mode.String()}
			if e.Pos != nil {
				args = append(args, "pos", e.Pos.String())
			}
			logger.InfoContext(ctx, "maze_edit", args...)
		},
		OnSolve: func(ctx context.Context, e *domain.SolveEvent) {
			logger.InfoContext(ctx, "maze_solve",
				"session_id", e.SessionID,
				"found", e.Found,
				"length", e.Length,
				"visited", e.Visited,
				"duration", e.Duration,
			)
		},
		OnReject: func(ctx context.Context, e *domain.RejectEvent) {
			logger.WarnContext(ctx, "maze_reject", "session_id", e.SessionID, "command", e.Command, "error", e.Err)
		},
	}
}
