package cli

import (
	"context"
	"log/slog"

	"github.com/aretw0/bitlab/pkg/domain"
)

// DebugHooks logs every lifecycle event at debug level.
func DebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnEvaluate: func(ctx context.Context, e *domain.GateEvent) {
			logger.DebugContext(ctx, "gate evaluated",
				"kind", e.Kind, "basis", e.Basis, "output", e.Output, "available", e.Available)
		},
		OnConvert: func(ctx context.Context, e *domain.ConvertEvent) {
			logger.DebugContext(ctx, "digits converted", "from", e.From, "to", e.To, "error", e.IsError)
		},
		OnClassify: func(ctx context.Context, e *domain.ClassifyEvent) {
			logger.DebugContext(ctx, "number classified", "matched", e.Matched, "error", e.IsError)
		},
		OnExplain: func(ctx context.Context, e *domain.ExplainEvent) {
			logger.DebugContext(ctx, "explanation served",
				"topic", e.Topic, "cached", e.Cached, "duration", e.Duration, "error", e.IsError)
		},
	}
}
