package commands

import (
	"context"
	"log/slog"

	"planner/internal/metrics"
)

// persistAfterMutation saves a mutation that already succeeded in memory. A failed
// save is logged and counted but never reported as a command failure; the caller
// returns Persisted=false instead.
func persistAfterMutation(ctx context.Context, logger *slog.Logger, operation string, save func() error) bool {
	if err := save(); err != nil {
		logger.WarnContext(ctx, "mutation applied but not persisted",
			"operation", operation,
			"error", err,
		)
		metrics.PersistenceFailures.WithLabelValues(operation).Inc()
		return false
	}
	return true
}

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", component)
}
