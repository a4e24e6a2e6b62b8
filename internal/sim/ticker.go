// Package sim drives the periodic movement tick.
package sim

import (
	"context"
	"log/slog"
	"time"

	"github.com/skeld/the-alignment-problem/internal/game"
)

// Loop calls MoveCrew every interval until ctx is cancelled. It runs the
// exact same code path as the manual /simulate trigger, so timer-driven and
// request-driven mutation can never drift apart.
func Loop(ctx context.Context, state *game.State, interval time.Duration, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("movement ticker started", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			logger.Info("movement ticker stopped")
			return
		case <-ticker.C:
			state.MoveCrew()
		}
	}
}
