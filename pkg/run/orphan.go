package run

import (
	"context"
	"log/slog"
	"time"

	"github.com/relay-agents/relay/pkg/models"
	"github.com/relay-agents/relay/pkg/services"
)

// RecoverOrphans fails running sessions whose heartbeat went silent,
// typically because a previous process died mid-run. Called once at
// startup, before the HTTP server begins accepting work.
func RecoverOrphans(ctx context.Context, sessions *services.SessionService, events *services.EventService, staleMax time.Duration) error {
	logger := slog.Default().With("component", "orphan-recovery")

	stale, err := sessions.ListStaleRunning(ctx, staleMax)
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		return nil
	}

	logger.Warn("Recovering orphaned sessions", "count", len(stale))
	for _, sess := range stale {
		won, err := sessions.MarkTimedOut(ctx, sess.ID, staleReason)
		if err != nil {
			logger.Error("Failed to recover orphaned session", "session_id", sess.ID, "error", err)
			continue
		}
		if !won {
			continue
		}
		if _, err := events.Append(ctx, sess.ID, models.EventSessionError,
			models.EncodePayload(models.SessionOutcomePayload{Reason: staleReason})); err != nil {
			logger.Error("Failed to append session_error for orphan", "session_id", sess.ID, "error", err)
		}
		logger.Info("Orphaned session marked errored", "session_id", sess.ID)
	}
	return nil
}
