package run

import (
	"context"
	"log/slog"
	"time"

	"github.com/relay-agents/relay/ent"
	"github.com/relay-agents/relay/ent/chatsession"
	"github.com/relay-agents/relay/pkg/config"
	"github.com/relay-agents/relay/pkg/models"
	"github.com/relay-agents/relay/pkg/services"
)

// staleReason is the error message recorded when a reader declares a
// worker dead.
const staleReason = "timed out"

// Reader serves resumable event reads: a long poll over the event log
// keyed by an exclusive event-id cursor. The reader is also where dead
// workers are detected, since a stuck consumer is the one who notices.
type Reader struct {
	sessions *services.SessionService
	events   *services.EventService

	pollTimeout  time.Duration
	pollInterval time.Duration
	staleMax     time.Duration
	logger       *slog.Logger
}

// NewReader creates a reader with the configured long-poll envelope.
func NewReader(cfg *config.Config, sessions *services.SessionService, events *services.EventService) *Reader {
	return &Reader{
		sessions:     sessions,
		events:       events,
		pollTimeout:  cfg.LongPollTimeout,
		pollInterval: cfg.LongPollInterval,
		staleMax:     cfg.StaleSessionMax,
		logger:       slog.Default().With("component", "reader"),
	}
}

// List returns the session status and the events with id greater than
// afterID, in id order. When no events exist yet and the session is
// still running, the call blocks up to the poll timeout waiting for new
// ones. Two calls with the same cursor and no intervening appends
// return the same result. The stale-worker probe runs before anything
// is returned, so a lagging reader records a dead worker instead of
// silently draining its backlog.
func (r *Reader) List(ctx context.Context, sessionID string, afterID int) (chatsession.Status, []models.EventRecord, error) {
	deadline := time.Now().Add(r.pollTimeout)

	for {
		sess, err := r.sessions.Get(ctx, sessionID)
		if err != nil {
			return "", nil, err
		}

		if sess.Status == chatsession.StatusRunning && r.isStale(sess) {
			if err := r.recoverStale(ctx, sessionID); err != nil {
				return "", nil, err
			}
			// Re-read so the result reflects the terminal status and
			// event, whichever reader won the transition.
			continue
		}

		rows, err := r.events.ListAfter(ctx, sessionID, afterID)
		if err != nil {
			return "", nil, err
		}
		if len(rows) > 0 {
			return sess.Status, services.Records(rows), nil
		}
		if sess.Status != chatsession.StatusRunning || time.Now().After(deadline) {
			return sess.Status, []models.EventRecord{}, nil
		}

		select {
		case <-ctx.Done():
			return "", nil, ctx.Err()
		case <-time.After(r.pollInterval):
		}
	}
}

// isStale reports whether a running session's worker heartbeat is old
// enough to declare the worker dead.
func (r *Reader) isStale(sess *ent.ChatSession) bool {
	last := sess.CreatedAt
	if sess.LastInteractionAt != nil {
		last = *sess.LastInteractionAt
	}
	return time.Since(last) > r.staleMax
}

// recoverStale transitions the session to error and appends the
// session_error event. Losing the transition race to another reader is
// not an error; the winner's event is already in the log.
func (r *Reader) recoverStale(ctx context.Context, sessionID string) error {
	won, err := r.sessions.MarkTimedOut(ctx, sessionID, staleReason)
	if err != nil {
		return err
	}
	if !won {
		return nil
	}

	r.logger.Warn("Recovered stale session", "session_id", sessionID)
	_, err = r.events.Append(ctx, sessionID, models.EventSessionError,
		models.EncodePayload(models.SessionOutcomePayload{Reason: staleReason}))
	return err
}
