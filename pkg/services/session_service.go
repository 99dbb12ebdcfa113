package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/relay-agents/relay/ent"
	"github.com/relay-agents/relay/ent/chatsession"
	"github.com/relay-agents/relay/pkg/models"
)

// writeTimeout bounds status writes so a stuck pool cannot wedge a run.
const writeTimeout = 5 * time.Second

// SessionService manages the session row: creation, lifecycle status,
// continuation, and the terminal transitions. The status column is the
// only cross-process coordination point, so every transition goes
// through here.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// Create inserts a new session in status running.
func (s *SessionService) Create(ctx context.Context, id, initialMessage string) (*ent.ChatSession, error) {
	if id == "" {
		return nil, NewValidationError("session_id", "must not be empty")
	}
	if initialMessage == "" {
		return nil, NewValidationError("message", "must not be empty")
	}

	now := time.Now()
	sess, err := s.client.ChatSession.Create().
		SetID(id).
		SetInitialMessage(initialMessage).
		SetStatus(chatsession.StatusRunning).
		SetCreatedAt(now).
		SetLastInteractionAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return sess, nil
}

// Get retrieves a session by id.
func (s *SessionService) Get(ctx context.Context, id string) (*ent.ChatSession, error) {
	sess, err := s.client.ChatSession.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}

// List returns a page of session summaries, newest first.
func (s *SessionService) List(ctx context.Context, params models.SessionListParams) (*models.SessionListResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 25
	}

	total, err := s.client.ChatSession.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	rows, err := s.client.ChatSession.Query().
		Order(ent.Desc(chatsession.FieldCreatedAt)).
		Offset((params.Page - 1) * params.PageSize).
		Limit(params.PageSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	summaries := make([]models.SessionSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, models.NewSessionSummary(row))
	}

	return &models.SessionListResult{
		Sessions: summaries,
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	}, nil
}

// Reactivate transitions a terminal session back to running for a
// continuation turn, clearing completed_at and any previous error.
// The transition is conditional on the session not already running, so
// of two concurrent continuations exactly one proceeds; the other gets
// ErrConflict.
func (s *SessionService) Reactivate(ctx context.Context, id string) (*ent.ChatSession, error) {
	n, err := s.client.ChatSession.Update().
		Where(
			chatsession.IDEQ(id),
			chatsession.StatusNEQ(chatsession.StatusRunning),
		).
		SetStatus(chatsession.StatusRunning).
		ClearCompletedAt().
		ClearErrorMessage().
		SetLastInteractionAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reactivate session: %w", err)
	}
	if n == 0 {
		if _, err := s.Get(ctx, id); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("session %s: %w", id, ErrConflict)
	}

	return s.Get(ctx, id)
}

// IsRunning reports whether the session's current status is running.
// The event queue's abort poll calls this on a tight interval.
func (s *SessionService) IsRunning(ctx context.Context, id string) (bool, error) {
	sess, err := s.client.ChatSession.Query().
		Where(chatsession.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, fmt.Errorf("session %s: %w", id, ErrNotFound)
		}
		return false, fmt.Errorf("failed to read session status: %w", err)
	}
	return sess.Status == chatsession.StatusRunning, nil
}

// Complete marks a session completed, storing the serialized final
// message history, aggregate usage, and the event count observed by the
// queue. Uses a detached context: terminal writes must land even when
// the run context is already cancelled.
func (s *SessionService) Complete(httpCtx context.Context, id string, response []models.Message, usage *models.Usage, eventCount int) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	serialized, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to serialize response: %w", err)
	}

	update := s.client.ChatSession.UpdateOneID(id).
		SetStatus(chatsession.StatusCompleted).
		SetResponse(serialized).
		SetEventCount(eventCount).
		SetCompletedAt(time.Now())
	if usage != nil {
		update.SetUsage(models.EncodePayload(usage))
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("session %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to complete session: %w", err)
	}
	return nil
}

// Fail marks a session errored with a human-readable message.
func (s *SessionService) Fail(httpCtx context.Context, id, message string) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	err := s.client.ChatSession.UpdateOneID(id).
		SetStatus(chatsession.StatusError).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("session %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to fail session: %w", err)
	}
	return nil
}

// MarkAborted implements the abort endpoint's transition: a running
// session becomes completed immediately (user-initiated completion).
// Returns whether the session was running; aborting a non-running
// session is a no-op, not an error.
func (s *SessionService) MarkAborted(ctx context.Context, id string) (bool, error) {
	n, err := s.client.ChatSession.Update().
		Where(
			chatsession.IDEQ(id),
			chatsession.StatusEQ(chatsession.StatusRunning),
		).
		SetStatus(chatsession.StatusCompleted).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to abort session: %w", err)
	}
	return n > 0, nil
}

// MarkTimedOut transitions a running session to error with the given
// reason, conditionally on it still being running. Returns whether this
// caller won the transition; concurrent readers probing the same stale
// session race on this.
func (s *SessionService) MarkTimedOut(ctx context.Context, id, reason string) (bool, error) {
	n, err := s.client.ChatSession.Update().
		Where(
			chatsession.IDEQ(id),
			chatsession.StatusEQ(chatsession.StatusRunning),
		).
		SetStatus(chatsession.StatusError).
		SetErrorMessage(reason).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to time out session: %w", err)
	}
	return n > 0, nil
}

// Touch updates the worker heartbeat timestamp.
func (s *SessionService) Touch(ctx context.Context, id string) error {
	err := s.client.ChatSession.UpdateOneID(id).
		SetLastInteractionAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}

// Purge deletes a session and, via cascade, its events and mounts.
// This is the only permitted deletion from the event log.
func (s *SessionService) Purge(ctx context.Context, id string) error {
	err := s.client.ChatSession.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("session %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to purge session: %w", err)
	}
	return nil
}

// PurgeTerminalOlderThan bulk-deletes terminal sessions whose
// completed_at is older than the retention window. Events and mounts go
// with them via cascade. Returns the number of sessions removed.
func (s *SessionService) PurgeTerminalOlderThan(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := time.Now().Add(-retention)
	n, err := s.client.ChatSession.Delete().
		Where(
			chatsession.StatusNEQ(chatsession.StatusRunning),
			chatsession.CompletedAtNotNil(),
			chatsession.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge old sessions: %w", err)
	}
	return n, nil
}

// ListStaleRunning returns running sessions whose heartbeat is older
// than the threshold. Used by startup orphan recovery.
func (s *SessionService) ListStaleRunning(ctx context.Context, threshold time.Duration) ([]*ent.ChatSession, error) {
	cutoff := time.Now().Add(-threshold)
	rows, err := s.client.ChatSession.Query().
		Where(
			chatsession.StatusEQ(chatsession.StatusRunning),
			chatsession.Or(
				chatsession.And(
					chatsession.LastInteractionAtNotNil(),
					chatsession.LastInteractionAtLT(cutoff),
				),
				chatsession.And(
					chatsession.LastInteractionAtIsNil(),
					chatsession.CreatedAtLT(cutoff),
				),
			),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale sessions: %w", err)
	}
	return rows, nil
}
