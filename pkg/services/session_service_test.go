package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relay-agents/relay/ent/chatsession"
	"github.com/relay-agents/relay/pkg/models"
	testdb "github.com/relay-agents/relay/test/database"
)

func TestSessionService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("creates a running session", func(t *testing.T) {
		id := uuid.New().String()
		sess, err := svc.Create(ctx, id, "hello")
		require.NoError(t, err)
		assert.Equal(t, id, sess.ID)
		assert.Equal(t, chatsession.StatusRunning, sess.Status)
		assert.Equal(t, "hello", sess.InitialMessage)
		assert.NotNil(t, sess.LastInteractionAt)
	})

	t.Run("rejects empty id", func(t *testing.T) {
		_, err := svc.Create(ctx, "", "hello")
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects empty message", func(t *testing.T) {
		_, err := svc.Create(ctx, uuid.New().String(), "")
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_Get(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	id := uuid.New().String()
	_, err := svc.Create(ctx, id, "hello")
	require.NoError(t, err)

	sess, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, sess.ID)

	_, err = svc.Get(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionService_CompleteAndReactivate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	id := uuid.New().String()
	_, err := svc.Create(ctx, id, "hello")
	require.NoError(t, err)

	// Continuation on a running session conflicts.
	_, err = svc.Reactivate(ctx, id)
	assert.ErrorIs(t, err, ErrConflict)

	history := []models.Message{
		models.NewUserMessage("hello"),
		models.NewAssistantMessage("hi"),
	}
	usage := &models.Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}
	require.NoError(t, svc.Complete(ctx, id, history, usage, 7))

	sess, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StatusCompleted, sess.Status)
	assert.Equal(t, 7, sess.EventCount)
	assert.NotNil(t, sess.CompletedAt)
	assert.NotEmpty(t, sess.Response)

	reactivated, err := svc.Reactivate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StatusRunning, reactivated.Status)
	assert.Nil(t, reactivated.CompletedAt)
	assert.Nil(t, reactivated.ErrorMessage)

	_, err = svc.Reactivate(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionService_ReactivateConcurrent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	id := uuid.New().String()
	_, err := svc.Create(ctx, id, "hello")
	require.NoError(t, err)
	require.NoError(t, svc.Complete(ctx, id, nil, nil, 0))

	// Racing continuations for the same session: exactly one may win,
	// the rest must see the conflict, or two runs would append to one
	// event log concurrently.
	const attempts = 8
	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Reactivate(ctx, id)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	won, conflicts := 0, 0
	for err := range results {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected reactivate error: %v", err)
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, attempts-1, conflicts)
}

func TestSessionService_Fail(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	id := uuid.New().String()
	_, err := svc.Create(ctx, id, "hello")
	require.NoError(t, err)

	require.NoError(t, svc.Fail(ctx, id, "model transport failed"))

	sess, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StatusError, sess.Status)
	require.NotNil(t, sess.ErrorMessage)
	assert.Equal(t, "model transport failed", *sess.ErrorMessage)
	assert.NotNil(t, sess.CompletedAt)
}

func TestSessionService_IsRunning(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	id := uuid.New().String()
	_, err := svc.Create(ctx, id, "hello")
	require.NoError(t, err)

	running, err := svc.IsRunning(ctx, id)
	require.NoError(t, err)
	assert.True(t, running)

	require.NoError(t, svc.Fail(ctx, id, "boom"))

	running, err = svc.IsRunning(ctx, id)
	require.NoError(t, err)
	assert.False(t, running)

	_, err = svc.IsRunning(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionService_MarkAborted(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	id := uuid.New().String()
	_, err := svc.Create(ctx, id, "hello")
	require.NoError(t, err)

	wasRunning, err := svc.MarkAborted(ctx, id)
	require.NoError(t, err)
	assert.True(t, wasRunning)

	sess, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StatusCompleted, sess.Status)

	// Second abort is a no-op, not an error.
	wasRunning, err = svc.MarkAborted(ctx, id)
	require.NoError(t, err)
	assert.False(t, wasRunning)

	// Unknown session: same no-op semantics.
	wasRunning, err = svc.MarkAborted(ctx, uuid.New().String())
	require.NoError(t, err)
	assert.False(t, wasRunning)
}

func TestSessionService_MarkTimedOut(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	id := uuid.New().String()
	_, err := svc.Create(ctx, id, "hello")
	require.NoError(t, err)

	won, err := svc.MarkTimedOut(ctx, id, "timed out")
	require.NoError(t, err)
	assert.True(t, won)

	sess, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StatusError, sess.Status)
	require.NotNil(t, sess.ErrorMessage)
	assert.Equal(t, "timed out", *sess.ErrorMessage)

	// Only one caller wins the transition.
	won, err = svc.MarkTimedOut(ctx, id, "timed out")
	require.NoError(t, err)
	assert.False(t, won)
}

func TestSessionService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, uuid.New().String(), "hello")
		require.NoError(t, err)
	}

	result, err := svc.List(ctx, models.SessionListParams{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Len(t, result.Sessions, 2)

	result, err = svc.List(ctx, models.SessionListParams{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, result.Sessions, 1)

	// Out-of-range params fall back to defaults.
	result, err = svc.List(ctx, models.SessionListParams{Page: 0, PageSize: 1000})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 25, result.PageSize)
}

func TestSessionService_Purge(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	events := NewEventService(client.Client)
	ctx := context.Background()

	id := uuid.New().String()
	_, err := svc.Create(ctx, id, "hello")
	require.NoError(t, err)
	_, err = events.Append(ctx, id, models.EventAgentStart, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Purge(ctx, id))

	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	// Events went with the session.
	remaining, err := events.ListAfter(ctx, id, 0)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	assert.ErrorIs(t, svc.Purge(ctx, id), ErrNotFound)
}

func TestSessionService_PurgeTerminalOlderThan(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	oldID := uuid.New().String()
	_, err := svc.Create(ctx, oldID, "old")
	require.NoError(t, err)
	require.NoError(t, svc.Fail(ctx, oldID, "boom"))
	// Backdate the terminal timestamp past the retention window.
	err = client.Client.ChatSession.UpdateOneID(oldID).
		SetCompletedAt(time.Now().Add(-48 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	freshID := uuid.New().String()
	_, err = svc.Create(ctx, freshID, "fresh")
	require.NoError(t, err)
	require.NoError(t, svc.Complete(ctx, freshID, nil, nil, 0))

	runningID := uuid.New().String()
	_, err = svc.Create(ctx, runningID, "running")
	require.NoError(t, err)

	n, err := svc.PurgeTerminalOlderThan(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = svc.Get(ctx, oldID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Get(ctx, freshID)
	assert.NoError(t, err)
	_, err = svc.Get(ctx, runningID)
	assert.NoError(t, err)
}

func TestSessionService_ListStaleRunning(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	staleID := uuid.New().String()
	_, err := svc.Create(ctx, staleID, "stale")
	require.NoError(t, err)
	err = client.Client.ChatSession.UpdateOneID(staleID).
		SetLastInteractionAt(time.Now().Add(-10 * time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	liveID := uuid.New().String()
	_, err = svc.Create(ctx, liveID, "live")
	require.NoError(t, err)

	terminalID := uuid.New().String()
	_, err = svc.Create(ctx, terminalID, "done")
	require.NoError(t, err)
	require.NoError(t, svc.Complete(ctx, terminalID, nil, nil, 0))

	stale, err := svc.ListStaleRunning(ctx, 5*time.Minute)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, staleID, stale[0].ID)
}

func TestSessionService_Touch(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	id := uuid.New().String()
	_, err := svc.Create(ctx, id, "hello")
	require.NoError(t, err)
	err = client.Client.ChatSession.UpdateOneID(id).
		SetLastInteractionAt(time.Now().Add(-time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Touch(ctx, id))

	sess, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, sess.LastInteractionAt)
	assert.WithinDuration(t, time.Now(), *sess.LastInteractionAt, time.Minute)
}
