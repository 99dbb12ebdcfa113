package run

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relay-agents/relay/ent"
	"github.com/relay-agents/relay/ent/chatsession"
	"github.com/relay-agents/relay/pkg/models"
	"github.com/relay-agents/relay/pkg/services"
	testdb "github.com/relay-agents/relay/test/database"
)

type readerEnv struct {
	reader   *Reader
	sessions *services.SessionService
	events   *services.EventService
	ent      *ent.Client
}

func newReaderEnv(t *testing.T) readerEnv {
	db := testdb.NewTestClient(t)
	sessions := services.NewSessionService(db.Client)
	events := services.NewEventService(db.Client)
	cfg := testConfig()
	cfg.LongPollTimeout = 500 * time.Millisecond
	return readerEnv{
		reader:   NewReader(cfg, sessions, events),
		sessions: sessions,
		events:   events,
		ent:      db.Client,
	}
}

// backdateHeartbeat makes a running session look abandoned.
func backdateHeartbeat(ctx context.Context, env readerEnv, sessionID string, offset time.Duration) error {
	return env.ent.ChatSession.UpdateOneID(sessionID).
		SetLastInteractionAt(time.Now().Add(offset)).
		Exec(ctx)
}

func TestReader_ReturnsExistingEvents(t *testing.T) {
	env := newReaderEnv(t)
	ctx := context.Background()

	sessionID := uuid.New().String()
	_, err := env.sessions.Create(ctx, sessionID, "hello")
	require.NoError(t, err)

	first, err := env.events.Append(ctx, sessionID, models.EventUserMessage, nil)
	require.NoError(t, err)
	_, err = env.events.Append(ctx, sessionID, models.EventAgentStart, nil)
	require.NoError(t, err)

	status, records, err := env.reader.List(ctx, sessionID, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, models.EventUserMessage, records[0].Type)
	assert.Equal(t, chatsession.StatusRunning, status)

	// Exclusive cursor: same call again resumes after the first event.
	_, records, err = env.reader.List(ctx, sessionID, first)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.EventAgentStart, records[0].Type)

	// Re-reading with an unchanged cursor returns the same result.
	_, again, err := env.reader.List(ctx, sessionID, first)
	require.NoError(t, err)
	assert.Equal(t, records, again)
}

func TestReader_BlocksUntilEventsArrive(t *testing.T) {
	env := newReaderEnv(t)
	ctx := context.Background()

	sessionID := uuid.New().String()
	_, err := env.sessions.Create(ctx, sessionID, "hello")
	require.NoError(t, err)

	go func() {
		time.Sleep(100 * time.Millisecond)
		_, _ = env.events.Append(context.Background(), sessionID, models.EventTurnStart, nil)
	}()

	start := time.Now()
	_, records, err := env.reader.List(ctx, sessionID, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.EventTurnStart, records[0].Type)
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestReader_TerminalSessionReturnsEmptyImmediately(t *testing.T) {
	env := newReaderEnv(t)
	ctx := context.Background()

	sessionID := uuid.New().String()
	_, err := env.sessions.Create(ctx, sessionID, "hello")
	require.NoError(t, err)
	require.NoError(t, env.sessions.Complete(ctx, sessionID, nil, nil, 0))

	start := time.Now()
	status, records, err := env.reader.List(ctx, sessionID, 0)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, chatsession.StatusCompleted, status, "status tells the caller to stop polling")
	assert.Less(t, time.Since(start), 200*time.Millisecond, "no long poll on a finished session")
	assert.NotNil(t, records, "empty result is an empty slice, not nil")
}

func TestReader_TimesOutEmptyOnRunningSession(t *testing.T) {
	env := newReaderEnv(t)
	ctx := context.Background()

	sessionID := uuid.New().String()
	_, err := env.sessions.Create(ctx, sessionID, "hello")
	require.NoError(t, err)

	start := time.Now()
	status, records, err := env.reader.List(ctx, sessionID, 0)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, chatsession.StatusRunning, status, "status tells the caller to reconnect")
	assert.GreaterOrEqual(t, time.Since(start), 500*time.Millisecond)
}

func TestReader_UnknownSession(t *testing.T) {
	env := newReaderEnv(t)

	_, _, err := env.reader.List(context.Background(), uuid.New().String(), 0)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestReader_ContextCancellation(t *testing.T) {
	env := newReaderEnv(t)
	ctx := context.Background()

	sessionID := uuid.New().String()
	_, err := env.sessions.Create(ctx, sessionID, "hello")
	require.NoError(t, err)

	pollCtx, cancel := context.WithTimeout(ctx, 80*time.Millisecond)
	defer cancel()

	_, _, err = env.reader.List(pollCtx, sessionID, 0)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestReader_RecoversStaleSession(t *testing.T) {
	env := newReaderEnv(t)
	ctx := context.Background()

	sessionID := uuid.New().String()
	_, err := env.sessions.Create(ctx, sessionID, "hello")
	require.NoError(t, err)

	// Pretend the worker died: old heartbeat, still running.
	require.NoError(t, backdateHeartbeat(ctx, env, sessionID, -time.Hour))

	status, records, err := env.reader.List(ctx, sessionID, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.EventSessionError, records[0].Type)
	assert.Equal(t, staleReason, records[0].Data["reason"])
	assert.Equal(t, chatsession.StatusError, status)

	sess, err := env.sessions.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StatusError, sess.Status)
	require.NotNil(t, sess.ErrorMessage)
	assert.Equal(t, staleReason, *sess.ErrorMessage)

	// A second reader with the old cursor sees the same terminal event.
	_, records, err = env.reader.List(ctx, sessionID, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.EventSessionError, records[0].Type)
}

func TestReader_StaleProbeRunsBeforeBacklogDrain(t *testing.T) {
	env := newReaderEnv(t)
	ctx := context.Background()

	sessionID := uuid.New().String()
	_, err := env.sessions.Create(ctx, sessionID, "hello")
	require.NoError(t, err)

	// The worker appended some events, then died.
	_, err = env.events.Append(ctx, sessionID, models.EventUserMessage, nil)
	require.NoError(t, err)
	_, err = env.events.Append(ctx, sessionID, models.EventTurnStart, nil)
	require.NoError(t, err)
	require.NoError(t, backdateHeartbeat(ctx, env, sessionID, -time.Hour))

	// A lagging reader's first read already records the death: the
	// backlog arrives together with the terminal event and status.
	status, records, err := env.reader.List(ctx, sessionID, 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, models.EventUserMessage, records[0].Type)
	assert.Equal(t, models.EventSessionError, records[2].Type)
	assert.Equal(t, chatsession.StatusError, status)

	sess, err := env.sessions.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StatusError, sess.Status)
}

func TestRecoverOrphans(t *testing.T) {
	env := newReaderEnv(t)
	ctx := context.Background()

	staleID := uuid.New().String()
	_, err := env.sessions.Create(ctx, staleID, "stale")
	require.NoError(t, err)
	require.NoError(t, backdateHeartbeat(ctx, env, staleID, -time.Hour))

	liveID := uuid.New().String()
	_, err = env.sessions.Create(ctx, liveID, "live")
	require.NoError(t, err)

	require.NoError(t, RecoverOrphans(ctx, env.sessions, env.events, 5*time.Minute))

	sess, err := env.sessions.Get(ctx, staleID)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StatusError, sess.Status)

	rows, err := env.events.ListAfter(ctx, staleID, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.EventSessionError, rows[0].Type)

	sess, err = env.sessions.Get(ctx, liveID)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StatusRunning, sess.Status)

	// Running it again finds nothing to do.
	require.NoError(t, RecoverOrphans(ctx, env.sessions, env.events, 5*time.Minute))
	rows, err = env.events.ListAfter(ctx, staleID, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
