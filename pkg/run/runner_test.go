package run

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relay-agents/relay/ent/chatsession"
	"github.com/relay-agents/relay/pkg/config"
	"github.com/relay-agents/relay/pkg/llm"
	"github.com/relay-agents/relay/pkg/models"
	"github.com/relay-agents/relay/pkg/services"
	testdb "github.com/relay-agents/relay/test/database"
)

// scriptedClient replays one chunk sequence per model call.
type scriptedClient struct {
	mu       sync.Mutex
	script   [][]llm.Chunk
	requests []llm.Request
}

func (c *scriptedClient) Stream(ctx context.Context, req llm.Request) (<-chan llm.Chunk, error) {
	c.mu.Lock()
	c.requests = append(c.requests, req)
	var chunks []llm.Chunk
	if len(c.script) > 0 {
		chunks = c.script[0]
		c.script = c.script[1:]
	} else {
		chunks = []llm.Chunk{{Err: context.Canceled}}
	}
	c.mu.Unlock()

	out := make(chan llm.Chunk, len(chunks))
	for _, chunk := range chunks {
		out <- chunk
	}
	close(out)
	return out, nil
}

func (c *scriptedClient) recorded() []llm.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]llm.Request(nil), c.requests...)
}

// blockingClient holds the model call open until its context dies.
type blockingClient struct {
	started chan struct{}
	once    sync.Once
}

func (c *blockingClient) Stream(ctx context.Context, req llm.Request) (<-chan llm.Chunk, error) {
	out := make(chan llm.Chunk, 1)
	go func() {
		defer close(out)
		c.once.Do(func() { close(c.started) })
		<-ctx.Done()
		out <- llm.Chunk{Err: ctx.Err()}
	}()
	return out, nil
}

func finalText(text string, usage *models.Usage) llm.Chunk {
	msg := models.NewAssistantMessage(text)
	msg.Usage = usage
	return llm.Chunk{Message: &msg, Usage: usage}
}

func finalWithToolCall(callID, toolName, args string) llm.Chunk {
	msg := models.Message{
		Role: models.RoleAssistant,
		Content: []models.ContentBlock{
			{Type: models.ContentToolCall, ToolCall: &models.ToolCall{
				CallID:    callID,
				ToolName:  toolName,
				Arguments: json.RawMessage(args),
			}},
		},
		Timestamp: time.Now(),
	}
	return llm.Chunk{Message: &msg}
}

func testConfig() *config.Config {
	return &config.Config{
		AbortCheckInterval: 20 * time.Millisecond,
		HeartbeatInterval:  50 * time.Millisecond,
		StaleSessionMax:    5 * time.Minute,
		LongPollTimeout:    time.Second,
		LongPollInterval:   20 * time.Millisecond,
		SessionTimeout:     30 * time.Second,
	}
}

type runnerEnv struct {
	runner   *Runner
	sessions *services.SessionService
	events   *services.EventService
	mounts   *services.MountService
}

func newRunnerEnv(t *testing.T, client llm.Client) runnerEnv {
	db := testdb.NewTestClient(t)
	sessions := services.NewSessionService(db.Client)
	events := services.NewEventService(db.Client)
	mounts := services.NewMountService(db.Client)
	return runnerEnv{
		runner:   NewRunner(testConfig(), client, sessions, events, mounts),
		sessions: sessions,
		events:   events,
		mounts:   mounts,
	}
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("run did not finish")
	}
}

func logTypes(t *testing.T, env runnerEnv, sessionID string) []string {
	t.Helper()
	rows, err := env.events.ListAfter(context.Background(), sessionID, 0)
	require.NoError(t, err)
	types := make([]string, len(rows))
	for i, row := range rows {
		types[i] = row.Type
	}
	return types
}

func TestRunner_CompletedRun(t *testing.T) {
	client := &scriptedClient{script: [][]llm.Chunk{
		{
			{TextDelta: "All "},
			{TextDelta: "done."},
			finalText("All done.", &models.Usage{InputTokens: 10, OutputTokens: 4, TotalTokens: 14}),
		},
	}}
	env := newRunnerEnv(t, client)
	sessionID := uuid.New().String()

	done, err := env.runner.Submit(context.Background(), SubmitInput{SessionID: sessionID, Message: "status?"})
	require.NoError(t, err)
	waitDone(t, done)

	sess, err := env.sessions.Get(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StatusCompleted, sess.Status)
	assert.NotNil(t, sess.CompletedAt)
	assert.NotEmpty(t, sess.Response)

	types := logTypes(t, env, sessionID)
	assert.Equal(t, []string{
		models.EventUserMessage,
		models.EventAgentStart,
		models.EventTurnStart,
		models.EventMessageEnd,
		models.EventTurnEnd,
		models.EventAgentEnd,
		models.EventSessionComplete,
	}, types, "streaming deltas never reach the log, the terminal event is last")

	assert.Equal(t, len(types), sess.EventCount)

	// The stored history round-trips.
	var stored []models.Message
	require.NoError(t, json.Unmarshal(sess.Response, &stored))
	require.Len(t, stored, 2)
	assert.Equal(t, "All done.", stored[1].Text())
}

func TestRunner_ToolCallRun(t *testing.T) {
	client := &scriptedClient{script: [][]llm.Chunk{
		{finalWithToolCall("call-1", "workspace", `{"op":"write","path":"plan.md","content":"step one"}`)},
		{finalText("Wrote the plan.", nil)},
	}}
	env := newRunnerEnv(t, client)
	sessionID := uuid.New().String()

	done, err := env.runner.Submit(context.Background(), SubmitInput{SessionID: sessionID, Message: "write a plan"})
	require.NoError(t, err)
	waitDone(t, done)

	sess, err := env.sessions.Get(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StatusCompleted, sess.Status)

	assert.Equal(t, []string{
		models.EventUserMessage,
		models.EventAgentStart,
		models.EventTurnStart,
		models.EventMessageEnd,
		models.EventToolStart,
		models.EventToolEnd,
		models.EventTurnEnd,
		models.EventTurnStart,
		models.EventMessageEnd,
		models.EventTurnEnd,
		models.EventAgentEnd,
		models.EventSessionComplete,
	}, logTypes(t, env, sessionID))

	// Both model calls got the builtin tool set.
	reqs := client.recorded()
	require.Len(t, reqs, 2)
	require.Len(t, reqs[0].Tools, 2)
	assert.Equal(t, "fetch", reqs[0].Tools[0].Name)
	assert.Equal(t, "workspace", reqs[0].Tools[1].Name)
}

func TestRunner_FailedRun(t *testing.T) {
	// Empty script: the first model call fails.
	client := &scriptedClient{}
	env := newRunnerEnv(t, client)
	sessionID := uuid.New().String()

	done, err := env.runner.Submit(context.Background(), SubmitInput{SessionID: sessionID, Message: "hi"})
	require.NoError(t, err)
	waitDone(t, done)

	sess, err := env.sessions.Get(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StatusError, sess.Status)
	require.NotNil(t, sess.ErrorMessage)
	assert.NotEmpty(t, *sess.ErrorMessage)

	types := logTypes(t, env, sessionID)
	require.NotEmpty(t, types)
	assert.Equal(t, models.EventSessionError, types[len(types)-1])
}

func TestRunner_Continuation(t *testing.T) {
	client := &scriptedClient{script: [][]llm.Chunk{
		{finalText("first answer", nil)},
		{finalText("second answer", nil)},
	}}
	env := newRunnerEnv(t, client)
	sessionID := uuid.New().String()

	done, err := env.runner.Submit(context.Background(), SubmitInput{SessionID: sessionID, Message: "first question"})
	require.NoError(t, err)
	waitDone(t, done)

	done, err = env.runner.Submit(context.Background(), SubmitInput{SessionID: sessionID, Message: "second question"})
	require.NoError(t, err)
	waitDone(t, done)

	sess, err := env.sessions.Get(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StatusCompleted, sess.Status)

	// The second model call saw the reconstructed first exchange.
	reqs := client.recorded()
	require.Len(t, reqs, 2)
	require.Len(t, reqs[1].Messages, 3)
	assert.Equal(t, "first question", reqs[1].Messages[0].Text())
	assert.Equal(t, "first answer", reqs[1].Messages[1].Text())
	assert.Equal(t, "second question", reqs[1].Messages[2].Text())

	// Two user_message events, one per turn.
	var userMessages int
	for _, eventType := range logTypes(t, env, sessionID) {
		if eventType == models.EventUserMessage {
			userMessages++
		}
	}
	assert.Equal(t, 2, userMessages)
}

func TestRunner_SeedSkipsReconstruction(t *testing.T) {
	client := &scriptedClient{script: [][]llm.Chunk{
		{finalText("continuing", nil)},
	}}
	env := newRunnerEnv(t, client)
	sessionID := uuid.New().String()

	seed := []models.Message{
		models.NewUserMessage("from the thread"),
		models.NewAssistantMessage("thread answer"),
	}
	done, err := env.runner.Submit(context.Background(), SubmitInput{
		SessionID: sessionID,
		Message:   "follow-up",
		Seed:      seed,
	})
	require.NoError(t, err)
	waitDone(t, done)

	reqs := client.recorded()
	require.Len(t, reqs, 1)
	require.Len(t, reqs[0].Messages, 3)
	assert.Equal(t, "from the thread", reqs[0].Messages[0].Text())
}

func TestRunner_ConflictWhileRunning(t *testing.T) {
	client := &blockingClient{started: make(chan struct{})}
	env := newRunnerEnv(t, client)
	sessionID := uuid.New().String()

	done, err := env.runner.Submit(context.Background(), SubmitInput{SessionID: sessionID, Message: "hi"})
	require.NoError(t, err)
	<-client.started

	_, err = env.runner.Submit(context.Background(), SubmitInput{SessionID: sessionID, Message: "again"})
	assert.ErrorIs(t, err, services.ErrConflict)

	assert.True(t, env.runner.IsActive(sessionID))

	_, err = env.runner.Abort(context.Background(), sessionID)
	require.NoError(t, err)
	waitDone(t, done)
}

func TestRunner_Abort(t *testing.T) {
	client := &blockingClient{started: make(chan struct{})}
	env := newRunnerEnv(t, client)
	sessionID := uuid.New().String()

	done, err := env.runner.Submit(context.Background(), SubmitInput{SessionID: sessionID, Message: "long task"})
	require.NoError(t, err)
	<-client.started

	wasRunning, err := env.runner.Abort(context.Background(), sessionID)
	require.NoError(t, err)
	assert.True(t, wasRunning)

	waitDone(t, done)

	sess, err := env.sessions.Get(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StatusCompleted, sess.Status)

	types := logTypes(t, env, sessionID)
	require.NotEmpty(t, types)
	assert.Equal(t, models.EventSessionAborted, types[len(types)-1],
		"nothing may land in the log after the abort event")

	// Aborting again is an idempotent no-op.
	wasRunning, err = env.runner.Abort(context.Background(), sessionID)
	require.NoError(t, err)
	assert.False(t, wasRunning)
}

func TestRunner_SubmitValidation(t *testing.T) {
	env := newRunnerEnv(t, &scriptedClient{})

	_, err := env.runner.Submit(context.Background(), SubmitInput{SessionID: "", Message: "hi"})
	assert.True(t, services.IsValidationError(err))

	_, err = env.runner.Submit(context.Background(), SubmitInput{SessionID: uuid.New().String(), Message: ""})
	assert.True(t, services.IsValidationError(err))
}

func TestRunner_SubmitWithoutProvider(t *testing.T) {
	env := newRunnerEnv(t, nil)

	_, err := env.runner.Submit(context.Background(), SubmitInput{SessionID: uuid.New().String(), Message: "hi"})
	assert.ErrorIs(t, err, services.ErrNotConfigured)
}

func TestRunner_StopRejectsNewSubmissions(t *testing.T) {
	client := &scriptedClient{script: [][]llm.Chunk{
		{finalText("ok", nil)},
	}}
	env := newRunnerEnv(t, client)

	done, err := env.runner.Submit(context.Background(), SubmitInput{SessionID: uuid.New().String(), Message: "hi"})
	require.NoError(t, err)
	waitDone(t, done)

	env.runner.Stop()
	env.runner.Stop() // idempotent

	_, err = env.runner.Submit(context.Background(), SubmitInput{SessionID: uuid.New().String(), Message: "hi"})
	assert.ErrorIs(t, err, ErrShuttingDown)
}

func TestRunner_StopCancelsActiveRuns(t *testing.T) {
	client := &blockingClient{started: make(chan struct{})}
	env := newRunnerEnv(t, client)
	sessionID := uuid.New().String()

	done, err := env.runner.Submit(context.Background(), SubmitInput{SessionID: sessionID, Message: "long task"})
	require.NoError(t, err)
	<-client.started

	env.runner.Stop()
	waitDone(t, done)

	sess, err := env.sessions.Get(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StatusError, sess.Status)
	require.NotNil(t, sess.ErrorMessage)
	assert.Equal(t, "cancelled by shutdown", *sess.ErrorMessage)
}
