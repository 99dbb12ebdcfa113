package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
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
	"github.com/relay-agents/relay/pkg/run"
	"github.com/relay-agents/relay/pkg/services"
	testdb "github.com/relay-agents/relay/test/database"
)

// scriptedClient replays one chunk sequence per model call.
type scriptedClient struct {
	mu     sync.Mutex
	script [][]llm.Chunk
}

func (c *scriptedClient) Stream(ctx context.Context, req llm.Request) (<-chan llm.Chunk, error) {
	c.mu.Lock()
	var chunks []llm.Chunk
	if len(c.script) > 0 {
		chunks = c.script[0]
		c.script = c.script[1:]
	} else {
		chunks = []llm.Chunk{{Err: fmt.Errorf("script exhausted")}}
	}
	c.mu.Unlock()

	out := make(chan llm.Chunk, len(chunks))
	for _, chunk := range chunks {
		out <- chunk
	}
	close(out)
	return out, nil
}

func answer(text string) []llm.Chunk {
	msg := models.NewAssistantMessage(text)
	return []llm.Chunk{{TextDelta: text}, {Message: &msg}}
}

type apiEnv struct {
	server   *Server
	runner   *run.Runner
	sessions *services.SessionService
	events   *services.EventService
}

func newAPIEnv(t *testing.T, llmClient llm.Client) apiEnv {
	db := testdb.NewTestClient(t)
	sessions := services.NewSessionService(db.Client)
	events := services.NewEventService(db.Client)
	mounts := services.NewMountService(db.Client)

	cfg := &config.Config{
		HTTPPort:           "0",
		AbortCheckInterval: 20 * time.Millisecond,
		HeartbeatInterval:  50 * time.Millisecond,
		StaleSessionMax:    5 * time.Minute,
		LongPollTimeout:    300 * time.Millisecond,
		LongPollInterval:   20 * time.Millisecond,
		SessionTimeout:     30 * time.Second,
	}
	runner := run.NewRunner(cfg, llmClient, sessions, events, mounts)
	reader := run.NewReader(cfg, sessions, events)

	return apiEnv{
		server:   NewServer(cfg, db, runner, reader, sessions, events),
		runner:   runner,
		sessions: sessions,
		events:   events,
	}
}

func (env apiEnv) do(method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echoHeaderContentType, "application/json")
	}
	rec := httptest.NewRecorder()
	env.server.Echo().ServeHTTP(rec, req)
	return rec
}

const echoHeaderContentType = "Content-Type"

func TestChatHandler(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		env := newAPIEnv(t, &scriptedClient{})

		rec := env.do(http.MethodPost, "/api/v1/chat", `{"message":""}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = env.do(http.MethodPost, "/api/v1/chat", `{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no provider configured", func(t *testing.T) {
		env := newAPIEnv(t, nil)

		rec := env.do(http.MethodPost, "/api/v1/chat", `{"message":"hi"}`)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("streams session and done events", func(t *testing.T) {
		env := newAPIEnv(t, &scriptedClient{script: [][]llm.Chunk{answer("done")}})
		sessionID := uuid.New().String()

		rec := env.do(http.MethodPost, "/api/v1/chat", fmt.Sprintf(`{"session_id":%q,"message":"hi"}`, sessionID))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/event-stream", rec.Header().Get(echoHeaderContentType))

		body := rec.Body.String()
		assert.Contains(t, body, "event: session\n")
		assert.Contains(t, body, sessionID)
		assert.Contains(t, body, "event: done\n")
		assert.Contains(t, body, `"status":"completed"`)

		sess, err := env.sessions.Get(context.Background(), sessionID)
		require.NoError(t, err)
		assert.Equal(t, "completed", string(sess.Status))
	})

	t.Run("conflict on a running session", func(t *testing.T) {
		env := newAPIEnv(t, &scriptedClient{})
		sessionID := uuid.New().String()
		_, err := env.sessions.Create(context.Background(), sessionID, "busy")
		require.NoError(t, err)

		rec := env.do(http.MethodPost, "/api/v1/chat", fmt.Sprintf(`{"session_id":%q,"message":"hi"}`, sessionID))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestSessionHandlers(t *testing.T) {
	env := newAPIEnv(t, &scriptedClient{})
	ctx := context.Background()

	sessionID := uuid.New().String()
	_, err := env.sessions.Create(ctx, sessionID, "hello")
	require.NoError(t, err)
	require.NoError(t, env.sessions.Complete(ctx, sessionID,
		[]models.Message{models.NewUserMessage("hello")},
		&models.Usage{TotalTokens: 5}, 1))

	t.Run("list", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/v1/sessions?page=1&page_size=10", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var result models.SessionListResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, 1, result.Total)
		require.Len(t, result.Sessions, 1)
		assert.Equal(t, sessionID, result.Sessions[0].ID)
	})

	t.Run("get", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/v1/sessions/"+sessionID, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var detail models.SessionDetail
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
		assert.Equal(t, sessionID, detail.ID)
		assert.Equal(t, "completed", detail.Status)
		require.Len(t, detail.Response, 1)
		require.NotNil(t, detail.Usage)
		assert.Equal(t, 5, detail.Usage.TotalTokens)
	})

	t.Run("get unknown", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/v1/sessions/"+uuid.New().String(), "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("abort a non-running session is idempotent", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/api/v1/sessions/"+sessionID+"/abort", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp AbortResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Aborted)
	})

	t.Run("abort unknown", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/api/v1/sessions/"+uuid.New().String()+"/abort", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := env.do(http.MethodDelete, "/api/v1/sessions/"+sessionID, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = env.do(http.MethodDelete, "/api/v1/sessions/"+sessionID, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAbortHandler_RunningSession(t *testing.T) {
	env := newAPIEnv(t, &scriptedClient{})
	ctx := context.Background()

	sessionID := uuid.New().String()
	_, err := env.sessions.Create(ctx, sessionID, "hello")
	require.NoError(t, err)

	rec := env.do(http.MethodPost, "/api/v1/sessions/"+sessionID+"/abort", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AbortResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Aborted)

	rows, err := env.events.ListAfter(ctx, sessionID, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.EventSessionAborted, rows[0].Type)
}

func TestMessagesHandler(t *testing.T) {
	env := newAPIEnv(t, &scriptedClient{})
	ctx := context.Background()

	sessionID := uuid.New().String()
	_, err := env.sessions.Create(ctx, sessionID, "hello")
	require.NoError(t, err)
	require.NoError(t, env.sessions.Complete(ctx, sessionID, nil, nil, 0))

	userMsg := models.NewUserMessage("hello")
	assistant := models.NewAssistantMessage("hi")
	_, err = env.events.Append(ctx, sessionID, models.EventUserMessage,
		models.EncodePayload(models.UserMessagePayload{Message: userMsg}))
	require.NoError(t, err)
	_, err = env.events.Append(ctx, sessionID, models.EventMessageEnd,
		models.EncodePayload(models.MessageEndPayload{Message: assistant}))
	require.NoError(t, err)

	rec := env.do(http.MethodGet, "/api/v1/sessions/"+sessionID+"/messages", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MessagesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, "hello", resp.Messages[0].Text())
	assert.Equal(t, "hi", resp.Messages[1].Text())

	t.Run("empty log yields empty list, not null", func(t *testing.T) {
		otherID := uuid.New().String()
		_, err := env.sessions.Create(ctx, otherID, "hi")
		require.NoError(t, err)
		require.NoError(t, env.sessions.Complete(ctx, otherID, nil, nil, 0))

		rec := env.do(http.MethodGet, "/api/v1/sessions/"+otherID+"/messages", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"messages":[]`)
	})

	t.Run("unknown session", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/v1/sessions/"+uuid.New().String()+"/messages", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestEventsHandler(t *testing.T) {
	env := newAPIEnv(t, &scriptedClient{})
	ctx := context.Background()

	sessionID := uuid.New().String()
	_, err := env.sessions.Create(ctx, sessionID, "hello")
	require.NoError(t, err)
	require.NoError(t, env.sessions.Complete(ctx, sessionID, nil, nil, 0))

	firstID, err := env.events.Append(ctx, sessionID, models.EventUserMessage, nil)
	require.NoError(t, err)
	lastID, err := env.events.Append(ctx, sessionID, models.EventSessionComplete, nil)
	require.NoError(t, err)

	t.Run("reads from the start", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/v1/sessions/"+sessionID+"/events", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp EventsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Events, 2)
		assert.Equal(t, models.EventUserMessage, resp.Events[0].Type)
		assert.Equal(t, string(chatsession.StatusCompleted), resp.Status)
	})

	t.Run("caught up on a terminal session reports status", func(t *testing.T) {
		rec := env.do(http.MethodGet, fmt.Sprintf("/api/v1/sessions/%s/events?after=%d", sessionID, lastID), "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp EventsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Events)
		// The client keys "stop polling" off this field.
		assert.Equal(t, string(chatsession.StatusCompleted), resp.Status)
	})

	t.Run("resumes after a cursor", func(t *testing.T) {
		rec := env.do(http.MethodGet, fmt.Sprintf("/api/v1/sessions/%s/events?after=%d", sessionID, firstID), "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp EventsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Events, 1)
		assert.Equal(t, models.EventSessionComplete, resp.Events[0].Type)
	})

	t.Run("rejects bad cursors", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/v1/sessions/"+sessionID+"/events?after=-1", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = env.do(http.MethodGet, "/api/v1/sessions/"+sessionID+"/events?after=soon", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown session", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/v1/sessions/"+uuid.New().String()+"/events", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	env := newAPIEnv(t, nil)

	rec := env.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestSecurityHeaders(t *testing.T) {
	env := newAPIEnv(t, nil)

	rec := env.do(http.MethodGet, "/health", "")
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
