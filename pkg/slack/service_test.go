package slack

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

	"github.com/labstack/echo/v4"
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

// postedMessage is one chat.postMessage captured by the mock API.
type postedMessage struct {
	Channel  string
	ThreadTS string
	Text     string
}

// mockSlackAPI records chat.postMessage calls.
type mockSlackAPI struct {
	mu     sync.Mutex
	posts  []postedMessage
	server *httptest.Server
}

func newMockSlackAPI(t *testing.T) *mockSlackAPI {
	m := &mockSlackAPI{}
	m.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "chat.postMessage") {
			w.Write([]byte(`{"ok":true}`))
			return
		}
		require.NoError(t, r.ParseForm())
		m.mu.Lock()
		m.posts = append(m.posts, postedMessage{
			Channel:  r.FormValue("channel"),
			ThreadTS: r.FormValue("thread_ts"),
			Text:     r.FormValue("text"),
		})
		m.mu.Unlock()
		w.Write([]byte(`{"ok":true,"channel":"C1","ts":"1.1"}`))
	}))
	t.Cleanup(m.server.Close)
	return m
}

func (m *mockSlackAPI) recorded() []postedMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]postedMessage(nil), m.posts...)
}

func (m *mockSlackAPI) apiURL() string {
	return m.server.URL + "/"
}

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
	return []llm.Chunk{{Message: &msg}}
}

type slackEnv struct {
	service  *Service
	api      *mockSlackAPI
	threads  *services.ThreadService
	sessions *services.SessionService
}

func newSlackEnv(t *testing.T, llmClient llm.Client) slackEnv {
	db := testdb.NewTestClient(t)
	sessions := services.NewSessionService(db.Client)
	events := services.NewEventService(db.Client)
	mounts := services.NewMountService(db.Client)
	threads := services.NewThreadService(db.Client)

	cfg := &config.Config{
		AbortCheckInterval: 20 * time.Millisecond,
		HeartbeatInterval:  50 * time.Millisecond,
		SessionTimeout:     30 * time.Second,
	}
	runner := run.NewRunner(cfg, llmClient, sessions, events, mounts)

	api := newMockSlackAPI(t)
	service := NewServiceWithClient(
		NewClientWithAPIURL("xoxb-test", api.apiURL()),
		threads, sessions, runner,
	)
	return slackEnv{service: service, api: api, threads: threads, sessions: sessions}
}

func waitForPosts(t *testing.T, api *mockSlackAPI, n int) []postedMessage {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(api.recorded()) >= n
	}, 10*time.Second, 20*time.Millisecond)
	return api.recorded()
}

func TestNewService_DisabledWithoutToken(t *testing.T) {
	assert.Nil(t, NewService("", "", nil, nil, nil))

	// Nil-safe no-op.
	var s *Service
	assert.NoError(t, s.HandleMessage(context.Background(), MessageInput{Text: "hi"}))
}

func TestHandleMessage_NewThread(t *testing.T) {
	env := newSlackEnv(t, &scriptedClient{script: [][]llm.Chunk{answer("42 is the answer")}})
	ctx := context.Background()

	input := MessageInput{ChannelID: "C1", ThreadTS: "1724500000.000100", UserID: "U1", Text: "what is the answer?"}
	require.NoError(t, env.service.HandleMessage(ctx, input))

	posts := waitForPosts(t, env.api, 1)
	assert.Equal(t, "C1", posts[0].Channel)
	assert.Equal(t, "1724500000.000100", posts[0].ThreadTS)
	assert.Equal(t, "42 is the answer", posts[0].Text)

	// The thread is bound to a completed session.
	sessionID, err := env.threads.Lookup(ctx, "C1:1724500000.000100")
	require.NoError(t, err)
	sess, err := env.sessions.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StatusCompleted, sess.Status)
}

func TestHandleMessage_ThreadContinuation(t *testing.T) {
	env := newSlackEnv(t, &scriptedClient{script: [][]llm.Chunk{
		answer("first answer"),
		answer("second answer"),
	}})
	ctx := context.Background()

	input := MessageInput{ChannelID: "C1", ThreadTS: "1.1", UserID: "U1", Text: "first"}
	require.NoError(t, env.service.HandleMessage(ctx, input))
	waitForPosts(t, env.api, 1)

	firstSession, err := env.threads.Lookup(ctx, "C1:1.1")
	require.NoError(t, err)

	input.Text = "second"
	require.NoError(t, env.service.HandleMessage(ctx, input))
	posts := waitForPosts(t, env.api, 2)
	assert.Equal(t, "second answer", posts[1].Text)

	// Same thread, same session.
	secondSession, err := env.threads.Lookup(ctx, "C1:1.1")
	require.NoError(t, err)
	assert.Equal(t, firstSession, secondSession)
}

func TestHandleMessage_BusyThread(t *testing.T) {
	env := newSlackEnv(t, &scriptedClient{})
	ctx := context.Background()

	// Bind the thread to a session that is already running.
	sess, err := env.sessions.Create(ctx, "busy-session", "busy")
	require.NoError(t, err)
	require.NoError(t, env.threads.Bind(ctx, "C1:9.9", sess.ID, nil))

	input := MessageInput{ChannelID: "C1", ThreadTS: "9.9", UserID: "U1", Text: "are you done yet?"}
	require.NoError(t, env.service.HandleMessage(ctx, input))

	posts := waitForPosts(t, env.api, 1)
	assert.Contains(t, posts[0].Text, "Still working")
}

func TestHandleMessage_FailedRunReportsError(t *testing.T) {
	// Empty script: the model call fails immediately.
	env := newSlackEnv(t, &scriptedClient{})

	input := MessageInput{ChannelID: "C1", ThreadTS: "2.2", UserID: "U1", Text: "hi"}
	require.NoError(t, env.service.HandleMessage(context.Background(), input))

	posts := waitForPosts(t, env.api, 1)
	assert.Contains(t, posts[0].Text, "The agent run failed")
}

func TestHandleMessage_IgnoresEmptyText(t *testing.T) {
	env := newSlackEnv(t, &scriptedClient{})
	require.NoError(t, env.service.HandleMessage(context.Background(), MessageInput{ChannelID: "C1", ThreadTS: "3.3"}))
	assert.Empty(t, env.api.recorded())
}

func TestFinalAssistantText(t *testing.T) {
	history := []models.Message{
		models.NewUserMessage("question"),
		models.NewAssistantMessage("first"),
		models.NewToolResultMessage("call-1", "data", false),
		models.NewAssistantMessage("last word"),
	}
	raw, err := json.Marshal(history)
	require.NoError(t, err)

	assert.Equal(t, "last word", finalAssistantText(raw))
	assert.Equal(t, "", finalAssistantText(nil))
	assert.Equal(t, "", finalAssistantText(json.RawMessage(`{broken`)))

	noAssistant, err := json.Marshal([]models.Message{models.NewUserMessage("only user")})
	require.NoError(t, err)
	assert.Equal(t, "", finalAssistantText(noAssistant))
}

func postEvent(t *testing.T, env slackEnv, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/slack/events", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, env.service.EventsHandler()(c))
	return rec
}

func TestEventsHandler(t *testing.T) {
	t.Run("answers url verification", func(t *testing.T) {
		env := newSlackEnv(t, &scriptedClient{})
		rec := postEvent(t, env, `{"type":"url_verification","challenge":"challenge-token"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "challenge-token", rec.Body.String())
	})

	t.Run("routes thread messages to the agent", func(t *testing.T) {
		env := newSlackEnv(t, &scriptedClient{script: [][]llm.Chunk{answer("routed")}})
		rec := postEvent(t, env, `{
			"type": "event_callback",
			"event": {"type": "message", "channel": "C1", "user": "U1", "text": "hello", "ts": "5.5"}
		}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		posts := waitForPosts(t, env.api, 1)
		assert.Equal(t, "routed", posts[0].Text)
		// Top-level message: its own ts becomes the thread root.
		assert.Equal(t, "5.5", posts[0].ThreadTS)
	})

	t.Run("ignores bot and subtype messages", func(t *testing.T) {
		env := newSlackEnv(t, &scriptedClient{})
		rec := postEvent(t, env, `{
			"type": "event_callback",
			"event": {"type": "message", "channel": "C1", "bot_id": "B1", "text": "beep", "ts": "6.6"}
		}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		_, err := env.threads.Lookup(context.Background(), "C1:6.6")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		env := newSlackEnv(t, &scriptedClient{})
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/slack/events", strings.NewReader(`{broken`))
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		err := env.service.EventsHandler()(c)
		require.Error(t, err)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}
