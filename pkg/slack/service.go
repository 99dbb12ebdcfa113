package slack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/relay-agents/relay/ent/chatsession"
	"github.com/relay-agents/relay/pkg/models"
	"github.com/relay-agents/relay/pkg/run"
	"github.com/relay-agents/relay/pkg/services"
)

const postTimeout = 10 * time.Second

// MessageInput is one inbound Slack message routed to the agent.
type MessageInput struct {
	ChannelID string
	// ThreadTS is the root timestamp of the thread; for a top-level
	// message it equals the message's own ts.
	ThreadTS string
	UserID   string
	Text     string
}

// Service routes Slack threads to sessions. Nil-safe: all methods are
// no-ops when the service is nil.
type Service struct {
	client   *Client
	threads  *services.ThreadService
	sessions *services.SessionService
	runner   *run.Runner
	logger   *slog.Logger
}

// NewService creates the Slack front-end. Returns nil when token is
// empty, which disables the integration.
func NewService(token, apiURL string, threads *services.ThreadService, sessions *services.SessionService, runner *run.Runner) *Service {
	if token == "" {
		return nil
	}
	client := NewClient(token)
	if apiURL != "" {
		client = NewClientWithAPIURL(token, apiURL)
	}
	return NewServiceWithClient(client, threads, sessions, runner)
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, threads *services.ThreadService, sessions *services.SessionService, runner *run.Runner) *Service {
	return &Service{
		client:   client,
		threads:  threads,
		sessions: sessions,
		runner:   runner,
		logger:   slog.Default().With("component", "slack-service"),
	}
}

// HandleMessage binds the thread to a session, submits the turn, and
// replies in-thread when the run finishes. Fail-open: delivery errors
// are logged, never returned to Slack.
func (s *Service) HandleMessage(ctx context.Context, input MessageInput) error {
	if s == nil {
		return nil
	}
	if input.Text == "" {
		return nil
	}

	threadKey := fmt.Sprintf("%s:%s", input.ChannelID, input.ThreadTS)

	sessionID, seed, err := s.resolveSession(ctx, threadKey, input)
	if err != nil {
		return err
	}

	done, err := s.runner.Submit(ctx, run.SubmitInput{
		SessionID: sessionID,
		Message:   input.Text,
		Seed:      seed,
	})
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			s.postReply(input, "Still working on the previous message in this thread.")
			return nil
		}
		return err
	}

	go s.replyWhenDone(sessionID, input, done)
	return nil
}

// resolveSession maps the thread key to its session, creating the
// binding on first contact. A continuation seeds the agent from the
// session's stored final history, skipping log reconstruction.
func (s *Service) resolveSession(ctx context.Context, threadKey string, input MessageInput) (string, []models.Message, error) {
	sessionID, err := s.threads.Lookup(ctx, threadKey)
	if errors.Is(err, services.ErrNotFound) {
		sessionID = uuid.NewString()
		bindErr := s.threads.Bind(ctx, threadKey, sessionID, map[string]interface{}{
			"channel_id": input.ChannelID,
			"thread_ts":  input.ThreadTS,
			"user_id":    input.UserID,
		})
		if bindErr != nil {
			return "", nil, bindErr
		}
		return sessionID, nil, nil
	}
	if err != nil {
		return "", nil, err
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			// Session was purged; rebind the thread to a fresh one.
			sessionID = uuid.NewString()
			if bindErr := s.threads.Bind(ctx, threadKey, sessionID, map[string]interface{}{
				"channel_id": input.ChannelID,
				"thread_ts":  input.ThreadTS,
				"user_id":    input.UserID,
			}); bindErr != nil {
				return "", nil, bindErr
			}
			return sessionID, nil, nil
		}
		return "", nil, err
	}

	var seed []models.Message
	if len(sess.Response) > 0 {
		if err := json.Unmarshal(sess.Response, &seed); err != nil {
			s.logger.Warn("Failed to decode stored history, falling back to log reconstruction",
				"session_id", sessionID, "error", err)
			seed = nil
		}
	}
	return sessionID, seed, nil
}

// replyWhenDone waits for the run to terminate and posts the outcome.
func (s *Service) replyWhenDone(sessionID string, input MessageInput, done <-chan struct{}) {
	<-done

	ctx, cancel := context.WithTimeout(context.Background(), postTimeout)
	defer cancel()

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		s.logger.Error("Failed to load session for Slack reply", "session_id", sessionID, "error", err)
		return
	}

	switch sess.Status {
	case chatsession.StatusCompleted:
		text := finalAssistantText(sess.Response)
		if text == "" {
			text = "Done."
		}
		s.postReply(input, text)
	case chatsession.StatusError:
		reason := "unknown error"
		if sess.ErrorMessage != nil {
			reason = *sess.ErrorMessage
		}
		s.postReply(input, fmt.Sprintf(":x: The agent run failed: %s", reason))
	}
}

func (s *Service) postReply(input MessageInput, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), postTimeout)
	defer cancel()

	if err := s.client.PostReply(ctx, input.ChannelID, input.ThreadTS, text, postTimeout); err != nil {
		s.logger.Error("Failed to post Slack reply",
			"channel_id", input.ChannelID,
			"thread_ts", input.ThreadTS,
			"error", err)
	}
}

// finalAssistantText extracts the last assistant message's text from
// the stored history.
func finalAssistantText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var history []models.Message
	if err := json.Unmarshal(raw, &history); err != nil {
		return ""
	}
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == models.RoleAssistant {
			return history[i].Text()
		}
	}
	return ""
}
