package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/relay-agents/relay/pkg/run"
)

// chatHandler handles POST /api/v1/chat.
//
// The response is an SSE stream carrying liveness only, never agent
// data: one session event with the session id, a heartbeat while the
// run is alive, and one done event with the terminal status. Clients
// read the actual events through the resumable events endpoint.
func (s *Server) chatHandler(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	done, err := s.runner.Submit(c.Request().Context(), run.SubmitInput{
		SessionID: req.SessionID,
		Message:   req.Message,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return s.streamLiveness(c, req.SessionID, done)
}

// streamLiveness writes the session/heartbeat/done SSE envelope.
func (s *Server) streamLiveness(c echo.Context, sessionID string, done <-chan struct{}) error {
	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)

	if err := writeSSE(resp, "session", map[string]string{"session_id": sessionID}); err != nil {
		return err
	}

	heartbeat := time.NewTicker(s.cfg.HeartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-done:
			status := s.terminalStatus(c, sessionID)
			// Best effort: the client may already be gone.
			_ = writeSSE(resp, "done", map[string]string{"status": status})
			return nil

		case <-heartbeat.C:
			if err := writeSSE(resp, "heartbeat", map[string]string{"ts": time.Now().Format(time.RFC3339)}); err != nil {
				// Client disconnected; the run continues without us.
				return nil
			}

		case <-c.Request().Context().Done():
			return nil
		}
	}
}

// terminalStatus reads the session's final status for the done event.
func (s *Server) terminalStatus(c echo.Context, sessionID string) string {
	sess, err := s.sessionService.Get(c.Request().Context(), sessionID)
	if err != nil {
		return "error"
	}
	return string(sess.Status)
}

func writeSSE(resp *echo.Response, event string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(resp, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	resp.Flush()
	return nil
}
