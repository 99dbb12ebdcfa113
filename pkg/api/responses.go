package api

import "github.com/relay-agents/relay/pkg/models"

// AbortResponse is the body of POST /api/v1/sessions/:id/abort.
// Aborted is false when the session was not running; the call still
// succeeds (abort is idempotent).
type AbortResponse struct {
	SessionID string `json:"session_id"`
	Aborted   bool   `json:"aborted"`
}

// MessagesResponse is the body of GET /api/v1/sessions/:id/messages:
// the conversation reconstructed from the event log.
type MessagesResponse struct {
	SessionID string           `json:"session_id"`
	Messages  []models.Message `json:"messages"`
}

// EventsResponse is the body of GET /api/v1/sessions/:id/events.
// Status is the session status observed by the read, so a client can
// tell an empty long-poll timeout (running, reconnect) apart from a
// finished session (terminal, stop polling).
type EventsResponse struct {
	SessionID string               `json:"session_id"`
	Status    string               `json:"status"`
	Events    []models.EventRecord `json:"events"`
}
