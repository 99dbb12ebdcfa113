package models

import (
	"encoding/json"
	"time"

	"github.com/relay-agents/relay/ent"
)

// SessionSummary is the list-view shape of a session.
type SessionSummary struct {
	ID             string     `json:"id"`
	InitialMessage string     `json:"initial_message"`
	Status         string     `json:"status"`
	EventCount     int        `json:"event_count"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	ErrorMessage   *string    `json:"error_message,omitempty"`
}

// NewSessionSummary converts an ent row to its list-view shape.
func NewSessionSummary(s *ent.ChatSession) SessionSummary {
	return SessionSummary{
		ID:             s.ID,
		InitialMessage: s.InitialMessage,
		Status:         string(s.Status),
		EventCount:     s.EventCount,
		CreatedAt:      s.CreatedAt,
		CompletedAt:    s.CompletedAt,
		ErrorMessage:   s.ErrorMessage,
	}
}

// SessionDetail adds the stored response and usage to the summary.
type SessionDetail struct {
	SessionSummary
	Response []Message `json:"response,omitempty"`
	Usage    *Usage    `json:"usage,omitempty"`
}

// NewSessionDetail converts an ent row to its detail shape. The stored
// response blob is decoded best-effort; a corrupt blob yields an empty
// history rather than an error.
func NewSessionDetail(s *ent.ChatSession) SessionDetail {
	detail := SessionDetail{SessionSummary: NewSessionSummary(s)}
	if len(s.Response) > 0 {
		var msgs []Message
		if err := json.Unmarshal(s.Response, &msgs); err == nil {
			detail.Response = msgs
		}
	}
	if len(s.Usage) > 0 {
		if usage, err := DecodePayload[Usage](s.Usage); err == nil {
			detail.Usage = &usage
		}
	}
	return detail
}

// SessionListParams controls pagination for the session list.
type SessionListParams struct {
	Page     int
	PageSize int
}

// SessionListResult is one page of session summaries, newest first.
type SessionListResult struct {
	Sessions []SessionSummary `json:"sessions"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}
