package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event types appended to a session's log. Readers must tolerate types
// they do not recognize.
const (
	EventUserMessage     = "user_message"
	EventAgentStart      = "agent_start"
	EventTurnStart       = "turn_start"
	EventMessageStart    = "message_start"  // transient, never persisted
	EventMessageUpdate   = "message_update" // transient, never persisted
	EventMessageEnd      = "message_end"
	EventToolStart       = "tool_execution_start"
	EventToolUpdate      = "tool_execution_update"
	EventToolEnd         = "tool_execution_end"
	EventTurnEnd         = "turn_end"
	EventAgentEnd        = "agent_end"
	EventArtifactUpdate  = "artifact_update"
	EventSessionComplete = "session_complete"
	EventSessionError    = "session_error"
	EventSessionAborted  = "session_aborted"
)

// IsTransientEvent reports whether the event type exists only for live
// consumers (streaming deltas) and must not reach the store.
func IsTransientEvent(eventType string) bool {
	return eventType == EventMessageStart || eventType == EventMessageUpdate
}

// UserMessagePayload is the data of a user_message event.
type UserMessagePayload struct {
	Message Message `json:"message"`
}

// MessageUpdatePayload is the data of a transient message_update event.
type MessageUpdatePayload struct {
	Delta string `json:"delta"`
}

// MessageEndPayload carries the authoritative final assistant message.
type MessageEndPayload struct {
	Message Message `json:"message"`
}

// ToolExecutionStartPayload is the data of a tool_execution_start event.
type ToolExecutionStartPayload struct {
	ToolName  string          `json:"tool_name"`
	CallID    string          `json:"call_id"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// ToolExecutionEndPayload is the data of a tool_execution_end event.
type ToolExecutionEndPayload struct {
	ToolName string  `json:"tool_name"`
	CallID   string  `json:"call_id"`
	IsError  bool    `json:"is_error"`
	Result   Message `json:"result"`
}

// TurnEndPayload groups the assistant message of a turn with its tool
// results in canonical (tool_call block) order. Reconstruction depends
// on this being the only place results are grouped.
type TurnEndPayload struct {
	Message     Message   `json:"message"`
	ToolResults []Message `json:"tool_results"`
}

// SessionOutcomePayload is the data of the terminal session_* events.
type SessionOutcomePayload struct {
	Reason string `json:"reason,omitempty"`
	Usage  *Usage `json:"usage,omitempty"`
}

// EventRecord is the reader-facing shape of one persisted event.
type EventRecord struct {
	ID        int                    `json:"id"`
	Type      string                 `json:"type"`
	Data      map[string]interface{} `json:"data,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// EncodePayload converts a typed payload into the map form stored in the
// event's JSON column.
func EncodePayload(v any) map[string]interface{} {
	raw, err := json.Marshal(v)
	if err != nil {
		return map[string]interface{}{"encode_error": err.Error()}
	}
	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return map[string]interface{}{"encode_error": err.Error()}
	}
	return data
}

// DecodePayload converts stored event data back into a typed payload.
func DecodePayload[T any](data map[string]interface{}) (T, error) {
	var out T
	raw, err := json.Marshal(data)
	if err != nil {
		return out, fmt.Errorf("failed to re-marshal event data: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("failed to decode event payload: %w", err)
	}
	return out, nil
}
