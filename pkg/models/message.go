package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Role identifies who produced a message.
type Role string

const (
	RoleUser       Role = "user"
	RoleAssistant  Role = "assistant"
	RoleToolResult Role = "tool_result"
)

// ContentType tags a content block inside a message.
type ContentType string

const (
	ContentText      ContentType = "text"
	ContentToolCall  ContentType = "tool_call"
	ContentImage     ContentType = "image"
	ContentReasoning ContentType = "reasoning"
)

// ToolCall is a model-requested tool invocation.
type ToolCall struct {
	CallID    string          `json:"call_id"`
	ToolName  string          `json:"tool_name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// ContentBlock is one element of a message's ordered content list.
type ContentBlock struct {
	Type     ContentType `json:"type"`
	Text     string      `json:"text,omitempty"`
	ToolCall *ToolCall   `json:"tool_call,omitempty"`
	Source   string      `json:"source,omitempty"`
}

// Usage aggregates token consumption across model calls.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Add accumulates another usage sample into u.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.TotalTokens += other.TotalTokens
}

// Message is the conversation unit fed to and produced by the model.
// Tool results are messages too: Role tool_result, CallID referencing the
// assistant tool_call that requested them, and IsError when the tool failed.
// Prefix is a display-only speaker tag; it is not sent to the model unless
// the orchestrator's convert hook chooses to apply it.
type Message struct {
	Role      Role           `json:"role"`
	Content   []ContentBlock `json:"content"`
	CallID    string         `json:"call_id,omitempty"`
	IsError   bool           `json:"is_error,omitempty"`
	Prefix    string         `json:"prefix,omitempty"`
	Timestamp time.Time      `json:"timestamp,omitzero"`
	Usage     *Usage         `json:"usage,omitempty"`
}

// NewUserMessage creates a plain-text user message.
func NewUserMessage(text string) Message {
	return Message{
		Role:      RoleUser,
		Content:   []ContentBlock{{Type: ContentText, Text: text}},
		Timestamp: time.Now(),
	}
}

// NewAssistantMessage creates a plain-text assistant message.
func NewAssistantMessage(text string) Message {
	return Message{
		Role:      RoleAssistant,
		Content:   []ContentBlock{{Type: ContentText, Text: text}},
		Timestamp: time.Now(),
	}
}

// NewToolResultMessage creates a tool_result message for the given call.
func NewToolResultMessage(callID, text string, isError bool) Message {
	return Message{
		Role:      RoleToolResult,
		Content:   []ContentBlock{{Type: ContentText, Text: text}},
		CallID:    callID,
		IsError:   isError,
		Timestamp: time.Now(),
	}
}

// Text concatenates the message's text blocks.
func (m Message) Text() string {
	var b strings.Builder
	for _, block := range m.Content {
		if block.Type == ContentText {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}

// ToolCalls returns the tool_call blocks in content order.
func (m Message) ToolCalls() []ToolCall {
	var calls []ToolCall
	for _, block := range m.Content {
		if block.Type == ContentToolCall && block.ToolCall != nil {
			calls = append(calls, *block.ToolCall)
		}
	}
	return calls
}
