// Package llm adapts chat-model providers to a single streaming
// interface the agent loop consumes.
package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/relay-agents/relay/pkg/config"
	"github.com/relay-agents/relay/pkg/models"
)

// ToolDefinition is the schema a tool exposes to the model.
type ToolDefinition struct {
	Name        string
	Description string
	Schema      json.RawMessage // JSON Schema of the arguments object
}

// Request is one model turn: the conversation so far plus the tool set.
type Request struct {
	System   string
	Messages []models.Message
	Tools    []ToolDefinition
}

// Chunk is one element of a model response stream. TextDelta chunks
// carry incremental assistant text; the final chunk carries the
// assembled Message (and Usage) and is followed by channel close.
// A chunk with Err set terminates the stream.
type Chunk struct {
	TextDelta string
	Message   *models.Message
	Usage     *models.Usage
	Err       error
}

// Client streams one model turn. Implementations close the returned
// channel when the turn is complete or failed.
type Client interface {
	Stream(ctx context.Context, req Request) (<-chan Chunk, error)
}

// NewFromConfig builds the provider selected by configuration.
func NewFromConfig(cfg *config.Config) (Client, error) {
	switch cfg.LLMProvider {
	case config.ProviderAnthropic:
		return NewAnthropicClient(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModel, cfg.MaxTokens), nil
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModel), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.LLMProvider)
	}
}
