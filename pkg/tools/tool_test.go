package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relay-agents/relay/pkg/models"
)

// funcTool adapts a function to the Tool interface for tests.
type funcTool struct {
	name string
	fn   func(ctx context.Context, args json.RawMessage) (string, error)
}

func (t *funcTool) Name() string             { return t.name }
func (t *funcTool) Description() string      { return "test tool " + t.name }
func (t *funcTool) Schema() json.RawMessage  { return json.RawMessage(`{"type":"object"}`) }
func (t *funcTool) Execute(ctx context.Context, args json.RawMessage) (string, error) {
	return t.fn(ctx, args)
}

func TestExecutor_Invoke(t *testing.T) {
	executor := NewExecutor(
		&funcTool{name: "echo", fn: func(_ context.Context, args json.RawMessage) (string, error) {
			return string(args), nil
		}},
		&funcTool{name: "broken", fn: func(_ context.Context, _ json.RawMessage) (string, error) {
			return "", errors.New("disk on fire")
		}},
		&funcTool{name: "panicky", fn: func(_ context.Context, _ json.RawMessage) (string, error) {
			panic("unexpected nil")
		}},
	)
	ctx := context.Background()

	t.Run("returns the tool output as a tool result", func(t *testing.T) {
		result := executor.Invoke(ctx, models.ToolCall{
			CallID:    "call-1",
			ToolName:  "echo",
			Arguments: json.RawMessage(`{"x":1}`),
		})
		assert.Equal(t, models.RoleToolResult, result.Role)
		assert.Equal(t, "call-1", result.CallID)
		assert.False(t, result.IsError)
		assert.Equal(t, `{"x":1}`, result.Text())
	})

	t.Run("unknown tool becomes an error result", func(t *testing.T) {
		result := executor.Invoke(ctx, models.ToolCall{CallID: "call-2", ToolName: "nope"})
		assert.True(t, result.IsError)
		assert.Equal(t, "unknown tool: nope", result.Text())
		assert.Equal(t, "call-2", result.CallID)
	})

	t.Run("tool error becomes an error result", func(t *testing.T) {
		result := executor.Invoke(ctx, models.ToolCall{CallID: "call-3", ToolName: "broken"})
		assert.True(t, result.IsError)
		assert.Equal(t, "disk on fire", result.Text())
	})

	t.Run("panic is contained as an error result", func(t *testing.T) {
		result := executor.Invoke(ctx, models.ToolCall{CallID: "call-4", ToolName: "panicky"})
		assert.True(t, result.IsError)
		assert.Contains(t, result.Text(), "tool panicky panicked")
	})

	t.Run("cancelled context becomes an aborted result", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		result := executor.Invoke(cancelled, models.ToolCall{CallID: "call-5", ToolName: "echo"})
		assert.True(t, result.IsError)
		assert.Equal(t, "aborted", result.Text())
	})
}

func TestExecutor_Definitions(t *testing.T) {
	executor := NewExecutor(
		&funcTool{name: "zeta", fn: nil},
		&funcTool{name: "alpha", fn: nil},
		&funcTool{name: "zeta", fn: nil}, // duplicate keeps the original slot
	)

	defs := executor.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "zeta", defs[0].Name)
	assert.Equal(t, "alpha", defs[1].Name)
	assert.Equal(t, "test tool alpha", defs[1].Description)
	assert.JSONEq(t, `{"type":"object"}`, string(defs[0].Schema))
}
