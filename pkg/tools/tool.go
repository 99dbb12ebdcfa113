// Package tools defines the tool interface the agent loop calls and the
// executor that shields the loop from tool failures.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/relay-agents/relay/pkg/llm"
	"github.com/relay-agents/relay/pkg/models"
)

// Tool is one capability the model can invoke.
type Tool interface {
	Name() string
	Description() string
	// Schema returns the JSON Schema of the arguments object.
	Schema() json.RawMessage
	// Execute runs the tool. A returned error becomes an is_error tool
	// result; it never aborts the session.
	Execute(ctx context.Context, args json.RawMessage) (string, error)
}

// Executor dispatches tool calls by name. Every failure mode, including
// unknown tools and panics, is converted into an is_error tool result so
// the model can observe the failure and continue.
type Executor struct {
	tools  map[string]Tool
	order  []string
	logger *slog.Logger
}

// NewExecutor creates an executor over the given tool set. Later tools
// with a duplicate name replace earlier ones.
func NewExecutor(toolList ...Tool) *Executor {
	e := &Executor{
		tools:  make(map[string]Tool, len(toolList)),
		logger: slog.Default().With("component", "tools"),
	}
	for _, t := range toolList {
		if _, exists := e.tools[t.Name()]; !exists {
			e.order = append(e.order, t.Name())
		}
		e.tools[t.Name()] = t
	}
	return e
}

// Definitions returns the tool schemas in registration order, for the
// model request.
func (e *Executor) Definitions() []llm.ToolDefinition {
	defs := make([]llm.ToolDefinition, 0, len(e.order))
	for _, name := range e.order {
		t := e.tools[name]
		defs = append(defs, llm.ToolDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			Schema:      t.Schema(),
		})
	}
	return defs
}

// Invoke executes one tool call and always returns a tool_result
// message; failures are reported through the result's IsError flag.
func (e *Executor) Invoke(ctx context.Context, call models.ToolCall) models.Message {
	tool, ok := e.tools[call.ToolName]
	if !ok {
		return errorResult(call.CallID, fmt.Sprintf("unknown tool: %s", call.ToolName))
	}

	content, err := e.run(ctx, tool, call)
	if err != nil {
		if ctx.Err() != nil {
			return errorResult(call.CallID, "aborted")
		}
		return errorResult(call.CallID, err.Error())
	}
	return models.NewToolResultMessage(call.CallID, content, false)
}

// run executes the tool with panic containment. A panicking tool must
// not take the session down with it.
func (e *Executor) run(ctx context.Context, tool Tool, call models.ToolCall) (content string, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Tool panicked",
				"tool", call.ToolName,
				"panic", r,
				"stack", string(debug.Stack()))
			content = ""
			err = fmt.Errorf("tool %s panicked: %v", call.ToolName, r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return tool.Execute(ctx, call.Arguments)
}

func errorResult(callID, message string) models.Message {
	return models.NewToolResultMessage(callID, message, true)
}
