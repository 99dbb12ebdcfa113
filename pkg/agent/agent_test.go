package agent

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relay-agents/relay/pkg/llm"
	"github.com/relay-agents/relay/pkg/models"
	"github.com/relay-agents/relay/pkg/tools"
)

// scriptedClient replays a fixed chunk sequence per Stream call and
// records every request it receives.
type scriptedClient struct {
	mu       sync.Mutex
	script   [][]llm.Chunk
	requests []llm.Request
}

func (c *scriptedClient) Stream(ctx context.Context, req llm.Request) (<-chan llm.Chunk, error) {
	c.mu.Lock()
	c.requests = append(c.requests, req)
	if len(c.script) == 0 {
		c.mu.Unlock()
		return nil, errors.New("script exhausted")
	}
	chunks := c.script[0]
	c.script = c.script[1:]
	c.mu.Unlock()

	out := make(chan llm.Chunk, len(chunks))
	for _, chunk := range chunks {
		out <- chunk
	}
	close(out)
	return out, nil
}

func (c *scriptedClient) recorded() []llm.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]llm.Request(nil), c.requests...)
}

// blockingClient holds the stream open until the context is cancelled.
type blockingClient struct {
	started chan struct{}
}

func (c *blockingClient) Stream(ctx context.Context, req llm.Request) (<-chan llm.Chunk, error) {
	out := make(chan llm.Chunk, 1)
	go func() {
		defer close(out)
		close(c.started)
		<-ctx.Done()
		out <- llm.Chunk{Err: ctx.Err()}
	}()
	return out, nil
}

func textFinal(text string, usage *models.Usage) llm.Chunk {
	msg := models.NewAssistantMessage(text)
	msg.Usage = usage
	return llm.Chunk{Message: &msg, Usage: usage}
}

func toolFinal(text, callID, toolName, args string) llm.Chunk {
	msg := models.Message{
		Role: models.RoleAssistant,
		Content: []models.ContentBlock{
			{Type: models.ContentText, Text: text},
			{Type: models.ContentToolCall, ToolCall: &models.ToolCall{
				CallID:    callID,
				ToolName:  toolName,
				Arguments: json.RawMessage(args),
			}},
		},
		Timestamp: time.Now(),
	}
	return llm.Chunk{Message: &msg}
}

type echoTool struct{}

func (echoTool) Name() string            { return "echo" }
func (echoTool) Description() string     { return "echoes its arguments" }
func (echoTool) Schema() json.RawMessage { return json.RawMessage(`{"type":"object"}`) }
func (echoTool) Execute(_ context.Context, args json.RawMessage) (string, error) {
	return string(args), nil
}

func collectEvents(a *Agent) *[]Event {
	var events []Event
	a.Subscribe(func(e Event) { events = append(events, e) })
	return &events
}

func eventTypes(events []Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}

func TestAgent_PromptWithoutTools(t *testing.T) {
	client := &scriptedClient{script: [][]llm.Chunk{
		{
			{TextDelta: "All "},
			{TextDelta: "good."},
			textFinal("All good.", &models.Usage{InputTokens: 10, OutputTokens: 4, TotalTokens: 14}),
		},
	}}
	a := New(client, nil, WithSystemPrompt("be brief"))
	events := collectEvents(a)

	final, err := a.Prompt(context.Background(), "status?")
	require.NoError(t, err)
	assert.Equal(t, "All good.", final.Text())

	assert.Equal(t, []string{
		models.EventAgentStart,
		models.EventTurnStart,
		models.EventMessageStart,
		models.EventMessageUpdate,
		models.EventMessageUpdate,
		models.EventMessageEnd,
		models.EventTurnEnd,
		models.EventAgentEnd,
	}, eventTypes(*events))

	// turn_end of a final turn carries an empty result list, not nil.
	turnEnd, err := models.DecodePayload[models.TurnEndPayload]((*events)[6].Payload)
	require.NoError(t, err)
	assert.NotNil(t, turnEnd.ToolResults)
	assert.Empty(t, turnEnd.ToolResults)

	history := a.Messages()
	require.Len(t, history, 2)
	assert.Equal(t, models.RoleUser, history[0].Role)
	assert.Equal(t, "status?", history[0].Text())
	assert.Equal(t, models.RoleAssistant, history[1].Role)

	assert.Equal(t, models.Usage{InputTokens: 10, OutputTokens: 4, TotalTokens: 14}, a.Usage())

	reqs := client.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, "be brief", reqs[0].System)
}

func TestAgent_PromptWithToolCalls(t *testing.T) {
	client := &scriptedClient{script: [][]llm.Chunk{
		{toolFinal("Checking.", "call-1", "echo", `{"q":"logs"}`)},
		{
			{TextDelta: "Done."},
			textFinal("Done.", &models.Usage{InputTokens: 20, OutputTokens: 2, TotalTokens: 22}),
		},
	}}
	executor := tools.NewExecutor(echoTool{})
	a := New(client, executor)
	events := collectEvents(a)

	final, err := a.Prompt(context.Background(), "check the logs")
	require.NoError(t, err)
	assert.Equal(t, "Done.", final.Text())

	assert.Equal(t, []string{
		models.EventAgentStart,
		models.EventTurnStart,
		models.EventMessageEnd,
		models.EventToolStart,
		models.EventToolEnd,
		models.EventTurnEnd,
		models.EventTurnStart,
		models.EventMessageStart,
		models.EventMessageUpdate,
		models.EventMessageEnd,
		models.EventTurnEnd,
		models.EventAgentEnd,
	}, eventTypes(*events))

	toolEnd, err := models.DecodePayload[models.ToolExecutionEndPayload]((*events)[4].Payload)
	require.NoError(t, err)
	assert.Equal(t, "echo", toolEnd.ToolName)
	assert.Equal(t, "call-1", toolEnd.CallID)
	assert.False(t, toolEnd.IsError)
	assert.Equal(t, `{"q":"logs"}`, toolEnd.Result.Text())

	turnEnd, err := models.DecodePayload[models.TurnEndPayload]((*events)[5].Payload)
	require.NoError(t, err)
	require.Len(t, turnEnd.ToolResults, 1)
	assert.Equal(t, "call-1", turnEnd.ToolResults[0].CallID)

	// user, assistant+tool_call, tool_result, final assistant.
	history := a.Messages()
	require.Len(t, history, 4)
	assert.Equal(t, models.RoleToolResult, history[2].Role)

	// The second model call sees the tool result.
	reqs := client.recorded()
	require.Len(t, reqs, 2)
	assert.Len(t, reqs[0].Tools, 1)
	require.Len(t, reqs[1].Messages, 3)
	assert.Equal(t, models.RoleToolResult, reqs[1].Messages[2].Role)
}

func TestAgent_FinalTurnRunsWithoutTools(t *testing.T) {
	client := &scriptedClient{script: [][]llm.Chunk{
		{toolFinal("one more", "call-1", "echo", `{}`)},
		{textFinal("forced conclusion", nil)},
	}}
	a := New(client, tools.NewExecutor(echoTool{}), WithMaxTurns(2))

	final, err := a.Prompt(context.Background(), "go")
	require.NoError(t, err)
	assert.Equal(t, "forced conclusion", final.Text())

	reqs := client.recorded()
	require.Len(t, reqs, 2)
	assert.NotEmpty(t, reqs[0].Tools)
	assert.Empty(t, reqs[1].Tools, "the last allowed turn offers no tools")
}

func TestAgent_AbortDuringModelCall(t *testing.T) {
	client := &blockingClient{started: make(chan struct{})}
	a := New(client, nil)
	events := collectEvents(a)

	errCh := make(chan error, 1)
	go func() {
		_, err := a.Prompt(context.Background(), "never finishes")
		errCh <- err
	}()

	<-client.started
	a.Abort()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrAborted)
	case <-time.After(2 * time.Second):
		t.Fatal("abort did not unblock the prompt")
	}

	types := eventTypes(*events)
	assert.Equal(t, models.EventAgentEnd, types[len(types)-1])
}

func TestAgent_AbortIsIdempotent(t *testing.T) {
	a := New(&scriptedClient{}, nil)
	a.Abort()
	a.Abort()

	_, err := a.Prompt(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrAborted)
}

func TestAgent_StreamErrorPropagates(t *testing.T) {
	client := &scriptedClient{script: [][]llm.Chunk{
		{{Err: errors.New("rate limited")}},
	}}
	a := New(client, nil)

	_, err := a.Prompt(context.Background(), "hi")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAborted)
	assert.ErrorContains(t, err, "rate limited")
}

func TestAgent_StreamWithoutFinalMessageFails(t *testing.T) {
	client := &scriptedClient{script: [][]llm.Chunk{
		{{TextDelta: "half a tho"}},
	}}
	a := New(client, nil)

	_, err := a.Prompt(context.Background(), "hi")
	assert.ErrorContains(t, err, "without a final message")
}

func TestAgent_RejectsConcurrentPrompt(t *testing.T) {
	client := &blockingClient{started: make(chan struct{})}
	a := New(client, nil)

	go func() { _, _ = a.Prompt(context.Background(), "first") }()
	<-client.started
	defer a.Abort()

	_, err := a.Prompt(context.Background(), "second")
	assert.ErrorContains(t, err, "already running")
}

func TestAgent_ReplaceMessagesSeedsHistory(t *testing.T) {
	client := &scriptedClient{script: [][]llm.Chunk{
		{textFinal("continuing", nil)},
	}}
	a := New(client, nil)

	seed := []models.Message{
		models.NewUserMessage("earlier question"),
		models.NewAssistantMessage("earlier answer"),
	}
	a.ReplaceMessages(seed)

	_, err := a.Prompt(context.Background(), "follow-up")
	require.NoError(t, err)

	reqs := client.recorded()
	require.Len(t, reqs, 1)
	require.Len(t, reqs[0].Messages, 3)
	assert.Equal(t, "earlier question", reqs[0].Messages[0].Text())
	assert.Equal(t, "follow-up", reqs[0].Messages[2].Text())
}

func TestAgent_ConvertHookAppliesWithoutMutatingHistory(t *testing.T) {
	client := &scriptedClient{script: [][]llm.Chunk{
		{textFinal("ok", nil)},
	}}
	a := New(client, nil, WithConvert(func(msgs []models.Message) []models.Message {
		out := make([]models.Message, len(msgs))
		for i, m := range msgs {
			if m.Role == models.RoleUser {
				m = models.NewUserMessage("[ops] " + m.Text())
			}
			out[i] = m
		}
		return out
	}))

	_, err := a.Prompt(context.Background(), "restart it")
	require.NoError(t, err)

	reqs := client.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, "[ops] restart it", reqs[0].Messages[0].Text())

	// Stored history keeps the original text.
	assert.Equal(t, "restart it", a.Messages()[0].Text())
}

func TestAgent_UsageAccumulatesAcrossTurns(t *testing.T) {
	client := &scriptedClient{script: [][]llm.Chunk{
		{toolFinal("", "call-1", "echo", `{}`)},
		{textFinal("done", &models.Usage{InputTokens: 5, OutputTokens: 1, TotalTokens: 6})},
	}}
	// First final carries usage too.
	first := client.script[0][0].Message
	first.Usage = &models.Usage{InputTokens: 7, OutputTokens: 3, TotalTokens: 10}

	a := New(client, tools.NewExecutor(echoTool{}))
	_, err := a.Prompt(context.Background(), "go")
	require.NoError(t, err)

	assert.Equal(t, models.Usage{InputTokens: 12, OutputTokens: 4, TotalTokens: 16}, a.Usage())
}
