// Package agent implements the model-tool loop. The loop owns its
// in-memory message history for the duration of a run and emits a typed
// event for every state change; persistence and transport are the
// subscribers' problem.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/relay-agents/relay/pkg/llm"
	"github.com/relay-agents/relay/pkg/models"
	"github.com/relay-agents/relay/pkg/tools"
)

// ErrAborted is returned by Prompt when the loop was cancelled, either
// by Abort or by context cancellation.
var ErrAborted = errors.New("agent loop aborted")

// DefaultMaxTurns bounds the tool-calling loop. The final turn is made
// without tools so the model must conclude.
const DefaultMaxTurns = 30

// Event is one agent lifecycle notification. Payload is nil for marker
// events (agent_start, turn_start, message_start, agent_end).
type Event struct {
	Type    string
	Payload map[string]interface{}
}

// Listener receives events synchronously, in emission order, from the
// loop goroutine. Listeners must not block.
type Listener func(Event)

// ConvertFunc rewrites the history immediately before a model call,
// e.g. to apply speaker prefixes. The stored history is not modified.
type ConvertFunc func([]models.Message) []models.Message

// Agent runs the prompt loop for one session. Not shared between runs.
type Agent struct {
	llmClient llm.Client
	executor  *tools.Executor
	system    string
	convert   ConvertFunc
	maxTurns  int
	logger    *slog.Logger

	mu           sync.Mutex
	messages     []models.Message
	listeners    map[int]Listener
	nextListener int
	cancelTurn   context.CancelFunc

	usage   models.Usage
	usageMu sync.Mutex

	aborted atomic.Bool
	running atomic.Bool
}

// Option configures an Agent.
type Option func(*Agent)

// WithSystemPrompt sets the system prompt sent on every model call.
func WithSystemPrompt(system string) Option {
	return func(a *Agent) { a.system = system }
}

// WithMaxTurns overrides the turn ceiling.
func WithMaxTurns(n int) Option {
	return func(a *Agent) {
		if n > 0 {
			a.maxTurns = n
		}
	}
}

// WithConvert installs a history rewrite hook applied before each model
// call.
func WithConvert(fn ConvertFunc) Option {
	return func(a *Agent) { a.convert = fn }
}

// New creates an agent loop over the given model client and tool
// executor.
func New(llmClient llm.Client, executor *tools.Executor, opts ...Option) *Agent {
	a := &Agent{
		llmClient: llmClient,
		executor:  executor,
		maxTurns:  DefaultMaxTurns,
		logger:    slog.Default().With("component", "agent"),
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Subscribe registers a listener and returns its unsubscribe function.
func (a *Agent) Subscribe(l Listener) func() {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.nextListener
	a.nextListener++
	a.listeners[id] = l
	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.listeners, id)
	}
}

// ReplaceMessages swaps the loop's history, used to seed a reactivated
// session from its reconstructed log or an external thread.
func (a *Agent) ReplaceMessages(messages []models.Message) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append([]models.Message(nil), messages...)
}

// Messages returns a copy of the current history.
func (a *Agent) Messages() []models.Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.Message(nil), a.messages...)
}

// Usage returns the tokens consumed across all turns of this run.
func (a *Agent) Usage() models.Usage {
	a.usageMu.Lock()
	defer a.usageMu.Unlock()
	return a.usage
}

// Abort flags the loop and cancels any in-flight model or tool call.
// Safe to call from any goroutine, any number of times.
func (a *Agent) Abort() {
	a.aborted.Store(true)
	a.mu.Lock()
	cancel := a.cancelTurn
	a.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Prompt appends the user message and runs the loop until the model
// concludes without tool calls, the loop is aborted, or the model
// transport fails. The final assistant message is returned on normal
// completion; ErrAborted when cancelled.
func (a *Agent) Prompt(ctx context.Context, userText string) (models.Message, error) {
	if !a.running.CompareAndSwap(false, true) {
		return models.Message{}, fmt.Errorf("agent loop is already running")
	}
	defer a.running.Store(false)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.mu.Lock()
	a.cancelTurn = cancel
	a.messages = append(a.messages, models.NewUserMessage(userText))
	a.mu.Unlock()

	a.emit(models.EventAgentStart, nil)
	defer a.emit(models.EventAgentEnd, nil)

	for turn := 0; turn < a.maxTurns; turn++ {
		if a.aborted.Load() || runCtx.Err() != nil {
			return models.Message{}, ErrAborted
		}

		// Last turn runs without tools so the model has to conclude.
		withTools := turn < a.maxTurns-1

		final, err := a.runTurn(runCtx, withTools)
		if err != nil {
			if a.aborted.Load() || runCtx.Err() != nil {
				return models.Message{}, ErrAborted
			}
			return models.Message{}, err
		}

		calls := final.ToolCalls()
		if len(calls) == 0 {
			a.emit(models.EventTurnEnd, models.EncodePayload(models.TurnEndPayload{
				Message:     final,
				ToolResults: []models.Message{},
			}))
			return final, nil
		}

		results := a.runTools(runCtx, calls)
		a.mu.Lock()
		a.messages = append(a.messages, results...)
		a.mu.Unlock()

		a.emit(models.EventTurnEnd, models.EncodePayload(models.TurnEndPayload{
			Message:     final,
			ToolResults: results,
		}))
	}

	return models.Message{}, fmt.Errorf("agent loop exceeded %d turns", a.maxTurns)
}

// runTurn makes one model call, streaming deltas to listeners, and
// appends the final assistant message to the history.
func (a *Agent) runTurn(ctx context.Context, withTools bool) (models.Message, error) {
	a.emit(models.EventTurnStart, nil)

	history := a.Messages()
	if a.convert != nil {
		history = a.convert(history)
	}
	req := llm.Request{
		System:   a.system,
		Messages: history,
	}
	if withTools && a.executor != nil {
		req.Tools = a.executor.Definitions()
	}

	chunks, err := a.llmClient.Stream(ctx, req)
	if err != nil {
		return models.Message{}, fmt.Errorf("model call failed: %w", err)
	}

	var (
		final   *models.Message
		started bool
	)
	for chunk := range chunks {
		switch {
		case chunk.Err != nil:
			return models.Message{}, chunk.Err
		case chunk.TextDelta != "":
			if !started {
				started = true
				a.emit(models.EventMessageStart, nil)
			}
			a.emit(models.EventMessageUpdate, models.EncodePayload(models.MessageUpdatePayload{
				Delta: chunk.TextDelta,
			}))
		case chunk.Message != nil:
			final = chunk.Message
		}
	}
	if final == nil {
		return models.Message{}, fmt.Errorf("model stream ended without a final message")
	}

	if final.Usage != nil {
		a.usageMu.Lock()
		a.usage.Add(*final.Usage)
		a.usageMu.Unlock()
	}

	a.mu.Lock()
	a.messages = append(a.messages, *final)
	a.mu.Unlock()

	a.emit(models.EventMessageEnd, models.EncodePayload(models.MessageEndPayload{Message: *final}))
	return *final, nil
}

// runTools executes the turn's tool calls serially. Results are
// returned in tool_call block order; replay depends on that ordering.
func (a *Agent) runTools(ctx context.Context, calls []models.ToolCall) []models.Message {
	results := make([]models.Message, 0, len(calls))
	for _, call := range calls {
		a.emit(models.EventToolStart, models.EncodePayload(models.ToolExecutionStartPayload{
			ToolName:  call.ToolName,
			CallID:    call.CallID,
			Arguments: call.Arguments,
		}))

		result := a.executor.Invoke(ctx, call)

		a.emit(models.EventToolEnd, models.EncodePayload(models.ToolExecutionEndPayload{
			ToolName: call.ToolName,
			CallID:   call.CallID,
			IsError:  result.IsError,
			Result:   result,
		}))
		results = append(results, result)
	}
	return results
}

// emit delivers one event to every listener, synchronously, so event
// order matches emission order.
func (a *Agent) emit(eventType string, payload map[string]interface{}) {
	a.mu.Lock()
	listeners := make([]Listener, 0, len(a.listeners))
	for _, l := range a.listeners {
		listeners = append(listeners, l)
	}
	a.mu.Unlock()

	event := Event{Type: eventType, Payload: payload}
	for _, l := range listeners {
		l(event)
	}
}
