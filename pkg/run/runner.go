// Package run orchestrates session executions: one goroutine per
// running session, wired from the agent loop through the event queue
// into the store, with resumable reads and orphan recovery around it.
package run

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/relay-agents/relay/pkg/agent"
	"github.com/relay-agents/relay/pkg/config"
	"github.com/relay-agents/relay/pkg/eventq"
	"github.com/relay-agents/relay/pkg/llm"
	"github.com/relay-agents/relay/pkg/models"
	"github.com/relay-agents/relay/pkg/services"
	"github.com/relay-agents/relay/pkg/tools"
)

// ErrShuttingDown is returned by Submit once Stop has been called.
var ErrShuttingDown = errors.New("runner is shutting down")

// flushTimeout bounds the final queue drain at the end of a run.
const flushTimeout = 10 * time.Second

// SubmitInput carries one user turn into the orchestrator.
type SubmitInput struct {
	SessionID string
	Message   string
	// Seed short-circuits log reconstruction with externally supplied
	// context, e.g. a chat-platform thread. Nil means rebuild from the
	// event log.
	Seed []models.Message
}

// Runner executes sessions asynchronously. It enforces one run per
// session at a time (through the session status row), tracks active
// executions for shutdown, and owns the terminal status transition of
// every run it started.
type Runner struct {
	cfg       *config.Config
	llmClient llm.Client

	sessions *services.SessionService
	events   *services.EventService
	mounts   *services.MountService

	mu          sync.RWMutex
	activeExecs map[string]*execHandle
	wg          sync.WaitGroup
	stopped     bool
}

// execHandle is the runner's grip on one in-flight run: cancel tears
// down the run context, abortQueue latches the run's event queue so
// nothing queued behind an abort reaches the log.
type execHandle struct {
	cancel     context.CancelFunc
	abortQueue func()
}

// NewRunner creates a runner. llmClient may be nil when no provider is
// configured; Submit then fails with ErrNotConfigured.
func NewRunner(
	cfg *config.Config,
	llmClient llm.Client,
	sessions *services.SessionService,
	events *services.EventService,
	mounts *services.MountService,
) *Runner {
	return &Runner{
		cfg:         cfg,
		llmClient:   llmClient,
		sessions:    sessions,
		events:      events,
		mounts:      mounts,
		activeExecs: make(map[string]*execHandle),
	}
}

// Submit validates the turn, transitions the session to running, and
// launches asynchronous execution. The returned channel closes when the
// run has fully terminated, including its terminal status write.
//
// A new session id is created on first use; an existing session is
// reactivated, which fails with ErrConflict while a run is in flight.
func (r *Runner) Submit(ctx context.Context, input SubmitInput) (<-chan struct{}, error) {
	r.mu.RLock()
	if r.stopped {
		r.mu.RUnlock()
		return nil, ErrShuttingDown
	}
	r.mu.RUnlock()

	if r.llmClient == nil {
		return nil, fmt.Errorf("no model provider configured: %w", services.ErrNotConfigured)
	}
	if input.SessionID == "" {
		return nil, services.NewValidationError("session_id", "must not be empty")
	}
	if input.Message == "" {
		return nil, services.NewValidationError("message", "must not be empty")
	}

	_, err := r.sessions.Get(ctx, input.SessionID)
	switch {
	case err == nil:
		if _, err := r.sessions.Reactivate(ctx, input.SessionID); err != nil {
			return nil, err
		}
	case errors.Is(err, services.ErrNotFound):
		if _, err := r.sessions.Create(ctx, input.SessionID, input.Message); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	// Re-check stopped while holding the lock through wg.Add so Stop
	// cannot finish its wait before this run is tracked.
	r.mu.RLock()
	if r.stopped {
		r.mu.RUnlock()
		return nil, ErrShuttingDown
	}
	r.wg.Add(1)
	r.mu.RUnlock()

	done := make(chan struct{})
	// Detached context: the run outlives the HTTP request that started it.
	go r.execute(context.Background(), input, done)

	return done, nil
}

// execute is the per-run goroutine.
func (r *Runner) execute(parentCtx context.Context, input SubmitInput, done chan struct{}) {
	defer r.wg.Done()
	defer close(done)

	logger := slog.With("component", "runner", "session_id", input.SessionID)
	logger.Info("Starting session run")

	execCtx, cancel := context.WithTimeout(parentCtx, r.cfg.SessionTimeout)
	defer cancel()

	r.registerExecution(input.SessionID, cancel)
	defer r.unregisterExecution(input.SessionID)

	// History comes from the event log unless the caller seeded it.
	// Listing happens before the user_message append so the new turn is
	// not duplicated.
	history := input.Seed
	if history == nil {
		rows, err := r.events.ListAfter(execCtx, input.SessionID, 0)
		if err != nil {
			logger.Error("Failed to load event log", "error", err)
			r.failSession(input.SessionID, fmt.Sprintf("failed to load event log: %v", err))
			return
		}
		history = BuildHistory(services.Records(rows))
	}

	ws := tools.NewWorkspace()
	mounts, err := r.mounts.ListForSession(execCtx, input.SessionID)
	if err != nil {
		logger.Warn("Failed to list mounts, starting with empty workspace", "error", err)
	} else {
		tools.RestoreMounts(execCtx, ws, mounts)
	}

	executor := tools.NewExecutor(
		tools.NewFetchTool(),
		tools.NewWorkspaceTool(input.SessionID, ws, r.mounts),
	)
	ag := agent.New(r.llmClient, executor,
		agent.WithSystemPrompt(r.cfg.SystemPrompt),
	)
	ag.ReplaceMessages(history)

	queue := eventq.New(input.SessionID, r.events, r.sessions, ag.Abort,
		eventq.WithAbortCheckInterval(r.cfg.AbortCheckInterval),
	)
	defer queue.Close()
	r.setAbortHook(input.SessionID, queue.Abort)

	userMsg := models.NewUserMessage(input.Message)
	if err := queue.Push(models.EventUserMessage, models.EncodePayload(models.UserMessagePayload{Message: userMsg})); err != nil {
		logger.Error("Failed to enqueue user message", "error", err)
		r.failSession(input.SessionID, "failed to enqueue user message")
		return
	}

	// Persist everything the loop emits except streaming deltas.
	unsubscribe := ag.Subscribe(func(e agent.Event) {
		if models.IsTransientEvent(e.Type) {
			return
		}
		if err := queue.Push(e.Type, e.Payload); err != nil {
			logger.Warn("Failed to enqueue event", "event_type", e.Type, "error", err)
		}
	})
	defer unsubscribe()

	heartbeatCtx, stopHeartbeat := context.WithCancel(execCtx)
	defer stopHeartbeat()
	go r.runHeartbeat(heartbeatCtx, input.SessionID)

	final, promptErr := ag.Prompt(execCtx, input.Message)

	flushCtx, flushCancel := context.WithTimeout(context.Background(), flushTimeout)
	defer flushCancel()
	if err := queue.Flush(flushCtx); err != nil {
		logger.Warn("Failed to flush event queue", "error", err)
	}

	if queue.WasAborted() {
		// The abort endpoint already set the terminal status and wrote
		// session_aborted; the run just winds down.
		logger.Info("Session run aborted externally")
		return
	}

	if promptErr != nil {
		reason := promptErr.Error()
		if errors.Is(promptErr, agent.ErrAborted) {
			if execCtx.Err() == context.DeadlineExceeded {
				reason = "session timed out"
			} else {
				reason = "cancelled by shutdown"
			}
		}
		logger.Error("Session run failed", "error", promptErr, "reason", reason)
		r.failSession(input.SessionID, reason)
		return
	}

	usage := ag.Usage()
	if err := queue.Push(models.EventSessionComplete, models.EncodePayload(models.SessionOutcomePayload{Usage: &usage})); err != nil {
		logger.Warn("Failed to enqueue session_complete event", "error", err)
	}
	if err := queue.Flush(flushCtx); err != nil {
		logger.Warn("Failed to flush event queue", "error", err)
	}
	if queue.WasAborted() {
		logger.Info("Session run aborted externally during final flush")
		return
	}

	if err := r.sessions.Complete(execCtx, input.SessionID, ag.Messages(), &usage, queue.Count()); err != nil {
		logger.Error("Failed to mark session completed", "error", err)
		return
	}
	logger.Info("Session run complete",
		"final_text_len", len(final.Text()),
		"events", queue.Count(),
		"total_tokens", usage.TotalTokens)
}

// Abort cancels a running session: the status flips to completed and
// the session_aborted terminal event is appended directly, bypassing
// the queue so nothing emitted after the abort can precede it. Returns
// false when the session was not running (idempotent success).
func (r *Runner) Abort(ctx context.Context, sessionID string) (bool, error) {
	wasRunning, err := r.sessions.MarkAborted(ctx, sessionID)
	if err != nil {
		return false, err
	}
	if !wasRunning {
		return false, nil
	}

	if _, err := r.events.Append(ctx, sessionID, models.EventSessionAborted,
		models.EncodePayload(models.SessionOutcomePayload{Reason: "aborted by user"})); err != nil {
		return true, fmt.Errorf("session aborted but terminal event append failed: %w", err)
	}

	// In-process runs get a direct latch and cancel so nothing already
	// queued lands after the terminal event; remote workers rely on
	// their queue's status poll.
	r.mu.RLock()
	handle, ok := r.activeExecs[sessionID]
	r.mu.RUnlock()
	if ok {
		if handle.abortQueue != nil {
			handle.abortQueue()
		}
		handle.cancel()
	}
	return true, nil
}

// IsActive reports whether this process is executing the session.
func (r *Runner) IsActive(sessionID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.activeExecs[sessionID]
	return ok
}

// Stop rejects new submissions, cancels all active runs, and waits for
// them to drain. Safe to call multiple times.
func (r *Runner) Stop() {
	r.mu.Lock()
	r.stopped = true
	for _, handle := range r.activeExecs {
		handle.cancel()
	}
	r.mu.Unlock()

	r.wg.Wait()
}

// runHeartbeat updates last_interaction_at so other processes can tell
// a live run from an orphaned one.
func (r *Runner) runHeartbeat(ctx context.Context, sessionID string) {
	interval := r.cfg.HeartbeatInterval
	if interval <= 0 {
		interval = 10 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.sessions.Touch(ctx, sessionID); err != nil {
				slog.Warn("Session heartbeat failed", "session_id", sessionID, "error", err)
			}
		}
	}
}

// failSession appends the session_error terminal event and flips the
// status to error, tolerating the race where the abort endpoint
// completed the session first. Callers flush the queue before calling
// so the terminal event lands last.
func (r *Runner) failSession(sessionID, reason string) {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	running, err := r.sessions.IsRunning(ctx, sessionID)
	if err == nil && !running {
		return
	}
	if _, err := r.events.Append(ctx, sessionID, models.EventSessionError,
		models.EncodePayload(models.SessionOutcomePayload{Reason: reason})); err != nil {
		slog.Error("Failed to append session_error event", "session_id", sessionID, "error", err)
	}
	if err := r.sessions.Fail(ctx, sessionID, reason); err != nil {
		slog.Error("Failed to mark session errored", "session_id", sessionID, "error", err)
	}
}

func (r *Runner) registerExecution(sessionID string, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activeExecs[sessionID] = &execHandle{cancel: cancel}
}

func (r *Runner) setAbortHook(sessionID string, abortQueue func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if handle, ok := r.activeExecs[sessionID]; ok {
		handle.abortQueue = abortQueue
	}
}

func (r *Runner) unregisterExecution(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.activeExecs, sessionID)
}
