// Package eventq serializes event appends for one running session.
//
// The agent loop emits events from a single goroutine but persistence
// must not block it, so a buffered channel feeds a single consumer that
// appends in FIFO order. The consumer is also where external abort is
// observed: it polls the session status on a fixed interval and, the
// first time the status is no longer running, latches the abort, fires
// the caller's callback, and drops everything still queued so nothing
// lands in the log after the abort was recorded.
package eventq

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Appender appends one event to the store.
type Appender interface {
	Append(ctx context.Context, sessionID, eventType string, data map[string]interface{}) (int, error)
}

// StatusProber reads the session's current lifecycle status.
type StatusProber interface {
	IsRunning(ctx context.Context, sessionID string) (bool, error)
}

// DefaultAbortCheckInterval is the ceiling on external-abort latency.
const DefaultAbortCheckInterval = 2 * time.Second

// ErrClosed is returned by Push and Flush after Close.
var ErrClosed = errors.New("event queue is closed")

type job struct {
	eventType string
	data      map[string]interface{}
	flush     chan struct{} // non-nil marks a flush barrier
}

// Queue is the per-run event serializer. Push accepts events in emission
// order; a single consumer goroutine appends them in that order. Not
// shared between runs.
type Queue struct {
	sessionID string
	appender  Appender
	prober    StatusProber
	onAbort   func()
	interval  time.Duration
	logger    *slog.Logger

	jobs chan job
	wg   sync.WaitGroup

	mu     sync.Mutex
	closed bool

	count     atomic.Int64
	aborted   atomic.Bool
	abortOnce sync.Once
	lastCheck time.Time // consumer-local
}

// Option configures a Queue.
type Option func(*Queue)

// WithAbortCheckInterval overrides the status poll interval.
func WithAbortCheckInterval(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.interval = d
		}
	}
}

// WithBuffer overrides the push buffer size.
func WithBuffer(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.jobs = make(chan job, n)
		}
	}
}

// New creates a queue and starts its consumer. onAbort is invoked at
// most once, from the consumer goroutine, when the abort poll observes
// a status other than running.
func New(sessionID string, appender Appender, prober StatusProber, onAbort func(), opts ...Option) *Queue {
	q := &Queue{
		sessionID: sessionID,
		appender:  appender,
		prober:    prober,
		onAbort:   onAbort,
		interval:  DefaultAbortCheckInterval,
		logger:    slog.Default().With("component", "eventq", "session_id", sessionID),
		jobs:      make(chan job, 256),
		lastCheck: time.Now(),
	}
	for _, opt := range opts {
		opt(q)
	}

	q.wg.Add(1)
	go q.consume()

	return q
}

// Push enqueues one event for appending. Events are persisted strictly
// in push order. Blocks only when the buffer is full.
func (q *Queue) Push(eventType string, data map[string]interface{}) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	q.jobs <- job{eventType: eventType, data: data}
	q.mu.Unlock()
	return nil
}

// Flush blocks until every event pushed before the call has been
// appended or dropped.
func (q *Queue) Flush(ctx context.Context) error {
	barrier := make(chan struct{})

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	q.jobs <- job{flush: barrier}
	q.mu.Unlock()

	select {
	case <-barrier:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting pushes, drains the consumer, and waits for it.
// Safe to call once per queue.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	q.wg.Wait()
}

// Count returns the number of events appended so far.
func (q *Queue) Count() int {
	return int(q.count.Load())
}

// WasAborted reports whether the abort poll observed an external abort.
func (q *Queue) WasAborted() bool {
	return q.aborted.Load()
}

// Abort latches the abort state immediately, without waiting for the
// status poll. Queued and future events are dropped; the callback fires
// if it has not already.
func (q *Queue) Abort() {
	q.aborted.Store(true)
	q.abortOnce.Do(func() {
		if q.onAbort != nil {
			q.onAbort()
		}
	})
}

// consume is the single writer. It interleaves appends with periodic
// abort checks; the ticker arm covers the case where the agent is stuck
// in a long tool call and no pushes arrive.
func (q *Queue) consume() {
	defer q.wg.Done()

	ticker := time.NewTicker(q.interval)
	defer ticker.Stop()

	for {
		select {
		case j, ok := <-q.jobs:
			if !ok {
				return
			}
			if j.flush != nil {
				close(j.flush)
				continue
			}
			q.maybeCheckAbort()
			if q.aborted.Load() {
				// Dropped silently: the abort path already wrote the
				// terminal event, nothing may follow it in the log.
				continue
			}
			q.append(j)

		case <-ticker.C:
			q.maybeCheckAbort()
		}
	}
}

func (q *Queue) append(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := q.appender.Append(ctx, q.sessionID, j.eventType, j.data); err != nil {
		// Telemetry I/O must not interrupt the run: log and drop.
		q.logger.Warn("Failed to append event, dropping",
			"event_type", j.eventType,
			"error", err)
		return
	}
	q.count.Add(1)
}

// maybeCheckAbort polls the session status when the interval elapsed.
func (q *Queue) maybeCheckAbort() {
	if q.aborted.Load() || time.Since(q.lastCheck) < q.interval {
		return
	}
	q.lastCheck = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	running, err := q.prober.IsRunning(ctx, q.sessionID)
	if err != nil {
		q.logger.Warn("Abort check failed", "error", err)
		return
	}
	if running {
		return
	}

	q.aborted.Store(true)
	q.abortOnce.Do(func() {
		q.logger.Info("External abort observed, signalling agent")
		if q.onAbort != nil {
			q.onAbort()
		}
	})
}
