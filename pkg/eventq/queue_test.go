package eventq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	eventType string
	data      map[string]interface{}
}

// fakeAppender records appends in call order and can fail selected types.
type fakeAppender struct {
	mu       sync.Mutex
	events   []recordedEvent
	failType string
}

func (f *fakeAppender) Append(ctx context.Context, sessionID, eventType string, data map[string]interface{}) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failType != "" && eventType == f.failType {
		return 0, errors.New("database unavailable")
	}
	f.events = append(f.events, recordedEvent{eventType: eventType, data: data})
	return len(f.events), nil
}

func (f *fakeAppender) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.events))
	for i, e := range f.events {
		out[i] = e.eventType
	}
	return out
}

type fakeProber struct {
	running atomic.Bool
	err     atomic.Bool
}

func (f *fakeProber) IsRunning(ctx context.Context, sessionID string) (bool, error) {
	if f.err.Load() {
		return false, errors.New("probe failed")
	}
	return f.running.Load(), nil
}

func newRunningProber() *fakeProber {
	p := &fakeProber{}
	p.running.Store(true)
	return p
}

func TestQueue_AppendsInPushOrder(t *testing.T) {
	appender := &fakeAppender{}
	q := New("session-1", appender, newRunningProber(), nil)
	defer q.Close()

	var want []string
	for i := 0; i < 50; i++ {
		eventType := fmt.Sprintf("event_%02d", i)
		want = append(want, eventType)
		require.NoError(t, q.Push(eventType, map[string]interface{}{"i": i}))
	}

	require.NoError(t, q.Flush(context.Background()))

	assert.Equal(t, want, appender.types())
	assert.Equal(t, 50, q.Count())
	assert.False(t, q.WasAborted())
}

func TestQueue_FlushWaitsForPriorEvents(t *testing.T) {
	appender := &fakeAppender{}
	q := New("session-1", appender, newRunningProber(), nil)
	defer q.Close()

	for i := 0; i < 10; i++ {
		require.NoError(t, q.Push("turn_start", nil))
	}
	require.NoError(t, q.Flush(context.Background()))

	// Everything pushed before Flush is already visible.
	assert.Len(t, appender.types(), 10)
}

func TestQueue_FlushRespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	appender := &fakeAppender{}
	q := New("session-1", appender, newRunningProber(), nil)
	defer q.Close()

	// The consumer keeps draining, so a cancelled flush either completed
	// already or returns the context error; both are acceptable.
	err := q.Flush(ctx)
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestQueue_AbortLatchesAndDrops(t *testing.T) {
	appender := &fakeAppender{}
	prober := newRunningProber()

	var abortCalls atomic.Int32
	q := New("session-1", appender, prober, func() { abortCalls.Add(1) },
		WithAbortCheckInterval(10*time.Millisecond))
	defer q.Close()

	require.NoError(t, q.Push("agent_start", nil))
	require.NoError(t, q.Flush(context.Background()))
	require.Equal(t, 1, q.Count())

	prober.running.Store(false)

	require.Eventually(t, q.WasAborted, time.Second, 5*time.Millisecond,
		"abort should be observed within the check interval")

	// Events pushed after the latch never reach the store.
	require.NoError(t, q.Push("message_end", nil))
	require.NoError(t, q.Push("turn_end", nil))
	require.NoError(t, q.Flush(context.Background()))

	assert.Equal(t, []string{"agent_start"}, appender.types())
	assert.Equal(t, 1, q.Count())
	assert.Equal(t, int32(1), abortCalls.Load(), "abort callback fires exactly once")
}

func TestQueue_AbortObservedWithoutPushes(t *testing.T) {
	appender := &fakeAppender{}
	prober := newRunningProber()

	abortSeen := make(chan struct{})
	q := New("session-1", appender, prober, func() { close(abortSeen) },
		WithAbortCheckInterval(10*time.Millisecond))
	defer q.Close()

	// No pushes at all: the ticker arm alone must notice the abort.
	prober.running.Store(false)

	select {
	case <-abortSeen:
	case <-time.After(time.Second):
		t.Fatal("abort was not observed while the queue was idle")
	}
}

func TestQueue_ProbeErrorDoesNotAbort(t *testing.T) {
	appender := &fakeAppender{}
	prober := newRunningProber()
	prober.err.Store(true)

	q := New("session-1", appender, prober, nil,
		WithAbortCheckInterval(5*time.Millisecond))
	defer q.Close()

	time.Sleep(50 * time.Millisecond)

	require.NoError(t, q.Push("turn_start", nil))
	require.NoError(t, q.Flush(context.Background()))

	assert.False(t, q.WasAborted())
	assert.Equal(t, 1, q.Count())
}

func TestQueue_AppendFailureIsDropped(t *testing.T) {
	appender := &fakeAppender{failType: "turn_end"}
	q := New("session-1", appender, newRunningProber(), nil)
	defer q.Close()

	require.NoError(t, q.Push("turn_start", nil))
	require.NoError(t, q.Push("turn_end", nil))
	require.NoError(t, q.Push("agent_end", nil))
	require.NoError(t, q.Flush(context.Background()))

	// The failed append is dropped; later events still land, in order.
	assert.Equal(t, []string{"turn_start", "agent_end"}, appender.types())
	assert.Equal(t, 2, q.Count())
}

func TestQueue_DirectAbort(t *testing.T) {
	appender := &fakeAppender{}
	prober := newRunningProber()

	var abortCalls atomic.Int32
	q := New("session-1", appender, prober, func() { abortCalls.Add(1) })
	defer q.Close()

	require.NoError(t, q.Push("agent_start", nil))
	require.NoError(t, q.Flush(context.Background()))

	q.Abort()
	q.Abort() // callback still fires only once

	require.NoError(t, q.Push("agent_end", nil))
	require.NoError(t, q.Flush(context.Background()))

	assert.True(t, q.WasAborted())
	assert.Equal(t, []string{"agent_start"}, appender.types())
	assert.Equal(t, int32(1), abortCalls.Load())
}

func TestQueue_Close(t *testing.T) {
	appender := &fakeAppender{}
	q := New("session-1", appender, newRunningProber(), nil)

	require.NoError(t, q.Push("agent_start", nil))
	q.Close()
	q.Close() // idempotent

	assert.ErrorIs(t, q.Push("turn_start", nil), ErrClosed)
	assert.ErrorIs(t, q.Flush(context.Background()), ErrClosed)

	// Close drained the pending push before returning.
	assert.Equal(t, []string{"agent_start"}, appender.types())
}
