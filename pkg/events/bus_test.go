package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collector gathers delivered events behind a mutex so tests can wait for
// an expected count without racing the delivery goroutine.
type collector struct {
	mu     sync.Mutex
	events []Event
}

func (c *collector) handler(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

func (c *collector) snapshot() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

func (c *collector) waitFor(t *testing.T, n int) []Event {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if evs := c.snapshot(); len(evs) >= n {
			return evs
		}
		time.Sleep(time.Millisecond)
	}
	evs := c.snapshot()
	require.Len(t, evs, n, "timed out waiting for %d events", n)
	return evs
}

func TestPublishAssignsMonotonicSequencePerSession(t *testing.T) {
	bus := NewBus()

	a1 := bus.Publish(EventTypeSessionStarted, "sess-a", nil)
	a2 := bus.Publish(EventTypeTurnCompleted, "sess-a", nil)
	b1 := bus.Publish(EventTypeSessionStarted, "sess-b", nil)
	a3 := bus.Publish(EventTypeRoundClosed, "sess-a", nil)

	assert.Equal(t, int64(1), a1.Sequence)
	assert.Equal(t, int64(2), a2.Sequence)
	assert.Equal(t, int64(3), a3.Sequence)
	// Another session's counter is independent.
	assert.Equal(t, int64(1), b1.Sequence)
}

func TestSubscriberReceivesEventsInPublishOrder(t *testing.T) {
	bus := NewBus()
	var c collector
	unsub := bus.Subscribe(SessionChannel("sess-1"), c.handler)
	defer unsub()

	bus.Publish(EventTypeSessionStarted, "sess-1", nil)
	bus.Publish(EventTypePhaseEntered, "sess-1", nil)
	bus.Publish(EventTypeTurnCompleted, "sess-1", nil)

	evs := c.waitFor(t, 3)
	assert.Equal(t, EventTypeSessionStarted, evs[0].Type)
	assert.Equal(t, EventTypePhaseEntered, evs[1].Type)
	assert.Equal(t, EventTypeTurnCompleted, evs[2].Type)
	for i, ev := range evs {
		assert.Equal(t, int64(i+1), ev.Sequence)
	}
}

func TestSubscriberOnlySeesItsOwnSession(t *testing.T) {
	bus := NewBus()
	var c collector
	unsub := bus.Subscribe(SessionChannel("sess-1"), c.handler)
	defer unsub()

	bus.Publish(EventTypeTurnCompleted, "sess-2", nil)
	bus.Publish(EventTypeTurnCompleted, "sess-1", nil)

	evs := c.waitFor(t, 1)
	assert.Equal(t, "sess-1", evs[0].SessionID)
}

func TestLifecycleEventsMirroredToGlobalChannel(t *testing.T) {
	bus := NewBus()
	var global collector
	unsub := bus.Subscribe(GlobalChannel, global.handler)
	defer unsub()

	bus.Publish(EventTypeSessionStarted, "sess-1", nil)
	bus.Publish(EventTypeTurnCompleted, "sess-1", nil) // not mirrored
	bus.Publish(EventTypeSessionEnded, "sess-1", nil)

	evs := global.waitFor(t, 2)
	assert.Equal(t, EventTypeSessionStarted, evs[0].Type)
	assert.Equal(t, EventTypeSessionEnded, evs[1].Type)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus()
	var c collector
	unsub := bus.Subscribe(SessionChannel("sess-1"), c.handler)

	bus.Publish(EventTypeTurnCompleted, "sess-1", nil)
	c.waitFor(t, 1)

	unsub()
	bus.Publish(EventTypeTurnCompleted, "sess-1", nil)

	// Give a stray delivery a chance to land, then confirm none did.
	time.Sleep(20 * time.Millisecond)
	assert.Len(t, c.snapshot(), 1)

	// Unsubscribing twice is harmless.
	unsub()
}

func TestReplayReturnsEventsFromSequence(t *testing.T) {
	bus := NewBus()
	for i := 0; i < 5; i++ {
		bus.Publish(EventTypeTurnCompleted, "sess-1", nil)
	}

	evs := bus.Replay("sess-1", 3)
	require.Len(t, evs, 3)
	assert.Equal(t, int64(3), evs[0].Sequence)
	assert.Equal(t, int64(5), evs[2].Sequence)

	assert.Empty(t, bus.Replay("sess-1", 6))
	assert.Empty(t, bus.Replay("unknown", 1))
}

func TestReplayLogIsBounded(t *testing.T) {
	bus := NewBus()
	bus.logSize = 3
	for i := 0; i < 5; i++ {
		bus.Publish(EventTypeTurnCompleted, "sess-1", nil)
	}

	evs := bus.Replay("sess-1", 1)
	require.Len(t, evs, 3)
	assert.Equal(t, int64(3), evs[0].Sequence)
}

func TestForgetResetsSequenceAndLog(t *testing.T) {
	bus := NewBus()
	bus.Publish(EventTypeTurnCompleted, "sess-1", nil)
	bus.Publish(EventTypeTurnCompleted, "sess-1", nil)

	bus.Forget("sess-1")
	assert.Empty(t, bus.Replay("sess-1", 1))

	ev := bus.Publish(EventTypeTurnCompleted, "sess-1", nil)
	assert.Equal(t, int64(1), ev.Sequence)
}
