package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySink struct {
	mu   sync.Mutex
	seen map[string]map[int64]Event
}

func newMemorySink() *memorySink {
	return &memorySink{seen: make(map[string]map[int64]Event)}
}

func (s *memorySink) RecordEvent(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seen[ev.SessionID] == nil {
		s.seen[ev.SessionID] = make(map[int64]Event)
	}
	s.seen[ev.SessionID][ev.Sequence] = ev
	return nil
}

func (s *memorySink) count(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen[sessionID])
}

func (s *memorySink) get(sessionID string, seq int64) (Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.seen[sessionID][seq]
	return ev, ok
}

func TestRecorderPersistsFullSessionStream(t *testing.T) {
	bus := NewBus()
	sink := newMemorySink()
	rec := NewRecorder(bus, sink)
	rec.Start()
	defer rec.Stop()

	id := "sess-1"
	bus.Publish(EventTypeSessionStarted, id, SessionStartedPayload{Topic: "t"})
	bus.Publish(EventTypeTurnCompleted, id, nil)
	bus.Publish(EventTypeTurnCompleted, id, nil)
	bus.Publish(EventTypeSessionEnded, id, nil)

	require.Eventually(t, func() bool {
		return sink.count(id) == 4
	}, 2*time.Second, time.Millisecond)

	for seq := int64(1); seq <= 4; seq++ {
		ev, ok := sink.get(id, seq)
		require.True(t, ok, "sequence %d missing", seq)
		assert.Equal(t, id, ev.SessionID)
	}
}

func TestRecorderBackfillsEventsBeforeAttach(t *testing.T) {
	bus := NewBus()
	id := "sess-2"

	// Events published before the recorder exists live only in the replay
	// log.
	bus.Publish(EventTypeSessionStarted, id, nil)
	bus.Publish(EventTypeTurnCompleted, id, nil)

	sink := newMemorySink()
	rec := NewRecorder(bus, sink)
	rec.Start()
	defer rec.Stop()

	// A fresh lifecycle event triggers the attach; backfill recovers the
	// two earlier ones.
	bus.Publish(EventTypeSessionStarted, id, nil)
	require.Eventually(t, func() bool {
		return sink.count(id) >= 3
	}, 2*time.Second, time.Millisecond)
}

func TestRecorderCapturesLoneTerminalEvent(t *testing.T) {
	bus := NewBus()
	sink := newMemorySink()
	rec := NewRecorder(bus, sink)
	rec.Start()
	defer rec.Stop()

	// Cancelled before start: only the terminal event is ever published.
	id := "sess-3"
	bus.Publish(EventTypeSessionEnded, id, nil)

	require.Eventually(t, func() bool {
		return sink.count(id) == 1
	}, 2*time.Second, time.Millisecond)
	ev, ok := sink.get(id, 1)
	require.True(t, ok)
	assert.Equal(t, EventTypeSessionEnded, ev.Type)
}

func TestRecorderStopsRecording(t *testing.T) {
	bus := NewBus()
	sink := newMemorySink()
	rec := NewRecorder(bus, sink)
	rec.Start()

	id := "sess-4"
	bus.Publish(EventTypeSessionStarted, id, nil)
	require.Eventually(t, func() bool {
		return sink.count(id) == 1
	}, 2*time.Second, time.Millisecond)

	rec.Stop()
	bus.Publish(EventTypeTurnCompleted, id, nil)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, sink.count(id))
}
