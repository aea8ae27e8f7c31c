package events

import (
	"context"
	"log/slog"
	"sync"
)

// Sink persists events. Writes must be idempotent on (session_id, sequence);
// the recorder may deliver the same event more than once.
type Sink interface {
	RecordEvent(ctx context.Context, ev Event) error
}

// Recorder mirrors every session's event stream into a durable sink. It
// follows the global channel for lifecycle events, attaches a per-session
// subscription on start, and backfills from the replay log so events
// published before the subscription attached are not lost.
type Recorder struct {
	bus  *Bus
	sink Sink

	mu     sync.Mutex
	unsubs map[string]func()
	stop   func()
}

// NewRecorder creates a recorder over the bus.
func NewRecorder(bus *Bus, sink Sink) *Recorder {
	return &Recorder{
		bus:    bus,
		sink:   sink,
		unsubs: make(map[string]func()),
	}
}

// Start begins following the global channel.
func (r *Recorder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stop != nil {
		return
	}
	r.stop = r.bus.Subscribe(GlobalChannel, r.onLifecycle)
}

// Stop detaches all subscriptions. Events published afterwards are not
// persisted.
func (r *Recorder) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stop == nil {
		return
	}
	r.stop()
	r.stop = nil
	for id, unsub := range r.unsubs {
		unsub()
		delete(r.unsubs, id)
	}
}

func (r *Recorder) onLifecycle(ev Event) {
	switch ev.Type {
	case EventTypeSessionStarted:
		r.attach(ev.SessionID)
	case EventTypeSessionEnded:
		// A session cancelled before start publishes only its terminal
		// event, so persist it directly before detaching.
		r.record(ev)
		r.detach(ev.SessionID)
	}
}

func (r *Recorder) attach(sessionID string) {
	r.mu.Lock()
	if r.stop == nil || r.unsubs[sessionID] != nil {
		r.mu.Unlock()
		return
	}
	r.unsubs[sessionID] = r.bus.Subscribe(SessionChannel(sessionID), r.record)
	r.mu.Unlock()

	// Backfill anything published before the subscription attached. The
	// sink drops duplicates.
	for _, ev := range r.bus.Replay(sessionID, 1) {
		r.record(ev)
	}
}

func (r *Recorder) detach(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if unsub := r.unsubs[sessionID]; unsub != nil {
		unsub()
		delete(r.unsubs, sessionID)
	}
}

func (r *Recorder) record(ev Event) {
	if err := r.sink.RecordEvent(context.Background(), ev); err != nil {
		slog.Error("Failed to persist event",
			"session_id", ev.SessionID, "sequence", ev.Sequence,
			"type", ev.Type, "error", err)
	}
}
