package events

import (
	"sync"
	"time"
)

// Handler consumes one event. Handlers for a subscription are invoked
// sequentially in publish order.
type Handler func(Event)

// subscriberBuffer bounds the per-subscriber queue. Publishing blocks when
// a subscriber falls this far behind rather than reordering or dropping.
const subscriberBuffer = 256

// defaultLogSize bounds the per-session replay log.
const defaultLogSize = 1024

type subscriber struct {
	ch   chan Event
	stop chan struct{}
}

// Bus is the in-process observer hub. Events for one session are totally
// ordered by their sequence number; cross-session ordering is unspecified.
type Bus struct {
	mu      sync.Mutex
	seq     map[string]int64
	subs    map[string]map[int]*subscriber
	nextSub int
	log     map[string][]Event
	logSize int
}

// NewBus creates an event bus.
func NewBus() *Bus {
	return &Bus{
		seq:     make(map[string]int64),
		subs:    make(map[string]map[int]*subscriber),
		log:     make(map[string][]Event),
		logSize: defaultLogSize,
	}
}

// Subscribe registers a handler on a channel and returns an unsubscribe
// function. Events are delivered on a dedicated goroutine in order.
func (b *Bus) Subscribe(channel string, h Handler) (unsubscribe func()) {
	sub := &subscriber{
		ch:   make(chan Event, subscriberBuffer),
		stop: make(chan struct{}),
	}

	b.mu.Lock()
	id := b.nextSub
	b.nextSub++
	if b.subs[channel] == nil {
		b.subs[channel] = make(map[int]*subscriber)
	}
	b.subs[channel][id] = sub
	b.mu.Unlock()

	go func() {
		for {
			select {
			case <-sub.stop:
				return
			case ev := <-sub.ch:
				h(ev)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs[channel], id)
			b.mu.Unlock()
			close(sub.stop)
		})
	}
}

// Publish assigns the session's next sequence number, records the event in
// the replay log, and delivers it to the session channel. Session lifecycle
// events are mirrored to the global channel.
func (b *Bus) Publish(eventType, sessionID string, payload any) Event {
	b.mu.Lock()
	b.seq[sessionID]++
	ev := Event{
		Type:      eventType,
		SessionID: sessionID,
		Sequence:  b.seq[sessionID],
		Timestamp: time.Now(),
		Payload:   payload,
	}

	entries := b.log[sessionID]
	entries = append(entries, ev)
	if len(entries) > b.logSize {
		entries = entries[len(entries)-b.logSize:]
	}
	b.log[sessionID] = entries

	targets := b.targetsLocked(SessionChannel(sessionID))
	if eventType == EventTypeSessionStarted || eventType == EventTypeSessionEnded {
		targets = append(targets, b.targetsLocked(GlobalChannel)...)
	}
	b.mu.Unlock()

	// Delivery happens outside the lock; per-subscriber channels keep
	// publish order.
	for _, sub := range targets {
		select {
		case <-sub.stop:
		case sub.ch <- ev:
		}
	}
	return ev
}

func (b *Bus) targetsLocked(channel string) []*subscriber {
	subs := b.subs[channel]
	out := make([]*subscriber, 0, len(subs))
	for _, s := range subs {
		out = append(out, s)
	}
	return out
}

// Replay returns the logged events for a session with sequence >= fromSeq,
// in order. Events older than the log bound are gone; callers needing full
// history reconstruct from persistence.
func (b *Bus) Replay(sessionID string, fromSeq int64) []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []Event
	for _, ev := range b.log[sessionID] {
		if ev.Sequence >= fromSeq {
			out = append(out, ev)
		}
	}
	return out
}

// Forget drops a session's sequence counter and replay log.
func (b *Bus) Forget(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.seq, sessionID)
	delete(b.log, sessionID)
}
