package services

import (
	"context"
	"fmt"
	"time"

	"github.com/agora-labs/agora/ent"
	entevent "github.com/agora-labs/agora/ent/event"
	"github.com/agora-labs/agora/pkg/events"
)

// EventService is the durable side of the observer stream. The in-memory bus
// serves live subscribers; rows written here serve replay across restarts.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// RecordEvent persists one published event. Duplicate (session, sequence)
// pairs are dropped so an at-least-once publisher can feed it directly.
func (s *EventService) RecordEvent(httpCtx context.Context, ev events.Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	payload, err := toJSONMap(ev.Payload)
	if err != nil {
		return fmt.Errorf("failed to encode event payload: %w", err)
	}

	builder := s.client.Event.Create().
		SetSessionID(ev.SessionID).
		SetSequence(ev.Sequence).
		SetEventType(ev.Type).
		SetCreatedAt(ev.Timestamp)
	if payload != nil {
		builder.SetPayload(payload)
	}
	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// EventsSince returns a session's events with sequence >= fromSeq, in order.
func (s *EventService) EventsSince(ctx context.Context, sessionID string, fromSeq int64) ([]events.Event, error) {
	rows, err := s.client.Event.Query().
		Where(
			entevent.SessionIDEQ(sessionID),
			entevent.SequenceGTE(fromSeq),
		).
		Order(ent.Asc(entevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	out := make([]events.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, events.Event{
			Type:      row.EventType,
			SessionID: row.SessionID,
			Sequence:  row.Sequence,
			Timestamp: row.CreatedAt,
			Payload:   row.Payload,
		})
	}
	return out, nil
}

// CleanupSessionEvents removes all events for a session.
func (s *EventService) CleanupSessionEvents(ctx context.Context, sessionID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(entevent.SessionIDEQ(sessionID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup session events: %w", err)
	}
	return count, nil
}

// CleanupOrphanedEvents removes events older than the TTL.
func (s *EventService) CleanupOrphanedEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(entevent.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup orphaned events: %w", err)
	}
	return count, nil
}
