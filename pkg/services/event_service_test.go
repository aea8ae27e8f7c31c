package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-labs/agora/pkg/events"
	testdb "github.com/agora-labs/agora/test/database"
)

// seedSession creates the parent session row events hang off.
func seedSession(t *testing.T, service *SessionService) string {
	t.Helper()
	snap := pendingSnapshot(uuid.NewString())
	require.NoError(t, service.SaveSession(context.Background(), snap))
	return snap.ID
}

func publishedEvent(sessionID string, seq int64, evType string, at time.Time) events.Event {
	return events.Event{
		Type:      evType,
		SessionID: sessionID,
		Sequence:  seq,
		Timestamp: at,
		Payload:   map[string]interface{}{"seq": float64(seq)},
	}
}

func TestEventService_RecordEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client)
	service := NewEventService(client.Client)
	ctx := context.Background()

	id := seedSession(t, sessions)
	now := time.Now().UTC()

	require.NoError(t, service.RecordEvent(ctx, publishedEvent(id, 1, events.EventTypeSessionStarted, now)))

	// At-least-once delivery: the duplicate sequence is dropped and the
	// first write wins.
	dup := publishedEvent(id, 1, events.EventTypeTurnCompleted, now)
	require.NoError(t, service.RecordEvent(ctx, dup))

	got, err := service.EventsSince(ctx, id, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, events.EventTypeSessionStarted, got[0].Type)
	assert.Equal(t, int64(1), got[0].Sequence)
}

func TestEventService_EventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client)
	service := NewEventService(client.Client)
	ctx := context.Background()

	id := seedSession(t, sessions)
	other := seedSession(t, sessions)
	now := time.Now().UTC()

	// Write out of order; reads come back by sequence.
	for _, seq := range []int64{3, 1, 4, 2} {
		require.NoError(t, service.RecordEvent(ctx, publishedEvent(id, seq, events.EventTypeTurnCompleted, now)))
	}
	require.NoError(t, service.RecordEvent(ctx, publishedEvent(other, 1, events.EventTypeSessionStarted, now)))

	got, err := service.EventsSince(ctx, id, 1)
	require.NoError(t, err)
	require.Len(t, got, 4)
	for i, ev := range got {
		assert.Equal(t, int64(i+1), ev.Sequence)
		assert.Equal(t, id, ev.SessionID)
	}

	got, err = service.EventsSince(ctx, id, 3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].Sequence)
	assert.Equal(t, int64(4), got[1].Sequence)

	got, err = service.EventsSince(ctx, uuid.NewString(), 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEventService_CleanupSessionEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client)
	service := NewEventService(client.Client)
	ctx := context.Background()

	id := seedSession(t, sessions)
	keep := seedSession(t, sessions)
	now := time.Now().UTC()

	for seq := int64(1); seq <= 3; seq++ {
		require.NoError(t, service.RecordEvent(ctx, publishedEvent(id, seq, events.EventTypeTurnCompleted, now)))
	}
	require.NoError(t, service.RecordEvent(ctx, publishedEvent(keep, 1, events.EventTypeSessionStarted, now)))

	n, err := service.CleanupSessionEvents(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := service.EventsSince(ctx, id, 1)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = service.EventsSince(ctx, keep, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestEventService_CleanupOrphanedEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client)
	service := NewEventService(client.Client)
	ctx := context.Background()

	id := seedSession(t, sessions)
	now := time.Now().UTC()

	require.NoError(t, service.RecordEvent(ctx, publishedEvent(id, 1, events.EventTypeSessionStarted, now.Add(-72*time.Hour))))
	require.NoError(t, service.RecordEvent(ctx, publishedEvent(id, 2, events.EventTypeTurnCompleted, now)))

	n, err := service.CleanupOrphanedEvents(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := service.EventsSince(ctx, id, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].Sequence)
}
