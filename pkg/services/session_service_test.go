package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-labs/agora/ent/analyticsartifact"
	"github.com/agora-labs/agora/ent/debateturn"
	"github.com/agora-labs/agora/pkg/models"
	testdb "github.com/agora-labs/agora/test/database"
)

func pendingSnapshot(id string) *models.Session {
	return &models.Session{
		ID:        id,
		Topic:     "Should cities ban private cars from their centres",
		Reference: "urban mobility review 2026",
		Status:    models.StatusPending,
		Phase:     models.PhaseInitialization,
		Debaters:  2,
		Strategy:  models.StrategyFixed,
		Assignment: map[models.Role]string{
			models.DebaterRole(0): "vendor/model-a",
			models.DebaterRole(1): "vendor/model-b",
			models.RoleJudge:      "vendor/model-j",
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestSessionService_SaveSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("creates then updates the header row", func(t *testing.T) {
		snap := pendingSnapshot(uuid.NewString())
		require.NoError(t, service.SaveSession(ctx, snap))

		got, err := service.GetSession(ctx, snap.ID)
		require.NoError(t, err)
		assert.Equal(t, snap.Topic, got.Topic)
		assert.Equal(t, snap.Reference, got.Reference)
		assert.Equal(t, models.StatusPending, got.Status)
		assert.Equal(t, models.PhaseInitialization, got.Phase)
		assert.Equal(t, 2, got.Debaters)
		assert.Equal(t, models.StrategyFixed, got.Strategy)
		assert.Equal(t, snap.Assignment, got.Assignment)
		assert.WithinDuration(t, snap.CreatedAt, got.CreatedAt, time.Second)
		assert.Nil(t, got.StartedAt)
		assert.Nil(t, got.EndedAt)

		// Session ends: the same call updates the existing row in place.
		started := time.Now().UTC()
		ended := started.Add(3 * time.Minute)
		snap.Status = models.StatusCompleted
		snap.StatusReason = "judgment delivered"
		snap.Phase = models.PhaseCompleted
		snap.Strategy = models.StrategyRoundRobin
		snap.Assignment[models.DebaterRole(0)] = "vendor/model-a2"
		snap.StartedAt = &started
		snap.EndedAt = &ended
		snap.Stats = models.SessionStats{
			InputTokens:  1200,
			OutputTokens: 900,
			CostEstimate: 0.42,
			ErrorCount:   1,
			RetryCount:   3,
			Duration:     180 * time.Second,
		}
		require.NoError(t, service.SaveSession(ctx, snap))

		got, err = service.GetSession(ctx, snap.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, got.Status)
		assert.Equal(t, "judgment delivered", got.StatusReason)
		assert.Equal(t, models.PhaseCompleted, got.Phase)
		assert.Equal(t, models.StrategyRoundRobin, got.Strategy)
		assert.Equal(t, "vendor/model-a2", got.Assignment[models.DebaterRole(0)])
		assert.Equal(t, snap.Stats, got.Stats)
		require.NotNil(t, got.StartedAt)
		require.NotNil(t, got.EndedAt)
		assert.WithinDuration(t, ended, *got.EndedAt, time.Second)
	})

	t.Run("requires a session id", func(t *testing.T) {
		err := service.SaveSession(ctx, &models.Session{Topic: "no id"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown session is not found", func(t *testing.T) {
		_, err := service.GetSession(ctx, uuid.NewString())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSessionService_SaveTurn(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	snap := pendingSnapshot(uuid.NewString())
	require.NoError(t, service.SaveSession(ctx, snap))

	turn := models.Turn{
		Index:        1,
		Round:        0,
		Role:         models.DebaterRole(0),
		Model:        "vendor/model-a",
		Phase:        models.PhaseOpening,
		Content:      "Cities should reclaim street space for people.",
		Timestamp:    time.Now().UTC(),
		Latency:      750 * time.Millisecond,
		InputTokens:  300,
		OutputTokens: 120,
		Argument: &models.ArgumentRecord{
			Structure: models.ArgumentStructure{
				Premises:     []string{"congestion harms health", "transit exists"},
				Conclusion:   "ban private cars downtown",
				StructureTag: "complete",
			},
			StructureScore: 0.8,
			EvidenceScore:  0.5,
			LogicScore:     0.7,
			Strength:       0.68,
			Confidence:     0.9,
		},
	}
	require.NoError(t, service.SaveTurn(ctx, snap.ID, turn))

	t.Run("round-trips the argument record", func(t *testing.T) {
		got, err := service.GetSession(ctx, snap.ID)
		require.NoError(t, err)
		require.Len(t, got.Turns, 1)
		assert.Equal(t, turn.Content, got.Turns[0].Content)
		assert.Equal(t, turn.Latency, got.Turns[0].Latency)
		assert.Equal(t, turn.InputTokens, got.Turns[0].InputTokens)
		require.NotNil(t, got.Turns[0].Argument)
		assert.Equal(t, *turn.Argument, *got.Turns[0].Argument)
	})

	t.Run("re-saving an index is a no-op", func(t *testing.T) {
		dup := turn
		dup.Content = "a different utterance for the same slot"
		require.NoError(t, service.SaveTurn(ctx, snap.ID, dup))

		n, err := client.DebateTurn.Query().
			Where(debateturn.SessionIDEQ(snap.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		got, err := service.GetSession(ctx, snap.ID)
		require.NoError(t, err)
		require.Len(t, got.Turns, 1)
		assert.Equal(t, turn.Content, got.Turns[0].Content)
	})
}

func TestSessionService_SaveRound(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	snap := pendingSnapshot(uuid.NewString())
	require.NoError(t, service.SaveSession(ctx, snap))

	round := models.Round{
		Index:     1,
		Phase:     models.PhaseFirstRound,
		FirstTurn: 3,
		LastTurn:  4,
		Metrics: &models.RoundMetrics{
			Quality:      0.7,
			Engagement:   0.6,
			Novelty:      0.9,
			TimePressure: 0.2,
			Composite:    0.66,
		},
		Decision: &models.RoundDecision{
			Action: models.ActionContinue,
			Reason: "quality holding steady",
			Metrics: models.RoundMetrics{
				Quality: 0.7, Engagement: 0.6, Novelty: 0.9, TimePressure: 0.2, Composite: 0.66,
			},
		},
	}
	require.NoError(t, service.SaveRound(ctx, snap.ID, round))
	// Duplicate round index is tolerated like duplicate turns.
	require.NoError(t, service.SaveRound(ctx, snap.ID, round))

	got, err := service.GetSession(ctx, snap.ID)
	require.NoError(t, err)
	require.Len(t, got.Rounds, 1)
	assert.Equal(t, round.FirstTurn, got.Rounds[0].FirstTurn)
	assert.Equal(t, round.LastTurn, got.Rounds[0].LastTurn)
	require.NotNil(t, got.Rounds[0].Metrics)
	assert.Equal(t, *round.Metrics, *got.Rounds[0].Metrics)
	require.NotNil(t, got.Rounds[0].Decision)
	assert.Equal(t, *round.Decision, *got.Rounds[0].Decision)
}

func TestSessionService_SaveRotation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	snap := pendingSnapshot(uuid.NewString())
	require.NoError(t, service.SaveSession(ctx, snap))

	ev := models.RotationEvent{
		Decision: models.RotationDecision{
			Role:                models.DebaterRole(1),
			OldModel:            "vendor/model-b",
			NewModel:            "vendor/model-b2",
			Reason:              "underperforming incumbent",
			Confidence:          0.8,
			ExpectedImprovement: 0.15,
			Emergency:           true,
		},
		Phase:     models.PhaseRebuttal,
		AfterTurn: 6,
		AppliedAt: time.Now().UTC(),
	}
	require.NoError(t, service.SaveRotation(ctx, snap.ID, ev))

	got, err := service.GetSession(ctx, snap.ID)
	require.NoError(t, err)
	require.Len(t, got.Rotations, 1)
	assert.Equal(t, ev.Decision, got.Rotations[0].Decision)
	assert.Equal(t, ev.Phase, got.Rotations[0].Phase)
	assert.Equal(t, ev.AfterTurn, got.Rotations[0].AfterTurn)
}

func TestSessionService_SaveReport(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	snap := pendingSnapshot(uuid.NewString())
	require.NoError(t, service.SaveSession(ctx, snap))

	report := &models.FinalReport{
		SessionID: snap.ID,
		Judgment: &models.Judgment{
			Winner:     models.DebaterRole(0),
			Confidence: 0.75,
			Margin:     0.1,
			Summary:    "stronger evidence base",
		},
		Narrative: "first draft",
		Omissions: []string{"consensus"},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, service.SaveReport(ctx, snap.ID, report))

	// A later save replaces the earlier artifact instead of stacking rows.
	report.Narrative = "final narrative"
	require.NoError(t, service.SaveReport(ctx, snap.ID, report))

	n, err := client.AnalyticsArtifact.Query().
		Where(analyticsartifact.SessionIDEQ(snap.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := service.GetSession(ctx, snap.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Report)
	assert.Equal(t, "final narrative", got.Report.Narrative)
	require.NotNil(t, got.Report.Judgment)
	assert.Equal(t, models.DebaterRole(0), got.Report.Judgment.Winner)
	assert.Equal(t, []string{"consensus"}, got.Report.Omissions)

	// A nil report is ignored rather than erased.
	require.NoError(t, service.SaveReport(ctx, snap.ID, nil))
	got, err = service.GetSession(ctx, snap.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Report)
}

func TestSessionService_ListSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	var ids []string
	for i := 0; i < 4; i++ {
		snap := pendingSnapshot(uuid.NewString())
		snap.Topic = fmt.Sprintf("topic %d", i)
		snap.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if i%2 == 0 {
			snap.Status = models.StatusCompleted
		}
		require.NoError(t, service.SaveSession(ctx, snap))
		ids = append(ids, snap.ID)
	}

	t.Run("newest first", func(t *testing.T) {
		got, err := service.ListSessions(ctx, "", 0, 0)
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, ids[3], got[0].ID)
		assert.Equal(t, ids[0], got[3].ID)
	})

	t.Run("status filter", func(t *testing.T) {
		got, err := service.ListSessions(ctx, models.StatusCompleted, 0, 0)
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, s := range got {
			assert.Equal(t, models.StatusCompleted, s.Status)
		}
	})

	t.Run("limit and offset page through", func(t *testing.T) {
		got, err := service.ListSessions(ctx, "", 2, 1)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, ids[2], got[0].ID)
		assert.Equal(t, ids[1], got[1].ID)
	})
}

func TestSessionService_SoftDeleteSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	snap := pendingSnapshot(uuid.NewString())
	require.NoError(t, service.SaveSession(ctx, snap))

	require.NoError(t, service.SoftDeleteSession(ctx, snap.ID))

	_, err := service.GetSession(ctx, snap.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	listed, err := service.ListSessions(ctx, "", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, listed)

	// Deleting again finds nothing to delete.
	assert.ErrorIs(t, service.SoftDeleteSession(ctx, snap.ID), ErrNotFound)
}

func TestSessionService_PurgeEndedBefore(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	endSession := func(snap *models.Session, endedAt time.Time) {
		require.NoError(t, service.SaveSession(ctx, snap))
		snap.Status = models.StatusCompleted
		snap.Phase = models.PhaseCompleted
		snap.EndedAt = &endedAt
		require.NoError(t, service.SaveSession(ctx, snap))
	}

	old := pendingSnapshot(uuid.NewString())
	endSession(old, time.Now().UTC().Add(-48*time.Hour))
	require.NoError(t, service.SaveTurn(ctx, old.ID, models.Turn{
		Index: 1, Role: models.DebaterRole(0), Model: "vendor/model-a",
		Phase: models.PhaseOpening, Content: "soon to be purged", Timestamp: time.Now().UTC(),
	}))

	recent := pendingSnapshot(uuid.NewString())
	endSession(recent, time.Now().UTC())

	running := pendingSnapshot(uuid.NewString())
	require.NoError(t, service.SaveSession(ctx, running))

	n, err := service.PurgeEndedBefore(ctx, time.Now().UTC().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = service.GetSession(ctx, old.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = service.GetSession(ctx, recent.ID)
	assert.NoError(t, err)
	_, err = service.GetSession(ctx, running.ID)
	assert.NoError(t, err)

	// Child rows went with the purged session.
	turns, err := client.DebateTurn.Query().
		Where(debateturn.SessionIDEQ(old.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, turns)
}
