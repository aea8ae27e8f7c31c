package debate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-labs/agora/pkg/models"
	"github.com/agora-labs/agora/pkg/provider"
)

func TestCreateValidation(t *testing.T) {
	h := newHarness(testConfig(), speechResponder())
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateRequest
	}{
		{"empty topic", CreateRequest{}},
		{"one debater", CreateRequest{Topic: "t", Debaters: 1}},
		{"unknown strategy", CreateRequest{Topic: "t", Strategy: "chaotic"}},
		{"max rounds above ceiling", CreateRequest{Topic: "t", MaxRounds: 99}},
		{"negative budget", CreateRequest{Topic: "t", Budget: -time.Second}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.svc.Create(ctx, tc.req)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	h := newHarness(testConfig(), speechResponder())
	sess, err := h.svc.Create(context.Background(), CreateRequest{Topic: "defaults"})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, sess.Status)
	assert.Equal(t, models.PhaseInitialization, sess.Phase)
	assert.Equal(t, 2, sess.Debaters)
	assert.Equal(t, models.StrategyAdaptive, sess.Strategy)
	require.Len(t, sess.Assignment, 3)
	assert.Equal(t, "alpha/one", sess.Assignment[models.DebaterRole(0)])
	assert.Equal(t, "beta/two", sess.Assignment[models.DebaterRole(1)])
	assert.Equal(t, "gamma/three", sess.Assignment[models.RoleJudge])
}

func TestLifecycleStateErrors(t *testing.T) {
	h := newHarness(testConfig(), speechResponder())
	ctx := context.Background()

	_, err := h.svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, h.svc.Start(ctx, "missing"), ErrNotFound)
	assert.ErrorIs(t, h.svc.Cancel(ctx, "missing"), ErrNotFound)

	sess, err := h.svc.Create(ctx, CreateRequest{Topic: "t", Strategy: models.StrategyFixed, MaxRounds: 3})
	require.NoError(t, err)

	// Pending sessions cannot pause or resume.
	assert.ErrorIs(t, h.svc.Pause(ctx, sess.ID), ErrInvalidState)
	assert.ErrorIs(t, h.svc.Resume(ctx, sess.ID), ErrInvalidState)

	require.NoError(t, h.svc.Start(ctx, sess.ID))
	assert.ErrorIs(t, h.svc.Start(ctx, sess.ID), ErrAlreadyStarted)

	final := waitTerminal(t, h.svc, sess.ID)
	assert.Equal(t, models.StatusCompleted, final.Status)
	assert.ErrorIs(t, h.svc.Pause(ctx, sess.ID), ErrInvalidState)

	// Cancelling a terminal session is a no-op.
	assert.NoError(t, h.svc.Cancel(ctx, sess.ID))
	again, err := h.svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, again.Status)
}

func TestCancelPendingSessionNeverRuns(t *testing.T) {
	h := newHarness(testConfig(), speechResponder())
	ctx := context.Background()

	sess, err := h.svc.Create(ctx, CreateRequest{Topic: "t"})
	require.NoError(t, err)
	require.NoError(t, h.svc.Cancel(ctx, sess.ID))

	got, err := h.svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, got.Status)
	assert.Equal(t, "cancelled before start", got.StatusReason)
	assert.Empty(t, got.Turns)
	assert.Zero(t, h.prov.totalCalls())

	// The slot was consumed by the cancel.
	assert.ErrorIs(t, h.svc.Start(ctx, sess.ID), ErrAlreadyStarted)
}

func TestPauseSuspendsAndResumeContinues(t *testing.T) {
	respond := func(ctx context.Context, req provider.Request, total, modelCalls int) (*provider.Completion, error) {
		time.Sleep(10 * time.Millisecond)
		return speech(total), nil
	}
	h := newHarness(testConfig(), respond)
	ctx := context.Background()

	sess, err := h.svc.Create(ctx, CreateRequest{Topic: "t", Strategy: models.StrategyFixed, MaxRounds: 3})
	require.NoError(t, err)
	require.NoError(t, h.svc.Start(ctx, sess.ID))

	waitTurns(t, h.svc, sess.ID, 2)
	require.NoError(t, h.svc.Pause(ctx, sess.ID))
	waitStatus(t, h.svc, sess.ID, models.StatusPaused)

	// No turns are produced while paused.
	before, err := h.svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	after, err := h.svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, len(before.Turns), len(after.Turns))
	assert.Equal(t, before.Phase, after.Phase)

	require.NoError(t, h.svc.Resume(ctx, sess.ID))
	final := waitTerminal(t, h.svc, sess.ID)
	assert.Equal(t, models.StatusCompleted, final.Status)
	assert.Len(t, final.Turns, 11)

	// Pausing then resuming duplicated no turn.
	seen := make(map[int]bool, len(final.Turns))
	for _, turn := range final.Turns {
		assert.False(t, seen[turn.Index])
		seen[turn.Index] = true
	}
}

func TestCancelWinsOverPause(t *testing.T) {
	respond := func(ctx context.Context, req provider.Request, total, modelCalls int) (*provider.Completion, error) {
		time.Sleep(10 * time.Millisecond)
		return speech(total), nil
	}
	h := newHarness(testConfig(), respond)
	ctx := context.Background()

	sess, err := h.svc.Create(ctx, CreateRequest{Topic: "t", Strategy: models.StrategyFixed, MaxRounds: 3})
	require.NoError(t, err)
	require.NoError(t, h.svc.Start(ctx, sess.ID))

	waitTurns(t, h.svc, sess.ID, 1)
	require.NoError(t, h.svc.Pause(ctx, sess.ID))
	waitStatus(t, h.svc, sess.ID, models.StatusPaused)
	require.NoError(t, h.svc.Cancel(ctx, sess.ID))

	final := waitTerminal(t, h.svc, sess.ID)
	assert.Equal(t, models.StatusCancelled, final.Status)
}

func TestTranscriptSlicing(t *testing.T) {
	h := newHarness(testConfig(), speechResponder())
	ctx := context.Background()

	sess, err := h.svc.Create(ctx, CreateRequest{Topic: "t", Strategy: models.StrategyFixed, MaxRounds: 3})
	require.NoError(t, err)
	require.NoError(t, h.svc.Start(ctx, sess.ID))
	waitTerminal(t, h.svc, sess.ID)

	all, err := h.svc.Transcript(ctx, sess.ID, 0)
	require.NoError(t, err)
	require.Len(t, all, 11)

	tail, err := h.svc.Transcript(ctx, sess.ID, 5)
	require.NoError(t, err)
	require.Len(t, tail, 6)
	assert.Equal(t, 6, tail[0].Index)

	// Head plus tail reassembles the full transcript.
	assert.Equal(t, all[5:], tail)

	past, err := h.svc.Transcript(ctx, sess.ID, 99)
	require.NoError(t, err)
	assert.Empty(t, past)

	neg, err := h.svc.Transcript(ctx, sess.ID, -3)
	require.NoError(t, err)
	assert.Equal(t, all, neg)

	_, err = h.svc.Transcript(ctx, "missing", 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnalyticsSections(t *testing.T) {
	h := newHarness(testConfig(), speechResponder())
	ctx := context.Background()

	sess, err := h.svc.Create(ctx, CreateRequest{Topic: "t", Strategy: models.StrategyFixed, MaxRounds: 3})
	require.NoError(t, err)

	_, err = h.svc.Analytics(ctx, sess.ID, AnalysisReport)
	assert.ErrorIs(t, err, ErrNotReady)

	require.NoError(t, h.svc.Start(ctx, sess.ID))
	waitTerminal(t, h.svc, sess.ID)

	for _, kind := range []AnalysisKind{AnalysisChains, AnalysisConsensus, AnalysisJudgment, AnalysisReport} {
		section, err := h.svc.Analytics(ctx, sess.ID, kind)
		require.NoError(t, err, "kind %s", kind)
		assert.NotNil(t, section)
	}

	report, err := h.svc.Analytics(ctx, sess.ID, AnalysisReport)
	require.NoError(t, err)
	assert.IsType(t, &models.FinalReport{}, report)

	_, err = h.svc.Analytics(ctx, sess.ID, "phrenology")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSetRotationStrategy(t *testing.T) {
	h := newHarness(testConfig(), speechResponder())
	ctx := context.Background()

	sess, err := h.svc.Create(ctx, CreateRequest{Topic: "t", Strategy: models.StrategyFixed})
	require.NoError(t, err)

	assert.ErrorIs(t, h.svc.SetRotationStrategy(ctx, sess.ID, "chaotic"), ErrInvalidConfig)
	assert.ErrorIs(t, h.svc.SetRotationStrategy(ctx, "missing", models.StrategyBalanced), ErrNotFound)

	require.NoError(t, h.svc.SetRotationStrategy(ctx, sess.ID, models.StrategyBalanced))
	got, err := h.svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StrategyBalanced, got.Strategy)
}

func TestListFiltersAndPaginates(t *testing.T) {
	h := newHarness(testConfig(), speechResponder())
	ctx := context.Background()

	var ids []string
	for _, topic := range []string{"first", "second", "third"} {
		sess, err := h.svc.Create(ctx, CreateRequest{Topic: topic})
		require.NoError(t, err)
		ids = append(ids, sess.ID)
		time.Sleep(time.Millisecond)
	}

	all, err := h.svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest first.
	assert.Equal(t, ids[2], all[0].ID)
	assert.Equal(t, ids[0], all[2].ID)

	pending, err := h.svc.List(ctx, ListFilter{Status: models.StatusPending})
	require.NoError(t, err)
	assert.Len(t, pending, 3)

	none, err := h.svc.List(ctx, ListFilter{Status: models.StatusCompleted})
	require.NoError(t, err)
	assert.Empty(t, none)

	page, err := h.svc.List(ctx, ListFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, ids[1], page[0].ID)

	far, err := h.svc.List(ctx, ListFilter{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, far)
}

func TestDeleteRequiresTerminalState(t *testing.T) {
	h := newHarness(testConfig(), speechResponder())
	ctx := context.Background()

	sess, err := h.svc.Create(ctx, CreateRequest{Topic: "t"})
	require.NoError(t, err)

	assert.ErrorIs(t, h.svc.Delete(ctx, sess.ID), ErrInvalidState)

	require.NoError(t, h.svc.Cancel(ctx, sess.ID))
	require.NoError(t, h.svc.Delete(ctx, sess.ID))

	_, err = h.svc.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, h.svc.Delete(ctx, sess.ID), ErrNotFound)
}
