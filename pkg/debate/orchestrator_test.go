package debate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-labs/agora/pkg/analysis"
	"github.com/agora-labs/agora/pkg/analytics"
	"github.com/agora-labs/agora/pkg/config"
	"github.com/agora-labs/agora/pkg/events"
	"github.com/agora-labs/agora/pkg/models"
	"github.com/agora-labs/agora/pkg/pool"
	"github.com/agora-labs/agora/pkg/provider"
	"github.com/agora-labs/agora/pkg/resilience"
	"github.com/agora-labs/agora/pkg/rounds"
)

// responder scripts the upstream: total is the process-wide call number,
// modelCalls the per-model call number, both starting at 1.
type responder func(ctx context.Context, req provider.Request, total, modelCalls int) (*provider.Completion, error)

type scriptedProvider struct {
	mu       sync.Mutex
	respond  responder
	total    int
	perModel map[string]int
	requests []provider.Request
}

func newScriptedProvider(respond responder) *scriptedProvider {
	return &scriptedProvider{respond: respond, perModel: make(map[string]int)}
}

func (p *scriptedProvider) Invoke(ctx context.Context, req provider.Request) (*provider.Completion, error) {
	p.mu.Lock()
	p.total++
	p.perModel[req.Model]++
	total, modelCalls := p.total, p.perModel[req.Model]
	p.requests = append(p.requests, req)
	p.mu.Unlock()
	return p.respond(ctx, req, total, modelCalls)
}

func (p *scriptedProvider) totalCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

func (p *scriptedProvider) callsTo(model string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.perModel[model]
}

var speechSubjects = []string{
	"infrastructure", "adoption", "maintenance", "training", "latency",
	"regulation", "throughput", "staffing", "tooling", "migration",
	"budgeting", "telemetry", "procurement", "escalation", "coverage",
}

// speech fabricates a well-formed argument: a premise with a statistic and
// an explicit conclusion, on a subject that varies per call so rounds stay
// novel.
func speech(n int) *provider.Completion {
	subject := speechSubjects[(n-1)%len(speechSubjects)]
	next := speechSubjects[n%len(speechSubjects)]
	text := fmt.Sprintf(
		"Furthermore, the %s figures matter because %s deployments improved %d percent last quarter. Therefore the plan for %s stands on its own merits.",
		subject, next, 20+n, subject)
	return &provider.Completion{
		Text:         text,
		InputTokens:  120,
		OutputTokens: 60,
		FinishReason: "stop",
	}
}

func speechResponder() responder {
	return func(ctx context.Context, req provider.Request, total, modelCalls int) (*provider.Completion, error) {
		return speech(total), nil
	}
}

func callErr(kind provider.FailureKind, model string) error {
	return provider.NewCallError(kind, model, errors.New("scripted failure"))
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Debate.TurnDeadline = 2 * time.Second
	cfg.Debate.SessionBudget = 30 * time.Second
	cfg.Retry.MaxAttempts = 3
	cfg.Retry.BaseDelay = time.Millisecond
	cfg.Retry.CapDelay = 4 * time.Millisecond
	cfg.Pool.Models = []config.ModelConfig{
		{ID: "alpha/one", Tier: "standard", InputCostPer1K: 0.5, OutputCostPer1K: 1.5},
		{ID: "beta/two", Tier: "standard", InputCostPer1K: 0.25, OutputCostPer1K: 0.75},
		{ID: "gamma/three", Tier: "standard", InputCostPer1K: 0.1, OutputCostPer1K: 0.3},
	}
	return cfg
}

type harness struct {
	svc  *Service
	bus  *events.Bus
	prov *scriptedProvider
	tbl  *resilience.BreakerTable
}

func newHarness(cfg *config.Config, respond responder) *harness {
	prov := newScriptedProvider(respond)
	tbl := resilience.NewBreakerTable(cfg.Breaker)
	ledger := resilience.NewBudget()
	guard := resilience.NewGuard("debate", prov, tbl, ledger, cfg.Retry, cfg.Debate.TurnDeadline, nil)
	p := pool.New(cfg.Pool)
	engine := pool.NewEngine(p, cfg.Pool)
	orch := NewOrchestrator(cfg.Debate, p, engine, guard, ledger,
		analysis.New(cfg.Analysis, nil), rounds.New(cfg.Rounds, cfg.Debate),
		events.NewBus(), NopStore{}, analytics.New())
	svc := NewService(cfg.Debate, cfg.Retry, orch, p, ledger, orch.bus, NopStore{})
	return &harness{svc: svc, bus: orch.bus, prov: prov, tbl: tbl}
}

// eventLog records the events for one session in delivery order.
type eventLog struct {
	mu     sync.Mutex
	events []events.Event
}

func (l *eventLog) record(ev events.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *eventLog) snapshot() []events.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]events.Event(nil), l.events...)
}

func (l *eventLog) typesOf() []string {
	var out []string
	for _, ev := range l.snapshot() {
		out = append(out, ev.Type)
	}
	return out
}

func waitTerminal(t *testing.T, svc *Service, id string) *models.Session {
	t.Helper()
	var snap *models.Session
	require.Eventually(t, func() bool {
		s, err := svc.Get(context.Background(), id)
		if err != nil {
			return false
		}
		snap = s
		return s.Status.Terminal()
	}, 10*time.Second, 2*time.Millisecond, "session never reached a terminal state")
	return snap
}

func waitTurns(t *testing.T, svc *Service, id string, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		s, err := svc.Get(context.Background(), id)
		return err == nil && len(s.Turns) >= n
	}, 10*time.Second, 2*time.Millisecond, "session never produced %d turns", n)
}

func waitStatus(t *testing.T, svc *Service, id string, status models.Status) {
	t.Helper()
	require.Eventually(t, func() bool {
		s, err := svc.Get(context.Background(), id)
		return err == nil && s.Status == status
	}, 10*time.Second, 2*time.Millisecond, "session never reached status %s", status)
}

func startSession(t *testing.T, h *harness, req CreateRequest) (*models.Session, *eventLog) {
	t.Helper()
	sess, err := h.svc.Create(context.Background(), req)
	require.NoError(t, err)
	log := &eventLog{}
	t.Cleanup(h.bus.Subscribe(events.SessionChannel(sess.ID), log.record))
	require.NoError(t, h.svc.Start(context.Background(), sess.ID))
	return sess, log
}

func countEvents(log *eventLog, eventType string) int {
	n := 0
	for _, ev := range log.snapshot() {
		if ev.Type == eventType {
			n++
		}
	}
	return n
}

func TestHappyPathTwoDebatersFixedRotation(t *testing.T) {
	h := newHarness(testConfig(), speechResponder())
	sess, _ := startSession(t, h, CreateRequest{
		Topic:     "Adopt AI customer support",
		Strategy:  models.StrategyFixed,
		MaxRounds: 3,
	})

	final := waitTerminal(t, h.svc, sess.ID)
	assert.Equal(t, models.StatusCompleted, final.Status)
	require.Len(t, final.Turns, 11)
	assert.Empty(t, final.Rotations)
	require.NotNil(t, final.Report)
	assert.NotNil(t, final.Report.Judgment)

	a, b := models.DebaterRole(0), models.DebaterRole(1)
	wantSpeakers := []models.Role{a, b, a, b, a, b, a, b, a, b, models.RoleJudge}
	wantPhases := []models.Phase{
		models.PhaseOpening, models.PhaseOpening,
		models.PhaseFirstRound, models.PhaseFirstRound,
		models.PhaseRebuttal, models.PhaseRebuttal,
		models.PhaseCrossExamination, models.PhaseCrossExamination,
		models.PhaseClosing, models.PhaseClosing,
		models.PhaseJudgment,
	}
	for i, turn := range final.Turns {
		assert.Equal(t, i+1, turn.Index)
		assert.Equal(t, wantSpeakers[i], turn.Role)
		assert.Equal(t, wantPhases[i], turn.Phase)
	}

	require.Len(t, final.Rounds, 3)
	for i, round := range final.Rounds {
		assert.Equal(t, i+1, round.Index)
		require.NotNil(t, round.Decision)
		assert.Equal(t, models.ActionContinue, round.Decision.Action)
	}

	assert.Equal(t, 11*120, final.Stats.InputTokens)
	assert.Equal(t, 11*60, final.Stats.OutputTokens)
	assert.Greater(t, final.Stats.CostEstimate, 0.0)
	assert.Zero(t, final.Stats.ErrorCount)
	assert.Zero(t, final.Stats.RetryCount)
}

func TestTurnInvariantsHold(t *testing.T) {
	h := newHarness(testConfig(), speechResponder())
	sess, _ := startSession(t, h, CreateRequest{Topic: "topic", Strategy: models.StrategyFixed, MaxRounds: 3})
	final := waitTerminal(t, h.svc, sess.ID)

	for i := 1; i < len(final.Turns); i++ {
		prev, cur := final.Turns[i-1], final.Turns[i]
		assert.False(t, cur.Timestamp.Before(prev.Timestamp),
			"turn %d timestamp precedes turn %d", cur.Index, prev.Index)
		assert.True(t, models.PhaseReachable(prev.Phase, cur.Phase),
			"phase %s not reachable from %s", cur.Phase, prev.Phase)
	}
	for _, turn := range final.Turns {
		require.NotNil(t, turn.Argument)
		assert.GreaterOrEqual(t, turn.Argument.Strength, 0.0)
		assert.LessOrEqual(t, turn.Argument.Strength, 1.0)
		if len(turn.Argument.Evidence) == 0 {
			assert.Zero(t, turn.Argument.EvidenceScore)
		}
	}
}

func TestMidDebateOutageRotatesOnce(t *testing.T) {
	// beta/two serves its opening and first-round turns, then times out on
	// every call: the retry schedule exhausts, the breaker is forced open,
	// and the emergency path swaps debater_B exactly once.
	respond := func(ctx context.Context, req provider.Request, total, modelCalls int) (*provider.Completion, error) {
		if req.Model == "beta/two" && modelCalls > 2 {
			return nil, callErr(provider.KindTimeout, req.Model)
		}
		return speech(total), nil
	}
	h := newHarness(testConfig(), respond)
	sess, log := startSession(t, h, CreateRequest{
		Topic:     "topic",
		Strategy:  models.StrategyAdaptive,
		MaxRounds: 3,
	})

	final := waitTerminal(t, h.svc, sess.ID)
	assert.Equal(t, models.StatusCompleted, final.Status)
	require.Len(t, final.Turns, 11)

	require.Len(t, final.Rotations, 1)
	rotation := final.Rotations[0]
	assert.True(t, rotation.Decision.Emergency)
	assert.Equal(t, models.DebaterRole(1), rotation.Decision.Role)
	assert.Equal(t, "beta/two", rotation.Decision.OldModel)
	assert.NotEqual(t, "beta/two", rotation.Decision.NewModel)

	// The failed round-2 turn was retried on the replacement, not lost.
	for _, turn := range final.Turns {
		if turn.Role == models.DebaterRole(1) && turn.Index > rotation.AfterTurn {
			assert.Equal(t, rotation.Decision.NewModel, turn.Model)
		}
	}

	assert.Equal(t, 1, countEvents(log, events.EventTypeRotationApplied))
	assert.True(t, h.tbl.Unhealthy("debate", "beta/two"))
	assert.Positive(t, final.Stats.ErrorCount)
	assert.Positive(t, final.Stats.RetryCount)
}

func TestCancelMidTurnDiscardsInFlightResult(t *testing.T) {
	blocking := make(chan struct{})
	respond := func(ctx context.Context, req provider.Request, total, modelCalls int) (*provider.Completion, error) {
		if total == 6 {
			close(blocking)
			<-ctx.Done()
			return nil, provider.NewCallError(provider.KindTimeout, req.Model, ctx.Err())
		}
		return speech(total), nil
	}
	h := newHarness(testConfig(), respond)
	sess, log := startSession(t, h, CreateRequest{Topic: "topic", Strategy: models.StrategyFixed, MaxRounds: 3})

	// Wait until turn 6's model call is in flight, then cancel.
	select {
	case <-blocking:
	case <-time.After(10 * time.Second):
		t.Fatal("turn 6 call never started")
	}
	require.NoError(t, h.svc.Cancel(context.Background(), sess.ID))

	final := waitTerminal(t, h.svc, sess.ID)
	assert.Equal(t, models.StatusCancelled, final.Status)
	assert.Len(t, final.Turns, 5)
	assert.Nil(t, final.Report)

	_, err := h.svc.Analytics(context.Background(), sess.ID, AnalysisReport)
	assert.ErrorIs(t, err, ErrNotReady)

	require.Eventually(t, func() bool {
		evs := log.snapshot()
		return len(evs) > 0 && evs[len(evs)-1].Type == events.EventTypeSessionEnded
	}, 5*time.Second, 2*time.Millisecond)
	evs := log.snapshot()
	payload, ok := evs[len(evs)-1].Payload.(events.SessionEndedPayload)
	require.True(t, ok)
	assert.Equal(t, models.StatusCancelled, payload.Status)
}

func TestQualityTrendTerminatesEarly(t *testing.T) {
	// Identical low-substance turns: quality stays under the floor and the
	// first round restates the openings verbatim, so novelty collapses and
	// the trend rule fires after round 2.
	respond := func(ctx context.Context, req provider.Request, total, modelCalls int) (*provider.Completion, error) {
		return &provider.Completion{
			Text:         "We disagree on this entirely and nothing more needs saying.",
			InputTokens:  40,
			OutputTokens: 12,
		}, nil
	}
	h := newHarness(testConfig(), respond)
	sess, _ := startSession(t, h, CreateRequest{Topic: "topic", Strategy: models.StrategyAdaptive})

	final := waitTerminal(t, h.svc, sess.ID)
	assert.Equal(t, models.StatusCompleted, final.Status)

	// Openings, two middle rounds, judgment; closing and cross-examination
	// are skipped.
	require.Len(t, final.Turns, 7)
	for _, turn := range final.Turns {
		assert.NotEqual(t, models.PhaseClosing, turn.Phase)
		assert.NotEqual(t, models.PhaseCrossExamination, turn.Phase)
	}

	require.Len(t, final.Rounds, 2)
	last := final.Rounds[1]
	require.NotNil(t, last.Decision)
	assert.Equal(t, models.ActionTerminateEarly, last.Decision.Action)

	require.NotNil(t, final.Report)
	require.NotEmpty(t, final.Report.Omissions)
	found := false
	for _, note := range final.Report.Omissions {
		if note == "debate terminated early on declining quality; rebuttal and closing phases were skipped" {
			found = true
		}
	}
	assert.True(t, found, "report should note the truncation")
}

func TestAuthFailureFailsFastWithEmptyTranscript(t *testing.T) {
	respond := func(ctx context.Context, req provider.Request, total, modelCalls int) (*provider.Completion, error) {
		return nil, callErr(provider.KindAuth, req.Model)
	}
	h := newHarness(testConfig(), respond)
	sess, log := startSession(t, h, CreateRequest{Topic: "topic", Strategy: models.StrategyFixed})

	final := waitTerminal(t, h.svc, sess.ID)
	assert.Equal(t, models.StatusFailed, final.Status)
	assert.Contains(t, final.StatusReason, "auth")
	assert.Empty(t, final.Turns)

	// No retries: a single upstream call was spent.
	assert.Equal(t, 1, h.prov.totalCalls())
	assert.Zero(t, final.Stats.RetryCount)

	// The record stays retrievable after failure.
	again, err := h.svc.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, again.Status)

	require.Eventually(t, func() bool {
		return countEvents(log, events.EventTypeSessionEnded) == 1
	}, 5*time.Second, 2*time.Millisecond)
}

func TestSharedBreakerSparesSecondSession(t *testing.T) {
	// alpha/one is down for everyone. The first session to exhaust its
	// retries forces the breaker open; the other observes the open breaker
	// at its own turn boundary and rotates without burning more calls.
	respond := func(ctx context.Context, req provider.Request, total, modelCalls int) (*provider.Completion, error) {
		if req.Model == "alpha/one" {
			return nil, callErr(provider.KindUnavailable, req.Model)
		}
		return speech(total), nil
	}
	cfg := testConfig()
	h := newHarness(cfg, respond)

	s1, log1 := startSession(t, h, CreateRequest{Topic: "topic one", Strategy: models.StrategyAdaptive, MaxRounds: 3})
	s2, log2 := startSession(t, h, CreateRequest{Topic: "topic two", Strategy: models.StrategyAdaptive, MaxRounds: 3})

	f1 := waitTerminal(t, h.svc, s1.ID)
	f2 := waitTerminal(t, h.svc, s2.ID)
	assert.Equal(t, models.StatusCompleted, f1.Status)
	assert.Equal(t, models.StatusCompleted, f2.Status)

	for _, final := range []*models.Session{f1, f2} {
		require.NotEmpty(t, final.Rotations)
		rot := final.Rotations[0]
		assert.True(t, rot.Decision.Emergency)
		assert.Equal(t, models.DebaterRole(0), rot.Decision.Role)
		assert.Equal(t, "alpha/one", rot.Decision.OldModel)
		require.Len(t, final.Turns, 11)
	}

	// Worst case both sessions exhaust retries concurrently; the breaker
	// never demands a fresh accumulation of failures per session.
	assert.LessOrEqual(t, h.prov.callsTo("alpha/one"), 2*cfg.Retry.MaxAttempts)
	assert.True(t, h.tbl.Unhealthy("debate", "alpha/one"))

	// Per-session event streams stay strictly ordered.
	for _, log := range []*eventLog{log1, log2} {
		evs := log.snapshot()
		require.NotEmpty(t, evs)
		for i := 1; i < len(evs); i++ {
			assert.Equal(t, evs[i-1].Sequence+1, evs[i].Sequence)
		}
	}
}

func TestPhaseEventsFollowTheGraph(t *testing.T) {
	h := newHarness(testConfig(), speechResponder())
	sess, log := startSession(t, h, CreateRequest{Topic: "topic", Strategy: models.StrategyFixed, MaxRounds: 3})
	waitTerminal(t, h.svc, sess.ID)

	require.Eventually(t, func() bool {
		return countEvents(log, events.EventTypeSessionEnded) == 1
	}, 5*time.Second, 2*time.Millisecond)

	var phases []models.Phase
	for _, ev := range log.snapshot() {
		if ev.Type == events.EventTypePhaseEntered {
			phases = append(phases, ev.Payload.(events.PhaseEnteredPayload).Phase)
		}
	}
	assert.Equal(t, []models.Phase{
		models.PhaseOpening,
		models.PhaseFirstRound,
		models.PhaseRebuttal,
		models.PhaseCrossExamination,
		models.PhaseClosing,
		models.PhaseJudgment,
		models.PhaseCompleted,
	}, phases)

	types := log.typesOf()
	assert.Equal(t, events.EventTypeSessionStarted, types[0])
	assert.Equal(t, events.EventTypeSessionEnded, types[len(types)-1])
	assert.Equal(t, 11, countEvents(log, events.EventTypeTurnCompleted))
	assert.Equal(t, 3, countEvents(log, events.EventTypeRoundClosed))
}

func TestEventReplayReconstructsTranscript(t *testing.T) {
	h := newHarness(testConfig(), speechResponder())
	sess, _ := startSession(t, h, CreateRequest{Topic: "topic", Strategy: models.StrategyFixed, MaxRounds: 3})
	final := waitTerminal(t, h.svc, sess.ID)

	replayed := h.bus.Replay(sess.ID, 1)
	require.NotEmpty(t, replayed)
	for i, ev := range replayed {
		assert.Equal(t, int64(i+1), ev.Sequence)
	}

	var turns []models.Turn
	var status models.Status
	for _, ev := range replayed {
		switch payload := ev.Payload.(type) {
		case events.TurnCompletedPayload:
			turns = append(turns, payload.Turn)
		case events.SessionEndedPayload:
			status = payload.Status
		}
	}
	assert.Equal(t, models.StatusCompleted, status)
	require.Len(t, turns, len(final.Turns))
	for i := range turns {
		assert.Equal(t, final.Turns[i].Index, turns[i].Index)
		assert.Equal(t, final.Turns[i].Content, turns[i].Content)
	}
}

func TestZeroRetryBudgetPromotesTransientToFatal(t *testing.T) {
	respond := func(ctx context.Context, req provider.Request, total, modelCalls int) (*provider.Completion, error) {
		return nil, callErr(provider.KindTransient, req.Model)
	}
	cfg := testConfig()
	cfg.Retry.SessionRetryBudget = 0
	h := newHarness(cfg, respond)
	sess, _ := startSession(t, h, CreateRequest{Topic: "topic", Strategy: models.StrategyFixed})

	final := waitTerminal(t, h.svc, sess.ID)
	assert.Equal(t, models.StatusFailed, final.Status)
	assert.Contains(t, final.StatusReason, "retry budget")
	assert.Equal(t, 1, h.prov.totalCalls())
}

func TestSessionBudgetExhaustionFailsSession(t *testing.T) {
	respond := func(ctx context.Context, req provider.Request, total, modelCalls int) (*provider.Completion, error) {
		select {
		case <-ctx.Done():
			return nil, provider.NewCallError(provider.KindTimeout, req.Model, ctx.Err())
		case <-time.After(50 * time.Millisecond):
			return speech(total), nil
		}
	}
	cfg := testConfig()
	cfg.Debate.SessionBudget = 120 * time.Millisecond
	h := newHarness(cfg, respond)
	sess, _ := startSession(t, h, CreateRequest{Topic: "topic", Strategy: models.StrategyFixed})

	final := waitTerminal(t, h.svc, sess.ID)
	assert.Equal(t, models.StatusFailed, final.Status)
	assert.Equal(t, "budget exhausted", final.StatusReason)
}
