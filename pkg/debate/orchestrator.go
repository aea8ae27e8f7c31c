// Package debate is the session state machine: it drives phases, serializes
// turn order, routes each turn through the guarded provider path, scores
// responses, applies rotation decisions at phase boundaries, and consults
// the round manager after each round. One goroutine per session; strictly
// serial within it.
package debate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/agora-labs/agora/pkg/analysis"
	"github.com/agora-labs/agora/pkg/config"
	"github.com/agora-labs/agora/pkg/events"
	"github.com/agora-labs/agora/pkg/models"
	"github.com/agora-labs/agora/pkg/pool"
	"github.com/agora-labs/agora/pkg/provider"
	"github.com/agora-labs/agora/pkg/resilience"
	"github.com/agora-labs/agora/pkg/rounds"
)

// Reporter builds the final analytical artifact from a terminal session
// snapshot. It must always return a report; sub-analysis failures degrade
// sections and are listed in the report's omissions.
type Reporter interface {
	Report(s *models.Session) *models.FinalReport
}

// Per-turn generation bounds.
const (
	turnMaxTokens   = 1024
	turnTemperature = 0.7
)

// Orchestrator owns the per-session tasks and the process-wide collaborators
// they share.
type Orchestrator struct {
	cfg      *config.DebateConfig
	pool     *pool.Pool
	rotation *pool.Engine
	guard    *resilience.Guard
	ledger   *resilience.Budget
	analyzer *analysis.Analyzer
	rounds   *rounds.Manager
	bus      *events.Bus
	store    Store
	reporter Reporter

	// now is swappable in tests.
	now func() time.Time
}

// NewOrchestrator wires the session engine.
func NewOrchestrator(cfg *config.DebateConfig, p *pool.Pool, rotation *pool.Engine,
	guard *resilience.Guard, ledger *resilience.Budget, analyzer *analysis.Analyzer,
	manager *rounds.Manager, bus *events.Bus, store Store, reporter Reporter) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		pool:     p,
		rotation: rotation,
		guard:    guard,
		ledger:   ledger,
		analyzer: analyzer,
		rounds:   manager,
		bus:      bus,
		store:    store,
		reporter: reporter,
		now:      time.Now,
	}
}

// run is the session task. It owns every write to the session until the
// terminal transition.
func (o *Orchestrator) run(s *session) {
	budgetCtx, cancelBudget := context.WithTimeout(context.Background(), s.budget)
	defer cancelBudget()
	ctx, cancel := context.WithCancel(budgetCtx)
	defer cancel()
	s.cancel = cancel

	start := o.now()
	s.mu.Lock()
	s.data.Status = models.StatusRunning
	s.data.Phase = models.PhaseInitialization
	s.data.StartedAt = &start
	s.startedAt = start
	s.mu.Unlock()

	o.persistSession(s)
	o.bus.Publish(events.EventTypeSessionStarted, s.id(), events.SessionStartedPayload{
		Topic:      s.Snapshot().Topic,
		Assignment: o.pool.AssignmentFor(s.id()),
	})
	slog.Info("Debate session started", "session_id", s.id(), "topic", s.Snapshot().Topic)

	err := o.drive(ctx, s)
	switch {
	case err == nil:
		o.finish(s, models.StatusCompleted, "")
	case errors.Is(err, errCancelled) || s.cancelled.Load():
		o.finish(s, models.StatusCancelled, "cancelled by request")
	case budgetCtx.Err() != nil:
		o.finish(s, models.StatusFailed, "budget exhausted")
	default:
		o.finish(s, models.StatusFailed, err.Error())
	}
}

// drive advances the phase machine to the judgment turn. Any error return
// is terminal for the session.
func (o *Orchestrator) drive(ctx context.Context, s *session) error {
	debaters := s.debaterRoles()

	if err := o.enterPhase(ctx, s, models.PhaseOpening); err != nil {
		return err
	}
	for _, role := range debaters {
		if err := o.takeTurn(ctx, s, role, models.PhaseOpening, 0); err != nil {
			return err
		}
	}

	truncated := false
	for round := 1; round <= s.plannedRounds(); round++ {
		phase := middlePhase(round, s.plannedRounds())
		if err := o.enterPhase(ctx, s, phase); err != nil {
			return err
		}

		speakers := debaters
		if phase == models.PhaseCrossExamination {
			speakers = crossExamOrder(debaters, lowestScorer(s.lastRoundTurns(), debaters))
		}

		firstTurn := s.nextTurnIndex()
		for _, role := range speakers {
			if err := o.takeTurn(ctx, s, role, phase, round); err != nil {
				return err
			}
		}

		decision := o.closeRound(s, round, phase, firstTurn, len(speakers))
		switch decision.Action {
		case models.ActionExtend:
			s.extendPlanned()
		case models.ActionReduce:
			s.reducePlanned(round)
		case models.ActionTerminateEarly:
			truncated = true
		}
		if truncated {
			break
		}

		// Planned rotations take effect only where the phase changes.
		if round < s.plannedRounds() && middlePhase(round+1, s.plannedRounds()) != phase {
			o.evaluateRotations(s, round)
		}
	}

	if !truncated {
		if err := o.enterPhase(ctx, s, models.PhaseClosing); err != nil {
			return err
		}
		for _, role := range debaters {
			if err := o.takeTurn(ctx, s, role, models.PhaseClosing, 0); err != nil {
				return err
			}
		}
	}

	if err := o.enterPhase(ctx, s, models.PhaseJudgment); err != nil {
		return err
	}
	if err := o.takeTurn(ctx, s, models.RoleJudge, models.PhaseJudgment, 0); err != nil {
		return err
	}

	report := o.reporter.Report(s.Snapshot())
	if truncated {
		report.Omissions = append(report.Omissions,
			"debate terminated early on declining quality; rebuttal and closing phases were skipped")
	}
	s.setReport(report)
	if err := o.store.SaveReport(context.Background(), s.id(), report); err != nil {
		slog.Error("Failed to persist final report", "session_id", s.id(), "error", err)
	}

	s.setPhase(models.PhaseCompleted)
	o.bus.Publish(events.EventTypePhaseEntered, s.id(), events.PhaseEnteredPayload{Phase: models.PhaseCompleted})
	return nil
}

// finish applies the terminal transition. Terminal writes use background
// contexts: a cancelled session must still flush its state.
func (o *Orchestrator) finish(s *session, status models.Status, reason string) {
	end := o.now()
	retries := o.ledger.Used(s.id())

	s.mu.Lock()
	s.data.Status = status
	s.data.StatusReason = reason
	s.data.EndedAt = &end
	s.data.Stats.RetryCount = retries
	if !s.startedAt.IsZero() {
		s.data.Stats.Duration = end.Sub(s.startedAt)
	}
	phase := s.data.Phase
	duration := s.data.Stats.Duration
	s.mu.Unlock()

	o.persistSession(s)
	o.bus.Publish(events.EventTypeSessionEnded, s.id(), events.SessionEndedPayload{
		Status:   status,
		Reason:   reason,
		Phase:    phase,
		Duration: duration,
	})
	o.pool.Forget(s.id())
	o.ledger.Forget(s.id())
	slog.Info("Debate session ended",
		"session_id", s.id(), "status", string(status), "reason", reason, "phase", string(phase))
}

// enterPhase transitions the session to the phase and announces it. Entering
// the current phase is a no-op, so multi-round phases emit one event.
func (o *Orchestrator) enterPhase(ctx context.Context, s *session, phase models.Phase) error {
	if err := o.checkCommands(ctx, s); err != nil {
		return err
	}
	if s.phase() == phase {
		return nil
	}
	s.setPhase(phase)
	o.persistSession(s)
	o.bus.Publish(events.EventTypePhaseEntered, s.id(), events.PhaseEnteredPayload{Phase: phase})
	return nil
}

// takeTurn produces one utterance: command check, breaker health check,
// prompt composition, guarded invoke, analysis, commit.
func (o *Orchestrator) takeTurn(ctx context.Context, s *session, role models.Role, phase models.Phase, round int) error {
	if err := o.checkCommands(ctx, s); err != nil {
		return err
	}

	model := o.pool.AssignmentFor(s.id())[role]
	if model == "" {
		return fmt.Errorf("no model bound to role %s", role)
	}

	// A breaker opened by another session's failures is visible before we
	// spend a call on it.
	if o.guard.Breakers().Unhealthy(o.guard.Scope(), model) {
		if replacement, err := o.emergencySwap(s, role); err == nil {
			model = replacement
		}
		// No healthy candidate: fall through and let the gated call fail.
	}

	snap := s.Snapshot()
	req := provider.Request{
		Model: model,
		Messages: composeMessages(promptInput{
			Topic:        snap.Topic,
			Reference:    snap.Reference,
			Role:         role,
			Phase:        phase,
			Turns:        snap.Turns,
			TokenCeiling: o.cfg.TranscriptTokenCeiling,
		}),
		MaxTokens:   turnMaxTokens,
		Temperature: turnTemperature,
	}

	start := o.now()
	comp, err := o.guard.Invoke(ctx, s.id(), req)
	if err != nil {
		if cErr := o.checkInterrupt(ctx, s); cErr != nil {
			return cErr
		}
		s.addError()
		o.pool.Observe(model, pool.Observation{Success: false})

		if errors.Is(err, resilience.ErrRetryBudgetExhausted) {
			return fmt.Errorf("session retry budget exhausted during %s: %w", phase, err)
		}
		if kind := provider.KindOf(err); !kind.Retryable() && !errors.Is(err, resilience.ErrBreakerOpen) {
			return fmt.Errorf("model %s failed with %s during %s: %w", model, kind, phase, err)
		}

		// Persistent fault on the incumbent: one role swap, one retry.
		replacement, swapErr := o.emergencySwap(s, role)
		if swapErr != nil {
			return fmt.Errorf("model %s unavailable and no healthy replacement during %s: %w", model, phase, err)
		}
		req.Model = replacement
		comp, err = o.guard.Invoke(ctx, s.id(), req)
		if err != nil {
			if cErr := o.checkInterrupt(ctx, s); cErr != nil {
				return cErr
			}
			s.addError()
			o.pool.Observe(replacement, pool.Observation{Success: false})
			return fmt.Errorf("replacement model %s also failed during %s: %w", replacement, phase, err)
		}
		model = replacement
	}

	// A cancel that landed during the call discards the result.
	if cErr := o.checkInterrupt(ctx, s); cErr != nil {
		return cErr
	}

	latency := o.now().Sub(start)
	rec := o.analyzer.Analyze(ctx, s.id(), comp.Text)

	entry, _ := o.pool.Model(model)
	cost := float64(comp.InputTokens)/1000*entry.InputCostPer1K +
		float64(comp.OutputTokens)/1000*entry.OutputCostPer1K

	turn := s.appendTurn(models.Turn{
		Round:        round,
		Role:         role,
		Model:        model,
		Phase:        phase,
		Content:      comp.Text,
		Timestamp:    o.now(),
		Latency:      latency,
		InputTokens:  comp.InputTokens,
		OutputTokens: comp.OutputTokens,
		Argument:     rec,
	})
	s.addUsage(comp.InputTokens, comp.OutputTokens, cost)
	o.pool.Observe(model, pool.Observation{
		Success:  true,
		Latency:  latency,
		Strength: rec.Strength,
		Scored:   !rec.Degraded,
		Tokens:   comp.InputTokens + comp.OutputTokens,
		Cost:     cost,
	})

	if err := o.store.SaveTurn(context.Background(), s.id(), turn); err != nil {
		slog.Error("Failed to persist turn", "session_id", s.id(), "turn", turn.Index, "error", err)
	}
	o.bus.Publish(events.EventTypeTurnCompleted, s.id(), events.TurnCompletedPayload{Turn: turn})
	return nil
}

// closeRound evaluates the finished round and commits it with the decision
// and the post-round context snapshot.
func (o *Orchestrator) closeRound(s *session, round int, phase models.Phase, firstTurn, expected int) models.RoundDecision {
	turns := s.turnsFrom(firstTurn)
	prior := s.priorRoundTurns()
	noveltyBase := prior
	if opening := s.openingTurns(); len(opening) > 0 {
		noveltyBase = append([][]models.Turn{opening}, prior...)
	}

	decision := o.rounds.Evaluate(rounds.Input{
		RoundIndex:    round,
		PlannedRounds: s.plannedRounds(),
		ExpectedTurns: expected,
		Turns:         turns,
		PriorRounds:   noveltyBase,
		History:       s.metricsHistory(),
		Elapsed:       o.now().Sub(s.startedAt),
		Budget:        s.budget,
	})

	metrics := decision.Metrics
	closed := models.Round{
		Index:     round,
		Phase:     phase,
		FirstTurn: firstTurn,
		LastTurn:  firstTurn + len(turns) - 1,
		Metrics:   &metrics,
		Decision:  &decision,
	}
	s.appendRound(closed)

	var previous []models.Turn
	if len(prior) > 0 {
		previous = prior[len(prior)-1]
	}
	s.appendSnapshot(buildSnapshot(round, turns, previous, o.now()))

	if err := o.store.SaveRound(context.Background(), s.id(), closed); err != nil {
		slog.Error("Failed to persist round", "session_id", s.id(), "round", round, "error", err)
	}
	o.bus.Publish(events.EventTypeRoundClosed, s.id(), events.RoundClosedPayload{
		Round:    closed,
		Decision: decision,
	})
	slog.Debug("Round closed",
		"session_id", s.id(), "round", round, "action", string(decision.Action),
		"composite", decision.Metrics.Composite)
	return decision
}

// evaluateRotations runs the session's strategy for every debater at a phase
// boundary and applies accepted proposals.
func (o *Orchestrator) evaluateRotations(s *session, round int) {
	strategy := s.strategy()
	if strategy == models.StrategyFixed {
		return
	}
	for _, role := range s.debaterRoles() {
		d := o.rotation.Evaluate(s.id(), role, strategy, round, s.roleStrengthTrend(role))
		if d == nil {
			continue
		}
		o.applyRotation(s, d)
	}
}

// emergencySwap rebinds the role to the best healthy model immediately. The
// mid-phase application is the one sanctioned exception to phase-boundary
// rotation; the decision carries the Emergency flag.
func (o *Orchestrator) emergencySwap(s *session, role models.Role) (string, error) {
	unhealthy := func(model string) bool {
		return o.guard.Breakers().Unhealthy(o.guard.Scope(), model)
	}
	d := o.rotation.ReplaceUnhealthy(s.id(), role, unhealthy)
	if d == nil {
		return "", errors.New("no healthy replacement model available")
	}
	o.applyRotation(s, d)
	return d.NewModel, nil
}

func (o *Orchestrator) applyRotation(s *session, d *models.RotationDecision) {
	if err := o.rotation.Apply(s.id(), d); err != nil {
		slog.Warn("Failed to apply rotation",
			"session_id", s.id(), "role", string(d.Role), "model", d.NewModel, "error", err)
		return
	}
	ev := models.RotationEvent{
		Decision:  *d,
		Phase:     s.phase(),
		AfterTurn: s.lastTurnIndex(),
		AppliedAt: o.now(),
	}
	s.recordRotation(ev)
	if err := o.store.SaveRotation(context.Background(), s.id(), ev); err != nil {
		slog.Error("Failed to persist rotation", "session_id", s.id(), "error", err)
	}
	o.bus.Publish(events.EventTypeRotationApplied, s.id(), events.RotationAppliedPayload{Rotation: ev})
	slog.Info("Rotation applied",
		"session_id", s.id(), "role", string(d.Role), "old_model", d.OldModel,
		"new_model", d.NewModel, "emergency", d.Emergency, "reason", d.Reason)
}

// checkCommands drains the mailbox between steps. Pause suspends here until
// resume or cancel; cancel wins over a concurrent pause.
func (o *Orchestrator) checkCommands(ctx context.Context, s *session) error {
	if err := o.checkInterrupt(ctx, s); err != nil {
		return err
	}
	for {
		select {
		case cmd := <-s.commands:
			switch cmd {
			case cmdCancel:
				return errCancelled
			case cmdPause:
				if err := o.waitResume(ctx, s); err != nil {
					return err
				}
			case cmdResume:
				// Stray resume with nothing paused.
			}
		default:
			return nil
		}
	}
}

// checkInterrupt reports cancellation or budget expiry without draining the
// mailbox. Used directly after a model call so a cancel discards the result.
func (o *Orchestrator) checkInterrupt(ctx context.Context, s *session) error {
	if s.cancelled.Load() {
		return errCancelled
	}
	return ctx.Err()
}

// waitResume parks the session task while paused. The session budget keeps
// running; a budget expiry while paused fails the session.
func (o *Orchestrator) waitResume(ctx context.Context, s *session) error {
	s.setStatus(models.StatusPaused, "")
	o.persistSession(s)
	slog.Info("Session paused", "session_id", s.id(), "phase", string(s.phase()))

	for {
		select {
		case <-ctx.Done():
			if s.cancelled.Load() {
				return errCancelled
			}
			return ctx.Err()
		case cmd := <-s.commands:
			switch cmd {
			case cmdCancel:
				return errCancelled
			case cmdResume:
				s.setStatus(models.StatusRunning, "")
				o.persistSession(s)
				slog.Info("Session resumed", "session_id", s.id(), "phase", string(s.phase()))
				return nil
			case cmdPause:
				// Already paused.
			}
		}
	}
}

func (o *Orchestrator) persistSession(s *session) {
	if err := o.store.SaveSession(context.Background(), s.Snapshot()); err != nil {
		slog.Error("Failed to persist session", "session_id", s.id(), "error", err)
	}
}
