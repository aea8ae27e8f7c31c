package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agora-labs/agora/ent"
	"github.com/agora-labs/agora/ent/analyticsartifact"
	"github.com/agora-labs/agora/ent/debateround"
	"github.com/agora-labs/agora/ent/debatesession"
	"github.com/agora-labs/agora/ent/debateturn"
	"github.com/agora-labs/agora/ent/rotationrecord"
	"github.com/agora-labs/agora/pkg/debate"
	"github.com/agora-labs/agora/pkg/models"
)

// writeTimeout bounds critical writes. They run on background contexts so a
// cancelled request or session still flushes its state.
const writeTimeout = 10 * time.Second

// SessionService persists debate sessions and their children. It implements
// the orchestrator's Store contract; reads serve the HTTP API.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService.
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

var _ debate.Store = (*SessionService)(nil)

// SaveSession upserts the session header row. Child rows (turns, rounds,
// rotations, report) are written by their own Save methods as they happen.
func (s *SessionService) SaveSession(httpCtx context.Context, snap *models.Session) error {
	if snap.ID == "" {
		return NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	exists, err := s.client.DebateSession.Query().
		Where(debatesession.IDEQ(snap.ID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check session existence: %w", err)
	}

	assignment := make(map[string]string, len(snap.Assignment))
	for role, model := range snap.Assignment {
		assignment[string(role)] = model
	}

	if !exists {
		builder := s.client.DebateSession.Create().
			SetID(snap.ID).
			SetTopic(snap.Topic).
			SetStatus(debatesession.Status(snap.Status)).
			SetPhase(string(snap.Phase)).
			SetDebaters(snap.Debaters).
			SetRotationStrategy(string(snap.Strategy)).
			SetAssignment(assignment).
			SetCreatedAt(snap.CreatedAt)
		if snap.Reference != "" {
			builder.SetReference(snap.Reference)
		}
		if _, err := builder.Save(ctx); err != nil {
			if ent.IsConstraintError(err) {
				return ErrAlreadyExists
			}
			return fmt.Errorf("failed to create session: %w", err)
		}
		return nil
	}

	update := s.client.DebateSession.UpdateOneID(snap.ID).
		SetStatus(debatesession.Status(snap.Status)).
		SetPhase(string(snap.Phase)).
		SetRotationStrategy(string(snap.Strategy)).
		SetAssignment(assignment).
		SetInputTokens(snap.Stats.InputTokens).
		SetOutputTokens(snap.Stats.OutputTokens).
		SetCostEstimate(snap.Stats.CostEstimate).
		SetErrorCount(snap.Stats.ErrorCount).
		SetRetryCount(snap.Stats.RetryCount).
		SetDurationMs(snap.Stats.Duration.Milliseconds())
	if snap.StatusReason != "" {
		update.SetStatusReason(snap.StatusReason)
	}
	if snap.StartedAt != nil {
		update.SetStartedAt(*snap.StartedAt)
	}
	if snap.EndedAt != nil {
		update.SetEndedAt(*snap.EndedAt)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	return nil
}

// SaveTurn persists one committed turn. Turns are immutable; re-saving an
// already persisted index is a no-op so at-least-once delivery is safe.
func (s *SessionService) SaveTurn(httpCtx context.Context, sessionID string, t models.Turn) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	argument, err := toJSONMap(t.Argument)
	if err != nil {
		return fmt.Errorf("failed to encode argument record: %w", err)
	}

	builder := s.client.DebateTurn.Create().
		SetID(uuid.NewString()).
		SetSessionID(sessionID).
		SetTurnIndex(t.Index).
		SetRound(t.Round).
		SetRole(string(t.Role)).
		SetModel(t.Model).
		SetPhase(string(t.Phase)).
		SetContent(t.Content).
		SetLatencyMs(t.Latency.Milliseconds()).
		SetInputTokens(t.InputTokens).
		SetOutputTokens(t.OutputTokens).
		SetCreatedAt(t.Timestamp)
	if argument != nil {
		builder.SetArgument(argument)
	}
	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("failed to create turn: %w", err)
	}
	return nil
}

// SaveRound persists one closed round with its metrics and decision.
func (s *SessionService) SaveRound(httpCtx context.Context, sessionID string, r models.Round) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	metrics, err := toJSONMap(r.Metrics)
	if err != nil {
		return fmt.Errorf("failed to encode round metrics: %w", err)
	}
	decision, err := toJSONMap(r.Decision)
	if err != nil {
		return fmt.Errorf("failed to encode round decision: %w", err)
	}

	builder := s.client.DebateRound.Create().
		SetID(uuid.NewString()).
		SetSessionID(sessionID).
		SetRoundIndex(r.Index).
		SetPhase(string(r.Phase)).
		SetFirstTurn(r.FirstTurn).
		SetLastTurn(r.LastTurn)
	if metrics != nil {
		builder.SetMetrics(metrics)
	}
	if decision != nil {
		builder.SetDecision(decision)
	}
	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("failed to create round: %w", err)
	}
	return nil
}

// SaveRotation persists an applied rotation.
func (s *SessionService) SaveRotation(httpCtx context.Context, sessionID string, ev models.RotationEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	_, err := s.client.RotationRecord.Create().
		SetID(uuid.NewString()).
		SetSessionID(sessionID).
		SetRole(string(ev.Decision.Role)).
		SetOldModel(ev.Decision.OldModel).
		SetNewModel(ev.Decision.NewModel).
		SetReason(ev.Decision.Reason).
		SetConfidence(ev.Decision.Confidence).
		SetExpectedImprovement(ev.Decision.ExpectedImprovement).
		SetEmergency(ev.Decision.Emergency).
		SetPhase(string(ev.Phase)).
		SetAfterTurn(ev.AfterTurn).
		SetAppliedAt(ev.AppliedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create rotation record: %w", err)
	}
	return nil
}

// SaveReport persists the final analytical artifact, replacing any earlier
// copy for the session.
func (s *SessionService) SaveReport(httpCtx context.Context, sessionID string, report *models.FinalReport) error {
	if report == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	encoded, err := toJSONMap(report)
	if err != nil {
		return fmt.Errorf("failed to encode final report: %w", err)
	}

	n, err := s.client.AnalyticsArtifact.Update().
		Where(analyticsartifact.SessionIDEQ(sessionID)).
		SetReport(encoded).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update report: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = s.client.AnalyticsArtifact.Create().
		SetID(uuid.NewString()).
		SetSessionID(sessionID).
		SetReport(encoded).
		SetCreatedAt(report.CreatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// GetSession rehydrates a full session snapshot from its rows.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	row, err := s.client.DebateSession.Query().
		Where(
			debatesession.IDEQ(sessionID),
			debatesession.DeletedAtIsNil(),
		).
		WithTurns(func(q *ent.DebateTurnQuery) {
			q.Order(ent.Asc(debateturn.FieldTurnIndex))
		}).
		WithRounds(func(q *ent.DebateRoundQuery) {
			q.Order(ent.Asc(debateround.FieldRoundIndex))
		}).
		WithRotations(func(q *ent.RotationRecordQuery) {
			q.Order(ent.Asc(rotationrecord.FieldAppliedAt))
		}).
		WithReport().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return rehydrateSession(row)
}

// ListSessions returns session headers (no child rows), newest first.
func (s *SessionService) ListSessions(ctx context.Context, status models.Status, limit, offset int) ([]*models.Session, error) {
	query := s.client.DebateSession.Query().
		Where(debatesession.DeletedAtIsNil())
	if status != "" {
		query = query.Where(debatesession.StatusEQ(debatesession.Status(status)))
	}
	query = query.Order(ent.Desc(debatesession.FieldCreatedAt))
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	out := make([]*models.Session, 0, len(rows))
	for _, row := range rows {
		snap, err := rehydrateSession(row)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}

// SoftDeleteSession marks a session deleted without removing its rows.
func (s *SessionService) SoftDeleteSession(httpCtx context.Context, sessionID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	n, err := s.client.DebateSession.Update().
		Where(
			debatesession.IDEQ(sessionID),
			debatesession.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to soft delete session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// PurgeEndedBefore hard-deletes terminal sessions that ended before the
// cutoff. Child rows go with them via cascade.
func (s *SessionService) PurgeEndedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.client.DebateSession.Delete().
		Where(
			debatesession.StatusIn(
				debatesession.StatusCompleted,
				debatesession.StatusFailed,
				debatesession.StatusCancelled,
			),
			debatesession.EndedAtLT(cutoff),
		).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge ended sessions: %w", err)
	}
	return n, nil
}

// rehydrateSession converts a row (with whatever edges are loaded) back into
// the in-memory snapshot shape.
func rehydrateSession(row *ent.DebateSession) (*models.Session, error) {
	snap := &models.Session{
		ID:       row.ID,
		Topic:    row.Topic,
		Status:   models.Status(row.Status),
		Phase:    models.Phase(row.Phase),
		Debaters: row.Debaters,
		Strategy: models.RotationStrategy(row.RotationStrategy),
		Stats: models.SessionStats{
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			CostEstimate: row.CostEstimate,
			ErrorCount:   row.ErrorCount,
			RetryCount:   row.RetryCount,
			Duration:     time.Duration(row.DurationMs) * time.Millisecond,
		},
		CreatedAt: row.CreatedAt,
		StartedAt: row.StartedAt,
		EndedAt:   row.EndedAt,
	}
	if row.Reference != nil {
		snap.Reference = *row.Reference
	}
	if row.StatusReason != nil {
		snap.StatusReason = *row.StatusReason
	}
	snap.Assignment = make(map[models.Role]string, len(row.Assignment))
	for role, model := range row.Assignment {
		snap.Assignment[models.Role(role)] = model
	}

	for _, t := range row.Edges.Turns {
		turn := models.Turn{
			Index:        t.TurnIndex,
			Round:        t.Round,
			Role:         models.Role(t.Role),
			Model:        t.Model,
			Phase:        models.Phase(t.Phase),
			Content:      t.Content,
			Timestamp:    t.CreatedAt,
			Latency:      time.Duration(t.LatencyMs) * time.Millisecond,
			InputTokens:  t.InputTokens,
			OutputTokens: t.OutputTokens,
		}
		if len(t.Argument) > 0 {
			var rec models.ArgumentRecord
			if err := fromJSONMap(t.Argument, &rec); err != nil {
				return nil, fmt.Errorf("failed to decode argument record: %w", err)
			}
			turn.Argument = &rec
		}
		snap.Turns = append(snap.Turns, turn)
	}

	for _, r := range row.Edges.Rounds {
		round := models.Round{
			Index:     r.RoundIndex,
			Phase:     models.Phase(r.Phase),
			FirstTurn: r.FirstTurn,
			LastTurn:  r.LastTurn,
		}
		if len(r.Metrics) > 0 {
			var m models.RoundMetrics
			if err := fromJSONMap(r.Metrics, &m); err != nil {
				return nil, fmt.Errorf("failed to decode round metrics: %w", err)
			}
			round.Metrics = &m
		}
		if len(r.Decision) > 0 {
			var d models.RoundDecision
			if err := fromJSONMap(r.Decision, &d); err != nil {
				return nil, fmt.Errorf("failed to decode round decision: %w", err)
			}
			round.Decision = &d
		}
		snap.Rounds = append(snap.Rounds, round)
	}

	for _, rot := range row.Edges.Rotations {
		snap.Rotations = append(snap.Rotations, models.RotationEvent{
			Decision: models.RotationDecision{
				Role:                models.Role(rot.Role),
				OldModel:            rot.OldModel,
				NewModel:            rot.NewModel,
				Reason:              rot.Reason,
				Confidence:          rot.Confidence,
				ExpectedImprovement: rot.ExpectedImprovement,
				Emergency:           rot.Emergency,
			},
			Phase:     models.Phase(rot.Phase),
			AfterTurn: rot.AfterTurn,
			AppliedAt: rot.AppliedAt,
		})
	}

	if artifact := row.Edges.Report; artifact != nil {
		var report models.FinalReport
		if err := fromJSONMap(artifact.Report, &report); err != nil {
			return nil, fmt.Errorf("failed to decode final report: %w", err)
		}
		snap.Report = &report
	}
	return snap, nil
}

// toJSONMap converts a struct (or pointer) into the generic map shape the
// JSON columns store. Nil pointers yield nil.
func toJSONMap(v any) (map[string]interface{}, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(data) == "null" {
		return nil, nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// fromJSONMap is the inverse of toJSONMap.
func fromJSONMap(m map[string]interface{}, dst any) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}
