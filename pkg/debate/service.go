package debate

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agora-labs/agora/pkg/config"
	"github.com/agora-labs/agora/pkg/events"
	"github.com/agora-labs/agora/pkg/models"
	"github.com/agora-labs/agora/pkg/pool"
	"github.com/agora-labs/agora/pkg/resilience"
)

// CreateRequest is the input to Create. Zero values fall back to the
// configured defaults.
type CreateRequest struct {
	Topic     string                  `json:"topic"`
	Reference string                  `json:"reference,omitempty"`
	Debaters  int                     `json:"debaters,omitempty"`
	Strategy  models.RotationStrategy `json:"rotation_strategy,omitempty"`
	MaxRounds int                     `json:"max_rounds,omitempty"`
	Budget    time.Duration           `json:"budget,omitempty"`
}

// AnalysisKind selects one section of the final report.
type AnalysisKind string

const (
	AnalysisChains    AnalysisKind = "chains"
	AnalysisConsensus AnalysisKind = "consensus"
	AnalysisJudgment  AnalysisKind = "judgment"
	AnalysisReport    AnalysisKind = "report"
)

// ListFilter narrows List results.
type ListFilter struct {
	Status models.Status
	Limit  int
	Offset int
}

// Service is the programmatic session lifecycle API. All methods are safe
// for concurrent use; mutations are forwarded to the session task.
type Service struct {
	cfg    *config.DebateConfig
	retry  *config.RetryConfig
	orch   *Orchestrator
	pool   *pool.Pool
	ledger *resilience.Budget
	bus    *events.Bus
	store  Store

	mu       sync.Mutex
	sessions map[string]*session
}

// NewService assembles the lifecycle API around an orchestrator.
func NewService(cfg *config.DebateConfig, retry *config.RetryConfig, orch *Orchestrator,
	p *pool.Pool, ledger *resilience.Budget, bus *events.Bus, store Store) *Service {
	return &Service{
		cfg:      cfg,
		retry:    retry,
		orch:     orch,
		pool:     p,
		ledger:   ledger,
		bus:      bus,
		store:    store,
		sessions: make(map[string]*session),
	}
}

// Bus exposes the observer hub for subscribe/replay transports.
func (s *Service) Bus() *events.Bus { return s.bus }

// Create validates the request, binds roles to models, and registers the
// session in pending state. Nothing runs until Start.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*models.Session, error) {
	if req.Topic == "" {
		return nil, fmt.Errorf("%w: topic is required", ErrInvalidConfig)
	}
	if req.Debaters == 0 {
		req.Debaters = s.cfg.Debaters
	}
	if req.Debaters < 2 {
		return nil, fmt.Errorf("%w: at least two debaters required, got %d", ErrInvalidConfig, req.Debaters)
	}
	if req.Strategy == "" {
		req.Strategy = models.RotationStrategy(s.cfg.RotationStrategy)
	}
	if !models.ValidStrategy(req.Strategy) {
		return nil, fmt.Errorf("%w: unknown rotation strategy %q", ErrInvalidConfig, req.Strategy)
	}
	if req.MaxRounds == 0 {
		req.MaxRounds = s.cfg.MaxRounds
	}
	if req.MaxRounds < 1 || req.MaxRounds > s.cfg.MaxRounds {
		return nil, fmt.Errorf("%w: max_rounds must be in [1, %d], got %d",
			ErrInvalidConfig, s.cfg.MaxRounds, req.MaxRounds)
	}
	if req.Budget == 0 {
		req.Budget = s.cfg.SessionBudget
	}
	if req.Budget < 0 {
		return nil, fmt.Errorf("%w: budget must be positive", ErrInvalidConfig)
	}

	id := uuid.NewString()
	roles := append(models.DebaterRoles(req.Debaters), models.RoleJudge)
	assignment, err := s.pool.InitAssignment(id, roles)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	s.ledger.Register(id, s.retry.SessionRetryBudget)

	planned := s.cfg.MinRounds
	if planned > req.MaxRounds {
		planned = req.MaxRounds
	}
	sess := newSession(models.Session{
		ID:         id,
		Topic:      req.Topic,
		Reference:  req.Reference,
		Status:     models.StatusPending,
		Phase:      models.PhaseInitialization,
		Debaters:   req.Debaters,
		Strategy:   req.Strategy,
		Assignment: assignment,
		CreatedAt:  s.orch.now(),
	}, planned, req.MaxRounds, req.Budget)

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	if err := s.store.SaveSession(ctx, sess.Snapshot()); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return sess.Snapshot(), nil
}

// Start launches the session task. Accepted asynchronously; progress flows
// through the observer bus.
func (s *Service) Start(ctx context.Context, id string) error {
	sess, err := s.lookup(id)
	if err != nil {
		return err
	}
	if !sess.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	go s.orch.run(sess)
	return nil
}

// Pause asks the session task to suspend after the in-flight turn.
func (s *Service) Pause(ctx context.Context, id string) error {
	sess, err := s.lookup(id)
	if err != nil {
		return err
	}
	if st := sess.status(); st.Terminal() || st == models.StatusPending {
		return fmt.Errorf("%w: cannot pause a %s session", ErrInvalidState, st)
	}
	sess.enqueue(cmdPause)
	return nil
}

// Resume continues a paused session in the same phase.
func (s *Service) Resume(ctx context.Context, id string) error {
	sess, err := s.lookup(id)
	if err != nil {
		return err
	}
	if st := sess.status(); st.Terminal() || st == models.StatusPending {
		return fmt.Errorf("%w: cannot resume a %s session", ErrInvalidState, st)
	}
	sess.enqueue(cmdResume)
	return nil
}

// Cancel terminates the session immediately. An in-flight model call is
// abandoned and its result discarded. Cancelling a terminal session is a
// no-op; cancelling a pending session finalises it without running.
func (s *Service) Cancel(ctx context.Context, id string) error {
	sess, err := s.lookup(id)
	if err != nil {
		return err
	}
	if sess.status().Terminal() {
		return nil
	}

	sess.cancelled.Store(true)
	if sess.started.CompareAndSwap(false, true) {
		// Never ran: finalise inline.
		s.orch.finish(sess, models.StatusCancelled, "cancelled before start")
		return nil
	}
	sess.enqueue(cmdCancel)
	sess.mu.Lock()
	cancel := sess.cancel
	sess.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	return nil
}

// Get returns a full point-in-time snapshot of the session.
func (s *Service) Get(ctx context.Context, id string) (*models.Session, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return sess.Snapshot(), nil
}

// Transcript returns the ordered turns, skipping the first from turns.
func (s *Service) Transcript(ctx context.Context, id string, from int) ([]models.Turn, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	turns := sess.Snapshot().Turns
	if from < 0 {
		from = 0
	}
	if from >= len(turns) {
		return []models.Turn{}, nil
	}
	return turns[from:], nil
}

// Analytics returns one section of the final report, or ErrNotReady while
// the session has not produced it.
func (s *Service) Analytics(ctx context.Context, id string, kind AnalysisKind) (any, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	report := sess.report()
	if report == nil {
		return nil, ErrNotReady
	}
	switch kind {
	case AnalysisChains:
		return report.Chains, nil
	case AnalysisConsensus:
		return report.Consensus, nil
	case AnalysisJudgment:
		return report.Judgment, nil
	case AnalysisReport, "":
		return report, nil
	default:
		return nil, fmt.Errorf("%w: unknown analysis kind %q", ErrInvalidConfig, kind)
	}
}

// SetRotationStrategy changes the strategy for subsequent phase boundaries.
func (s *Service) SetRotationStrategy(ctx context.Context, id string, strategy models.RotationStrategy) error {
	sess, err := s.lookup(id)
	if err != nil {
		return err
	}
	if !models.ValidStrategy(strategy) {
		return fmt.Errorf("%w: unknown rotation strategy %q", ErrInvalidConfig, strategy)
	}
	sess.setStrategy(strategy)
	return nil
}

// List returns session snapshots, newest first, optionally filtered by
// status and paginated.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*models.Session, error) {
	s.mu.Lock()
	all := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		all = append(all, sess)
	}
	s.mu.Unlock()

	snaps := make([]*models.Session, 0, len(all))
	for _, sess := range all {
		snap := sess.Snapshot()
		if filter.Status != "" && snap.Status != filter.Status {
			continue
		}
		snaps = append(snaps, snap)
	}
	sort.Slice(snaps, func(i, j int) bool {
		if !snaps[i].CreatedAt.Equal(snaps[j].CreatedAt) {
			return snaps[i].CreatedAt.After(snaps[j].CreatedAt)
		}
		return snaps[i].ID < snaps[j].ID
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(snaps) {
			return []*models.Session{}, nil
		}
		snaps = snaps[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(snaps) {
		snaps = snaps[:filter.Limit]
	}
	return snaps, nil
}

// Delete removes a terminal session from the registry. Running sessions
// must be cancelled first.
func (s *Service) Delete(ctx context.Context, id string) error {
	sess, err := s.lookup(id)
	if err != nil {
		return err
	}
	if !sess.status().Terminal() {
		return fmt.Errorf("%w: session must be terminal before deletion", ErrInvalidState)
	}
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	s.bus.Forget(id)
	return nil
}

func (s *Service) lookup(id string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return sess, nil
}
