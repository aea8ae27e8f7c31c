// Package cleanup enforces data retention: terminal sessions past their
// retention age are purged together with their child rows, and orphaned
// event rows past the TTL are removed.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/agora-labs/agora/pkg/config"
)

// SessionPurger deletes terminal sessions that ended before the cutoff.
type SessionPurger interface {
	PurgeEndedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// EventCleaner removes durable event rows older than the TTL whose session
// is gone.
type EventCleaner interface {
	CleanupOrphanedEvents(ctx context.Context, ttl time.Duration) (int, error)
}

// Service periodically enforces retention policies. All operations are
// idempotent and safe to run from multiple replicas.
type Service struct {
	config   *config.RetentionConfig
	sessions SessionPurger
	events   EventCleaner

	now    func() time.Time
	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, sessions SessionPurger, events EventCleaner) *Service {
	return &Service{
		config:   cfg,
		sessions: sessions,
		events:   events,
		now:      time.Now,
	}
}

// Start launches the background sweep loop. Disabled retention makes Start
// a no-op.
func (s *Service) Start(ctx context.Context) {
	if !s.config.Enabled {
		slog.Info("Retention disabled; cleanup service not started")
		return
	}
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"max_age", s.config.MaxAge,
		"sweep_interval", s.config.SweepInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep runs one retention pass. Failures are logged and retried on the
// next tick.
func (s *Service) sweep(ctx context.Context) {
	cutoff := s.now().Add(-s.config.MaxAge)

	count, err := s.sessions.PurgeEndedBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: session purge failed", "error", err)
	} else if count > 0 {
		slog.Info("Retention: purged ended sessions", "count", count, "cutoff", cutoff)
	}

	count, err = s.events.CleanupOrphanedEvents(ctx, s.config.MaxAge)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
	} else if count > 0 {
		slog.Info("Retention: removed orphaned events", "count", count)
	}
}
