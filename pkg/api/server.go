// Package api exposes the debate session lifecycle over HTTP with gin,
// plus SSE event streaming and system introspection endpoints.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agora-labs/agora/pkg/database"
	"github.com/agora-labs/agora/pkg/debate"
	"github.com/agora-labs/agora/pkg/metrics"
	"github.com/agora-labs/agora/pkg/pool"
	"github.com/agora-labs/agora/pkg/resilience"
	"github.com/agora-labs/agora/pkg/services"
)

// Deps carries the server's collaborators. Debate, Breakers, and Pool are
// required; the rest are optional and gate their endpoints when nil.
type Deps struct {
	Debate   *debate.Service
	Breakers *resilience.BreakerTable
	Pool     *pool.Pool
	DB       *database.Client
	History  *services.EventService
	Metrics  *metrics.Collector
}

// Server is the HTTP transport over the debate service.
type Server struct {
	svc      *debate.Service
	breakers *resilience.BreakerTable
	pool     *pool.Pool
	db       *database.Client
	history  *services.EventService
	metrics  *metrics.Collector
}

// NewServer creates the API server.
func NewServer(deps Deps) *Server {
	return &Server{
		svc:      deps.Debate,
		breakers: deps.Breakers,
		pool:     deps.Pool,
		db:       deps.DB,
		history:  deps.History,
		metrics:  deps.Metrics,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(), gin.Recovery())

	r.GET("/healthz", s.health)
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	v1 := r.Group("/api/v1")

	sessions := v1.Group("/sessions")
	sessions.POST("", s.createSession)
	sessions.GET("", s.listSessions)
	sessions.GET("/:id", s.getSession)
	sessions.DELETE("/:id", s.deleteSession)
	sessions.POST("/:id/start", s.startSession)
	sessions.POST("/:id/pause", s.pauseSession)
	sessions.POST("/:id/resume", s.resumeSession)
	sessions.POST("/:id/cancel", s.cancelSession)
	sessions.GET("/:id/transcript", s.getTranscript)
	sessions.GET("/:id/analytics", s.getAnalytics)
	sessions.PUT("/:id/strategy", s.setStrategy)
	sessions.GET("/:id/events", s.listEvents)
	sessions.GET("/:id/events/stream", s.streamEvents)

	system := v1.Group("/system")
	system.GET("/breakers", s.getBreakers)
	system.GET("/models", s.getModels)

	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most grace.
func (s *Server) Run(ctx context.Context, addr string, grace time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("API server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	slog.Info("API server shutting down")
	return srv.Shutdown(shutdownCtx)
}
