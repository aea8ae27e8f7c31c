package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agora-labs/agora/pkg/debate"
	"github.com/agora-labs/agora/pkg/models"
)

// createSession handles POST /api/v1/sessions.
func (s *Server) createSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := s.svc.Create(c.Request.Context(), debate.CreateRequest{
		Topic:     req.Topic,
		Reference: req.Reference,
		Debaters:  req.Debaters,
		Strategy:  models.RotationStrategy(req.Strategy),
		MaxRounds: req.MaxRounds,
		Budget:    time.Duration(req.BudgetSeconds) * time.Second,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sess)
}

// startSession handles POST /api/v1/sessions/:id/start.
func (s *Server) startSession(c *gin.Context) {
	if err := s.svc.Start(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "started"})
}

// pauseSession handles POST /api/v1/sessions/:id/pause.
func (s *Server) pauseSession(c *gin.Context) {
	if err := s.svc.Pause(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "pause requested"})
}

// resumeSession handles POST /api/v1/sessions/:id/resume.
func (s *Server) resumeSession(c *gin.Context) {
	if err := s.svc.Resume(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "resume requested"})
}

// cancelSession handles POST /api/v1/sessions/:id/cancel.
func (s *Server) cancelSession(c *gin.Context) {
	if err := s.svc.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "cancellation requested"})
}

// getSession handles GET /api/v1/sessions/:id.
func (s *Server) getSession(c *gin.Context) {
	sess, err := s.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// listSessions handles GET /api/v1/sessions.
func (s *Server) listSessions(c *gin.Context) {
	filter := debate.ListFilter{}

	if v := c.Query("status"); v != "" {
		switch models.Status(v) {
		case models.StatusPending, models.StatusRunning, models.StatusPaused,
			models.StatusCompleted, models.StatusFailed, models.StatusCancelled:
			filter.Status = models.Status(v)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + v})
			return
		}
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		filter.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
			return
		}
		filter.Offset = n
	}

	sessions, err := s.svc.List(c.Request.Context(), filter)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions, "count": len(sessions)})
}

// deleteSession handles DELETE /api/v1/sessions/:id.
func (s *Server) deleteSession(c *gin.Context) {
	if err := s.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// getTranscript handles GET /api/v1/sessions/:id/transcript.
func (s *Server) getTranscript(c *gin.Context) {
	from := 0
	if v := c.Query("from"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from"})
			return
		}
		from = n
	}

	turns, err := s.svc.Transcript(c.Request.Context(), c.Param("id"), from)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"turns": turns, "count": len(turns)})
}

// getAnalytics handles GET /api/v1/sessions/:id/analytics. The optional
// "kind" query selects one report section (chains, consensus, judgment);
// absent, the full report is returned.
func (s *Server) getAnalytics(c *gin.Context) {
	kind := debate.AnalysisKind(c.Query("kind"))
	result, err := s.svc.Analytics(c.Request.Context(), c.Param("id"), kind)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// setStrategy handles PUT /api/v1/sessions/:id/strategy.
func (s *Server) setStrategy(c *gin.Context) {
	var req StrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.svc.SetRotationStrategy(c.Request.Context(), c.Param("id"),
		models.RotationStrategy(req.Strategy)); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"strategy": req.Strategy})
}
