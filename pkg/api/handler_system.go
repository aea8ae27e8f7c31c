package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// health handles GET /healthz. When a database client is configured its
// pool statistics are included and a ping failure degrades the status.
func (s *Server) health(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := s.db.Health(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}

// getBreakers handles GET /api/v1/system/breakers.
func (s *Server) getBreakers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"breakers": s.breakers.Snapshot()})
}

// getModels handles GET /api/v1/system/models.
func (s *Server) getModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"models": s.pool.Summaries()})
}
