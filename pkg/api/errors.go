package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agora-labs/agora/pkg/debate"
	"github.com/agora-labs/agora/pkg/services"
)

// mapServiceError translates service-layer errors to HTTP responses.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
	case errors.Is(err, debate.ErrInvalidConfig):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, debate.ErrNotFound), errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, debate.ErrAlreadyStarted):
		c.JSON(http.StatusConflict, gin.H{"error": "session already started"})
	case errors.Is(err, debate.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, debate.ErrNotReady):
		c.JSON(http.StatusConflict, gin.H{"error": "analytics not ready"})
	default:
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
