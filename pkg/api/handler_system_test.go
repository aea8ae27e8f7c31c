package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-labs/agora/pkg/metrics"
	"github.com/agora-labs/agora/pkg/pool"
	"github.com/agora-labs/agora/pkg/resilience"
)

func TestHealthEndpointWithoutDatabase(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestSystemModelsEndpoint(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodGet, "/api/v1/system/models", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Models []pool.Summary `json:"models"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Models, 3)
	assert.Equal(t, "alpha/one", body.Models[0].Model)
	assert.Equal(t, "standard", body.Models[0].Tier)
}

func TestSystemBreakersEndpoint(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodGet, "/api/v1/system/breakers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Breakers []resilience.BreakerStatus `json:"breakers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Breakers)
}

func TestMetricsEndpointRegisteredWhenConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newAPIHarness(t)

	srv := NewServer(Deps{
		Debate:   h.svc,
		Breakers: h.tbl,
		Pool:     h.pool,
		Metrics:  metrics.NewCollector(),
	})
	router := srv.Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// Without a collector the route does not exist.
	w = httptest.NewRecorder()
	h.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
