package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-labs/agora/pkg/analysis"
	"github.com/agora-labs/agora/pkg/analytics"
	"github.com/agora-labs/agora/pkg/config"
	"github.com/agora-labs/agora/pkg/debate"
	"github.com/agora-labs/agora/pkg/events"
	"github.com/agora-labs/agora/pkg/models"
	"github.com/agora-labs/agora/pkg/pool"
	"github.com/agora-labs/agora/pkg/provider"
	"github.com/agora-labs/agora/pkg/resilience"
	"github.com/agora-labs/agora/pkg/rounds"
)

// stubProvider answers every call with the same short argument after an
// optional delay. Identical content drives sessions to an early but clean
// completion, which keeps transport tests fast.
type stubProvider struct {
	mu    sync.Mutex
	calls int
	delay time.Duration
}

func (p *stubProvider) Invoke(ctx context.Context, req provider.Request) (*provider.Completion, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, provider.NewCallError(provider.KindTimeout, req.Model, ctx.Err())
		}
	}
	return &provider.Completion{
		Text:         "We disagree on this entirely and nothing more needs saying.",
		InputTokens:  120,
		OutputTokens: 60,
		FinishReason: "stop",
	}, nil
}

type apiHarness struct {
	router *gin.Engine
	svc    *debate.Service
	prov   *stubProvider
	tbl    *resilience.BreakerTable
	pool   *pool.Pool
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Debate.TurnDeadline = 2 * time.Second
	cfg.Debate.SessionBudget = 30 * time.Second
	cfg.Retry.MaxAttempts = 3
	cfg.Retry.BaseDelay = time.Millisecond
	cfg.Retry.CapDelay = 4 * time.Millisecond
	cfg.Pool.Models = []config.ModelConfig{
		{ID: "alpha/one", Tier: "standard"},
		{ID: "beta/two", Tier: "standard"},
		{ID: "gamma/three", Tier: "standard"},
	}
	return cfg
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	prov := &stubProvider{}
	tbl := resilience.NewBreakerTable(cfg.Breaker)
	ledger := resilience.NewBudget()
	guard := resilience.NewGuard("debate", prov, tbl, ledger, cfg.Retry, cfg.Debate.TurnDeadline, nil)
	p := pool.New(cfg.Pool)
	engine := pool.NewEngine(p, cfg.Pool)
	bus := events.NewBus()
	orch := debate.NewOrchestrator(cfg.Debate, p, engine, guard, ledger,
		analysis.New(cfg.Analysis, nil), rounds.New(cfg.Rounds, cfg.Debate),
		bus, debate.NopStore{}, analytics.New())
	svc := debate.NewService(cfg.Debate, cfg.Retry, orch, p, ledger, bus, debate.NopStore{})

	srv := NewServer(Deps{Debate: svc, Breakers: tbl, Pool: p})
	return &apiHarness{router: srv.Router(), svc: svc, prov: prov, tbl: tbl, pool: p}
}

func (h *apiHarness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func (h *apiHarness) createSession(t *testing.T, body any) models.Session {
	t.Helper()
	w := h.do(t, http.MethodPost, "/api/v1/sessions", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var sess models.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))
	return sess
}

func (h *apiHarness) waitStatus(t *testing.T, id string, want models.Status) models.Session {
	t.Helper()
	var sess models.Session
	require.Eventually(t, func() bool {
		w := h.do(t, http.MethodGet, "/api/v1/sessions/"+id, nil)
		if w.Code != http.StatusOK {
			return false
		}
		if err := json.Unmarshal(w.Body.Bytes(), &sess); err != nil {
			return false
		}
		return sess.Status == want
	}, 10*time.Second, 5*time.Millisecond)
	return sess
}

func TestCreateSessionEndpoint(t *testing.T) {
	h := newAPIHarness(t)

	sess := h.createSession(t, gin.H{"topic": "Ban autonomous weapons"})
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, models.StatusPending, sess.Status)
	assert.Equal(t, models.PhaseInitialization, sess.Phase)
	assert.Equal(t, 2, sess.Debaters)
	assert.Len(t, sess.Assignment, 3)

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing topic", gin.H{"reference": "dossier"}},
		{"unknown strategy", gin.H{"topic": "t", "rotation_strategy": "chaotic"}},
		{"single debater", gin.H{"topic": "t", "debaters": 1}},
		{"excessive rounds", gin.H{"topic": "t", "max_rounds": 99}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := h.do(t, http.MethodPost, "/api/v1/sessions", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestSessionNotFound(t *testing.T) {
	h := newAPIHarness(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/sessions/nope"},
		{http.MethodPost, "/api/v1/sessions/nope/start"},
		{http.MethodPost, "/api/v1/sessions/nope/cancel"},
		{http.MethodGet, "/api/v1/sessions/nope/transcript"},
		{http.MethodGet, "/api/v1/sessions/nope/analytics"},
		{http.MethodDelete, "/api/v1/sessions/nope"},
	}
	for _, p := range paths {
		w := h.do(t, p.method, p.path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", p.method, p.path)
	}
}

func TestLifecycleOverHTTP(t *testing.T) {
	h := newAPIHarness(t)
	sess := h.createSession(t, gin.H{"topic": "Adopt a four-day work week"})
	id := sess.ID

	// Analytics are not available before the session runs.
	w := h.do(t, http.MethodGet, "/api/v1/sessions/"+id+"/analytics", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Deleting a non-terminal session is rejected.
	w = h.do(t, http.MethodDelete, "/api/v1/sessions/"+id, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = h.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/start", nil)
	require.Equal(t, http.StatusAccepted, w.Code)

	w = h.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/start", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	final := h.waitStatus(t, id, models.StatusCompleted)
	assert.NotEmpty(t, final.Turns)

	w = h.do(t, http.MethodGet, "/api/v1/sessions/"+id+"/transcript", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var transcript struct {
		Turns []models.Turn `json:"turns"`
		Count int           `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &transcript))
	assert.Equal(t, len(final.Turns), transcript.Count)

	w = h.do(t, http.MethodGet, "/api/v1/sessions/"+id+"/analytics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var report models.FinalReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))

	w = h.do(t, http.MethodGet, "/api/v1/sessions/"+id+"/analytics?kind=chains", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = h.do(t, http.MethodGet, "/api/v1/sessions/"+id+"/analytics?kind=phrenology", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(t, http.MethodDelete, "/api/v1/sessions/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = h.do(t, http.MethodGet, "/api/v1/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelPendingOverHTTP(t *testing.T) {
	h := newAPIHarness(t)
	sess := h.createSession(t, gin.H{"topic": "Topic"})

	w := h.do(t, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/cancel", nil)
	require.Equal(t, http.StatusAccepted, w.Code)

	final := h.waitStatus(t, sess.ID, models.StatusCancelled)
	assert.Equal(t, "cancelled before start", final.StatusReason)
	assert.Empty(t, final.Turns)

	// Pause is not valid on a terminal session.
	w = h.do(t, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/pause", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListSessionsEndpoint(t *testing.T) {
	h := newAPIHarness(t)
	h.createSession(t, gin.H{"topic": "First"})
	h.createSession(t, gin.H{"topic": "Second"})

	var list struct {
		Sessions []models.Session `json:"sessions"`
		Count    int              `json:"count"`
	}

	w := h.do(t, http.MethodGet, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 2, list.Count)

	w = h.do(t, http.MethodGet, "/api/v1/sessions?status=pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 2, list.Count)

	w = h.do(t, http.MethodGet, "/api/v1/sessions?status=running", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 0, list.Count)

	w = h.do(t, http.MethodGet, "/api/v1/sessions?limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Count)

	w = h.do(t, http.MethodGet, "/api/v1/sessions?status=weird", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(t, http.MethodGet, "/api/v1/sessions?limit=x", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStrategyEndpoint(t *testing.T) {
	h := newAPIHarness(t)
	sess := h.createSession(t, gin.H{"topic": "Topic"})

	w := h.do(t, http.MethodPut, "/api/v1/sessions/"+sess.ID+"/strategy",
		gin.H{"strategy": string(models.StrategyRoundRobin)})
	assert.Equal(t, http.StatusOK, w.Code)

	w = h.do(t, http.MethodPut, "/api/v1/sessions/"+sess.ID+"/strategy",
		gin.H{"strategy": "bogus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(t, http.MethodPut, "/api/v1/sessions/"+sess.ID+"/strategy", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(t, http.MethodPut, "/api/v1/sessions/nope/strategy",
		gin.H{"strategy": string(models.StrategyFixed)})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTranscriptParams(t *testing.T) {
	h := newAPIHarness(t)
	sess := h.createSession(t, gin.H{"topic": "Topic"})

	w := h.do(t, http.MethodGet, "/api/v1/sessions/"+sess.ID+"/transcript", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var transcript struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &transcript))
	assert.Equal(t, 0, transcript.Count)

	w = h.do(t, http.MethodGet, "/api/v1/sessions/"+sess.ID+"/transcript?from=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
