package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestOpenRouterInvokeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "vendor/model-x", body.Model)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{
				"message":       map[string]string{"content": "the case for adoption rests on three points"},
				"finish_reason": "stop",
			}},
			"usage": map[string]int{"prompt_tokens": 120, "completion_tokens": 45},
		})
	}))
	defer srv.Close()

	p := NewOpenRouter(srv.URL, "test-key", 10*time.Second)
	comp, err := p.Invoke(testCtx(t), Request{
		Model:    "vendor/model-x",
		Messages: []Message{{Role: "user", Content: "open"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "the case for adoption rests on three points", comp.Text)
	assert.Equal(t, 120, comp.InputTokens)
	assert.Equal(t, 45, comp.OutputTokens)
	assert.Equal(t, "stop", comp.FinishReason)
}

func TestOpenRouterClassifiesStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   FailureKind
	}{
		{"auth", http.StatusUnauthorized, KindAuth},
		{"rate limited", http.StatusTooManyRequests, KindRateLimited},
		{"budget", http.StatusPaymentRequired, KindBudgetExhausted},
		{"unavailable", http.StatusServiceUnavailable, KindUnavailable},
		{"server error", http.StatusInternalServerError, KindTransient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "upstream says no", tt.status)
			}))
			defer srv.Close()

			p := NewOpenRouter(srv.URL, "k", 10*time.Second)
			_, err := p.Invoke(testCtx(t), Request{Model: "m"})
			require.Error(t, err)
			assert.Equal(t, tt.want, KindOf(err))
		})
	}
}

func TestOpenRouterRequiresDeadline(t *testing.T) {
	p := NewOpenRouter("http://unused", "k", time.Second)
	_, err := p.Invoke(context.Background(), Request{Model: "m"})
	assert.ErrorIs(t, err, ErrNoDeadline)
}

func TestOpenRouterDeadlineExceeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	p := NewOpenRouter(srv.URL, "k", 10*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.Invoke(ctx, Request{Model: "m"})
	require.Error(t, err)
	assert.Equal(t, KindTimeout, KindOf(err))
}

func TestObservedEmitsRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"content": "ok"}}},
			"usage":   map[string]int{"prompt_tokens": 1000, "completion_tokens": 500},
		})
	}))
	defer srv.Close()

	var got []CallRecord
	obs := &Observed{
		Inner:           NewOpenRouter(srv.URL, "k", 10*time.Second),
		Observer:        recorderFunc(func(rec CallRecord) { got = append(got, rec) }),
		InputCostPer1K:  map[string]float64{"m": 0.5},
		OutputCostPer1K: map[string]float64{"m": 1.0},
	}

	_, err := obs.Invoke(testCtx(t), Request{Model: "m"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Success)
	assert.InDelta(t, 1.0, got[0].Cost, 1e-9) // 1000*0.5/1000 + 500*1.0/1000
}

type recorderFunc func(CallRecord)

func (f recorderFunc) RecordCall(rec CallRecord) { f(rec) }
