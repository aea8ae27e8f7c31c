package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/agora-labs/agora/pkg/provider"
)

func TestRecordCallSuccess(t *testing.T) {
	c := NewCollector()
	c.RecordCall(provider.CallRecord{
		Model:        "openai/gpt-4o",
		Success:      true,
		Latency:      1200 * time.Millisecond,
		InputTokens:  800,
		OutputTokens: 200,
		Cost:         0.007,
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.calls.WithLabelValues("openai/gpt-4o", "success")))
	assert.Equal(t, 800.0, testutil.ToFloat64(c.tokensIn.WithLabelValues("openai/gpt-4o")))
	assert.Equal(t, 200.0, testutil.ToFloat64(c.tokensOut.WithLabelValues("openai/gpt-4o")))
	assert.InDelta(t, 0.007, testutil.ToFloat64(c.cost.WithLabelValues("openai/gpt-4o")), 1e-9)
}

func TestRecordCallFailureLabelsOutcomeWithKind(t *testing.T) {
	c := NewCollector()
	c.RecordCall(provider.CallRecord{
		Model:   "openai/gpt-4o",
		Success: false,
		Kind:    provider.KindRateLimited,
		Latency: 50 * time.Millisecond,
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.calls.WithLabelValues("openai/gpt-4o", string(provider.KindRateLimited))))
	// Token and cost counters stay untouched on failure.
	assert.Equal(t, 0.0, testutil.ToFloat64(c.tokensIn.WithLabelValues("openai/gpt-4o")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.cost.WithLabelValues("openai/gpt-4o")))
}

func TestCollectorsAreIndependent(t *testing.T) {
	a := NewCollector()
	b := NewCollector()
	a.RecordCall(provider.CallRecord{Model: "m", Success: true})

	assert.Equal(t, 1.0, testutil.ToFloat64(a.calls.WithLabelValues("m", "success")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.calls.WithLabelValues("m", "success")))
}
