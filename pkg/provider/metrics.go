package provider

import (
	"context"
	"time"
)

// CallRecord is the per-invocation metric emitted for every model call,
// success or failure.
type CallRecord struct {
	Model        string
	Success      bool
	Kind         FailureKind // zero value on success
	Latency      time.Duration
	InputTokens  int
	OutputTokens int
	Cost         float64
}

// MetricsObserver receives one record per model call. Implementations must
// be cheap and non-blocking; they are invoked on the session's hot path.
type MetricsObserver interface {
	RecordCall(rec CallRecord)
}

// NopObserver discards all records.
type NopObserver struct{}

func (NopObserver) RecordCall(CallRecord) {}

// Observed wraps a provider so every call emits a CallRecord. Cost is
// computed from the per-1K-token prices if provided.
type Observed struct {
	Inner           Provider
	Observer        MetricsObserver
	InputCostPer1K  map[string]float64
	OutputCostPer1K map[string]float64
}

func (o *Observed) Invoke(ctx context.Context, req Request) (*Completion, error) {
	start := time.Now()
	comp, err := o.Inner.Invoke(ctx, req)
	rec := CallRecord{Model: req.Model, Latency: time.Since(start)}
	if err != nil {
		rec.Kind = KindOf(err)
	} else {
		rec.Success = true
		rec.InputTokens = comp.InputTokens
		rec.OutputTokens = comp.OutputTokens
		rec.Cost = o.cost(req.Model, comp.InputTokens, comp.OutputTokens)
	}
	o.Observer.RecordCall(rec)
	return comp, err
}

func (o *Observed) cost(model string, in, out int) float64 {
	return float64(in)/1000*o.InputCostPer1K[model] +
		float64(out)/1000*o.OutputCostPer1K[model]
}
