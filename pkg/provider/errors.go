package provider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// FailureKind classifies a model-call failure. The set is closed; retry and
// breaker policy key off it.
type FailureKind string

const (
	KindTransient       FailureKind = "transient"
	KindRateLimited     FailureKind = "rate_limited"
	KindAuth            FailureKind = "auth"
	KindInvalidRequest  FailureKind = "invalid_request"
	KindBudgetExhausted FailureKind = "budget_exhausted"
	KindUnavailable     FailureKind = "unavailable"
	KindTimeout         FailureKind = "timeout"
)

// Retryable reports whether a failure of this kind may be retried.
// AUTH and INVALID_REQUEST are never retried; BUDGET_EXHAUSTED is terminal.
func (k FailureKind) Retryable() bool {
	switch k {
	case KindTransient, KindRateLimited, KindUnavailable, KindTimeout:
		return true
	}
	return false
}

// CallError is a classified model-call failure.
type CallError struct {
	Kind   FailureKind
	Model  string
	Status int // HTTP status when applicable, 0 otherwise
	Err    error
}

func (e *CallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model %s: %s: %v", e.Model, e.Kind, e.Err)
	}
	return fmt.Sprintf("model %s: %s", e.Model, e.Kind)
}

func (e *CallError) Unwrap() error { return e.Err }

// NewCallError builds a classified failure for a model.
func NewCallError(kind FailureKind, model string, err error) *CallError {
	return &CallError{Kind: kind, Model: model, Err: err}
}

// KindOf extracts the failure kind from err, defaulting to TRANSIENT for
// unclassified errors.
func KindOf(err error) FailureKind {
	var ce *CallError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindTransient
}

// ClassifyStatus maps an HTTP status code to a failure kind.
func ClassifyStatus(status int) FailureKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusPaymentRequired:
		return KindBudgetExhausted
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return KindTimeout
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return KindInvalidRequest
	case status == http.StatusServiceUnavailable || status == http.StatusBadGateway:
		return KindUnavailable
	case status >= 500:
		return KindTransient
	default:
		return KindInvalidRequest
	}
}

// ClassifyErr maps a transport-level error to a failure kind.
func ClassifyErr(err error) FailureKind {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, context.Canceled):
		return KindTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return KindTimeout
	}
	return KindTransient
}
