package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status int
		want   FailureKind
	}{
		{http.StatusUnauthorized, KindAuth},
		{http.StatusForbidden, KindAuth},
		{http.StatusPaymentRequired, KindBudgetExhausted},
		{http.StatusTooManyRequests, KindRateLimited},
		{http.StatusBadRequest, KindInvalidRequest},
		{http.StatusUnprocessableEntity, KindInvalidRequest},
		{http.StatusRequestTimeout, KindTimeout},
		{http.StatusGatewayTimeout, KindTimeout},
		{http.StatusServiceUnavailable, KindUnavailable},
		{http.StatusBadGateway, KindUnavailable},
		{http.StatusInternalServerError, KindTransient},
		{http.StatusNotFound, KindInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStatus(tt.status))
		})
	}
}

func TestClassifyErr(t *testing.T) {
	assert.Equal(t, KindTimeout, ClassifyErr(context.DeadlineExceeded))
	assert.Equal(t, KindTransient, ClassifyErr(errors.New("connection reset")))
}

func TestRetryable(t *testing.T) {
	retryable := []FailureKind{KindTransient, KindRateLimited, KindUnavailable, KindTimeout}
	for _, k := range retryable {
		assert.True(t, k.Retryable(), string(k))
	}
	fatal := []FailureKind{KindAuth, KindInvalidRequest, KindBudgetExhausted}
	for _, k := range fatal {
		assert.False(t, k.Retryable(), string(k))
	}
}

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewCallError(KindAuth, "m1", errors.New("denied")))
	assert.Equal(t, KindAuth, KindOf(err))

	// Unclassified errors default to transient.
	assert.Equal(t, KindTransient, KindOf(errors.New("mystery")))
}

func TestCallErrorMessage(t *testing.T) {
	err := NewCallError(KindRateLimited, "vendor/model-x", errors.New("429"))
	assert.Contains(t, err.Error(), "vendor/model-x")
	assert.Contains(t, err.Error(), "rate_limited")
}
