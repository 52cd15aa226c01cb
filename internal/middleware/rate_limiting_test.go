package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/2beens/djbookingcom/internal/middleware"
	"github.com/2beens/djbookingcom/internal/telemetry/metrics"

	"github.com/go-redis/redis_rate/v9"
	"github.com/stretchr/testify/assert"
)

type fakeRateLimiter struct {
	allowed int
}

func (f *fakeRateLimiter) Allow(_ context.Context, _ string, _ redis_rate.Limit) (*redis_rate.Result, error) {
	return &redis_rate.Result{
		Allowed:    f.allowed,
		RetryAfter: 3 * time.Second,
	}, nil
}

func TestRateLimit(t *testing.T) {
	metricsManager := metrics.NewTestManager()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin-login", nil)
	middleware.RateLimit(&fakeRateLimiter{allowed: 1}, "login", 15, metricsManager)(handler).
		ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	middleware.RateLimit(&fakeRateLimiter{allowed: 0}, "login", 15, metricsManager)(handler).
		ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Contains(t, rr.Body.String(), "retry after")
}
