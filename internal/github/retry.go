package github

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"
)

// RetryStrategy defines the retry behavior for GitHub API operations.
// Retrying is a transport concern and stays inside the client; plan execution
// never retries on its own.
type RetryStrategy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	Jitter       bool
}

// DefaultRetryStrategy returns a default retry strategy.
func DefaultRetryStrategy() RetryStrategy {
	return RetryStrategy{
		MaxAttempts:  3,
		InitialDelay: 1 * time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
		Jitter:       true,
	}
}

// NoRetryStrategy returns a strategy that performs a single attempt.
func NoRetryStrategy() RetryStrategy {
	return RetryStrategy{MaxAttempts: 1}
}

// RetryDelay calculates the delay before the given attempt (1-based). A
// rate-limited error's retry-after hint takes precedence over backoff when it
// is longer.
func (rs RetryStrategy) RetryDelay(attempt int, lastErr error) time.Duration {
	if attempt <= 0 {
		return 0
	}

	delay := float64(rs.InitialDelay) * math.Pow(rs.Multiplier, float64(attempt-1))
	if delay > float64(rs.MaxDelay) {
		delay = float64(rs.MaxDelay)
	}
	if rs.Jitter && delay > 0 {
		delay += rand.Float64() * 0.25 * delay
	}

	var apiErr *APIError
	if errors.As(lastErr, &apiErr) && apiErr.RetryAfter > time.Duration(delay) {
		return apiErr.RetryAfter
	}
	return time.Duration(delay)
}

// ShouldRetry determines whether the operation should be retried after the
// given attempt failed with err.
func (rs RetryStrategy) ShouldRetry(err error, attempt int) bool {
	if err == nil || attempt >= rs.MaxAttempts {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsRetryable()
	}
	return false
}

// withRetry runs op until it succeeds, the strategy gives up, or the context
// is done.
func (rs RetryStrategy) withRetry(ctx context.Context, op func() error) error {
	var lastErr error
	for attempt := 1; ; attempt++ {
		lastErr = op()
		if !rs.ShouldRetry(lastErr, attempt) {
			return lastErr
		}
		select {
		case <-time.After(rs.RetryDelay(attempt, lastErr)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
