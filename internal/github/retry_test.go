package github

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryStrategy_ShouldRetry(t *testing.T) {
	rs := RetryStrategy{MaxAttempts: 3}

	retryable := &APIError{Type: ErrorTypeServerError}
	terminal := &APIError{Type: ErrorTypeNotFound}

	assert.True(t, rs.ShouldRetry(retryable, 1))
	assert.True(t, rs.ShouldRetry(retryable, 2))
	assert.False(t, rs.ShouldRetry(retryable, 3), "attempts are exhausted")
	assert.False(t, rs.ShouldRetry(terminal, 1))
	assert.False(t, rs.ShouldRetry(nil, 1))
	assert.False(t, rs.ShouldRetry(errors.New("unclassified"), 1))
}

func TestRetryStrategy_RetryDelay(t *testing.T) {
	rs := RetryStrategy{
		MaxAttempts:  5,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     1 * time.Second,
		Multiplier:   2.0,
	}

	assert.Equal(t, time.Duration(0), rs.RetryDelay(0, nil))
	assert.Equal(t, 100*time.Millisecond, rs.RetryDelay(1, nil))
	assert.Equal(t, 200*time.Millisecond, rs.RetryDelay(2, nil))
	assert.Equal(t, 400*time.Millisecond, rs.RetryDelay(3, nil))
	// Capped at MaxDelay.
	assert.Equal(t, 1*time.Second, rs.RetryDelay(10, nil))
}

func TestRetryStrategy_RetryDelay_Jitter(t *testing.T) {
	rs := RetryStrategy{
		MaxAttempts:  3,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     1 * time.Second,
		Multiplier:   2.0,
		Jitter:       true,
	}

	for i := 0; i < 20; i++ {
		d := rs.RetryDelay(1, nil)
		assert.GreaterOrEqual(t, d, 100*time.Millisecond)
		assert.LessOrEqual(t, d, 125*time.Millisecond)
	}
}

func TestRetryStrategy_RetryDelay_RetryAfterHintWins(t *testing.T) {
	rs := RetryStrategy{
		MaxAttempts:  3,
		InitialDelay: 10 * time.Millisecond,
		MaxDelay:     100 * time.Millisecond,
		Multiplier:   2.0,
	}

	hint := &APIError{Type: ErrorTypeRateLimit, RetryAfter: 300 * time.Millisecond}
	assert.Equal(t, 300*time.Millisecond, rs.RetryDelay(1, hint))
}

func TestRetryStrategy_WithRetry(t *testing.T) {
	rs := RetryStrategy{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, Multiplier: 1.0}

	t.Run("succeeds after transient failures", func(t *testing.T) {
		attempts := 0
		err := rs.withRetry(context.Background(), func() error {
			attempts++
			if attempts < 3 {
				return &APIError{Type: ErrorTypeServerError}
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		attempts := 0
		err := rs.withRetry(context.Background(), func() error {
			attempts++
			return &APIError{Type: ErrorTypeServerError}
		})
		require.Error(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("non-retryable error returns immediately", func(t *testing.T) {
		attempts := 0
		err := rs.withRetry(context.Background(), func() error {
			attempts++
			return &APIError{Type: ErrorTypeNotFound}
		})
		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("canceled context stops retrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := rs.withRetry(ctx, func() error {
			return &APIError{Type: ErrorTypeServerError}
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNoRetryStrategy(t *testing.T) {
	rs := NoRetryStrategy()
	attempts := 0
	rs.withRetry(context.Background(), func() error {
		attempts++
		return &APIError{Type: ErrorTypeServerError}
	})
	assert.Equal(t, 1, attempts)
}
