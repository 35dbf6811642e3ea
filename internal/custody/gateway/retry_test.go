package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesserex/custody/internal/custody/cerr"
)

func TestRetrierRetriesRetryableErrors(t *testing.T) {
	r := newRetrier(RetryConfig{
		MaxAttempts:  4,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
	}, 1000)

	calls := 0
	err := r.do(context.Background(), "test.op", func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return cerr.New(cerr.KindNetwork, "connection reset")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetrierStopsOnNonRetryableError(t *testing.T) {
	r := newRetrier(RetryConfig{
		MaxAttempts:  5,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
	}, 1000)

	calls := 0
	err := r.do(context.Background(), "test.op", func(ctx context.Context) error {
		calls++
		return cerr.New(cerr.KindInsufficientFunds, "not enough balance")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, cerr.KindInsufficientFunds, cerr.KindOf(err))
}

func TestRetrierExhaustsAttempts(t *testing.T) {
	r := newRetrier(RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
	}, 1000)

	calls := 0
	err := r.do(context.Background(), "test.op", func(ctx context.Context) error {
		calls++
		return cerr.New(cerr.KindRateLimit, "throttled")
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.True(t, cerr.IsRetryable(err))
}

func TestRetrierRespectsContextCancellation(t *testing.T) {
	r := newRetrier(RetryConfig{
		MaxAttempts:  10,
		InitialDelay: 50 * time.Millisecond,
		MaxDelay:     time.Second,
	}, 1000)

	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	errCh := make(chan error, 1)
	go func() {
		errCh <- r.do(ctx, "test.op", func(ctx context.Context) error {
			calls++
			return cerr.New(cerr.KindNetwork, "unreachable")
		})
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(time.Second):
		t.Fatal("retrier did not stop after context cancellation")
	}

	assert.Equal(t, 1, calls)
}

func TestBackoffDelayBounds(t *testing.T) {
	initial := 100 * time.Millisecond
	max := 2 * time.Second

	for attempt := 0; attempt < 24; attempt++ {
		delay := backoffDelay(initial, max, attempt)

		uncapped := initial << uint(attempt)
		if uncapped <= 0 || uncapped > max {
			uncapped = max
		}

		assert.GreaterOrEqual(t, delay, uncapped/2, "attempt %d", attempt)
		assert.LessOrEqual(t, delay, uncapped, "attempt %d", attempt)
	}
}

func TestBackoffDelayCapsAtMax(t *testing.T) {
	delay := backoffDelay(time.Second, 3*time.Second, 20)
	assert.LessOrEqual(t, delay, 3*time.Second)
	assert.GreaterOrEqual(t, delay, 1500*time.Millisecond)
}
