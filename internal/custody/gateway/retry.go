package gateway

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/tesserex/custody/internal/custody/cerr"
)

// RetryConfig controls retry behavior for gateway calls.
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration

	// OnRetry is invoked once per scheduled retry, before the backoff sleep.
	OnRetry func(op string)
}

// retrier serializes outbound calls through a token bucket and retries
// classified-retryable failures with capped exponential backoff.
type retrier struct {
	cfg     RetryConfig
	limiter *rate.Limiter
}

func newRetrier(cfg RetryConfig, maxRequestsPerSec float64) *retrier {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	burst := int(maxRequestsPerSec)
	if burst < 1 {
		burst = 1
	}

	return &retrier{
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(maxRequestsPerSec), burst),
	}
}

func (r *retrier) do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		if err := r.limiter.Wait(ctx); err != nil {
			return cerr.Wrapf(err, cerr.KindNetwork, "aborted waiting for rate limiter before %s", op)
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		if !cerr.IsRetryable(lastErr) {
			return lastErr
		}

		if attempt == r.cfg.MaxAttempts-1 {
			break
		}

		delay := backoffDelay(r.cfg.InitialDelay, r.cfg.MaxDelay, attempt)

		// a provider Retry-After hint overrides shorter computed backoffs
		if hint := cerr.RetryAfterOf(lastErr); hint > delay {
			delay = hint
		}

		if r.cfg.OnRetry != nil {
			r.cfg.OnRetry(op)
		}

		log.Warn().
			Str("op", op).
			Int("attempt", attempt+1).
			Dur("delay", delay).
			Err(lastErr).
			Msg("Gateway call failed, retrying after backoff")

		select {
		case <-ctx.Done():
			return cerr.Wrapf(ctx.Err(), cerr.KindNetwork, "aborted retrying %s", op)
		case <-time.After(delay):
		}
	}

	return lastErr
}

// backoffDelay computes min(initial * 2^attempt, max) with random jitter in
// the upper half of the window so concurrent workers spread out.
func backoffDelay(initial, max time.Duration, attempt int) time.Duration {
	const maxShift = 32

	if attempt > maxShift {
		attempt = maxShift
	}

	delay := initial << uint(attempt)
	if delay <= 0 || delay > max {
		delay = max
	}

	half := int64(delay) / 2
	if half <= 0 {
		return delay
	}

	return time.Duration(half + rand.Int63n(half+1)) //nolint:gosec
}
