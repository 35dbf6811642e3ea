package cerr_test

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesserex/custody/internal/custody/cerr"
)

func TestKindClassification(t *testing.T) {
	err := cerr.Newf(cerr.KindRateLimit, "provider throttled request after %d attempts", 3)

	assert.Equal(t, cerr.KindRateLimit, cerr.KindOf(err))
	assert.True(t, cerr.IsKind(err, cerr.KindRateLimit))
	assert.False(t, cerr.IsKind(err, cerr.KindNetwork))
	assert.Equal(t, "rate_limit: provider throttled request after 3 attempts", err.Error())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := cerr.Wrap(cause, cerr.KindNetwork, "failed to fetch balance")

	require.Error(t, err)
	assert.Equal(t, cerr.KindNetwork, cerr.KindOf(err))
	assert.ErrorIs(t, err, cause)

	// classification survives further pkg/errors wrapping
	outer := errors.Wrap(err, "sweep execution failed")
	assert.Equal(t, cerr.KindNetwork, cerr.KindOf(outer))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, cerr.Wrap(nil, cerr.KindNetwork, "ignored"))
	assert.NoError(t, cerr.Wrapf(nil, cerr.KindNetwork, "ignored %d", 1))
}

func TestRetryable(t *testing.T) {
	assert.True(t, cerr.KindNetwork.Retryable())
	assert.True(t, cerr.KindRateLimit.Retryable())
	assert.False(t, cerr.KindValidation.Retryable())
	assert.False(t, cerr.KindInsufficientFunds.Retryable())
	assert.False(t, cerr.KindBroadcast.Retryable())
	assert.False(t, cerr.KindChainRejection.Retryable())
	assert.False(t, cerr.KindConfiguration.Retryable())

	assert.True(t, cerr.IsRetryable(cerr.New(cerr.KindNetwork, "timeout")))
	assert.False(t, cerr.IsRetryable(errors.New("unclassified")))
}

func TestKindOfUnclassified(t *testing.T) {
	assert.Equal(t, cerr.KindUnknown, cerr.KindOf(errors.New("plain")))
	assert.Equal(t, cerr.KindUnknown, cerr.KindOf(nil))
}

func TestRetryAfterHint(t *testing.T) {
	throttled := cerr.New(cerr.KindRateLimit, "slow down").WithRetryAfter(3 * time.Second)

	assert.Equal(t, 3*time.Second, cerr.RetryAfterOf(throttled))
	assert.Equal(t, 3*time.Second, cerr.RetryAfterOf(errors.Wrap(throttled, "outer")))

	assert.Zero(t, cerr.RetryAfterOf(cerr.New(cerr.KindRateLimit, "no hint")))
	assert.Zero(t, cerr.RetryAfterOf(errors.New("unclassified")))
	assert.Zero(t, cerr.RetryAfterOf(nil))
}
