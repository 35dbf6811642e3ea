package gateway

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesserex/custody/internal/custody/cerr"
)

func TestClassifyEVMError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		fallback  cerr.Kind
		wantKind  cerr.Kind
		retryable bool
	}{
		{
			name:      "rate limited",
			err:       errors.New("429 Too Many Requests"),
			fallback:  cerr.KindNetwork,
			wantKind:  cerr.KindRateLimit,
			retryable: true,
		},
		{
			name:      "insufficient funds",
			err:       errors.New("insufficient funds for gas * price + value"),
			fallback:  cerr.KindBroadcast,
			wantKind:  cerr.KindInsufficientFunds,
			retryable: false,
		},
		{
			name:      "connection refused",
			err:       errors.New("dial tcp 127.0.0.1:8545: connection refused"),
			fallback:  cerr.KindBroadcast,
			wantKind:  cerr.KindNetwork,
			retryable: true,
		},
		{
			name:      "deadline exceeded",
			err:       context.DeadlineExceeded,
			fallback:  cerr.KindBroadcast,
			wantKind:  cerr.KindNetwork,
			retryable: true,
		},
		{
			name:      "unknown error uses fallback",
			err:       errors.New("nonce too low"),
			fallback:  cerr.KindBroadcast,
			wantKind:  cerr.KindBroadcast,
			retryable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := classifyEVMError(tt.err, tt.fallback)
			require.Error(t, classified)

			assert.Equal(t, tt.wantKind, cerr.KindOf(classified))
			assert.Equal(t, tt.retryable, cerr.IsRetryable(classified))
			assert.True(t, errors.Is(classified, tt.err))
		})
	}
}

func TestClassifyEVMErrorNil(t *testing.T) {
	assert.NoError(t, classifyEVMError(nil, cerr.KindNetwork))
}

func TestEVMGetBalanceRejectsInvalidAddress(t *testing.T) {
	g, err := NewEVM([]string{"http://127.0.0.1:1"}, RetryConfig{MaxAttempts: 1}, 10)
	require.NoError(t, err)
	defer g.Close()

	_, err = g.GetBalance(context.Background(), "not-an-address")
	require.Error(t, err)
	assert.Equal(t, cerr.KindValidation, cerr.KindOf(err))
}
