package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesserex/custody/internal/custody/cerr"
)

func newXRPLTestServer(t *testing.T, handler func(method string, params map[string]interface{}) interface{}) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req xrplRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		params := map[string]interface{}{}
		if len(req.Params) > 0 {
			p, ok := req.Params[0].(map[string]interface{})
			require.True(t, ok)
			params = p
		}

		result := handler(req.Method, params)

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{"result": result}))
	}))
}

func newTestXRPLGateway(t *testing.T, url string) *XRPLGateway {
	t.Helper()

	g, err := NewXRPL([]string{url}, RetryConfig{
		MaxAttempts:  1,
		InitialDelay: time.Millisecond,
		MaxDelay:     time.Millisecond,
	}, 1000, 5*time.Second)
	require.NoError(t, err)

	return g
}

func TestXRPLGetBalance(t *testing.T) {
	srv := newXRPLTestServer(t, func(method string, params map[string]interface{}) interface{} {
		assert.Equal(t, "account_info", method)
		assert.Equal(t, "rLHzPsX6oXkzU2qL12kHCH8G8cnZv1rBJh", params["account"])

		return map[string]interface{}{
			"account_data": map[string]interface{}{
				"Balance": "25000000",
			},
		}
	})
	defer srv.Close()

	g := newTestXRPLGateway(t, srv.URL)
	defer g.Close()

	balance, err := g.GetBalance(context.Background(), "rLHzPsX6oXkzU2qL12kHCH8G8cnZv1rBJh")
	require.NoError(t, err)
	assert.Equal(t, "25000000", balance.String())
}

func TestXRPLGetBalanceUnfundedAccount(t *testing.T) {
	srv := newXRPLTestServer(t, func(method string, params map[string]interface{}) interface{} {
		return map[string]interface{}{
			"error":         "actNotFound",
			"error_message": "Account not found.",
		}
	})
	defer srv.Close()

	g := newTestXRPLGateway(t, srv.URL)
	defer g.Close()

	balance, err := g.GetBalance(context.Background(), "rLHzPsX6oXkzU2qL12kHCH8G8cnZv1rBJh")
	require.NoError(t, err)
	assert.Equal(t, "0", balance.String())
}

func TestXRPLGetBalanceInvalidAddress(t *testing.T) {
	g := newTestXRPLGateway(t, "http://127.0.0.1:1")
	defer g.Close()

	_, err := g.GetBalance(context.Background(), "0xdeadbeef")
	require.Error(t, err)
	assert.Equal(t, cerr.KindValidation, cerr.KindOf(err))
}

func TestXRPLSuggestFeeRate(t *testing.T) {
	srv := newXRPLTestServer(t, func(method string, params map[string]interface{}) interface{} {
		assert.Equal(t, "fee", method)

		return map[string]interface{}{
			"drops": map[string]interface{}{
				"open_ledger_fee": "12",
			},
		}
	})
	defer srv.Close()

	g := newTestXRPLGateway(t, srv.URL)
	defer g.Close()

	fee, err := g.SuggestFeeRate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "12", fee.String())
}

func TestXRPLGetTransactionMetaValidated(t *testing.T) {
	srv := newXRPLTestServer(t, func(method string, params map[string]interface{}) interface{} {
		switch method {
		case "tx":
			return map[string]interface{}{
				"validated":    true,
				"ledger_index": 90000100,
				"meta": map[string]interface{}{
					"TransactionResult": "tesSUCCESS",
				},
			}
		case "ledger":
			return map[string]interface{}{
				"ledger_index": 90000104,
			}
		default:
			t.Fatalf("unexpected method %s", method)
			return nil
		}
	})
	defer srv.Close()

	g := newTestXRPLGateway(t, srv.URL)
	defer g.Close()

	meta, err := g.GetTransactionMeta(context.Background(), "ABCDEF0123456789")
	require.NoError(t, err)
	assert.True(t, meta.Found)
	assert.True(t, meta.Included)
	assert.True(t, meta.Succeeded)
	assert.Equal(t, int64(90000100), meta.BlockNumber)
	assert.Equal(t, int64(5), meta.Confirmations)
}

func TestXRPLGetTransactionMetaFailedOnLedger(t *testing.T) {
	srv := newXRPLTestServer(t, func(method string, params map[string]interface{}) interface{} {
		switch method {
		case "tx":
			return map[string]interface{}{
				"validated":    true,
				"ledger_index": 90000100,
				"meta": map[string]interface{}{
					"TransactionResult": "tecUNFUNDED_PAYMENT",
				},
			}
		case "ledger":
			return map[string]interface{}{
				"ledger_index": 90000100,
			}
		default:
			t.Fatalf("unexpected method %s", method)
			return nil
		}
	})
	defer srv.Close()

	g := newTestXRPLGateway(t, srv.URL)
	defer g.Close()

	meta, err := g.GetTransactionMeta(context.Background(), "ABCDEF0123456789")
	require.NoError(t, err)
	assert.True(t, meta.Found)
	assert.True(t, meta.Included)
	assert.False(t, meta.Succeeded)
	assert.Equal(t, int64(1), meta.Confirmations)
}

func TestXRPLGetTransactionMetaUnvalidated(t *testing.T) {
	srv := newXRPLTestServer(t, func(method string, params map[string]interface{}) interface{} {
		assert.Equal(t, "tx", method)

		return map[string]interface{}{
			"validated": false,
		}
	})
	defer srv.Close()

	g := newTestXRPLGateway(t, srv.URL)
	defer g.Close()

	// submitted but not yet in a validated ledger: no outcome either way
	meta, err := g.GetTransactionMeta(context.Background(), "ABCDEF0123456789")
	require.NoError(t, err)
	assert.True(t, meta.Found)
	assert.False(t, meta.Included)
	assert.False(t, meta.Succeeded)
	assert.Equal(t, int64(0), meta.Confirmations)
}

func TestXRPLGetTransactionMetaNotFound(t *testing.T) {
	srv := newXRPLTestServer(t, func(method string, params map[string]interface{}) interface{} {
		return map[string]interface{}{
			"error": "txnNotFound",
		}
	})
	defer srv.Close()

	g := newTestXRPLGateway(t, srv.URL)
	defer g.Close()

	meta, err := g.GetTransactionMeta(context.Background(), "ABCDEF0123456789")
	require.NoError(t, err)
	assert.False(t, meta.Found)
}

func TestXRPLBroadcast(t *testing.T) {
	srv := newXRPLTestServer(t, func(method string, params map[string]interface{}) interface{} {
		assert.Equal(t, "submit", method)
		assert.Equal(t, "120000", params["tx_blob"])

		return map[string]interface{}{
			"engine_result": "tesSUCCESS",
			"tx_json": map[string]interface{}{
				"hash": "DEADBEEF00112233",
			},
		}
	})
	defer srv.Close()

	g := newTestXRPLGateway(t, srv.URL)
	defer g.Close()

	hash, err := g.Broadcast(context.Background(), []byte{0x12, 0x00, 0x00})
	require.NoError(t, err)
	assert.Equal(t, "DEADBEEF00112233", hash)
}

func TestXRPLBroadcastChainRejection(t *testing.T) {
	srv := newXRPLTestServer(t, func(method string, params map[string]interface{}) interface{} {
		return map[string]interface{}{
			"engine_result": "tecINSUFFICIENT_RESERVE",
			"tx_json": map[string]interface{}{
				"hash": "DEADBEEF00112233",
			},
		}
	})
	defer srv.Close()

	g := newTestXRPLGateway(t, srv.URL)
	defer g.Close()

	_, err := g.Broadcast(context.Background(), []byte{0x12})
	require.Error(t, err)
	assert.Equal(t, cerr.KindChainRejection, cerr.KindOf(err))
	assert.False(t, cerr.IsRetryable(err))
}

func TestXRPLBroadcastPastSequenceTreatedAsSuccess(t *testing.T) {
	srv := newXRPLTestServer(t, func(method string, params map[string]interface{}) interface{} {
		return map[string]interface{}{
			"engine_result": "tefPAST_SEQ",
			"tx_json": map[string]interface{}{
				"hash": "DEADBEEF00112233",
			},
		}
	})
	defer srv.Close()

	g := newTestXRPLGateway(t, srv.URL)
	defer g.Close()

	hash, err := g.Broadcast(context.Background(), []byte{0x12})
	require.NoError(t, err)
	assert.Equal(t, "DEADBEEF00112233", hash)
}

func TestXRPLRateLimitResponseIsRetryable(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":{"drops":{"open_ledger_fee":"10"}}}`))
	}))
	defer srv.Close()

	g, err := NewXRPL([]string{srv.URL}, RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
	}, 1000, 5*time.Second)
	require.NoError(t, err)
	defer g.Close()

	fee, err := g.SuggestFeeRate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10", fee.String())
	assert.Equal(t, 2, attempts)
}

func TestXRPLFailoverToSecondServer(t *testing.T) {
	srv := newXRPLTestServer(t, func(method string, params map[string]interface{}) interface{} {
		return map[string]interface{}{
			"drops": map[string]interface{}{
				"open_ledger_fee": "11",
			},
		}
	})
	defer srv.Close()

	g, err := NewXRPL([]string{"http://127.0.0.1:1", srv.URL}, RetryConfig{
		MaxAttempts:  1,
		InitialDelay: time.Millisecond,
		MaxDelay:     time.Millisecond,
	}, 1000, 5*time.Second)
	require.NoError(t, err)
	defer g.Close()

	fee, err := g.SuggestFeeRate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "11", fee.String())
}
