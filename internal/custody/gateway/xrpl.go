package gateway

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"io"
	"math/big"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/tesserex/custody/internal/custody/cerr"
)

// XRPLGateway talks to rippled servers over the JSON-RPC API.
// All amounts are in drops (1 XRP = 1,000,000 drops).
type XRPLGateway struct {
	urls    []string
	client  *http.Client
	retrier *retrier
}

var _ Gateway = (*XRPLGateway)(nil)

func NewXRPL(rpcURLs []string, retry RetryConfig, maxRequestsPerSec float64, requestTimeout time.Duration) (*XRPLGateway, error) {
	if len(rpcURLs) == 0 {
		return nil, errors.New("at least one RPC URL is required")
	}

	return &XRPLGateway{
		urls: rpcURLs,
		client: &http.Client{
			Timeout: requestTimeout,
		},
		retrier: newRetrier(retry, maxRequestsPerSec),
	}, nil
}

func (g *XRPLGateway) Close() {
	g.client.CloseIdleConnections()
}

type xrplRequest struct {
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

type xrplError struct {
	Error        string `json:"error"`
	ErrorMessage string `json:"error_message"`
}

// resultError classifies a rippled error envelope. Overload responses are
// retryable, everything else is treated as a transport-level failure.
func (e xrplError) resultError(op string) error {
	switch e.Error {
	case "slowDown", "tooBusy":
		return cerr.Newf(cerr.KindRateLimit, "%s throttled: %s", op, e.Error)
	default:
		return cerr.Newf(cerr.KindNetwork, "%s failed: %s", op, e.Error)
	}
}

func (g *XRPLGateway) GetBalance(ctx context.Context, address string) (*big.Int, error) {
	if !strings.HasPrefix(address, "r") || len(address) < 25 || len(address) > 35 {
		return nil, cerr.Newf(cerr.KindValidation, "invalid XRPL address %q", address)
	}

	var balance *big.Int

	err := g.retrier.do(ctx, "xrpl.GetBalance", func(ctx context.Context) error {
		var result struct {
			xrplError
			AccountData struct {
				Balance string `json:"Balance"`
			} `json:"account_data"`
		}

		err := g.call(ctx, xrplRequest{
			Method: "account_info",
			Params: []interface{}{map[string]interface{}{
				"account":      address,
				"ledger_index": "validated",
			}},
		}, &result)
		if err != nil {
			return err
		}

		// accounts below the reserve are simply not found, they hold nothing spendable
		if result.Error == "actNotFound" {
			balance = big.NewInt(0)
			return nil
		}
		if result.Error != "" {
			return result.resultError("account_info")
		}

		b, ok := new(big.Int).SetString(result.AccountData.Balance, 10)
		if !ok {
			return cerr.Newf(cerr.KindNetwork, "unparseable drops balance %q", result.AccountData.Balance)
		}

		balance = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	return balance, nil
}

func (g *XRPLGateway) SuggestFeeRate(ctx context.Context) (*big.Int, error) {
	var feeRate *big.Int

	err := g.retrier.do(ctx, "xrpl.SuggestFeeRate", func(ctx context.Context) error {
		var result struct {
			xrplError
			Drops struct {
				OpenLedgerFee string `json:"open_ledger_fee"`
			} `json:"drops"`
		}

		if err := g.call(ctx, xrplRequest{Method: "fee", Params: []interface{}{map[string]interface{}{}}}, &result); err != nil {
			return err
		}
		if result.Error != "" {
			return result.resultError("fee")
		}

		fee, ok := new(big.Int).SetString(result.Drops.OpenLedgerFee, 10)
		if !ok {
			return cerr.Newf(cerr.KindNetwork, "unparseable fee drops %q", result.Drops.OpenLedgerFee)
		}

		feeRate = fee
		return nil
	})
	if err != nil {
		return nil, err
	}

	return feeRate, nil
}

func (g *XRPLGateway) GetTransactionMeta(ctx context.Context, txHash string) (*TransactionMeta, error) {
	var meta *TransactionMeta

	err := g.retrier.do(ctx, "xrpl.GetTransactionMeta", func(ctx context.Context) error {
		var result struct {
			xrplError
			Validated   bool  `json:"validated"`
			LedgerIndex int64 `json:"ledger_index"`
			Meta        struct {
				TransactionResult string `json:"TransactionResult"`
			} `json:"meta"`
		}

		err := g.call(ctx, xrplRequest{
			Method: "tx",
			Params: []interface{}{map[string]interface{}{
				"transaction": txHash,
			}},
		}, &result)
		if err != nil {
			return err
		}

		if result.Error == "txnNotFound" {
			meta = &TransactionMeta{Found: false}
			return nil
		}
		if result.Error != "" {
			return result.resultError("tx")
		}

		if !result.Validated {
			meta = &TransactionMeta{Found: true}
			return nil
		}

		validatedIndex, err := g.validatedLedgerIndex(ctx)
		if err != nil {
			return err
		}

		confirmations := int64(0)
		if validatedIndex >= result.LedgerIndex {
			confirmations = validatedIndex - result.LedgerIndex + 1
		}

		meta = &TransactionMeta{
			Found:         true,
			Included:      true,
			BlockNumber:   result.LedgerIndex,
			Confirmations: confirmations,
			Succeeded:     result.Meta.TransactionResult == "tesSUCCESS",
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return meta, nil
}

func (g *XRPLGateway) Broadcast(ctx context.Context, rawTx []byte) (string, error) {
	var txHash string

	err := g.retrier.do(ctx, "xrpl.Broadcast", func(ctx context.Context) error {
		var result struct {
			xrplError
			EngineResult string `json:"engine_result"`
			TxJSON       struct {
				Hash string `json:"hash"`
			} `json:"tx_json"`
		}

		err := g.call(ctx, xrplRequest{
			Method: "submit",
			Params: []interface{}{map[string]interface{}{
				"tx_blob": strings.ToUpper(hex.EncodeToString(rawTx)),
			}},
		}, &result)
		if err != nil {
			return err
		}

		if result.Error != "" {
			return cerr.Newf(cerr.KindBroadcast, "submit failed: %s", result.Error)
		}

		switch {
		case result.EngineResult == "tesSUCCESS" || result.EngineResult == "terQUEUED":
			txHash = result.TxJSON.Hash
			return nil
		case strings.HasPrefix(result.EngineResult, "tec"):
			// included on ledger but failed, funds only burned the fee
			return cerr.Newf(cerr.KindChainRejection, "transaction failed on ledger: %s", result.EngineResult)
		case strings.HasPrefix(result.EngineResult, "tef") && strings.Contains(result.EngineResult, "PAST_SEQ"):
			// sequence already consumed, a previous attempt got through
			txHash = result.TxJSON.Hash
			return nil
		default:
			return cerr.Newf(cerr.KindBroadcast, "transaction rejected: %s", result.EngineResult)
		}
	})
	if err != nil {
		return "", err
	}

	return txHash, nil
}

// GetAccountSequence returns the current sequence number of the account,
// needed when signing XRPL payments.
func (g *XRPLGateway) GetAccountSequence(ctx context.Context, address string) (uint64, error) {
	var sequence uint64

	err := g.retrier.do(ctx, "xrpl.GetAccountSequence", func(ctx context.Context) error {
		var result struct {
			xrplError
			AccountData struct {
				Sequence uint64 `json:"Sequence"`
			} `json:"account_data"`
		}

		err := g.call(ctx, xrplRequest{
			Method: "account_info",
			Params: []interface{}{map[string]interface{}{
				"account":      address,
				"ledger_index": "current",
			}},
		}, &result)
		if err != nil {
			return err
		}
		if result.Error != "" {
			return result.resultError("account_info")
		}

		sequence = result.AccountData.Sequence
		return nil
	})
	if err != nil {
		return 0, err
	}

	return sequence, nil
}

func (g *XRPLGateway) validatedLedgerIndex(ctx context.Context) (int64, error) {
	var result struct {
		xrplError
		LedgerIndex int64 `json:"ledger_index"`
	}

	err := g.call(ctx, xrplRequest{
		Method: "ledger",
		Params: []interface{}{map[string]interface{}{
			"ledger_index": "validated",
		}},
	}, &result)
	if err != nil {
		return 0, err
	}
	if result.Error != "" {
		return 0, result.resultError("ledger")
	}

	return result.LedgerIndex, nil
}

// call posts the request to the first reachable rippled server and decodes the
// "result" envelope into out.
func (g *XRPLGateway) call(ctx context.Context, req xrplRequest, out interface{}) error {
	body, err := json.Marshal(req)
	if err != nil {
		return cerr.Wrap(err, cerr.KindValidation, "failed to encode request")
	}

	var lastErr error

	for _, url := range g.urls {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return cerr.Wrap(err, cerr.KindValidation, "failed to build request")
		}
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := g.client.Do(httpReq)
		if err != nil {
			lastErr = classifyXRPLTransportError(err)
			continue
		}

		func() {
			defer resp.Body.Close()

			if resp.StatusCode == http.StatusTooManyRequests {
				throttled := cerr.New(cerr.KindRateLimit, "rippled throttled request")
				if seconds, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && seconds > 0 {
					throttled = throttled.WithRetryAfter(time.Duration(seconds) * time.Second)
				}
				lastErr = throttled
				return
			}
			if resp.StatusCode != http.StatusOK {
				lastErr = cerr.Newf(cerr.KindNetwork, "rippled returned status %d", resp.StatusCode)
				return
			}

			var envelope struct {
				Result json.RawMessage `json:"result"`
			}

			raw, err := io.ReadAll(resp.Body)
			if err != nil {
				lastErr = cerr.Wrap(err, cerr.KindNetwork, "failed to read response")
				return
			}

			if err := json.Unmarshal(raw, &envelope); err != nil {
				lastErr = cerr.Wrap(err, cerr.KindNetwork, "failed to decode response envelope")
				return
			}

			if err := json.Unmarshal(envelope.Result, out); err != nil {
				lastErr = cerr.Wrap(err, cerr.KindNetwork, "failed to decode result")
				return
			}

			lastErr = nil
		}()

		if lastErr == nil {
			return nil
		}
	}

	return lastErr
}

func classifyXRPLTransportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return cerr.Wrap(err, cerr.KindNetwork, "rippled request timed out")
	}

	return cerr.Wrap(err, cerr.KindNetwork, "rippled unreachable")
}
