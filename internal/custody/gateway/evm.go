package gateway

import (
	"context"
	"math/big"
	"net"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"

	"github.com/tesserex/custody/internal/custody/cerr"
)

// EVMGateway talks to an EVM chain through a failover pool of JSON-RPC nodes.
type EVMGateway struct {
	pool    *evmClientPool
	retrier *retrier
}

var _ Gateway = (*EVMGateway)(nil)

func NewEVM(rpcURLs []string, retry RetryConfig, maxRequestsPerSec float64) (*EVMGateway, error) {
	pool, err := newEVMClientPool(rpcURLs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize EVM client pool")
	}

	return &EVMGateway{
		pool:    pool,
		retrier: newRetrier(retry, maxRequestsPerSec),
	}, nil
}

func (g *EVMGateway) Close() {
	g.pool.Close()
}

func (g *EVMGateway) GetBalance(ctx context.Context, address string) (*big.Int, error) {
	if !common.IsHexAddress(address) {
		return nil, cerr.Newf(cerr.KindValidation, "invalid EVM address %q", address)
	}

	var balance *big.Int

	err := g.retrier.do(ctx, "evm.GetBalance", func(ctx context.Context) error {
		b, err := g.pool.BalanceAt(ctx, common.HexToAddress(address))
		if err != nil {
			return classifyEVMError(err, cerr.KindNetwork)
		}

		balance = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	return balance, nil
}

func (g *EVMGateway) SuggestFeeRate(ctx context.Context) (*big.Int, error) {
	var feeRate *big.Int

	err := g.retrier.do(ctx, "evm.SuggestFeeRate", func(ctx context.Context) error {
		price, err := g.pool.SuggestGasPrice(ctx)
		if err != nil {
			return classifyEVMError(err, cerr.KindNetwork)
		}

		feeRate = price
		return nil
	})
	if err != nil {
		return nil, err
	}

	return feeRate, nil
}

func (g *EVMGateway) GetAccountSequence(ctx context.Context, address string) (uint64, error) {
	if !common.IsHexAddress(address) {
		return 0, cerr.Newf(cerr.KindValidation, "invalid EVM address %q", address)
	}

	var nonce uint64

	err := g.retrier.do(ctx, "evm.GetAccountSequence", func(ctx context.Context) error {
		n, err := g.pool.PendingNonceAt(ctx, common.HexToAddress(address))
		if err != nil {
			return classifyEVMError(err, cerr.KindNetwork)
		}

		nonce = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	return nonce, nil
}

func (g *EVMGateway) GetTransactionMeta(ctx context.Context, txHash string) (*TransactionMeta, error) {
	var meta *TransactionMeta

	err := g.retrier.do(ctx, "evm.GetTransactionMeta", func(ctx context.Context) error {
		receipt, err := g.pool.TransactionReceipt(ctx, common.HexToHash(txHash))
		if err != nil {
			if errors.Is(err, ethereum.NotFound) {
				meta = &TransactionMeta{Found: false}
				return nil
			}

			return classifyEVMError(err, cerr.KindNetwork)
		}

		head, err := g.pool.BlockNumber(ctx)
		if err != nil {
			return classifyEVMError(err, cerr.KindNetwork)
		}

		blockNumber := receipt.BlockNumber.Int64()

		confirmations := int64(0)
		if head >= uint64(blockNumber) { //nolint:gosec
			confirmations = int64(head) - blockNumber + 1 //nolint:gosec
		}

		meta = &TransactionMeta{
			Found:         true,
			Included:      true,
			BlockNumber:   blockNumber,
			Confirmations: confirmations,
			Succeeded:     receipt.Status == types.ReceiptStatusSuccessful,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return meta, nil
}

func (g *EVMGateway) Broadcast(ctx context.Context, rawTx []byte) (string, error) {
	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(rawTx); err != nil {
		return "", cerr.Wrap(err, cerr.KindValidation, "failed to decode raw transaction")
	}

	err := g.retrier.do(ctx, "evm.Broadcast", func(ctx context.Context) error {
		if err := g.pool.SendTransaction(ctx, tx); err != nil {
			// "already known" means a previous attempt got through
			if strings.Contains(err.Error(), "already known") {
				return nil
			}

			return classifyEVMError(err, cerr.KindBroadcast)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return tx.Hash().Hex(), nil
}

// classifyEVMError maps go-ethereum client failures onto the custody error
// taxonomy, falling back to the given kind for unrecognized failures.
func classifyEVMError(err error, fallback cerr.Kind) error {
	if err == nil {
		return nil
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return cerr.Wrap(err, cerr.KindNetwork, "EVM node unreachable")
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "too many requests") || strings.Contains(msg, "429"):
		return cerr.Wrap(err, cerr.KindRateLimit, "EVM node throttled request")
	case strings.Contains(msg, "insufficient funds"):
		return cerr.Wrap(err, cerr.KindInsufficientFunds, "account cannot cover value and gas")
	case strings.Contains(msg, "connection refused") || strings.Contains(msg, "eof") || strings.Contains(msg, "timeout"):
		return cerr.Wrap(err, cerr.KindNetwork, "EVM node unreachable")
	default:
		return cerr.Wrap(err, fallback, "EVM call failed")
	}
}
