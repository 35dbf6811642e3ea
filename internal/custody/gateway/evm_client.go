package gateway

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// evmClientPool wraps a set of ethclient connections to the same chain and
// fails over to the next node when the current one stops answering.
type evmClientPool struct {
	urls    []string
	clients []*ethclient.Client
	mu      sync.RWMutex
	current int
}

func newEVMClientPool(urls []string) (*evmClientPool, error) {
	if len(urls) == 0 {
		return nil, errors.New("at least one RPC URL is required")
	}

	clients := make([]*ethclient.Client, 0, len(urls))
	for _, url := range urls {
		client, err := ethclient.Dial(url)
		if err != nil {
			log.Warn().
				Str("url", url).
				Err(err).
				Msg("Failed to connect to RPC node, will retry on use")
			clients = append(clients, nil)
			continue
		}
		clients = append(clients, client)
	}

	if allNil(clients) {
		return nil, errors.New("failed to connect to any RPC node")
	}

	return &evmClientPool{
		urls:    urls,
		clients: clients,
		current: 0,
	}, nil
}

func allNil(clients []*ethclient.Client) bool {
	for _, client := range clients {
		if client != nil {
			return false
		}
	}
	return true
}

func (p *evmClientPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, client := range p.clients {
		if client != nil {
			client.Close()
		}
	}
}

func (p *evmClientPool) BalanceAt(ctx context.Context, address common.Address) (*big.Int, error) {
	client, err := p.getClient(ctx)
	if err != nil {
		return nil, err
	}

	balance, err := client.BalanceAt(ctx, address, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get balance")
	}

	return balance, nil
}

func (p *evmClientPool) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	client, err := p.getClient(ctx)
	if err != nil {
		return nil, err
	}

	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest gas price")
	}

	return gasPrice, nil
}

func (p *evmClientPool) BlockNumber(ctx context.Context) (uint64, error) {
	client, err := p.getClient(ctx)
	if err != nil {
		return 0, err
	}

	blockNumber, err := client.BlockNumber(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get latest block number")
	}

	return blockNumber, nil
}

func (p *evmClientPool) PendingNonceAt(ctx context.Context, address common.Address) (uint64, error) {
	client, err := p.getClient(ctx)
	if err != nil {
		return 0, err
	}

	nonce, err := client.PendingNonceAt(ctx, address)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get pending nonce")
	}

	return nonce, nil
}

func (p *evmClientPool) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	client, err := p.getClient(ctx)
	if err != nil {
		return nil, err
	}

	return client.TransactionReceipt(ctx, txHash)
}

func (p *evmClientPool) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	client, err := p.getClient(ctx)
	if err != nil {
		return err
	}

	return client.SendTransaction(ctx, tx)
}

// getClient returns a healthy client, reconnecting and rotating as needed.
func (p *evmClientPool) getClient(ctx context.Context) (*ethclient.Client, error) {
	p.mu.RLock()
	start := p.current
	size := len(p.clients)
	p.mu.RUnlock()

	for i := 0; i < size; i++ {
		idx := (start + i) % size

		p.mu.RLock()
		client := p.clients[idx]
		p.mu.RUnlock()

		if client != nil {
			if _, err := client.ChainID(ctx); err == nil {
				p.mu.Lock()
				p.current = idx
				p.mu.Unlock()
				return client, nil
			}

			log.Warn().
				Str("url", p.urls[idx]).
				Msg("RPC client health check failed, trying next node")
			continue
		}

		reconnected, err := ethclient.Dial(p.urls[idx])
		if err != nil {
			continue
		}

		p.mu.Lock()
		p.clients[idx] = reconnected
		p.current = idx
		p.mu.Unlock()

		return reconnected, nil
	}

	return nil, errors.New("all RPC clients are unavailable")
}
