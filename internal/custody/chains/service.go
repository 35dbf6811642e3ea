package chains

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/tesserex/custody/internal/custody/gateway"
	"github.com/tesserex/custody/internal/models"
)

var (
	ErrChainNotFound = errors.New("chain not found")
	ErrChainInactive = errors.New("chain is not active")
)

// Config carries the gateway construction knobs shared by all chains.
type Config struct {
	CacheExpiry       time.Duration
	RequestTimeout    time.Duration
	MaxRequestsPerSec float64
	Retry             gateway.RetryConfig
}

// Service is the chain registry. Chain rows change rarely, so reads go
// through a short-lived cache and gateways are built once per chain.
type Service interface {
	// GetChain returns the chain row for chainID, active or not.
	GetChain(ctx context.Context, chainID int) (*models.Chain, error)

	// GetActiveChain returns the chain row, failing when it is disabled.
	GetActiveChain(ctx context.Context, chainID int) (*models.Chain, error)

	// GetActiveChains returns all enabled chains ordered by chain ID.
	GetActiveChains(ctx context.Context) ([]*models.Chain, error)

	// ListChains returns every configured chain.
	ListChains(ctx context.Context) ([]*models.Chain, error)

	// GatewayFor returns the shared gateway for the chain, building it on
	// first use.
	GatewayFor(ctx context.Context, chainID int) (gateway.Gateway, error)

	// InvalidateChain drops the cached row and gateway for chainID, to be
	// called after the chain row is updated.
	InvalidateChain(chainID int)

	// Close tears down all built gateways.
	Close()
}

type service struct {
	db    *sql.DB
	cfg   Config
	cache *cache.Cache

	mu       sync.Mutex
	gateways map[int]gateway.Gateway
}

//nolint:ireturn
func NewService(db *sql.DB, cfg Config) Service {
	return &service{
		db:       db,
		cfg:      cfg,
		cache:    cache.New(cfg.CacheExpiry, 2*cfg.CacheExpiry),
		gateways: map[int]gateway.Gateway{},
	}
}

func (s *service) GetChain(ctx context.Context, chainID int) (*models.Chain, error) {
	key := chainCacheKey(chainID)

	if cached, ok := s.cache.Get(key); ok {
		return cached.(*models.Chain), nil
	}

	chain, err := models.Chains(
		models.ChainWhere.ChainID.EQ(chainID),
	).One(ctx, s.db)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChainNotFound
		}
		return nil, errors.Wrap(err, "failed to get chain")
	}

	s.cache.SetDefault(key, chain)

	return chain, nil
}

func (s *service) GetActiveChain(ctx context.Context, chainID int) (*models.Chain, error) {
	chain, err := s.GetChain(ctx, chainID)
	if err != nil {
		return nil, err
	}

	if !chain.IsActive {
		return nil, ErrChainInactive
	}

	return chain, nil
}

func (s *service) GetActiveChains(ctx context.Context) ([]*models.Chain, error) {
	chains, err := models.Chains(
		models.ChainWhere.IsActive.EQ(true),
		qm.OrderBy(models.ChainColumns.ChainID+" ASC"),
	).All(ctx, s.db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get active chains")
	}

	return chains, nil
}

func (s *service) ListChains(ctx context.Context) ([]*models.Chain, error) {
	chains, err := models.Chains(
		qm.OrderBy(models.ChainColumns.ChainID+" ASC"),
	).All(ctx, s.db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chains")
	}

	return chains, nil
}

//nolint:ireturn
func (s *service) GatewayFor(ctx context.Context, chainID int) (gateway.Gateway, error) {
	s.mu.Lock()
	if gw, ok := s.gateways[chainID]; ok {
		s.mu.Unlock()
		return gw, nil
	}
	s.mu.Unlock()

	chain, err := s.GetChain(ctx, chainID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gw, ok := s.gateways[chain.ChainID]; ok {
		return gw, nil
	}

	urls := ParseRPCURLs(chain.RPCUrls)
	if len(urls) == 0 {
		return nil, errors.Errorf("chain %d has no RPC URLs configured", chain.ChainID)
	}

	var gw gateway.Gateway

	switch chain.ChainType {
	case models.ChainTypeEVM:
		gw, err = gateway.NewEVM(urls, s.cfg.Retry, s.cfg.MaxRequestsPerSec)
	case models.ChainTypeXRPL:
		gw, err = gateway.NewXRPL(urls, s.cfg.Retry, s.cfg.MaxRequestsPerSec, s.cfg.RequestTimeout)
	default:
		return nil, errors.Errorf("unsupported chain type %q", chain.ChainType)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "failed to build gateway for chain %d", chain.ChainID)
	}

	s.gateways[chain.ChainID] = gw

	return gw, nil
}

func (s *service) InvalidateChain(chainID int) {
	s.cache.Delete(chainCacheKey(chainID))

	s.mu.Lock()
	defer s.mu.Unlock()

	if gw, ok := s.gateways[chainID]; ok {
		gw.Close()
		delete(s.gateways, chainID)
	}
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for chainID, gw := range s.gateways {
		gw.Close()
		delete(s.gateways, chainID)
	}
}

func chainCacheKey(chainID int) string {
	return fmt.Sprintf("chain:%d", chainID)
}

// ParseRPCURLs splits the comma separated rpc_urls column into clean entries.
func ParseRPCURLs(rpcURLs string) []string {
	if rpcURLs == "" {
		return nil
	}

	parts := strings.Split(rpcURLs, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}

	return result
}
