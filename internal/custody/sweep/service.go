package sweep

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tesserex/custody/internal/custody/chains"
	"github.com/tesserex/custody/internal/custody/signer"
	"github.com/tesserex/custody/internal/metrics"
)

// Service moves funds out of per-user deposit addresses into the active admin
// wallet of each chain. Planning and execution run as separate cycles so a
// slow RPC node cannot starve job creation.
type Service interface {
	// RunPlanCycle creates sweep jobs for confirmed deposits that have none.
	RunPlanCycle(ctx context.Context) error

	// RunExecuteCycle signs and broadcasts planned jobs and tracks
	// broadcasted ones until they confirm.
	RunExecuteCycle(ctx context.Context) error

	// Start launches the planner and executor workers until ctx is cancelled.
	Start(ctx context.Context, planInterval, executeInterval time.Duration)
}

type service struct {
	db            *sql.DB
	chainService  chains.Service
	signerService signer.Service
	metrics       *metrics.Service

	// inFlight guards each job against concurrent execution cycles.
	inFlight sync.Map
}

//nolint:ireturn
func NewService(db *sql.DB, chainService chains.Service, signerService signer.Service, metricsService *metrics.Service) Service {
	return &service{
		db:            db,
		chainService:  chainService,
		signerService: signerService,
		metrics:       metricsService,
	}
}

func (s *service) Start(ctx context.Context, planInterval, executeInterval time.Duration) {
	go func() {
		log.Info().Dur("interval", planInterval).Msg("Starting sweep planner")

		ticker := time.NewTicker(planInterval)
		defer ticker.Stop()

		for {
			if err := s.RunPlanCycle(ctx); err != nil && ctx.Err() == nil {
				log.Error().Err(err).Msg("Sweep plan cycle failed")
			}

			select {
			case <-ctx.Done():
				log.Info().Msg("Stopping sweep planner")
				return
			case <-ticker.C:
			}
		}
	}()

	go func() {
		log.Info().Dur("interval", executeInterval).Msg("Starting sweep executor")

		ticker := time.NewTicker(executeInterval)
		defer ticker.Stop()

		for {
			if err := s.RunExecuteCycle(ctx); err != nil && ctx.Err() == nil {
				log.Error().Err(err).Msg("Sweep execute cycle failed")
			}

			select {
			case <-ctx.Done():
				log.Info().Msg("Stopping sweep executor")
				return
			case <-ticker.C:
			}
		}
	}()
}
