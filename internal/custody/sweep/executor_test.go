package sweep_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesserex/custody/internal/custody/cerr"
	"github.com/tesserex/custody/internal/custody/gateway"
	"github.com/tesserex/custody/internal/custody/keycustody"
	"github.com/tesserex/custody/internal/custody/signer"
	"github.com/tesserex/custody/internal/custody/sweep"
	"github.com/tesserex/custody/internal/data/fixtures"
	"github.com/tesserex/custody/internal/metrics"
	"github.com/tesserex/custody/internal/models"
	"github.com/tesserex/custody/internal/test"
)

// address at m/44'/60'/0'/0/0 for the test mnemonic
const derivedEVMAddress = "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"

// execGateway stubs the broadcast and confirmation sides of a chain node.
// Balance, fee and sequence lookups fail on purpose: executing a planned job
// must never need them.
type execGateway struct {
	mu           sync.Mutex
	meta         gateway.TransactionMeta
	broadcastErr error
	broadcasts   int
}

func (g *execGateway) GetBalance(_ context.Context, _ string) (*big.Int, error) {
	return nil, assert.AnError
}

func (g *execGateway) SuggestFeeRate(_ context.Context) (*big.Int, error) {
	return nil, assert.AnError
}

func (g *execGateway) GetAccountSequence(_ context.Context, _ string) (uint64, error) {
	return 0, assert.AnError
}

func (g *execGateway) GetTransactionMeta(_ context.Context, _ string) (*gateway.TransactionMeta, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	meta := g.meta
	return &meta, nil
}

func (g *execGateway) Broadcast(_ context.Context, _ []byte) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.broadcasts++
	if g.broadcastErr != nil {
		return "", g.broadcastErr
	}

	return "0xbroadcasted", nil
}

func (g *execGateway) Close() {}

func (g *execGateway) broadcastCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.broadcasts
}

func newSweepSigner(t *testing.T) signer.Service {
	t.Helper()

	vault := keycustody.NewVault()
	vault.SetMnemonic([]byte(test.TestMnemonic), "")
	t.Cleanup(vault.Clear)

	return signer.NewService(vault)
}

// insertSignableSweepSetup writes a deposit address whose address matches the
// key the vault derives, plus a confirmed deposit and a planned sweep job
// carrying an unsigned transaction for it.
func insertSignableSweepSetup(ctx context.Context, t *testing.T, db *sql.DB, f fixtures.FixtureMap) *models.SweepJob {
	t.Helper()

	depositAddress := &models.DepositAddress{
		ID:             uuid.New().String(),
		UserID:         f.User1,
		ChainID:        f.ChainSepolia.ChainID,
		Address:        derivedEVMAddress,
		DerivationPath: "m/44'/60'/0'/0/0",
		IsActive:       true,
	}
	require.NoError(t, depositAddress.Insert(ctx, db, boil.Infer()))

	deposit := &models.Deposit{
		ID:                    uuid.New().String(),
		DepositAddressID:      depositAddress.ID,
		ChainID:               f.ChainSepolia.ChainID,
		TxHash:                "0x" + uuid.New().String(),
		Amount:                "2000000000000000000",
		Confirmations:         12,
		RequiredConfirmations: 12,
		Status:                models.DepositStatusConfirmed,
		FirstSeenAt:           time.Now().Add(-time.Minute),
		ConfirmedAt:           null.TimeFrom(time.Now()),
	}
	require.NoError(t, deposit.Insert(ctx, db, boil.Infer()))

	unsigned, err := json.Marshal(map[string]interface{}{
		"from":     depositAddress.Address,
		"to":       f.AdminWalletSepolia.Address,
		"value":    "0x1bbfef6a6ff9c000",
		"gas":      "0x5208",
		"gasPrice": "0x4a817c800",
		"nonce":    "0x7",
		"chainId":  f.ChainSepolia.ChainID,
	})
	require.NoError(t, err)

	job := &models.SweepJob{
		ID:               uuid.New().String(),
		DepositID:        deposit.ID,
		DepositAddressID: depositAddress.ID,
		ChainID:          f.ChainSepolia.ChainID,
		Amount:           "1999580000000000000",
		GasLimit:         21000,
		FeeRate:          null.StringFrom("20000000000"),
		GasCost:          null.StringFrom("420000000000000"),
		Status:           models.SweepJobStatusPlanned,
		UnsignedTx:       null.StringFrom(string(unsigned)),
	}
	require.NoError(t, job.Insert(ctx, db, boil.Infer()))

	return job
}

func reloadSweepJob(ctx context.Context, t *testing.T, db *sql.DB, id string) *models.SweepJob {
	t.Helper()

	job, err := models.FindSweepJob(ctx, db, id)
	require.NoError(t, err)

	return job
}

func TestRunExecuteCycleSignsPersistedTransaction(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		gw := &execGateway{}
		chainService := &stubChains{chain: f.ChainSepolia, gw: gw}
		s := sweep.NewService(db, chainService, newSweepSigner(t), metrics.New(db))

		job := insertSignableSweepSetup(ctx, t, db, f)

		require.NoError(t, s.RunExecuteCycle(ctx))

		stored := reloadSweepJob(ctx, t, db, job.ID)
		assert.Equal(t, models.SweepJobStatusBroadcasted, stored.Status)
		assert.Equal(t, "0xbroadcasted", stored.TxHash.String)
		assert.True(t, stored.SignedTx.Valid)
		assert.NotEmpty(t, stored.SignedTx.String)
		assert.True(t, stored.BroadcastedAt.Valid)
		assert.Equal(t, 1, gw.broadcastCount())
	})
}

func TestRunExecuteCycleConfirmsValidatedTransaction(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		gw := &execGateway{meta: gateway.TransactionMeta{
			Found:         true,
			Included:      true,
			Confirmations: 12,
			Succeeded:     true,
		}}
		chainService := &stubChains{chain: f.ChainSepolia, gw: gw}
		s := sweep.NewService(db, chainService, newSweepSigner(t), metrics.New(db))

		job := insertSignableSweepSetup(ctx, t, db, f)

		require.NoError(t, s.RunExecuteCycle(ctx)) // broadcasts
		require.NoError(t, s.RunExecuteCycle(ctx)) // confirms

		stored := reloadSweepJob(ctx, t, db, job.ID)
		assert.Equal(t, models.SweepJobStatusConfirmed, stored.Status)
		assert.True(t, stored.ConfirmedAt.Valid)
	})
}

func TestRunExecuteCycleLeavesUnvalidatedTransactionAlone(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		// the node knows the hash but no validated ledger carries it yet
		gw := &execGateway{meta: gateway.TransactionMeta{Found: true}}
		chainService := &stubChains{chain: f.ChainSepolia, gw: gw}
		s := sweep.NewService(db, chainService, newSweepSigner(t), metrics.New(db))

		job := insertSignableSweepSetup(ctx, t, db, f)

		require.NoError(t, s.RunExecuteCycle(ctx)) // broadcasts
		require.NoError(t, s.RunExecuteCycle(ctx)) // polls, no outcome yet

		stored := reloadSweepJob(ctx, t, db, job.ID)
		assert.Equal(t, models.SweepJobStatusBroadcasted, stored.Status)
		assert.False(t, stored.FailureReason.Valid)
	})
}

func TestRunExecuteCycleFailsJobOnChainRevert(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		gw := &execGateway{meta: gateway.TransactionMeta{
			Found:         true,
			Included:      true,
			Confirmations: 1,
			Succeeded:     false,
		}}
		chainService := &stubChains{chain: f.ChainSepolia, gw: gw}
		s := sweep.NewService(db, chainService, newSweepSigner(t), metrics.New(db))

		job := insertSignableSweepSetup(ctx, t, db, f)

		require.NoError(t, s.RunExecuteCycle(ctx)) // broadcasts
		require.NoError(t, s.RunExecuteCycle(ctx)) // sees the revert

		stored := reloadSweepJob(ctx, t, db, job.ID)
		assert.Equal(t, models.SweepJobStatusFailed, stored.Status)
		assert.Equal(t, "sweep transaction failed on chain", stored.FailureReason.String)
	})
}

func TestRunExecuteCycleBoundsBroadcastRetries(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		gw := &execGateway{broadcastErr: cerr.New(cerr.KindNetwork, "node unreachable")}
		chainService := &stubChains{chain: f.ChainSepolia, gw: gw}
		s := sweep.NewService(db, chainService, newSweepSigner(t), metrics.New(db))

		job := insertSignableSweepSetup(ctx, t, db, f)

		// transient failures requeue the job until the attempt budget runs out
		var stored *models.SweepJob
		for i := 0; i < 10; i++ {
			_ = s.RunExecuteCycle(ctx)

			stored = reloadSweepJob(ctx, t, db, job.ID)
			if stored.Status == models.SweepJobStatusFailed {
				break
			}
			assert.Equal(t, models.SweepJobStatusPlanned, stored.Status)
		}

		assert.Equal(t, models.SweepJobStatusFailed, stored.Status)
		assert.Equal(t, "broadcast retries exhausted", stored.FailureReason.String)
		assert.Equal(t, 5, stored.Attempts)
		assert.Equal(t, 5, gw.broadcastCount())
	})
}

func TestRunExecuteCycleRejectedBroadcastFailsImmediately(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		gw := &execGateway{broadcastErr: cerr.New(cerr.KindValidation, "invalid transaction")}
		chainService := &stubChains{chain: f.ChainSepolia, gw: gw}
		s := sweep.NewService(db, chainService, newSweepSigner(t), metrics.New(db))

		job := insertSignableSweepSetup(ctx, t, db, f)

		require.NoError(t, s.RunExecuteCycle(ctx))

		stored := reloadSweepJob(ctx, t, db, job.ID)
		assert.Equal(t, models.SweepJobStatusFailed, stored.Status)
		assert.Equal(t, "broadcast rejected", stored.FailureReason.String)
		assert.Equal(t, 1, gw.broadcastCount())
	})
}
