package withdraw

import (
	"context"
	"database/sql"
	"math/big"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/tesserex/custody/internal/custody/chains"
	"github.com/tesserex/custody/internal/custody/hotwallet"
	"github.com/tesserex/custody/internal/custody/keycustody"
	"github.com/tesserex/custody/internal/custody/signer"
	"github.com/tesserex/custody/internal/metrics"
	"github.com/tesserex/custody/internal/models"
	"github.com/tesserex/custody/internal/util"
)

var (
	// ErrInvalidDestination is returned when the destination address does not
	// parse for the target chain.
	ErrInvalidDestination = errors.New("invalid destination address")

	// ErrInvalidDestinationTag is returned when a destination tag is out of
	// range or supplied on a chain that has none.
	ErrInvalidDestinationTag = errors.New("invalid destination tag")

	// ErrInvalidAmount is returned when the amount is not a positive base-unit
	// integer.
	ErrInvalidAmount = errors.New("invalid withdrawal amount")

	// ErrInsufficientBalance is returned when the user's available balance
	// does not cover the withdrawal.
	ErrInsufficientBalance = errors.New("insufficient available balance")

	// ErrAmountAboveLimit is returned when the amount exceeds the chain's
	// per-withdrawal cap.
	ErrAmountAboveLimit = errors.New("amount exceeds single withdrawal limit")
)

// maxDestinationTag is the largest destination tag XRPL can encode.
const maxDestinationTag = int64(^uint32(0))

// CreateRequest describes a user withdrawal to an external address.
type CreateRequest struct {
	UserID         string
	ChainID        int
	ToAddress      string
	DestinationTag null.Int64
	Amount         string // base units
}

// Service takes withdrawals from user request to on-chain settlement.
type Service interface {
	// CreateWithdrawal validates the request, freezes the amount from the
	// user's available balance and enqueues a pending withdrawal.
	CreateWithdrawal(ctx context.Context, req CreateRequest) (*models.Withdrawal, error)

	// GetWithdrawal returns a single withdrawal by id.
	GetWithdrawal(ctx context.Context, id string) (*models.Withdrawal, error)

	// GetUserWithdrawals lists a user's withdrawals, newest first.
	GetUserWithdrawals(ctx context.Context, userID string) (models.WithdrawalSlice, error)

	// ProcessWithdrawals signs and broadcasts all pending withdrawals.
	ProcessWithdrawals(ctx context.Context) error

	// ProcessWithdrawalConfirmations settles broadcasted withdrawals whose
	// transactions have reached finality.
	ProcessWithdrawalConfirmations(ctx context.Context) error

	// GetStatistics reports withdrawal counts and volume per status.
	GetStatistics(ctx context.Context) *Statistics

	// Start launches the withdrawal workers until ctx is cancelled.
	Start(ctx context.Context, interval time.Duration)
}

type Config struct {
	// RetryAttempts bounds how many sign-and-broadcast cycles a withdrawal
	// gets per processing pass before being parked for the next pass.
	RetryAttempts int

	// RetryDelay is the pause between those cycles.
	RetryDelay time.Duration
}

type service struct {
	config           Config
	db               *sql.DB
	chainService     chains.Service
	hotWalletService hotwallet.Service
	signerService    signer.Service
	metrics          *metrics.Service
}

//nolint:ireturn
func NewService(config Config, db *sql.DB, chainService chains.Service, hotWalletService hotwallet.Service, signerService signer.Service, metricsService *metrics.Service) Service {
	if config.RetryAttempts < 1 {
		config.RetryAttempts = 1
	}

	return &service{
		config:           config,
		db:               db,
		chainService:     chainService,
		hotWalletService: hotWalletService,
		signerService:    signerService,
		metrics:          metricsService,
	}
}

func (s *service) CreateWithdrawal(ctx context.Context, req CreateRequest) (*models.Withdrawal, error) {
	log := util.LogFromContext(ctx)

	chain, err := s.chainService.GetActiveChain(ctx, req.ChainID)
	if err != nil {
		return nil, err
	}

	if err := validateDestination(chain.ChainType, req.ToAddress, req.DestinationTag); err != nil {
		return nil, err
	}

	amount, ok := new(big.Int).SetString(req.Amount, 10)
	if !ok || amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}

	// per-request cap, checked before any funds are touched; '0' means no cap
	if maxAmount, ok := new(big.Int).SetString(chain.MaxWithdrawAmount, 10); ok && maxAmount.Sign() > 0 && amount.Cmp(maxAmount) > 0 {
		return nil, ErrAmountAboveLimit
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	balance, err := models.UserBalances(
		models.UserBalanceWhere.UserID.EQ(req.UserID),
		models.UserBalanceWhere.ChainID.EQ(req.ChainID),
		qm.For("UPDATE"),
	).One(ctx, tx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInsufficientBalance
		}
		return nil, errors.Wrap(err, "failed to lock user balance")
	}

	available, ok := new(big.Int).SetString(balance.Available, 10)
	if !ok {
		return nil, errors.New("user balance row is malformed")
	}

	if available.Cmp(amount) < 0 {
		return nil, ErrInsufficientBalance
	}

	frozen, ok := new(big.Int).SetString(balance.Frozen, 10)
	if !ok {
		return nil, errors.New("user balance row is malformed")
	}

	balance.Available = new(big.Int).Sub(available, amount).String()
	balance.Frozen = new(big.Int).Add(frozen, amount).String()

	if _, err := balance.Update(ctx, tx, boil.Whitelist(
		models.UserBalanceColumns.Available,
		models.UserBalanceColumns.Frozen,
		models.UserBalanceColumns.UpdatedAt,
	)); err != nil {
		return nil, errors.Wrap(err, "failed to freeze user balance")
	}

	withdrawal := &models.Withdrawal{
		ID:             uuid.New().String(),
		UserID:         req.UserID,
		ChainID:        req.ChainID,
		ToAddress:      req.ToAddress,
		DestinationTag: req.DestinationTag,
		Amount:         req.Amount,
		Status:         models.WithdrawalStatusPending,
	}

	if err := withdrawal.Insert(ctx, tx, boil.Infer()); err != nil {
		return nil, errors.Wrap(err, "failed to insert withdrawal")
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit transaction")
	}

	s.metrics.WithdrawalsCreated.Inc()

	log.Info().
		Str("withdrawal_id", withdrawal.ID).
		Str("user_id", req.UserID).
		Int("chain_id", req.ChainID).
		Str("amount", req.Amount).
		Msg("Created withdrawal")

	return withdrawal, nil
}

// validateDestination checks the address shape per chain family. Destination
// tag 0 is a valid tag on XRPL and is distinct from no tag at all.
func validateDestination(chainType, toAddress string, destinationTag null.Int64) error {
	switch chainType {
	case models.ChainTypeEVM:
		if !common.IsHexAddress(toAddress) {
			return ErrInvalidDestination
		}
		if destinationTag.Valid {
			return ErrInvalidDestinationTag
		}
	case models.ChainTypeXRPL:
		if _, err := keycustody.DecodeXRPLAccountID(toAddress); err != nil {
			return ErrInvalidDestination
		}
		if destinationTag.Valid && (destinationTag.Int64 < 0 || destinationTag.Int64 > maxDestinationTag) {
			return ErrInvalidDestinationTag
		}
	default:
		return errors.Errorf("unsupported chain type %q", chainType)
	}

	return nil
}

func (s *service) GetWithdrawal(ctx context.Context, id string) (*models.Withdrawal, error) {
	withdrawal, err := models.FindWithdrawal(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, errors.Wrap(err, "failed to load withdrawal")
	}

	return withdrawal, nil
}

func (s *service) GetUserWithdrawals(ctx context.Context, userID string) (models.WithdrawalSlice, error) {
	withdrawals, err := models.Withdrawals(
		models.WithdrawalWhere.UserID.EQ(userID),
		qm.OrderBy(models.WithdrawalColumns.CreatedAt+" DESC"),
	).All(ctx, s.db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list withdrawals")
	}

	return withdrawals, nil
}

// Statistics summarizes withdrawal throughput and hot wallet funding for
// operators.
type Statistics struct {
	TotalCount           int64              `json:"total_count"`
	PendingCount         int64              `json:"pending_count"`
	ProcessingCount      int64              `json:"processing_count"`
	BroadcastedCount     int64              `json:"broadcasted_count"`
	ConfirmedCount       int64              `json:"confirmed_count"`
	FailedCount          int64              `json:"failed_count"`
	PendingAmount        string             `json:"pending_amount"`
	TotalConfirmedAmount string             `json:"total_confirmed_amount"`
	HotWalletBalances    []HotWalletBalance `json:"hot_wallet_balances"`
}

// HotWalletBalance is a point-in-time on-chain balance of an active hot
// wallet, in base units.
type HotWalletBalance struct {
	ChainID int    `json:"chain_id"`
	Address string `json:"address"`
	Balance string `json:"balance"`
}

// GetStatistics never fails the caller: a statistics endpoint is not worth a
// 500, so any query error yields zero values.
func (s *service) GetStatistics(ctx context.Context) *Statistics {
	log := util.LogFromContext(ctx)

	stats := &Statistics{
		PendingAmount:        "0",
		TotalConfirmedAmount: "0",
		HotWalletBalances:    []HotWalletBalance{},
	}

	var rows []struct {
		Status string `boil:"status"`
		Count  int64  `boil:"count"`
	}

	err := queries.Raw(
		`SELECT status, COUNT(*) AS count FROM withdrawals GROUP BY status`,
	).Bind(ctx, s.db, &rows)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to compute withdrawal statistics")
		return stats
	}

	for _, row := range rows {
		stats.TotalCount += row.Count

		switch row.Status {
		case models.WithdrawalStatusPending:
			stats.PendingCount = row.Count
		case models.WithdrawalStatusProcessing:
			stats.ProcessingCount = row.Count
		case models.WithdrawalStatusBroadcasted:
			stats.BroadcastedCount = row.Count
		case models.WithdrawalStatusConfirmed:
			stats.ConfirmedCount = row.Count
		case models.WithdrawalStatusFailed:
			stats.FailedCount = row.Count
		}
	}

	var sums []struct {
		Status string `boil:"status"`
		Total  string `boil:"total"`
	}

	err = queries.Raw(
		`SELECT status, COALESCE(SUM(amount::numeric), 0)::text AS total
		 FROM withdrawals WHERE status IN ($1, $2) GROUP BY status`,
		models.WithdrawalStatusPending,
		models.WithdrawalStatusConfirmed,
	).Bind(ctx, s.db, &sums)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to compute withdrawal volume")
		return stats
	}

	for _, row := range sums {
		switch row.Status {
		case models.WithdrawalStatusPending:
			stats.PendingAmount = row.Total
		case models.WithdrawalStatusConfirmed:
			stats.TotalConfirmedAmount = row.Total
		}
	}

	stats.HotWalletBalances = s.collectHotWalletBalances(ctx)

	return stats
}

// collectHotWalletBalances samples the on-chain balance of every active hot
// wallet. A wallet whose balance cannot be fetched reports zero rather than
// failing the statistics call.
func (s *service) collectHotWalletBalances(ctx context.Context) []HotWalletBalance {
	log := util.LogFromContext(ctx)

	balances := []HotWalletBalance{}

	wallets, err := models.HotWallets(
		models.HotWalletWhere.IsActive.EQ(true),
		qm.OrderBy(models.HotWalletColumns.ChainID+" ASC, "+models.HotWalletColumns.CreatedAt+" ASC"),
	).All(ctx, s.db)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load hot wallets for statistics")
		return balances
	}

	for _, wallet := range wallets {
		entry := HotWalletBalance{
			ChainID: wallet.ChainID,
			Address: wallet.Address,
			Balance: "0",
		}

		gw, err := s.chainService.GatewayFor(ctx, wallet.ChainID)
		if err != nil {
			log.Warn().Err(err).Int("chain_id", wallet.ChainID).Msg("Failed to resolve gateway for statistics")
			balances = append(balances, entry)
			continue
		}

		balance, err := gw.GetBalance(ctx, wallet.Address)
		if err != nil {
			log.Warn().Err(err).Str("address", wallet.Address).Msg("Failed to query hot wallet balance")
			balances = append(balances, entry)
			continue
		}

		entry.Balance = balance.String()
		balances = append(balances, entry)
	}

	return balances
}
