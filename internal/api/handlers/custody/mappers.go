package custody

import (
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"

	"github.com/tesserex/custody/internal/custody/aggregate"
	"github.com/tesserex/custody/internal/models"
	"github.com/tesserex/custody/internal/types"
)

func withdrawalItem(w *models.Withdrawal) *types.WithdrawalItem {
	item := &types.WithdrawalItem{
		ID:        (*strfmt.UUID4)(swag.String(w.ID)),
		UserID:    (*strfmt.UUID4)(swag.String(w.UserID)),
		ChainID:   swag.Int64(int64(w.ChainID)),
		ToAddress: swag.String(w.ToAddress),
		Amount:    swag.String(w.Amount),
		Status:    swag.String(w.Status),
		Attempts:  int64(w.Attempts),
		Fee:       w.Fee.String,
		TxHash:    w.TxHash.String,
		CreatedAt: (*strfmt.DateTime)(&w.CreatedAt),
	}

	if w.DestinationTag.Valid {
		item.DestinationTag = swag.Int64(w.DestinationTag.Int64)
	}

	return item
}

func depositItem(d *models.Deposit) *types.DepositItem {
	item := &types.DepositItem{
		ID:                    (*strfmt.UUID4)(swag.String(d.ID)),
		DepositAddressID:      (*strfmt.UUID4)(swag.String(d.DepositAddressID)),
		ChainID:               swag.Int64(int64(d.ChainID)),
		TxHash:                swag.String(d.TxHash),
		Amount:                swag.String(d.Amount),
		Confirmations:         int64(d.Confirmations),
		RequiredConfirmations: int64(d.RequiredConfirmations),
		Status:                swag.String(d.Status),
		FirstSeenAt:           (*strfmt.DateTime)(&d.FirstSeenAt),
	}

	if d.BlockNumber.Valid {
		item.BlockNumber = swag.Int64(d.BlockNumber.Int64)
	}

	if d.DestinationTag.Valid {
		item.DestinationTag = swag.Int64(d.DestinationTag.Int64)
	}

	return item
}

func depositAddressItem(a *models.DepositAddress) *types.DepositAddressItem {
	item := &types.DepositAddressItem{
		ID:       (*strfmt.UUID4)(swag.String(a.ID)),
		UserID:   (*strfmt.UUID4)(swag.String(a.UserID)),
		ChainID:  swag.Int64(int64(a.ChainID)),
		Address:  swag.String(a.Address),
		IsActive: a.IsActive,
	}

	if a.DestinationTag.Valid {
		item.DestinationTag = swag.Int64(a.DestinationTag.Int64)
	}

	return item
}

func hotWalletItem(h *models.HotWallet) *types.HotWalletItem {
	return &types.HotWalletItem{
		ID:         (*strfmt.UUID4)(swag.String(h.ID)),
		ChainID:    swag.Int64(int64(h.ChainID)),
		Address:    swag.String(h.Address),
		MinBalance: swag.String(h.MinBalance),
		IsActive:   h.IsActive,
	}
}

func sweepJobItem(j *models.SweepJob) *types.SweepJobItem {
	return &types.SweepJobItem{
		ID:            (*strfmt.UUID4)(swag.String(j.ID)),
		DepositID:     (*strfmt.UUID4)(swag.String(j.DepositID)),
		ChainID:       swag.Int64(int64(j.ChainID)),
		Amount:        swag.String(j.Amount),
		GasCost:       j.GasCost.String,
		Status:        swag.String(j.Status),
		TxHash:        j.TxHash.String,
		FailureReason: j.FailureReason.String,
		Attempts:      int64(j.Attempts),
		CreatedAt:     (*strfmt.DateTime)(&j.CreatedAt),
	}
}

func chainItem(c *models.Chain) *types.ChainItem {
	return &types.ChainItem{
		ChainID:               swag.Int64(int64(c.ChainID)),
		Name:                  swag.String(c.Name),
		ChainType:             swag.String(c.ChainType),
		NativeSymbol:          swag.String(c.NativeSymbol),
		NativeDecimals:        int64(c.NativeDecimals),
		RequiredConfirmations: int64(c.RequiredConfirmations),
		IsActive:              c.IsActive,
	}
}

func aggregatedBalanceItem(b aggregate.AddressBalance) *types.AggregatedBalanceItem {
	return &types.AggregatedBalanceItem{
		DepositAddressID: (*strfmt.UUID4)(swag.String(b.DepositAddressID)),
		UserID:           (*strfmt.UUID4)(swag.String(b.UserID)),
		ChainID:          swag.Int64(int64(b.ChainID)),
		Address:          swag.String(b.Address),
		Balance:          swag.String(b.Balance),
		Error:            b.Err,
	}
}
