package custody

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"

	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/api/httperrors"
	"github.com/tesserex/custody/internal/custody/confirm"
	"github.com/tesserex/custody/internal/types"
	"github.com/tesserex/custody/internal/util"
)

func PostTransferWebhookRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1.POST("/webhooks/transfer", postTransferWebhookHandler(s))
}

// postTransferWebhookHandler receives inbound transfer notifications from the
// chain nodes. Transfers to unknown addresses are rejected, everything else
// becomes a pending deposit. Replays of the same transfer return the existing
// deposit, nodes may deliver at-least-once.
func postTransferWebhookHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostTransferWebhookPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		depositAddress, err := s.Address.FindByAddress(ctx, int(*body.ChainID), *body.Address, null.Int64FromPtr(body.DestinationTag))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				log.Debug().Str("address", *body.Address).Msg("Transfer webhook for unknown address")
				return httperrors.ErrNotFoundDepositAddress
			}

			return err
		}

		deposit, err := s.Confirm.IngestDeposit(ctx, confirm.IngestRequest{
			ChainID:          int(*body.ChainID),
			DepositAddressID: depositAddress.ID,
			TxHash:           *body.TxHash,
			Amount:           *body.Amount,
			BlockNumber:      null.Int64FromPtr(body.BlockNumber),
			DestinationTag:   null.Int64FromPtr(body.DestinationTag),
		})
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.DepositResponse{
			Deposit: depositItem(deposit),
		})
	}
}
