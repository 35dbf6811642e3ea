package custody

import (
	"errors"
	"net/http"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"

	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/api/httperrors"
	"github.com/tesserex/custody/internal/custody/chains"
	"github.com/tesserex/custody/internal/custody/withdraw"
	"github.com/tesserex/custody/internal/types"
	"github.com/tesserex/custody/internal/util"
)

func PostWithdrawalRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1.POST("/withdrawals", postWithdrawalHandler(s))
}

// postWithdrawalHandler accepts a withdrawal request. On success the amount is
// already frozen from the user's balance and the withdrawal is queued for the
// processor, the response carries it in pending state.
func postWithdrawalHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostWithdrawalPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		withdrawal, err := s.Withdraw.CreateWithdrawal(ctx, withdraw.CreateRequest{
			UserID:         body.UserID.String(),
			ChainID:        int(*body.ChainID),
			ToAddress:      *body.ToAddress,
			DestinationTag: null.Int64FromPtr(body.DestinationTag),
			Amount:         *body.Amount,
		})
		if err != nil {
			switch {
			case errors.Is(err, chains.ErrChainNotFound), errors.Is(err, chains.ErrChainInactive):
				return httperrors.ErrNotFoundChain
			case errors.Is(err, withdraw.ErrInvalidAmount):
				return httperrors.ErrBadRequestAmount
			case errors.Is(err, withdraw.ErrAmountAboveLimit):
				return httperrors.ErrBadRequestLimit
			case errors.Is(err, withdraw.ErrInvalidDestination):
				return httperrors.ErrBadRequestAddress
			case errors.Is(err, withdraw.ErrInvalidDestinationTag):
				return httperrors.ErrBadRequestDestTag
			case errors.Is(err, withdraw.ErrInsufficientBalance):
				return httperrors.ErrConflictBalance
			default:
				log.Error().Err(err).Msg("Failed to create withdrawal")
				return err
			}
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.WithdrawalResponse{
			Withdrawal: withdrawalItem(withdrawal),
		})
	}
}
