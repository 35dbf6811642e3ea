package custody

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/api/httperrors"
	"github.com/tesserex/custody/internal/custody/address"
	"github.com/tesserex/custody/internal/custody/chains"
	"github.com/tesserex/custody/internal/types"
	"github.com/tesserex/custody/internal/util"
)

func PostDepositAddressRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1.POST("/deposit-addresses", postDepositAddressHandler(s))
}

// postDepositAddressHandler allocates a fresh deposit address for the user
// and registers it on the node-side watch list so inbound transfers reach the
// webhook.
func postDepositAddressHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostDepositAddressPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		depositAddress, err := s.Address.AllocateAddress(ctx, body.UserID.String(), int(*body.ChainID))
		if err != nil {
			switch {
			case errors.Is(err, chains.ErrChainNotFound), errors.Is(err, chains.ErrChainInactive):
				return httperrors.ErrNotFoundChain
			case errors.Is(err, address.ErrVaultLocked):
				return httperrors.ErrServiceUnavailableKeystore
			default:
				log.Error().Err(err).Msg("Failed to allocate deposit address")
				return err
			}
		}

		if _, err := s.Subscribe.EnsureSubscription(ctx, depositAddress.ChainID, depositAddress.Address); err != nil {
			// the address row exists either way, EnsureSubscription is
			// idempotent and can be replayed
			log.Warn().Err(err).Str("address", depositAddress.Address).Msg("Failed to subscribe deposit address")
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.DepositAddressResponse{
			DepositAddress: depositAddressItem(depositAddress),
		})
	}
}
