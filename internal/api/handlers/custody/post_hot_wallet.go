package custody

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/api/httperrors"
	"github.com/tesserex/custody/internal/custody/chains"
	"github.com/tesserex/custody/internal/custody/hotwallet"
	"github.com/tesserex/custody/internal/types"
	"github.com/tesserex/custody/internal/util"
)

func PostHotWalletRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1.POST("/hot-wallets", postHotWalletHandler(s))
}

func postHotWalletHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostHotWalletPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		wallet, err := s.HotWallet.CreateHotWallet(ctx, int(*body.ChainID), *body.MinBalance)
		if err != nil {
			switch {
			case errors.Is(err, chains.ErrChainNotFound), errors.Is(err, chains.ErrChainInactive):
				return httperrors.ErrNotFoundChain
			case errors.Is(err, hotwallet.ErrVaultLocked):
				return httperrors.ErrServiceUnavailableKeystore
			default:
				log.Error().Err(err).Msg("Failed to create hot wallet")
				return err
			}
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.HotWalletResponse{
			HotWallet: hotWalletItem(wallet),
		})
	}
}
