package custody

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/types"
	"github.com/tesserex/custody/internal/util"
)

func GetHotWalletsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1.GET("/hot-wallets", getHotWalletsHandler(s))
}

func getHotWalletsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		wallets, err := s.HotWallet.ListHotWallets(c.Request().Context())
		if err != nil {
			return err
		}

		response := &types.HotWalletListResponse{
			HotWallets: make([]*types.HotWalletItem, 0, len(wallets)),
		}

		for _, w := range wallets {
			response.HotWallets = append(response.HotWallets, hotWalletItem(w))
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
