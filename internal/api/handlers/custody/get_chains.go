package custody

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/types"
	"github.com/tesserex/custody/internal/util"
)

func GetChainsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1.GET("/chains", getChainsHandler(s))
}

func getChainsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		chainList, err := s.Chains.ListChains(c.Request().Context())
		if err != nil {
			return err
		}

		response := &types.ChainListResponse{
			Chains: make([]*types.ChainItem, 0, len(chainList)),
		}

		for _, ch := range chainList {
			response.Chains = append(response.Chains, chainItem(ch))
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
