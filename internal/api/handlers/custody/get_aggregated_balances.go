package custody

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/api/httperrors"
	"github.com/tesserex/custody/internal/custody/aggregate"
	"github.com/tesserex/custody/internal/types"
	"github.com/tesserex/custody/internal/util"
)

func GetAggregatedBalancesRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1.GET("/balances", getAggregatedBalancesHandler(s))
}

// getAggregatedBalancesHandler reports live on-chain balances across deposit
// addresses. Individual lookup failures are reported per address, a partial
// result is still a 200.
func getAggregatedBalancesHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), s.Config.Custody.BalanceRequestTimeout)
		defer cancel()

		var filter aggregate.Filter

		if raw := c.QueryParam("chain_id"); raw != "" {
			chainID, err := strconv.Atoi(raw)
			if err != nil {
				return httperrors.NewHTTPError(http.StatusBadRequest, httperrors.HTTPErrorTypeGeneric, "chain_id query parameter must be an integer.")
			}

			filter.ChainID = &chainID
		}

		if userID := c.QueryParam("user_id"); userID != "" {
			filter.UserID = &userID
		}

		filter.OnlyActive = c.QueryParam("only_active") != "false"

		items, summary, err := s.Aggregate.AggregateBalances(ctx, filter)
		if err != nil {
			return err
		}

		response := &types.AggregatedBalancesResponse{
			Items:        make([]*types.AggregatedBalanceItem, 0, len(items)),
			TotalBalance: swag.String(summary.TotalBalance),
			AddressCount: int64(summary.AddressCount),
			ErrorCount:   int64(summary.ErrorCount),
		}

		for _, item := range items {
			response.Items = append(response.Items, aggregatedBalanceItem(item))
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
