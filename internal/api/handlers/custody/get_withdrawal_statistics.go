package custody

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/types"
	"github.com/tesserex/custody/internal/util"
)

func GetWithdrawalStatisticsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1.GET("/withdrawals/statistics", getWithdrawalStatisticsHandler(s))
}

func getWithdrawalStatisticsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats := s.Withdraw.GetStatistics(c.Request().Context())

		balances := make([]*types.HotWalletBalanceItem, 0, len(stats.HotWalletBalances))
		for _, balance := range stats.HotWalletBalances {
			balances = append(balances, &types.HotWalletBalanceItem{
				ChainID: swag.Int64(int64(balance.ChainID)),
				Address: swag.String(balance.Address),
				Balance: swag.String(balance.Balance),
			})
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.WithdrawalStatisticsResponse{
			TotalCount:           stats.TotalCount,
			PendingCount:         stats.PendingCount,
			ProcessingCount:      stats.ProcessingCount,
			BroadcastedCount:     stats.BroadcastedCount,
			ConfirmedCount:       stats.ConfirmedCount,
			FailedCount:          stats.FailedCount,
			PendingAmount:        swag.String(stats.PendingAmount),
			TotalConfirmedAmount: swag.String(stats.TotalConfirmedAmount),
			HotWalletBalances:    balances,
		})
	}
}
