package handlers

import (
	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/api/handlers/common"
	"github.com/tesserex/custody/internal/api/handlers/custody"
)

// AttachAllRoutes attaches all defined routes to the server's router groups.
// Add new routes here, grouped by their handlers package.
func AttachAllRoutes(s *api.Server) {
	// /-
	common.GetHealthyRoute(s)
	common.GetMetricsRoute(s)
	common.GetReadyRoute(s)
	common.GetVersionRoute(s)

	// /api/v1
	custody.GetAggregatedBalancesRoute(s)
	custody.GetChainsRoute(s)
	custody.GetDepositAddressesRoute(s)
	custody.GetDepositsRoute(s)
	custody.GetHotWalletsRoute(s)
	custody.GetSweepJobsRoute(s)
	custody.GetWithdrawalStatisticsRoute(s)
	custody.GetWithdrawalsRoute(s)
	custody.PostDepositAddressRoute(s)
	custody.PostHotWalletRoute(s)
	custody.PostTransferWebhookRoute(s)
	custody.PostWithdrawalRoute(s)
}
