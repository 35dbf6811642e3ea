package custody

import (
	"net/http"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/labstack/echo/v4"

	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/api/httperrors"
	"github.com/tesserex/custody/internal/models"
	"github.com/tesserex/custody/internal/types"
	"github.com/tesserex/custody/internal/util"
	"github.com/tesserex/custody/internal/util/db"
)

const depositListLimit = 100

func GetDepositsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1.GET("/deposits", getDepositsHandler(s))
}

func getDepositsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		userID := c.QueryParam("user_id")
		if userID == "" {
			return httperrors.NewHTTPError(http.StatusBadRequest, httperrors.HTTPErrorTypeGeneric, "user_id query parameter is required.")
		}

		mods := []qm.QueryMod{
			db.InnerJoin("deposits", "deposit_address_id", "deposit_addresses", "id"),
			qm.Where("deposit_addresses.user_id = ?", userID),
			qm.OrderBy("deposits.created_at DESC"),
			qm.Limit(depositListLimit),
		}

		if status := c.QueryParam("status"); status != "" {
			mods = append(mods, models.DepositWhere.Status.EQ(status))
		}

		deposits, err := models.Deposits(mods...).All(ctx, s.DB)
		if err != nil {
			return err
		}

		response := &types.DepositListResponse{
			Deposits: make([]*types.DepositItem, 0, len(deposits)),
		}

		for _, d := range deposits {
			response.Deposits = append(response.Deposits, depositItem(d))
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
