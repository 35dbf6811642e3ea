package custody

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/api/httperrors"
	"github.com/tesserex/custody/internal/types"
	"github.com/tesserex/custody/internal/util"
)

func GetWithdrawalsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1.GET("/withdrawals", getWithdrawalsHandler(s))
}

func getWithdrawalsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		userID := c.QueryParam("user_id")
		if userID == "" {
			return httperrors.NewHTTPError(http.StatusBadRequest, httperrors.HTTPErrorTypeGeneric, "user_id query parameter is required.")
		}

		withdrawals, err := s.Withdraw.GetUserWithdrawals(ctx, userID)
		if err != nil {
			return err
		}

		response := &types.WithdrawalListResponse{
			Withdrawals: make([]*types.WithdrawalItem, 0, len(withdrawals)),
		}

		for _, w := range withdrawals {
			response.Withdrawals = append(response.Withdrawals, withdrawalItem(w))
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
