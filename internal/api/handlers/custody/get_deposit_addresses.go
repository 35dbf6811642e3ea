package custody

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/api/httperrors"
	"github.com/tesserex/custody/internal/types"
	"github.com/tesserex/custody/internal/util"
)

func GetDepositAddressesRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1.GET("/deposit-addresses", getDepositAddressesHandler(s))
}

func getDepositAddressesHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		userID := c.QueryParam("user_id")
		if userID == "" {
			return httperrors.NewHTTPError(http.StatusBadRequest, httperrors.HTTPErrorTypeGeneric, "user_id query parameter is required.")
		}

		var chainID *int
		if raw := c.QueryParam("chain_id"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				return httperrors.NewHTTPError(http.StatusBadRequest, httperrors.HTTPErrorTypeGeneric, "chain_id query parameter must be an integer.")
			}

			chainID = &id
		}

		addresses, err := s.Address.GetUserAddresses(ctx, userID, chainID)
		if err != nil {
			return err
		}

		response := &types.DepositAddressListResponse{
			DepositAddresses: make([]*types.DepositAddressItem, 0, len(addresses)),
		}

		for _, a := range addresses {
			response.DepositAddresses = append(response.DepositAddresses, depositAddressItem(a))
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
