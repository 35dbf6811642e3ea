package custody

import (
	"net/http"
	"strconv"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/labstack/echo/v4"

	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/api/httperrors"
	"github.com/tesserex/custody/internal/models"
	"github.com/tesserex/custody/internal/types"
	"github.com/tesserex/custody/internal/util"
)

const sweepJobListLimit = 100

func GetSweepJobsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1.GET("/sweep-jobs", getSweepJobsHandler(s))
}

func getSweepJobsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		mods := []qm.QueryMod{
			qm.OrderBy(models.SweepJobColumns.CreatedAt + " DESC"),
			qm.Limit(sweepJobListLimit),
		}

		if status := c.QueryParam("status"); status != "" {
			mods = append(mods, models.SweepJobWhere.Status.EQ(status))
		}

		if raw := c.QueryParam("chain_id"); raw != "" {
			chainID, err := strconv.Atoi(raw)
			if err != nil {
				return httperrors.NewHTTPError(http.StatusBadRequest, httperrors.HTTPErrorTypeGeneric, "chain_id query parameter must be an integer.")
			}

			mods = append(mods, models.SweepJobWhere.ChainID.EQ(chainID))
		}

		jobs, err := models.SweepJobs(mods...).All(ctx, s.DB)
		if err != nil {
			return err
		}

		response := &types.SweepJobListResponse{
			SweepJobs: make([]*types.SweepJobItem, 0, len(jobs)),
		}

		for _, j := range jobs {
			response.SweepJobs = append(response.SweepJobs, sweepJobItem(j))
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
