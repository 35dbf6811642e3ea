package custody_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/test"
	"github.com/tesserex/custody/internal/types"
)

func TestGetChains(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/chains", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		var response types.ChainListResponse
		test.ParseResponseAndValidate(t, res, &response)

		test.Snapshoter.Save(t, response)
	})
}
