package custody_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/data/fixtures"
	"github.com/tesserex/custody/internal/models"
	"github.com/tesserex/custody/internal/test"
	"github.com/tesserex/custody/internal/types"
)

func TestPostWithdrawal(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		payload := test.GenericPayload{
			"user_id":    f.User1,
			"chain_id":   f.ChainSepolia.ChainID,
			"to_address": "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
			"amount":     "1000000000000000000",
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/withdrawals", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		var response types.WithdrawalResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, models.WithdrawalStatusPending, *response.Withdrawal.Status)
		assert.Equal(t, "1000000000000000000", *response.Withdrawal.Amount)

		// the amount is frozen immediately
		balance, err := models.UserBalances(
			models.UserBalanceWhere.UserID.EQ(f.User1),
			models.UserBalanceWhere.ChainID.EQ(f.ChainSepolia.ChainID),
		).One(ctx, s.DB)
		require.NoError(t, err)
		assert.Equal(t, "4000000000000000000", balance.Available)
		assert.Equal(t, "1000000000000000000", balance.Frozen)
	})
}

func TestPostWithdrawalInsufficientBalance(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		f := fixtures.Fixtures()

		payload := test.GenericPayload{
			"user_id":    f.User1,
			"chain_id":   f.ChainSepolia.ChainID,
			"to_address": "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
			"amount":     "5000000000000000001",
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/withdrawals", payload, nil)
		require.Equal(t, http.StatusConflict, res.Result().StatusCode, res.Body.String())
	})
}

func TestPostWithdrawalInvalidDestination(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		f := fixtures.Fixtures()

		payload := test.GenericPayload{
			"user_id":    f.User1,
			"chain_id":   f.ChainSepolia.ChainID,
			"to_address": "not-an-address",
			"amount":     "1",
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/withdrawals", payload, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode, res.Body.String())
	})
}

func TestPostWithdrawalUnknownChain(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		f := fixtures.Fixtures()

		payload := test.GenericPayload{
			"user_id":    f.User1,
			"chain_id":   999999,
			"to_address": "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
			"amount":     "1",
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/withdrawals", payload, nil)
		require.Equal(t, http.StatusNotFound, res.Result().StatusCode, res.Body.String())
	})
}

func TestPostWithdrawalValidationError(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		// missing required fields
		payload := test.GenericPayload{
			"chain_id": 11155111,
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/withdrawals", payload, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode, res.Body.String())
	})
}
