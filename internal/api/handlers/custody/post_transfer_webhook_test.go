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

func TestPostTransferWebhook(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		f := fixtures.Fixtures()

		payload := test.GenericPayload{
			"chain_id":     f.ChainSepolia.ChainID,
			"address":      f.User1DepositAddressEVM.Address,
			"tx_hash":      "0xfeedbeef",
			"amount":       "250000000000000000",
			"block_number": 1234,
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/webhooks/transfer", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		var response types.DepositResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, models.DepositStatusPending, *response.Deposit.Status)
		assert.Equal(t, "250000000000000000", *response.Deposit.Amount)
		assert.Equal(t, f.User1DepositAddressEVM.ID, response.Deposit.DepositAddressID.String())
		assert.EqualValues(t, f.ChainSepolia.RequiredConfirmations, response.Deposit.RequiredConfirmations)

		// nodes deliver at-least-once, the replay returns the same deposit
		res = test.PerformRequest(t, s, "POST", "/api/v1/webhooks/transfer", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		var replay types.DepositResponse
		test.ParseResponseAndValidate(t, res, &replay)
		assert.Equal(t, response.Deposit.ID.String(), replay.Deposit.ID.String())
	})
}

func TestPostTransferWebhookXRPLDestinationTag(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		f := fixtures.Fixtures()

		payload := test.GenericPayload{
			"chain_id":        f.ChainXRPL.ChainID,
			"address":         f.User1DepositAddressXRPL.Address,
			"destination_tag": f.User1DepositAddressXRPL.DestinationTag.Int64,
			"tx_hash":         "ABCDEF0123456789",
			"amount":          "10000000",
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/webhooks/transfer", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		var response types.DepositResponse
		test.ParseResponseAndValidate(t, res, &response)
		require.NotNil(t, response.Deposit.DestinationTag)
		assert.Equal(t, f.User1DepositAddressXRPL.DestinationTag.Int64, *response.Deposit.DestinationTag)

		// same account with an unknown tag belongs to nobody
		payload["destination_tag"] = 999999
		res = test.PerformRequest(t, s, "POST", "/api/v1/webhooks/transfer", payload, nil)
		require.Equal(t, http.StatusNotFound, res.Result().StatusCode, res.Body.String())
	})
}

func TestPostTransferWebhookUnknownAddress(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		f := fixtures.Fixtures()

		payload := test.GenericPayload{
			"chain_id": f.ChainSepolia.ChainID,
			"address":  "0x0000000000000000000000000000000000000001",
			"tx_hash":  "0xfeedbeef",
			"amount":   "1",
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/webhooks/transfer", payload, nil)
		require.Equal(t, http.StatusNotFound, res.Result().StatusCode, res.Body.String())
	})
}
