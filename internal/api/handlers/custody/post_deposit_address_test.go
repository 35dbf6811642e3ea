package custody_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/data/fixtures"
	"github.com/tesserex/custody/internal/test"
	"github.com/tesserex/custody/internal/types"
)

func TestPostDepositAddress(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		f := fixtures.Fixtures()

		s.Vault.SetMnemonic([]byte(test.TestMnemonic), "")

		payload := test.GenericPayload{
			"user_id":  f.User1,
			"chain_id": f.ChainSepolia.ChainID,
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/deposit-addresses", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		var response types.DepositAddressResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, f.User1, response.DepositAddress.UserID.String())
		assert.True(t, strings.HasPrefix(*response.DepositAddress.Address, "0x"), "EVM addresses are hex: %s", *response.DepositAddress.Address)
		assert.True(t, response.DepositAddress.IsActive)
		assert.Nil(t, response.DepositAddress.DestinationTag)

		// a second allocation yields a different address
		res = test.PerformRequest(t, s, "POST", "/api/v1/deposit-addresses", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		var second types.DepositAddressResponse
		test.ParseResponseAndValidate(t, res, &second)
		assert.NotEqual(t, *response.DepositAddress.Address, *second.DepositAddress.Address)
	})
}

func TestPostDepositAddressXRPLSharesAccount(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		f := fixtures.Fixtures()

		s.Vault.SetMnemonic([]byte(test.TestMnemonic), "")

		payload := test.GenericPayload{
			"user_id":  f.User1,
			"chain_id": f.ChainXRPL.ChainID,
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/deposit-addresses", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		var first types.DepositAddressResponse
		test.ParseResponseAndValidate(t, res, &first)
		require.NotNil(t, first.DepositAddress.DestinationTag)
		assert.True(t, strings.HasPrefix(*first.DepositAddress.Address, "r"), "XRPL addresses are r-addresses: %s", *first.DepositAddress.Address)

		res = test.PerformRequest(t, s, "POST", "/api/v1/deposit-addresses", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		var second types.DepositAddressResponse
		test.ParseResponseAndValidate(t, res, &second)
		require.NotNil(t, second.DepositAddress.DestinationTag)

		// same custody account, distinct destination tags
		assert.Equal(t, *first.DepositAddress.Address, *second.DepositAddress.Address)
		assert.NotEqual(t, *first.DepositAddress.DestinationTag, *second.DepositAddress.DestinationTag)
	})
}

func TestPostDepositAddressVaultLocked(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		f := fixtures.Fixtures()

		payload := test.GenericPayload{
			"user_id":  f.User1,
			"chain_id": f.ChainSepolia.ChainID,
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/deposit-addresses", payload, nil)
		require.Equal(t, http.StatusServiceUnavailable, res.Result().StatusCode, res.Body.String())
	})
}

func TestPostDepositAddressUnknownChain(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		f := fixtures.Fixtures()

		s.Vault.SetMnemonic([]byte(test.TestMnemonic), "")

		payload := test.GenericPayload{
			"user_id":  f.User1,
			"chain_id": 999999,
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/deposit-addresses", payload, nil)
		require.Equal(t, http.StatusNotFound, res.Result().StatusCode, res.Body.String())
	})
}
