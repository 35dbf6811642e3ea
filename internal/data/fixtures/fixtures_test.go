package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	data "github.com/tesserex/custody/internal/data/fixtures"
	"github.com/tesserex/custody/internal/models"
)

func TestInsertableInterface(t *testing.T) {
	var chain any = &models.Chain{
		ChainID: 11155111,
	}

	_, ok := chain.(data.Insertable)
	assert.True(t, ok, "Chain should implement the Insertable interface")
}

func TestFixturesReferentialOrder(t *testing.T) {
	f := data.Fixtures()
	inserts := data.Inserts()

	assert.NotEmpty(t, inserts)

	// chains must come before any row referencing them
	assert.Equal(t, f.ChainSepolia, inserts[0])
	assert.Equal(t, f.ChainXRPL, inserts[1])

	assert.Equal(t, f.User1, f.User1DepositAddressEVM.UserID)
	assert.Equal(t, f.ChainSepolia.ChainID, f.User1BalanceSepolia.ChainID)
	assert.True(t, f.User1DepositAddressXRPL.DestinationTag.Valid)
}
