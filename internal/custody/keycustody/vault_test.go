package keycustody

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaultDerivesBIP39Seed(t *testing.T) {
	v := NewVault()
	assert.False(t, v.IsUnlocked())
	assert.Nil(t, v.Seed())

	mnemonic := []byte("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")
	v.SetMnemonic(mnemonic, "")

	require.True(t, v.IsUnlocked())
	assert.Equal(t, testSeedHex, hex.EncodeToString(v.Seed()))
}

func TestVaultSeedReturnsCopy(t *testing.T) {
	v := NewVault()
	v.SetMnemonic([]byte("legal winner thank year wave sausage worth useful legal winner thank yellow"), "")

	seed := v.Seed()
	require.NotNil(t, seed)

	zero(seed)

	assert.NotEqual(t, seed, v.Seed())
}

func TestVaultClear(t *testing.T) {
	v := NewVault()
	v.SetMnemonic([]byte("zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong"), "secret")
	require.True(t, v.IsUnlocked())

	v.Clear()

	assert.False(t, v.IsUnlocked())
	assert.Nil(t, v.Seed())
}
