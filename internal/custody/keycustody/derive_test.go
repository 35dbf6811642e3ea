package keycustody

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// BIP39 test vector seed for "abandon abandon ... about" with empty passphrase.
const testSeedHex = "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4"

func testSeed(t *testing.T) []byte {
	t.Helper()

	seed, err := hex.DecodeString(testSeedHex)
	require.NoError(t, err)

	return seed
}

func TestDeriveEVMAddressKnownVector(t *testing.T) {
	address, err := DeriveEVMAddress(testSeed(t), "m/44'/60'/0'/0/0")
	require.NoError(t, err)
	assert.Equal(t, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", address)
}

func TestDeriveEVMAddressIsDeterministic(t *testing.T) {
	seed := testSeed(t)

	first, err := DeriveEVMAddress(seed, EVMPathForIndex(7))
	require.NoError(t, err)

	second, err := DeriveEVMAddress(seed, EVMPathForIndex(7))
	require.NoError(t, err)

	assert.Equal(t, first, second)

	other, err := DeriveEVMAddress(seed, EVMPathForIndex(8))
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestDeriveXRPLAddressShape(t *testing.T) {
	seed := testSeed(t)

	address, err := DeriveXRPLAddress(seed, XRPLPathForIndex(0))
	require.NoError(t, err)

	assert.True(t, len(address) >= 25 && len(address) <= 35, "unexpected address length %d", len(address))
	assert.Equal(t, byte('r'), address[0])

	other, err := DeriveXRPLAddress(seed, XRPLPathForIndex(1))
	require.NoError(t, err)
	assert.NotEqual(t, address, other)
}

func TestXRPLAddressFromPubKeyKnownVector(t *testing.T) {
	// the XRPL genesis account key pair
	pubKey, err := hex.DecodeString("0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020")
	require.NoError(t, err)

	assert.Equal(t, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", XRPLAddressFromPubKey(pubKey))
}

func TestDecodeXRPLAccountID(t *testing.T) {
	// account ID of the genesis account, RIPEMD-160(SHA-256(pubkey))
	accountID, err := DecodeXRPLAccountID("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")
	require.NoError(t, err)
	assert.Equal(t, "b5f762798a53d543a014caf8b297cff8f2f937e8", hex.EncodeToString(accountID))

	_, err = DecodeXRPLAccountID("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTX")
	assert.Error(t, err)

	_, err = DecodeXRPLAccountID("0x9858EfFD232B4033E47d90003D41EC34EcaEda94")
	assert.Error(t, err)
}

func TestDeriveXRPLKeyPair(t *testing.T) {
	privateKey, pubKey, err := DeriveXRPLKeyPair(testSeed(t), XRPLPathForIndex(0))
	require.NoError(t, err)
	defer zero(privateKey)

	assert.Len(t, privateKey, 32)
	assert.Len(t, pubKey, 33)
	assert.Contains(t, []byte{0x02, 0x03}, pubKey[0])
}

func TestParseDerivationPath(t *testing.T) {
	indices, err := parseDerivationPath("m/44'/60'/0'/0/5")
	require.NoError(t, err)

	assert.Equal(t, []uint32{
		44 + hardenedOffset,
		60 + hardenedOffset,
		0 + hardenedOffset,
		0,
		5,
	}, indices)
}

func TestParseDerivationPathRejectsGarbage(t *testing.T) {
	for _, path := range []string{"", "44'/60'", "m/44'/x/0", "m/4294967296"} {
		_, err := parseDerivationPath(path)
		assert.Error(t, err, "path %q", path)
	}
}

func TestEVMPathForIndex(t *testing.T) {
	assert.Equal(t, "m/44'/60'/0'/0/42", EVMPathForIndex(42))
	assert.Equal(t, "m/44'/144'/0'/0/42", XRPLPathForIndex(42))
}
