package keycustody

import (
	"crypto/sha256"
	"math/big"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // XRPL account IDs are defined over RIPEMD-160
)

const hardenedOffset = 0x80000000

// EVMPathForIndex builds the BIP44 path for an EVM deposit address.
func EVMPathForIndex(index int64) string {
	return "m/44'/60'/0'/0/" + strconv.FormatInt(index, 10)
}

// XRPLPathForIndex builds the BIP44 path for an XRPL deposit address.
// Coin type 144 is registered for XRP.
func XRPLPathForIndex(index int64) string {
	return "m/44'/144'/0'/0/" + strconv.FormatInt(index, 10)
}

// EVMHotWalletPathForIndex builds the BIP44 path for an EVM hot wallet.
// Hot wallets live on the change branch so they never collide with
// deposit address indexes.
func EVMHotWalletPathForIndex(index int64) string {
	return "m/44'/60'/0'/1/" + strconv.FormatInt(index, 10)
}

// XRPLHotWalletPathForIndex builds the BIP44 path for an XRPL hot wallet.
func XRPLHotWalletPathForIndex(index int64) string {
	return "m/44'/144'/0'/1/" + strconv.FormatInt(index, 10)
}

// DeriveEVMPrivateKey derives the secp256k1 private key at path.
// The caller must zero the returned key after use.
func DeriveEVMPrivateKey(seed []byte, path string) ([]byte, error) {
	return derivePrivateKey(seed, path)
}

// DeriveEVMAddress derives the checksummed 0x address at path.
func DeriveEVMAddress(seed []byte, path string) (string, error) {
	privateKey, err := derivePrivateKey(seed, path)
	if err != nil {
		return "", err
	}
	defer zero(privateKey)

	ecdsaKey, err := ethcrypto.ToECDSA(privateKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to convert to ECDSA private key")
	}

	return ethcrypto.PubkeyToAddress(ecdsaKey.PublicKey).Hex(), nil
}

// DeriveXRPLKeyPair derives the secp256k1 key pair at path, returning the raw
// private key and the 33-byte compressed public key. The caller must zero the
// private key after use.
func DeriveXRPLKeyPair(seed []byte, path string) ([]byte, []byte, error) {
	privateKey, err := derivePrivateKey(seed, path)
	if err != nil {
		return nil, nil, err
	}

	_, pubKey := btcec.PrivKeyFromBytes(privateKey)

	return privateKey, pubKey.SerializeCompressed(), nil
}

// DeriveXRPLAddress derives the classic r-address at path.
func DeriveXRPLAddress(seed []byte, path string) (string, error) {
	privateKey, pubKey, err := DeriveXRPLKeyPair(seed, path)
	if err != nil {
		return "", err
	}
	defer zero(privateKey)

	return XRPLAddressFromPubKey(pubKey), nil
}

// XRPLAddressFromPubKey encodes a compressed public key as a classic XRPL
// address: base58check over RIPEMD-160(SHA-256(pubkey)) with prefix 0x00.
func XRPLAddressFromPubKey(pubKey []byte) string {
	sha := sha256.Sum256(pubKey)

	ripe := ripemd160.New()
	ripe.Write(sha[:])
	accountID := ripe.Sum(nil)

	payload := append([]byte{0x00}, accountID...)

	checksum := sha256.Sum256(payload)
	checksum = sha256.Sum256(checksum[:])

	return rippleBase58Encode(append(payload, checksum[:4]...))
}

func derivePrivateKey(seed []byte, path string) ([]byte, error) {
	indices, err := parseDerivationPath(path)
	if err != nil {
		return nil, err
	}

	masterKey, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create master key")
	}

	key := masterKey
	for _, index := range indices {
		key, err = key.NewChildKey(index)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive child key at index %d", index)
		}
	}

	privateKey := make([]byte, len(key.Key))
	copy(privateKey, key.Key)

	return privateKey, nil
}

// parseDerivationPath parses "m/44'/60'/0'/0/5" into child key indices, with
// the hardened flag applied to segments ending in an apostrophe.
func parseDerivationPath(path string) ([]uint32, error) {
	if !strings.HasPrefix(path, "m/") {
		return nil, errors.Errorf("invalid derivation path %q", path)
	}

	parts := strings.Split(path[2:], "/")
	indices := make([]uint32, 0, len(parts))

	for _, part := range parts {
		hardened := strings.HasSuffix(part, "'")
		part = strings.TrimSuffix(part, "'")

		index, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, errors.Errorf("invalid derivation path segment %q", part)
		}
		if hardened {
			if index >= hardenedOffset {
				return nil, errors.Errorf("derivation index %d out of range", index)
			}
			index += hardenedOffset
		}

		indices = append(indices, uint32(index))
	}

	return indices, nil
}

// rippleAlphabet is the XRPL variant of base58, same structure as Bitcoin's
// but with a reordered character set.
const rippleAlphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

// DecodeXRPLAccountID decodes a classic r-address back into its 20-byte
// account ID, verifying the checksum.
func DecodeXRPLAccountID(address string) ([]byte, error) {
	decoded, err := rippleBase58Decode(address)
	if err != nil {
		return nil, err
	}
	if len(decoded) != 25 || decoded[0] != 0x00 {
		return nil, errors.Errorf("invalid XRPL address %q", address)
	}

	payload := decoded[:21]
	checksum := sha256.Sum256(payload)
	checksum = sha256.Sum256(checksum[:])

	for i := 0; i < 4; i++ {
		if decoded[21+i] != checksum[i] {
			return nil, errors.Errorf("invalid XRPL address checksum in %q", address)
		}
	}

	return payload[1:], nil
}

func rippleBase58Encode(input []byte) string {
	num := new(big.Int).SetBytes(input)
	radix := big.NewInt(58)
	mod := new(big.Int)

	var out []byte
	for num.Sign() > 0 {
		num.DivMod(num, radix, mod)
		out = append(out, rippleAlphabet[mod.Int64()])
	}

	// leading zero bytes map to the alphabet's zero character
	for _, b := range input {
		if b != 0 {
			break
		}
		out = append(out, rippleAlphabet[0])
	}

	// reverse
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return string(out)
}

func rippleBase58Decode(input string) ([]byte, error) {
	num := big.NewInt(0)
	radix := big.NewInt(58)

	for _, c := range input {
		idx := strings.IndexRune(rippleAlphabet, c)
		if idx < 0 {
			return nil, errors.Errorf("invalid base58 character %q", c)
		}
		num.Mul(num, radix)
		num.Add(num, big.NewInt(int64(idx)))
	}

	decoded := num.Bytes()

	// restore leading zero bytes
	leading := 0
	for _, c := range input {
		if byte(c) != rippleAlphabet[0] {
			break
		}
		leading++
	}

	out := make([]byte, leading+len(decoded))
	copy(out[leading:], decoded)

	return out, nil
}
