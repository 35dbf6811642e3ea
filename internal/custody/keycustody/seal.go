package keycustody

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"
)

const (
	cipherAES128CTR = "aes-128-ctr"
	kdfScrypt       = "scrypt"
	keystoreVersion = 3

	saltLen = 32
	ivLen   = 16 // AES-128-CTR requires a 16-byte IV
)

// scryptParams mirrors the kdfparams object of an Ethereum keystore v3 file.
type scryptParams struct {
	DKLen int    `json:"dklen"`
	Salt  string `json:"salt"`
	N     int    `json:"n"`
	R     int    `json:"r"`
	P     int    `json:"p"`
}

func defaultScryptParams() scryptParams {
	return scryptParams{
		DKLen: 32,
		N:     262144, // 2^18
		R:     8,
		P:     1,
	}
}

// sealedSecret is the decomposed keystore v3 payload as persisted per column.
type sealedSecret struct {
	Version    int
	Cipher     string
	Ciphertext []byte
	IV         []byte
	KDF        string
	Params     scryptParams
	MAC        []byte
}

// seal encrypts a secret under the passphrase using scrypt + AES-128-CTR.
// The plaintext secret is left untouched, callers own zeroing it.
func seal(secret []byte, passphrase string, salt []byte, iv []byte) (*sealedSecret, error) {
	if salt == nil {
		salt = make([]byte, saltLen)
		if _, err := rand.Read(salt); err != nil {
			return nil, errors.Wrap(err, "failed to generate salt")
		}
	}
	if iv == nil {
		iv = make([]byte, ivLen)
		if _, err := rand.Read(iv); err != nil {
			return nil, errors.Wrap(err, "failed to generate IV")
		}
	}

	params := defaultScryptParams()

	derivedKey, err := scrypt.Key([]byte(passphrase), salt, params.N, params.R, params.P, params.DKLen)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive key")
	}
	defer zero(derivedKey)

	ciphertext, err := xorAES128CTR(derivedKey[:16], iv, secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt secret")
	}

	return &sealedSecret{
		Version:    keystoreVersion,
		Cipher:     cipherAES128CTR,
		Ciphertext: ciphertext,
		IV:         iv,
		KDF:        kdfScrypt,
		Params: scryptParams{
			DKLen: params.DKLen,
			Salt:  hex.EncodeToString(salt),
			N:     params.N,
			R:     params.R,
			P:     params.P,
		},
		MAC: computeMAC(derivedKey[16:32], ciphertext),
	}, nil
}

// open decrypts a sealed secret, verifying the MAC before touching the
// ciphertext. The returned plaintext must be zeroed by the caller.
func open(sealed *sealedSecret, passphrase string) ([]byte, error) {
	if sealed.Cipher != cipherAES128CTR {
		return nil, errors.Errorf("unsupported cipher %q", sealed.Cipher)
	}
	if sealed.KDF != kdfScrypt {
		return nil, errors.Errorf("unsupported KDF %q", sealed.KDF)
	}

	salt, err := hex.DecodeString(sealed.Params.Salt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode salt")
	}

	derivedKey, err := scrypt.Key([]byte(passphrase), salt, sealed.Params.N, sealed.Params.R, sealed.Params.P, sealed.Params.DKLen)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive key")
	}
	defer zero(derivedKey)

	mac := computeMAC(derivedKey[16:32], sealed.Ciphertext)
	if subtle.ConstantTimeCompare(mac, sealed.MAC) != 1 {
		return nil, ErrWrongPassphrase
	}

	plaintext, err := xorAES128CTR(derivedKey[:16], sealed.IV, sealed.Ciphertext)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrypt secret")
	}

	return plaintext, nil
}

// xorAES128CTR applies the AES-128-CTR keystream, which both encrypts and
// decrypts.
func xorAES128CTR(key []byte, iv []byte, in []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cipher")
	}

	out := make([]byte, len(in))
	stream := cipher.NewCTR(block, iv)
	stream.XORKeyStream(out, in)

	return out, nil
}

// computeMAC is Keccak256(derivedKey[16:32] || ciphertext) per keystore v3.
func computeMAC(key []byte, ciphertext []byte) []byte {
	return ethcrypto.Keccak256(key, ciphertext)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
