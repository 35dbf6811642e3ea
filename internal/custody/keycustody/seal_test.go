package keycustody

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpenRoundtrip(t *testing.T) {
	secret := []byte("legal winner thank year wave sausage worth useful legal winner thank yellow")

	sealed, err := seal(secret, "correct horse battery staple", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, keystoreVersion, sealed.Version)
	assert.Equal(t, cipherAES128CTR, sealed.Cipher)
	assert.Equal(t, kdfScrypt, sealed.KDF)
	assert.Len(t, sealed.IV, ivLen)
	assert.Len(t, sealed.MAC, 32)
	assert.NotEqual(t, secret, sealed.Ciphertext)

	plaintext, err := open(sealed, "correct horse battery staple")
	require.NoError(t, err)
	assert.Equal(t, secret, plaintext)
}

func TestOpenRejectsWrongPassphrase(t *testing.T) {
	sealed, err := seal([]byte("some secret"), "right", nil, nil)
	require.NoError(t, err)

	_, err = open(sealed, "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWrongPassphrase))
}

func TestOpenRejectsTamperedCiphertext(t *testing.T) {
	sealed, err := seal([]byte("some secret"), "right", nil, nil)
	require.NoError(t, err)

	sealed.Ciphertext[0] ^= 0xff

	_, err = open(sealed, "right")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWrongPassphrase))
}

func TestOpenRejectsUnknownCipher(t *testing.T) {
	sealed, err := seal([]byte("some secret"), "right", nil, nil)
	require.NoError(t, err)

	sealed.Cipher = "aes-256-gcm"

	_, err = open(sealed, "right")
	require.Error(t, err)
}
