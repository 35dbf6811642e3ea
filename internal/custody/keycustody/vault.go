package keycustody

import (
	"crypto/sha512"
	"sync"

	"golang.org/x/crypto/pbkdf2"
)

// Vault holds the decrypted BIP39 seed in memory for the lifetime of the
// process. Signing and address derivation read from here, the database only
// ever sees the sealed mnemonic.
type Vault struct {
	mu       sync.RWMutex
	seed     []byte
	unlocked bool
}

func NewVault() *Vault {
	return &Vault{}
}

// SetMnemonic derives the BIP39 seed from the mnemonic and stores it. The
// mnemonic itself is not retained.
func (v *Vault) SetMnemonic(mnemonic []byte, passphrase string) {
	// BIP39: seed = PBKDF2-SHA512(mnemonic, "mnemonic"+passphrase, 2048, 64)
	const (
		bip39Iterations = 2048
		bip39SeedLen    = 64
	)

	seed := pbkdf2.Key(mnemonic, []byte("mnemonic"+passphrase), bip39Iterations, bip39SeedLen, sha512.New)

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.seed != nil {
		zero(v.seed)
	}

	v.seed = seed
	v.unlocked = true
}

// Seed returns a copy of the seed, or nil when the vault is locked. Callers
// must zero the copy after use.
func (v *Vault) Seed() []byte {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if !v.unlocked || v.seed == nil {
		return nil
	}

	seedCopy := make([]byte, len(v.seed))
	copy(seedCopy, v.seed)

	return seedCopy
}

func (v *Vault) IsUnlocked() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.unlocked
}

// Clear wipes the seed from memory.
func (v *Vault) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.seed != nil {
		zero(v.seed)
		v.seed = nil
	}

	v.unlocked = false
}
