package keycustody

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/tesserex/custody/internal/models"
	"github.com/tesserex/custody/internal/util"
)

// ErrWrongPassphrase is returned when the keystore MAC check fails.
var ErrWrongPassphrase = errors.New("passphrase verification failed")

// ErrKeystoreExists is returned when importing over an existing keystore name.
var ErrKeystoreExists = errors.New("keystore already exists")

// Service seals mnemonics into the keystores table and unlocks them into the
// in-memory vault at startup.
type Service interface {
	// ImportMnemonic seals the mnemonic under the passphrase and persists it.
	// Fails if a keystore with this name already exists.
	ImportMnemonic(ctx context.Context, name string, mnemonic []byte, passphrase string) (*models.Keystore, error)

	// Unlock opens the named keystore and loads its seed into the vault.
	Unlock(ctx context.Context, name string, passphrase string) error

	// Exists reports whether a keystore with this name is stored.
	Exists(ctx context.Context, name string) (bool, error)

	// Vault exposes the in-memory seed holder.
	Vault() *Vault
}

type service struct {
	db    *sql.DB
	vault *Vault
}

//nolint:ireturn
func NewService(db *sql.DB, vault *Vault) Service {
	return &service{
		db:    db,
		vault: vault,
	}
}

func (s *service) ImportMnemonic(ctx context.Context, name string, mnemonic []byte, passphrase string) (*models.Keystore, error) {
	log := util.LogFromContext(ctx)

	exists, err := s.Exists(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check keystore existence")
	}
	if exists {
		return nil, ErrKeystoreExists
	}

	sealed, err := seal(mnemonic, passphrase, nil, nil)
	if err != nil {
		log.Error().Str("keystore", name).Err(err).Msg("Failed to seal mnemonic")
		return nil, errors.Wrap(err, "failed to seal mnemonic")
	}

	kdfParams, err := json.Marshal(sealed.Params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal KDF params")
	}

	keystore := &models.Keystore{
		ID:         uuid.New().String(),
		Name:       name,
		Version:    sealed.Version,
		Cipher:     sealed.Cipher,
		Ciphertext: hex.EncodeToString(sealed.Ciphertext),
		CipherIv:   hex.EncodeToString(sealed.IV),
		Kdf:        sealed.KDF,
		KdfParams:  kdfParams,
		Mac:        hex.EncodeToString(sealed.MAC),
	}

	if err := keystore.Insert(ctx, s.db, boil.Infer()); err != nil {
		log.Error().Str("keystore", name).Err(err).Msg("Failed to insert keystore")
		return nil, errors.Wrap(err, "failed to insert keystore")
	}

	log.Info().Str("keystore", name).Msg("Imported sealed mnemonic")

	return keystore, nil
}

func (s *service) Unlock(ctx context.Context, name string, passphrase string) error {
	log := util.LogFromContext(ctx)

	keystore, err := models.Keystores(models.KeystoreWhere.Name.EQ(name)).One(ctx, s.db)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errors.Errorf("keystore %q not found", name)
		}
		return errors.Wrap(err, "failed to load keystore")
	}

	sealed, err := sealedFromModel(keystore)
	if err != nil {
		return err
	}

	mnemonic, err := open(sealed, passphrase)
	if err != nil {
		// deliberately vague, never echo anything passphrase-related
		log.Warn().Str("keystore", name).Msg("Keystore unlock failed")
		return err
	}
	defer zero(mnemonic)

	s.vault.SetMnemonic(mnemonic, passphrase)

	log.Info().Str("keystore", name).Msg("Keystore unlocked")

	return nil
}

func (s *service) Exists(ctx context.Context, name string) (bool, error) {
	exists, err := models.Keystores(models.KeystoreWhere.Name.EQ(name)).Exists(ctx, s.db)
	if err != nil {
		return false, errors.Wrap(err, "failed to check keystore existence")
	}

	return exists, nil
}

func (s *service) Vault() *Vault {
	return s.vault
}

func sealedFromModel(keystore *models.Keystore) (*sealedSecret, error) {
	ciphertext, err := hex.DecodeString(keystore.Ciphertext)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode ciphertext")
	}

	iv, err := hex.DecodeString(keystore.CipherIv)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode IV")
	}

	mac, err := hex.DecodeString(keystore.Mac)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode MAC")
	}

	var params scryptParams
	if err := json.Unmarshal(keystore.KdfParams, &params); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal KDF params")
	}

	return &sealedSecret{
		Version:    keystore.Version,
		Cipher:     keystore.Cipher,
		Ciphertext: ciphertext,
		IV:         iv,
		KDF:        keystore.Kdf,
		Params:     params,
		MAC:        mac,
	}, nil
}
