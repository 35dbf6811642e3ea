package server

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/util"
)

// keystoreName is the name of the keystore holding the custody master seed.
const keystoreName = "primary"

// unlockKeystore loads the sealed master seed into the in-memory vault. On
// first boot a fresh seed is generated, sealed and persisted.
func unlockKeystore(ctx context.Context, s *api.Server) error {
	passphrase := s.Config.Custody.KeystorePassphrase
	if passphrase == "" {
		p, err := promptPassphrase("Keystore passphrase: ")
		if err != nil {
			return errors.Wrap(err, "failed to read keystore passphrase")
		}

		passphrase = p
	}

	exists, err := s.Keystore.Exists(ctx, keystoreName)
	if err != nil {
		return errors.Wrap(err, "failed to check for existing keystore")
	}

	if !exists {
		// 256 bit of entropy, hex encoded so the phrase can be backed up
		mnemonic, err := util.GenerateRandomHexString(32)
		if err != nil {
			return errors.Wrap(err, "failed to generate master seed entropy")
		}

		if _, err := s.Keystore.ImportMnemonic(ctx, keystoreName, []byte(mnemonic), passphrase); err != nil {
			return errors.Wrap(err, "failed to import generated master seed")
		}

		log.Warn().Str("keystore", keystoreName).Msg("Generated a new custody master seed, back up the keystores table NOW")
	}

	if err := s.Keystore.Unlock(ctx, keystoreName, passphrase); err != nil {
		return errors.Wrapf(err, "failed to unlock keystore %q", keystoreName)
	}

	log.Info().Str("keystore", keystoreName).Msg("Keystore unlocked")

	return nil
}

func promptPassphrase(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("keystore passphrase is not configured and stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, prompt)

	p, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", err
	}

	return string(p), nil
}
