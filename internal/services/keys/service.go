package keys

import (
	"errors"
	"fmt"
	"log/slog"

	"minisign/internal/crypto"
	"minisign/internal/domain"
	"minisign/internal/minisign"
	"minisign/internal/store"
	"minisign/internal/util/logging"
)

// Labels passed to the PasswordPrompt.
const (
	PromptPassword    = "Password: "
	PromptNewPassword = "New Password: "
)

// ErrNoPrompt is returned when a protected key must be opened but no
// PasswordPrompt was supplied.
var ErrNoPrompt = errors.New("password required but no prompt available")

// Service manages key pairs on disk.
type Service struct {
	store domain.KeyStore
	gen   *minisign.KeyGenerator
	log   *slog.Logger
}

// New returns a key service. A nil logger discards output.
func New(s domain.KeyStore, gen *minisign.KeyGenerator, log *slog.Logger) *Service {
	if log == nil {
		log = logging.Discard()
	}
	return &Service{store: s, gen: gen, log: log.With("component", "keys")}
}

// Generate creates a key pair and writes both files. Existing files are
// only replaced when req.Force is set; otherwise nothing is written and
// store.ErrExists is returned.
func (s *Service) Generate(req domain.GenerateRequest) (*minisign.PublicKey, error) {
	if !req.Force {
		for _, path := range []string{req.Paths.SecretKey, req.Paths.PublicKey} {
			exists, err := s.store.KeyExists(path)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, fmt.Errorf("%s: %w", path, store.ErrExists)
			}
		}
	}

	s.log.Debug("generating key pair",
		"protected", req.Password != nil,
		"opslimit", s.gen.OpsLimit,
		"memlimit", s.gen.MemLimit)
	sk, pk, err := s.gen.Generate(req.Password)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveSecretKey(req.Paths.SecretKey, sk, req.Force); err != nil {
		return nil, fmt.Errorf("save secret key: %w", err)
	}
	if err := s.store.SavePublicKey(req.Paths.PublicKey, pk, req.Force); err != nil {
		return nil, fmt.Errorf("save public key: %w", err)
	}
	s.log.Debug("key pair written", "key_id", pk.KeyID.String(), "public_key", req.Paths.PublicKey)
	return pk, nil
}

// Unlock reads and opens the secret key at path. prompt is called only when
// the key is protected.
func (s *Service) Unlock(path string, prompt domain.PasswordPrompt) (*minisign.PrivateKey, error) {
	text, err := s.store.LoadSecretKeyText(path)
	if err != nil {
		return nil, err
	}

	guard := s.gen.Guard
	sk, err := guard.ParsePrivateKey(text, nil)
	if !errors.Is(err, minisign.ErrPasswordMissing) {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return sk, nil
	}
	if prompt == nil {
		return nil, ErrNoPrompt
	}

	password, err := readPassword(prompt, PromptPassword)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(password)

	s.log.Debug("deriving key", "path", path)
	sk, err = guard.ParsePrivateKey(text, password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sk, nil
}

// Recreate derives the public key from the secret key and writes it to
// paths.PublicKey, replacing any existing file.
func (s *Service) Recreate(paths domain.KeyPaths, prompt domain.PasswordPrompt) (*minisign.PublicKey, error) {
	sk, err := s.Unlock(paths.SecretKey, prompt)
	if err != nil {
		return nil, err
	}
	pk := sk.PublicKey()
	if err := s.store.SavePublicKey(paths.PublicKey, pk, true); err != nil {
		return nil, fmt.Errorf("save public key: %w", err)
	}
	s.log.Debug("public key recreated", "key_id", pk.KeyID.String(), "path", paths.PublicKey)
	return pk, nil
}

// ChangePassword re-protects the secret key at path with a new password, or
// removes protection when removePassword is set.
func (s *Service) ChangePassword(path string, prompt domain.PasswordPrompt, removePassword bool) error {
	sk, err := s.Unlock(path, prompt)
	if err != nil {
		return err
	}

	var password []byte
	if !removePassword {
		if prompt == nil {
			return ErrNoPrompt
		}
		if password, err = readPassword(prompt, PromptNewPassword); err != nil {
			return err
		}
		defer crypto.Wipe(password)
	}

	out, err := s.gen.Guard.ChangePassword(sk, password)
	if err != nil {
		return err
	}
	if err := s.store.SaveSecretKey(path, out, true); err != nil {
		return fmt.Errorf("save secret key: %w", err)
	}
	s.log.Debug("password changed", "key_id", out.KeyID().String(), "protected", out.Protected())
	return nil
}

// readPassword calls prompt and normalizes an absent answer to an empty
// password, so it is never mistaken for "no password".
func readPassword(prompt domain.PasswordPrompt, label string) ([]byte, error) {
	password, err := prompt(label)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	if password == nil {
		password = []byte{}
	}
	return password, nil
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
