package store

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"minisign/internal/domain"
	"minisign/internal/minisign"
)

const (
	publicKeyMode = 0o644
	secretKeyMode = 0o600
)

// KeyFileStore reads and writes minisign key files.
type KeyFileStore struct {
	mu sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore.
func NewKeyFileStore() *KeyFileStore { return &KeyFileStore{} }

// KeyExists reports whether a file is present at path.
func (s *KeyFileStore) KeyExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// LoadPublicKey reads and parses a public key file.
func (s *KeyFileStore) LoadPublicKey(path string) (*minisign.PublicKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text, err := readText(path)
	if err != nil {
		return nil, err
	}
	pk, err := minisign.ParsePublicKey(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pk, nil
}

// SavePublicKey writes pk to path.
func (s *KeyFileStore) SavePublicKey(path string, pk *minisign.PublicKey, overwrite bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeText(path, pk.String(), publicKeyMode, overwrite)
}

// LoadSecretKeyText reads a secret key file without parsing it.
func (s *KeyFileStore) LoadSecretKeyText(path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return readText(path)
}

// SaveSecretKey writes sk to path with owner-only permissions.
func (s *KeyFileStore) SaveSecretKey(path string, sk *minisign.PrivateKey, overwrite bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeText(path, sk.String(), secretKeyMode, overwrite)
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
