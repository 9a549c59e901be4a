package store

import (
	"fmt"
	"io"
	"os"

	"minisign/internal/domain"
	"minisign/internal/minisign"
)

const signatureMode = 0o644

// SignatureFileStore reads and writes .minisig files and opens the messages
// they cover.
type SignatureFileStore struct{}

// NewSignatureFileStore returns a SignatureFileStore.
func NewSignatureFileStore() *SignatureFileStore { return &SignatureFileStore{} }

// LoadSignature reads and parses a signature file.
func (s *SignatureFileStore) LoadSignature(path string) (*minisign.Signature, error) {
	text, err := readText(path)
	if err != nil {
		return nil, err
	}
	sig, err := minisign.ParseSignature(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sig, nil
}

// SaveSignature writes sig to path, replacing any previous signature.
func (s *SignatureFileStore) SaveSignature(path string, sig *minisign.Signature) error {
	return writeText(path, sig.String(), signatureMode, true)
}

// OpenMessage opens the file at path for hashing.
func (s *SignatureFileStore) OpenMessage(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Compile-time assertions that SignatureFileStore implements the domain stores.
var (
	_ domain.SignatureStore = (*SignatureFileStore)(nil)
	_ domain.MessageSource  = (*SignatureFileStore)(nil)
)
