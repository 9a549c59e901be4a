package interfaces

import (
	"io"

	"minisign/internal/minisign"
)

// KeyStore persists key files.
type KeyStore interface {
	// KeyExists reports whether a key file is present at path.
	KeyExists(path string) (bool, error)

	LoadPublicKey(path string) (*minisign.PublicKey, error)
	SavePublicKey(path string, pk *minisign.PublicKey, overwrite bool) error

	// LoadSecretKeyText returns the raw file; opening it may need a password.
	LoadSecretKeyText(path string) (string, error)
	SaveSecretKey(path string, sk *minisign.PrivateKey, overwrite bool) error
}

// SignatureStore persists .minisig files.
type SignatureStore interface {
	LoadSignature(path string) (*minisign.Signature, error)
	SaveSignature(path string, sig *minisign.Signature) error
}

// MessageSource opens the files being signed or verified.
type MessageSource interface {
	OpenMessage(path string) (io.ReadCloser, error)
}
