// Package store provides file-based persistence for minisign keys and
// signatures.
//
// It contains concrete implementations of the domain storage interfaces.
// Files are written through a temporary file and an atomic rename so a
// crash never leaves a half-written key behind. Secret keys are written with
// mode 0600 and their parent directory is created with mode 0700.
//
// The package includes:
//   - Public and secret key files (KeyFileStore)
//   - Signature files and the messages they cover (SignatureFileStore)
package store
