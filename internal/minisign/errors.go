package minisign

import (
	"errors"
	"fmt"
)

var (
	// ErrPasswordMissing is returned when a protected key is opened without a password.
	ErrPasswordMissing = errors.New("missing password for encrypted key")

	// ErrPasswordIncorrect is returned when the password does not reproduce the
	// stored checksum and public key.
	ErrPasswordIncorrect = errors.New("wrong password for that key")

	// ErrDependencyUnavailable is returned when no key derivation function is configured.
	ErrDependencyUnavailable = errors.New("minisign: key derivation function unavailable")

	// ErrVerification matches every signature verification failure.
	ErrVerification = errors.New("minisign: verification failed")

	// ErrSignatureInvalid reports a message signature that does not verify.
	ErrSignatureInvalid error = verificationError("Signature verification failed")

	// ErrCommentSignatureInvalid reports a trusted comment that was altered after signing.
	ErrCommentSignatureInvalid error = verificationError("Comment signature verification failed")
)

type verificationError string

func (e verificationError) Error() string { return string(e) }

func (verificationError) Is(target error) bool { return target == ErrVerification }

// KeyMismatchError is returned when a signature was made with a different key
// than the one used to verify it.
type KeyMismatchError struct {
	SignatureKeyID KeyID
	PublicKeyID    KeyID
}

func (e *KeyMismatchError) Error() string {
	return fmt.Sprintf("Signature key id is %s\nbut the key id in the public key is %s",
		e.SignatureKeyID, e.PublicKeyID)
}

// Is reports whether target is ErrVerification.
func (e *KeyMismatchError) Is(target error) bool { return target == ErrVerification }

// ParseError describes malformed or truncated input.
type ParseError struct {
	Structure string // "public key", "secret key" or "signature"
	Reason    string
	Err       error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("minisign: invalid %s: %s: %v", e.Structure, e.Reason, e.Err)
	}
	return fmt.Sprintf("minisign: invalid %s: %s", e.Structure, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseError(structure, reason string, err error) *ParseError {
	return &ParseError{Structure: structure, Reason: reason, Err: err}
}
