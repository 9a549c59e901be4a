package minisign

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"minisign/internal/crypto"
)

// Guard turns passwords into keystreams that mask and unmask the keynum
// block of a secret key, and checks that unmasked keys are consistent.
type Guard struct {
	kdf crypto.KDF
}

var defaultGuard = &Guard{kdf: crypto.Scrypt{}}

// NewGuard returns a Guard using kdf. It fails with ErrDependencyUnavailable
// when kdf is nil.
func NewGuard(kdf crypto.KDF) (*Guard, error) {
	if kdf == nil {
		return nil, ErrDependencyUnavailable
	}
	return &Guard{kdf: kdf}, nil
}

// DefaultGuard returns the Guard backed by scrypt.
func DefaultGuard() *Guard { return defaultGuard }

// DeriveKeystream derives the 104-byte keystream for password and the KDF parameters.
func (g *Guard) DeriveKeystream(password []byte, salt [saltSize]byte, opsLimit, memLimit uint64) (*[keynumSize]byte, error) {
	out, err := g.kdf.DeriveKey(password, salt[:], opsLimit, memLimit, keynumSize)
	if err != nil {
		return nil, fmt.Errorf("derive keystream: %w", err)
	}
	defer crypto.Wipe(out)
	if len(out) != keynumSize {
		return nil, fmt.Errorf("derive keystream: got %d bytes, want %d", len(out), keynumSize)
	}
	ks := [keynumSize]byte(out)
	return &ks, nil
}

// mask XORs a keynum block with keystream. It is its own inverse.
func mask(keystream *[keynumSize]byte, block [keynumSize]byte) [keynumSize]byte {
	return [keynumSize]byte(crypto.Mask(keystream[:], block[:]))
}

// ParsePrivateKey decodes text and, for protected keys, unmasks the keynum
// block with a keystream derived from password.
func (g *Guard) ParsePrivateKey(text string, password []byte) (*PrivateKey, error) {
	enc, err := decodePrivateKey(text)
	if err != nil {
		return nil, err
	}
	sk := enc.key
	if err := requirePassword(sk, password); err != nil {
		return nil, err
	}

	block := enc.keynum
	if sk.Protected() {
		ks, err := g.DeriveKeystream(password, sk.kdfSalt, sk.kdfOpsLimit, sk.kdfMemLimit)
		if errors.Is(err, crypto.ErrScryptCost) {
			return nil, parseError(secretKeyStructure, "key derivation limits too high", err)
		}
		if err != nil {
			return nil, err
		}
		block = mask(ks, block)
		sk.keystream = ks
	}
	sk.loadKeynum(block)
	crypto.Wipe(block[:])

	if err := Validate(sk); err != nil {
		return nil, err
	}
	return sk, nil
}

// requirePassword fails before any key derivation when a protected key is
// opened without a password.
func requirePassword(sk *PrivateKey, password []byte) error {
	if sk.Protected() && password == nil {
		return ErrPasswordMissing
	}
	return nil
}

// Validate checks that the public key derives from the secret key and that
// the checksum matches. On a protected key either mismatch means the
// password was wrong, since a bad keystream yields garbage rather than a
// decode failure.
func Validate(sk *PrivateKey) error {
	derived := crypto.Ed25519PublicFromSeed(sk.seed)
	checksum := sk.expectedChecksum()

	keyOK := subtle.ConstantTimeCompare(derived[:], sk.verifyKey[:]) == 1
	sumOK := subtle.ConstantTimeCompare(checksum[:], sk.checksum[:]) == 1
	if keyOK && sumOK {
		return nil
	}
	if sk.Protected() {
		return ErrPasswordIncorrect
	}
	if !sumOK {
		return parseError(secretKeyStructure, "checksum mismatch", nil)
	}
	return parseError(secretKeyStructure, "public key does not match secret key", nil)
}

// ChangePassword returns a copy of sk masked with a keystream derived from
// newPassword and the existing salt and limits. A nil newPassword removes
// protection and clears the KDF algorithm.
func (g *Guard) ChangePassword(sk *PrivateKey, newPassword []byte) (*PrivateKey, error) {
	out := sk.clone()
	if newPassword == nil {
		out.kdfAlgorithm = kdfNone
		out.keystream = nil
		if out.untrustedComment == defaultEncryptedSecretKeyComment {
			out.untrustedComment = defaultSecretKeyComment
		}
		return out, nil
	}
	ks, err := g.DeriveKeystream(newPassword, out.kdfSalt, out.kdfOpsLimit, out.kdfMemLimit)
	if err != nil {
		return nil, err
	}
	out.kdfAlgorithm = kdfScrypt
	out.keystream = ks
	if out.untrustedComment == defaultSecretKeyComment {
		out.untrustedComment = defaultEncryptedSecretKeyComment
	}
	return out, nil
}
