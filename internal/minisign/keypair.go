package minisign

import (
	"crypto/rand"
	"fmt"
	"io"

	"minisign/internal/crypto"
)

// KeyGenerator produces fresh key pairs.
type KeyGenerator struct {
	Guard *Guard

	// OpsLimit and MemLimit are the scrypt limits written into new keys.
	OpsLimit uint64
	MemLimit uint64

	// Rand is the randomness source; nil means crypto/rand.
	Rand io.Reader
}

// NewKeyGenerator returns a generator with the default KDF limits.
func NewKeyGenerator(g *Guard) *KeyGenerator {
	return &KeyGenerator{Guard: g, OpsLimit: DefaultOpsLimit, MemLimit: DefaultMemLimit}
}

// GenerateKeyPair creates a key pair with the default guard and limits.
// A nil password leaves the secret key unprotected.
func GenerateKeyPair(password []byte) (*PrivateKey, *PublicKey, error) {
	return NewKeyGenerator(DefaultGuard()).Generate(password)
}

// Generate creates a new key pair. When password is non-nil the secret key
// is masked with a keystream derived from a fresh salt.
func (kg *KeyGenerator) Generate(password []byte) (*PrivateKey, *PublicKey, error) {
	if kg.Guard == nil {
		return nil, nil, ErrDependencyUnavailable
	}
	if err := crypto.CheckScryptLimits(kg.OpsLimit, kg.MemLimit); err != nil {
		return nil, nil, err
	}
	r := kg.Rand
	if r == nil {
		r = rand.Reader
	}

	sk := &PrivateKey{
		kdfAlgorithm:     kdfNone,
		kdfOpsLimit:      kg.OpsLimit,
		kdfMemLimit:      kg.MemLimit,
		untrustedComment: defaultSecretKeyComment,
	}
	if _, err := io.ReadFull(r, sk.keyID[:]); err != nil {
		return nil, nil, fmt.Errorf("generate key id: %w", err)
	}
	seed, pub, err := crypto.GenerateEd25519(r)
	if err != nil {
		return nil, nil, fmt.Errorf("generate ed25519 key: %w", err)
	}
	sk.seed, sk.verifyKey = seed, pub
	crypto.Wipe(seed[:])
	sk.checksum = sk.expectedChecksum()

	// The salt is sampled even for unprotected keys so a password can be
	// added later without changing the layout.
	if _, err := io.ReadFull(r, sk.kdfSalt[:]); err != nil {
		return nil, nil, fmt.Errorf("generate salt: %w", err)
	}

	if password != nil {
		ks, err := kg.Guard.DeriveKeystream(password, sk.kdfSalt, sk.kdfOpsLimit, sk.kdfMemLimit)
		if err != nil {
			return nil, nil, err
		}
		sk.kdfAlgorithm = kdfScrypt
		sk.keystream = ks
		sk.untrustedComment = defaultEncryptedSecretKeyComment
	}
	return sk, sk.PublicKey(), nil
}
