package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"io"
)

// Ed25519 sizes used by the minisign layouts.
const (
	SeedSize      = ed25519.SeedSize
	PublicKeySize = ed25519.PublicKeySize
	SignatureSize = ed25519.SignatureSize
)

// GenerateEd25519 returns a new Ed25519 seed and its public key.
// A nil r uses crypto/rand.
func GenerateEd25519(r io.Reader) (seed [SeedSize]byte, pub [PublicKeySize]byte, err error) {
	if r == nil {
		r = rand.Reader
	}
	if _, err = io.ReadFull(r, seed[:]); err != nil {
		return seed, pub, err
	}
	return seed, Ed25519PublicFromSeed(seed), nil
}

// Ed25519PublicFromSeed derives the public key for seed.
func Ed25519PublicFromSeed(seed [SeedSize]byte) (pub [PublicKeySize]byte) {
	sk := ed25519.NewKeyFromSeed(seed[:])
	defer Wipe(sk)
	copy(pub[:], sk[SeedSize:])
	return pub
}

// SignEd25519 signs msg with the key expanded from seed.
func SignEd25519(seed [SeedSize]byte, msg []byte) (sig [SignatureSize]byte) {
	sk := ed25519.NewKeyFromSeed(seed[:])
	defer Wipe(sk)
	copy(sig[:], ed25519.Sign(sk, msg))
	return sig
}

// VerifyEd25519 verifies sig over msg with pub.
func VerifyEd25519(pub [PublicKeySize]byte, msg []byte, sig [SignatureSize]byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), msg, sig[:])
}
