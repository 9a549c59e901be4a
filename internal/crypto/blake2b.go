package crypto

import (
	"hash"

	"golang.org/x/crypto/blake2b"
)

// Blake2b256 hashes the concatenation of parts.
func Blake2b256(parts ...[]byte) [blake2b.Size256]byte {
	h, _ := blake2b.New256(nil)
	for _, p := range parts {
		h.Write(p)
	}
	var out [blake2b.Size256]byte
	h.Sum(out[:0])
	return out
}

// Blake2b512 returns the 64-byte pre-hash of msg.
func Blake2b512(msg []byte) [blake2b.Size]byte {
	return blake2b.Sum512(msg)
}

// NewMessageHash returns a streaming BLAKE2b-512 hash.
func NewMessageHash() hash.Hash {
	// New512 only fails for keys longer than 64 bytes.
	h, _ := blake2b.New512(nil)
	return h
}
