package crypto

import "crypto/subtle"

// Mask XORs block with keystream and returns the result in a new slice.
// Applying it twice with the same keystream restores block. Mask panics if
// keystream is shorter than block.
func Mask(keystream, block []byte) []byte {
	if len(keystream) < len(block) {
		panic("crypto: keystream shorter than block")
	}
	out := make([]byte, len(block))
	subtle.XORBytes(out, block, keystream[:len(block)])
	return out
}
