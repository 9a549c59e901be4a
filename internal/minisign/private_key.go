package minisign

import (
	"encoding/binary"
	"strings"

	"minisign/internal/crypto"
)

const secretKeyStructure = "secret key"

// PrivateKey is a minisign secret key.
//
// A PrivateKey owns its secret bytes. A protected key also holds the keystream
// derived from its password so it can be serialized again without re-running
// the KDF.
type PrivateKey struct {
	kdfAlgorithm [2]byte
	kdfSalt      [saltSize]byte
	kdfOpsLimit  uint64
	kdfMemLimit  uint64

	keyID     KeyID
	seed      [seedSize]byte
	verifyKey [publicSize]byte
	checksum  [checksumSize]byte

	untrustedComment string
	layout           textLayout

	// keystream is set iff kdfAlgorithm is kdfScrypt.
	keystream *[keynumSize]byte
}

// encodedPrivateKey is the decoded file before the keynum block is unmasked.
type encodedPrivateKey struct {
	key    *PrivateKey
	keynum [keynumSize]byte
}

// ParsePrivateKey parses a secret key file, unmasking it with password when
// it is protected. A nil password means no password was supplied.
func ParsePrivateKey(text string, password []byte) (*PrivateKey, error) {
	return DefaultGuard().ParsePrivateKey(text, password)
}

func decodePrivateKey(text string) (*encodedPrivateKey, error) {
	lines, layout := splitLines(text)
	if len(lines) != 2 {
		return nil, parseError(secretKeyStructure, "expected a comment line and a key line", nil)
	}
	comment, ok := strings.CutPrefix(lines[0], untrustedPrefix)
	if !ok {
		return nil, parseError(secretKeyStructure, "missing untrusted comment", nil)
	}

	raw, err := decode(strings.TrimSpace(lines[1]))
	if err != nil {
		return nil, parseError(secretKeyStructure, "bad base64", err)
	}
	if len(raw) != secretKeyBlobSize {
		return nil, parseError(secretKeyStructure, "unexpected key length", nil)
	}

	// sig_alg(2) kdf_alg(2) cksum_alg(2) salt(32) opslimit(8) memlimit(8) keynum(104)
	if [2]byte(raw[0:2]) != algEd {
		return nil, parseError(secretKeyStructure, "unsupported signature algorithm", nil)
	}
	kdfAlg := [2]byte(raw[2:4])
	if kdfAlg != kdfScrypt && kdfAlg != kdfNone {
		return nil, parseError(secretKeyStructure, "unsupported key derivation algorithm", nil)
	}
	if [2]byte(raw[4:6]) != checksumBlake2b {
		return nil, parseError(secretKeyStructure, "unsupported checksum algorithm", nil)
	}

	sk := &PrivateKey{
		kdfAlgorithm:     kdfAlg,
		kdfSalt:          [saltSize]byte(raw[6:38]),
		kdfOpsLimit:      binary.LittleEndian.Uint64(raw[38:46]),
		kdfMemLimit:      binary.LittleEndian.Uint64(raw[46:54]),
		untrustedComment: comment,
		layout:           layout,
	}
	return &encodedPrivateKey{key: sk, keynum: [keynumSize]byte(raw[54:])}, nil
}

// loadKeynum fills the key fields from an unmasked keynum block.
func (sk *PrivateKey) loadKeynum(block [keynumSize]byte) {
	off := 0
	off += copy(sk.keyID[:], block[off:])
	off += copy(sk.seed[:], block[off:])
	off += copy(sk.verifyKey[:], block[off:])
	copy(sk.checksum[:], block[off:])
}

// keynum assembles the unmasked keynum block.
func (sk *PrivateKey) keynum() [keynumSize]byte {
	var block [keynumSize]byte
	off := 0
	off += copy(block[off:], sk.keyID[:])
	off += copy(block[off:], sk.seed[:])
	off += copy(block[off:], sk.verifyKey[:])
	copy(block[off:], sk.checksum[:])
	return block
}

// KeyID returns the key id.
func (sk *PrivateKey) KeyID() KeyID { return sk.keyID }

// VerifyKey returns the Ed25519 public key stored alongside the secret key.
func (sk *PrivateKey) VerifyKey() [publicSize]byte { return sk.verifyKey }

// Checksum returns the stored BLAKE2b-256 checksum.
func (sk *PrivateKey) Checksum() [checksumSize]byte { return sk.checksum }

// KDFAlgorithm returns "Sc" for password-protected keys and two zero bytes otherwise.
func (sk *PrivateKey) KDFAlgorithm() [2]byte { return sk.kdfAlgorithm }

// KDFSalt returns the scrypt salt.
func (sk *PrivateKey) KDFSalt() [saltSize]byte { return sk.kdfSalt }

// KDFOpsLimit returns the stored scrypt opslimit.
func (sk *PrivateKey) KDFOpsLimit() uint64 { return sk.kdfOpsLimit }

// KDFMemLimit returns the stored scrypt memlimit.
func (sk *PrivateKey) KDFMemLimit() uint64 { return sk.kdfMemLimit }

// UntrustedComment returns the comment line text.
func (sk *PrivateKey) UntrustedComment() string { return sk.untrustedComment }

// Protected reports whether the key is stored masked with a password.
func (sk *PrivateKey) Protected() bool { return sk.kdfAlgorithm != kdfNone }

// PublicKey recreates the public key for sk.
func (sk *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{KeyID: sk.keyID, VerifyKey: sk.verifyKey}
}

// WithNewPassword returns a copy of sk protected by newPassword, or
// unprotected when newPassword is nil. The salt is kept. The serialized form
// of the returned key differs from that of sk.
func (sk *PrivateKey) WithNewPassword(newPassword []byte) (*PrivateKey, error) {
	return DefaultGuard().ChangePassword(sk, newPassword)
}

// String serializes the key as a two-line secret key file, masking the
// keynum block again when the key is protected. A parsed key keeps the line
// endings it was read with.
func (sk *PrivateKey) String() string {
	block := sk.keynum()
	if sk.keystream != nil {
		block = mask(sk.keystream, block)
	}

	raw := make([]byte, 0, secretKeyBlobSize)
	raw = append(raw, algEd[:]...)
	raw = append(raw, sk.kdfAlgorithm[:]...)
	raw = append(raw, checksumBlake2b[:]...)
	raw = append(raw, sk.kdfSalt[:]...)
	raw = binary.LittleEndian.AppendUint64(raw, sk.kdfOpsLimit)
	raw = binary.LittleEndian.AppendUint64(raw, sk.kdfMemLimit)
	raw = append(raw, block[:]...)
	defer crypto.Wipe(raw)

	return sk.layout.join(untrustedPrefix+sk.untrustedComment, encode(raw))
}

func (sk *PrivateKey) clone() *PrivateKey {
	out := *sk
	if sk.keystream != nil {
		ks := *sk.keystream
		out.keystream = &ks
	}
	return &out
}

// expectedChecksum recomputes the checksum over the key material.
func (sk *PrivateKey) expectedChecksum() [checksumSize]byte {
	return crypto.Blake2b256(algEd[:], sk.keyID[:], sk.seed[:], sk.verifyKey[:])
}
