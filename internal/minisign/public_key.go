package minisign

import (
	"strings"
)

const publicKeyStructure = "public key"

// PublicKey is a minisign verification key.
type PublicKey struct {
	KeyID     KeyID
	VerifyKey [publicSize]byte

	// UntrustedComment is the text after "untrusted comment: ". When empty,
	// String synthesizes "minisign public key <KEYID>" unless the key was
	// parsed from text with an empty comment line.
	UntrustedComment string

	layout      textLayout
	bare        bool // parsed from a bare key line
	keepComment bool // parsed with a comment line, possibly empty
}

// ParsePublicKey parses either a two-line public key file or the bare base64
// key line.
func ParsePublicKey(text string) (*PublicKey, error) {
	lines, layout := splitLines(text)
	if len(lines) != 1 && len(lines) != 2 {
		return nil, parseError(publicKeyStructure, "expected a comment line and a key line", nil)
	}

	raw, err := decode(strings.TrimSpace(lines[len(lines)-1]))
	if err != nil {
		return nil, parseError(publicKeyStructure, "bad base64", err)
	}
	if len(raw) != publicKeyBlobSize {
		return nil, parseError(publicKeyStructure, "unexpected key length", nil)
	}
	if [2]byte(raw[:2]) != algEd {
		return nil, parseError(publicKeyStructure, "unsupported signature algorithm", nil)
	}

	pk := &PublicKey{layout: layout, bare: len(lines) == 1}
	copy(pk.KeyID[:], raw[2:2+keyIDSize])
	copy(pk.VerifyKey[:], raw[2+keyIDSize:])

	if len(lines) == 2 {
		comment, ok := strings.CutPrefix(lines[0], untrustedPrefix)
		if !ok {
			return nil, parseError(publicKeyStructure, "missing untrusted comment", nil)
		}
		pk.UntrustedComment = comment
		pk.keepComment = true
	}
	return pk, nil
}

// Encoded returns the base64 key line, the form accepted on the command line.
func (pk *PublicKey) Encoded() string {
	raw := make([]byte, 0, publicKeyBlobSize)
	raw = append(raw, algEd[:]...)
	raw = append(raw, pk.KeyID[:]...)
	raw = append(raw, pk.VerifyKey[:]...)
	return encode(raw)
}

// Comment returns the untrusted comment that String writes.
func (pk *PublicKey) Comment() string {
	if pk.UntrustedComment == "" && !pk.keepComment {
		return "minisign public key " + pk.KeyID.String()
	}
	return pk.UntrustedComment
}

// String serializes the key as a two-line public key file. A key parsed from
// text is written back in the form it was read, including a bare key line.
func (pk *PublicKey) String() string {
	if pk.bare && pk.UntrustedComment == "" {
		return pk.layout.join(pk.Encoded())
	}
	return pk.layout.join(untrustedPrefix+pk.Comment(), pk.Encoded())
}

// MarshalText implements encoding.TextMarshaler.
func (pk *PublicKey) MarshalText() ([]byte, error) { return []byte(pk.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	parsed, err := ParsePublicKey(string(text))
	if err != nil {
		return err
	}
	*pk = *parsed
	return nil
}
