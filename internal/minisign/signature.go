package minisign

import "strings"

const signatureStructure = "signature"

// Signature is a detached minisign signature with its trusted comment.
type Signature struct {
	Algorithm        [2]byte
	KeyID            KeyID
	Signature        [signatureSize]byte
	UntrustedComment string
	TrustedComment   string
	CommentSignature [signatureSize]byte

	layout textLayout
}

// ParseSignature parses the contents of a .minisig file.
func ParseSignature(text string) (*Signature, error) {
	lines, layout := splitLines(text)
	if len(lines) != 4 {
		return nil, parseError(signatureStructure, "expected four lines", nil)
	}

	untrusted, ok := strings.CutPrefix(lines[0], untrustedPrefix)
	if !ok {
		return nil, parseError(signatureStructure, "missing untrusted comment", nil)
	}
	trusted, ok := strings.CutPrefix(lines[2], trustedPrefix)
	if !ok {
		return nil, parseError(signatureStructure, "missing trusted comment", nil)
	}

	raw, err := decode(lines[1])
	if err != nil {
		return nil, parseError(signatureStructure, "bad base64 signature", err)
	}
	if len(raw) != signatureBlobSize {
		return nil, parseError(signatureStructure, "unexpected signature length", nil)
	}
	if [2]byte(raw[:2]) != algHashedEd {
		return nil, parseError(signatureStructure, "unsupported signature algorithm", nil)
	}
	commentSig, err := decode(lines[3])
	if err != nil {
		return nil, parseError(signatureStructure, "bad base64 comment signature", err)
	}
	if len(commentSig) != signatureSize {
		return nil, parseError(signatureStructure, "unexpected comment signature length", nil)
	}

	sig := &Signature{
		UntrustedComment: untrusted,
		TrustedComment:   trusted,
		layout:           layout,
	}
	copy(sig.Algorithm[:], raw[:2])
	copy(sig.KeyID[:], raw[2:2+keyIDSize])
	copy(sig.Signature[:], raw[2+keyIDSize:])
	copy(sig.CommentSignature[:], commentSig)
	return sig, nil
}

// String serializes the signature in .minisig form. A parsed signature is
// written back with the line endings it was read with.
func (s *Signature) String() string {
	raw := make([]byte, 0, signatureBlobSize)
	raw = append(raw, s.Algorithm[:]...)
	raw = append(raw, s.KeyID[:]...)
	raw = append(raw, s.Signature[:]...)

	return s.layout.join(
		untrustedPrefix+s.UntrustedComment,
		encode(raw),
		trustedPrefix+s.TrustedComment,
		encode(s.CommentSignature[:]),
	)
}

// MarshalText implements encoding.TextMarshaler.
func (s *Signature) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Signature) UnmarshalText(text []byte) error {
	parsed, err := ParseSignature(string(text))
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}

// commentMessage is the payload covered by the comment signature.
func (s *Signature) commentMessage() []byte {
	msg := make([]byte, 0, signatureSize+len(s.TrustedComment))
	msg = append(msg, s.Signature[:]...)
	return append(msg, s.TrustedComment...)
}
