package minisign

import (
	"encoding/base64"
	"strings"
)

// Byte layout sizes.
const (
	keyIDSize     = 8
	seedSize      = 32
	publicSize    = 32
	checksumSize  = 32
	saltSize      = 32
	signatureSize = 64

	// keynum = key id || secret key || public key || checksum
	keynumSize = keyIDSize + seedSize + publicSize + checksumSize

	publicKeyBlobSize = 2 + keyIDSize + publicSize
	secretKeyBlobSize = 2 + 2 + 2 + saltSize + 8 + 8 + keynumSize
	signatureBlobSize = 2 + keyIDSize + signatureSize
)

// Default scrypt limits for newly generated keys (libsodium's "sensitive" profile).
const (
	DefaultOpsLimit uint64 = 1 << 25
	DefaultMemLimit uint64 = 1 << 30
)

var (
	algEd           = [2]byte{'E', 'd'}
	algHashedEd     = [2]byte{'E', 'D'}
	kdfScrypt       = [2]byte{'S', 'c'}
	kdfNone         = [2]byte{0, 0}
	checksumBlake2b = [2]byte{'B', '2'}
)

const (
	untrustedPrefix = "untrusted comment: "
	trustedPrefix   = "trusted comment: "

	defaultSecretKeyComment          = "minisign secret key"
	defaultEncryptedSecretKeyComment = "minisign encrypted secret key"
	defaultSignatureComment          = "signature from minisign secret key"
)

// textLayout records the line endings of parsed text so it can be written
// back byte for byte. The zero value is the canonical layout: "\n" after
// every line.
type textLayout struct {
	parsed  bool
	eol     string // "\n" or "\r\n"
	trailer string // line endings after the last line, as read
}

// splitLines splits text into lines. Trailing blank lines and a "\r" at the
// end of each line are dropped; the layout remembers both.
func splitLines(text string) ([]string, textLayout) {
	body := strings.TrimRight(text, "\r\n")
	layout := textLayout{parsed: true, eol: "\n", trailer: text[len(body):]}
	if body == "" {
		return nil, layout
	}
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if trimmed, ok := strings.CutSuffix(line, "\r"); ok {
			lines[i] = trimmed
			layout.eol = "\r\n"
		}
	}
	return lines, layout
}

// join assembles lines in this layout.
func (l textLayout) join(lines ...string) string {
	if !l.parsed {
		return strings.Join(lines, "\n") + "\n"
	}
	return strings.Join(lines, l.eol) + l.trailer
}

func encode(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

func decode(s string) ([]byte, error) { return base64.StdEncoding.DecodeString(s) }
