package minisign_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minisign/internal/minisign"
)

func TestParseSignature_File(t *testing.T) {
	text := readFixture(t, "example.txt.minisig")
	sig, err := minisign.ParseSignature(text)
	require.NoError(t, err)

	assert.Equal(t, [2]byte{'E', 'D'}, sig.Algorithm)
	assert.Equal(t, "4CB7A94FABA329A6", sig.KeyID.String())
	assert.Equal(t, "signature from minisign secret key", sig.UntrustedComment)
	assert.Equal(t, "timestamp:1653934067\tfile:example.txt\thashed", sig.TrustedComment)
	assert.Equal(t, text, sig.String())
}

func TestParseSignature_WithoutTrailingNewline(t *testing.T) {
	text := strings.TrimSuffix(readFixture(t, "example.txt.minisig"), "\n")
	sig, err := minisign.ParseSignature(text)
	require.NoError(t, err)
	assert.Equal(t, text, sig.String())
}

func TestParseSignature_TrailingBlankLineAndCRLF(t *testing.T) {
	text := readFixture(t, "example.txt.minisig")
	pk, err := minisign.ParsePublicKey(readFixture(t, "minisign.pub"))
	require.NoError(t, err)
	msg := []byte(readFixture(t, "example.txt"))

	for name, in := range map[string]string{
		"blank line": text + "\n",
		"crlf":       strings.ReplaceAll(text, "\n", "\r\n"),
		"crlf blank": strings.ReplaceAll(text, "\n", "\r\n") + "\r\n",
	} {
		t.Run(name, func(t *testing.T) {
			sig, err := minisign.ParseSignature(in)
			require.NoError(t, err)
			assert.Equal(t, "timestamp:1653934067\tfile:example.txt\thashed", sig.TrustedComment)
			assert.Equal(t, in, sig.String())

			_, err = pk.Verify(sig, msg)
			assert.NoError(t, err)
		})
	}
}

func TestParseSignature_Malformed(t *testing.T) {
	good := strings.Split(strings.TrimSuffix(readFixture(t, "example.txt.minisig"), "\n"), "\n")
	with := func(i int, line string) string {
		lines := append([]string(nil), good...)
		lines[i] = line
		return strings.Join(lines, "\n") + "\n"
	}

	cases := map[string]string{
		"too few lines":       strings.Join(good[:3], "\n"),
		"no untrusted prefix": with(0, "signature from minisign secret key"),
		"no trusted prefix":   with(2, "timestamp:1653934067"),
		"bad base64":          with(1, "%%%"),
		"short signature":     with(1, "RUSmKaOrT6m3TA=="),
		"short comment sig":   with(3, "AAAA"),
		"legacy algorithm":    with(1, "RWQ"+good[1][3:]),
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := minisign.ParseSignature(text)
			var perr *minisign.ParseError
			require.True(t, errors.As(err, &perr), "got %v", err)
			assert.Equal(t, "signature", perr.Structure)
		})
	}
}

func TestSignature_TextMarshaling(t *testing.T) {
	text := readFixture(t, "golden.minisig")
	var sig minisign.Signature
	require.NoError(t, sig.UnmarshalText([]byte(text)))
	assert.Equal(t, "this is a trusted comment", sig.TrustedComment)

	out, err := sig.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, text, string(out))
}
