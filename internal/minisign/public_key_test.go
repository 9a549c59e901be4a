package minisign_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minisign/internal/minisign"
)

func TestKeyID_String(t *testing.T) {
	id := minisign.KeyID{166, 41, 163, 171, 79, 169, 183, 76}
	assert.Equal(t, "4CB7A94FABA329A6", id.String())

	// Leading zero nibbles are kept.
	id = minisign.KeyID{0x08, 0xa0, 0x18, 0x8b, 0xc5, 0x69, 0x5f, 0xf1}
	assert.Equal(t, "F15F69C58B18A008", id.String())
}

func TestParsePublicKey_File(t *testing.T) {
	text := readFixture(t, "minisign.pub")
	pk, err := minisign.ParsePublicKey(text)
	require.NoError(t, err)

	assert.Equal(t, minisign.KeyID{166, 41, 163, 171, 79, 169, 183, 76}, pk.KeyID)
	assert.Equal(t, [32]byte{
		108, 35, 192, 26, 47, 128, 233, 165, 133, 38, 242, 5, 76, 55, 135, 40,
		103, 72, 230, 43, 184, 117, 219, 37, 173, 250, 196, 122, 252, 174, 173, 140,
	}, pk.VerifyKey)
	assert.Equal(t, "minisign public key 4CB7A94FABA329A6", pk.UntrustedComment)
	assert.Equal(t, text, pk.String())
}

func TestParsePublicKey_BareLine(t *testing.T) {
	line := "RWSmKaOrT6m3TGwjwBovgOmlhSbyBUw3hyhnSOYruHXbJa36xHr8rq2M"
	pk, err := minisign.ParsePublicKey(line)
	require.NoError(t, err)
	assert.Empty(t, pk.UntrustedComment)
	assert.Equal(t, "minisign public key 4CB7A94FABA329A6", pk.Comment())
	assert.Equal(t, line, pk.Encoded())
	assert.Equal(t, line, pk.String())

	// A recreated key is written as a full file.
	fresh := &minisign.PublicKey{KeyID: pk.KeyID, VerifyKey: pk.VerifyKey}
	assert.Equal(t, readFixture(t, "minisign.pub"), fresh.String())
}

func TestParsePublicKey_EmptyCommentKept(t *testing.T) {
	text := "untrusted comment: \n" +
		"RWSmKaOrT6m3TGwjwBovgOmlhSbyBUw3hyhnSOYruHXbJa36xHr8rq2M\n"
	pk, err := minisign.ParsePublicKey(text)
	require.NoError(t, err)
	assert.Empty(t, pk.Comment())
	assert.Equal(t, text, pk.String())
}

func TestParsePublicKey_CustomCommentRoundTrip(t *testing.T) {
	text := "untrusted comment: minisign public key 4CB7A94FABA329A6 yay\n" +
		"RWSmKaOrT6m3TGwjwBovgOmlhSbyBUw3hyhnSOYruHXbJa36xHr8rq2M\n"
	pk, err := minisign.ParsePublicKey(text)
	require.NoError(t, err)
	assert.Equal(t, text, pk.String())
}

func TestParsePublicKey_RoundTripWithoutTrailingNewline(t *testing.T) {
	text := strings.TrimSuffix(readFixture(t, "minisign.pub"), "\n")
	pk, err := minisign.ParsePublicKey(text)
	require.NoError(t, err)
	assert.Equal(t, text, pk.String())
}

func TestParsePublicKey_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"bad base64":     "untrusted comment: x\n!!!!\n",
		"short":          "untrusted comment: x\nRWSmKaOrT6m3TA==\n",
		"wrong alg":      "untrusted comment: x\nRUSmKaOrT6m3TGwjwBovgOmlhSbyBUw3hyhnSOYruHXbJa36xHr8rq2M\n",
		"no comment tag": "comment: x\nRWSmKaOrT6m3TGwjwBovgOmlhSbyBUw3hyhnSOYruHXbJa36xHr8rq2M\n",
		"three lines":    "untrusted comment: x\nextra\nRWSmKaOrT6m3TGwjwBovgOmlhSbyBUw3hyhnSOYruHXbJa36xHr8rq2M\n",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := minisign.ParsePublicKey(text)
			var perr *minisign.ParseError
			require.True(t, errors.As(err, &perr), "got %v", err)
			assert.Equal(t, "public key", perr.Structure)
		})
	}
}

func TestPublicKey_TextMarshaling(t *testing.T) {
	text := readFixture(t, "other.pub")
	var pk minisign.PublicKey
	require.NoError(t, pk.UnmarshalText([]byte(text)))
	assert.Equal(t, "F15F69C58B18A008", pk.KeyID.String())

	out, err := pk.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, text, string(out))
}
