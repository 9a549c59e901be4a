package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minisign/internal/domain"
	"minisign/internal/minisign"
	"minisign/internal/store"
)

func newKeyPair(t *testing.T, password []byte) (*minisign.PrivateKey, *minisign.PublicKey) {
	t.Helper()
	kg := minisign.NewKeyGenerator(minisign.DefaultGuard())
	kg.OpsLimit, kg.MemLimit = 0, 0
	sk, pk, err := kg.Generate(password)
	require.NoError(t, err)
	return sk, pk
}

func TestKeyStore_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	var keys domain.KeyStore = store.NewKeyFileStore()
	sk, pk := newKeyPair(t, []byte("pass"))

	secPath := filepath.Join(home, ".minisign", "minisign.key")
	pubPath := filepath.Join(home, "minisign.pub")
	exists, err := keys.KeyExists(secPath)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, keys.SaveSecretKey(secPath, sk, false))
	require.NoError(t, keys.SavePublicKey(pubPath, pk, false))

	exists, err = keys.KeyExists(secPath)
	require.NoError(t, err)
	assert.True(t, exists)

	text, err := keys.LoadSecretKeyText(secPath)
	require.NoError(t, err)
	assert.Equal(t, sk.String(), text)

	got, err := keys.LoadPublicKey(pubPath)
	require.NoError(t, err)
	assert.Equal(t, pk.String(), got.String())

	info, err := os.Stat(secPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestKeyStore_RefusesOverwrite(t *testing.T) {
	home := t.TempDir()
	keys := store.NewKeyFileStore()
	sk, _ := newKeyPair(t, nil)
	other, _ := newKeyPair(t, nil)

	path := filepath.Join(home, "minisign.key")
	require.NoError(t, keys.SaveSecretKey(path, sk, false))

	err := keys.SaveSecretKey(path, other, false)
	require.ErrorIs(t, err, store.ErrExists)

	text, err := keys.LoadSecretKeyText(path)
	require.NoError(t, err)
	assert.Equal(t, sk.String(), text, "first key is untouched")

	require.NoError(t, keys.SaveSecretKey(path, other, true))
	text, err = keys.LoadSecretKeyText(path)
	require.NoError(t, err)
	assert.Equal(t, other.String(), text)
}

func TestKeyStore_LoadPublicKey_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pub")
	require.NoError(t, os.WriteFile(path, []byte("not a key\n"), 0o644))

	_, err := store.NewKeyFileStore().LoadPublicKey(path)
	var perr *minisign.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestKeyStore_LoadMissing(t *testing.T) {
	_, err := store.NewKeyFileStore().LoadSecretKeyText(filepath.Join(t.TempDir(), "absent.key"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSignatureStore_SaveLoad(t *testing.T) {
	dir := t.TempDir()
	sk, _ := newKeyPair(t, nil)
	sig := sk.Sign("example.txt", []byte("example"), minisign.SignOptions{Time: time.Unix(1, 0)})

	sigs := store.NewSignatureFileStore()
	path := filepath.Join(dir, "example.txt.minisig")
	require.NoError(t, sigs.SaveSignature(path, sig))
	// Signatures are replaced without force.
	require.NoError(t, sigs.SaveSignature(path, sig))

	got, err := sigs.LoadSignature(path)
	require.NoError(t, err)
	assert.Equal(t, sig.String(), got.String())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestSignatureStore_OpenMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msg.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	rc, err := store.NewSignatureFileStore().OpenMessage(path)
	require.NoError(t, err)
	defer rc.Close()

	buf := make([]byte, 5)
	_, err = rc.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(buf))
}
