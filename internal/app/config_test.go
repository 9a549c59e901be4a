package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minisign/internal/domain"
	"minisign/internal/minisign"
)

func TestLoadConfig_MissingFileGivesDefaults(t *testing.T) {
	home := t.TempDir()
	cfg, err := LoadConfig(filepath.Join(home, "nope.yaml"), home)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(home), cfg)
	assert.Equal(t, filepath.Join(home, "minisign.key"), cfg.SecretKey)
	assert.Equal(t, "minisign.pub", cfg.PublicKey)
	assert.EqualValues(t, minisign.DefaultOpsLimit, cfg.KDF.OpsLimit)
	assert.EqualValues(t, minisign.DefaultMemLimit, cfg.KDF.MemLimit)
}

func TestLoadConfig_OverridesOnlyGivenKeys(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "config.yaml")
	yml := "public_key: /etc/release.pub\nlog_level: debug\nkdf:\n  opslimit: 0\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	cfg, err := LoadConfig(path, home)
	require.NoError(t, err)
	assert.Equal(t, "/etc/release.pub", cfg.PublicKey)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Zero(t, cfg.KDF.OpsLimit)
	assert.EqualValues(t, minisign.DefaultMemLimit, cfg.KDF.MemLimit)
	assert.Equal(t, filepath.Join(home, "minisign.key"), cfg.SecretKey)
}

func TestLoadConfig_ExpandsHome(t *testing.T) {
	userHome := t.TempDir()
	t.Setenv("HOME", userHome)

	home := t.TempDir()
	path := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("secret_key: ~/keys/sign.key\n"), 0o600))

	cfg, err := LoadConfig(path, home)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(userHome, "keys", "sign.key"), cfg.SecretKey)
}

func TestLoadConfig_Malformed(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kdf: [not, a, map"), 0o600))

	_, err := LoadConfig(path, home)
	assert.Error(t, err)
}

func TestConfigPath_Env(t *testing.T) {
	t.Setenv(ConfigEnv, "")
	assert.Equal(t, filepath.Join("h", "config.yaml"), ConfigPath("h"))

	t.Setenv(ConfigEnv, "/tmp/custom.yaml")
	assert.Equal(t, "/tmp/custom.yaml", ConfigPath("h"))
}

func TestNewWire_GenerateAndSign(t *testing.T) {
	home := t.TempDir()
	cfg := DefaultConfig(home)
	cfg.PublicKey = filepath.Join(home, "minisign.pub")
	cfg.KDF = KDFConfig{}
	cfg.LogLevel = "debug"

	var logs bytes.Buffer
	w, err := NewWire(cfg, &logs)
	require.NoError(t, err)

	paths := domain.KeyPaths{SecretKey: cfg.SecretKey, PublicKey: cfg.PublicKey}
	_, err = w.Keys.Generate(domain.GenerateRequest{Paths: paths, Password: []byte("pw")})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "component=keys")

	sk, err := w.Keys.Unlock(cfg.SecretKey, func(string) ([]byte, error) { return []byte("pw"), nil })
	require.NoError(t, err)
	assert.EqualValues(t, 0, sk.KDFOpsLimit())
}

func TestNewWire_BadLevel(t *testing.T) {
	cfg := DefaultConfig(t.TempDir())
	cfg.LogLevel = "shouty"
	_, err := NewWire(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}
