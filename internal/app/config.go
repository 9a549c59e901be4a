package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"minisign/internal/minisign"
)

const (
	// ConfigEnv names the environment variable that overrides the config path.
	ConfigEnv = "MINISIGN_CONFIG"

	homeDirName       = ".minisign"
	configFileName    = "config.yaml"
	secretKeyFileName = "minisign.key"
	publicKeyFileName = "minisign.pub"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string    `yaml:"-"`          // e.g. $HOME/.minisign
	SecretKey string    `yaml:"secret_key"` // default <Home>/minisign.key
	PublicKey string    `yaml:"public_key"` // default ./minisign.pub
	LogLevel  string    `yaml:"log_level"`  // debug, info, warn or error
	KDF       KDFConfig `yaml:"kdf"`
}

// KDFConfig sets the scrypt limits written into newly generated keys.
type KDFConfig struct {
	OpsLimit uint64 `yaml:"opslimit"`
	MemLimit uint64 `yaml:"memlimit"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig(home string) Config {
	return Config{
		Home:      home,
		SecretKey: filepath.Join(home, secretKeyFileName),
		PublicKey: publicKeyFileName,
		LogLevel:  "warn",
		KDF: KDFConfig{
			OpsLimit: minisign.DefaultOpsLimit,
			MemLimit: minisign.DefaultMemLimit,
		},
	}
}

// DefaultHome returns ~/.minisign.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, homeDirName), nil
}

// ConfigPath returns the config file location: $MINISIGN_CONFIG when set,
// otherwise <home>/config.yaml.
func ConfigPath(home string) string {
	if p := os.Getenv(ConfigEnv); p != "" {
		return p
	}
	return filepath.Join(home, configFileName)
}

// LoadConfig reads the YAML file at path over the defaults for home.
// A missing file yields the defaults.
func LoadConfig(path, home string) (Config, error) {
	cfg := DefaultConfig(home)
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.SecretKey = expandHome(cfg.SecretKey)
	cfg.PublicKey = expandHome(cfg.PublicKey)
	return cfg, nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(p string) string {
	rest, ok := cutHomePrefix(p)
	if !ok {
		return p
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(dir, rest)
}

func cutHomePrefix(p string) (string, bool) {
	if p == "~" {
		return "", true
	}
	if len(p) >= 2 && p[0] == '~' && (p[1] == '/' || p[1] == filepath.Separator) {
		return p[2:], true
	}
	return "", false
}
