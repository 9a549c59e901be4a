package app

import (
	"io"
	"log/slog"

	"minisign/internal/domain"
	"minisign/internal/minisign"
	keysvc "minisign/internal/services/keys"
	signingsvc "minisign/internal/services/signing"
	"minisign/internal/store"
	"minisign/internal/util/logging"
)

// Wire bundles all stores and services for the CLI.
type Wire struct {
	Config  Config
	Log     *slog.Logger
	Keys    domain.KeyService
	Signing domain.SigningService
}

// NewWire constructs the dependency graph from cfg. Logs go to logOut.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.New(logOut, level)

	// File-based stores
	keyStore := store.NewKeyFileStore()
	sigStore := store.NewSignatureFileStore()

	gen := minisign.NewKeyGenerator(minisign.DefaultGuard())
	gen.OpsLimit = cfg.KDF.OpsLimit
	gen.MemLimit = cfg.KDF.MemLimit

	// High-level services
	keys := keysvc.New(keyStore, gen, logger)
	signing := signingsvc.New(keys, keyStore, sigStore, sigStore, logger)

	return &Wire{
		Config:  cfg,
		Log:     logger,
		Keys:    keys,
		Signing: signing,
	}, nil
}
