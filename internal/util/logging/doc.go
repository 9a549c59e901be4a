// Package logging builds the slog loggers used by the CLI and services.
//
// Every logger is wrapped in a handler that redacts attributes whose key
// names a password, passphrase, secret, seed or token.
package logging
