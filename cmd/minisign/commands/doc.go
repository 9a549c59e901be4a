// Package commands defines the minisign CLI and wires dependencies for subcommands.
//
// Commands
//
//   - generate         Create a new key pair
//   - recreate         Rebuild a public key file from its secret key
//   - change-password  Change or remove the password of a secret key
//   - sign             Sign a file
//   - verify           Verify a file against its .minisig signature
//   - version          Print the version
//
// # Implementation
//
// The root command loads the optional YAML config ($MINISIGN_CONFIG or
// ~/.minisign/config.yaml) and builds the dependency graph (stores, services,
// logger) before any subcommand runs. Flags override config values.
// Passwords are read from the terminal without echo, or line by line when
// stdin is not a terminal.
package commands
