// Package keys implements the key pair use cases of the CLI: generating a
// key pair, recreating a public key from its secret key, and changing the
// password that protects a secret key.
//
// Secret keys are opened without a password first; the PasswordPrompt is
// only consulted when the key turns out to be protected.
package keys
