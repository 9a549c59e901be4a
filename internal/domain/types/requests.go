package types

import "minisign/internal/minisign"

// PasswordPrompt asks the user for a password. It is only called when a
// password is actually needed.
type PasswordPrompt func(prompt string) ([]byte, error)

// KeyPaths locates a key pair on disk.
type KeyPaths struct {
	PublicKey string
	SecretKey string
}

// GenerateRequest describes a new key pair. A nil Password leaves the secret
// key unprotected.
type GenerateRequest struct {
	Paths    KeyPaths
	Password []byte
	Force    bool // overwrite existing key files
}

// SignRequest describes a file to sign.
type SignRequest struct {
	SecretKeyPath    string
	MessagePath      string
	SignaturePath    string // default: <MessagePath>.minisig
	TrustedComment   string
	UntrustedComment string
}

// VerifyRequest describes a signature to check. PublicKey, when set, is the
// base64 key line and takes precedence over PublicKeyPath.
type VerifyRequest struct {
	PublicKeyPath string
	PublicKey     string
	MessagePath   string
	SignaturePath string // default: <MessagePath>.minisig
}

// VerifyResult is a successful verification together with the signature
// that was checked.
type VerifyResult struct {
	Verification *minisign.Verification
	Signature    *minisign.Signature
}
