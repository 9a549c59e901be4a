package interfaces

import (
	types "minisign/internal/domain/types"
	"minisign/internal/minisign"
)

// KeyService creates and maintains key pairs.
type KeyService interface {
	Generate(req types.GenerateRequest) (*minisign.PublicKey, error)
	Unlock(secretKeyPath string, prompt types.PasswordPrompt) (*minisign.PrivateKey, error)
	Recreate(paths types.KeyPaths, prompt types.PasswordPrompt) (*minisign.PublicKey, error)
	ChangePassword(secretKeyPath string, prompt types.PasswordPrompt, removePassword bool) error
}

// SigningService signs and verifies files.
type SigningService interface {
	Sign(req types.SignRequest, prompt types.PasswordPrompt) (*minisign.Signature, error)
	Verify(req types.VerifyRequest) (types.VerifyResult, error)
}
