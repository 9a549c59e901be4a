package domain

import (
	interfaces "minisign/internal/domain/interfaces"
	types "minisign/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	PasswordPrompt  = types.PasswordPrompt
	KeyPaths        = types.KeyPaths
	GenerateRequest = types.GenerateRequest
	SignRequest     = types.SignRequest
	VerifyRequest   = types.VerifyRequest
	VerifyResult    = types.VerifyResult
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyStore       = interfaces.KeyStore
	SignatureStore = interfaces.SignatureStore
	MessageSource  = interfaces.MessageSource
	KeyService     = interfaces.KeyService
	SigningService = interfaces.SigningService
)
