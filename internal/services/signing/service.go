package signing

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"minisign/internal/domain"
	"minisign/internal/minisign"
	"minisign/internal/util/logging"
)

// SignatureSuffix is appended to a message path to name its signature file.
const SignatureSuffix = ".minisig"

// Service signs and verifies files.
type Service struct {
	keys     domain.KeyService
	pubs     domain.KeyStore
	sigs     domain.SignatureStore
	messages domain.MessageSource
	log      *slog.Logger
}

// New returns a signing service. A nil logger discards output.
func New(
	keys domain.KeyService,
	pubs domain.KeyStore,
	sigs domain.SignatureStore,
	messages domain.MessageSource,
	log *slog.Logger,
) *Service {
	if log == nil {
		log = logging.Discard()
	}
	return &Service{
		keys:     keys,
		pubs:     pubs,
		sigs:     sigs,
		messages: messages,
		log:      log.With("component", "signing"),
	}
}

// SignaturePath returns the signature path for messagePath, honoring an
// explicit override.
func SignaturePath(messagePath, override string) string {
	if override != "" {
		return override
	}
	return messagePath + SignatureSuffix
}

// Sign signs req.MessagePath with the secret key at req.SecretKeyPath and
// writes the signature file.
func (s *Service) Sign(req domain.SignRequest, prompt domain.PasswordPrompt) (*minisign.Signature, error) {
	sk, err := s.keys.Unlock(req.SecretKeyPath, prompt)
	if err != nil {
		return nil, err
	}

	msg, err := s.messages.OpenMessage(req.MessagePath)
	if err != nil {
		return nil, err
	}
	defer msg.Close()

	sig, err := sk.SignReader(filepath.Base(req.MessagePath), msg, minisign.SignOptions{
		TrustedComment:   req.TrustedComment,
		UntrustedComment: req.UntrustedComment,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.MessagePath, err)
	}

	out := SignaturePath(req.MessagePath, req.SignaturePath)
	if err := s.sigs.SaveSignature(out, sig); err != nil {
		return nil, fmt.Errorf("save signature: %w", err)
	}
	s.log.Debug("signed", "key_id", sig.KeyID.String(), "message", req.MessagePath, "signature", out)
	return sig, nil
}

// Verify checks the signature of req.MessagePath. The public key comes from
// req.PublicKey when set, otherwise from req.PublicKeyPath.
func (s *Service) Verify(req domain.VerifyRequest) (domain.VerifyResult, error) {
	pk, err := s.publicKey(req)
	if err != nil {
		return domain.VerifyResult{}, err
	}

	sigPath := SignaturePath(req.MessagePath, req.SignaturePath)
	sig, err := s.sigs.LoadSignature(sigPath)
	if err != nil {
		return domain.VerifyResult{}, err
	}

	msg, err := s.messages.OpenMessage(req.MessagePath)
	if err != nil {
		return domain.VerifyResult{}, err
	}
	defer msg.Close()

	v, err := pk.VerifyReader(sig, msg)
	if err != nil {
		s.log.Debug("verification failed", "message", req.MessagePath, "err", err)
		return domain.VerifyResult{Signature: sig}, err
	}
	s.log.Debug("verified", "key_id", v.KeyID.String(), "message", req.MessagePath)
	return domain.VerifyResult{Verification: v, Signature: sig}, nil
}

func (s *Service) publicKey(req domain.VerifyRequest) (*minisign.PublicKey, error) {
	if req.PublicKey != "" {
		return minisign.ParsePublicKey(req.PublicKey)
	}
	return s.pubs.LoadPublicKey(req.PublicKeyPath)
}

// Compile-time assertion that Service implements domain.SigningService.
var _ domain.SigningService = (*Service)(nil)
