package minisign

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"minisign/internal/crypto"
)

// SignOptions controls the comments attached to a signature.
type SignOptions struct {
	// TrustedComment is signed along with the signature. Empty means
	// "timestamp:<unix>\tfile:<filename>\thashed".
	TrustedComment string

	// UntrustedComment is not authenticated. Empty means
	// "signature from minisign secret key".
	UntrustedComment string

	// Time stamps the default trusted comment; zero means now.
	Time time.Time
}

// Verification is the result of a successful verification.
type Verification struct {
	KeyID          KeyID
	TrustedComment string
}

func (v *Verification) String() string {
	return "Signature and comment signature verified\nTrusted comment: " + v.TrustedComment
}

// Sign signs message, which was read from filename.
func (sk *PrivateKey) Sign(filename string, message []byte, opts SignOptions) *Signature {
	return sk.signDigest(filename, crypto.Blake2b512(message), opts)
}

// SignReader signs the content read from r.
func (sk *PrivateKey) SignReader(filename string, r io.Reader, opts SignOptions) (*Signature, error) {
	digest, err := hashMessage(r)
	if err != nil {
		return nil, err
	}
	return sk.signDigest(filename, digest, opts), nil
}

func (sk *PrivateKey) signDigest(filename string, digest [64]byte, opts SignOptions) *Signature {
	sig := &Signature{
		Algorithm:        algHashedEd,
		KeyID:            sk.keyID,
		Signature:        crypto.SignEd25519(sk.seed, digest[:]),
		UntrustedComment: opts.UntrustedComment,
		TrustedComment:   opts.TrustedComment,
	}
	if sig.UntrustedComment == "" {
		sig.UntrustedComment = defaultSignatureComment
	}
	if sig.TrustedComment == "" {
		ts := opts.Time
		if ts.IsZero() {
			ts = time.Now()
		}
		sig.TrustedComment = "timestamp:" + strconv.FormatInt(ts.Unix(), 10) + "\tfile:" + filename + "\thashed"
	}
	sig.CommentSignature = crypto.SignEd25519(sk.seed, sig.commentMessage())
	return sig
}

// Verify checks sig over message. The key id, the message signature and the
// comment signature are checked in that order; the first failure is returned.
func (pk *PublicKey) Verify(sig *Signature, message []byte) (*Verification, error) {
	if err := pk.checkKeyID(sig); err != nil {
		return nil, err
	}
	return pk.verifyDigest(sig, crypto.Blake2b512(message))
}

// VerifyReader is Verify for content read from r. The key id is checked
// before r is read.
func (pk *PublicKey) VerifyReader(sig *Signature, r io.Reader) (*Verification, error) {
	if err := pk.checkKeyID(sig); err != nil {
		return nil, err
	}
	digest, err := hashMessage(r)
	if err != nil {
		return nil, err
	}
	return pk.verifyDigest(sig, digest)
}

func (pk *PublicKey) checkKeyID(sig *Signature) error {
	if sig.KeyID != pk.KeyID {
		return &KeyMismatchError{SignatureKeyID: sig.KeyID, PublicKeyID: pk.KeyID}
	}
	return nil
}

func (pk *PublicKey) verifyDigest(sig *Signature, digest [64]byte) (*Verification, error) {
	if !crypto.VerifyEd25519(pk.VerifyKey, digest[:], sig.Signature) {
		return nil, ErrSignatureInvalid
	}
	if !crypto.VerifyEd25519(pk.VerifyKey, sig.commentMessage(), sig.CommentSignature) {
		return nil, ErrCommentSignatureInvalid
	}
	return &Verification{KeyID: pk.KeyID, TrustedComment: sig.TrustedComment}, nil
}

func hashMessage(r io.Reader) ([64]byte, error) {
	var digest [64]byte
	h := crypto.NewMessageHash()
	if _, err := io.Copy(h, r); err != nil {
		return digest, fmt.Errorf("hash message: %w", err)
	}
	h.Sum(digest[:0])
	return digest, nil
}
