// Package minisign implements the minisign key and signature formats.
//
// # Structures
//
// Three text structures are parsed and serialized byte-exactly:
//   - PublicKey: an untrusted comment line and base64("Ed" || key id || Ed25519 public key)
//   - PrivateKey: an untrusted comment line and a 158-byte base64 blob whose
//     104-byte keynum block may be masked with a password-derived keystream
//   - Signature: untrusted comment, base64("ED" || key id || signature),
//     trusted comment, base64(comment signature)
//
// # Flows
//
// Key generation (KeyGenerator.Generate):
//  1. Sample a key id and an Ed25519 key pair.
//  2. Checksum "Ed" || key id || secret key || public key with BLAKE2b-256.
//  3. If a password is given, derive a 104-byte scrypt keystream from a fresh
//     salt and mask the keynum block with it.
//
// Signing (PrivateKey.Sign):
//  1. Pre-hash the message with BLAKE2b-512 and sign the digest.
//  2. Sign signature || trusted comment so the comment cannot be altered.
//
// Verification (PublicKey.Verify) runs three checks and stops at the first
// failure: key id match, message signature, comment signature.
//
// # Passwords
//
// Passwords are byte slices; a nil password means "no password". Parsing a
// protected key with a nil password fails with ErrPasswordMissing before any
// key derivation runs.
//
// # Errors
//
// Malformed input yields *ParseError. Wrong passwords yield ErrPasswordIncorrect.
// Every verification failure matches ErrVerification; the specific causes are
// *KeyMismatchError, ErrSignatureInvalid and ErrCommentSignatureInvalid.
package minisign
