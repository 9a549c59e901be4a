// Package crypto adapts the primitives minisign is built on.
//
// Contents
//
//   - Ed25519 key generation, signing and verification (GenerateEd25519,
//     SignEd25519, VerifyEd25519, Ed25519PublicFromSeed)
//   - BLAKE2b-256 checksums and BLAKE2b-512 message pre-hashing (Blake2b256,
//     Blake2b512, NewMessageHash)
//   - scrypt key derivation behind the KDF capability interface, with the
//     libsodium opslimit/memlimit parameter mapping (Scrypt, PickScryptParams)
//   - XOR masking of key material (Mask) and best-effort wiping (Wipe)
//
// # Notes
//
// Fixed-size values are returned as arrays so callers cannot accidentally
// alias or resize them. Keystreams and seeds are secrets; callers should Wipe
// them once they are no longer needed.
package crypto
