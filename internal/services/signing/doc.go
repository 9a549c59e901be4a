// Package signing signs files and verifies detached .minisig signatures.
//
// Messages are streamed through the BLAKE2b-512 pre-hash, so files of any
// size are handled without being read into memory.
package signing
