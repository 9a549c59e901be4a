package minisign

import (
	"encoding/binary"
	"fmt"
)

// KeyID identifies a key pair. It is carried in both key files and in every
// signature so mismatched keys are detected before any cryptography runs.
type KeyID [keyIDSize]byte

// String renders the id the way minisign displays it: the bytes read as a
// little-endian integer, in uppercase hex.
func (id KeyID) String() string {
	return fmt.Sprintf("%016X", binary.LittleEndian.Uint64(id[:]))
}
