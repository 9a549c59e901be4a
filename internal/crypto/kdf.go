package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// minOpsLimit is the floor libsodium applies before picking parameters.
const minOpsLimit = 32768

// MaxScryptMemory caps the memory scrypt may allocate (128*r*N + 128*r*p
// bytes). The default limits need 1 GiB.
const MaxScryptMemory = 4 << 30

// ErrScryptCost is returned when the limits ask for more memory than
// MaxScryptMemory.
var ErrScryptCost = errors.New("scrypt parameters exceed memory limit")

// KDF derives keyLen bytes of key material from a password.
type KDF interface {
	DeriveKey(password, salt []byte, opsLimit, memLimit uint64, keyLen int) ([]byte, error)
}

// ScryptParams are the raw scrypt cost parameters.
type ScryptParams struct {
	N int
	R int
	P int
}

// PickScryptParams maps an opslimit/memlimit pair to scrypt parameters the
// way libsodium's crypto_pwhash_scryptsalsa208sha256 does, so keys derived
// here match keys derived by the C tool.
func PickScryptParams(opsLimit, memLimit uint64) ScryptParams {
	const r = 8
	if opsLimit < minOpsLimit {
		opsLimit = minOpsLimit
	}

	var (
		nLog2 uint
		p     uint64
	)
	if opsLimit < memLimit/32 {
		p = 1
		nLog2 = log2Bound(opsLimit / (r * 4))
	} else {
		nLog2 = log2Bound(memLimit / (r * 128))
		maxrp := (opsLimit / 4) / (uint64(1) << nLog2)
		if maxrp > 0x3fffffff {
			maxrp = 0x3fffffff
		}
		p = maxrp / r
	}
	return ScryptParams{N: 1 << nLog2, R: r, P: int(p)}
}

// Validate rejects parameters whose memory cost exceeds MaxScryptMemory.
func (sp ScryptParams) Validate() error {
	per := uint64(128 * sp.R)
	n, p := uint64(sp.N), uint64(sp.P)
	if sp.N < 2 || sp.R < 1 || sp.P < 1 ||
		n > MaxScryptMemory/per || p > MaxScryptMemory/per || per*(n+p) > MaxScryptMemory {
		return fmt.Errorf("%w: N=%d r=%d p=%d", ErrScryptCost, sp.N, sp.R, sp.P)
	}
	return nil
}

// CheckScryptLimits reports whether opsLimit and memLimit map to scrypt
// parameters within MaxScryptMemory.
func CheckScryptLimits(opsLimit, memLimit uint64) error {
	return PickScryptParams(opsLimit, memLimit).Validate()
}

// log2Bound returns the smallest n >= 1 with 2^n > maxN/2.
func log2Bound(maxN uint64) uint {
	n := uint(1)
	for ; n < 63; n++ {
		if uint64(1)<<n > maxN/2 {
			break
		}
	}
	return n
}

// Scrypt is the scrypt KDF from golang.org/x/crypto.
type Scrypt struct{}

// DeriveKey runs scrypt with parameters picked from opsLimit and memLimit.
func (Scrypt) DeriveKey(password, salt []byte, opsLimit, memLimit uint64, keyLen int) ([]byte, error) {
	params := PickScryptParams(opsLimit, memLimit)
	if err := params.Validate(); err != nil {
		return nil, err
	}
	key, err := scrypt.Key(password, salt, params.N, params.R, params.P, keyLen)
	if err != nil {
		return nil, fmt.Errorf("scrypt (N=%d r=%d p=%d): %w", params.N, params.R, params.P, err)
	}
	return key, nil
}

// Compile-time assertion that Scrypt implements KDF.
var _ KDF = Scrypt{}
