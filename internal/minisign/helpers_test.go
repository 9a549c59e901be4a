package minisign_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"minisign/internal/minisign"
)

// goldenPassword protects testdata/minisign.key.
var goldenPassword = []byte("password")

func readFixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(b)
}

// skipExpensiveKDF skips tests that run scrypt with the default 1 GiB limits.
func skipExpensiveKDF(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping default-cost scrypt in short mode")
	}
}

// cheapGenerator writes zero KDF limits into new keys, which scrypt maps to
// N=2, r=8, p=512.
func cheapGenerator() *minisign.KeyGenerator {
	kg := minisign.NewKeyGenerator(minisign.DefaultGuard())
	kg.OpsLimit, kg.MemLimit = 0, 0
	return kg
}

func generate(t *testing.T, password []byte) (*minisign.PrivateKey, *minisign.PublicKey) {
	t.Helper()
	sk, pk, err := cheapGenerator().Generate(password)
	require.NoError(t, err)
	return sk, pk
}
