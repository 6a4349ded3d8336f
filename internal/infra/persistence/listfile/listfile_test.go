package listfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestCredentialRepository_LoadKeys(t *testing.T) {
	longKey := strings.Repeat("ab", 32)
	path := writeFile(t, "keys.txt",
		"  0x"+longKey+"  \n"+
			"\n"+
			"tooshort\n"+
			longKey+"\n")

	keys, err := NewCredentialRepository(path).LoadKeys(context.Background())
	require.NoError(t, err)

	// Blank lines and anything shorter than a hex-encoded key are dropped;
	// surrounding whitespace is trimmed.
	assert.Equal(t, []string{"0x" + longKey, longKey}, keys)
}

func TestCredentialRepository_MissingFile(t *testing.T) {
	_, err := NewCredentialRepository(filepath.Join(t.TempDir(), "absent.txt")).LoadKeys(context.Background())
	require.Error(t, err)
}

func TestDomainPoolRepository_LoadDomains(t *testing.T) {
	path := writeFile(t, "domains.txt", "alpha\n\n  beta  \ngamma")

	domains, err := NewDomainPoolRepository(path).LoadDomains(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, domains)
}

func TestDomainPoolRepository_EmptyFile(t *testing.T) {
	path := writeFile(t, "domains.txt", "\n\n")

	domains, err := NewDomainPoolRepository(path).LoadDomains(context.Background())
	require.NoError(t, err)
	assert.Empty(t, domains)
}
