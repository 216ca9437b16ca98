package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile creates dir/name with content and returns its path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// SampleBindings returns key1..keyN bound to value1..valueN.
func SampleBindings(n int) map[string]string {
	out := make(map[string]string, n)
	for i := 1; i <= n; i++ {
		out[fmt.Sprintf("key%d", i)] = fmt.Sprintf("value%d", i)
	}
	return out
}

// AssertMissing fails the test if path exists.
func AssertMissing(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	require.Truef(t, os.IsNotExist(err), "expected %s not to exist, stat error: %v", path, err)
}
