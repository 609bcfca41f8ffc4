package testutil

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteTree materializes the given files under a fresh temporary directory
// and returns its path. Keys are slash-separated relative paths, so nested
// entries naturally create their parent directories. The directory is
// removed when the test finishes.
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root, err := os.MkdirTemp("", ".tmp-packtable-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(root) })

	for name, content := range files {
		full := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
	return root
}

// WritePackZip builds a resourcepack archive at path from the given files.
// Entry names are the map keys verbatim, sorted for a deterministic layout.
func WritePackZip(t *testing.T, path string, files map[string]string) {
	t.Helper()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	out, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(out)
	for _, name := range names {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(files[name]))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, out.Close())
}

// BuildPackZip writes a resourcepack archive named like the test into a
// fresh temporary directory and returns the archive path.
func BuildPackZip(t *testing.T, files map[string]string) string {
	t.Helper()

	dir, err := os.MkdirTemp("", ".tmp-packtable-zip-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "pack.zip")
	WritePackZip(t, path, files)
	return path
}
