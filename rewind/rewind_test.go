package rewind

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// writeVersion creates a file with its mtime pinned to the given unix
// second, creating parent directories as needed. The content encodes the
// mtime so tests can tell versions apart.
func writeVersion(t *testing.T, path string, mtime int64) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("content@"+strconv.FormatInt(mtime, 10)), 0o644))
	ts := time.Unix(mtime, 0)
	require.NoError(t, os.Chtimes(path, ts, ts))
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755))
}

// threeVersionRoot builds the canonical fixture: live f1 (mtime 100000)
// with archived f1 (99900) and f1.1 (100000), plus a deleted f2 that only
// exists as archived f2 (99000) and f2.1 (99200).
func threeVersionRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	arch := filepath.Join(root, DefaultArchiveDir)

	writeVersion(t, filepath.Join(root, "f1"), 100000)
	writeVersion(t, filepath.Join(arch, "f1"), 99900)
	writeVersion(t, filepath.Join(arch, "f1.1"), 100000)

	writeVersion(t, filepath.Join(arch, "f2"), 99000)
	writeVersion(t, filepath.Join(arch, "f2.1"), 99200)

	return root
}
