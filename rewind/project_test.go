package rewind

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_AlwaysIncludesSelfAndParent(t *testing.T) {
	tree := NewTree(t.TempDir())

	names, err := tree.List(0, "")
	require.NoError(t, err)
	assert.Equal(t, []string{".", ".."}, names)
}

func TestList_ThreeVersionScenario(t *testing.T) {
	root := threeVersionRoot(t)
	tree := NewTree(root)

	tests := []struct {
		name      string
		timestamp int64
		wantF1    bool
		wantF2    bool
	}{
		{name: "before everything", timestamp: 98000, wantF1: true, wantF2: true},
		{name: "f2 still covered", timestamp: 99199, wantF1: true, wantF2: true},
		{name: "f2 deleted at its boundary", timestamp: 99200, wantF1: true, wantF2: false},
		{name: "oldest f1 boundary", timestamp: 99900, wantF1: true, wantF2: false},
		{name: "live era", timestamp: 100001, wantF1: true, wantF2: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names, err := tree.List(tt.timestamp, "")
			require.NoError(t, err)
			assert.Equal(t, tt.wantF1, contains(names, "f1"), "f1 at %d", tt.timestamp)
			assert.Equal(t, tt.wantF2, contains(names, "f2"), "f2 at %d", tt.timestamp)
		})
	}
}

func TestList_DirectoryOptimism(t *testing.T) {
	root := t.TempDir()
	mkdir(t, filepath.Join(root, "photos"))
	writeVersion(t, filepath.Join(root, "photos/cat.jpg"), 5000)

	tree := NewTree(root)

	// Directories are listed at every instant once observed at all, even
	// before anything inside them existed.
	names, err := tree.List(0, "")
	require.NoError(t, err)
	assert.Contains(t, names, "photos")

	// The file inside still obeys its boundary.
	names, err = tree.List(0, "photos")
	require.NoError(t, err)
	assert.NotContains(t, names, "cat.jpg")

	names, err = tree.List(5000, "photos")
	require.NoError(t, err)
	assert.Contains(t, names, "cat.jpg")
}

func TestList_SyncDirHiddenAtRootOnly(t *testing.T) {
	root := t.TempDir()
	mkdir(t, filepath.Join(root, ".sync/Archive"))
	mkdir(t, filepath.Join(root, "sub/.sync"))

	tree := NewTree(root)

	names, err := tree.List(0, "")
	require.NoError(t, err)
	assert.NotContains(t, names, ".sync")

	// Only the projection root hides the metadata dir; a nested .sync is
	// an ordinary directory.
	names, err = tree.List(0, "sub")
	require.NoError(t, err)
	assert.Contains(t, names, ".sync")
}

func TestList_ArchiveDirectoriesListedUndecoded(t *testing.T) {
	root := t.TempDir()
	mkdir(t, filepath.Join(root, DefaultArchiveDir, "olddir"))
	mkdir(t, filepath.Join(root, DefaultArchiveDir, "olddir.1"))

	tree := NewTree(root)

	// Directory names in the archive keep their literal spelling; the
	// version-suffix decoding applies to files only.
	names, err := tree.List(0, "")
	require.NoError(t, err)
	assert.Contains(t, names, "olddir")
	assert.Contains(t, names, "olddir.1")
}

func TestList_FileAndDirectoryDuplicate(t *testing.T) {
	root := t.TempDir()
	mkdir(t, filepath.Join(root, "thing"))
	writeVersion(t, filepath.Join(root, DefaultArchiveDir, "thing"), 5000)

	tree := NewTree(root)

	// A path that was a file before becoming a directory shows up from
	// both sources. Accepted limitation, preserved as-is.
	names, err := tree.List(1000, "")
	require.NoError(t, err)
	assert.Equal(t, 2, count(names, "thing"))
}

func TestList_BoundarySnapCoversGap(t *testing.T) {
	root := t.TempDir()
	arch := filepath.Join(root, DefaultArchiveDir)

	// Live boundary 1000, newest archived boundary 950. Without snapping,
	// timestamps in [950, 1000) would show the file missing.
	writeVersion(t, filepath.Join(root, "f"), 1000)
	writeVersion(t, filepath.Join(arch, "f"), 950)

	tree := NewTree(root)

	names, err := tree.List(975, "")
	require.NoError(t, err)
	assert.Contains(t, names, "f")
}

func TestList_LiveBoundaryPresenceGatesSnap(t *testing.T) {
	root := t.TempDir()
	arch := filepath.Join(root, DefaultArchiveDir)

	// No live version: the archived boundary stands on its own and the
	// file vanishes at it.
	writeVersion(t, filepath.Join(arch, "gone"), 950)

	tree := NewTree(root)

	names, err := tree.List(949, "")
	require.NoError(t, err)
	assert.Contains(t, names, "gone")

	names, err = tree.List(950, "")
	require.NoError(t, err)
	assert.NotContains(t, names, "gone")
}

func TestList_MissingDirectoriesContributeNothing(t *testing.T) {
	tree := NewTree(t.TempDir())

	names, err := tree.List(100, "no/such/dir")
	require.NoError(t, err)
	assert.Equal(t, []string{".", ".."}, names)
}

func TestList_RootErrors(t *testing.T) {
	tree := NewTree(filepath.Join(t.TempDir(), "nope"))
	_, err := tree.List(100, "")
	require.ErrorIs(t, err, ErrRootNotFound)

	root := t.TempDir()
	writeVersion(t, filepath.Join(root, "afile"), 100)
	tree = NewTree(filepath.Join(root, "afile"))
	_, err = tree.List(100, "")
	require.ErrorIs(t, err, ErrRootNotDir)
}

func TestList_InvalidRelDir(t *testing.T) {
	tree := NewTree(t.TempDir())

	for _, rel := range []string{"/abs", "trailing/"} {
		_, err := tree.List(100, rel)
		require.ErrorIs(t, err, ErrInvalidPath, "rel %q", rel)
	}
}

func TestList_Deterministic(t *testing.T) {
	root := threeVersionRoot(t)
	mkdir(t, filepath.Join(root, "zdir"))
	mkdir(t, filepath.Join(root, "adir"))
	tree := NewTree(root)

	first, err := tree.List(99199, "")
	require.NoError(t, err)
	second, err := tree.List(99199, "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestList_MergesLiveAndArchiveNames(t *testing.T) {
	root := t.TempDir()
	arch := filepath.Join(root, DefaultArchiveDir)

	writeVersion(t, filepath.Join(root, "current"), 100)
	writeVersion(t, filepath.Join(arch, "deleted.3"), 500)

	tree := NewTree(root)

	names, err := tree.List(200, "")
	require.NoError(t, err)
	// "deleted.3" decodes to its logical name.
	assert.Contains(t, names, "current")
	assert.Contains(t, names, "deleted")
	assert.NotContains(t, names, "deleted.3")
}

func contains(names []string, want string) bool {
	return count(names, want) > 0
}

func count(names []string, want string) int {
	n := 0
	for _, name := range names {
		if name == want {
			n++
		}
	}
	return n
}
