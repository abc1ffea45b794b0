package rewind

import (
	"os"
	"regexp"
	"strings"
	"time"
)

// DefaultArchiveDir is where the sync tool keeps superseded file versions,
// relative to the sync root.
const DefaultArchiveDir = ".sync/Archive"

// Tree provides historical views of one sync root. The zero value is not
// usable; construct with NewTree.
//
// A Tree holds configuration only. Every operation re-reads the filesystem
// and keeps no state between calls, so a Tree is safe for concurrent use.
type Tree struct {
	root         string
	archiveDir   string
	boundaryTime func(os.FileInfo) time.Time
}

// Option configures a Tree.
type Option func(*Tree)

// WithArchiveDir overrides the archive location, given relative to the
// sync root with forward slashes.
func WithArchiveDir(rel string) Option {
	return func(t *Tree) {
		t.archiveDir = rel
	}
}

// WithBoundaryTime overrides the clock used to derive version boundaries
// from file metadata. The default is FileInfo.ModTime; status-change time
// deliberately is not, because a renamed or type-changed path acquires a
// misleadingly recent ctime while its mtime still reflects true content
// age.
func WithBoundaryTime(fn func(os.FileInfo) time.Time) Option {
	return func(t *Tree) {
		t.boundaryTime = fn
	}
}

// NewTree returns a Tree over the sync root at the given path. The root is
// not touched until the first operation.
func NewTree(root string, opts ...Option) *Tree {
	t := &Tree{
		root:         root,
		archiveDir:   DefaultArchiveDir,
		boundaryTime: os.FileInfo.ModTime,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Root returns the configured sync root path.
func (t *Tree) Root() string {
	return t.root
}

// checkRoot maps a missing or non-directory root to its sentinel error.
// Both signal configuration problems, distinct from ErrNotFound.
func (t *Tree) checkRoot() error {
	info, err := os.Stat(t.root)
	if os.IsNotExist(err) {
		return ErrRootNotFound
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return ErrRootNotDir
	}
	return nil
}

// metaDirName returns the first path segment of the archive location. The
// sync tool's metadata directory is hidden from listings of the projection
// root only.
func (t *Tree) metaDirName() string {
	name := t.archiveDir
	if i := strings.IndexByte(name, '/'); i >= 0 {
		name = name[:i]
	}
	return name
}

// Version is one physical file backing a logical path during some window
// of time. For the live version, Boundary is the instant its content
// began and the version is valid at every timestamp >= Boundary. For an
// archived version, Boundary is the instant it was superseded and the
// version is valid at every timestamp strictly before it.
type Version struct {
	Boundary int64  // seconds since the Unix epoch
	Path     string // physical location on disk
	Live     bool
}

// versionList sorts versions by boundary, oldest first.
type versionList []Version

func (v versionList) Len() int           { return len(v) }
func (v versionList) Swap(i, j int)      { v[i], v[j] = v[j], v[i] }
func (v versionList) Less(i, j int) bool { return v[i].Boundary < v[j].Boundary }

type entryKind int

const (
	kindRegular entryKind = iota
	kindDir
	kindOther
)

// entryInfo is the classification of one directory child. boundary is
// meaningful only for kindRegular.
type entryInfo struct {
	kind     entryKind
	boundary int64
}

func (t *Tree) classify(info os.FileInfo) entryInfo {
	switch {
	case info.Mode().IsRegular():
		return entryInfo{kind: kindRegular, boundary: t.boundaryTime(info).Unix()}
	case info.IsDir():
		return entryInfo{kind: kindDir}
	default:
		return entryInfo{kind: kindOther}
	}
}

// versionSuffixRE matches the counter the sync tool appends when a name
// collides in the archive ("report.txt.3").
var versionSuffixRE = regexp.MustCompile(`\.[0-9]+$`)

// logicalName strips a trailing version counter from an archive filename.
func logicalName(name string) string {
	return versionSuffixRE.ReplaceAllString(name, "")
}

// versionNameRE matches archive filenames that encode versions of base:
// the base name itself, or the base name plus a counter suffix.
func versionNameRE(base string) *regexp.Regexp {
	return regexp.MustCompile("^" + regexp.QuoteMeta(base) + `(\.[0-9]+)?$`)
}
