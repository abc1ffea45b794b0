package rewind

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Resolve finds the physical file that held rel's content at the given
// timestamp. The live version wins whenever the timestamp is at or after
// its boundary; otherwise the oldest archived version whose boundary is
// strictly greater than the timestamp wins, because an archived boundary
// marks the instant that version stopped being current.
//
// rel must be non-empty with no leading or trailing slash; violations
// return ErrInvalidPath. A missing root returns ErrRootNotFound and a
// non-directory root returns ErrRootNotDir. ErrNotFound means the path
// simply did not exist at that timestamp.
func (t *Tree) Resolve(timestamp int64, rel string) (Version, error) {
	if rel == "" || strings.HasPrefix(rel, "/") || strings.HasSuffix(rel, "/") {
		return Version{}, ErrInvalidPath
	}
	if err := t.checkRoot(); err != nil {
		return Version{}, err
	}

	livePath := filepath.Join(t.root, filepath.FromSlash(rel))
	var liveBoundary int64
	hasLive := false
	if info, err := os.Lstat(livePath); err == nil {
		if ei := t.classify(info); ei.kind == kindRegular {
			liveBoundary, hasLive = ei.boundary, true
			// The live tree holds the newest state of every file. Once the
			// current content began, nothing later can have replaced it, so
			// the live version covers all timestamps from its boundary on.
			// Ties go to the live version.
			if timestamp >= liveBoundary {
				return Version{Boundary: liveBoundary, Path: livePath, Live: true}, nil
			}
		}
	}

	versions := t.archiveVersions(rel)
	sort.Sort(versions)
	snapToLive(versions, liveBoundary, hasLive)

	for _, v := range versions {
		if timestamp < v.Boundary {
			return v, nil
		}
	}

	return Version{}, ErrNotFound
}

// archiveVersions enumerates the archive mirror for versions of rel's base
// name, unsorted. An absent or unreadable mirror directory contributes
// nothing. Siblings whose names do not match the version pattern are
// ignored, not reported: the sync tool owns that directory and may keep
// other state there.
func (t *Tree) archiveVersions(rel string) versionList {
	dir, base := path.Split(rel)
	archDir := filepath.Join(t.root, filepath.FromSlash(t.archiveDir), filepath.FromSlash(dir))
	re := versionNameRE(base)

	entries, err := os.ReadDir(archDir)
	if err != nil {
		return nil
	}

	var versions versionList
	for _, de := range entries {
		if !re.MatchString(de.Name()) {
			continue
		}
		full := filepath.Join(archDir, de.Name())
		info, err := os.Lstat(full)
		if err != nil {
			continue
		}
		ei := t.classify(info)
		if ei.kind != kindRegular {
			continue
		}
		versions = append(versions, Version{Boundary: ei.boundary, Path: full})
	}
	return versions
}

// snapToLive overwrites the newest archived boundary with the live
// boundary. The end of the last archived state and the beginning of the
// live state are conceptually simultaneous; any gap or overlap between
// the two mtimes is a sync-ordering artifact to be erased. versions must
// be sorted oldest first.
func snapToLive(versions versionList, liveBoundary int64, hasLive bool) {
	if hasLive && len(versions) > 0 {
		versions[len(versions)-1].Boundary = liveBoundary
	}
}
