package rewind

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// History returns every known version of rel, oldest first, with the
// newest archived boundary snapped to the live boundary and the live
// version last when one exists. Argument and configuration errors match
// Resolve; ErrNotFound means no version of the path is known at all.
func (t *Tree) History(rel string) ([]Version, error) {
	if rel == "" || strings.HasPrefix(rel, "/") || strings.HasSuffix(rel, "/") {
		return nil, ErrInvalidPath
	}
	if err := t.checkRoot(); err != nil {
		return nil, err
	}

	livePath := filepath.Join(t.root, filepath.FromSlash(rel))
	var live *Version
	if info, err := os.Lstat(livePath); err == nil {
		if ei := t.classify(info); ei.kind == kindRegular {
			live = &Version{Boundary: ei.boundary, Path: livePath, Live: true}
		}
	}

	versions := t.archiveVersions(rel)
	sort.Sort(versions)
	if live != nil {
		snapToLive(versions, live.Boundary, true)
		versions = append(versions, *live)
	}

	if len(versions) == 0 {
		return nil, ErrNotFound
	}
	return versions, nil
}
