package rewind

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// List computes the directory listing for relDir as it stood at the given
// timestamp, merging the live listing with the archive mirror's. The
// result always begins with "." and ".."; remaining names are sorted
// within each source (files, then directories) so repeated calls over
// unchanged disk state are identical.
//
// Files are gated by the same boundary rules Resolve applies: a live file
// is listed when the timestamp is at or after its boundary, and a logical
// name with archived versions is listed when any snapped boundary is
// strictly greater than the timestamp. Directories are listed at every
// timestamp once observed to exist at all; directory history is not
// modeled, so a name that is a file in one source and a directory in the
// other appears twice.
//
// An absent live directory or archive mirror contributes no entries; List
// does not fail for missing directories. A missing or non-directory sync
// root is a configuration problem, reported the same way Resolve reports
// it.
func (t *Tree) List(timestamp int64, relDir string) ([]string, error) {
	if strings.HasPrefix(relDir, "/") || strings.HasSuffix(relDir, "/") {
		return nil, ErrInvalidPath
	}
	if err := t.checkRoot(); err != nil {
		return nil, err
	}

	livePath := filepath.Join(t.root, filepath.FromSlash(relDir))
	archPath := filepath.Join(t.root, filepath.FromSlash(t.archiveDir), filepath.FromSlash(relDir))

	// Name -> live boundary. Presence in the map is what matters when
	// snapping below: a live boundary of zero is still a live boundary.
	liveBoundaries := make(map[string]int64)

	files := make(map[string]struct{})
	dirs := make(map[string]struct{})

	if entries, err := os.ReadDir(livePath); err == nil {
		for _, de := range entries {
			info, err := de.Info()
			if err != nil {
				continue
			}
			switch ei := t.classify(info); ei.kind {
			case kindRegular:
				liveBoundaries[de.Name()] = ei.boundary
				if timestamp >= ei.boundary {
					files[de.Name()] = struct{}{}
				}
			default:
				// The sync metadata dir is hidden at the projection root only.
				if relDir != "" || de.Name() != t.metaDirName() {
					dirs[de.Name()] = struct{}{}
				}
			}
		}
	}

	// Logical name -> archived versions of that name in this directory.
	archived := make(map[string]versionList)

	if entries, err := os.ReadDir(archPath); err == nil {
		for _, de := range entries {
			info, err := de.Info()
			if err != nil {
				continue
			}
			switch ei := t.classify(info); ei.kind {
			case kindRegular:
				name := logicalName(de.Name())
				archived[name] = append(archived[name], Version{
					Boundary: ei.boundary,
					Path:     filepath.Join(archPath, de.Name()),
				})
			default:
				dirs[de.Name()] = struct{}{}
			}
		}
	}

	for name, versions := range archived {
		// Newest first, then snap the newest boundary to the live one.
		sort.Sort(sort.Reverse(versions))
		if lb, ok := liveBoundaries[name]; ok {
			versions[0].Boundary = lb
		}
		for _, v := range versions {
			if timestamp < v.Boundary {
				// Some archived version still covered this instant.
				files[name] = struct{}{}
				break
			}
		}
	}

	names := make([]string, 0, 2+len(files)+len(dirs))
	names = append(names, ".", "..")
	names = append(names, sortedKeys(files)...)
	names = append(names, sortedKeys(dirs)...)
	return names, nil
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
