package rewindfs

import "hash/fnv"

// inodeForPath derives a stable inode number from a path. Nodes are
// re-created on every lookup, so a counter would hand the kernel a fresh
// inode for the same path each time; hashing keeps them stable.
func inodeForPath(path string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(path))
	return h.Sum64()
}
