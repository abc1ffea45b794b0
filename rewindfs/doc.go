// Package rewindfs adapts the rewind core to bazil.org/fuse.
//
// The mount exposes one virtual directory per unix timestamp:
//
//	/mnt/1451059200/photos/cat.jpg
//
// is photos/cat.jpg as it stood at second 1451059200. The adapter only
// translates: paths become ParsePath calls, lookups become Resolve calls,
// listings become List calls, and core errors become errno values. All
// mutating operations return EROFS. Symbolic links are not supported.
package rewindfs
