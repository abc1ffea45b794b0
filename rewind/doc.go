// Package rewind implements the version resolution core of rewindfs.
//
// The package reconstructs historical views of a continuously-synchronized
// directory tree from two inputs: the live tree itself, and the sync tool's
// archive tree (".sync/Archive" by default) where superseded file versions
// accumulate as "<name>" or "<name>.<counter>".
//
// The temporal model is derived entirely from modification times. A live
// file's mtime marks the instant its current content began, so the live
// version is valid for every timestamp at or after it. An archived file's
// mtime marks the instant that version was superseded, so an archived
// version is valid for every timestamp strictly before it, back to the
// previous archived boundary. When both a live version and archived
// versions exist, the newest archived boundary is snapped to the live
// boundary: the end of the last archived state and the beginning of the
// live state are conceptually simultaneous, and any gap between the two
// mtimes is a system artifact.
//
// Three operations make up the public surface:
//
//   - ParsePath splits a virtual path "/<timestamp>/rel/path" into its
//     timestamp and relative path.
//   - Tree.Resolve maps (timestamp, relative path) to the single physical
//     file that held the path's content at that instant.
//   - Tree.List computes the merged directory listing at an instant,
//     reconciling the live and archive listings entry by entry.
//
// Tree.History additionally exposes the full snapped version timeline for
// one path, for tooling that wants to show when each version was current.
//
// All operations are pure: they re-read the filesystem on every call, keep
// no state between calls, never write, and never log. Concurrent calls are
// safe; consistency across concurrent mutation of the underlying trees is
// best-effort only.
//
// Known limitation: directories are listed optimistically at every
// timestamp once observed to exist at all, so a path that switches between
// file and directory over time can appear twice in a listing. This matches
// the sync tool's archive conventions, which do not record directory
// history.
package rewind
