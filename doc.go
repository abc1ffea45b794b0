// Package main provides the rewindfs command-line interface.
//
// rewindfs is a FUSE-based read-only filesystem that projects a synced
// directory tree as it stood at any past instant, reconstructed from the
// archive of superseded file versions that sync tools keep alongside the
// live tree. Opening /<unix-timestamp>/ under the mountpoint shows the
// tree as of that instant.
//
// The main binary supports multiple subcommands:
//   - mount: Mount the rewindable view of a sync root
//   - resolve: Resolve a single path at an instant without mounting
//   - ls: List a directory at an instant without mounting
//   - versions: Print the full version timeline of one file
//   - check: Audit the archive tree of a sync root
//   - seed: Generate a demo sync root with archived versions
package main
