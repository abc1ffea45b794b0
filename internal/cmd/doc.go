// Package cmd provides the command-line interface implementation for rewindfs.
//
// This package contains all the subcommand implementations for the rewindfs
// CLI tool. It uses the Cobra library for command structure and Fang for
// styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - mount: FUSE filesystem mounting functionality
//   - resolve: Resolve a single path at an instant without mounting
//   - ls: List a directory at an instant without mounting
//   - versions: Print the full version timeline of one file
//   - check: Archive tree auditing
//   - seed: Demo sync root generation
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The commands build on the rewind
// package for version resolution and the rewindfs package for the mounted
// filesystem.
package cmd
