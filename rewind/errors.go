package rewind

import "errors"

// Sentinel errors for package rewind.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Path errors
	ErrInvalidPath = errors.New("invalid virtual path")

	// Configuration errors
	ErrRootNotFound = errors.New("sync root does not exist")
	ErrRootNotDir   = errors.New("sync root is not a directory")

	// Resolution errors
	ErrNotFound = errors.New("no version of the path existed at that timestamp")
)
