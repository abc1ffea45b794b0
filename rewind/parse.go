package rewind

import (
	"math"
	"strconv"
	"strings"
)

// ParsePath splits a virtual path of the form /<timestamp>,
// /<timestamp>/file.txt, or /<timestamp>/dir/file.txt into the timestamp
// and a relative path with no leading slash. The relative path is empty
// when the virtual path names the snapshot root itself.
//
// The timestamp segment may be written as a decimal number; its fractional
// part is truncated. ParsePath returns ErrInvalidPath when the path does
// not start with a slash, ends with a slash, has an empty segment directly
// after the timestamp, or when the timestamp segment is not a non-negative
// number.
func ParsePath(path string) (int64, string, error) {
	if !strings.HasPrefix(path, "/") || strings.HasSuffix(path, "/") {
		return 0, "", ErrInvalidPath
	}

	token := path[1:]
	rel := ""
	if i := strings.IndexByte(token, '/'); i >= 0 {
		rel = token[i+1:]
		token = token[:i]
	}

	f, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, "", ErrInvalidPath
	}
	// Truncation, not rounding: 2000.9 selects second 2000.
	ts := int64(f)
	if ts < 0 {
		return 0, "", ErrInvalidPath
	}

	if strings.HasPrefix(rel, "/") {
		return 0, "", ErrInvalidPath
	}

	return ts, rel, nil
}
