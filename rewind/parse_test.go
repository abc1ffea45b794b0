package rewind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantTS  int64
		wantRel string
		wantErr bool
	}{
		{name: "empty", path: "", wantErr: true},
		{name: "bare slash", path: "/", wantErr: true},
		{name: "no leading slash", path: "foo", wantErr: true},
		{name: "no leading slash with trailing", path: "foo/", wantErr: true},
		{name: "timestamp only", path: "/2000", wantTS: 2000, wantRel: ""},
		{name: "timestamp and file", path: "/2000/file.txt", wantTS: 2000, wantRel: "file.txt"},
		{name: "timestamp and nested path", path: "/2000/dir/file.txt", wantTS: 2000, wantRel: "dir/file.txt"},
		{name: "decimal timestamp truncates", path: "/2000.20/dir/file.txt", wantTS: 2000, wantRel: "dir/file.txt"},
		{name: "decimal truncates toward zero", path: "/2000.99", wantTS: 2000, wantRel: ""},
		{name: "negative timestamp", path: "/-2000.20/dir/file.txt", wantErr: true},
		{name: "negative fraction truncates to zero", path: "/-0.5/file.txt", wantTS: 0, wantRel: "file.txt"},
		{name: "non-numeric timestamp", path: "/a/dir/file.txt", wantErr: true},
		{name: "leading garbage in timestamp", path: "/a200/dir/file.txt", wantErr: true},
		{name: "trailing garbage in timestamp", path: "/200a/dir/file.txt", wantErr: true},
		{name: "trailing slash", path: "/200/dir/", wantErr: true},
		{name: "empty timestamp segment", path: "//file.txt", wantErr: true},
		{name: "empty segment after timestamp", path: "/120//file.txt", wantErr: true},
		{name: "zero", path: "/0", wantTS: 0, wantRel: ""},
		{name: "not a number", path: "/NaN/file.txt", wantErr: true},
		{name: "infinity", path: "/Inf/file.txt", wantErr: true},
		{name: "deep interior empty segment passes through", path: "/120/a//b", wantTS: 120, wantRel: "a//b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, rel, err := ParsePath(tt.path)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTS, ts)
			assert.Equal(t, tt.wantRel, rel)
		})
	}
}
