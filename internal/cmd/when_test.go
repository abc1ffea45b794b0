package cmd

import (
	"testing"
	"time"
)

func TestParseWhen(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{
			name:  "unix seconds",
			input: "1451059200",
			want:  1451059200,
		},
		{
			name:  "zero",
			input: "0",
			want:  0,
		},
		{
			name:    "negative seconds",
			input:   "-5",
			wantErr: true,
		},
		{
			name:  "rfc3339",
			input: "2015-12-25T16:00:00Z",
			want:  time.Date(2015, 12, 25, 16, 0, 0, 0, time.UTC).Unix(),
		},
		{
			name:  "bare date is end of day",
			input: "2015-12-25",
			want:  time.Date(2015, 12, 25, 23, 59, 59, 0, time.UTC).Unix(),
		},
		{
			name:    "garbage",
			input:   "yesterday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWhen(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseWhen(%q) expected error, got %d", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseWhen(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseWhen(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseWhenEmptyMeansNow(t *testing.T) {
	before := time.Now().Unix()
	got, err := parseWhen("")
	if err != nil {
		t.Fatalf("parseWhen(\"\") failed: %v", err)
	}
	after := time.Now().Unix()
	if got < before || got > after {
		t.Errorf("parseWhen(\"\") = %d, want within [%d, %d]", got, before, after)
	}
}
