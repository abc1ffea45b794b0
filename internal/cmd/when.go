package cmd

import (
	"fmt"
	"strconv"
	"time"
)

// parseWhen turns the --at flag into a unix timestamp. It accepts unix
// seconds, RFC3339, or a bare date taken as the end of that day. Empty
// means now.
func parseWhen(s string) (int64, error) {
	if s == "" {
		return time.Now().Unix(), nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("timestamp must be non-negative, got %d", n)
		}
		return n, nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.Unix(), nil
	}
	if date, err := time.Parse("2006-01-02", s); err == nil {
		endOfDay := date.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		return endOfDay.Unix(), nil
	}
	return 0, fmt.Errorf("unrecognized time %q (want unix seconds, RFC3339, or YYYY-MM-DD)", s)
}
