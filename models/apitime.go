package models

import (
	"fmt"
	"strings"
	"time"
)

// apiTimeLayout is the naive local-time layout the canteen API uses for
// reservation windows. The server stores wall-clock times without an offset;
// the client interprets them in its own timezone.
const apiTimeLayout = "2006-01-02T15:04:05"

// APITime wraps time.Time so that payloads from the server can be decoded
// whether or not they carry a timezone offset. Everything past the API
// boundary works with one canonical representation.
type APITime struct {
	time.Time
}

func NewAPITime(t time.Time) APITime {
	return APITime{Time: t}
}

func (t APITime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(apiTimeLayout) + `"`), nil
}

func (t *APITime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	// Try the naive layout first, then RFC3339 with offset.
	if parsed, err := time.ParseInLocation(apiTimeLayout, s, time.Local); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}
