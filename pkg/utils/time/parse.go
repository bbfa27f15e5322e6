// ABOUTME: Time parsing utilities for upstream publication timestamps
// ABOUTME: Accepts the layouts GNews and NewsAPI emit plus a few common fallbacks

package time

import (
	"strings"
	"time"
)

// Layouts seen in provider payloads, most common first
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02",
}

// ParseFlexibleTime parses s with the first matching layout.
// It returns the zero time when s is empty or matches nothing.
func ParseFlexibleTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t.UTC()
		}
	}

	return time.Time{}
}
