// ABOUTME: Duration formatting utilities for human-readable article ages
// ABOUTME: Renders elapsed time as a coarse "N units ago" label

package duration

import (
	"fmt"
	"time"
)

// Ago renders the time elapsed since t relative to now.
// Future or zero times render as an empty string.
func Ago(t, now time.Time) string {
	if t.IsZero() || t.After(now) {
		return ""
	}

	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute") + " ago"
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour") + " ago"
	default:
		return plural(int(d/(24*time.Hour)), "day") + " ago"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
