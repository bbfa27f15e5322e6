// ABOUTME: Utility functions for parsing integers from strings
// ABOUTME: Used for query parameters and environment values

package parse

import (
	"strconv"
	"strings"
)

// IntOrDefault parses s as an integer, returning def if parsing fails
func IntOrDefault(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

// PositiveInt parses s as an integer >= 1
func PositiveInt(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 {
		return 0, false
	}
	return v, true
}
