// Package util contains small text helpers shared by the CLI.
package util

import "strings"

// Truncate shortens s to limit runes, appending an ellipsis when it cuts.
// Inner whitespace runs, newlines included, collapse to one space so the
// result fits a single table cell or log line.
func Truncate(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// Pad right-pads s with spaces up to width runes.
func Pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
