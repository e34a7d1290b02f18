package shaper

import (
	"strings"
	"unicode/utf8"
)

// splitLines splits text into lines without their trailing newline or
// carriage return. A single trailing newline does not produce a final empty
// line; empty input yields no lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{""}
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// truncateAtRune cuts s at byte offset n, moved backward to the nearest
// rune boundary so a multi-byte character is never split.
func truncateAtRune(s string, n int) string {
	if n >= len(s) {
		return s
	}
	if n < 0 {
		n = 0
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
