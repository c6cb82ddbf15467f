package extract

import (
	"strings"
	"unicode/utf8"
)

// DefaultContextWidth is the number of bytes captured on each side of a
// match for its context window.
const DefaultContextWidth = 50

// contextWindow returns the text surrounding [start, end) widened by
// width bytes on each side, with "..." markers wherever the window was
// truncated short of a text boundary.
//
// The widened offsets are snapped outward to rune boundaries so a window
// never splits a multi-byte Sinhala character.
func contextWindow(text string, start, end, width int) string {
	if start < 0 || end > len(text) || start > end {
		return ""
	}

	from := start - width
	if from < 0 {
		from = 0
	}
	for from > 0 && !utf8.RuneStart(text[from]) {
		from--
	}

	to := end + width
	if to > len(text) {
		to = len(text)
	}
	for to < len(text) && !utf8.RuneStart(text[to]) {
		to++
	}

	window := text[from:to]
	if from > 0 {
		window = "..." + window
	}
	if to < len(text) {
		window += "..."
	}
	return strings.TrimSpace(window)
}

// firstOccurrenceWindow is contextWindow anchored at the first
// case-insensitive occurrence of needle. Used by the keyword-containment
// matchers, which know what they matched but not where.
func firstOccurrenceWindow(text, needle string, width int) string {
	idx := strings.Index(strings.ToLower(text), strings.ToLower(needle))
	if idx < 0 {
		return ""
	}
	return contextWindow(text, idx, idx+len(needle), width)
}
