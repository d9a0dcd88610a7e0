package ansi

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// WidthFunc measures how many terminal columns a string occupies.
// Every layout routine in this module accepts an optional WidthFunc so
// callers can substitute a more accurate measurer; nil means Width.
type WidthFunc func(string) int

// zeroWidth covers codepoint classes that occupy no terminal column:
// combining marks and format characters (zero-width space/joiner, BOM).
var zeroWidth = []*unicode.RangeTable{unicode.Mn, unicode.Me, unicode.Cf}

// escapeEnd reports whether r terminates an ANSI escape sequence.
// Alphabetic final bytes cover the CSI forms emitted here (SGR 'm',
// cursor movement); '~' covers keypad sequences.
func escapeEnd(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '~'
}

// Width estimates the display width of s. ANSI escape sequences and
// zero-width codepoints are ignored; every remaining codepoint counts as
// one column. Double-width codepoints are not specially handled, so this
// is an approximation; use RuneWidth when East Asian text matters.
func Width(s string) int {
	n := 0
	inEscape := false
	for _, r := range s {
		if inEscape {
			if escapeEnd(r) {
				inEscape = false
			}
			continue
		}
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if unicode.IsOneOf(zeroWidth, r) {
			continue
		}
		n++
	}
	return n
}

// RuneWidth measures s with Unicode-aware cell widths (wide CJK runes count
// as two columns) after stripping escape sequences. It satisfies WidthFunc.
func RuneWidth(s string) int {
	return runewidth.StringWidth(Strip(s))
}

// Strip removes ANSI escape sequences from s, leaving visible text only.
func Strip(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inEscape := false
	for _, r := range s {
		if inEscape {
			if escapeEnd(r) {
				inEscape = false
			}
			continue
		}
		if r == '\x1b' {
			inEscape = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
