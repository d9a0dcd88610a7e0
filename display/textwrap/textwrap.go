// Package textwrap provides width-measured text wrapping for chart labels
// and legends.
//
// Unlike byte- or rune-counting wrappers, every routine here measures
// content through an injectable ansi.WidthFunc, so wrapped output stays
// aligned even when strings carry escape sequences or the caller swaps in
// a Unicode-aware measurer.
package textwrap

import (
	"strings"
	"unicode"

	"gitlab.com/tinyland/lab/termchart/display/ansi"
)

// Align selects how a wrapped line is padded to the target width.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// TextOptions configures Text.
type TextOptions struct {
	// Align selects left, right, or center padding of each line.
	Align Align
	// Margin is reserved space subtracted from the usable line width.
	Margin int
	// Width measures display width; nil uses ansi.Width.
	Width ansi.WidthFunc
}

// word is one wrapping unit: either a run of non-space text or a forced
// line break from an explicit newline.
type word struct {
	text  string
	width int
	brk   bool
}

// splitWords tokenizes s on whitespace runs. Newlines become zero-width
// forced-break tokens; space, tab, and the Unicode space separators are
// plain separators.
func splitWords(s string, measure ansi.WidthFunc) []word {
	var words []word
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			t := cur.String()
			words = append(words, word{text: t, width: measure(t)})
			cur.Reset()
		}
	}
	for _, r := range s {
		switch {
		case r == '\n':
			flush()
			words = append(words, word{brk: true})
		case isSpace(r):
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return words
}

// isSpace reports whether r separates words. Tabs, carriage returns, and
// the Unicode space separators (category Zs) are plain separators; only
// '\n' forces a break.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\v', '\f', '\r':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// Text greedily wraps s into lines no wider than width minus opts.Margin,
// breaking on whitespace. Each returned line is padded to width according
// to opts.Align. The second result is the widest unpadded line content,
// which exceeds width only when a single word did not fit; callers use it
// to detect overflow and pick a fallback layout.
//
// A line is never flushed while empty: an oversized word is placed alone
// and overflows rather than being truncated. Explicit newlines always
// flush, so wrapping already-wrapped text at the same width is stable.
func Text(s string, width int, opts TextOptions) (lines []string, maxWidth int) {
	measure := opts.Width
	if measure == nil {
		measure = ansi.Width
	}
	limit := width - opts.Margin

	var cur strings.Builder
	curWidth := 0
	flush := func() {
		content := cur.String()
		if curWidth > maxWidth {
			maxWidth = curWidth
		}
		lines = append(lines, pad(content, curWidth, width, opts.Align))
		cur.Reset()
		curWidth = 0
	}

	for _, w := range splitWords(s, measure) {
		if w.brk {
			flush()
			continue
		}
		switch {
		case curWidth == 0:
			cur.WriteString(w.text)
			curWidth = w.width
		case curWidth+1+w.width <= limit:
			cur.WriteByte(' ')
			cur.WriteString(w.text)
			curWidth += 1 + w.width
		default:
			flush()
			cur.WriteString(w.text)
			curWidth = w.width
		}
	}
	if cur.Len() > 0 || len(lines) == 0 {
		flush()
	}
	return lines, maxWidth
}

// pad aligns content of the given display width within total columns.
// Content wider than total is returned unchanged.
func pad(content string, contentWidth, total int, align Align) string {
	gap := total - contentWidth
	if gap <= 0 {
		return content
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + content
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + content + strings.Repeat(" ", gap-left)
	default:
		return content + strings.Repeat(" ", gap)
	}
}
