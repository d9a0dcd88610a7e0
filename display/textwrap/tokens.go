package textwrap

import (
	"strings"

	"gitlab.com/tinyland/lab/termchart/display/ansi"
	"gitlab.com/tinyland/lab/termchart/internal/format"
)

// Token is one packable item: a piece of text with an assigned color.
type Token struct {
	Text  string
	Color ansi.Color
}

// TokenOptions configures Tokens.
type TokenOptions struct {
	// Width is the full width of every emitted line.
	Width int
	// Margin is padding kept clear at both line edges.
	Margin int
	// Spacing is the gap between adjacent items on a line.
	Spacing int
	// Background fills each line; Text is the base foreground restored
	// after every colored item.
	Background ansi.Color
	Text       ansi.Color
	// Measure is the display-width function; nil uses ansi.Width.
	Measure ansi.WidthFunc
}

// Tokens packs items onto width-limited styled lines, used for series
// legends and axis-label footnote lists. Every emitted line starts with
// background and foreground escapes, is padded with the background fill to
// exactly opts.Width visible columns, and ends with a style reset, so lines
// never leak style into whatever follows them.
//
// An item too wide to fit a line on its own is word-wrapped with the same
// whitespace rules as Text, each word styled with the item's color.
func Tokens(items []Token, opts TokenOptions) []string {
	measure := opts.Measure
	if measure == nil {
		measure = ansi.Width
	}
	if opts.Width <= 0 {
		return nil
	}
	limit := opts.Width - opts.Margin

	var lines []string
	var cur strings.Builder
	curWidth := 0
	open := func() {
		cur.WriteString(opts.Background.Background())
		cur.WriteString(opts.Text.Foreground())
		if opts.Margin > 0 {
			cur.WriteString(strings.Repeat(" ", opts.Margin))
		}
		curWidth = opts.Margin
	}
	flush := func() {
		if gap := opts.Width - curWidth; gap > 0 {
			cur.WriteString(strings.Repeat(" ", gap))
		}
		cur.WriteString(ansi.Reset)
		lines = append(lines, cur.String())
		cur.Reset()
		curWidth = 0
	}
	// place writes one styled piece preceded by gap separator columns.
	place := func(text string, color ansi.Color, gap, width int) {
		if gap > 0 {
			cur.WriteString(strings.Repeat(" ", gap))
			curWidth += gap
		}
		cur.WriteString(color.Foreground())
		cur.WriteString(text)
		cur.WriteString(opts.Text.Foreground())
		curWidth += width
	}

	open()
	for _, item := range items {
		w := measure(item.Text)
		if w > limit-opts.Margin {
			// Oversized: wider than the content area between the two
			// margins, so it can never fit a line whole. Pack its
			// words individually instead.
			for _, piece := range splitWords(item.Text, measure) {
				if piece.brk {
					continue
				}
				gap := 1
				if curWidth == opts.Margin {
					gap = 0
				}
				if curWidth > opts.Margin && curWidth+gap+piece.width > limit {
					flush()
					open()
					gap = 0
				}
				// A single word wider than the line is truncated so the
				// emitted line keeps its exact width.
				if avail := limit - curWidth - gap; piece.width > avail {
					if avail <= 0 {
						continue
					}
					piece.text = format.TruncateRunes(piece.text, avail)
					piece.width = measure(piece.text)
				}
				place(piece.text, item.Color, gap, piece.width)
			}
			continue
		}
		gap := opts.Spacing
		if curWidth == opts.Margin {
			gap = 0
		}
		if curWidth > opts.Margin && curWidth+gap+w > limit {
			flush()
			open()
			gap = 0
		}
		place(item.Text, item.Color, gap, w)
	}
	if curWidth > opts.Margin {
		flush()
	}
	return lines
}
