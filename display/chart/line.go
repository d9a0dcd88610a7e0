package chart

import (
	"strings"

	"gitlab.com/tinyland/lab/termchart/display/ansi"
)

// lineBuilder assembles one styled terminal row. It tracks the visible
// column count and the active foreground so escape sequences are only
// emitted on color changes, and guarantees the finished line opens with
// background+foreground escapes and closes with a reset.
type lineBuilder struct {
	b     strings.Builder
	cols  int
	bg    ansi.Color
	text  ansi.Color
	curFg ansi.Color
}

func newLineBuilder(bg, text ansi.Color) *lineBuilder {
	lb := &lineBuilder{bg: bg, text: text, curFg: text}
	lb.b.WriteString(bg.Background())
	lb.b.WriteString(text.Foreground())
	return lb
}

func (lb *lineBuilder) setFg(c ansi.Color) {
	if lb.curFg != c {
		lb.b.WriteString(c.Foreground())
		lb.curFg = c
	}
}

// pad writes n background-filled columns.
func (lb *lineBuilder) pad(n int) {
	if n <= 0 {
		return
	}
	lb.b.WriteString(strings.Repeat(" ", n))
	lb.cols += n
}

// write emits text of a known display width in the given foreground.
func (lb *lineBuilder) write(s string, width int, fg ansi.Color) {
	lb.setFg(fg)
	lb.b.WriteString(s)
	lb.cols += width
}

// cell emits one glyph cell in the given foreground.
func (lb *lineBuilder) cell(r rune, fg ansi.Color) {
	lb.setFg(fg)
	lb.b.WriteRune(r)
	lb.cols++
}

// invCell emits one inverted glyph cell: the bar color becomes the cell
// background and the canvas background the foreground, which renders a
// partial block hanging from the far side of the cell. Used at the
// boundary cell of bars extending below (or left of) the baseline.
func (lb *lineBuilder) invCell(r rune, barColor ansi.Color) {
	lb.b.WriteString(barColor.Background())
	lb.b.WriteString(lb.bg.Foreground())
	lb.b.WriteRune(r)
	lb.b.WriteString(lb.bg.Background())
	lb.curFg = lb.bg
	lb.cols++
}

// finish pads the line to total visible columns and appends the reset.
func (lb *lineBuilder) finish(total int) string {
	if gap := total - lb.cols; gap > 0 {
		lb.b.WriteString(strings.Repeat(" ", gap))
		lb.cols = total
	}
	lb.b.WriteString(ansi.Reset)
	return lb.b.String()
}
