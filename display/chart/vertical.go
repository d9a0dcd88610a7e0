package chart

import (
	"strconv"

	"gitlab.com/tinyland/lab/termchart/display/ansi"
	"gitlab.com/tinyland/lab/termchart/display/textwrap"
)

// rowLabelSet is the group-label prefix column for the vertical
// orientation: either the full label texts or numeric markers with
// footnote lines, mirroring the horizontal band's degrade path.
type rowLabelSet struct {
	texts     []string
	widths    []int
	colWidth  int
	footnotes []string
}

// buildRowLabels sizes the prefix column to the widest group label and
// degrades to markers when that column would eat half the chart width.
func buildRowLabels(n normalized, l layout) rowLabelSet {
	if l.xLabel == nil {
		return rowLabelSet{}
	}
	set := rowLabelSet{
		texts:  make([]string, n.xSize),
		widths: make([]int, n.xSize),
	}
	maxW := 0
	for g := 0; g < n.xSize; g++ {
		set.texts[g] = l.xLabel(g)
		set.widths[g] = l.measure(set.texts[g])
		if set.widths[g] > maxW {
			maxW = set.widths[g]
		}
	}
	if maxW+1 <= l.width/2 {
		set.colWidth = maxW + 1
		return set
	}

	// Degrade path: numeric markers in the prefix column, label text in
	// footnote lines.
	items := make([]textwrap.Token, n.xSize)
	markerW := 0
	for g := range set.texts {
		marker := strconv.Itoa(g + 1)
		items[g] = textwrap.Token{
			Text:  "[" + marker + "] " + set.texts[g],
			Color: l.text,
		}
		set.texts[g] = marker
		set.widths[g] = l.measure(marker)
		if set.widths[g] > markerW {
			markerW = set.widths[g]
		}
	}
	set.colWidth = markerW + 1
	set.footnotes = textwrap.Tokens(items, textwrap.TokenOptions{
		Width:      l.width,
		Margin:     1,
		Spacing:    2,
		Background: l.bg,
		Text:       l.text,
		Measure:    l.measure,
	})
	return set
}

// drawRow rasterizes one bar row growing horizontally from the baseline
// column. Negative extents grow leftward with an inverted boundary cell.
func drawRow(row []cell, base, e int, color ansi.Color) {
	cols := len(row)
	if e > 0 {
		full, rem := e/8, e%8
		for c := max(base, 0); c < base+full && c < cols; c++ {
			row[c] = cell{glyph: fullBlock, color: color}
		}
		if c := base + full; rem > 0 && c >= 0 && c < cols {
			row[c] = cell{glyph: hBlocks[rem], color: color}
		}
	} else if e < 0 {
		m := -e
		full, rem := m/8, m%8
		for c := max(base-full, 0); c < base && c < cols; c++ {
			row[c] = cell{glyph: fullBlock, color: color}
		}
		if c := base - full - 1; rem > 0 && c >= 0 && c < cols {
			row[c] = cell{glyph: hBlocks[8-rem], color: color, inv: true}
		}
	}
}

// overlayLabels builds the value-axis label row for the vertical
// orientation. Labels are placed at the column matching their value;
// a label whose span (plus one separator column) would overlap an
// already-placed one is dropped, first claim wins.
func overlayLabels(entries []yEntry, d domain, chartW int) []rune {
	row := make([]rune, chartW)
	for i := range row {
		row[i] = ' '
	}
	claimed := make([]bool, chartW)
	for _, e := range entries {
		runes := []rune(e.text)
		lw := len(runes)
		if lw == 0 || lw > chartW {
			continue
		}
		col := eighths(e.value-d.start, d.size(), chartW) / 8
		if col+lw > chartW {
			col = chartW - lw
		}
		if col < 0 {
			col = 0
		}
		overlap := false
		for c := max(col-1, 0); c < min(col+lw+1, chartW); c++ {
			if claimed[c] {
				overlap = true
				break
			}
		}
		if overlap {
			continue
		}
		for i, r := range runes {
			row[col+i] = r
			claimed[col+i] = true
		}
	}
	return row
}

// renderVertical draws groups along the y axis with bars growing
// horizontally from the baseline column. It is the transpose of
// renderHorizontal: group labels become a prefix column and value labels
// an overlay row.
func renderVertical(n normalized, d domain, l layout, legend []string) []string {
	avail := l.height - len(legend)
	s, x := len(n.series), n.xSize
	if x == 0 || d.size() <= 0 || avail <= 0 {
		return blankCanvas(l, legend)
	}

	rl := buildRowLabels(n, l)
	chartW := l.width - rl.colWidth
	if chartW <= 0 {
		return blankCanvas(l, legend)
	}

	overlay := 0
	var yEntries []yEntry
	if l.yLabel != nil {
		yEntries, _ = buildYLabels(n, d, l)
		overlay = 1
	}

	chartRows := avail - overlay - len(rl.footnotes)
	if chartRows <= 0 {
		return blankCanvas(l, legend)
	}

	bw := l.barWidth
	if bw <= 0 {
		bw = chartRows / (1 + (s+1)*x)
		if bw < 1 {
			bw = 1
		}
	}
	if s*bw*x > chartRows {
		return blankCanvas(l, legend)
	}
	spacing := (chartRows - s*bw*x) / (x + 1)
	if spacing < 0 {
		spacing = 0
	}
	stride := s*bw + spacing

	cells := makeGrid(chartRows, chartW)
	base := baseIndex(d, chartW)
	groupRow := make(map[int]int, x)
	for g := 0; g < x; g++ {
		row0 := spacing + g*stride
		groupRow[row0] = g
		for si, sr := range n.series {
			var v float64
			if g < len(sr.Data) {
				v = sr.Data[g]
			}
			e := eighths(v, d.size(), chartW)
			for r := row0 + si*bw; r < row0+(si+1)*bw && r < chartRows; r++ {
				if r >= 0 {
					drawRow(cells[r], base, e, sr.Color)
				}
			}
		}
	}

	lines := make([]string, 0, l.height)
	emitOverlay := func() {
		row := overlayLabels(yEntries, d, chartW)
		lb := newLineBuilder(l.bg, l.text)
		if rl.colWidth > 0 && l.xPos == PositionBefore {
			lb.pad(rl.colWidth)
		}
		lb.write(string(row), len(row), l.text)
		lines = append(lines, lb.finish(l.width))
	}

	if overlay == 1 && l.yPos == PositionBefore {
		emitOverlay()
	}
	for r := 0; r < chartRows; r++ {
		lb := newLineBuilder(l.bg, l.text)
		g, hasLabel := groupRow[r]
		if rl.colWidth > 0 && l.xPos == PositionBefore {
			if hasLabel {
				lb.pad(rl.colWidth - 1 - rl.widths[g])
				lb.write(rl.texts[g], rl.widths[g], l.text)
			}
			lb.pad(rl.colWidth - lb.cols)
		}
		for _, c := range cells[r] {
			switch {
			case c.glyph == 0 || c.glyph == ' ':
				lb.pad(1)
			case c.inv:
				lb.invCell(c.glyph, c.color)
			default:
				lb.cell(c.glyph, c.color)
			}
		}
		if rl.colWidth > 0 && l.xPos == PositionAfter && hasLabel {
			lb.pad(1)
			lb.write(rl.texts[g], rl.widths[g], l.text)
		}
		lines = append(lines, lb.finish(l.width))
	}
	if overlay == 1 && l.yPos != PositionBefore {
		emitOverlay()
	}
	lines = append(lines, rl.footnotes...)
	return append(lines, legend...)
}
