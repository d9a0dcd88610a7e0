package chart

import (
	"math"
	"strconv"
	"strings"

	"gitlab.com/tinyland/lab/termchart/display/ansi"
	"gitlab.com/tinyland/lab/termchart/display/textwrap"
)

// The two 8-level glyph ramps, indexed by eighths filled (1-7). Index 0 is
// the empty cell; a fully covered cell uses fullBlock.
var (
	vBlocks = [8]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇'}
	hBlocks = [8]rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉'}
)

const fullBlock = '█'

// cell is one rasterized chart cell. The zero value is empty background.
type cell struct {
	glyph rune
	color ansi.Color
	inv   bool
}

// eighths quantizes a value to sub-cell resolution: the number of
// 1/8-cell units the value covers across cells of extent. Rounding is
// asymmetric, away from zero, so a zero value renders as exactly zero
// eighths while any nonzero value shows at least one.
func eighths(v, size float64, cells int) int {
	if size <= 0 || cells <= 0 {
		return 0
	}
	f := v / size * float64(cells) * 8
	if f < 0 {
		return int(math.Floor(f))
	}
	return int(math.Ceil(f))
}

// baseIndex is the cell index of the zero baseline. An explicit range
// that excludes zero puts the baseline outside the grid (negative or
// beyond cells); bars are drawn relative to it and clipped to the grid,
// so their extent within the chart stays proportional to value-yStart.
func baseIndex(d domain, cells int) int {
	e := eighths(d.zero(), d.size(), cells)
	// Floor division: integer division truncates toward zero for
	// negative eighths.
	if e < 0 && e%8 != 0 {
		return e/8 - 1
	}
	return e / 8
}

func makeGrid(rows, cols int) [][]cell {
	g := make([][]cell, rows)
	for i := range g {
		g[i] = make([]cell, cols)
	}
	return g
}

func makeRuneRows(rows, cols int) [][]rune {
	rs := make([][]rune, rows)
	for i := range rs {
		rs[i] = make([]rune, cols)
		for j := range rs[i] {
			rs[i][j] = ' '
		}
	}
	return rs
}

// placeRunes copies s into row starting at col, clipping at both ends.
func placeRunes(row []rune, s string, col int) {
	for _, r := range s {
		if col >= len(row) {
			return
		}
		if col >= 0 {
			row[col] = r
		}
		col++
	}
}

// yEntry is one value-axis label candidate.
type yEntry struct {
	text  string
	width int
	value float64
}

// buildYLabels collects the value-axis label set: the domain bounds, zero
// when it lies strictly inside the domain, and the observed data extrema
// unless hidden. Duplicate values keep their first occurrence, preserving
// the claim order used later for overlap resolution.
func buildYLabels(n normalized, d domain, l layout) (entries []yEntry, colWidth int) {
	if l.yLabel == nil {
		return nil, 0
	}
	vals := []float64{d.start, d.end}
	if d.start < 0 && d.end > 0 {
		vals = append(vals, 0)
	}
	if n.hasValues && !l.hideMin {
		vals = append(vals, n.yMin)
	}
	if n.hasValues && !l.hideMax {
		vals = append(vals, n.yMax)
	}
	seen := make(map[float64]bool, len(vals))
	maxW := 0
	for _, v := range vals {
		if seen[v] {
			continue
		}
		seen[v] = true
		text := l.yLabel(v)
		w := l.measure(text)
		entries = append(entries, yEntry{text: text, width: w, value: v})
		if w > maxW {
			maxW = w
		}
	}
	return entries, maxW + 1
}

// assignYRows maps each label to a chart row, first claim wins.
func assignYRows(entries []yEntry, d domain, chartH int) map[int]yEntry {
	rows := make(map[int]yEntry, len(entries))
	for _, e := range entries {
		r := eighths(e.value-d.start, d.size(), chartH) / 8
		if r < 0 {
			r = 0
		}
		if r >= chartH {
			r = chartH - 1
		}
		if _, taken := rows[r]; !taken {
			rows[r] = e
		}
	}
	return rows
}

// xBand is the group-label band for the horizontal orientation: either
// full wrapped labels, or one row of numeric markers plus footnote lines.
type xBand struct {
	band      [][]rune
	footnotes []string
}

// buildXBand attempts full wrapped group labels sized to the group stride
// and degrades to numbered footnotes when any label cannot fit.
func buildXBand(n normalized, l layout, chartW, stride, spacing int) xBand {
	if l.xLabel == nil || chartW <= 0 {
		return xBand{}
	}
	wrapW := stride - 1
	if wrapW < 1 {
		wrapW = 1
	}
	labels := make([]string, n.xSize)
	wrapped := make([][]string, n.xSize)
	fits := true
	bandH := 0
	for g := 0; g < n.xSize; g++ {
		labels[g] = l.xLabel(g)
		lines, maxW := textwrap.Text(labels[g], wrapW, textwrap.TextOptions{Width: l.measure})
		wrapped[g] = lines
		if maxW > wrapW {
			fits = false
		}
		if len(lines) > bandH {
			bandH = len(lines)
		}
	}

	if fits {
		band := makeRuneRows(bandH, chartW)
		for g := range wrapped {
			col := spacing + g*stride
			for j, line := range wrapped[g] {
				placeRunes(band[j], strings.TrimRight(line, " "), col)
			}
		}
		return xBand{band: band}
	}

	// Degrade path: compact markers stay inline with the chart, the label
	// text moves to an itemized footer list.
	band := makeRuneRows(1, chartW)
	items := make([]textwrap.Token, n.xSize)
	for g := range labels {
		placeRunes(band[0], strconv.Itoa(g+1), spacing+g*stride)
		items[g] = textwrap.Token{
			Text:  "[" + strconv.Itoa(g+1) + "] " + labels[g],
			Color: l.text,
		}
	}
	footnotes := textwrap.Tokens(items, textwrap.TokenOptions{
		Width:      l.width,
		Margin:     1,
		Spacing:    2,
		Background: l.bg,
		Text:       l.text,
		Measure:    l.measure,
	})
	return xBand{band: band, footnotes: footnotes}
}

// drawColumn rasterizes one bar into the given columns of a
// bottom-indexed grid. e is the bar extent in eighths relative to the
// baseline row; negative extents hang below it with the boundary cell
// drawn inverted.
func drawColumn(cells [][]cell, col0, bw, base, e int, color ansi.Color) {
	rows := len(cells)
	if rows == 0 {
		return
	}
	cols := len(cells[0])
	for c := col0; c < col0+bw && c < cols; c++ {
		if c < 0 {
			continue
		}
		if e > 0 {
			full, rem := e/8, e%8
			for r := max(base, 0); r < base+full && r < rows; r++ {
				cells[r][c] = cell{glyph: fullBlock, color: color}
			}
			if r := base + full; rem > 0 && r >= 0 && r < rows {
				cells[r][c] = cell{glyph: vBlocks[rem], color: color}
			}
		} else if e < 0 {
			m := -e
			full, rem := m/8, m%8
			for r := max(base-full, 0); r < base && r < rows; r++ {
				cells[r][c] = cell{glyph: fullBlock, color: color}
			}
			if r := base - full - 1; rem > 0 && r >= 0 && r < rows {
				cells[r][c] = cell{glyph: vBlocks[8-rem], color: color, inv: true}
			}
		}
	}
}

// renderHorizontal draws groups along the x axis with bars growing
// vertically from the baseline row.
func renderHorizontal(n normalized, d domain, l layout, legend []string) []string {
	avail := l.height - len(legend)
	s, x := len(n.series), n.xSize
	if x == 0 || d.size() <= 0 || avail <= 0 {
		return blankCanvas(l, legend)
	}

	yEntries, yw := buildYLabels(n, d, l)
	chartW := l.width - yw
	if chartW <= 0 {
		return blankCanvas(l, legend)
	}

	bw := l.barWidth
	if bw <= 0 {
		bw = chartW / (1 + (s+1)*x)
		if bw < 1 {
			bw = 1
		}
	}
	if s*bw*x > chartW {
		return blankCanvas(l, legend)
	}
	spacing := (chartW - s*bw*x) / (x + 1)
	if spacing < 0 {
		spacing = 0
	}
	stride := s*bw + spacing

	xb := buildXBand(n, l, chartW, stride, spacing)
	chartH := avail - len(xb.band) - len(xb.footnotes)
	if chartH <= 0 {
		return blankCanvas(l, legend)
	}

	cells := makeGrid(chartH, chartW)
	base := baseIndex(d, chartH)
	for g := 0; g < x; g++ {
		for si, sr := range n.series {
			var v float64
			if g < len(sr.Data) {
				v = sr.Data[g]
			}
			e := eighths(v, d.size(), chartH)
			drawColumn(cells, spacing+g*stride+si*bw, bw, base, e, sr.Color)
		}
	}
	rowLabels := assignYRows(yEntries, d, chartH)

	lines := make([]string, 0, l.height)
	emitBand := func() {
		for _, row := range xb.band {
			lb := newLineBuilder(l.bg, l.text)
			if yw > 0 && l.yPos == PositionBefore {
				lb.pad(yw)
			}
			lb.write(string(row), len(row), l.text)
			lines = append(lines, lb.finish(l.width))
		}
	}

	if l.xPos == PositionBefore {
		emitBand()
	}
	for t := chartH - 1; t >= 0; t-- {
		lb := newLineBuilder(l.bg, l.text)
		entry, hasLabel := rowLabels[t]
		if yw > 0 && l.yPos == PositionBefore {
			if hasLabel {
				lb.pad(yw - 1 - entry.width)
				lb.write(entry.text, entry.width, l.text)
			}
			lb.pad(yw - lb.cols)
		}
		for _, c := range cells[t] {
			switch {
			case c.glyph == 0 || c.glyph == ' ':
				lb.pad(1)
			case c.inv:
				lb.invCell(c.glyph, c.color)
			default:
				lb.cell(c.glyph, c.color)
			}
		}
		if yw > 0 && l.yPos == PositionAfter && hasLabel {
			lb.pad(1)
			lb.write(entry.text, entry.width, l.text)
		}
		lines = append(lines, lb.finish(l.width))
	}
	if l.xPos != PositionBefore {
		emitBand()
	}
	lines = append(lines, xb.footnotes...)
	return append(lines, legend...)
}
