// Package chart renders numeric series as Unicode block-character bar
// charts sized to a fixed terminal grid.
//
// Bars are rasterized at eighth-of-a-cell resolution using the two 8-level
// block glyph ramps, with a zero baseline that is always representable:
// when no explicit range is given, the value domain is extended to include
// zero. Each returned line is a complete ANSI-styled terminal row, opening
// with background and foreground escapes and ending with a style reset.
//
// The engine never fails on data shape. Empty data, degenerate ranges, and
// chart regions squeezed to nothing all produce a correctly sized canvas of
// blank background lines instead of an error.
package chart

import (
	"gitlab.com/tinyland/lab/termchart/display/ansi"
	"gitlab.com/tinyland/lab/termchart/display/textwrap"
	"gitlab.com/tinyland/lab/termchart/internal/format"
)

// Series is one data series. Color ansi.Default means a palette color is
// assigned automatically; input series are never mutated.
type Series struct {
	Label string
	Color ansi.Color
	Data  []float64
}

// Orientation selects which way bars extend.
type Orientation int

const (
	// Horizontal lays groups out along the x axis with bars growing
	// vertically. This is the default.
	Horizontal Orientation = iota
	// Vertical lays groups out along the y axis with bars growing
	// horizontally.
	Vertical
)

// LabelPosition places an axis label band relative to the chart body.
type LabelPosition int

const (
	// PositionAuto uses the orientation's default side.
	PositionAuto LabelPosition = iota
	// PositionBefore puts labels left of (or above) the chart body.
	PositionBefore
	// PositionAfter puts labels right of (or below) the chart body.
	PositionAfter
)

// Formatter renders an axis value as label text.
type Formatter func(float64) string

// IndexFormatter renders an x position (0-based) as label text.
type IndexFormatter func(int) string

// ValueLabel is the generic value stringification for axis labels.
func ValueLabel(v float64) string { return format.Value(v) }

// Range is an explicit value domain.
type Range struct {
	Min float64
	Max float64
}

// Options configures a render: by default a horizontal chart with
// automatic bar width, automatic range with zero inclusion, no axis
// labels, and the terminal's default colors.
type Options struct {
	// Width and Height are the target grid size in character cells.
	// A non-positive Width falls back to 80 columns; a non-positive
	// Height produces no rows at all.
	Width  int
	Height int

	// BarWidth is the thickness of each bar in cells; 0 auto-sizes bars
	// to fill the available space.
	BarWidth int

	Orientation Orientation

	// YLabel enables value-axis labels; nil disables them. Use
	// ValueLabel for generic stringification.
	YLabel Formatter
	// XLabel enables group labels per x position; nil disables them.
	XLabel IndexFormatter

	// HideYMin and HideYMax drop the observed data extrema from the
	// value-axis label set. Both are shown by default.
	HideYMin bool
	HideYMax bool

	YLabelPosition LabelPosition
	XLabelPosition LabelPosition

	// YRange fixes the rendered value domain; nil derives it from the
	// data, extending to include zero when all values share a sign.
	YRange *Range

	// Background fills every cell; Text is the base foreground. When
	// Text is unset it defaults to black on a white background, the
	// terminal default on a default background, and white otherwise.
	Background ansi.Color
	Text       ansi.Color

	// Measure overrides display-width measurement; nil uses ansi.Width.
	Measure ansi.WidthFunc
}

// layout is the fully resolved render configuration.
type layout struct {
	width, height int
	barWidth      int
	bg, text      ansi.Color
	measure       ansi.WidthFunc
	yLabel        Formatter
	xLabel        IndexFormatter
	hideMin       bool
	hideMax       bool
	yPos, xPos    LabelPosition
	yRange        *Range
	orientation   Orientation
}

func resolveLayout(opts Options) layout {
	l := layout{
		width:       opts.Width,
		height:      opts.Height,
		barWidth:    opts.BarWidth,
		bg:          opts.Background,
		text:        opts.Text,
		measure:     opts.Measure,
		yLabel:      opts.YLabel,
		xLabel:      opts.XLabel,
		hideMin:     opts.HideYMin,
		hideMax:     opts.HideYMax,
		yPos:        opts.YLabelPosition,
		xPos:        opts.XLabelPosition,
		yRange:      opts.YRange,
		orientation: opts.Orientation,
	}
	if l.width <= 0 {
		l.width = 80
	}
	if l.height < 0 {
		l.height = 0
	}
	if l.measure == nil {
		l.measure = ansi.Width
	}
	if l.text == ansi.Default {
		switch l.bg {
		case ansi.White:
			l.text = ansi.Black
		case ansi.Default:
			l.text = ansi.Default
		default:
			l.text = ansi.White
		}
	}
	if l.yPos == PositionAuto {
		l.yPos = PositionBefore
		if l.orientation == Vertical {
			l.yPos = PositionAfter
		}
	}
	if l.xPos == PositionAuto {
		l.xPos = PositionAfter
		if l.orientation == Vertical {
			l.xPos = PositionBefore
		}
	}
	return l
}

// normalized carries the color-resolved series and the cross-series shape.
type normalized struct {
	series    []Series
	xSize     int
	yMin      float64
	yMax      float64
	hasValues bool
}

// normalizeSeries resolves colors and the common data shape. Color
// assignment is a fold over the series list carrying the previous series'
// resolved color: an uncolored series takes that color's palette successor,
// with the background color excluded from the cycle. Explicit colors are
// preserved and still advance the fold. The input slice is not modified.
func normalizeSeries(in []Series, bg ansi.Color) normalized {
	n := normalized{series: make([]Series, len(in))}
	prev := ansi.Default
	for i, s := range in {
		c := s.Color
		if c == ansi.Default {
			c = ansi.NextPaletteColor(prev, bg)
		}
		prev = c
		n.series[i] = Series{Label: s.Label, Color: c, Data: s.Data}

		if len(s.Data) > n.xSize {
			n.xSize = len(s.Data)
		}
		for _, v := range s.Data {
			if !n.hasValues {
				n.yMin, n.yMax = v, v
				n.hasValues = true
				continue
			}
			if v < n.yMin {
				n.yMin = v
			}
			if v > n.yMax {
				n.yMax = v
			}
		}
	}
	return n
}

// domain is the rendered value range.
type domain struct {
	start float64
	end   float64
}

func (d domain) size() float64 { return d.end - d.start }

// zero is the baseline offset within the range.
func (d domain) zero() float64 { return -d.start }

// resolveDomain applies the zero-inclusion rule: without an explicit range
// the baseline is always representable even when all data shares a sign.
func resolveDomain(n normalized, explicit *Range) domain {
	if explicit != nil {
		return domain{start: explicit.Min, end: explicit.Max}
	}
	if !n.hasValues {
		return domain{}
	}
	d := domain{start: n.yMin, end: n.yMax}
	if d.start > 0 {
		d.start = 0
	}
	if d.end < 0 {
		d.end = 0
	}
	return d
}

// Render draws the series into a sequence of terminal rows, one string per
// row, each exactly the configured width of visible columns. The returned
// line count never exceeds the configured height. A legend footer is
// always part of the output shape, blank when no series is labeled, and
// is dropped entirely when keeping it would leave no chart rows.
//
// Render is a pure function of its arguments and is safe for concurrent
// use; the color table and glyph ramps are the only shared state and are
// immutable.
func Render(series []Series, opts Options) []string {
	if len(series) == 0 {
		return nil
	}
	l := resolveLayout(opts)
	n := normalizeSeries(series, l.bg)
	d := resolveDomain(n, l.yRange)

	legend := legendLines(n.series, l)
	if len(legend) >= l.height {
		// The legend never squeezes out the chart itself.
		legend = nil
	}

	if l.orientation == Vertical {
		return renderVertical(n, d, l, legend)
	}
	return renderHorizontal(n, d, l, legend)
}

// legendLines builds the footer legend from the labeled series. Series
// without labels contribute nothing; a fully unlabeled chart still
// reserves one background-filled footer line so labeled and unlabeled
// output share the same vertical shape.
func legendLines(series []Series, l layout) []string {
	var items []textwrap.Token
	for _, s := range series {
		if s.Label == "" {
			continue
		}
		items = append(items, textwrap.Token{Text: s.Label, Color: s.Color})
	}
	if len(items) == 0 {
		return []string{blankLine(l)}
	}
	return textwrap.Tokens(items, textwrap.TokenOptions{
		Width:      l.width,
		Margin:     1,
		Spacing:    2,
		Background: l.bg,
		Text:       l.text,
		Measure:    l.measure,
	})
}

// blankCanvas emits the degenerate-output shape: rows of background fill
// topped up to the full requested height, with the legend kept when it
// fits. Every degenerate input path funnels through here so the caller
// always receives a correctly sized, fully styled canvas.
func blankCanvas(l layout, legend []string) []string {
	rows := l.height - len(legend)
	lines := make([]string, 0, l.height)
	for i := 0; i < rows; i++ {
		lines = append(lines, blankLine(l))
	}
	return append(lines, legend...)
}

func blankLine(l layout) string {
	lb := newLineBuilder(l.bg, l.text)
	return lb.finish(l.width)
}
