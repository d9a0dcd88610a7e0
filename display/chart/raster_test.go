package chart

import (
	"strconv"
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/termchart/display/ansi"
)

func TestRender_YLabelsColumn(t *testing.T) {
	lines := Render([]Series{{Data: []float64{0, 1, 2, 3}}}, Options{
		Width:  12,
		Height: 4,
		YRange: &Range{Min: 0, Max: 3},
		YLabel: ValueLabel,
	})
	got := stripAll(lines)
	if len(got) != 4 {
		t.Fatalf("expected 4 lines, got %q", got)
	}
	if !strings.HasPrefix(got[0], "3 ") {
		t.Errorf("top line must carry the max label: %q", got[0])
	}
	if !strings.HasPrefix(got[2], "0 ") {
		t.Errorf("bottom chart line must carry the zero label: %q", got[2])
	}
	if !strings.HasPrefix(got[1], "  ") {
		t.Errorf("unlabeled line must keep the label column blank: %q", got[1])
	}
	if strings.TrimSpace(got[3]) != "" {
		t.Errorf("footer line must stay blank without labels: %q", got[3])
	}
}

func TestRender_YLabelsAfter(t *testing.T) {
	lines := Render([]Series{{Data: []float64{3}}}, Options{
		Width:          12,
		Height:         3,
		YRange:         &Range{Min: 0, Max: 3},
		YLabel:         ValueLabel,
		YLabelPosition: PositionAfter,
	})
	got := stripAll(lines)
	if !strings.HasSuffix(got[0], " 3") {
		t.Errorf("top line must end with the max label: %q", got[0])
	}
	for i, l := range got {
		if w := ansi.Width(lines[i]); w != 12 {
			t.Errorf("line %d width = %d (%q)", i, w, l)
		}
	}
}

func TestRender_HideExtremaLabels(t *testing.T) {
	entries, _ := buildYLabels(
		normalizeSeries([]Series{{Data: []float64{1, 2}}}, ansi.Default),
		domain{start: 0, end: 4},
		layout{yLabel: ValueLabel, hideMin: true, hideMax: true, measure: ansi.Width},
	)
	for _, e := range entries {
		if e.value == 1 || e.value == 2 {
			t.Errorf("hidden extremum %v still present", e.value)
		}
	}

	entries, _ = buildYLabels(
		normalizeSeries([]Series{{Data: []float64{1, 2}}}, ansi.Default),
		domain{start: 0, end: 4},
		layout{yLabel: ValueLabel, measure: ansi.Width},
	)
	seen := map[float64]bool{}
	for _, e := range entries {
		seen[e.value] = true
	}
	if !seen[1] || !seen[2] {
		t.Errorf("observed extrema missing from default label set: %+v", entries)
	}
}

func TestRender_XLabelBandFull(t *testing.T) {
	lines := Render([]Series{{Data: []float64{1, 2}}}, Options{
		Width:  20,
		Height: 4,
		YRange: &Range{Min: 0, Max: 2},
		XLabel: func(i int) string { return "g" + strconv.Itoa(i) },
	})
	got := stripAll(lines)
	if len(got) != 4 {
		t.Fatalf("expected 4 lines, got %q", got)
	}
	// Default horizontal placement is below the chart, above the footer.
	band := got[len(got)-2]
	if !strings.Contains(band, "g0") || !strings.Contains(band, "g1") {
		t.Errorf("label band missing group labels: %q", band)
	}
	if strings.Index(band, "g0") >= strings.Index(band, "g1") {
		t.Errorf("group labels out of order: %q", band)
	}
}

func TestRender_XLabelBandBefore(t *testing.T) {
	lines := Render([]Series{{Data: []float64{1, 2}}}, Options{
		Width:          20,
		Height:         4,
		YRange:         &Range{Min: 0, Max: 2},
		XLabel:         func(i int) string { return "g" + strconv.Itoa(i) },
		XLabelPosition: PositionBefore,
	})
	got := stripAll(lines)
	if !strings.Contains(got[0], "g0") {
		t.Errorf("header band must carry labels when positioned before: %q", got[0])
	}
}

func TestRender_XLabelFootnoteDegrade(t *testing.T) {
	long := "magnitude one"
	lines := Render([]Series{{Data: []float64{1, 2}}}, Options{
		Width:  14,
		Height: 8,
		YRange: &Range{Min: 0, Max: 2},
		XLabel: func(int) string { return long },
	})
	got := stripAll(lines)

	markers := false
	footnote := false
	for _, l := range got {
		if strings.Contains(l, "1") && strings.Contains(l, "2") && !strings.Contains(l, "[") {
			markers = true
		}
		if strings.Contains(l, "[1]") {
			footnote = true
		}
	}
	if !markers {
		t.Errorf("expected inline numeric markers: %q", got)
	}
	if !footnote {
		t.Errorf("expected footnote list lines: %q", got)
	}
	for i, l := range lines {
		if w := ansi.Width(l); w != 14 {
			t.Errorf("line %d width = %d, want 14", i, w)
		}
	}
}

func TestBaseIndex(t *testing.T) {
	tests := []struct {
		d     domain
		cells int
		want  int
	}{
		{domain{start: 0, end: 4}, 4, 0},    // all positive: baseline at bottom
		{domain{start: -4, end: 0}, 4, 4},   // all negative: baseline at top
		{domain{start: -2, end: 2}, 4, 2},   // centered
		{domain{start: 2, end: 10}, 4, -1},  // zero below range: off-grid
		{domain{start: -10, end: -2}, 4, 5}, // zero above range: off-grid
	}
	for _, tt := range tests {
		if got := baseIndex(tt.d, tt.cells); got != tt.want {
			t.Errorf("baseIndex(%+v, %d) = %d, want %d", tt.d, tt.cells, got, tt.want)
		}
	}
}

func TestRender_ExplicitBarWidth(t *testing.T) {
	lines := Render([]Series{{Data: []float64{1}}}, Options{
		Width:    10,
		Height:   2,
		BarWidth: 3,
		YRange:   &Range{Min: 0, Max: 1},
	})
	bottom := ansi.Strip(lines[0])
	if got := strings.Count(bottom, string(fullBlock)); got != 3 {
		t.Errorf("expected a 3-cell-wide bar, got %d blocks: %q", got, bottom)
	}
}

func TestRender_RangeExcludingZero(t *testing.T) {
	// With an explicit range of [2,10] the baseline sits below the grid;
	// a bar for value 5 must rise to (5-2)/8 of the chart height, not
	// 5/8 of it.
	lines := Render([]Series{{Data: []float64{5}}}, Options{
		Width:  4,
		Height: 9,
		YRange: &Range{Min: 2, Max: 10},
	})
	got := stripAll(lines)
	if len(got) != 9 {
		t.Fatalf("expected 9 lines, got %q", got)
	}
	blocks := 0
	for _, l := range got {
		if strings.ContainsRune(l, fullBlock) {
			blocks++
		}
	}
	if blocks != 3 {
		t.Errorf("expected the bar to cover 3 of 8 chart rows, got %d: %q", blocks, got)
	}
	for i, l := range got[:5] {
		if strings.TrimSpace(l) != "" {
			t.Errorf("row %d above the bar must stay empty: %q", i, l)
		}
	}
}

func TestRender_OverwideBarsBlankCanvas(t *testing.T) {
	// Bars that cannot fit the chart region produce the blank canvas, not
	// a malformed chart.
	lines := Render([]Series{{Data: []float64{1, 2, 3}}}, Options{
		Width:    6,
		Height:   3,
		BarWidth: 5,
		YRange:   &Range{Min: 0, Max: 3},
	})
	got := stripAll(lines)
	if len(got) != 3 {
		t.Fatalf("expected 3 lines, got %q", got)
	}
	for _, l := range got {
		if strings.TrimSpace(l) != "" {
			t.Errorf("expected blank canvas, got %q", l)
		}
	}
}
