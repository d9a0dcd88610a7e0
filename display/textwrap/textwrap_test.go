package textwrap

import (
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/termchart/display/ansi"
)

func TestText_GreedyBoundary(t *testing.T) {
	lines, maxWidth := Text("a b c", 3, TextOptions{})

	want := []string{"a b", "c  "}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if maxWidth != 3 {
		t.Errorf("maxWidth = %d, want 3", maxWidth)
	}
}

func TestText_AlignRight(t *testing.T) {
	lines, _ := Text("hi", 5, TextOptions{Align: AlignRight})
	if len(lines) != 1 || lines[0] != "   hi" {
		t.Errorf("right-aligned line = %q", lines)
	}
}

func TestText_AlignCenter(t *testing.T) {
	lines, _ := Text("ab", 6, TextOptions{Align: AlignCenter})
	if len(lines) != 1 || lines[0] != "  ab  " {
		t.Errorf("centered line = %q", lines)
	}
}

func TestText_Margin(t *testing.T) {
	// Margin 2 leaves 4 usable columns, so "ab cd" breaks.
	lines, _ := Text("ab cd", 6, TextOptions{Margin: 2})
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines with margin, got %q", lines)
	}
	if lines[0] != "ab    " || lines[1] != "cd    " {
		t.Errorf("lines = %q", lines)
	}
}

func TestText_OversizedWordOverflows(t *testing.T) {
	// A word wider than the line is placed alone, never broken, and
	// maxWidth reports the overflow.
	lines, maxWidth := Text("x abcdefgh y", 4, TextOptions{})
	want := []string{"x   ", "abcdefgh", "y   "}
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if maxWidth != 8 {
		t.Errorf("maxWidth = %d, want 8", maxWidth)
	}
}

func TestText_ForcedNewlines(t *testing.T) {
	lines, _ := Text("a\n\nb", 3, TextOptions{})
	want := []string{"a  ", "   ", "b  "}
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestText_CollapsesWhitespaceRuns(t *testing.T) {
	lines, _ := Text("a  \t b", 10, TextOptions{})
	if len(lines) != 1 || lines[0] != "a b       " {
		t.Errorf("lines = %q", lines)
	}
}

func TestText_Idempotent(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"
	first, _ := Text(text, 12, TextOptions{})

	var trimmed []string
	for _, l := range first {
		trimmed = append(trimmed, strings.TrimRight(l, " "))
	}
	second, _ := Text(strings.Join(trimmed, "\n"), 12, TextOptions{})

	if len(first) != len(second) {
		t.Fatalf("rewrap changed line count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("line %d changed on rewrap: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestText_CustomMeasure(t *testing.T) {
	// A measurer that doubles every rune forces earlier breaks.
	double := func(s string) int { return 2 * len([]rune(s)) }
	lines, _ := Text("ab cd", 5, TextOptions{Width: double})
	if len(lines) != 2 {
		t.Errorf("expected 2 lines under doubling measurer, got %q", lines)
	}
}

func TestTokens_SingleLine(t *testing.T) {
	items := []Token{
		{Text: "cpu", Color: ansi.Red},
		{Text: "mem", Color: ansi.Green},
	}
	lines := Tokens(items, TokenOptions{Width: 20, Margin: 1, Spacing: 2})

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), lines)
	}
	if got := ansi.Width(lines[0]); got != 20 {
		t.Errorf("visible width = %d, want 20", got)
	}
	if !strings.HasSuffix(lines[0], ansi.Reset) {
		t.Error("line must end with a style reset")
	}
	if !strings.Contains(lines[0], ansi.Red.Foreground()+"cpu") {
		t.Errorf("missing styled first item in %q", lines[0])
	}
	if !strings.Contains(lines[0], "cpu") || !strings.Contains(lines[0], "mem") {
		t.Errorf("missing item text in %q", lines[0])
	}
}

func TestTokens_WrapsAcrossLines(t *testing.T) {
	items := []Token{
		{Text: "alpha", Color: ansi.Red},
		{Text: "beta", Color: ansi.Green},
		{Text: "gamma", Color: ansi.Blue},
	}
	lines := Tokens(items, TokenOptions{Width: 12, Margin: 1, Spacing: 2})

	if len(lines) < 2 {
		t.Fatalf("expected wrapping across lines, got %q", lines)
	}
	for i, l := range lines {
		if got := ansi.Width(l); got != 12 {
			t.Errorf("line %d visible width = %d, want 12", i, got)
		}
	}
}

func TestTokens_OversizedItemWordWrapped(t *testing.T) {
	items := []Token{
		{Text: "one two three four five six", Color: ansi.Cyan},
	}
	lines := Tokens(items, TokenOptions{Width: 10, Margin: 1})

	if len(lines) < 2 {
		t.Fatalf("expected oversized item to wrap, got %q", lines)
	}
	for i, l := range lines {
		if got := ansi.Width(l); got != 10 {
			t.Errorf("line %d visible width = %d, want 10", i, got)
		}
		if !strings.HasSuffix(l, ansi.Reset) {
			t.Errorf("line %d must end with reset", i)
		}
	}
	joined := ansi.Strip(strings.Join(lines, " "))
	for _, word := range []string{"one", "two", "three", "four", "five", "six"} {
		if !strings.Contains(joined, word) {
			t.Errorf("word %q missing from wrapped output", word)
		}
	}
}

func TestTokens_CapacityBoundary(t *testing.T) {
	// An item exactly as wide as the content area between both margins is
	// placed whole; one column wider and it is word-wrapped.
	lines := Tokens([]Token{{Text: "abc defg"}}, TokenOptions{Width: 10, Margin: 1})
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %q", lines)
	}
	if got := ansi.Strip(lines[0]); got != " abc defg " {
		t.Errorf("line = %q, want %q", got, " abc defg ")
	}

	lines = Tokens([]Token{{Text: "abc defgh"}}, TokenOptions{Width: 10, Margin: 1})
	if len(lines) != 2 {
		t.Fatalf("expected the over-capacity item to word-wrap, got %q", lines)
	}
}

func TestTokens_OverwideWordTruncated(t *testing.T) {
	// Unlike Text, token lines are emitted directly, so a word wider than
	// the line is cut to fit rather than allowed to overflow.
	lines := Tokens([]Token{{Text: "extraordinary", Color: ansi.Red}}, TokenOptions{
		Width:  8,
		Margin: 1,
	})
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %q", lines)
	}
	if got := ansi.Width(lines[0]); got != 8 {
		t.Errorf("visible width = %d, want 8", got)
	}
	if !strings.Contains(ansi.Strip(lines[0]), "extrao") {
		t.Errorf("expected truncated word, got %q", lines[0])
	}
}

func TestTokens_BackgroundFill(t *testing.T) {
	lines := Tokens([]Token{{Text: "x", Color: ansi.Red}}, TokenOptions{
		Width:      8,
		Background: ansi.Blue,
		Text:       ansi.White,
	})
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %q", lines)
	}
	if !strings.HasPrefix(lines[0], ansi.Blue.Background()+ansi.White.Foreground()) {
		t.Errorf("line must open with background+foreground escapes: %q", lines[0])
	}
}

func TestTokens_Empty(t *testing.T) {
	if lines := Tokens(nil, TokenOptions{Width: 10}); len(lines) != 0 {
		t.Errorf("expected no lines for no items, got %q", lines)
	}
}
