package format

import "testing"

func TestValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{3, "3"},
		{-12, "-12"},
		{1.5, "1.5"},
		{-0.25, "-0.25"},
		{1000000, "1000000"},
	}
	for _, tt := range tests {
		if got := Value(tt.in); got != tt.want {
			t.Errorf("Value(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("héllo", 3); got != "hél" {
		t.Errorf("TruncateRunes = %q", got)
	}
	if got := TruncateRunes("ab", 5); got != "ab" {
		t.Errorf("TruncateRunes short = %q", got)
	}
	if got := TruncateRunes("ab", 0); got != "" {
		t.Errorf("TruncateRunes zero = %q", got)
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	if got := TruncateWithEllipsis("abcdefgh", 6); got != "abc..." {
		t.Errorf("TruncateWithEllipsis = %q", got)
	}
	if got := TruncateWithEllipsis("abc", 2); got != "ab" {
		t.Errorf("TruncateWithEllipsis short limit = %q", got)
	}
}
