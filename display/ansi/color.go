// Package ansi provides the 16-color SGR escape table and display-width
// estimation used by the chart and text-wrapping packages.
//
// Only the `ESC [ <n> m` SGR forms are emitted: foreground codes 30-37 and
// 90-97, background codes 40-47 and 100-107, default 39/49, reset 0.
package ansi

import "strconv"

// Color identifies one of the 16 named ANSI colors, or the terminal default.
type Color int

const (
	Default Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	Gray
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Reset clears all active SGR attributes.
const Reset = "\x1b[0m"

// colorNames maps each Color to its configuration name.
var colorNames = map[Color]string{
	Default:       "default",
	Black:         "black",
	Red:           "red",
	Green:         "green",
	Yellow:        "yellow",
	Blue:          "blue",
	Magenta:       "magenta",
	Cyan:          "cyan",
	White:         "white",
	Gray:          "gray",
	BrightRed:     "bright-red",
	BrightGreen:   "bright-green",
	BrightYellow:  "bright-yellow",
	BrightBlue:    "bright-blue",
	BrightMagenta: "bright-magenta",
	BrightCyan:    "bright-cyan",
	BrightWhite:   "bright-white",
}

// sgr holds the foreground and background SGR parameter for one color.
type sgr struct {
	fg int
	bg int
}

// sgrTable has exactly one entry per Color value.
var sgrTable = map[Color]sgr{
	Default:       {39, 49},
	Black:         {30, 40},
	Red:           {31, 41},
	Green:         {32, 42},
	Yellow:        {33, 43},
	Blue:          {34, 44},
	Magenta:       {35, 45},
	Cyan:          {36, 46},
	White:         {37, 47},
	Gray:          {90, 100},
	BrightRed:     {91, 101},
	BrightGreen:   {92, 102},
	BrightYellow:  {93, 103},
	BrightBlue:    {94, 104},
	BrightMagenta: {95, 105},
	BrightCyan:    {96, 106},
	BrightWhite:   {97, 107},
}

// Palette is the default auto-assignment cycle for series without an
// explicit color. Default and the bright grays are deliberately absent.
var Palette = []Color{Red, Green, Yellow, Blue, Magenta, Cyan, White, Black}

// String returns the color's configuration name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "default"
}

// Foreground returns the SGR escape selecting c as the foreground color.
// Values outside the enumeration fall back to the terminal default.
func (c Color) Foreground() string {
	e, ok := sgrTable[c]
	if !ok {
		e = sgrTable[Default]
	}
	return "\x1b[" + strconv.Itoa(e.fg) + "m"
}

// Background returns the SGR escape selecting c as the background color.
func (c Color) Background() string {
	e, ok := sgrTable[c]
	if !ok {
		e = sgrTable[Default]
	}
	return "\x1b[" + strconv.Itoa(e.bg) + "m"
}

// ParseColor resolves a configuration name to a Color.
// Unknown names resolve to Default.
func ParseColor(name string) (Color, bool) {
	for c, n := range colorNames {
		if n == name {
			return c, true
		}
	}
	return Default, false
}

// NextPaletteColor returns the palette successor of prev, skipping exclude.
// If prev is not a palette color, the first palette entry (that is not
// exclude) is returned. This is the neighbor-relative assignment rule: each
// uncolored series takes the cycle successor of the previous series'
// resolved color.
func NextPaletteColor(prev, exclude Color) Color {
	idx := -1
	for i, c := range Palette {
		if c == prev {
			idx = i
			break
		}
	}
	for step := 1; step <= len(Palette); step++ {
		c := Palette[(idx+step+len(Palette))%len(Palette)]
		if c != exclude {
			return c
		}
	}
	return Palette[0]
}
