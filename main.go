// termchart renders animated bar charts in the terminal.
//
// It draws multi-series bar charts with Unicode eighth-block glyphs and
// 16-color ANSI styling. On a TTY it runs an interactive Bubbletea demo;
// when stdout is piped or redirected it prints a single plain frame.
//
// Usage:
//
//	termchart [flags]
//
// Flags:
//
//	-config string       Path to configuration file (default: ~/.config/termchart/config.yaml)
//	-width int           Frame width override (0 = auto-detect)
//	-height int          Frame height override (0 = auto-detect)
//	-orientation string  Bar direction override (horizontal|vertical)
//	-version             Print version and exit
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/termchart/config"
	"gitlab.com/tinyland/lab/termchart/display/ansi"
	"gitlab.com/tinyland/lab/termchart/display/color"
	"gitlab.com/tinyland/lab/termchart/display/term"
	"gitlab.com/tinyland/lab/termchart/display/tui"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file (default: ~/.config/termchart/config.yaml)")
		width       = flag.Int("width", 0, "Frame width override (0 = auto-detect)")
		height      = flag.Int("height", 0, "Frame height override (0 = auto-detect)")
		orientation = flag.String("orientation", "", "Bar direction override (horizontal|vertical)")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("termchart %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// CLI overrides.
	if *width > 0 {
		cfg.Chart.Width = *width
	}
	if *height > 0 {
		cfg.Chart.Height = *height
	}
	if *orientation != "" {
		cfg.Chart.Orientation = *orientation
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	colorOn := color.Apply()

	// ---------------------------------------------------------------
	// Interactive mode
	// ---------------------------------------------------------------

	if term.IsInteractive() {
		defer func() {
			if r := recover(); r != nil {
				// Attempt to restore terminal from alt-screen before printing error.
				fmt.Print("\x1b[?1049l\x1b[?25h")
				fmt.Fprintf(os.Stderr, "termchart: TUI panic: %v\n", r)
				os.Exit(1)
			}
		}()

		p := tea.NewProgram(tui.NewModel(cfg), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// ---------------------------------------------------------------
	// Piped mode: one frame, plain text unless color is forced on
	// ---------------------------------------------------------------

	w, h := term.Size()
	if cfg.Chart.Width > 0 {
		w = cfg.Chart.Width
	}
	if cfg.Chart.Height > 0 {
		h = cfg.Chart.Height
	}

	for _, line := range tui.Frame(cfg, w, h) {
		if !colorOn {
			line = ansi.Strip(line)
		}
		fmt.Println(line)
	}
}
