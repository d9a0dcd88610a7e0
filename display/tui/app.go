package tui

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/termchart/config"
	"gitlab.com/tinyland/lab/termchart/display/ansi"
	"gitlab.com/tinyland/lab/termchart/display/chart"
	"gitlab.com/tinyland/lab/termchart/internal/format"
)

// tickMsg advances the demo animation by one frame.
type tickMsg time.Time

// Model is the top-level Bubbletea model for the termchart demo.
type Model struct {
	cfg         *config.Config
	orientation chart.Orientation
	width       int
	height      int
	frame       int
	paused      bool
	ready       bool
}

// NewModel returns an initialized Model for the given configuration.
func NewModel(cfg *config.Config) Model {
	m := Model{cfg: cfg}
	if cfg.Chart.Orientation == "vertical" {
		m.orientation = chart.Vertical
	}
	return m
}

func (m Model) tickInterval() time.Duration {
	fps := m.cfg.Demo.FPS
	if fps < 1 {
		fps = 10
	}
	return time.Second / time.Duration(fps)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.tickInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model. It starts the animation clock.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model. It handles key presses, window resize events
// and animation ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Flip):
			if m.orientation == chart.Horizontal {
				m.orientation = chart.Vertical
			} else {
				m.orientation = chart.Horizontal
			}
		case key.Matches(msg, keys.Pause):
			m.paused = !m.paused
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tickMsg:
		if !m.paused {
			m.frame++
		}
		return m, m.tick()
	}

	return m, nil
}

// View implements tea.Model. It renders the title bar, the chart frame,
// and the key help footer.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	chartW := m.width
	if m.cfg.Chart.Width > 0 {
		chartW = m.cfg.Chart.Width
	}
	// Two lines for the bordered title bar, one for the footer.
	chartH := m.height - 3
	if m.cfg.Chart.Height > 0 {
		chartH = m.cfg.Chart.Height
	}
	if chartH < 1 {
		chartH = 1
	}

	header := m.renderHeader()
	frame := strings.Join(m.frameLines(chartW, chartH), "\n")
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, frame, footer)
}

// frameLines renders one chart frame at the given size.
func (m Model) frameLines(width, height int) []string {
	bg, _ := ansi.ParseColor(m.cfg.Chart.Background)
	text := ansi.Default
	if m.cfg.Chart.Text != "" {
		text, _ = ansi.ParseColor(m.cfg.Chart.Text)
	}

	return chart.Render(demoSeries(m.cfg, m.frame), chart.Options{
		Width:       width,
		Height:      height,
		BarWidth:    m.cfg.Chart.BarWidth,
		Orientation: m.orientation,
		YLabel:      chart.ValueLabel,
		XLabel:      groupLabel,
		Background:  bg,
		Text:        text,
	})
}

// Frame renders a single non-interactive frame, used when stdout is piped.
func Frame(cfg *config.Config, width, height int) []string {
	return NewModel(cfg).frameLines(width, height)
}

// demoSeries synthesizes the animated series: phase-shifted sine sweeps
// that chase each other across the groups.
func demoSeries(cfg *config.Config, frame int) []chart.Series {
	count := cfg.Demo.Series
	groups := cfg.Demo.Groups
	series := make([]chart.Series, count)
	for s := 0; s < count; s++ {
		data := make([]float64, groups)
		phase := float64(frame)/8 + float64(s)*math.Pi/float64(count)
		for g := 0; g < groups; g++ {
			data[g] = 10 * math.Sin(phase+2*math.Pi*float64(g)/float64(groups))
		}
		series[s] = chart.Series{Label: "wave " + strconv.Itoa(s+1), Data: data}
	}
	return series
}

func groupLabel(i int) string {
	return strconv.Itoa(i + 1)
}

// renderHeader renders the title bar.
func (m Model) renderHeader() string {
	title := styleTitle.Render("termchart")
	state := ""
	if m.paused {
		state = "  [paused]"
	}
	return styleHeader.Width(m.width).Render(title + state)
}

// renderFooter renders the key help line, truncated with an ellipsis on
// terminals too narrow to hold it.
func (m Model) renderFooter() string {
	help := "q: quit | o: flip orientation | space: pause"
	if m.width > 0 && m.width < len(help) {
		help = format.TruncateWithEllipsis(help, m.width)
	}
	return styleFooter.Width(m.width).Render(help)
}
