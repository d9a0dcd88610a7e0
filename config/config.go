// Package config provides configuration parsing for termchart.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/termchart/display/ansi"
)

// Config represents the termchart demo configuration.
type Config struct {
	// Chart holds chart rendering settings.
	Chart ChartConfig `yaml:"chart"`

	// Demo holds settings for the interactive demo loop.
	Demo DemoConfig `yaml:"demo"`
}

// ChartConfig holds chart rendering settings.
type ChartConfig struct {
	// Width is the frame width in columns; 0 sizes to the terminal.
	Width int `yaml:"width"`
	// Height is the frame height in rows; 0 sizes to the terminal.
	Height int `yaml:"height"`
	// Orientation selects the bar direction: "horizontal" or "vertical".
	Orientation string `yaml:"orientation"`
	// BarWidth is the per-bar thickness in cells; 0 picks one automatically.
	BarWidth int `yaml:"bar_width"`
	// Background is the canvas fill color name (e.g. "default", "black").
	Background string `yaml:"background"`
	// Text is the base label color name; empty picks a contrasting default.
	Text string `yaml:"text"`
}

// DemoConfig holds settings for the interactive demo loop.
type DemoConfig struct {
	// FPS is the animation frame rate for the interactive demo.
	FPS int `yaml:"fps"`
	// Series is the number of synthetic series to animate.
	Series int `yaml:"series"`
	// Groups is the number of value groups per series.
	Groups int `yaml:"groups"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Chart: ChartConfig{
			Width:       0,
			Height:      0,
			Orientation: "horizontal",
			BarWidth:    0,
			Background:  "default",
			Text:        "",
		},
		Demo: DemoConfig{
			FPS:    10,
			Series: 2,
			Groups: 12,
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "termchart", "config.yaml")
}

// LoadConfig loads configuration from a YAML file, merging with defaults.
// A missing file is not an error: defaults are returned as-is.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return config, nil
}

// Validate checks the configuration for logical consistency.
func (c *Config) Validate() error {
	if c.Chart.Width < 0 {
		return fmt.Errorf("chart.width must be non-negative, got %d", c.Chart.Width)
	}
	if c.Chart.Height < 0 {
		return fmt.Errorf("chart.height must be non-negative, got %d", c.Chart.Height)
	}
	if c.Chart.BarWidth < 0 {
		return fmt.Errorf("chart.bar_width must be non-negative, got %d", c.Chart.BarWidth)
	}
	if c.Chart.Orientation != "horizontal" && c.Chart.Orientation != "vertical" {
		return fmt.Errorf("chart.orientation must be 'horizontal' or 'vertical', got %q", c.Chart.Orientation)
	}
	if _, ok := ansi.ParseColor(c.Chart.Background); !ok {
		return fmt.Errorf("chart.background: unknown color %q", c.Chart.Background)
	}
	if c.Chart.Text != "" {
		if _, ok := ansi.ParseColor(c.Chart.Text); !ok {
			return fmt.Errorf("chart.text: unknown color %q", c.Chart.Text)
		}
	}
	if c.Demo.FPS < 1 || c.Demo.FPS > 60 {
		return fmt.Errorf("demo.fps must be between 1 and 60, got %d", c.Demo.FPS)
	}
	if c.Demo.Series < 1 {
		return fmt.Errorf("demo.series must be positive, got %d", c.Demo.Series)
	}
	if c.Demo.Groups < 1 {
		return fmt.Errorf("demo.groups must be positive, got %d", c.Demo.Groups)
	}
	return nil
}

// SaveConfig saves configuration to a YAML file.
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
