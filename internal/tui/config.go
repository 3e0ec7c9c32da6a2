package tui

import (
	"github.com/Veraticus/wifi-triage/internal/cli"
	"github.com/Veraticus/wifi-triage/internal/report"
)

// Config holds TUI configuration.
type Config struct {
	Source    report.RecordSource
	Clipboard cli.Clipboard
	Patterns  string
	Width     int
	Height    int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Clipboard: cli.SystemClipboard{},
		Width:     80,
		Height:    24,
	}
}

// WithPatterns sets the initial organization pattern text.
func WithPatterns(text string) Option {
	return func(c *Config) {
		c.Patterns = text
	}
}

// WithClipboard replaces the system clipboard.
func WithClipboard(cb cli.Clipboard) Option {
	return func(c *Config) {
		c.Clipboard = cb
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
