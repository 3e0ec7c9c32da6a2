package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/wifi-triage/internal/report"
)

// ErrNoSource is returned when Run is called without records to classify.
var ErrNoSource = errors.New("record source is required")

// Run starts the editor over source and blocks until the user quits. It
// returns the last applied pattern text.
func Run(ctx context.Context, source report.RecordSource, opts ...Option) (string, error) {
	cfg := defaultConfig()
	cfg.Source = source
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == nil {
		return "", ErrNoSource
	}

	p := tea.NewProgram(newModel(cfg), tea.WithContext(ctx), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("pattern editor failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return "", fmt.Errorf("pattern editor returned unexpected model %T", final)
	}

	return m.Patterns(), nil
}
