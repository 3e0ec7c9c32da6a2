// Package tui provides an interactive editor for organization patterns that
// reclassifies the stored session on demand.
package tui

import (
	"fmt"

	"github.com/Veraticus/wifi-triage/internal/cli"
	"github.com/Veraticus/wifi-triage/internal/report"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// chromeLines counts the lines View renders outside the report box: title,
// blank, input, blank, tabs, status and help.
const chromeLines = 7

// minViewportHeight keeps a few report lines visible on tiny terminals.
const minViewportHeight = 3

// Model holds the editor state.
type Model struct {
	source    report.RecordSource
	clipboard cli.Clipboard
	bundle    report.Bundle
	status    string
	applied   string
	keymap    KeyMap
	input     textinput.Model
	viewport  viewport.Model
	section   int
	width     int
	height    int
	quitting  bool
}

// newModel creates a model and runs the first classification.
func newModel(cfg Config) Model {
	input := textinput.New()
	input.Prompt = "Organization SSIDs: "
	input.Placeholder = "comma-separated, e.g. Acme, Acme-Guest"
	input.SetValue(cfg.Patterns)
	input.Focus()

	m := Model{
		source:    cfg.Source,
		clipboard: cfg.Clipboard,
		keymap:    DefaultKeyMap(),
		input:     input,
		viewport:  viewport.New(viewportSize(cfg.Width, cfg.Height)),
		width:     cfg.Width,
		height:    cfg.Height,
	}
	m.apply()

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width, m.viewport.Height = viewportSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Apply):
			m.apply()
			return m, nil
		case key.Matches(msg, m.keymap.NextSection):
			m.setSection(m.section + 1)
			return m, nil
		case key.Matches(msg, m.keymap.PrevSection):
			m.setSection(m.section - 1)
			return m, nil
		case key.Matches(msg, m.keymap.Copy):
			m.copySection()
			return m, nil
		case key.Matches(msg, m.keymap.ScrollUp), key.Matches(msg, m.keymap.ScrollDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Patterns returns the pattern text of the last applied classification.
func (m Model) Patterns() string {
	return m.applied
}

// Bundle returns the artifacts of the last applied classification.
func (m Model) Bundle() report.Bundle {
	return m.bundle
}

// Section returns the artifact currently shown.
func (m Model) Section() report.Section {
	return report.Sections[m.section]
}

func (m *Model) apply() {
	m.applied = m.input.Value()
	m.bundle = report.Reclassify(m.source, m.applied)
	m.status = fmt.Sprintf("%d unknown, %d known, %d organization",
		len(m.bundle.UnknownRecords), len(m.bundle.KnownRecords), m.bundle.OrganizationCount)
	m.refreshViewport()
}

func (m *Model) setSection(i int) {
	n := len(report.Sections)
	m.section = ((i % n) + n) % n
	m.refreshViewport()
}

func (m *Model) copySection() {
	if m.clipboard == nil {
		m.status = "clipboard unavailable"
		return
	}
	if err := m.clipboard.WriteAll(m.bundle.Text(m.Section())); err != nil {
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("copied %s report", m.Section())
}

func (m *Model) refreshViewport() {
	m.viewport.SetContent(cli.SanitizeLines(m.bundle.Text(m.Section())))
	m.viewport.GotoTop()
}

// viewportSize returns the report viewport dimensions that keep the boxed
// report and the surrounding chrome inside a width x height terminal.
func viewportSize(width, height int) (int, int) {
	w := max(width-reportBoxStyle.GetHorizontalFrameSize(), 1)
	h := max(height-chromeLines-reportBoxStyle.GetVerticalFrameSize(), minViewportHeight)
	return w, h
}
