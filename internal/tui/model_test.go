package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/wifi-triage/internal/cli"
	"github.com/Veraticus/wifi-triage/internal/model"
	"github.com/Veraticus/wifi-triage/internal/report"
	"github.com/Veraticus/wifi-triage/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingClipboard struct{}

func (failingClipboard) WriteAll(string) error { return errors.New("no display") }

func testStore() *session.Store {
	store := session.NewStore()
	store.SetRecords([]model.RawRecord{
		{SSID: "Guest", BSSID: "66:77:88:99:aa:bb", Vendor: "no match"},
		{SSID: "Company WiFi", BSSID: "00:11:22:33:44:55", Vendor: "Cisco"},
		{SSID: "Printer", BSSID: "3c:2a:f4:00:00:01", Vendor: "Brother Industries, Ltd"},
	})
	return store
}

func testModel(t *testing.T, opts ...Option) (Model, *cli.MemoryClipboard) {
	t.Helper()
	cb := &cli.MemoryClipboard{}
	cfg := defaultConfig()
	cfg.Source = testStore()
	cfg.Clipboard = cb
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(cfg), cb
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func TestNewModel_ClassifiesImmediately(t *testing.T) {
	m, _ := testModel(t, WithPatterns("Company"))

	assert.Equal(t, "Company", m.Patterns())
	assert.Equal(t, `"Guest"`, m.Bundle().Unknown)
	assert.Equal(t, 1, m.Bundle().OrganizationCount)
	assert.Equal(t, report.SectionMain, m.Section())
}

func TestModel_ApplyOnEnter(t *testing.T) {
	m, _ := testModel(t)
	assert.Equal(t, 0, m.Bundle().OrganizationCount)

	m = typeText(t, m, "printer")
	// Typing alone does not reclassify.
	assert.Equal(t, "", m.Patterns())
	assert.Equal(t, 0, m.Bundle().OrganizationCount)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "printer", m.Patterns())
	assert.Equal(t, 1, m.Bundle().OrganizationCount)
	assert.Equal(t, `"Company WiFi"`+report.Divider+`"Cisco"`, m.Bundle().Known)
}

func TestModel_SectionCycling(t *testing.T) {
	m, _ := testModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, report.SectionUnknown, m.Section())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, report.SectionKnown, m.Section())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, report.SectionMain, m.Section())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, report.SectionKnown, m.Section())
}

func TestModel_CopyVisibleSection(t *testing.T) {
	m, cb := testModel(t, WithPatterns("company"))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})

	assert.Equal(t, `"Guest"`, cb.Text)
	assert.Equal(t, 1, cb.Writes)
	assert.Contains(t, m.View(), "copied unknown report")
}

func TestModel_CopyFailureShownInStatus(t *testing.T) {
	m, _ := testModel(t, WithClipboard(failingClipboard{}))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})

	assert.Contains(t, m.View(), "copy failed: no display")
}

func TestModel_Quit(t *testing.T) {
	m, _ := testModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "", m.View())
}

func TestModel_WindowResize(t *testing.T) {
	m, _ := testModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120-reportBoxStyle.GetHorizontalFrameSize(), m.viewport.Width)
	assert.Equal(t, 40-chromeLines-reportBoxStyle.GetVerticalFrameSize(), m.viewport.Height)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})
	assert.Equal(t, minViewportHeight, m.viewport.Height)
}

func TestModel_ViewFitsTerminal(t *testing.T) {
	sizes := []struct{ width, height int }{
		{80, 24},
		{100, 30},
		{120, 40},
	}

	for _, size := range sizes {
		m, _ := testModel(t)
		m, _ = update(t, m, tea.WindowSizeMsg{Width: size.width, Height: size.height})

		for range report.Sections {
			view := m.View()
			assert.LessOrEqual(t, lipgloss.Height(view), size.height, "%dx%d", size.width, size.height)
			assert.LessOrEqual(t, lipgloss.Width(view), size.width, "%dx%d", size.width, size.height)
			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
		}
	}
}

func TestNewModel_InitialSizeFitsTerminal(t *testing.T) {
	m, _ := testModel(t, WithSize(80, 24))

	view := m.View()

	assert.LessOrEqual(t, lipgloss.Height(view), 24)
	assert.LessOrEqual(t, lipgloss.Width(view), 80)
}

func TestModel_View(t *testing.T) {
	m, _ := testModel(t, WithSize(100, 30))

	view := m.View()

	assert.Contains(t, view, "Organization SSIDs:")
	assert.Contains(t, view, "Unknown vendors")
	assert.Contains(t, view, "Guest 66:77:88:99:aa:bb ---- no match")
	assert.Contains(t, view, "1 unknown, 2 known, 0 organization")
}

func TestRun_RequiresSource(t *testing.T) {
	_, err := Run(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoSource)
}
