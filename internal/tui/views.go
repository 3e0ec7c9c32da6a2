package tui

import (
	"strings"

	"github.com/Veraticus/wifi-triage/internal/cli"
	"github.com/Veraticus/wifi-triage/internal/report"
	"github.com/charmbracelet/lipgloss"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(cli.PrimaryColor)

	inactiveTabStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(cli.SubtleColor)

	reportBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cli.SubtleColor)
)

var sectionTitles = map[report.Section]string{
	report.SectionMain:    "Report",
	report.SectionUnknown: "Unknown vendors",
	report.SectionKnown:   "Known vendors",
}

// View renders the editor.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(cli.FormatTitle("WiFi triage"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(reportBoxStyle.Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(report.Sections))
	for i, s := range report.Sections {
		style := inactiveTabStyle
		if i == m.section {
			style = activeTabStyle
		}
		tabs[i] = style.Render(sectionTitles[s])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderHelp() string {
	bindings := m.keymap.ShortHelp()
	parts := make([]string, len(bindings))
	for i, kb := range bindings {
		h := kb.Help()
		parts[i] = h.Key + " " + h.Desc
	}
	return cli.SubtleStyle.Render(strings.Join(parts, " • "))
}
