package cli

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Veraticus/wifi-triage/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderRecordTable renders the records for on-screen review. Flagged rows
// are highlighted. Cell text is sanitized for the terminal; the plain-text
// reports are never passed through here.
func RenderRecordTable(records []model.NetworkRecord) string {
	if len(records) == 0 {
		return SubtleStyle.Render("No networks to display.")
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{Sanitize(r.SSID), Sanitize(r.BSSID), "----", Sanitize(r.Vendor)}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtleStyle).
		Headers("SSID", "BSSID", "Format", "Vendor").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			return recordRowStyle(records, row)
		})

	return t.Render()
}

// recordRowStyle picks the style for a table row; row is table.HeaderRow for
// the header and a record index otherwise.
func recordRowStyle(records []model.NetworkRecord, row int) lipgloss.Style {
	switch {
	case row == table.HeaderRow:
		return TableHeaderStyle
	case row >= 0 && row < len(records) && records[row].Flagged:
		return FlaggedRowStyle
	default:
		return TableCellStyle
	}
}

// RenderStats renders the total and flagged count badges.
func RenderStats(total, flagged int) string {
	totalBadge := BadgeStyle.Background(PrimaryColor).Render(fmt.Sprintf("Total Networks: %d", total))
	flaggedBadge := BadgeStyle.Background(ErrorColor).Render(fmt.Sprintf("Flagged Networks: %d", flagged))
	return lipgloss.JoinHorizontal(lipgloss.Top, totalBadge, " ", flaggedBadge)
}

// Sanitize replaces control characters so untrusted SSIDs and vendor strings
// cannot move the cursor or restyle the terminal.
func Sanitize(s string) string {
	if strings.IndexFunc(s, unicode.IsControl) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return '?'
		}
		return r
	}, s)
}

// SanitizeLines sanitizes each line of a multi-line text, keeping the line breaks.
func SanitizeLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = Sanitize(line)
	}
	return strings.Join(lines, "\n")
}
