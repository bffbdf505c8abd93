package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SectionAccent is the color pair for one wizard section. Primary drives
// the active tab and pane border, Secondary the inactive tab text.
type SectionAccent struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
}

// sectionAccents is the fixed palette, one entry per wizard section in
// order. Indexing past the end falls back to the first entry.
var sectionAccents = []SectionAccent{
	{Primary: "#9c27b0", Secondary: "#e1bee7"}, // Información
	{Primary: "#7b1fa2", Secondary: "#ce93d8"}, // EPP
	{Primary: "#673ab7", Secondary: "#b39ddb"}, // Herramientas
	{Primary: "#3f51b5", Secondary: "#9fa8da"}, // Logística
	{Primary: "#2196f3", Secondary: "#90caf9"}, // Alimentación
	{Primary: "#03a9f4", Secondary: "#81d4fa"}, // Equipo de campo
	{Primary: "#00bcd4", Secondary: "#80deea"}, // Limpieza
	{Primary: "#009688", Secondary: "#80cbc4"}, // Medicamentos
	{Primary: "#4caf50", Secondary: "#a5d6a7"}, // Rescate animal
}

// AccentFor returns the accent pair for a section index.
func AccentFor(index int) SectionAccent {
	if index < 0 || index >= len(sectionAccents) {
		return sectionAccents[0]
	}
	return sectionAccents[index]
}

// Border characters (rounded) - used by RenderSectionPane.
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// RenderSectionPane renders a bordered pane with the section title inlined
// into the top border: ╭─ Title (hint) ──────╮. The accent color is used
// for the border and title when the pane is active, BorderDefaultColor
// otherwise.
func RenderSectionPane(content []string, title, hint string, width int, active bool, accent SectionAccent) string {
	var borderColor lipgloss.TerminalColor = BorderDefaultColor
	if active {
		borderColor = accent.Primary
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(borderColor)
	hintStyle := lipgloss.NewStyle().Foreground(TextMutedColor)

	innerWidth := max(width-2, 1)

	var top string
	if title == "" {
		top = borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight)
	} else {
		titleLen := lipgloss.Width(title)
		if hint != "" {
			titleLen += lipgloss.Width(" (" + hint + ")")
		}
		dashes := max(innerWidth-titleLen-3, 0)

		top = borderStyle.Render(borderTopLeft+borderHorizontal+" ") + titleStyle.Render(title)
		if hint != "" {
			top += " " + hintStyle.Render("("+hint+")")
		}
		top += borderStyle.Render(" " + strings.Repeat(borderHorizontal, dashes) + borderTopRight)
	}

	lines := make([]string, 0, len(content)+2)
	lines = append(lines, top)
	for _, row := range content {
		pad := ""
		if w := lipgloss.Width(row); w < innerWidth {
			pad = strings.Repeat(" ", innerWidth-w)
		}
		lines = append(lines, borderStyle.Render(borderVertical)+row+pad+borderStyle.Render(borderVertical))
	}
	lines = append(lines, borderStyle.Render(borderBottomLeft+strings.Repeat(borderHorizontal, innerWidth)+borderBottomRight))

	return strings.Join(lines, "\n")
}
