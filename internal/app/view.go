package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"brigada/internal/ui/styles"
	"brigada/internal/wizard"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.viewTitle())
	b.WriteString("\n")
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	if m.completed {
		b.WriteString(m.viewCompleted())
	} else {
		b.WriteString(m.viewSection())
	}

	if m.toast.Visible() {
		b.WriteString("\n")
		b.WriteString(m.toast.View())
	}

	b.WriteString("\n")
	b.WriteString(m.viewStatusBar())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keyMap))
	return b.String()
}

func (m Model) viewTitle() string {
	accent := styles.AccentFor(m.activeIndex())
	title := lipgloss.NewStyle().Bold(true).Foreground(accent.Primary)
	return title.Render("Formulario de Necesidades") +
		styles.HelpStyle.Render(" · Cuerpo de Bomberos")
}

// viewTabs renders one tab per section, the active one filled with the
// section's accent color.
func (m Model) viewTabs() string {
	active := m.controller.Active().ID

	var tabs []string
	for i, section := range wizard.Sections() {
		accent := styles.AccentFor(i)
		if section.ID == active {
			style := lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(accent.Primary)
			tabs = append(tabs, style.Render(section.Name))
			continue
		}
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(accent.Secondary)
		tabs = append(tabs, style.Render(section.Name))
	}
	return lipgloss.NewStyle().Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) viewSection() string {
	section := m.controller.Active()
	view := m.activeView()
	accent := styles.AccentFor(m.activeIndex())

	var lines []string
	for i, p := range view.panes {
		if p.title != "" && len(view.panes) > 1 {
			style := styles.FormLabelStyle
			if i == view.focus {
				style = lipgloss.NewStyle().Bold(true).Foreground(accent.Primary)
			}
			lines = append(lines, style.Render(p.title))
		}
		lines = append(lines, strings.Split(p.view(), "\n")...)
		if i < len(view.panes)-1 {
			lines = append(lines, "")
		}
	}

	hint := ""
	if section.ID == wizard.SectionInfo {
		hint = "* obligatorio"
	}

	width := min(m.width, 100)
	return styles.RenderSectionPane(lines, section.Name, hint, width, true, accent)
}

// viewCompleted is the terminal screen after a successful submission.
func (m Model) viewCompleted() string {
	accent := styles.AccentFor(m.activeIndex())
	lines := []string{
		"",
		lipgloss.NewStyle().Bold(true).Foreground(styles.StatusSuccessColor).Render("  ¡Formulario completado!"),
		"",
		"  " + msgCompleted,
		"",
		styles.HelpStyle.Render("  ctrl+e descargar PDF · ctrl+n nuevo formulario · ctrl+c salir"),
		"",
	}
	width := min(m.width, 100)
	return styles.RenderSectionPane(lines, "Enviado", "", width, true, accent)
}

func (m Model) viewStatusBar() string {
	parts := []string{
		fmt.Sprintf("Sección %d de %d", m.activeIndex()+1, len(wizard.Sections())),
	}
	if m.submitting {
		parts = append(parts, "Enviando...")
	}
	if m.exporting {
		parts = append(parts, "Generando...")
	}
	if m.themeMode != "" {
		parts = append(parts, "tema "+m.themeMode)
	}
	return styles.StatusBarStyle.Render(strings.Join(parts, " · "))
}

func (m Model) activeIndex() int {
	active := m.controller.Active().ID
	for i, s := range wizard.Sections() {
		if s.ID == active {
			return i
		}
	}
	return 0
}
