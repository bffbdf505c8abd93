// Package infoform renders the brigade information section: labeled text
// inputs with per-keystroke sanitization and inline validation errors.
package infoform

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"brigada/internal/form"
	"brigada/internal/keys"
	"brigada/internal/ui/styles"
	"brigada/internal/wizard"
)

// FieldChangedMsg reports that a keystroke modified a field's value.
// The app uses it to clear any published validation error for the field.
type FieldChangedMsg struct {
	Field string
}

var (
	lettersOnlyRe    = regexp.MustCompile(`[^a-zA-Z\s]`)
	digitsOnlyRe     = regexp.MustCompile(`\D`)
	emergencyNoiseRe = regexp.MustCompile(`[^0-9,\s]`)
)

// fieldDef describes one input: its wire id, the label shown next to it,
// and the sanitizer applied on every change.
type fieldDef struct {
	id          string
	label       string
	placeholder string
	required    bool
	sanitize    func(string) string
}

func fieldDefs() []fieldDef {
	letters := func(s string) string { return lettersOnlyRe.ReplaceAllString(s, "") }
	digits := func(s string) string { return digitsOnlyRe.ReplaceAllString(s, "") }

	return []fieldDef{
		{form.FieldName, "Nombre de la Brigada", "Ej: Brigada San Martín", true, letters},
		{form.FieldActiveMembers, "Bomberos Activos", "", true, sanitizeCount},
		{form.FieldCommanderName, "Comandante", "Nombre completo del comandante", true, letters},
		{form.FieldCommanderPhone, "Teléfono Comandante", "Ej: 76543210", true, digits},
		{form.FieldLogisticsOfficer, "Encargado de Logística", "Nombre completo del encargado", false, letters},
		{form.FieldLogisticsPhone, "Teléfono Logística", "Ej: 65432109", false, digits},
		{form.FieldEmergencyNumbers, "Números de Emergencia (Opcional)", "Ej: 12345678, 87654321", false,
			func(s string) string { return emergencyNoiseRe.ReplaceAllString(s, "") }},
	}
}

// sanitizeCount keeps the member count a positive integer while typing.
// Anything unparseable collapses to the floor of 1.
func sanitizeCount(s string) string {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		n = 1
	}
	return strconv.Itoa(n)
}

// Model holds the info section state.
type Model struct {
	defs   []fieldDef
	inputs []textinput.Model
	focus  int
	errors wizard.FieldErrors
	keyMap keys.KeyMap
	width  int
}

// New builds the info form seeded from current values.
func New(values map[string]string, keyMap keys.KeyMap) Model {
	defs := fieldDefs()
	inputs := make([]textinput.Model, len(defs))
	for i, def := range defs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = def.placeholder
		ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor)
		ti.CharLimit = 80
		ti.Width = 48
		ti.SetValue(values[def.id])
		inputs[i] = ti
	}
	inputs[0].Focus()

	return Model{
		defs:   defs,
		inputs: inputs,
		keyMap: keyMap,
	}
}

// SetSize updates the available width.
func (m Model) SetSize(width int) Model {
	m.width = width
	for i := range m.inputs {
		m.inputs[i].Width = max(width-30, 20)
	}
	return m
}

// SetErrors replaces the displayed validation errors.
func (m Model) SetErrors(errs wizard.FieldErrors) Model {
	m.errors = errs
	return m
}

// Values returns the current field values keyed by wire id.
func (m Model) Values() map[string]string {
	values := make(map[string]string, len(m.defs))
	for i, def := range m.defs {
		values[def.id] = m.inputs[i].Value()
	}
	return values
}

// FocusedField returns the wire id of the focused input.
func (m Model) FocusedField() string {
	return m.defs[m.focus].id
}

// Update handles key messages: vertical focus movement plus text editing
// with the field's sanitizer applied after every change.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keyMap.Up):
		return m.moveFocus(-1), nil
	case key.Matches(keyMsg, m.keyMap.Down), key.Matches(keyMsg, m.keyMap.NextCell):
		return m.moveFocus(1), nil
	case key.Matches(keyMsg, m.keyMap.PrevCell):
		return m.moveFocus(-1), nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	after := m.defs[m.focus].sanitize(m.inputs[m.focus].Value())
	if after != m.inputs[m.focus].Value() {
		m.inputs[m.focus].SetValue(after)
		m.inputs[m.focus].CursorEnd()
	}

	if after != before {
		field := m.defs[m.focus].id
		delete(m.errors, field)
		return m, tea.Batch(cmd, func() tea.Msg { return FieldChangedMsg{Field: field} })
	}
	return m, cmd
}

func (m Model) moveFocus(delta int) Model {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

// View renders the labeled inputs with error lines underneath.
func (m Model) View() string {
	var b strings.Builder
	for i, def := range m.defs {
		labelStyle := styles.FormLabelStyle
		if i == m.focus {
			labelStyle = styles.FormLabelFocusedStyle
		}

		b.WriteString(labelStyle.Render(def.label))
		if def.required {
			b.WriteString(styles.RequiredMarkStyle.Render(" *"))
		}
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")

		if msg, ok := m.errors[def.id]; ok {
			b.WriteString(styles.FieldErrorStyle.Render(msg))
			b.WriteString("\n")
		}
		if i < len(m.defs)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
