package sheet

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"brigada/internal/form"
	"brigada/internal/keys"
	"brigada/internal/ui/styles"
)

// SizeRow edits one standalone size record (boots or gloves): a single
// row of per-size quantities, the free-text "otra" label, and optional
// notes. Mutations write through to the record.
type SizeRow struct {
	record  *form.SizeRecord
	label   string
	sizes   []string
	inputs  []textinput.Model // size cells, then otra label, then notes when present
	col     int
	focused bool
	notes   bool
	keyMap  keys.KeyMap
}

// NewSizeRow builds the editor. sizes fixes the column order; withNotes
// adds the trailing notes cell (boots carry notes, gloves do not).
func NewSizeRow(record *form.SizeRecord, label string, sizes []string, withNotes bool, keyMap keys.KeyMap) SizeRow {
	m := SizeRow{
		record: record,
		label:  label,
		sizes:  sizes,
		notes:  withNotes,
		keyMap: keyMap,
	}

	for _, size := range sizes {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = sizeWidth
		ti.CharLimit = 4
		ti.SetValue(amountText(record.Sizes[size]))
		m.inputs = append(m.inputs, ti)
	}

	other := textinput.New()
	other.Prompt = ""
	other.Placeholder = "Otra talla"
	other.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor)
	other.Width = 12
	other.CharLimit = 20
	other.SetValue(record.OtherLabel)
	m.inputs = append(m.inputs, other)

	if withNotes {
		notes := textinput.New()
		notes.Prompt = ""
		notes.Width = notesWidth
		notes.CharLimit = 60
		notes.SetValue(record.Notes)
		m.inputs = append(m.inputs, notes)
	}
	return m
}

// AtTop is always true: the editor is a single row.
func (m SizeRow) AtTop() bool { return true }

// AtBottom is always true: the editor is a single row.
func (m SizeRow) AtBottom() bool { return true }

// Focused reports whether the row owns the cursor.
func (m SizeRow) Focused() bool {
	return m.focused
}

// Focus gives the row the cursor.
func (m SizeRow) Focus(bool) SizeRow {
	m.focused = true
	m.col = 0
	m.syncFocus()
	return m
}

// Blur drops the cursor.
func (m SizeRow) Blur() SizeRow {
	m.focused = false
	m.inputs[m.col].Blur()
	return m
}

func (m *SizeRow) syncFocus() {
	for i := range m.inputs {
		if m.focused && i == m.col {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// Update routes keys to cell movement or the focused cell.
func (m SizeRow) Update(msg tea.Msg) (SizeRow, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keyMap.NextCell):
		m.col = (m.col + 1) % len(m.inputs)
		m.syncFocus()
		return m, nil
	case key.Matches(keyMsg, m.keyMap.PrevCell):
		m.col = (m.col - 1 + len(m.inputs)) % len(m.inputs)
		m.syncFocus()
		return m, nil
	case key.Matches(keyMsg, m.keyMap.Up), key.Matches(keyMsg, m.keyMap.Down):
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.col], cmd = m.inputs[m.col].Update(msg)

	if m.col < len(m.sizes) {
		cleaned := nonDigitRe.ReplaceAllString(m.inputs[m.col].Value(), "")
		if cleaned != m.inputs[m.col].Value() {
			m.inputs[m.col].SetValue(cleaned)
			m.inputs[m.col].CursorEnd()
		}
	}

	m.writeThrough()
	return m, cmd
}

func (m *SizeRow) writeThrough() {
	value := m.inputs[m.col].Value()
	switch {
	case m.col < len(m.sizes):
		m.record.SetSize(m.sizes[m.col], form.CoerceAmount(value))
	case m.col == len(m.sizes):
		m.record.OtherLabel = value
	default:
		m.record.Notes = value
	}
}

// View renders the size headers over the single editable row.
func (m SizeRow) View() string {
	header := pad(m.label, labelColWidth)
	for _, size := range m.sizes {
		header += " " + pad(strings.ToUpper(size), sizeWidth+2)
	}
	header += " " + pad("Otra", 14)
	if m.notes {
		header += " " + pad("Observaciones", notesWidth+2)
	}

	labelStyle := styles.FormLabelStyle
	if m.focused {
		labelStyle = styles.FormLabelFocusedStyle
	}

	cells := []string{pad("", labelColWidth)}
	for i := range m.inputs {
		cells = append(cells, m.inputs[i].View())
	}

	return labelStyle.Render(header) + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
