// Package sheet renders one resource category as an editable grid: a row
// per catalog item, a column per value slot, plus rows for custom items.
// Every edit writes through to the backing ledger immediately, so the
// grid never holds state the form does not.
package sheet

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"brigada/internal/catalog"
	"brigada/internal/form"
	"brigada/internal/keys"
	"brigada/internal/ui/styles"
)

const (
	labelColWidth = 30
	amountWidth   = 7
	sizeWidth     = 5
	notesWidth    = 22
)

var nonDigitRe = regexp.MustCompile(`\D`)

type cellKind int

const (
	cellLabel cellKind = iota
	cellQuantity
	cellCost
	cellSize
	cellNotes
)

// column describes one editable slot shared by every row of the grid.
type column struct {
	title string
	kind  cellKind
	size  string // size key when kind == cellSize
	width int
}

// Model is the grid editor for one ledger.
type Model struct {
	ledger  *form.Ledger
	columns []column
	inputs  [][]textinput.Model
	row     int
	col     int
	focused bool
	keyMap  keys.KeyMap
}

// New builds a grid over the ledger's catalog items and any custom items
// already present.
func New(ledger *form.Ledger, keyMap keys.KeyMap) Model {
	m := Model{
		ledger:  ledger,
		columns: columnsFor(ledger.Category),
		keyMap:  keyMap,
	}

	for _, item := range ledger.Category.Items {
		obs := ledger.Item(item)
		m.inputs = append(m.inputs, m.newRow(obs))
	}
	for _, custom := range ledger.Custom() {
		m.inputs = append(m.inputs, m.newCustomRow(custom))
	}
	return m
}

func columnsFor(cat catalog.Category) []column {
	var cols []column
	switch cat.Shape {
	case catalog.ShapeCost:
		cols = append(cols, column{title: "Costo (Bs.)", kind: cellCost, width: amountWidth})
	case catalog.ShapeSize:
		for _, size := range cat.Sizes {
			cols = append(cols, column{title: strings.ToUpper(size), kind: cellSize, size: size, width: sizeWidth})
		}
	default:
		cols = append(cols, column{title: "Cantidad", kind: cellQuantity, width: amountWidth})
	}
	cols = append(cols, column{title: "Observaciones", kind: cellNotes, width: notesWidth})
	return cols
}

// newRow creates the value and notes inputs for one row.
func (m Model) newRow(obs form.Observation) []textinput.Model {
	row := make([]textinput.Model, 0, len(m.columns))
	for _, col := range m.columns {
		ti := textinput.New()
		ti.Prompt = ""
		ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor)
		ti.Width = col.width
		ti.CharLimit = 60

		switch col.kind {
		case cellQuantity:
			ti.SetValue(amountText(obs.Quantity))
			ti.CharLimit = 5
		case cellCost:
			ti.SetValue(amountText(obs.Cost))
			ti.CharLimit = 7
		case cellSize:
			ti.SetValue(amountText(obs.Sizes[col.size]))
			ti.CharLimit = 4
		case cellNotes:
			ti.SetValue(obs.Notes)
		}
		row = append(row, ti)
	}
	return row
}

// amountText renders zero as empty so untouched cells stay blank.
func amountText(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// catalogRows is how many leading rows map to catalog items; everything
// after is a custom item.
func (m Model) catalogRows() int {
	return len(m.ledger.Category.Items)
}

// Rows returns the total row count.
func (m Model) Rows() int {
	return len(m.inputs)
}

// AtTop reports whether the cursor sits on the first row.
func (m Model) AtTop() bool {
	return m.row == 0
}

// AtBottom reports whether the cursor sits on the last row.
func (m Model) AtBottom() bool {
	return m.row >= len(m.inputs)-1
}

// Focused reports whether the grid currently owns the cursor.
func (m Model) Focused() bool {
	return m.focused
}

// Focus gives the grid the cursor, entering at the given edge.
func (m Model) Focus(fromTop bool) Model {
	m.focused = true
	if fromTop {
		m.row = 0
	} else {
		m.row = max(len(m.inputs)-1, 0)
	}
	m.col = 0
	m.syncFocus()
	return m
}

// Blur drops the cursor.
func (m Model) Blur() Model {
	m.focused = false
	if m.row < len(m.inputs) {
		m.inputs[m.row][m.col].Blur()
	}
	return m
}

func (m *Model) syncFocus() {
	for r := range m.inputs {
		for c := range m.inputs[r] {
			if m.focused && r == m.row && c == m.col {
				m.inputs[r][c].Focus()
			} else {
				m.inputs[r][c].Blur()
			}
		}
	}
}

// AddCustom appends a custom item row and moves the cursor onto it.
func (m Model) AddCustom() Model {
	index := m.ledger.AddCustom("")
	custom := m.ledger.Custom()[index]
	m.inputs = append(m.inputs, m.newCustomRow(custom))
	m.row = len(m.inputs) - 1
	m.col = 0
	m.syncFocus()
	return m
}

// newCustomRow is a catalog row plus a leading label cell.
func (m Model) newCustomRow(custom form.CustomItem) []textinput.Model {
	label := textinput.New()
	label.Prompt = ""
	label.Placeholder = "Otro artículo"
	label.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor)
	label.Width = labelColWidth - 2
	label.CharLimit = 60
	label.SetValue(custom.Label)

	row := m.newRow(custom.Observation)
	return append([]textinput.Model{label}, row...)
}

// rowColumns gives the effective column list for a row. Custom rows carry
// the extra label column at index 0.
func (m Model) rowColumns(row int) []column {
	if row < m.catalogRows() {
		return m.columns
	}
	return append([]column{{title: "", kind: cellLabel, width: labelColWidth - 2}}, m.columns...)
}

// Update routes keys to cursor movement or the focused cell.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || len(m.inputs) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keyMap.Up):
		if m.row > 0 {
			m.row--
			m.col = min(m.col, len(m.inputs[m.row])-1)
			m.syncFocus()
		}
		return m, nil
	case key.Matches(keyMsg, m.keyMap.Down):
		if m.row < len(m.inputs)-1 {
			m.row++
			m.col = min(m.col, len(m.inputs[m.row])-1)
			m.syncFocus()
		}
		return m, nil
	case key.Matches(keyMsg, m.keyMap.NextCell):
		m.col = (m.col + 1) % len(m.inputs[m.row])
		m.syncFocus()
		return m, nil
	case key.Matches(keyMsg, m.keyMap.PrevCell):
		m.col = (m.col - 1 + len(m.inputs[m.row])) % len(m.inputs[m.row])
		m.syncFocus()
		return m, nil
	}

	cols := m.rowColumns(m.row)
	col := cols[m.col]

	var cmd tea.Cmd
	m.inputs[m.row][m.col], cmd = m.inputs[m.row][m.col].Update(msg)

	if col.kind != cellNotes && col.kind != cellLabel {
		cleaned := nonDigitRe.ReplaceAllString(m.inputs[m.row][m.col].Value(), "")
		if cleaned != m.inputs[m.row][m.col].Value() {
			m.inputs[m.row][m.col].SetValue(cleaned)
			m.inputs[m.row][m.col].CursorEnd()
		}
	}

	m.writeThrough(col)
	return m, cmd
}

// writeThrough persists the focused cell's value into the ledger.
func (m *Model) writeThrough(col column) {
	value := m.inputs[m.row][m.col].Value()

	if m.row < m.catalogRows() {
		item := m.ledger.Category.Items[m.row]
		switch col.kind {
		case cellQuantity:
			m.ledger.SetQuantity(item, form.CoerceAmount(value))
		case cellCost:
			m.ledger.SetCost(item, form.CoerceAmount(value))
		case cellSize:
			m.ledger.SetSizeQuantity(item, col.size, form.CoerceAmount(value))
		case cellNotes:
			m.ledger.SetNotes(item, value)
		}
		return
	}

	index := m.row - m.catalogRows()
	switch col.kind {
	case cellLabel:
		m.ledger.SetCustomLabel(index, value)
	case cellQuantity:
		m.ledger.SetCustomQuantity(index, form.CoerceAmount(value))
	case cellCost:
		m.ledger.SetCustomCost(index, form.CoerceAmount(value))
	case cellSize:
		m.ledger.SetCustomSizeQuantity(index, col.size, form.CoerceAmount(value))
	case cellNotes:
		m.ledger.SetCustomNotes(index, value)
	}
}

// View renders the header row and the grid.
func (m Model) View() string {
	var b strings.Builder

	header := pad("Artículo", labelColWidth)
	for _, col := range m.columns {
		header += " " + pad(col.title, col.width+2)
	}
	b.WriteString(styles.FormLabelStyle.Render(header))
	b.WriteString("\n")

	for r := range m.inputs {
		b.WriteString(m.viewRow(r))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewRow(r int) string {
	var cells []string

	if r < m.catalogRows() {
		label := pad(m.ledger.Category.Items[r], labelColWidth)
		style := styles.FormLabelStyle
		if m.focused && r == m.row {
			style = styles.FormLabelFocusedStyle
		}
		cells = append(cells, style.Render(label))
	} else {
		cells = append(cells, "> ")
	}

	for c := range m.inputs[r] {
		cells = append(cells, m.inputs[r][c].View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// pad truncates or right-pads a string to width.
func pad(s string, width int) string {
	if len([]rune(s)) > width {
		return string([]rune(s)[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len([]rune(s)))
}
