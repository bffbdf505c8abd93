package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"brigada/internal/ui/infoform"
	"brigada/internal/ui/sheet"
)

type paneKind int

const (
	paneInfo paneKind = iota
	paneSheet
	paneSizeRow
)

// pane is one focusable block inside a section view. Sections with a
// single category hold one pane; the EPP and hygiene sections stack
// several.
type pane struct {
	kind    paneKind
	title   string
	info    infoform.Model
	sheet   sheet.Model
	sizeRow sheet.SizeRow
}

func infoPane(m infoform.Model) pane {
	return pane{kind: paneInfo, info: m}
}

func sheetPane(title string, m sheet.Model) pane {
	return pane{kind: paneSheet, title: title, sheet: m}
}

func sizeRowPane(m sheet.SizeRow) pane {
	return pane{kind: paneSizeRow, sizeRow: m}
}

func (p pane) update(msg tea.Msg) (pane, tea.Cmd) {
	var cmd tea.Cmd
	switch p.kind {
	case paneInfo:
		p.info, cmd = p.info.Update(msg)
	case paneSheet:
		p.sheet, cmd = p.sheet.Update(msg)
	case paneSizeRow:
		p.sizeRow, cmd = p.sizeRow.Update(msg)
	}
	return p, cmd
}

func (p pane) view() string {
	switch p.kind {
	case paneInfo:
		return p.info.View()
	case paneSheet:
		return p.sheet.View()
	default:
		return p.sizeRow.View()
	}
}

func (p pane) focus(fromTop bool) pane {
	switch p.kind {
	case paneSheet:
		p.sheet = p.sheet.Focus(fromTop)
	case paneSizeRow:
		p.sizeRow = p.sizeRow.Focus(fromTop)
	}
	return p
}

func (p pane) blur() pane {
	switch p.kind {
	case paneSheet:
		p.sheet = p.sheet.Blur()
	case paneSizeRow:
		p.sizeRow = p.sizeRow.Blur()
	}
	return p
}

func (p pane) atTop() bool {
	switch p.kind {
	case paneSheet:
		return p.sheet.AtTop()
	case paneSizeRow:
		return p.sizeRow.AtTop()
	default:
		return true
	}
}

func (p pane) atBottom() bool {
	switch p.kind {
	case paneSheet:
		return p.sheet.AtBottom()
	case paneSizeRow:
		return p.sizeRow.AtBottom()
	default:
		return true
	}
}

// sectionView is the stack of panes for one wizard section, with at most
// one pane holding the cursor.
type sectionView struct {
	panes []pane
	focus int
}

func (v *sectionView) focused() *pane {
	return &v.panes[v.focus]
}

// moveFocus shifts the cursor to an adjacent pane when one exists,
// entering it from the matching edge.
func (v *sectionView) moveFocus(delta int) bool {
	next := v.focus + delta
	if next < 0 || next >= len(v.panes) {
		return false
	}
	v.panes[v.focus] = v.panes[v.focus].blur()
	v.focus = next
	v.panes[v.focus] = v.panes[v.focus].focus(delta > 0)
	return true
}
