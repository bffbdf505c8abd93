// Package app contains the root application model: the section wizard,
// submission and export workflows, and the theme toggle.
package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"brigada/internal/archive"
	"brigada/internal/catalog"
	"brigada/internal/config"
	"brigada/internal/form"
	"brigada/internal/keys"
	"brigada/internal/log"
	"brigada/internal/report"
	"brigada/internal/submit"
	"brigada/internal/ui/infoform"
	"brigada/internal/ui/sheet"
	"brigada/internal/ui/styles"
	"brigada/internal/ui/toaster"
	"brigada/internal/wizard"
)

// Status texts shown in the toaster.
const (
	msgSectionSaved    = "Sección guardada correctamente. Avanzando..."
	msgCompleted       = "¡Formulario completado con éxito! Tus necesidades han sido registradas."
	msgSubmitting      = "Enviando formulario..."
	msgPDFDone         = "PDF generado correctamente."
	msgPDFBusy         = "Ya hay una generación de PDF en curso."
	msgSubmitErrPrefix = "Error al enviar el formulario: "
	msgPDFErrPrefix    = "Error al generar el PDF: "
)

// Model is the root application state.
type Model struct {
	cfg        config.Config
	configPath string

	form       *form.Form
	controller *wizard.Controller
	views      map[string]*sectionView

	keyMap keys.KeyMap
	help   help.Model
	toast  toaster.Model

	sink     submit.Sink
	renderer report.Renderer
	store    *archive.Store

	themeMode  string
	submitting bool
	exporting  bool
	completed  bool

	width  int
	height int
}

// New builds the root model. sink and store may be nil, in which case the
// final submit skips the remote post or the local archive respectively.
func New(cfg config.Config, configPath string, sink submit.Sink, renderer report.Renderer, store *archive.Store) Model {
	keyMap := keys.DefaultKeyMap()
	f := form.New()

	mode := cfg.Theme.Mode
	if mode == "" {
		if lipgloss.HasDarkBackground() {
			mode = "dark"
		} else {
			mode = "light"
		}
	}

	return Model{
		cfg:        cfg,
		configPath: configPath,
		form:       f,
		controller: wizard.NewController(),
		views:      buildViews(f, keyMap),
		keyMap:     keyMap,
		help:       help.New(),
		toast:      toaster.New(),
		sink:       sink,
		renderer:   renderer,
		store:      store,
		themeMode:  mode,
	}
}

// buildViews constructs the per-section component stacks. The EPP section
// interleaves the boots and gloves size rows between its two category
// sheets, matching the order the items take in the report.
func buildViews(f *form.Form, keyMap keys.KeyMap) map[string]*sectionView {
	views := make(map[string]*sectionView, len(wizard.Sections()))

	for _, section := range wizard.Sections() {
		var v sectionView
		switch section.ID {
		case wizard.SectionInfo:
			v.panes = append(v.panes, infoPane(infoform.New(f.Info.Values(), keyMap)))
		case catalog.SectionEPP:
			ropa, _ := catalog.ByID("eppRopa")
			equipo, _ := catalog.ByID("eppEquipo")
			v.panes = append(v.panes,
				sheetPane(ropa.Title, sheet.New(f.Ledger("eppRopa"), keyMap).Focus(true)),
				sizeRowPane(sheet.NewSizeRow(&f.Botas, "Botas", catalog.BootSizes, true, keyMap)),
				sizeRowPane(sheet.NewSizeRow(&f.Guantes, "Guantes", catalog.GloveSizes, false, keyMap)),
				sheetPane(equipo.Title, sheet.New(f.Ledger("eppEquipo"), keyMap)),
			)
		default:
			for _, cat := range catalog.BySection(section.ID) {
				v.panes = append(v.panes, sheetPane(cat.Title, sheet.New(f.Ledger(cat.ID), keyMap)))
			}
			if len(v.panes) > 0 {
				v.panes[0] = v.panes[0].focus(true)
			}
		}
		views[section.ID] = &v
	}
	return views
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// infoValues reads the current info-field values out of the info form.
func (m Model) infoValues() map[string]string {
	return m.views[wizard.SectionInfo].panes[0].info.Values()
}

// syncInfo copies the info-form values into the session form.
func (m *Model) syncInfo() {
	for field, value := range m.infoValues() {
		m.form.Info.Set(field, value)
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		info := m.views[wizard.SectionInfo]
		info.panes[0].info = info.panes[0].info.SetSize(min(msg.Width, 100) - 4)
		return m, nil

	case toaster.DismissMsg:
		m.toast = m.toast.Dismiss(msg)
		return m, nil

	case infoform.FieldChangedMsg:
		m.controller.ClearError(msg.Field)
		m.syncInfo()
		return m, nil

	case themeSavedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatConfig, "Theme save failed", msg.err)
			m.toast = m.toast.Show("No se pudo guardar el tema: "+msg.err.Error(), toaster.StyleError)
			return m, m.toast.ScheduleDismiss(toaster.DefaultDuration)
		}
		return m, nil

	case submitResultMsg:
		return m.onSubmitResult(msg)

	case exportResultMsg:
		return m.onExportResult(msg)

	case tea.KeyMsg:
		return m.onKey(msg)
	}
	return m, nil
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keyMap.ToggleTheme):
		return m.toggleTheme()

	case key.Matches(msg, m.keyMap.Export):
		return m.startExport()
	}

	if m.completed {
		if key.Matches(msg, m.keyMap.NextSection) {
			return m.startNewSession()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.NextSection):
		return m.advance(1)

	case key.Matches(msg, m.keyMap.PrevSection):
		return m.advance(-1)

	case key.Matches(msg, m.keyMap.Submit):
		return m.submitSection()

	case key.Matches(msg, m.keyMap.AddItem):
		view := m.activeView()
		if p := view.focused(); p.kind == paneSheet {
			p.sheet = p.sheet.AddCustom()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Up):
		view := m.activeView()
		if view.focused().atTop() && view.moveFocus(-1) {
			return m, nil
		}

	case key.Matches(msg, m.keyMap.Down):
		view := m.activeView()
		if view.focused().atBottom() && view.moveFocus(1) {
			return m, nil
		}
	}

	return m.routeToFocused(msg)
}

func (m Model) routeToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	view := m.activeView()
	p, cmd := view.focused().update(msg)
	view.panes[view.focus] = p
	return m, cmd
}

func (m Model) activeView() *sectionView {
	return m.views[m.controller.Active().ID]
}

// advance moves one section forward or back through the gate. A refused
// forward move publishes the validation errors on the info form.
func (m Model) advance(delta int) (tea.Model, tea.Cmd) {
	all := wizard.Sections()
	target := m.activeIndex() + delta
	if target < 0 || target >= len(all) {
		return m, nil
	}

	if !m.controller.GoTo(all[target].ID, m.infoValues()) {
		return m.publishErrors()
	}

	m.syncInfo()
	if delta > 0 {
		m.toast = m.toast.Show(msgSectionSaved, toaster.StyleSuccess)
		return m, m.toast.ScheduleDismiss(toaster.DefaultDuration)
	}
	return m, nil
}

// submitSection runs the active section through the submit gate; on the
// final section this kicks off the submission workflow.
func (m Model) submitSection() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	switch m.controller.Submit(m.infoValues()) {
	case wizard.OutcomeRefused:
		return m.publishErrors()

	case wizard.OutcomeAdvanced:
		m.syncInfo()
		m.toast = m.toast.Show(msgSectionSaved, toaster.StyleSuccess)
		return m, m.toast.ScheduleDismiss(toaster.DefaultDuration)
	}

	// OutcomeCompleted
	m.syncInfo()
	m.submitting = true
	m.toast = m.toast.Show(msgSubmitting, toaster.StyleInfo)
	payload := submit.Assemble(m.form)
	return m, m.submitCmd(payload)
}

func (m Model) publishErrors() (tea.Model, tea.Cmd) {
	info := m.views[wizard.SectionInfo]
	info.panes[0].info = info.panes[0].info.SetErrors(m.controller.Errors())
	return m, nil
}

func (m Model) onSubmitResult(msg submitResultMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.err != nil {
		m.toast = m.toast.Show(msgSubmitErrPrefix+msg.err.Error(), toaster.StyleError)
		return m, nil
	}

	m.completed = true
	m.toast = m.toast.Show(msgCompleted, toaster.StyleSuccess)
	return m, nil
}

// startExport synthesizes the report and renders it off the update loop.
// At most one export runs at a time.
func (m Model) startExport() (tea.Model, tea.Cmd) {
	if m.exporting {
		m.toast = m.toast.Show(msgPDFBusy, toaster.StyleInfo)
		return m, m.toast.ScheduleDismiss(toaster.DefaultDuration)
	}

	m.syncInfo()
	m.exporting = true
	instructions := report.Synthesize(m.form)
	filename := report.Filename(m.form.Info.Name)
	return m, exportCmd(m.renderer, instructions, m.cfg.Report.OutputDir, filename)
}

func (m Model) onExportResult(msg exportResultMsg) (tea.Model, tea.Cmd) {
	m.exporting = false
	if msg.err != nil {
		m.toast = m.toast.Show(msgPDFErrPrefix+msg.err.Error(), toaster.StyleError)
		return m, nil
	}

	log.Info(log.CatReport, "Report exported", "path", msg.path)
	m.toast = m.toast.Show(msgPDFDone, toaster.StyleSuccess)
	return m, m.toast.ScheduleDismiss(toaster.DefaultDuration)
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	if m.themeMode == "dark" {
		m.themeMode = "light"
	} else {
		m.themeMode = "dark"
	}
	styles.SetMode(m.themeMode)
	return m, saveThemeCmd(m.configPath, m.themeMode)
}

// startNewSession resets all session state after a completed submission.
func (m Model) startNewSession() (tea.Model, tea.Cmd) {
	m.form.Reset()
	m.controller.Reset()
	m.views = buildViews(m.form, m.keyMap)
	m.completed = false
	m.toast = m.toast.Hide()
	return m, nil
}
