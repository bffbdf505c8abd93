package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brigada/internal/config"
	"brigada/internal/form"
	"brigada/internal/report"
	"brigada/internal/submit"
	"brigada/internal/testutil"
	"brigada/internal/ui/infoform"
	"brigada/internal/wizard"
)

type fakeSink struct {
	payloads []submit.Payload
	err      error
}

func (s *fakeSink) Submit(_ context.Context, p submit.Payload) error {
	if s.err != nil {
		return s.err
	}
	s.payloads = append(s.payloads, p)
	return nil
}

type fakeRenderer struct {
	err error
}

func (r *fakeRenderer) Render([]report.Instruction) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

func newTestModel(t *testing.T, sink submit.Sink) Model {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Defaults()
	cfg.Report.OutputDir = dir

	m := New(cfg, filepath.Join(dir, "config.yaml"), sink, &fakeRenderer{}, nil)
	m.width = 120
	m.height = 40
	return m
}

// seedInfo fills the session form with passing info values and rebuilds
// the views so the inputs carry them.
func seedInfo(m Model) Model {
	for field, value := range testutil.ValidInfoValues() {
		m.form.Info.Set(field, value)
	}
	m.views = buildViews(m.form, m.keyMap)
	return m
}

func press(m Model, key tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg(tea.Key{Type: key}))
	return next.(Model), cmd
}

func typeRune(m Model, r rune) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}}))
	return next.(Model), cmd
}

func deliver(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestAdvance_RefusedOnEmptyInfo(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(m, tea.KeyCtrlN)

	assert.Equal(t, wizard.SectionInfo, m.controller.Active().ID)
	assert.NotEmpty(t, m.controller.Errors())
}

func TestAdvance_MovesForwardWhenValid(t *testing.T) {
	m := seedInfo(newTestModel(t, nil))

	m, cmd := press(m, tea.KeyCtrlN)

	assert.Equal(t, "epp", m.controller.Active().ID)
	assert.True(t, m.toast.Visible())
	assert.Equal(t, msgSectionSaved, m.toast.Message())
	assert.NotNil(t, cmd, "a dismiss is scheduled")
}

func TestAdvance_BackFromFirstSectionIgnored(t *testing.T) {
	m := seedInfo(newTestModel(t, nil))

	m, cmd := press(m, tea.KeyCtrlP)

	assert.Equal(t, wizard.SectionInfo, m.controller.Active().ID)
	assert.Nil(t, cmd)
}

func TestTyping_RoutesToInfoForm(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := typeRune(m, 'B')

	require.NotNil(t, cmd)
	assert.Equal(t, "B", m.infoValues()[form.FieldName])
}

func TestFieldChanged_ClearsErrorAndSyncs(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = press(m, tea.KeyCtrlN)
	require.NotEmpty(t, m.controller.Errors())

	m, _ = typeRune(m, 'B')
	m, _ = deliver(m, fieldChangedFrom(t, m))

	_, stillThere := m.controller.Errors()[form.FieldName]
	assert.False(t, stillThere)
	assert.Equal(t, "B", m.form.Info.Name)
}

// fieldChangedFrom builds the change notification the info form emits
// for its focused field.
func fieldChangedFrom(t *testing.T, m Model) tea.Msg {
	t.Helper()
	field := m.views[wizard.SectionInfo].panes[0].info.FocusedField()
	require.NotEmpty(t, field)
	return infoform.FieldChangedMsg{Field: field}
}

func TestAddItem_AppendsCustomRow(t *testing.T) {
	m := seedInfo(newTestModel(t, nil))
	m, _ = press(m, tea.KeyCtrlN) // epp
	m, _ = press(m, tea.KeyCtrlN) // tools

	m, _ = press(m, tea.KeyCtrlA)

	assert.Len(t, m.form.Ledger("herramientas").Custom(), 1)
}

func TestSubmit_FullWalkCompletes(t *testing.T) {
	sink := &fakeSink{}
	m := seedInfo(newTestModel(t, sink))

	var cmd tea.Cmd
	for range len(wizard.Sections()) {
		m, cmd = press(m, tea.KeyCtrlS)
	}

	require.True(t, m.submitting)
	assert.Equal(t, msgSubmitting, m.toast.Message())
	require.NotNil(t, cmd)

	m, _ = deliver(m, cmd())

	assert.False(t, m.submitting)
	assert.True(t, m.completed)
	assert.Equal(t, msgCompleted, m.toast.Message())
	require.Len(t, sink.payloads, 1)
	assert.Equal(t, "Brigada San Martin", sink.payloads[0][form.FieldName])
}

func TestSubmit_SinkFailureSurfaces(t *testing.T) {
	sink := &fakeSink{err: errors.New("conexión rechazada")}
	m := seedInfo(newTestModel(t, sink))

	var cmd tea.Cmd
	for range len(wizard.Sections()) {
		m, cmd = press(m, tea.KeyCtrlS)
	}
	require.NotNil(t, cmd)

	m, _ = deliver(m, cmd())

	assert.False(t, m.completed)
	assert.False(t, m.submitting)
	assert.Contains(t, m.toast.Message(), "conexión rechazada")
}

func TestSubmit_IgnoredWhileInFlight(t *testing.T) {
	m := seedInfo(newTestModel(t, &fakeSink{}))
	for range len(wizard.Sections()) {
		m, _ = press(m, tea.KeyCtrlS)
	}
	require.True(t, m.submitting)

	_, cmd := press(m, tea.KeyCtrlS)

	assert.Nil(t, cmd)
}

func TestExport_WritesArtifact(t *testing.T) {
	m := seedInfo(newTestModel(t, nil))

	m, cmd := press(m, tea.KeyCtrlE)

	require.True(t, m.exporting)
	require.NotNil(t, cmd)

	msg := cmd()
	m, _ = deliver(m, msg)

	assert.False(t, m.exporting)
	assert.Equal(t, msgPDFDone, m.toast.Message())

	result, ok := msg.(exportResultMsg)
	require.True(t, ok)
	require.NoError(t, result.err)
	data, err := os.ReadFile(result.path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "%PDF")
	assert.Contains(t, result.path, "formulario-brigada-Brigada_San_Martin.pdf")
}

func TestExport_AtMostOneInFlight(t *testing.T) {
	m := seedInfo(newTestModel(t, nil))
	m, first := press(m, tea.KeyCtrlE)
	require.NotNil(t, first)

	m, _ = press(m, tea.KeyCtrlE)

	assert.True(t, m.exporting)
	assert.Equal(t, msgPDFBusy, m.toast.Message())
}

func TestExport_RendererFailureSurfaces(t *testing.T) {
	m := seedInfo(newTestModel(t, nil))
	m.renderer = &fakeRenderer{err: errors.New("fuente no disponible")}

	m, cmd := press(m, tea.KeyCtrlE)
	require.NotNil(t, cmd)

	m, _ = deliver(m, cmd())

	assert.Contains(t, m.toast.Message(), msgPDFErrPrefix)
	assert.False(t, m.exporting)
}

func TestCompleted_NextSectionStartsFreshSession(t *testing.T) {
	m := seedInfo(newTestModel(t, &fakeSink{}))
	var cmd tea.Cmd
	for range len(wizard.Sections()) {
		m, cmd = press(m, tea.KeyCtrlS)
	}
	m, _ = deliver(m, cmd())
	require.True(t, m.completed)

	m, _ = press(m, tea.KeyCtrlN)

	assert.False(t, m.completed)
	assert.Equal(t, wizard.SectionInfo, m.controller.Active().ID)
	assert.Empty(t, m.infoValues()[form.FieldName])
	assert.False(t, m.toast.Visible())
}

func TestCompleted_OtherSectionKeysIgnored(t *testing.T) {
	m := seedInfo(newTestModel(t, &fakeSink{}))
	var cmd tea.Cmd
	for range len(wizard.Sections()) {
		m, cmd = press(m, tea.KeyCtrlS)
	}
	m, _ = deliver(m, cmd())

	next, cmd := press(m, tea.KeyCtrlS)

	assert.True(t, next.completed)
	assert.Nil(t, cmd)
}

func TestToggleTheme_FlipsAndPersists(t *testing.T) {
	m := newTestModel(t, nil)
	before := m.themeMode

	m, cmd := press(m, tea.KeyCtrlT)

	assert.NotEqual(t, before, m.themeMode)
	require.NotNil(t, cmd)

	msg := cmd()
	saved, ok := msg.(themeSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)

	data, err := os.ReadFile(m.configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), m.themeMode)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil)

	_, cmd := press(m, tea.KeyCtrlC)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_RendersAfterResize(t *testing.T) {
	m := newTestModel(t, nil)
	m.width = 0

	assert.Empty(t, m.View())

	next, _ := deliver(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	out := next.View()
	assert.Contains(t, out, "Formulario de Necesidades")
	assert.Contains(t, out, "Información")
	assert.Contains(t, out, "Sección 1 de 9")
}

func TestToastDismiss(t *testing.T) {
	m := seedInfo(newTestModel(t, nil))
	m, cmd := press(m, tea.KeyCtrlN)
	require.True(t, m.toast.Visible())
	require.NotNil(t, cmd)

	// The advance schedules the dismiss tick; run it and feed the
	// resulting message back.
	m, _ = deliver(m, cmd())

	assert.False(t, m.toast.Visible())
}
