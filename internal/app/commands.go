package app

import (
	"context"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"brigada/internal/config"
	"brigada/internal/log"
	"brigada/internal/report"
	"brigada/internal/submit"
)

// submitResultMsg carries the outcome of the submission workflow.
type submitResultMsg struct {
	archiveID string
	err       error
}

// exportResultMsg carries the outcome of a report export.
type exportResultMsg struct {
	path string
	err  error
}

// themeSavedMsg reports the theme preference write-back.
type themeSavedMsg struct {
	err error
}

// submitCmd posts the payload and archives it locally. The archive write
// is best effort: a failed save is logged but does not fail a submission
// the endpoint accepted.
func (m Model) submitCmd(payload submit.Payload) tea.Cmd {
	sink := m.sink
	store := m.store
	brigade := m.form.Info.Name
	timeout := time.Duration(m.cfg.API.TimeoutSeconds) * time.Second

	return func() tea.Msg {
		if sink != nil {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			if err := sink.Submit(ctx, payload); err != nil {
				return submitResultMsg{err: err}
			}
		}

		var id string
		if store != nil {
			data, err := payload.Marshal()
			if err == nil {
				id, err = store.Save(brigade, data)
			}
			if err != nil {
				log.ErrorErr(log.CatArchive, "Archive save failed", err, "brigade", brigade)
			}
		}
		return submitResultMsg{archiveID: id}
	}
}

// exportCmd renders the instruction stream and writes the artifact.
func exportCmd(renderer report.Renderer, instructions []report.Instruction, dir, filename string) tea.Cmd {
	return func() tea.Msg {
		data, err := renderer.Render(instructions)
		if err != nil {
			return exportResultMsg{err: err}
		}

		if dir == "" {
			dir = "."
		}
		path := filepath.Join(dir, filename)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return exportResultMsg{err: err}
		}
		return exportResultMsg{path: path}
	}
}

// saveThemeCmd persists the theme mode back to the config file.
func saveThemeCmd(configPath, mode string) tea.Cmd {
	return func() tea.Msg {
		return themeSavedMsg{err: config.SaveThemeMode(configPath, mode)}
	}
}
