// Package toaster provides a transient status notification component.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"brigada/internal/ui/styles"
)

// DefaultDuration is how long a toast stays up when the caller does not
// pick its own duration.
const DefaultDuration = 1500 * time.Millisecond

// Style determines the visual appearance of the toast.
type Style int

const (
	// StyleSuccess shows ✅ with green border.
	StyleSuccess Style = iota
	// StyleError shows ❌ with red border.
	StyleError
	// StyleInfo shows ℹ️ with blue border.
	StyleInfo
)

// Model holds the toaster state. gen counts Show calls so that a dismiss
// scheduled for an earlier toast cannot hide a later one.
type Model struct {
	message string
	style   Style
	visible bool
	gen     int
}

// New creates a new toaster model.
func New() Model {
	return Model{}
}

// Show displays a toast with the given message and style.
// The appropriate emoji is automatically prepended based on style:
// ✅ success, ❌ error, ℹ️ info.
func (m Model) Show(message string, style Style) Model {
	m.message = message
	m.style = style
	m.visible = true
	m.gen++
	return m
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the currently displayed text, without the emoji.
func (m Model) Message() string {
	return m.message
}

// View renders the toast box. It renders to an empty string when hidden
// so callers can always include it in their layout.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	var content string
	switch m.style {
	case StyleError:
		style = style.BorderForeground(styles.ToastBorderErrorColor)
		content = "❌ " + m.message
	case StyleInfo:
		style = style.BorderForeground(styles.ToastBorderInfoColor)
		content = "ℹ️ " + m.message
	default: // StyleSuccess
		style = style.BorderForeground(styles.ToastBorderSuccessColor)
		content = "✅ " + m.message
	}

	return style.Render(content)
}

// DismissMsg signals that the toast shown at generation gen should be
// dismissed.
type DismissMsg struct {
	gen int
}

// ScheduleDismiss returns a command that dismisses the current toast
// after the duration. A toast shown in the meantime stays up: its newer
// generation wins over the stale dismiss.
func (m Model) ScheduleDismiss(d time.Duration) tea.Cmd {
	gen := m.gen
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return DismissMsg{gen: gen}
	})
}

// Dismiss hides the toast when the message targets the showing
// generation; stale dismisses are ignored.
func (m Model) Dismiss(msg DismissMsg) Model {
	if msg.gen != m.gen {
		return m
	}
	return m.Hide()
}
