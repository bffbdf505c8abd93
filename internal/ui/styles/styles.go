// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#CCCCCC"} // Main/primary text
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#636E72", Dark: "#BBBBBB"} // Labels, secondary info
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, help text, footers
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#777777"} // Input placeholders

	// Semantic color names - Border
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Unfocused borders
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#FFFFFF"} // Focused borders

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Success states
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"} // Warnings
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#D32F2F", Dark: "#FF8787"} // Validation errors

	// Form colors
	FormLabelColor        = lipgloss.AdaptiveColor{Light: "#636E72", Dark: "#8C8C8C"}
	FormLabelFocusedColor = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#FFFFFF"}

	// Toast notification colors
	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	// Loading spinner color
	SpinnerColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#FFF"}

	// Field labels
	FormLabelStyle        = lipgloss.NewStyle().Foreground(FormLabelColor)
	FormLabelFocusedStyle = lipgloss.NewStyle().Foreground(FormLabelFocusedColor).Bold(true)

	// Required-field marker
	RequiredMarkStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)

	// Validation error lines under fields
	FieldErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	// Help footer
	HelpStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	// Error display
	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true).
			Padding(1, 2)
)

// rebuildStyles recreates all Style objects with updated colors.
// This is necessary because lipgloss.Style objects capture colors at creation time.
func rebuildStyles() {
	FormLabelStyle = lipgloss.NewStyle().Foreground(FormLabelColor)
	FormLabelFocusedStyle = lipgloss.NewStyle().Foreground(FormLabelFocusedColor).Bold(true)
	RequiredMarkStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	FieldErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(TextSecondaryColor).
		Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(StatusErrorColor).
		Bold(true).
		Padding(1, 2)
}
