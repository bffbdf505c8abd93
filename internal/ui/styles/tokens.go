package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Text hierarchy
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextSecondary   ColorToken = "text.secondary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextPlaceholder ColorToken = "text.placeholder"

	// Borders
	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	// Forms
	TokenFormLabel      ColorToken = "form.label"
	TokenFormLabelFocus ColorToken = "form.label.focus"

	// Toast notifications
	TokenToastSuccess ColorToken = "toast.success"
	TokenToastError   ColorToken = "toast.error"
	TokenToastInfo    ColorToken = "toast.info"

	// Misc
	TokenSpinner ColorToken = "spinner"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		// Text hierarchy
		TokenTextPrimary,
		TokenTextSecondary,
		TokenTextMuted,
		TokenTextPlaceholder,

		// Borders
		TokenBorderDefault,
		TokenBorderFocus,

		// Status indicators
		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,

		// Forms
		TokenFormLabel,
		TokenFormLabelFocus,

		// Toast notifications
		TokenToastSuccess,
		TokenToastError,
		TokenToastInfo,

		// Misc
		TokenSpinner,
	}
}
