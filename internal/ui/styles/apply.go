package styles

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Mode   string
	Colors map[string]string
}

// ApplyTheme applies a theme configuration. A non-empty Mode forces
// light or dark rendering instead of terminal background detection;
// Colors overrides individual tokens. Style objects are rebuilt after
// the colors change because lipgloss captures colors at creation time.
func ApplyTheme(cfg ThemeConfig) error {
	switch cfg.Mode {
	case "":
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	default:
		return fmt.Errorf("unknown theme mode: %s", cfg.Mode)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		applyColor(token, value)
	}

	rebuildStyles()
	return nil
}

// SetMode flips the forced light/dark mode at runtime, for the in-app
// theme toggle.
func SetMode(mode string) {
	lipgloss.SetHasDarkBackground(mode == "dark")
	rebuildStyles()
}

func applyColor(token ColorToken, hex string) {
	c := lipgloss.AdaptiveColor{Light: hex, Dark: hex}

	switch token {
	// Text hierarchy
	case TokenTextPrimary:
		TextPrimaryColor = c
	case TokenTextSecondary:
		TextSecondaryColor = c
	case TokenTextMuted:
		TextMutedColor = c
	case TokenTextPlaceholder:
		TextPlaceholderColor = c

	// Borders
	case TokenBorderDefault:
		BorderDefaultColor = c
	case TokenBorderFocus:
		BorderFocusColor = c

	// Status
	case TokenStatusSuccess:
		StatusSuccessColor = c
	case TokenStatusWarning:
		StatusWarningColor = c
	case TokenStatusError:
		StatusErrorColor = c

	// Forms
	case TokenFormLabel:
		FormLabelColor = c
	case TokenFormLabelFocus:
		FormLabelFocusedColor = c

	// Toast
	case TokenToastSuccess:
		ToastBorderSuccessColor = c
	case TokenToastError:
		ToastBorderErrorColor = c
	case TokenToastInfo:
		ToastBorderInfoColor = c

	// Misc
	case TokenSpinner:
		SpinnerColor = c
	}
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
