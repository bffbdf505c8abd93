package styles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTheme_ModeValidation(t *testing.T) {
	assert.NoError(t, ApplyTheme(ThemeConfig{Mode: ""}))
	assert.NoError(t, ApplyTheme(ThemeConfig{Mode: "light"}))
	assert.NoError(t, ApplyTheme(ThemeConfig{Mode: "dark"}))
	assert.Error(t, ApplyTheme(ThemeConfig{Mode: "sepia"}))
}

func TestApplyTheme_ColorOverride(t *testing.T) {
	original := StatusErrorColor
	t.Cleanup(func() {
		StatusErrorColor = original
		rebuildStyles()
	})

	err := ApplyTheme(ThemeConfig{Colors: map[string]string{
		"status.error": "#ABCDEF",
	}})

	require.NoError(t, err)
	assert.Equal(t, "#ABCDEF", StatusErrorColor.Dark)
	assert.Equal(t, "#ABCDEF", StatusErrorColor.Light)
}

func TestApplyTheme_RejectsUnknownTokenAndBadColor(t *testing.T) {
	assert.Error(t, ApplyTheme(ThemeConfig{Colors: map[string]string{"no.such.token": "#FFF"}}))
	assert.Error(t, ApplyTheme(ThemeConfig{Colors: map[string]string{"status.error": "red"}}))
	assert.Error(t, ApplyTheme(ThemeConfig{Colors: map[string]string{"status.error": "#12345"}}))
}

func TestIsValidHexColor(t *testing.T) {
	assert.True(t, isValidHexColor("#FFF"))
	assert.True(t, isValidHexColor("#d32f2f"))
	assert.False(t, isValidHexColor("d32f2f"))
	assert.False(t, isValidHexColor("#GGG"))
	assert.False(t, isValidHexColor("#12"))
}

func TestAccentFor_DistinctPerSection(t *testing.T) {
	seen := map[SectionAccent]bool{}
	for i := range len(sectionAccents) {
		seen[AccentFor(i)] = true
	}

	assert.Len(t, seen, len(sectionAccents), "every section gets a distinct accent")
	assert.Equal(t, AccentFor(0), AccentFor(-1))
	assert.Equal(t, AccentFor(0), AccentFor(999))
}

func TestRenderSectionPane(t *testing.T) {
	out := RenderSectionPane([]string{"fila uno", "fila dos"}, "Herramientas", "* obligatorio", 40, true, AccentFor(2))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Herramientas")
	assert.Contains(t, lines[0], "* obligatorio")
	assert.Contains(t, lines[1], "fila uno")
	assert.Contains(t, lines[3], "╰")
}
