package report

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Filename derives the artifact name from the brigade name: whitespace
// runs collapse to underscores, and a blank name falls back to the fixed
// placeholder.
func Filename(brigadeName string) string {
	name := whitespaceRe.ReplaceAllString(strings.TrimSpace(brigadeName), "_")
	if name == "" {
		name = "sin_nombre"
	}
	return "formulario-brigada-" + name + ".pdf"
}
