package wizard

import (
	"regexp"
	"strconv"
	"strings"

	"brigada/internal/form"
)

// FieldErrors maps a field id to its validation message. An absent key
// means the field is valid. The map is rebuilt wholesale on every pass.
type FieldErrors map[string]string

// Validation messages. Texts are user-facing and fixed.
const (
	MsgRequired         = "Este campo es obligatorio"
	MsgLettersOnly      = "Este campo solo acepta letras y espacios."
	MsgPhoneFormat      = "El teléfono debe tener exactamente 8 dígitos."
	MsgEmergencyList    = "Solo se permiten números, comas y espacios."
	MsgAtLeastOneMember = "Debe haber al menos un bombero activo."
)

var (
	nameRe      = regexp.MustCompile(`^[A-Za-z\s]+$`)
	phoneRe     = regexp.MustCompile(`^\d{8}$`)
	emergencyRe = regexp.MustCompile(`^[0-9,\s]+$`)
)

// Validate runs the section's rules over the given field values and
// returns the complete error map. Every field is checked independently so
// the UI can surface all problems at once. Required-ness is checked on the
// trimmed value; format rules only apply to non-empty values, including on
// optional fields.
func Validate(section Section, values map[string]string) FieldErrors {
	errs := FieldErrors{}

	for _, field := range section.Fields {
		value := values[field]
		trimmed := strings.TrimSpace(value)

		if section.IsRequired(field) && trimmed == "" {
			errs[field] = MsgRequired
			continue
		}
		if trimmed == "" {
			continue
		}

		switch field {
		case form.FieldName, form.FieldCommanderName, form.FieldLogisticsOfficer:
			if !nameRe.MatchString(value) {
				errs[field] = MsgLettersOnly
			}
		case form.FieldCommanderPhone, form.FieldLogisticsPhone:
			if !phoneRe.MatchString(value) {
				errs[field] = MsgPhoneFormat
			}
		case form.FieldEmergencyNumbers:
			if !emergencyRe.MatchString(value) {
				errs[field] = MsgEmergencyList
			}
		case form.FieldActiveMembers:
			if n, err := strconv.Atoi(trimmed); err != nil || n < 1 {
				errs[field] = MsgAtLeastOneMember
			}
		}
	}

	return errs
}
