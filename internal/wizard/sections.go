// Package wizard implements the section-sequencing state machine: the
// fixed section table, the field validation engine that gates navigation,
// and the controller that owns the active-section pointer.
package wizard

import "brigada/internal/form"

// Section is one stage of the intake sequence. Ordinal position in the
// Sections slice defines navigation order.
type Section struct {
	ID       string
	Name     string
	Fields   []string
	Required []string
}

// IsRequired reports whether the section marks a field as required.
func (s Section) IsRequired(field string) bool {
	for _, f := range s.Required {
		if f == field {
			return true
		}
	}
	return false
}

// SectionInfo is the id of the basic-information section, the only one
// with required fields.
const SectionInfo = "info"

var sections = []Section{
	{
		ID:   SectionInfo,
		Name: "Información",
		Fields: []string{
			form.FieldName, form.FieldActiveMembers, form.FieldCommanderName,
			form.FieldCommanderPhone, form.FieldLogisticsOfficer,
			form.FieldLogisticsPhone, form.FieldEmergencyNumbers,
		},
		Required: []string{
			form.FieldName, form.FieldActiveMembers,
			form.FieldCommanderName, form.FieldCommanderPhone,
		},
	},
	{ID: "epp", Name: "Equipamiento", Fields: []string{"tipo", "talla", "cantidad", "observaciones"}},
	{ID: "tools", Name: "Herramientas", Fields: []string{"item", "cantidad", "observaciones"}},
	{ID: "logistics", Name: "Logística", Fields: []string{"item", "costo", "observaciones"}},
	{ID: "food", Name: "Alimentación", Fields: []string{"item", "cantidad", "observaciones"}},
	{ID: "camp", Name: "Campo", Fields: []string{"item", "cantidad", "observaciones"}},
	{ID: "hygiene", Name: "Limpieza", Fields: []string{"item", "cantidad", "observaciones"}},
	{ID: "meds", Name: "Medicamentos", Fields: []string{"item", "cantidad", "observaciones"}},
	{ID: "animals", Name: "Rescate", Fields: []string{"item", "cantidad", "observaciones"}},
}

// Sections returns the full section sequence in navigation order. The
// returned slice is shared; callers must not mutate it.
func Sections() []Section {
	return sections
}

// SectionByID looks a section up by id.
func SectionByID(id string) (Section, bool) {
	for _, s := range sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

func sectionIndex(id string) int {
	for i, s := range sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}
