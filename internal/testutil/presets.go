package testutil

import (
	"testing"

	"brigada/internal/form"
)

// ValidInfoValues returns field values that pass the info-section gate.
func ValidInfoValues() map[string]string {
	return map[string]string{
		form.FieldName:             "Brigada San Martin",
		form.FieldActiveMembers:    "12",
		form.FieldCommanderName:    "Maria Flores",
		form.FieldCommanderPhone:   "76543210",
		form.FieldLogisticsOfficer: "",
		form.FieldLogisticsPhone:   "",
		form.FieldEmergencyNumbers: "",
	}
}

// FilledForm builds a form with representative data in every shape:
// quantities, costs, sizes, notes, customs and the boots/gloves records.
func FilledForm(t *testing.T) *form.Form {
	t.Helper()
	return NewForm(t).
		WithInfo(
			Name("Brigada San Martin"),
			ActiveMembers(12),
			Commander("Maria Flores", "76543210"),
			Logistics("Juan Perez", "65432109"),
			Emergency("110, 119"),
		).
		WithQuantity("herramientas", "Batefuego", 4).
		WithNotes("herramientas", "Batefuego", "mango largo").
		WithQuantity("medicamentos", "Paracetamol", 10).
		WithCost("logisticaRepuestos", "Gasolina", 350).
		WithSize("eppRopa", "Camisa Forestal", "m", 6).
		WithCustom("herramientas", "Motosierra", 2).
		WithBootSize("41", 3).
		WithGloveSize("L", 5).
		Build()
}
