package submit

import (
	"encoding/json"
	"fmt"

	"brigada/internal/catalog"
	"brigada/internal/form"
)

// Parse reconstructs a session form from a marshaled payload. It is the
// inverse of Assemble and backs report regeneration from the archive.
func Parse(data []byte) (*form.Form, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing payload: %w", err)
	}

	f := form.New()
	f.Info = form.BasicInfo{
		Name:             str(raw[form.FieldName]),
		ActiveMembers:    num(raw[form.FieldActiveMembers]),
		CommanderName:    str(raw[form.FieldCommanderName]),
		CommanderPhone:   str(raw[form.FieldCommanderPhone]),
		LogisticsOfficer: str(raw[form.FieldLogisticsOfficer]),
		LogisticsPhone:   str(raw[form.FieldLogisticsPhone]),
		EmergencyNumbers: str(raw[form.FieldEmergencyNumbers]),
	}
	if f.Info.ActiveMembers < 1 {
		f.Info.ActiveMembers = 1
	}

	parseSizeRecord(&f.Botas, obj(raw["botas"]))
	parseSizeRecord(&f.Guantes, obj(raw["guantes"]))

	for _, l := range f.Ledgers() {
		catObj := obj(raw[l.Category.ID])
		for _, name := range l.Category.Items {
			parseObservation(l, name, obj(catObj[name]))
		}

		var customs []any
		if l.Category.ID == "eppRopa" {
			customs, _ = raw["eppRopaCustom"].([]any)
		} else {
			customs, _ = catObj["custom"].([]any)
		}
		for _, entry := range customs {
			parseCustom(l, obj(entry))
		}
	}

	return f, nil
}

func parseObservation(l *form.Ledger, name string, rec map[string]any) {
	if rec == nil {
		return
	}
	switch l.Category.Shape {
	case catalog.ShapeQuantity:
		l.SetQuantity(name, num(rec["cantidad"]))
	case catalog.ShapeCost:
		l.SetCost(name, num(rec["costo"]))
	case catalog.ShapeSize:
		for _, size := range l.Category.Sizes {
			l.SetSizeQuantity(name, size, num(rec[size]))
		}
	}
	l.SetNotes(name, str(rec["observaciones"]))
}

func parseCustom(l *form.Ledger, rec map[string]any) {
	if rec == nil {
		return
	}
	idx := l.AddCustom(str(rec["item"]))
	switch l.Category.Shape {
	case catalog.ShapeQuantity:
		l.SetCustomQuantity(idx, num(rec["cantidad"]))
	case catalog.ShapeCost:
		l.SetCustomCost(idx, num(rec["costo"]))
	case catalog.ShapeSize:
		for _, size := range l.Category.Sizes {
			l.SetCustomSizeQuantity(idx, size, num(rec[size]))
		}
	}
	l.SetCustomNotes(idx, str(rec["observaciones"]))
}

func parseSizeRecord(r *form.SizeRecord, rec map[string]any) {
	if rec == nil {
		return
	}
	for size := range r.Sizes {
		r.SetSize(size, num(rec[size]))
	}
	r.OtherLabel = str(rec["otratalla"])
	if notes, ok := rec["observaciones"]; ok {
		r.Notes = str(notes)
	}
}

func obj(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func num(v any) int {
	// JSON numbers decode as float64.
	if f, ok := v.(float64); ok {
		return int(f)
	}
	return 0
}
