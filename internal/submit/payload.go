// Package submit assembles the finished session state into the wire
// payload and hands it to a submission sink. Assembly is pure; transport
// is the sink's concern.
package submit

import (
	"encoding/json"
	"fmt"

	"brigada/internal/catalog"
	"brigada/internal/form"
)

// Payload is the assembled submission: the basic-info fields flattened at
// the top level, each category's catalog mapping nested under its key with
// the custom entries under "custom" (ropa custom entries live under the
// top-level "eppRopaCustom" key, matching the established wire shape).
type Payload map[string]any

// Assemble flattens the basic-info record and nests all category ledgers
// into one payload. Pure and deterministic: identical form state yields a
// structurally identical payload.
func Assemble(f *form.Form) Payload {
	p := Payload{
		form.FieldName:             f.Info.Name,
		form.FieldActiveMembers:    f.Info.ActiveMembers,
		form.FieldCommanderName:    f.Info.CommanderName,
		form.FieldCommanderPhone:   f.Info.CommanderPhone,
		form.FieldLogisticsOfficer: f.Info.LogisticsOfficer,
		form.FieldLogisticsPhone:   f.Info.LogisticsPhone,
		form.FieldEmergencyNumbers: f.Info.EmergencyNumbers,
	}

	p["botas"] = sizeRecordObject(f.Botas, true)
	p["guantes"] = sizeRecordObject(f.Guantes, false)

	for _, l := range f.Ledgers() {
		obj := map[string]any{}
		for _, name := range l.Category.Items {
			obj[name] = observationObject(l.Item(name))
		}

		custom := customArray(l)
		if l.Category.ID == "eppRopa" {
			// Ropa customs are a sibling key, not nested.
			p["eppRopaCustom"] = custom
		} else {
			obj["custom"] = custom
		}
		p[l.Category.ID] = obj
	}

	return p
}

// Marshal renders the payload as JSON. Map keys are emitted sorted, so the
// byte form is deterministic too.
func (p Payload) Marshal() ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshaling payload: %w", err)
	}
	return data, nil
}

func observationObject(o form.Observation) map[string]any {
	obj := map[string]any{"observaciones": o.Notes}
	switch o.Shape {
	case catalog.ShapeQuantity:
		obj["cantidad"] = o.Quantity
	case catalog.ShapeCost:
		obj["costo"] = o.Cost
	case catalog.ShapeSize:
		for size, n := range o.Sizes {
			obj[size] = n
		}
	}
	return obj
}

func customArray(l *form.Ledger) []any {
	items := l.Custom()
	out := make([]any, 0, len(items))
	for _, ci := range items {
		obj := observationObject(ci.Observation)
		obj["item"] = ci.Label
		out = append(out, obj)
	}
	return out
}

func sizeRecordObject(r form.SizeRecord, withNotes bool) map[string]any {
	obj := map[string]any{"otratalla": r.OtherLabel}
	for size, n := range r.Sizes {
		obj[size] = n
	}
	if withNotes {
		obj["observaciones"] = r.Notes
	}
	return obj
}
