package report

import (
	"fmt"
	"strings"

	"brigada/internal/catalog"
	"brigada/internal/form"
	"brigada/internal/log"
)

// PlaceholderText is emitted instead of a table when a category has no
// reportable rows.
const PlaceholderText = "Sin requerimientos en esta sección."

const unspecified = "No especificado"

// Synthesize emits the full document stream: the info block first, then
// one table per category in registry order. Catalog rows are filtered on
// reportable content; custom rows are always included.
func Synthesize(f *form.Form) []Instruction {
	out := []Instruction{
		Heading{Text: "1. INFORMACIÓN DE LA BRIGADA"},
		KeyValue{Key: "Nombre", Value: f.Info.Name},
		KeyValue{Key: "Bomberos activos", Value: fmt.Sprintf("%d", f.Info.ActiveMembers)},
		KeyValue{Key: "Comandante", Value: f.Info.CommanderName},
		KeyValue{Key: "Celular comandante", Value: f.Info.CommanderPhone},
		KeyValue{Key: "Encargado de logística", Value: orUnspecified(f.Info.LogisticsOfficer)},
		KeyValue{Key: "Celular logística", Value: orUnspecified(f.Info.LogisticsPhone)},
		KeyValue{Key: "Números de emergencia", Value: orUnspecified(f.Info.EmergencyNumbers)},
	}

	for i, l := range f.Ledgers() {
		title := fmt.Sprintf("%d. %s", i+2, l.Category.Title)
		out = append(out, Heading{Text: title, FreshBlock: true})

		rows := tableRows(l)
		if len(rows) == 0 {
			out = append(out, Note{Text: PlaceholderText})
			continue
		}
		out = append(out, Table{Headers: headersFor(l.Category), Rows: rows})
	}

	log.Debug(log.CatReport, "Synthesized document", "instructions", len(out))
	return out
}

// headersFor returns the column list for a category's table.
func headersFor(c catalog.Category) []string {
	switch c.Shape {
	case catalog.ShapeSize:
		headers := []string{"Artículo"}
		for _, s := range c.Sizes {
			headers = append(headers, strings.ToUpper(s))
		}
		return append(headers, "Observaciones")
	case catalog.ShapeCost:
		return []string{"Item", "Costo", "Observaciones"}
	default:
		return []string{"Item", "Cantidad", "Observaciones"}
	}
}

// tableRows builds the filtered catalog rows followed by all custom rows.
func tableRows(l *form.Ledger) [][]string {
	headers := headersFor(l.Category)
	var rows [][]string

	for _, name := range l.Category.Items {
		o := l.Item(name)
		if !o.Reportable() {
			continue
		}
		rows = append(rows, row(headers, name, o))
	}

	// Custom entries are reportable by the user's explicit choice.
	for _, ci := range l.Custom() {
		rows = append(rows, row(headers, ci.Label+" (Otro)", ci.Observation))
	}

	return rows
}

// row resolves each column case-insensitively against the record's field
// names; the item/artículo column always resolves to the given label.
func row(headers []string, label string, o form.Observation) []string {
	cells := make([]string, len(headers))
	for i, h := range headers {
		lower := strings.ToLower(h)
		if lower == "item" || lower == "artículo" {
			cells[i] = label
			continue
		}
		if v, ok := o.Field(lower); ok {
			cells[i] = v
		}
	}
	return cells
}

func orUnspecified(s string) string {
	if s == "" {
		return unspecified
	}
	return s
}
