package form

import (
	"strconv"
	"strings"

	"brigada/internal/catalog"
)

// Observation is the attribute record behind one catalog slot. The shape
// discriminator is fixed at construction from the owning category; only
// the fields belonging to that shape are ever populated.
type Observation struct {
	Shape    catalog.Shape
	Quantity int            // ShapeQuantity
	Cost     int            // ShapeCost
	Sizes    map[string]int // ShapeSize, keyed by the category's vocabulary
	Notes    string
}

func newObservation(c catalog.Category) Observation {
	o := Observation{Shape: c.Shape}
	if c.Shape == catalog.ShapeSize {
		o.Sizes = make(map[string]int, len(c.Sizes))
		for _, s := range c.Sizes {
			o.Sizes[s] = 0
		}
	}
	return o
}

// Reportable reports whether the record carries any content worth a report
// row: a numeric field above zero or a non-blank string field.
func (o Observation) Reportable() bool {
	if o.Quantity > 0 || o.Cost > 0 {
		return true
	}
	for _, n := range o.Sizes {
		if n > 0 {
			return true
		}
	}
	return strings.TrimSpace(o.Notes) != ""
}

// Field resolves a record field by its lowercase payload name ("cantidad",
// "costo", "observaciones" or a size key). Used by the report synthesizer's
// case-insensitive column matching. The second result is false when the
// record has no such field.
func (o Observation) Field(name string) (string, bool) {
	switch name {
	case "cantidad":
		if o.Shape == catalog.ShapeQuantity {
			return strconv.Itoa(o.Quantity), true
		}
	case "costo":
		if o.Shape == catalog.ShapeCost {
			return strconv.Itoa(o.Cost), true
		}
	case "observaciones":
		return o.Notes, true
	default:
		if n, ok := o.Sizes[name]; ok {
			return strconv.Itoa(n), true
		}
	}
	return "", false
}

// CustomItem is a user-appended slot outside the fixed catalog. It carries
// the same attribute shape as its category plus a free-text label.
type CustomItem struct {
	Label string
	Observation
}

// Ledger is the full item collection for one category: the fixed catalog
// mapping plus the user's custom entries. Catalog keys are exactly the
// registry's item set and never change at runtime; only custom items grow.
type Ledger struct {
	Category catalog.Category

	items  map[string]*Observation
	custom []CustomItem
}

// NewLedger builds the zeroed ledger for a category.
func NewLedger(c catalog.Category) *Ledger {
	l := &Ledger{
		Category: c,
		items:    make(map[string]*Observation, len(c.Items)),
	}
	for _, name := range c.Items {
		o := newObservation(c)
		l.items[name] = &o
	}
	return l
}

// Item returns the record for a catalog item. Unknown names return a zero
// record so that read paths never branch on existence.
func (l *Ledger) Item(name string) Observation {
	if o, ok := l.items[name]; ok {
		return *o
	}
	return newObservation(l.Category)
}

// SetQuantity updates a catalog item's unit count, clamped non-negative.
// Names outside the catalog are ignored; the catalog key set is fixed.
func (l *Ledger) SetQuantity(name string, value int) {
	if o, ok := l.items[name]; ok {
		o.Quantity = clampAmount(value)
	}
}

// SetCost updates a catalog item's estimated cost, clamped non-negative.
func (l *Ledger) SetCost(name string, value int) {
	if o, ok := l.items[name]; ok {
		o.Cost = clampAmount(value)
	}
}

// SetSizeQuantity updates one size bucket of a catalog item. Unknown size
// keys are ignored.
func (l *Ledger) SetSizeQuantity(name, size string, value int) {
	o, ok := l.items[name]
	if !ok || o.Sizes == nil {
		return
	}
	if _, ok := o.Sizes[size]; ok {
		o.Sizes[size] = clampAmount(value)
	}
}

// SetNotes replaces a catalog item's free-text notes. No validation.
func (l *Ledger) SetNotes(name, text string) {
	if o, ok := l.items[name]; ok {
		o.Notes = text
	}
}

// AddCustom appends a custom entry with the category's shape. Duplicate
// labels are allowed; the entry's position is returned.
func (l *Ledger) AddCustom(label string) int {
	l.custom = append(l.custom, CustomItem{
		Label:       label,
		Observation: newObservation(l.Category),
	})
	return len(l.custom) - 1
}

// Custom returns a copy of the custom entries in insertion order.
func (l *Ledger) Custom() []CustomItem {
	out := make([]CustomItem, len(l.custom))
	copy(out, l.custom)
	return out
}

// SetCustomQuantity updates a custom entry's unit count by position.
func (l *Ledger) SetCustomQuantity(index, value int) {
	if index >= 0 && index < len(l.custom) {
		l.custom[index].Quantity = clampAmount(value)
	}
}

// SetCustomCost updates a custom entry's cost by position.
func (l *Ledger) SetCustomCost(index, value int) {
	if index >= 0 && index < len(l.custom) {
		l.custom[index].Cost = clampAmount(value)
	}
}

// SetCustomSizeQuantity updates one size bucket of a custom entry.
func (l *Ledger) SetCustomSizeQuantity(index int, size string, value int) {
	if index < 0 || index >= len(l.custom) {
		return
	}
	if _, ok := l.custom[index].Sizes[size]; ok {
		l.custom[index].Sizes[size] = clampAmount(value)
	}
}

// SetCustomNotes replaces a custom entry's notes by position.
func (l *Ledger) SetCustomNotes(index int, text string) {
	if index >= 0 && index < len(l.custom) {
		l.custom[index].Notes = text
	}
}

// SetCustomLabel renames a custom entry by position.
func (l *Ledger) SetCustomLabel(index int, label string) {
	if index >= 0 && index < len(l.custom) {
		l.custom[index].Label = label
	}
}
