// Package testutil provides builders for session forms in tests.
package testutil

import (
	"testing"

	"brigada/internal/form"
)

// FormBuilder accumulates form state and applies it in order.
type FormBuilder struct {
	t    *testing.T
	form *form.Form
}

// NewForm creates a builder over a fresh session form.
func NewForm(t *testing.T) *FormBuilder {
	t.Helper()
	return &FormBuilder{t: t, form: form.New()}
}

// WithInfo applies basic-info options.
func (b *FormBuilder) WithInfo(opts ...InfoOption) *FormBuilder {
	for _, opt := range opts {
		opt(&b.form.Info)
	}
	return b
}

// WithQuantity sets a catalog item's quantity.
func (b *FormBuilder) WithQuantity(category, item string, qty int) *FormBuilder {
	b.ledger(category).SetQuantity(item, qty)
	return b
}

// WithCost sets a catalog item's cost.
func (b *FormBuilder) WithCost(category, item string, cost int) *FormBuilder {
	b.ledger(category).SetCost(item, cost)
	return b
}

// WithSize sets one size bucket of a catalog item.
func (b *FormBuilder) WithSize(category, item, size string, qty int) *FormBuilder {
	b.ledger(category).SetSizeQuantity(item, size, qty)
	return b
}

// WithNotes sets a catalog item's notes.
func (b *FormBuilder) WithNotes(category, item, notes string) *FormBuilder {
	b.ledger(category).SetNotes(item, notes)
	return b
}

// WithCustom appends a custom item with a quantity.
func (b *FormBuilder) WithCustom(category, label string, qty int) *FormBuilder {
	ledger := b.ledger(category)
	index := ledger.AddCustom(label)
	ledger.SetCustomQuantity(index, qty)
	return b
}

// WithBootSize sets one boots size bucket.
func (b *FormBuilder) WithBootSize(size string, qty int) *FormBuilder {
	b.form.Botas.SetSize(size, qty)
	return b
}

// WithGloveSize sets one gloves size bucket.
func (b *FormBuilder) WithGloveSize(size string, qty int) *FormBuilder {
	b.form.Guantes.SetSize(size, qty)
	return b
}

// Build returns the assembled form.
func (b *FormBuilder) Build() *form.Form {
	return b.form
}

func (b *FormBuilder) ledger(category string) *form.Ledger {
	b.t.Helper()
	ledger := b.form.Ledger(category)
	if ledger == nil {
		b.t.Fatalf("unknown category %q", category)
	}
	return ledger
}
