package form

import "brigada/internal/catalog"

// SizeRecord is the standalone size-bucket record used by the boots and
// gloves slots. Alongside the fixed buckets it carries a free-text label
// for the "otra" bucket. Boots additionally carry notes; gloves do not,
// matching the submission payload.
type SizeRecord struct {
	Sizes      map[string]int
	OtherLabel string // free-text size paired with the "otra" bucket
	Notes      string
}

func newSizeRecord(vocab []string) SizeRecord {
	r := SizeRecord{Sizes: make(map[string]int, len(vocab))}
	for _, s := range vocab {
		r.Sizes[s] = 0
	}
	return r
}

// SetSize updates one bucket, clamped non-negative. Unknown keys are
// ignored.
func (r *SizeRecord) SetSize(size string, value int) {
	if _, ok := r.Sizes[size]; ok {
		r.Sizes[size] = clampAmount(value)
	}
}

// Form is the complete state of one intake session: the basic-info record,
// the ten category ledgers and the boots/gloves size records. All mutation
// goes through the category-scoped ledger operations.
type Form struct {
	Info    BasicInfo
	Botas   SizeRecord
	Guantes SizeRecord

	ledgers map[string]*Ledger
}

// New builds a zeroed session form from the catalog registry.
func New() *Form {
	f := &Form{
		Info:    NewBasicInfo(),
		Botas:   newSizeRecord(catalog.BootSizes),
		Guantes: newSizeRecord(catalog.GloveSizes),
		ledgers: make(map[string]*Ledger),
	}
	for _, c := range catalog.Categories() {
		f.ledgers[c.ID] = NewLedger(c)
	}
	return f
}

// Ledger returns the ledger for a category id, or nil for unknown ids.
func (f *Form) Ledger(id string) *Ledger {
	return f.ledgers[id]
}

// Ledgers returns all category ledgers in registry (report) order.
func (f *Form) Ledgers() []*Ledger {
	cats := catalog.Categories()
	out := make([]*Ledger, 0, len(cats))
	for _, c := range cats {
		out = append(out, f.ledgers[c.ID])
	}
	return out
}

// Reset discards all session state, returning the form to its initial
// value. Used when starting a new session after completion.
func (f *Form) Reset() {
	*f = *New()
}
