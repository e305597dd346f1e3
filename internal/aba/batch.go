package aba

// Batch accumulates the detail records accepted during one conversion,
// alongside their running total in cents. It is an explicit value owned by
// the caller and discarded with the conversion: nothing in this package
// holds state between calls.
type Batch struct {
	details    []Record
	totalCents int64
}

// Add appends an accepted detail record and its contribution to the total.
// The cents passed must be the cents encoded in the record's amount field;
// the encoder returns both from the same parse so they cannot diverge.
func (b *Batch) Add(rec Record, cents int64) {
	b.details = append(b.details, rec)
	b.totalCents += cents
}

// Count returns how many detail records the batch holds.
func (b *Batch) Count() int {
	return len(b.details)
}

// TotalCents returns the running sum of accepted amounts.
func (b *Batch) TotalCents() int64 {
	return b.totalCents
}
