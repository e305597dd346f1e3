package aba

import "errors"

// The encoder distinguishes two failure classes: invariant violations that
// abort a conversion outright, and per-row input faults carrying enough
// context to name the offending value. Incomplete rows are neither; they
// are skipped without error.
var (
	// ErrRecordLength reports an assembled record whose length deviates
	// from RecordLength.
	ErrRecordLength = errors.New("record length must be exactly 120 characters")

	// ErrFieldOverflow reports a value that does not fit its fixed-width
	// field box.
	ErrFieldOverflow = errors.New("value does not fit fixed-width field")

	// ErrInvalidAmount reports an amount that is present but unusable:
	// not a number, or negative.
	ErrInvalidAmount = errors.New("invalid payment amount")
)
