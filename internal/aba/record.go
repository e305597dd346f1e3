// Package aba encodes payment instructions into the fixed-width CEMTEX
// direct-entry ("ABA") file format accepted by Australian financial
// institutions. Every line is exactly 120 characters and every byte position
// is contractual; the package enforces that invariant at record construction.
package aba

import (
	"fmt"
	"io"
	"strings"
)

// RecordLength is the exact width of every line in a direct-entry file.
const RecordLength = 120

// RecordType identifies which of the three fixed-width layouts a record uses.
type RecordType int

const (
	// Descriptive is the type-0 header record opening the file.
	Descriptive RecordType = iota
	// Detail is a type-1 transaction record.
	Detail
	// FileTotal is the type-7 trailer record closing the file.
	FileTotal
)

// String returns a human-readable name for the record type.
func (t RecordType) String() string {
	switch t {
	case Descriptive:
		return "descriptive"
	case Detail:
		return "detail"
	case FileTotal:
		return "file total"
	default:
		return "unknown"
	}
}

// indicator returns the record-type character occupying position 1 of a line.
func (t RecordType) indicator() string {
	switch t {
	case Descriptive:
		return "0"
	case Detail:
		return "1"
	case FileTotal:
		return "7"
	default:
		return " "
	}
}

// Record is a single encoded line, immutable and always exactly RecordLength
// characters regardless of type.
type Record struct {
	typ  RecordType
	line string
}

// newRecord wraps an assembled line, enforcing the fixed-width invariant.
// A wrong length here is an internal fault rather than bad input: once the
// fixed-width contract is broken there is no safe partial output.
func newRecord(typ RecordType, line string) (Record, error) {
	if len(line) != RecordLength {
		return Record{}, fmt.Errorf("%s record is %d characters: %w", typ, len(line), ErrRecordLength)
	}

	return Record{typ: typ, line: line}, nil
}

// Type returns which layout the record uses.
func (r Record) Type() RecordType { return r.typ }

// String returns the 120-character line without a terminator.
func (r Record) String() string { return r.line }

// Document is an assembled direct-entry file: one descriptive record, the
// accepted detail records in input order, and one file-total record.
type Document struct {
	records []Record
}

// Records returns the document's lines in file order.
func (d *Document) Records() []Record {
	return append([]Record(nil), d.records...)
}

// String renders the document as receiving institutions ingest it: records
// joined by single newlines, with one trailing newline closing the file.
func (d *Document) String() string {
	var b strings.Builder
	b.Grow(len(d.records) * (RecordLength + 1))

	for _, r := range d.records {
		b.WriteString(r.line)
		b.WriteByte('\n')
	}

	return b.String()
}

// WriteTo streams the rendered document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}
