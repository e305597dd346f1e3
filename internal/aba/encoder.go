package aba

import (
	"fmt"
	"time"

	"github.com/wirasentana/aba-export-service/internal/domain"
)

// Fixed fillers from the direct-entry specification. This profile writes
// credit items only: one reel per file, transaction code 53 ("pay"), no
// balancing debit record and no withholding tax.
const (
	reelSequence   = "01"
	transactionPay = "53"
	trailerBSB     = "999-999"
	dateLayout     = "020106" // DDMMYY
)

// Encoder turns payment instructions into fixed-width records for one batch.
// It carries only the originator profile and the processing date; all
// accumulation lives in the caller's Batch.
type Encoder struct {
	originator domain.Originator
	date       time.Time
}

// NewEncoder creates an Encoder for the given sender profile and processing
// date. The profile is expected to have passed domain validation.
func NewEncoder(originator domain.Originator, processingDate time.Time) *Encoder {
	return &Encoder{originator: originator, date: processingDate}
}

// Header encodes the type-0 descriptive record that opens the file.
//
// Layout: '0', 17 blank, 2-digit reel sequence, 3-char institution
// abbreviation, 7 blank, 26-char sender name, 6-digit user id, 12-char
// description, DDMMYY processing date, 40 blank.
func (e *Encoder) Header() (Record, error) {
	bank, err := padField(e.originator.Bank, 3)
	if err != nil {
		return Record{}, fmt.Errorf("institution: %w", err)
	}

	userID, err := padNumber(int64(e.originator.UserID), 6)
	if err != nil {
		return Record{}, fmt.Errorf("user id: %w", err)
	}

	line := Descriptive.indicator() +
		spaces(17) +
		reelSequence +
		bank +
		spaces(7) +
		padText(e.originator.Name, 26) +
		userID +
		padText(e.originator.Description, 12) +
		e.date.Format(dateLayout) +
		spaces(40)

	return newRecord(Descriptive, line)
}

// Detail encodes one instruction as a type-1 record and reports the amount
// in cents it contributes to the batch. ok is false when the row is
// incomplete: such rows are skipped silently, never counted, and contribute
// nothing to the running total. An amount that is present but malformed is
// an error, not a skip: a typo must not silently drop a payment.
//
// Layout: '1', 7-char BSB, 9-char account, 1 blank indicator, transaction
// code 53, 10-digit amount in cents, 32-char payee title, 18-char lodgement
// reference, 7-char trace BSB, 9-char trace account, 16-char remitter,
// 8-digit withholding tax.
func (e *Encoder) Detail(in domain.PaymentInstruction) (Record, int64, bool, error) {
	if !in.Complete() {
		return Record{}, 0, false, nil
	}

	cents, err := ParseAmountCents(in.Amount)
	if err != nil {
		return Record{}, 0, false, err
	}

	amount, err := padNumber(cents, 10)
	if err != nil {
		return Record{}, 0, false, fmt.Errorf("amount: %w", err)
	}

	bsb, err := padField(in.BSB, 7)
	if err != nil {
		return Record{}, 0, false, fmt.Errorf("bsb: %w", err)
	}

	account, err := padField(in.Account, 9)
	if err != nil {
		return Record{}, 0, false, fmt.Errorf("account: %w", err)
	}

	// The trace fields mirror the destination BSB and account in this
	// profile rather than carrying an independent originating branch.
	line := Detail.indicator() +
		bsb +
		account +
		" " +
		transactionPay +
		amount +
		padText(in.Name, 32) +
		padText(in.Reference, 18) +
		bsb +
		account +
		padText(e.originator.RemitterName(), 16) +
		"00000000"

	rec, err := newRecord(Detail, line)
	if err != nil {
		return Record{}, 0, false, err
	}

	return rec, cents, true, nil
}

// Trailer encodes the type-7 file-total record from the batch's final
// count and total. With credits only, the net and credit totals are the
// same figure and the debit total is fixed at zero, so net = credit - debit
// reconciles by construction.
//
// Layout: '7', BSB filler "999-999", 12 blank, 10-digit net total, 10-digit
// credit total, 10-digit debit total, 24 blank, 6-digit detail record
// count, 40 blank.
func (e *Encoder) Trailer(count int, totalCents int64) (Record, error) {
	total, err := padNumber(totalCents, 10)
	if err != nil {
		return Record{}, fmt.Errorf("net total: %w", err)
	}

	records, err := padNumber(int64(count), 6)
	if err != nil {
		return Record{}, fmt.Errorf("record count: %w", err)
	}

	line := FileTotal.indicator() +
		trailerBSB +
		spaces(12) +
		total +
		total +
		"0000000000" +
		spaces(24) +
		records +
		spaces(40)

	return newRecord(FileTotal, line)
}

// Assemble builds the complete document: header, the batch's detail records
// in acceptance order, and a trailer reconciled from the batch totals. An
// empty batch is a valid document of header and trailer alone.
func (e *Encoder) Assemble(batch *Batch) (*Document, error) {
	header, err := e.Header()
	if err != nil {
		return nil, err
	}

	trailer, err := e.Trailer(batch.Count(), batch.TotalCents())
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, batch.Count()+2)
	records = append(records, header)
	records = append(records, batch.details...)
	records = append(records, trailer)

	return &Document{records: records}, nil
}
