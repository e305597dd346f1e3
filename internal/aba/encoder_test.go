package aba_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/wirasentana/aba-export-service/internal/aba"
	"github.com/wirasentana/aba-export-service/internal/domain"
)

func testOriginator() domain.Originator {
	return domain.Originator{
		Name:        "ACME FASTENERS PTY LTD",
		UserID:      301500,
		Bank:        "CBA",
		Description: "PAYROLL",
		Remitter:    "ACME FASTENERS",
	}
}

func parseDate(t *testing.T, dateStr string) time.Time {
	result, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date string '%s': %v", dateStr, err)
	}

	return result
}

func TestEncoder_Header(t *testing.T) {
	enc := aba.NewEncoder(testOriginator(), parseDate(t, "2026-08-26"))

	rec, err := enc.Header()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if rec.Type() != aba.Descriptive {
		t.Errorf("Expected a descriptive record, got %s", rec.Type())
	}

	line := rec.String()
	if len(line) != aba.RecordLength {
		t.Fatalf("Expected record length %d, got %d", aba.RecordLength, len(line))
	}

	// Byte positions per the direct-entry layout.
	if line[0:1] != "0" {
		t.Errorf("Expected record type '0', got %q", line[0:1])
	}
	if line[1:18] != strings.Repeat(" ", 17) {
		t.Errorf("Expected positions 2-18 blank, got %q", line[1:18])
	}
	if line[18:20] != "01" {
		t.Errorf("Expected reel sequence '01', got %q", line[18:20])
	}
	if line[20:23] != "CBA" {
		t.Errorf("Expected institution 'CBA', got %q", line[20:23])
	}
	if line[23:30] != strings.Repeat(" ", 7) {
		t.Errorf("Expected positions 24-30 blank, got %q", line[23:30])
	}
	if line[30:56] != "ACME FASTENERS PTY LTD    " {
		t.Errorf("Unexpected sender name field %q", line[30:56])
	}
	if line[56:62] != "301500" {
		t.Errorf("Expected user id '301500', got %q", line[56:62])
	}
	if line[62:74] != "PAYROLL     " {
		t.Errorf("Unexpected description field %q", line[62:74])
	}
	if line[74:80] != "260826" {
		t.Errorf("Expected processing date '260826', got %q", line[74:80])
	}
	if line[80:120] != strings.Repeat(" ", 40) {
		t.Errorf("Expected positions 81-120 blank, got %q", line[80:120])
	}
}

func TestEncoder_Header_UserIDOverflow(t *testing.T) {
	originator := testOriginator()
	originator.UserID = 1000000 // seven digits, bypassing profile validation

	enc := aba.NewEncoder(originator, parseDate(t, "2026-08-26"))

	_, err := enc.Header()
	if err == nil {
		t.Fatal("Expected an oversized user id to fail")
	}
	if !errors.Is(err, aba.ErrFieldOverflow) {
		t.Errorf("Expected ErrFieldOverflow, got %v", err)
	}
}

func TestEncoder_Detail(t *testing.T) {
	enc := aba.NewEncoder(testOriginator(), parseDate(t, "2026-08-26"))

	rec, cents, ok, err := enc.Detail(domain.PaymentInstruction{
		BSB:       "062-000",
		Account:   "12345678",
		Name:      "J CITIZEN",
		Reference: "SALARY AUG",
		Amount:    "$1,234.56",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("Expected the instruction to be accepted")
	}
	if cents != 123456 {
		t.Errorf("Expected 123456 cents, got %d", cents)
	}

	if rec.Type() != aba.Detail {
		t.Errorf("Expected a detail record, got %s", rec.Type())
	}

	line := rec.String()
	if len(line) != aba.RecordLength {
		t.Fatalf("Expected record length %d, got %d", aba.RecordLength, len(line))
	}

	if line[0:1] != "1" {
		t.Errorf("Expected record type '1', got %q", line[0:1])
	}
	if line[1:8] != "062-000" {
		t.Errorf("Expected BSB '062-000', got %q", line[1:8])
	}
	if line[8:17] != " 12345678" {
		t.Errorf("Expected right-justified account ' 12345678', got %q", line[8:17])
	}
	if line[17:18] != " " {
		t.Errorf("Expected blank indicator, got %q", line[17:18])
	}
	if line[18:20] != "53" {
		t.Errorf("Expected transaction code '53', got %q", line[18:20])
	}
	if line[20:30] != "0000123456" {
		t.Errorf("Expected amount field '0000123456', got %q", line[20:30])
	}
	if line[30:62] != "J CITIZEN"+strings.Repeat(" ", 23) {
		t.Errorf("Unexpected payee title field %q", line[30:62])
	}
	if line[62:80] != "SALARY AUG"+strings.Repeat(" ", 8) {
		t.Errorf("Unexpected lodgement reference field %q", line[62:80])
	}
	if line[80:87] != "062-000" {
		t.Errorf("Expected trace BSB '062-000', got %q", line[80:87])
	}
	if line[87:96] != " 12345678" {
		t.Errorf("Expected trace account ' 12345678', got %q", line[87:96])
	}
	if line[96:112] != "ACME FASTENERS  " {
		t.Errorf("Unexpected remitter field %q", line[96:112])
	}
	if line[112:120] != "00000000" {
		t.Errorf("Expected zero withholding tax, got %q", line[112:120])
	}
}

func TestEncoder_Detail_SkipsIncompleteRows(t *testing.T) {
	enc := aba.NewEncoder(testOriginator(), parseDate(t, "2026-08-26"))

	complete := domain.PaymentInstruction{
		BSB:       "062-000",
		Account:   "12345678",
		Name:      "J CITIZEN",
		Reference: "SALARY AUG",
		Amount:    "$1,234.56",
	}

	// Blanking any one required field must skip the row without error.
	blankings := []func(p *domain.PaymentInstruction){
		func(p *domain.PaymentInstruction) { p.BSB = "" },
		func(p *domain.PaymentInstruction) { p.Account = "   " },
		func(p *domain.PaymentInstruction) { p.Name = "" },
		func(p *domain.PaymentInstruction) { p.Reference = "\t" },
		func(p *domain.PaymentInstruction) { p.Amount = "" },
	}

	for i, blank := range blankings {
		row := complete
		blank(&row)

		_, cents, ok, err := enc.Detail(row)
		if err != nil {
			t.Errorf("Case %d: expected a silent skip, got error %v", i, err)
		}
		if ok {
			t.Errorf("Case %d: expected the incomplete row to be skipped", i)
		}
		if cents != 0 {
			t.Errorf("Case %d: expected a skipped row to contribute no cents, got %d", i, cents)
		}
	}

	// The fully blank trailing row the tabular sources produce.
	_, _, ok, err := enc.Detail(domain.PaymentInstruction{})
	if err != nil {
		t.Errorf("Expected a blank row to skip silently, got error %v", err)
	}
	if ok {
		t.Error("Expected a blank row to be skipped")
	}
}

func TestEncoder_Detail_MalformedAmountIsAnError(t *testing.T) {
	enc := aba.NewEncoder(testOriginator(), parseDate(t, "2026-08-26"))

	row := domain.PaymentInstruction{
		BSB:       "062-000",
		Account:   "12345678",
		Name:      "J CITIZEN",
		Reference: "SALARY AUG",
		Amount:    "twelve dollars",
	}

	_, _, ok, err := enc.Detail(row)
	if err == nil {
		t.Fatal("Expected a malformed amount on a complete row to fail, not skip")
	}
	if ok {
		t.Error("Expected ok to be false on error")
	}
	if !errors.Is(err, aba.ErrInvalidAmount) {
		t.Errorf("Expected ErrInvalidAmount, got %v", err)
	}
}

func TestEncoder_Detail_AccountOverflow(t *testing.T) {
	enc := aba.NewEncoder(testOriginator(), parseDate(t, "2026-08-26"))

	row := domain.PaymentInstruction{
		BSB:       "062-000",
		Account:   "1234567890", // ten characters in a nine-character field
		Name:      "J CITIZEN",
		Reference: "SALARY AUG",
		Amount:    "$10.00",
	}

	_, _, _, err := enc.Detail(row)
	if err == nil {
		t.Fatal("Expected an oversized account number to fail")
	}
	if !errors.Is(err, aba.ErrFieldOverflow) {
		t.Errorf("Expected ErrFieldOverflow, got %v", err)
	}
}

func TestEncoder_Detail_TruncatesLongFreeText(t *testing.T) {
	enc := aba.NewEncoder(testOriginator(), parseDate(t, "2026-08-26"))

	rec, _, ok, err := enc.Detail(domain.PaymentInstruction{
		BSB:       "062-000",
		Account:   "12345678",
		Name:      "THE EXTREMELY LONG COMPANY NAME THAT KEEPS GOING PTY LTD",
		Reference: "AN OVERLONG LODGEMENT REFERENCE",
		Amount:    "$10.00",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("Expected the instruction to be accepted")
	}

	line := rec.String()
	if len(line) != aba.RecordLength {
		t.Fatalf("Expected record length %d, got %d", aba.RecordLength, len(line))
	}
	if line[30:62] != "THE EXTREMELY LONG COMPANY NAME " {
		t.Errorf("Expected payee title truncated to 32 characters, got %q", line[30:62])
	}
	if line[62:80] != "AN OVERLONG LODGEM" {
		t.Errorf("Expected reference truncated to 18 characters, got %q", line[62:80])
	}
}

func TestEncoder_Detail_FoldsAccentedText(t *testing.T) {
	enc := aba.NewEncoder(testOriginator(), parseDate(t, "2026-08-26"))

	rec, _, ok, err := enc.Detail(domain.PaymentInstruction{
		BSB:       "062-000",
		Account:   "12345678",
		Name:      "José Müller",
		Reference: "FACTURE Nº 12",
		Amount:    "$10.00",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("Expected the instruction to be accepted")
	}

	line := rec.String()
	if line[30:62] != "Jose Muller"+strings.Repeat(" ", 21) {
		t.Errorf("Expected diacritics folded to ASCII, got %q", line[30:62])
	}
	if !strings.HasPrefix(line[62:80], "FACTURE N") {
		t.Errorf("Expected the reference to survive folding, got %q", line[62:80])
	}
	if len(line) != aba.RecordLength {
		t.Errorf("Expected record length %d after folding, got %d", aba.RecordLength, len(line))
	}
}

func TestEncoder_Trailer(t *testing.T) {
	enc := aba.NewEncoder(testOriginator(), parseDate(t, "2026-08-26"))

	rec, err := enc.Trailer(3, 540075)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if rec.Type() != aba.FileTotal {
		t.Errorf("Expected a file total record, got %s", rec.Type())
	}

	line := rec.String()
	if len(line) != aba.RecordLength {
		t.Fatalf("Expected record length %d, got %d", aba.RecordLength, len(line))
	}

	if line[0:1] != "7" {
		t.Errorf("Expected record type '7', got %q", line[0:1])
	}
	if line[1:8] != "999-999" {
		t.Errorf("Expected BSB filler '999-999', got %q", line[1:8])
	}
	if line[8:20] != strings.Repeat(" ", 12) {
		t.Errorf("Expected positions 9-20 blank, got %q", line[8:20])
	}
	if line[20:30] != "0000540075" {
		t.Errorf("Expected net total '0000540075', got %q", line[20:30])
	}
	if line[30:40] != "0000540075" {
		t.Errorf("Expected credit total '0000540075', got %q", line[30:40])
	}
	if line[40:50] != "0000000000" {
		t.Errorf("Expected zero debit total, got %q", line[40:50])
	}
	if line[50:74] != strings.Repeat(" ", 24) {
		t.Errorf("Expected positions 51-74 blank, got %q", line[50:74])
	}
	if line[74:80] != "000003" {
		t.Errorf("Expected record count '000003', got %q", line[74:80])
	}
	if line[80:120] != strings.Repeat(" ", 40) {
		t.Errorf("Expected positions 81-120 blank, got %q", line[80:120])
	}

	// Net and credit totals are always the same figure in a credit-only file.
	if line[20:30] != line[30:40] {
		t.Errorf("Expected net total %q to equal credit total %q", line[20:30], line[30:40])
	}
}

func TestBatch_Accumulates(t *testing.T) {
	enc := aba.NewEncoder(testOriginator(), parseDate(t, "2026-08-26"))

	var batch aba.Batch
	if batch.Count() != 0 || batch.TotalCents() != 0 {
		t.Fatalf("Expected a fresh batch to be empty, got count %d total %d", batch.Count(), batch.TotalCents())
	}

	amounts := []string{"$12.00", "$0.50", "$1,100.25"}
	for _, amount := range amounts {
		rec, cents, ok, err := enc.Detail(domain.PaymentInstruction{
			BSB:       "062-000",
			Account:   "12345678",
			Name:      "J CITIZEN",
			Reference: "SALARY",
			Amount:    amount,
		})
		if err != nil || !ok {
			t.Fatalf("Unexpected rejection for %q: ok=%v err=%v", amount, ok, err)
		}
		batch.Add(rec, cents)
	}

	if batch.Count() != 3 {
		t.Errorf("Expected 3 records in the batch, got %d", batch.Count())
	}
	if batch.TotalCents() != 1200+50+110025 {
		t.Errorf("Expected total %d cents, got %d", 1200+50+110025, batch.TotalCents())
	}
}

func TestEncoder_Assemble(t *testing.T) {
	originator := domain.Originator{
		Name:        "ACME FASTENERS PTY LTD",
		UserID:      301500,
		Bank:        "CBA",
		Description: "PAYROLL",
		Remitter:    "ACME FASTENERS",
	}
	enc := aba.NewEncoder(originator, parseDate(t, "2026-08-26"))

	rows := []domain.PaymentInstruction{
		{BSB: "000-000", Reference: "TEST", Name: "R SMITH", Account: "157108231", Amount: "$12.00"},
		{BSB: "", Reference: "", Name: "", Account: "", Amount: ""},
	}

	var batch aba.Batch
	for _, row := range rows {
		rec, cents, ok, err := enc.Detail(row)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if ok {
			batch.Add(rec, cents)
		}
	}

	doc, err := enc.Assemble(&batch)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	out := doc.String()
	if !strings.HasSuffix(out, "\n") {
		t.Error("Expected the document to end with a newline")
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines (header, one detail, trailer), got %d", len(lines))
	}

	for i, line := range lines {
		if len(line) != aba.RecordLength {
			t.Errorf("Line %d: expected length %d, got %d", i, aba.RecordLength, len(line))
		}
	}

	if lines[0][0:1] != "0" {
		t.Errorf("Expected the first line to be the descriptive record, got %q", lines[0][0:1])
	}
	if lines[1][0:1] != "1" {
		t.Errorf("Expected the second line to be a detail record, got %q", lines[1][0:1])
	}
	if lines[1][20:30] != "0000001200" {
		t.Errorf("Expected detail amount field '0000001200', got %q", lines[1][20:30])
	}
	if lines[2][0:1] != "7" {
		t.Errorf("Expected the last line to be the file total record, got %q", lines[2][0:1])
	}
	if lines[2][20:30] != "0000001200" {
		t.Errorf("Expected net total '0000001200', got %q", lines[2][20:30])
	}
	if lines[2][30:40] != "0000001200" {
		t.Errorf("Expected credit total '0000001200', got %q", lines[2][30:40])
	}
	if lines[2][74:80] != "000001" {
		t.Errorf("Expected record count '000001' counting accepted rows only, got %q", lines[2][74:80])
	}

	// The same input and date must reproduce the document byte for byte.
	var second aba.Batch
	for _, row := range rows {
		rec, cents, ok, err := enc.Detail(row)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if ok {
			second.Add(rec, cents)
		}
	}

	doc2, err := enc.Assemble(&second)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if doc2.String() != out {
		t.Error("Expected converting the same table twice to yield identical output")
	}
}

func TestEncoder_Assemble_EmptyBatch(t *testing.T) {
	enc := aba.NewEncoder(testOriginator(), parseDate(t, "2026-08-26"))

	doc, err := enc.Assemble(&aba.Batch{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(doc.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected header and trailer only, got %d lines", len(lines))
	}
	if lines[1][74:80] != "000000" {
		t.Errorf("Expected zero record count, got %q", lines[1][74:80])
	}
	if lines[1][20:30] != "0000000000" {
		t.Errorf("Expected zero net total, got %q", lines[1][20:30])
	}
	if lines[1][30:40] != "0000000000" {
		t.Errorf("Expected zero credit total, got %q", lines[1][30:40])
	}
}

func TestDocument_WriteTo(t *testing.T) {
	enc := aba.NewEncoder(testOriginator(), parseDate(t, "2026-08-26"))

	doc, err := enc.Assemble(&aba.Batch{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var buf strings.Builder
	n, err := doc.WriteTo(&buf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if buf.String() != doc.String() {
		t.Error("Expected WriteTo to stream the same bytes as String")
	}
	if n != int64(len(doc.String())) {
		t.Errorf("Expected %d bytes written, got %d", len(doc.String()), n)
	}
}
