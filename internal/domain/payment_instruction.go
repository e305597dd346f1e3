package domain

import "strings"

// Column names the input table must supply, matched case-insensitively.
const (
	ColumnBSB       = "BSB"
	ColumnAccount   = "Account"
	ColumnName      = "Name"
	ColumnReference = "Reference"
	ColumnAmount    = "Amount"
)

// RequiredColumns lists every column an input table must carry before any
// encoding starts.
var RequiredColumns = []string{ColumnBSB, ColumnAccount, ColumnName, ColumnReference, ColumnAmount}

// PaymentInstruction represents one row of the input table: a single credit
// to be included in the direct-entry batch. Values are kept exactly as the
// source supplied them; normalization happens at encoding time.
type PaymentInstruction struct {
	BSB       string // bank-state-branch, expected NNN-NNN
	Account   string // account number, digits and hyphens
	Name      string // payee name
	Reference string // lodgement reference shown on the payee's statement
	Amount    string // decimal amount, possibly currency-formatted, e.g. "$1,234.56"
}

// Complete reports whether every required field carries a non-blank value.
// Incomplete instructions are skipped by the encoder rather than rejected:
// loosely formatted tabular sources routinely carry trailing blank rows.
func (p PaymentInstruction) Complete() bool {
	for _, v := range []string{p.BSB, p.Account, p.Name, p.Reference, p.Amount} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}

	return true
}
