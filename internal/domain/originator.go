package domain

import (
	"fmt"
	"strings"
)

// Originator identifies the party sending the batch. The descriptive record
// and every detail record's remitter field draw from this fixed profile.
type Originator struct {
	Name        string // sender name for the descriptive record (26-char field)
	UserID      int    // direct-entry user identification number (6 digits)
	Bank        string // 3-char approved financial institution abbreviation, e.g. "CBA"
	Description string // batch description, e.g. "PAYROLL" (12-char field)
	Remitter    string // name shown on payee statements (16-char field); defaults to Name
}

// Validate checks the profile against direct-entry constraints.
func (o Originator) Validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return fmt.Errorf("originator name must not be blank")
	}

	if len(o.Bank) != 3 {
		return fmt.Errorf("institution abbreviation must be exactly 3 characters, got %q", o.Bank)
	}

	if o.UserID < 0 || o.UserID > 999999 {
		return fmt.Errorf("user id must fit 6 digits, got %d", o.UserID)
	}

	return nil
}

// RemitterName returns the remitter, falling back to the originator name
// when no separate remitter is configured.
func (o Originator) RemitterName() string {
	if strings.TrimSpace(o.Remitter) == "" {
		return o.Name
	}

	return o.Remitter
}
