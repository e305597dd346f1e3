package aba

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// maxAmountCents is the largest amount a 10-digit cents field can carry.
var maxAmountCents = decimal.NewFromInt(9999999999)

// ParseAmountCents converts a human currency string such as "$1,234.56"
// into an integer count of cents. A leading dollar sign and thousands
// separators are stripped before parsing. Fractions beyond a cent round
// half away from zero, the commercial rounding the source spreadsheets
// apply, and this is the only place decimal arithmetic happens: from here
// on every total is exact integer cents.
func ParseAmountCents(s string) (int64, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return 0, fmt.Errorf("amount %q: %w", s, ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("amount %q: %w", s, ErrInvalidAmount)
	}

	if d.IsNegative() {
		return 0, fmt.Errorf("amount %q is negative: %w", s, ErrInvalidAmount)
	}

	cents := d.Shift(2).Round(0)
	if cents.Cmp(maxAmountCents) > 0 {
		return 0, fmt.Errorf("amount %q exceeds the 10-digit cents field: %w", s, ErrFieldOverflow)
	}

	return cents.IntPart(), nil
}
