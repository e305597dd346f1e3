package aba

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes accented characters and drops the combining marks,
// so "José Müller" survives as "Jose Muller" instead of losing the runes.
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// sanitizeText maps free text onto the printable-ASCII subset banks accept
// in direct-entry fields. Any rune still outside the printable range after
// folding becomes a space, and surrounding whitespace is trimmed.
func sanitizeText(s string) string {
	folded, _, err := transform.String(asciiFold, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))

	for _, r := range folded {
		if r < 0x20 || r > 0x7e {
			b.WriteByte(' ')
		} else {
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}

// padText left-justifies free text into a width-wide box, space filled.
// Text past the box is truncated: free-text fields lose characters rather
// than break the fixed-width contract.
func padText(s string, width int) string {
	s = sanitizeText(s)
	if len(s) > width {
		s = s[:width]
	}

	return s + strings.Repeat(" ", width-len(s))
}

// padField right-justifies an identity value (account number, BSB) into a
// width-wide box, space filled. Identity values must fit: overflow is an
// error, never a truncation.
func padField(s string, width int) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) > width {
		return "", fmt.Errorf("%q is %d characters, field takes %d: %w", s, len(s), width, ErrFieldOverflow)
	}

	return strings.Repeat(" ", width-len(s)) + s, nil
}

// padNumber right-justifies a non-negative integer into a width-wide box,
// zero filled.
func padNumber(n int64, width int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("negative value %d in unsigned %d-digit field: %w", n, width, ErrFieldOverflow)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) > width {
		return "", fmt.Errorf("%d is %d digits, field takes %d: %w", n, len(s), width, ErrFieldOverflow)
	}

	return strings.Repeat("0", width-len(s)) + s, nil
}

// spaces returns a blank filler of the given width.
func spaces(width int) string {
	return strings.Repeat(" ", width)
}
