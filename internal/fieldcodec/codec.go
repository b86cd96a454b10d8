// =============================================================================
// Hotel Cache Toolkit - Field Codecs
// =============================================================================
//
// This module provides the primitive decoders shared by every record decoder.
// The wholesaler's cache format encodes all values as bare strings inside
// pipe-delimited rows:
//   - Booleans are the literals "Y" / "N" (case varies between suppliers)
//   - Dates are exactly 8 digits, YYYYMMDD
//   - Amounts use either "." or "," as the decimal separator
//   - Optional fields are simply empty
//
// DESIGN RULE:
//   No codec in this package ever returns an error. A field that cannot be
//   decoded resolves to its type's default (0, false) when the schema marks it
//   mandatory, or to nil when the schema marks it optional. Record decoders
//   pick the mandatory or optional variant per field; nothing downstream has
//   to handle a per-field failure.
//
// =============================================================================

package fieldcodec

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseBool decodes a Y/N field. It returns true iff the trimmed,
// upper-cased value is exactly "Y"; everything else, including an empty
// field, is false.
func ParseBool(s string) bool {
	return strings.ToUpper(strings.TrimSpace(s)) == "Y"
}

// ParseInt decodes a mandatory integer field (counts, release days, field
// order). Blank or unparseable input decodes to 0.
func ParseInt(s string) int {
	n, ok := parseInt(strings.TrimSpace(s))
	if !ok {
		return 0
	}
	return n
}

// ParseOptionalInt decodes an optional integer field. It returns nil for
// blank or unparseable input, distinguishing "not supplied" from an explicit
// zero. Pricing rules downstream rely on that distinction (e.g. a missing
// maximum age means "no limit", not "limit 0").
func ParseOptionalInt(s string) *int {
	n, ok := parseInt(strings.TrimSpace(s))
	if !ok {
		return nil
	}
	return &n
}

// ParseOptionalString decodes an optional text field. Blank and
// whitespace-only input decode to nil; anything else is returned trimmed.
func ParseOptionalString(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}

// ParseDate decodes an 8-digit YYYYMMDD field into a UTC date. It returns
// nil unless the input is exactly 8 digits AND denotes a real calendar date.
//
// time.Date silently normalizes out-of-range components (February 30 becomes
// March 2), so the decoded date is compared back against the raw components;
// any mismatch means the wire value was not a real date and nil is returned.
func ParseDate(s string) *time.Time {
	t := strings.TrimSpace(s)
	if len(t) != 8 {
		return nil
	}
	for _, r := range t {
		if r < '0' || r > '9' {
			return nil
		}
	}

	year := atoi(t[0:4])
	month := atoi(t[4:6])
	day := atoi(t[6:8])

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return nil
	}

	return &d
}

// FormatDate renders a date back into the 8-digit wire form. It is the
// inverse of ParseDate for every date ParseDate accepts.
func FormatDate(t time.Time) string {
	return t.Format("20060102")
}

// ParseAmount decodes a mandatory monetary or percentage field. The format
// allows both "." and "," as the decimal separator, depending on which
// back-office exported the contract. Blank or unparseable input decodes to
// decimal zero.
func ParseAmount(s string) decimal.Decimal {
	d, ok := parseAmount(s)
	if !ok {
		return decimal.Zero
	}
	return d
}

// ParseOptionalAmount decodes an optional monetary field, returning nil for
// blank or unparseable input. A nil amount and a zero amount are different
// things to the supplement/discount rules.
func ParseOptionalAmount(s string) *decimal.Decimal {
	d, ok := parseAmount(s)
	if !ok {
		return nil
	}
	return &d
}

// parseAmount normalizes the decimal separator and parses the value.
func parseAmount(s string) (decimal.Decimal, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return decimal.Zero, false
	}
	t = strings.Replace(t, ",", ".", 1)
	d, err := decimal.NewFromString(t)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func parseInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// atoi is for input already validated as all digits.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
