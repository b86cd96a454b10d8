// =============================================================================
// Hotel Cache Toolkit - Certification Validator
// =============================================================================
//
// The wholesaler's certification program bounds what a single API call may
// ask for: at most 2000 hotel codes per availability search, at most 10
// distinct rate keys per re-price call, and RECHECK rates must be re-priced
// before booking. The search/booking HTTP handlers run these checks before
// issuing a live call.
//
// Every check is a pure function returning a structured result, never an
// error: callers surface Message to an end user or a log line, and a failed
// check must not carry a stack trace.
//
// =============================================================================

package certification

import (
	"fmt"
	"strings"
)

// Published certification program limits. A Validator built from config may
// lower them for self-imposed stricter budgets, never raise them.
const (
	// MaxHotelsPerSearch bounds the hotel-code list of one availability call.
	MaxHotelsPerSearch = 2000

	// MaxRatesPerCall bounds the distinct rate keys of one re-price call.
	MaxRatesPerCall = 10
)

// RateTypeRecheck marks a rate that must be re-priced before booking. Any
// other rate type, including absent, books directly.
const RateTypeRecheck = "RECHECK"

// Check is the result of one certification rule. Never persisted; Message
// is only set when Valid is false.
type Check struct {
	Valid   bool
	Message string

	// Count is the effective element count the rule evaluated (after blank
	// filtering and, for rate keys, de-duplication).
	Count int
}

// Validator runs the certification rules against a pair of limits.
type Validator struct {
	maxHotels int
	maxRates  int
}

// NewValidator returns a validator at the published program limits.
func NewValidator() *Validator {
	return &Validator{maxHotels: MaxHotelsPerSearch, maxRates: MaxRatesPerCall}
}

// NewValidatorWithLimits returns a validator with lowered limits. Values
// outside (0, published] fall back to the published limit.
func NewValidatorWithLimits(maxHotels, maxRates int) *Validator {
	v := NewValidator()
	if maxHotels > 0 && maxHotels < MaxHotelsPerSearch {
		v.maxHotels = maxHotels
	}
	if maxRates > 0 && maxRates < MaxRatesPerCall {
		v.maxRates = maxRates
	}
	return v
}

// CheckHotelCount validates the hotel-code list of an availability search.
// An absent or empty list is valid: it denotes a destination-wide search.
// Blank entries do not count toward the limit.
func (v *Validator) CheckHotelCount(codes []string) Check {
	count := 0
	for _, c := range codes {
		if strings.TrimSpace(c) != "" {
			count++
		}
	}

	if count > v.maxHotels {
		return Check{
			Message: fmt.Sprintf("availability search requests %d hotels; the limit per call is %d", count, v.maxHotels),
			Count:   count,
		}
	}
	return Check{Valid: true, Count: count}
}

// CheckRateCount validates the rate-key list of a re-price call. The list
// must contain at least one non-blank key; duplicate keys collapse before
// the limit check.
func (v *Validator) CheckRateCount(keys []string) Check {
	distinct := make(map[string]bool, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k != "" {
			distinct[k] = true
		}
	}
	count := len(distinct)

	if count == 0 {
		return Check{Message: "re-price call carries no rate keys"}
	}
	if count > v.maxRates {
		return Check{
			Message: fmt.Sprintf("re-price call carries %d distinct rate keys; the limit per call is %d", count, v.maxRates),
			Count:   count,
		}
	}
	return Check{Valid: true, Count: count}
}

// NeedsRecheck reports whether a rate's type requires a re-price call
// before booking. The comparison is case-insensitive; anything other than
// RECHECK, including an empty type, is directly bookable.
func NeedsRecheck(rateType string) bool {
	return strings.EqualFold(strings.TrimSpace(rateType), RateTypeRecheck)
}

// Package-level shorthands at the published limits.

// CheckHotelCount runs the hotel-count rule at the published limit.
func CheckHotelCount(codes []string) Check {
	return NewValidator().CheckHotelCount(codes)
}

// CheckRateCount runs the rate-count rule at the published limit.
func CheckRateCount(keys []string) Check {
	return NewValidator().CheckRateCount(keys)
}
