// =============================================================================
// Hotel Cache Toolkit - Length-of-Stay Composer
// =============================================================================
//
// Some contracts price every stay length individually; others only publish
// prices for fixed length-of-stay buckets. Given the nights a guest
// requested and the bucket lengths that actually carry prices, this module
// decides whether the stay can be billed and which buckets compose it.
//
// The contract header's TotalPricePerStay flag switches the semantics:
// per-stay prices are indivisible (a 5-night stay cannot be billed as a
// 3-bucket plus a 2-bucket), so only an exact bucket match books. Per-night
// style contracts combine buckets greedily, largest first.
//
// KNOWN LIMITATION:
//   The greedy strategy is only correct for the canonical bucket sets the
//   wholesaler publishes (nested multiples, or a full 1..max range). For a
//   non-canonical set it can report failure where another combination would
//   have worked: nights=5 against buckets {4,3} fails even though no greedy
//   alternative exists either way, and nights=6 against {4,3} fails although
//   3+3 books it. Downstream pricing depends on the specific decomposition
//   chosen, so this behavior is preserved as-is; see composer_test.go.
//
// =============================================================================

package los

import (
	"sort"
)

// Decision describes how a requested stay length decomposes against the
// available priced buckets.
type Decision struct {
	// CanBook is true when the requested nights are fully covered.
	CanBook bool

	// RequiredLengths lists the bucket lengths to price, in the order they
	// were consumed. Empty when CanBook is false.
	RequiredLengths []int
}

// Compose decides whether a stay of the requested nights can be billed from
// the given bucket lengths. Duplicate buckets are collapsed; a non-positive
// request or an empty bucket set never books.
func Compose(totalPricePerStay bool, nights int, buckets []int) Decision {
	if nights <= 0 || len(buckets) == 0 {
		return Decision{}
	}

	distinct := distinctDescending(buckets)

	if totalPricePerStay {
		// Whole-stay prices are indivisible: exact match or nothing.
		for _, b := range distinct {
			if b == nights {
				return Decision{CanBook: true, RequiredLengths: []int{b}}
			}
		}
		return Decision{}
	}

	// Greedy largest-first composition.
	remaining := nights
	var lengths []int
	for remaining > 0 {
		fitted := false
		for _, b := range distinct {
			if b <= remaining {
				lengths = append(lengths, b)
				remaining -= b
				fitted = true
				break
			}
		}
		if !fitted {
			return Decision{}
		}
	}

	return Decision{CanBook: true, RequiredLengths: lengths}
}

// distinctDescending returns the positive bucket lengths, de-duplicated and
// sorted largest first.
func distinctDescending(buckets []int) []int {
	seen := make(map[int]bool, len(buckets))
	var out []int
	for _, b := range buckets {
		if b > 0 && !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
