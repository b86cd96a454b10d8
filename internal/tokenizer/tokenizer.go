// =============================================================================
// Hotel Cache Toolkit - Section Tokenizer
// =============================================================================
//
// This module splits the raw text of one cache file into [TAG] delimited
// sections, splits each section's lines into pipe-separated rows, and
// dispatches every row to the record decoder registered for the current tag.
//
// GRAMMAR (strictly line-oriented, single pass):
//   - A line matching ^\[([A-Z]+)\]$ opens a new section.
//   - A line starting with "(" or ending with ")" is a structural comment
//     and is skipped.
//   - Any other non-blank line is a row: split on "|", dispatch by tag.
//   - Rows before the first [TAG], or under a tag this version does not
//     know, are silently discarded. New tags are an expected
//     forward-compatibility case under the wholesaler's certification
//     program, never an error.
//
// ERROR TOLERANCE:
//   A failure decoding one row never aborts its siblings. The internal
//   variant logs the tag and raw line and moves on; the external-supplier
//   variant accumulates a diagnostic string on the result instead. Nothing
//   in this package can take down the host process.
//
// CONCURRENCY:
//   The tag dispatch tables are immutable package variables built once at
//   init; parses share no other state, so any number may run concurrently.
//
// =============================================================================

package tokenizer

import (
	"bufio"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/brightstay/hotelcache/internal/records"
)

// sectionPattern matches a section-opening line. The whole line must be the
// bracketed tag; a row that merely contains brackets is still a row.
var sectionPattern = regexp.MustCompile(`^\[([A-Z]+)\]$`)

// =============================================================================
// RESULT STRUCTURES
// =============================================================================

// CacheFile holds every decoded record of one internal-format cache file,
// grouped by type. Row order within each type is preserved.
type CacheFile struct {
	ContractHeaders  []records.ContractHeader
	RoomTypes        []records.RoomType
	NoHotelTexts     []records.NoHotelText
	Promotions       []records.Promotion
	HandlingFees     []records.HandlingFee
	TaxBreakdowns    []records.TaxBreakdown
	ValidMarkets     []records.ValidMarket
	Inventories      []records.Inventory
	Prices           []records.Price
	BoardSupplements []records.BoardSupplement
	Supplements      []records.Supplement
	StopSales        []records.StopSales
	FreeNights       []records.FreeNights
	OfferExclusions  []records.OfferExclusion
	MinMaxStays      []records.MinMaxStay
	RateCodeLabels   []records.RateCodeLabel
	CheckInOutRules  []records.CheckInOutRule
	CancellationFees []records.CancellationFee
}

// SupplierFile holds every decoded record of one external-supplier file.
// Rows that failed to decode are reported on Errors rather than logged; the
// caller owns the decision of what a bad supplier row means.
type SupplierFile struct {
	Availabilities   []records.SupplierAvailability
	Inventories      []records.SupplierInventory
	MinMaxStays      []records.SupplierMinMaxStay
	CancellationFees []records.SupplierCancellationFee

	Errors []string
}

// =============================================================================
// DISPATCH TABLES
// =============================================================================

// internalDecoders maps each internal tag to the append-decoder for its
// record type. Built once; read-only afterwards.
var internalDecoders = map[string]func(*CacheFile, []string){
	"CCON": func(f *CacheFile, r []string) { f.ContractHeaders = append(f.ContractHeaders, records.DecodeContractHeader(r)) },
	"CNHA": func(f *CacheFile, r []string) { f.RoomTypes = append(f.RoomTypes, records.DecodeRoomType(r)) },
	"CNNH": func(f *CacheFile, r []string) { f.NoHotelTexts = append(f.NoHotelTexts, records.DecodeNoHotelText(r)) },
	"CNPR": func(f *CacheFile, r []string) { f.Promotions = append(f.Promotions, records.DecodePromotion(r)) },
	"CNHF": func(f *CacheFile, r []string) { f.HandlingFees = append(f.HandlingFees, records.DecodeHandlingFee(r)) },
	"ATAX": func(f *CacheFile, r []string) { f.TaxBreakdowns = append(f.TaxBreakdowns, records.DecodeTaxBreakdown(r)) },
	"CNCL": func(f *CacheFile, r []string) { f.ValidMarkets = append(f.ValidMarkets, records.DecodeValidMarket(r)) },
	"CNIN": func(f *CacheFile, r []string) { f.Inventories = append(f.Inventories, records.DecodeInventory(r)) },
	"CNCT": func(f *CacheFile, r []string) { f.Prices = append(f.Prices, records.DecodePrice(r)) },
	"CNSR": func(f *CacheFile, r []string) { f.BoardSupplements = append(f.BoardSupplements, records.DecodeBoardSupplement(r)) },
	"CNSU": func(f *CacheFile, r []string) { f.Supplements = append(f.Supplements, records.DecodeSupplement(r)) },
	"CNPV": func(f *CacheFile, r []string) { f.StopSales = append(f.StopSales, records.DecodeStopSales(r)) },
	"CNGR": func(f *CacheFile, r []string) { f.FreeNights = append(f.FreeNights, records.DecodeFreeNights(r)) },
	"CNOE": func(f *CacheFile, r []string) { f.OfferExclusions = append(f.OfferExclusions, records.DecodeOfferExclusion(r)) },
	"CNEM": func(f *CacheFile, r []string) { f.MinMaxStays = append(f.MinMaxStays, records.DecodeMinMaxStay(r)) },
	"CNTA": func(f *CacheFile, r []string) { f.RateCodeLabels = append(f.RateCodeLabels, records.DecodeRateCodeLabel(r)) },
	"CNES": func(f *CacheFile, r []string) { f.CheckInOutRules = append(f.CheckInOutRules, records.DecodeCheckInOutRule(r)) },
	"CNCF": func(f *CacheFile, r []string) { f.CancellationFees = append(f.CancellationFees, records.DecodeCancellationFee(r)) },
}

// supplierDecoders maps the disjoint external-supplier tag set.
var supplierDecoders = map[string]func(*SupplierFile, []string){
	"SIAP": func(f *SupplierFile, r []string) { f.Availabilities = append(f.Availabilities, records.DecodeSupplierAvailability(r)) },
	"SIIN": func(f *SupplierFile, r []string) { f.Inventories = append(f.Inventories, records.DecodeSupplierInventory(r)) },
	"SIEM": func(f *SupplierFile, r []string) { f.MinMaxStays = append(f.MinMaxStays, records.DecodeSupplierMinMaxStay(r)) },
	"SICF": func(f *SupplierFile, r []string) { f.CancellationFees = append(f.CancellationFees, records.DecodeSupplierCancellationFee(r)) },
}

// =============================================================================
// PARSE FUNCTIONS
// =============================================================================

// ParseCacheFile parses the full decoded text of one internal-format cache
// file. Malformed rows are logged via the standard logger and skipped.
func ParseCacheFile(text string) *CacheFile {
	return parseCacheFile(text, log.Printf)
}

// parseCacheFile is ParseCacheFile with an injectable log function, which
// the tests use to assert tolerance without polluting output.
func parseCacheFile(text string, logf func(format string, args ...interface{})) *CacheFile {
	result := &CacheFile{}

	scanLines(text, func(tag, line string) {
		decode, known := internalDecoders[tag]
		if !known {
			return
		}
		if err := dispatchRow(line, func(row []string) { decode(result, row) }); err != nil {
			logf("cache row skipped: tag=%s line=%q: %v", tag, line, err)
		}
	})

	return result
}

// ParseSupplierFile parses the full decoded text of one external-supplier
// file. Malformed rows append a diagnostic to the result's Errors list.
func ParseSupplierFile(text string) *SupplierFile {
	result := &SupplierFile{}

	scanLines(text, func(tag, line string) {
		decode, known := supplierDecoders[tag]
		if !known {
			return
		}
		if err := dispatchRow(line, func(row []string) { decode(result, row) }); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("tag %s: %v: %s", tag, err, line))
		}
	})

	return result
}

// scanLines runs the shared line grammar over text and invokes handle for
// every row line with the tag currently in force. Lines before the first
// section open carry an empty tag, which no dispatch table contains.
func scanLines(text string, handle func(tag, line string)) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	currentTag := ""
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if m := sectionPattern.FindStringSubmatch(line); m != nil {
			currentTag = m[1]
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		// Structural comment lines wrap explanatory text in parentheses.
		if strings.HasPrefix(trimmed, "(") || strings.HasSuffix(trimmed, ")") {
			continue
		}

		handle(currentTag, line)
	}
}

// dispatchRow splits one row line and runs the decoder, converting any
// decoder panic into an error so a single bad row cannot abort the file.
func dispatchRow(line string, decode func(row []string)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decode failed: %v", r)
		}
	}()

	decode(strings.Split(line, "|"))
	return nil
}
