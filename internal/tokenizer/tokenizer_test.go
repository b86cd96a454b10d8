package tokenizer

import (
	"strings"
	"testing"
)

// TestParseCacheFileEndToEnd feeds a small synthetic file with one CCON row
// and one CNCT row and checks the decoded fields match the literal input at
// their documented positions.
func TestParseCacheFileEndToEnd(t *testing.T) {
	text := strings.Join([]string{
		"[CCON]",
		"N|PMI|1|1234|SUMMER24|E14|H|EUR|20240501|20241031|P|N|A|M|N|8821||Hotel Mar|4EST|120|3|2|12|Y|20240412|0730|BB|Bed & Breakfast|N|Y|N|7|N|48",
		"[CNCT]",
		"20240601|20240615|DBL|ST|HB|7|420,50|551.00|Y|2|4|NRF",
	}, "\n")

	f := ParseCacheFile(text)

	if len(f.ContractHeaders) != 1 {
		t.Fatalf("ContractHeaders = %d, want 1", len(f.ContractHeaders))
	}
	if len(f.Prices) != 1 {
		t.Fatalf("Prices = %d, want 1", len(f.Prices))
	}

	h := f.ContractHeaders[0]
	if h.Destination != "PMI" || h.Office != 1 || h.ContractNumber != 1234 {
		t.Errorf("header identity = %q/%d/%d", h.Destination, h.Office, h.ContractNumber)
	}
	if h.Currency != "EUR" || h.HotelCode != 8821 || h.ReleasePerHours != 48 {
		t.Errorf("header fields = %q/%d/%d", h.Currency, h.HotelCode, h.ReleasePerHours)
	}

	p := f.Prices[0]
	if p.RoomType != "DBL" || p.Board != "HB" || p.LengthOfStay != 7 {
		t.Errorf("price fields = %q/%q/%d", p.RoomType, p.Board, p.LengthOfStay)
	}
	if p.NetPrice.String() != "420.5" {
		t.Errorf("NetPrice = %s, want 420.5", p.NetPrice)
	}
}

// TestParseCacheFileGrammar checks the line grammar: comment lines,
// blank lines, rows before any section, and unknown tags are all skipped
// without error.
func TestParseCacheFileGrammar(t *testing.T) {
	text := strings.Join([]string{
		"stray|row|before|any|tag",
		"",
		"[XNEW]", // tag from a newer format version
		"some|future|record",
		"[CNCL]",
		"(market inclusion list)",
		"ES|Y",
		"",
		"UK|N",
		"   ",
		"[CNTA]",
		"NRF|Non refundable|N",
	}, "\n")

	f := ParseCacheFile(text)

	if len(f.ValidMarkets) != 2 {
		t.Fatalf("ValidMarkets = %d, want 2", len(f.ValidMarkets))
	}
	if f.ValidMarkets[0].MarketCode != "ES" || !f.ValidMarkets[0].Included {
		t.Errorf("first market = %+v", f.ValidMarkets[0])
	}
	if f.ValidMarkets[1].MarketCode != "UK" || f.ValidMarkets[1].Included {
		t.Errorf("second market = %+v", f.ValidMarkets[1])
	}
	if len(f.RateCodeLabels) != 1 || f.RateCodeLabels[0].RateCode != "NRF" {
		t.Errorf("RateCodeLabels = %+v", f.RateCodeLabels)
	}
}

// TestParseCacheFileCRLF checks Windows line endings don't leak into field
// values; the exporters ship both conventions.
func TestParseCacheFileCRLF(t *testing.T) {
	text := "[CNCL]\r\nES|Y\r\n"

	f := ParseCacheFile(text)

	if len(f.ValidMarkets) != 1 {
		t.Fatalf("ValidMarkets = %d, want 1", len(f.ValidMarkets))
	}
	if !f.ValidMarkets[0].Included {
		t.Error("trailing CR corrupted the last field")
	}
}

// TestParseCacheFileRowOrder checks row order is preserved within a type
// across interleaved sections.
func TestParseCacheFileRowOrder(t *testing.T) {
	text := strings.Join([]string{
		"[CNIN]",
		"20240601|20240610|DBL|ST|10|2|N",
		"[CNCL]",
		"ES|Y",
		"[CNIN]",
		"20240611|20240620|DBL|ST|5|2|N",
	}, "\n")

	f := ParseCacheFile(text)

	if len(f.Inventories) != 2 {
		t.Fatalf("Inventories = %d, want 2", len(f.Inventories))
	}
	if f.Inventories[0].Allotment != 10 || f.Inventories[1].Allotment != 5 {
		t.Errorf("row order lost: %d then %d", f.Inventories[0].Allotment, f.Inventories[1].Allotment)
	}
}

// TestParseCacheFileRowTolerance checks a malformed row is skipped with a
// log line while its siblings decode.
func TestParseCacheFileRowTolerance(t *testing.T) {
	var logged []string
	logf := func(format string, args ...interface{}) {
		logged = append(logged, format)
	}

	// A structurally broken row decodes to defaults rather than aborting
	// the section; genuinely panicking decoders are isolated per row.
	text := strings.Join([]string{
		"[CNCL]",
		"ES|Y",
		"total nonsense without pipes",
		"UK|N",
	}, "\n")

	f := parseCacheFile(text, logf)

	// The nonsense line splits to a 1-field row and decodes to a market
	// with no inclusion flag; tolerance means three rows, zero aborts.
	if len(f.ValidMarkets) != 3 {
		t.Fatalf("ValidMarkets = %d, want 3", len(f.ValidMarkets))
	}
	if len(logged) != 0 {
		t.Errorf("no row should have needed the log path, got %d", len(logged))
	}
	if f.ValidMarkets[2].MarketCode != "UK" {
		t.Error("row after the malformed one was lost")
	}
}

// TestParseSupplierFile checks the external tag set decodes into the
// supplier result with an empty error list for clean input, and that the
// internal tag set is foreign to it.
func TestParseSupplierFile(t *testing.T) {
	text := strings.Join([]string{
		"[SIAP]",
		"20240705|TWN|RO|12|88,00|USD|1|N|OPQ|2|N|N|Y",
		"[SIIN]",
		"20240701|20240731|TWN||20|3|N|N|",
		"[SIEM]",
		"20240701|20240731|TWN||2|14||N",
		"[SICF]",
		"20240701|20240731|7|50.00|||NRF",
		"[CNCT]", // internal tag: unknown here, silently dropped
		"20240601|20240615|DBL|ST|HB|7|420,50",
	}, "\n")

	f := ParseSupplierFile(text)

	if len(f.Availabilities) != 1 || len(f.Inventories) != 1 ||
		len(f.MinMaxStays) != 1 || len(f.CancellationFees) != 1 {
		t.Fatalf("section counts = %d/%d/%d/%d, want 1 each",
			len(f.Availabilities), len(f.Inventories), len(f.MinMaxStays), len(f.CancellationFees))
	}
	if len(f.Errors) != 0 {
		t.Errorf("Errors = %v, want none", f.Errors)
	}

	a := f.Availabilities[0]
	if a.RoomType != "TWN" || a.AvailableRooms != 12 || !a.Opaque {
		t.Errorf("availability = %+v", a)
	}
	cf := f.CancellationFees[0]
	if cf.DaysBefore != 7 || cf.Amount == nil || cf.Amount.String() != "50" {
		t.Errorf("cancellation fee = %+v", cf)
	}
}

// TestParseEmptyInput checks both variants return empty, usable results
// for empty text.
func TestParseEmptyInput(t *testing.T) {
	if f := ParseCacheFile(""); f == nil || len(f.ContractHeaders) != 0 {
		t.Error("empty internal parse should yield an empty result")
	}
	if f := ParseSupplierFile(""); f == nil || len(f.Errors) != 0 {
		t.Error("empty supplier parse should yield an empty result")
	}
}
