// =============================================================================
// Hotel Cache Toolkit - Summary Report Writer
// =============================================================================
//
// This module renders one parsed cache file into an XLSX workbook so the
// contracting team can eyeball a download without reading pipe format:
//   - "Summary"   : record count per section tag
//   - "Contracts" : one row per contract header
//   - "Prices"    : one row per price record
//
// The workbook is a human artifact, not a data interchange format; nothing
// reads it back.
//
// =============================================================================

package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/brightstay/hotelcache/internal/fieldcodec"
	"github.com/brightstay/hotelcache/internal/records"
	"github.com/brightstay/hotelcache/internal/tokenizer"
)

// sectionCounts pairs each internal tag with its record count, in the order
// the sheet lists them.
func sectionCounts(f *tokenizer.CacheFile) []struct {
	Tag     string
	Section string
	Count   int
} {
	return []struct {
		Tag     string
		Section string
		Count   int
	}{
		{"CCON", "Contract headers", len(f.ContractHeaders)},
		{"CNHA", "Room types", len(f.RoomTypes)},
		{"CNNH", "No-hotel texts", len(f.NoHotelTexts)},
		{"CNPR", "Promotions", len(f.Promotions)},
		{"CNHF", "Handling fees", len(f.HandlingFees)},
		{"ATAX", "Tax breakdowns", len(f.TaxBreakdowns)},
		{"CNCL", "Valid markets", len(f.ValidMarkets)},
		{"CNIN", "Inventories", len(f.Inventories)},
		{"CNCT", "Prices", len(f.Prices)},
		{"CNSR", "Board supplements", len(f.BoardSupplements)},
		{"CNSU", "Supplements/discounts", len(f.Supplements)},
		{"CNPV", "Stop-sales", len(f.StopSales)},
		{"CNGR", "Free nights", len(f.FreeNights)},
		{"CNOE", "Offer exclusions", len(f.OfferExclusions)},
		{"CNEM", "Min/max stays", len(f.MinMaxStays)},
		{"CNTA", "Rate-code labels", len(f.RateCodeLabels)},
		{"CNES", "Check-in/out rules", len(f.CheckInOutRules)},
		{"CNCF", "Cancellation fees", len(f.CancellationFees)},
	}
}

// Write renders the parsed cache file into an XLSX workbook at outPath.
// sourceName labels the summary sheet (typically the cache file name).
func Write(parsed *tokenizer.CacheFile, sourceName, outPath string) error {
	wb := excelize.NewFile()
	defer wb.Close()

	if err := writeSummarySheet(wb, parsed, sourceName); err != nil {
		return err
	}
	if err := writeContractSheet(wb, parsed.ContractHeaders); err != nil {
		return err
	}
	if err := writePriceSheet(wb, parsed.Prices); err != nil {
		return err
	}

	// excelize creates "Sheet1" by default; Summary replaces it as the
	// landing sheet.
	if err := wb.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}
	index, err := wb.GetSheetIndex("Summary")
	if err != nil {
		return err
	}
	wb.SetActiveSheet(index)

	if err := wb.SaveAs(outPath); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

func writeSummarySheet(wb *excelize.File, parsed *tokenizer.CacheFile, sourceName string) error {
	const sheet = "Summary"
	if _, err := wb.NewSheet(sheet); err != nil {
		return err
	}

	if err := setRow(wb, sheet, 1, "Source file", sourceName); err != nil {
		return err
	}
	if err := setRow(wb, sheet, 3, "Tag", "Section", "Records"); err != nil {
		return err
	}

	row := 4
	for _, s := range sectionCounts(parsed) {
		if err := setRow(wb, sheet, row, s.Tag, s.Section, s.Count); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeContractSheet(wb *excelize.File, headers []records.ContractHeader) error {
	const sheet = "Contracts"
	if _, err := wb.NewSheet(sheet); err != nil {
		return err
	}

	cols := []interface{}{
		"Office", "Contract", "Name", "Destination", "Hotel", "Currency",
		"From", "To", "Payment", "PerStay", "External", "Opaque",
	}
	if err := setRow(wb, sheet, 1, cols...); err != nil {
		return err
	}

	for i, h := range headers {
		vals := []interface{}{
			h.Office,
			h.ContractNumber,
			h.ContractName,
			h.Destination,
			h.HotelCode,
			h.Currency,
			formatDate(h.InitialDate),
			formatDate(h.EndDate),
			h.PaymentModel,
			yn(h.TotalPricePerStay),
			yn(h.ExternalInventory),
			yn(h.Opaque),
		}
		if err := setRow(wb, sheet, i+2, vals...); err != nil {
			return err
		}
	}
	return nil
}

func writePriceSheet(wb *excelize.File, prices []records.Price) error {
	const sheet = "Prices"
	if _, err := wb.NewSheet(sheet); err != nil {
		return err
	}

	cols := []interface{}{
		"From", "To", "Room", "Characteristic", "Board", "LOS",
		"Net", "Sell", "PerPax", "RateCode",
	}
	if err := setRow(wb, sheet, 1, cols...); err != nil {
		return err
	}

	for i, p := range prices {
		sell := ""
		if p.SellPrice != nil {
			sell = p.SellPrice.String()
		}
		rate := ""
		if p.RateCode != nil {
			rate = *p.RateCode
		}
		vals := []interface{}{
			formatDate(p.InitialDate),
			formatDate(p.EndDate),
			p.RoomType,
			p.Characteristic,
			p.Board,
			p.LengthOfStay,
			p.NetPrice.String(),
			sell,
			yn(p.PerPax),
			rate,
		}
		if err := setRow(wb, sheet, i+2, vals...); err != nil {
			return err
		}
	}
	return nil
}

// setRow writes values into consecutive cells of one row.
func setRow(wb *excelize.File, sheet string, row int, values ...interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := wb.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// formatDate renders an optional date in wire form, blank when absent.
func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return fieldcodec.FormatDate(*t)
}

func yn(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}
