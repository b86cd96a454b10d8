package records

import (
	"testing"

	"github.com/shopspring/decimal"
)

// TestDecodeContractHeader decodes a full CCON row and checks every field
// lands at its documented index.
func TestDecodeContractHeader(t *testing.T) {
	row := []string{
		"N",          //  0 external inventory
		"PMI",        //  1 destination
		"1",          //  2 office
		"1234",       //  3 contract number
		"SUMMER24",   //  4 contract name
		"E14",        //  5 company
		"H",          //  6 service type
		"EUR",        //  7 currency
		"20240501",   //  8 initial date
		"20241031",   //  9 end date
		"P",          // 10 selling price type
		"Y",          // 11 total price per stay
		"A",          // 12 classification
		"M",          // 13 payment model
		"N",          // 14 opaque
		"8821",       // 15 hotel code
		"",           // 16 giata code (absent)
		"Hotel Mar",  // 17 hotel name
		"4EST",       // 18 category
		"120",        // 19 maximum rooms
		"3",          // 20 release days
		"2",          // 21 min child age
		"12",         // 22 max child age
		"Y",          // 23 daily price
		"20240412",   // 24 update date
		"0730",       // 25 update time
		"BB",         // 26 base board
		"Bed & Breakfast", // 27 base board description
		"N",          // 28 contract type
		"Y",          // 29 market compatible
		"N",          // 30 fictitious
		"7",          // 31 version
		"N",          // 32 on request
		"48",         // 33 release per hours
	}

	h := DecodeContractHeader(row)

	if h.ExternalInventory {
		t.Error("ExternalInventory = true, want false")
	}
	if h.Destination != "PMI" {
		t.Errorf("Destination = %q", h.Destination)
	}
	if h.Office != 1 || h.ContractNumber != 1234 {
		t.Errorf("Office/ContractNumber = %d/%d, want 1/1234", h.Office, h.ContractNumber)
	}
	if h.ContractName != "SUMMER24" || h.Currency != "EUR" {
		t.Errorf("ContractName/Currency = %q/%q", h.ContractName, h.Currency)
	}
	if h.InitialDate == nil || h.InitialDate.Format("20060102") != "20240501" {
		t.Errorf("InitialDate = %v", h.InitialDate)
	}
	if h.EndDate == nil || h.EndDate.Format("20060102") != "20241031" {
		t.Errorf("EndDate = %v", h.EndDate)
	}
	if !h.TotalPricePerStay {
		t.Error("TotalPricePerStay = false, want true")
	}
	if h.PaymentModel != "M" {
		t.Errorf("PaymentModel = %q", h.PaymentModel)
	}
	if h.HotelCode != 8821 {
		t.Errorf("HotelCode = %d", h.HotelCode)
	}
	if h.GiataHotelCode != nil {
		t.Errorf("GiataHotelCode = %v, want nil", *h.GiataHotelCode)
	}
	if h.HotelName == nil || *h.HotelName != "Hotel Mar" {
		t.Errorf("HotelName = %v", h.HotelName)
	}
	if h.MaximumRooms != 120 || h.ReleaseDays != 3 {
		t.Errorf("MaximumRooms/ReleaseDays = %d/%d", h.MaximumRooms, h.ReleaseDays)
	}
	if h.MinChildAge != 2 || h.MaxChildAge != 12 {
		t.Errorf("child ages = %d/%d", h.MinChildAge, h.MaxChildAge)
	}
	if !h.DailyPrice || !h.MarketCompatible || h.Fictitious || h.OnRequest {
		t.Error("flag block decoded wrong")
	}
	if h.Version != 7 || h.ReleasePerHours != 48 {
		t.Errorf("Version/ReleasePerHours = %d/%d, want 7/48", h.Version, h.ReleasePerHours)
	}
}

// TestDecodePrice decodes a CNCT row with every field populated.
func TestDecodePrice(t *testing.T) {
	row := []string{
		"20240601", "20240615", "DBL", "ST", "HB",
		"7", "420,50", "551.00", "Y", "2", "4", "NRF",
	}

	p := DecodePrice(row)

	if p.InitialDate == nil || p.EndDate == nil {
		t.Fatal("dates decoded to nil")
	}
	if p.RoomType != "DBL" || p.Characteristic != "ST" || p.Board != "HB" {
		t.Errorf("room/char/board = %q/%q/%q", p.RoomType, p.Characteristic, p.Board)
	}
	if p.LengthOfStay != 7 {
		t.Errorf("LengthOfStay = %d, want 7", p.LengthOfStay)
	}
	if want, _ := decimal.NewFromString("420.50"); !p.NetPrice.Equal(want) {
		t.Errorf("NetPrice = %s, want 420.50", p.NetPrice)
	}
	if p.SellPrice == nil || p.SellPrice.String() != "551" {
		t.Errorf("SellPrice = %v, want 551", p.SellPrice)
	}
	if !p.PerPax {
		t.Error("PerPax = false, want true")
	}
	if p.MinPax == nil || *p.MinPax != 2 || p.MaxPax == nil || *p.MaxPax != 4 {
		t.Errorf("pax bounds = %v/%v, want 2/4", p.MinPax, p.MaxPax)
	}
	if p.RateCode == nil || *p.RateCode != "NRF" {
		t.Errorf("RateCode = %v, want NRF", p.RateCode)
	}
}

// TestDecodeShortRow checks decoders read past a truncated row as absent
// instead of panicking. Exporters legally drop trailing optional fields.
func TestDecodeShortRow(t *testing.T) {
	p := DecodePrice([]string{"20240601", "20240615", "DBL"})

	if p.RoomType != "DBL" {
		t.Errorf("RoomType = %q", p.RoomType)
	}
	if p.LengthOfStay != 0 {
		t.Errorf("LengthOfStay = %d, want 0", p.LengthOfStay)
	}
	if !p.NetPrice.IsZero() {
		t.Errorf("NetPrice = %s, want 0", p.NetPrice)
	}
	if p.SellPrice != nil || p.MinPax != nil || p.RateCode != nil {
		t.Error("optional trailing fields should be nil on a short row")
	}

	// Empty row decodes entirely to defaults.
	h := DecodeContractHeader(nil)
	if h.Destination != "" || h.Office != 0 || h.InitialDate != nil {
		t.Error("empty CCON row should decode to zero values")
	}
}

// TestDecodeWeekdayBlock checks the shared Monday-first 7-flag block via
// the CNEM decoder.
func TestDecodeWeekdayBlock(t *testing.T) {
	row := []string{
		"20240601", "20240630", "MIN", "", "", "",
		"3", "", // min 3 nights, no max
		"Y", "N", "Y", "N", "Y", "N", "N", // Mon Wed Fri
		"NRF", "1",
	}

	m := DecodeMinMaxStay(row)

	if m.Type != "MIN" {
		t.Errorf("Type = %q", m.Type)
	}
	if m.MinNights == nil || *m.MinNights != 3 {
		t.Errorf("MinNights = %v, want 3", m.MinNights)
	}
	if m.MaxNights != nil {
		t.Errorf("MaxNights = %v, want nil", *m.MaxNights)
	}
	w := m.Weekdays
	if !w.Monday || w.Tuesday || !w.Wednesday || w.Thursday || !w.Friday || w.Saturday || w.Sunday {
		t.Errorf("Weekdays = %+v", w)
	}
	if m.RateCode == nil || *m.RateCode != "NRF" || m.Order != 1 {
		t.Errorf("RateCode/Order = %v/%d", m.RateCode, m.Order)
	}
}

// TestDecodeSupplierAvailability decodes a SIAP row.
func TestDecodeSupplierAvailability(t *testing.T) {
	row := []string{
		"20240705", "TWN", "RO", "12", "88,00", "USD",
		"1", "N", "OPQ", "2", "N", "N", "Y",
	}

	a := DecodeSupplierAvailability(row)

	if a.Date == nil || a.Date.Format("20060102") != "20240705" {
		t.Errorf("Date = %v", a.Date)
	}
	if a.RoomType != "TWN" || a.Board != "RO" || a.Currency != "USD" {
		t.Errorf("room/board/currency = %q/%q/%q", a.RoomType, a.Board, a.Currency)
	}
	if a.AvailableRooms != 12 || a.LengthOfStay != 1 || a.Release != 2 {
		t.Errorf("counts = %d/%d/%d", a.AvailableRooms, a.LengthOfStay, a.Release)
	}
	if want, _ := decimal.NewFromString("88"); !a.Price.Equal(want) {
		t.Errorf("Price = %s, want 88", a.Price)
	}
	if a.RateCode == nil || *a.RateCode != "OPQ" {
		t.Errorf("RateCode = %v", a.RateCode)
	}
	if a.PerPax || a.StopSales || a.OnRequest || !a.Opaque {
		t.Error("flag block decoded wrong")
	}
}
