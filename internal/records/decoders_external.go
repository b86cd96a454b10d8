// =============================================================================
// Hotel Cache Toolkit - External-Supplier Record Decoders
// =============================================================================
//
// Decoders for the four record shapes of the external-supplier file variant
// (SIAP, SIIN, SIEM, SICF). The grammar is the same [TAG]/pipe format as the
// internal files but the tag set is disjoint and the shapes are flatter:
// external suppliers publish per-day availability rather than per-window
// contract rules.
//
// =============================================================================

package records

import (
	"github.com/brightstay/hotelcache/internal/fieldcodec"
)

// DecodeSupplierAvailability decodes a SIAP row.
func DecodeSupplierAvailability(fields []string) SupplierAvailability {
	return SupplierAvailability{
		Date:           fieldcodec.ParseDate(field(fields, 0)),
		RoomType:       field(fields, 1),
		Board:          field(fields, 2),
		AvailableRooms: fieldcodec.ParseInt(field(fields, 3)),
		Price:          fieldcodec.ParseAmount(field(fields, 4)),
		Currency:       field(fields, 5),
		LengthOfStay:   fieldcodec.ParseInt(field(fields, 6)),
		PerPax:         fieldcodec.ParseBool(field(fields, 7)),
		RateCode:       fieldcodec.ParseOptionalString(field(fields, 8)),
		Release:        fieldcodec.ParseInt(field(fields, 9)),
		StopSales:      fieldcodec.ParseBool(field(fields, 10)),
		OnRequest:      fieldcodec.ParseBool(field(fields, 11)),
		Opaque:         fieldcodec.ParseBool(field(fields, 12)),
	}
}

// DecodeSupplierInventory decodes a SIIN row.
func DecodeSupplierInventory(fields []string) SupplierInventory {
	return SupplierInventory{
		InitialDate: fieldcodec.ParseDate(field(fields, 0)),
		EndDate:     fieldcodec.ParseDate(field(fields, 1)),
		RoomType:    field(fields, 2),
		Board:       fieldcodec.ParseOptionalString(field(fields, 3)),
		Allotment:   fieldcodec.ParseInt(field(fields, 4)),
		Release:     fieldcodec.ParseInt(field(fields, 5)),
		StopSales:   fieldcodec.ParseBool(field(fields, 6)),
		OnRequest:   fieldcodec.ParseBool(field(fields, 7)),
		RateCode:    fieldcodec.ParseOptionalString(field(fields, 8)),
	}
}

// DecodeSupplierMinMaxStay decodes a SIEM row.
func DecodeSupplierMinMaxStay(fields []string) SupplierMinMaxStay {
	return SupplierMinMaxStay{
		InitialDate:     fieldcodec.ParseDate(field(fields, 0)),
		EndDate:         fieldcodec.ParseDate(field(fields, 1)),
		RoomType:        fieldcodec.ParseOptionalString(field(fields, 2)),
		Board:           fieldcodec.ParseOptionalString(field(fields, 3)),
		MinNights:       fieldcodec.ParseOptionalInt(field(fields, 4)),
		MaxNights:       fieldcodec.ParseOptionalInt(field(fields, 5)),
		RateCode:        fieldcodec.ParseOptionalString(field(fields, 6)),
		ClosedToArrival: fieldcodec.ParseBool(field(fields, 7)),
	}
}

// DecodeSupplierCancellationFee decodes a SICF row.
func DecodeSupplierCancellationFee(fields []string) SupplierCancellationFee {
	return SupplierCancellationFee{
		InitialDate: fieldcodec.ParseDate(field(fields, 0)),
		EndDate:     fieldcodec.ParseDate(field(fields, 1)),
		DaysBefore:  fieldcodec.ParseInt(field(fields, 2)),
		Amount:      fieldcodec.ParseOptionalAmount(field(fields, 3)),
		Percentage:  fieldcodec.ParseOptionalAmount(field(fields, 4)),
		Currency:    fieldcodec.ParseOptionalString(field(fields, 5)),
		RateCode:    fieldcodec.ParseOptionalString(field(fields, 6)),
	}
}
