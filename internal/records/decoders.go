// =============================================================================
// Hotel Cache Toolkit - Internal Record Decoders
// =============================================================================
//
// One decoder per internal tag. Each decoder reads the fixed positions
// documented on its record type in records.go and nothing else; positions
// past the end of a short row read as the empty string, which the field
// codecs resolve to the field's default or to absent.
//
// Decoders never return errors - a malformed value degrades per field, and
// the tokenizer isolates any row-level failure so one bad row cannot abort
// its siblings.
//
// =============================================================================

package records

import (
	"github.com/brightstay/hotelcache/internal/fieldcodec"
)

// field returns the raw value at position i, or "" when the row is shorter.
// Trailing optional fields are routinely omitted by the exporters.
func field(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}

// decodeWeekdays reads the 7-flag Monday..Sunday block starting at position
// start.
func decodeWeekdays(fields []string, start int) Weekdays {
	return Weekdays{
		Monday:    fieldcodec.ParseBool(field(fields, start)),
		Tuesday:   fieldcodec.ParseBool(field(fields, start+1)),
		Wednesday: fieldcodec.ParseBool(field(fields, start+2)),
		Thursday:  fieldcodec.ParseBool(field(fields, start+3)),
		Friday:    fieldcodec.ParseBool(field(fields, start+4)),
		Saturday:  fieldcodec.ParseBool(field(fields, start+5)),
		Sunday:    fieldcodec.ParseBool(field(fields, start+6)),
	}
}

// DecodeContractHeader decodes a CCON row.
func DecodeContractHeader(fields []string) ContractHeader {
	return ContractHeader{
		ExternalInventory:    fieldcodec.ParseBool(field(fields, 0)),
		Destination:          field(fields, 1),
		Office:               fieldcodec.ParseInt(field(fields, 2)),
		ContractNumber:       fieldcodec.ParseInt(field(fields, 3)),
		ContractName:         field(fields, 4),
		CompanyCode:          field(fields, 5),
		ServiceType:          field(fields, 6),
		Currency:             field(fields, 7),
		InitialDate:          fieldcodec.ParseDate(field(fields, 8)),
		EndDate:              fieldcodec.ParseDate(field(fields, 9)),
		SellingPriceType:     field(fields, 10),
		TotalPricePerStay:    fieldcodec.ParseBool(field(fields, 11)),
		Classification:       field(fields, 12),
		PaymentModel:         field(fields, 13),
		Opaque:               fieldcodec.ParseBool(field(fields, 14)),
		HotelCode:            fieldcodec.ParseInt(field(fields, 15)),
		GiataHotelCode:       fieldcodec.ParseOptionalInt(field(fields, 16)),
		HotelName:            fieldcodec.ParseOptionalString(field(fields, 17)),
		Category:             fieldcodec.ParseOptionalString(field(fields, 18)),
		MaximumRooms:         fieldcodec.ParseInt(field(fields, 19)),
		ReleaseDays:          fieldcodec.ParseInt(field(fields, 20)),
		MinChildAge:          fieldcodec.ParseInt(field(fields, 21)),
		MaxChildAge:          fieldcodec.ParseInt(field(fields, 22)),
		DailyPrice:           fieldcodec.ParseBool(field(fields, 23)),
		UpdateDate:           fieldcodec.ParseDate(field(fields, 24)),
		UpdateTime:           fieldcodec.ParseOptionalString(field(fields, 25)),
		BaseBoard:            field(fields, 26),
		BaseBoardDescription: fieldcodec.ParseOptionalString(field(fields, 27)),
		ContractType:         field(fields, 28),
		MarketCompatible:     fieldcodec.ParseBool(field(fields, 29)),
		Fictitious:           fieldcodec.ParseBool(field(fields, 30)),
		Version:              fieldcodec.ParseInt(field(fields, 31)),
		OnRequest:            fieldcodec.ParseBool(field(fields, 32)),
		ReleasePerHours:      fieldcodec.ParseInt(field(fields, 33)),
	}
}

// DecodeRoomType decodes a CNHA row.
func DecodeRoomType(fields []string) RoomType {
	return RoomType{
		RoomType:         field(fields, 0),
		Characteristic:   field(fields, 1),
		StandardCapacity: fieldcodec.ParseInt(field(fields, 2)),
		MinPax:           fieldcodec.ParseInt(field(fields, 3)),
		MaxPax:           fieldcodec.ParseInt(field(fields, 4)),
		MaxAdults:        fieldcodec.ParseInt(field(fields, 5)),
		MaxChildren:      fieldcodec.ParseInt(field(fields, 6)),
		MinAdults:        fieldcodec.ParseInt(field(fields, 7)),
		Description:      fieldcodec.ParseOptionalString(field(fields, 8)),
		CountsAsDouble:   fieldcodec.ParseBool(field(fields, 9)),
	}
}

// DecodeNoHotelText decodes a CNNH row.
func DecodeNoHotelText(fields []string) NoHotelText {
	return NoHotelText{
		Sequence: fieldcodec.ParseInt(field(fields, 0)),
		Text:     field(fields, 1),
	}
}

// DecodePromotion decodes a CNPR row.
func DecodePromotion(fields []string) Promotion {
	return Promotion{
		InitialDate:      fieldcodec.ParseDate(field(fields, 0)),
		EndDate:          fieldcodec.ParseDate(field(fields, 1)),
		Code:             field(fields, 2),
		Name:             fieldcodec.ParseOptionalString(field(fields, 3)),
		Description:      fieldcodec.ParseOptionalString(field(fields, 4)),
		MultilingualCode: fieldcodec.ParseOptionalString(field(fields, 5)),
		LoggedUsersOnly:  fieldcodec.ParseBool(field(fields, 6)),
	}
}

// DecodeHandlingFee decodes a CNHF row.
func DecodeHandlingFee(fields []string) HandlingFee {
	return HandlingFee{
		InitialDate:    fieldcodec.ParseDate(field(fields, 0)),
		EndDate:        fieldcodec.ParseDate(field(fields, 1)),
		Type:           field(fields, 2),
		Amount:         fieldcodec.ParseAmount(field(fields, 3)),
		Percentage:     fieldcodec.ParseOptionalAmount(field(fields, 4)),
		PerPax:         fieldcodec.ParseBool(field(fields, 5)),
		Board:          field(fields, 6),
		RoomType:       field(fields, 7),
		Characteristic: field(fields, 8),
		MinAge:         fieldcodec.ParseOptionalInt(field(fields, 9)),
		MaxAge:         fieldcodec.ParseOptionalInt(field(fields, 10)),
		Order:          fieldcodec.ParseInt(field(fields, 11)),
		Application:    field(fields, 12),
	}
}

// DecodeTaxBreakdown decodes an ATAX row.
func DecodeTaxBreakdown(fields []string) TaxBreakdown {
	return TaxBreakdown{
		InitialDate: fieldcodec.ParseDate(field(fields, 0)),
		EndDate:     fieldcodec.ParseDate(field(fields, 1)),
		Code:        field(fields, 2),
		Description: fieldcodec.ParseOptionalString(field(fields, 3)),
		Included:    fieldcodec.ParseBool(field(fields, 4)),
		Percentage:  fieldcodec.ParseOptionalAmount(field(fields, 5)),
		Amount:      fieldcodec.ParseOptionalAmount(field(fields, 6)),
		Currency:    fieldcodec.ParseOptionalString(field(fields, 7)),
		PerNight:    fieldcodec.ParseBool(field(fields, 8)),
		PerPax:      fieldcodec.ParseBool(field(fields, 9)),
		MaxNights:   fieldcodec.ParseOptionalInt(field(fields, 10)),
		MinAge:      fieldcodec.ParseOptionalInt(field(fields, 11)),
		MaxAge:      fieldcodec.ParseOptionalInt(field(fields, 12)),
		Board:       fieldcodec.ParseOptionalString(field(fields, 13)),
		RoomType:    fieldcodec.ParseOptionalString(field(fields, 14)),
		Type:        field(fields, 15),
		Order:       fieldcodec.ParseInt(field(fields, 16)),
	}
}

// DecodeValidMarket decodes a CNCL row.
func DecodeValidMarket(fields []string) ValidMarket {
	return ValidMarket{
		MarketCode: field(fields, 0),
		Included:   fieldcodec.ParseBool(field(fields, 1)),
	}
}

// DecodeInventory decodes a CNIN row.
func DecodeInventory(fields []string) Inventory {
	return Inventory{
		InitialDate:    fieldcodec.ParseDate(field(fields, 0)),
		EndDate:        fieldcodec.ParseDate(field(fields, 1)),
		RoomType:       field(fields, 2),
		Characteristic: field(fields, 3),
		Allotment:      fieldcodec.ParseInt(field(fields, 4)),
		Release:        fieldcodec.ParseInt(field(fields, 5)),
		OnRequest:      fieldcodec.ParseBool(field(fields, 6)),
	}
}

// DecodePrice decodes a CNCT row.
func DecodePrice(fields []string) Price {
	return Price{
		InitialDate:    fieldcodec.ParseDate(field(fields, 0)),
		EndDate:        fieldcodec.ParseDate(field(fields, 1)),
		RoomType:       field(fields, 2),
		Characteristic: field(fields, 3),
		Board:          field(fields, 4),
		LengthOfStay:   fieldcodec.ParseInt(field(fields, 5)),
		NetPrice:       fieldcodec.ParseAmount(field(fields, 6)),
		SellPrice:      fieldcodec.ParseOptionalAmount(field(fields, 7)),
		PerPax:         fieldcodec.ParseBool(field(fields, 8)),
		MinPax:         fieldcodec.ParseOptionalInt(field(fields, 9)),
		MaxPax:         fieldcodec.ParseOptionalInt(field(fields, 10)),
		RateCode:       fieldcodec.ParseOptionalString(field(fields, 11)),
	}
}

// DecodeBoardSupplement decodes a CNSR row.
func DecodeBoardSupplement(fields []string) BoardSupplement {
	return BoardSupplement{
		InitialDate:      fieldcodec.ParseDate(field(fields, 0)),
		EndDate:          fieldcodec.ParseDate(field(fields, 1)),
		Board:            field(fields, 2),
		RoomType:         fieldcodec.ParseOptionalString(field(fields, 3)),
		Characteristic:   fieldcodec.ParseOptionalString(field(fields, 4)),
		Amount:           fieldcodec.ParseAmount(field(fields, 5)),
		Percentage:       fieldcodec.ParseOptionalAmount(field(fields, 6)),
		PerPax:           fieldcodec.ParseBool(field(fields, 7)),
		MinAge:           fieldcodec.ParseOptionalInt(field(fields, 8)),
		MaxAge:           fieldcodec.ParseOptionalInt(field(fields, 9)),
		Order:            fieldcodec.ParseInt(field(fields, 10)),
		Included:         fieldcodec.ParseBool(field(fields, 11)),
		ApplicationBoard: fieldcodec.ParseOptionalString(field(fields, 12)),
		Weekdays:         decodeWeekdays(fields, 13),
		MinLengthOfStay:  fieldcodec.ParseOptionalInt(field(fields, 20)),
		MaxLengthOfStay:  fieldcodec.ParseOptionalInt(field(fields, 21)),
	}
}

// DecodeSupplement decodes a CNSU row.
func DecodeSupplement(fields []string) Supplement {
	return Supplement{
		Type:                   field(fields, 0),
		InitialDate:            fieldcodec.ParseDate(field(fields, 1)),
		EndDate:                fieldcodec.ParseDate(field(fields, 2)),
		ApplicationInitialDate: fieldcodec.ParseDate(field(fields, 3)),
		ApplicationEndDate:     fieldcodec.ParseDate(field(fields, 4)),
		RoomType:               fieldcodec.ParseOptionalString(field(fields, 5)),
		Characteristic:         fieldcodec.ParseOptionalString(field(fields, 6)),
		Board:                  fieldcodec.ParseOptionalString(field(fields, 7)),
		Amount:                 fieldcodec.ParseOptionalAmount(field(fields, 8)),
		Percentage:             fieldcodec.ParseOptionalAmount(field(fields, 9)),
		PerPax:                 fieldcodec.ParseBool(field(fields, 10)),
		PerNight:               fieldcodec.ParseBool(field(fields, 11)),
		Opaque:                 fieldcodec.ParseBool(field(fields, 12)),
		MinDays:                fieldcodec.ParseOptionalInt(field(fields, 13)),
		MaxDays:                fieldcodec.ParseOptionalInt(field(fields, 14)),
		MinPax:                 fieldcodec.ParseOptionalInt(field(fields, 15)),
		MaxPax:                 fieldcodec.ParseOptionalInt(field(fields, 16)),
		MinAge:                 fieldcodec.ParseOptionalInt(field(fields, 17)),
		MaxAge:                 fieldcodec.ParseOptionalInt(field(fields, 18)),
		Weekdays:               decodeWeekdays(fields, 19),
		Order:                  fieldcodec.ParseInt(field(fields, 26)),
		Included:               fieldcodec.ParseBool(field(fields, 27)),
		Cumulative:             fieldcodec.ParseBool(field(fields, 28)),
		Description:            fieldcodec.ParseOptionalString(field(fields, 29)),
		PromotionCode:          fieldcodec.ParseOptionalString(field(fields, 30)),
		RateCode:               fieldcodec.ParseOptionalString(field(fields, 31)),
		Currency:               fieldcodec.ParseOptionalString(field(fields, 32)),
		LimitDate:              fieldcodec.ParseDate(field(fields, 33)),
	}
}

// DecodeStopSales decodes a CNPV row.
func DecodeStopSales(fields []string) StopSales {
	return StopSales{
		InitialDate:    fieldcodec.ParseDate(field(fields, 0)),
		EndDate:        fieldcodec.ParseDate(field(fields, 1)),
		RoomType:       fieldcodec.ParseOptionalString(field(fields, 2)),
		Characteristic: fieldcodec.ParseOptionalString(field(fields, 3)),
		Board:          fieldcodec.ParseOptionalString(field(fields, 4)),
		Active:         fieldcodec.ParseBool(field(fields, 5)),
	}
}

// DecodeFreeNights decodes a CNGR row.
func DecodeFreeNights(fields []string) FreeNights {
	return FreeNights{
		InitialDate:            fieldcodec.ParseDate(field(fields, 0)),
		EndDate:                fieldcodec.ParseDate(field(fields, 1)),
		ApplicationInitialDate: fieldcodec.ParseDate(field(fields, 2)),
		ApplicationEndDate:     fieldcodec.ParseDate(field(fields, 3)),
		RoomType:               fieldcodec.ParseOptionalString(field(fields, 4)),
		Characteristic:         fieldcodec.ParseOptionalString(field(fields, 5)),
		Board:                  fieldcodec.ParseOptionalString(field(fields, 6)),
		StayNights:             fieldcodec.ParseInt(field(fields, 7)),
		FreeNightCount:         fieldcodec.ParseInt(field(fields, 8)),
		WhichNights:            field(fields, 9),
		DiscountType:           field(fields, 10),
		Amount:                 fieldcodec.ParseOptionalAmount(field(fields, 11)),
		Percentage:             fieldcodec.ParseOptionalAmount(field(fields, 12)),
		Weekdays:               decodeWeekdays(fields, 13),
		MinPax:                 fieldcodec.ParseOptionalInt(field(fields, 20)),
		MaxPax:                 fieldcodec.ParseOptionalInt(field(fields, 21)),
		Order:                  fieldcodec.ParseInt(field(fields, 22)),
		Cumulative:             fieldcodec.ParseBool(field(fields, 23)),
		RateCode:               fieldcodec.ParseOptionalString(field(fields, 24)),
	}
}

// DecodeOfferExclusion decodes a CNOE row.
func DecodeOfferExclusion(fields []string) OfferExclusion {
	return OfferExclusion{
		OfferCode:         field(fields, 0),
		ExcludedOfferCode: field(fields, 1),
		Combinable:        fieldcodec.ParseBool(field(fields, 2)),
	}
}

// DecodeMinMaxStay decodes a CNEM row.
func DecodeMinMaxStay(fields []string) MinMaxStay {
	return MinMaxStay{
		InitialDate:    fieldcodec.ParseDate(field(fields, 0)),
		EndDate:        fieldcodec.ParseDate(field(fields, 1)),
		Type:           field(fields, 2),
		RoomType:       fieldcodec.ParseOptionalString(field(fields, 3)),
		Characteristic: fieldcodec.ParseOptionalString(field(fields, 4)),
		Board:          fieldcodec.ParseOptionalString(field(fields, 5)),
		MinNights:      fieldcodec.ParseOptionalInt(field(fields, 6)),
		MaxNights:      fieldcodec.ParseOptionalInt(field(fields, 7)),
		Weekdays:       decodeWeekdays(fields, 8),
		RateCode:       fieldcodec.ParseOptionalString(field(fields, 15)),
		Order:          fieldcodec.ParseInt(field(fields, 16)),
	}
}

// DecodeRateCodeLabel decodes a CNTA row.
func DecodeRateCodeLabel(fields []string) RateCodeLabel {
	return RateCodeLabel{
		RateCode:    field(fields, 0),
		Label:       field(fields, 1),
		PackageRate: fieldcodec.ParseBool(field(fields, 2)),
	}
}

// DecodeCheckInOutRule decodes a CNES row.
func DecodeCheckInOutRule(fields []string) CheckInOutRule {
	return CheckInOutRule{
		InitialDate:    fieldcodec.ParseDate(field(fields, 0)),
		EndDate:        fieldcodec.ParseDate(field(fields, 1)),
		Type:           field(fields, 2),
		RoomType:       fieldcodec.ParseOptionalString(field(fields, 3)),
		Characteristic: fieldcodec.ParseOptionalString(field(fields, 4)),
		Weekdays:       decodeWeekdays(fields, 5),
		MinNights:      fieldcodec.ParseOptionalInt(field(fields, 12)),
		Amount:         fieldcodec.ParseOptionalAmount(field(fields, 13)),
		Percentage:     fieldcodec.ParseOptionalAmount(field(fields, 14)),
	}
}

// DecodeCancellationFee decodes a CNCF row.
func DecodeCancellationFee(fields []string) CancellationFee {
	return CancellationFee{
		InitialDate:    fieldcodec.ParseDate(field(fields, 0)),
		EndDate:        fieldcodec.ParseDate(field(fields, 1)),
		DaysBefore:     fieldcodec.ParseInt(field(fields, 2)),
		HoursBefore:    fieldcodec.ParseInt(field(fields, 3)),
		Amount:         fieldcodec.ParseOptionalAmount(field(fields, 4)),
		Percentage:     fieldcodec.ParseOptionalAmount(field(fields, 5)),
		FirstNightOnly: fieldcodec.ParseBool(field(fields, 6)),
		Application:    field(fields, 7),
		RoomType:       fieldcodec.ParseOptionalString(field(fields, 8)),
		Board:          fieldcodec.ParseOptionalString(field(fields, 9)),
		RateCode:       fieldcodec.ParseOptionalString(field(fields, 10)),
		Order:          fieldcodec.ParseInt(field(fields, 11)),
	}
}
