// =============================================================================
// Hotel Cache Toolkit - Record Types
// =============================================================================
//
// This package defines one named structure per record shape in the
// wholesaler's cache format, plus the positional decoders that produce them
// (decoders.go, decoders_external.go).
//
// WIRE FORMAT:
//   The format carries no field names. A row is an ordered list of
//   pipe-separated values, and the position of a value is its sole identity.
//   Every struct below documents its tag and the index of each field; the
//   decoders read exactly those indices. Schemas differ per tag in field
//   count, optionality, and enumerated value sets, so each tag gets its own
//   hard-coded decoder rather than a generic reflection scheme - the fixed
//   field order stays auditable and testable in isolation.
//
// OPTIONALITY:
//   Mandatory numeric fields decode to 0 on failure; optional fields are
//   pointers and decode to nil when the position is blank or missing. Rows
//   may legally end early - trailing positions read as absent.
//
// =============================================================================

package records

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// INTERNAL FORMAT RECORDS
// =============================================================================

// ContractHeader is the CCON record (34 fields), one per contract file. It
// carries the identity and global pricing switches for every other section
// in the same file.
//
//	 0 ExternalInventory   Y/N  inventory resold from a third-party supplier
//	 1 Destination              IATA-style destination code
//	 2 Office                   incoming office number
//	 3 ContractNumber           contract number within the office
//	 4 ContractName
//	 5 CompanyCode
//	 6 ServiceType
//	 7 Currency
//	 8 InitialDate          YYYYMMDD
//	 9 EndDate              YYYYMMDD
//	10 SellingPriceType
//	11 TotalPricePerStay    Y/N  prices cover the whole stay, not per night
//	12 Classification
//	13 PaymentModel         M (merchant) or N (net)
//	14 Opaque               Y/N
//	15 HotelCode
//	16 GiataHotelCode       optional
//	17 HotelName            optional
//	18 Category             optional
//	19 MaximumRooms
//	20 ReleaseDays
//	21 MinChildAge
//	22 MaxChildAge
//	23 DailyPrice           Y/N
//	24 UpdateDate           YYYYMMDD, optional
//	25 UpdateTime           optional
//	26 BaseBoard
//	27 BaseBoardDescription optional
//	28 ContractType
//	29 MarketCompatible     Y/N
//	30 Fictitious           Y/N
//	31 Version
//	32 OnRequest            Y/N
//	33 ReleasePerHours
type ContractHeader struct {
	ExternalInventory    bool
	Destination          string
	Office               int
	ContractNumber       int
	ContractName         string
	CompanyCode          string
	ServiceType          string
	Currency             string
	InitialDate          *time.Time
	EndDate              *time.Time
	SellingPriceType     string
	TotalPricePerStay    bool
	Classification       string
	PaymentModel         string
	Opaque               bool
	HotelCode            int
	GiataHotelCode       *int
	HotelName            *string
	Category             *string
	MaximumRooms         int
	ReleaseDays          int
	MinChildAge          int
	MaxChildAge          int
	DailyPrice           bool
	UpdateDate           *time.Time
	UpdateTime           *string
	BaseBoard            string
	BaseBoardDescription *string
	ContractType         string
	MarketCompatible     bool
	Fictitious           bool
	Version              int
	OnRequest            bool
	ReleasePerHours      int
}

// RoomType is the CNHA record (10 fields): one contracted room type with its
// occupancy envelope.
//
//	0 RoomType  1 Characteristic  2 StandardCapacity  3 MinPax  4 MaxPax
//	5 MaxAdults  6 MaxChildren  7 MinAdults  8 Description(opt)
//	9 CountsAsDouble Y/N
type RoomType struct {
	RoomType         string
	Characteristic   string
	StandardCapacity int
	MinPax           int
	MaxPax           int
	MaxAdults        int
	MaxChildren      int
	MinAdults        int
	Description      *string
	CountsAsDouble   bool
}

// NoHotelText is the CNNH record (2 fields): free text distributed for
// destinations that have no contracted hotel.
//
//	0 Sequence  1 Text
type NoHotelText struct {
	Sequence int
	Text     string
}

// Promotion is the CNPR record (7 fields).
//
//	0 InitialDate  1 EndDate  2 Code  3 Name(opt)  4 Description(opt)
//	5 MultilingualCode(opt)  6 LoggedUsersOnly Y/N
type Promotion struct {
	InitialDate      *time.Time
	EndDate          *time.Time
	Code             string
	Name             *string
	Description      *string
	MultilingualCode *string
	LoggedUsersOnly  bool
}

// HandlingFee is the CNHF record (13 fields). Type is one of C (fixed
// charge), P (percentage), D (per-day charge).
//
//	0 InitialDate  1 EndDate  2 Type C/P/D  3 Amount  4 Percentage(opt)
//	5 PerPax Y/N  6 Board  7 RoomType  8 Characteristic  9 MinAge(opt)
//	10 MaxAge(opt)  11 Order  12 Application
type HandlingFee struct {
	InitialDate    *time.Time
	EndDate        *time.Time
	Type           string
	Amount         decimal.Decimal
	Percentage     *decimal.Decimal
	PerPax         bool
	Board          string
	RoomType       string
	Characteristic string
	MinAge         *int
	MaxAge         *int
	Order          int
	Application    string
}

// TaxBreakdown is the ATAX record (17 fields): one tax line applicable to a
// date window, optionally scoped to a board or room type.
//
//	0 InitialDate  1 EndDate  2 Code  3 Description(opt)  4 Included Y/N
//	5 Percentage(opt)  6 Amount(opt)  7 Currency(opt)  8 PerNight Y/N
//	9 PerPax Y/N  10 MaxNights(opt)  11 MinAge(opt)  12 MaxAge(opt)
//	13 Board(opt)  14 RoomType(opt)  15 Type  16 Order
type TaxBreakdown struct {
	InitialDate *time.Time
	EndDate     *time.Time
	Code        string
	Description *string
	Included    bool
	Percentage  *decimal.Decimal
	Amount      *decimal.Decimal
	Currency    *string
	PerNight    bool
	PerPax      bool
	MaxNights   *int
	MinAge      *int
	MaxAge      *int
	Board       *string
	RoomType    *string
	Type        string
	Order       int
}

// ValidMarket is the CNCL record (2 fields): whether a source market may
// sell this contract.
//
//	0 MarketCode  1 Included Y/N
type ValidMarket struct {
	MarketCode string
	Included   bool
}

// Inventory is the CNIN record (7 fields): allotment for a room type over a
// date window.
//
//	0 InitialDate  1 EndDate  2 RoomType  3 Characteristic  4 Allotment
//	5 Release  6 OnRequest Y/N
type Inventory struct {
	InitialDate    *time.Time
	EndDate        *time.Time
	RoomType       string
	Characteristic string
	Allotment      int
	Release        int
	OnRequest      bool
}

// Price is the CNCT record (12 fields): the net price of a room/board
// combination for a date window and a length-of-stay bucket.
//
//	0 InitialDate  1 EndDate  2 RoomType  3 Characteristic  4 Board
//	5 LengthOfStay  6 NetPrice  7 SellPrice(opt)  8 PerPax Y/N
//	9 MinPax(opt)  10 MaxPax(opt)  11 RateCode(opt)
type Price struct {
	InitialDate    *time.Time
	EndDate        *time.Time
	RoomType       string
	Characteristic string
	Board          string
	LengthOfStay   int
	NetPrice       decimal.Decimal
	SellPrice      *decimal.Decimal
	PerPax         bool
	MinPax         *int
	MaxPax         *int
	RateCode       *string
}

// BoardSupplement is the CNSR record (22 fields): the price delta for taking
// a board other than the contract's base board.
//
//	0 InitialDate  1 EndDate  2 Board  3 RoomType(opt)  4 Characteristic(opt)
//	5 Amount  6 Percentage(opt)  7 PerPax Y/N  8 MinAge(opt)  9 MaxAge(opt)
//	10 Order  11 Included Y/N  12 ApplicationBoard(opt)
//	13..19 Monday..Sunday Y/N  20 MinLengthOfStay(opt)  21 MaxLengthOfStay(opt)
type BoardSupplement struct {
	InitialDate      *time.Time
	EndDate          *time.Time
	Board            string
	RoomType         *string
	Characteristic   *string
	Amount           decimal.Decimal
	Percentage       *decimal.Decimal
	PerPax           bool
	MinAge           *int
	MaxAge           *int
	Order            int
	Included         bool
	ApplicationBoard *string
	Weekdays         Weekdays
	MinLengthOfStay  *int
	MaxLengthOfStay  *int
}

// SupplementType enumerates the single-letter CNSU type codes. The wire
// format defines fifteen of them.
const SupplementTypeCodes = "ABCDEFGHJKLMNPS"

// Supplement is the CNSU record (34 fields): a dated supplement or discount
// rule. Positive amounts are supplements, negative amounts discounts.
//
//	0 Type (one of SupplementTypeCodes)  1 InitialDate  2 EndDate
//	3 ApplicationInitialDate(opt)  4 ApplicationEndDate(opt)  5 RoomType(opt)
//	6 Characteristic(opt)  7 Board(opt)  8 Amount(opt)  9 Percentage(opt)
//	10 PerPax Y/N  11 PerNight Y/N  12 Opaque Y/N  13 MinDays(opt)
//	14 MaxDays(opt)  15 MinPax(opt)  16 MaxPax(opt)  17 MinAge(opt)
//	18 MaxAge(opt)  19..25 Monday..Sunday Y/N  26 Order  27 Included Y/N
//	28 Cumulative Y/N  29 Description(opt)  30 PromotionCode(opt)
//	31 RateCode(opt)  32 Currency(opt)  33 LimitDate(opt)
type Supplement struct {
	Type                   string
	InitialDate            *time.Time
	EndDate                *time.Time
	ApplicationInitialDate *time.Time
	ApplicationEndDate     *time.Time
	RoomType               *string
	Characteristic         *string
	Board                  *string
	Amount                 *decimal.Decimal
	Percentage             *decimal.Decimal
	PerPax                 bool
	PerNight               bool
	Opaque                 bool
	MinDays                *int
	MaxDays                *int
	MinPax                 *int
	MaxPax                 *int
	MinAge                 *int
	MaxAge                 *int
	Weekdays               Weekdays
	Order                  int
	Included               bool
	Cumulative             bool
	Description            *string
	PromotionCode          *string
	RateCode               *string
	Currency               *string
	LimitDate              *time.Time
}

// StopSales is the CNPV record (6 fields): a sales blackout over a date
// window, optionally scoped to room/board.
//
//	0 InitialDate  1 EndDate  2 RoomType(opt)  3 Characteristic(opt)
//	4 Board(opt)  5 Active Y/N
type StopSales struct {
	InitialDate    *time.Time
	EndDate        *time.Time
	RoomType       *string
	Characteristic *string
	Board          *string
	Active         bool
}

// FreeNights is the CNGR record (25 fields): stay N nights, pay for fewer.
//
//	0 InitialDate  1 EndDate  2 ApplicationInitialDate(opt)
//	3 ApplicationEndDate(opt)  4 RoomType(opt)  5 Characteristic(opt)
//	6 Board(opt)  7 StayNights  8 FreeNightCount  9 WhichNights (F first /
//	L last)  10 DiscountType  11 Amount(opt)  12 Percentage(opt)
//	13..19 Monday..Sunday Y/N  20 MinPax(opt)  21 MaxPax(opt)  22 Order
//	23 Cumulative Y/N  24 RateCode(opt)
type FreeNights struct {
	InitialDate            *time.Time
	EndDate                *time.Time
	ApplicationInitialDate *time.Time
	ApplicationEndDate     *time.Time
	RoomType               *string
	Characteristic         *string
	Board                  *string
	StayNights             int
	FreeNightCount         int
	WhichNights            string
	DiscountType           string
	Amount                 *decimal.Decimal
	Percentage             *decimal.Decimal
	Weekdays               Weekdays
	MinPax                 *int
	MaxPax                 *int
	Order                  int
	Cumulative             bool
	RateCode               *string
}

// OfferExclusion is the CNOE record (3 fields): whether two offers may be
// combined on one booking.
//
//	0 OfferCode  1 ExcludedOfferCode  2 Combinable Y/N
type OfferExclusion struct {
	OfferCode         string
	ExcludedOfferCode string
	Combinable        bool
}

// MinMaxStay is the CNEM record (17 fields): stay length bounds for a date
// window.
//
//	0 InitialDate  1 EndDate  2 Type  3 RoomType(opt)  4 Characteristic(opt)
//	5 Board(opt)  6 MinNights(opt)  7 MaxNights(opt)
//	8..14 Monday..Sunday Y/N  15 RateCode(opt)  16 Order
type MinMaxStay struct {
	InitialDate    *time.Time
	EndDate        *time.Time
	Type           string
	RoomType       *string
	Characteristic *string
	Board          *string
	MinNights      *int
	MaxNights      *int
	Weekdays       Weekdays
	RateCode       *string
	Order          int
}

// RateCodeLabel is the CNTA record (3 fields): display label for a rate
// code.
//
//	0 RateCode  1 Label  2 PackageRate Y/N
type RateCodeLabel struct {
	RateCode    string
	Label       string
	PackageRate bool
}

// CheckInOutRule is the CNES record (15 fields): arrival/departure
// restrictions and fees.
//
//	0 InitialDate  1 EndDate  2 Type (E entry / S exit)  3 RoomType(opt)
//	4 Characteristic(opt)  5..11 Monday..Sunday Y/N  12 MinNights(opt)
//	13 Amount(opt)  14 Percentage(opt)
type CheckInOutRule struct {
	InitialDate    *time.Time
	EndDate        *time.Time
	Type           string
	RoomType       *string
	Characteristic *string
	Weekdays       Weekdays
	MinNights      *int
	Amount         *decimal.Decimal
	Percentage     *decimal.Decimal
}

// CancellationFee is the CNCF record (12 fields): the charge applied when a
// booking is cancelled inside the release window.
//
//	0 InitialDate  1 EndDate  2 DaysBefore  3 HoursBefore  4 Amount(opt)
//	5 Percentage(opt)  6 FirstNightOnly Y/N  7 Application  8 RoomType(opt)
//	9 Board(opt)  10 RateCode(opt)  11 Order
type CancellationFee struct {
	InitialDate    *time.Time
	EndDate        *time.Time
	DaysBefore     int
	HoursBefore    int
	Amount         *decimal.Decimal
	Percentage     *decimal.Decimal
	FirstNightOnly bool
	Application    string
	RoomType       *string
	Board          *string
	RateCode       *string
	Order          int
}

// Weekdays is the common 7-flag block many rules carry, Monday first, as the
// wire format orders it.
type Weekdays struct {
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool
}

// =============================================================================
// EXTERNAL-SUPPLIER FORMAT RECORDS
// =============================================================================

// SupplierAvailability is the SIAP record (13 fields): one day of priced
// availability from an external supplier. External files are per-day rather
// than per-window.
//
//	0 Date  1 RoomType  2 Board  3 AvailableRooms  4 Price  5 Currency
//	6 LengthOfStay  7 PerPax Y/N  8 RateCode(opt)  9 Release
//	10 StopSales Y/N  11 OnRequest Y/N  12 Opaque Y/N
type SupplierAvailability struct {
	Date           *time.Time
	RoomType       string
	Board          string
	AvailableRooms int
	Price          decimal.Decimal
	Currency       string
	LengthOfStay   int
	PerPax         bool
	RateCode       *string
	Release        int
	StopSales      bool
	OnRequest      bool
	Opaque         bool
}

// SupplierInventory is the SIIN record (9 fields).
//
//	0 InitialDate  1 EndDate  2 RoomType  3 Board(opt)  4 Allotment
//	5 Release  6 StopSales Y/N  7 OnRequest Y/N  8 RateCode(opt)
type SupplierInventory struct {
	InitialDate *time.Time
	EndDate     *time.Time
	RoomType    string
	Board       *string
	Allotment   int
	Release     int
	StopSales   bool
	OnRequest   bool
	RateCode    *string
}

// SupplierMinMaxStay is the SIEM record (8 fields).
//
//	0 InitialDate  1 EndDate  2 RoomType(opt)  3 Board(opt)  4 MinNights(opt)
//	5 MaxNights(opt)  6 RateCode(opt)  7 ClosedToArrival Y/N
type SupplierMinMaxStay struct {
	InitialDate     *time.Time
	EndDate         *time.Time
	RoomType        *string
	Board           *string
	MinNights       *int
	MaxNights       *int
	RateCode        *string
	ClosedToArrival bool
}

// SupplierCancellationFee is the SICF record (7 fields).
//
//	0 InitialDate  1 EndDate  2 DaysBefore  3 Amount(opt)  4 Percentage(opt)
//	5 Currency(opt)  6 RateCode(opt)
type SupplierCancellationFee struct {
	InitialDate *time.Time
	EndDate     *time.Time
	DaysBefore  int
	Amount      *decimal.Decimal
	Percentage  *decimal.Decimal
	Currency    *string
	RateCode    *string
}
