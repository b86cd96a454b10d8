// =============================================================================
// Hotel Cache Toolkit - File / Folder Name Classifier
// =============================================================================
//
// Bulk cache downloads unpack to DESTINATIONS/<IATA_CODE>/<file>. The file
// name alone says whether the content follows the internal inventory
// convention or the external (third-party supplier) one:
//
//   Internal:  <incomingOffice>_<contractNumber>[_<paymentModel>_<opaque>]
//              e.g. "1_1234_M_F"
//   External:  <destinationIATA>_<hotelCode>_<contractName>
//              e.g. "BCN_1233_ID_B2B_ISHBAR"
//   Legacy external: <supplierID>_<hotelCode>_<internalCode>_<M|N>
//              e.g. "ID_B2B_15_4521_77_M"
//
// ORDERING:
//   The legacy pattern and the destination-prefixed pattern can both begin
//   with letters, so the legacy (fully anchored) pattern is tried first; a
//   legacy file tested against rule 3 would misread its supplier ID as a
//   destination code.
//
// Classification is pure and stateless. A name matching nothing yields
// Unrecognized, never an error - the caller decides whether that is fatal.
//
// =============================================================================

package naming

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// =============================================================================
// RESULT TYPES
// =============================================================================

// Kind discriminates the classification result.
type Kind int

const (
	// Unrecognized means the name matches no known convention.
	Unrecognized Kind = iota

	// Internal means the wholesaler's own negotiated inventory.
	Internal

	// External means inventory resold from a third-party supplier.
	External
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case Internal:
		return "internal"
	case External:
		return "external"
	default:
		return "unrecognized"
	}
}

// InternalName holds the segments of an internal-convention file name.
type InternalName struct {
	IncomingOffice string
	ContractNumber string

	// PaymentModel is "M" (merchant) or "N" (net) when the long form is
	// used, otherwise empty.
	PaymentModel string

	// Opaque is "O" (opaque) or "F" (fully disclosed) when the long form is
	// used, otherwise empty.
	Opaque string
}

// ExternalName holds the segments of an external-convention file name.
type ExternalName struct {
	Destination  string
	HotelCode    string
	ContractName string

	// SupplierID and SupplierName are set when the contract name embeds a
	// known supplier identifier; both empty otherwise.
	SupplierID   string
	SupplierName string
}

// FileNameInfo is the classification result: a closed union over the two
// conventions plus Unrecognized. Exactly the variant named by Kind is
// non-nil.
type FileNameInfo struct {
	Kind     Kind
	Internal *InternalName
	External *ExternalName

	// Destination carries the enclosing destination-folder IATA code when
	// the caller supplied one, regardless of kind.
	Destination string
}

// =============================================================================
// SUPPLIER REGISTRY
// =============================================================================

// defaultSuppliers is the wholesaler's published external-supplier ID table.
// New suppliers ship between releases; config may extend this set but the
// built-ins are never removed.
var defaultSuppliers = map[string]string{
	"ID_B2B_15": "RoomCloud",
	"ID_B2B_19": "Hotelgate",
	"ID_B2B_20": "Travco",
	"ID_B2B_21": "Bonotel",
	"ID_B2B_24": "DerbyRooms",
	"ID_B2B_26": "Methabook",
}

var (
	internalSegment = regexp.MustCompile(`^[0-9]+$`)
	destinationCode = regexp.MustCompile(`^[A-Z]{2,4}$`)
)

// Classifier classifies cache file names against a supplier registry.
type Classifier struct {
	suppliers map[string]string

	// supplierIDs is the registry's keys longest-first, so scanning a
	// contract name matches "ID_B2B_15" before any shorter overlapping key
	// a config extension might add.
	supplierIDs []string

	legacyPattern *regexp.Regexp
}

// NewClassifier returns a classifier over the built-in supplier table.
func NewClassifier() *Classifier {
	return NewClassifierWithSuppliers(nil)
}

// NewClassifierWithSuppliers returns a classifier over the built-in table
// extended by extra (ID -> display name). Extensions never shadow built-ins.
func NewClassifierWithSuppliers(extra map[string]string) *Classifier {
	suppliers := make(map[string]string, len(defaultSuppliers)+len(extra))
	for id, name := range extra {
		suppliers[id] = name
	}
	for id, name := range defaultSuppliers {
		suppliers[id] = name
	}

	ids := make([]string, 0, len(suppliers))
	for id := range suppliers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if len(ids[i]) != len(ids[j]) {
			return len(ids[i]) > len(ids[j])
		}
		return ids[i] < ids[j]
	})

	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = regexp.QuoteMeta(id)
	}
	legacy := regexp.MustCompile(`^(` + strings.Join(quoted, "|") + `)_([0-9]+)_([0-9]+)_([MN])$`)

	return &Classifier{
		suppliers:     suppliers,
		supplierIDs:   ids,
		legacyPattern: legacy,
	}
}

// =============================================================================
// CLASSIFICATION
// =============================================================================

// Classify determines the naming convention of one bare cache file name.
// destinationFolder is the enclosing folder's IATA code, or "" when the
// caller has no folder context. The extension, if any, is stripped before
// matching.
func (c *Classifier) Classify(fileName, destinationFolder string) FileNameInfo {
	name := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	// 1. Legacy external: fully anchored supplier-ID prefix form.
	if m := c.legacyPattern.FindStringSubmatch(name); m != nil {
		return FileNameInfo{
			Kind: External,
			External: &ExternalName{
				Destination:  destinationFolder,
				HotelCode:    m[2],
				ContractName: name,
				SupplierID:   m[1],
				SupplierName: c.suppliers[m[1]],
			},
			Destination: destinationFolder,
		}
	}

	segments := strings.Split(name, "_")

	// 2. Internal: first two segments entirely numeric.
	if len(segments) >= 2 &&
		internalSegment.MatchString(segments[0]) &&
		internalSegment.MatchString(segments[1]) {
		info := &InternalName{
			IncomingOffice: segments[0],
			ContractNumber: segments[1],
		}
		// The long form adds both trailing segments together or not at all.
		if len(segments) >= 3 && (segments[2] == "M" || segments[2] == "N") {
			info.PaymentModel = segments[2]
			if len(segments) >= 4 && (segments[3] == "O" || segments[3] == "F") {
				info.Opaque = segments[3]
			}
		}
		return FileNameInfo{Kind: Internal, Internal: info, Destination: destinationFolder}
	}

	// 3. External: destination-prefixed form.
	if len(segments) >= 3 &&
		destinationCode.MatchString(segments[0]) &&
		internalSegment.MatchString(segments[1]) {
		contractName := strings.Join(segments[2:], "_")
		ext := &ExternalName{
			Destination:  segments[0],
			HotelCode:    segments[1],
			ContractName: contractName,
		}
		if id := c.findSupplierID(contractName); id != "" {
			ext.SupplierID = id
			ext.SupplierName = c.suppliers[id]
		}
		return FileNameInfo{Kind: External, External: ext, Destination: destinationFolder}
	}

	// 4. Nothing matched.
	return FileNameInfo{Kind: Unrecognized, Destination: destinationFolder}
}

// findSupplierID scans a contract name for any known supplier ID substring.
func (c *Classifier) findSupplierID(contractName string) string {
	for _, id := range c.supplierIDs {
		if strings.Contains(contractName, id) {
			return id
		}
	}
	return ""
}

// Classify is the package-level shorthand over the built-in supplier table.
func Classify(fileName, destinationFolder string) FileNameInfo {
	return NewClassifier().Classify(fileName, destinationFolder)
}
