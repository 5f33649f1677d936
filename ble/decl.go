package ble

import "github.com/pkg/errors"

// DeclarationNumber is a GATT profile attribute type, one of the 16-bit
// UUID numbers the spec assigns to declarations and descriptors
// [Vol 3, Part G, 3].
type DeclarationNumber uint16

// Spec-defined declaration and descriptor UUID numbers.
const (
	PrimaryService      DeclarationNumber = 0x2800
	SecondaryService    DeclarationNumber = 0x2801
	Include             DeclarationNumber = 0x2802
	CharDeclaration     DeclarationNumber = 0x2803
	CharExtendedProps   DeclarationNumber = 0x2900
	CharUserDescr       DeclarationNumber = 0x2901
	ClientCharConfig    DeclarationNumber = 0x2902
	ServerCharConfig    DeclarationNumber = 0x2903
	CharFormat          DeclarationNumber = 0x2904
	CharAggregateFormat DeclarationNumber = 0x2905
)

var declNames = []struct {
	n    DeclarationNumber
	name string
}{
	{PrimaryService, "PRIMARY_SERVICE"},
	{SecondaryService, "SECONDARY_SERVICE"},
	{Include, "INCLUDE"},
	{CharDeclaration, "CHAR_DECLARATION"},
	{CharExtendedProps, "CHAR_EXTENDED_PROPS"},
	{CharUserDescr, "CHAR_USER_DESCR"},
	{ClientCharConfig, "CLIENT_CHAR_CONFIG"},
	{ServerCharConfig, "SERVER_CHAR_CONFIG"},
	{CharFormat, "CHAR_FORMAT"},
	{CharAggregateFormat, "CHAR_AGGREGATE_FORMAT"},
}

// Name returns the upper-snake name of the declaration number, or "" if n is
// not a recognized spec number.
func (n DeclarationNumber) Name() string {
	for _, dn := range declNames {
		if dn.n == n {
			return dn.name
		}
	}
	return ""
}

// DeclarationName resolves a UUID's numeric value against the enumerated
// spec numbers. It returns ErrNotFound when the UUID is not one of them;
// a 128-bit UUID never matches, since its integer value exceeds any
// assigned number.
func DeclarationName(u UUID) (string, error) {
	for _, dn := range declNames {
		if u.EqualUint(uint64(dn.n)) {
			return dn.name, nil
		}
	}
	return "", errors.Wrapf(ErrNotFound, "%s is not a spec-defined declaration UUID", u.Canonical())
}
