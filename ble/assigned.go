package ble

import "github.com/pkg/errors"

// SIG-assigned UUIDs that are common across all applications, with their
// spec names attached.
var (
	// Generic Attribute Service
	GenericAttributeUUID = MustParseNamed("00001801-0000-1000-8000-00805f9b34fb", "Generic Attribute Service")

	// Generic Access Service
	GenericAccessUUID  = MustParseNamed("00001800-0000-1000-8000-00805f9b34fb", "Generic Access Service")
	DeviceNameUUID     = MustParseNamed("00002a00-0000-1000-8000-00805f9b34fb", "Device Name")
	AppearanceUUID     = MustParseNamed("00002a01-0000-1000-8000-00805f9b34fb", "Appearance")
	PrefConnParamsUUID = MustParseNamed("00002a04-0000-1000-8000-00805f9b34fb", "Peripheral Preferred Connection Parameters")
	CentralAddrResUUID = MustParseNamed("00002aa6-0000-1000-8000-00805f9b34fb", "Central Address Resolution")

	// Tx Power Service
	TxPowerUUID      = MustParseNamed("00001804-0000-1000-8000-00805f9b34fb", "Tx Power Service")
	TxPowerLevelUUID = MustParseNamed("00002a07-0000-1000-8000-00805f9b34fb", "Tx Power Level")

	// Battery Service
	BatteryUUID      = MustParseNamed("0000180f-0000-1000-8000-00805f9b34fb", "Battery Service")
	BatteryLevelUUID = MustParseNamed("00002a19-0000-1000-8000-00805f9b34fb", "Battery Level")

	// Device Information Service
	DeviceInfoUUID        = MustParseNamed("0000180a-0000-1000-8000-00805f9b34fb", "Device Information Service")
	ManufacturerNameUUID  = MustParseNamed("00002a29-0000-1000-8000-00805f9b34fb", "Manufacturer Name")
	ModelNumberUUID       = MustParseNamed("00002a24-0000-1000-8000-00805f9b34fb", "Model Number")
	SerialNumberUUID      = MustParseNamed("00002a25-0000-1000-8000-00805f9b34fb", "Serial Number")
	FirmwareRevisionUUID  = MustParseNamed("00002a26-0000-1000-8000-00805f9b34fb", "Firmware Revision")
	HardwareRevisionUUID  = MustParseNamed("00002a27-0000-1000-8000-00805f9b34fb", "Hardware Revision")
	SoftwareRevisionUUID  = MustParseNamed("00002a28-0000-1000-8000-00805f9b34fb", "Software Revision")
	SystemIDUUID          = MustParseNamed("00002a23-0000-1000-8000-00805f9b34fb", "System ID")
	CertificationDataUUID = MustParseNamed("00002a2a-0000-1000-8000-00805f9b34fb", "Certification Data")
	PnPIDUUID             = MustParseNamed("00002a50-0000-1000-8000-00805f9b34fb", "PNP ID")
)

// assigned lists the catalog in declaration order; iteration and lookup
// follow it.
var assigned = []UUID{
	GenericAttributeUUID,
	GenericAccessUUID,
	DeviceNameUUID,
	AppearanceUUID,
	PrefConnParamsUUID,
	CentralAddrResUUID,
	TxPowerUUID,
	TxPowerLevelUUID,
	BatteryUUID,
	BatteryLevelUUID,
	DeviceInfoUUID,
	ManufacturerNameUUID,
	ModelNumberUUID,
	SerialNumberUUID,
	FirmwareRevisionUUID,
	HardwareRevisionUUID,
	SoftwareRevisionUUID,
	SystemIDUUID,
	CertificationDataUUID,
	PnPIDUUID,
}

// LookupName returns the spec name of an assigned UUID, or ErrNotFound.
func LookupName(u UUID) (string, error) {
	for _, a := range assigned {
		if a.Equal(u) {
			return a.Name(), nil
		}
	}
	return "", errors.Wrapf(ErrNotFound, "%s is not an assigned UUID", u.Canonical())
}

// IsAssigned reports whether u is in the assigned catalog.
func IsAssigned(u UUID) bool {
	_, err := LookupName(u)
	return err == nil
}

// Assigned yields every (UUID, name) pair of the catalog in declaration
// order. Usable with range-over-func; restartable.
func Assigned(yield func(UUID, string) bool) {
	for _, a := range assigned {
		if !yield(a, a.Name()) {
			return
		}
	}
}
