// Package ble models the GATT attribute table discovered on a BLE
// peripheral: services, characteristics, descriptors, and their UUIDs, with
// bidirectional handle/UUID lookup, a catalog of SIG-assigned UUIDs, and a
// CSV serialization of the whole table.
//
// The package performs no I/O with the device. A transport layer runs
// discovery, assembles Service values, and hands them to NewDB; everything
// here is a synchronous in-memory lookup after that.
package ble
