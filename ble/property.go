package ble

import "strings"

// Property is a characteristic property bitmask.
type Property uint16

// Characteristic property flags (spec 3.3.3.1).
const (
	CharBroadcast   Property = 0x01  // may be broadcasted
	CharRead        Property = 0x02  // may be read
	CharWriteNR     Property = 0x04  // may be written to, with no reply
	CharWrite       Property = 0x08  // may be written to, with a reply
	CharNotify      Property = 0x10  // supports notifications
	CharIndicate    Property = 0x20  // supports indications
	CharSignedWrite Property = 0x40  // supports signed write
	CharExtended    Property = 0x80  // supports extended properties
	CharNotifyEnc   Property = 0x100 // notifications require encryption
	CharIndicateEnc Property = 0x200 // indications require encryption
)

var propNames = []struct {
	p    Property
	name string
}{
	{CharBroadcast, "BROADCAST"},
	{CharRead, "READ"},
	{CharWriteNR, "WRITE_NO_RSP"},
	{CharWrite, "WRITE_YES_RSP"},
	{CharNotify, "NOTIFY"},
	{CharIndicate, "INDICATE"},
	{CharSignedWrite, "AUTH_SIGN_WRITE"},
	{CharExtended, "EXTENDED"},
	{CharNotifyEnc, "NOTIFY_ENCRYPTION_REQ"},
	{CharIndicateEnc, "INDICATE_ENCRYPTION_REQ"},
}

// propMask covers every defined flag; construction discards anything else.
const propMask = CharBroadcast | CharRead | CharWriteNR | CharWrite |
	CharNotify | CharIndicate | CharSignedWrite | CharExtended |
	CharNotifyEnc | CharIndicateEnc

// String renders the flag set in ascending bit order, "READ|NOTIFY" style,
// or "NONE" for an empty mask.
func (p Property) String() string {
	if p == 0 {
		return "NONE"
	}
	var names []string
	for _, pn := range propNames {
		if p&pn.p != 0 {
			names = append(names, pn.name)
		}
	}
	return strings.Join(names, "|")
}
