package ble

import (
	"encoding/hex"
	"encoding/json"
)

// A Descriptor is a leaf entry of the attribute table: metadata attached to
// a characteristic. Value may be updated in place by notification delivery;
// each update must be a single atomic slice replacement.
type Descriptor struct {
	Handle uint16
	UUID   UUID
	Value  []byte
}

// NewDescriptor creates a Descriptor at the given attribute handle.
func NewDescriptor(u UUID, handle uint16, value []byte) *Descriptor {
	return &Descriptor{Handle: handle, UUID: u, Value: value}
}

// String renders the descriptor's fields as an indented JSON object for
// debugging.
func (d *Descriptor) String() string {
	v, err := json.MarshalIndent(struct {
		Handle uint16 `json:"handle"`
		UUID   string `json:"uuid"`
		Value  string `json:"value,omitempty"`
	}{
		Handle: d.Handle,
		UUID:   d.UUID.String(),
		Value:  hex.EncodeToString(d.Value),
	}, "", "    ")
	if err != nil {
		return err.Error()
	}
	return string(v)
}
