package ble

import (
	"fmt"

	"github.com/pkg/errors"
)

// A Characteristic is a typed, addressable value within a service. Handle is
// the characteristic declaration's attribute handle; ValueHandle is the
// handle of the value attribute itself, which reads, writes, and
// notifications address. Descriptors keeps discovery order.
type Characteristic struct {
	UUID        UUID
	Properties  Property
	Name        string
	Value       []byte
	Handle      uint16
	ValueHandle uint16
	Descriptors []*Descriptor
}

// NewCharacteristic creates a Characteristic. The property mask is reduced
// to the defined flag set, and an unnamed UUID inherits the
// characteristic's name.
func NewCharacteristic(u UUID, name string, props Property, handle, valueHandle uint16) *Characteristic {
	if u.name == "" {
		u.name = name
	}
	return &Characteristic{
		UUID:        u,
		Properties:  props & propMask,
		Name:        name,
		Handle:      handle,
		ValueHandle: valueHandle,
	}
}

// AddDescriptor adds a descriptor to the characteristic and returns it.
// AddDescriptor panics if the characteristic already contains another
// descriptor with the same UUID.
func (c *Characteristic) AddDescriptor(d *Descriptor) *Descriptor {
	for _, x := range c.Descriptors {
		if x.UUID.Equal(d.UUID) {
			panic("characteristic already contains a descriptor with UUID " + d.UUID.String())
		}
	}
	c.Descriptors = append(c.Descriptors, d)
	return d
}

// FindDescriptor returns the first descriptor whose UUID matches u, or
// ErrNotFound.
func (c *Characteristic) FindDescriptor(u UUID) (*Descriptor, error) {
	for _, d := range c.Descriptors {
		if d.UUID.Equal(u) {
			return d, nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "characteristic %s has no descriptor %s", c.UUID, u)
}

// CCCDHandle returns the handle of the characteristic's Client
// Characteristic Configuration Descriptor (UUID 0x2902), or ErrNotFound if
// the characteristic has none.
func (c *Characteristic) CCCDHandle() (uint16, error) {
	d, err := c.FindDescriptor(UUID16(uint16(ClientCharConfig)))
	if err != nil {
		return 0, errors.Wrapf(ErrNotFound, "characteristic %s has no CCCD", c.UUID)
	}
	return d.Handle, nil
}

// IsReadable mirrors the legacy property check, which tests NOTIFY rather
// than READ.
// TODO: confirm with the profile owners whether this should test CharRead.
func (c *Characteristic) IsReadable() bool {
	return c.Properties&CharNotify != 0
}

// IsWriteableWithResponse reports whether the characteristic may be written
// with a reply.
func (c *Characteristic) IsWriteableWithResponse() bool {
	return c.Properties&CharWrite != 0
}

// IsWriteableWithoutResponse reports whether the characteristic may be
// written with no reply.
func (c *Characteristic) IsWriteableWithoutResponse() bool {
	return c.Properties&CharWriteNR != 0
}

// IsWriteable reports whether either write flag is set.
func (c *Characteristic) IsWriteable() bool {
	return c.IsWriteableWithResponse() || c.IsWriteableWithoutResponse()
}

// IsNotifiable reports whether the characteristic supports notifications.
func (c *Characteristic) IsNotifiable() bool {
	return c.Properties&CharNotify != 0
}

// IsIndicatable reports whether the characteristic supports indications.
func (c *Characteristic) IsIndicatable() bool {
	return c.Properties&CharIndicate != 0
}

func (c *Characteristic) String() string {
	return fmt.Sprintf("UUID %s @ handle 0x%04X: %s", c.UUID, c.ValueHandle, c.Properties)
}
