package ble

// MaxHandle is the upper bound of the 16-bit attribute handle space. A
// service whose true end handle is not yet known uses it as an open upper
// bound.
const MaxHandle uint16 = 0xFFFF

// A Service is a grouping of characteristics bounded by a handle range.
// Characteristics keeps discovery order.
type Service struct {
	UUID            UUID
	Name            string
	StartHandle     uint16
	EndHandle       uint16
	Characteristics []*Characteristic
}

// NewService creates a Service starting at the given attribute handle, with
// EndHandle left open at MaxHandle. An unnamed UUID inherits the service's
// name.
func NewService(u UUID, name string, startHandle uint16) *Service {
	if u.name == "" {
		u.name = name
	}
	return &Service{
		UUID:        u,
		Name:        name,
		StartHandle: startHandle,
		EndHandle:   MaxHandle,
	}
}

// AddCharacteristic adds a characteristic to the service and returns it.
// AddCharacteristic panics if the service already contains another
// characteristic with the same UUID. Duplicate UUIDs across distinct
// services remain legal; table-wide lookups resolve them first-match-wins.
func (s *Service) AddCharacteristic(c *Characteristic) *Characteristic {
	for _, x := range s.Characteristics {
		if x.UUID.Equal(c.UUID) {
			panic("service already contains a characteristic with UUID " + c.UUID.String())
		}
	}
	s.Characteristics = append(s.Characteristics, c)
	return c
}
