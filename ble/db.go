package ble

import "github.com/pkg/errors"

// A DB is the attribute table discovered on a peripheral: every service in
// discovery order, with lookup by UUID or handle across all of them. It is
// assembled once per connection session and read-mostly afterwards; on
// reconnect a new DB is built from scratch.
type DB struct {
	Services []*Service

	// Characteristics presents the table as one flattened characteristic
	// lookup surface across all services.
	Characteristics *CharacteristicView
}

// NewDB creates a DB over a fully discovered service list.
func NewDB(services []*Service) *DB {
	db := &DB{Services: services}
	db.Characteristics = &CharacteristicView{db: db}
	return db
}

// FindService returns the first service whose UUID matches u, or
// ErrNotFound.
func (db *DB) FindService(u UUID) (*Service, error) {
	for _, s := range db.Services {
		if s.UUID.Equal(u) {
			return s, nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "no service with UUID %s", u)
}

// FindServiceWithHandle returns the service whose start handle is h, or
// ErrNotFound.
func (db *DB) FindServiceWithHandle(h uint16) (*Service, error) {
	for _, s := range db.Services {
		if s.StartHandle == h {
			return s, nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "no service at handle 0x%04X", h)
}

// FindCharacteristicWithHandle returns the characteristic whose value handle
// is h, or ErrNotFound.
func (db *DB) FindCharacteristicWithHandle(h uint16) (*Characteristic, error) {
	for _, s := range db.Services {
		for _, c := range s.Characteristics {
			if c.ValueHandle == h {
				return c, nil
			}
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "no characteristic at handle 0x%04X", h)
}

// FindDescriptorWithHandle returns the descriptor at handle h, or
// ErrNotFound.
func (db *DB) FindDescriptorWithHandle(h uint16) (*Descriptor, error) {
	for _, s := range db.Services {
		for _, c := range s.Characteristics {
			for _, d := range c.Descriptors {
				if d.Handle == h {
					return d, nil
				}
			}
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "no descriptor at handle 0x%04X", h)
}

// HandleToUUID returns the UUID of the characteristic whose value handle is
// h. Descriptor handles are not searched.
func (db *DB) HandleToUUID(h uint16) (UUID, error) {
	c, err := db.FindCharacteristicWithHandle(h)
	if err != nil {
		return UUID{}, err
	}
	return c.UUID, nil
}

// UUIDToHandle returns the value handle of the first characteristic whose
// UUID matches u.
func (db *DB) UUIDToHandle(u UUID) (uint16, error) {
	c, err := db.Characteristics.Find(u)
	if err != nil {
		return 0, err
	}
	return c.ValueHandle, nil
}

// A CharacteristicView flattens all services' characteristics into a single
// UUID-keyed lookup surface. It holds no copy of its own: every call scans
// the live service list, so mutations to the underlying services are visible
// immediately. Lookups are linear in table size.
type CharacteristicView struct {
	db *DB
}

// Find returns the first characteristic whose UUID matches u, scanning
// services in discovery order. Duplicate UUIDs across services are not
// disambiguated: first match wins.
func (v *CharacteristicView) Find(u UUID) (*Characteristic, error) {
	for _, s := range v.db.Services {
		for _, c := range s.Characteristics {
			if c.UUID.Equal(u) {
				return c, nil
			}
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "no characteristic with UUID %s", u)
}

// Contains reports whether some characteristic's UUID matches u.
func (v *CharacteristicView) Contains(u UUID) bool {
	_, err := v.Find(u)
	return err == nil
}

// Len returns the characteristic count summed over all services.
func (v *CharacteristicView) Len() int {
	n := 0
	for _, s := range v.db.Services {
		n += len(s.Characteristics)
	}
	return n
}

// Each calls yield for every characteristic, services in discovery order and
// characteristics in each service's order, stopping early when yield returns
// false. Usable with range-over-func.
func (v *CharacteristicView) Each(yield func(*Characteristic) bool) {
	for _, s := range v.db.Services {
		for _, c := range s.Characteristics {
			if !yield(c) {
				return
			}
		}
	}
}
