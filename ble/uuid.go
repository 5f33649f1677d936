package ble

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// A UUID identifies a BLE attribute: a service, characteristic, or
// descriptor. The raw value is a big-endian byte sequence of 2 bytes
// (a SIG-assigned 16-bit UUID) or 16 bytes (a full 128-bit UUID), with an
// optional display name attached for rendering. Equality is defined over
// the raw bytes only; the name never participates in comparison.
type UUID struct {
	b    []byte
	name string
}

// FromUint builds a UUID by encoding v big-endian into exactly width bytes.
// width must be 2 or 16. It returns ErrEncoding when v does not fit.
func FromUint(v uint64, width int, name string) (UUID, error) {
	switch width {
	case 2:
		if v > 0xFFFF {
			return UUID{}, errors.Wrapf(ErrEncoding, "value 0x%X does not fit in 2 bytes", v)
		}
		b := make([]byte, 2)
		binary.BigEndian.PutUint16(b, uint16(v))
		return UUID{b: b, name: name}, nil
	case 16:
		b := make([]byte, 16)
		binary.BigEndian.PutUint64(b[8:], v)
		return UUID{b: b, name: name}, nil
	}
	return UUID{}, errors.Wrapf(ErrEncoding, "UUIDs must have length 2 or 16, got %d", width)
}

// UUID16 converts a SIG-assigned number (such as 0x2902) to a 2-byte UUID.
func UUID16(v uint16) UUID {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return UUID{b: b}
}

// UUID16Named is UUID16 with a display name attached.
func UUID16Named(v uint16, name string) UUID {
	u := UUID16(v)
	u.name = name
	return u
}

// Parse parses a standard-format UUID string, such as "2902" or
// "0000fea6-0000-1000-8000-00805f9b34fb". "-" and ":" separators are
// stripped before decoding. It returns ErrEncoding for invalid hex or a
// decoded length other than 2 or 16 bytes.
func Parse(s string) (UUID, error) {
	b, err := hex.DecodeString(normalize(s))
	if err != nil {
		return UUID{}, errors.Wrapf(ErrEncoding, "invalid UUID string %q", s)
	}
	if err := lenErr(len(b)); err != nil {
		return UUID{}, err
	}
	return UUID{b: b}, nil
}

// MustParse parses a standard-format UUID string, like Parse, but panics in
// case of error.
func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// MustParseNamed parses a standard-format UUID string and attaches a display
// name. It panics in case of error.
func MustParseNamed(s, name string) UUID {
	u := MustParse(s)
	u.name = name
	return u
}

// lenErr returns an error if n is an invalid UUID length.
func lenErr(n int) error {
	switch n {
	case 2, 16:
		return nil
	}
	return errors.Wrapf(ErrEncoding, "UUIDs must have length 2 or 16, got %d", n)
}

// normalize strips ":" and "-" separators.
func normalize(s string) string {
	s = strings.Replace(s, "-", "", -1)
	return strings.Replace(s, ":", "", -1)
}

// Len returns the length of the UUID, in bytes.
// BLE UUIDs are either 2 or 16 bytes.
func (u UUID) Len() int {
	return len(u.b)
}

// Name returns the display name, or "" if none was attached.
func (u UUID) Name() string {
	return u.name
}

// WithName returns a copy of u with the display name set.
func (u UUID) WithName(name string) UUID {
	u.name = name
	return u
}

// Bytes returns a copy of the raw big-endian value.
func (u UUID) Bytes() []byte {
	b := make([]byte, len(u.b))
	copy(b, u.b)
	return b
}

// Uint16 returns the value of a 2-byte UUID. ok is false for any other width.
func (u UUID) Uint16() (v uint16, ok bool) {
	if len(u.b) != 2 {
		return 0, false
	}
	return binary.BigEndian.Uint16(u.b), true
}

// Equal reports whether v holds the same raw value as u.
func (u UUID) Equal(v UUID) bool {
	return bytes.Equal(u.b, v.b)
}

// EqualBytes reports whether b equals u's raw value.
func (u UUID) EqualBytes(b []byte) bool {
	return bytes.Equal(u.b, b)
}

// EqualUint reports whether v equals the big-endian integer value of u's
// bytes. A value that cannot be encoded at u's width never matches; in
// particular, a 128-bit UUID only matches v when its upper 8 bytes are zero.
func (u UUID) EqualUint(v uint64) bool {
	w, err := FromUint(v, len(u.b), "")
	if err != nil {
		return false
	}
	return bytes.Equal(u.b, w.b)
}

// EqualString reports whether s names the same UUID as u, ignoring case and
// "-"/":" separators on both sides.
func (u UUID) EqualString(s string) bool {
	return strings.EqualFold(normalize(u.Canonical()), normalize(s))
}

// Canonical renders the raw value as lower-case hex: 16-byte UUIDs in the
// hyphenated 8-4-4-4-12 form, 2-byte UUIDs as a bare 4-digit string (the
// short form SIG-assigned numbers are written in, e.g. "2902").
func (u UUID) Canonical() string {
	h := hex.EncodeToString(u.b)
	if len(u.b) != 16 {
		return h
	}
	return h[:8] + "-" + h[8:12] + "-" + h[12:16] + "-" + h[16:20] + "-" + h[20:]
}

// String returns the display name if one is set, and the canonical hex form
// otherwise.
func (u UUID) String() string {
	if u.name != "" {
		return u.name
	}
	return u.Canonical()
}

// Contains reports whether u is in the slice s. A nil slice is treated as a
// match-all filter.
func Contains(s []UUID, u UUID) bool {
	if s == nil {
		return true
	}
	for _, a := range s {
		if a.Equal(u) {
			return true
		}
	}
	return false
}
