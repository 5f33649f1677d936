package ble

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestPropertyString(t *testing.T) {
	cases := []struct {
		p    Property
		want string
	}{
		{0, "NONE"},
		{CharRead, "READ"},
		{CharRead | CharNotify, "READ|NOTIFY"},
		{CharNotify | CharRead, "READ|NOTIFY"},
		{CharWriteNR | CharWrite, "WRITE_NO_RSP|WRITE_YES_RSP"},
		{CharIndicateEnc, "INDICATE_ENCRYPTION_REQ"},
		{propMask, "BROADCAST|READ|WRITE_NO_RSP|WRITE_YES_RSP|NOTIFY|INDICATE|AUTH_SIGN_WRITE|EXTENDED|NOTIFY_ENCRYPTION_REQ|INDICATE_ENCRYPTION_REQ"},
	}

	for _, tt := range cases {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Property(0x%X).String(): got %q, want %q", uint16(tt.p), got, tt.want)
		}
	}
}

func TestPropertyNormalization(t *testing.T) {
	c := NewCharacteristic(UUID16(0x2a19), "Battery Level", Property(0xFC00)|CharRead, 0x0011, 0x0012)
	if c.Properties != CharRead {
		t.Errorf("unknown property bits survived construction: 0x%X", uint16(c.Properties))
	}
}

func TestFlagTests(t *testing.T) {
	cases := []struct {
		p                            Property
		writeable, notify, indicate bool
	}{
		{CharWrite, true, false, false},
		{CharWriteNR, true, false, false},
		{CharWrite | CharWriteNR, true, false, false},
		{CharNotify, false, true, false},
		{CharIndicate, false, false, true},
		{CharRead, false, false, false},
		{0, false, false, false},
	}

	for _, tt := range cases {
		c := NewCharacteristic(UUID16(0x2a19), "", tt.p, 1, 2)
		if got := c.IsWriteable(); got != tt.writeable {
			t.Errorf("props %s: IsWriteable() = %v, want %v", tt.p, got, tt.writeable)
		}
		if got := c.IsNotifiable(); got != tt.notify {
			t.Errorf("props %s: IsNotifiable() = %v, want %v", tt.p, got, tt.notify)
		}
		if got := c.IsIndicatable(); got != tt.indicate {
			t.Errorf("props %s: IsIndicatable() = %v, want %v", tt.p, got, tt.indicate)
		}
	}
}

// IsReadable intentionally follows the NOTIFY flag, not READ.
func TestIsReadableLegacyBehavior(t *testing.T) {
	readOnly := NewCharacteristic(UUID16(0x2a19), "", CharRead, 1, 2)
	if readOnly.IsReadable() {
		t.Error("READ-only characteristic reported readable; legacy check follows NOTIFY")
	}
	notifyOnly := NewCharacteristic(UUID16(0x2a19), "", CharNotify, 1, 2)
	if !notifyOnly.IsReadable() {
		t.Error("NOTIFY-only characteristic should report readable under the legacy check")
	}
	if notifyOnly.IsWriteable() {
		t.Error("NOTIFY-only characteristic must not report writeable")
	}
}

func TestNamePropagation(t *testing.T) {
	c := NewCharacteristic(UUID16(0x2a19), "Battery Level", CharRead, 1, 2)
	if got := c.UUID.Name(); got != "Battery Level" {
		t.Errorf("unnamed UUID should inherit the characteristic name, got %q", got)
	}

	named := UUID16Named(0x2a19, "Battery Level")
	c = NewCharacteristic(named, "Custom", CharRead, 1, 2)
	if got := c.UUID.Name(); got != "Battery Level" {
		t.Errorf("named UUID must keep its own name, got %q", got)
	}

	s := NewService(UUID16(0x180f), "Battery Service", 0x0010)
	if got := s.UUID.Name(); got != "Battery Service" {
		t.Errorf("unnamed service UUID should inherit the service name, got %q", got)
	}
	if s.EndHandle != MaxHandle {
		t.Errorf("EndHandle should default to 0xFFFF, got 0x%04X", s.EndHandle)
	}
}

func TestCCCDHandle(t *testing.T) {
	c := NewCharacteristic(UUID16(0x2a19), "Battery Level", CharRead|CharNotify, 0x0011, 0x0012)

	if _, err := c.CCCDHandle(); errors.Cause(err) != ErrNotFound {
		t.Errorf("CCCDHandle without CCCD: got err %v, want ErrNotFound", err)
	}

	c.AddDescriptor(NewDescriptor(UUID16(0x2902), 0x0013, []byte{0x01, 0x00}))
	h, err := c.CCCDHandle()
	if err != nil {
		t.Fatalf("CCCDHandle: %v", err)
	}
	if h != 0x0013 {
		t.Errorf("CCCDHandle: got 0x%04X, want 0x0013", h)
	}
}

func TestAddDescriptorDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding a duplicate descriptor UUID should panic")
		}
	}()
	c := NewCharacteristic(UUID16(0x2a19), "", CharNotify, 1, 2)
	c.AddDescriptor(NewDescriptor(UUID16(0x2902), 3, nil))
	c.AddDescriptor(NewDescriptor(UUID16(0x2902), 4, nil))
}

func TestCharacteristicString(t *testing.T) {
	c := NewCharacteristic(UUID16(0x2a19), "Battery Level", CharRead|CharNotify, 0x0011, 0x0012)
	want := "UUID Battery Level @ handle 0x0012: READ|NOTIFY"
	if got := c.String(); got != want {
		t.Errorf("String(): got %q, want %q", got, want)
	}
}

func TestDescriptorString(t *testing.T) {
	d := NewDescriptor(UUID16Named(0x2902, "CCCD"), 0x0013, []byte{0x01, 0x00})
	s := d.String()
	for _, frag := range []string{`"handle": 19`, `"uuid": "CCCD"`, `"value": "0100"`} {
		if !strings.Contains(s, frag) {
			t.Errorf("Descriptor.String() missing %q in:\n%s", frag, s)
		}
	}
}
