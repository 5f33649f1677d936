package ble

import "errors"

// ErrNotFound is returned when a handle, UUID, or descriptor lookup misses.
// Callers should test with errors.Is (or errors.Cause from pkg/errors);
// returned errors carry additional context about the failed lookup.
var ErrNotFound = errors.New("not found")

// ErrEncoding is returned when a UUID cannot be built from the given
// representation: the integer overflows the requested width, the string is
// not valid hex, or the decoded length is not 2 or 16 bytes.
var ErrEncoding = errors.New("invalid encoding")
