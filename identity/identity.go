// Package identity defines the opaque account identifier used as the
// holder, caller, and role-member key throughout the registry.
package identity

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AddressLength is the size of an account identifier in bytes.
const AddressLength = 20

// Address is a fixed-size account identifier. The registry assumes no
// structure beyond equality and the zero-value check.
type Address [AddressLength]byte

// Zero is the all-zero address. It is never a valid token owner or
// transfer destination.
var Zero Address

// FromHex parses an address from a hex string, with or without the 0x
// prefix.
func FromHex(s string) (Address, error) {
	s = strings.TrimPrefix(s, "0x")
	var a Address
	b, err := hex.DecodeString(s)
	if err != nil {
		return a, fmt.Errorf("parsing address %q: %w", s, err)
	}
	if len(b) != AddressLength {
		return a, fmt.Errorf("parsing address %q: want %d bytes, got %d", s, AddressLength, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// MustFromHex parses an address and panics on error. Intended for tests
// and fixed configuration values.
func MustFromHex(s string) Address {
	a, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Bytes returns the address as a byte slice.
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero reports whether the address is the zero address.
func (a Address) IsZero() bool {
	return a == Zero
}

// String returns the 0x-prefixed hex form of the address.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// MarshalText implements encoding.TextMarshaler so addresses serialize
// as hex strings in JSON snapshots.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := FromHex(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
