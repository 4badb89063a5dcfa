// Package memory decodes fixed-offset fields of simulation records.
//
// The records belong to the simulation; this package only reads them. Field
// positions come from a versioned Layout rather than being scattered through
// callers, so a new simulation build means a new layout file.
package memory

import "errors"

var (
	ErrInvalidLayout = errors.New("invalid memory layout")
	ErrUnknownField  = errors.New("unknown layout field")
)

// Address is a location inside the simulation's address space. Zero is the null sentinel.
type Address uintptr

func (a Address) IsNull() bool { return a == 0 }

func (a Address) Add(offset int64) Address { return Address(int64(a) + offset) }

// Reader resolves record base addresses and reads fixed-width integers.
// It has no write path.
type Reader interface {
	// BaseAddress returns the record address for a handle, or 0 when unavailable.
	BaseAddress(handle int32) Address
	ReadByte(addr Address) uint8
	ReadInt32(addr Address) int32
}

// Null is a Reader for which no record is ever available.
var Null Reader = nullReader{}

type nullReader struct{}

func (nullReader) BaseAddress(int32) Address { return 0 }
func (nullReader) ReadByte(Address) uint8    { return 0 }
func (nullReader) ReadInt32(Address) int32   { return 0 }
