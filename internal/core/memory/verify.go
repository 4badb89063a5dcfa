package memory

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"
)

// Record is a captured copy of one actor record. It implements Reader for a
// single synthetic base address so descriptors can be exercised offline.
type Record struct {
	Base  Address
	Bytes []byte
}

// RecordBase is the synthetic address captured records are served from.
const RecordBase Address = 0x10000

func NewRecord(data []byte) *Record {
	return &Record{Base: RecordBase, Bytes: data}
}

func (r *Record) BaseAddress(int32) Address {
	if r == nil || len(r.Bytes) == 0 {
		return 0
	}
	return r.Base
}

func (r *Record) ReadByte(addr Address) uint8 {
	off, ok := r.offset(addr, 1)
	if !ok {
		return 0
	}
	return r.Bytes[off]
}

func (r *Record) ReadInt32(addr Address) int32 {
	off, ok := r.offset(addr, 4)
	if !ok {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(r.Bytes[off : off+4]))
}

// PutInt32 writes v little-endian at the given field offset. Used to build fixtures.
func (r *Record) PutInt32(offset int64, v int32) {
	r.grow(offset + 4)
	binary.LittleEndian.PutUint32(r.Bytes[offset:], uint32(v))
}

func (r *Record) PutFloat32(offset int64, v float32) {
	r.PutInt32(offset, int32(math.Float32bits(v)))
}

// SetBit sets or clears one bit of the byte at offset.
func (r *Record) SetBit(offset int64, bit uint8, set bool) {
	r.grow(offset + 1)
	if set {
		r.Bytes[offset] |= 1 << bit
	} else {
		r.Bytes[offset] &^= 1 << bit
	}
}

func (r *Record) grow(size int64) {
	if int64(len(r.Bytes)) < size {
		r.Bytes = append(r.Bytes, make([]byte, size-int64(len(r.Bytes)))...)
	}
}

func (r *Record) offset(addr Address, width int) (int, bool) {
	if addr < r.Base {
		return 0, false
	}
	off := int(addr - r.Base)
	if off+width > len(r.Bytes) {
		return 0, false
	}
	return off, true
}

// Mismatch reports a field whose decoded value disagrees with the expectation.
type Mismatch struct {
	Field    string
	Expected any
	Actual   any
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: expected %v, decoded %v", m.Field, m.Expected, m.Actual)
}

// Verify decodes every expected field from r at base and reports disagreements.
// Expected values are bool for bit fields, int32 for int32 fields and float32
// for float32 fields. Fields missing from the layout are reported with a nil Actual.
func Verify(l *Layout, r Reader, base Address, expected map[string]any) []Mismatch {
	var out []Mismatch
	for name, want := range expected {
		f, ok := l.Field(name)
		if !ok {
			out = append(out, Mismatch{Field: name, Expected: want})
			continue
		}
		var got any
		switch f.Encoding {
		case EncodingBit:
			got = f.Bool(r, base)
		case EncodingFloat32:
			got = f.Float32(r, base)
		default:
			got = f.Int32(r, base)
		}
		if got != want {
			out = append(out, Mismatch{Field: name, Expected: want, Actual: got})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}
