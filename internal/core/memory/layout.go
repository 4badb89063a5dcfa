package memory

import (
	"fmt"
	"math"
	"sort"
)

// Encoding says how the bytes at a field's offset are interpreted.
type Encoding string

const (
	EncodingInt32   Encoding = "int32"
	EncodingFloat32 Encoding = "float32"
	EncodingBit     Encoding = "bit"
)

// Well-known actor record fields.
const (
	FieldSweat               = "ped.sweat"
	FieldDropsWeaponsOnDeath = "ped.drops_weapons_on_death"
	FieldCriticalHits        = "ped.suffers_critical_hits"
	FieldSeatIndex           = "ped.seat_index"
)

// Field describes one fixed-width value in the actor record.
type Field struct {
	Name     string   `json:"name" yaml:"name"`
	Offset   int64    `json:"offset" yaml:"offset"`
	Encoding Encoding `json:"encoding" yaml:"encoding"`
	// Bit is the bit index inside the byte at Offset; only used by EncodingBit.
	Bit uint8 `json:"bit,omitempty" yaml:"bit,omitempty"`
	// Inverted means a set bit stands for false.
	Inverted bool `json:"inverted,omitempty" yaml:"inverted,omitempty"`
}

// Width is the number of bytes the field spans.
func (f Field) Width() int {
	if f.Encoding == EncodingBit {
		return 1
	}
	return 4
}

func (f Field) validate() error {
	if f.Name == "" {
		return fmt.Errorf("%w: field without name", ErrInvalidLayout)
	}
	if f.Offset < 0 {
		return fmt.Errorf("%w: %s: negative offset", ErrInvalidLayout, f.Name)
	}
	switch f.Encoding {
	case EncodingInt32, EncodingFloat32:
		if f.Bit != 0 || f.Inverted {
			return fmt.Errorf("%w: %s: bit options on %s field", ErrInvalidLayout, f.Name, f.Encoding)
		}
	case EncodingBit:
		if f.Bit > 7 {
			return fmt.Errorf("%w: %s: bit %d out of range", ErrInvalidLayout, f.Name, f.Bit)
		}
	default:
		return fmt.Errorf("%w: %s: unknown encoding %q", ErrInvalidLayout, f.Name, f.Encoding)
	}
	return nil
}

// Bool decodes a bit field. A null base yields false without touching r.
func (f Field) Bool(r Reader, base Address) bool {
	if base.IsNull() || r == nil {
		return false
	}
	set := r.ReadByte(base.Add(f.Offset))&(1<<f.Bit) != 0
	if f.Inverted {
		return !set
	}
	return set
}

// Int32 decodes an integer field. A null base yields 0 without touching r.
func (f Field) Int32(r Reader, base Address) int32 {
	if base.IsNull() || r == nil {
		return 0
	}
	return r.ReadInt32(base.Add(f.Offset))
}

// Float32 decodes a numeric field as float32, converting int32 fields by value
// and reinterpreting float32 fields bitwise. A null base yields 0.
func (f Field) Float32(r Reader, base Address) float32 {
	if base.IsNull() || r == nil {
		return 0
	}
	raw := r.ReadInt32(base.Add(f.Offset))
	if f.Encoding == EncodingFloat32 {
		return math.Float32frombits(uint32(raw))
	}
	return float32(raw)
}

// Layout is the set of record fields valid for one simulation build.
type Layout struct {
	Version string
	fields  map[string]Field
}

// NewLayout validates fields and indexes them by name.
func NewLayout(version string, fields ...Field) (*Layout, error) {
	l := &Layout{Version: version, fields: make(map[string]Field, len(fields))}
	for _, f := range fields {
		if err := f.validate(); err != nil {
			return nil, err
		}
		if _, dup := l.fields[f.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate field %s", ErrInvalidLayout, f.Name)
		}
		l.fields[f.Name] = f
	}
	return l, nil
}

// DefaultLayout is the record layout observed on the build the offsets were taken from.
func DefaultLayout() *Layout {
	l, err := NewLayout("1.0.1180.2",
		Field{Name: FieldSweat, Offset: 4464, Encoding: EncodingInt32},
		Field{Name: FieldDropsWeaponsOnDeath, Offset: 0x13BD, Encoding: EncodingBit, Bit: 6, Inverted: true},
		Field{Name: FieldCriticalHits, Offset: 0x13BC, Encoding: EncodingBit, Bit: 2, Inverted: true},
		Field{Name: FieldSeatIndex, Offset: 0x1542, Encoding: EncodingInt32},
	)
	if err != nil {
		panic(err)
	}
	return l
}

// Field returns the named descriptor.
func (l *Layout) Field(name string) (Field, bool) {
	if l == nil {
		return Field{}, false
	}
	f, ok := l.fields[name]
	return f, ok
}

// MustField returns the named descriptor or an error wrapping ErrUnknownField.
func (l *Layout) MustField(name string) (Field, error) {
	f, ok := l.Field(name)
	if !ok {
		return Field{}, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return f, nil
}

// Fields returns the descriptors sorted by offset.
func (l *Layout) Fields() []Field {
	out := make([]Field, 0, len(l.fields))
	for _, f := range l.fields {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Offset == out[j].Offset {
			return out[i].Name < out[j].Name
		}
		return out[i].Offset < out[j].Offset
	})
	return out
}

// Span is the smallest record size covering every field.
func (l *Layout) Span() int64 {
	var end int64
	for _, f := range l.fields {
		if e := f.Offset + int64(f.Width()); e > end {
			end = e
		}
	}
	return end
}
