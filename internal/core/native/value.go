package native

import (
	"fmt"
	"math"
)

// Kind tags the member of a Value that carries data.
type Kind uint8

const (
	KindVoid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindVector3
)

func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindVector3:
		return "vector3"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a tagged argument or result crossing the remote-call boundary.
// The zero Value is void and every accessor on it returns the zero of its type.
type Value struct {
	Kind Kind       `json:"k"`
	B    bool       `json:"b,omitempty"`
	I    int64      `json:"i,omitempty"`
	F    float64    `json:"f,omitempty"`
	S    string     `json:"s,omitempty"`
	V    [3]float64 `json:"v"`
	// Out carries out-arguments written by the callee, in declaration order.
	Out []Value `json:"out,omitempty"`
}

func Void() Value { return Value{} }

func Bool(b bool) Value { return Value{Kind: KindBool, B: b} }

func Int(i int) Value { return Value{Kind: KindInt, I: int64(i)} }

func Int64(i int64) Value { return Value{Kind: KindInt, I: i} }

// Handle encodes an object handle. Handles travel as ints.
func Handle(h int32) Value { return Value{Kind: KindInt, I: int64(h)} }

// Uint encodes hashes that the simulation treats as unsigned 32-bit values.
func Uint(u uint32) Value { return Value{Kind: KindInt, I: int64(int32(u))} }

func Float(f float64) Value { return Value{Kind: KindFloat, F: f} }

func Float32(f float32) Value { return Value{Kind: KindFloat, F: float64(f)} }

func String(s string) Value { return Value{Kind: KindString, S: s} }

func Vector3(x, y, z float64) Value { return Value{Kind: KindVector3, V: [3]float64{x, y, z}} }

// WithOut returns a copy of v carrying the given out-arguments.
func (v Value) WithOut(out ...Value) Value {
	v.Out = out
	return v
}

func (v Value) IsVoid() bool { return v.Kind == KindVoid }

func (v Value) AsBool() bool {
	switch v.Kind {
	case KindBool:
		return v.B
	case KindInt:
		return v.I != 0
	default:
		return false
	}
}

func (v Value) AsInt() int {
	switch v.Kind {
	case KindInt:
		return int(v.I)
	case KindBool:
		if v.B {
			return 1
		}
		return 0
	case KindFloat:
		if math.IsNaN(v.F) {
			return 0
		}
		return int(v.F)
	default:
		return 0
	}
}

func (v Value) AsInt32() int32 { return int32(v.AsInt()) }

func (v Value) AsUint32() uint32 { return uint32(int32(v.AsInt())) }

func (v Value) AsFloat() float64 {
	switch v.Kind {
	case KindFloat:
		return v.F
	case KindInt:
		return float64(v.I)
	default:
		return 0
	}
}

func (v Value) AsFloat32() float32 { return float32(v.AsFloat()) }

func (v Value) AsString() string {
	if v.Kind != KindString {
		return ""
	}
	return v.S
}

func (v Value) AsVector3() (x, y, z float64) {
	if v.Kind != KindVector3 {
		return 0, 0, 0
	}
	return v.V[0], v.V[1], v.V[2]
}

// OutAt returns the i-th out-argument, or void when the callee wrote fewer.
func (v Value) OutAt(i int) Value {
	if i < 0 || i >= len(v.Out) {
		return Value{}
	}
	return v.Out[i]
}

func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		return fmt.Sprintf("%t", v.B)
	case KindInt:
		return fmt.Sprintf("%d", v.I)
	case KindFloat:
		return fmt.Sprintf("%g", v.F)
	case KindString:
		return fmt.Sprintf("%q", v.S)
	case KindVector3:
		return fmt.Sprintf("(%g, %g, %g)", v.V[0], v.V[1], v.V[2])
	default:
		return "void"
	}
}
