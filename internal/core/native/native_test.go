package native

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableIsConsistent(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	names := make(map[string]struct{}, len(all))
	for _, n := range all {
		_, dup := names[n.Name]
		require.False(t, dup, "duplicate native %s", n.Name)
		names[n.Name] = struct{}{}

		assert.Equal(t, HashOf(n.Name), n.Hash, n.Name)
		got, ok := Lookup(n.Hash)
		require.True(t, ok, n.Name)
		assert.Same(t, n, got)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup(HashOf("NOT_A_NATIVE"))
	assert.False(t, ok)
}

func TestCheckSignature(t *testing.T) {
	require.NoError(t, SetPedConfigFlag.Check([]Value{Handle(7), Int(32), Bool(true)}))

	err := SetPedConfigFlag.Check([]Value{Handle(7), Int(32)})
	require.ErrorIs(t, err, ErrArgCount)

	err = SetPedConfigFlag.Check([]Value{Handle(7), Float(32), Bool(true)})
	require.ErrorIs(t, err, ErrArgKind)
}

func TestValueAccessorsAreLenient(t *testing.T) {
	var v Value
	assert.True(t, v.IsVoid())
	assert.False(t, v.AsBool())
	assert.Zero(t, v.AsInt())
	assert.Zero(t, v.AsFloat())
	assert.Empty(t, v.AsString())

	assert.True(t, Int(3).AsBool())
	assert.Equal(t, 1, Bool(true).AsInt())
	assert.Equal(t, 12, Float(12.9).AsInt())
	assert.InDelta(t, 4.0, Int(4).AsFloat(), 1e-9)
	assert.Equal(t, uint32(0xFFFFFFFF), Int(-1).AsUint32())
	assert.Equal(t, int32(-1), Uint(0xFFFFFFFF).AsInt32())

	x, y, z := Vector3(1, 2, 3).AsVector3()
	assert.Equal(t, [3]float64{1, 2, 3}, [3]float64{x, y, z})
}

func TestValueOutArguments(t *testing.T) {
	v := Bool(true).WithOut(Vector3(4, 5, 6))
	x, _, _ := v.OutAt(0).AsVector3()
	assert.Equal(t, 4.0, x)
	assert.True(t, v.OutAt(1).IsVoid())
	assert.True(t, v.OutAt(-1).IsVoid())
}

func TestValueJSONRoundTrip(t *testing.T) {
	in := Bool(true).WithOut(Vector3(1, 2, 3), String("x"))
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Value
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestCallToleratesNilInvoker(t *testing.T) {
	assert.True(t, Call(nil, GetPedMoney, Handle(1)).IsVoid())

	var seen *Native
	inv := InvokerFunc(func(n *Native, args ...Value) Value {
		seen = n
		return Int(len(args))
	})
	assert.Equal(t, 1, Call(inv, GetPedMoney, Handle(1)).AsInt())
	assert.Same(t, GetPedMoney, seen)
}
