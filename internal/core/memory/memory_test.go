package memory

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingReader struct {
	*Record
	reads int
}

func (c *countingReader) ReadByte(addr Address) uint8 {
	c.reads++
	return c.Record.ReadByte(addr)
}

func (c *countingReader) ReadInt32(addr Address) int32 {
	c.reads++
	return c.Record.ReadInt32(addr)
}

func TestNullBaseNeverReads(t *testing.T) {
	rec := NewRecord(nil)
	rec.PutInt32(4464, 55)
	r := &countingReader{Record: rec}
	l := DefaultLayout()

	for _, f := range l.Fields() {
		assert.False(t, f.Bool(r, 0), f.Name)
		assert.Zero(t, f.Int32(r, 0), f.Name)
		assert.Zero(t, f.Float32(r, 0), f.Name)
	}
	assert.Zero(t, r.reads)
}

func TestInvertedBitPolarity(t *testing.T) {
	l := DefaultLayout()
	drops, err := l.MustField(FieldDropsWeaponsOnDeath)
	require.NoError(t, err)
	crit, err := l.MustField(FieldCriticalHits)
	require.NoError(t, err)

	rec := NewRecord(make([]byte, l.Span()))
	base := rec.BaseAddress(1)

	// cleared bits read as true for both inverted flags
	assert.True(t, drops.Bool(rec, base))
	assert.True(t, crit.Bool(rec, base))

	rec.SetBit(0x13BD, 6, true)
	assert.False(t, drops.Bool(rec, base))
	assert.True(t, crit.Bool(rec, base))

	rec.SetBit(0x13BC, 2, true)
	assert.False(t, crit.Bool(rec, base))

	// neighbouring bits do not leak into the flag
	rec.SetBit(0x13BD, 6, false)
	rec.SetBit(0x13BD, 5, true)
	rec.SetBit(0x13BD, 7, true)
	assert.True(t, drops.Bool(rec, base))
}

func TestNumericEncodings(t *testing.T) {
	rec := NewRecord(nil)
	rec.PutInt32(0, 42)
	rec.PutFloat32(4, 12.5)
	base := rec.BaseAddress(1)

	asInt := Field{Name: "a", Offset: 0, Encoding: EncodingInt32}
	asFloat := Field{Name: "b", Offset: 4, Encoding: EncodingFloat32}

	assert.Equal(t, int32(42), asInt.Int32(rec, base))
	assert.Equal(t, float32(42), asInt.Float32(rec, base))
	assert.Equal(t, float32(12.5), asFloat.Float32(rec, base))
}

func TestRecordOutOfRangeReadsZero(t *testing.T) {
	rec := NewRecord([]byte{1, 2})
	assert.Zero(t, rec.ReadInt32(rec.Base))
	assert.Zero(t, rec.ReadByte(rec.Base+5))
	assert.Zero(t, rec.ReadByte(rec.Base-1))
	assert.Equal(t, Address(0), NewRecord(nil).BaseAddress(1))
}

func TestNewLayoutRejects(t *testing.T) {
	_, err := NewLayout("x", Field{Name: "a", Encoding: EncodingBit, Bit: 8})
	require.ErrorIs(t, err, ErrInvalidLayout)

	_, err = NewLayout("x", Field{Name: "a", Encoding: "int64"})
	require.ErrorIs(t, err, ErrInvalidLayout)

	_, err = NewLayout("x",
		Field{Name: "a", Encoding: EncodingInt32},
		Field{Name: "a", Offset: 4, Encoding: EncodingInt32},
	)
	require.ErrorIs(t, err, ErrInvalidLayout)

	_, err = NewLayout("x", Field{Name: "a", Encoding: EncodingInt32, Inverted: true})
	require.ErrorIs(t, err, ErrInvalidLayout)
}

func TestShippedLayoutMatchesDefault(t *testing.T) {
	f, err := os.Open("../../../configs/layouts/1.0.1180.2.yaml")
	require.NoError(t, err)
	defer f.Close()

	l, err := LoadLayout(f)
	require.NoError(t, err)

	def := DefaultLayout()
	assert.Equal(t, def.Version, l.Version)
	assert.Equal(t, def.Fields(), l.Fields())
}

func TestLoadLayoutSchemaErrors(t *testing.T) {
	cases := map[string]string{
		"missing version": "fields:\n  - {name: ped.x, offset: 1, encoding: int32}\n",
		"bad encoding":    "version: v\nfields:\n  - {name: ped.x, offset: 1, encoding: int16}\n",
		"bit too high":    "version: v\nfields:\n  - {name: ped.x, offset: 1, encoding: bit, bit: 9}\n",
		"negative offset": "version: v\nfields:\n  - {name: ped.x, offset: -4, encoding: int32}\n",
		"unknown key":     "version: v\nfields:\n  - {name: ped.x, offset: 1, encoding: int32, width: 4}\n",
		"no fields":       "version: v\nfields: []\n",
		"not yaml":        "version: [",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadLayout(strings.NewReader(src))
			require.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}

func TestLayoutFileRoundTrip(t *testing.T) {
	l, err := LoadLayoutFile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLayout().Fields(), l.Fields())

	_, err = l.MustField("ped.nothing")
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestVerifyAgainstRecord(t *testing.T) {
	l := DefaultLayout()
	rec := NewRecord(make([]byte, l.Span()))
	rec.PutInt32(4464, 30)
	rec.PutInt32(0x1542, 2)
	rec.SetBit(0x13BD, 6, true)
	base := rec.BaseAddress(1)

	ok := map[string]any{
		FieldSweat:               int32(30),
		FieldSeatIndex:           int32(2),
		FieldDropsWeaponsOnDeath: false,
		FieldCriticalHits:        true,
	}
	assert.Empty(t, Verify(l, rec, base, ok))

	bad := map[string]any{
		FieldSweat:        int32(31),
		FieldCriticalHits: false,
		"ped.unknown":     true,
	}
	mismatches := Verify(l, rec, base, bad)
	require.Len(t, mismatches, 3)
	assert.Equal(t, "ped.suffers_critical_hits", mismatches[0].Field)
	assert.Equal(t, FieldSweat, mismatches[1].Field)
	assert.Equal(t, int32(30), mismatches[1].Actual)
	assert.Equal(t, "ped.unknown", mismatches[2].Field)
	assert.Nil(t, mismatches[2].Actual)
}
