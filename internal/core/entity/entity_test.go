package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/actorproxy/internal/core/events/bus"
	"github.com/zeusync/actorproxy/internal/core/memory"
	"github.com/zeusync/actorproxy/internal/core/native"
	"github.com/zeusync/actorproxy/internal/core/native/nativetest"
	"github.com/zeusync/actorproxy/internal/core/script"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type countingReader struct {
	memory.Reader
	bases int
	reads int
}

func (c *countingReader) BaseAddress(h int32) memory.Address {
	c.bases++
	return c.Reader.BaseAddress(h)
}

func (c *countingReader) ReadByte(addr memory.Address) uint8 {
	c.reads++
	return c.Reader.ReadByte(addr)
}

func (c *countingReader) ReadInt32(addr memory.Address) int32 {
	c.reads++
	return c.Reader.ReadInt32(addr)
}

type fixture struct {
	rt     *Runtime
	rec    *nativetest.Recorder
	mem    *countingReader
	record *memory.Record
	clock  *script.ManualClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	rec := nativetest.NewRecorder(t)
	record := memory.NewRecord(nil)
	mem := &countingReader{Reader: record}
	clock := script.NewManualClock(epoch)

	rt := NewRuntime(rec, mem)
	rt.Scheduler = script.NewScheduler(clock, nil)
	rt.Bus = bus.New()

	return &fixture{rt: rt, rec: rec, mem: mem, record: record, clock: clock}
}

func (f *fixture) exists(v bool) {
	f.rec.Returns(native.DoesEntityExist, native.Bool(v))
}

func TestConstructorsMakeNoCalls(t *testing.T) {
	f := newFixture(t)

	NewPed(f.rt, 1)
	NewVehicle(f.rt, 2)
	NewProp(f.rt, 3)
	NewPedGroup(f.rt, 4)
	NewRelationshipGroup(f.rt, 5)

	assert.Empty(t, f.rec.Calls())
	assert.Zero(t, f.mem.bases)
}

func TestEqualComparesHandlesOnly(t *testing.T) {
	f := newFixture(t)

	p := NewPed(f.rt, 5)
	assert.True(t, p.Equal(NewPed(f.rt, 5)))
	assert.True(t, p.Equal(NewVehicle(f.rt, 5)))
	assert.False(t, p.Equal(NewPed(f.rt, 6)))
	assert.False(t, p.Equal(nil))
	assert.False(t, p.Equal((*Ped)(nil)))
	assert.Equal(t, Handle(5), p.Handle())
	assert.Empty(t, f.rec.Calls())
}

func TestMemoryAddressChecksExistence(t *testing.T) {
	f := newFixture(t)
	f.record.PutInt32(0, 1)
	p := NewPed(f.rt, 9)

	f.exists(false)
	assert.True(t, p.MemoryAddress().IsNull())
	assert.Zero(t, f.mem.bases)

	f.exists(true)
	assert.Equal(t, memory.RecordBase, p.MemoryAddress())
	assert.Equal(t, 1, f.mem.bases)
}

func TestResolveEntity(t *testing.T) {
	f := newFixture(t)

	f.exists(false)
	assert.Nil(t, ResolveEntity(f.rt, 11))
	assert.Zero(t, f.rec.Count(native.GetEntityType))

	f.exists(true)
	cases := []struct {
		raw  int
		want EntityType
	}{
		{1, EntityTypePed},
		{2, EntityTypeVehicle},
		{3, EntityTypeProp},
	}
	for _, tc := range cases {
		f.rec.Returns(native.GetEntityType, native.Int(tc.raw))
		e := ResolveEntity(f.rt, 11)
		require.NotNil(t, e)
		assert.Equal(t, tc.want, e.Type())
		assert.Equal(t, Handle(11), e.Handle())
	}

	f.rec.Returns(native.GetEntityType, native.Int(0))
	assert.Nil(t, ResolveEntity(f.rt, 11))
	f.rec.Returns(native.GetEntityType, native.Int(7))
	assert.Nil(t, ResolveEntity(f.rt, 11))
}

func TestKillerIsResolved(t *testing.T) {
	f := newFixture(t)
	f.rec.Returns(native.GetPedKiller, native.Handle(300))
	f.exists(true)
	f.rec.Returns(native.GetEntityType, native.Int(2))

	killer := NewPed(f.rt, 1).Killer()
	v, ok := killer.(*Vehicle)
	require.True(t, ok)
	assert.Equal(t, Handle(300), v.Handle())

	f.exists(false)
	assert.Nil(t, NewPed(f.rt, 1).Killer())
}

func TestDeletePublishes(t *testing.T) {
	f := newFixture(t)
	var got []bus.Event
	_, err := f.rt.Bus.Subscribe(bus.TypeEntityDeleted, func(e bus.Event) error {
		got = append(got, e)
		return nil
	})
	require.NoError(t, err)

	NewProp(f.rt, 44).Delete()

	assert.Equal(t, 1, f.rec.Count(native.DeleteEntity))
	require.Len(t, got, 1)
	assert.Equal(t, int32(44), got[0].Handle)
}

func TestNilRuntimeDegrades(t *testing.T) {
	p := NewPed(nil, 3)
	assert.False(t, p.Exists())
	assert.Zero(t, p.Money())
	assert.Zero(t, p.Sweat())
	assert.Equal(t, SeatNone, p.SeatIndex())
	assert.Nil(t, p.SetMovementAnimationSet("move_m@drunk@a"))
	assert.Nil(t, ResolveEntity(nil, 3))
}

func TestVehicleSeats(t *testing.T) {
	f := newFixture(t)
	v := NewVehicle(f.rt, 20)

	assert.Nil(t, v.Driver())
	c, ok := f.rec.Last(native.GetPedInVehicleSeat)
	require.True(t, ok)
	assert.Equal(t, -1, c.Args[1].AsInt())

	f.rec.Returns(native.GetPedInVehicleSeat, native.Handle(8))
	d := v.PedOnSeat(SeatRightRear)
	require.NotNil(t, d)
	assert.Equal(t, Handle(8), d.Handle())

	f.rec.Returns(native.IsVehicleSeatFree, native.Bool(true))
	assert.True(t, v.IsSeatFree(SeatPassenger))
	f.rec.Returns(native.GetVehicleNumberOfPassengers, native.Int(2))
	assert.Equal(t, 2, v.PassengerCount())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "vehicle", EntityTypeVehicle.String())
	assert.Equal(t, "female", GenderFemale.String())
	assert.Equal(t, "rushed", DrivingStyleRushed.String())
	assert.Equal(t, "pilot_headset", HelmetPilotHeadset.String())
	assert.Equal(t, "rolling", ParachuteLandingRolling.String())
	assert.Equal(t, "gliding", ParachuteStateGliding.String())
	assert.Equal(t, "driver", SeatDriver.String())
	assert.Equal(t, "extra_1", SeatExtra1.String())
	assert.Equal(t, "single_shot", FiringPatternSingleShot.String())
	assert.Equal(t, "head", BoneHead.String())

	b, ok := ParseBone("left_hand")
	require.True(t, ok)
	assert.Equal(t, BoneLeftHand, b)
}
