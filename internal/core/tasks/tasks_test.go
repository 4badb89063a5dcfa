package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/actorproxy/internal/core/native"
	"github.com/zeusync/actorproxy/internal/core/native/nativetest"
	"github.com/zeusync/actorproxy/internal/core/script"
	"github.com/zeusync/actorproxy/internal/core/systems/physics"
)

type owner struct {
	id  int32
	inv native.Invoker
}

func (o owner) ID() int32               { return o.id }
func (o owner) Invoker() native.Invoker { return o.inv }

func TestNewMakesNoCalls(t *testing.T) {
	rec := nativetest.NewRecorder(t)
	New(owner{7, rec}, nil, 0)
	assert.Empty(t, rec.Calls())
}

func TestOrdersCarryOwnerHandle(t *testing.T) {
	rec := nativetest.NewRecorder(t)
	tk := New(owner{7, rec}, nil, 0)

	tk.ClearAll()
	tk.ClearAllImmediately()
	tk.ClearSecondary()
	tk.StandStill(Forever)
	tk.WanderAround()
	tk.Cower(2 * time.Second)
	tk.HandsUp(500 * time.Millisecond)
	tk.PerformSequence(3)

	for _, c := range rec.Calls() {
		assert.Equal(t, int32(7), c.Args[0].AsInt32(), c.Native.Name)
	}

	c, ok := rec.Last(native.TaskStandStill)
	require.True(t, ok)
	assert.Equal(t, -1, c.Args[1].AsInt())

	c, _ = rec.Last(native.TaskCower)
	assert.Equal(t, 2000, c.Args[1].AsInt())

	c, _ = rec.Last(native.TaskPerformSequence)
	assert.Equal(t, 3, c.Args[1].AsInt())
}

func TestTargetedOrders(t *testing.T) {
	rec := nativetest.NewRecorder(t)
	tk := New(owner{7, rec}, nil, 0)

	tk.FightAgainst(owner{id: 9})
	tk.FleeFrom(owner{id: 9}, Forever)
	tk.EnterVehicle(owner{id: 20}, -1, 5*time.Second, 2)
	tk.LeaveVehicle(nil, LeaveWarpOut)
	tk.GoTo(physics.V3(1, 2, 3), Forever)

	c, _ := rec.Last(native.TaskCombatPed)
	assert.Equal(t, int32(9), c.Args[1].AsInt32())

	c, _ = rec.Last(native.TaskSmartFleePed)
	assert.Equal(t, int32(9), c.Args[1].AsInt32())

	c, _ = rec.Last(native.TaskEnterVehicle)
	assert.Equal(t, int32(20), c.Args[1].AsInt32())
	assert.Equal(t, 5000, c.Args[2].AsInt())
	assert.Equal(t, -1, c.Args[3].AsInt())

	c, _ = rec.Last(native.TaskLeaveVehicle)
	assert.Equal(t, int32(0), c.Args[1].AsInt32())
	assert.Equal(t, int(LeaveWarpOut), c.Args[2].AsInt())

	c, _ = rec.Last(native.TaskGoStraightToCoord)
	assert.Equal(t, 3.0, c.Args[3].AsFloat())
}

func TestPlayAnimationWaitsForDictionary(t *testing.T) {
	rec := nativetest.NewRecorder(t)
	loaded := false
	rec.On(native.HasAnimDictLoaded, func([]native.Value) native.Value { return native.Bool(loaded) })

	clock := script.NewManualClock(time.Unix(0, 0))
	sched := script.NewScheduler(clock, nil)
	tk := New(owner{7, rec}, sched, time.Second)

	job := tk.PlayAnimation(Animation{Dict: "amb@world_human_smoking@male", Name: "idle_a"})
	require.NotNil(t, job)

	sched.Tick()
	assert.Equal(t, 1, rec.Count(native.RequestAnimDict))
	assert.Zero(t, rec.Count(native.TaskPlayAnim))

	loaded = true
	sched.Tick()
	assert.Equal(t, script.StatusDone, job.Status())

	c, ok := rec.Last(native.TaskPlayAnim)
	require.True(t, ok)
	assert.Equal(t, "idle_a", c.Args[2].AsString())
	assert.Equal(t, 8.0, c.Args[3].AsFloat())
	assert.Equal(t, -1, c.Args[5].AsInt())
}

func TestPlayAnimationTimesOut(t *testing.T) {
	rec := nativetest.NewRecorder(t)
	clock := script.NewManualClock(time.Unix(0, 0))
	sched := script.NewScheduler(clock, nil)
	tk := New(owner{7, rec}, sched, 100*time.Millisecond)

	job := tk.PlayAnimation(Animation{Dict: "missing", Name: "x"})
	sched.RunUntilIdle(script.YieldFunc(func() { clock.Advance(40 * time.Millisecond) }))

	assert.Equal(t, script.StatusAbandoned, job.Status())
	assert.Zero(t, rec.Count(native.TaskPlayAnim))
}

func TestPlayAnimationWithoutScheduler(t *testing.T) {
	rec := nativetest.NewRecorder(t)
	tk := New(owner{7, rec}, nil, 0)

	assert.Nil(t, tk.PlayAnimation(Animation{Dict: "d", Name: "n", Flags: AnimationLoop}))
	assert.Equal(t, 1, rec.Count(native.RequestAnimDict))
	c, ok := rec.Last(native.TaskPlayAnim)
	require.True(t, ok)
	assert.Equal(t, int(AnimationLoop), c.Args[6].AsInt())
}
