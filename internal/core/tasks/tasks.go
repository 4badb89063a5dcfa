// Package tasks issues behaviour orders to a single ped.
package tasks

import (
	"time"

	"github.com/zeusync/actorproxy/internal/core/native"
	"github.com/zeusync/actorproxy/internal/core/script"
	"github.com/zeusync/actorproxy/internal/core/systems/physics"
)

// Owner is the ped the orders are given to.
type Owner interface {
	ID() int32
	Invoker() native.Invoker
}

// Target is any entity an order refers to.
type Target interface {
	ID() int32
}

// Forever is passed where the simulation expects -1 for "no time limit".
const Forever time.Duration = -1

// Tasks is bound to one owner for its whole life.
type Tasks struct {
	owner       Owner
	sched       *script.Scheduler
	loadTimeout time.Duration
}

// New stores the owner and the scheduler used for streamed animation
// dictionaries. It makes no calls.
func New(owner Owner, sched *script.Scheduler, loadTimeout time.Duration) *Tasks {
	if loadTimeout <= 0 {
		loadTimeout = script.DefaultResourceTimeout
	}
	return &Tasks{owner: owner, sched: sched, loadTimeout: loadTimeout}
}

func (t *Tasks) call(n *native.Native, args ...native.Value) native.Value {
	return native.Call(t.owner.Invoker(), n, args...)
}

func (t *Tasks) self() native.Value { return native.Handle(t.owner.ID()) }

func targetValue(target Target) native.Value {
	if target == nil {
		return native.Handle(0)
	}
	return native.Handle(target.ID())
}

func millis(d time.Duration) native.Value {
	if d < 0 {
		return native.Int(-1)
	}
	return native.Int64(d.Milliseconds())
}

func (t *Tasks) ClearAll() { t.call(native.ClearPedTasks, t.self()) }

func (t *Tasks) ClearAllImmediately() { t.call(native.ClearPedTasksImmediately, t.self()) }

func (t *Tasks) ClearSecondary() { t.call(native.ClearPedSecondaryTask, t.self()) }

func (t *Tasks) StandStill(d time.Duration) {
	t.call(native.TaskStandStill, t.self(), millis(d))
}

func (t *Tasks) WanderAround() {
	t.call(native.TaskWanderStandard, t.self(), native.Float(10), native.Int(10))
}

// GoTo walks straight to pos, ignoring navigation paths.
func (t *Tasks) GoTo(pos physics.Vec3, timeout time.Duration) {
	t.call(native.TaskGoStraightToCoord, t.self(),
		native.Float(pos.X), native.Float(pos.Y), native.Float(pos.Z),
		native.Float(1), millis(timeout), native.Float(0), native.Float(0))
}

func (t *Tasks) FightAgainst(target Target) {
	t.call(native.TaskCombatPed, t.self(), targetValue(target), native.Int(0), native.Int(16))
}

func (t *Tasks) FleeFrom(target Target, d time.Duration) {
	t.call(native.TaskSmartFleePed, t.self(), targetValue(target),
		native.Float(100), millis(d), native.Bool(false), native.Bool(false))
}

func (t *Tasks) HandsUp(d time.Duration) {
	t.call(native.TaskHandsUp, t.self(), millis(d), native.Handle(0), native.Int(-1), native.Bool(false))
}

func (t *Tasks) Cower(d time.Duration) {
	t.call(native.TaskCower, t.self(), millis(d))
}

// EnterVehicle seat indices follow the simulation's numbering (-1 driver).
func (t *Tasks) EnterVehicle(vehicle Target, seat int, timeout time.Duration, speed float64) {
	t.call(native.TaskEnterVehicle, t.self(), targetValue(vehicle), millis(timeout),
		native.Int(seat), native.Float(speed), native.Int(0))
}

// LeaveVehicleFlags select the exit style.
type LeaveVehicleFlags int

const (
	LeaveNormal         LeaveVehicleFlags = 0
	LeaveWarpOut        LeaveVehicleFlags = 16
	LeaveLeaveDoorOpen  LeaveVehicleFlags = 256
	LeaveBailOut        LeaveVehicleFlags = 4096
	LeaveDontCloseDoor  LeaveVehicleFlags = 64
	LeaveSkipAnimations LeaveVehicleFlags = 262144
)

func (t *Tasks) LeaveVehicle(vehicle Target, flags LeaveVehicleFlags) {
	t.call(native.TaskLeaveVehicle, t.self(), targetValue(vehicle), native.Int(int(flags)))
}

// PerformSequence runs a sequence previously built on the simulation side.
func (t *Tasks) PerformSequence(sequenceID int) {
	t.call(native.TaskPerformSequence, t.self(), native.Int(sequenceID))
}
