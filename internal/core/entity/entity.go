// Package entity wraps simulation handles in typed proxies.
//
// A proxy holds a handle and a Runtime and nothing else that the simulation
// owns. Every read goes back to the simulation, either through a remote call
// or through a direct decode of the object's record, so a proxy never goes
// stale; it only starts answering with zero values once its object is gone.
package entity

import (
	"github.com/zeusync/actorproxy/internal/core/events/bus"
	"github.com/zeusync/actorproxy/internal/core/memory"
	"github.com/zeusync/actorproxy/internal/core/native"
	"github.com/zeusync/actorproxy/internal/core/systems/physics"
)

// Handle is the simulation's identifier for an object. Handles are recycled
// once their object is destroyed.
type Handle int32

func (h Handle) value() native.Value { return native.Handle(int32(h)) }

// Entity is implemented by *Ped, *Vehicle and *Prop.
type Entity interface {
	Handle() Handle
	ID() int32
	Type() EntityType
	Exists() bool
	Equal(other Entity) bool
	Invoker() native.Invoker
}

var (
	_ Entity = (*Ped)(nil)
	_ Entity = (*Vehicle)(nil)
	_ Entity = (*Prop)(nil)
)

// base is embedded by every proxy kind.
type base struct {
	rt     *Runtime
	handle Handle
}

func (e base) Handle() Handle { return e.handle }

func (e base) ID() int32 { return int32(e.handle) }

// Invoker exposes the call path so capability modules can issue calls for their owner.
func (e base) Invoker() native.Invoker { return e.rt.invoker() }

// Equal compares handles only; two proxies of different kinds on the same
// handle are equal.
func (e base) Equal(other Entity) bool {
	if isNil(other) {
		return false
	}
	return e.handle == other.Handle()
}

func (e base) call(n *native.Native, args ...native.Value) native.Value {
	return e.rt.call(n, args...)
}

func (e base) self() native.Value { return e.handle.value() }

func (e base) is(n *native.Native) bool { return e.call(n, e.self()).AsBool() }

func (e base) set(n *native.Native, v bool) { e.call(n, e.self(), native.Bool(v)) }

func (e base) Exists() bool { return e.is(native.DoesEntityExist) }

// MemoryAddress is the base of the object's record, or 0 when the object is
// gone or the host cannot resolve it.
func (e base) MemoryAddress() memory.Address {
	if !e.Exists() {
		return 0
	}
	return e.rt.reader().BaseAddress(int32(e.handle))
}

func (e base) Health() int { return e.call(native.GetEntityHealth, e.self()).AsInt() }

func (e base) SetHealth(v int) { e.call(native.SetEntityHealth, e.self(), native.Int(v)) }

func (e base) MaxHealth() int { return e.call(native.GetEntityMaxHealth, e.self()).AsInt() }

func (e base) SetMaxHealth(v int) { e.call(native.SetEntityMaxHealth, e.self(), native.Int(v)) }

func (e base) IsDead() bool { return e.is(native.IsEntityDead) }

func (e base) IsAlive() bool { return !e.IsDead() }

func (e base) IsInAir() bool { return e.is(native.IsEntityInAir) }

func (e base) IsOnFire() bool { return e.is(native.IsEntityOnFire) }

func (e base) Model() uint32 { return e.call(native.GetEntityModel, e.self()).AsUint32() }

func (e base) Position() physics.Vec3 {
	x, y, z := e.call(native.GetEntityCoords, e.self(), native.Bool(true)).AsVector3()
	return physics.V3(x, y, z)
}

// Delete removes the object from the simulation. The handle may be reused afterwards.
func (e base) Delete() {
	e.call(native.DeleteEntity, e.self())
	e.rt.publish(bus.TypeEntityDeleted, e.handle, nil)
}

func isNil(e Entity) bool {
	switch v := e.(type) {
	case nil:
		return true
	case *Ped:
		return v == nil
	case *Vehicle:
		return v == nil
	case *Prop:
		return v == nil
	}
	return false
}

// handleOf is the wire value for an optional entity argument; nil becomes handle 0.
func handleOf(e Entity) native.Value {
	if isNil(e) {
		return native.Handle(0)
	}
	return native.Handle(e.ID())
}
