package entity

import "github.com/zeusync/actorproxy/internal/core/memory"

// The getters in this file decode the ped's record directly. The simulation
// offers no remote call for these values. Each one checks existence, resolves
// the record base and returns the zero value without reading anything when the
// base is null or the layout lacks the field.

func (p *Ped) record(name string) (memory.Field, memory.Address, bool) {
	f, ok := p.rt.field(name)
	if !ok {
		return memory.Field{}, 0, false
	}
	addr := p.MemoryAddress()
	if addr.IsNull() {
		return memory.Field{}, 0, false
	}
	return f, addr, true
}

// Sweat is how much sweat is rendered on the ped, 0 to 100. Read from the record.
func (p *Ped) Sweat() float32 {
	f, addr, ok := p.record(memory.FieldSweat)
	if !ok {
		return 0
	}
	return f.Float32(p.rt.reader(), addr)
}

// DropsWeaponsOnDeath is read from the record; a clear bit means the ped drops them.
func (p *Ped) DropsWeaponsOnDeath() bool {
	f, addr, ok := p.record(memory.FieldDropsWeaponsOnDeath)
	if !ok {
		return false
	}
	return f.Bool(p.rt.reader(), addr)
}

// CanSufferCriticalHits is read from the record; a clear bit means headshots are critical.
func (p *Ped) CanSufferCriticalHits() bool {
	f, addr, ok := p.record(memory.FieldCriticalHits)
	if !ok {
		return false
	}
	return f.Bool(p.rt.reader(), addr)
}

// SeatIndex is the seat the ped occupies, or SeatNone. The record stores the
// seat shifted by one, with -1 for no seat.
func (p *Ped) SeatIndex() VehicleSeat {
	f, addr, ok := p.record(memory.FieldSeatIndex)
	if !ok {
		return SeatNone
	}
	raw := f.Int32(p.rt.reader(), addr)
	if raw == -1 || !p.IsInVehicle() {
		return SeatNone
	}
	return VehicleSeat(raw - 1)
}
