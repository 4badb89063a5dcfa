package sim

import (
	"github.com/zeusync/actorproxy/internal/core/memory"
)

// BaseAddress gives every live ped a record window derived from its handle.
// Other objects and unknown handles have no record.
func (h *Host) BaseAddress(handle int32) memory.Address {
	o, ok := h.objects.Load(handle)
	if !ok || !o.isPed() || handle <= 0 {
		return 0
	}
	return memory.Address(uintptr(handle) << recordShift)
}

func (h *Host) ReadByte(addr memory.Address) uint8 {
	rec, at, ok := h.recordAt(addr)
	if !ok {
		return 0
	}
	return rec.ReadByte(at)
}

func (h *Host) ReadInt32(addr memory.Address) int32 {
	rec, at, ok := h.recordAt(addr)
	if !ok {
		return 0
	}
	return rec.ReadInt32(at)
}

// recordAt renders the record owning addr and translates addr into it.
func (h *Host) recordAt(addr memory.Address) (*memory.Record, memory.Address, bool) {
	handle := int32(uintptr(addr) >> recordShift)
	offset := int64(uintptr(addr) & (1<<recordShift - 1))

	h.mu.Lock()
	defer h.mu.Unlock()

	o, ok := h.objects.Load(handle)
	if !ok || !o.isPed() {
		return nil, 0, false
	}
	rec := h.render(o)
	return rec, rec.Base.Add(offset), true
}

// Record renders the current record of a ped the way the simulation lays it
// out. It returns nil for anything that is not a live ped.
func (h *Host) Record(handle int32) *memory.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	o, ok := h.objects.Load(handle)
	if !ok || !o.isPed() {
		return nil
	}
	return h.render(o)
}

func (h *Host) render(o *Object) *memory.Record {
	rec := memory.NewRecord(make([]byte, h.layout.Span()))
	for _, f := range h.layout.Fields() {
		switch f.Name {
		case memory.FieldSweat:
			putNumber(rec, f, o.Sweat)
		case memory.FieldSeatIndex:
			seat := int32(-1)
			if o.Vehicle != 0 {
				seat = int32(o.Seat) + 1
			}
			putNumber(rec, f, seat)
		case memory.FieldDropsWeaponsOnDeath:
			putBit(rec, f, o.DropsWeapons)
		case memory.FieldCriticalHits:
			putBit(rec, f, o.CriticalHits)
		}
	}
	return rec
}

func putNumber(rec *memory.Record, f memory.Field, v int32) {
	switch f.Encoding {
	case memory.EncodingFloat32:
		rec.PutFloat32(f.Offset, float32(v))
	case memory.EncodingInt32:
		rec.PutInt32(f.Offset, v)
	}
}

// putBit stores a boolean honouring the field's polarity.
func putBit(rec *memory.Record, f memory.Field, v bool) {
	if f.Encoding != memory.EncodingBit {
		return
	}
	rec.SetBit(f.Offset, f.Bit, v != f.Inverted)
}
