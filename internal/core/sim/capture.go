package sim

import (
	"time"

	"github.com/zeusync/actorproxy/internal/core/memory"
	"github.com/zeusync/actorproxy/internal/core/memory/snapshot"
)

// Capture records the current bytes of a ped together with the values the
// host reports for each layout field. The result can be stored and later used
// to check a layout file offline.
func (h *Host) Capture(version string, handle int32) (snapshot.Snapshot, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	o, ok := h.objects.Load(handle)
	if !ok || !o.isPed() {
		return snapshot.Snapshot{}, false
	}

	rec := h.render(o)
	expected := make(map[string]any, len(h.layout.Fields()))
	for _, f := range h.layout.Fields() {
		switch f.Name {
		case memory.FieldSweat:
			expected[f.Name] = number(f, o.Sweat)
		case memory.FieldSeatIndex:
			seat := int32(-1)
			if o.Vehicle != 0 {
				seat = int32(o.Seat) + 1
			}
			expected[f.Name] = number(f, seat)
		case memory.FieldDropsWeaponsOnDeath:
			expected[f.Name] = o.DropsWeapons
		case memory.FieldCriticalHits:
			expected[f.Name] = o.CriticalHits
		}
	}

	return snapshot.Snapshot{
		Version:    version,
		Handle:     handle,
		CapturedAt: time.Now().UTC(),
		Record:     rec.Bytes,
		Expected:   expected,
	}, true
}

func number(f memory.Field, v int32) any {
	if f.Encoding == memory.EncodingFloat32 {
		return float32(v)
	}
	return v
}
