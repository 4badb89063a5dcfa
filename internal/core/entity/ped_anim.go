package entity

import (
	"github.com/zeusync/actorproxy/internal/core/events/bus"
	"github.com/zeusync/actorproxy/internal/core/native"
	"github.com/zeusync/actorproxy/internal/core/observability/log"
	"github.com/zeusync/actorproxy/internal/core/script"
)

// SetMovementAnimationSet streams the named clip set and switches the ped's
// walk style to it once loaded. It returns immediately; the switch happens on
// a later scheduler tick, or never if the set fails to load in time. The
// outcome is published on the runtime's bus. Without a scheduler the returned
// job is nil and nothing happens.
func (p *Ped) SetMovementAnimationSet(name string) *script.Job {
	sched := p.rt.scheduler()
	if sched == nil {
		p.rt.logger().Warn("movement clipset dropped: no scheduler", log.String("clipset", name))
		return nil
	}

	clipset := native.String(name)
	wait := &script.ResourceWait{
		Request: func() { p.call(native.RequestAnimSet, clipset) },
		Ready:   func() bool { return p.call(native.HasAnimSetLoaded, clipset).AsBool() },
		Apply: func() {
			p.call(native.SetPedMovementClipset, p.self(), clipset, native.Float(1))
		},
		Timeout: p.rt.loadTimeout(),
	}

	handle := p.handle
	rt := p.rt
	return sched.Spawn("clipset:"+name, wait, func(st script.Status) {
		data := map[string]any{"clipset": name, "polls": wait.Polls()}
		if st == script.StatusDone {
			rt.publish(bus.TypeClipsetApplied, handle, data)
			return
		}
		rt.logger().Debug("movement clipset not loaded in time",
			log.String("clipset", name),
			log.Int32("handle", int32(handle)),
		)
		rt.publish(bus.TypeClipsetAbandoned, handle, data)
	})
}
