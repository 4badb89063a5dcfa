package entity

import (
	"time"

	"github.com/zeusync/actorproxy/internal/core/events/bus"
	"github.com/zeusync/actorproxy/internal/core/memory"
	"github.com/zeusync/actorproxy/internal/core/native"
	"github.com/zeusync/actorproxy/internal/core/observability/log"
	"github.com/zeusync/actorproxy/internal/core/script"
)

// Runtime carries the collaborators every proxy needs. Proxies only hold a
// pointer to it; one Runtime is normally shared by the whole process.
type Runtime struct {
	Invoker   native.Invoker
	Memory    memory.Reader
	Layout    *memory.Layout
	Scheduler *script.Scheduler
	Bus       bus.EventBus
	Log       log.Log

	// LoadTimeout bounds streamed-resource waits.
	LoadTimeout time.Duration
}

// NewRuntime fills the optional collaborators with working defaults.
func NewRuntime(inv native.Invoker, mem memory.Reader) *Runtime {
	logger := log.NewNop()
	return &Runtime{
		Invoker:     inv,
		Memory:      mem,
		Layout:      memory.DefaultLayout(),
		Scheduler:   script.NewScheduler(script.SystemClock{}, logger),
		Log:         logger,
		LoadTimeout: script.DefaultResourceTimeout,
	}
}

func (rt *Runtime) invoker() native.Invoker {
	if rt == nil {
		return nil
	}
	return rt.Invoker
}

func (rt *Runtime) call(n *native.Native, args ...native.Value) native.Value {
	return native.Call(rt.invoker(), n, args...)
}

func (rt *Runtime) reader() memory.Reader {
	if rt == nil || rt.Memory == nil {
		return memory.Null
	}
	return rt.Memory
}

func (rt *Runtime) field(name string) (memory.Field, bool) {
	if rt == nil {
		return memory.Field{}, false
	}
	return rt.Layout.Field(name)
}

func (rt *Runtime) scheduler() *script.Scheduler {
	if rt == nil {
		return nil
	}
	return rt.Scheduler
}

func (rt *Runtime) loadTimeout() time.Duration {
	if rt == nil || rt.LoadTimeout <= 0 {
		return script.DefaultResourceTimeout
	}
	return rt.LoadTimeout
}

func (rt *Runtime) logger() log.Log {
	if rt == nil || rt.Log == nil {
		return log.NewNop()
	}
	return rt.Log
}

func (rt *Runtime) publish(typ string, handle Handle, data map[string]any) {
	if rt == nil || rt.Bus == nil {
		return
	}
	if err := rt.Bus.Publish(bus.NewEvent(typ, "entity", int32(handle), data)); err != nil {
		rt.logger().Warn("event handler failed", log.String("type", typ), log.Error(err))
	}
}
