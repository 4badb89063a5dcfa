package sim

import (
	"github.com/zeusync/actorproxy/internal/core/native"
	"github.com/zeusync/actorproxy/internal/core/observability/log"
)

type handler func(h *Host, args []native.Value) native.Value

// Invoke dispatches one native. Calls with a bad shape and natives the host
// does not model answer void, as the real host does for unknown opcodes.
func (h *Host) Invoke(n *native.Native, args ...native.Value) native.Value {
	h.calls.Add(1)
	if n == nil {
		return native.Void()
	}
	if err := n.Check(args); err != nil {
		h.log.Warn("rejected call", log.String("native", n.Name), log.Error(err))
		return native.Void()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if fn, ok := handlers[n]; ok {
		return fn(h, args)
	}
	if v, ok := h.generic(n, args); ok {
		return v
	}
	h.log.Warn("unhandled native", log.String("native", n.Name), log.String("hash", n.Hash.String()))
	return native.Void()
}

// generic covers the three shapes most natives share: a boolean query on an
// object, a boolean setter on an object and an effect-only call on an object.
func (h *Host) generic(n *native.Native, args []native.Value) (native.Value, bool) {
	switch {
	case n.Returns == native.KindBool && len(args) == 1 && args[0].Kind == native.KindInt:
		o, ok := h.object(args[0])
		if !ok {
			return native.Bool(false), true
		}
		return native.Bool(o.State[n.Name]), true

	case n.Returns == native.KindVoid && len(args) == 2 && args[0].Kind == native.KindInt && args[1].Kind == native.KindBool:
		if o, ok := h.object(args[0]); ok {
			o.Toggles[n.Name] = args[1].AsBool()
		}
		return native.Void(), true

	case n.Returns == native.KindVoid && len(args) == 1 && args[0].Kind == native.KindInt:
		if o, ok := h.object(args[0]); ok {
			o.Actions = append(o.Actions, n.Name)
		}
		return native.Void(), true
	}
	return native.Value{}, false
}

// onPed adapts fn to a handler that answers void for anything but a live ped.
func onPed(fn func(h *Host, o *Object, args []native.Value) native.Value) handler {
	return func(h *Host, args []native.Value) native.Value {
		o, ok := h.ped(args[0])
		if !ok {
			return native.Void()
		}
		return fn(h, o, args)
	}
}

// onObject is onPed for any object type.
func onObject(fn func(h *Host, o *Object, args []native.Value) native.Value) handler {
	return func(h *Host, args []native.Value) native.Value {
		o, ok := h.object(args[0])
		if !ok {
			return native.Void()
		}
		return fn(h, o, args)
	}
}

func pedInt(get func(o *Object) int) handler {
	return onPed(func(_ *Host, o *Object, _ []native.Value) native.Value { return native.Int(get(o)) })
}

func pedSetInt(set func(o *Object, v int)) handler {
	return onPed(func(_ *Host, o *Object, args []native.Value) native.Value {
		set(o, args[1].AsInt())
		return native.Void()
	})
}

func pedSetBool(set func(o *Object, v bool)) handler {
	return onPed(func(_ *Host, o *Object, args []native.Value) native.Value {
		set(o, args[1].AsBool())
		return native.Void()
	})
}

func pedState(name string) handler {
	return pedSetBool(func(o *Object, v bool) { o.State[name] = v })
}

func pedHandle(get func(o *Object) int32) handler {
	return onPed(func(_ *Host, o *Object, _ []native.Value) native.Value { return native.Handle(get(o)) })
}
