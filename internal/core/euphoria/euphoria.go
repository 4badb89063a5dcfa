// Package euphoria drives procedural physics reactions on a ped. A reaction
// is a named message with typed parameters that is sent after the ped has
// been put into ragdoll.
package euphoria

import (
	"sync"
	"time"

	"github.com/zeusync/actorproxy/internal/core/native"
)

type Owner interface {
	ID() int32
	Invoker() native.Invoker
}

const stopAll = "stopAllBehaviours"

// Euphoria hands out one Helper per message name.
type Euphoria struct {
	owner Owner

	mu      sync.Mutex
	helpers map[string]*Helper
}

// New stores the owner. It makes no calls.
func New(owner Owner) *Euphoria {
	return &Euphoria{owner: owner}
}

// Helper returns the helper for the named message, creating it on first use.
func (e *Euphoria) Helper(name string) *Helper {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.helpers == nil {
		e.helpers = make(map[string]*Helper)
	}
	h, ok := e.helpers[name]
	if !ok {
		h = &Helper{owner: e.owner, name: name}
		e.helpers[name] = h
	}
	return h
}

func (e *Euphoria) BodyBalance() *Helper { return e.Helper("bodyBalance") }

func (e *Euphoria) ArmsWindmill() *Helper { return e.Helper("armsWindmill") }

func (e *Euphoria) ShotReaction() *Helper { return e.Helper("shot") }

// StopAll ends every running reaction on the owner.
func (e *Euphoria) StopAll() {
	send(e.owner, true, stopAll, nil)
}

type param struct {
	key   string
	value native.Value
}

// Helper accumulates parameters for one message. Setting a key twice keeps the
// last value.
type Helper struct {
	owner  Owner
	name   string
	params []param
}

func (h *Helper) Name() string { return h.name }

func (h *Helper) set(key string, v native.Value) *Helper {
	for i := range h.params {
		if h.params[i].key == key {
			h.params[i].value = v
			return h
		}
	}
	h.params = append(h.params, param{key: key, value: v})
	return h
}

func (h *Helper) SetBool(key string, v bool) *Helper { return h.set(key, native.Bool(v)) }

func (h *Helper) SetInt(key string, v int) *Helper { return h.set(key, native.Int(v)) }

func (h *Helper) SetFloat(key string, v float64) *Helper { return h.set(key, native.Float(v)) }

func (h *Helper) SetString(key string, v string) *Helper { return h.set(key, native.String(v)) }

// Reset drops every parameter.
func (h *Helper) Reset() { h.params = nil }

// Start ragdolls the owner for d and sends the message with its parameters.
// A negative d keeps the ragdoll going until Stop.
func (h *Helper) Start(d time.Duration) {
	ms := int64(-1)
	if d >= 0 {
		ms = d.Milliseconds()
	}
	native.Call(h.owner.Invoker(), native.SetPedToRagdoll,
		native.Handle(h.owner.ID()), native.Int(10000), native.Int64(ms), native.Int(1))
	send(h.owner, true, h.name, h.params)
}

// Stop ends this reaction only.
func (h *Helper) Stop() {
	send(h.owner, false, h.name, nil)
}

func send(owner Owner, start bool, name string, params []param) {
	inv := owner.Invoker()
	native.Call(inv, native.CreateNMMessage, native.Bool(start), native.String(name))
	for _, p := range params {
		k := native.String(p.key)
		switch p.value.Kind {
		case native.KindBool:
			native.Call(inv, native.SetNMMessageBool, k, p.value)
		case native.KindInt:
			native.Call(inv, native.SetNMMessageInt, k, p.value)
		case native.KindFloat:
			native.Call(inv, native.SetNMMessageFloat, k, p.value)
		case native.KindString:
			native.Call(inv, native.SetNMMessageStr, k, p.value)
		}
	}
	native.Call(inv, native.GivePedNMMessage, native.Handle(owner.ID()))
}
