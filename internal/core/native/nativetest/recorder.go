// Package nativetest provides an Invoker double that records calls and
// checks every call against the binding table.
package nativetest

import (
	"sync"

	"github.com/zeusync/actorproxy/internal/core/native"
)

// TB is the subset of testing.TB the recorder reports through.
type TB interface {
	Helper()
	Errorf(format string, args ...any)
}

// Call is one recorded invocation.
type Call struct {
	Native *native.Native
	Args   []native.Value
}

// Responder computes the result of a call.
type Responder func(args []native.Value) native.Value

type Recorder struct {
	t  TB
	mu sync.Mutex

	calls      []Call
	responders map[*native.Native]Responder
}

func NewRecorder(t TB) *Recorder {
	return &Recorder{t: t, responders: make(map[*native.Native]Responder)}
}

// On installs a responder for n, replacing any previous one.
func (r *Recorder) On(n *native.Native, fn Responder) *Recorder {
	r.mu.Lock()
	r.responders[n] = fn
	r.mu.Unlock()
	return r
}

// Returns makes n always answer v.
func (r *Recorder) Returns(n *native.Native, v native.Value) *Recorder {
	return r.On(n, func([]native.Value) native.Value { return v })
}

func (r *Recorder) Invoke(n *native.Native, args ...native.Value) native.Value {
	if err := n.Check(args); err != nil {
		r.t.Helper()
		r.t.Errorf("call shape: %v", err)
	}
	r.mu.Lock()
	r.calls = append(r.calls, Call{Native: n, Args: append([]native.Value(nil), args...)})
	fn := r.responders[n]
	r.mu.Unlock()
	if fn == nil {
		return native.Void()
	}
	return fn(args)
}

// Calls returns every recorded call in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// CallsTo returns the recorded calls of n in order.
func (r *Recorder) CallsTo(n *native.Native) []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Call
	for _, c := range r.calls {
		if c.Native == n {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many times n was called.
func (r *Recorder) Count(n *native.Native) int {
	return len(r.CallsTo(n))
}

// Last returns the most recent call of n.
func (r *Recorder) Last(n *native.Native) (Call, bool) {
	calls := r.CallsTo(n)
	if len(calls) == 0 {
		return Call{}, false
	}
	return calls[len(calls)-1], true
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}
