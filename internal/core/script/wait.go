package script

import "time"

// DefaultResourceTimeout bounds how long a streamed resource is waited for.
const DefaultResourceTimeout = time.Second

// ResourceWait requests a streamed resource, polls until it is ready and then
// applies a mutation that depends on it. If the deadline passes first the
// mutation is dropped. Each value carries its own deadline, so concurrent waits
// never share state.
type ResourceWait struct {
	Request func()
	Ready   func() bool
	Apply   func()
	Timeout time.Duration

	started  bool
	deadline time.Time
	status   Status
	polls    int
}

// Step implements Task. The first step issues the request and fixes the
// deadline; later steps check the deadline before polling readiness.
func (w *ResourceWait) Step(now time.Time) Status {
	if w.status.Finished() {
		return w.status
	}

	if !w.started {
		w.started = true
		timeout := w.Timeout
		if timeout <= 0 {
			timeout = DefaultResourceTimeout
		}
		w.deadline = now.Add(timeout)
		if w.Request != nil {
			w.Request()
		}
		return w.poll()
	}

	if !now.Before(w.deadline) {
		w.status = StatusAbandoned
		return w.status
	}
	return w.poll()
}

func (w *ResourceWait) poll() Status {
	w.polls++
	if w.Ready == nil || !w.Ready() {
		return StatusPending
	}
	if w.Apply != nil {
		w.Apply()
	}
	w.status = StatusDone
	return w.status
}

// Polls reports how many readiness checks were made.
func (w *ResourceWait) Polls() int { return w.polls }

// Deadline is the instant after which the wait gives up. Zero before the first step.
func (w *ResourceWait) Deadline() time.Time { return w.deadline }

// Status reports the last outcome.
func (w *ResourceWait) Status() Status { return w.status }
