// Package script drives cooperative work that has to wait on the simulation
// without stalling its tick. Work is expressed as step functions that the
// host advances once per tick; nothing here blocks between steps.
package script

import (
	"sync"
	"time"
)

// Status is the state a Task reports after a step.
type Status uint8

const (
	StatusPending Status = iota
	StatusDone
	StatusAbandoned
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusDone:
		return "done"
	case StatusAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Finished reports whether no further steps will happen.
func (s Status) Finished() bool { return s != StatusPending }

// Task is advanced once per host tick until it reports a finished status.
type Task interface {
	Step(now time.Time) Status
}

// TaskFunc adapts a function to Task.
type TaskFunc func(now time.Time) Status

func (f TaskFunc) Step(now time.Time) Status { return f(now) }

// Clock supplies the time tasks compare deadlines against.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to. Tests and replay hosts use it.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Yielder suspends the caller until the host's next scheduling quantum.
type Yielder interface {
	Yield()
}

// YieldFunc adapts a function to Yielder.
type YieldFunc func()

func (f YieldFunc) Yield() { f() }
