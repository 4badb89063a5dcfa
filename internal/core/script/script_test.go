package script

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type resource struct {
	requests int
	checks   int
	readyAt  int // check number at which the resource reports loaded; 0 means never
	applied  int
}

func (r *resource) wait(timeout time.Duration) *ResourceWait {
	return &ResourceWait{
		Request: func() { r.requests++ },
		Ready: func() bool {
			r.checks++
			return r.readyAt > 0 && r.checks >= r.readyAt
		},
		Apply:   func() { r.applied++ },
		Timeout: timeout,
	}
}

func TestResourceWaitReadyImmediately(t *testing.T) {
	r := &resource{readyAt: 1}
	w := r.wait(time.Second)

	assert.Equal(t, StatusDone, w.Step(epoch))
	assert.Equal(t, 1, r.requests)
	assert.Equal(t, 1, r.applied)

	// finished waits never poll again
	assert.Equal(t, StatusDone, w.Step(epoch.Add(time.Millisecond)))
	assert.Equal(t, 1, r.checks)
	assert.Equal(t, 1, r.applied)
}

func TestResourceWaitReadyLater(t *testing.T) {
	r := &resource{readyAt: 3}
	w := r.wait(time.Second)

	now := epoch
	assert.Equal(t, StatusPending, w.Step(now))
	now = now.Add(16 * time.Millisecond)
	assert.Equal(t, StatusPending, w.Step(now))
	now = now.Add(16 * time.Millisecond)
	assert.Equal(t, StatusDone, w.Step(now))

	assert.Equal(t, 1, r.requests)
	assert.Equal(t, 3, w.Polls())
	assert.Equal(t, 1, r.applied)
	assert.Equal(t, epoch.Add(time.Second), w.Deadline())
}

func TestResourceWaitAbandonsAtDeadline(t *testing.T) {
	r := &resource{}
	w := r.wait(100 * time.Millisecond)

	assert.Equal(t, StatusPending, w.Step(epoch))
	assert.Equal(t, StatusPending, w.Step(epoch.Add(99*time.Millisecond)))
	assert.Equal(t, StatusAbandoned, w.Step(epoch.Add(100*time.Millisecond)))

	assert.Equal(t, 0, r.applied)
	assert.Equal(t, 2, r.checks)
	assert.Equal(t, StatusAbandoned, w.Status())
}

func TestResourceWaitDeadlineCheckedBeforeReadiness(t *testing.T) {
	r := &resource{readyAt: 2}
	w := r.wait(10 * time.Millisecond)

	require.Equal(t, StatusPending, w.Step(epoch))
	// ready on this poll, but the deadline has already passed
	assert.Equal(t, StatusAbandoned, w.Step(epoch.Add(time.Second)))
	assert.Equal(t, 0, r.applied)
	assert.Equal(t, 1, r.checks)
}

func TestResourceWaitDefaultTimeout(t *testing.T) {
	w := (&resource{}).wait(0)
	w.Step(epoch)
	assert.Equal(t, epoch.Add(DefaultResourceTimeout), w.Deadline())
}

func TestSchedulerRunsIndependentWaits(t *testing.T) {
	clock := NewManualClock(epoch)
	s := NewScheduler(clock, nil)

	fast := &resource{readyAt: 2}
	never := &resource{}

	var outcomes []Status
	record := func(st Status) { outcomes = append(outcomes, st) }

	j1 := s.Spawn("fast", fast.wait(time.Second), record)
	j2 := s.Spawn("never", never.wait(50*time.Millisecond), record)
	require.Equal(t, 2, s.Len())

	s.RunUntilIdle(YieldFunc(func() { clock.Advance(20 * time.Millisecond) }))

	assert.Equal(t, StatusDone, j1.Status())
	assert.Equal(t, StatusAbandoned, j2.Status())
	assert.Equal(t, []Status{StatusDone, StatusAbandoned}, outcomes)
	assert.Equal(t, 1, fast.applied)
	assert.Equal(t, 0, never.applied)
	assert.Equal(t, 0, s.Len())

	select {
	case <-j1.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestSchedulerCallbacksRunBeforeDone(t *testing.T) {
	s := NewScheduler(SystemClock{}, nil)

	var polls atomic.Int32
	var notified atomic.Bool
	job := s.Spawn("ticking", TaskFunc(func(time.Time) Status {
		if polls.Add(1) < 3 {
			return StatusPending
		}
		return StatusDone
	}), func(Status) { notified.Store(true) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = s.Run(ctx, time.Millisecond) }()

	select {
	case <-job.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("job did not finish")
	}
	assert.True(t, notified.Load())
	assert.Equal(t, StatusDone, job.Status())
	assert.Equal(t, 3, job.Steps())
}

func TestSchedulerSpawnFromStep(t *testing.T) {
	s := NewScheduler(NewManualClock(epoch), nil)

	var inner *Job
	s.Spawn("outer", TaskFunc(func(time.Time) Status {
		inner = s.Spawn("inner", TaskFunc(func(time.Time) Status { return StatusDone }))
		return StatusDone
	}))

	assert.Equal(t, 1, s.Tick())
	require.NotNil(t, inner)
	assert.Equal(t, StatusPending, inner.Status())
	assert.Equal(t, 0, s.Tick())
	assert.Equal(t, StatusDone, inner.Status())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "done", StatusDone.String())
	assert.Equal(t, "abandoned", StatusAbandoned.String())
	assert.False(t, StatusPending.Finished())
	assert.True(t, StatusAbandoned.Finished())
}
