package script

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/zeusync/actorproxy/internal/core/observability/log"
)

// Job tracks one spawned task.
type Job struct {
	ID   uuid.UUID
	Name string

	task     Task
	onFinish []func(Status)
	steps    atomic.Int64
	status   atomic.Uint32
	done     chan struct{}
}

// Status reports the job's latest status.
func (j *Job) Status() Status { return Status(j.status.Load()) }

// Done is closed once the job finishes.
func (j *Job) Done() <-chan struct{} { return j.done }

// Steps reports how many times the task was stepped.
func (j *Job) Steps() int { return int(j.steps.Load()) }

// Scheduler steps spawned tasks once per Tick. Tasks may spawn further tasks
// from inside Step; those run from the next tick.
type Scheduler struct {
	mu    sync.Mutex
	clock Clock
	log   log.Log
	jobs  []*Job
	ticks uint64
}

func NewScheduler(clock Clock, logger log.Log) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = log.NewNop()
	}
	return &Scheduler{
		clock: clock,
		log:   logger.With(log.String("component", "scheduler")),
	}
}

// Clock returns the clock the scheduler steps against.
func (s *Scheduler) Clock() Clock { return s.clock }

// Spawn queues a task. The onFinish callbacks run once, on the ticking
// goroutine, after the task reports a finished status.
func (s *Scheduler) Spawn(name string, task Task, onFinish ...func(Status)) *Job {
	job := &Job{
		ID:       uuid.New(),
		Name:     name,
		task:     task,
		onFinish: onFinish,
		done:     make(chan struct{}),
	}

	s.mu.Lock()
	s.jobs = append(s.jobs, job)
	s.mu.Unlock()

	return job
}

// Len reports how many jobs are still pending.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Tick steps every pending job once and returns how many remain pending.
func (s *Scheduler) Tick() int {
	s.mu.Lock()
	batch := s.jobs
	s.jobs = nil
	s.ticks++
	s.mu.Unlock()

	now := s.clock.Now()
	pending := batch[:0]
	for _, job := range batch {
		job.steps.Add(1)
		st := job.task.Step(now)
		if !st.Finished() {
			pending = append(pending, job)
			continue
		}
		s.finish(job, st)
	}

	s.mu.Lock()
	s.jobs = append(pending, s.jobs...)
	n := len(s.jobs)
	s.mu.Unlock()

	return n
}

// finish runs the callbacks before closing done, so a waiter on Done sees
// their effects.
func (s *Scheduler) finish(job *Job, st Status) {
	job.status.Store(uint32(st))

	s.log.Debug("job finished",
		log.String("job", job.Name),
		log.String("id", job.ID.String()),
		log.String("status", st.String()),
		log.Int("steps", job.Steps()),
	)

	for _, fn := range job.onFinish {
		fn(st)
	}
	close(job.done)
}

// RunUntilIdle ticks until nothing is pending, yielding to the host between
// ticks.
func (s *Scheduler) RunUntilIdle(y Yielder) {
	for s.Tick() > 0 {
		if y != nil {
			y.Yield()
		}
	}
}

// Run ticks at the given rate until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, rate time.Duration) error {
	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Tick()
		}
	}
}
