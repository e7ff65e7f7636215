// Package loop drives fixed-rate callbacks from a frontend's main loop.
// Nothing here starts goroutines: the owner calls Poll from the goroutine
// that owns the game state, so callbacks never run concurrently.
package loop

import (
	"errors"
	"fmt"
	"time"
)

// MaxCatchUp is how many overdue periods a single Poll replays for one
// task. Older backlog is dropped.
const MaxCatchUp = 3

var ErrDuplicateTask = errors.New("task already scheduled")

type task struct {
	name   string
	period time.Duration
	next   time.Time
	fn     func()
	done   bool
}

// Scheduler runs named fixed-rate tasks when polled.
type Scheduler struct {
	clock Clock
	tasks []*task
}

func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{clock: clock}
}

// Every registers fn to run once per period, first one period from now.
func (s *Scheduler) Every(name string, period time.Duration, fn func()) error {
	if period <= 0 {
		return fmt.Errorf("schedule %s: period must be positive, got %s", name, period)
	}
	if s.find(name) != nil {
		return fmt.Errorf("schedule %s: %w", name, ErrDuplicateTask)
	}
	s.tasks = append(s.tasks, &task{
		name:   name,
		period: period,
		next:   s.clock.Now().Add(period),
		fn:     fn,
	})
	return nil
}

// Poll runs every due task in registration order and returns the number of
// callbacks made.
func (s *Scheduler) Poll() int {
	now := s.clock.Now()
	runs := 0
	// callbacks may cancel tasks, so walk a copy
	tasks := append([]*task(nil), s.tasks...)
	for _, t := range tasks {
		for i := 0; i < MaxCatchUp && !t.done && !now.Before(t.next); i++ {
			t.next = t.next.Add(t.period)
			t.fn()
			runs++
		}
		if !now.Before(t.next) {
			// too far behind, re-anchor instead of spiralling
			t.next = now.Add(t.period)
		}
	}
	return runs
}

// Restart makes the next run of name one full period from now.
func (s *Scheduler) Restart(name string) bool {
	t := s.find(name)
	if t == nil {
		return false
	}
	t.next = s.clock.Now().Add(t.period)
	return true
}

// Cancel removes name.
func (s *Scheduler) Cancel(name string) bool {
	for i, t := range s.tasks {
		if t.name == name {
			t.done = true
			s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Scheduled reports whether name is registered.
func (s *Scheduler) Scheduled(name string) bool {
	return s.find(name) != nil
}

func (s *Scheduler) find(name string) *task {
	for _, t := range s.tasks {
		if t.name == name {
			return t
		}
	}
	return nil
}
