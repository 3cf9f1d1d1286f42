package game

import (
	"sort"
	"time"
)

// Scheduler runs deferred callbacks on a clock that only moves when the
// owner calls Advance. Nothing runs on its own goroutine.
type Scheduler struct {
	now    time.Duration
	nextID uint64
	tasks  []*task
}

type task struct {
	id  uint64
	due time.Duration
	fn  func()
}

// TaskHandle identifies a scheduled callback. The zero value refers to no task.
type TaskHandle struct {
	s  *Scheduler
	id uint64
}

// NewScheduler creates a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once the clock has advanced by at least d.
func (s *Scheduler) After(d time.Duration, fn func()) TaskHandle {
	if d < 0 {
		d = 0
	}
	s.nextID++
	s.tasks = append(s.tasks, &task{id: s.nextID, due: s.now + d, fn: fn})
	return TaskHandle{s: s, id: s.nextID}
}

// Advance moves the clock forward by d and runs every task that became due,
// earliest first. Tasks scheduled by a running callback wait for the next
// Advance. Returns the number of callbacks run.
func (s *Scheduler) Advance(d time.Duration) int {
	if d > 0 {
		s.now += d
	}

	var due []*task
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.due <= s.now {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	clear(s.tasks[len(kept):])
	s.tasks = kept

	sort.SliceStable(due, func(i, j int) bool { return due[i].due < due[j].due })
	for _, t := range due {
		t.fn()
	}
	return len(due)
}

// Pending returns the number of tasks waiting to run.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Cancel removes the task if it has not run yet. Returns true if a task was removed.
func (h TaskHandle) Cancel() bool {
	if h.s == nil {
		return false
	}
	for i, t := range h.s.tasks {
		if t.id == h.id {
			h.s.tasks = append(h.s.tasks[:i], h.s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Pending reports whether the task is still waiting to run.
func (h TaskHandle) Pending() bool {
	if h.s == nil {
		return false
	}
	for _, t := range h.s.tasks {
		if t.id == h.id {
			return true
		}
	}
	return false
}
