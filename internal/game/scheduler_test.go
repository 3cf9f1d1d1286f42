package game

import (
	"testing"
	"time"
)

func TestSchedulerRunsDueTasksInOrder(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(300*time.Millisecond, func() { order = append(order, "late") })
	s.After(100*time.Millisecond, func() { order = append(order, "early") })
	s.After(time.Second, func() { order = append(order, "never") })

	if n := s.Advance(50 * time.Millisecond); n != 0 {
		t.Fatalf("ran %d tasks before any were due", n)
	}
	if n := s.Advance(500 * time.Millisecond); n != 2 {
		t.Fatalf("ran %d tasks, want 2", n)
	}
	if len(order) != 2 || order[0] != "early" || order[1] != "late" {
		t.Fatalf("order = %v, want [early late]", order)
	}
	if s.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", s.Pending())
	}
	if s.Now() != 550*time.Millisecond {
		t.Fatalf("now = %v, want 550ms", s.Now())
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	ran := false
	h := s.After(time.Second, func() { ran = true })

	if !h.Pending() {
		t.Fatal("handle not pending after After")
	}
	if !h.Cancel() {
		t.Fatal("Cancel returned false for a pending task")
	}
	if h.Cancel() {
		t.Fatal("second Cancel returned true")
	}
	s.Advance(2 * time.Second)
	if ran {
		t.Fatal("cancelled task ran")
	}

	var zero TaskHandle
	if zero.Cancel() || zero.Pending() {
		t.Fatal("zero handle reports a task")
	}
}

func TestSchedulerTaskSchedulingTask(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.After(0, func() {
		count++
		s.After(0, func() { count++ })
	})

	s.Advance(0)
	if count != 1 {
		t.Fatalf("count = %d after first advance, want 1", count)
	}
	s.Advance(0)
	if count != 2 {
		t.Fatalf("count = %d after second advance, want 2", count)
	}
}
