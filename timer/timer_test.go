package timer

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestScheduler_After(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var fired int32
	s.After(50*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})

	time.Sleep(300 * time.Millisecond)
	if atomic.LoadInt32(&fired) != 1 {
		t.Errorf("Expected the task to fire exactly once, got %d", fired)
	}
}

func TestScheduler_Cancel(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var fired int32
	id := s.After(200*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})
	s.Cancel(id)

	time.Sleep(400 * time.Millisecond)
	if atomic.LoadInt32(&fired) != 0 {
		t.Errorf("Cancelled task must not fire, got %d", fired)
	}
}

func TestScheduler_Order(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	done := make(chan int64, 2)
	s.After(150*time.Millisecond, func() { done <- 2 })
	s.After(50*time.Millisecond, func() { done <- 1 })

	first := <-done
	second := <-done
	if first != 1 || second != 2 {
		t.Errorf("Tasks fired out of order: %d then %d", first, second)
	}
}
