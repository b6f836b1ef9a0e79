package clock

import (
	"sync"
	"time"
)

// Scheduler runs a callback once after a fixed delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

type RealScheduler struct{}

func NewRealScheduler() Scheduler {
	return &RealScheduler{}
}

func (s *RealScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// MockScheduler records scheduled callbacks so tests can fire them on demand.
type MockScheduler struct {
	mu      sync.Mutex
	pending []scheduled
}

type scheduled struct {
	delay time.Duration
	fn    func()
}

func NewMockScheduler() *MockScheduler {
	return &MockScheduler{}
}

func (s *MockScheduler) AfterFunc(d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, scheduled{delay: d, fn: f})
}

// PendingCount returns the number of callbacks not yet fired.
func (s *MockScheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// LastDelay returns the delay of the most recently scheduled callback.
func (s *MockScheduler) LastDelay() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return 0, false
	}
	return s.pending[len(s.pending)-1].delay, true
}

// FireAll runs every pending callback synchronously, oldest first.
func (s *MockScheduler) FireAll() {
	s.mu.Lock()
	fns := make([]func(), len(s.pending))
	for i, p := range s.pending {
		fns[i] = p.fn
	}
	s.pending = nil
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
