package history

import (
	"sync"
	"time"
)

// Scheduler arms a callback to run once after a delay. Re-arming a key that
// is still pending cancels the earlier callback; only the newest one fires.
type Scheduler interface {
	Schedule(key string, delay time.Duration, fn func())
	Cancel(key string)
	CancelAll()
}

// TimerScheduler is the production Scheduler backed by time.AfterFunc.
type TimerScheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewTimerScheduler returns a wall-clock scheduler.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{timers: make(map[string]*time.Timer)}
}

func (s *TimerScheduler) Schedule(key string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[key]; ok {
		timer.Stop()
	}
	s.timers[key] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, key)
		s.mu.Unlock()
		fn()
	})
}

func (s *TimerScheduler) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[key]; ok {
		timer.Stop()
		delete(s.timers, key)
	}
}

func (s *TimerScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, timer := range s.timers {
		timer.Stop()
		delete(s.timers, key)
	}
}
