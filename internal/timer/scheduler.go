// Package timer provides the recurring tick task and the live counter display.
package timer

import (
	"sync"
	"time"
)

// Stop disarms a task armed by Scheduler.Every. It is safe to call more than once.
type Stop func()

// Scheduler arms recurring tasks.
type Scheduler interface {
	// Every calls fn once per interval until the returned Stop is called.
	Every(interval time.Duration, fn func()) Stop
}

// TickerScheduler runs each task on its own goroutine driven by a time.Ticker.
type TickerScheduler struct{}

// Every implements Scheduler.
func (TickerScheduler) Every(interval time.Duration, fn func()) Stop {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}

// ManualScheduler fires tasks only when Advance is called.
type ManualScheduler struct {
	mu     sync.Mutex
	nextID int
	tasks  map[int]func()
	order  []int
}

// NewManualScheduler creates a scheduler with no armed tasks.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{tasks: make(map[int]func())}
}

// Every implements Scheduler. The interval is ignored.
func (m *ManualScheduler) Every(_ time.Duration, fn func()) Stop {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.tasks[id] = fn
	m.order = append(m.order, id)

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.tasks, id)
	}
}

// Advance fires every armed task once, in arming order.
func (m *ManualScheduler) Advance() {
	m.mu.Lock()
	var due []func()
	live := m.order[:0]
	for _, id := range m.order {
		if fn, ok := m.tasks[id]; ok {
			due = append(due, fn)
			live = append(live, id)
		}
	}
	m.order = live
	m.mu.Unlock()

	for _, fn := range due {
		fn()
	}
}

// AdvanceN calls Advance n times.
func (m *ManualScheduler) AdvanceN(n int) {
	for i := 0; i < n; i++ {
		m.Advance()
	}
}

// Armed returns the number of tasks currently armed.
func (m *ManualScheduler) Armed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}
