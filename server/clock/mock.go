package clock

import (
	"fmt"
	"sync"
	"time"
)

// Mock exists to allow easier mocking of Clock interface.
type Mock struct {
	mu   sync.RWMutex
	time time.Time
}

var _ Clock = &Mock{}

// NewMock returns a mocked instance of a Clock set to the zero time.
func NewMock() *Mock {
	return &Mock{}
}

// Set adjusts the current time. Time cannot go backwards.
func (m *Mock) Set(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if diff := now.Sub(m.time); diff < 0 {
		panic(fmt.Sprintf("diff cannot be less than zero: %d", diff))
	}

	m.time = now
}

// Add adds the d to current time and returns the new time.
func (m *Mock) Add(d time.Duration) time.Time {
	m.mu.RLock()
	ts := m.time.Add(d)
	m.mu.RUnlock()

	m.Set(ts)

	return ts
}

func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.time
}
