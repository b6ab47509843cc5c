package clock

import (
	"sync"
	"time"
)

// Clock tells the current time in the campus time zone.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type clock struct {
	location *time.Location
}

func (c *clock) Now() time.Time {
	return time.Now().In(c.location)
}

func (c *clock) Location() *time.Location {
	return c.location
}

func New() Clock {
	return &clock{location: time.Local}
}

func NewInLocation(location *time.Location) Clock {
	return &clock{location: location}
}

type Mock struct {
	mu  sync.Mutex
	now time.Time
}

func NewMock(now time.Time) *Mock {
	return &Mock{
		now: now,
	}
}

func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Mock) Location() *time.Location {
	return m.Now().Location()
}

func (m *Mock) Set(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
