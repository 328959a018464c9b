package game

import (
	"sync"
	"time"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
)

// Clock provides the current instant and the calendar day it falls on.
// The day boundary is midnight in the clock's location.
type Clock interface {
	// Now returns the current time in UTC
	Now() time.Time
	// Today returns the current calendar date (YYYY-MM-DD) in the clock's location
	Today() string
	// Location is where day boundaries are drawn
	Location() *time.Location
}

// SystemClock uses the actual system time
type SystemClock struct {
	loc *time.Location
}

// NewSystemClock creates a clock whose days start at midnight in loc (UTC when nil)
func NewSystemClock(loc *time.Location) *SystemClock {
	if loc == nil {
		loc = time.UTC
	}
	return &SystemClock{loc: loc}
}

// Now returns the current system time
func (c *SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Today returns the current calendar date
func (c *SystemClock) Today() string {
	return DateOf(c.Now(), c.loc)
}

// Location returns the day-boundary location
func (c *SystemClock) Location() *time.Location {
	return c.loc
}

// SimulatedClock allows time manipulation for testing and tooling
type SimulatedClock struct {
	mu      sync.RWMutex
	current time.Time
	loc     *time.Location
}

// NewSimulatedClock creates a new SimulatedClock starting at the given time
func NewSimulatedClock(start time.Time, loc *time.Location) *SimulatedClock {
	if loc == nil {
		loc = time.UTC
	}
	return &SimulatedClock{current: start.UTC(), loc: loc}
}

// Now returns the simulated current time
func (c *SimulatedClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Today returns the simulated calendar date
func (c *SimulatedClock) Today() string {
	return DateOf(c.Now(), c.loc)
}

// Location returns the day-boundary location
func (c *SimulatedClock) Location() *time.Location {
	return c.loc
}

// Advance moves the simulated time forward by the given duration
func (c *SimulatedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// Set sets the simulated time to a specific value
func (c *SimulatedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t.UTC()
}

// DateOf formats t as a calendar date in loc
func DateOf(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(domain.DateLayout)
}

// NextMidnight returns the first midnight in loc strictly after t
func NextMidnight(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc)
}
