package shared

import (
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_clock.go -package mocks tweet_pilot/shared IClock

// IClock abstracts wall-clock time and timezone resolution, so that the
// dispatcher and strategy runner can be driven deterministically in tests.
type IClock interface {
	Now() time.Time
	Location(name string) (*time.Location, error)
}

type systemClock struct {
	mu   sync.Mutex
	locs map[string]*time.Location
}

func NewSystemClock() IClock {
	return &systemClock{locs: make(map[string]*time.Location)}
}

func (sc *systemClock) Now() time.Time {
	return time.Now().UTC()
}

func (sc *systemClock) Location(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if loc, ok := sc.locs[name]; ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	sc.locs[name] = loc
	return loc, nil
}

// DayKey is the calendar-date bucket used for quota and progress rows.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// NextMidnight returns the first instant of the next calendar day in loc.
func NextMidnight(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
	return next.UTC()
}
