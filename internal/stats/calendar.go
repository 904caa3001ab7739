// Package stats is the metrics aggregation engine. It aligns raw samples on
// a calendar-day grid, reduces them into summaries, compares weeks and
// classifies weight trends. Everything here is pure and operates on
// already-fetched data.
package stats

import (
	"errors"
	"strings"
	"time"
)

// DayLayout is the format of calendar-day keys.
const DayLayout = "2006-01-02"

// ErrInvalidRange is returned for a non-positive or unparsable day count.
var ErrInvalidRange = errors.New("invalid day range")

// Calendar truncates instants to calendar days in a fixed timezone. Every
// range and day key in a request must come from the same Calendar.
type Calendar struct {
	loc       *time.Location
	weekStart time.Weekday
}

// NewCalendar returns a Calendar for loc whose weeks begin on weekStart.
// A nil loc means UTC.
func NewCalendar(loc *time.Location, weekStart time.Weekday) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc, weekStart: weekStart}
}

// Location returns the calendar's timezone.
func (c Calendar) Location() *time.Location { return c.location() }

func (c Calendar) location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// Midnight returns the start of the calendar day containing t.
func (c Calendar) Midnight(t time.Time) time.Time {
	y, m, d := t.In(c.location()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.location())
}

// AddDays moves a midnight by n calendar days, staying on midnight across
// DST changes.
func (c Calendar) AddDays(midnight time.Time, n int) time.Time {
	y, m, d := midnight.In(c.location()).Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, c.location())
}

// DayKey returns the YYYY-MM-DD key of the day containing t.
func (c Calendar) DayKey(t time.Time) string {
	return c.Midnight(t).Format(DayLayout)
}

// Range is an ascending run of consecutive calendar days covering
// [Start, End).
type Range struct {
	Days  []string
	Start time.Time
	End   time.Time
}

// Len returns the number of days in the range.
func (r Range) Len() int { return len(r.Days) }

// LastDays resolves the n days ending with the day containing now. The cost
// grows linearly with n; no upper bound is imposed.
func (c Calendar) LastDays(now time.Time, n int) (Range, error) {
	if n < 1 {
		return Range{}, ErrInvalidRange
	}
	today := c.Midnight(now)
	start := c.AddDays(today, -(n - 1))
	days := make([]string, n)
	for i := range n {
		days[i] = c.AddDays(start, i).Format(DayLayout)
	}
	return Range{Days: days, Start: start, End: c.AddDays(today, 1)}, nil
}

// Window is a half-open instant interval [Start, End).
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t lies in [Start, End).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// StartOfWeek returns the most recent midnight, at or before now, that falls
// on the calendar's week start.
func (c Calendar) StartOfWeek(now time.Time) time.Time {
	today := c.Midnight(now)
	back := (int(today.Weekday()) - int(c.weekStart) + 7) % 7
	return c.AddDays(today, -back)
}

// Weeks returns the current week [start-of-week, now) and the previous week
// [start-of-week - 7 days, start-of-week). The two windows are adjacent.
func (c Calendar) Weeks(now time.Time) (this, last Window) {
	sow := c.StartOfWeek(now)
	this = Window{Start: sow, End: now}
	last = Window{Start: c.AddDays(sow, -7), End: sow}
	return this, last
}

// ParseWeekday parses an English weekday name such as "monday" or "Sun".
func ParseWeekday(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 3 {
		return time.Sunday, false
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, true
		}
	}
	return time.Sunday, false
}
