package service

import "time"

// Clock tells the current calendar date in the configured zone.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(loc *time.Location, now func() time.Time) Clock {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return Clock{loc: loc, now: now}
}

func (c Clock) Now() time.Time {
	return c.now()
}

// Today is midnight UTC of the local calendar date, the form DATE columns
// round-trip as.
func (c Clock) Today() time.Time {
	t := c.now().In(c.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
