package planner

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry represents a single study block: what to study, when, and why.
// Day carries the weekday the entry belongs to; Date, when set, pins the
// entry to a concrete calendar day and wins over Day for scheduling.
type Entry struct {
	ID        uuid.UUID
	Subject   string
	TimeRange string
	Goal      string
	Day       time.Weekday
	Date      time.Time
	Completed bool
}

// HasDate reports whether the entry is pinned to an explicit calendar date.
func (e Entry) HasDate() bool {
	return !e.Date.IsZero()
}

// Window is the concrete start/end instant pair an entry resolves to for a
// given occurrence. It is derived, never stored.
type Window struct {
	Start time.Time
	End   time.Time
}

// DayGroup pairs a weekday with the entries filed under it.
type DayGroup struct {
	Day     time.Weekday
	Entries []Entry
}

// WeekOrder fixes the Monday-first ordering used for grouping and display.
var WeekOrder = [7]time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// ParseWeekday maps a weekday name to its time.Weekday, case-insensitively.
func ParseWeekday(name string) (time.Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday":
		return time.Sunday, true
	case "monday":
		return time.Monday, true
	case "tuesday":
		return time.Tuesday, true
	case "wednesday":
		return time.Wednesday, true
	case "thursday":
		return time.Thursday, true
	case "friday":
		return time.Friday, true
	case "saturday":
		return time.Saturday, true
	default:
		return time.Sunday, false
	}
}
