package planner

import "time"

// Resolve computes the concrete reminder window for an entry relative to now.
//
// The start and end tokens are parsed as time-of-day only; the duration is
// their raw difference, with no midnight wraparound correction. An explicit
// date wins over the weekday. In weekday mode the entry is projected onto
// the next occurrence of its day: a candidate on a future day is kept as is,
// and a same-day candidate whose start already passed is deliberately not
// rolled to next week.
func Resolve(entry Entry, now time.Time) Window {
	startTok, endTok := SplitRange(entry.TimeRange)
	start := ParseClock(startTok, now)
	end := ParseClock(endTok, now)
	duration := end.Sub(start)

	if entry.HasDate() {
		realStart := time.Date(
			entry.Date.Year(), entry.Date.Month(), entry.Date.Day(),
			start.Hour(), start.Minute(), 0, 0,
			now.Location(),
		)
		return Window{Start: realStart, End: realStart.Add(duration)}
	}

	daysUntil := (int(entry.Day) - int(now.Weekday()) + 7) % 7
	candidate := atClock(now, start.Hour(), start.Minute()).AddDate(0, 0, daysUntil)
	if candidate.Before(now) && daysUntil != 0 {
		candidate = candidate.AddDate(0, 0, 7)
	}
	return Window{Start: candidate, End: candidate.Add(duration)}
}
