package planner

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// RangeDelimiter separates the start and end tokens inside a stored time range.
const RangeDelimiter = "║"

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(AM|PM)?$`)

// ParseClock turns a free-form time-of-day string into an instant on the same
// day as now. It accepts "H:MM" with an optional case-insensitive AM/PM
// suffix, falls back to reading "HH:MM" as 24-hour, and degrades to now
// itself when the input is empty or unparseable. Seconds are always zeroed.
func ParseClock(text string, now time.Time) time.Time {
	s := strings.ToUpper(strings.TrimSpace(text))
	if s == "" {
		return now
	}

	if m := clockPattern.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		switch m[3] {
		case "PM":
			if hour < 12 {
				hour += 12
			}
		case "AM":
			if hour == 12 {
				hour = 0
			}
		}
		return atClock(now, hour, minute)
	}

	parts := strings.Split(s, ":")
	if len(parts) >= 2 {
		hour, errHour := strconv.Atoi(strings.TrimSpace(parts[0]))
		minute, errMinute := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errHour == nil && errMinute == nil {
			return atClock(now, hour, minute)
		}
	}

	return now
}

// SplitRange cuts a stored "start║end" composite at the range delimiter,
// trimming both sides. Without a delimiter the whole string is the start
// token and the end token is empty.
func SplitRange(text string) (string, string) {
	start, end, found := strings.Cut(text, RangeDelimiter)
	if !found {
		return strings.TrimSpace(text), ""
	}
	return strings.TrimSpace(start), strings.TrimSpace(end)
}

// FormatSlot builds the composite range string from a 24-hour "HH:MM" start
// and a duration in minutes, rendered in 12-hour display form. It backs the
// slot generator in both the CLI and the TUI prefill.
func FormatSlot(start string, durationMin int, now time.Time) (string, error) {
	parsed, err := time.ParseInLocation("15:04", strings.TrimSpace(start), now.Location())
	if err != nil {
		return "", fmt.Errorf("parse start time: %w", err)
	}
	if durationMin <= 0 {
		return "", fmt.Errorf("duration must be a positive number of minutes")
	}

	from := atClock(now, parsed.Hour(), parsed.Minute())
	to := from.Add(time.Duration(durationMin) * time.Minute)
	return fmt.Sprintf("%s %s %s", formatClock12(from), RangeDelimiter, formatClock12(to)), nil
}

// DisplayRange renders a stored composite range with a plain dash, for
// surfaces that cannot show the box-drawing delimiter.
func DisplayRange(timeRange string) string {
	start, end := SplitRange(timeRange)
	if end == "" {
		return start
	}
	return start + " - " + end
}

// RelativeLabel describes how far t sits from now in coarse human terms.
func RelativeLabel(t time.Time, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	if t.After(now) {
		delta := t.Sub(now)
		if delta < time.Minute {
			return "in <1m"
		}
		if delta < time.Hour {
			return fmt.Sprintf("in %dm", int(delta.Minutes()))
		}
		if delta < 24*time.Hour {
			return fmt.Sprintf("in %dh", int(delta.Hours()))
		}
		return fmt.Sprintf("in %dd", int(delta.Hours()/24))
	}

	delta := now.Sub(t)
	if delta < time.Minute {
		return "just now"
	}
	if delta < time.Hour {
		return fmt.Sprintf("%dm ago", int(delta.Minutes()))
	}
	if delta < 24*time.Hour {
		return fmt.Sprintf("%dh ago", int(delta.Hours()))
	}
	return fmt.Sprintf("%dd ago", int(delta.Hours()/24))
}

func atClock(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func formatClock12(t time.Time) string {
	return t.Format("03:04 PM")
}
