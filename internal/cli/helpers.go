package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arifzakri/belajar/internal/planner"
)

// buildEntry assembles and validates an entry from command flags. The day
// defaults to Monday, matching the planner's initial day filter.
func buildEntry(subject, timeRange, goal, dayFlag, dateFlag string) (planner.Entry, error) {
	day := time.Monday
	if strings.TrimSpace(dayFlag) != "" {
		parsed, ok := planner.ParseWeekday(dayFlag)
		if !ok {
			return planner.Entry{}, fmt.Errorf("invalid weekday %q", dayFlag)
		}
		day = parsed
	}

	var date time.Time
	if strings.TrimSpace(dateFlag) != "" {
		parsed, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(dateFlag), time.Local)
		if err != nil {
			return planner.Entry{}, fmt.Errorf("parse date: %w", err)
		}
		date = parsed
	}

	entry, err := planner.Validate(planner.Entry{
		Subject:   subject,
		TimeRange: timeRange,
		Goal:      goal,
		Day:       day,
		Date:      date,
	}, time.Now())
	if err != nil {
		return planner.Entry{}, err
	}

	entry.ID = uuid.New()
	return entry, nil
}

// parseEntrySpec reads the compact "Subject|Time Range|Goal|Day[|Date]" form
// accepted by the export command's repeatable --entry flag.
func parseEntrySpec(spec string) (planner.Entry, error) {
	parts := strings.Split(spec, "|")
	if len(parts) < 4 || len(parts) > 5 {
		return planner.Entry{}, fmt.Errorf("entry %q must have 4 or 5 |-separated fields (subject|time|goal|day[|date])", spec)
	}

	dateFlag := ""
	if len(parts) == 5 {
		dateFlag = parts[4]
	}

	return buildEntry(parts[0], parts[1], parts[2], parts[3], dateFlag)
}

func formatEntry(entry planner.Entry) string {
	var builder strings.Builder
	builder.Grow(32 + len(entry.Subject) + len(entry.Goal))

	builder.WriteString("[")
	builder.WriteString(entry.Day.String())
	builder.WriteString("] ")
	builder.WriteString(planner.DisplayRange(entry.TimeRange))
	builder.WriteString(" ")
	builder.WriteString(entry.Subject)
	builder.WriteString(": ")
	builder.WriteString(entry.Goal)

	if entry.HasDate() {
		builder.WriteString(" (")
		builder.WriteString(entry.Date.Format("2006-01-02"))
		builder.WriteString(")")
	}

	return builder.String()
}
