package planner

import (
	"testing"
	"time"
)

func TestGroupByDayEmpty(t *testing.T) {
	groups := GroupByDay(nil)

	if len(groups) != 7 {
		t.Fatalf("got %d groups, want 7", len(groups))
	}
	for i, day := range WeekOrder {
		if groups[i].Day != day {
			t.Fatalf("groups[%d].Day = %s, want %s", i, groups[i].Day, day)
		}
		if len(groups[i].Entries) != 0 {
			t.Fatalf("groups[%d] has %d entries, want 0", i, len(groups[i].Entries))
		}
	}
}

func TestGroupByDayBucketsByDayField(t *testing.T) {
	entries := []Entry{
		{Subject: "Math", Day: time.Monday},
		{Subject: "Physics", Day: time.Monday},
		{Subject: "History", Day: time.Sunday},
		// Date set, but grouping still follows the Day field.
		{Subject: "Biology", Day: time.Friday, Date: time.Date(2025, time.December, 2, 0, 0, 0, 0, time.UTC)},
	}

	groups := GroupByDay(entries)

	counts := map[time.Weekday]int{}
	total := 0
	for _, g := range groups {
		counts[g.Day] = len(g.Entries)
		total += len(g.Entries)
	}

	if total != len(entries) {
		t.Fatalf("grouped %d entries, want %d", total, len(entries))
	}
	if counts[time.Monday] != 2 || counts[time.Sunday] != 1 || counts[time.Friday] != 1 {
		t.Fatalf("unexpected distribution: %v", counts)
	}
	if groups[0].Day != time.Monday || groups[6].Day != time.Sunday {
		t.Fatalf("week order broken: first=%s last=%s", groups[0].Day, groups[6].Day)
	}
}
