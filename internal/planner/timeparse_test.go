package planner

import (
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2025, time.November, 19, 12, 0, 0, 0, time.UTC) // a Wednesday

func TestParseClockTwelveHour(t *testing.T) {
	cases := []struct {
		input  string
		hour   int
		minute int
	}{
		{"9:30 AM", 9, 30},
		{"9:30 PM", 21, 30},
		{"12:00 AM", 0, 0},
		{"12:00 PM", 12, 0},
		{"12:45 pm", 12, 45},
		{"1:05am", 1, 5},
		{"11:59 pm", 23, 59},
	}

	for _, tc := range cases {
		got := ParseClock(tc.input, testNow)
		if got.Hour() != tc.hour || got.Minute() != tc.minute {
			t.Errorf("ParseClock(%q) = %02d:%02d, want %02d:%02d",
				tc.input, got.Hour(), got.Minute(), tc.hour, tc.minute)
		}
		if got.Second() != 0 || got.Nanosecond() != 0 {
			t.Errorf("ParseClock(%q) kept sub-minute precision: %s", tc.input, got)
		}
		if got.Year() != testNow.Year() || got.YearDay() != testNow.YearDay() {
			t.Errorf("ParseClock(%q) moved off today: %s", tc.input, got)
		}
	}
}

func TestParseClockTwentyFourHourFallback(t *testing.T) {
	got := ParseClock("14:00", testNow)
	if got.Hour() != 14 || got.Minute() != 0 {
		t.Fatalf("ParseClock(14:00) = %02d:%02d, want 14:00", got.Hour(), got.Minute())
	}

	got = ParseClock("08:15", testNow)
	if got.Hour() != 8 || got.Minute() != 15 {
		t.Fatalf("ParseClock(08:15) = %02d:%02d, want 08:15", got.Hour(), got.Minute())
	}
}

func TestParseClockMalformedDefaultsToNow(t *testing.T) {
	for _, input := range []string{"", "noon", "9", "soon:ish", "   "} {
		if got := ParseClock(input, testNow); !got.Equal(testNow) {
			t.Errorf("ParseClock(%q) = %s, want now (%s)", input, got, testNow)
		}
	}
}

func TestSplitRange(t *testing.T) {
	start, end := SplitRange("9:00 AM ║ 10:30 AM")
	if start != "9:00 AM" || end != "10:30 AM" {
		t.Fatalf("SplitRange = (%q, %q), want (9:00 AM, 10:30 AM)", start, end)
	}

	start, end = SplitRange("14:00")
	if start != "14:00" || end != "" {
		t.Fatalf("SplitRange without delimiter = (%q, %q), want (14:00, \"\")", start, end)
	}
}

func TestSplitRangeRoundTripsThroughParseClock(t *testing.T) {
	composite := "9:00 AM ║ 10:30 AM"
	start, end := SplitRange(composite)

	if got, want := ParseClock(start, testNow), ParseClock("9:00 AM", testNow); !got.Equal(want) {
		t.Fatalf("start token parsed to %s, want %s", got, want)
	}
	if got, want := ParseClock(end, testNow), ParseClock("10:30 AM", testNow); !got.Equal(want) {
		t.Fatalf("end token parsed to %s, want %s", got, want)
	}
}

func TestFormatSlot(t *testing.T) {
	got, err := FormatSlot("09:00", 90, testNow)
	if err != nil {
		t.Fatalf("FormatSlot: %v", err)
	}
	if got != "09:00 AM ║ 10:30 AM" {
		t.Fatalf("FormatSlot = %q, want %q", got, "09:00 AM ║ 10:30 AM")
	}

	got, err = FormatSlot("23:30", 60, testNow)
	if err != nil {
		t.Fatalf("FormatSlot: %v", err)
	}
	if got != "11:30 PM ║ 12:30 AM" {
		t.Fatalf("FormatSlot = %q, want %q", got, "11:30 PM ║ 12:30 AM")
	}

	if _, err := FormatSlot("25:99", 30, testNow); err == nil {
		t.Fatal("FormatSlot accepted an invalid start time")
	}
	if _, err := FormatSlot("09:00", 0, testNow); err == nil {
		t.Fatal("FormatSlot accepted a zero duration")
	}
}

func TestDisplayRange(t *testing.T) {
	if got := DisplayRange("9:00 AM ║ 10:30 AM"); got != "9:00 AM - 10:30 AM" {
		t.Fatalf("DisplayRange = %q", got)
	}
	if got := DisplayRange("14:00"); got != "14:00" {
		t.Fatalf("DisplayRange without end = %q", got)
	}
}

func TestRelativeLabel(t *testing.T) {
	cases := []struct {
		t    time.Time
		want string
	}{
		{testNow.Add(30 * time.Second), "in <1m"},
		{testNow.Add(45 * time.Minute), "in 45m"},
		{testNow.Add(3 * time.Hour), "in 3h"},
		{testNow.Add(50 * time.Hour), "in 2d"},
		{testNow.Add(-20 * time.Second), "just now"},
		{testNow.Add(-10 * time.Minute), "10m ago"},
		{testNow.Add(-26 * time.Hour), "1d ago"},
	}
	for _, tc := range cases {
		if got := RelativeLabel(tc.t, testNow); got != tc.want {
			t.Errorf("RelativeLabel(%s) = %q, want %q", tc.t, got, tc.want)
		}
	}
	if got := RelativeLabel(time.Time{}, testNow); got != "" {
		t.Errorf("RelativeLabel(zero) = %q, want empty", got)
	}
}

func TestParseWeekday(t *testing.T) {
	for name, want := range map[string]time.Weekday{
		"Monday":    time.Monday,
		"sunday":    time.Sunday,
		" SATURDAY": time.Saturday,
	} {
		got, ok := ParseWeekday(name)
		if !ok || got != want {
			t.Errorf("ParseWeekday(%q) = (%v, %v), want (%v, true)", name, got, ok, want)
		}
	}

	if _, ok := ParseWeekday("someday"); ok {
		t.Fatal("ParseWeekday accepted an invalid name")
	}
	if _, ok := ParseWeekday(strings.Repeat("x", 40)); ok {
		t.Fatal("ParseWeekday accepted garbage")
	}
}
