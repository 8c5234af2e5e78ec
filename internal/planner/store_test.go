package planner

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestValidateTrimsAndAccepts(t *testing.T) {
	entry, err := Validate(Entry{
		Subject:   "  Math ",
		TimeRange: " 9:00 AM ║ 10:30 AM ",
		Goal:      " Revise algebra ",
		Day:       time.Monday,
	}, testNow)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if entry.Subject != "Math" || entry.Goal != "Revise algebra" {
		t.Fatalf("fields not trimmed: %#v", entry)
	}
	if entry.TimeRange != "9:00 AM ║ 10:30 AM" {
		t.Fatalf("time range not trimmed: %q", entry.TimeRange)
	}
}

func TestValidateRejectsMissingFields(t *testing.T) {
	cases := []Entry{
		{TimeRange: "9:00 AM ║ 10:00 AM", Goal: "g"},
		{Subject: "s", Goal: "g"},
		{Subject: "s", TimeRange: "9:00 AM ║ 10:00 AM"},
		{Subject: "   ", TimeRange: "9:00 AM ║ 10:00 AM", Goal: "g"},
	}
	for i, entry := range cases {
		if _, err := Validate(entry, testNow); !errors.Is(err, ErrMissingFields) {
			t.Errorf("case %d: err = %v, want ErrMissingFields", i, err)
		}
	}
}

func TestValidateRejectsInvertedRange(t *testing.T) {
	_, err := Validate(Entry{
		Subject:   "Late session",
		TimeRange: "11:00 PM ║ 1:00 AM",
		Goal:      "Cram",
	}, testNow)
	if !errors.Is(err, ErrRangeInverted) {
		t.Fatalf("err = %v, want ErrRangeInverted", err)
	}
}

func TestStoreAddKeepsInsertionOrderAndAssignsIDs(t *testing.T) {
	store := NewStore()

	first, err := store.Add(Entry{Subject: "Math", TimeRange: "9:00 AM ║ 10:00 AM", Goal: "a", Day: time.Monday})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	second, err := store.Add(Entry{Subject: "Physics", TimeRange: "14:00 ║ 15:00", Goal: "b", Day: time.Tuesday})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if first.ID == uuid.Nil || second.ID == uuid.Nil {
		t.Fatal("expected generated IDs")
	}
	if first.ID == second.ID {
		t.Fatal("IDs must be unique")
	}

	all := store.All()
	if len(all) != 2 || all[0].Subject != "Math" || all[1].Subject != "Physics" {
		t.Fatalf("unexpected order: %#v", all)
	}
}

func TestStoreVisibleFiltersByDayOrDate(t *testing.T) {
	store := NewStore()
	mustAdd(t, store, Entry{Subject: "Math", TimeRange: "9:00 AM ║ 10:00 AM", Goal: "a", Day: time.Monday})
	mustAdd(t, store, Entry{Subject: "Physics", TimeRange: "14:00 ║ 15:00", Goal: "b", Day: time.Tuesday})
	mustAdd(t, store, Entry{
		Subject: "Biology", TimeRange: "10:00 AM ║ 11:00 AM", Goal: "c",
		Day: time.Friday, Date: time.Date(2025, time.December, 2, 0, 0, 0, 0, time.UTC),
	})

	visible := store.Visible(time.Monday)
	if len(visible) != 2 {
		t.Fatalf("Visible(Monday) returned %d entries, want 2", len(visible))
	}
	if visible[0].Subject != "Math" || visible[1].Subject != "Biology" {
		t.Fatalf("unexpected visible set: %#v", visible)
	}
}

func TestStoreToggle(t *testing.T) {
	store := NewStore()
	entry := mustAdd(t, store, Entry{Subject: "Math", TimeRange: "9:00 AM ║ 10:00 AM", Goal: "a", Day: time.Monday})

	toggled, err := store.Toggle(entry.ID)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !toggled.Completed {
		t.Fatal("expected Completed = true after first toggle")
	}

	toggled, err = store.Toggle(entry.ID)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if toggled.Completed {
		t.Fatal("expected Completed = false after second toggle")
	}

	if _, err := store.Toggle(uuid.New()); !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("Toggle unknown ID err = %v, want ErrInvalidIndex", err)
	}
}

func mustAdd(t *testing.T, store *Store, entry Entry) Entry {
	t.Helper()
	added, err := store.Add(entry)
	if err != nil {
		t.Fatalf("Add(%s): %v", entry.Subject, err)
	}
	return added
}
