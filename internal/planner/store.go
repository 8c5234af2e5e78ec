package planner

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Validate trims the entry's free-text fields and checks the submission
// rules: subject, time range, and goal must be non-empty, and the range must
// not end before it starts. The returned entry carries the trimmed fields.
func Validate(entry Entry, now time.Time) (Entry, error) {
	entry.Subject = strings.TrimSpace(entry.Subject)
	entry.TimeRange = strings.TrimSpace(entry.TimeRange)
	entry.Goal = strings.TrimSpace(entry.Goal)

	if entry.Subject == "" || entry.TimeRange == "" || entry.Goal == "" {
		return Entry{}, ErrMissingFields
	}

	startTok, endTok := SplitRange(entry.TimeRange)
	if endTok != "" {
		start := ParseClock(startTok, now)
		end := ParseClock(endTok, now)
		if end.Before(start) {
			return Entry{}, ErrRangeInverted
		}
	}

	return entry, nil
}

// Store holds the session's entries in insertion order. Entries live only in
// memory for the lifetime of the process; there is no persistence layer.
type Store struct {
	entries []Entry
}

// NewStore returns an empty in-memory entry store.
func NewStore() *Store {
	return &Store{}
}

// Add validates the entry, assigns an ID when absent, and appends it.
func (s *Store) Add(entry Entry) (Entry, error) {
	validated, err := Validate(entry, time.Now())
	if err != nil {
		return Entry{}, err
	}
	if validated.ID == uuid.Nil {
		validated.ID = uuid.New()
	}
	s.entries = append(s.entries, validated)
	return validated, nil
}

// All returns the entries in insertion order. The slice is a copy; mutating
// it does not affect the store.
func (s *Store) All() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len reports how many entries the store holds.
func (s *Store) Len() int {
	return len(s.entries)
}

// Visible returns the entries shown under the active day filter: entries
// whose weekday matches, plus every date-pinned entry.
func (s *Store) Visible(day time.Weekday) []Entry {
	var out []Entry
	for _, entry := range s.entries {
		if entry.HasDate() || entry.Day == day {
			out = append(out, entry)
		}
	}
	return out
}

// Toggle flips the completed flag of the entry with the given ID. Completion
// is only ever changed through this explicit action, never by the scheduler.
func (s *Store) Toggle(id uuid.UUID) (Entry, error) {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Completed = !s.entries[i].Completed
			return s.entries[i], nil
		}
	}
	return Entry{}, ErrInvalidIndex
}
