package reminder

import (
	"fmt"
	"time"

	"github.com/arifzakri/belajar/internal/planner"
)

// Lead is how far ahead of an entry's start the upcoming reminder fires.
const Lead = 2 * time.Minute

// PopupTTL is how long a fallback popup card stays visible before it
// auto-dismisses.
const PopupTTL = 5 * time.Second

// Kind distinguishes the reminders an entry can receive.
type Kind uint8

const (
	// KindUpcoming fires two minutes ahead of the start.
	KindUpcoming Kind = iota
	// KindOngoing fires immediately when the entry already started.
	KindOngoing
	// KindEnded fires immediately when the entry already ended.
	KindEnded
	// KindCompleted fires when the entry's end instant passes.
	KindCompleted
)

// String names the reminder kind for plan summaries and debugging.
func (k Kind) String() string {
	switch k {
	case KindUpcoming:
		return "upcoming"
	case KindOngoing:
		return "ongoing"
	case KindEnded:
		return "ended"
	case KindCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Notice is a reminder ready to dispatch right away.
type Notice struct {
	Kind    Kind
	Title   string
	Message string
}

// Arm is a reminder to fire after a delay.
type Arm struct {
	Kind    Kind
	Delay   time.Duration
	Title   string
	Message string
}

// Plan describes everything scheduling an entry should do: notices to
// dispatch immediately and timers to arm. Building the plan is pure, so the
// whole policy is testable without timers or a dispatcher.
type Plan struct {
	Immediate []Notice
	Deferred  []Arm
}

// BuildPlan applies the reminder policy to a resolved window.
//
// With reminderStart = Start - Lead: a future reminderStart arms the
// upcoming timer; otherwise a still-running entry gets an immediate ongoing
// notice, and an already-ended one an immediate ended notice. Independently,
// a future End arms the completion timer, so one entry can receive both an
// upcoming and a completion reminder.
func BuildPlan(entry planner.Entry, w planner.Window, now time.Time) Plan {
	diffStart := w.Start.Add(-Lead).Sub(now)
	diffEnd := w.End.Sub(now)

	var plan Plan
	switch {
	case diffStart > 0:
		plan.Deferred = append(plan.Deferred, Arm{
			Kind:    KindUpcoming,
			Delay:   diffStart,
			Title:   "Upcoming Task",
			Message: fmt.Sprintf("%s %q starts in 2 minutes!", entry.Subject, entry.Goal),
		})
	case diffEnd > 0:
		plan.Immediate = append(plan.Immediate, Notice{
			Kind:    KindOngoing,
			Title:   "Ongoing Task",
			Message: fmt.Sprintf("%s %q is already started.", entry.Subject, entry.Goal),
		})
	default:
		plan.Immediate = append(plan.Immediate, Notice{
			Kind:    KindEnded,
			Title:   "Task already ended",
			Message: fmt.Sprintf("%s %q already ended.", entry.Subject, entry.Goal),
		})
	}

	if diffEnd > 0 {
		plan.Deferred = append(plan.Deferred, Arm{
			Kind:    KindCompleted,
			Delay:   diffEnd,
			Title:   "Task Completed",
			Message: fmt.Sprintf("%s %q has ended.", entry.Subject, entry.Goal),
		})
	}

	return plan
}
