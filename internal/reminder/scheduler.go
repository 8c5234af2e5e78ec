package reminder

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arifzakri/belajar/internal/planner"
)

// Dispatcher delivers a reminder to the user. The concrete Notifier chains
// sound, OS notification, and popup fallback; tests inject a recorder.
type Dispatcher interface {
	Dispatch(title, message string)
}

type timerKey struct {
	entry uuid.UUID
	kind  Kind
}

// Scheduler resolves entries and arms their reminder timers. Every armed
// timer is tracked under its entry ID and reminder kind so it can be
// revoked, unlike fire-and-forget timeouts.
type Scheduler struct {
	dispatcher Dispatcher
	now        func() time.Time

	mu      sync.Mutex
	timers  map[timerKey]*time.Timer
	pending sync.WaitGroup
}

// NewScheduler wires a scheduler around the given dispatcher.
func NewScheduler(dispatcher Dispatcher) *Scheduler {
	return &Scheduler{
		dispatcher: dispatcher,
		now:        time.Now,
		timers:     make(map[timerKey]*time.Timer),
	}
}

// Schedule resolves the entry's window, dispatches any immediate notices,
// and arms the deferred reminders. Calling it twice for the same entry arms
// fresh timers without cancelling ones already in flight. The resolved
// window is returned for display.
func (s *Scheduler) Schedule(entry planner.Entry) planner.Window {
	now := s.now()
	w := planner.Resolve(entry, now)
	s.apply(entry.ID, BuildPlan(entry, w, now))
	return w
}

func (s *Scheduler) apply(id uuid.UUID, plan Plan) {
	for _, notice := range plan.Immediate {
		s.dispatcher.Dispatch(notice.Title, notice.Message)
	}
	for _, arm := range plan.Deferred {
		s.arm(id, arm)
	}
}

func (s *Scheduler) arm(id uuid.UUID, a Arm) {
	key := timerKey{entry: id, kind: a.Kind}
	title, message := a.Title, a.Message

	s.pending.Add(1)

	// Arm under the lock so the callback observes its own handle even for
	// tiny delays.
	s.mu.Lock()
	defer s.mu.Unlock()

	var timer *time.Timer
	timer = time.AfterFunc(a.Delay, func() {
		defer s.pending.Done()
		s.dispatcher.Dispatch(title, message)

		s.mu.Lock()
		// A later Schedule call may have replaced the tracked handle.
		if s.timers[key] == timer {
			delete(s.timers, key)
		}
		s.mu.Unlock()
	})
	s.timers[key] = timer
}

// Cancel revokes the tracked timers for one entry and reports how many were
// stopped before firing.
func (s *Scheduler) Cancel(id uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	stopped := 0
	for key, timer := range s.timers {
		if key.entry != id {
			continue
		}
		if timer.Stop() {
			s.pending.Done()
			stopped++
		}
		delete(s.timers, key)
	}
	return stopped
}

// CancelAll revokes every tracked timer, typically on shutdown.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, timer := range s.timers {
		if timer.Stop() {
			s.pending.Done()
		}
		delete(s.timers, key)
	}
}

// Pending reports how many timers are currently tracked.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Wait blocks until every armed reminder has fired or been cancelled.
func (s *Scheduler) Wait() {
	s.pending.Wait()
}
