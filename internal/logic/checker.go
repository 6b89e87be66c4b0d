package logic

import (
	"time"

	"github.com/sweeney/day-reminder/internal/schedule"
)

// Checker runs the per-tick trigger scan. Start and due-soon triggers keep
// independent minute latches, so one kind firing never suppresses the other.
// Not safe for concurrent use: the poll loop owns it exclusively.
type Checker struct {
	start   minuteLatch
	dueSoon minuteLatch
	counts  TriggerCounts
}

// NewChecker creates a Checker with empty latches.
func NewChecker() *Checker {
	return &Checker{}
}

// Check scans the schedule at the given simulated time and returns the
// triggers that fired on this poll. Done activities are skipped entirely;
// they neither fire nor stamp latch bits. The query path visits done
// activities separately.
func (c *Checker) Check(activities []schedule.Activity, now time.Time) []Trigger {
	tod := schedule.TimeOfDay{Hour: now.Hour(), Minute: now.Minute()}

	var fired []Trigger
	for i := range activities {
		a := activities[i]
		if a.Done {
			continue
		}
		if c.start.admit(i, tod.Minute) && ExactStart(a, tod) {
			fired = append(fired, Trigger{Kind: TriggerStart, Index: i, Name: a.Name, At: now})
			c.counts.Starts++
		}
		if c.dueSoon.admit(i, tod.Minute) && DueSoon(a, tod) {
			fired = append(fired, Trigger{Kind: TriggerDueSoon, Index: i, Name: a.Name, At: now})
			c.counts.DueSoons++
		}
	}
	return fired
}

// Query returns the indices of every activity whose window contains t,
// including done ones. Order follows schedule order.
func (c *Checker) Query(activities []schedule.Activity, t schedule.TimeOfDay) []int {
	c.counts.Queries++

	var matches []int
	for i := range activities {
		if Within(activities[i], t) {
			matches = append(matches, i)
		}
	}
	return matches
}

// Counts returns a copy of the trigger counters.
func (c *Checker) Counts() TriggerCounts {
	return c.counts
}
