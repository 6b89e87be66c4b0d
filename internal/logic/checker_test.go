package logic

import (
	"testing"
	"time"

	"github.com/sweeney/day-reminder/internal/schedule"
)

func at(hour, minute, second int) time.Time {
	return time.Date(2026, 1, 1, hour, minute, second, 0, time.UTC)
}

func kinds(triggers []Trigger) []TriggerKind {
	out := make([]TriggerKind, len(triggers))
	for i, trig := range triggers {
		out[i] = trig.Kind
	}
	return out
}

func TestCheckFiresExactStart(t *testing.T) {
	activities := []schedule.Activity{activity("Lunch", 11, 0, 12, 0)}
	c := NewChecker()

	fired := c.Check(activities, at(11, 0, 0))
	if len(fired) != 1 {
		t.Fatalf("expected 1 trigger, got %d (%v)", len(fired), kinds(fired))
	}
	if fired[0].Kind != TriggerStart {
		t.Errorf("kind: got %s, want %s", fired[0].Kind, TriggerStart)
	}
	if fired[0].Index != 0 || fired[0].Name != "Lunch" {
		t.Errorf("trigger identity: got index %d name %q", fired[0].Index, fired[0].Name)
	}
}

func TestCheckFiresDueSoon(t *testing.T) {
	activities := []schedule.Activity{activity("Lunch", 11, 0, 12, 0)}
	c := NewChecker()

	fired := c.Check(activities, at(11, 50, 0))
	if len(fired) != 1 {
		t.Fatalf("expected 1 trigger, got %d (%v)", len(fired), kinds(fired))
	}
	if fired[0].Kind != TriggerDueSoon {
		t.Errorf("kind: got %s, want %s", fired[0].Kind, TriggerDueSoon)
	}
}

// Once fired in a minute, a trigger must stay quiet for the rest of that
// minute no matter how often the loop polls.
func TestCheckLatchesWithinMinute(t *testing.T) {
	activities := []schedule.Activity{activity("Lunch", 11, 0, 12, 0)}
	c := NewChecker()

	if fired := c.Check(activities, at(11, 0, 0)); len(fired) != 1 {
		t.Fatalf("first poll: expected 1 trigger, got %d", len(fired))
	}

	for i := 0; i < 500; i++ {
		second := i % 60
		if fired := c.Check(activities, at(11, 0, second)); len(fired) != 0 {
			t.Fatalf("poll %d: trigger re-fired within the same minute", i)
		}
	}
}

// Done activities neither fire nor stamp latch bits.
func TestCheckSkipsDoneActivities(t *testing.T) {
	activities := []schedule.Activity{activity("Lunch", 11, 0, 12, 0)}
	activities[0].Done = true
	c := NewChecker()

	if fired := c.Check(activities, at(11, 0, 0)); len(fired) != 0 {
		t.Errorf("done activity fired %d triggers", len(fired))
	}
	if fired := c.Check(activities, at(11, 50, 0)); len(fired) != 0 {
		t.Errorf("done activity fired %d due-soon triggers", len(fired))
	}
}

// The latch masks for start and due-soon triggers are independent: an
// activity exactly ten minutes long fires both in its start minute.
func TestCheckStartAndDueSoonIndependent(t *testing.T) {
	activities := []schedule.Activity{activity("Stretch", 14, 0, 14, 10)}
	c := NewChecker()

	fired := c.Check(activities, at(14, 0, 0))
	if len(fired) != 2 {
		t.Fatalf("expected 2 triggers, got %d (%v)", len(fired), kinds(fired))
	}
	if fired[0].Kind != TriggerStart || fired[1].Kind != TriggerDueSoon {
		t.Errorf("got kinds %v, want [%s %s]", kinds(fired), TriggerStart, TriggerDueSoon)
	}
}

// Known sharp edge, reproduced deliberately: the whole latch mask clears on
// any observed minute change, and the clear runs after the current
// activity's bit is stamped. The first activity checked in a fresh minute
// still sees its stale bit, so its trigger lands one poll late.
func TestCheckMinuteRolloverDefersFirstActivity(t *testing.T) {
	activities := []schedule.Activity{
		activity("First", 9, 1, 9, 30),
		activity("Second", 9, 1, 9, 45),
	}
	c := NewChecker()

	// Poll during 9:00 stamps both bits without firing anything.
	if fired := c.Check(activities, at(9, 0, 59)); len(fired) != 0 {
		t.Fatalf("nothing should fire at 9:00, got %d", len(fired))
	}

	// First poll of 9:01: activity 0 is deferred by its stale bit; the
	// clear it performs frees activity 1 to fire in the same pass.
	fired := c.Check(activities, at(9, 1, 0))
	if len(fired) != 1 {
		t.Fatalf("first poll of 9:01: expected 1 trigger, got %d (%v)", len(fired), kinds(fired))
	}
	if fired[0].Name != "Second" {
		t.Errorf("first poll of 9:01: fired %q, want %q", fired[0].Name, "Second")
	}

	// Second poll of 9:01: activity 0 catches up.
	fired = c.Check(activities, at(9, 1, 1))
	if len(fired) != 1 {
		t.Fatalf("second poll of 9:01: expected 1 trigger, got %d (%v)", len(fired), kinds(fired))
	}
	if fired[0].Name != "First" {
		t.Errorf("second poll of 9:01: fired %q, want %q", fired[0].Name, "First")
	}
}

// Without a preceding poll in an earlier minute there is no stale bit and
// the first activity fires immediately.
func TestCheckFirstEverPollFiresImmediately(t *testing.T) {
	activities := []schedule.Activity{activity("First", 9, 1, 9, 30)}
	c := NewChecker()

	if fired := c.Check(activities, at(9, 1, 0)); len(fired) != 1 {
		t.Fatalf("expected immediate fire on first poll, got %d", len(fired))
	}
}

func TestCheckRefiresInLaterWindow(t *testing.T) {
	// Declined activities may trigger again: due-soon at 11:50 after a
	// start trigger at 11:00 that was not confirmed.
	activities := []schedule.Activity{activity("Lunch", 11, 0, 12, 0)}
	c := NewChecker()

	if fired := c.Check(activities, at(11, 0, 0)); len(fired) != 1 {
		t.Fatalf("expected start trigger at 11:00, got %d", len(fired))
	}
	if fired := c.Check(activities, at(11, 25, 0)); len(fired) != 0 {
		t.Fatalf("expected quiet mid-window poll, got %d", len(fired))
	}
	fired := c.Check(activities, at(11, 50, 0))
	if len(fired) != 1 || fired[0].Kind != TriggerDueSoon {
		t.Fatalf("expected due-soon at 11:50, got %v", kinds(fired))
	}
}

func TestQuerySweep(t *testing.T) {
	activities := []schedule.Activity{
		activity("Breakfast", 8, 50, 9, 30),
		activity("Morning walk", 9, 0, 10, 15),
		activity("Lunch", 11, 0, 12, 0),
	}
	c := NewChecker()

	// 9:10 is inside both the breakfast and walk windows.
	matches := c.Query(activities, schedule.TimeOfDay{Hour: 9, Minute: 10})
	if len(matches) != 2 || matches[0] != 0 || matches[1] != 1 {
		t.Errorf("query 9:10: got %v, want [0 1]", matches)
	}

	// Done activities are still visited by queries.
	activities[2].Done = true
	matches = c.Query(activities, schedule.TimeOfDay{Hour: 11, Minute: 30})
	if len(matches) != 1 || matches[0] != 2 {
		t.Errorf("query 11:30: got %v, want [2]", matches)
	}

	if matches := c.Query(activities, schedule.TimeOfDay{Hour: 3, Minute: 0}); len(matches) != 0 {
		t.Errorf("query 3:00: got %v, want none", matches)
	}
}

func TestCounts(t *testing.T) {
	activities := []schedule.Activity{activity("Lunch", 11, 0, 12, 0)}
	c := NewChecker()

	c.Check(activities, at(11, 0, 0))
	c.Check(activities, at(11, 25, 0)) // quiet poll between the two trigger minutes
	c.Check(activities, at(11, 50, 0))
	c.Query(activities, schedule.TimeOfDay{Hour: 11, Minute: 30})
	c.Query(activities, schedule.TimeOfDay{Hour: 3, Minute: 0})

	counts := c.Counts()
	if counts.Starts != 1 {
		t.Errorf("Starts: got %d, want 1", counts.Starts)
	}
	if counts.DueSoons != 1 {
		t.Errorf("DueSoons: got %d, want 1", counts.DueSoons)
	}
	if counts.Queries != 2 {
		t.Errorf("Queries: got %d, want 2", counts.Queries)
	}
}
