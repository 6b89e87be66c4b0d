package logic

import (
	"testing"

	"github.com/sweeney/day-reminder/internal/schedule"
)

func activity(name string, sh, sm, eh, em int) schedule.Activity {
	return schedule.Activity{
		Name:  name,
		Start: schedule.TimeOfDay{Hour: sh, Minute: sm},
		End:   schedule.TimeOfDay{Hour: eh, Minute: em},
	}
}

func TestWithinBoundaries(t *testing.T) {
	tests := []struct {
		name string
		a    schedule.Activity
		now  schedule.TimeOfDay
		want bool
	}{
		// Cross-hour window 8:50-9:30: enumerate the boundary minutes.
		{"before start", activity("Breakfast", 8, 50, 9, 30), schedule.TimeOfDay{Hour: 8, Minute: 49}, false},
		{"exactly start", activity("Breakfast", 8, 50, 9, 30), schedule.TimeOfDay{Hour: 8, Minute: 50}, true},
		{"start plus one", activity("Breakfast", 8, 50, 9, 30), schedule.TimeOfDay{Hour: 8, Minute: 51}, true},
		{"end minus one", activity("Breakfast", 8, 50, 9, 30), schedule.TimeOfDay{Hour: 9, Minute: 29}, true},
		{"exactly end", activity("Breakfast", 8, 50, 9, 30), schedule.TimeOfDay{Hour: 9, Minute: 30}, false},
		{"after end", activity("Breakfast", 8, 50, 9, 30), schedule.TimeOfDay{Hour: 9, Minute: 31}, false},

		// Same-hour window 10:20-10:55.
		{"same hour before start", activity("Cleaning", 10, 20, 10, 55), schedule.TimeOfDay{Hour: 10, Minute: 19}, false},
		{"same hour exactly start", activity("Cleaning", 10, 20, 10, 55), schedule.TimeOfDay{Hour: 10, Minute: 20}, true},
		{"same hour end minus one", activity("Cleaning", 10, 20, 10, 55), schedule.TimeOfDay{Hour: 10, Minute: 54}, true},
		{"same hour exactly end", activity("Cleaning", 10, 20, 10, 55), schedule.TimeOfDay{Hour: 10, Minute: 55}, false},

		// Multi-hour window 19:00-21:30: strictly-inside hour.
		{"inside hour", activity("Reading", 19, 0, 21, 30), schedule.TimeOfDay{Hour: 20, Minute: 45}, true},
		{"end hour before end minute", activity("Reading", 19, 0, 21, 30), schedule.TimeOfDay{Hour: 21, Minute: 29}, true},
		{"end hour at end minute", activity("Reading", 19, 0, 21, 30), schedule.TimeOfDay{Hour: 21, Minute: 30}, false},
		{"hour before window", activity("Reading", 19, 0, 21, 30), schedule.TimeOfDay{Hour: 18, Minute: 59}, false},

		// Start hour with later end minute than start minute, end in a
		// later hour: the start minute alone gates entry.
		{"start hour late minute next hour end", activity("Walk", 9, 0, 10, 15), schedule.TimeOfDay{Hour: 9, Minute: 59}, true},
		{"end hour early minute", activity("Walk", 9, 0, 10, 15), schedule.TimeOfDay{Hour: 10, Minute: 14}, true},
		{"end hour at minute", activity("Walk", 9, 0, 10, 15), schedule.TimeOfDay{Hour: 10, Minute: 15}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Within(tt.a, tt.now); got != tt.want {
				t.Errorf("Within(%s, %v) = %v, want %v", tt.a.Name, tt.now, got, tt.want)
			}
		})
	}
}

func TestExactStart(t *testing.T) {
	a := activity("Lunch", 11, 0, 12, 0)

	if !ExactStart(a, schedule.TimeOfDay{Hour: 11, Minute: 0}) {
		t.Error("expected exact start at 11:00")
	}
	if ExactStart(a, schedule.TimeOfDay{Hour: 11, Minute: 1}) {
		t.Error("did not expect exact start at 11:01")
	}
	if ExactStart(a, schedule.TimeOfDay{Hour: 10, Minute: 0}) {
		t.Error("did not expect exact start at 10:00")
	}
}

func TestDueSoonSameHour(t *testing.T) {
	a := activity("Cleaning", 10, 20, 10, 55)

	if !DueSoon(a, schedule.TimeOfDay{Hour: 10, Minute: 45}) {
		t.Error("expected due-soon at 10:45 for end 10:55")
	}
	if DueSoon(a, schedule.TimeOfDay{Hour: 10, Minute: 44}) {
		t.Error("did not expect due-soon at 10:44")
	}
	if DueSoon(a, schedule.TimeOfDay{Hour: 10, Minute: 46}) {
		t.Error("did not expect due-soon at 10:46")
	}
}

func TestDueSoonHourRollover(t *testing.T) {
	// End 12:00 with now 11:50: remaining minutes wrap across the hour.
	a := activity("Lunch", 11, 0, 12, 0)

	if !DueSoon(a, schedule.TimeOfDay{Hour: 11, Minute: 50}) {
		t.Error("expected due-soon at 11:50 for end 12:00")
	}
	if DueSoon(a, schedule.TimeOfDay{Hour: 11, Minute: 49}) {
		t.Error("did not expect due-soon at 11:49")
	}
	if DueSoon(a, schedule.TimeOfDay{Hour: 11, Minute: 51}) {
		t.Error("did not expect due-soon at 11:51")
	}
}

// Sweep a whole window minute by minute: due-soon must hold at exactly one
// of them.
func TestDueSoonExactlyOnceAcrossWindow(t *testing.T) {
	a := activity("Reading", 19, 0, 21, 30)

	hits := 0
	var hitAt schedule.TimeOfDay
	for h := 18; h <= 22; h++ {
		for m := 0; m < 60; m++ {
			now := schedule.TimeOfDay{Hour: h, Minute: m}
			if DueSoon(a, now) {
				hits++
				hitAt = now
			}
		}
	}
	if hits != 1 {
		t.Fatalf("expected exactly 1 due-soon minute, got %d", hits)
	}
	if hitAt != (schedule.TimeOfDay{Hour: 21, Minute: 20}) {
		t.Errorf("due-soon at %v, want 21:20", hitAt)
	}
}

func TestDueSoonOutsideWindow(t *testing.T) {
	// 10 minutes before start is outside [start, end) and must not fire
	// even though the minute arithmetic alone would not object.
	a := activity("Medicine", 21, 30, 21, 45)

	if DueSoon(a, schedule.TimeOfDay{Hour: 21, Minute: 35}) != true {
		t.Error("expected due-soon at 21:35 for end 21:45")
	}
	if DueSoon(a, schedule.TimeOfDay{Hour: 21, Minute: 20}) {
		t.Error("did not expect due-soon before the window opens")
	}
}
