package logic

import "github.com/sweeney/day-reminder/internal/schedule"

// dueSoonLeadMinutes is how far before an activity's end the due-soon
// reminder fires.
const dueSoonLeadMinutes = 10

// Within reports whether now falls inside the activity's [start, end)
// window at minute granularity. Windows never span midnight.
func Within(a schedule.Activity, now schedule.TimeOfDay) bool {
	switch {
	case a.Start.Hour < now.Hour && a.End.Hour > now.Hour:
		// Strictly inside the window's hour span.
		return true
	case a.Start.Hour == now.Hour:
		if a.Start.Minute <= now.Minute && a.End.Minute > now.Minute {
			return true
		}
		// End lies in a later hour, so only the start minute gates entry.
		if a.End.Hour > now.Hour && a.Start.Minute <= now.Minute {
			return true
		}
	case a.End.Hour == now.Hour:
		if a.End.Minute > now.Minute {
			return true
		}
	}
	return false
}

// ExactStart reports whether now is the minute the activity begins.
func ExactStart(a schedule.Activity, now schedule.TimeOfDay) bool {
	return a.Start.Hour == now.Hour && a.Start.Minute == now.Minute
}

// DueSoon reports whether now is inside the window with exactly ten minutes
// left before the activity ends. When the end lies in the next hour the
// remaining minutes wrap as end.Minute+60-now.Minute.
func DueSoon(a schedule.Activity, now schedule.TimeOfDay) bool {
	if !Within(a, now) {
		return false
	}
	if a.End.Hour == now.Hour && a.End.Minute-now.Minute == dueSoonLeadMinutes {
		return true
	}
	if a.End.Hour == now.Hour+1 && a.End.Minute+60-now.Minute == dueSoonLeadMinutes {
		return true
	}
	return false
}
