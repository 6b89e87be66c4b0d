// Package logic contains the pure scheduling predicates and edge latches for
// the reminder. This package has NO external dependencies (no terminal, MQTT,
// OS, or time.Sleep). The current time is always passed in.
package logic

import "time"

// TriggerKind identifies why a reminder fired.
type TriggerKind string

const (
	// TriggerStart fires in the minute an activity is scheduled to begin.
	TriggerStart TriggerKind = "ACTIVITY_START"

	// TriggerDueSoon fires in the minute exactly ten minutes before an
	// activity ends, while it is still in its window.
	TriggerDueSoon TriggerKind = "DUE_SOON"
)

// Trigger is a single edge-detected reminder event.
type Trigger struct {
	Kind  TriggerKind
	Index int    // position of the activity in the schedule
	Name  string // activity name, for messages and payloads
	At    time.Time
}

// TriggerCounts tracks how many reminders fired since startup.
type TriggerCounts struct {
	Starts   int
	DueSoons int
	Queries  int
}
