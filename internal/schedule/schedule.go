// Package schedule defines the fixed daily activity set the reminder works
// through: ten named activities with start/end times at minute granularity.
package schedule

import "fmt"

const (
	// MaxActivities is the fixed size of a daily schedule.
	MaxActivities = 10

	// MaxNameLength is the longest allowed activity name.
	MaxNameLength = 19
)

// TimeOfDay is a wall-clock time at minute granularity.
type TimeOfDay struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// Before reports whether t is strictly earlier in the day than u.
func (t TimeOfDay) Before(u TimeOfDay) bool {
	if t.Hour != u.Hour {
		return t.Hour < u.Hour
	}
	return t.Minute < u.Minute
}

// Valid reports whether both fields are in range.
func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

// String formats the time as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Activity is one scheduled entry of the day. Done transitions false to true
// exactly once for the lifetime of the process and is never reset.
type Activity struct {
	Name  string
	Start TimeOfDay
	End   TimeOfDay
	Done  bool
}

// Default returns the compiled-in daily schedule. The slice order is
// significant to callers: the position of an activity is its bit index in
// the trigger latches.
func Default() []Activity {
	return []Activity{
		{Name: "Breakfast", Start: TimeOfDay{8, 50}, End: TimeOfDay{9, 30}},
		{Name: "Morning walk", Start: TimeOfDay{9, 0}, End: TimeOfDay{10, 15}},
		{Name: "House cleaning", Start: TimeOfDay{10, 20}, End: TimeOfDay{10, 55}},
		{Name: "Lunch", Start: TimeOfDay{11, 0}, End: TimeOfDay{12, 0}},
		{Name: "Afternoon nap", Start: TimeOfDay{13, 45}, End: TimeOfDay{15, 0}},
		{Name: "Grocery shopping", Start: TimeOfDay{15, 20}, End: TimeOfDay{15, 45}},
		{Name: "Cooking", Start: TimeOfDay{16, 15}, End: TimeOfDay{17, 30}},
		{Name: "Dinner", Start: TimeOfDay{17, 45}, End: TimeOfDay{18, 30}},
		{Name: "Evening reading", Start: TimeOfDay{19, 0}, End: TimeOfDay{21, 30}},
		{Name: "Get medicine", Start: TimeOfDay{21, 30}, End: TimeOfDay{21, 45}},
	}
}
