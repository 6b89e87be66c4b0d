// Package status provides a thread-safe status tracker for the day-reminder
// daemon. It is read by the HTTP handlers and by MQTT system events.
package status

import (
	"sync"
	"time"

	"github.com/sweeney/day-reminder/internal/logic"
	"github.com/sweeney/day-reminder/internal/schedule"
)

// ActivityStatus is a display copy of one schedule entry.
type ActivityStatus struct {
	Name  string
	Start string
	End   string
	Done  bool
}

// Config contains daemon configuration for display.
type Config struct {
	PollMs      int64
	TickMs      int64
	SpeedFactor int
	Broker      string
	HTTPAddr    string
	LampPin     int
	ScheduleSrc string // "builtin" or the YAML path
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type — safe to use after the lock is released.
type Snapshot struct {
	SimTime       time.Time
	Activities    []ActivityStatus
	DoneCount     int
	Counts        logic.TriggerCounts
	StartTime     time.Time
	Now           time.Time
	MQTTConnected bool
	Config        Config
}

// Uptime returns the real duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// Update sets the simulated time, schedule state, and trigger counts.
// Called from the poll loop on every tick; the activity slice is copied, so
// later mutations by the loop do not leak into held snapshots.
func (t *Tracker) Update(simTime time.Time, activities []schedule.Activity, counts logic.TriggerCounts) {
	display := make([]ActivityStatus, len(activities))
	done := 0
	for i, a := range activities {
		display[i] = ActivityStatus{
			Name:  a.Name,
			Start: a.Start.String(),
			End:   a.End.String(),
			Done:  a.Done,
		}
		if a.Done {
			done++
		}
	}

	t.mu.Lock()
	t.snap.SimTime = simTime
	t.snap.Activities = display
	t.snap.DoneCount = done
	t.snap.Counts = counts
	t.mu.Unlock()
}

// SetMQTTConnected sets the MQTT connection status.
func (t *Tracker) SetMQTTConnected(connected bool) {
	t.mu.Lock()
	t.snap.MQTTConnected = connected
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
