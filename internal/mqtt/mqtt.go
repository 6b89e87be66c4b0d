// Package mqtt publishes reminder events with abstraction for testing, so
// other home-automation consumers can react to the day's activities.
package mqtt

import (
	"encoding/json"
	"time"

	"github.com/sweeney/day-reminder/internal/logic"
)

// Topic is the MQTT topic for reminder activity events.
const Topic = "home/day-reminder/events"

// TopicSystem is the MQTT topic for system lifecycle events.
const TopicSystem = "home/day-reminder/system"

// EventMarkedDone is published when the user confirms an activity.
const EventMarkedDone = "MARKED_DONE"

// Publisher publishes events to MQTT.
type Publisher interface {
	// Publish sends a reminder event to the broker.
	// Returns error if publishing fails (should not crash the process).
	Publish(event Event) error

	// PublishSystem sends a system lifecycle event to the broker.
	PublishSystem(event SystemEvent) error

	// Close disconnects from the broker.
	Close() error
}

// ConnectionStatus reports whether the MQTT connection is active.
type ConnectionStatus interface {
	IsConnected() bool
}

// Event is a reminder activity event. Timestamp carries the simulated
// clock, not wall time: consumers follow the reminder's day.
type Event struct {
	Timestamp time.Time
	Type      string // trigger kind or EventMarkedDone
	Activity  string
	Index     int
}

// FromTrigger converts a matcher trigger into a publishable event.
func FromTrigger(t logic.Trigger) Event {
	return Event{
		Timestamp: t.At,
		Type:      string(t.Kind),
		Activity:  t.Name,
		Index:     t.Index,
	}
}

// SystemEvent represents a system lifecycle event (startup, shutdown).
type SystemEvent struct {
	Timestamp  time.Time
	Event      string // e.g. "STARTUP", "SHUTDOWN"
	Reason     string // e.g. "SIGTERM", "END_OF_DAY" (shutdown only)
	RawPayload []byte // pre-formatted JSON; if set, FormatSystemPayload returns it directly
	Retained   bool
}

// Payload is the MQTT message envelope for reminder events.
type Payload struct {
	Reminder ReminderPayload `json:"reminder"`
}

// ReminderPayload contains the reminder event details.
type ReminderPayload struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
	Activity  string `json:"activity"`
	Index     int    `json:"index"`
}

// FormatPayload creates the JSON payload for a reminder event.
func FormatPayload(event Event) ([]byte, error) {
	payload := Payload{
		Reminder: ReminderPayload{
			Timestamp: event.Timestamp.Format(time.RFC3339),
			Event:     event.Type,
			Activity:  event.Activity,
			Index:     event.Index,
		},
	}
	return json.Marshal(payload)
}

// SystemPayload is the MQTT message envelope for simple system events that
// do not carry a full status snapshot.
type SystemPayload struct {
	System SystemPayloadInner `json:"system"`
}

// SystemPayloadInner contains the system event details.
type SystemPayloadInner struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
	Reason    string `json:"reason,omitempty"`
}

// FormatSystemPayload creates the JSON payload for a system event.
// If event.RawPayload is set, it is returned directly (used for full status
// snapshots).
func FormatSystemPayload(event SystemEvent) ([]byte, error) {
	if event.RawPayload != nil {
		return event.RawPayload, nil
	}

	payload := SystemPayload{
		System: SystemPayloadInner{
			Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
			Event:     event.Event,
			Reason:    event.Reason,
		},
	}
	return json.Marshal(payload)
}
