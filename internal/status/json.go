package status

import (
	"encoding/json"
	"time"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Event         string         `json:"event,omitempty"`
	Reason        string         `json:"reason,omitempty"`
	SimTime       string         `json:"sim_time"`
	DoneCount     int            `json:"done_count"`
	Activities    []ActivityJSON `json:"activities"`
	UptimeSeconds int64          `json:"uptime_seconds"`
	StartTime     string         `json:"start_time"`
	Timestamp     string         `json:"timestamp"`
	MQTT          MQTTStatus     `json:"mqtt"`
	Counts        CountsJSON     `json:"trigger_counts"`
	Config        ConfigJSON     `json:"config"`
}

// ActivityJSON is the JSON representation of one schedule entry.
type ActivityJSON struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
	Done  bool   `json:"done"`
}

// MQTTStatus reports MQTT connection state.
type MQTTStatus struct {
	Connected bool   `json:"connected"`
	Broker    string `json:"broker"`
}

// CountsJSON is the JSON representation of trigger counts.
type CountsJSON struct {
	Starts   int `json:"starts"`
	DueSoons int `json:"due_soons"`
	Queries  int `json:"queries"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	PollMs      int64  `json:"poll_ms"`
	TickMs      int64  `json:"tick_ms"`
	SpeedFactor int    `json:"speed_factor"`
	Broker      string `json:"broker,omitempty"`
	HTTPAddr    string `json:"http_addr,omitempty"`
	LampPin     int    `json:"lamp_pin"`
	ScheduleSrc string `json:"schedule"`
}

func buildInner(snap Snapshot) StatusInner {
	simTime := ""
	if !snap.SimTime.IsZero() {
		simTime = snap.SimTime.Format("15:04:05")
	}

	activities := make([]ActivityJSON, len(snap.Activities))
	for i, a := range snap.Activities {
		activities[i] = ActivityJSON{Name: a.Name, Start: a.Start, End: a.End, Done: a.Done}
	}

	return StatusInner{
		SimTime:       simTime,
		DoneCount:     snap.DoneCount,
		Activities:    activities,
		UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:     snap.Now.UTC().Format(time.RFC3339),
		MQTT:          MQTTStatus{Connected: snap.MQTTConnected, Broker: snap.Config.Broker},
		Counts: CountsJSON{
			Starts:   snap.Counts.Starts,
			DueSoons: snap.Counts.DueSoons,
			Queries:  snap.Counts.Queries,
		},
		Config: ConfigJSON{
			PollMs:      snap.Config.PollMs,
			TickMs:      snap.Config.TickMs,
			SpeedFactor: snap.Config.SpeedFactor,
			Broker:      snap.Config.Broker,
			HTTPAddr:    snap.Config.HTTPAddr,
			LampPin:     snap.Config.LampPin,
			ScheduleSrc: snap.Config.ScheduleSrc,
		},
	}
}

// FormatJSON returns the JSON status for the web endpoint (no event/reason).
func FormatJSON(snap Snapshot) []byte {
	inner := buildInner(snap)
	data, _ := json.MarshalIndent(StatusJSON{Status: inner}, "", "  ")
	return data
}

// FormatStatusEvent returns the JSON status for an MQTT system event.
func FormatStatusEvent(snap Snapshot, event, reason string) []byte {
	inner := buildInner(snap)
	inner.Event = event
	inner.Reason = reason
	data, _ := json.Marshal(StatusJSON{Status: inner})
	return data
}
