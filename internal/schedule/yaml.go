package schedule

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlActivity is the on-disk form of one schedule entry.
type yamlActivity struct {
	Name  string `yaml:"name"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// LoadFile reads a replacement schedule from a YAML file. The file must list
// exactly MaxActivities entries; each entry is validated, unlike the
// compiled-in default which is trusted by construction.
func LoadFile(path string) ([]Activity, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schedule file: %w", err)
	}

	var entries []yamlActivity
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse schedule yaml: %w", err)
	}

	if len(entries) != MaxActivities {
		return nil, fmt.Errorf("schedule must list exactly %d activities, got %d", MaxActivities, len(entries))
	}

	activities := make([]Activity, 0, MaxActivities)
	for i, entry := range entries {
		activity, err := newActivity(entry)
		if err != nil {
			return nil, fmt.Errorf("activity %d: %w", i, err)
		}
		activities = append(activities, activity)
	}
	return activities, nil
}

func newActivity(entry yamlActivity) (Activity, error) {
	if entry.Name == "" {
		return Activity{}, errors.New("name is empty")
	}
	if len(entry.Name) > MaxNameLength {
		return Activity{}, fmt.Errorf("name %q exceeds %d characters", entry.Name, MaxNameLength)
	}

	start, err := ParseTimeOfDay(entry.Start)
	if err != nil {
		return Activity{}, fmt.Errorf("start: %w", err)
	}
	end, err := ParseTimeOfDay(entry.End)
	if err != nil {
		return Activity{}, fmt.Errorf("end: %w", err)
	}
	if !start.Before(end) {
		return Activity{}, fmt.Errorf("start %s is not before end %s", start, end)
	}

	return Activity{Name: entry.Name, Start: start, End: end}, nil
}

// ParseTimeOfDay parses an H:MM or HH:MM string into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var t TimeOfDay
	if _, err := fmt.Sscanf(s, "%d:%d", &t.Hour, &t.Minute); err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time %q: want HH:MM", s)
	}
	if !t.Valid() {
		return TimeOfDay{}, fmt.Errorf("time %q out of range", s)
	}
	return t, nil
}
