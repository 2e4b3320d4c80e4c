package entities

import "time"

// ThreeRevertViolation flags an editor whose own edit stream looks like
// repeated self-reverting within the rule window. At most one violation is
// emitted per editor per scan. Read-only result record.
type ThreeRevertViolation struct {
	Editor          string    `json:"editor"`
	Timestamp       time.Time `json:"timestamp"`
	RevertCount     int       `json:"revert_count"`
	TimeWindowHours float64   `json:"time_window_hours"`
}
