package entities

import "time"

// EditWarEpisode is a maximal run of reverts in which each consecutive pair is
// separated by at most the configured time window. Created once by the episode
// grouper from a finished group; never mutated afterwards.
type EditWarEpisode struct {
	Reverts []RevertEvent `json:"reverts"`
}

// StartTime returns the timestamp of the first member revert.
func (e *EditWarEpisode) StartTime() time.Time {
	if len(e.Reverts) == 0 {
		return time.Time{}
	}
	return e.Reverts[0].Timestamp
}

// EndTime returns the timestamp of the last member revert.
func (e *EditWarEpisode) EndTime() time.Time {
	if len(e.Reverts) == 0 {
		return time.Time{}
	}
	return e.Reverts[len(e.Reverts)-1].Timestamp
}

// EpisodeSummary carries the derived metrics for one episode. Interval
// statistics are in minutes; duration is in hours.
type EpisodeSummary struct {
	StartTime             time.Time `json:"start_time"`
	EndTime               time.Time `json:"end_time"`
	DurationHours         float64   `json:"duration_hours"`
	RevertCount           int       `json:"revert_count"`
	UniqueEditors         int       `json:"unique_editors"`
	Editors               []string  `json:"editors"`
	IntervalsMinutes      []float64 `json:"intervals_minutes"`
	AvgIntervalMinutes    float64   `json:"avg_interval_minutes"`
	MedianIntervalMinutes float64   `json:"median_interval_minutes"`
	MinIntervalMinutes    float64   `json:"min_interval_minutes"`
	MaxIntervalMinutes    float64   `json:"max_interval_minutes"`
}
