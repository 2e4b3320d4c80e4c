package services

import (
	"sort"

	"github.com/groverneev/editwars/internal/domain/entities"
)

// SummarizeEpisode derives the metrics for one episode: duration, distinct
// participants, the ordered gaps between consecutive reverts in minutes, and
// mean/median/min/max over those gaps. All interval statistics are zero for
// an episode with fewer than two members.
//
// Pure, called once per episode.
func SummarizeEpisode(episode entities.EditWarEpisode) entities.EpisodeSummary {
	summary := entities.EpisodeSummary{
		StartTime:   episode.StartTime(),
		EndTime:     episode.EndTime(),
		RevertCount: len(episode.Reverts),
	}
	if len(episode.Reverts) == 0 {
		return summary
	}

	summary.DurationHours = summary.EndTime.Sub(summary.StartTime).Hours()
	summary.Editors = distinctEditors(episode.Reverts)
	summary.UniqueEditors = len(summary.Editors)

	intervals := make([]float64, 0, len(episode.Reverts)-1)
	for i := 1; i < len(episode.Reverts); i++ {
		gap := episode.Reverts[i].Timestamp.Sub(episode.Reverts[i-1].Timestamp).Minutes()
		intervals = append(intervals, gap)
	}
	summary.IntervalsMinutes = intervals

	if len(intervals) > 0 {
		summary.AvgIntervalMinutes = mean(intervals)
		summary.MedianIntervalMinutes = median(intervals)
		summary.MinIntervalMinutes = minOf(intervals)
		summary.MaxIntervalMinutes = maxOf(intervals)
	}

	return summary
}

// distinctEditors returns the unique editors among the reverts, in order of
// first appearance.
func distinctEditors(reverts []entities.RevertEvent) []string {
	seen := make(map[string]bool)
	var editors []string
	for i := range reverts {
		editor := reverts[i].EditorOrAnonymous()
		if !seen[editor] {
			seen[editor] = true
			editors = append(editors, editor)
		}
	}
	return editors
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// median averages the two middle values for even-length input.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
