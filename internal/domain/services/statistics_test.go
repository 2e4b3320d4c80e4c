package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groverneev/editwars/internal/domain/entities"
)

func TestSummarizeEpisode_WorkedExample(t *testing.T) {
	// Reverts at 0h, 1h, 2h by A, B, A.
	episode := entities.EditWarEpisode{Reverts: []entities.RevertEvent{
		revertAt(0, "A"),
		revertAt(1, "B"),
		revertAt(2, "A"),
	}}

	summary := SummarizeEpisode(episode)

	assert.Equal(t, 3, summary.RevertCount)
	assert.InDelta(t, 2.0, summary.DurationHours, 1e-9)
	assert.Equal(t, []string{"A", "B"}, summary.Editors)
	assert.Equal(t, 2, summary.UniqueEditors)
	require.Equal(t, []float64{60, 60}, summary.IntervalsMinutes)
	assert.InDelta(t, 60, summary.AvgIntervalMinutes, 1e-9)
	assert.InDelta(t, 60, summary.MedianIntervalMinutes, 1e-9)
	assert.InDelta(t, 60, summary.MinIntervalMinutes, 1e-9)
	assert.InDelta(t, 60, summary.MaxIntervalMinutes, 1e-9)
}

func TestSummarizeEpisode_SingleMember(t *testing.T) {
	// Cannot occur with min_reverts >= 2, but must not divide by zero.
	episode := entities.EditWarEpisode{Reverts: []entities.RevertEvent{
		revertAt(0, "A"),
	}}

	summary := SummarizeEpisode(episode)

	assert.Equal(t, 1, summary.RevertCount)
	assert.Zero(t, summary.DurationHours)
	assert.Empty(t, summary.IntervalsMinutes)
	assert.Zero(t, summary.AvgIntervalMinutes)
	assert.Zero(t, summary.MedianIntervalMinutes)
	assert.Zero(t, summary.MinIntervalMinutes)
	assert.Zero(t, summary.MaxIntervalMinutes)
}

func TestSummarizeEpisode_Empty(t *testing.T) {
	summary := SummarizeEpisode(entities.EditWarEpisode{})
	assert.Zero(t, summary.RevertCount)
	assert.Empty(t, summary.Editors)
}

func TestSummarizeEpisode_IntervalStatistics(t *testing.T) {
	// Gaps of 30, 60, and 120 minutes.
	episode := entities.EditWarEpisode{Reverts: []entities.RevertEvent{
		revertAt(0, "A"),
		revertAt(0.5, "B"),
		revertAt(1.5, "A"),
		revertAt(3.5, "B"),
	}}

	summary := SummarizeEpisode(episode)

	require.Equal(t, []float64{30, 60, 120}, summary.IntervalsMinutes)
	assert.InDelta(t, 70, summary.AvgIntervalMinutes, 1e-9)
	assert.InDelta(t, 60, summary.MedianIntervalMinutes, 1e-9)
	assert.InDelta(t, 30, summary.MinIntervalMinutes, 1e-9)
	assert.InDelta(t, 120, summary.MaxIntervalMinutes, 1e-9)
}

func TestSummarizeEpisode_MedianAveragesMiddlePair(t *testing.T) {
	// Even interval count: gaps of 10, 20, 40, 80 minutes.
	episode := entities.EditWarEpisode{Reverts: []entities.RevertEvent{
		revertAt(0, "A"),
		revertAt(10.0/60, "B"),
		revertAt(30.0/60, "A"),
		revertAt(70.0/60, "B"),
		revertAt(150.0/60, "A"),
	}}

	summary := SummarizeEpisode(episode)
	assert.InDelta(t, 30, summary.MedianIntervalMinutes, 1e-6)
}

func TestSummarizeEpisode_AnonymousParticipant(t *testing.T) {
	episode := entities.EditWarEpisode{Reverts: []entities.RevertEvent{
		revertAt(0, ""),
		revertAt(1, "A"),
		revertAt(2, ""),
	}}

	summary := SummarizeEpisode(episode)
	assert.Equal(t, []string{entities.AnonymousEditor, "A"}, summary.Editors)
	assert.Equal(t, 2, summary.UniqueEditors)
}
