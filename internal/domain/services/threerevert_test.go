package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groverneev/editwars/internal/domain/entities"
)

func TestScanThreeRevertRule_WorkedExample(t *testing.T) {
	// One editor, 5 edits, consecutive size deltas of 5 bytes, all gaps
	// within 24 hours: exactly one violation, at the edit where the running
	// counter first reaches 3.
	revisions := []entities.Revision{
		revAt(0, "Alice", "e1", 1000),
		revAt(1, "Alice", "e2", 1005),
		revAt(2, "Alice", "e3", 1010),
		revAt(3, "Alice", "e4", 1015),
		revAt(4, "Alice", "e5", 1020),
	}

	violations := ScanThreeRevertRule(revisions, DefaultDetectionConfig())

	require.Len(t, violations, 1)
	v := violations[0]
	assert.Equal(t, "Alice", v.Editor)
	assert.Equal(t, 3, v.RevertCount)
	assert.Equal(t, revisions[3].Timestamp, v.Timestamp)
	assert.InDelta(t, 1, v.TimeWindowHours, 1e-9)
}

func TestScanThreeRevertRule_FewerThanFourEditsIgnored(t *testing.T) {
	revisions := []entities.Revision{
		revAt(0, "Alice", "e1", 1000),
		revAt(1, "Alice", "e2", 1000),
		revAt(2, "Alice", "e3", 1000),
	}
	assert.Empty(t, ScanThreeRevertRule(revisions, DefaultDetectionConfig()))
}

func TestScanThreeRevertRule_LargeDeltasNeverQualify(t *testing.T) {
	revisions := []entities.Revision{
		revAt(0, "Alice", "e1", 1000),
		revAt(1, "Alice", "e2", 2000),
		revAt(2, "Alice", "e3", 3000),
		revAt(3, "Alice", "e4", 4000),
		revAt(4, "Alice", "e5", 5000),
	}
	assert.Empty(t, ScanThreeRevertRule(revisions, DefaultDetectionConfig()))
}

func TestScanThreeRevertRule_MissingSizesNeverQualify(t *testing.T) {
	revisions := []entities.Revision{
		revAtNoSize(0, "Alice", "e1"),
		revAtNoSize(1, "Alice", "e2"),
		revAtNoSize(2, "Alice", "e3"),
		revAtNoSize(3, "Alice", "e4"),
		revAtNoSize(4, "Alice", "e5"),
	}
	assert.Empty(t, ScanThreeRevertRule(revisions, DefaultDetectionConfig()))
}

func TestScanThreeRevertRule_LifetimeCounterNeverResets(t *testing.T) {
	// Three revert-like edits spread over weeks, then one more after a short
	// gap. The lifetime counter flags it; the sliding window does not.
	revisions := []entities.Revision{
		revAt(0, "Alice", "e1", 1000),
		revAt(100, "Alice", "e2", 1005),
		revAt(200, "Alice", "e3", 1010),
		revAt(300, "Alice", "e4", 1015),
		revAt(300.5, "Alice", "e5", 1020),
	}

	legacy := ScanThreeRevertRule(revisions, DefaultDetectionConfig())
	require.Len(t, legacy, 1)
	assert.Equal(t, 4, legacy[0].RevertCount)
	assert.Equal(t, revisions[4].Timestamp, legacy[0].Timestamp)

	cfg := DefaultDetectionConfig()
	cfg.SlidingWindow = true
	assert.Empty(t, ScanThreeRevertRule(revisions, cfg))
}

func TestScanThreeRevertRule_SlidingWindowFlagsRapidReverts(t *testing.T) {
	revisions := []entities.Revision{
		revAt(0, "Alice", "e1", 1000),
		revAt(1, "Alice", "e2", 1005),
		revAt(2, "Alice", "e3", 1010),
		revAt(3, "Alice", "e4", 1015),
	}

	cfg := DefaultDetectionConfig()
	cfg.SlidingWindow = true
	violations := ScanThreeRevertRule(revisions, cfg)

	require.Len(t, violations, 1)
	v := violations[0]
	assert.Equal(t, "Alice", v.Editor)
	assert.Equal(t, 3, v.RevertCount)
	assert.Equal(t, revisions[3].Timestamp, v.Timestamp)
	assert.InDelta(t, 2, v.TimeWindowHours, 1e-9)
}

func TestScanThreeRevertRule_AtMostOnePerEditor(t *testing.T) {
	var revisions []entities.Revision
	for i := 0; i < 10; i++ {
		revisions = append(revisions, revAt(float64(i), "Alice", "edit", 1000+i))
	}

	violations := ScanThreeRevertRule(revisions, DefaultDetectionConfig())
	assert.Len(t, violations, 1)
}

func TestScanThreeRevertRule_MultipleEditorsScannedIndependently(t *testing.T) {
	var revisions []entities.Revision
	for i := 0; i < 5; i++ {
		revisions = append(revisions,
			revAt(float64(i), "Alice", "edit", 1000+i),
			revAt(float64(i)+0.5, "Bob", "edit", 5000+i*500))
	}

	violations := ScanThreeRevertRule(revisions, DefaultDetectionConfig())

	// Alice's deltas are 1 byte; Bob's 500 bytes never qualify.
	require.Len(t, violations, 1)
	assert.Equal(t, "Alice", violations[0].Editor)
}

func TestScanThreeRevertRule_AnonymousEditsConflated(t *testing.T) {
	var revisions []entities.Revision
	for i := 0; i < 5; i++ {
		revisions = append(revisions, revAt(float64(i), "", "edit", 1000+i))
	}

	violations := ScanThreeRevertRule(revisions, DefaultDetectionConfig())
	require.Len(t, violations, 1)
	assert.Equal(t, entities.AnonymousEditor, violations[0].Editor)
}

func TestScanThreeRevertRule_EmptyInput(t *testing.T) {
	assert.Empty(t, ScanThreeRevertRule(nil, DefaultDetectionConfig()))
}
