package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groverneev/editwars/internal/domain/entities"
)

func TestAnalyzeParticipation_CountsAndShares(t *testing.T) {
	revisions := []entities.Revision{
		revAt(0, "Alice", "start", 100),
		revAt(1, "Bob", "expand", 200),
		revAt(2, "Alice", "rv", 100),
		revAt(3, "Alice", "tweak", 105),
	}
	reverts := ClassifyReverts(revisions, DefaultDetectionConfig())

	summary := AnalyzeParticipation(revisions, reverts)

	assert.Equal(t, 2, summary.TotalEditors)

	alice := summary.Editors["Alice"]
	assert.Equal(t, 3, alice.TotalEdits)
	assert.Equal(t, 1, alice.TotalReverts)
	assert.InDelta(t, 75, alice.EditShare, 1e-9)

	bob := summary.Editors["Bob"]
	assert.Equal(t, 1, bob.TotalEdits)
	assert.Equal(t, 0, bob.TotalReverts)
	assert.InDelta(t, 25, bob.EditShare, 1e-9)
}

func TestAnalyzeParticipation_Conservation(t *testing.T) {
	var revisions []entities.Revision
	editors := []string{"Alice", "Bob", "Carol", "", "Alice", "Bob", "Alice"}
	for i, editor := range editors {
		revisions = append(revisions, revAt(float64(i), editor, "edit", 100+i))
	}

	summary := AnalyzeParticipation(revisions, nil)

	totalEdits := 0
	totalShare := 0.0
	for _, profile := range summary.Editors {
		totalEdits += profile.TotalEdits
		totalShare += profile.EditShare
	}
	assert.Equal(t, len(revisions), totalEdits)
	assert.InDelta(t, 100, totalShare, 1e-9)
}

func TestAnalyzeParticipation_ExperienceTiers(t *testing.T) {
	var revisions []entities.Revision
	addEdits := func(editor string, count int) {
		for i := 0; i < count; i++ {
			revisions = append(revisions, revAt(float64(len(revisions)), editor, fmt.Sprintf("edit %d", i), 100))
		}
	}
	addEdits("Newbie", 9)
	addEdits("Regular", 10)
	addEdits("OldHand", 100)

	summary := AnalyzeParticipation(revisions, nil)

	assert.Equal(t, entities.TierNew, summary.Editors["Newbie"].Tier)
	assert.Equal(t, entities.TierIntermediate, summary.Editors["Regular"].Tier)
	assert.Equal(t, entities.TierVeteran, summary.Editors["OldHand"].Tier)
	assert.Equal(t, 1, summary.NewEditors)
	assert.Equal(t, 1, summary.IntermediateEditors)
	assert.Equal(t, 1, summary.VeteranEditors)
}

func TestAnalyzeParticipation_AnonymousSentinel(t *testing.T) {
	revisions := []entities.Revision{
		revAt(0, "", "edit from one IP", 100),
		revAt(1, "", "edit from another IP", 110),
	}

	summary := AnalyzeParticipation(revisions, nil)

	require.Equal(t, 1, summary.TotalEditors)
	assert.Equal(t, 2, summary.Editors[entities.AnonymousEditor].TotalEdits)
}

func TestAnalyzeParticipation_EmptyInput(t *testing.T) {
	summary := AnalyzeParticipation(nil, nil)
	assert.Zero(t, summary.TotalEditors)
	assert.Empty(t, summary.Editors)
}

func TestAnalyzeParticipation_Idempotent(t *testing.T) {
	revisions := []entities.Revision{
		revAt(0, "Alice", "start", 100),
		revAt(1, "Bob", "rv", 100),
	}
	reverts := ClassifyReverts(revisions, DefaultDetectionConfig())

	assert.Equal(t,
		AnalyzeParticipation(revisions, reverts),
		AnalyzeParticipation(revisions, reverts))
}
