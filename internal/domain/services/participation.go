package services

import (
	"github.com/groverneev/editwars/internal/domain/entities"
)

// AnalyzeParticipation aggregates per-editor edit and revert counts over a
// full revision history and its derived revert events, assigns experience
// tiers, and computes each editor's share of all edits. Recomputed in full on
// every call; there is no incremental path.
func AnalyzeParticipation(revisions []entities.Revision, reverts []entities.RevertEvent) entities.ParticipationSummary {
	edits := make(map[string]int)
	for i := range revisions {
		edits[revisions[i].EditorOrAnonymous()]++
	}

	revertCounts := make(map[string]int)
	for i := range reverts {
		revertCounts[reverts[i].EditorOrAnonymous()]++
	}

	totalEdits := len(revisions)

	summary := entities.ParticipationSummary{
		TotalEditors: len(edits),
		Editors:      make(map[string]entities.EditorProfile, len(edits)),
	}

	for editor, count := range edits {
		profile := entities.EditorProfile{
			Editor:       editor,
			TotalEdits:   count,
			TotalReverts: revertCounts[editor],
			Tier:         entities.TierForEditCount(count),
		}
		if totalEdits > 0 {
			profile.EditShare = float64(count) / float64(totalEdits) * 100
		}
		summary.Editors[editor] = profile

		switch profile.Tier {
		case entities.TierNew:
			summary.NewEditors++
		case entities.TierIntermediate:
			summary.IntermediateEditors++
		case entities.TierVeteran:
			summary.VeteranEditors++
		}
	}

	return summary
}
