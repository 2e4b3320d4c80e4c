package services

import (
	"strings"

	"github.com/groverneev/editwars/internal/domain/entities"
)

// ClassifyReverts labels revisions that undo a prior change. Each revision is
// compared against its immediate predecessor: the comment heuristic decides,
// and when cfg.RequireSizeMatch is set the size heuristic must corroborate it
// for revisions that carry sizes on both sides. The first revision can never
// be a revert. Input must be ordered ascending by timestamp.
//
// Pure function of its input; one pass, O(n).
func ClassifyReverts(revisions []entities.Revision, cfg DetectionConfig) []entities.RevertEvent {
	cfg = cfg.normalized()

	var reverts []entities.RevertEvent
	for i := 1; i < len(revisions); i++ {
		current := &revisions[i]
		previous := &revisions[i-1]

		if !commentIndicatesRevert(current.Comment, cfg.CommentIndicators) {
			continue
		}

		if cfg.RequireSizeMatch && current.HasSize() && previous.HasSize() {
			if !sizesSimilar(*current.Size, *previous.Size, cfg.SizeSimilarityRatio) {
				continue
			}
		}

		event := entities.RevertEvent{Revision: *current}
		if previous.HasSize() {
			size := *previous.Size
			event.RevertedToSize = &size
		}
		reverts = append(reverts, event)
	}

	return reverts
}

// commentIndicatesRevert reports whether the lower-cased comment contains any
// revert indicator. A missing comment never matches.
func commentIndicatesRevert(comment string, indicators []string) bool {
	if comment == "" {
		return false
	}
	lowered := strings.ToLower(comment)
	for _, indicator := range indicators {
		if strings.Contains(lowered, indicator) {
			return true
		}
	}
	return false
}

// sizesSimilar reports whether the relative size delta is below the ratio
// threshold. A revert restores a previous state, so the resulting size should
// stay close to the preceding one.
func sizesSimilar(current, previous int, ratio float64) bool {
	diff := current - previous
	if diff < 0 {
		diff = -diff
	}
	denom := current
	if denom < 1 {
		denom = 1
	}
	return float64(diff)/float64(denom) < ratio
}
