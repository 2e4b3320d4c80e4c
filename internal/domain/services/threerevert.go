package services

import (
	"time"

	"github.com/groverneev/editwars/internal/domain/entities"
)

// minEditsForScan is the smallest edit count worth scanning: three consecutive
// gaps need at least four edits.
const minEditsForScan = 4

// ScanThreeRevertRule flags editors whose own edit stream looks like repeated
// self-reverting within the rule window. Revisions are partitioned per editor
// (stable, so each partition stays chronological) and consecutive pairs are
// walked: a pair whose absolute size delta is below cfg.SelfRevertDelta
// counts as revert-like. An editor is flagged the moment the revert-like
// count reaches cfg.MinReverts while the gap to their previous edit is within
// cfg.WindowHours; at most one violation per editor per scan.
//
// The historical counter never resets, so it is a lifetime count rather than
// a true rolling window; cfg.SlidingWindow selects the corrected rolling
// variant instead. This scan is independent of the revert classifier.
func ScanThreeRevertRule(revisions []entities.Revision, cfg DetectionConfig) []entities.ThreeRevertViolation {
	cfg = cfg.normalized()

	partitions := make(map[string][]entities.Revision)
	var order []string
	for i := range revisions {
		editor := revisions[i].EditorOrAnonymous()
		if _, ok := partitions[editor]; !ok {
			order = append(order, editor)
		}
		partitions[editor] = append(partitions[editor], revisions[i])
	}

	var violations []entities.ThreeRevertViolation
	for _, editor := range order {
		own := partitions[editor]
		if len(own) < minEditsForScan {
			continue
		}

		var violation *entities.ThreeRevertViolation
		if cfg.SlidingWindow {
			violation = scanEditorSliding(editor, own, cfg)
		} else {
			violation = scanEditorLifetime(editor, own, cfg)
		}
		if violation != nil {
			violations = append(violations, *violation)
		}
	}

	return violations
}

// scanEditorLifetime walks one editor's revisions with a counter that never
// resets across the partition.
func scanEditorLifetime(editor string, own []entities.Revision, cfg DetectionConfig) *entities.ThreeRevertViolation {
	revertLike := 0
	for i := 1; i < len(own); i++ {
		if selfRevertLike(&own[i], &own[i-1], cfg.SelfRevertDelta) {
			revertLike++
		}

		gap := own[i].Timestamp.Sub(own[i-1].Timestamp).Hours()
		if gap <= cfg.WindowHours && revertLike >= cfg.MinReverts {
			return &entities.ThreeRevertViolation{
				Editor:          editor,
				Timestamp:       own[i].Timestamp,
				RevertCount:     revertLike,
				TimeWindowHours: gap,
			}
		}
	}
	return nil
}

// scanEditorSliding keeps only the revert-like edits whose timestamps fall
// inside the trailing rule window, the way the real three-revert rule is
// stated.
func scanEditorSliding(editor string, own []entities.Revision, cfg DetectionConfig) *entities.ThreeRevertViolation {
	window := time.Duration(cfg.WindowHours * float64(time.Hour))

	var recent []time.Time
	for i := 1; i < len(own); i++ {
		if !selfRevertLike(&own[i], &own[i-1], cfg.SelfRevertDelta) {
			continue
		}

		now := own[i].Timestamp
		recent = append(recent, now)
		for len(recent) > 0 && now.Sub(recent[0]) > window {
			recent = recent[1:]
		}

		if len(recent) >= cfg.MinReverts {
			return &entities.ThreeRevertViolation{
				Editor:          editor,
				Timestamp:       now,
				RevertCount:     len(recent),
				TimeWindowHours: now.Sub(recent[0]).Hours(),
			}
		}
	}
	return nil
}

// selfRevertLike reports whether two consecutive edits by the same editor are
// close enough in size to look like a revert. The absolute delta threshold is
// deliberately looser than the classifier's relative one. Revisions without
// sizes never qualify.
func selfRevertLike(current, previous *entities.Revision, delta int) bool {
	if !current.HasSize() || !previous.HasSize() {
		return false
	}
	diff := *current.Size - *previous.Size
	if diff < 0 {
		diff = -diff
	}
	return diff < delta
}
