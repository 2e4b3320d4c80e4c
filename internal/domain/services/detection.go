// Package services contains domain business logic.
package services

// Default detection parameters.
const (
	// DefaultWindowHours is the grouping window for episodes and the rule
	// window for the three-revert scan.
	DefaultWindowHours = 24
	// DefaultMinReverts is the minimum episode size and violation threshold.
	DefaultMinReverts = 3
	// DefaultSizeSimilarityRatio is the relative size delta below which two
	// adjacent revisions are considered size-similar.
	DefaultSizeSimilarityRatio = 0.10
	// DefaultSelfRevertDelta is the absolute byte delta below which an
	// editor's consecutive edits look like self-reverting.
	DefaultSelfRevertDelta = 100
)

// DefaultCommentIndicators are the substrings that mark an edit summary as a
// revert. Matching is fixed keyword containment on the lower-cased comment.
func DefaultCommentIndicators() []string {
	return []string{"revert", "undo", "rv", "rollback", "restore", "reverted"}
}

// DetectionConfig holds the tunable parameters of the detection engine. Every
// component takes it explicitly, so independent analyses can run concurrently
// with different parameter sets.
type DetectionConfig struct {
	// WindowHours is the maximum gap in hours between consecutive reverts of
	// one episode, and the rule window for the three-revert scan. Inclusive:
	// a gap exactly equal to the window stays in the same group.
	WindowHours float64
	// MinReverts is the minimum number of reverts for a group to count as an
	// episode and for the three-revert scan to flag an editor.
	MinReverts int
	// CommentIndicators are the revert keywords matched against comments.
	CommentIndicators []string
	// SizeSimilarityRatio is the relative size-delta threshold of the
	// corroborating size heuristic.
	SizeSimilarityRatio float64
	// SelfRevertDelta is the absolute byte-delta threshold of the
	// three-revert scan.
	SelfRevertDelta int
	// RequireSizeMatch additionally requires the size heuristic to pass for a
	// revision to classify as a revert, when both sizes are present. The
	// comment heuristic alone decides by default.
	RequireSizeMatch bool
	// SlidingWindow switches the three-revert scan to a true rolling
	// 24-hour count instead of the historical lifetime counter.
	SlidingWindow bool
}

// DefaultDetectionConfig returns a DetectionConfig with default values.
func DefaultDetectionConfig() DetectionConfig {
	return DetectionConfig{
		WindowHours:         DefaultWindowHours,
		MinReverts:          DefaultMinReverts,
		CommentIndicators:   DefaultCommentIndicators(),
		SizeSimilarityRatio: DefaultSizeSimilarityRatio,
		SelfRevertDelta:     DefaultSelfRevertDelta,
	}
}

// normalized fills zero-valued fields with defaults so a partially built
// config behaves sensibly.
func (c DetectionConfig) normalized() DetectionConfig {
	if c.WindowHours <= 0 {
		c.WindowHours = DefaultWindowHours
	}
	if c.MinReverts <= 0 {
		c.MinReverts = DefaultMinReverts
	}
	if len(c.CommentIndicators) == 0 {
		c.CommentIndicators = DefaultCommentIndicators()
	}
	if c.SizeSimilarityRatio <= 0 {
		c.SizeSimilarityRatio = DefaultSizeSimilarityRatio
	}
	if c.SelfRevertDelta <= 0 {
		c.SelfRevertDelta = DefaultSelfRevertDelta
	}
	return c
}
