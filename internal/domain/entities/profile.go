package entities

// ExperienceTier is a coarse bucket derived from an editor's total edit count
// on the analyzed page.
type ExperienceTier string

// Experience tiers.
const (
	TierNew          ExperienceTier = "new"
	TierIntermediate ExperienceTier = "intermediate"
	TierVeteran      ExperienceTier = "veteran"
)

// Tier thresholds: fewer than 10 edits is new, fewer than 100 is intermediate.
const (
	IntermediateEditThreshold = 10
	VeteranEditThreshold      = 100
)

// TierForEditCount returns the experience tier for the given edit count.
func TierForEditCount(edits int) ExperienceTier {
	switch {
	case edits < IntermediateEditThreshold:
		return TierNew
	case edits < VeteranEditThreshold:
		return TierIntermediate
	default:
		return TierVeteran
	}
}

// EditorProfile is the per-editor aggregate over a full revision history.
// Recomputed wholesale on each analysis run.
type EditorProfile struct {
	Editor       string         `json:"editor"`
	TotalEdits   int            `json:"total_edits"`
	TotalReverts int            `json:"reverts"`
	Tier         ExperienceTier `json:"experience_level"`
	EditShare    float64        `json:"edit_percentage"`
}

// ParticipationSummary aggregates editor profiles for one page.
type ParticipationSummary struct {
	TotalEditors        int                      `json:"total_editors"`
	Editors             map[string]EditorProfile `json:"editor_breakdown"`
	NewEditors          int                      `json:"new_editors"`
	IntermediateEditors int                      `json:"intermediate_editors"`
	VeteranEditors      int                      `json:"veteran_editors"`
}
