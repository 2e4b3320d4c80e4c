package entities

import "time"

// ProtectionLevel describes one protection entry on a page.
type ProtectionLevel struct {
	Type   string `json:"type"`
	Level  string `json:"level"`
	Expiry string `json:"expiry,omitempty"`
}

// ProtectionStatus is the protection state of a page at analysis time.
type ProtectionStatus struct {
	Protected bool              `json:"protected"`
	Levels    []ProtectionLevel `json:"protection_level,omitempty"`
	PageID    int64             `json:"page_id,omitempty"`
}

// Talk page activity levels, derived from how many of the most recent talk
// revisions fall inside the last 30 days.
const (
	TalkActivityNone   = "none"
	TalkActivityLow    = "low"
	TalkActivityMedium = "medium"
	TalkActivityHigh   = "high"
)

// TalkActivity summarizes recent activity on a page's talk page.
type TalkActivity struct {
	HasTalkPage    bool       `json:"has_talk_page"`
	TotalRevisions int        `json:"total_revisions,omitempty"`
	RecentEdits    int        `json:"recent_activity,omitempty"`
	ActivityLevel  string     `json:"activity_level"`
	LastEdit       *time.Time `json:"last_edit,omitempty"`
}

// PageAnalysis is the full edit-war analysis result for one page.
type PageAnalysis struct {
	ID             string                 `json:"id"`
	PageTitle      string                 `json:"page_title"`
	AnalyzedAt     time.Time              `json:"analyzed_at"`
	TotalRevisions int                    `json:"total_revisions"`
	TotalReverts   int                    `json:"total_reverts"`
	RevertRate     float64                `json:"revert_rate"`
	Episodes       []EpisodeSummary       `json:"edit_wars"`
	Participation  ParticipationSummary   `json:"editor_participation"`
	Violations     []ThreeRevertViolation `json:"three_revert_violations"`
	Protection     *ProtectionStatus      `json:"protection,omitempty"`
	TalkActivity   *TalkActivity          `json:"talk_activity,omitempty"`
}
