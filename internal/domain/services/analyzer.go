package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/groverneev/editwars/internal/domain/entities"
)

// AnalysisService runs the full detection pipeline over one revision history:
// revert classification, episode grouping with per-episode statistics,
// participation analysis, and the three-revert scan. It holds no state beyond
// its configuration, so independent pages can be analyzed concurrently with
// one service per worker or a single shared instance.
type AnalysisService struct {
	cfg DetectionConfig
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(cfg DetectionConfig) *AnalysisService {
	return &AnalysisService{cfg: cfg.normalized()}
}

// Config returns the detection configuration in use.
func (s *AnalysisService) Config() DetectionConfig {
	return s.cfg
}

// AnalyzeHistory analyzes the complete, chronologically ordered revision
// history of one page. Revisions missing a timestamp are rejected up front;
// an empty history yields an empty analysis rather than an error.
func (s *AnalysisService) AnalyzeHistory(pageTitle string, revisions []entities.Revision) (*entities.PageAnalysis, error) {
	if err := entities.ValidateHistory(revisions); err != nil {
		return nil, fmt.Errorf("validating history: %w", err)
	}

	analysis := &entities.PageAnalysis{
		ID:             uuid.New().String(),
		PageTitle:      pageTitle,
		AnalyzedAt:     time.Now().UTC(),
		TotalRevisions: len(revisions),
	}

	reverts := ClassifyReverts(revisions, s.cfg)
	analysis.TotalReverts = len(reverts)
	if len(revisions) > 0 {
		analysis.RevertRate = float64(len(reverts)) / float64(len(revisions))
	}

	for _, episode := range GroupEpisodes(reverts, s.cfg) {
		analysis.Episodes = append(analysis.Episodes, SummarizeEpisode(episode))
	}

	analysis.Participation = AnalyzeParticipation(revisions, reverts)
	analysis.Violations = ScanThreeRevertRule(revisions, s.cfg)

	return analysis, nil
}
