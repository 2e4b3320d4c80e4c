package handlers

import (
	"context"
	"fmt"
	"sort"

	"github.com/groverneev/editwars/internal/domain/entities"
	"github.com/groverneev/editwars/internal/domain/ports"
	"github.com/groverneev/editwars/internal/domain/services"
)

// ContestedHandler samples random pages and surfaces the ones with detected
// edit wars.
type ContestedHandler struct {
	service *services.AnalysisService
	source  ports.RevisionSource
}

// NewContestedHandler creates a new contested-pages handler.
func NewContestedHandler(service *services.AnalysisService, source ports.RevisionSource) *ContestedHandler {
	return &ContestedHandler{
		service: service,
		source:  source,
	}
}

// ContestedOptions controls the random sample scan.
type ContestedOptions struct {
	SampleSize     int  // How many random pages to scan
	Limit          int  // Maximum revisions fetched per page
	MinRevisions   int  // Pages with fewer revisions are skipped outright
	IncludeContext bool // Also fetch protection status and talk activity
}

// ContestedResult is the outcome of one random sample scan.
type ContestedResult struct {
	Scanned   int
	Skipped   int
	Contested []*entities.PageAnalysis
}

// Handle scans a random sample of pages and returns those with at least one
// edit war, most contested first. Pages that fail to fetch are skipped rather
// than aborting the whole scan.
func (h *ContestedHandler) Handle(ctx context.Context, opts ContestedOptions) (*ContestedResult, error) {
	if opts.SampleSize <= 0 {
		opts.SampleSize = 10
	}

	titles, err := h.source.RandomPages(ctx, opts.SampleSize)
	if err != nil {
		return nil, fmt.Errorf("sampling random pages: %w", err)
	}

	result := &ContestedResult{}
	for _, title := range titles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.Scanned++

		revisions, err := h.source.FetchRevisions(ctx, title, opts.Limit)
		if err != nil || len(revisions) < opts.MinRevisions {
			result.Skipped++
			continue
		}

		analysis, err := h.service.AnalyzeHistory(title, revisions)
		if err != nil {
			result.Skipped++
			continue
		}
		if len(analysis.Episodes) == 0 {
			continue
		}

		if opts.IncludeContext {
			// Context failures downgrade to a bare result, the war itself
			// is already established.
			if protection, err := h.source.FetchProtection(ctx, title); err == nil {
				analysis.Protection = protection
			}
			if talk, err := h.source.FetchTalkActivity(ctx, title); err == nil {
				analysis.TalkActivity = talk
			}
		}

		result.Contested = append(result.Contested, analysis)
	}

	sort.SliceStable(result.Contested, func(i, j int) bool {
		return result.Contested[i].RevertRate > result.Contested[j].RevertRate
	})

	return result, nil
}
