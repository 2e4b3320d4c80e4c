// Package handlers wires domain services to their inputs: the remote wiki,
// the local history cache, and local files.
package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/groverneev/editwars/internal/domain/entities"
	"github.com/groverneev/editwars/internal/domain/ports"
	"github.com/groverneev/editwars/internal/domain/services"
	"github.com/groverneev/editwars/internal/infrastructure/parsers"
)

// AnalyzeHandler analyzes the edit history of a single page.
type AnalyzeHandler struct {
	service *services.AnalysisService
	source  ports.RevisionSource
	store   ports.HistoryStore
}

// NewAnalyzeHandler creates a new analyze handler. The store may be nil, in
// which case every analysis fetches fresh revisions.
func NewAnalyzeHandler(service *services.AnalysisService, source ports.RevisionSource, store ports.HistoryStore) *AnalyzeHandler {
	return &AnalyzeHandler{
		service: service,
		source:  source,
		store:   store,
	}
}

// AnalyzeOptions controls analysis behavior.
type AnalyzeOptions struct {
	Limit          int  // Maximum revisions to fetch
	Refresh        bool // Bypass the cache and re-fetch
	IncludeContext bool // Also fetch protection status and talk activity
}

// Handle analyzes a page, using the cached history when one exists.
func (h *AnalyzeHandler) Handle(ctx context.Context, title string, opts AnalyzeOptions) (*entities.PageAnalysis, error) {
	revisions, err := h.loadHistory(ctx, title, opts)
	if err != nil {
		return nil, err
	}

	analysis, err := h.service.AnalyzeHistory(title, revisions)
	if err != nil {
		return nil, fmt.Errorf("analyzing %q: %w", title, err)
	}

	if opts.IncludeContext {
		if err := h.enrich(ctx, analysis); err != nil {
			return nil, err
		}
	}

	return analysis, nil
}

// loadHistory returns the page history from the cache when possible, fetching
// and caching it otherwise.
func (h *AnalyzeHandler) loadHistory(ctx context.Context, title string, opts AnalyzeOptions) ([]entities.Revision, error) {
	if h.store != nil && !opts.Refresh {
		cached, err := h.store.FindHistory(ctx, title)
		if err != nil {
			return nil, fmt.Errorf("reading history cache: %w", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	revisions, err := h.source.FetchRevisions(ctx, title, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("fetching revisions: %w", err)
	}

	if h.store != nil {
		if err := h.store.SaveHistory(ctx, title, revisions); err != nil {
			return nil, fmt.Errorf("caching history: %w", err)
		}
	}

	return revisions, nil
}

// enrich attaches protection status and talk activity to the analysis.
func (h *AnalyzeHandler) enrich(ctx context.Context, analysis *entities.PageAnalysis) error {
	protection, err := h.source.FetchProtection(ctx, analysis.PageTitle)
	if err != nil {
		return fmt.Errorf("fetching protection: %w", err)
	}
	analysis.Protection = protection

	talk, err := h.source.FetchTalkActivity(ctx, analysis.PageTitle)
	if err != nil {
		return fmt.Errorf("fetching talk activity: %w", err)
	}
	analysis.TalkActivity = talk

	return nil
}

// HandleFile analyzes a revision history stored in a local JSON or CSV file.
// The title is only a label for the report; nothing is fetched or cached.
func (h *AnalyzeHandler) HandleFile(title, filePath, format string) (*entities.PageAnalysis, error) {
	var parser parsers.Parser
	if format == "" || format == "auto" {
		parser = parsers.ForFile(filePath)
	} else {
		parser = parsers.ForFormat(format)
	}
	if parser == nil {
		return nil, fmt.Errorf("unsupported format for file: %s", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	raws, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	revisions, err := parsers.ToRevisions(raws)
	if err != nil {
		return nil, fmt.Errorf("converting revisions: %w", err)
	}

	analysis, err := h.service.AnalyzeHistory(title, revisions)
	if err != nil {
		return nil, fmt.Errorf("analyzing %q: %w", title, err)
	}
	return analysis, nil
}
