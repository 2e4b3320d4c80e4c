package ports

import (
	"context"

	"github.com/groverneev/editwars/internal/domain/entities"
)

// HistoryStore caches fetched revision histories locally so repeated analyses
// of the same page don't re-hit the rate-limited remote API. It stores engine
// input only; analysis results are never persisted.
type HistoryStore interface {
	// EnsureSchema creates the storage schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the store.
	Close() error

	// SaveHistory replaces the cached history for a page.
	SaveHistory(ctx context.Context, title string, revisions []entities.Revision) error

	// FindHistory returns the cached history for a page, oldest revision
	// first, or nil when the page has never been cached.
	FindHistory(ctx context.Context, title string) ([]entities.Revision, error)

	// DeleteHistory removes the cached history for a page.
	DeleteHistory(ctx context.Context, title string) error

	// ListPages returns the titles of all cached pages.
	ListPages(ctx context.Context) ([]string, error)
}
