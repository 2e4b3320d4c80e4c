// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/groverneev/editwars/internal/domain/entities"
)

// RevisionSource supplies revision histories and page metadata from a remote
// wiki. Implementations return revisions ordered ascending by timestamp, the
// ordering every detection component assumes.
type RevisionSource interface {
	// FetchRevisions returns up to limit revisions of the page, oldest first.
	FetchRevisions(ctx context.Context, title string, limit int) ([]entities.Revision, error)

	// FetchProtection returns the protection status of the page.
	FetchProtection(ctx context.Context, title string) (*entities.ProtectionStatus, error)

	// FetchTalkActivity summarizes recent activity on the page's talk page.
	FetchTalkActivity(ctx context.Context, title string) (*entities.TalkActivity, error)

	// RandomPages returns up to count random article titles.
	RandomPages(ctx context.Context, count int) ([]string, error)
}
