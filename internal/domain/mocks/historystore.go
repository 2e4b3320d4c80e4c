package mocks

import (
	"context"
	"sort"

	"github.com/groverneev/editwars/internal/domain/entities"
)

// HistoryStore is a mock implementation of ports.HistoryStore.
type HistoryStore struct {
	Histories map[string][]entities.Revision
	Err       error

	SaveCalls int
}

// NewHistoryStore creates a new mock HistoryStore.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		Histories: make(map[string][]entities.Revision),
	}
}

// EnsureSchema creates the storage schema if it doesn't exist.
func (m *HistoryStore) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close closes the store.
func (m *HistoryStore) Close() error {
	return nil
}

// SaveHistory replaces the cached history for a page.
func (m *HistoryStore) SaveHistory(_ context.Context, title string, revisions []entities.Revision) error {
	if m.Err != nil {
		return m.Err
	}
	m.SaveCalls++
	m.Histories[title] = revisions
	return nil
}

// FindHistory returns the cached history for a page.
func (m *HistoryStore) FindHistory(_ context.Context, title string) ([]entities.Revision, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Histories[title], nil
}

// DeleteHistory removes the cached history for a page.
func (m *HistoryStore) DeleteHistory(_ context.Context, title string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Histories, title)
	return nil
}

// ListPages returns the titles of all cached pages.
func (m *HistoryStore) ListPages(_ context.Context) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	pages := make([]string, 0, len(m.Histories))
	for title := range m.Histories {
		pages = append(pages, title)
	}
	// Sort for deterministic test results
	sort.Strings(pages)
	return pages, nil
}
