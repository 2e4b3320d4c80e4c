// Package mocks provides mock implementations of the domain ports.
package mocks

import (
	"context"

	"github.com/groverneev/editwars/internal/domain/entities"
)

// RevisionSource is a mock implementation of ports.RevisionSource.
type RevisionSource struct {
	Revisions map[string][]entities.Revision
	Protected map[string]*entities.ProtectionStatus
	Talk      map[string]*entities.TalkActivity
	Random    []string
	Err       error

	FetchCalls int
}

// NewRevisionSource creates a new mock RevisionSource.
func NewRevisionSource() *RevisionSource {
	return &RevisionSource{
		Revisions: make(map[string][]entities.Revision),
		Protected: make(map[string]*entities.ProtectionStatus),
		Talk:      make(map[string]*entities.TalkActivity),
	}
}

// FetchRevisions returns the configured revisions for the page.
func (m *RevisionSource) FetchRevisions(_ context.Context, title string, limit int) ([]entities.Revision, error) {
	m.FetchCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	revisions := m.Revisions[title]
	if limit > 0 && limit < len(revisions) {
		return revisions[:limit], nil
	}
	return revisions, nil
}

// FetchProtection returns the configured protection status for the page.
func (m *RevisionSource) FetchProtection(_ context.Context, title string) (*entities.ProtectionStatus, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if status, ok := m.Protected[title]; ok {
		return status, nil
	}
	return &entities.ProtectionStatus{}, nil
}

// FetchTalkActivity returns the configured talk activity for the page.
func (m *RevisionSource) FetchTalkActivity(_ context.Context, title string) (*entities.TalkActivity, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if talk, ok := m.Talk[title]; ok {
		return talk, nil
	}
	return &entities.TalkActivity{ActivityLevel: entities.TalkActivityNone}, nil
}

// RandomPages returns the configured random titles.
func (m *RevisionSource) RandomPages(_ context.Context, count int) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if count > 0 && count < len(m.Random) {
		return m.Random[:count], nil
	}
	return m.Random, nil
}
