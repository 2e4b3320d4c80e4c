// Package parsers provides parsers for importing revision histories from
// local files.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/groverneev/editwars/internal/domain/entities"
)

// RawRevision represents a revision parsed from an external file before
// validation. Field names follow the MediaWiki export format.
type RawRevision struct {
	Timestamp string `json:"timestamp"`
	User      string `json:"user,omitempty"`
	Comment   string `json:"comment,omitempty"`
	Size      *int   `json:"size,omitempty"`     // Pointer to distinguish 0 from unset
	RevID     int64  `json:"revid,omitempty"`
	ParentID  *int64 `json:"parentid,omitempty"` // Pointer to distinguish 0 from unset
	LineNum   int    `json:"-"`                  // Line number in source file (set by parser)
}

// Parser defines the interface for parsing revision histories from various
// formats.
type Parser interface {
	Parse(r io.Reader) ([]RawRevision, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ToRevision converts a parsed raw revision to the domain type. A missing
// user collapses to the anonymous sentinel, matching how the live API
// reports suppressed or logged-out editors.
func ToRevision(raw RawRevision) (entities.Revision, error) {
	timestamp, err := time.Parse(time.RFC3339, raw.Timestamp)
	if err != nil {
		return entities.Revision{}, &ParseError{
			LineNum: raw.LineNum,
			Field:   "timestamp",
			Value:   raw.Timestamp,
			Err:     err,
		}
	}

	editor := raw.User
	if editor == "" {
		editor = entities.AnonymousEditor
	}

	return entities.Revision{
		Timestamp: timestamp,
		Editor:    editor,
		Comment:   raw.Comment,
		Size:      raw.Size,
		RevID:     raw.RevID,
		ParentID:  raw.ParentID,
	}, nil
}

// ToRevisions converts all raw revisions, failing on the first bad record.
func ToRevisions(raws []RawRevision) ([]entities.Revision, error) {
	revisions := make([]entities.Revision, 0, len(raws))
	for _, raw := range raws {
		revision, err := ToRevision(raw)
		if err != nil {
			return nil, err
		}
		revisions = append(revisions, revision)
	}
	return revisions, nil
}
