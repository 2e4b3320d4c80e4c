// Package entities contains core domain data structures.
package entities

import (
	"fmt"
	"time"
)

// AnonymousEditor is the sentinel identifier for unauthenticated contributors.
// The MediaWiki API omits the user field when the editor is unregistered or
// suppressed, so all such revisions collapse into this one pseudo-editor.
// Participation and violation counts for it mix every IP editor together.
const AnonymousEditor = "Anonymous"

// Revision is one historical state of a page. Size and ParentID are pointers
// because the API can omit them; presence is checked explicitly before any
// size heuristic runs.
type Revision struct {
	Timestamp time.Time `json:"timestamp"`
	Editor    string    `json:"editor"`
	Comment   string    `json:"comment,omitempty"`
	Size      *int      `json:"size,omitempty"`
	RevID     int64     `json:"rev_id,omitempty"`
	ParentID  *int64    `json:"parent_id,omitempty"`
}

// HasSize reports whether the revision carries a byte size.
func (r *Revision) HasSize() bool {
	return r.Size != nil
}

// EditorOrAnonymous returns the editor identifier, substituting the anonymous
// sentinel when the field is empty.
func (r *Revision) EditorOrAnonymous() string {
	if r.Editor == "" {
		return AnonymousEditor
	}
	return r.Editor
}

// ValidateHistory checks that every revision in a history carries a timestamp,
// since without one the chronological ordering cannot be established.
// Ascending timestamp order itself is a documented precondition of the
// detection components and is not enforced here; callers that fetch through
// the API already receive revisions oldest-first.
func ValidateHistory(revisions []Revision) error {
	for i := range revisions {
		if revisions[i].Timestamp.IsZero() {
			return fmt.Errorf("revision %d: missing timestamp", i)
		}
	}
	return nil
}
