package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses revision histories from JSON format. The input is an
// array of revision objects in MediaWiki export field names, oldest first.
type JSONParser struct{}

// Parse reads JSON from the reader and returns parsed revisions.
func (p *JSONParser) Parse(r io.Reader) ([]RawRevision, error) {
	var revisions []RawRevision

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&revisions); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	// Set line numbers (array index + 1, 1-indexed)
	for i := range revisions {
		revisions[i].LineNum = i + 1
	}

	return revisions, nil
}
