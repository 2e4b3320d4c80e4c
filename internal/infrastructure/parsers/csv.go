package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSVParser parses revision histories from CSV format.
type CSVParser struct{}

// Parse reads CSV from the reader and returns parsed revisions.
// Expected columns: timestamp, user, comment, size, revid, parentid
func (p *CSVParser) Parse(r io.Reader) ([]RawRevision, error) {
	reader := csv.NewReader(r)

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	return p.readRecords(reader, colIndex)
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[col] = i
	}

	requiredCols := []string{"timestamp", "user"}
	for _, col := range requiredCols {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return colIndex, nil
}

// readRecords reads all data rows and converts them to RawRevisions.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) ([]RawRevision, error) {
	var revisions []RawRevision
	lineNum := 1 // Header is line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		revision, err := p.parseRecord(record, colIndex, lineNum)
		if err != nil {
			return nil, err
		}
		revisions = append(revisions, revision)
	}

	return revisions, nil
}

// parseRecord converts a CSV record to a RawRevision.
func (p *CSVParser) parseRecord(record []string, colIndex map[string]int, lineNum int) (RawRevision, error) {
	revision := RawRevision{
		Timestamp: getColumn(record, colIndex, "timestamp"),
		User:      getColumn(record, colIndex, "user"),
		Comment:   getColumn(record, colIndex, "comment"),
		LineNum:   lineNum,
	}

	if sizeStr := getColumn(record, colIndex, "size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			return RawRevision{}, &ParseError{LineNum: lineNum, Field: "size", Value: sizeStr, Err: err}
		}
		revision.Size = &size
	}

	if revIDStr := getColumn(record, colIndex, "revid"); revIDStr != "" {
		revID, err := strconv.ParseInt(revIDStr, 10, 64)
		if err != nil {
			return RawRevision{}, &ParseError{LineNum: lineNum, Field: "revid", Value: revIDStr, Err: err}
		}
		revision.RevID = revID
	}

	if parentStr := getColumn(record, colIndex, "parentid"); parentStr != "" {
		parentID, err := strconv.ParseInt(parentStr, 10, 64)
		if err != nil {
			return RawRevision{}, &ParseError{LineNum: lineNum, Field: "parentid", Value: parentStr, Err: err}
		}
		revision.ParentID = &parentID
	}

	return revision, nil
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return record[idx]
	}
	return ""
}
