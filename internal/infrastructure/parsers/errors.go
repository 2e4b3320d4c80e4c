package parsers

import "fmt"

// ParseError describes a bad value in a specific record of an input file.
type ParseError struct {
	LineNum int
	Field   string
	Value   string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid %s value %q: %v", e.LineNum, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
