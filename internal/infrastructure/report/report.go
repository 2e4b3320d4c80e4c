// Package report renders analysis results as JSON, CSV, or markdown.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/groverneev/editwars/internal/domain/entities"
)

// ValidFormats lists the supported output formats.
var ValidFormats = []string{"json", "csv", "markdown"}

// ValidFormat reports whether format is one of the supported formats.
func ValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Write renders the analysis in the given format.
func Write(w io.Writer, format string, analysis *entities.PageAnalysis) error {
	switch format {
	case "json":
		return writeJSON(w, analysis)
	case "csv":
		return writeCSV(w, analysis)
	case "markdown":
		return writeMarkdown(w, analysis)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// DefaultFilename returns the conventional export filename for a page title.
func DefaultFilename(sanitizedTitle, format string) string {
	ext := format
	if format == "markdown" {
		ext = "md"
	}
	return fmt.Sprintf("editwar_%s.%s", sanitizedTitle, ext)
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
