package report

import (
	"encoding/json"
	"io"

	"github.com/groverneev/editwars/internal/domain/entities"
)

func writeJSON(w io.Writer, analysis *entities.PageAnalysis) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(analysis)
}
