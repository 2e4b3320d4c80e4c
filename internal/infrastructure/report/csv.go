package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/groverneev/editwars/internal/domain/entities"
)

// writeCSV renders one row per detected episode. Page-level figures repeat on
// every row so the file stays useful after concatenating several exports.
func writeCSV(w io.Writer, analysis *entities.PageAnalysis) error {
	writer := csv.NewWriter(w)

	header := []string{
		"page_title", "total_revisions", "total_reverts", "revert_rate",
		"episode_start", "episode_end", "duration_hours", "revert_count",
		"unique_editors", "editors", "avg_interval_minutes",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	page := []string{
		analysis.PageTitle,
		strconv.Itoa(analysis.TotalRevisions),
		strconv.Itoa(analysis.TotalReverts),
		fmt.Sprintf("%.4f", analysis.RevertRate),
	}

	if len(analysis.Episodes) == 0 {
		row := append(append([]string{}, page...), "", "", "", "0", "0", "", "")
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	for _, episode := range analysis.Episodes {
		row := append(append([]string{}, page...),
			episode.StartTime.UTC().Format(time.RFC3339),
			episode.EndTime.UTC().Format(time.RFC3339),
			fmt.Sprintf("%.2f", episode.DurationHours),
			strconv.Itoa(episode.RevertCount),
			strconv.Itoa(episode.UniqueEditors),
			strings.Join(episode.Editors, ";"),
			fmt.Sprintf("%.2f", episode.AvgIntervalMinutes),
		)
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
