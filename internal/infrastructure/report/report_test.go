package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groverneev/editwars/internal/domain/entities"
)

func sampleAnalysis() *entities.PageAnalysis {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return &entities.PageAnalysis{
		ID:             "analysis-1",
		PageTitle:      "Example Page",
		AnalyzedAt:     time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		TotalRevisions: 10,
		TotalReverts:   4,
		RevertRate:     0.4,
		Episodes: []entities.EpisodeSummary{
			{
				StartTime:          start,
				EndTime:            start.Add(2 * time.Hour),
				DurationHours:      2,
				RevertCount:        3,
				UniqueEditors:      2,
				Editors:            []string{"Alice", "Bob"},
				AvgIntervalMinutes: 60,
			},
		},
		Participation: entities.ParticipationSummary{
			TotalEditors: 2,
			Editors: map[string]entities.EditorProfile{
				"Alice": {Editor: "Alice", TotalEdits: 6, TotalReverts: 2, Tier: entities.TierNew, EditShare: 60},
				"Bob":   {Editor: "Bob", TotalEdits: 4, TotalReverts: 2, Tier: entities.TierNew, EditShare: 40},
			},
			NewEditors: 2,
		},
		Violations: []entities.ThreeRevertViolation{
			{Editor: "Alice", Timestamp: start.Add(2 * time.Hour), RevertCount: 3, TimeWindowHours: 2},
		},
	}
}

func TestValidFormat(t *testing.T) {
	assert.True(t, ValidFormat("json"))
	assert.True(t, ValidFormat("csv"))
	assert.True(t, ValidFormat("markdown"))
	assert.False(t, ValidFormat("xml"))
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "xml", sampleAnalysis())
	require.Error(t, err)
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "json", sampleAnalysis()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "Example Page", decoded["page_title"])
	assert.Equal(t, float64(10), decoded["total_revisions"])

	wars, ok := decoded["edit_wars"].([]any)
	require.True(t, ok)
	assert.Len(t, wars, 1)
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "csv", sampleAnalysis()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "header plus one episode row")

	assert.Equal(t, "page_title", records[0][0])
	assert.Equal(t, "Example Page", records[1][0])
	assert.Equal(t, "0.4000", records[1][3])
	assert.Equal(t, "Alice;Bob", records[1][9])
}

func TestWrite_CSV_NoEpisodes(t *testing.T) {
	analysis := sampleAnalysis()
	analysis.Episodes = nil

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "csv", analysis))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "page totals still exported without episodes")
	assert.Equal(t, "Example Page", records[1][0])
	assert.Empty(t, records[1][4])
}

func TestWrite_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "markdown", sampleAnalysis()))
	out := buf.String()

	assert.Contains(t, out, "# Edit War Analysis: Example Page")
	assert.Contains(t, out, "Revert rate: 40.0%")
	assert.Contains(t, out, "## Edit Wars (1)")
	assert.Contains(t, out, "Alice, Bob")
	assert.Contains(t, out, "## Possible 3RR Violations (1)")

	// Alice has more edits than Bob, so she is listed first.
	assert.Less(t, strings.Index(out, "| Alice |"), strings.Index(out, "| Bob |"))
}

func TestWrite_Markdown_EscapesPipes(t *testing.T) {
	analysis := sampleAnalysis()
	analysis.Episodes[0].Editors = []string{"We|ird"}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "markdown", analysis))
	assert.Contains(t, buf.String(), `We\|ird`)
}

func TestWrite_Markdown_WithContext(t *testing.T) {
	analysis := sampleAnalysis()
	analysis.Protection = &entities.ProtectionStatus{
		Protected: true,
		Levels:    []entities.ProtectionLevel{{Type: "edit", Level: "autoconfirmed"}},
	}
	analysis.TalkActivity = &entities.TalkActivity{
		HasTalkPage:   true,
		RecentEdits:   3,
		ActivityLevel: entities.TalkActivityMedium,
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "markdown", analysis))
	out := buf.String()

	assert.Contains(t, out, "## Page Context")
	assert.Contains(t, out, "edit=autoconfirmed")
	assert.Contains(t, out, "medium activity (3 recent edits)")
}

func TestDefaultFilename(t *testing.T) {
	assert.Equal(t, "editwar_example_page.json", DefaultFilename("example_page", "json"))
	assert.Equal(t, "editwar_example_page.csv", DefaultFilename("example_page", "csv"))
	assert.Equal(t, "editwar_example_page.md", DefaultFilename("example_page", "markdown"))
}
