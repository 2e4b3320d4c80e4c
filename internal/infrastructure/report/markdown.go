package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/groverneev/editwars/internal/domain/entities"
)

func writeMarkdown(w io.Writer, analysis *entities.PageAnalysis) error {
	if _, err := fmt.Fprintf(w, "# Edit War Analysis: %s\n\n", escapeMarkdown(analysis.PageTitle)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Analyzed: %s\n\n", analysis.AnalyzedAt.UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w,
		"- Revisions examined: %d\n- Reverts detected: %d\n- Revert rate: %.1f%%\n- Edit wars: %d\n\n",
		analysis.TotalRevisions, analysis.TotalReverts,
		analysis.RevertRate*100, len(analysis.Episodes)); err != nil {
		return err
	}

	if err := writeEpisodeTable(w, analysis.Episodes); err != nil {
		return err
	}
	if err := writeParticipation(w, analysis.Participation); err != nil {
		return err
	}
	if err := writeViolations(w, analysis.Violations); err != nil {
		return err
	}
	return writeContext(w, analysis)
}

func writeEpisodeTable(w io.Writer, episodes []entities.EpisodeSummary) error {
	if len(episodes) == 0 {
		_, err := fmt.Fprint(w, "No edit wars detected.\n\n")
		return err
	}

	if _, err := fmt.Fprintf(w, "## Edit Wars (%d)\n\n", len(episodes)); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "| Start | Duration (h) | Reverts | Editors | Avg Interval (min) |\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "|-------|--------------|---------|---------|--------------------|\n"); err != nil {
		return err
	}

	for _, e := range episodes {
		if _, err := fmt.Fprintf(w, "| %s | %.1f | %d | %s | %.1f |\n",
			e.StartTime.UTC().Format("2006-01-02 15:04"),
			e.DurationHours,
			e.RevertCount,
			escapeMarkdown(strings.Join(e.Editors, ", ")),
			e.AvgIntervalMinutes,
		); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "\n")
	return err
}

func writeParticipation(w io.Writer, p entities.ParticipationSummary) error {
	if p.TotalEditors == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(w,
		"## Editors (%d)\n\nNew: %d, Intermediate: %d, Veteran: %d\n\n",
		p.TotalEditors, p.NewEditors, p.IntermediateEditors, p.VeteranEditors); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "| Editor | Edits | Reverts | Experience | Share |\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "|--------|-------|---------|------------|-------|\n"); err != nil {
		return err
	}

	// Most active editors first; names break ties so output is stable.
	profiles := make([]entities.EditorProfile, 0, len(p.Editors))
	for _, profile := range p.Editors {
		profiles = append(profiles, profile)
	}
	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].TotalEdits != profiles[j].TotalEdits {
			return profiles[i].TotalEdits > profiles[j].TotalEdits
		}
		return profiles[i].Editor < profiles[j].Editor
	})

	for _, profile := range profiles {
		if _, err := fmt.Fprintf(w, "| %s | %d | %d | %s | %.1f%% |\n",
			escapeMarkdown(profile.Editor),
			profile.TotalEdits,
			profile.TotalReverts,
			profile.Tier,
			profile.EditShare,
		); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "\n")
	return err
}

func writeViolations(w io.Writer, violations []entities.ThreeRevertViolation) error {
	if len(violations) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(w, "## Possible 3RR Violations (%d)\n\n", len(violations)); err != nil {
		return err
	}
	for _, v := range violations {
		if _, err := fmt.Fprintf(w, "- **%s**: %d reverts within %.1f hours (at %s)\n",
			escapeMarkdown(v.Editor),
			v.RevertCount,
			v.TimeWindowHours,
			v.Timestamp.UTC().Format("2006-01-02 15:04"),
		); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "\n")
	return err
}

func writeContext(w io.Writer, analysis *entities.PageAnalysis) error {
	if analysis.Protection == nil && analysis.TalkActivity == nil {
		return nil
	}

	if _, err := fmt.Fprint(w, "## Page Context\n\n"); err != nil {
		return err
	}

	if p := analysis.Protection; p != nil {
		if p.Protected {
			levels := make([]string, 0, len(p.Levels))
			for _, l := range p.Levels {
				levels = append(levels, fmt.Sprintf("%s=%s", l.Type, l.Level))
			}
			if _, err := fmt.Fprintf(w, "- Protection: %s\n", strings.Join(levels, ", ")); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprint(w, "- Protection: none\n"); err != nil {
				return err
			}
		}
	}

	if ta := analysis.TalkActivity; ta != nil {
		if ta.HasTalkPage {
			if _, err := fmt.Fprintf(w, "- Talk page: %s activity (%d recent edits)\n",
				ta.ActivityLevel, ta.RecentEdits); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprint(w, "- Talk page: none\n"); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprint(w, "\n")
	return err
}
