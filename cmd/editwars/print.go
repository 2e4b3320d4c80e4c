package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/groverneev/editwars/internal/domain/entities"
)

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	warColor   = color.New(color.FgRed, color.Bold)
	calmColor  = color.New(color.FgGreen)
	noteColor  = color.New(color.FgYellow)
)

// printAnalysis writes a human-readable summary of one analysis to stdout.
func printAnalysis(analysis *entities.PageAnalysis) {
	titleColor.Printf("%s\n", analysis.PageTitle)
	fmt.Printf("  Revisions: %d   Reverts: %d (%.1f%%)\n",
		analysis.TotalRevisions, analysis.TotalReverts, analysis.RevertRate*100)

	if len(analysis.Episodes) == 0 {
		calmColor.Println("  No edit wars detected")
	} else {
		warColor.Printf("  Edit wars: %d\n", len(analysis.Episodes))
		for i, e := range analysis.Episodes {
			fmt.Printf("    %d. %s  %.1fh, %d reverts by %s\n",
				i+1,
				e.StartTime.UTC().Format("2006-01-02 15:04"),
				e.DurationHours,
				e.RevertCount,
				strings.Join(e.Editors, ", "))
		}
	}

	p := analysis.Participation
	if p.TotalEditors > 0 {
		fmt.Printf("  Editors: %d (new: %d, intermediate: %d, veteran: %d)\n",
			p.TotalEditors, p.NewEditors, p.IntermediateEditors, p.VeteranEditors)
	}

	for _, v := range analysis.Violations {
		warColor.Printf("  3RR: %s made %d reverts within %.1f hours\n",
			v.Editor, v.RevertCount, v.TimeWindowHours)
	}

	printContext(analysis)
}

func printContext(analysis *entities.PageAnalysis) {
	if p := analysis.Protection; p != nil && p.Protected {
		levels := make([]string, 0, len(p.Levels))
		for _, l := range p.Levels {
			levels = append(levels, fmt.Sprintf("%s=%s", l.Type, l.Level))
		}
		noteColor.Printf("  Protection: %s\n", strings.Join(levels, ", "))
	}
	if ta := analysis.TalkActivity; ta != nil && ta.HasTalkPage {
		noteColor.Printf("  Talk page: %s activity (%d recent edits)\n",
			ta.ActivityLevel, ta.RecentEdits)
	}
}
