package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/groverneev/editwars/internal/application/handlers"
)

type analyzeFlags struct {
	limit       int
	refresh     bool
	withContext bool
	file        string
	format      string
}

func newAnalyzeCmd() *cobra.Command {
	var flags analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze <page title>",
		Short: "Analyze a page's edit history for edit wars",
		Long: "Fetches the revision history of a Wikipedia page (or reads one from a local file) " +
			"and reports detected edit wars, editor participation, and possible 3RR violations.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0], flags)
		},
	}

	cmd.Flags().IntVarP(&flags.limit, "limit", "l", DefaultRevisionLimit, "Maximum revisions to fetch")
	cmd.Flags().BoolVarP(&flags.refresh, "refresh", "r", false, "Bypass the local cache and re-fetch")
	cmd.Flags().BoolVarP(&flags.withContext, "context", "c", false, "Also fetch protection status and talk activity")
	cmd.Flags().StringVar(&flags.file, "file", "", "Analyze a local JSON or CSV revision dump instead of fetching")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto", "Input format for --file (json, csv, auto)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, title string, flags analyzeFlags) error {
	return withDeps(cmd.Context(), func(d *Deps) error {
		if flags.file != "" {
			analysis, err := d.AnalyzeHandler.HandleFile(title, flags.file, flags.format)
			if err != nil {
				return err
			}
			printAnalysis(analysis)
			return nil
		}

		fmt.Printf("Analyzing %s...\n", title)

		analysis, err := d.AnalyzeHandler.Handle(cmd.Context(), title, handlers.AnalyzeOptions{
			Limit:          flags.limit,
			Refresh:        flags.refresh,
			IncludeContext: flags.withContext,
		})
		if err != nil {
			return err
		}

		printAnalysis(analysis)
		return nil
	})
}
