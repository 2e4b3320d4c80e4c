package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/groverneev/editwars/internal/application/handlers"
)

type contestedFlags struct {
	sample       int
	limit        int
	minRevisions int
	withContext  bool
}

func newContestedCmd() *cobra.Command {
	var flags contestedFlags

	cmd := &cobra.Command{
		Use:   "contested",
		Short: "Scan random pages for active edit wars",
		Long: "Samples random Wikipedia articles, analyzes each one, and lists the pages " +
			"with detected edit wars, most contested first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContested(cmd, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.sample, "sample", "s", DefaultSampleSize, "How many random pages to scan")
	cmd.Flags().IntVarP(&flags.limit, "limit", "l", DefaultRevisionLimit, "Maximum revisions fetched per page")
	cmd.Flags().IntVar(&flags.minRevisions, "min-revisions", DefaultMinSampleRevisions, "Skip pages with fewer revisions")
	cmd.Flags().BoolVarP(&flags.withContext, "context", "c", false, "Also fetch protection status and talk activity")

	return cmd
}

func runContested(cmd *cobra.Command, flags contestedFlags) error {
	return withDeps(cmd.Context(), func(d *Deps) error {
		fmt.Printf("Scanning %d random pages...\n", flags.sample)

		result, err := d.ContestedHandler.Handle(cmd.Context(), handlers.ContestedOptions{
			SampleSize:     flags.sample,
			Limit:          flags.limit,
			MinRevisions:   flags.minRevisions,
			IncludeContext: flags.withContext,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Scanned %d pages (%d skipped)\n\n", result.Scanned, result.Skipped)

		if len(result.Contested) == 0 {
			calmColor.Println("No contested pages in this sample")
			return nil
		}

		for _, analysis := range result.Contested {
			printAnalysis(analysis)
			fmt.Println()
		}
		return nil
	})
}
