package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/groverneev/editwars/internal/application/handlers"
	"github.com/groverneev/editwars/internal/domain/entities"
	"github.com/groverneev/editwars/internal/infrastructure/config"
	"github.com/groverneev/editwars/internal/infrastructure/report"
)

type exportFlags struct {
	format      string
	output      string
	limit       int
	refresh     bool
	withContext bool
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export <page title>",
		Short: "Export a page analysis to file",
		Long:  "Analyzes a page and writes the result in JSON, CSV, or markdown format.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format (json, csv, markdown)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: editwar_<page>.<ext>, \"-\" for stdout)")
	cmd.Flags().IntVarP(&flags.limit, "limit", "l", DefaultRevisionLimit, "Maximum revisions to fetch")
	cmd.Flags().BoolVarP(&flags.refresh, "refresh", "r", false, "Bypass the local cache and re-fetch")
	cmd.Flags().BoolVarP(&flags.withContext, "context", "c", false, "Also fetch protection status and talk activity")

	return cmd
}

func runExport(cmd *cobra.Command, title string, flags exportFlags) error {
	if !report.ValidFormat(flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, report.ValidFormats)
	}

	return withDeps(cmd.Context(), func(d *Deps) error {
		analysis, err := d.AnalyzeHandler.Handle(cmd.Context(), title, handlers.AnalyzeOptions{
			Limit:          flags.limit,
			Refresh:        flags.refresh,
			IncludeContext: flags.withContext,
		})
		if err != nil {
			return err
		}

		output := flags.output
		if output == "" {
			output = report.DefaultFilename(config.SanitizeTitle(title), flags.format)
		}

		return writeExport(output, flags.format, analysis)
	})
}

func writeExport(output, format string, analysis *entities.PageAnalysis) (err error) {
	var w io.Writer = os.Stdout
	var f *os.File

	if output != "-" {
		f, err = os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("creating file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	}

	if err := report.Write(w, format, analysis); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if output != "-" {
		fmt.Printf("Exported analysis of %s to %s\n", analysis.PageTitle, output)
	}

	return nil
}
