package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/arifzakri/belajar/internal/export"
	"github.com/arifzakri/belajar/internal/files"
	"github.com/arifzakri/belajar/internal/planner"
)

func newExportCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	var (
		outFlag    string
		entrySpecs []string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a week of entries as a PDF timetable.",
		Long: "export renders all seven weekdays, with the given entries grouped " +
			"under their day, into a PDF. Entries use the compact form " +
			"\"Subject|Time Range|Goal|Day[|Date]\" and may be repeated.",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := make([]planner.Entry, 0, len(entrySpecs))
			for _, spec := range entrySpecs {
				entry, err := parseEntrySpec(spec)
				if err != nil {
					return err
				}
				entries = append(entries, entry)
			}

			target := outFlag
			if target == "" {
				if _, err := manager.EnsureExportDir(); err != nil {
					return err
				}
				target = manager.ExportPath(time.Now())
			} else if dir := filepath.Dir(target); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create output directory: %w", err)
				}
			}

			file, err := os.Create(target)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer file.Close()

			if err := export.WritePDF(file, planner.GroupByDay(entries)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entr%s to %s\n",
				len(entries), plural(len(entries)), target)
			return nil
		},
	}

	cmd.Flags().StringVar(&outFlag, "out", "", "Output path (default: export dir under the belajar home)")
	cmd.Flags().StringArrayVar(&entrySpecs, "entry", nil, "Entry as Subject|Time Range|Goal|Day[|Date] (repeatable)")

	return cmd
}

func plural(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}
