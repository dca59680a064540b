package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mvzaanen/N-uu-conversion/internal/database"
	"github.com/mvzaanen/N-uu-conversion/internal/datasync"
	"github.com/mvzaanen/N-uu-conversion/internal/store"
	"github.com/mvzaanen/N-uu-conversion/schemas"
)

func newPublishCommand() *cobra.Command {
	var input string
	var dryRun, replace, migrate bool

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Store the portal records in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			logger := slog.Default()

			ix, _, err := loadIndex(cfg, input, logger)
			if err != nil {
				return fmt.Errorf("loadIndex() > %w", err)
			}
			records := newPortalRenderer(cfg, logger).Records(ix)

			db, err := database.Connect(ctx, cfg.Database, logger)
			if err != nil {
				return fmt.Errorf("database.Connect() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			if migrate && !dryRun {
				if err := database.Migrate(ctx, db, schemas.Migrations); err != nil {
					return fmt.Errorf("database.Migrate() > %w", err)
				}
			}

			publisher := datasync.NewPublisher(store.NewDBRecordRepository(db), logger)
			result, err := publisher.Publish(ctx, records, datasync.PublishOptions{
				DryRun:  dryRun,
				Replace: replace,
			})
			if err != nil {
				return fmt.Errorf("publisher.Publish() > %w", err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "Publish Summary:")
			if dryRun {
				_, _ = fmt.Fprintln(out, "  (dry-run mode, no changes made)")
			}
			_, _ = fmt.Fprintf(out, "  Records: %d new, %d updated, %d unchanged, %d deleted\n",
				result.New, result.Updated, result.Unchanged, result.Deleted)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "dictionary spreadsheet (.csv, .yml); defaults to input.path")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	cmd.Flags().BoolVar(&replace, "replace", false, "Delete all stored records before publishing")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Create the portal_records table if needed")
	return cmd
}

func newExportCommand() *cobra.Command {
	var output string
	format := exportFormatFeed

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the stored portal records as a feed or as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			logger := slog.Default()

			db, err := database.Connect(ctx, cfg.Database, logger)
			if err != nil {
				return fmt.Errorf("database.Connect() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			exporter := datasync.NewExporter(store.NewDBRecordRepository(db))
			var n int
			if err := writeOutput(firstNonEmpty(output, stdoutPath), cmd.OutOrStdout(), func(w io.Writer) error {
				if format == exportFormatYAML {
					n, err = exporter.WriteYAML(ctx, w)
				} else {
					n, err = exporter.WriteFeed(ctx, w)
				}
				return err
			}); err != nil {
				return fmt.Errorf("exporter > %w", err)
			}
			logger.Info("exported portal records", "records", n, "format", format)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; defaults to stdout")
	cmd.Flags().Var(&format, "format", fmt.Sprintf("output format. Possible values are %v", allExportFormats))
	return cmd
}

type exportFormat string

const (
	exportFormatFeed exportFormat = "feed"
	exportFormatYAML exportFormat = "yaml"
)

var allExportFormats = []exportFormat{exportFormatFeed, exportFormatYAML}

func (f *exportFormat) Set(val string) error {
	for _, format := range allExportFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f exportFormat) String() string {
	return string(f)
}

func (f *exportFormat) Type() string {
	return "format"
}
