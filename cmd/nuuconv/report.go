package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvzaanen/N-uu-conversion/internal/report"
)

func newReportCommand() *cobra.Command {
	var input, output, title, templatePath string
	var pdf bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a markdown report of the dictionary issues, optionally as PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			logger := slog.Default()

			ix, source, err := loadIndex(cfg, input, slog.New(slog.DiscardHandler))
			if err != nil {
				return fmt.Errorf("loadIndex() > %w", err)
			}

			path := firstNonEmpty(output, cfg.Outputs.Report)
			opts := report.Options{Title: title, Source: source, TemplatePath: templatePath}
			if err := writeOutput(path, cmd.OutOrStdout(), func(w io.Writer) error {
				return report.Write(w, ix, opts, logger)
			}); err != nil {
				return fmt.Errorf("report.Write() > %w", err)
			}
			logger.Info("wrote issue report", "path", path, "issues", len(ix.Issues()))

			if !pdf {
				return nil
			}
			if path == stdoutPath {
				return fmt.Errorf("--pdf needs an output file")
			}
			markdown, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("os.ReadFile(%s) > %w", path, err)
			}
			pdfPath := report.PDFPath(path)
			if err := report.WritePDF(markdown, pdfPath, report.PaperSize(cfg.Latex.Paper)); err != nil {
				return fmt.Errorf("report.WritePDF() > %w", err)
			}
			logger.Info("wrote PDF report", "path", pdfPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "dictionary spreadsheet (.csv, .yml); defaults to input.path")
	cmd.Flags().StringVarP(&output, "output", "o", "", "markdown output, - for stdout; defaults to outputs.report")
	cmd.Flags().StringVar(&title, "title", "", "report title")
	cmd.Flags().StringVar(&templatePath, "template", "", "report template; the embedded template is used when empty")
	cmd.Flags().BoolVar(&pdf, "pdf", false, "also convert the report to PDF next to the markdown file")
	return cmd
}
