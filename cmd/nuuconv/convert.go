package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

func newConvertCommand() *cobra.Command {
	var input, portalOutput, latexOutput string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Write the portal feed and the LaTeX dictionary from one read of the spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			logger := slog.Default()

			ix, _, err := loadIndex(cfg, input, logger)
			if err != nil {
				return fmt.Errorf("loadIndex() > %w", err)
			}

			portalPath := firstNonEmpty(portalOutput, cfg.Outputs.Portal)
			portalRenderer := newPortalRenderer(cfg, logger)
			if err := writeOutput(portalPath, cmd.OutOrStdout(), func(w io.Writer) error {
				return portalRenderer.Feed(w, ix)
			}); err != nil {
				return fmt.Errorf("portalRenderer.Feed() > %w", err)
			}

			latexPath := firstNonEmpty(latexOutput, cfg.Outputs.Latex)
			latexRenderer, err := newLatexRenderer(cfg, nil, logger)
			if err != nil {
				return fmt.Errorf("newLatexRenderer() > %w", err)
			}
			if err := writeOutput(latexPath, cmd.OutOrStdout(), func(w io.Writer) error {
				return latexRenderer.Document(w, ix)
			}); err != nil {
				return fmt.Errorf("latexRenderer.Document() > %w", err)
			}

			logger.Info("converted dictionary", "portal", portalPath, "latex", latexPath, "entries", ix.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "dictionary spreadsheet (.csv, .yml); defaults to input.path")
	cmd.Flags().StringVar(&portalOutput, "portal", "", "portal feed output; defaults to outputs.portal")
	cmd.Flags().StringVar(&latexOutput, "latex", "", "LaTeX output; defaults to outputs.latex")
	return cmd
}

func newPortalCommand() *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:   "portal",
		Short: "Write the portal feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			logger := slog.Default()

			ix, _, err := loadIndex(cfg, input, logger)
			if err != nil {
				return fmt.Errorf("loadIndex() > %w", err)
			}

			renderer := newPortalRenderer(cfg, logger)
			return writeOutput(firstNonEmpty(output, cfg.Outputs.Portal), cmd.OutOrStdout(), func(w io.Writer) error {
				return renderer.Feed(w, ix)
			})
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "dictionary spreadsheet (.csv, .yml); defaults to input.path")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout; defaults to outputs.portal")
	return cmd
}

func newLatexCommand() *cobra.Command {
	var input, output string
	var sections languageList
	var headerLength int

	cmd := &cobra.Command{
		Use:   "latex",
		Short: "Write the LaTeX dictionary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			logger := slog.Default()
			if headerLength > 0 {
				cfg.Latex.HeaderLength = headerLength
			}

			ix, _, err := loadIndex(cfg, input, logger)
			if err != nil {
				return fmt.Errorf("loadIndex() > %w", err)
			}

			renderer, err := newLatexRenderer(cfg, sections, logger)
			if err != nil {
				return fmt.Errorf("newLatexRenderer() > %w", err)
			}
			return writeOutput(firstNonEmpty(output, cfg.Outputs.Latex), cmd.OutOrStdout(), func(w io.Writer) error {
				return renderer.Document(w, ix)
			})
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "dictionary spreadsheet (.csv, .yml); defaults to input.path")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout; defaults to outputs.latex")
	cmd.Flags().Var(&sections, "section", "languages to write a section for, in order, e.g. nuu,english; defaults to latex.sections")
	cmd.Flags().IntVar(&headerLength, "header-length", 0, "maximum running header length; defaults to latex.header_length")
	return cmd
}
