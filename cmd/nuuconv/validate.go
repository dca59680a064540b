package main

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/mvzaanen/N-uu-conversion/internal/dictionary"
)

type outputFormat string

const (
	outputFormatText outputFormat = "text"
	outputFormatYAML outputFormat = "yaml"
)

var (
	_          pflag.Value = (*outputFormat)(nil)
	allFormats             = []outputFormat{outputFormatText, outputFormatYAML}
)

func (f *outputFormat) Set(val string) error {
	for _, format := range allFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f outputFormat) String() string {
	return string(f)
}

func (f *outputFormat) Type() string {
	return "format"
}

func newValidateCommand() *cobra.Command {
	var input string
	format := outputFormatText

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the dictionary spreadsheet and list the issues found",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			// Issues are printed below; keep the per-row log lines for --debug.
			logger := slog.Default()
			if !logger.Enabled(cmd.Context(), slog.LevelDebug) {
				logger = slog.New(slog.DiscardHandler)
			}
			ix, _, err := loadIndex(cfg, input, logger)
			if err != nil {
				return fmt.Errorf("loadIndex() > %w", err)
			}

			issues := ix.Issues()
			switch format {
			case outputFormatYAML:
				if err := writeIssuesYAML(cmd.OutOrStdout(), ix.Stats(), issues); err != nil {
					return err
				}
			default:
				displayIssues(cmd.OutOrStdout(), ix.Stats(), issues)
			}

			if issues.HasErrors() {
				return fmt.Errorf("validation failed with %d error(s)", issues.Count(dictionary.SeverityError))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "dictionary spreadsheet (.csv, .yml); defaults to input.path")
	cmd.Flags().Var(&format, "format", fmt.Sprintf("output format. Possible values are %v", allFormats))
	return cmd
}

func displayIssues(w io.Writer, stats dictionary.Stats, issues dictionary.Issues) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	green := color.New(color.FgGreen)

	_, _ = bold.Fprintf(w, "%d entries, %d skipped rows\n", stats.Entries, stats.Skipped)
	languages := make([]string, 0, len(stats.Headwords))
	for l := range stats.Headwords {
		languages = append(languages, l)
	}
	sort.Strings(languages)
	for _, l := range languages {
		_, _ = fmt.Fprintf(w, "  %s headwords: %d\n", l, stats.Headwords[l])
	}

	if len(issues) == 0 {
		_, _ = green.Fprintln(w, "\nAll validations passed!")
		return
	}

	for _, group := range issues.ByMessage() {
		c := yellow
		if group.Severity == dictionary.SeverityError {
			c = red
		}
		_, _ = c.Fprintf(w, "\n%s (%d)\n", group.Message, len(group.Issues))
		for _, issue := range group.Issues {
			_, _ = fmt.Fprintf(w, "  - %s\n", issue.Error())
		}
	}

	_, _ = fmt.Fprintln(w)
	if stats.Errors > 0 {
		_, _ = red.Fprintf(w, "Total errors: %d\n", stats.Errors)
	}
	if stats.Warnings > 0 {
		_, _ = yellow.Fprintf(w, "Total warnings: %d\n", stats.Warnings)
	}
}

func writeIssuesYAML(w io.Writer, stats dictionary.Stats, issues dictionary.Issues) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(struct {
		Stats  dictionary.Stats  `yaml:"stats"`
		Issues dictionary.Issues `yaml:"issues"`
	}{stats, issues}); err != nil {
		return fmt.Errorf("encoder.Encode() > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoder.Close() > %w", err)
	}
	return nil
}
