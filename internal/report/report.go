// Package report writes the issues found in the dictionary as a markdown
// report for the lexicographers, optionally converted to PDF.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mvzaanen/N-uu-conversion/internal/assets"
	"github.com/mvzaanen/N-uu-conversion/internal/dictionary"
	"github.com/mvzaanen/N-uu-conversion/internal/lexicon"
)

// DefaultTitle is the report heading.
const DefaultTitle = "N|uu dictionary issues"

// Options configures a report.
type Options struct {
	Title        string
	Source       string
	TemplatePath string
	Generated    time.Time
}

// Data collects the template data for ix.
func Data(ix *dictionary.Index, opts Options) assets.ReportTemplate {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	stats := ix.Stats()

	data := assets.ReportTemplate{
		Title:     opts.Title,
		Source:    opts.Source,
		Generated: opts.Generated,
		Entries:   stats.Entries,
		Skipped:   stats.Skipped,
		Errors:    stats.Errors,
		Warnings:  stats.Warnings,
	}
	for _, l := range lexicon.Languages {
		data.Headwords = append(data.Headwords, assets.HeadwordCount{
			Language: l.Title(),
			Count:    stats.Headwords[l.Title()],
		})
	}
	for _, group := range ix.Issues().ByMessage() {
		g := assets.ReportGroup{Message: group.Message, Severity: string(group.Severity)}
		for _, issue := range group.Issues {
			g.Issues = append(g.Issues, assets.ReportIssue{
				Line:     issue.Line,
				Language: issue.Language,
				Word:     issue.Word,
				Detail:   issue.Detail,
			})
		}
		data.Groups = append(data.Groups, g)
	}
	return data
}

// Write renders the markdown report of ix to w.
func Write(w io.Writer, ix *dictionary.Index, opts Options, logger *slog.Logger) error {
	if opts.Generated.IsZero() {
		opts.Generated = time.Now()
	}
	if err := assets.WriteIssueReport(w, opts.TemplatePath, Data(ix, opts), logger); err != nil {
		return fmt.Errorf("assets.WriteIssueReport() > %w", err)
	}
	return nil
}
