package assets

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"time"
)

//go:embed templates/issue-report.md.go.tmpl
var fallbackIssueReportTemplate string

var issueReport = embeddedTemplate{
	name:     "issue-report.md.go.tmpl",
	fallback: fallbackIssueReportTemplate,
}

// ReportTemplate is the top-level data structure for the issue report template
type ReportTemplate struct {
	Title     string
	Source    string
	Generated time.Time
	Entries   int
	Skipped   int
	Errors    int
	Warnings  int
	Headwords []HeadwordCount
	Groups    []ReportGroup
}

// HeadwordCount is the number of distinct headwords of one language
type HeadwordCount struct {
	Language string
	Count    int
}

// ReportGroup collects the issues sharing one message
type ReportGroup struct {
	Message  string
	Severity string
	Issues   []ReportIssue
}

type ReportIssue struct {
	Line     int
	Language string
	Word     string
	Detail   string
}

func WriteIssueReport(output io.Writer, templatePath string, templateData ReportTemplate, logger *slog.Logger) error {
	tmpl, err := parseTemplateWithFallback(templatePath, issueReport, logger)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
