package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplate(t *testing.T, name, content string) string {
	t.Helper()
	templatePath := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(templatePath, []byte(content), 0644))
	return templatePath
}

func TestWriteLatexPreamble(t *testing.T) {
	tests := []struct {
		name         string
		templatePath string
		data         LatexPreamble

		wantPrefix   string
		wantContains []string
	}{
		{
			name:         "uses embedded template when file doesn't exist",
			templatePath: "/non/existent/preamble.tex",
			data:         DefaultLatexPreamble(),
			wantPrefix:   "\\documentclass[10pt,twocolumn]{extarticle}\n",
			wantContains: []string{
				"    a4paper,\n",
				"\\usepackage{tipa}\n",
				"\\newcommand{\\entry}[6]{#2\\markboth{#1}{#1} #3 #4 #5 #6}\n",
			},
		},
		{
			name:         "uses embedded template when no path is configured",
			templatePath: "",
			data:         LatexPreamble{FontSize: "12pt", Paper: "a5paper"},
			wantPrefix:   "\\documentclass[12pt,twocolumn]{extarticle}\n",
			wantContains: []string{"    a5paper,\n"},
		},
		{
			name: "uses filesystem template when available",
			templatePath: func(t *testing.T) string {
				return writeTemplate(t, "custom.tex", "\\documentclass[<< .FontSize >>]{article}\n\\begin{document}\n")
			}(t),
			data:         DefaultLatexPreamble(),
			wantPrefix:   "\\documentclass[10pt]{article}\n",
			wantContains: []string{"\\begin{document}\n"},
		},
		{
			name: "uses embedded template when filesystem template is invalid",
			templatePath: func(t *testing.T) string {
				return writeTemplate(t, "invalid.tex", "\\documentclass[<< .FontSize")
			}(t),
			data:       DefaultLatexPreamble(),
			wantPrefix: "\\documentclass[10pt,twocolumn]{extarticle}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteLatexPreamble(&buf, tt.templatePath, tt.data, nil))

			output := buf.String()
			assert.True(t, strings.HasPrefix(output, tt.wantPrefix), output)
			assert.True(t, strings.HasSuffix(output, "\\begin{document}\n"), output)
			for _, want := range tt.wantContains {
				assert.Contains(t, output, want)
			}
			assert.NotContains(t, output, "<<")
		})
	}
}

func TestWriteIssueReport(t *testing.T) {
	generated := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		templatePath string
		data         ReportTemplate
		want         string
	}{
		{
			name: "uses embedded template when file doesn't exist",
			data: ReportTemplate{
				Title:     "N|uu dictionary issues",
				Source:    "dictionary.csv",
				Generated: generated,
				Entries:   2,
				Skipped:   1,
				Errors:    1,
				Warnings:  1,
				Headwords: []HeadwordCount{{Language: "N|uu", Count: 2}},
				Groups: []ReportGroup{
					{
						Message:  "duplicate headword",
						Severity: "warning",
						Issues:   []ReportIssue{{Line: 3, Language: "English", Word: "water", Detail: "also on line(s) 2"}},
					},
					{
						Message:  "missing N|uu headword, row skipped",
						Severity: "error",
						Issues:   []ReportIssue{{Line: 4}},
					},
				},
			},
			want: "# N|uu dictionary issues\n\n" +
				"Generated 2024-03-01 09:30 from `dictionary.csv`.\n\n" +
				"| | count |\n|---|---|\n" +
				"| entries | 2 |\n| skipped rows | 1 |\n| errors | 1 |\n| warnings | 1 |\n" +
				"| N|uu headwords | 2 |\n\n" +
				"## duplicate headword (warning, 1)\n\n" +
				"- line 3, English: **water** (also on line(s) 2)\n\n" +
				"## missing N|uu headword, row skipped (error, 1)\n\n" +
				"- line 4\n",
		},
		{
			name: "reports a clean dictionary",
			data: ReportTemplate{Title: "Issues", Source: "in.csv", Generated: generated, Entries: 5},
			want: "# Issues\n\n" +
				"Generated 2024-03-01 09:30 from `in.csv`.\n\n" +
				"| | count |\n|---|---|\n" +
				"| entries | 5 |\n| skipped rows | 0 |\n| errors | 0 |\n| warnings | 0 |\n\n" +
				"No issues found.\n",
		},
		{
			name: "uses filesystem template when available",
			templatePath: func(t *testing.T) string {
				return writeTemplate(t, "report.md", "{{ .Title }}: {{ range .Groups }}{{ .Message }}={{ len .Issues }} {{ end }}")
			}(t),
			data: ReportTemplate{
				Title:  "custom",
				Groups: []ReportGroup{{Message: "missing IPA", Issues: []ReportIssue{{Line: 2}, {Line: 5}}}},
			},
			want: "custom: missing IPA=2 ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteIssueReport(&buf, tt.templatePath, tt.data, nil))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
