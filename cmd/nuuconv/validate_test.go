package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvzaanen/N-uu-conversion/internal/dictionary"
	"github.com/mvzaanen/N-uu-conversion/internal/testutil"
)

func TestOutputFormat_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    outputFormat
		wantErr bool
	}{
		{name: "text", value: "text", want: outputFormatText},
		{name: "yaml", value: "yaml", want: outputFormatYAML},
		{name: "invalid format", value: "json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var format outputFormat
			err := format.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid format")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, format)
			assert.Equal(t, tt.value, format.String())
			assert.Equal(t, "format", format.Type())
		})
	}
}

func TestNewValidateCommand(t *testing.T) {
	cmd := newValidateCommand()

	assert.Equal(t, "validate", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	formatFlag := cmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestDisplayIssues(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name   string
		stats  dictionary.Stats
		issues dictionary.Issues
		want   []string
	}{
		{
			name:  "no issues",
			stats: dictionary.Stats{Entries: 2, Headwords: map[string]int{"N|uu": 2}},
			want:  []string{"2 entries, 0 skipped rows\n", "  N|uu headwords: 2\n", "All validations passed!"},
		},
		{
			name:  "issues grouped by message",
			stats: dictionary.Stats{Entries: 2, Skipped: 1, Errors: 1, Warnings: 2},
			issues: dictionary.Issues{
				{Severity: dictionary.SeverityWarning, Line: 2, Message: "missing IPA"},
				{Severity: dictionary.SeverityError, Line: 3, Message: "missing N|uu headword, row skipped"},
				{Severity: dictionary.SeverityWarning, Line: 4, Message: "missing IPA"},
			},
			want: []string{
				"\nmissing IPA (2)\n  - line 2: missing IPA\n  - line 4: missing IPA\n",
				"\nmissing N|uu headword, row skipped (1)\n  - line 3: missing N|uu headword, row skipped\n",
				"Total errors: 1\n",
				"Total warnings: 2\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			displayIssues(&buf, tt.stats, tt.issues)
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestValidateCommand(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "text",
			args: []string{"validate"},
			want: []string{
				"3 entries, 1 skipped rows\n",
				"\nmissing N|uu headword, row skipped (1)\n  - line 5: missing N|uu headword, row skipped\n",
				"\nduplicate headword (1)\n  - line 4 (English \"water\"): duplicate headword, also on line(s) 2\n",
				"Total errors: 1\n",
				"Total warnings: 1\n",
			},
		},
		{
			name: "yaml",
			args: []string{"validate", "--format", "yaml"},
			want: []string{
				"entries: 3\n",
				"message: duplicate headword\n",
				"detail: also on line(s) 2\n",
				"severity: error\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgPath := testutil.SetupTestConfig(t, t.TempDir())

			stdout, err := runCommand(t, append([]string{"--config", cfgPath}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, "validation failed with 1 error(s)", err.Error())
			for _, want := range tt.want {
				assert.Contains(t, stdout, want)
			}
		})
	}
}

func TestValidateCommand_Clean(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)
	testutil.WriteDictionaryCSV(t, tmpDir+"/clean.csv", testutil.DefaultRows[:2])

	stdout, err := runCommand(t, "--config", cfgPath, "validate", "--input", tmpDir+"/clean.csv")
	require.NoError(t, err)
	assert.Contains(t, stdout, "All validations passed!")
}
