package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublishCommand(t *testing.T) {
	cmd := newPublishCommand()

	assert.Equal(t, "publish", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	for _, name := range []string{"input", "dry-run", "replace", "migrate"} {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
	}
	assert.Equal(t, "false", cmd.Flags().Lookup("dry-run").DefValue)
}

func TestExportFormat_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    exportFormat
		wantErr bool
	}{
		{name: "feed", value: "feed", want: exportFormatFeed},
		{name: "yaml", value: "yaml", want: exportFormatYAML},
		{name: "invalid format", value: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var format exportFormat
			err := format.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, format)
		})
	}
}

func TestNewExportCommand(t *testing.T) {
	cmd := newExportCommand()

	assert.Equal(t, "export", cmd.Use)
	require.NotNil(t, cmd.Flags().Lookup("format"))
	assert.Equal(t, "feed", cmd.Flags().Lookup("format").DefValue)
}
