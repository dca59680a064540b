package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir)

	want := filepath.Join(tmpDir, "config.yml")
	assert.Equal(t, want, got)

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(content), "base_directory")
	assert.Contains(t, string(content), filepath.Join(tmpDir, "dictionary.csv"))

	for _, d := range []string{"recordings", "outputs", "audio"} {
		info, err := os.Stat(filepath.Join(tmpDir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
	_, err = os.Stat(filepath.Join(tmpDir, "recordings", "ka_01.wav"))
	assert.NoError(t, err)
}

func TestSetupTestConfigWithPortal(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfigWithPortal(t, tmpDir, "http://127.0.0.1:9999")

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(content), "portal:\n  project: N|uu\n  base_url: http://127.0.0.1:9999\n")
}

func TestWriteDictionaryCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dictionary.csv")
	WriteDictionaryCSV(t, path, []DictionaryRow{{Nuu: "ka", English: "water, drink"}})

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, DictionaryHeader, records[0])
	assert.Equal(t, "ka", records[1][0])
	assert.Equal(t, "water, drink", records[1][5])
}
