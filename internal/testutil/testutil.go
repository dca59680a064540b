// Package testutil provides shared test helpers for creating config files and dictionary fixtures.
package testutil

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// DictionaryHeader is the header row of the N|uu spreadsheet.
var DictionaryHeader = []string{
	"Orthography 1",
	"IPA",
	"Nama Feedback",
	"Afrikaans community feedback HEADWORD",
	"Afrikaans community feedback Local Variety ",
	"English",
	"Part of Speech, English",
	"Nama Parentheticals",
	"Afrik Parentheticals",
	"Parentheticals, English",
	"Dictionary Recording (target word only)",
}

// DictionaryRow is one spreadsheet row in DictionaryHeader order.
type DictionaryRow struct {
	Nuu                 string
	IPA                 string
	Nama                string
	Afrikaans           string
	AfrikaansLocal      string
	English             string
	POS                 string
	NamaAnnotation      string
	AfrikaansAnnotation string
	EnglishAnnotation   string
	Audio               string
}

func (r DictionaryRow) cells() []string {
	return []string{
		r.Nuu, r.IPA, r.Nama, r.Afrikaans, r.AfrikaansLocal, r.English, r.POS,
		r.NamaAnnotation, r.AfrikaansAnnotation, r.EnglishAnnotation, r.Audio,
	}
}

// DefaultRows is a small dictionary with one duplicate English headword and
// one row without a N|uu headword.
var DefaultRows = []DictionaryRow{
	{Nuu: "ka", IPA: "ka", Nama: "ǁgam", Afrikaans: "water", English: "water", POS: "noun", Audio: "ka_01"},
	{Nuu: "ta", IPA: "ta", Nama: "ǀgaes", Afrikaans: "vuur", English: "fire", POS: "noun", EnglishAnnotation: "for cooking"},
	{Nuu: "na", IPA: "na", Nama: "ǂhoa", Afrikaans: "drink", English: "water", POS: "verb", Audio: "na_01"},
	{English: "orphan"},
}

// WriteDictionaryCSV writes rows below DictionaryHeader to path.
func WriteDictionaryCSV(t *testing.T, path string, rows []DictionaryRow) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, f.Close())
	}()

	w := csv.NewWriter(f)
	require.NoError(t, w.Write(DictionaryHeader))
	for _, r := range rows {
		require.NoError(t, w.Write(r.cells()))
	}
	w.Flush()
	require.NoError(t, w.Error())
}

// CreateRecording writes a recording file named name below dir.
func CreateRecording(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

// SetupTestConfig creates a dictionary spreadsheet with DefaultRows, a
// recordings directory and a config file pointing at them and at an outputs
// directory. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dirs := []string{"recordings", "outputs", "audio"}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}
	WriteDictionaryCSV(t, filepath.Join(tmpDir, "dictionary.csv"), DefaultRows)
	CreateRecording(t, filepath.Join(tmpDir, "recordings"), "ka_01.wav", []byte("RIFF ka"))

	configContent := fmt.Sprintf(`input:
  path: %s
outputs:
  portal: %s
  latex: %s
  audio_script: %s
  report: %s
audio:
  base_directory: %s
  target_directory: %s
portal:
  project: N|uu
`,
		filepath.Join(tmpDir, "dictionary.csv"),
		filepath.Join(tmpDir, "outputs", "portal.txt"),
		filepath.Join(tmpDir, "outputs", "dictionary.tex"),
		filepath.Join(tmpDir, "outputs", "copy_audio.sh"),
		filepath.Join(tmpDir, "outputs", "issues.md"),
		filepath.Join(tmpDir, "recordings"),
		filepath.Join(tmpDir, "audio"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithPortal creates the config of SetupTestConfig with the
// portal import endpoint set to baseURL.
func SetupTestConfigWithPortal(t *testing.T, tmpDir, baseURL string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, []byte(fmt.Sprintf("  base_url: %s\n  retry_attempts: 0\n", baseURL))...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}
