package dictionary

import (
	"strings"

	"github.com/mvzaanen/N-uu-conversion/internal/lexicon"
)

// Columns maps the parts of an entry to spreadsheet column names.
type Columns struct {
	Headwords   map[lexicon.Language]string
	POS         string
	Annotations map[lexicon.Language]string
	Audio       string
}

// DefaultColumns returns the column names of the N|uu spreadsheet.
func DefaultColumns() Columns {
	return Columns{
		Headwords: map[lexicon.Language]string{
			lexicon.Nuu:            "Orthography 1",
			lexicon.IPA:            "IPA",
			lexicon.Nama:           "Nama Feedback",
			lexicon.Afrikaans:      "Afrikaans community feedback HEADWORD",
			lexicon.AfrikaansLocal: "Afrikaans community feedback Local Variety ",
			lexicon.English:        "English",
		},
		POS: "Part of Speech, English",
		Annotations: map[lexicon.Language]string{
			lexicon.Nama:      "Nama Parentheticals",
			lexicon.Afrikaans: "Afrik Parentheticals",
			lexicon.English:   "Parentheticals, English",
		},
		Audio: "Dictionary Recording (target word only)",
	}
}

// Row holds the cells of one spreadsheet row by column name.
type Row map[string]string

// Cell returns the trimmed value of column name. Missing cells are empty.
func (r Row) Cell(name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimSpace(r[name])
}
