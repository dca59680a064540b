// Package lexicon provides the lexical model of the dictionary: languages,
// headwords with their dialect markers, part-of-speech codes and entries.
package lexicon

import (
	"fmt"
	"strings"
)

// Language identifies a column family of the source spreadsheet.
// IPA is modelled as a language because its cells hold headword-like lists.
type Language int

const (
	Nuu Language = iota
	IPA
	Nama
	Afrikaans
	AfrikaansLocal
	English
)

// Target is the language the dictionary describes.
const Target = Nuu

// Languages lists every language in presentation order.
var Languages = []Language{Nuu, IPA, Nama, Afrikaans, AfrikaansLocal, English}

// Translations are the languages an entry is expected to be translated into.
var Translations = []Language{Nama, Afrikaans, English}

// String returns the short name used in logs and in portal tags.
func (l Language) String() string {
	switch l {
	case Nuu:
		return "N|uu"
	case IPA:
		return "IPA"
	case Nama:
		return "Nama"
	case Afrikaans:
		return "Afr"
	case AfrikaansLocal:
		return "Afr loc"
	case English:
		return "Eng"
	}
	panic(fmt.Sprintf("lexicon: unknown language %d", int(l)))
}

// Key returns the lower-case identifier used in configuration and flags.
func (l Language) Key() string {
	switch l {
	case Nuu:
		return "nuu"
	case IPA:
		return "ipa"
	case Nama:
		return "nama"
	case Afrikaans:
		return "afrikaans"
	case AfrikaansLocal:
		return "afrikaans_local"
	case English:
		return "english"
	}
	panic(fmt.Sprintf("lexicon: unknown language %d", int(l)))
}

// Title returns the full language name used for section titles.
func (l Language) Title() string {
	switch l {
	case Nuu:
		return "N|uu"
	case IPA:
		return "IPA"
	case Nama:
		return "Nama"
	case Afrikaans:
		return "Afrikaans"
	case AfrikaansLocal:
		return "Afrikaans (local)"
	case English:
		return "English"
	}
	panic(fmt.Sprintf("lexicon: unknown language %d", int(l)))
}

// ParseLanguage resolves a configuration key or short name to a Language.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	for _, l := range Languages {
		if strings.EqualFold(s, l.Key()) || strings.EqualFold(s, l.String()) || strings.EqualFold(s, l.Title()) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown language %q", s)
}
