package portal

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mvzaanen/N-uu-conversion/internal/escape"
	"github.com/mvzaanen/N-uu-conversion/internal/lexicon"
)

var hiddenLanguages = []lexicon.Language{
	lexicon.Nuu, lexicon.Nama, lexicon.Afrikaans, lexicon.AfrikaansLocal, lexicon.English,
}

// markupLeftovers are fragments that come from labels rather than words.
// Dotted abbreviations such as "e.g." split into single letters and are
// dropped by length.
var markupLeftovers = map[string]bool{
	"eastern": true,
	"western": true,
	"etc":     true,
	"lit":     true,
}

func isFragmentSeparator(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(`,;:()[]/"?.`, r)
}

// HiddenTerms returns the extra search terms for a headword list: the
// fragments of marked or multi-word headwords, longer than one character,
// that are neither label leftovers nor a displayed headword. Terms are
// de-duplicated and joined by a space.
func HiddenTerms(headwords []lexicon.Headword) string {
	displayed := map[string]bool{}
	for _, h := range headwords {
		displayed[escape.Portal(h.Word)] = true
	}

	seen := map[string]bool{}
	var terms []string
	for _, h := range headwords {
		fragments := strings.FieldsFunc(escape.Portal(h.Word), isFragmentSeparator)
		if h.Marker == lexicon.MarkerNone && len(fragments) < 2 {
			continue
		}
		for _, f := range fragments {
			if utf8.RuneCountInString(f) < 2 || markupLeftovers[strings.ToLower(f)] || displayed[f] || seen[f] {
				continue
			}
			seen[f] = true
			terms = append(terms, f)
		}
	}
	return strings.Join(terms, " ")
}
