package collation

import (
	"strings"

	"github.com/mvzaanen/N-uu-conversion/internal/lexicon"
)

// alphabet lists the rank classes from lowest to highest. Runes in one
// class share a rank.
var alphabet = [][]rune{
	// Punctuation and separators.
	{' '}, {'-', '‐', '–', '—'}, {'\'', '’', '‘', '`'}, {'~'}, {'.'}, {','}, {';'}, {':'},
	{'?'}, {'('}, {')'}, {'['}, {']'}, {'/'}, {'"', '“', '”'}, {'='}, {'+'}, {'*'}, {'&'}, {'_'},
	// Digits.
	{'0'}, {'1'}, {'2'}, {'3'}, {'4'}, {'5'}, {'6'}, {'7'}, {'8'}, {'9'},
	// Latin letters with æ after a and ŋ after n.
	{'a'}, {'æ'}, {'b'}, {'c'}, {'d'}, {'e'}, {'f'}, {'g'}, {'h'}, {'i'}, {'j'}, {'k'}, {'l'},
	{'m'}, {'n'}, {'ŋ'}, {'o'}, {'p'}, {'q'}, {'r'}, {'s'}, {'t'}, {'u'}, {'v'}, {'w'},
	{'x'}, {'y'}, {'z'},
	// Clicks and the glottal stop.
	{'ʘ'}, {'ǀ', '|'}, {'ǁ'}, {'!', 'ǃ'}, {'ǂ'}, {'ʔ'},
}

// rankBase keeps rank runes printable and clear of control characters.
const rankBase = 0x21

var ranks = func() map[rune]rune {
	m := map[rune]rune{}
	for i, class := range alphabet {
		for _, r := range class {
			m[r] = rune(rankBase + i)
		}
	}
	return m
}()

const (
	italicOpen  = '☾'
	italicClose = '☽'
)

func ignorable(r rune) bool {
	return r == italicOpen || r == italicClose
}

var stopWords = map[lexicon.Language][]string{
	lexicon.Afrikaans:      {"iemand ", "(wees) ", "iets ", "wees ", "die ", "'n ", "om ", "te "},
	lexicon.AfrikaansLocal: {"iemand ", "(wees) ", "iets ", "wees ", "die ", "'n ", "om ", "te "},
	lexicon.English:        {"(be) ", "the ", "be ", "a "},
}

// leadIns are stripped from the start of a word in every language.
const leadIns = "-`'( " + string(italicOpen)

// skipPrefix returns the byte length of the prefix of the lowercased word
// that does not take part in collation. A prefix is only stripped when
// something remains after it.
func skipPrefix(lang lexicon.Language, word string) int {
	i := 0
	for {
		n := prefixAt(lang, word[i:])
		if n == 0 || i+n >= len(word) {
			return i
		}
		i += n
	}
}

func prefixAt(lang lexicon.Language, s string) int {
	for _, w := range stopWords[lang] {
		if strings.HasPrefix(s, w) {
			return len(w)
		}
	}
	for _, r := range leadIns {
		if strings.HasPrefix(s, string(r)) {
			return len(string(r))
		}
	}
	return 0
}
