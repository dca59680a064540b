package escape

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// abbreviations are followed by a non-breaking space instead of a normal one,
// longest first so that "d.w.s." wins over shorter prefixes.
var abbreviations = func() []string {
	list := []string{
		"e.g.", "i.e.", "etc.", "cf.", "lit.", "vgl.", "bv.",
		"d.w.s.", "o.a.", "ens.", "pl.", "sg.", "sp.",
	}
	sort.SliceStable(list, func(i, j int) bool {
		return len(list[i]) > len(list[j])
	})
	return list
}()

func protectAbbreviations(s string) string {
	if !strings.Contains(s, ". ") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if n := abbreviationAt(s, i); n > 0 && i+n < len(s) && s[i+n] == ' ' {
			b.WriteString(s[i : i+n])
			b.WriteByte('~')
			i += n + 1
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

// abbreviationAt returns the byte length of the abbreviation starting at i,
// or 0. An abbreviation must not continue a word or a command name.
func abbreviationAt(s string, i int) int {
	if i > 0 {
		prev, _ := utf8.DecodeLastRuneInString(s[:i])
		if unicode.IsLetter(prev) || prev == '\\' || prev == '.' {
			return 0
		}
	}
	for _, a := range abbreviations {
		if len(s)-i >= len(a) && strings.EqualFold(s[i:i+len(a)], a) {
			return len(a)
		}
	}
	return 0
}
