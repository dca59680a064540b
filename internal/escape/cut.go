package escape

import (
	"strings"
	"unicode/utf8"
)

// Ellipsis is appended to text shortened by Cut.
const Ellipsis = `\ldots{}`

// Cut shortens escaped LaTeX text to at most limit units and appends Ellipsis
// when anything was removed. A unit is one visible character, one command
// token (with a directly following empty group, as in `\ng{}`), one accent
// together with the glyph it composes with, or one $...$ math span. Groups left open at the cutoff are closed and stray closing
// braces are dropped, so the result is balanced whenever it is truncated.
// Text that fits is returned unchanged.
func Cut(text string, limit int) string {
	var (
		b         strings.Builder
		depth     int
		units     int
		i         int
		afterCmd  bool
		truncated bool
	)
	for i < len(text) {
		switch text[i] {
		case '}':
			if depth > 0 {
				depth--
				b.WriteByte('}')
			}
			i++
			afterCmd = false
			continue
		case '{':
			// The argument of a command already counted is always entered.
			if units < limit || afterCmd {
				depth++
				b.WriteByte('{')
				i++
				afterCmd = false
				continue
			}
		}
		if units >= limit {
			truncated = true
			break
		}
		n, isCmd := tokenAt(text, i)
		b.WriteString(text[i : i+n])
		i += n
		units++
		afterCmd = isCmd
	}
	if !truncated && depth == 0 {
		return text
	}
	b.WriteString(strings.Repeat("}", depth))
	if truncated {
		b.WriteString(Ellipsis)
	}
	return b.String()
}

// accentSymbols are the control symbols that compose with the glyph after
// them, as in \'{e} or \!o.
const accentSymbols = "'`^\"~=.!*;:|"

// tokenAt returns the byte length of the unit starting at i and whether it
// is a command whose argument group still has to be entered. A command
// followed by a single glyph, such as \'{e}, \!o or \textipa{\!o}, is one
// unit so a cut never separates a mark from its letter.
func tokenAt(text string, i int) (int, bool) {
	switch text[i] {
	case '\\':
		j := commandEnd(text, i)
		if j == i+1 {
			return 1, false
		}
		symbol := !isASCIILetter(text[i+1])
		if symbol && !strings.ContainsRune(accentSymbols, rune(text[i+1])) {
			return j - i, false
		}
		if strings.HasPrefix(text[j:], "{}") {
			return j + 2 - i, false
		}
		if j < len(text) && (symbol || text[j] == '{') {
			if end := glyphEnd(text, j); end > 0 {
				return end - i, false
			}
		}
		return j - i, true
	case '$':
		if end := closingDollar(text, i+1); end > 0 {
			return end + 1 - i, false
		}
	}
	_, size := utf8.DecodeRuneInString(text[i:])
	return size, false
}

// commandEnd returns the index just past the command name starting at i.
func commandEnd(text string, i int) int {
	j := i + 1
	if j >= len(text) {
		return j
	}
	if !isASCIILetter(text[j]) {
		_, size := utf8.DecodeRuneInString(text[j:])
		return j + size
	}
	for j < len(text) && isASCIILetter(text[j]) {
		j++
	}
	return j
}

// glyphEnd returns the index just past the single glyph starting at i, or -1
// when the text there is not exactly one glyph.
func glyphEnd(text string, i int) int {
	if i >= len(text) {
		return -1
	}
	switch text[i] {
	case '{':
		end := matchingBrace(text, i)
		if end < 0 {
			return -1
		}
		if end == i+1 || glyphEnd(text, i+1) == end {
			return end + 1
		}
		return -1
	case '}', ' ':
		return -1
	case '\\':
		n, needsArg := tokenAt(text, i)
		if needsArg && i+n < len(text) && text[i+n] == '{' {
			return -1
		}
		return i + n
	case '$':
		if end := closingDollar(text, i+1); end > 0 {
			return end + 1
		}
		return -1
	}
	_, size := utf8.DecodeRuneInString(text[i:])
	return i + size
}

func matchingBrace(text string, open int) int {
	depth := 0
	for j := open; j < len(text); j++ {
		switch text[j] {
		case '\\':
			j++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

func closingDollar(text string, from int) int {
	for j := from; j < len(text); j++ {
		switch text[j] {
		case '\\':
			j++
		case '$':
			return j
		}
	}
	return -1
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
