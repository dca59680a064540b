package lexicon

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingTarget is returned when an entry has no headword in the Target language.
var ErrMissingTarget = errors.New("missing target-language headword")

// Entry is one dictionary sense, built from a single source row.
type Entry struct {
	Headwords    map[Language][]Headword
	PartOfSpeech string
	Annotations  map[Language]string
	AudioRefs    []string
	SourceLine   int
}

// NewEntry validates the headword mapping and returns the entry.
func NewEntry(headwords map[Language][]Headword, pos string, annotations map[Language]string, audioRefs []string, line int) (Entry, error) {
	if len(headwords[Target]) == 0 {
		return Entry{}, fmt.Errorf("line %d: %w", line, ErrMissingTarget)
	}
	if annotations == nil {
		annotations = map[Language]string{}
	}
	return Entry{
		Headwords:    headwords,
		PartOfSpeech: pos,
		Annotations:  annotations,
		AudioRefs:    audioRefs,
		SourceLine:   line,
	}, nil
}

// POSCode returns the category code of the entry's part of speech.
func (e Entry) POSCode() string {
	code, _ := POSCode(e.PartOfSpeech)
	return code
}

// Has reports whether the entry has at least one headword in l.
func (e Entry) Has(l Language) bool {
	return len(e.Headwords[l]) > 0
}

// Others returns the headwords of l other than the one at position skip,
// in their original order.
func (e Entry) Others(l Language, skip int) []Headword {
	var others []Headword
	for i, h := range e.Headwords[l] {
		if i == skip {
			continue
		}
		others = append(others, h)
	}
	return others
}

// IndexOf returns the position of word among the headwords of l, or -1.
func (e Entry) IndexOf(l Language, word string) int {
	for i, h := range e.Headwords[l] {
		if h.Word == word {
			return i
		}
	}
	return -1
}

func (e Entry) String() string {
	var b strings.Builder
	b.WriteString("Entry(")
	for _, l := range Languages {
		hws, ok := e.Headwords[l]
		if !ok {
			continue
		}
		words := make([]string, len(hws))
		for i, h := range hws {
			words[i] = h.Display()
		}
		fmt.Fprintf(&b, "%s(%s) ", l, strings.Join(words, ", "))
	}
	fmt.Fprintf(&b, "POS(%s) ", e.PartOfSpeech)
	for _, l := range Languages {
		if a, ok := e.Annotations[l]; ok {
			fmt.Fprintf(&b, "%s(%s) ", l, a)
		}
	}
	fmt.Fprintf(&b, "%d)", e.SourceLine)
	return b.String()
}
