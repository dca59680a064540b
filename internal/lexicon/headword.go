package lexicon

import (
	"fmt"
	"regexp"
	"strings"
)

// Marker labels a regional variant of a headword.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerEastern
	MarkerWestern
)

// Label returns the parenthesised suffix used in the source data, or "" for MarkerNone.
func (m Marker) Label() string {
	switch m {
	case MarkerNone:
		return ""
	case MarkerEastern:
		return "(Eastern)"
	case MarkerWestern:
		return "(Western)"
	}
	panic(fmt.Sprintf("lexicon: unknown marker %d", int(m)))
}

func (m Marker) String() string {
	switch m {
	case MarkerNone:
		return "none"
	case MarkerEastern:
		return "eastern"
	case MarkerWestern:
		return "western"
	}
	panic(fmt.Sprintf("lexicon: unknown marker %d", int(m)))
}

// Headword is one written form under which an entry can be found.
type Headword struct {
	Word   string
	Marker Marker
}

// Display returns the word followed by its marker label, if any.
func (h Headword) Display() string {
	if h.Marker == MarkerNone {
		return h.Word
	}
	return h.Word + " " + h.Marker.Label()
}

func (h Headword) String() string {
	return h.Display()
}

var (
	markerLabel = regexp.MustCompile(`(?i)\((eastern|western)\)`)
	multiSpace  = regexp.MustCompile(`\s{2,}`)
)

// ParseHeadwords splits a raw cell into headwords. Segments are separated by
// semicolons. A "(Eastern)" or "(Western)" label (any case) sets the marker and
// is removed from the word; when a segment carries several labels the rightmost
// one wins. Other bracketed text stays part of the word.
func ParseHeadwords(cell string) []Headword {
	var result []Headword
	if strings.TrimSpace(cell) == "" {
		return result
	}
	for _, segment := range strings.Split(cell, ";") {
		text := strings.TrimSpace(segment)
		marker := MarkerNone
		if labels := markerLabel.FindAllStringSubmatchIndex(text, -1); len(labels) > 0 {
			last := labels[len(labels)-1]
			if strings.EqualFold(text[last[2]:last[3]], "eastern") {
				marker = MarkerEastern
			} else {
				marker = MarkerWestern
			}
			for markerLabel.MatchString(text) {
				text = markerLabel.ReplaceAllString(text, " ")
			}
			text = strings.TrimSpace(multiSpace.ReplaceAllString(text, " "))
		}
		if text == "" {
			continue
		}
		result = append(result, Headword{Word: text, Marker: marker})
	}
	return result
}
