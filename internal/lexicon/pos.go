package lexicon

import "strings"

// MissingPOS is the category code of an entry without a part of speech.
const MissingPOS = "MISSING"

// posCodes maps lower-case part-of-speech descriptions to category codes.
var posCodes = map[string]string{
	"":                           MissingPOS,
	"noun":                       "T1",
	"verb":                       "T2",
	"particle":                   "T3",
	"noun phrase":                "T1a",
	"noun, proper":               "T1b",
	"noun, proper, personal":     "T1b",
	"noun, proper, place":        "T1b",
	"noun, proper, place, river": "T1b",
	"verb phrase":                "T2a",
	"verb (transitive)":          "T2",
	"pronoun":                    "T4",
	"phrase":                     "T5",
	"phrase, greeting":           "T5",
	"interrogative":              "T6",
	"adverb":                     "T7",
	"numeral":                    "T8",
	"interjection":               "T9",
	"adjective":                  "T10",
	"quantifier":                 "T11",
	"particle, adjective":        "T3, T10",
	"verb, particle":             "T2, T3",
	"verb, noun":                 "T1, T2",
	"noun, verb":                 "T1, T2",
	"noun; verb":                 "T1, T2",
	"verb, interjection":         "T2, T9",
	"verb, adjective":            "T2, T10",
	"noun, particle":             "T1, T3",
}

// POSCode returns the category code of a part-of-speech description.
// The lookup ignores case and surrounding whitespace; ok is false for an
// unknown description, in which case the trimmed description itself is returned.
func POSCode(pos string) (code string, ok bool) {
	trimmed := strings.TrimSpace(pos)
	if code, ok := posCodes[strings.ToLower(trimmed)]; ok {
		return code, true
	}
	return trimmed, false
}
