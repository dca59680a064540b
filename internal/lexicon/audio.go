package lexicon

import (
	"regexp"
	"strings"
)

var audioSeparator = regexp.MustCompile(`[ ;,]+`)

// ParseAudioRefs splits a recording cell into file stems. A "--" or an empty
// item ends the list.
func ParseAudioRefs(cell string) []string {
	var refs []string
	for _, ref := range audioSeparator.Split(strings.TrimSpace(cell), -1) {
		if ref == "" || ref == "--" {
			break
		}
		refs = append(refs, ref)
	}
	return refs
}
