package escape

import "strings"

// portalReplacer normalises the ring below (rendered poorly by the portal)
// to a ring above and removes italic span markers.
var portalReplacer = strings.NewReplacer(
	"\u0325", "\u030A",
	string(italicOpen), "",
	string(italicClose), "",
)

// Portal cleans a value for the portal record format. Runs of whitespace,
// including line breaks, collapse to one space and the ends are trimmed.
func Portal(s string) string {
	return strings.Join(strings.Fields(portalReplacer.Replace(s)), " ")
}
