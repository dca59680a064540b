// Package portal writes the dictionary in the tagged text format imported by
// the online dictionary portal, and uploads it.
//
// A record looks like
//
//	**
//	<N|uu>!oe (Eastern)
//	<Synonym>!oe~i (Western)
//	<IPA>ʘoe
//	<POS>T1
//	<Eng>house
//	**
//
// Tags appear in a fixed order by field category.
package portal

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mvzaanen/N-uu-conversion/internal/dictionary"
	"github.com/mvzaanen/N-uu-conversion/internal/escape"
	"github.com/mvzaanen/N-uu-conversion/internal/lexicon"
)

// RecordDelimiter starts and ends every record.
const RecordDelimiter = "**"

// Renderer renders entries as portal records.
type Renderer struct {
	project string
	logger  *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithProject adds a <Project> line naming the portal project to every record.
func WithProject(name string) Option {
	return func(r *Renderer) {
		r.project = name
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// NewRenderer returns a Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record is the rendered form of one entry.
type Record struct {
	Headword string
	Line     int
	Text     string
}

// annotated lists the languages whose annotations are written, in order.
var annotated = []lexicon.Language{lexicon.Nama, lexicon.Afrikaans, lexicon.English}

// Render returns the record for entry, including the trailing newline.
func (r *Renderer) Render(entry lexicon.Entry) string {
	var b strings.Builder
	line := func(tag, value string) {
		fmt.Fprintf(&b, "<%s>%s\n", tag, value)
	}
	list := func(l lexicon.Language) {
		for i, h := range entry.Headwords[l] {
			tag := fieldTag(l)
			if i > 0 {
				tag = continuationTag(l)
			}
			line(tag, escape.Portal(h.Display()))
		}
	}

	b.WriteString(RecordDelimiter + "\n")
	if r.project != "" {
		line("Project", r.project)
	}
	list(lexicon.Nuu)
	list(lexicon.IPA)
	line("POS", entry.POSCode())
	list(lexicon.AfrikaansLocal)
	for _, l := range annotated {
		if a := escape.Portal(entry.Annotations[l]); a != "" {
			line(fieldTag(l)+" par", a)
		}
	}
	for _, ref := range entry.AudioRefs {
		line("Audio", ref)
	}
	for _, l := range lexicon.Translations {
		list(l)
	}
	for _, l := range hiddenLanguages {
		if terms := HiddenTerms(entry.Headwords[l]); terms != "" {
			line("Hidden "+fieldTag(l), terms)
		}
	}
	b.WriteString(RecordDelimiter + "\n")
	return b.String()
}

// Records renders every entry of ix in entry order.
func (r *Renderer) Records(ix *dictionary.Index) []Record {
	records := make([]Record, 0, ix.Len())
	for _, entry := range ix.Entries() {
		records = append(records, Record{
			Headword: entry.Headwords[lexicon.Target][0].Display(),
			Line:     entry.SourceLine,
			Text:     r.Render(entry),
		})
	}
	return records
}

// Feed writes the records of every entry of ix to w in entry order.
func (r *Renderer) Feed(w io.Writer, ix *dictionary.Index) error {
	for _, entry := range ix.Entries() {
		if _, err := io.WriteString(w, r.Render(entry)); err != nil {
			return fmt.Errorf("io.WriteString(line %d) > %w", entry.SourceLine, err)
		}
	}
	r.logger.Debug("wrote portal feed", "records", ix.Len())
	return nil
}

func fieldTag(l lexicon.Language) string {
	return l.String()
}

func continuationTag(l lexicon.Language) string {
	switch l {
	case lexicon.IPA:
		return "IPA"
	case lexicon.Nuu, lexicon.Nama, lexicon.Afrikaans, lexicon.AfrikaansLocal, lexicon.English:
		return "Synonym"
	}
	panic(fmt.Sprintf("portal: unknown language %d", int(l)))
}
