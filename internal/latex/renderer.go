// Package latex typesets the dictionary as a LaTeX document.
//
// Every headword occurrence becomes one \entry with six arguments: the
// running header, the lemma with the entry's other headwords, the part of
// speech, the IPA (N|uu section only), the glosses in the other languages and
// the annotations. Occurrences are grouped in one section per language and
// ordered by the collation engine.
package latex

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/mvzaanen/N-uu-conversion/internal/assets"
	"github.com/mvzaanen/N-uu-conversion/internal/dictionary"
	"github.com/mvzaanen/N-uu-conversion/internal/escape"
	"github.com/mvzaanen/N-uu-conversion/internal/lexicon"
)

// DefaultHeaderLength is the number of units kept in a running header.
const DefaultHeaderLength = 25

// DefaultSections are the sections of the printed dictionary, in order.
var DefaultSections = []lexicon.Language{lexicon.Nuu, lexicon.Nama, lexicon.Afrikaans, lexicon.English}

// Renderer renders an index as a LaTeX document.
type Renderer struct {
	text         *escape.Escaper
	phonetic     *escape.Escaper
	headerLength int
	sections     []lexicon.Language
	preamblePath string
	preamble     assets.LatexPreamble
	logger       *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithHeaderLength sets the running header length.
func WithHeaderLength(n int) Option {
	return func(r *Renderer) {
		r.headerLength = n
	}
}

// WithSections selects the language sections and their order.
func WithSections(sections ...lexicon.Language) Option {
	return func(r *Renderer) {
		r.sections = slices.Clone(sections)
	}
}

// WithPreambleTemplate reads the preamble template from path instead of the embedded one.
func WithPreambleTemplate(path string) Option {
	return func(r *Renderer) {
		r.preamblePath = path
	}
}

// WithPreamble sets the font size and paper passed to the preamble template.
func WithPreamble(preamble assets.LatexPreamble) Option {
	return func(r *Renderer) {
		r.preamble = preamble
	}
}

// WithLogger sets the logger of the renderer and its escapers.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// NewRenderer returns a Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		headerLength: DefaultHeaderLength,
		sections:     DefaultSections,
		preamble:     assets.DefaultLatexPreamble(),
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.text = escape.NewText(escape.WithLogger(r.logger))
	r.phonetic = escape.NewPhonetic(escape.WithLogger(r.logger))
	return r
}

// Label returns the short language label used in gloss and annotation blocks.
func Label(l lexicon.Language) string {
	switch l {
	case lexicon.Nuu:
		return "N$|$uu"
	case lexicon.IPA:
		return "IPA"
	case lexicon.Nama:
		return "Nama"
	case lexicon.Afrikaans:
		return "Afr"
	case lexicon.AfrikaansLocal:
		return `Afr$^{\mbox{\footnotesize{ons}}}$`
	case lexicon.English:
		return "Eng"
	}
	panic(fmt.Sprintf("latex: unknown language %d", int(l)))
}

// Document writes the preamble, every configured section and the footer to w.
func (r *Renderer) Document(w io.Writer, ix *dictionary.Index) error {
	if err := assets.WriteLatexPreamble(w, r.preamblePath, r.preamble, r.logger); err != nil {
		return fmt.Errorf("assets.WriteLatexPreamble() > %w", err)
	}
	for _, l := range r.sections {
		if err := r.Section(w, ix, l); err != nil {
			return fmt.Errorf("Section(%s) > %w", l, err)
		}
	}
	if _, err := io.WriteString(w, assets.LatexFooter); err != nil {
		return fmt.Errorf("io.WriteString(footer) > %w", err)
	}
	return nil
}

// Section writes the title of language l followed by an entry for every
// occurrence of l in collation order.
func (r *Renderer) Section(w io.Writer, ix *dictionary.Index, l lexicon.Language) error {
	var b strings.Builder
	title := r.text.Escape(l.Title())
	fmt.Fprintf(&b, "{\\hfill\\\\\\Large\\textbf{%s}}\\\\\n", title)
	fmt.Fprintf(&b, "\\renewcommand*\\nowtitle{%s }\n", title)

	occurrences := ix.Occurrences(l)
	for _, o := range occurrences {
		b.WriteString(r.Entry(ix.Entry(o.Entry), l, o.Word))
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("io.WriteString() > %w", err)
	}
	r.logger.Debug("wrote LaTeX section", "language", l.String(), "entries", len(occurrences))
	return nil
}

// Entry returns the \entry invocation for the occurrence of word in language l.
func (r *Renderer) Entry(entry lexicon.Entry, l lexicon.Language, word lexicon.Headword) string {
	position := entry.IndexOf(l, word.Word)
	escaped := r.text.Escape(word.Word)

	var b strings.Builder
	b.WriteString("\\entry{\n")
	b.WriteString(escape.Cut(escaped, r.headerLength))
	b.WriteString("\n}{\n")

	b.WriteString("\\textbf{" + escaped + "}")
	if word.Marker != lexicon.MarkerNone {
		b.WriteString(" " + word.Marker.Label())
	}
	if others := entry.Others(l, position); len(others) > 0 {
		b.WriteString(", " + r.text.EscapeAll(displays(others), ", "))
	}
	b.WriteString("\n}{\n")

	b.WriteString("(" + r.text.Escape(entry.POSCode()) + ")")
	b.WriteString("\n}{\n")

	if l == lexicon.Target && entry.Has(lexicon.IPA) {
		b.WriteString("[\\textipa{" + r.phonetic.EscapeAll(r.orderedIPA(entry, position), ", ") + "}]")
	}
	b.WriteString("\n}{\n")

	for _, other := range lexicon.Languages {
		if other == l || other == lexicon.IPA || !entry.Has(other) {
			continue
		}
		b.WriteString("\\underbar{" + Label(other) + "}: ")
		b.WriteString(r.text.EscapeAll(displays(entry.Headwords[other]), ", ") + " ")
	}
	b.WriteString("\n}{\n")

	for _, other := range lexicon.Languages {
		annotation, ok := entry.Annotations[other]
		if other == l || other == lexicon.IPA || !ok || annotation == "" {
			continue
		}
		b.WriteString("\\underbar{\\textit{" + Label(other) + "}}: ")
		b.WriteString(r.text.Escape(annotation) + " ")
	}
	b.WriteString("\n}\n\n\n")
	return b.String()
}

// orderedIPA returns the IPA transcriptions with the one belonging to the
// target headword at position first. When the IPA and target lists differ in
// length the transcriptions cannot be paired and keep their order; the
// mismatch is only reported for entries with several headwords.
func (r *Renderer) orderedIPA(entry lexicon.Entry, position int) []string {
	ipa := entry.Headwords[lexicon.IPA]
	words := make([]string, 0, len(ipa))
	targets := len(entry.Headwords[lexicon.Target])
	if len(ipa) != targets || position < 0 {
		// One headword with several transcriptions is not a mismatch.
		if targets > 1 && len(ipa) > 0 {
			r.logger.Warn("N|uu and IPA variant counts differ, keeping IPA order",
				"line", entry.SourceLine,
				"nuu", targets,
				"ipa", len(ipa),
			)
		}
		for _, h := range ipa {
			words = append(words, h.Word)
		}
		return words
	}
	words = append(words, ipa[position].Word)
	for i, h := range ipa {
		if i != position {
			words = append(words, h.Word)
		}
	}
	return words
}

func displays(headwords []lexicon.Headword) []string {
	result := make([]string, len(headwords))
	for i, h := range headwords {
		result[i] = h.Display()
	}
	return result
}
