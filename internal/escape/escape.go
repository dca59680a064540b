// Package escape converts dictionary text into LaTeX and portal-safe strings.
//
// LaTeX escaping is table driven. A base rune and the combining marks that
// follow it form one cluster; each mark maps to an opening macro (for example
// `\'{`) that wraps the base, the first mark outermost. Dotted i and j lose
// their dot under a mark placed above the letter.
package escape

import (
	"log/slog"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	italicOpen  = '☾' // LAST QUARTER MOON
	italicClose = '☽' // FIRST QUARTER MOON
)

// Escaper converts text to LaTeX using one of the character tables.
// It is safe for concurrent use.
type Escaper struct {
	table         map[rune]string
	abbreviations bool
	italics       bool
	logger        *slog.Logger

	mu       sync.Mutex
	reported map[rune]bool
}

// Option configures an Escaper.
type Option func(*Escaper)

// WithLogger sets the logger used for unmapped-character warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Escaper) {
		e.logger = logger
	}
}

// NewText returns an escaper for orthographic and translation text.
// Italic span markers become \textit groups and abbreviations get
// non-breaking spaces.
func NewText(opts ...Option) *Escaper {
	return newEscaper(textTable, true, true, opts)
}

// NewPhonetic returns an escaper for IPA transcriptions (tipa encoding).
// Italic span markers are dropped.
func NewPhonetic(opts ...Option) *Escaper {
	return newEscaper(ipaTable, false, false, opts)
}

func newEscaper(table map[rune]string, abbreviations, italics bool, opts []Option) *Escaper {
	e := &Escaper{
		table:         table,
		abbreviations: abbreviations,
		italics:       italics,
		logger:        slog.Default(),
		reported:      map[rune]bool{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Escape returns the LaTeX form of s. The result always has balanced braces.
func (e *Escaper) Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	italic := 0
	for _, c := range clusters(s) {
		switch c.base {
		case italicOpen:
			if e.italics {
				b.WriteString(`\textit{`)
				italic++
			}
			continue
		case italicClose:
			if e.italics && italic > 0 {
				b.WriteByte('}')
				italic--
			}
			continue
		}
		b.WriteString(e.render(c))
	}
	b.WriteString(strings.Repeat("}", italic))

	if !e.abbreviations {
		return b.String()
	}
	return protectAbbreviations(b.String())
}

// EscapeAll escapes every string and joins them with sep.
func (e *Escaper) EscapeAll(values []string, sep string) string {
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = e.Escape(v)
	}
	return strings.Join(escaped, sep)
}

// cluster is a base rune followed by its combining marks. A cluster
// without a base (marks at the start of the text) has base noBase.
type cluster struct {
	base  rune
	marks []rune
}

const noBase = -1

// clusters groups s into renderable units. The machine has two states:
// outside a cluster, and collecting the marks of the current base.
func clusters(s string) []cluster {
	var (
		result  []cluster
		current *cluster
	)
	flush := func() {
		if current != nil {
			result = append(result, *current)
			current = nil
		}
	}
	for _, r := range s {
		if isCombining(r) {
			if current == nil {
				current = &cluster{base: noBase}
			}
			current.marks = append(current.marks, r)
			continue
		}
		flush()
		if r == italicOpen || r == italicClose {
			result = append(result, cluster{base: r})
			continue
		}
		current = &cluster{base: r}
	}
	flush()
	return result
}

func (e *Escaper) render(c cluster) string {
	if c.base != noBase {
		if _, ok := e.table[c.base]; !ok {
			// Precomposed letters missing from the table are retried as
			// base + marks.
			if d := []rune(norm.NFD.String(string(c.base))); len(d) > 1 {
				c = cluster{base: d[0], marks: append(d[1:], c.marks...)}
			}
		}
	}

	base := ""
	if c.base != noBase {
		base = e.lookup(c.base)
	}
	if len(c.marks) == 0 {
		return base
	}

	above := false
	for _, m := range c.marks {
		if isAbove(m) {
			above = true
		}
	}
	if above {
		switch base {
		case "i":
			base = `\i`
		case "j":
			base = `\j`
		}
	}

	var b strings.Builder
	closing := 0
	for _, m := range c.marks {
		macro, ok := e.table[m]
		if !ok {
			e.warnUnmapped(m)
			continue
		}
		if c.base == 'i' && (m == '\u030A' || m == '\u0325') {
			macro = `\textsubring{`
		}
		b.WriteString(macro)
		closing++
	}
	b.WriteString(base)
	b.WriteString(strings.Repeat("}", closing))
	return b.String()
}

func (e *Escaper) lookup(r rune) string {
	if s, ok := e.table[r]; ok {
		return s
	}
	if unicode.IsSpace(r) {
		return " "
	}
	e.warnUnmapped(r)
	return string(r)
}

func (e *Escaper) warnUnmapped(r rune) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.reported[r] {
		return
	}
	e.reported[r] = true
	e.logger.Warn("no LaTeX mapping for character, passing it through",
		"char", string(r),
		"codepoint", int(r),
	)
}

func isCombining(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// isAbove reports whether a combining mark is drawn above its base letter.
func isAbove(r rune) bool {
	return (r >= 0x0300 && r <= 0x0315) || r == 0x031A ||
		(r >= 0x033D && r <= 0x0344) || r == 0x0346 ||
		(r >= 0x034A && r <= 0x034C) || (r >= 0x0360 && r <= 0x0361)
}
