// Package collation orders dictionary headwords for the typeset dictionary.
//
// Words are lowercased, stripped of leading function words and markup
// lead-ins, decomposed, and mapped character by character through a rank
// table that places the click letters after z. The resulting SortKey compares
// with plain string comparison. Occurrences that share a SortKey are ordered
// by their TieKey and finally by insertion order.
package collation

import (
	"cmp"
	"log/slog"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/mvzaanen/N-uu-conversion/internal/lexicon"
)

// SortKey is a string of rank runes; string order is collation order and a
// strict prefix sorts first.
type SortKey string

// Compare returns -1, 0 or 1 for a before, tied with or after b.
func Compare(a, b SortKey) int {
	return strings.Compare(string(a), string(b))
}

// Key is the collation view of one word.
type Key struct {
	Sort SortKey
	// Normalized is the lowercased word after the skipped prefix.
	Normalized string
	// Skipped is the lowercased prefix removed before ranking.
	Skipped string
}

// TieKey orders occurrences that share a SortKey. Fields compare in order.
type TieKey struct {
	Normalized string
	POS        string
	Others     string
	Skipped    string
}

// Compare compares t and o component-wise.
func (t TieKey) Compare(o TieKey) int {
	return cmp.Or(
		strings.Compare(t.Normalized, o.Normalized),
		strings.Compare(t.POS, o.POS),
		strings.Compare(t.Others, o.Others),
		strings.Compare(t.Skipped, o.Skipped),
	)
}

// Collator computes sort keys. It is safe for concurrent use.
type Collator struct {
	logger *slog.Logger

	mu       sync.Mutex
	reported map[rune]bool
}

// Option configures a Collator.
type Option func(*Collator)

// WithLogger sets the logger used for unmapped-character warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Collator) {
		c.logger = logger
	}
}

// New returns a Collator.
func New(opts ...Option) *Collator {
	c := &Collator{
		logger:   slog.Default(),
		reported: map[rune]bool{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key returns the collation key of word in language lang.
func (c *Collator) Key(lang lexicon.Language, word string) Key {
	lower := strings.ToLower(word)
	skip := skipPrefix(lang, lower)
	normalized := lower[skip:]

	var b strings.Builder
	for _, r := range norm.NFD.String(normalized) {
		if unicode.Is(unicode.Mn, r) || ignorable(r) {
			continue
		}
		rank, ok := ranks[r]
		if !ok {
			c.warnUnmapped(r, word)
			continue
		}
		b.WriteRune(rank)
	}
	return Key{
		Sort:       SortKey(b.String()),
		Normalized: normalized,
		Skipped:    lower[:skip],
	}
}

// TieKey returns the tie-break key for the occurrence of word among the
// headwords of entry in language lang.
func (c *Collator) TieKey(lang lexicon.Language, entry lexicon.Entry, word lexicon.Headword) TieKey {
	key := c.Key(lang, word.Word)
	others := entry.Others(lang, entry.IndexOf(lang, word.Word))
	displayed := make([]string, len(others))
	for i, h := range others {
		displayed[i] = h.Display()
	}
	return TieKey{
		Normalized: key.Normalized,
		POS:        entry.POSCode(),
		Others:     strings.Join(displayed, ", "),
		Skipped:    key.Skipped,
	}
}

func (c *Collator) warnUnmapped(r rune, word string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.reported[r] {
		return
	}
	c.reported[r] = true
	c.logger.Warn("character has no collation rank, ignoring it",
		"char", string(r),
		"codepoint", int(r),
		"word", word,
	)
}
