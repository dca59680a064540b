// Package dictionary builds the in-memory dictionary from spreadsheet rows.
//
// An Index holds the entries in row order, a per-language map from headword
// to the entries carrying it, and a per-language map from collation key to
// headword occurrences. It is filled once and only read afterwards.
package dictionary

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/mvzaanen/N-uu-conversion/internal/collation"
	"github.com/mvzaanen/N-uu-conversion/internal/lexicon"
)

// DefaultFirstLine is the line number of the first data row of a
// spreadsheet with a header row.
const DefaultFirstLine = 2

// Occurrence is one headword of one entry.
type Occurrence struct {
	Entry int
	Word  lexicon.Headword
}

// RowSource provides the rows of a spreadsheet.
type RowSource interface {
	ReadRows() ([]map[string]string, error)
}

// Index is the dictionary model. Build it with Insert, Build or Load, then
// treat it as read-only; concurrent readers are safe once building is done.
type Index struct {
	columns   Columns
	firstLine int
	collator  *collation.Collator
	logger    *slog.Logger

	entries    []lexicon.Entry
	byHeadword map[lexicon.Language]map[string][]int
	bySortKey  map[lexicon.Language]map[collation.SortKey][]Occurrence
	issues     Issues
	skipped    int
}

// Option configures an Index.
type Option func(*Index)

// WithLogger sets the logger diagnostics are written to.
func WithLogger(logger *slog.Logger) Option {
	return func(ix *Index) {
		ix.logger = logger
	}
}

// WithColumns sets the column mapping used by Insert.
func WithColumns(columns Columns) Option {
	return func(ix *Index) {
		ix.columns = columns
	}
}

// WithFirstLine sets the line number Build assigns to the first row.
func WithFirstLine(line int) Option {
	return func(ix *Index) {
		ix.firstLine = line
	}
}

// New returns an empty Index.
func New(opts ...Option) *Index {
	ix := &Index{
		columns:    DefaultColumns(),
		firstLine:  DefaultFirstLine,
		logger:     slog.Default(),
		byHeadword: map[lexicon.Language]map[string][]int{},
		bySortKey:  map[lexicon.Language]map[collation.SortKey][]Occurrence{},
	}
	for _, opt := range opts {
		opt(ix)
	}
	ix.collator = collation.New(collation.WithLogger(ix.logger))
	for _, l := range lexicon.Languages {
		ix.byHeadword[l] = map[string][]int{}
		ix.bySortKey[l] = map[collation.SortKey][]Occurrence{}
	}
	return ix
}

// Load reads every row from src and builds the index from them.
func (ix *Index) Load(src RowSource) error {
	rows, err := src.ReadRows()
	if err != nil {
		return fmt.Errorf("ReadRows() > %w", err)
	}
	converted := make([]Row, len(rows))
	for i, r := range rows {
		converted[i] = Row(r)
	}
	ix.Build(converted)
	return nil
}

// Build inserts rows in order. Rejected rows are recorded as issues and
// skipped.
func (ix *Index) Build(rows []Row) {
	for i, row := range rows {
		// The error is already recorded as an issue.
		_ = ix.Insert(row, ix.firstLine+i)
	}
	ix.logger.Debug("built dictionary index",
		"entries", len(ix.entries),
		"skipped", ix.skipped,
		"issues", len(ix.issues),
	)
}

// Insert builds an entry from row and adds it to the index. A row without a
// target-language headword is rejected with lexicon.ErrMissingTarget.
func (ix *Index) Insert(row Row, line int) error {
	headwords := map[lexicon.Language][]lexicon.Headword{}
	for _, l := range lexicon.Languages {
		if hws := lexicon.ParseHeadwords(row.Cell(ix.columns.Headwords[l])); len(hws) > 0 {
			headwords[l] = hws
		}
	}
	annotations := map[lexicon.Language]string{}
	for _, l := range lexicon.Languages {
		if a := row.Cell(ix.columns.Annotations[l]); a != "" {
			annotations[l] = a
		}
	}
	pos := row.Cell(ix.columns.POS)
	audio := lexicon.ParseAudioRefs(row.Cell(ix.columns.Audio))

	entry, err := lexicon.NewEntry(headwords, pos, annotations, audio, line)
	if err != nil {
		ix.skipped++
		ix.addIssue(Issue{
			Severity: SeverityError,
			Line:     line,
			Message:  fmt.Sprintf("missing %s headword, row skipped", lexicon.Target.Title()),
		})
		return fmt.Errorf("lexicon.NewEntry() > %w", err)
	}
	ix.checkEntry(entry)

	index := len(ix.entries)
	ix.entries = append(ix.entries, entry)
	for _, l := range lexicon.Languages {
		for _, hw := range entry.Headwords[l] {
			ix.registerHeadword(l, hw, index, line)
		}
	}
	return nil
}

func (ix *Index) checkEntry(entry lexicon.Entry) {
	line := entry.SourceLine
	switch code, ok := lexicon.POSCode(entry.PartOfSpeech); {
	case entry.PartOfSpeech == "":
		ix.addIssue(Issue{Severity: SeverityWarning, Line: line, Message: "missing part of speech"})
	case !ok:
		ix.addIssue(Issue{Severity: SeverityWarning, Line: line, Message: "unknown part of speech", Detail: code})
	}

	if !entry.Has(lexicon.IPA) {
		ix.addIssue(Issue{Severity: SeverityWarning, Line: line, Message: "missing IPA"})
	}
	for _, l := range lexicon.Translations {
		if !entry.Has(l) {
			ix.addIssue(Issue{
				Severity: SeverityWarning,
				Line:     line,
				Message:  fmt.Sprintf("missing %s translation", l.Title()),
			})
		}
	}

	targets, ipas := len(entry.Headwords[lexicon.Target]), len(entry.Headwords[lexicon.IPA])
	if targets > 1 && ipas > 0 && targets != ipas {
		ix.addIssue(Issue{
			Severity: SeverityWarning,
			Line:     line,
			Message:  fmt.Sprintf("%s and IPA variant counts differ", lexicon.Target.Title()),
			Detail:   fmt.Sprintf("%d headwords, %d transcriptions", targets, ipas),
		})
	}
}

// registerHeadword records the occurrence of hw in entry index. A word that
// is already present is kept and reported as a duplicate.
func (ix *Index) registerHeadword(l lexicon.Language, hw lexicon.Headword, index, line int) {
	existing := ix.byHeadword[l][hw.Word]
	if len(existing) > 0 {
		lines := make([]string, len(existing))
		for i, e := range existing {
			lines[i] = strconv.Itoa(ix.entries[e].SourceLine)
		}
		ix.addIssue(Issue{
			Severity: SeverityWarning,
			Line:     line,
			Language: l.Title(),
			Word:     hw.Word,
			Message:  "duplicate headword",
			Detail:   "also on line(s) " + strings.Join(lines, ", "),
		})
	}
	ix.byHeadword[l][hw.Word] = append(existing, index)

	key := ix.collator.Key(l, hw.Word).Sort
	ix.bySortKey[l][key] = append(ix.bySortKey[l][key], Occurrence{Entry: index, Word: hw})
}

func (ix *Index) addIssue(issue Issue) {
	ix.issues = append(ix.issues, issue)
	attrs := []any{"line", issue.Line}
	if issue.Language != "" {
		attrs = append(attrs, "language", issue.Language, "word", issue.Word)
	}
	if issue.Detail != "" {
		attrs = append(attrs, "detail", issue.Detail)
	}
	if issue.Severity == SeverityError {
		ix.logger.Error(issue.Message, attrs...)
		return
	}
	ix.logger.Warn(issue.Message, attrs...)
}

// Len returns the number of entries.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Entries returns the entries in row order.
func (ix *Index) Entries() []lexicon.Entry {
	return slices.Clone(ix.entries)
}

// Entry returns the entry at position i.
func (ix *Index) Entry(i int) lexicon.Entry {
	return ix.entries[i]
}

// Lookup returns the positions of the entries holding word in language l.
func (ix *Index) Lookup(l lexicon.Language, word string) []int {
	return slices.Clone(ix.byHeadword[l][word])
}

// Occurrences returns every headword occurrence of language l in collation
// order. Occurrences sharing a sort key are ordered by their tie key and
// then by insertion order.
func (ix *Index) Occurrences(l lexicon.Language) []Occurrence {
	keys := make([]collation.SortKey, 0, len(ix.bySortKey[l]))
	for k := range ix.bySortKey[l] {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return collation.Compare(keys[i], keys[j]) < 0
	})

	var result []Occurrence
	for _, k := range keys {
		group := slices.Clone(ix.bySortKey[l][k])
		if len(group) > 1 {
			ties := make(map[Occurrence]collation.TieKey, len(group))
			for _, o := range group {
				ties[o] = ix.collator.TieKey(l, ix.entries[o.Entry], o.Word)
			}
			slices.SortStableFunc(group, func(a, b Occurrence) int {
				return ties[a].Compare(ties[b])
			})
		}
		result = append(result, group...)
	}
	return result
}

// Issues returns the diagnostics collected while building.
func (ix *Index) Issues() Issues {
	return slices.Clone(ix.issues)
}

// Stats summarises an Index.
type Stats struct {
	Entries   int            `yaml:"entries"`
	Skipped   int            `yaml:"skipped"`
	Headwords map[string]int `yaml:"headwords"`
	Errors    int            `yaml:"errors"`
	Warnings  int            `yaml:"warnings"`
}

// Stats returns counts of entries, distinct headwords per language and issues.
func (ix *Index) Stats() Stats {
	headwords := map[string]int{}
	for _, l := range lexicon.Languages {
		headwords[l.Title()] = len(ix.byHeadword[l])
	}
	return Stats{
		Entries:   len(ix.entries),
		Skipped:   ix.skipped,
		Headwords: headwords,
		Errors:    ix.issues.Count(SeverityError),
		Warnings:  ix.issues.Count(SeverityWarning),
	}
}
