package dictionary

import (
	"bytes"
	"errors"
	"log/slog"
	"math/rand"
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvzaanen/N-uu-conversion/internal/lexicon"
)

func row(nuu, ipa, pos, nama, afrikaans, english string) Row {
	return Row{
		"Orthography 1":                         nuu,
		"IPA":                                   ipa,
		"Part of Speech, English":               pos,
		"Nama Feedback":                         nama,
		"Afrikaans community feedback HEADWORD": afrikaans,
		"English":                               english,
	}
}

func newTestIndex(buf *bytes.Buffer) *Index {
	return New(WithLogger(slog.New(slog.NewTextHandler(buf, nil))))
}

func TestIndex_Insert_Variants(t *testing.T) {
	var buf bytes.Buffer
	ix := newTestIndex(&buf)

	err := ix.Insert(row("!oe (Eastern); !oe~i (Western)", "ʘoe", "noun", "", "huis", "house"), 2)
	require.NoError(t, err)
	require.Equal(t, 1, ix.Len())

	entry := ix.Entry(0)
	assert.Equal(t, []lexicon.Headword{
		{Word: "!oe", Marker: lexicon.MarkerEastern},
		{Word: "!oe~i", Marker: lexicon.MarkerWestern},
	}, entry.Headwords[lexicon.Nuu])
	assert.Equal(t, []int{0}, ix.Lookup(lexicon.Nuu, "!oe"))
	assert.Equal(t, []int{0}, ix.Lookup(lexicon.Nuu, "!oe~i"))
	assert.Equal(t, []int{0}, ix.Lookup(lexicon.English, "house"))
	assert.Len(t, ix.Occurrences(lexicon.Nuu), 2)

	messages := issueMessages(ix.Issues())
	assert.Contains(t, messages, "missing Nama translation")
	assert.Contains(t, messages, "N|uu and IPA variant counts differ")
	assert.False(t, ix.Issues().HasErrors())
}

func TestIndex_Insert_DuplicateHeadword(t *testing.T) {
	var buf bytes.Buffer
	ix := newTestIndex(&buf)

	ix.Build([]Row{
		row("ǀxa", "ǀxa", "noun", "ǁgam", "water", "water"),
		row("ǂxa", "ǂxa", "noun", "ǁgami", "water", "water"),
	})

	require.Equal(t, 2, ix.Len())
	assert.Equal(t, []int{0, 1}, ix.Lookup(lexicon.English, "water"))
	assert.Equal(t, []int{0, 1}, ix.Lookup(lexicon.Afrikaans, "water"))

	var duplicates Issues
	for _, i := range ix.Issues() {
		if i.Message == "duplicate headword" {
			duplicates = append(duplicates, i)
		}
	}
	require.Len(t, duplicates, 2)
	assert.Equal(t, Issue{
		Severity: SeverityWarning,
		Line:     3,
		Language: "English",
		Word:     "water",
		Message:  "duplicate headword",
		Detail:   "also on line(s) 2",
	}, duplicates[1])
	assert.Contains(t, buf.String(), "duplicate headword")
	assert.Contains(t, duplicates[1].Error(), "line 3")
}

func TestIndex_Insert_MissingTarget(t *testing.T) {
	var buf bytes.Buffer
	ix := newTestIndex(&buf)
	require.NoError(t, ix.Insert(row("ka", "ka", "verb", "ka", "gaan", "go"), 2))

	err := ix.Insert(row("   ", "xa", "noun", "", "", "thing"), 7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, lexicon.ErrMissingTarget))
	assert.Equal(t, 1, ix.Len())
	assert.Empty(t, ix.Lookup(lexicon.English, "thing"))

	issues := ix.Issues()
	require.True(t, issues.HasErrors())
	errs := issues.Filter(SeverityError)
	require.Len(t, errs, 1)
	assert.Equal(t, 7, errs[0].Line)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Equal(t, 1, ix.Stats().Skipped)
}

func TestIndex_Insert_Warnings(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want []string
	}{
		{
			name: "complete row",
			row:  row("ka", "ka", "verb", "ǃa", "gaan", "go"),
			want: nil,
		},
		{
			name: "missing part of speech",
			row:  row("ka", "ka", "", "ǃa", "gaan", "go"),
			want: []string{"missing part of speech"},
		},
		{
			name: "unknown part of speech",
			row:  row("ka", "ka", "ideophone", "ǃa", "gaan", "go"),
			want: []string{"unknown part of speech"},
		},
		{
			name: "missing IPA and translations",
			row:  row("ka", "", "verb", "", "", ""),
			want: []string{"missing IPA", "missing Nama translation", "missing Afrikaans translation", "missing English translation"},
		},
		{
			name: "matching variant counts",
			row:  row("ka (Eastern); kha (Western)", "ka; kʰa", "verb", "ǃa", "gaan", "go"),
			want: nil,
		},
		{
			name: "single IPA for variants",
			row:  row("ka (Eastern); kha (Western)", "ka", "verb", "ǃa", "gaan", "go"),
			want: []string{"N|uu and IPA variant counts differ"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ix := newTestIndex(&buf)
			require.NoError(t, ix.Insert(tt.row, 5))
			assert.Equal(t, tt.want, issueMessages(ix.Issues()))
		})
	}
}

func TestIndex_Insert_Cells(t *testing.T) {
	var buf bytes.Buffer
	ix := newTestIndex(&buf)

	r := row(" ka ", "ka", "Verb", "ǃa", "gaan", "go")
	r["Afrikaans community feedback Local Variety "] = "loop"
	r["Parentheticals, English"] = " (of people) "
	r["Dictionary Recording (target word only)"] = "NUU_01; NUU_02"
	require.NoError(t, ix.Insert(r, 9))

	entry := ix.Entry(0)
	assert.Equal(t, "ka", entry.Headwords[lexicon.Nuu][0].Word)
	assert.Equal(t, "loop", entry.Headwords[lexicon.AfrikaansLocal][0].Word)
	assert.Equal(t, map[lexicon.Language]string{lexicon.English: "(of people)"}, entry.Annotations)
	assert.Equal(t, []string{"NUU_01", "NUU_02"}, entry.AudioRefs)
	assert.Equal(t, "T2", entry.POSCode())
	assert.Equal(t, 9, entry.SourceLine)
}

func TestIndex_WithColumns(t *testing.T) {
	var buf bytes.Buffer
	columns := DefaultColumns()
	columns.Headwords[lexicon.Nuu] = "Orthography"
	ix := New(WithColumns(columns), WithFirstLine(10), WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	ix.Build([]Row{{"Orthography": "ka"}, {"Orthography 1": "xa"}})

	require.Equal(t, 1, ix.Len())
	assert.Equal(t, 10, ix.Entry(0).SourceLine)
	assert.Equal(t, 11, ix.Issues().Filter(SeverityError)[0].Line)
}

func TestIndex_Occurrences_Order(t *testing.T) {
	var buf bytes.Buffer
	ix := newTestIndex(&buf)
	ix.Build([]Row{
		row("ʘa", "", "noun", "", "", ""),
		row("ka", "", "verb", "", "", ""),
		row("aa", "", "noun", "", "", ""),
		row("ka; kaxu", "", "noun", "", "", ""),
		row("Ka", "", "noun", "", "", ""),
	})

	got := ix.Occurrences(lexicon.Nuu)
	var words []string
	var entries []int
	for _, o := range got {
		words = append(words, o.Word.Word)
		entries = append(entries, o.Entry)
	}
	assert.Equal(t, []string{"aa", "Ka", "ka", "ka", "kaxu", "ʘa"}, words)
	// The three "ka" occurrences tie on the normalized text: the noun without
	// other headwords comes first, then the noun with one, then the verb.
	assert.Equal(t, []int{2, 4, 3, 1, 3, 0}, entries)
	assert.Equal(t, got, ix.Occurrences(lexicon.Nuu))
}

func TestIndex_Occurrences_StopWords(t *testing.T) {
	var buf bytes.Buffer
	ix := newTestIndex(&buf)
	ix.Build([]Row{
		row("a", "", "", "", "", "the water"),
		row("b", "", "", "", "", "to walk"),
		row("c", "", "", "", "", "(be) big"),
	})

	var words []string
	for _, o := range ix.Occurrences(lexicon.English) {
		words = append(words, o.Word.Word)
	}
	assert.Equal(t, []string{"(be) big", "to walk", "the water"}, words)
}

func TestIndex_LookupRoundTrip(t *testing.T) {
	pieces := []string{"ka", "xa", "ǀa", "ʘo", "!u", "water", "house", " (Eastern)", " (Western)", "; "}
	config := &quick.Config{
		MaxCount: 100,
		Rand:     rand.New(rand.NewSource(23)),
	}
	cell := func(r *rand.Rand) string {
		var b strings.Builder
		for i := 0; i < r.Intn(4); i++ {
			b.WriteString(pieces[r.Intn(len(pieces))])
		}
		return b.String()
	}
	property := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		var buf bytes.Buffer
		ix := newTestIndex(&buf)
		rows := make([]Row, r.Intn(8)+1)
		for i := range rows {
			rows[i] = row(cell(r), cell(r), "noun", cell(r), cell(r), cell(r))
		}
		ix.Build(rows)

		for i, entry := range ix.Entries() {
			for l, hws := range entry.Headwords {
				for _, hw := range hws {
					if !contains(ix.Lookup(l, hw.Word), i) {
						return false
					}
				}
			}
		}
		return ix.Len()+ix.Stats().Skipped == len(rows)
	}
	require.NoError(t, quick.Check(property, config))
}

func TestIndex_Load(t *testing.T) {
	var buf bytes.Buffer
	ix := newTestIndex(&buf)
	err := ix.Load(rowSource{rows: []map[string]string{{"Orthography 1": "ka", "English": "go"}}})
	require.NoError(t, err)
	assert.Equal(t, 1, ix.Len())
	assert.Equal(t, 2, ix.Entry(0).SourceLine)

	err = New().Load(rowSource{err: errors.New("broken file")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ReadRows() > broken file")
}

func TestIndex_Stats(t *testing.T) {
	var buf bytes.Buffer
	ix := newTestIndex(&buf)
	ix.Build([]Row{
		row("ka; xa", "ka; xa", "verb", "ǃa", "gaan", "go"),
		row("", "", "", "", "", "nothing"),
		row("ta", "ta", "verb", "ǃa", "loop", "walk"),
	})

	stats := ix.Stats()
	assert.Equal(t, 2, stats.Entries)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 3, stats.Headwords["N|uu"])
	assert.Equal(t, 2, stats.Headwords["English"])
	assert.Equal(t, 1, stats.Headwords["Nama"])
	assert.Equal(t, 1, stats.Errors)
	assert.Equal(t, 1, stats.Warnings)
}

type rowSource struct {
	rows []map[string]string
	err  error
}

func (s rowSource) ReadRows() ([]map[string]string, error) {
	return s.rows, s.err
}

func issueMessages(issues Issues) []string {
	var messages []string
	for _, i := range issues {
		messages = append(messages, i.Message)
	}
	return messages
}

func contains(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
