package collation

import (
	"bytes"
	"log/slog"
	"math/rand"
	"slices"
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvzaanen/N-uu-conversion/internal/lexicon"
)

func TestCollator_Key_Normalization(t *testing.T) {
	tests := []struct {
		name           string
		lang           lexicon.Language
		word           string
		wantNormalized string
		wantSkipped    string
	}{
		{name: "plain", lang: lexicon.Nuu, word: "ǂXam", wantNormalized: "ǂxam"},
		{name: "afrikaans article", lang: lexicon.Afrikaans, word: "die huis", wantNormalized: "huis", wantSkipped: "die "},
		{name: "repeated stop words", lang: lexicon.Afrikaans, word: "iemand te help", wantNormalized: "help", wantSkipped: "iemand te "},
		{name: "local variety uses afrikaans stop words", lang: lexicon.AfrikaansLocal, word: "'n boom", wantNormalized: "boom", wantSkipped: "'n "},
		{name: "english be", lang: lexicon.English, word: "(be) hungry", wantNormalized: "hungry", wantSkipped: "(be) "},
		{name: "english article", lang: lexicon.English, word: "The water", wantNormalized: "water", wantSkipped: "the "},
		{name: "stop word alone is kept", lang: lexicon.English, word: "the", wantNormalized: "the"},
		{name: "stop words are language specific", lang: lexicon.Nuu, word: "die huis", wantNormalized: "die huis"},
		{name: "leading hyphen", lang: lexicon.Nuu, word: "-ke", wantNormalized: "ke", wantSkipped: "-"},
		{name: "leading italic marker", lang: lexicon.Nama, word: "☾xa", wantNormalized: "xa", wantSkipped: "☾"},
		{name: "lone hyphen is kept", lang: lexicon.Nuu, word: "-", wantNormalized: "-"},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Key(tt.lang, tt.word)
			assert.Equal(t, tt.wantNormalized, got.Normalized)
			assert.Equal(t, tt.wantSkipped, got.Skipped)
		})
	}
}

func TestCollator_Key_Order(t *testing.T) {
	tests := []struct {
		name   string
		before string
		after  string
	}{
		{name: "clicks after z", before: "zoo", after: "ʘoa"},
		{name: "click order", before: "ʘa", after: "ǀa"},
		{name: "lateral after dental", before: "ǀa", after: "ǁa"},
		{name: "alveolar after retroflex", before: "!a", after: "ǂa"},
		{name: "glottal stop last", before: "ǂa", after: "ʔa"},
		{name: "eng after n", before: "nz", after: "ŋa"},
		{name: "eng before o", before: "ŋz", after: "oa"},
		{name: "ae after a", before: "az", after: "æa"},
		{name: "ae before b", before: "æz", after: "ba"},
		{name: "digits before letters", before: "9z", after: "aa"},
		{name: "space before letters", before: "a b", after: "ab"},
		{name: "prefix first", before: "ka", after: "kaa"},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := c.Key(lexicon.Nuu, tt.before).Sort
			after := c.Key(lexicon.Nuu, tt.after).Sort
			assert.Equal(t, -1, Compare(before, after))
			assert.Equal(t, 1, Compare(after, before))
		})
	}
}

func TestCollator_Key_Ties(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{name: "case", a: "Water", b: "water"},
		{name: "macron folds", a: "ā", b: "a"},
		{name: "circumflex folds", a: "kô", b: "ko"},
		{name: "pipe is a dental click", a: "|a", b: "ǀa"},
		{name: "exclamation is a retroflex click", a: "!a", b: "ǃa"},
		{name: "combining marks skipped", a: "n\u0325a", b: "na"},
		{name: "italic markers ignored", a: "x☾a☽", b: "xa"},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, c.Key(lexicon.Nuu, tt.a).Sort, c.Key(lexicon.Nuu, tt.b).Sort)
		})
	}
}

func TestCollator_UnmappedCharacterWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	c := New(WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	assert.Equal(t, c.Key(lexicon.Nuu, "a").Sort, c.Key(lexicon.Nuu, "a中").Sort)
	c.Key(lexicon.Nuu, "中b")
	assert.Equal(t, 1, strings.Count(buf.String(), "no collation rank"))
}

func TestCollator_StrictWeakOrder(t *testing.T) {
	letters := []rune("abcdefghijklmnopqrstuvwxyzæŋʘǀǁǃǂʔ0123456789")
	c := New()
	config := &quick.Config{
		MaxCount: 200,
		Rand:     rand.New(rand.NewSource(17)),
	}
	word := func(r *rand.Rand) string {
		w := make([]rune, r.Intn(6)+1)
		for i := range w {
			w[i] = letters[r.Intn(len(letters))]
		}
		return string(w)
	}
	property := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		a, b, d := word(r), word(r), word(r)
		ka, kb, kd := c.Key(lexicon.Nuu, a).Sort, c.Key(lexicon.Nuu, b).Sort, c.Key(lexicon.Nuu, d).Sort

		less := func(x, y SortKey) bool { return Compare(x, y) < 0 }
		if less(ka, ka) {
			return false
		}
		if less(ka, kb) && less(kb, ka) {
			return false
		}
		if less(ka, kb) && less(kb, kd) && !less(ka, kd) {
			return false
		}
		// Distinct words over the alphabet never tie.
		return a == b || Compare(ka, kb) != 0
	}
	require.NoError(t, quick.Check(property, config))
}

func TestTieKey_Compare(t *testing.T) {
	c := New()
	entry := func(pos string, words ...string) lexicon.Entry {
		var hws []lexicon.Headword
		for _, w := range words {
			hws = append(hws, lexicon.Headword{Word: w})
		}
		e, err := lexicon.NewEntry(map[lexicon.Language][]lexicon.Headword{lexicon.Nuu: hws}, pos, nil, nil, 2)
		require.NoError(t, err)
		return e
	}

	noun := entry("noun", "ka", "kaxa")
	verb := entry("verb", "ka")
	alone := entry("noun", "ka")

	nounKey := c.TieKey(lexicon.Nuu, noun, lexicon.Headword{Word: "ka"})
	verbKey := c.TieKey(lexicon.Nuu, verb, lexicon.Headword{Word: "ka"})
	aloneKey := c.TieKey(lexicon.Nuu, alone, lexicon.Headword{Word: "ka"})

	assert.Equal(t, TieKey{Normalized: "ka", POS: "T1", Others: "kaxa"}, nounKey)
	assert.Equal(t, -1, nounKey.Compare(verbKey))
	assert.Equal(t, -1, aloneKey.Compare(nounKey))
	assert.Equal(t, 0, nounKey.Compare(nounKey))

	keys := []TieKey{verbKey, nounKey, aloneKey}
	slices.SortFunc(keys, TieKey.Compare)
	assert.Equal(t, []TieKey{aloneKey, nounKey, verbKey}, keys)
}
