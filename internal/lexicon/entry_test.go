package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	tests := []struct {
		name      string
		headwords map[Language][]Headword
		wantErr   error
	}{
		{
			name: "target present",
			headwords: map[Language][]Headword{
				Nuu:     {{Word: "!oe"}},
				English: {{Word: "house"}},
			},
		},
		{
			name: "target missing",
			headwords: map[Language][]Headword{
				English: {{Word: "house"}},
			},
			wantErr: ErrMissingTarget,
		},
		{
			name: "target empty list",
			headwords: map[Language][]Headword{
				Nuu: {},
			},
			wantErr: ErrMissingTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := NewEntry(tt.headwords, "noun", nil, nil, 12)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "line 12")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 12, entry.SourceLine)
			assert.NotNil(t, entry.Annotations)
			assert.Equal(t, "T1", entry.POSCode())
		})
	}
}

func TestEntry_OthersAndIndexOf(t *testing.T) {
	entry, err := NewEntry(map[Language][]Headword{
		Nuu: {
			{Word: "!oe", Marker: MarkerEastern},
			{Word: "!oe~i", Marker: MarkerWestern},
			{Word: "ʘoe"},
		},
	}, "", nil, nil, 3)
	require.NoError(t, err)

	assert.Equal(t, 1, entry.IndexOf(Nuu, "!oe~i"))
	assert.Equal(t, -1, entry.IndexOf(Nuu, "missing"))
	assert.Equal(t, -1, entry.IndexOf(English, "!oe"))
	assert.Equal(t, []Headword{{Word: "!oe", Marker: MarkerEastern}, {Word: "ʘoe"}}, entry.Others(Nuu, 1))
	assert.True(t, entry.Has(Nuu))
	assert.False(t, entry.Has(IPA))
	assert.Equal(t, MissingPOS, entry.POSCode())
}

func TestPOSCode(t *testing.T) {
	tests := []struct {
		pos    string
		want   string
		wantOK bool
	}{
		{pos: "noun", want: "T1", wantOK: true},
		{pos: "  Noun, Proper, Place ", want: "T1b", wantOK: true},
		{pos: "verb, adjective", want: "T2, T10", wantOK: true},
		{pos: "", want: MissingPOS, wantOK: true},
		{pos: "ideophone", want: "ideophone", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.pos, func(t *testing.T) {
			got, ok := POSCode(tt.pos)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestParseLanguage(t *testing.T) {
	for _, l := range Languages {
		got, err := ParseLanguage(l.Key())
		require.NoError(t, err)
		assert.Equal(t, l, got)

		got, err = ParseLanguage(l.Title())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}

	_, err := ParseLanguage("klingon")
	assert.Error(t, err)
}
