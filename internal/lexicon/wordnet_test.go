// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-rank/pkg/types"
)

const wordnetLicense = `  1 This software and database is being provided to you, the LICENSEE, by
  2 Princeton University under the following license.  By obtaining, using
`

// wordnetDict writes a small dict directory in WordNet's file format.
// verb.exc and adv.exc are left out on purpose.
func wordnetDict(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "data.noun", wordnetLicense+
		"00001740 03 n 01 entity 0 003 ~ 00001930 n 0000 ~ 00002137 n 0000 ~ 04431553 n 0000 | that which is perceived or known or inferred\n"+
		"02670683 06 n 01 antibody 0 001 @ 02669789 n 0000 | any of a large variety of proteins normally present in the body\n"+
		"03540595 06 n 02 hospital 0 infirmary 0 001 @ 03402783 n 0000 | a health facility where patients receive treatment\n"+
		"02330245 05 n 01 mouse 0 001 @ 02329401 n 0000 | any of numerous small rodents\n")
	writeFile(t, dir, "data.verb", wordnetLicense+
		"00598954 31 v 02 learn 0 acquire 0 001 @ 00597915 v 0000 01 + 08 00 | gain knowledge or skills\n")
	writeFile(t, dir, "data.adj", wordnetLicense+
		"01382086 00 a 02 large 0 big 0 001 ! 01384730 a 0101 | above average in size or number or quantity\n"+
		"01387319 00 s 01 galore(ip) 0 001 & 01386883 a 0000 | in great numbers\n")
	writeFile(t, dir, "data.adv", wordnetLicense+
		"00011093 02 r 01 deeply 0 000 | to a great depth\n")
	writeFile(t, dir, "noun.exc", "mice mouse\n")
	writeFile(t, dir, "adj.exc", "bigger big\nbiggest big\n")
	return dir
}

func TestImportWordNet(t *testing.T) {
	th, err := ImportWordNet(wordnetDict(t))
	require.NoError(t, err)
	assert.Equal(t, 8, th.Len())

	got := th.Synsets("hospitals")
	require.Len(t, got, 1)
	assert.Equal(t, "03540595-n", got[0].ID)
	assert.Equal(t, []string{"hospital", "infirmary"}, got[0].Lemmas)

	assert.True(t, th.Has("acquire", Verb))
	assert.True(t, th.Has("deeply", Adverb))
	assert.True(t, th.Has("galore", Adjective), "position marker is stripped")
	assert.False(t, th.Has("galore(ip)", Adjective))

	assert.Equal(t, "antibody", th.Lemmatize("antibodies", Noun))
	assert.Equal(t, "mouse", th.Lemmatize("mice", Noun))
	assert.Equal(t, "big", th.Lemmatize("bigger", Adjective), "from adj.exc")

	assert.Equal(t, []Exception{
		{POS: Noun, Form: "mice", Bases: []string{"mouse"}},
		{POS: Adjective, Form: "bigger", Bases: []string{"big"}},
		{POS: Adjective, Form: "biggest", Bases: []string{"big"}},
	}, th.Exceptions())
}

func TestImportedWordNetLemmatizesFields(t *testing.T) {
	th, err := ImportWordNet(wordnetDict(t))
	require.NoError(t, err)
	m, err := NewMatcher(th, types.LexiconConfig{})
	require.NoError(t, err)

	assert.Equal(t, []string{"antibody", "hospital", "mouse"}, m.FieldTokens("Antibodies hospitals mice"))
}

func TestWordNetToSQLite(t *testing.T) {
	th, err := ImportWordNet(wordnetDict(t))
	require.NoError(t, err)

	dbPath := filepath.Join(t.TempDir(), "wordnet.db")
	require.NoError(t, th.WriteSQLite(dbPath))

	loaded, err := Load(dbPath)
	require.NoError(t, err)
	assert.Equal(t, th.All(), loaded.All())
	assert.Equal(t, th.Exceptions(), loaded.Exceptions())
	assert.Equal(t, "big", loaded.Lemmatize("biggest", Adjective))
}

func TestLoadWordNetDirectory(t *testing.T) {
	th, err := Load(wordnetDict(t))
	require.NoError(t, err)
	assert.True(t, th.Has("antibody", Noun))
}

func TestImportWordNetMissingDataFile(t *testing.T) {
	_, err := ImportWordNet(t.TempDir())
	assert.ErrorContains(t, err, "opening WordNet data")
}

func TestParseWordNetDataErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"too few fields", "00001740 03 n\n", "line 1"},
		{"bad synset type", "00001740 03 x 01 entity 0 000 | gloss\n", `synset type "x"`},
		{"bad word count", "00001740 03 n zz entity 0 000 | gloss\n", `word count "zz"`},
		{"zero words", "00001740 03 n 00 000 | gloss\n", `word count "00"`},
		{"short line", wordnetLicense + "00001740 03 n 03 entity 0 000 | gloss\n", "line 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseWordNetData(strings.NewReader(tt.data), "data.noun")
			require.ErrorIs(t, err, ErrWordNetFormat)
			assert.Contains(t, err.Error(), "data.noun")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseWordNetDataHexCount(t *testing.T) {
	words := make([]string, 0, 2*0x0b)
	want := make([]string, 0, 0x0b)
	for i := 0; i < 0x0b; i++ {
		w := "w" + string(rune('a'+i))
		words = append(words, w, "0")
		want = append(want, w)
	}
	line := "00000001 03 n 0b " + strings.Join(words, " ") + " 000 | gloss\n"

	got, err := parseWordNetData(strings.NewReader(line), "data.noun")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want, got[0].Lemmas)
}

func TestParseWordNetExceptions(t *testing.T) {
	got, err := parseWordNetExceptions(strings.NewReader("axes axis axe\n\nmice mouse\n"), Noun, "noun.exc")
	require.NoError(t, err)
	assert.Equal(t, []Exception{
		{POS: Noun, Form: "axes", Bases: []string{"axis", "axe"}},
		{POS: Noun, Form: "mice", Bases: []string{"mouse"}},
	}, got)

	_, err = parseWordNetExceptions(strings.NewReader("mice\n"), Noun, "noun.exc")
	assert.ErrorIs(t, err, ErrWordNetFormat)
}
