// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaperID(t *testing.T) {
	assert.Equal(t, "PMC1", Paper{PMCID: "PMC1", PMID: "2", DOI: "10.1/x"}.ID())
	assert.Equal(t, "2", Paper{PMID: "2", DOI: "10.1/x"}.ID())
	assert.Equal(t, "10.1/x", Paper{DOI: "10.1/x"}.ID())
	assert.Empty(t, Paper{}.ID())
}

func TestPaperURL(t *testing.T) {
	assert.Equal(t, "https://pubmed.ncbi.nlm.nih.gov/123", Paper{PMID: "123", DOI: "10.1/x"}.URL())
	assert.Equal(t, "https://www.doi.org/10.1/x", Paper{DOI: "10.1/x"}.URL())
	assert.Empty(t, Paper{PMCID: "PMC1"}.URL())
}

func TestPaperSnippet(t *testing.T) {
	short := Paper{Abstract: "brief"}
	assert.Equal(t, "brief", short.Snippet(SnippetMaxSize))

	exact := Paper{Abstract: strings.Repeat("x", SnippetMaxSize)}
	assert.Equal(t, exact.Abstract, exact.Snippet(SnippetMaxSize))

	long := Paper{Abstract: strings.Repeat("é", SnippetMaxSize+10)}
	assert.Equal(t, strings.Repeat("é", SnippetMaxSize)+"...", long.Snippet(SnippetMaxSize))

	assert.Empty(t, Paper{}.Snippet(SnippetMaxSize))
}

func TestPaperDisplayHelpers(t *testing.T) {
	p := Paper{
		Authors: []string{"Jane Doe", "John Smith"},
		Date:    time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "Jane Doe, John Smith", p.AuthorsString())
	assert.Equal(t, "03/01/2020", p.DateString())
	assert.Empty(t, Paper{}.DateString())
}

func TestScoreCard(t *testing.T) {
	c := NewScoreCard()
	assert.False(t, c.IsSet())
	for _, x := range []float64{c.Journal, c.Date, c.Title, c.Author, c.Keyword, c.Abstract, c.Total} {
		assert.True(t, IsUnset(x))
	}

	c.Total = 0
	assert.True(t, c.IsSet(), "a zero total is a real score")

	c.Total = -1
	assert.True(t, c.IsSet(), "a negative total from a pre-1970 date is a real score")
	assert.False(t, IsUnset(-1))
}
