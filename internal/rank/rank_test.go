// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/pdiddy/paper-rank/pkg/types"
)

func testPapers() []types.Paper {
	return []types.Paper{
		{
			PMCID:       "PMC1",
			Title:       "Quantum gravity in curved space",
			JournalISSN: "9999-9999",
			Date:        time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			PMCID:       "PMC2",
			Title:       "Deep learning for genomics",
			Abstract:    "We train a deep neural network on genome data.",
			Keywords:    []string{"deep learning", "genomics"},
			JournalISSN: "8765-4321",
			Date:        time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC),
			Authors:     []string{"Jane Doe"},
		},
		{
			PMCID:       "PMC3",
			Title:       "Learning rules of cell growth",
			JournalISSN: "1234-5678",
			Date:        time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestRankEmpty(t *testing.T) {
	r := NewRanker(testScorer(t), nil)
	got := r.Rank(nil, "deep learning")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRankOrdersByTotal(t *testing.T) {
	r := NewRanker(testScorer(t), nil)
	got := r.Rank(testPapers(), "deep learning")

	require.Len(t, got, 3)
	assert.Equal(t, "PMC2", got[0].Paper.ID())
	assert.Equal(t, "PMC1", got[2].Paper.ID())
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score.Total, got[i].Score.Total)
	}
	for _, rp := range got {
		assert.True(t, rp.Score.IsSet())
		assert.GreaterOrEqual(t, rp.Score.Total, 0.0)
		assert.LessOrEqual(t, rp.Score.Total, 1.0)
	}
}

func TestRankJournalPrestige(t *testing.T) {
	r := NewRanker(testScorer(t), nil)
	papers := []types.Paper{
		{PMCID: "PMC1", JournalISSN: "9999-9999"},
		{PMCID: "PMC2", JournalISSN: "1234-5678"},
	}
	got := r.Rank(papers, "deep learning")

	require.Len(t, got, 2)
	assert.Equal(t, "PMC2", got[0].Paper.ID())
	assert.Equal(t, 1.0, got[0].Score.Journal)
	assert.Equal(t, 0.0, got[1].Score.Journal)
	assert.Greater(t, got[0].Score.Total, got[1].Score.Total)
}

func TestRankSinglePaperKeepsRawScores(t *testing.T) {
	s := testScorer(t)
	r := NewRanker(s, nil)
	p := testPapers()[1]

	got := r.Rank([]types.Paper{p}, "deep learning")
	require.Len(t, got, 1)

	raw := s.Card(p, s.ParseQuery("deep learning"))
	assert.Equal(t, raw.Journal, got[0].Score.Journal)
	assert.Equal(t, raw.Date, got[0].Score.Date)
	assert.Equal(t, raw.Title, got[0].Score.Title)
	assert.InDelta(t, total(raw), got[0].Score.Total, 1e-9)
}

func TestRankPre1970PaperIsScored(t *testing.T) {
	r := NewRanker(testScorer(t), nil)
	// Six seconds before the epoch: a date score of -6 and every other
	// dimension 0, so the mean total is exactly -1.
	p := types.Paper{PMCID: "PMC-old", Date: time.Unix(-6, 0).UTC()}

	got := r.Rank([]types.Paper{p}, "deep learning")
	require.Len(t, got, 1)
	assert.Equal(t, -1.0, got[0].Score.Total)
	assert.True(t, got[0].Score.IsSet())
}

func TestRankStableTies(t *testing.T) {
	r := NewRanker(testScorer(t), nil)
	papers := []types.Paper{
		{PMCID: "PMC-a", Title: "unrelated text"},
		{PMCID: "PMC-b", Title: "unrelated text"},
		{PMCID: "PMC-c", Title: "unrelated text"},
	}
	got := r.Rank(papers, "deep learning")

	require.Len(t, got, 3)
	assert.Equal(t, "PMC-a", got[0].Paper.ID())
	assert.Equal(t, "PMC-b", got[1].Paper.ID())
	assert.Equal(t, "PMC-c", got[2].Paper.ID())
}

func TestRankDoesNotMutateInput(t *testing.T) {
	r := NewRanker(testScorer(t), nil)
	papers := testPapers()
	before := testPapers()

	r.Rank(papers, "deep learning")
	assert.Equal(t, before, papers)
}

func TestRankConcurrent(t *testing.T) {
	r := NewRanker(testScorer(t), nil)
	want := r.Rank(testPapers(), "deep learning")

	var wg sync.WaitGroup
	results := make([][]types.RankedPaper, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.Rank(testPapers(), "deep learning")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

var (
	genTitles = []string{
		"Deep learning for genomics",
		"Quantum gravity",
		"Gene networks in mice",
		"Learning in children",
		"",
	}
	genISSNs = []string{"", "1234-5678", "8765-4321", "1111-1111", "9999-9999"}
)

func genPapers(t *rapid.T) []types.Paper {
	n := rapid.IntRange(0, 12).Draw(t, "n")
	papers := make([]types.Paper, n)
	for i := range papers {
		papers[i] = types.Paper{
			PMCID:       fmt.Sprintf("PMC%d", i),
			Title:       rapid.SampledFrom(genTitles).Draw(t, "title"),
			JournalISSN: rapid.SampledFrom(genISSNs).Draw(t, "issn"),
			Date:        time.Unix(rapid.Int64Range(0, 2e9).Draw(t, "date"), 0).UTC(),
		}
	}
	return papers
}

func TestRankProperties(t *testing.T) {
	r := NewRanker(testScorer(t), nil)

	rapid.Check(t, func(t *rapid.T) {
		papers := genPapers(t)
		query := rapid.SampledFrom([]string{"deep learning", "gene", "gravity", ""}).Draw(t, "query")

		got := r.Rank(papers, query)
		if len(got) != len(papers) {
			t.Fatalf("got %d papers, want %d", len(got), len(papers))
		}

		index := make(map[string]int, len(papers))
		for i, p := range papers {
			index[p.PMCID] = i
		}
		seen := make([]string, 0, len(got))
		for i, rp := range got {
			seen = append(seen, rp.Paper.PMCID)
			if want := total(rp.Score); rp.Score.Total != want {
				t.Fatalf("paper %s total %v, want mean %v", rp.Paper.PMCID, rp.Score.Total, want)
			}
			if i == 0 {
				continue
			}
			prev := got[i-1]
			if prev.Score.Total < rp.Score.Total {
				t.Fatalf("totals not descending at %d: %v < %v", i, prev.Score.Total, rp.Score.Total)
			}
			if prev.Score.Total == rp.Score.Total && index[prev.Paper.PMCID] > index[rp.Paper.PMCID] {
				t.Fatalf("tie between %s and %s out of input order", prev.Paper.PMCID, rp.Paper.PMCID)
			}
		}

		sort.Strings(seen)
		ids := make([]string, 0, len(papers))
		for _, p := range papers {
			ids = append(ids, p.PMCID)
		}
		sort.Strings(ids)
		if !assert.ObjectsAreEqual(ids, seen) {
			t.Fatalf("ranked ids %v are not a permutation of %v", seen, ids)
		}
	})
}
