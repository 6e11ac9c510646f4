// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultCutoff is the minimum similarity for a close match.
const DefaultCutoff = 0.6

// chars splits s into one-rune strings so the line-oriented difflib
// matcher compares characters.
func chars(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}

// SequenceRatio returns the Ratcliff/Obershelp similarity of a and b:
// twice the number of matching characters over the total length. Two
// empty strings have ratio 1.
func SequenceRatio(a, b string) float64 {
	return difflib.NewMatcher(chars(a), chars(b)).Ratio()
}

type scored struct {
	score float64
	word  string
}

// CloseMatches returns the possibilities whose similarity to word is at
// least cutoff, best first. Equal scores are ordered by the candidate
// string, descending. Comparison is case-sensitive. A possibility that
// occurs several times is returned as often as it occurs. n caps the
// result length; n <= 0 returns every match.
func CloseMatches(word string, possibilities []string, n int, cutoff float64) []string {
	if len(possibilities) == 0 {
		return nil
	}

	m := difflib.NewMatcher(nil, chars(word))
	var hits []scored
	for _, p := range possibilities {
		m.SetSeq1(chars(p))
		if m.RealQuickRatio() < cutoff || m.QuickRatio() < cutoff {
			continue
		}
		if r := m.Ratio(); r >= cutoff {
			hits = append(hits, scored{score: r, word: p})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].word > hits[j].word
	})
	if n > 0 && len(hits) > n {
		hits = hits[:n]
	}

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.word
	}
	return out
}
