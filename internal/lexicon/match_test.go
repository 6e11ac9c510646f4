// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"learning", "learning", 1.0},
		{"learning", "learn", 10.0 / 13.0},
		{"appel", "apple", 0.8},
		{"learning", "genomics", 0.375},
		{"smith", "John Smith", 8.0 / 15.0},
		{"", "", 1.0},
		{"abc", "", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.InDelta(t, tt.want, SequenceRatio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestCloseMatches(t *testing.T) {
	tests := []struct {
		name          string
		word          string
		possibilities []string
		n             int
		want          []string
	}{
		{"best first", "appel", []string{"ape", "apple", "peach", "puppy"}, 0, []string{"apple", "ape"}},
		{"capped", "appel", []string{"ape", "apple", "peach", "puppy"}, 1, []string{"apple"}},
		{"ties by string descending", "abc", []string{"abd", "abe"}, 0, []string{"abe", "abd"}},
		{"duplicates counted", "gene", []string{"gene", "protein", "gene", "genes"}, 0, []string{"gene", "gene", "genes"}},
		{"case sensitive", "smith", []string{"John Smith", "Jane Smyth", "smith"}, 0, []string{"smith"}},
		{"no possibilities", "gene", nil, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CloseMatches(tt.word, tt.possibilities, tt.n, DefaultCutoff)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCloseMatchesCutoff(t *testing.T) {
	words := []string{"smith j", "smyth", "john smith"}
	assert.Equal(t, []string{"smith j", "smyth", "john smith"}, CloseMatches("smith", words, 0, 0.6))
	assert.Equal(t, []string{"smith j", "smyth"}, CloseMatches("smith", words, 0, 0.7))
	assert.Empty(t, CloseMatches("smith", words, 0, 0.9))
}
