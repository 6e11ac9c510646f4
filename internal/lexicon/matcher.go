// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

import (
	"fmt"
	"strings"

	"github.com/pdiddy/paper-rank/pkg/types"
)

// Matcher scores how well a query matches the words of a text field.
// It holds no mutable state and may be shared across goroutines.
type Matcher struct {
	thesaurus  *Thesaurus
	lemmatizer Lemmatizer
	cutoff     float64
	maxMatches int
}

// NewMatcher builds a Matcher over t. A zero Cutoff selects DefaultCutoff;
// an empty Lemmatizer selects morphy.
func NewMatcher(t *Thesaurus, cfg types.LexiconConfig) (*Matcher, error) {
	if t == nil {
		return nil, fmt.Errorf("lexicon: nil thesaurus")
	}

	cutoff := cfg.Cutoff
	if cutoff == 0 {
		cutoff = DefaultCutoff
	}
	if cutoff < 0 || cutoff > 1 {
		return nil, fmt.Errorf("lexicon: cutoff %v outside [0, 1]", cfg.Cutoff)
	}
	if cfg.MaxMatches < 0 {
		return nil, fmt.Errorf("lexicon: max matches %d is negative", cfg.MaxMatches)
	}

	var lem Lemmatizer
	switch cfg.Lemmatizer {
	case "", types.LemmatizerMorphy:
		lem = MorphyLemmatizer{Thesaurus: t, POS: Noun}
	case types.LemmatizerSnowball:
		lem = SnowballLemmatizer{}
	default:
		return nil, fmt.Errorf("lexicon: unknown lemmatizer %q (want morphy or snowball)", cfg.Lemmatizer)
	}

	return &Matcher{
		thesaurus:  t,
		lemmatizer: lem,
		cutoff:     cutoff,
		maxMatches: cfg.MaxMatches,
	}, nil
}

var joinReplacer = strings.NewReplacer("-", " ", "_", " ")

// ExpandQuery adds every lemma of every synset of the tokens to the
// tokens themselves, splits compound words and multiword lemmas on "-"
// and "_", lowercases, and retokenizes. The result depends only on the
// input and the thesaurus.
func (m *Matcher) ExpandQuery(tokens []string) []string {
	seen := make(map[string]bool)
	var words []string
	add := func(w string) {
		if !seen[w] {
			seen[w] = true
			words = append(words, w)
		}
	}

	for _, tok := range tokens {
		add(tok)
	}
	for _, tok := range tokens {
		for _, ss := range m.thesaurus.Synsets(tok) {
			for _, l := range ss.Lemmas {
				add(l)
			}
		}
	}

	for i, w := range words {
		words[i] = strings.ToLower(joinReplacer.Replace(w))
	}
	return Tokenize(strings.Join(words, " "))
}

// FieldTokens tokenizes, lowercases, and lemmatizes text.
func (m *Matcher) FieldTokens(text string) []string {
	tokens := lowerAll(Tokenize(text))
	for i, tok := range tokens {
		tokens[i] = m.lemmatizer.Lemmatize(tok)
	}
	return tokens
}

// AuthorTokens tokenizes and lowercases a query without expansion or
// lemmatization, for matching against author names.
func (m *Matcher) AuthorTokens(query string) []string {
	return lowerAll(Tokenize(query))
}

// MatchScore sums, over the query tokens, the number of close matches in
// fieldTokens times the similarity of the best one. Tokens without a
// close match add nothing.
func (m *Matcher) MatchScore(queryTokens, fieldTokens []string) float64 {
	if len(queryTokens) == 0 || len(fieldTokens) == 0 {
		return 0
	}
	var score float64
	for _, word := range queryTokens {
		matches := CloseMatches(word, fieldTokens, m.maxMatches, m.cutoff)
		if len(matches) == 0 {
			continue
		}
		score += float64(len(matches)) * SequenceRatio(word, matches[0])
	}
	return score
}
