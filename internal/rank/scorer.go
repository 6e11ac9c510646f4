// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"strings"
	"time"

	"github.com/pdiddy/paper-rank/internal/lexicon"
	"github.com/pdiddy/paper-rank/internal/prestige"
	"github.com/pdiddy/paper-rank/pkg/types"
)

// Query is a free-text query prepared once per ranking pass.
type Query struct {
	// Text is the query as the user typed it.
	Text string
	// Terms are the synonym-expanded, lowercased tokens matched against
	// title, abstract, and keywords.
	Terms []string
	// AuthorTerms are the lowercased tokens matched against author names.
	AuthorTerms []string
}

// Scorer computes the six raw relevance dimensions of a paper. Each
// dimension scores an absent or empty field as 0.
type Scorer struct {
	table   *prestige.Table
	matcher *lexicon.Matcher
}

// NewScorer returns a Scorer reading journal prestige from table and
// matching text with matcher.
func NewScorer(table *prestige.Table, matcher *lexicon.Matcher) *Scorer {
	return &Scorer{table: table, matcher: matcher}
}

// ParseQuery tokenizes and expands text.
func (s *Scorer) ParseQuery(text string) Query {
	return Query{
		Text:        text,
		Terms:       s.matcher.ExpandQuery(lexicon.Tokenize(text)),
		AuthorTerms: s.matcher.AuthorTokens(text),
	}
}

// Journal returns the prestige of the journal with the given ISSN, or 0
// when the journal is unknown or has no score.
func (s *Scorer) Journal(issn string) float64 {
	if issn == "" {
		return 0
	}
	score, ok := s.table.Lookup(strings.ReplaceAll(issn, "-", ""))
	if !ok {
		return 0
	}
	return score
}

// Date returns the publication time in Unix seconds, so later papers score
// strictly higher. An unknown date scores 0.
func (s *Scorer) Date(t time.Time) float64 {
	if t.IsZero() {
		return 0
	}
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// Title matches the query against the lemmatized title.
func (s *Scorer) Title(title string, q Query) float64 {
	return s.text(title, q)
}

// Abstract matches the query against the lemmatized abstract.
func (s *Scorer) Abstract(abstract string, q Query) float64 {
	return s.text(abstract, q)
}

// Keywords matches the query against the keywords joined into one text.
func (s *Scorer) Keywords(keywords []string, q Query) float64 {
	if len(keywords) == 0 {
		return 0
	}
	return s.text(strings.Join(keywords, " "), q)
}

// Authors matches the lowercased query words against the author names as
// given, without lemmatization or synonyms.
func (s *Scorer) Authors(authors []string, q Query) float64 {
	if len(authors) == 0 {
		return 0
	}
	return s.matcher.MatchScore(q.AuthorTerms, authors)
}

func (s *Scorer) text(field string, q Query) float64 {
	if strings.TrimSpace(field) == "" {
		return 0
	}
	return s.matcher.MatchScore(q.Terms, s.matcher.FieldTokens(field))
}

// Card returns the raw scores of p. Total is left unset.
func (s *Scorer) Card(p types.Paper, q Query) types.ScoreCard {
	card := types.NewScoreCard()
	card.Journal = s.Journal(p.JournalISSN)
	card.Date = s.Date(p.Date)
	card.Title = s.Title(p.Title, q)
	card.Author = s.Authors(p.Authors, q)
	card.Keyword = s.Keywords(p.Keywords, q)
	card.Abstract = s.Abstract(p.Abstract, q)
	return card
}
