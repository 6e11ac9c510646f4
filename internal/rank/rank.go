// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank orders candidate papers by relevance to a free-text query.
// Six signals are scored per paper (journal prestige, publication date,
// and fuzzy matches of the query against title, authors, keywords, and
// abstract), rescaled against the candidate set, and averaged.
package rank

import (
	"sort"

	"github.com/charmbracelet/log"

	"github.com/pdiddy/paper-rank/internal/logging"
	"github.com/pdiddy/paper-rank/pkg/types"
)

// Ranker runs ranking passes. It holds only read-only state, so one
// Ranker may serve concurrent passes.
type Ranker struct {
	scorer *Scorer
	logger *log.Logger
}

// NewRanker returns a Ranker using scorer. A nil logger discards output.
func NewRanker(scorer *Scorer, logger *log.Logger) *Ranker {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Ranker{scorer: scorer, logger: logger}
}

// Rank scores every paper against query and returns them ordered by total
// score, highest first. Papers with equal totals keep their input order.
// The input slice and its papers are not modified.
func (r *Ranker) Rank(papers []types.Paper, query string) []types.RankedPaper {
	if len(papers) == 0 {
		return []types.RankedPaper{}
	}

	q := r.scorer.ParseQuery(query)
	r.logger.Debug("query expanded", "query", query, "terms", q.Terms)

	cards := make([]types.ScoreCard, len(papers))
	for i, p := range papers {
		cards[i] = r.scorer.Card(p, q)
		r.logCard("raw scores", p, cards[i])
	}

	normalizeCards(cards)

	ranked := make([]types.RankedPaper, len(papers))
	var sum float64
	for i, p := range papers {
		cards[i].Total = total(cards[i])
		sum += cards[i].Total
		r.logCard("normalized scores", p, cards[i])
		ranked[i] = types.RankedPaper{Paper: p, Score: cards[i]}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score.Total > ranked[j].Score.Total
	})

	r.logger.Info("ranked papers", "query", query, "papers", len(ranked), "avg_total", sum/float64(len(ranked)))
	return ranked
}

func (r *Ranker) logCard(msg string, p types.Paper, c types.ScoreCard) {
	r.logger.Debug(msg,
		"paper", p.ID(),
		"journal", c.Journal,
		"date", c.Date,
		"title", c.Title,
		"author", c.Author,
		"keyword", c.Keyword,
		"abstract", c.Abstract,
		"total", c.Total,
	)
}
