// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pdiddy/paper-rank/pkg/types"
)

// Normalize rescales x into [0, 1] given the bounds of its dimension.
// When every value is equal (max == min) x is returned unchanged, so a
// single candidate keeps its raw scores. When max is 0 the result is 0.
func Normalize(x, max, min float64) float64 {
	if max == min {
		return x
	}
	if max == 0 {
		return 0
	}
	return (x - min) / (max - min)
}

// dimension addresses one score field of a card.
type dimension struct {
	name  string
	field func(*types.ScoreCard) *float64
}

var dimensions = []dimension{
	{"journal", func(c *types.ScoreCard) *float64 { return &c.Journal }},
	{"date", func(c *types.ScoreCard) *float64 { return &c.Date }},
	{"title", func(c *types.ScoreCard) *float64 { return &c.Title }},
	{"author", func(c *types.ScoreCard) *float64 { return &c.Author }},
	{"keyword", func(c *types.ScoreCard) *float64 { return &c.Keyword }},
	{"abstract", func(c *types.ScoreCard) *float64 { return &c.Abstract }},
}

// normalizeCards rescales every dimension of cards in place, each against
// the bounds of that dimension across the whole set.
func normalizeCards(cards []types.ScoreCard) {
	if len(cards) == 0 {
		return
	}
	column := make([]float64, len(cards))
	for _, d := range dimensions {
		for i := range cards {
			column[i] = *d.field(&cards[i])
		}
		hi, lo := floats.Max(column), floats.Min(column)
		for i := range cards {
			v := d.field(&cards[i])
			*v = Normalize(*v, hi, lo)
		}
	}
}

// total returns the unweighted mean of the six dimensions of c.
func total(c types.ScoreCard) float64 {
	values := make([]float64, len(dimensions))
	for i, d := range dimensions {
		values[i] = *d.field(&c)
	}
	return stat.Mean(values, nil)
}
