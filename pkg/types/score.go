// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "math"

// IsUnset reports whether x marks a score not computed in the current
// ranking pass. Unset scores are NaN, which no real score can be; a
// pre-1970 date legitimately scores below zero.
func IsUnset(x float64) bool {
	return math.IsNaN(x)
}

// ScoreCard holds the six relevance dimensions of one paper and their
// composite. Raw and normalized cards share this shape.
type ScoreCard struct {
	Journal  float64 `json:"journal" yaml:"journal"`
	Date     float64 `json:"date" yaml:"date"`
	Title    float64 `json:"title" yaml:"title"`
	Author   float64 `json:"author" yaml:"author"`
	Keyword  float64 `json:"keyword" yaml:"keyword"`
	Abstract float64 `json:"abstract" yaml:"abstract"`

	// Total is the unweighted mean of the six normalized dimensions.
	Total float64 `json:"total" yaml:"total"`
}

// NewScoreCard returns a card with every field unset.
func NewScoreCard() ScoreCard {
	unset := math.NaN()
	return ScoreCard{
		Journal:  unset,
		Date:     unset,
		Title:    unset,
		Author:   unset,
		Keyword:  unset,
		Abstract: unset,
		Total:    unset,
	}
}

// IsSet reports whether the composite total has been computed.
func (s ScoreCard) IsSet() bool {
	return !IsUnset(s.Total)
}

// RankedPaper pairs a candidate with the scores of one ranking pass. The
// Paper is copied by value; ranking never writes to the caller's records.
type RankedPaper struct {
	Paper Paper     `json:"paper" yaml:"paper"`
	Score ScoreCard `json:"score" yaml:"score"`
}
