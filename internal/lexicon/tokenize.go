// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lexicon tokenizes and lemmatizes text, expands queries with
// synonyms from a lexical database, and scores fuzzy matches between a
// query and a field's tokens.
package lexicon

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// tokenPattern matches words made of letters and digits with internal -, _
// or . joins ("COVID-19", "e.g", "3.5"), and any other single non-space
// rune. Apostrophes come out as their own tokens and are rejoined into
// clitics by Tokenize.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+(?:[-_.][\p{L}\p{N}]+)*|[^\s\p{L}\p{N}]`)

// clitics follow an apostrophe and split off as one token: 's 're 've 'll 'd 'm.
var clitics = map[string]bool{"s": true, "re": true, "ve": true, "ll": true, "d": true, "m": true}

// Tokenize splits text into word and punctuation tokens. Case is kept.
// Text is NFKC-normalized first so ligatures and full-width forms
// tokenize like their plain equivalents.
//
// Contractions split the Treebank way: "Alzheimer's" gives "Alzheimer",
// "'s" and "doesn't" gives "does", "n't". An apostrophe not joined to a
// word on both sides is punctuation, so "'omics'" gives "'", "omics", "'".
func Tokenize(text string) []string {
	text = norm.NFKC.String(text)
	if strings.TrimSpace(text) == "" {
		return nil
	}
	spans := tokenPattern.FindAllStringIndex(text, -1)
	tokens := make([]string, 0, len(spans))
	for i := 0; i < len(spans); i++ {
		tok := text[spans[i][0]:spans[i][1]]
		if tok == "'" && i > 0 && i+1 < len(spans) &&
			spans[i-1][1] == spans[i][0] && spans[i+1][0] == spans[i][1] {
			next := text[spans[i+1][0]:spans[i+1][1]]
			lower := strings.ToLower(next)
			prev := tokens[len(tokens)-1]
			switch {
			case clitics[lower]:
				tokens = append(tokens, tok+next)
				i++
				continue
			case lower == "t" && len(prev) > 1 && strings.HasSuffix(strings.ToLower(prev), "n"):
				tokens[len(tokens)-1] = prev[:len(prev)-1]
				tokens = append(tokens, prev[len(prev)-1:]+tok+next)
				i++
				continue
			}
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func lowerAll(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = strings.ToLower(t)
	}
	return out
}
