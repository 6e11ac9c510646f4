// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

import "strings"

// detachments are the inflectional suffix rules tried for each part of
// speech, in order. Each pair replaces a suffix with a base ending.
var detachments = map[POS][][2]string{
	Noun: {
		{"s", ""}, {"ses", "s"}, {"ves", "f"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	Verb: {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	},
	Adjective: {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	},
}

// irregular lists inflections no suffix rule can undo. A thesaurus's own
// exception lists take precedence.
var irregular = map[POS]map[string][]string{
	Noun: {
		"alumni":     {"alumnus"},
		"analyses":   {"analysis"},
		"bacteria":   {"bacterium"},
		"bases":      {"basis", "base"},
		"children":   {"child"},
		"corpora":    {"corpus"},
		"criteria":   {"criterion"},
		"data":       {"datum"},
		"diagnoses":  {"diagnosis"},
		"feet":       {"foot"},
		"fungi":      {"fungus"},
		"genera":     {"genus"},
		"geese":      {"goose"},
		"hypotheses": {"hypothesis"},
		"indices":    {"index"},
		"loci":       {"locus"},
		"matrices":   {"matrix"},
		"media":      {"medium"},
		"mice":       {"mouse"},
		"nuclei":     {"nucleus"},
		"phenomena":  {"phenomenon"},
		"stimuli":    {"stimulus"},
		"teeth":      {"tooth"},
		"theses":     {"thesis"},
		"vertices":   {"vertex"},
		"women":      {"woman"},
	},
	Verb: {
		"been":    {"be"},
		"bound":   {"bind"},
		"found":   {"find"},
		"known":   {"know"},
		"led":     {"lead"},
		"made":    {"make"},
		"ran":     {"run"},
		"seen":    {"see"},
		"shown":   {"show"},
		"taught":  {"teach"},
		"thought": {"think"},
		"was":     {"be"},
		"were":    {"be"},
		"written": {"write"},
	},
	Adjective: {
		"best":   {"good"},
		"better": {"good"},
		"worse":  {"bad"},
		"worst":  {"bad"},
	},
}

// morphy returns the base forms of word that the thesaurus knows for pos.
// Exception forms are checked first and end the search. Otherwise the word
// and its one-step detachments are tried, and detachment is repeated on the
// candidates until one is known or none remain.
func (t *Thesaurus) morphy(word string, pos POS) []string {
	if exc, ok := t.exception(word, pos); ok {
		return t.knownForms(append([]string{word}, exc...), pos)
	}

	forms := detach([]string{word}, pos)
	if known := t.knownForms(append([]string{word}, forms...), pos); len(known) > 0 {
		return known
	}
	for len(forms) > 0 {
		forms = detach(forms, pos)
		if known := t.knownForms(forms, pos); len(known) > 0 {
			return known
		}
	}
	return nil
}

func (t *Thesaurus) exception(word string, pos POS) ([]string, bool) {
	if exc, ok := t.exc[pos][word]; ok {
		return exc, true
	}
	exc, ok := irregular[pos][word]
	return exc, ok
}

func detach(forms []string, pos POS) []string {
	var out []string
	for _, form := range forms {
		for _, rule := range detachments[pos] {
			if strings.HasSuffix(form, rule[0]) {
				out = append(out, strings.TrimSuffix(form, rule[0])+rule[1])
			}
		}
	}
	return out
}

func (t *Thesaurus) knownForms(forms []string, pos POS) []string {
	var out []string
	seen := make(map[string]bool, len(forms))
	for _, f := range forms {
		if seen[f] {
			continue
		}
		if _, ok := t.index[pos][f]; ok {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
