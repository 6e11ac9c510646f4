// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

import (
	"fmt"
	"strings"
)

// POS is a WordNet part-of-speech tag.
type POS string

const (
	Noun      POS = "n"
	Verb      POS = "v"
	Adjective POS = "a"
	Adverb    POS = "r"
)

// posOrder is the order in which parts of speech are searched for synsets.
var posOrder = []POS{Noun, Verb, Adjective, Adverb}

// Synset is one sense: a set of lemmas sharing a meaning. Multiword
// lemmas use underscores ("gene_expression").
type Synset struct {
	ID     string   `yaml:"id"`
	POS    POS      `yaml:"pos"`
	Lemmas []string `yaml:"lemmas"`
}

// Exception maps an inflected form that no suffix rule can undo to its
// base forms ("mice" → "mouse"). WordNet ships these as the *.exc lists.
type Exception struct {
	POS   POS      `yaml:"pos"`
	Form  string   `yaml:"form"`
	Bases []string `yaml:"bases"`
}

// Thesaurus is an in-memory lexical database. It is immutable once built
// and safe for concurrent use.
type Thesaurus struct {
	synsets    []Synset
	exceptions []Exception
	// index maps part of speech → lowercased lemma → synset positions.
	index map[POS]map[string][]int
	// exc maps part of speech → lowercased form → base forms.
	exc map[POS]map[string][]string
}

// New builds a Thesaurus from synsets and optional exception lists.
// Satellite adjectives ("s") are folded into adjectives. Synsets without
// an ID, with an unknown part of speech, or without lemmas are rejected,
// as are duplicate IDs. Exceptions need a form and at least one base;
// repeated forms accumulate their bases.
func New(synsets []Synset, exceptions ...Exception) (*Thesaurus, error) {
	t := &Thesaurus{
		synsets: make([]Synset, 0, len(synsets)),
		index:   make(map[POS]map[string][]int, len(posOrder)),
		exc:     make(map[POS]map[string][]string, len(posOrder)),
	}
	for _, pos := range posOrder {
		t.index[pos] = make(map[string][]int)
		t.exc[pos] = make(map[string][]string)
	}

	ids := make(map[string]bool, len(synsets))
	for i, ss := range synsets {
		if ss.ID == "" {
			return nil, fmt.Errorf("synset %d: missing id", i)
		}
		if ids[ss.ID] {
			return nil, fmt.Errorf("synset %s: duplicate id", ss.ID)
		}
		ids[ss.ID] = true

		pos := foldPOS(ss.POS)
		if _, ok := t.index[pos]; !ok {
			return nil, fmt.Errorf("synset %s: unknown part of speech %q", ss.ID, ss.POS)
		}
		if len(ss.Lemmas) == 0 {
			return nil, fmt.Errorf("synset %s: no lemmas", ss.ID)
		}

		idx := len(t.synsets)
		lemmas := append([]string(nil), ss.Lemmas...)
		t.synsets = append(t.synsets, Synset{ID: ss.ID, POS: pos, Lemmas: lemmas})
		for _, l := range lemmas {
			key := indexKey(l)
			t.index[pos][key] = append(t.index[pos][key], idx)
		}
	}

	for i, e := range exceptions {
		pos := foldPOS(e.POS)
		form := indexKey(e.Form)
		if form == "" {
			return nil, fmt.Errorf("exception %d: missing form", i)
		}
		if _, ok := t.exc[pos]; !ok {
			return nil, fmt.Errorf("exception %s: unknown part of speech %q", e.Form, e.POS)
		}
		if len(e.Bases) == 0 {
			return nil, fmt.Errorf("exception %s: no base forms", e.Form)
		}
		bases := make([]string, len(e.Bases))
		for j, b := range e.Bases {
			bases[j] = indexKey(b)
		}
		if _, seen := t.exc[pos][form]; !seen {
			t.exceptions = append(t.exceptions, Exception{POS: pos, Form: form})
		}
		t.exc[pos][form] = append(t.exc[pos][form], bases...)
	}
	for i, e := range t.exceptions {
		t.exceptions[i].Bases = t.exc[e.POS][e.Form]
	}
	return t, nil
}

func foldPOS(pos POS) POS {
	if pos == "s" {
		return Adjective
	}
	return pos
}

func indexKey(lemma string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(lemma)), " ", "_")
}

// Len returns the number of synsets.
func (t *Thesaurus) Len() int { return len(t.synsets) }

// All returns a copy of every synset in load order.
func (t *Thesaurus) All() []Synset {
	out := make([]Synset, len(t.synsets))
	for i, ss := range t.synsets {
		out[i] = Synset{ID: ss.ID, POS: ss.POS, Lemmas: append([]string(nil), ss.Lemmas...)}
	}
	return out
}

// Exceptions returns a copy of the exception lists, one entry per form in
// load order.
func (t *Thesaurus) Exceptions() []Exception {
	out := make([]Exception, len(t.exceptions))
	for i, e := range t.exceptions {
		out[i] = Exception{POS: e.POS, Form: e.Form, Bases: append([]string(nil), e.Bases...)}
	}
	return out
}

// Has reports whether lemma is a known base form for pos.
func (t *Thesaurus) Has(lemma string, pos POS) bool {
	_, ok := t.index[pos][indexKey(lemma)]
	return ok
}

// Synsets returns every synset containing a base form of word, searching
// nouns, verbs, adjectives, then adverbs. Inflected words resolve through
// their base forms ("networks" finds the synsets of "network").
func (t *Thesaurus) Synsets(word string) []Synset {
	word = indexKey(word)
	if word == "" {
		return nil
	}
	var out []Synset
	seen := make(map[int]bool)
	for _, pos := range posOrder {
		for _, form := range t.morphy(word, pos) {
			for _, idx := range t.index[pos][form] {
				if seen[idx] {
					continue
				}
				seen[idx] = true
				out = append(out, t.synsets[idx])
			}
		}
	}
	return out
}

// Lemmatize returns the dictionary base form of word for pos: the
// shortest known base form, or word itself when none is known.
func (t *Thesaurus) Lemmatize(word string, pos POS) string {
	forms := t.morphy(word, pos)
	if len(forms) == 0 {
		return word
	}
	best := forms[0]
	for _, f := range forms[1:] {
		if len(f) < len(best) {
			best = f
		}
	}
	return best
}
