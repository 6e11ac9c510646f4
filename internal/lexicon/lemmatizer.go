// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

import "github.com/kljensen/snowball/english"

// Lemmatizer reduces a lowercased word to a base form.
type Lemmatizer interface {
	Lemmatize(word string) string
}

// MorphyLemmatizer looks base forms up in a thesaurus. POS defaults to Noun.
type MorphyLemmatizer struct {
	Thesaurus *Thesaurus
	POS       POS
}

// Lemmatize returns the thesaurus base form of word, or word unchanged.
func (m MorphyLemmatizer) Lemmatize(word string) string {
	pos := m.POS
	if pos == "" {
		pos = Noun
	}
	return m.Thesaurus.Lemmatize(word, pos)
}

// SnowballLemmatizer reduces words with the English Porter2 stemmer. It
// needs no lexical database, but its stems are not always dictionary words
// ("studies" becomes "studi").
type SnowballLemmatizer struct{}

// Lemmatize returns the Porter2 stem of word. Stop words are kept as is.
func (SnowballLemmatizer) Lemmatize(word string) string {
	return english.Stem(word, false)
}
