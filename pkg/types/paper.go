// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper-rank pipeline:
// candidate papers as delivered by a source, the score card the ranking
// engine computes for each of them, and the configuration of every stage.
package types

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// SnippetMaxSize is the default length, in runes, of an abstract snippet.
const SnippetMaxSize = 500

// Paper holds the bibliographic content of one publication candidate.
// Sources populate it; the ranking engine only reads it.
type Paper struct {
	// PMCID is the PubMed Central identifier and the primary key of a candidate.
	PMCID string `json:"pmcid,omitempty" yaml:"pmcid,omitempty"`

	// PMID is the PubMed identifier.
	PMID string `json:"pmid,omitempty" yaml:"pmid,omitempty"`

	// DOI is the Digital Object Identifier without the https://doi.org/ prefix.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Title is the paper title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Abstract is the paper abstract.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Keywords lists author-supplied keywords in source order.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// JournalISSN identifies the journal (e.g. "1476-4687").
	JournalISSN string `json:"journal_issn,omitempty" yaml:"journal_issn,omitempty"`

	// JournalName is the journal display name.
	JournalName string `json:"journal_name,omitempty" yaml:"journal_name,omitempty"`

	// Date is the publication date. The zero value means unknown.
	Date time.Time `json:"date,omitzero" yaml:"date,omitempty"`

	// Authors lists author names ("ForeName LastName") in source order.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`
}

// ID returns the primary identifier: PMCID, then PMID, then DOI.
func (p Paper) ID() string {
	switch {
	case p.PMCID != "":
		return p.PMCID
	case p.PMID != "":
		return p.PMID
	default:
		return p.DOI
	}
}

// URL returns a link to the paper's PubMed page, or its DOI resolver link
// when no PMID is known. It returns "" when neither is available.
func (p Paper) URL() string {
	if p.PMID != "" {
		return fmt.Sprintf("https://pubmed.ncbi.nlm.nih.gov/%s", p.PMID)
	}
	if p.DOI != "" {
		return "https://www.doi.org/" + p.DOI
	}
	return ""
}

// Snippet returns the abstract cut to at most max runes, followed by "..."
// when it was cut.
func (p Paper) Snippet(max int) string {
	if max <= 0 || utf8.RuneCountInString(p.Abstract) <= max {
		return p.Abstract
	}
	r := []rune(p.Abstract)
	return string(r[:max]) + "..."
}

// AuthorsString joins the author list for display.
func (p Paper) AuthorsString() string {
	return strings.Join(p.Authors, ", ")
}

// DateString formats the publication date as MM/DD/YYYY, or "" when unknown.
func (p Paper) DateString() string {
	if p.Date.IsZero() {
		return ""
	}
	return p.Date.Format("01/02/2006")
}
