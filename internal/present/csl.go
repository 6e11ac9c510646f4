// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package present

import (
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-rank/pkg/types"
)

// CSLItem is a bibliographic entry in CSL-YAML, consumable by Pandoc and
// reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	ISSN           string    `yaml:"ISSN,omitempty"`
	Abstract       string    `yaml:"abstract,omitempty"`
	Keyword        string    `yaml:"keyword,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	PMID           string    `yaml:"PMID,omitempty"`
	PMCID          string    `yaml:"PMCID,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
}

// CSLName is a person's name in CSL.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate is a CSL date using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// FormatCSL writes papers as a CSL-YAML list in rank order.
func FormatCSL(papers []types.RankedPaper, w io.Writer) error {
	items := make([]CSLItem, len(papers))
	for i, rp := range papers {
		items[i] = toCSLItem(rp.Paper)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

func toCSLItem(p types.Paper) CSLItem {
	item := CSLItem{
		ID:             p.ID(),
		Type:           "article-journal",
		Title:          p.Title,
		ContainerTitle: p.JournalName,
		ISSN:           p.JournalISSN,
		Abstract:       p.Abstract,
		Keyword:        strings.Join(p.Keywords, ", "),
		DOI:            p.DOI,
		PMID:           p.PMID,
		PMCID:          p.PMCID,
		URL:            p.URL(),
	}
	for _, a := range p.Authors {
		if name := parseAuthorName(a); name != (CSLName{}) {
			item.Author = append(item.Author, name)
		}
	}
	if !p.Date.IsZero() {
		item.Issued = &CSLDate{
			DateParts: [][]int{{p.Date.Year(), int(p.Date.Month()), p.Date.Day()}},
		}
	}
	return item
}

// parseAuthorName splits "ForeName LastName" on the last space. Single-token
// names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  strings.TrimSpace(name[:idx]),
		Family: name[idx+1:],
	}
}
