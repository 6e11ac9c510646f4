// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/paper-rank/internal/httputil"
	"github.com/pdiddy/paper-rank/pkg/types"
)

// eutilsBase is the NCBI E-utilities root. Declared as a var so tests can
// substitute an httptest server.
var eutilsBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

const eutilsTool = "paper-rank"

// PubMedSource searches PubMed Central by relevance, then completes each
// hit with its PubMed record (abstract, authors, journal, keywords, date).
type PubMedSource struct {
	Client    *http.Client
	UserAgent string
	Email     string
	APIKey    string
}

// Name returns the backend identifier.
func (s *PubMedSource) Name() string { return BackendPubMed }

// Fetch runs ESearch, ESummary and EFetch in sequence and returns the papers
// in search order.
func (s *PubMedSource) Fetch(ctx context.Context, query string, limit int) ([]types.Paper, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = DefaultMaxResults
	}

	ids, err := s.search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []types.Paper{}, nil
	}

	papers, err := s.summaries(ctx, ids)
	if err != nil {
		return nil, err
	}

	byPMID := make(map[string]int, len(papers))
	pmids := make([]string, 0, len(papers))
	for i, p := range papers {
		if p.PMID == "" {
			continue
		}
		byPMID[p.PMID] = i
		pmids = append(pmids, p.PMID)
	}
	if len(pmids) == 0 {
		return papers, nil
	}

	records, err := s.details(ctx, pmids)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		i, ok := byPMID[strings.TrimSpace(rec.Citation.PMID)]
		if !ok {
			continue
		}
		rec.apply(&papers[i])
	}
	return papers, nil
}

func (s *PubMedSource) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	params.Set("tool", eutilsTool)
	if s.Email != "" {
		params.Set("email", s.Email)
	}
	if s.APIKey != "" {
		params.Set("api_key", s.APIKey)
	}
	return httputil.Get(ctx, client(s.Client), eutilsBase+"/"+endpoint+"?"+params.Encode(), s.UserAgent)
}

// search returns PMC ids for query, most relevant first.
func (s *PubMedSource) search(ctx context.Context, query string, limit int) ([]string, error) {
	body, err := s.get(ctx, "esearch.fcgi", url.Values{
		"db":      {"pmc"},
		"term":    {query},
		"sort":    {"relevance"},
		"retmax":  {strconv.Itoa(limit)},
		"retmode": {"json"},
	})
	if err != nil {
		return nil, fmt.Errorf("PMC search: %w", err)
	}
	var resp esearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing PMC search response: %w", err)
	}
	return resp.Result.IDList, nil
}

// summaries returns one paper per PMC id, in the order of ids, carrying the
// identifiers and title from the PMC summary.
func (s *PubMedSource) summaries(ctx context.Context, ids []string) ([]types.Paper, error) {
	body, err := s.get(ctx, "esummary.fcgi", url.Values{
		"db":      {"pmc"},
		"id":      {strings.Join(ids, ",")},
		"retmode": {"json"},
	})
	if err != nil {
		return nil, fmt.Errorf("PMC summary: %w", err)
	}
	var resp esummaryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing PMC summary response: %w", err)
	}

	papers := make([]types.Paper, len(ids))
	for i, id := range ids {
		papers[i].PMCID = pmcID(id)
		raw, ok := resp.Result[id]
		if !ok {
			continue
		}
		var doc esummaryDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("parsing PMC summary for %s: %w", id, err)
		}
		papers[i].Title = strings.TrimSpace(doc.Title)
		for _, aid := range doc.ArticleIDs {
			switch strings.ToLower(aid.IDType) {
			case "pmid":
				if aid.Value != "0" {
					papers[i].PMID = aid.Value
				}
			case "doi":
				papers[i].DOI = aid.Value
			}
		}
	}
	return papers, nil
}

// details fetches the PubMed records for pmids.
func (s *PubMedSource) details(ctx context.Context, pmids []string) ([]pubmedArticle, error) {
	body, err := s.get(ctx, "efetch.fcgi", url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(pmids, ",")},
		"retmode": {"xml"},
	})
	if err != nil {
		return nil, fmt.Errorf("PubMed fetch: %w", err)
	}
	var set pubmedArticleSet
	if err := xml.Unmarshal(body, &set); err != nil {
		return nil, fmt.Errorf("parsing PubMed records: %w", err)
	}
	return set.Articles, nil
}

func pmcID(id string) string {
	if strings.HasPrefix(strings.ToUpper(id), "PMC") {
		return id
	}
	return "PMC" + id
}

// E-utilities JSON structures.
type esearchResponse struct {
	Result struct {
		Count  string   `json:"count"`
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

// esummaryResponse keeps per-id documents raw: the result object mixes the
// "uids" array with one document per id.
type esummaryResponse struct {
	Result map[string]json.RawMessage `json:"result"`
}

type esummaryDoc struct {
	UID        string `json:"uid"`
	Title      string `json:"title"`
	ArticleIDs []struct {
		IDType string `json:"idtype"`
		Value  string `json:"value"`
	} `json:"articleids"`
}

// PubMed EFetch XML structures.
type pubmedArticleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Citation struct {
		PMID    string `xml:"PMID"`
		Article struct {
			Journal struct {
				ISSN  []string `xml:"ISSN"`
				Title string   `xml:"Title"`
				Issue struct {
					PubDate pubmedDate `xml:"PubDate"`
				} `xml:"JournalIssue"`
			} `xml:"Journal"`
			Abstract    []markupText   `xml:"Abstract>AbstractText"`
			Authors     []pubmedAuthor `xml:"AuthorList>Author"`
			ArticleDate []pubmedDate   `xml:"ArticleDate"`
		} `xml:"Article"`
		KeywordLists []struct {
			Keywords []markupText `xml:"Keyword"`
		} `xml:"KeywordList"`
	} `xml:"MedlineCitation"`
}

type pubmedAuthor struct {
	LastName       string `xml:"LastName"`
	ForeName       string `xml:"ForeName"`
	CollectiveName string `xml:"CollectiveName"`
}

func (a pubmedAuthor) name() string {
	if a.LastName == "" {
		return strings.TrimSpace(a.CollectiveName)
	}
	return strings.TrimSpace(a.ForeName + " " + a.LastName)
}

type pubmedDate struct {
	Year  string `xml:"Year"`
	Month string `xml:"Month"`
	Day   string `xml:"Day"`
}

// toTime returns the date in UTC. A missing month or day defaults to 1; a
// missing or invalid year yields the zero time.
func (d pubmedDate) toTime() time.Time {
	year, err := strconv.Atoi(strings.TrimSpace(d.Year))
	if err != nil || year <= 0 {
		return time.Time{}
	}
	month := parseMonth(d.Month)
	day, err := strconv.Atoi(strings.TrimSpace(d.Day))
	if err != nil || day < 1 || day > 31 {
		day = 1
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// parseMonth accepts "3", "03" or "Mar".
func parseMonth(s string) time.Month {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= 12 {
			return time.Month(n)
		}
		return time.January
	}
	if len(s) >= 3 {
		if t, err := time.Parse("Jan", strings.ToUpper(s[:1])+strings.ToLower(s[1:3])); err == nil {
			return t.Month()
		}
	}
	return time.January
}

// markupText collects the character data of an element including text
// nested in inline markup such as <i> or <sup>.
type markupText string

func (m *markupText) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var b strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.EndElement:
			if t.Name == start.Name {
				*m = markupText(strings.Join(strings.Fields(b.String()), " "))
				return nil
			}
		}
	}
}

// apply copies the PubMed record onto p. The article date is preferred over
// the journal issue date.
func (a pubmedArticle) apply(p *types.Paper) {
	art := a.Citation.Article

	parts := make([]string, 0, len(art.Abstract))
	for _, t := range art.Abstract {
		if t != "" {
			parts = append(parts, string(t))
		}
	}
	p.Abstract = strings.Join(parts, " ")

	p.Authors = p.Authors[:0]
	for _, au := range art.Authors {
		if name := au.name(); name != "" {
			p.Authors = append(p.Authors, name)
		}
	}

	if len(art.Journal.ISSN) > 0 {
		p.JournalISSN = strings.TrimSpace(art.Journal.ISSN[0])
	}
	p.JournalName = strings.TrimSpace(art.Journal.Title)

	if len(art.ArticleDate) > 0 {
		p.Date = art.ArticleDate[0].toTime()
	}
	if p.Date.IsZero() {
		p.Date = art.Journal.Issue.PubDate.toTime()
	}

	if len(a.Citation.KeywordLists) > 0 {
		for _, kw := range a.Citation.KeywordLists[0].Keywords {
			if kw != "" {
				p.Keywords = append(p.Keywords, string(kw))
			}
		}
	}
}
