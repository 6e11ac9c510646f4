// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prestige loads the journal prestige table: a delimited export
// (such as the SCImago Journal Rank file) mapping journal identifiers to a
// prestige score. A loaded Table is immutable and safe for concurrent reads.
package prestige

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/paper-rank/pkg/types"
)

var (
	// ErrMalformed reports a table file that cannot be parsed.
	ErrMalformed = errors.New("malformed prestige table")

	// ErrNoTable reports that no table path is configured.
	ErrNoTable = errors.New("no journal prestige table configured")
)

// Defaults for the SCImago export format.
const (
	DefaultDelimiter   = ";"
	DefaultIDColumn    = "Issn"
	DefaultScoreColumn = "SJR"
)

// Table maps normalized journal identifiers to prestige scores.
type Table struct {
	scores map[string]float64
}

// NewTable builds a Table from identifier → score pairs. Identifiers are
// normalized the same way lookups are.
func NewTable(scores map[string]float64) *Table {
	t := &Table{scores: make(map[string]float64, len(scores))}
	for id, s := range scores {
		t.scores[NormalizeID(id)] = s
	}
	return t
}

// NormalizeID strips dashes and spaces and uppercases the ISSN check
// digit, so "0028-0836", "00280836" and "0028 0836" are the same key.
func NormalizeID(id string) string {
	id = strings.ToUpper(id)
	return strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return -1
		}
		return r
	}, id)
}

// Lookup returns the score for a journal identifier. ok is false when the
// journal is unknown or listed without a score.
func (t *Table) Lookup(id string) (score float64, ok bool) {
	if t == nil {
		return 0, false
	}
	score, ok = t.scores[NormalizeID(id)]
	return score, ok
}

// Len returns the number of scored identifiers.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.scores)
}

// Load reads the table file described by cfg. Any unreadable file, missing
// column, or non-numeric score fails the whole load.
func Load(cfg types.PrestigeConfig) (*Table, error) {
	if cfg.Path == "" {
		return nil, ErrNoTable
	}
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening prestige table: %w", err)
	}
	defer f.Close()

	t, err := Parse(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Path, err)
	}
	return t, nil
}

// Parse reads a delimited table with a header row. The identifier cell
// may hold several identifiers separated by commas; each is indexed.
// Scores use a decimal comma ("1,234"). Empty score cells mean the
// journal has no score. When an identifier repeats, the last row wins.
func Parse(r io.Reader, cfg types.PrestigeConfig) (*Table, error) {
	delim, idCol, scoreCol := cfg.Delimiter, cfg.IDColumn, cfg.ScoreColumn
	if delim == "" {
		delim = DefaultDelimiter
	}
	if idCol == "" {
		idCol = DefaultIDColumn
	}
	if scoreCol == "" {
		scoreCol = DefaultScoreColumn
	}
	if len([]rune(delim)) != 1 {
		return nil, fmt.Errorf("%w: delimiter %q must be a single character", ErrMalformed, delim)
	}

	cr := csv.NewReader(r)
	cr.Comma = []rune(delim)[0]
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: no header row", ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrMalformed, err)
	}
	idIdx, scoreIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case idCol:
			idIdx = i
		case scoreCol:
			scoreIdx = i
		}
	}
	if idIdx < 0 || scoreIdx < 0 {
		return nil, fmt.Errorf("%w: header lacks %q or %q column", ErrMalformed, idCol, scoreCol)
	}

	t := &Table{scores: make(map[string]float64)}
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformed, row, err)
		}

		var keys []string
		for _, id := range strings.Split(rec[idIdx], ",") {
			if key := NormalizeID(strings.TrimSpace(id)); key != "" {
				keys = append(keys, key)
			}
		}

		raw := strings.TrimSpace(rec[scoreIdx])
		if raw == "" {
			for _, key := range keys {
				delete(t.scores, key)
			}
			continue
		}
		score, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: score %q is not a number", ErrMalformed, row, raw)
		}
		for _, key := range keys {
			t.scores[key] = score
		}
	}
	return t, nil
}
