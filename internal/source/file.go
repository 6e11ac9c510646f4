// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-rank/pkg/types"
)

// CandidateFile is the on-disk form of a saved candidate set, so a query
// can be re-ranked without calling a remote API again.
type CandidateFile struct {
	Query     string        `yaml:"query,omitempty"`
	FetchedAt time.Time     `yaml:"fetched_at,omitempty"`
	Papers    []types.Paper `yaml:"papers"`
}

// FileSource serves candidates from a CandidateFile. The query is ignored;
// every paper in the file is a candidate.
type FileSource struct {
	Path string
}

// Name returns the backend identifier.
func (s *FileSource) Name() string { return BackendFile }

// Fetch returns the first limit papers of the file. limit <= 0 returns all.
func (s *FileSource) Fetch(ctx context.Context, query string, limit int) ([]types.Paper, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cf, err := ReadCandidates(s.Path)
	if err != nil {
		return nil, err
	}
	papers := cf.Papers
	if limit > 0 && len(papers) > limit {
		papers = papers[:limit]
	}
	return papers, nil
}

// ReadCandidates loads a candidate file.
func ReadCandidates(path string) (*CandidateFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading candidate file: %w", err)
	}
	var cf CandidateFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing candidate file %s: %w", path, err)
	}
	return &cf, nil
}

// WriteCandidates saves papers fetched for query to path, creating parent
// directories as needed.
func WriteCandidates(path, query string, papers []types.Paper) error {
	cf := CandidateFile{
		Query:     strings.TrimSpace(query),
		FetchedAt: time.Now().UTC().Truncate(time.Second),
		Papers:    papers,
	}
	data, err := yaml.Marshal(&cf)
	if err != nil {
		return fmt.Errorf("marshaling candidate file: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
