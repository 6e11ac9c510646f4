// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source fetches candidate papers for a query, either from a saved
// candidate file or from the NCBI E-utilities (PubMed Central search joined
// with PubMed records).
package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/pdiddy/paper-rank/internal/httputil"
	"github.com/pdiddy/paper-rank/pkg/types"
)

// DefaultMaxResults is the candidate count requested when none is configured.
const DefaultMaxResults = 100

// ErrEmptyQuery is returned when a source is asked to search for nothing.
var ErrEmptyQuery = errors.New("query is empty")

// Backend names accepted in SourceConfig.Backend.
const (
	BackendFile   = "file"
	BackendPubMed = "pubmed"
)

// Source returns up to limit candidate papers for query.
type Source interface {
	Name() string
	Fetch(ctx context.Context, query string, limit int) ([]types.Paper, error)
}

// New builds the source selected by cfg.Backend. An empty backend picks the
// file source when a papers file is configured and PubMed otherwise.
func New(cfg types.SourceConfig) (Source, error) {
	backend := cfg.Backend
	if backend == "" {
		backend = BackendPubMed
		if cfg.PapersFile != "" {
			backend = BackendFile
		}
	}

	switch backend {
	case BackendFile:
		if cfg.PapersFile == "" {
			return nil, fmt.Errorf("file source requires a papers file")
		}
		return &FileSource{Path: cfg.PapersFile}, nil
	case BackendPubMed:
		return &PubMedSource{
			Client:    httputil.NewClient(cfg.HTTPConfig),
			UserAgent: cfg.UserAgent,
			Email:     cfg.Email,
			APIKey:    cfg.APIKey,
		}, nil
	default:
		return nil, fmt.Errorf("unknown source backend %q", backend)
	}
}

func client(c *http.Client) *http.Client {
	if c == nil {
		return http.DefaultClient
	}
	return c
}
