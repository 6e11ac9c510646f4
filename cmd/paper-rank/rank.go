// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-rank/internal/lexicon"
	"github.com/pdiddy/paper-rank/internal/present"
	"github.com/pdiddy/paper-rank/internal/prestige"
	"github.com/pdiddy/paper-rank/internal/rank"
	"github.com/pdiddy/paper-rank/internal/source"
	"github.com/pdiddy/paper-rank/pkg/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank <query...>",
	Short: "Fetch candidate papers for a query and rank them",
	Long: `Rank fetches candidate papers for the query, scores each on journal
prestige, publication date, and title, author, keyword, and abstract matches,
and prints them best first. The journal prestige table and lexicon are loaded
before any paper is fetched; a missing or broken table aborts the run unless
--no-prestige is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRank,
}

func init() {
	f := rankCmd.Flags()
	f.String("papers", "", "rank a saved candidate file instead of querying PubMed")
	f.String("source", "", "candidate source: pubmed or file")
	f.Int("max-results", source.DefaultMaxResults, "number of candidates to fetch")
	f.String("format", present.FormatNameTable, "output format: table, json, or csl")
	f.Int("top", 0, "print only the best n papers (0 prints all)")
	f.String("save", "", "save fetched candidates to a YAML file")
	f.Bool("no-prestige", false, "rank without a journal prestige table (every journal scores 0)")

	_ = viper.BindPFlag("source.papers_file", f.Lookup("papers"))
	_ = viper.BindPFlag("source.backend", f.Lookup("source"))
	_ = viper.BindPFlag("source.max_results", f.Lookup("max-results"))
	_ = viper.BindPFlag("prestige.disabled", f.Lookup("no-prestige"))

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("provide a query")
	}
	format, _ := cmd.Flags().GetString("format")
	top, _ := cmd.Flags().GetInt("top")
	save, _ := cmd.Flags().GetString("save")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	scorer, err := buildScorer(cfg, logger)
	if err != nil {
		return err
	}
	src, err := source.New(cfg.Source)
	if err != nil {
		return err
	}

	start := time.Now()
	papers, err := src.Fetch(cmd.Context(), query, cfg.Source.MaxResults)
	if err != nil {
		return fmt.Errorf("fetching candidates from %s: %w", src.Name(), err)
	}
	logger.Info("fetched papers", "source", src.Name(), "papers", len(papers), "elapsed", time.Since(start))

	if save != "" {
		if err := source.WriteCandidates(save, query, papers); err != nil {
			return fmt.Errorf("saving candidates: %w", err)
		}
		logger.Info("saved candidates", "path", save)
	}

	start = time.Now()
	ranked := rank.NewRanker(scorer, logger).Rank(papers, query)
	logger.Info("ranking finished", "elapsed", time.Since(start))

	if top > 0 && len(ranked) > top {
		ranked = ranked[:top]
	}
	return present.Write(format, ranked, cmd.OutOrStdout())
}

// buildScorer loads the prestige table and the lexicon. Any load failure is
// returned before ranking starts.
func buildScorer(cfg types.Config, logger *log.Logger) (*rank.Scorer, error) {
	table, err := loadPrestige(cfg.Prestige, logger)
	if err != nil {
		return nil, err
	}
	matcher, err := loadMatcher(cfg.Lexicon)
	if err != nil {
		return nil, err
	}
	return rank.NewScorer(table, matcher), nil
}

// loadPrestige reads the configured table. Only an explicit opt-out ranks
// with an empty table.
func loadPrestige(cfg types.PrestigeConfig, logger *log.Logger) (*prestige.Table, error) {
	if cfg.Disabled {
		logger.Warn("journal prestige disabled; journal scores will be 0")
		return prestige.NewTable(nil), nil
	}
	table, err := prestige.Load(cfg)
	if errors.Is(err, prestige.ErrNoTable) {
		return nil, fmt.Errorf("%w (set --prestige or prestige.path, or pass --no-prestige)", err)
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded prestige table", "path", cfg.Path, "journals", table.Len())
	return table, nil
}

func loadMatcher(cfg types.LexiconConfig) (*lexicon.Matcher, error) {
	th, err := lexicon.Load(cfg.Path)
	if err != nil {
		return nil, err
	}
	return lexicon.NewMatcher(th, cfg)
}
