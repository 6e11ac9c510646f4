// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-rank CLI. It fetches
// candidate papers for a query, ranks them, and prints the result.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-rank/internal/lexicon"
	"github.com/pdiddy/paper-rank/internal/logging"
	"github.com/pdiddy/paper-rank/internal/prestige"
	"github.com/pdiddy/paper-rank/internal/secrets"
	"github.com/pdiddy/paper-rank/internal/source"
	"github.com/pdiddy/paper-rank/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const defaultUserAgent = "paper-rank/0.1"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the paper-rank CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-rank",
	Short: "Rank research papers by relevance to a query",
	Long: `paper-rank fetches candidate papers for a free-text query (from PubMed or a
saved candidate file) and orders them by journal prestige, recency, and fuzzy
matches of the query against title, authors, keywords, and abstract.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("secrets-dir")
		s, err := secrets.Load(dir, nil)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./paper-rank.yaml or ~/.config/paper-rank/config.yaml)")
	pf.String("secrets-dir", ".secrets", "directory of credential files")
	pf.String("log-level", "", "log level: debug, info, warn, error (default info)")
	pf.String("prestige", "", "journal prestige table (e.g. scimagojr 2019.csv)")
	pf.String("lexicon", "", "lexical database (.yaml, .db, or a WordNet dict directory); empty uses the built-in lexicon")

	_ = viper.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = viper.BindPFlag("prestige.path", pf.Lookup("prestige"))
	_ = viper.BindPFlag("lexicon.path", pf.Lookup("lexicon"))

	setDefaults()
}

func setDefaults() {
	viper.SetDefault("source.backend", "")
	viper.SetDefault("source.papers_file", "")
	viper.SetDefault("source.max_results", source.DefaultMaxResults)
	viper.SetDefault("source.timeout", 30*time.Second)
	viper.SetDefault("source.user_agent", defaultUserAgent)
	viper.SetDefault("source.email", "")
	viper.SetDefault("source.api_key", "")

	viper.SetDefault("prestige.path", "")
	viper.SetDefault("prestige.delimiter", prestige.DefaultDelimiter)
	viper.SetDefault("prestige.id_column", prestige.DefaultIDColumn)
	viper.SetDefault("prestige.score_column", prestige.DefaultScoreColumn)
	viper.SetDefault("prestige.disabled", false)

	viper.SetDefault("lexicon.path", "")
	viper.SetDefault("lexicon.lemmatizer", string(types.LemmatizerMorphy))
	viper.SetDefault("lexicon.cutoff", lexicon.DefaultCutoff)
	viper.SetDefault("lexicon.max_matches", 0)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.timestamps", false)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-rank")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-rank"))
		}
	}

	viper.SetEnvPrefix("PAPER_RANK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged flag, env, and file settings and fills
// NCBI credentials from the secrets directory.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	secrets.Apply(&cfg.Source, loadedSecrets)
	return cfg, nil
}

func newLogger(cfg types.Config) *log.Logger {
	return logging.New(logging.FromConfig(cfg.Log))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
