// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-rank/internal/lexicon"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Manage and inspect the lexical database",
}

var lexiconImportCmd = &cobra.Command{
	Use:   "import <in.yaml|wordnet-dict-dir> <out.db>",
	Short: "Build a SQLite lexical database from WordNet or a YAML lexicon",
	Long: `Import builds a SQLite lexical database. The input is either a YAML lexicon
or a Princeton WordNet dict directory (data.noun, data.verb, data.adj,
data.adv and the *.exc exception lists, as shipped with WordNet 3.0/3.1).

The built-in lexicon only covers common research vocabulary. For ranking
against full WordNet, import it once and point lexicon.path at the result:

  paper-rank lexicon import ./WordNet-3.0/dict wordnet.db
  paper-rank rank --lexicon wordnet.db "deep learning"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		th, err := readLexiconSource(args[0])
		if err != nil {
			return err
		}
		if err := th.WriteSQLite(args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d synsets and %d exceptions to %s\n",
			th.Len(), len(th.Exceptions()), args[1])
		return nil
	},
}

func readLexiconSource(path string) (*lexicon.Thesaurus, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening lexicon: %w", err)
	}
	if fi.IsDir() {
		return lexicon.ImportWordNet(path)
	}
	return lexicon.LoadYAML(path)
}

var lexiconSynonymsCmd = &cobra.Command{
	Use:   "synonyms <word...>",
	Short: "Show the synsets of words and the expanded query they produce",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		th, err := lexicon.Load(cfg.Lexicon.Path)
		if err != nil {
			return err
		}
		m, err := lexicon.NewMatcher(th, cfg.Lexicon)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		tokens := lexicon.Tokenize(strings.Join(args, " "))
		for _, tok := range tokens {
			for _, s := range th.Synsets(tok) {
				fmt.Fprintf(out, "%s\t%s\t%s\n", tok, s.ID, strings.Join(s.Lemmas, ", "))
			}
		}
		fmt.Fprintf(out, "expanded: %s\n", strings.Join(m.ExpandQuery(tokens), " "))
		return nil
	},
}

func init() {
	lexiconCmd.AddCommand(lexiconImportCmd, lexiconSynonymsCmd)
	rootCmd.AddCommand(lexiconCmd)
}
