// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-rank/internal/prestige"
)

var journalsCmd = &cobra.Command{
	Use:   "journals",
	Short: "Inspect the journal prestige table",
}

var journalsLookupCmd = &cobra.Command{
	Use:   "lookup <issn...>",
	Short: "Print the prestige score of journals by ISSN",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		table, err := prestige.Load(cfg.Prestige)
		if errors.Is(err, prestige.ErrNoTable) {
			return fmt.Errorf("%w (set --prestige or prestige.path)", err)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, issn := range args {
			if score, ok := table.Lookup(issn); ok {
				fmt.Fprintf(out, "%s\t%g\n", issn, score)
			} else {
				fmt.Fprintf(out, "%s\tnot listed\n", issn)
			}
		}
		return nil
	},
}

func init() {
	journalsCmd.AddCommand(journalsLookupCmd)
	rootCmd.AddCommand(journalsCmd)
}
