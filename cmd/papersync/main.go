// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the papersync CLI: sync arXiv
// search results into a Notion database, fetch papers to a local file,
// enrich existing pages with arXiv metadata, and compute property
// rollups.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/papersync/internal/config"
	"github.com/pdiddy/papersync/internal/secrets"
	"github.com/pdiddy/papersync/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the papersync CLI.
var rootCmd = &cobra.Command{
	Use:   "papersync",
	Short: "Sync arXiv papers into a Notion database",
	Long: `papersync keeps a Notion database in step with an arXiv search. It fetches
paper metadata from the arXiv API, creates or updates one Notion page per
paper, backfills metadata onto pages that only carry a PDF link, and computes
property rollups across pages.

Each operation is a subcommand: sync, fetch, enrich, and rollup. All of them
read the same YAML config file, selected with -c/--config.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
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
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultPath, "config file")
}

// loadConfig reads the config file named by the --config flag.
func loadConfig(cmd *cobra.Command) (*types.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path, loadedSecrets)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
