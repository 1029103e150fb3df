// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/papersync/internal/arxiv"
	"github.com/pdiddy/papersync/internal/notion"
	"github.com/pdiddy/papersync/internal/state"
	"github.com/pdiddy/papersync/internal/sync"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch the configured arXiv search and sync it into Notion",
	Long: `Sync runs the full pipeline: query arXiv with the configured search, then
create a Notion page for each new paper and update pages whose metadata
changed. Papers already synced are recognized through a local state database
and skipped; on a first run, pages created by hand are adopted by their
arXiv ID property instead of being duplicated.

With --from-file, a paper file saved by fetch replaces the live arXiv
query as the input.`,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fromFile, _ := cmd.Flags().GetString("from-file")
	var searcher sync.Searcher = arxiv.New(cfg.HTTP)
	if fromFile != "" {
		pf, err := arxiv.ReadPaperFile(fromFile)
		if err != nil {
			return err
		}
		searcher = pf
	} else if cfg.Arxiv.Query == "" {
		return fmt.Errorf("arxiv.query is not configured")
	}

	notionClient, err := notion.NewClient(cfg.Notion, cfg.HTTP)
	if err != nil {
		return err
	}
	store, err := state.Open(cfg.Sync.StateDir)
	if err != nil {
		return err
	}
	defer store.Close()

	report, err := sync.Run(cmd.Context(), searcher, notionClient, store, cfg, os.Stdout)
	if err != nil {
		return err
	}
	if report.HasFailures() {
		return fmt.Errorf("%d paper(s) failed to sync", report.Failed)
	}
	return nil
}

func init() {
	syncCmd.Flags().String("from-file", "", "sync from a saved paper file instead of querying arXiv")

	rootCmd.AddCommand(syncCmd)
}
