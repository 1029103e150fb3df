// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/papersync/internal/arxiv"
	"github.com/pdiddy/papersync/internal/enrich"
	"github.com/pdiddy/papersync/internal/notion"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Backfill arXiv metadata onto Notion pages with a PDF link",
	Long: `Enrich scans the Notion database for pages whose PDF-URL property contains
a recognizable arXiv link, looks the papers up on arXiv, and writes title,
authors, and abstract back to each page. The fetched metadata is also saved
to a local paper-infos YAML file.`,
	RunE: runEnrich,
}

func runEnrich(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	notionClient, err := notion.NewClient(cfg.Notion, cfg.HTTP)
	if err != nil {
		return err
	}
	outPath, _ := cmd.Flags().GetString("out")

	report, err := enrich.Run(cmd.Context(), arxiv.New(cfg.HTTP), notionClient, cfg, outPath, os.Stdout)
	if err != nil {
		return err
	}
	if report.HasFailures() {
		return fmt.Errorf("%d page(s) failed to enrich", report.Failed)
	}
	return nil
}

func init() {
	enrichCmd.Flags().String("out", "paper-infos.yaml", "paper metadata output file (empty to skip)")

	rootCmd.AddCommand(enrichCmd)
}
