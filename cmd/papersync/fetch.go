// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/papersync/internal/arxiv"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch arXiv search results into a local paper file",
	Long: `Fetch queries arXiv with the configured search (or the --query override)
and saves the results to a local YAML paper file without touching Notion.
Useful for inspecting what a sync run would pick up.`,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	query, _ := cmd.Flags().GetString("query")
	if query == "" {
		query = cfg.Arxiv.Query
	}
	if query == "" {
		return fmt.Errorf("no query: set arxiv.query or pass --query")
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults <= 0 {
		maxResults = cfg.Arxiv.MaxResults
	}

	papers, err := arxiv.New(cfg.HTTP).Search(cmd.Context(), query, maxResults)
	if err != nil {
		return err
	}
	for _, p := range papers {
		fmt.Fprintf(os.Stdout, "%s  %s\n", p.ID, p.Title)
	}
	fmt.Fprintf(os.Stdout, "\n%d paper(s) fetched\n", len(papers))

	outPath, _ := cmd.Flags().GetString("out")
	asJSON, _ := cmd.Flags().GetBool("json")
	if outPath == "" {
		outPath = "papers.yaml"
		if asJSON {
			outPath = "papers.json"
		}
	}
	if err := arxiv.WritePaperFile(outPath, query, maxResults, papers, asJSON); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "saved to %s\n", outPath)
	return nil
}

func init() {
	fetchCmd.Flags().String("query", "", "arXiv search expression (overrides arxiv.query)")
	fetchCmd.Flags().Int("max-results", 0, "maximum number of results (overrides arxiv.max_results)")
	fetchCmd.Flags().String("out", "", "output path (default papers.yaml, or papers.json with --json)")
	fetchCmd.Flags().Bool("json", false, "write the paper file as JSON instead of YAML")

	rootCmd.AddCommand(fetchCmd)
}
