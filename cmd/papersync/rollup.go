// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/papersync/internal/notion"
	"github.com/pdiddy/papersync/internal/rollup"
)

var rollupCmd = &cobra.Command{
	Use:   "rollup",
	Short: "Compute property aggregates and write them to target pages",
	Long: `Rollup queries the pages selected by rollup.filters.all, runs the configured
processors (or named handler) over their properties, and writes the computed
values onto the pages selected by rollup.filters.target.

Available processors: ` + strings.Join(rollup.AvailableProcessors(), ", ") + `.
Available handlers: ` + strings.Join(rollup.AvailableHandlers(), ", ") + `.`,
	RunE: runRollup,
}

func runRollup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Rollup.Handler == "" && len(cfg.Rollup.Processors) == 0 {
		return fmt.Errorf("no rollup configured: set rollup.handler or rollup.processors")
	}
	notionClient, err := notion.NewClient(cfg.Notion, cfg.HTTP)
	if err != nil {
		return err
	}
	return rollup.Run(cmd.Context(), notionClient, cfg.Rollup, cfg.Sync.Delay, os.Stdout)
}

func init() {
	rootCmd.AddCommand(rollupCmd)
}
