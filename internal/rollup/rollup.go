// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rollup

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/papersync/internal/notion"
	"github.com/pdiddy/papersync/pkg/types"
)

// Run executes a rollup: query the source pages, compute the aggregate
// properties, and write them onto every page matching the target
// filter. delay is the pause between consecutive page updates.
func Run(ctx context.Context, api notion.API, cfg types.RollupConfig, delay time.Duration, w io.Writer) error {
	proc, err := Build(cfg)
	if err != nil {
		return err
	}

	if cfg.Filters.Target.IsZero() {
		return fmt.Errorf("rollup.filters.target is required: refusing to update every page in the database")
	}
	targetFilter, err := notion.ToFilter(cfg.Filters.Target)
	if err != nil {
		return fmt.Errorf("rollup.filters.target: %w", err)
	}
	sourceFilter, err := notion.ToFilter(cfg.Filters.All)
	if err != nil {
		return fmt.Errorf("rollup.filters.all: %w", err)
	}

	pages, err := api.QueryAll(ctx, sourceFilter)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "queried %d source pages\n", len(pages))

	props, err := proc.Process(pages)
	if err != nil {
		return err
	}

	targets, err := api.QueryAll(ctx, targetFilter)
	if err != nil {
		return err
	}
	ids, err := notion.PageIDs(targets)
	if err != nil {
		return fmt.Errorf("resolving target pages: %w", err)
	}

	for i, id := range ids {
		if i > 0 && delay > 0 {
			time.Sleep(delay)
		}
		if err := api.UpdatePage(ctx, id, props); err != nil {
			return err
		}
		fmt.Fprintf(w, "updated %s\n", id)
	}

	fmt.Fprintf(w, "\nwrote %d properties to %d page(s)\n", len(props), len(ids))
	return nil
}
