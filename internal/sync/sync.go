// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sync drives the arXiv-to-Notion pipeline: fetch papers for
// the configured query, dedup against local state and existing pages,
// and create or update Notion pages.
package sync

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/papersync/internal/notion"
	"github.com/pdiddy/papersync/internal/state"
	"github.com/pdiddy/papersync/pkg/types"
)

// Searcher is the arXiv surface the engine consumes.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]types.Paper, error)
}

// Stater is the sync-state surface the engine consumes.
type Stater interface {
	Get(ctx context.Context, arxivID string) (*state.Record, error)
	Put(ctx context.Context, r state.Record) error
	Count(ctx context.Context) (int, error)
}

// Run executes one sync. It continues after individual page failures,
// prints per-paper status lines to w, and returns a summary report.
func Run(ctx context.Context, searcher Searcher, api notion.API, store Stater, cfg *types.Config, w io.Writer) (types.SyncReport, error) {
	papers, err := searcher.Search(ctx, cfg.Arxiv.Query, cfg.Arxiv.MaxResults)
	if err != nil {
		return types.SyncReport{}, fmt.Errorf("fetching papers: %w", err)
	}
	fmt.Fprintf(w, "fetched %d papers from arXiv\n", len(papers))

	// On the first run the local state is empty but the database may
	// not be: index existing pages by their arXiv-ID property so they
	// are adopted instead of duplicated.
	existing, err := existingPages(ctx, api, store, cfg.Properties.ArxivID)
	if err != nil {
		return types.SyncReport{}, err
	}

	var report types.SyncReport
	wrote := false

	for _, paper := range papers {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		fp := paper.Fingerprint()

		rec, err := store.Get(ctx, paper.ID)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", paper.ID, err)
			report.Failed++
			continue
		}

		switch {
		case rec == nil && existing[paper.ID] != "":
			// Page predates the local state; record it without a write.
			if err := store.Put(ctx, state.Record{
				ArxivID: paper.ID, PageID: existing[paper.ID],
				Title: paper.Title, Fingerprint: fp,
			}); err != nil {
				fmt.Fprintf(w, "failed  %s: %v\n", paper.ID, err)
				report.Failed++
				continue
			}
			fmt.Fprintf(w, "adopted %s (existing page)\n", paper.ID)
			report.Skipped++

		case rec == nil:
			if wrote && cfg.Sync.Delay > 0 {
				time.Sleep(cfg.Sync.Delay)
			}
			pageID, err := api.CreatePage(ctx, notion.PaperProperties(paper, cfg.Properties))
			wrote = true
			if err != nil {
				fmt.Fprintf(w, "failed  %s: %v\n", paper.ID, err)
				report.Failed++
				continue
			}
			if err := store.Put(ctx, state.Record{
				ArxivID: paper.ID, PageID: pageID,
				Title: paper.Title, Fingerprint: fp,
			}); err != nil {
				fmt.Fprintf(w, "failed  %s: %v\n", paper.ID, err)
				report.Failed++
				continue
			}
			fmt.Fprintf(w, "created %s  %s\n", paper.ID, paper.Title)
			report.Created++

		case rec.Fingerprint == fp:
			fmt.Fprintf(w, "skipped %s (unchanged)\n", paper.ID)
			report.Skipped++

		default:
			if wrote && cfg.Sync.Delay > 0 {
				time.Sleep(cfg.Sync.Delay)
			}
			err := api.UpdatePage(ctx, rec.PageID, notion.PaperProperties(paper, cfg.Properties))
			wrote = true
			if err != nil {
				fmt.Fprintf(w, "failed  %s: %v\n", paper.ID, err)
				report.Failed++
				continue
			}
			if err := store.Put(ctx, state.Record{
				ArxivID: paper.ID, PageID: rec.PageID,
				Title: paper.Title, Fingerprint: fp,
			}); err != nil {
				fmt.Fprintf(w, "failed  %s: %v\n", paper.ID, err)
				report.Failed++
				continue
			}
			fmt.Fprintf(w, "updated %s  %s\n", paper.ID, paper.Title)
			report.Updated++
		}
	}

	fmt.Fprintf(w, "\ncreated: %d, updated: %d, skipped: %d, failed: %d\n",
		report.Created, report.Updated, report.Skipped, report.Failed)
	return report, nil
}

// existingPages returns a map of arXiv ID to page ID for the pages
// already in the database. It queries Notion only on the first run,
// when the local state is empty.
func existingPages(ctx context.Context, api notion.API, store Stater, idProp string) (map[string]string, error) {
	n, err := store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading sync state: %w", err)
	}
	if n > 0 || idProp == "" {
		return map[string]string{}, nil
	}

	pages, err := api.QueryAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("indexing existing pages: %w", err)
	}

	index := make(map[string]string, len(pages))
	for _, page := range pages {
		prop, ok := page.Properties[idProp]
		if !ok {
			continue
		}
		if id := notion.PlainText(prop); id != "" {
			index[id] = string(page.ID)
		}
	}
	return index, nil
}
