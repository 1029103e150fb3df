// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enrich backfills bibliographic metadata onto Notion pages
// that carry an arXiv PDF or abstract URL: the arXiv ID is extracted
// from the URL, the paper is looked up, and title, authors, and
// abstract are written back to the page.
package enrich

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/papersync/internal/arxiv"
	"github.com/pdiddy/papersync/internal/notion"
	"github.com/pdiddy/papersync/pkg/types"
)

// Lookuper is the arXiv surface enrich consumes.
type Lookuper interface {
	Lookup(ctx context.Context, ids []string) ([]types.Paper, error)
}

// PageInfo records what was written to one page; the set is saved as a
// YAML report when outPath is non-empty.
type PageInfo struct {
	PageID  string      `yaml:"page_id"`
	ArxivID string      `yaml:"arxiv_id"`
	Paper   types.Paper `yaml:"paper"`
}

// Run scans the database, enriches every page with a recognizable
// arXiv URL, and reports per-page status on w. Pages without an arXiv
// ID are counted but not treated as failures.
func Run(ctx context.Context, lookuper Lookuper, api notion.API, cfg *types.Config, outPath string, w io.Writer) (types.EnrichReport, error) {
	pdfProp := cfg.Properties.PDFURL
	if pdfProp == "" {
		return types.EnrichReport{}, fmt.Errorf("properties.pdf_url is not configured")
	}

	pages, err := api.QueryAll(ctx, nil)
	if err != nil {
		return types.EnrichReport{}, err
	}
	fmt.Fprintf(w, "scanning %d pages\n", len(pages))

	var report types.EnrichReport

	// First pass: extract IDs.
	type target struct {
		pageID  string
		arxivID string
	}
	var targets []target
	seen := map[string]bool{}
	var ids []string

	for _, page := range pages {
		prop, ok := page.Properties[pdfProp]
		if !ok {
			fmt.Fprintf(w, "no id   %s (property %q missing)\n", page.ID, pdfProp)
			report.NoID++
			continue
		}
		id := arxiv.ExtractID(notion.PlainText(prop))
		if id == "" {
			fmt.Fprintf(w, "no id   %s\n", page.ID)
			report.NoID++
			continue
		}
		targets = append(targets, target{pageID: string(page.ID), arxivID: id})
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		fmt.Fprintln(w, "no pages with arXiv URLs found")
		return report, nil
	}

	papers, err := lookuper.Lookup(ctx, ids)
	if err != nil {
		return report, fmt.Errorf("looking up papers: %w", err)
	}
	byID := make(map[string]types.Paper, len(papers))
	for _, p := range papers {
		byID[p.ID] = p
	}

	// Second pass: write metadata back.
	var infos []PageInfo
	wrote := false
	for _, t := range targets {
		paper, ok := byID[t.arxivID]
		if !ok {
			fmt.Fprintf(w, "failed  %s: arXiv returned nothing for %s\n", t.pageID, t.arxivID)
			report.Failed++
			continue
		}

		if wrote && cfg.Sync.Delay > 0 {
			time.Sleep(cfg.Sync.Delay)
		}
		err := api.UpdatePage(ctx, t.pageID, notion.MetadataProperties(paper, cfg.Properties))
		wrote = true
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", t.pageID, err)
			report.Failed++
			continue
		}

		fmt.Fprintf(w, "enriched %s  %s\n", t.arxivID, paper.Title)
		report.Enriched++
		infos = append(infos, PageInfo{PageID: t.pageID, ArxivID: t.arxivID, Paper: paper})
	}

	fmt.Fprintf(w, "\nenriched: %d, no id: %d, failed: %d\n",
		report.Enriched, report.NoID, report.Failed)

	if outPath != "" && len(infos) > 0 {
		if err := writeInfos(outPath, infos); err != nil {
			return report, err
		}
		fmt.Fprintf(w, "paper metadata saved to %s\n", outPath)
	}
	return report, nil
}

func writeInfos(path string, infos []PageInfo) error {
	data, err := yaml.Marshal(infos)
	if err != nil {
		return fmt.Errorf("marshaling paper infos: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
