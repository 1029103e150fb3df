// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures for papersync: the
// YAML configuration schema, the paper record exchanged between the
// arXiv client and the Notion writer, and the batch run reports.
package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout (default 60s).
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with outgoing requests
	// (e.g. "papersync/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// NotionConfig identifies the Notion integration and target database.
type NotionConfig struct {
	// Token is the Notion integration token. When empty it is read
	// from the PAPERSYNC_NOTION_TOKEN environment variable or the
	// .secrets/notion-token file.
	Token string `json:"token,omitempty" yaml:"token,omitempty" mapstructure:"token"`

	// DatabaseID is the Notion database the tool reads and writes.
	DatabaseID string `json:"database_id" yaml:"database_id" mapstructure:"database_id"`
}

// ArxivConfig holds the arXiv search parameters.
type ArxivConfig struct {
	// Query is an arXiv search expression, e.g.
	// "cat:cs.LG AND all:diffusion".
	Query string `json:"query" yaml:"query" mapstructure:"query"`

	// MaxResults caps the number of papers fetched per run (default 50).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// SyncConfig holds settings for the sync pipeline.
type SyncConfig struct {
	// Delay is the pause between consecutive Notion writes. Notion
	// allows roughly three requests per second (default 350ms).
	Delay time.Duration `json:"delay" yaml:"delay" mapstructure:"delay"`

	// StateDir is the directory holding the local sync-state database
	// (default ".papersync").
	StateDir string `json:"state_dir" yaml:"state_dir" mapstructure:"state_dir"`
}

// PropertyMap names the Notion database properties papersync reads and
// writes. Every field is a property name as it appears in the database.
type PropertyMap struct {
	Title     string `json:"title" yaml:"title" mapstructure:"title"`
	Authors   string `json:"authors" yaml:"authors" mapstructure:"authors"`
	Abstract  string `json:"abstract" yaml:"abstract" mapstructure:"abstract"`
	Published string `json:"published" yaml:"published" mapstructure:"published"`
	URL       string `json:"url" yaml:"url" mapstructure:"url"`

	// ArxivID is the property that stores the paper's arXiv identifier.
	// Sync uses it to recognize pages it already created.
	ArxivID string `json:"arxiv_id" yaml:"arxiv_id" mapstructure:"arxiv_id"`

	// PDFURL is the property enrich reads arXiv IDs from.
	PDFURL string `json:"pdf_url" yaml:"pdf_url" mapstructure:"pdf_url"`
}

// ProcessorConfig selects a rollup processor and its target properties.
type ProcessorConfig struct {
	// Type is the processor name: sum, average, count, concat, or collect.
	Type string `json:"type" yaml:"type" mapstructure:"type"`

	// Properties lists the database properties the processor reads.
	Properties []string `json:"properties" yaml:"properties" mapstructure:"properties"`

	// Options holds processor-specific settings, e.g. {"separator": "; "}.
	Options map[string]string `json:"options,omitempty" yaml:"options,omitempty" mapstructure:"options"`
}

// RollupFilters selects the source and destination pages of a rollup run.
type RollupFilters struct {
	// All selects the pages whose properties feed the computation.
	// An empty spec selects every page in the database.
	All FilterSpec `json:"all,omitempty" yaml:"all,omitempty" mapstructure:"all"`

	// Target selects the pages that receive the computed values.
	Target FilterSpec `json:"target" yaml:"target" mapstructure:"target"`
}

// RollupConfig holds settings for the rollup command. A named Handler
// and an explicit Processors list are mutually exclusive; with more than
// one processor the results are merged, later entries winning on
// property-name collisions.
type RollupConfig struct {
	Handler    string            `json:"handler,omitempty" yaml:"handler,omitempty" mapstructure:"handler"`
	Processors []ProcessorConfig `json:"processors,omitempty" yaml:"processors,omitempty" mapstructure:"processors"`
	Filters    RollupFilters     `json:"filters" yaml:"filters" mapstructure:"filters"`
}

// Config is the root of the papersync YAML configuration file.
type Config struct {
	Notion     NotionConfig `json:"notion" yaml:"notion" mapstructure:"notion"`
	HTTP       HTTPConfig   `json:"http" yaml:"http" mapstructure:"http"`
	Arxiv      ArxivConfig  `json:"arxiv" yaml:"arxiv" mapstructure:"arxiv"`
	Sync       SyncConfig   `json:"sync" yaml:"sync" mapstructure:"sync"`
	Properties PropertyMap  `json:"properties" yaml:"properties" mapstructure:"properties"`
	Rollup     RollupConfig `json:"rollup,omitempty" yaml:"rollup,omitempty" mapstructure:"rollup"`
}
