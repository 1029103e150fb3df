// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SyncReport summarizes a sync run.
type SyncReport struct {
	Created int `json:"created" yaml:"created"`
	Updated int `json:"updated" yaml:"updated"`
	Skipped int `json:"skipped" yaml:"skipped"`
	Failed  int `json:"failed" yaml:"failed"`
}

// Total returns the number of papers processed.
func (r SyncReport) Total() int {
	return r.Created + r.Updated + r.Skipped + r.Failed
}

// HasFailures reports whether any paper failed to sync.
func (r SyncReport) HasFailures() bool {
	return r.Failed > 0
}

// EnrichReport summarizes an enrich run.
type EnrichReport struct {
	Enriched int `json:"enriched" yaml:"enriched"`
	NoID     int `json:"no_id" yaml:"no_id"`
	Failed   int `json:"failed" yaml:"failed"`
}

// Total returns the number of pages examined.
func (r EnrichReport) Total() int {
	return r.Enriched + r.NoID + r.Failed
}

// HasFailures reports whether any page failed to update.
func (r EnrichReport) HasFailures() bool {
	return r.Failed > 0
}
