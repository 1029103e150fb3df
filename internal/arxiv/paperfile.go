// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/papersync/pkg/types"
)

// PaperFile is the on-disk representation of a fetch run: the query
// that produced it, the papers, and a timestamped summary. Fetch
// results can be saved and reloaded without re-querying arXiv.
type PaperFile struct {
	Query      string        `json:"query" yaml:"query"`
	MaxResults int           `json:"max_results" yaml:"max_results"`
	Papers     []types.Paper `json:"papers" yaml:"papers"`
	Summary    FileSummary   `json:"summary" yaml:"summary"`
}

// FileSummary records result statistics and the fetch time.
type FileSummary struct {
	Total     int       `json:"total" yaml:"total"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// WritePaperFile saves a fetch run to path, as indented JSON when
// asJSON is set and as YAML otherwise.
func WritePaperFile(path, query string, maxResults int, papers []types.Paper, asJSON bool) error {
	pf := PaperFile{
		Query:      query,
		MaxResults: maxResults,
		Papers:     papers,
		Summary: FileSummary{
			Total:     len(papers),
			Timestamp: time.Now(),
		},
	}

	var (
		data []byte
		err  error
	)
	if asJSON {
		data, err = json.MarshalIndent(&pf, "", "  ")
	} else {
		data, err = yaml.Marshal(&pf)
	}
	if err != nil {
		return fmt.Errorf("marshaling paper file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadPaperFile loads a previously saved paper file. Both YAML and JSON
// files are accepted; YAML is a superset of JSON for this schema.
func ReadPaperFile(path string) (*PaperFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading paper file: %w", err)
	}
	var pf PaperFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing paper file: %w", err)
	}
	return &pf, nil
}

// Search returns the file's papers, capped at maxResults when positive.
// It lets a saved paper file stand in for a live arXiv search, so a
// fetch run can be synced later without re-querying.
func (pf *PaperFile) Search(_ context.Context, _ string, maxResults int) ([]types.Paper, error) {
	papers := pf.Papers
	if maxResults > 0 && len(papers) > maxResults {
		papers = papers[:maxResults]
	}
	return papers, nil
}
