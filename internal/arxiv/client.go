// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv queries the arXiv export API and parses its Atom feed
// into paper records.
package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/papersync/internal/httputil"
	"github.com/pdiddy/papersync/pkg/types"
)

// apiBase is the arXiv query endpoint. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://export.arxiv.org/api/query"

// Client talks to the arXiv export API.
type Client struct {
	HTTP *http.Client
	Cfg  types.HTTPConfig
}

// New returns a Client with an http.Client configured from cfg.
func New(cfg types.HTTPConfig) *Client {
	return &Client{
		HTTP: &http.Client{Timeout: cfg.Timeout},
		Cfg:  cfg,
	}
}

// Search queries arXiv with a search expression and returns up to
// maxResults papers, newest submissions first.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]types.Paper, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("empty arXiv query")
	}
	if maxResults <= 0 {
		maxResults = 50
	}

	params := url.Values{
		"search_query": {query},
		"start":        {"0"},
		"max_results":  {fmt.Sprintf("%d", maxResults)},
		"sortBy":       {"submittedDate"},
		"sortOrder":    {"descending"},
	}
	return c.query(ctx, params)
}

// Lookup fetches papers by arXiv ID. IDs are normalized before the
// request; unrecognizable entries are an error.
func (c *Client) Lookup(ctx context.Context, ids []string) ([]types.Paper, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("no arXiv IDs to look up")
	}

	normalized := make([]string, 0, len(ids))
	for _, id := range ids {
		n, ok := Normalize(id)
		if !ok {
			return nil, fmt.Errorf("unrecognized arXiv ID: %q", id)
		}
		normalized = append(normalized, n)
	}

	params := url.Values{
		"id_list":     {strings.Join(normalized, ",")},
		"max_results": {fmt.Sprintf("%d", len(normalized))},
	}
	return c.query(ctx, params)
}

func (c *Client) query(ctx context.Context, params url.Values) ([]types.Paper, error) {
	reqURL := apiBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.Cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, 0)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed atomFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	var papers []types.Paper
	for _, entry := range feed.Entries {
		id := ExtractID(entry.ID)
		if id == "" {
			continue
		}

		p := types.Paper{
			ID:       id,
			Title:    collapseWhitespace(entry.Title),
			Abstract: collapseWhitespace(entry.Summary),
			AbsURL:   "https://arxiv.org/abs/" + id,
			PDFURL:   "https://arxiv.org/pdf/" + id,
		}

		for _, a := range entry.Authors {
			if name := strings.TrimSpace(a.Name); name != "" {
				p.Authors = append(p.Authors, name)
			}
		}
		for _, cat := range entry.Categories {
			if cat.Term != "" {
				p.Categories = append(p.Categories, cat.Term)
			}
		}
		if t, parseErr := time.Parse(time.RFC3339, entry.Published); parseErr == nil {
			p.Published = t
		}

		papers = append(papers, p)
	}
	return papers, nil
}

// collapseWhitespace normalizes the newline-wrapped text arXiv returns
// in title and summary elements.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// arXiv Atom feed XML structures.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID         string         `xml:"id"`
	Title      string         `xml:"title"`
	Summary    string         `xml:"summary"`
	Published  string         `xml:"published"`
	Authors    []atomAuthor   `xml:"author"`
	Categories []atomCategory `xml:"category"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}
