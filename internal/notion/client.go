// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notion wraps the Notion SDK: database queries with cursor
// pagination, page creation and updates, and the translation between
// Go values and Notion page properties.
package notion

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jomei/notionapi"

	"github.com/pdiddy/papersync/pkg/types"
)

// queryPageSize is the Notion API maximum per query request.
const queryPageSize = 100

// API is the Notion surface the sync, enrich, and rollup engines
// consume. Client implements it over the SDK; tests substitute fakes.
type API interface {
	// QueryAll returns every page of the database matching filter,
	// following pagination cursors. A nil filter selects all pages.
	QueryAll(ctx context.Context, filter notionapi.Filter) ([]notionapi.Page, error)

	// CreatePage creates a page in the database and returns its ID.
	CreatePage(ctx context.Context, props notionapi.Properties) (string, error)

	// UpdatePage replaces the given properties of an existing page.
	UpdatePage(ctx context.Context, pageID string, props notionapi.Properties) error
}

// Client is the production API implementation.
type Client struct {
	api        *notionapi.Client
	databaseID notionapi.DatabaseID
}

var _ API = (*Client)(nil)

// NewClient builds a Client from the notion and http sections of the
// configuration. The token and database ID are required.
func NewClient(cfg types.NotionConfig, httpCfg types.HTTPConfig) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("notion token is not set: configure notion.token, PAPERSYNC_NOTION_TOKEN, or .secrets/notion-token")
	}
	if cfg.DatabaseID == "" {
		return nil, fmt.Errorf("notion.database_id is not set")
	}

	api := notionapi.NewClient(
		notionapi.Token(cfg.Token),
		notionapi.WithHTTPClient(&http.Client{Timeout: httpCfg.Timeout}),
	)
	return &Client{
		api:        api,
		databaseID: notionapi.DatabaseID(cfg.DatabaseID),
	}, nil
}

// QueryAll implements API.
func (c *Client) QueryAll(ctx context.Context, filter notionapi.Filter) ([]notionapi.Page, error) {
	req := &notionapi.DatabaseQueryRequest{
		Filter:   filter,
		PageSize: queryPageSize,
	}

	var pages []notionapi.Page
	for {
		resp, err := c.api.Database.Query(ctx, c.databaseID, req)
		if err != nil {
			return nil, fmt.Errorf("querying database: %w", err)
		}
		pages = append(pages, resp.Results...)
		if !resp.HasMore {
			return pages, nil
		}
		req.StartCursor = resp.NextCursor
	}
}

// CreatePage implements API.
func (c *Client) CreatePage(ctx context.Context, props notionapi.Properties) (string, error) {
	page, err := c.api.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: c.databaseID,
		},
		Properties: props,
	})
	if err != nil {
		return "", fmt.Errorf("creating page: %w", err)
	}
	return string(page.ID), nil
}

// UpdatePage implements API.
func (c *Client) UpdatePage(ctx context.Context, pageID string, props notionapi.Properties) error {
	_, err := c.api.Page.Update(ctx, notionapi.PageID(pageID), &notionapi.PageUpdateRequest{
		Properties: props,
	})
	if err != nil {
		return fmt.Errorf("updating page %s: %w", pageID, err)
	}
	return nil
}

// PageIDs extracts the IDs of the given pages. An empty page set is an
// error: rollup and enrich must not silently write to nothing.
func PageIDs(pages []notionapi.Page) ([]string, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages matched the filter")
	}
	ids := make([]string, 0, len(pages))
	for _, p := range pages {
		ids = append(ids, string(p.ID))
	}
	return ids, nil
}
