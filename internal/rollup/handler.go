// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rollup

import (
	"fmt"
	"sort"

	"github.com/jomei/notionapi"

	"github.com/pdiddy/papersync/internal/notion"
	"github.com/pdiddy/papersync/pkg/types"
)

// PageProcessor turns a queried page set into the properties to write
// onto the target pages.
type PageProcessor interface {
	Process(pages []notionapi.Page) (notionapi.Properties, error)
}

// Handler applies one processor to a fixed list of properties.
type Handler struct {
	proc  Processor
	props []string
}

var _ PageProcessor = (*Handler)(nil)

// NewHandler builds a handler from a processor configuration.
func NewHandler(cfg types.ProcessorConfig) (*Handler, error) {
	if len(cfg.Properties) == 0 {
		return nil, fmt.Errorf("processor %q has no target properties", cfg.Type)
	}
	proc, err := NewProcessor(cfg)
	if err != nil {
		return nil, err
	}
	return &Handler{proc: proc, props: cfg.Properties}, nil
}

// Process extracts each target property from every page, reduces the
// values, and returns the encoded results keyed by property name. A
// property missing from any page is an error: it almost always means a
// typo in the configuration.
func (h *Handler) Process(pages []notionapi.Page) (notionapi.Properties, error) {
	out := notionapi.Properties{}
	for _, prop := range h.props {
		values := make([]any, 0, len(pages))
		for _, page := range pages {
			p, ok := page.Properties[prop]
			if !ok {
				return nil, fmt.Errorf("property %q not found in the database", prop)
			}
			values = append(values, notion.PropertyValue(p))
		}
		out[prop] = h.proc.Encode(h.proc.Compute(values))
	}
	return out, nil
}

// Multi runs several handlers and merges their results. Later handlers
// win on property-name collisions.
type Multi []*Handler

var _ PageProcessor = (Multi)(nil)

// Process implements PageProcessor.
func (m Multi) Process(pages []notionapi.Page) (notionapi.Properties, error) {
	merged := notionapi.Properties{}
	for _, h := range m {
		props, err := h.Process(pages)
		if err != nil {
			return nil, err
		}
		for name, p := range props {
			merged[name] = p
		}
	}
	return merged, nil
}

// namedHandlers are the preset configurations selectable with
// rollup.handler. The presets mirror the database kinds the tool grew
// up around: component price sheets, inventories, project trackers,
// and paper reading lists.
var namedHandlers = map[string]types.ProcessorConfig{
	"pc_build": {
		Type:       "sum",
		Properties: []string{"价格", "预算分配"},
	},
	"inventory": {
		Type:       "sum",
		Properties: []string{"quantity", "total_value"},
	},
	"project": {
		Type:       "count",
		Properties: []string{"tasks", "completed_tasks"},
	},
	"research": {
		Type:       "concat",
		Properties: []string{"authors"},
		Options:    map[string]string{"separator": "; "},
	},
}

// NewNamedHandler builds one of the preset handlers.
func NewNamedHandler(name string) (*Handler, error) {
	cfg, ok := namedHandlers[name]
	if !ok {
		return nil, fmt.Errorf("unknown handler: %q (available: %v)", name, AvailableHandlers())
	}
	return NewHandler(cfg)
}

// AvailableHandlers lists the preset handler names, sorted.
func AvailableHandlers() []string {
	names := make([]string, 0, len(namedHandlers))
	for name := range namedHandlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build resolves the configured rollup into a PageProcessor: a named
// preset, a single processor config, or a merged multi-processor list.
func Build(cfg types.RollupConfig) (PageProcessor, error) {
	if cfg.Handler != "" && len(cfg.Processors) > 0 {
		return nil, fmt.Errorf("rollup.handler and rollup.processors are mutually exclusive")
	}
	if cfg.Handler != "" {
		return NewNamedHandler(cfg.Handler)
	}
	switch len(cfg.Processors) {
	case 0:
		return nil, fmt.Errorf("rollup requires a handler name or at least one processor")
	case 1:
		return NewHandler(cfg.Processors[0])
	default:
		handlers := make(Multi, 0, len(cfg.Processors))
		for i, pc := range cfg.Processors {
			h, err := NewHandler(pc)
			if err != nil {
				return nil, fmt.Errorf("processor %d: %w", i, err)
			}
			handlers = append(handlers, h)
		}
		return handlers, nil
	}
}
