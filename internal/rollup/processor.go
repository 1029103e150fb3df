// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rollup computes aggregate properties across Notion database
// pages and writes the results onto target pages. Each processor
// reduces the values of one property over the page set (sum, average,
// count, concatenation, or unique collection).
package rollup

import (
	"fmt"

	"github.com/jomei/notionapi"

	"github.com/pdiddy/papersync/internal/notion"
	"github.com/pdiddy/papersync/pkg/types"
)

// Processor reduces the values of a single property across pages and
// encodes the result as a Notion property.
type Processor interface {
	Name() string
	Compute(values []any) any
	Encode(value any) notionapi.Property
}

// defaultSeparator joins concatenated text values.
const defaultSeparator = ", "

// NewProcessor builds a processor from its configuration. Supported
// types: sum, average, count, concat, collect.
func NewProcessor(cfg types.ProcessorConfig) (Processor, error) {
	switch cfg.Type {
	case "sum":
		return sumProcessor{}, nil
	case "average":
		return averageProcessor{}, nil
	case "count":
		return countProcessor{}, nil
	case "concat":
		sep := cfg.Options["separator"]
		if sep == "" {
			sep = defaultSeparator
		}
		return concatProcessor{separator: sep}, nil
	case "collect":
		return collectProcessor{}, nil
	default:
		return nil, fmt.Errorf("unknown processor type: %q (available: %v)", cfg.Type, AvailableProcessors())
	}
}

// AvailableProcessors lists the processor type names.
func AvailableProcessors() []string {
	return []string{"sum", "average", "count", "concat", "collect"}
}

// --- sum ---

type sumProcessor struct{}

func (sumProcessor) Name() string { return "sum" }

func (sumProcessor) Compute(values []any) any {
	var total float64
	for _, v := range values {
		if n, ok := v.(float64); ok {
			total += n
		}
	}
	return total
}

func (sumProcessor) Encode(value any) notionapi.Property {
	return notion.Number(value.(float64))
}

// --- average ---

type averageProcessor struct{}

func (averageProcessor) Name() string { return "average" }

func (averageProcessor) Compute(values []any) any {
	var total float64
	count := 0
	for _, v := range values {
		if n, ok := v.(float64); ok {
			total += n
			count++
		}
	}
	if count == 0 {
		return 0.0
	}
	return total / float64(count)
}

func (averageProcessor) Encode(value any) notionapi.Property {
	return notion.Number(value.(float64))
}

// --- count ---

type countProcessor struct{}

func (countProcessor) Name() string { return "count" }

// Compute counts non-empty values. Empty strings, empty lists, and
// missing properties arrive as nil. Empty number cells are the
// exception: the SDK decodes them as 0, so they count unless the
// source filter excludes them with number is_not_empty.
func (countProcessor) Compute(values []any) any {
	count := 0
	for _, v := range values {
		if v != nil {
			count++
		}
	}
	return count
}

func (countProcessor) Encode(value any) notionapi.Property {
	return notion.Number(float64(value.(int)))
}

// --- concat ---

type concatProcessor struct {
	separator string
}

func (concatProcessor) Name() string { return "concat" }

func (p concatProcessor) Compute(values []any) any {
	var parts []string
	for _, v := range values {
		switch t := v.(type) {
		case string:
			parts = append(parts, t)
		case []string:
			parts = append(parts, t...)
		}
	}
	return joinNonEmpty(parts, p.separator)
}

func (concatProcessor) Encode(value any) notionapi.Property {
	return notion.Text(value.(string))
}

// --- collect ---

type collectProcessor struct{}

func (collectProcessor) Name() string { return "collect" }

// Compute gathers unique string values in first-seen order, flattening
// multi_select option lists.
func (collectProcessor) Compute(values []any) any {
	seen := make(map[string]bool)
	var unique []string
	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		unique = append(unique, s)
	}
	for _, v := range values {
		switch t := v.(type) {
		case string:
			add(t)
		case []string:
			for _, s := range t {
				add(s)
			}
		}
	}
	return unique
}

func (collectProcessor) Encode(value any) notionapi.Property {
	names, _ := value.([]string)
	return notion.MultiSelect(names)
}

func joinNonEmpty(parts []string, sep string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}
