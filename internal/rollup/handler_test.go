// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rollup

import (
	"testing"

	"github.com/jomei/notionapi"

	"github.com/pdiddy/papersync/internal/notion"
	"github.com/pdiddy/papersync/pkg/types"
)

func pageWith(props map[string]notionapi.Property) notionapi.Page {
	p := notionapi.Properties{}
	for k, v := range props {
		p[k] = v
	}
	return notionapi.Page{Properties: p}
}

func pricePages() []notionapi.Page {
	return []notionapi.Page{
		pageWith(map[string]notionapi.Property{
			"price":    notionapi.NumberProperty{Number: 100},
			"quantity": notionapi.NumberProperty{Number: 2},
			"tags":     notion.MultiSelect([]string{"gpu"}),
		}),
		pageWith(map[string]notionapi.Property{
			"price":    notionapi.NumberProperty{Number: 50.5},
			"quantity": notionapi.NumberProperty{Number: 1},
			"tags":     notion.MultiSelect([]string{"case", "gpu"}),
		}),
	}
}

func TestHandlerProcess(t *testing.T) {
	h, err := NewHandler(types.ProcessorConfig{Type: "sum", Properties: []string{"price", "quantity"}})
	if err != nil {
		t.Fatalf("NewHandler() error: %v", err)
	}

	props, err := h.Process(pricePages())
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}

	if got := props["price"].(notionapi.NumberProperty).Number; got != 150.5 {
		t.Errorf("price sum = %v, want 150.5", got)
	}
	if got := props["quantity"].(notionapi.NumberProperty).Number; got != 3.0 {
		t.Errorf("quantity sum = %v, want 3", got)
	}
}

func TestHandlerProcessMissingProperty(t *testing.T) {
	h, err := NewHandler(types.ProcessorConfig{Type: "sum", Properties: []string{"nonexistent"}})
	if err != nil {
		t.Fatalf("NewHandler() error: %v", err)
	}
	if _, err := h.Process(pricePages()); err == nil {
		t.Error("Process() should fail when a property is missing from a page")
	}
}

func TestNewHandlerRequiresProperties(t *testing.T) {
	if _, err := NewHandler(types.ProcessorConfig{Type: "sum"}); err == nil {
		t.Error("NewHandler() without properties should fail")
	}
}

func TestMultiMergesAndLaterWins(t *testing.T) {
	sum, err := NewHandler(types.ProcessorConfig{Type: "sum", Properties: []string{"price"}})
	if err != nil {
		t.Fatal(err)
	}
	collect, err := NewHandler(types.ProcessorConfig{Type: "collect", Properties: []string{"tags"}})
	if err != nil {
		t.Fatal(err)
	}
	// Second handler recomputes price as a count, overriding the sum.
	count, err := NewHandler(types.ProcessorConfig{Type: "count", Properties: []string{"price"}})
	if err != nil {
		t.Fatal(err)
	}

	props, err := Multi{sum, collect, count}.Process(pricePages())
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}
	if len(props) != 2 {
		t.Errorf("len(props) = %d, want 2", len(props))
	}
	if got := props["price"].(notionapi.NumberProperty).Number; got != 2.0 {
		t.Errorf("price = %v, want the later count result 2", got)
	}
	tags := props["tags"].(notionapi.MultiSelectProperty).MultiSelect
	if len(tags) != 2 {
		t.Errorf("tags = %+v, want 2 unique options", tags)
	}
}

func TestNewNamedHandler(t *testing.T) {
	for _, name := range AvailableHandlers() {
		if _, err := NewNamedHandler(name); err != nil {
			t.Errorf("NewNamedHandler(%q) error: %v", name, err)
		}
	}
	if _, err := NewNamedHandler("bogus"); err == nil {
		t.Error("NewNamedHandler() with an unknown name should fail")
	}
}

func TestBuild(t *testing.T) {
	one := types.ProcessorConfig{Type: "sum", Properties: []string{"price"}}
	two := types.ProcessorConfig{Type: "count", Properties: []string{"tags"}}

	tests := []struct {
		name    string
		cfg     types.RollupConfig
		wantErr bool
		multi   bool
	}{
		{"named handler", types.RollupConfig{Handler: "research"}, false, false},
		{"single processor", types.RollupConfig{Processors: []types.ProcessorConfig{one}}, false, false},
		{"multiple processors", types.RollupConfig{Processors: []types.ProcessorConfig{one, two}}, false, true},
		{"nothing configured", types.RollupConfig{}, true, false},
		{"handler and processors", types.RollupConfig{Handler: "research", Processors: []types.ProcessorConfig{one}}, true, false},
		{"bad processor type", types.RollupConfig{Processors: []types.ProcessorConfig{{Type: "median", Properties: []string{"x"}}}}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc, err := Build(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("Build() should fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if _, isMulti := proc.(Multi); isMulti != tt.multi {
				t.Errorf("Build() multi = %v, want %v", isMulti, tt.multi)
			}
		})
	}
}
