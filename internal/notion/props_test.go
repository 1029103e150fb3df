// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notion

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/jomei/notionapi"

	"github.com/pdiddy/papersync/pkg/types"
)

func testPropertyMap() types.PropertyMap {
	return types.PropertyMap{
		Title:     "Title",
		Authors:   "Authors",
		Abstract:  "Abstract",
		Published: "Published",
		URL:       "URL",
		ArxivID:   "arXiv ID",
		PDFURL:    "PDF",
	}
}

func TestPaperProperties(t *testing.T) {
	paper := types.Paper{
		ID:        "2301.07041",
		Title:     "Attention Is All You Need",
		Authors:   []string{"Ashish Vaswani", "Noam Shazeer"},
		Abstract:  "We propose a new architecture.",
		Published: time.Date(2023, 1, 17, 0, 0, 0, 0, time.UTC),
		AbsURL:    "https://arxiv.org/abs/2301.07041",
	}

	props := PaperProperties(paper, testPropertyMap())

	title, ok := props["Title"].(notionapi.TitleProperty)
	if !ok {
		t.Fatalf("Title property has type %T", props["Title"])
	}
	if got := PlainText(title); got != paper.Title {
		t.Errorf("title = %q", got)
	}

	authors, ok := props["Authors"].(notionapi.MultiSelectProperty)
	if !ok {
		t.Fatalf("Authors property has type %T", props["Authors"])
	}
	if len(authors.MultiSelect) != 2 || authors.MultiSelect[0].Name != "Ashish Vaswani" {
		t.Errorf("authors = %+v", authors.MultiSelect)
	}

	if got := PlainText(props["arXiv ID"]); got != "2301.07041" {
		t.Errorf("arXiv ID = %q", got)
	}

	u, ok := props["URL"].(notionapi.URLProperty)
	if !ok || u.URL != paper.AbsURL {
		t.Errorf("URL property = %+v", props["URL"])
	}

	d, ok := props["Published"].(notionapi.DateProperty)
	if !ok || d.Date == nil || d.Date.Start == nil {
		t.Fatalf("Published property = %+v", props["Published"])
	}
	if !time.Time(*d.Date.Start).Equal(paper.Published) {
		t.Errorf("Published = %v", time.Time(*d.Date.Start))
	}
}

func TestPaperPropertiesSkipsUnmappedFields(t *testing.T) {
	m := types.PropertyMap{Title: "Name"}
	props := PaperProperties(types.Paper{ID: "2301.07041", Title: "T"}, m)

	if len(props) != 1 {
		t.Errorf("len(props) = %d, want only the title", len(props))
	}
	if _, ok := props["Name"]; !ok {
		t.Error("mapped title property missing")
	}
}

func TestPaperPropertiesOmitsZeroDate(t *testing.T) {
	props := PaperProperties(types.Paper{ID: "x", Title: "T"}, testPropertyMap())
	if _, ok := props["Published"]; ok {
		t.Error("zero published date should not produce a date property")
	}
}

func TestTextTruncation(t *testing.T) {
	long := strings.Repeat("a", richTextLimit+500)
	prop := Text(long).(notionapi.RichTextProperty)
	if got := len(prop.RichText[0].Text.Content); got != richTextLimit {
		t.Errorf("content length = %d, want %d", got, richTextLimit)
	}
}

func TestTextTruncationKeepsRunesWhole(t *testing.T) {
	// Three-byte runes that do not divide the limit evenly, so a byte
	// slice at richTextLimit would land mid-rune.
	long := strings.Repeat("論", richTextLimit)
	prop := Text(long).(notionapi.RichTextProperty)
	content := prop.RichText[0].Text.Content
	if !utf8.ValidString(content) {
		t.Error("truncated content is not valid UTF-8")
	}
	if len(content) > richTextLimit {
		t.Errorf("content length = %d, want at most %d", len(content), richTextLimit)
	}
	if len(content) < richTextLimit-utf8.UTFMax {
		t.Errorf("content length = %d, truncated too far", len(content))
	}
}

func TestMetadataProperties(t *testing.T) {
	paper := types.Paper{
		ID:       "2301.07041",
		Title:    "T",
		Authors:  []string{"A"},
		Abstract: "Abs",
		AbsURL:   "https://arxiv.org/abs/2301.07041",
	}
	props := MetadataProperties(paper, testPropertyMap())

	for _, want := range []string{"Title", "Authors", "Abstract"} {
		if _, ok := props[want]; !ok {
			t.Errorf("missing %s property", want)
		}
	}
	for _, skip := range []string{"URL", "arXiv ID", "Published"} {
		if _, ok := props[skip]; ok {
			t.Errorf("enrich must not overwrite %s", skip)
		}
	}
}

func TestPropertyValue(t *testing.T) {
	sel := notionapi.SelectProperty{Select: notionapi.Option{Name: "Active"}}
	start := notionapi.Date(time.Date(2023, 1, 17, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		prop notionapi.Property
		want any
	}{
		{"number", notionapi.NumberProperty{Number: 42.5}, 42.5},
		{"number pointer", &notionapi.NumberProperty{Number: 7}, 7.0},
		{"title", Title("hello"), "hello"},
		{"rich text", Text("world"), "world"},
		{"empty rich text", notionapi.RichTextProperty{}, nil},
		{"select", sel, "Active"},
		{"empty select", notionapi.SelectProperty{}, nil},
		{"checkbox", notionapi.CheckboxProperty{Checkbox: true}, true},
		{"url", notionapi.URLProperty{URL: "https://x"}, "https://x"},
		{"empty url", notionapi.URLProperty{}, nil},
		{"empty date", notionapi.DateProperty{}, nil},
		{"unsupported type", notionapi.FormulaProperty{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PropertyValue(tt.prop); got != tt.want {
				t.Errorf("PropertyValue() = %v (%T), want %v", got, got, tt.want)
			}
		})
	}

	t.Run("multi select", func(t *testing.T) {
		prop := MultiSelect([]string{"a", "b"})
		got, ok := PropertyValue(prop).([]string)
		if !ok || len(got) != 2 || got[1] != "b" {
			t.Errorf("PropertyValue() = %v", got)
		}
	})

	t.Run("date", func(t *testing.T) {
		prop := notionapi.DateProperty{Date: &notionapi.DateObject{Start: &start}}
		got, ok := PropertyValue(prop).(time.Time)
		if !ok || !got.Equal(time.Time(start)) {
			t.Errorf("PropertyValue() = %v", got)
		}
	})
}

func TestPageIDs(t *testing.T) {
	pages := []notionapi.Page{{ID: "page-1"}, {ID: "page-2"}}
	ids, err := PageIDs(pages)
	if err != nil {
		t.Fatalf("PageIDs() error: %v", err)
	}
	if len(ids) != 2 || ids[0] != "page-1" {
		t.Errorf("ids = %v", ids)
	}

	if _, err := PageIDs(nil); err == nil {
		t.Error("PageIDs() on an empty set should fail")
	}
}
