// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notion

import (
	"time"
	"unicode/utf8"

	"github.com/jomei/notionapi"

	"github.com/pdiddy/papersync/pkg/types"
)

// richTextLimit is the Notion API cap on a single rich_text content
// string. Longer abstracts are truncated.
const richTextLimit = 2000

// Title builds a title property.
func Title(s string) notionapi.Property {
	return notionapi.TitleProperty{Title: richText(s)}
}

// Text builds a rich_text property, truncated to the API limit.
func Text(s string) notionapi.Property {
	if len(s) > richTextLimit {
		s = truncateRunes(s, richTextLimit)
	}
	return notionapi.RichTextProperty{RichText: richText(s)}
}

// truncateRunes cuts s to at most limit bytes without splitting a rune.
func truncateRunes(s string, limit int) string {
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// Number builds a number property.
func Number(v float64) notionapi.Property {
	return notionapi.NumberProperty{Number: v}
}

// MultiSelect builds a multi_select property from option names.
func MultiSelect(names []string) notionapi.Property {
	opts := make([]notionapi.Option, 0, len(names))
	for _, n := range names {
		opts = append(opts, notionapi.Option{Name: n})
	}
	return notionapi.MultiSelectProperty{MultiSelect: opts}
}

// URL builds a url property.
func URL(s string) notionapi.Property {
	return notionapi.URLProperty{URL: s}
}

// Date builds a date property from the day of t.
func Date(t time.Time) notionapi.Property {
	d := notionapi.Date(t)
	return notionapi.DateProperty{Date: &notionapi.DateObject{Start: &d}}
}

func richText(s string) []notionapi.RichText {
	if s == "" {
		return []notionapi.RichText{}
	}
	return []notionapi.RichText{{Text: &notionapi.Text{Content: s}}}
}

// PaperProperties maps a paper record onto the configured database
// properties. Unnamed properties in the map are left untouched.
func PaperProperties(p types.Paper, m types.PropertyMap) notionapi.Properties {
	props := notionapi.Properties{}
	if m.Title != "" {
		props[m.Title] = Title(p.Title)
	}
	if m.Authors != "" {
		props[m.Authors] = MultiSelect(p.Authors)
	}
	if m.Abstract != "" {
		props[m.Abstract] = Text(p.Abstract)
	}
	if m.Published != "" && !p.Published.IsZero() {
		props[m.Published] = Date(p.Published)
	}
	if m.URL != "" && p.AbsURL != "" {
		props[m.URL] = URL(p.AbsURL)
	}
	if m.ArxivID != "" {
		props[m.ArxivID] = Text(p.ID)
	}
	return props
}

// MetadataProperties maps only the bibliographic fields enrich writes
// back: title, authors, and abstract.
func MetadataProperties(p types.Paper, m types.PropertyMap) notionapi.Properties {
	props := notionapi.Properties{}
	if m.Title != "" {
		props[m.Title] = Title(p.Title)
	}
	if m.Authors != "" {
		props[m.Authors] = MultiSelect(p.Authors)
	}
	if m.Abstract != "" {
		props[m.Abstract] = Text(p.Abstract)
	}
	return props
}

// PropertyValue returns the plain Go value of a page property: float64
// for numbers, string for title/rich_text/url/select, []string for
// multi_select, bool for checkboxes, time.Time for dates, and nil when
// the property is empty. The SDK decodes query results into pointer
// property types but request builders use value types, so both are
// handled.
func PropertyValue(p notionapi.Property) any {
	switch v := p.(type) {
	case *notionapi.TitleProperty:
		return emptyAsNil(plainText(v.Title))
	case notionapi.TitleProperty:
		return emptyAsNil(plainText(v.Title))
	case *notionapi.RichTextProperty:
		return emptyAsNil(plainText(v.RichText))
	case notionapi.RichTextProperty:
		return emptyAsNil(plainText(v.RichText))
	// The SDK decodes an empty number cell as 0, so a number property
	// never comes back nil here. Configs that must exclude empty cells
	// use a number is_not_empty source filter.
	case *notionapi.NumberProperty:
		return v.Number
	case notionapi.NumberProperty:
		return v.Number
	case *notionapi.SelectProperty:
		return emptyAsNil(v.Select.Name)
	case notionapi.SelectProperty:
		return emptyAsNil(v.Select.Name)
	case *notionapi.MultiSelectProperty:
		return optionNames(v.MultiSelect)
	case notionapi.MultiSelectProperty:
		return optionNames(v.MultiSelect)
	case *notionapi.CheckboxProperty:
		return v.Checkbox
	case notionapi.CheckboxProperty:
		return v.Checkbox
	case *notionapi.URLProperty:
		return emptyAsNil(v.URL)
	case notionapi.URLProperty:
		return emptyAsNil(v.URL)
	case *notionapi.DateProperty:
		return dateStart(v.Date)
	case notionapi.DateProperty:
		return dateStart(v.Date)
	default:
		return nil
	}
}

// PlainText returns the string form of a text-like property, or ""
// for anything else.
func PlainText(p notionapi.Property) string {
	if s, ok := PropertyValue(p).(string); ok {
		return s
	}
	return ""
}

func plainText(rts []notionapi.RichText) string {
	var out string
	for _, rt := range rts {
		if rt.PlainText != "" {
			out += rt.PlainText
		} else if rt.Text != nil {
			out += rt.Text.Content
		}
	}
	return out
}

func optionNames(opts []notionapi.Option) any {
	if len(opts) == 0 {
		return nil
	}
	names := make([]string, 0, len(opts))
	for _, o := range opts {
		names = append(names, o.Name)
	}
	return names
}

func dateStart(d *notionapi.DateObject) any {
	if d == nil || d.Start == nil {
		return nil
	}
	return time.Time(*d.Start)
}

func emptyAsNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
