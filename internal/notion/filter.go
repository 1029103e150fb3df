// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notion

import (
	"fmt"
	"time"

	"github.com/jomei/notionapi"

	"github.com/pdiddy/papersync/pkg/types"
)

// ToFilter translates a configuration filter spec into an SDK filter.
// A zero spec yields a nil filter, which selects every page.
func ToFilter(s types.FilterSpec) (notionapi.Filter, error) {
	if s.IsZero() {
		return nil, nil
	}

	if len(s.And) > 0 && len(s.Or) > 0 {
		return nil, fmt.Errorf("filter cannot combine and/or at the same level")
	}

	if len(s.And) > 0 || len(s.Or) > 0 {
		if s.Property != "" {
			return nil, fmt.Errorf("compound filter cannot also name a property")
		}
		children := s.And
		if len(s.Or) > 0 {
			children = s.Or
		}
		parts := make([]notionapi.Filter, 0, len(children))
		for i, child := range children {
			f, err := ToFilter(child)
			if err != nil {
				return nil, fmt.Errorf("compound filter element %d: %w", i, err)
			}
			if f == nil {
				return nil, fmt.Errorf("compound filter element %d is empty", i)
			}
			parts = append(parts, f)
		}
		if len(s.And) > 0 {
			return notionapi.AndCompoundFilter(parts), nil
		}
		return notionapi.OrCompoundFilter(parts), nil
	}

	if s.Property == "" {
		return nil, fmt.Errorf("filter condition requires a property name")
	}

	pf := notionapi.PropertyFilter{Property: s.Property}
	conditions := 0

	// The API accepts rich_text conditions on title and url properties,
	// and the SDK's PropertyFilter carries no dedicated fields for them.
	if s.Title != nil {
		pf.RichText = textCondition(*s.Title)
		conditions++
	}
	if s.RichText != nil {
		pf.RichText = textCondition(*s.RichText)
		conditions++
	}
	if s.URL != nil {
		pf.RichText = textCondition(*s.URL)
		conditions++
	}
	if s.Select != nil {
		pf.Select = &notionapi.SelectFilterCondition{
			Equals:     s.Select.Equals,
			IsEmpty:    s.Select.IsEmpty,
			IsNotEmpty: s.Select.IsNotEmpty,
		}
		conditions++
	}
	if s.MultiSelect != nil {
		pf.MultiSelect = &notionapi.MultiSelectFilterCondition{
			Contains:   s.MultiSelect.Contains,
			IsEmpty:    s.MultiSelect.IsEmpty,
			IsNotEmpty: s.MultiSelect.IsNotEmpty,
		}
		conditions++
	}
	if s.Number != nil {
		pf.Number = &notionapi.NumberFilterCondition{
			Equals:      s.Number.Equals,
			GreaterThan: s.Number.GreaterThan,
			LessThan:    s.Number.LessThan,
			IsEmpty:     s.Number.IsEmpty,
			IsNotEmpty:  s.Number.IsNotEmpty,
		}
		conditions++
	}
	if s.Checkbox != nil {
		if s.Checkbox.Equals == nil {
			return nil, fmt.Errorf("checkbox filter on %q requires equals", s.Property)
		}
		cond := &notionapi.CheckboxFilterCondition{}
		// The SDK omits false values, so "equals: false" is expressed
		// as does_not_equal: true.
		if *s.Checkbox.Equals {
			cond.Equals = true
		} else {
			cond.DoesNotEqual = true
		}
		pf.Checkbox = cond
		conditions++
	}
	if s.Date != nil {
		cond, err := dateCondition(*s.Date)
		if err != nil {
			return nil, fmt.Errorf("date filter on %q: %w", s.Property, err)
		}
		pf.Date = cond
		conditions++
	}

	if conditions == 0 {
		return nil, fmt.Errorf("filter on %q has no condition", s.Property)
	}
	if conditions > 1 {
		return nil, fmt.Errorf("filter on %q has %d conditions, want exactly one", s.Property, conditions)
	}
	return pf, nil
}

func textCondition(c types.TextCondition) *notionapi.TextFilterCondition {
	return &notionapi.TextFilterCondition{
		Equals:     c.Equals,
		Contains:   c.Contains,
		IsEmpty:    c.IsEmpty,
		IsNotEmpty: c.IsNotEmpty,
	}
}

func dateCondition(c types.DateCondition) (*notionapi.DateFilterCondition, error) {
	cond := &notionapi.DateFilterCondition{}
	parse := func(s string) (*notionapi.Date, error) {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", s, err)
		}
		d := notionapi.Date(t)
		return &d, nil
	}

	var err error
	switch {
	case c.Equals != "":
		cond.Equals, err = parse(c.Equals)
	case c.Before != "":
		cond.Before, err = parse(c.Before)
	case c.After != "":
		cond.After, err = parse(c.After)
	default:
		return nil, fmt.Errorf("no condition set")
	}
	if err != nil {
		return nil, err
	}
	return cond, nil
}
