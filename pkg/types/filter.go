// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TextCondition matches title, rich_text, and url properties.
// Only one field should be set.
type TextCondition struct {
	Equals     string `json:"equals,omitempty" yaml:"equals,omitempty" mapstructure:"equals"`
	Contains   string `json:"contains,omitempty" yaml:"contains,omitempty" mapstructure:"contains"`
	IsEmpty    bool   `json:"is_empty,omitempty" yaml:"is_empty,omitempty" mapstructure:"is_empty"`
	IsNotEmpty bool   `json:"is_not_empty,omitempty" yaml:"is_not_empty,omitempty" mapstructure:"is_not_empty"`
}

// SelectCondition matches select properties.
type SelectCondition struct {
	Equals     string `json:"equals,omitempty" yaml:"equals,omitempty" mapstructure:"equals"`
	IsEmpty    bool   `json:"is_empty,omitempty" yaml:"is_empty,omitempty" mapstructure:"is_empty"`
	IsNotEmpty bool   `json:"is_not_empty,omitempty" yaml:"is_not_empty,omitempty" mapstructure:"is_not_empty"`
}

// MultiSelectCondition matches multi_select properties.
type MultiSelectCondition struct {
	Contains   string `json:"contains,omitempty" yaml:"contains,omitempty" mapstructure:"contains"`
	IsEmpty    bool   `json:"is_empty,omitempty" yaml:"is_empty,omitempty" mapstructure:"is_empty"`
	IsNotEmpty bool   `json:"is_not_empty,omitempty" yaml:"is_not_empty,omitempty" mapstructure:"is_not_empty"`
}

// NumberCondition matches number properties. Pointers distinguish
// "compare against zero" from "not set".
type NumberCondition struct {
	Equals      *float64 `json:"equals,omitempty" yaml:"equals,omitempty" mapstructure:"equals"`
	GreaterThan *float64 `json:"greater_than,omitempty" yaml:"greater_than,omitempty" mapstructure:"greater_than"`
	LessThan    *float64 `json:"less_than,omitempty" yaml:"less_than,omitempty" mapstructure:"less_than"`
	IsEmpty     bool     `json:"is_empty,omitempty" yaml:"is_empty,omitempty" mapstructure:"is_empty"`
	IsNotEmpty  bool     `json:"is_not_empty,omitempty" yaml:"is_not_empty,omitempty" mapstructure:"is_not_empty"`
}

// CheckboxCondition matches checkbox properties.
type CheckboxCondition struct {
	Equals *bool `json:"equals,omitempty" yaml:"equals,omitempty" mapstructure:"equals"`
}

// DateCondition matches date properties. Values are YYYY-MM-DD strings.
type DateCondition struct {
	Equals string `json:"equals,omitempty" yaml:"equals,omitempty" mapstructure:"equals"`
	Before string `json:"before,omitempty" yaml:"before,omitempty" mapstructure:"before"`
	After  string `json:"after,omitempty" yaml:"after,omitempty" mapstructure:"after"`
}

// FilterSpec is the serializable form of a Notion database filter. A
// leaf spec names a property and exactly one condition; And/Or compose
// nested specs. The zero value selects every page.
type FilterSpec struct {
	Property string `json:"property,omitempty" yaml:"property,omitempty" mapstructure:"property"`

	Title       *TextCondition        `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"`
	RichText    *TextCondition        `json:"rich_text,omitempty" yaml:"rich_text,omitempty" mapstructure:"rich_text"`
	URL         *TextCondition        `json:"url,omitempty" yaml:"url,omitempty" mapstructure:"url"`
	Select      *SelectCondition      `json:"select,omitempty" yaml:"select,omitempty" mapstructure:"select"`
	MultiSelect *MultiSelectCondition `json:"multi_select,omitempty" yaml:"multi_select,omitempty" mapstructure:"multi_select"`
	Number      *NumberCondition      `json:"number,omitempty" yaml:"number,omitempty" mapstructure:"number"`
	Checkbox    *CheckboxCondition    `json:"checkbox,omitempty" yaml:"checkbox,omitempty" mapstructure:"checkbox"`
	Date        *DateCondition        `json:"date,omitempty" yaml:"date,omitempty" mapstructure:"date"`

	And []FilterSpec `json:"and,omitempty" yaml:"and,omitempty" mapstructure:"and"`
	Or  []FilterSpec `json:"or,omitempty" yaml:"or,omitempty" mapstructure:"or"`
}

// IsZero reports whether the filter carries no condition at all.
func (s FilterSpec) IsZero() bool {
	return s.Property == "" &&
		s.Title == nil && s.RichText == nil && s.URL == nil &&
		s.Select == nil && s.MultiSelect == nil &&
		s.Number == nil && s.Checkbox == nil && s.Date == nil &&
		len(s.And) == 0 && len(s.Or) == 0
}
