package model

import "strings"

// WidgetKind enumerates the input controls a host form field can use. The set
// is closed; hosts map their own widget classes onto one of these kinds.
type WidgetKind string

const (
	WidgetTextInput              WidgetKind = "text"
	WidgetEmailInput             WidgetKind = "email"
	WidgetURLInput               WidgetKind = "url"
	WidgetNumberInput            WidgetKind = "number"
	WidgetDateInput              WidgetKind = "date"
	WidgetDateTimeInput          WidgetKind = "datetime"
	WidgetTimeInput              WidgetKind = "time"
	WidgetPasswordInput          WidgetKind = "password"
	WidgetHiddenInput            WidgetKind = "hidden"
	WidgetFileInput              WidgetKind = "file"
	WidgetTextarea               WidgetKind = "textarea"
	WidgetCheckboxInput          WidgetKind = "checkbox"
	WidgetSelect                 WidgetKind = "select"
	WidgetSelectMultiple         WidgetKind = "select-multiple"
	WidgetCheckboxSelectMultiple WidgetKind = "checkbox-select-multiple"
	WidgetRadioSelect            WidgetKind = "radio-select"
)

// IsTextInput reports whether the kind belongs to the single-line text input
// family (plain text plus its typed variants).
func (k WidgetKind) IsTextInput() bool {
	switch k {
	case WidgetTextInput, WidgetEmailInput, WidgetURLInput, WidgetNumberInput,
		WidgetDateInput, WidgetDateTimeInput, WidgetTimeInput:
		return true
	default:
		return false
	}
}

// HTMLType returns the type attribute used when the kind renders as an
// <input> element, or "" for kinds rendered with other elements.
func (k WidgetKind) HTMLType() string {
	switch k {
	case WidgetTextInput, WidgetEmailInput, WidgetURLInput, WidgetNumberInput,
		WidgetDateInput, WidgetTimeInput, WidgetPasswordInput, WidgetHiddenInput,
		WidgetFileInput, WidgetCheckboxInput:
		return string(k)
	case WidgetDateTimeInput:
		return "datetime-local"
	case "":
		return string(WidgetTextInput)
	default:
		return ""
	}
}

// Attrs holds the HTML attributes a widget renders with.
type Attrs map[string]string

// Flag reports whether a boolean attribute is switched on. Present attributes
// count as set unless their value is "false" or "0".
func (a Attrs) Flag(name string) bool {
	if a == nil {
		return false
	}
	value, ok := a[name]
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "false", "0":
		return false
	default:
		return true
	}
}

// Choice is a selectable option for select, radio and multi-checkbox widgets.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Widget describes how a field is input. InputType, when set, overrides the
// input type hint derived from Kind.
type Widget struct {
	Kind      WidgetKind `json:"kind" yaml:"kind"`
	Attrs     Attrs      `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	InputType string     `json:"inputType,omitempty" yaml:"inputType,omitempty"`
	Choices   []Choice   `json:"choices,omitempty" yaml:"choices,omitempty"`
}
