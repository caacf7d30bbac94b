package model

import (
	"fmt"
	"strings"
)

// Field is the host's declaration of a form input. ReadOnly marks fields the
// host does not allow editing.
type Field struct {
	Name     string `json:"name" yaml:"name"`
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
	HelpText string `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`
	ReadOnly bool   `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	Initial  any    `json:"initial,omitempty" yaml:"initial,omitempty"`
	Widget   Widget `json:"widget" yaml:"widget"`
}

// BoundField pairs a Field with the data and errors of a particular form
// submission. Methods use value receivers so templates can call them on
// values pulled out of slices.
type BoundField struct {
	Field  Field    `json:"field"`
	Prefix string   `json:"prefix,omitempty"`
	Value  any      `json:"value,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// BoundChoice is a Choice annotated with its rendering state.
type BoundChoice struct {
	Choice
	ID       string
	Selected bool
}

// Name returns the HTML name attribute, including the form prefix.
func (b BoundField) Name() string {
	name := strings.TrimSpace(b.Field.Name)
	if prefix := strings.TrimSpace(b.Prefix); prefix != "" && name != "" {
		return prefix + "-" + name
	}
	return name
}

// ID returns the element id used by the control and its label.
func (b BoundField) ID() string {
	name := b.Name()
	if name == "" {
		return ""
	}
	return "id_" + name
}

// Label returns the declared label or one derived from the field name.
func (b BoundField) Label() string {
	if label := strings.TrimSpace(b.Field.Label); label != "" {
		return label
	}
	return PrettyName(b.Field.Name)
}

func (b BoundField) HelpText() string {
	return strings.TrimSpace(b.Field.HelpText)
}

func (b BoundField) Required() bool {
	return b.Field.Required
}

func (b BoundField) Widget() Widget {
	return b.Field.Widget
}

// WidgetKind returns the widget kind as a plain string so templates can
// compare it against literals.
func (b BoundField) WidgetKind() string {
	return string(b.Field.Widget.Kind)
}

// IsHidden reports whether the field renders as a hidden input.
func (b BoundField) IsHidden() bool {
	return b.Field.Widget.Kind == WidgetHiddenInput
}

func (b BoundField) HasErrors() bool {
	return len(b.Errors) > 0
}

// IsDisabled reports whether the field is read-only, or its widget carries
// a readonly or disabled attribute.
func (b BoundField) IsDisabled() bool {
	if b.Field.ReadOnly {
		return true
	}
	attrs := b.Field.Widget.Attrs
	return attrs.Flag("readonly") || attrs.Flag("disabled")
}

func (b BoundField) IsEnabled() bool {
	return !b.IsDisabled()
}

// Data returns the bound value, falling back to the field's initial value.
func (b BoundField) Data() any {
	if b.Value != nil {
		return b.Value
	}
	return b.Field.Initial
}

// StringValue renders the bound value for text-like controls.
func (b BoundField) StringValue() string {
	switch v := b.Data().(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, ",")
	default:
		return fmt.Sprint(v)
	}
}

// Checked reports whether a checkbox control should render checked.
func (b BoundField) Checked() bool {
	switch v := b.Data().(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "on", "1", "yes":
			return true
		}
	}
	return false
}

// Choices returns the widget choices with their selection state resolved
// against the bound value.
func (b BoundField) Choices() []BoundChoice {
	choices := b.Field.Widget.Choices
	if len(choices) == 0 {
		return nil
	}
	selected := selectedValues(b.Data())
	id := b.ID()
	out := make([]BoundChoice, 0, len(choices))
	for idx, choice := range choices {
		_, isSelected := selected[choice.Value]
		out = append(out, BoundChoice{
			Choice:   choice,
			ID:       fmt.Sprintf("%s_%d", id, idx),
			Selected: isSelected,
		})
	}
	return out
}

func selectedValues(value any) map[string]struct{} {
	out := make(map[string]struct{})
	switch v := value.(type) {
	case nil:
	case string:
		out[v] = struct{}{}
	case []string:
		for _, item := range v {
			out[item] = struct{}{}
		}
	case []any:
		for _, item := range v {
			out[fmt.Sprint(item)] = struct{}{}
		}
	default:
		out[fmt.Sprint(v)] = struct{}{}
	}
	return out
}

// Form is a bound form: its fields plus errors that do not belong to any
// single field.
type Form struct {
	Name   string       `json:"name,omitempty"`
	Action string       `json:"action,omitempty"`
	Method string       `json:"method,omitempty"`
	Prefix string       `json:"prefix,omitempty"`
	Fields []BoundField `json:"fields"`
	Errors []string     `json:"errors,omitempty"`
}

// Bind builds a Form from field declarations, submitted values and field
// errors keyed by field name.
func Bind(prefix string, fields []Field, values map[string]any, errs map[string][]string) Form {
	form := Form{
		Prefix: prefix,
		Fields: make([]BoundField, 0, len(fields)),
	}
	for _, field := range fields {
		bound := BoundField{Field: field, Prefix: prefix}
		if values != nil {
			bound.Value = values[field.Name]
		}
		if messages := errs[field.Name]; len(messages) > 0 {
			bound.Errors = append([]string(nil), messages...)
		}
		form.Fields = append(form.Fields, bound)
	}
	return form
}

// Field looks up a bound field by its declared name.
func (f Form) Field(name string) (BoundField, bool) {
	for _, field := range f.Fields {
		if field.Field.Name == name {
			return field, true
		}
	}
	return BoundField{}, false
}

func (f Form) VisibleFields() []BoundField {
	return f.filter(false)
}

func (f Form) HiddenFields() []BoundField {
	return f.filter(true)
}

func (f Form) filter(hidden bool) []BoundField {
	out := make([]BoundField, 0, len(f.Fields))
	for _, field := range f.Fields {
		if field.IsHidden() == hidden {
			out = append(out, field)
		}
	}
	return out
}

// NonFieldErrors returns form-level errors plus the errors of hidden fields,
// which have nowhere else to be displayed.
func (f Form) NonFieldErrors() []string {
	out := append([]string(nil), f.Errors...)
	for _, field := range f.HiddenFields() {
		for _, message := range field.Errors {
			out = append(out, fmt.Sprintf("(Hidden field %s) %s", field.Field.Name, message))
		}
	}
	return out
}

func (f Form) HasErrors() bool {
	if len(f.Errors) > 0 {
		return true
	}
	for _, field := range f.Fields {
		if field.HasErrors() {
			return true
		}
	}
	return false
}
