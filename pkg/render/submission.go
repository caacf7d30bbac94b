package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-bstoolkit/pkg/model"
)

// HiddenField represents a hidden form input emitted alongside the declared
// fields. Use the helpers (CSRFToken, AuthToken, VersionField) to add common
// fields without repeating boilerplate.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// CSRFToken constructs a hidden field carrying the provided token. Callers
// supply the input name to match their backend expectations (for example,
// "_csrf" or "csrf_token").
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// AuthToken constructs a hidden field carrying an authentication token or
// session hint.
func AuthToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// VersionField constructs a hidden field used for optimistic locking or
// version-aware submissions (for example, "if-match" or "version").
func VersionField(name string, version any) HiddenField {
	return Hidden(name, version)
}

// MergeHiddenFields returns a copy of base with the provided fields applied.
// Empty names are ignored; later fields win on name collisions.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	if len(base) == 0 && len(fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(fields))
	for key, value := range base {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			out[trimmed] = value
		}
	}
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		out[name] = field.Value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SortedHiddenFields normalises and sorts hidden fields for deterministic
// rendering. Empty names are dropped.
func SortedHiddenFields(fields map[string]string) []HiddenField {
	if len(fields) == 0 {
		return nil
	}

	clean := make(map[string]string, len(fields))
	for name, value := range fields {
		key := strings.TrimSpace(name)
		if key == "" {
			continue
		}
		clean[key] = value
	}
	if len(clean) == 0 {
		return nil
	}

	names := make([]string, 0, len(clean))
	for name := range clean {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]HiddenField, 0, len(names))
	for _, name := range names {
		result = append(result, HiddenField{
			Name:  name,
			Value: clean[name],
		})
	}
	return result
}

// BoundField converts the hidden value into a form field rendered with a
// hidden widget.
func (h HiddenField) BoundField(prefix string) model.BoundField {
	return model.BoundField{
		Field: model.Field{
			Name:   h.Name,
			Widget: model.Widget{Kind: model.WidgetHiddenInput},
		},
		Prefix: prefix,
		Value:  h.Value,
	}
}

// AppendHidden returns a copy of form with the hidden fields added after its
// declared fields. A hidden field replaces a declared field of the same name.
func AppendHidden(form model.Form, fields ...HiddenField) model.Form {
	values := MergeHiddenFields(nil, fields...)
	if len(values) == 0 {
		return form
	}
	out := form
	out.Fields = make([]model.BoundField, 0, len(form.Fields)+len(values))
	for _, field := range form.Fields {
		if _, replaced := values[field.Field.Name]; replaced {
			continue
		}
		out.Fields = append(out.Fields, field)
	}
	for _, hidden := range SortedHiddenFields(values) {
		out.Fields = append(out.Fields, hidden.BoundField(form.Prefix))
	}
	return out
}
