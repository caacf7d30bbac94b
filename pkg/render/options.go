package render

import "github.com/goliatone/go-bstoolkit/pkg/model"

// RenderOptions describe per-request data applied to a form before it is
// handed to a template, without mutating the caller's form.
type RenderOptions struct {
	// Values replaces bound values keyed by field name.
	Values map[string]any
	// Errors is a server error payload; see MapErrorPayload for accepted keys.
	Errors map[string][]string
	// Hidden inputs appended after the declared fields.
	Hidden []HiddenField
}

// Apply returns a copy of form with the options applied.
func (o RenderOptions) Apply(form model.Form) model.Form {
	out := form
	if len(o.Values) > 0 {
		out.Fields = make([]model.BoundField, len(form.Fields))
		for idx, field := range form.Fields {
			if value, ok := o.Values[field.Field.Name]; ok {
				field.Value = value
			}
			out.Fields[idx] = field
		}
	}
	if len(o.Errors) > 0 {
		out = ApplyErrors(out, MapErrorPayload(out, o.Errors))
	}
	if len(o.Hidden) > 0 {
		out = AppendHidden(out, o.Hidden...)
	}
	return out
}
