// Package model holds the host-side objects the Bootstrap helpers render:
// bound forms and fields, widget descriptions, flash messages and page
// positions. The types carry JSON tags so fixtures and CLI input can be
// decoded straight into them, and their methods use value receivers so pongo2
// templates can call them on values taken from slices (`{{ field.Label }}`,
// `{% for choice in field.Choices %}`).
//
// Widget kinds form a closed set. Hosts with richer widget hierarchies map
// each of their widget classes onto the nearest WidgetKind and, when the
// derived input type hint is not what they want, set Widget.InputType.
package model
