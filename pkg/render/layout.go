package render

import "strings"

// DefaultLayout is used when a template passes no layout argument.
const DefaultLayout = "vertical,false"

// Layout is the parsed "<layout>[,float]" argument accepted by as_bootstrap.
type Layout struct {
	Name  string
	Float bool
}

// ParseLayout splits the raw argument on commas. The first token is the
// lowercased layout name; Float is set when the second token is "float",
// ignoring case. Further tokens are ignored.
func ParseLayout(raw string) Layout {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultLayout
	}
	params := strings.Split(raw, ",")
	layout := Layout{Name: strings.ToLower(strings.TrimSpace(params[0]))}
	if len(params) > 1 && strings.ToLower(strings.TrimSpace(params[1])) == "float" {
		layout.Float = true
	}
	return layout
}

// Horizontal reports whether labels render beside their controls.
func (l Layout) Horizontal() bool {
	return l.Name == "horizontal"
}

// FormClass returns the Bootstrap 2 class for the surrounding <form>.
func (l Layout) FormClass() string {
	if l.Name == "" {
		return ""
	}
	return "form-" + l.Name
}
