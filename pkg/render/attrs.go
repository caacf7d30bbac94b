package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-bstoolkit/pkg/model"
)

// Attr is a single HTML attribute. A slice of Attr keeps its order when
// rendered; maps are rendered with sorted keys.
type Attr struct {
	Name  string
	Value string
}

// HTMLAttrs renders attributes as name="value" pairs, each followed by a
// space. Values are escaped the same way the template escape filter does it.
// Unsupported inputs yield an empty string.
func HTMLAttrs(attrs any) string {
	pairs := collectAttrs(attrs)
	if len(pairs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, pair := range pairs {
		name := strings.TrimSpace(pair.Name)
		if name == "" {
			continue
		}
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(Escape(pair.Value))
		b.WriteString(`" `)
	}
	return b.String()
}

// Escape applies pongo2's escape filter to s.
func Escape(s string) string {
	out, err := pongo2.ApplyFilter("escape", pongo2.AsValue(s), nil)
	if err != nil {
		return s
	}
	return out.String()
}

func collectAttrs(attrs any) []Attr {
	switch v := attrs.(type) {
	case nil:
		return nil
	case []Attr:
		return v
	case model.Attrs:
		return sortedAttrs(v)
	case map[string]string:
		return sortedAttrs(v)
	case map[string]any:
		converted := make(map[string]string, len(v))
		for key, value := range v {
			converted[key] = fmt.Sprint(value)
		}
		return sortedAttrs(converted)
	default:
		return nil
	}
}

func sortedAttrs(attrs map[string]string) []Attr {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]Attr, 0, len(keys))
	for _, key := range keys {
		out = append(out, Attr{Name: key, Value: attrs[key]})
	}
	return out
}
