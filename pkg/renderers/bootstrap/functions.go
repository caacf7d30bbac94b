package bootstrap

import (
	"net/http"
	"net/url"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-bstoolkit/pkg/render"
)

// Function names exposed to templates rendered by the renderer's engine.
const (
	FuncStylesheetURL = "bootstrap_stylesheet_url"
	FuncStylesheetTag = "bootstrap_stylesheet_tag"
	FuncJavaScriptURL = "bootstrap_javascript_url"
	FuncJavaScriptTag = "bootstrap_javascript_tag"
	FuncActiveURL     = "active_url"
)

// Functions returns the template functions bound to r. Tag helpers return
// safe values so autoescaping leaves the markup intact.
func (r *Renderer) Functions() map[string]any {
	return map[string]any{
		FuncStylesheetURL: func() string {
			return r.StylesheetURL()
		},
		FuncStylesheetTag: func() *pongo2.Value {
			return pongo2.AsSafeValue(r.StylesheetTag())
		},
		FuncJavaScriptURL: func(args ...*pongo2.Value) string {
			return r.JavaScriptURL(optionalString(args))
		},
		FuncJavaScriptTag: func(args ...*pongo2.Value) *pongo2.Value {
			return pongo2.AsSafeValue(r.JavaScriptTag(optionalString(args)))
		},
		FuncActiveURL: activeURL,
	}
}

// activeURL compares url with the request path. request may be a path
// string, an *http.Request or a *url.URL.
func activeURL(request, target *pongo2.Value, output ...*pongo2.Value) string {
	return render.ActiveURL(requestPath(request), target.String(), optionalString(output))
}

func requestPath(request *pongo2.Value) string {
	if request == nil || request.IsNil() {
		return ""
	}
	switch v := request.Interface().(type) {
	case *http.Request:
		if v != nil && v.URL != nil {
			return v.URL.Path
		}
		return ""
	case *url.URL:
		if v != nil {
			return v.Path
		}
		return ""
	default:
		return request.String()
	}
}

func optionalString(args []*pongo2.Value) string {
	if len(args) == 0 || args[0] == nil || args[0].IsNil() {
		return ""
	}
	return args[0].String()
}
