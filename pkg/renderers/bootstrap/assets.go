package bootstrap

import "strings"

// StylesheetURL returns the configured Bootstrap CSS URL.
func (r *Renderer) StylesheetURL() string {
	return r.cfg.CSSURL
}

// StylesheetTag returns a <link> element for StylesheetURL.
func (r *Renderer) StylesheetTag() string {
	return `<link rel="stylesheet" href="` + r.StylesheetURL() + `">`
}

// JavaScriptURL returns the configured JS URL when set. Otherwise a named
// plugin resolves to "bootstrap-<name>.js" and an empty name to the minified
// bundle, both under JSBaseURL.
func (r *Renderer) JavaScriptURL(name string) string {
	if r.cfg.JSURL != "" {
		return r.cfg.JSURL
	}
	if name = strings.TrimSpace(name); name != "" {
		return r.cfg.JSBaseURL + "bootstrap-" + name + ".js"
	}
	return r.cfg.JSBaseURL + "bootstrap.min.js"
}

// JavaScriptTag returns a <script> element for JavaScriptURL(name), or ""
// when there is no URL.
func (r *Renderer) JavaScriptTag(name string) string {
	url := r.JavaScriptURL(name)
	if url == "" {
		return ""
	}
	return `<script src="` + url + `"></script>`
}
