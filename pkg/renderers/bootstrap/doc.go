// Package bootstrap renders forms, fields, pagination and flash messages in
// Bootstrap 2 markup through pongo2 templates.
//
// A Renderer owns a template engine seeded with the bootstrap functions
// (bootstrap_stylesheet_url, bootstrap_stylesheet_tag,
// bootstrap_javascript_url, bootstrap_javascript_tag, active_url). Filters
// (as_bootstrap, is_disabled, is_enabled, bootstrap_input_type, pagination,
// split, html_attrs) and tags (bootstrap_form, bootstrap_field,
// bootstrap_pagination, bootstrap_messages) live in pongo2's process-wide
// registries. Filters that need configuration use the renderer passed to
// Install most recently; tags use the renderer whose engine executes the
// template and fall back to the installed one.
//
//	r, err := bootstrap.New(bootstrap.WithConfig(cfg))
//	if err != nil {
//		return err
//	}
//	r.Install()
//	html, err := r.Templates().RenderString(`{% bootstrap_form form layout="horizontal" %}`, ctx)
package bootstrap
