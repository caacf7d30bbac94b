package bootstrap

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// Template names inside TemplatesFS.
const (
	FormTemplate       = "form.tmpl"
	FieldTemplate      = "field.tmpl"
	PaginationTemplate = "pagination.tmpl"
	MessagesTemplate   = "messages.tmpl"
)

// TemplatesFS exposes the embedded template bundle rooted at its template
// directory, so names resolve as "form.tmpl", "field.tmpl" and so on.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
