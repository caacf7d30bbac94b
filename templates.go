package bstoolkit

import (
	"io/fs"

	"github.com/goliatone/go-bstoolkit/pkg/renderers/bootstrap"
)

// EmbeddedTemplates exposes the built-in Bootstrap templates so callers can
// copy or extend them without importing the renderer package directly.
//
// Overriding a single template:
//
//	r, err := bstoolkit.New(bootstrap.WithTemplatesDir("./templates/bootstrap"))
//
// where the directory holds copies of every file in EmbeddedTemplates.
func EmbeddedTemplates() fs.FS {
	return bootstrap.TemplatesFS()
}
