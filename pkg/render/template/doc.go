// Package template defines the template engine seam the Bootstrap renderer
// depends on. The gotemplate subpackage provides the pongo2 implementation.
package template
