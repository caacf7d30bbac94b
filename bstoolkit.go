package bstoolkit

import (
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-bstoolkit/pkg/config"
	"github.com/goliatone/go-bstoolkit/pkg/pagination"
	"github.com/goliatone/go-bstoolkit/pkg/render"
	"github.com/goliatone/go-bstoolkit/pkg/renderers/bootstrap"
)

// Renderer aliases the Bootstrap renderer so callers can stay on the root
// package for the common path.
type Renderer = bootstrap.Renderer

// Option configures New.
type Option = bootstrap.Option

// Config is the explicit asset and rendering configuration.
type Config = config.Config

// Window is the computed set of page links around the current page.
type Window = pagination.Window

// RenderOptions describes per-request overrides used to prefill values or
// surface server-side validation errors before rendering a form.
type RenderOptions = render.RenderOptions

// New constructs a Bootstrap renderer without touching the process-wide pongo2
// filters.
func New(options ...Option) (*Renderer, error) {
	return bootstrap.New(options...)
}

// Install constructs a renderer and binds it to the pongo2 filters and tags
// so templates parsed from any pongo2 set can use them.
func Install(options ...Option) (*Renderer, error) {
	r, err := bootstrap.New(options...)
	if err != nil {
		return nil, err
	}
	return r.Install(), nil
}

// NewFromTheme resolves theme/variant through a go-theme selector and builds a
// renderer whose stylesheet and script URLs come from the theme assets.
func NewFromTheme(selector theme.ThemeSelector, name, variant string, options ...Option) (*Renderer, error) {
	cfg, err := config.FromTheme(selector, name, variant)
	if err != nil {
		return nil, fmt.Errorf("bstoolkit: %w", err)
	}
	opts := append([]Option{bootstrap.WithConfig(cfg)}, options...)
	return bootstrap.New(opts...)
}

// Paginate computes the pagination window for currentPage out of numPages.
func Paginate(currentPage, numPages, pagesToShow int) (Window, error) {
	return pagination.Calculate(currentPage, numPages, pagesToShow)
}
