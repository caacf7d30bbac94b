package bootstrap

import (
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-bstoolkit/pkg/config"
	rendertemplate "github.com/goliatone/go-bstoolkit/pkg/render/template"
	"github.com/goliatone/go-bstoolkit/pkg/widgets"
)

// Option customises New.
type Option func(*options)

type options struct {
	config           *config.Config
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	widgets          *widgets.Registry
	logger           *zerolog.Logger
}

// WithConfig replaces the default configuration. The value is resolved and
// validated by New.
func WithConfig(cfg config.Config) Option {
	return func(o *options) {
		o.config = &cfg
	}
}

// WithTemplatesFS supplies an alternate template bundle. It must provide
// the same template names as TemplatesFS.
func WithTemplatesFS(files fs.FS) Option {
	return func(o *options) {
		o.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(o *options) {
		if path == "" {
			return
		}
		o.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a template engine. New seeds it with the
// bootstrap functions; it must be able to load the bundle's template names.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(o *options) {
		if renderer != nil {
			o.templateRenderer = renderer
		}
	}
}

// WithWidgetRegistry overrides the input type registry used by
// bootstrap_input_type and the field template.
func WithWidgetRegistry(registry *widgets.Registry) Option {
	return func(o *options) {
		if registry != nil {
			o.widgets = registry
		}
	}
}

// WithLogger sets the logger used for template and input diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger
	}
}
