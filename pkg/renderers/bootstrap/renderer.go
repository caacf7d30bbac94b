package bootstrap

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-bstoolkit/pkg/config"
	"github.com/goliatone/go-bstoolkit/pkg/model"
	"github.com/goliatone/go-bstoolkit/pkg/pagination"
	"github.com/goliatone/go-bstoolkit/pkg/render"
	rendertemplate "github.com/goliatone/go-bstoolkit/pkg/render/template"
	gotemplate "github.com/goliatone/go-bstoolkit/pkg/render/template/gotemplate"
	"github.com/goliatone/go-bstoolkit/pkg/widgets"
)

// ContextKey is the template variable holding the renderer that executes a
// template. Tags prefer it over the installed renderer.
const ContextKey = "bootstrap"

// Renderer renders forms, fields, pagination and messages with the Bootstrap
// template bundle. It is safe for concurrent use once constructed.
type Renderer struct {
	cfg       config.Config
	templates rendertemplate.TemplateRenderer
	widgets   *widgets.Registry
	logger    zerolog.Logger
}

// New constructs a renderer. Without WithTemplateRenderer a pongo2 engine is
// created over the embedded bundle (or WithTemplatesFS).
func New(opts ...Option) (*Renderer, error) {
	o := options{templateFS: TemplatesFS()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}

	cfg, err := config.New()
	if o.config != nil {
		cfg = o.config.Resolve()
		err = cfg.Validate()
	}
	if err != nil {
		return nil, fmt.Errorf("bootstrap renderer: %w", err)
	}

	r := &Renderer{
		cfg:     cfg,
		widgets: o.widgets,
		logger:  zerolog.Nop(),
	}
	if o.logger != nil {
		r.logger = *o.logger
	}
	if r.widgets == nil {
		r.widgets = widgets.NewRegistry()
	}

	engine := o.templateRenderer
	if engine == nil {
		if o.templateFS == nil {
			o.templateFS = TemplatesFS()
		}
		built, err := gotemplate.New(
			gotemplate.WithFS(o.templateFS),
			gotemplate.WithExtension(gotemplate.DefaultExtension),
		)
		if err != nil {
			return nil, fmt.Errorf("bootstrap renderer: configure template renderer: %w", err)
		}
		engine = built
	}

	// Filters referenced by the bundle must exist before the first parse.
	registerPongo2()

	globals := r.Functions()
	globals[ContextKey] = r
	if err := engine.GlobalContext(globals); err != nil {
		return nil, fmt.Errorf("bootstrap renderer: seed template globals: %w", err)
	}
	r.templates = engine

	r.logger.Debug().
		Str("css_url", cfg.CSSURL).
		Str("js_base_url", cfg.JSBaseURL).
		Int("pages_to_show", cfg.PagesToShow).
		Msg("bootstrap renderer configured")
	return r, nil
}

// Config returns the resolved configuration.
func (r *Renderer) Config() config.Config {
	return r.cfg
}

// Templates returns the engine the renderer executes its bundle with. Host
// templates rendered through it can call the bootstrap functions.
func (r *Renderer) Templates() rendertemplate.TemplateRenderer {
	return r.templates
}

// AsBootstrap renders a form or a bound field using the parsed layout
// argument. Other values render as Config.StringIfInvalid.
func (r *Renderer) AsBootstrap(formOrField any, layout string) (string, error) {
	parsed := render.ParseLayout(layout)
	ctx := map[string]any{
		"layout": parsed.Name,
		"float":  parsed.Float,
	}
	if form, ok := asForm(formOrField); ok {
		ctx["form"] = form
		return r.execute(FormTemplate, ctx)
	}
	if field, ok := asField(formOrField); ok {
		ctx["field"] = field
		return r.execute(FieldTemplate, ctx)
	}
	r.logger.Debug().
		Str("type", fmt.Sprintf("%T", formOrField)).
		Msg("as_bootstrap received neither a form nor a field")
	return r.cfg.StringIfInvalid, nil
}

// RenderForm renders the form template with extra merged into its context.
// A string "layout" entry is parsed like the as_bootstrap argument.
func (r *Renderer) RenderForm(form any, extra map[string]any) (string, error) {
	value, ok := asForm(form)
	if !ok {
		return "", fmt.Errorf("%w: expected a form, got %T", ErrUnsupportedValue, form)
	}
	ctx := r.inclusionContext(extra)
	ctx["form"] = value
	return r.execute(FormTemplate, ctx)
}

// RenderField renders the field template with extra merged into its context.
func (r *Renderer) RenderField(field any, extra map[string]any) (string, error) {
	value, ok := asField(field)
	if !ok {
		return "", fmt.Errorf("%w: expected a field, got %T", ErrUnsupportedValue, field)
	}
	ctx := r.inclusionContext(extra)
	ctx["field"] = value
	return r.execute(FieldTemplate, ctx)
}

// RenderPagination renders page links for p. The configured PagesToShow
// applies unless an option overrides it.
func (r *Renderer) RenderPagination(p pagination.Pager, opts ...pagination.Option) (string, error) {
	all := append([]pagination.Option{pagination.WithPagesToShow(r.cfg.PagesToShow)}, opts...)
	pctx, err := pagination.NewContext(p, all...)
	if err != nil {
		return "", fmt.Errorf("bootstrap renderer: pagination: %w", err)
	}
	return r.execute(PaginationTemplate, pctx.Map())
}

// RenderMessages renders flash messages as dismissable alerts.
func (r *Renderer) RenderMessages(messages []model.Message) (string, error) {
	return r.execute(MessagesTemplate, map[string]any{"messages": messages})
}

// InputType resolves the input type hint for a bound field.
func (r *Renderer) InputType(field any) (string, error) {
	value, ok := asField(field)
	if !ok {
		return "", fmt.Errorf("%w: expected a field, got %T", ErrUnsupportedValue, field)
	}
	return r.widgets.InputType(value), nil
}

func (r *Renderer) inclusionContext(extra map[string]any) map[string]any {
	ctx := make(map[string]any, len(extra)+2)
	for key, value := range extra {
		ctx[key] = value
	}
	raw, ok := ctx["layout"].(string)
	if !ok {
		raw = r.cfg.DefaultLayout
	}
	layout := render.ParseLayout(raw)
	ctx["layout"] = layout.Name
	if _, set := ctx["float"]; !set {
		ctx["float"] = layout.Float
	}
	return ctx
}

func (r *Renderer) execute(name string, data map[string]any) (string, error) {
	out, err := r.templates.RenderTemplate(name, data)
	if err != nil {
		r.logger.Debug().Err(err).Str("template", name).Msg("template execution failed")
		return "", fmt.Errorf("bootstrap renderer: render %s: %w", strings.TrimSuffix(name, ".tmpl"), err)
	}
	return out, nil
}

func asForm(value any) (model.Form, bool) {
	switch v := value.(type) {
	case model.Form:
		return v, true
	case *model.Form:
		if v != nil {
			return *v, true
		}
	}
	return model.Form{}, false
}

func asField(value any) (model.BoundField, bool) {
	switch v := value.(type) {
	case model.BoundField:
		return v, true
	case *model.BoundField:
		if v != nil {
			return *v, true
		}
	}
	return model.BoundField{}, false
}
