package bootstrap

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-bstoolkit/pkg/model"
	"github.com/goliatone/go-bstoolkit/pkg/pagination"
	"github.com/goliatone/go-bstoolkit/pkg/render"
)

// Filter names registered with pongo2.
const (
	FilterAsBootstrap = "as_bootstrap"
	FilterIsDisabled  = "is_disabled"
	FilterIsEnabled   = "is_enabled"
	FilterInputType   = "bootstrap_input_type"
	FilterPagination  = "pagination"
	FilterSplit       = "split"
	FilterHTMLAttrs   = "html_attrs"
	FilterSanitize    = "bootstrap_sanitize"
)

var (
	active       atomic.Pointer[Renderer]
	registerOnce sync.Once
)

// Install makes r the renderer behind the process-wide pongo2 filters and
// tags. The most recent call wins.
func (r *Renderer) Install() *Renderer {
	registerPongo2()
	active.Store(r)
	r.logger.Debug().Msg("bootstrap renderer installed")
	return r
}

// Installed returns the renderer bound to the pongo2 filters, or nil.
func Installed() *Renderer {
	return active.Load()
}

func registerPongo2() {
	registerOnce.Do(func() {
		filters := map[string]pongo2.FilterFunction{
			FilterAsBootstrap: filterAsBootstrap,
			FilterIsDisabled:  filterIsDisabled,
			FilterIsEnabled:   filterIsEnabled,
			FilterInputType:   filterInputType,
			FilterPagination:  filterPagination,
			FilterSplit:       filterSplit,
			FilterHTMLAttrs:   filterHTMLAttrs,
			FilterSanitize:    filterSanitize,
		}
		for name, fn := range filters {
			if pongo2.FilterExists(name) {
				_ = pongo2.ReplaceFilter(name, fn)
				continue
			}
			_ = pongo2.RegisterFilter(name, fn)
		}
		registerTags()
	})
}

func installed(sender string) (*Renderer, *pongo2.Error) {
	r := active.Load()
	if r == nil {
		return nil, &pongo2.Error{Sender: "filter:" + sender, OrigError: ErrNotInstalled}
	}
	return r, nil
}

func filterError(sender string, err error) *pongo2.Error {
	return &pongo2.Error{Sender: "filter:" + sender, OrigError: err}
}

func filterAsBootstrap(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	r, perr := installed(FilterAsBootstrap)
	if perr != nil {
		return nil, perr
	}
	out, err := r.AsBootstrap(in.Interface(), param.String())
	if err != nil {
		return nil, filterError(FilterAsBootstrap, err)
	}
	return pongo2.AsSafeValue(out), nil
}

func filterIsDisabled(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	field, ok := asField(in.Interface())
	if !ok {
		return nil, filterError(FilterIsDisabled, fmt.Errorf("%w: expected a field, got %T", ErrUnsupportedValue, in.Interface()))
	}
	return pongo2.AsValue(field.IsDisabled()), nil
}

func filterIsEnabled(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	field, ok := asField(in.Interface())
	if !ok {
		return nil, filterError(FilterIsEnabled, fmt.Errorf("%w: expected a field, got %T", ErrUnsupportedValue, in.Interface()))
	}
	return pongo2.AsValue(field.IsEnabled()), nil
}

func filterInputType(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	r, perr := installed(FilterInputType)
	if perr != nil {
		return nil, perr
	}
	hint, err := r.InputType(in.Interface())
	if err != nil {
		return nil, filterError(FilterInputType, err)
	}
	return pongo2.AsValue(hint), nil
}

func filterPagination(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	r, perr := installed(FilterPagination)
	if perr != nil {
		return nil, perr
	}
	pager, ok := in.Interface().(pagination.Pager)
	if !ok {
		return nil, filterError(FilterPagination, fmt.Errorf("%w: expected a page, got %T", ErrUnsupportedValue, in.Interface()))
	}
	var opts []pagination.Option
	if param != nil && !param.IsNil() {
		n, err := pagination.ParsePagesToShow(param.Interface())
		if err != nil {
			return nil, filterError(FilterPagination, err)
		}
		opts = append(opts, pagination.WithPagesToShow(n))
	}
	out, err := r.RenderPagination(pager, opts...)
	if err != nil {
		return nil, filterError(FilterPagination, err)
	}
	return pongo2.AsSafeValue(out), nil
}

func filterSplit(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(render.Split(in.String(), param.String())), nil
}

func filterHTMLAttrs(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue(render.HTMLAttrs(in.Interface())), nil
}

func filterSanitize(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue(render.SanitizeHelpText(in.String())), nil
}

// messagesFrom accepts the shapes hosts typically store flash messages in.
func messagesFrom(value any) ([]model.Message, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []model.Message:
		return v, nil
	case []*model.Message:
		out := make([]model.Message, 0, len(v))
		for _, message := range v {
			if message != nil {
				out = append(out, *message)
			}
		}
		return out, nil
	case []any:
		out := make([]model.Message, 0, len(v))
		for _, item := range v {
			switch message := item.(type) {
			case model.Message:
				out = append(out, message)
			case *model.Message:
				if message != nil {
					out = append(out, *message)
				}
			default:
				return nil, fmt.Errorf("%w: expected a message, got %T", ErrUnsupportedValue, item)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: expected messages, got %T", ErrUnsupportedValue, value)
	}
}
