package pagination

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Pager is the host-supplied view of a page within a paginated result set.
type Pager interface {
	PageNumber() int
	PageCount() int
}

// Option customises NewContext.
type Option func(*options)

type options struct {
	pagesToShow int
	url         string
	extra       string
}

// WithPagesToShow overrides DefaultPagesToShow. Values below one are passed
// through so Calculate can reject them.
func WithPagesToShow(n int) Option {
	return func(o *options) {
		o.pagesToShow = n
	}
}

// WithURL sets the URL the page links are built from.
func WithURL(url string) Option {
	return func(o *options) {
		o.url = strings.TrimSpace(url)
	}
}

// WithExtra appends an extra query fragment (e.g. "q=term") to every link.
func WithExtra(extra string) Option {
	return func(o *options) {
		o.extra = strings.TrimSpace(extra)
	}
}

// Context is the data handed to the pagination template.
type Context struct {
	Window
	URL         string `json:"bootstrap_pagination_url"`
	NumPages    int    `json:"num_pages"`
	CurrentPage int    `json:"current_page"`
}

// NewContext computes the window for p and the base URL for its links.
func NewContext(p Pager, opts ...Option) (Context, error) {
	if p == nil {
		return Context{}, fmt.Errorf("%w: pager is required", ErrInvalidArgument)
	}
	cfg := options{pagesToShow: DefaultPagesToShow}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	current := p.PageNumber()
	numPages := p.PageCount()

	window, err := Calculate(current, numPages, cfg.pagesToShow)
	if err != nil {
		return Context{}, err
	}

	return Context{
		Window:      window,
		URL:         BaseURL(cfg.url, cfg.extra),
		NumPages:    numPages,
		CurrentPage: current,
	}, nil
}

// Map flattens the context into the snake_case keys the templates use.
// Absent jump targets are nil so template conditionals treat them as false.
func (c Context) Map() map[string]any {
	var back, forward any
	if c.PagesBack != nil {
		back = *c.PagesBack
	}
	if c.PagesForward != nil {
		forward = *c.PagesForward
	}
	var url any
	if c.URL != "" {
		url = c.URL
	}
	return map[string]any{
		"bootstrap_pagination_url": url,
		"num_pages":                c.NumPages,
		"current_page":             c.CurrentPage,
		"first_page":               c.FirstPage,
		"last_page":                c.LastPage,
		"pages_shown":              append([]int(nil), c.PagesShown...),
		"pages_back":               back,
		"pages_forward":            forward,
	}
}

// ParsePagesToShow coerces a template argument into a window size. nil yields
// DefaultPagesToShow; numeric strings and numbers are truncated to int.
func ParsePagesToShow(value any) (int, error) {
	switch v := value.(type) {
	case nil:
		return DefaultPagesToShow, nil
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float32:
		return truncate(float64(v))
	case float64:
		return truncate(v)
	case string:
		trimmed := strings.TrimSpace(v)
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, fmt.Errorf("%w: pages to show %q is not an integer", ErrInvalidArgument, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: pages to show of type %T is not an integer", ErrInvalidArgument, value)
	}
}

func truncate(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: pages to show %v is not a number", ErrInvalidArgument, f)
	}
	return int(f), nil
}
