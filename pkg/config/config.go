package config

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultBaseURL is the Bootstrap asset root used when nothing else is set.
const DefaultBaseURL = "http://twitter.github.io/bootstrap/assets/"

// ErrInvalidConfig reports configuration values the renderer cannot use.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config replaces process-wide settings with an explicit value handed to the
// renderer. Empty derived URLs are filled by Resolve from their base:
// JSBaseURL and CSSBaseURL from BaseURL, CSSURL from CSSBaseURL. JSURL, when
// set, replaces every script URL.
type Config struct {
	BaseURL    string `json:"baseURL,omitempty" yaml:"baseURL,omitempty"`
	JSBaseURL  string `json:"jsBaseURL,omitempty" yaml:"jsBaseURL,omitempty"`
	JSURL      string `json:"jsURL,omitempty" yaml:"jsURL,omitempty"`
	CSSBaseURL string `json:"cssBaseURL,omitempty" yaml:"cssBaseURL,omitempty"`
	CSSURL     string `json:"cssURL,omitempty" yaml:"cssURL,omitempty"`

	// StringIfInvalid is emitted when as_bootstrap receives something that is
	// neither a form nor a field.
	StringIfInvalid string `json:"stringIfInvalid,omitempty" yaml:"stringIfInvalid,omitempty"`
	// PagesToShow is the pagination window size used when a template does not
	// pass one.
	PagesToShow int `json:"pagesToShow,omitempty" yaml:"pagesToShow,omitempty"`
	// DefaultLayout is used by bootstrap_form/bootstrap_field without a layout.
	DefaultLayout string `json:"defaultLayout,omitempty" yaml:"defaultLayout,omitempty"`
}

// Option mutates a Config during New.
type Option func(*Config)

// Defaults returns the unresolved default configuration.
func Defaults() Config {
	return Config{
		BaseURL:       DefaultBaseURL,
		PagesToShow:   11,
		DefaultLayout: "vertical",
	}
}

// New applies options on top of Defaults, then resolves and validates.
func New(options ...Option) (Config, error) {
	cfg := Defaults()
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	cfg = cfg.Resolve()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve fills derived URLs from their bases.
func (c Config) Resolve() Config {
	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.JSBaseURL == "" {
		c.JSBaseURL = c.BaseURL + "js/"
	}
	if c.CSSBaseURL == "" {
		c.CSSBaseURL = c.BaseURL + "css/"
	}
	if c.CSSURL == "" {
		c.CSSURL = c.CSSBaseURL + "bootstrap.css"
	}
	if c.PagesToShow == 0 {
		c.PagesToShow = 11
	}
	if strings.TrimSpace(c.DefaultLayout) == "" {
		c.DefaultLayout = "vertical"
	}
	return c
}

// Validate rejects values the helpers cannot work with.
func (c Config) Validate() error {
	if c.PagesToShow < 0 {
		return fmt.Errorf("%w: pagesToShow must be positive, got %d", ErrInvalidConfig, c.PagesToShow)
	}
	return nil
}

// WithBaseURL sets the asset root the other URLs derive from.
func WithBaseURL(url string) Option {
	return func(c *Config) {
		c.BaseURL = strings.TrimSpace(url)
	}
}

func WithJSBaseURL(url string) Option {
	return func(c *Config) {
		c.JSBaseURL = strings.TrimSpace(url)
	}
}

// WithJSURL pins a single script URL, bypassing per-plugin file names.
func WithJSURL(url string) Option {
	return func(c *Config) {
		c.JSURL = strings.TrimSpace(url)
	}
}

func WithCSSBaseURL(url string) Option {
	return func(c *Config) {
		c.CSSBaseURL = strings.TrimSpace(url)
	}
}

func WithCSSURL(url string) Option {
	return func(c *Config) {
		c.CSSURL = strings.TrimSpace(url)
	}
}

func WithStringIfInvalid(value string) Option {
	return func(c *Config) {
		c.StringIfInvalid = value
	}
}

func WithPagesToShow(n int) Option {
	return func(c *Config) {
		c.PagesToShow = n
	}
}

func WithDefaultLayout(layout string) Option {
	return func(c *Config) {
		c.DefaultLayout = strings.ToLower(strings.TrimSpace(layout))
	}
}

// WithOverrides copies every non-zero field of other onto the config.
func WithOverrides(other Config) Option {
	return func(c *Config) {
		if other.BaseURL != "" {
			c.BaseURL = other.BaseURL
		}
		if other.JSBaseURL != "" {
			c.JSBaseURL = other.JSBaseURL
		}
		if other.JSURL != "" {
			c.JSURL = other.JSURL
		}
		if other.CSSBaseURL != "" {
			c.CSSBaseURL = other.CSSBaseURL
		}
		if other.CSSURL != "" {
			c.CSSURL = other.CSSURL
		}
		if other.StringIfInvalid != "" {
			c.StringIfInvalid = other.StringIfInvalid
		}
		if other.PagesToShow != 0 {
			c.PagesToShow = other.PagesToShow
		}
		if other.DefaultLayout != "" {
			c.DefaultLayout = other.DefaultLayout
		}
	}
}
