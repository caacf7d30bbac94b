package config_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-bstoolkit/pkg/config"
)

func TestNew_DefaultsResolveDerivedURLs(t *testing.T) {
	cfg, err := config.New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	want := config.Config{
		BaseURL:       "http://twitter.github.io/bootstrap/assets/",
		JSBaseURL:     "http://twitter.github.io/bootstrap/assets/js/",
		CSSBaseURL:    "http://twitter.github.io/bootstrap/assets/css/",
		CSSURL:        "http://twitter.github.io/bootstrap/assets/css/bootstrap.css",
		PagesToShow:   11,
		DefaultLayout: "vertical",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_BaseURLFeedsDerivedURLs(t *testing.T) {
	cfg, err := config.New(
		config.WithBaseURL("/static/bootstrap/"),
		config.WithJSBaseURL("/static/js/"),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cfg.CSSURL != "/static/bootstrap/css/bootstrap.css" {
		t.Fatalf("css url not derived from base: %q", cfg.CSSURL)
	}
	if cfg.JSBaseURL != "/static/js/" {
		t.Fatalf("explicit js base should win: %q", cfg.JSBaseURL)
	}
}

func TestNew_RejectsNegativePagesToShow(t *testing.T) {
	_, err := config.New(config.WithPagesToShow(-3))
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestParse_YAMLAndJSON(t *testing.T) {
	yamlDoc := []byte(`
baseURL: /assets/
jsURL: /assets/js/bootstrap.bundle.js
stringIfInvalid: "INVALID"
pagesToShow: 7
defaultLayout: horizontal
`)
	cfg, err := config.Parse(yamlDoc, "bootstrap.yaml")
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	if cfg.CSSURL != "/assets/css/bootstrap.css" || cfg.JSURL != "/assets/js/bootstrap.bundle.js" {
		t.Fatalf("yaml urls not applied: %+v", cfg)
	}
	if cfg.StringIfInvalid != "INVALID" || cfg.PagesToShow != 7 || cfg.DefaultLayout != "horizontal" {
		t.Fatalf("yaml settings not applied: %+v", cfg)
	}

	jsonDoc := []byte(`{"cssURL": "https://cdn.example.com/bootstrap.min.css"}`)
	cfg, err = config.Parse(jsonDoc, "bootstrap.json")
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}
	if cfg.CSSURL != "https://cdn.example.com/bootstrap.min.css" || cfg.BaseURL != config.DefaultBaseURL {
		t.Fatalf("json settings not applied: %+v", cfg)
	}

	if _, err := config.Parse([]byte("  "), "empty.yaml"); err == nil {
		t.Fatalf("expected error for empty document")
	}
	if _, err := config.Parse([]byte("baseURL: [unterminated"), "broken.yaml"); err == nil {
		t.Fatalf("expected error for malformed document")
	}
}

func TestLoad_FromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"conf/bootstrap.yaml": &fstest.MapFile{Data: []byte("cssBaseURL: /css/\n")},
	}
	cfg, err := config.Load(fsys, "conf/bootstrap.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.CSSURL != "/css/bootstrap.css" {
		t.Fatalf("css url: %q", cfg.CSSURL)
	}
	if _, err := config.Load(fsys, "missing.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFromTheme_UsesVariantAssets(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				config.ThemeStylesheetKey: "bootstrap.css",
				config.ThemeJavaScriptKey: "bootstrap.js",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Assets: theme.Assets{
					Files: map[string]string{
						config.ThemeStylesheetKey: "bootstrap.dark.css",
					},
				},
			},
		},
	}
	selector := &stubThemeSelector{selection: &theme.Selection{Theme: "acme", Variant: "dark", Manifest: manifest}}

	cfg, err := config.FromTheme(selector, "acme", "dark")
	if err != nil {
		t.Fatalf("from theme: %v", err)
	}
	if cfg.CSSURL != "/assets/themes/acme/bootstrap.dark.css" {
		t.Fatalf("variant stylesheet not used: %q", cfg.CSSURL)
	}
	if cfg.JSURL != "/assets/themes/acme/bootstrap.js" {
		t.Fatalf("manifest script not used: %q", cfg.JSURL)
	}
	if len(selector.calls) != 1 || selector.calls[0] != "acme/dark" {
		t.Fatalf("unexpected selector calls: %v", selector.calls)
	}

	selector.err = errors.New("boom")
	if _, err := config.FromTheme(selector, "acme", "dark"); err == nil {
		t.Fatalf("expected selector error to propagate")
	}
}

func TestWithRendererConfig(t *testing.T) {
	rc := &theme.RendererConfig{
		Theme: "acme",
		AssetURL: func(key string) string {
			if key == config.ThemeStylesheetKey {
				return "/themes/acme/bootstrap.css"
			}
			return ""
		},
	}
	cfg, err := config.New(config.WithRendererConfig(rc))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cfg.CSSURL != "/themes/acme/bootstrap.css" || cfg.JSURL != "" {
		t.Fatalf("renderer config not applied: %+v", cfg)
	}
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []string
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, name+"/"+variant)
	return s.selection, s.err
}
