package config

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Asset keys looked up in go-theme manifests.
const (
	ThemeStylesheetKey = "bootstrap.stylesheet"
	ThemeJavaScriptKey = "bootstrap.javascript"
)

// FromTheme selects a theme/variant and builds a Config whose stylesheet and
// script URLs come from the theme's assets. Options are applied after the
// theme so callers can still override individual URLs.
func FromTheme(selector theme.ThemeSelector, name, variant string, options ...Option) (Config, error) {
	if selector == nil {
		return Config{}, fmt.Errorf("%w: theme selector is required", ErrInvalidConfig)
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return Config{}, fmt.Errorf("config: select theme %q/%q: %w", name, variant, err)
	}
	opts := append([]Option{WithThemeSelection(selection)}, options...)
	return New(opts...)
}

// WithThemeSelection reads the bootstrap asset keys from a resolved theme
// selection. Variant assets take precedence over the manifest's.
func WithThemeSelection(selection *theme.Selection) Option {
	return func(c *Config) {
		if css := selectionAssetURL(selection, ThemeStylesheetKey); css != "" {
			c.CSSURL = css
		}
		if js := selectionAssetURL(selection, ThemeJavaScriptKey); js != "" {
			c.JSURL = js
		}
	}
}

// WithRendererConfig reads the bootstrap asset keys through a renderer
// config's AssetURL resolver.
func WithRendererConfig(cfg *theme.RendererConfig) Option {
	return func(c *Config) {
		if cfg == nil || cfg.AssetURL == nil {
			return
		}
		if css := strings.TrimSpace(cfg.AssetURL(ThemeStylesheetKey)); css != "" {
			c.CSSURL = css
		}
		if js := strings.TrimSpace(cfg.AssetURL(ThemeJavaScriptKey)); js != "" {
			c.JSURL = js
		}
	}
}

func selectionAssetURL(selection *theme.Selection, key string) string {
	if selection == nil || selection.Manifest == nil {
		return ""
	}
	manifest := selection.Manifest
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		if file := strings.TrimSpace(variant.Assets.Files[key]); file != "" {
			prefix := variant.Assets.Prefix
			if prefix == "" {
				prefix = manifest.Assets.Prefix
			}
			return joinAsset(prefix, file)
		}
	}
	if file := strings.TrimSpace(manifest.Assets.Files[key]); file != "" {
		return joinAsset(manifest.Assets.Prefix, file)
	}
	return ""
}

func joinAsset(prefix, file string) string {
	if strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
		return file
	}
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return file
	}
	return prefix + "/" + file
}
