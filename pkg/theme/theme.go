// Package theme resolves go-theme selections into the template partials,
// tokens and asset URLs the helpers and page layout consume.
package theme

import (
	"errors"
	"fmt"
	"html"
	"slices"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// Asset keys understood by HeadTags.
const (
	AssetStylesheet      = "stylesheet"
	AssetThemeStylesheet = "theme.stylesheet"
	AssetJQuery          = "jquery"
	AssetScript          = "script"
)

// Bootstrap 3 CDN bundle used when a theme does not ship its own assets.
const (
	BootstrapStylesheetURL = "https://cdn.jsdelivr.net/npm/bootstrap@3.4.1/dist/css/bootstrap.min.css"
	BootstrapScriptURL     = "https://cdn.jsdelivr.net/npm/bootstrap@3.4.1/dist/js/bootstrap.min.js"
	JQueryURL              = "https://code.jquery.com/jquery-1.12.4.min.js"
)

var errNoSelection = errors.New("theme: selector returned no manifest")

// Config is the resolved theme handed to helpers and layouts.
type Config struct {
	Theme    string
	Variant  string
	Partials map[string]string
	Tokens   map[string]string
	CSSVars  map[string]string
	// AssetURL resolves an asset key to a URL, returning "" for unknown keys.
	AssetURL func(key string) string
}

// DefaultAssets returns the CDN asset URLs applied under theme assets.
func DefaultAssets() map[string]string {
	return map[string]string{
		AssetStylesheet: BootstrapStylesheetURL,
		AssetJQuery:     JQueryURL,
		AssetScript:     BootstrapScriptURL,
	}
}

// Default returns a configuration that only references the Bootstrap CDN.
func Default() *Config {
	assets := DefaultAssets()
	return &Config{
		Partials: map[string]string{},
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
		AssetURL: func(key string) string { return assets[key] },
	}
}

// Resolve selects name/variant through selector and merges the manifest with
// its variant. Fallback partials fill in template keys the theme does not
// override.
func Resolve(selector gotheme.ThemeSelector, name, variant string, fallbacks map[string]string) (*Config, error) {
	if selector == nil {
		return nil, errors.New("theme: selector is nil")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("theme: select %q/%q: %w", name, variant, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, errNoSelection
	}
	manifest := selection.Manifest

	cfg := &Config{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: mergeMaps(fallbacks, manifest.Templates),
		Tokens:   mergeMaps(nil, manifest.Tokens),
	}
	if cfg.Theme == "" {
		cfg.Theme = manifest.Name
	}

	prefix := manifest.Assets.Prefix
	files := mergeMaps(nil, manifest.Assets.Files)

	if cfg.Variant != "" {
		v, ok := manifest.Variants[cfg.Variant]
		if !ok {
			return nil, fmt.Errorf("theme: %q has no variant %q", cfg.Theme, cfg.Variant)
		}
		cfg.Partials = mergeMaps(cfg.Partials, v.Templates)
		cfg.Tokens = mergeMaps(cfg.Tokens, v.Tokens)
		files = mergeMaps(files, v.Assets.Files)
		if v.Assets.Prefix != "" {
			prefix = v.Assets.Prefix
		}
	}

	cfg.CSSVars = make(map[string]string, len(cfg.Tokens))
	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+strings.TrimPrefix(key, "--")] = value
	}

	defaults := DefaultAssets()
	cfg.AssetURL = func(key string) string {
		if file, ok := files[key]; ok && strings.TrimSpace(file) != "" {
			return joinAsset(prefix, file)
		}
		return defaults[key]
	}
	return cfg, nil
}

// PartialFor returns the theme override for key, or fallback.
func (c *Config) PartialFor(key, fallback string) string {
	if c == nil {
		return fallback
	}
	if candidate := strings.TrimSpace(c.Partials[key]); candidate != "" {
		return candidate
	}
	return fallback
}

// HeadTags renders stylesheet links, scripts and a CSS variable block for
// the page head.
func (c *Config) HeadTags() string {
	if c == nil {
		c = Default()
	}
	var builder strings.Builder
	for _, key := range []string{AssetStylesheet, AssetThemeStylesheet} {
		if href := c.assetURL(key); href != "" {
			builder.WriteString(`<link rel="stylesheet" href="`)
			builder.WriteString(html.EscapeString(href))
			builder.WriteString("\">\n")
		}
	}
	if len(c.CSSVars) > 0 {
		names := make([]string, 0, len(c.CSSVars))
		for name := range c.CSSVars {
			names = append(names, name)
		}
		slices.Sort(names)
		builder.WriteString("<style>:root{")
		for _, name := range names {
			builder.WriteString(cssText(name))
			builder.WriteByte(':')
			builder.WriteString(cssText(c.CSSVars[name]))
			builder.WriteByte(';')
		}
		builder.WriteString("}</style>\n")
	}
	return builder.String()
}

// ScriptTags renders the jQuery and Bootstrap script tags for the end of the
// body.
func (c *Config) ScriptTags() string {
	if c == nil {
		c = Default()
	}
	var builder strings.Builder
	for _, key := range []string{AssetJQuery, AssetScript} {
		if src := c.assetURL(key); src != "" {
			builder.WriteString(`<script src="`)
			builder.WriteString(html.EscapeString(src))
			builder.WriteString("\"></script>\n")
		}
	}
	return builder.String()
}

func (c *Config) assetURL(key string) string {
	if c.AssetURL == nil {
		return ""
	}
	return c.AssetURL(key)
}

func joinAsset(prefix, file string) string {
	file = strings.TrimSpace(file)
	if strings.HasPrefix(file, "http://") || strings.HasPrefix(file, "https://") || strings.HasPrefix(file, "//") {
		return file
	}
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return file
	}
	return prefix + "/" + strings.TrimLeft(file, "/")
}

func mergeMaps(base, overrides map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(overrides))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range overrides {
		out[key] = value
	}
	return out
}

// cssText keeps token text verbatim inside the raw-text <style> element,
// dropping '<' so a value cannot close it.
func cssText(value string) string {
	return strings.ReplaceAll(value, "<", "")
}
