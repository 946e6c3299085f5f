// Package config loads helper defaults from JSON or YAML documents.
package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-bootstrap/pkg/stringtemplate"
)

// Config carries helper wide defaults.
type Config struct {
	// EasyIcon turns `i:name` tokens in titles into glyphicons.
	EasyIcon bool `json:"easyIcon" yaml:"easyIcon"`
	// Escape HTML-escapes text content passed to helpers.
	Escape bool `json:"escape" yaml:"escape"`
	// AutoActiveLink marks navbar links whose URL path matches the request
	// path as active.
	AutoActiveLink bool `json:"autoActiveLink" yaml:"autoActiveLink"`
	// Templates overrides string templates keyed by helper name then
	// template name.
	Templates map[string]map[string]string `json:"templates" yaml:"templates"`
	// TemplateDir is a directory of element templates (flash, layout) that
	// take precedence over the embedded ones.
	TemplateDir string      `json:"templateDir" yaml:"templateDir"`
	Form        FormConfig  `json:"form" yaml:"form"`
	Theme       ThemeConfig `json:"theme" yaml:"theme"`
}

// FormConfig describes form helper defaults.
type FormConfig struct {
	Columns Columns `json:"columns" yaml:"columns"`
}

// Columns sizes horizontal form labels and inputs on the Bootstrap grid.
type Columns struct {
	Size  string `json:"size" yaml:"size"`
	Label int    `json:"label" yaml:"label"`
	Input int    `json:"input" yaml:"input"`
}

// ThemeConfig names the go-theme selection to resolve.
type ThemeConfig struct {
	Name    string `json:"name" yaml:"name"`
	Variant string `json:"variant" yaml:"variant"`
}

var gridSizes = []string{"xs", "sm", "md", "lg"}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		EasyIcon:       true,
		Escape:         true,
		AutoActiveLink: true,
		Form: FormConfig{
			Columns: Columns{Size: "md", Label: 2, Input: 10},
		},
	}
}

// Validate reports malformed values.
func (c Config) Validate() error {
	cols := c.Form.Columns
	if !slices.Contains(gridSizes, cols.Size) {
		return fmt.Errorf("config: form column size %q must be one of %s", cols.Size, strings.Join(gridSizes, ", "))
	}
	if cols.Label <= 0 || cols.Input <= 0 || cols.Label+cols.Input > 12 {
		return fmt.Errorf("config: form columns %d/%d must be positive and fit in 12", cols.Label, cols.Input)
	}
	if dir := c.TemplateDir; dir != "" && strings.TrimSpace(dir) != dir {
		return fmt.Errorf("config: template dir %q has surrounding whitespace", dir)
	}
	for helper, templates := range c.Templates {
		if strings.TrimSpace(helper) == "" {
			return fmt.Errorf("config: templates entry with an empty helper name")
		}
		for name := range templates {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("config: helper %q defines a template with an empty name", helper)
			}
		}
	}
	return nil
}

// TemplatesFor returns the template overrides configured for helper.
func (c Config) TemplatesFor(helper string) stringtemplate.Templates {
	raw := c.Templates[helper]
	if len(raw) == 0 {
		return nil
	}
	out := make(stringtemplate.Templates, len(raw))
	for name, pattern := range raw {
		out[name] = pattern
	}
	return out
}

// Merge layers overlay on top of c. Template overrides are merged per
// helper and name. Form columns, the template dir and theme names replace
// c's when set. The
// boolean switches always come from c.
func (c Config) Merge(overlay Config) Config {
	out := c
	out.Templates = make(map[string]map[string]string, len(c.Templates)+len(overlay.Templates))
	for _, source := range []map[string]map[string]string{c.Templates, overlay.Templates} {
		for helper, templates := range source {
			merged := out.Templates[helper]
			if merged == nil {
				merged = make(map[string]string, len(templates))
				out.Templates[helper] = merged
			}
			for name, pattern := range templates {
				merged[name] = pattern
			}
		}
	}

	if cols := overlay.Form.Columns; cols.Label > 0 && cols.Input > 0 {
		out.Form.Columns.Label = cols.Label
		out.Form.Columns.Input = cols.Input
	}
	if size := strings.TrimSpace(overlay.Form.Columns.Size); size != "" {
		out.Form.Columns.Size = size
	}
	if dir := strings.TrimSpace(overlay.TemplateDir); dir != "" {
		out.TemplateDir = dir
	}
	if name := strings.TrimSpace(overlay.Theme.Name); name != "" {
		out.Theme.Name = name
		out.Theme.Variant = ""
	}
	if variant := strings.TrimSpace(overlay.Theme.Variant); variant != "" {
		out.Theme.Variant = variant
	}
	return out
}

// Parse decodes a JSON or YAML document on top of Default. The source is
// only used in error messages.
func Parse(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("config: file %s is empty", source)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		cfg = Default()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: invalid JSON or YAML", source)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

// Load reads and parses path from fsys.
func Load(fsys fs.FS, path string) (Config, error) {
	if fsys == nil {
		return Config{}, fmt.Errorf("config: load %s: filesystem is nil", path)
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return Parse(data, path)
}
