package config

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestParseYAMLKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
easyIcon: false
templates:
  html:
    badge: '<em>{{content}}</em>'
form:
  columns:
    size: sm
    label: 3
    input: 9
`), "helpers.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := Default()
	want.EasyIcon = false
	want.Templates = map[string]map[string]string{"html": {"badge": "<em>{{content}}</em>"}}
	want.Form.Columns = Columns{Size: "sm", Label: 3, Input: 9}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.TemplatesFor("html")["badge"]; got != "<em>{{content}}</em>" {
		t.Fatalf("unexpected template override %q", got)
	}
	if cfg.TemplatesFor("form") != nil {
		t.Fatalf("expected nil overrides for unconfigured helper")
	}
}

func TestParseJSON(t *testing.T) {
	cfg, err := Parse([]byte(`{"autoActiveLink": false, "templateDir": "views", "theme": {"name": "acme", "variant": "dark"}}`), "helpers.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.AutoActiveLink {
		t.Fatalf("expected autoActiveLink override")
	}
	if cfg.TemplateDir != "views" {
		t.Fatalf("expected template dir views, got %q", cfg.TemplateDir)
	}
	if cfg.Theme.Name != "acme" || cfg.Theme.Variant != "dark" {
		t.Fatalf("unexpected theme %+v", cfg.Theme)
	}
	if !cfg.EasyIcon || cfg.Form.Columns.Label != 2 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"empty":        "   ",
		"invalid":      "- [oops",
		"bad columns":  "form: {columns: {size: md, label: 6, input: 8}}",
		"bad size":     "form: {columns: {size: xl, label: 2, input: 10}}",
		"blank helper": `{"templates": {" ": {"a": "b"}}}`,
		"padded dir":   `{"templateDir": " views"}`,
	}
	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(payload), "cfg.yaml"); err == nil {
				t.Fatalf("expected error")
			} else if !strings.Contains(err.Error(), "cfg.yaml") {
				t.Fatalf("expected source in error, got %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"cfg.yaml": {Data: []byte("escape: false\n")}}
	cfg, err := Load(fsys, "cfg.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Escape {
		t.Fatalf("expected escape disabled")
	}
	if _, err := Load(fsys, "missing.yaml"); err == nil {
		t.Fatalf("expected missing file error")
	}
}

func TestMergeLayersOverrides(t *testing.T) {
	base := Default()
	base.Templates = map[string]map[string]string{
		"html": {"label": "<em>{{content}}</em>", "badge": "<b>{{content}}</b>"},
	}
	base.Theme = ThemeConfig{Name: "acme", Variant: "dark"}

	merged := base.Merge(Config{
		Templates: map[string]map[string]string{
			"html":   {"badge": "<i>{{content}}</i>"},
			"navbar": {"divider": "<hr>"},
		},
		TemplateDir: " ./views ",
		Form:        FormConfig{Columns: Columns{Size: "sm", Label: 3, Input: 9}},
		Theme:       ThemeConfig{Name: "plain"},
	})

	want := map[string]map[string]string{
		"html":   {"label": "<em>{{content}}</em>", "badge": "<i>{{content}}</i>"},
		"navbar": {"divider": "<hr>"},
	}
	if diff := cmp.Diff(want, merged.Templates); diff != "" {
		t.Fatalf("templates mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Columns{Size: "sm", Label: 3, Input: 9}, merged.Form.Columns); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}
	if merged.TemplateDir != "./views" {
		t.Fatalf("expected template dir ./views, got %q", merged.TemplateDir)
	}
	if merged.Theme != (ThemeConfig{Name: "plain"}) {
		t.Fatalf("expected theme replaced with variant reset, got %+v", merged.Theme)
	}
	if !merged.EasyIcon || !merged.Escape || !merged.AutoActiveLink {
		t.Fatalf("expected switches to come from the base config")
	}
	if base.Templates["html"]["badge"] != "<b>{{content}}</b>" {
		t.Fatalf("merge must not mutate the receiver")
	}
}

func TestMergeEmptyOverlayKeepsBase(t *testing.T) {
	base := Default()
	merged := base.Merge(Config{})
	if diff := cmp.Diff(base.Form, merged.Form); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
	if merged.Validate() != nil {
		t.Fatalf("expected merged defaults to stay valid")
	}
}
