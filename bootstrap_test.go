package bootstrap

import (
	"context"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
)

func TestEmbeddedTemplatesExposeLayoutAndFlash(t *testing.T) {
	fsys := EmbeddedTemplates()
	for _, name := range []string{"layout/default.tpl", "flash/default.tpl", "flash/error.tpl"} {
		if _, err := fs.Stat(fsys, name); err != nil {
			t.Fatalf("expected embedded template %s: %v", name, err)
		}
	}
}

func TestRenderPageFile(t *testing.T) {
	fsys := fstest.MapFS{"page.yaml": {Data: []byte(`
title: Hello
flash:
  - element: error
    message: Something failed
sections:
  - kind: breadcrumbs
    crumbs:
      - {title: Home, url: /}
      - {title: Library}
`)}}

	out, err := RenderPageFile(context.Background(), fsys, "page.yaml")
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	html := string(out)
	for _, fragment := range []string{
		"<title>Hello</title>",
		`<div class="alert alert-danger" role="alert">Something failed</div>`,
		`<ol class="breadcrumb">`,
	} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected page to contain %q\n%s", fragment, html)
		}
	}
}

func TestNewBuildsHelpers(t *testing.T) {
	h, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	got, err := h.HTML.Label("new", "success", nil)
	if err != nil {
		t.Fatalf("label: %v", err)
	}
	if got != `<span class="label label-success">new</span>` {
		t.Fatalf("unexpected label %q", got)
	}
}
