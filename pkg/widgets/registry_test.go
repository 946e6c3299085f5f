package widgets

import (
	"bytes"
	"testing"
)

func TestRegistryDescriptorClone(t *testing.T) {
	reg := New()
	renderer := func(buf *bytes.Buffer, ctx Context) error { return nil }

	if err := reg.Register("test", Descriptor{Renderer: renderer, Stylesheets: []string{"/a.css"}}); err != nil {
		t.Fatalf("register: %v", err)
	}

	desc, ok := reg.Descriptor("TEST ")
	if !ok {
		t.Fatalf("descriptor not found")
	}

	desc.Stylesheets = append(desc.Stylesheets, "/mutated.css")

	original, _ := reg.Descriptor("test")
	if len(original.Stylesheets) != 1 || original.Stylesheets[0] != "/a.css" {
		t.Fatalf("registry descriptor mutated: %#v", original.Stylesheets)
	}
}

func TestRegistryRegisterValidation(t *testing.T) {
	reg := New()
	if err := reg.Register(" ", Descriptor{Renderer: func(*bytes.Buffer, Context) error { return nil }}); err == nil {
		t.Fatalf("expected error for blank name")
	}
	if err := reg.Register("x", Descriptor{}); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}

func TestRegistryAssetsDeduplicates(t *testing.T) {
	reg := New()
	renderer := func(buf *bytes.Buffer, ctx Context) error { return nil }

	reg.MustRegister("datepicker", Descriptor{
		Renderer:    renderer,
		Stylesheets: []string{"/shared.css", "/datepicker.css"},
		Scripts: []Script{
			{Src: "/shared.js"},
		},
	})
	reg.MustRegister("colorpicker", Descriptor{
		Renderer:    renderer,
		Stylesheets: []string{"/shared.css", "/colorpicker.css"},
		Scripts: []Script{
			{Src: "/shared.js"},
			{Inline: "init()"},
		},
	})

	styles, scripts := reg.Assets([]string{"datepicker", "colorpicker", "missing"})
	if len(styles) != 3 {
		t.Fatalf("expected 3 unique stylesheets, got %d: %v", len(styles), styles)
	}
	if styles[0] != "/shared.css" || styles[1] != "/datepicker.css" || styles[2] != "/colorpicker.css" {
		t.Fatalf("unexpected styles ordering: %v", styles)
	}
	if len(scripts) != 2 {
		t.Fatalf("expected 2 unique scripts, got %d: %v", len(scripts), scripts)
	}
}

func TestRegistryCloneIsolated(t *testing.T) {
	reg := NewDefaultRegistry()
	cloned := reg.Clone()
	cloned.MustRegister("custom", Descriptor{Renderer: func(*bytes.Buffer, Context) error { return nil }})

	if _, ok := reg.Descriptor("custom"); ok {
		t.Fatalf("clone registration leaked into source registry")
	}
	if len(cloned.Names()) != len(reg.Names())+1 {
		t.Fatalf("unexpected clone names: %v", cloned.Names())
	}
}
