package page

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bootstrap/pkg/config"
)

func TestLoadAssignsSectionNames(t *testing.T) {
	doc, err := Load(os.DirFS("testdata"), "dashboard.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{"header-1", "filters", "progress-3", "pagination-4"}
	if diff := cmp.Diff(want, doc.SectionNames()); diff != "" {
		t.Fatalf("section names mismatch (-want +got):\n%s", diff)
	}
	if doc.Navbar == nil || len(doc.Navbar.Menus) != 2 {
		t.Fatalf("expected two navbar menus, got %+v", doc.Navbar)
	}
}

func TestParseJSON(t *testing.T) {
	doc, err := Parse([]byte(`{"title":"Hi","sections":[{"kind":"ALERT","text":"x"}]}`), "inline.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Title != "Hi" || doc.Sections[0].Kind != SectionAlert || doc.Sections[0].Name != "alert-1" {
		t.Fatalf("unexpected document %+v", doc)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"empty":          "   ",
		"invalid":        "title: [",
		"unknown kind":   "sections:\n  - kind: carousel\n",
		"duplicate name": "sections:\n  - {kind: alert, name: a}\n  - {kind: header, name: a}\n",
		"form missing":   "sections:\n  - kind: form\n",
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(payload), name); err == nil {
				t.Fatalf("expected parse error")
			}
		})
	}
}

func TestSelectKeepsDocumentOrder(t *testing.T) {
	doc, err := Load(os.DirFS("testdata"), "dashboard.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	selected := doc.Select([]string{"pagination-4", "header-1"})
	if diff := cmp.Diff([]string{"header-1", "pagination-4"}, selected.SectionNames()); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
	if len(doc.Sections) != 4 {
		t.Fatalf("expected the original document to be untouched")
	}
}

func TestParseFormControlChoices(t *testing.T) {
	doc, err := Load(os.DirFS("testdata"), "dashboard.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	form := doc.Sections[1].Form
	if form == nil || len(form.Controls) == 0 {
		t.Fatalf("expected the filters form, got %+v", doc.Sections[1])
	}
	want := []ChoiceOption{{Value: "week", Text: "Week"}, {Value: "month", Text: "Month"}}
	if diff := cmp.Diff(want, form.Controls[0].Options); diff != "" {
		t.Fatalf("choices mismatch (-want +got):\n%s", diff)
	}

	var options []Option
	options = append(options, WithConfig(config.Default()), WithLogger(nil), WithHelperOptions())
	if NewRenderer(options...) == nil {
		t.Fatalf("expected renderer")
	}
}
