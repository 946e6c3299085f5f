package page

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-bootstrap/pkg/theme"
)

func loadDashboard(t *testing.T) Document {
	t.Helper()
	doc, err := Load(os.DirFS("testdata"), "dashboard.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return doc
}

func TestRenderDashboard(t *testing.T) {
	out, err := NewRenderer().Render(context.Background(), loadDashboard(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	page := string(out)

	for _, fragment := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<body>\n",
		"<title>Dashboard</title>",
		theme.BootstrapStylesheetURL,
		`<nav class="navbar navbar-inverse">`,
		`<a class="navbar-brand" href="/"><i aria-hidden="true" class="glyphicon glyphicon-home"></i> Acme</a>`,
		`<li class="active"><a href="/reports">Reports</a></li>`,
		`<li class="dropdown-header">Admin</li>`,
		`<ul class="nav navbar-nav navbar-right">`,
		`<div class="alert alert-success" role="alert">Report generated</div>`,
		`<div class="page-header"><h1>Reports <small>Monthly</small></h1></div>`,
		`<form action="/reports" method="get" class="form-horizontal">`,
		`<option value="month" selected="selected">Month</option>`,
		`data-provide="datepicker"`,
		"bootstrap-datepicker3.min.css",
		"bootstrap-datepicker.min.js",
		`<button type="submit" class="btn btn-primary">Filter</button>`,
		`progress-bar-success`,
		`<a href="/reports?p=3">3</a>`,
		theme.JQueryURL,
	} {
		if !strings.Contains(page, fragment) {
			t.Fatalf("expected page to contain %q\n%s", fragment, page)
		}
	}

	navbar := strings.Index(page, "<nav class=")
	header := strings.Index(page, "page-header")
	pagination := strings.Index(page, `class="pagination"`)
	if !(navbar < header && header < pagination) {
		t.Fatalf("expected navbar, header and pagination in document order")
	}
}

func TestRenderHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRenderer().Render(ctx, loadDashboard(t))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRenderThemeRequiresSelector(t *testing.T) {
	doc := Document{Title: "x", Theme: ThemeRef{Name: "acme"}}
	if _, err := NewRenderer().Render(context.Background(), doc); err == nil {
		t.Fatalf("expected an error without a theme selector")
	}
}

func TestRenderWithThemeSelector(t *testing.T) {
	manifest := &gotheme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"brand": "#123456"},
		Assets: gotheme.Assets{
			Prefix: "/assets/acme",
			Files:  map[string]string{theme.AssetThemeStylesheet: "theme.css"},
		},
	}
	renderer := NewRenderer(WithThemeSelector(theme.NewStaticSelector("acme", "", manifest)))

	out, err := renderer.Render(context.Background(), Document{Title: "Themed"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	page := string(out)
	if !strings.Contains(page, `href="/assets/acme/theme.css"`) {
		t.Fatalf("expected theme stylesheet, got\n%s", page)
	}
	if !strings.Contains(page, "--brand:#123456;") {
		t.Fatalf("expected css variables, got\n%s", page)
	}
	if !strings.Contains(page, `<body data-theme="acme">`) {
		t.Fatalf("expected theme name on body, got\n%s", page)
	}
}

func TestRenderReportsSectionErrors(t *testing.T) {
	doc := Document{Sections: []Section{{Kind: SectionPagination, Page: 9, PageCount: 3}}}
	_, err := NewRenderer().Render(context.Background(), doc)
	if err == nil || !strings.Contains(err.Error(), "pagination-1") {
		t.Fatalf("expected section error naming the section, got %v", err)
	}
}
