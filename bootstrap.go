// Package bootstrap generates Bootstrap 3 markup from Go: string-template
// backed helpers for forms, navbars, modals, panels and pagination, plus a
// page renderer that turns YAML or JSON documents into complete HTML pages.
package bootstrap

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-bootstrap/pkg/helpers"
	"github.com/goliatone/go-bootstrap/pkg/page"
)

// Helpers aliases helpers.Helpers so callers can depend on the root package.
type Helpers = helpers.Helpers

// Document aliases page.Document.
type Document = page.Document

// New builds the full helper set on a fresh view.
func New(options ...helpers.Option) (*Helpers, error) {
	return helpers.New(options...)
}

// NewRenderer exposes the page renderer constructor from the top-level
// module.
func NewRenderer(options ...page.Option) *page.Renderer {
	return page.NewRenderer(options...)
}

// RenderPage renders doc into a complete HTML page. It is the simplest entry
// point for callers that just want HTML output.
func RenderPage(ctx context.Context, doc Document, options ...page.Option) ([]byte, error) {
	return page.NewRenderer(options...).Render(ctx, doc)
}

// RenderPageFile loads a page document from fsys and renders it.
func RenderPageFile(ctx context.Context, fsys fs.FS, path string, options ...page.Option) ([]byte, error) {
	doc, err := page.Load(fsys, path)
	if err != nil {
		return nil, err
	}
	return RenderPage(ctx, doc, options...)
}
