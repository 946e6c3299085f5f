package templates

import (
	"errors"
	"io"
)

// ErrTemplateNotFound is wrapped by engines when a named template cannot be
// located in any configured source.
var ErrTemplateNotFound = errors.New("templates: template not found")

// TemplateRenderer is the seam helpers render element templates through.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
