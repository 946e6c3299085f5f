package bootstrap

import (
	"io/fs"

	"github.com/goliatone/go-bootstrap/pkg/helpers"
)

// EmbeddedTemplates exposes the built-in flash and layout templates so
// callers can reuse or extend them without importing the helpers package
// directly.
func EmbeddedTemplates() fs.FS {
	return helpers.TemplatesFS()
}
