package helpers

import (
	"embed"
	"io/fs"
)

//go:embed templates/flash/*.tpl templates/layout/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the built-in element templates (flash messages and the
// page layout) rooted at the template directory.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
