package helpers

import (
	"html"
	"net/url"
	"strings"

	"github.com/goliatone/go-bootstrap/pkg/stringtemplate"
)

func commonTemplates() stringtemplate.Templates {
	return stringtemplate.Templates{
		"icon": `<i aria-hidden="true" class="glyphicon glyphicon-{{type}}{{attrs.class}}"{{attrs}}></i>`,
	}
}

// base is embedded by every helper. It owns the helper's template set,
// seeded with the shared icon template, the helper defaults and finally the
// overrides configured for name.
type base struct {
	name      string
	view      *View
	templates *stringtemplate.StringTemplate
}

func newBase(view *View, name string, defaults ...stringtemplate.Templates) base {
	st := stringtemplate.New(commonTemplates())
	for _, set := range defaults {
		st.Add(set)
	}
	st.Add(view.config.TemplatesFor(name))
	return base{name: name, view: view, templates: st}
}

// Templates exposes the helper template set so callers can override or
// push/pop templates at runtime.
func (b *base) Templates() *stringtemplate.StringTemplate {
	return b.templates
}

func (b *base) format(name string, data stringtemplate.Data) (string, error) {
	return b.templates.Format(name, data)
}

// text escapes plain content when escaping is enabled.
func (b *base) text(value string) string {
	if !b.view.config.Escape {
		return value
	}
	return html.EscapeString(value)
}

// title renders text that may carry easy icon tokens.
func (b *base) title(value string) (string, error) {
	if !b.view.config.EasyIcon {
		return b.text(value), nil
	}
	out, _, err := b.easyIcon(value)
	return out, err
}

// content renders block content, sanitising it when HTML is allowed.
func (b *base) content(value string, allowHTML bool) string {
	if allowHTML {
		return b.sanitize(value)
	}
	return b.text(value)
}

func (b *base) icon(name string, attrs stringtemplate.Attrs) (string, error) {
	return b.format("icon", stringtemplate.Data{
		"type":  html.EscapeString(strings.TrimSpace(name)),
		"attrs": stringtemplate.FormatAttributes(attrs),
	})
}

// isActiveURL reports whether target points at the current request path.
func (b *base) isActiveURL(target string) bool {
	current := b.view.requestPath
	target = strings.TrimSpace(target)
	if current == "" || target == "" || strings.HasPrefix(target, "#") {
		return false
	}
	parsed, err := url.Parse(target)
	if err != nil {
		return false
	}
	return normalizePath(parsed.Path) == current
}
