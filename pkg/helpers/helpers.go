package helpers

import "github.com/goliatone/go-bootstrap/pkg/stringtemplate"

// Helpers bundles every helper built on one View.
type Helpers struct {
	View      *View
	HTML      *HTMLHelper
	Form      *FormHelper
	Navbar    *NavbarHelper
	Modal     *ModalHelper
	Panel     *PanelHelper
	Paginator *PaginatorHelper
	Flash     *FlashHelper
}

// New constructs a View and the full helper set in one call.
func New(options ...Option) (*Helpers, error) {
	view, err := NewView(options...)
	if err != nil {
		return nil, err
	}
	return NewHelpers(view), nil
}

// NewHelpers constructs every helper for view.
func NewHelpers(view *View) *Helpers {
	html := NewHTMLHelper(view)
	return &Helpers{
		View:      view,
		HTML:      html,
		Form:      newFormHelper(view, html),
		Navbar:    NewNavbarHelper(view),
		Modal:     NewModalHelper(view),
		Panel:     NewPanelHelper(view),
		Paginator: NewPaginatorHelper(view),
		Flash:     NewFlashHelper(view),
	}
}

// TemplateSets returns the template set of each helper keyed by the name
// used for its configuration overrides.
func (h *Helpers) TemplateSets() map[string]*stringtemplate.StringTemplate {
	return map[string]*stringtemplate.StringTemplate{
		h.HTML.name:      h.HTML.Templates(),
		h.Form.name:      h.Form.Templates(),
		h.Navbar.name:    h.Navbar.Templates(),
		h.Modal.name:     h.Modal.Templates(),
		h.Panel.name:     h.Panel.Templates(),
		h.Paginator.name: h.Paginator.Templates(),
		h.Flash.name:     h.Flash.Templates(),
	}
}
