package helpers

import (
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-bootstrap/pkg/stringtemplate"
)

// NavbarOptions configures NavbarHelper.Create.
type NavbarOptions struct {
	BrandURL string
	// BrandHTML replaces the brand text with sanitised markup.
	BrandHTML string
	// Fixed pins the navbar to the "top" or "bottom" of the viewport.
	Fixed   string
	Static  bool
	Fluid   bool
	Inverse bool
	// NotResponsive drops the collapse toggle and container.
	NotResponsive bool
	// ID is the collapse target id; defaults to "navbar".
	ID    string
	Attrs stringtemplate.Attrs
}

// MenuOptions configures Navbar.BeginMenu.
type MenuOptions struct {
	// Align is "left" (default) or "right".
	Align string
	Attrs stringtemplate.Attrs
}

// LinkOptions configures Navbar.Link.
type LinkOptions struct {
	Active bool
	// NoAutoActive disables request path matching for this link.
	NoAutoActive bool
	// Attrs apply to the <li> inside menus and to the navbar-text paragraph
	// outside them; LinkAttrs apply to the anchor.
	Attrs     stringtemplate.Attrs
	LinkAttrs stringtemplate.Attrs
}

// SearchOptions configures Navbar.SearchForm.
type SearchOptions struct {
	// Name of the query field; defaults to "q".
	Name        string
	Placeholder string
	// Button caption; defaults to "Search".
	Button string
	Align  string
	Attrs  stringtemplate.Attrs
}

func navbarTemplates() stringtemplate.Templates {
	return stringtemplate.Templates{
		"navbar":         `<nav class="navbar navbar-{{theme}}{{attrs.class}}"{{attrs}}><div class="{{container}}">{{header}}{{content}}</div></nav>`,
		"navbarHeader":   `<div class="navbar-header">{{toggle}}{{brand}}</div>`,
		"navbarToggle":   `<button type="button" class="navbar-toggle collapsed" data-toggle="collapse" data-target="#{{id}}" aria-expanded="false"><span class="sr-only">Toggle navigation</span><span class="icon-bar"></span><span class="icon-bar"></span><span class="icon-bar"></span></button>`,
		"navbarBrand":    `<a class="navbar-brand" href="{{url}}">{{content}}</a>`,
		"navbarCollapse": `<div class="collapse navbar-collapse" id="{{id}}">{{content}}</div>`,
		"menu":           `<ul class="nav navbar-nav{{attrs.class}}"{{attrs}}>{{content}}</ul>`,
		"menuItem":       `<li{{attrs}}>{{content}}</li>`,
		"dropdown":       `<li class="dropdown{{attrs.class}}"{{attrs}}><a href="{{url}}" class="dropdown-toggle" data-toggle="dropdown" role="button" aria-haspopup="true" aria-expanded="false">{{name}} <span class="caret"></span></a><ul class="dropdown-menu{{menuClass}}">{{content}}</ul></li>`,
		"divider":        `<li role="separator" class="divider"></li>`,
		"header":         `<li class="dropdown-header">{{content}}</li>`,
		"link":           `<a href="{{url}}"{{attrs}}>{{content}}</a>`,
		"text":           `<p class="navbar-text{{attrs.class}}"{{attrs}}>{{content}}</p>`,
		"textLink":       `<a href="{{url}}" class="navbar-link{{attrs.class}}"{{attrs}}>{{content}}</a>`,
		"button":         `<button type="{{type}}" class="btn btn-{{kind}}{{attrs.class}}"{{attrs}}>{{content}}</button>`,
		"linkButton":     `<a href="{{url}}" class="btn btn-{{kind}}{{attrs.class}}" role="button"{{attrs}}>{{content}}</a>`,
		"searchForm":     `<form class="navbar-form{{attrs.class}}" role="search" action="{{action}}" method="get"{{attrs}}><div class="form-group"><input type="text" name="{{name}}" class="form-control"{{placeholder}}></div> {{button}}</form>`,
	}
}

// NavbarHelper creates navbar builders.
type NavbarHelper struct {
	base
}

// NewNavbarHelper constructs the navbar helper for view.
func NewNavbarHelper(view *View) *NavbarHelper {
	return &NavbarHelper{base: newBase(view, "navbar", navbarTemplates())}
}

// Create starts a navbar. Errors raised while building are recorded and
// returned by End.
func (h *NavbarHelper) Create(brand string, opts NavbarOptions) *Navbar {
	nav := &Navbar{helper: h, brand: brand, opts: opts}
	fixed := strings.TrimSpace(opts.Fixed)
	switch {
	case fixed != "" && fixed != "top" && fixed != "bottom":
		nav.fail(fmt.Errorf("%w: navbar fixed position %q", ErrInvalidOptions, opts.Fixed))
	case fixed != "" && opts.Static:
		nav.fail(fmt.Errorf("%w: navbar cannot be both fixed and static", ErrInvalidOptions))
	}
	return nav
}

// menuFrame accumulates the items of an open menu level.
type menuFrame struct {
	dropdown bool
	name     string
	url      string
	align    string
	attrs    stringtemplate.Attrs
	items    strings.Builder
	active   bool
}

// Navbar builds a navbar. Level 0 is the navbar itself, level 1 a nav list
// opened by BeginMenu and level 2 a dropdown inside that list.
type Navbar struct {
	helper  *NavbarHelper
	brand   string
	opts    NavbarOptions
	content strings.Builder
	stack   []*menuFrame
	err     error
	ended   bool
}

// Err returns the first error recorded by the builder.
func (n *Navbar) Err() error { return n.err }

// Level reports the current menu depth.
func (n *Navbar) Level() int { return len(n.stack) }

func (n *Navbar) fail(err error) {
	if n.err == nil {
		n.err = err
	}
}

func (n *Navbar) ready() bool {
	if n.ended {
		n.fail(fmt.Errorf("%w: navbar already ended", ErrInvalidState))
	}
	return n.err == nil
}

func (n *Navbar) top() *menuFrame {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

// BeginMenu opens a nav list at level 0, or a dropdown named name inside an
// open list.
func (n *Navbar) BeginMenu(name, url string, opts MenuOptions) *Navbar {
	if !n.ready() {
		return n
	}
	align := strings.TrimSpace(opts.Align)
	if align != "" && align != "left" && align != "right" {
		n.fail(fmt.Errorf("%w: menu align %q", ErrInvalidOptions, opts.Align))
		return n
	}

	switch len(n.stack) {
	case 0:
		n.stack = append(n.stack, &menuFrame{align: align, attrs: opts.Attrs.Clone()})
	case 1:
		if strings.TrimSpace(name) == "" {
			n.fail(fmt.Errorf("%w: dropdown menus need a name", ErrInvalidOptions))
			return n
		}
		n.stack = append(n.stack, &menuFrame{
			dropdown: true,
			name:     name,
			url:      orDefault(url, "#"),
			align:    align,
			attrs:    opts.Attrs.Clone(),
		})
	default:
		n.fail(fmt.Errorf("%w: menus nest at most two levels", ErrInvalidState))
	}
	return n
}

// EndMenu closes the current menu level and flattens it into its parent.
func (n *Navbar) EndMenu() *Navbar {
	if !n.ready() {
		return n
	}
	frame := n.top()
	if frame == nil {
		n.fail(fmt.Errorf("%w: no open menu", ErrInvalidState))
		return n
	}
	n.stack = n.stack[:len(n.stack)-1]

	h := n.helper
	if frame.dropdown {
		attrs := frame.attrs
		if frame.active {
			stringtemplate.AddClass(attrs, "active")
		}
		name, err := h.title(frame.name)
		if err != nil {
			n.fail(err)
			return n
		}
		menuClass := ""
		if frame.align == "right" {
			menuClass = " dropdown-menu-right"
		}
		rendered, err := h.format("dropdown", stringtemplate.Data{
			"url":       html.EscapeString(frame.url),
			"name":      name,
			"menuClass": menuClass,
			"content":   frame.items.String(),
			"attrs":     stringtemplate.FormatAttributes(attrs),
		})
		if err != nil {
			n.fail(err)
			return n
		}
		parent := n.top()
		parent.items.WriteString(rendered)
		parent.active = parent.active || frame.active
		return n
	}

	attrs := frame.attrs
	if frame.align == "right" {
		stringtemplate.AddClass(attrs, "navbar-right")
	}
	rendered, err := h.format("menu", stringtemplate.Data{
		"content": frame.items.String(),
		"attrs":   stringtemplate.FormatAttributes(attrs),
	})
	if err != nil {
		n.fail(err)
		return n
	}
	n.content.WriteString(rendered)
	return n
}

// Link adds a link. Inside menus it renders a list item, marked active when
// opts.Active is set or the url matches the request path. Outside menus it
// renders a navbar-link inside navbar-text.
func (n *Navbar) Link(name, url string, opts LinkOptions) *Navbar {
	if !n.ready() {
		return n
	}
	h := n.helper
	content, err := h.title(name)
	if err != nil {
		n.fail(err)
		return n
	}
	url = orDefault(url, "#")

	frame := n.top()
	if frame == nil {
		link, err := h.format("textLink", stringtemplate.Data{
			"url":     html.EscapeString(url),
			"content": content,
			"attrs":   stringtemplate.FormatAttributes(opts.LinkAttrs, "href"),
		})
		if err == nil {
			link, err = h.format("text", stringtemplate.Data{
				"content": link,
				"attrs":   stringtemplate.FormatAttributes(opts.Attrs),
			})
		}
		if err != nil {
			n.fail(err)
			return n
		}
		n.content.WriteString(link)
		return n
	}

	active := opts.Active
	if !active && !opts.NoAutoActive && h.view.config.AutoActiveLink {
		active = h.isActiveURL(url)
	}
	link, err := h.format("link", stringtemplate.Data{
		"url":     html.EscapeString(url),
		"content": content,
		"attrs":   stringtemplate.FormatAttributes(opts.LinkAttrs, "href"),
	})
	if err != nil {
		n.fail(err)
		return n
	}
	attrs := opts.Attrs.Clone()
	if active {
		stringtemplate.AddClass(attrs, "active")
		frame.active = true
	}
	item, err := h.format("menuItem", stringtemplate.Data{
		"content": link,
		"attrs":   stringtemplate.FormatAttributes(attrs),
	})
	if err != nil {
		n.fail(err)
		return n
	}
	frame.items.WriteString(item)
	return n
}

// Divider adds a separator to the open dropdown.
func (n *Navbar) Divider() *Navbar {
	if !n.inDropdown("divider") {
		return n
	}
	n.appendItem(n.helper.format("divider", nil))
	return n
}

// Header adds a dropdown header to the open dropdown.
func (n *Navbar) Header(name string) *Navbar {
	if !n.inDropdown("header") {
		return n
	}
	content, err := n.helper.title(name)
	if err != nil {
		n.fail(err)
		return n
	}
	n.appendItem(n.helper.format("header", stringtemplate.Data{"content": content}))
	return n
}

// Button adds a navbar button outside menus.
func (n *Navbar) Button(name string, opts ButtonOptions) *Navbar {
	if !n.outsideMenus("button") {
		return n
	}
	opts.Attrs = stringtemplate.AddClass(opts.Attrs.Clone(), "navbar-btn")
	n.appendContent(renderButton(&n.helper.base, name, opts))
	return n
}

// Text adds a navbar-text paragraph outside menus.
func (n *Navbar) Text(text string, attrs stringtemplate.Attrs) *Navbar {
	if !n.outsideMenus("text") {
		return n
	}
	content, err := n.helper.title(text)
	if err != nil {
		n.fail(err)
		return n
	}
	n.appendContent(n.helper.format("text", stringtemplate.Data{
		"content": content,
		"attrs":   stringtemplate.FormatAttributes(attrs),
	}))
	return n
}

// SearchForm adds a GET search form outside menus.
func (n *Navbar) SearchForm(action string, opts SearchOptions) *Navbar {
	if !n.outsideMenus("search form") {
		return n
	}
	h := n.helper
	attrs := opts.Attrs.Clone()
	switch strings.TrimSpace(opts.Align) {
	case "", "left":
		if opts.Align != "" {
			stringtemplate.AddClass(attrs, "navbar-left")
		}
	case "right":
		stringtemplate.AddClass(attrs, "navbar-right")
	default:
		n.fail(fmt.Errorf("%w: search form align %q", ErrInvalidOptions, opts.Align))
		return n
	}

	button, err := renderButton(&h.base, orDefault(opts.Button, "Search"), ButtonOptions{Type: "submit"})
	if err != nil {
		n.fail(err)
		return n
	}
	placeholder := ""
	if opts.Placeholder != "" {
		placeholder = stringtemplate.FormatAttributes(stringtemplate.Attrs{"placeholder": opts.Placeholder})
	}
	n.appendContent(h.format("searchForm", stringtemplate.Data{
		"action":      html.EscapeString(orDefault(action, "#")),
		"name":        html.EscapeString(orDefault(opts.Name, "q")),
		"placeholder": placeholder,
		"button":      button,
		"attrs":       stringtemplate.FormatAttributes(attrs, "action", "method", "role"),
	}))
	return n
}

// End renders the navbar. It fails when menus are still open or any earlier
// call recorded an error.
func (n *Navbar) End() (string, error) {
	if n.ended {
		return "", fmt.Errorf("%w: navbar already ended", ErrInvalidState)
	}
	if n.err != nil {
		return "", n.err
	}
	if len(n.stack) > 0 {
		return "", fmt.Errorf("%w: %d menu level(s) still open", ErrInvalidState, len(n.stack))
	}
	n.ended = true

	h := n.helper
	opts := n.opts
	id := orDefault(strings.TrimSpace(opts.ID), "navbar")

	brand := ""
	if opts.BrandHTML != "" || n.brand != "" {
		content := h.sanitize(opts.BrandHTML)
		if opts.BrandHTML == "" {
			var err error
			if content, err = h.title(n.brand); err != nil {
				return "", err
			}
		}
		var err error
		brand, err = h.format("navbarBrand", stringtemplate.Data{
			"url":     html.EscapeString(orDefault(opts.BrandURL, "/")),
			"content": content,
		})
		if err != nil {
			return "", err
		}
	}

	toggle := ""
	content := n.content.String()
	if !opts.NotResponsive {
		var err error
		if toggle, err = h.format("navbarToggle", stringtemplate.Data{"id": html.EscapeString(id)}); err != nil {
			return "", err
		}
		if content, err = h.format("navbarCollapse", stringtemplate.Data{
			"id":      html.EscapeString(id),
			"content": content,
		}); err != nil {
			return "", err
		}
	}

	header := ""
	if toggle != "" || brand != "" {
		var err error
		if header, err = h.format("navbarHeader", stringtemplate.Data{"toggle": toggle, "brand": brand}); err != nil {
			return "", err
		}
	}

	attrs := opts.Attrs.Clone()
	if fixed := strings.TrimSpace(opts.Fixed); fixed != "" {
		stringtemplate.AddClass(attrs, "navbar-fixed-"+fixed)
	}
	if opts.Static {
		stringtemplate.AddClass(attrs, "navbar-static-top")
	}
	theme := "default"
	if opts.Inverse {
		theme = "inverse"
	}
	container := "container"
	if opts.Fluid {
		container = "container-fluid"
	}
	return h.format("navbar", stringtemplate.Data{
		"theme":     theme,
		"container": container,
		"header":    header,
		"content":   content,
		"attrs":     stringtemplate.FormatAttributes(attrs),
	})
}

func (n *Navbar) inDropdown(what string) bool {
	if !n.ready() {
		return false
	}
	if frame := n.top(); frame == nil || !frame.dropdown {
		n.fail(fmt.Errorf("%w: %s is only allowed inside a dropdown", ErrInvalidState, what))
		return false
	}
	return true
}

func (n *Navbar) outsideMenus(what string) bool {
	if !n.ready() {
		return false
	}
	if len(n.stack) > 0 {
		n.fail(fmt.Errorf("%w: %s is not allowed inside a menu", ErrInvalidState, what))
		return false
	}
	return true
}

func (n *Navbar) appendItem(rendered string, err error) {
	if err != nil {
		n.fail(err)
		return
	}
	n.top().items.WriteString(rendered)
}

func (n *Navbar) appendContent(rendered string, err error) {
	if err != nil {
		n.fail(err)
		return
	}
	n.content.WriteString(rendered)
}
