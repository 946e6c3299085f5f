package helpers

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/goliatone/go-bootstrap/pkg/stringtemplate"
)

// Menu item kinds understood by dropdown renderers.
const (
	MenuLink    = "link"
	MenuDivider = "divider"
	MenuHeader  = "header"
)

// MenuItem is one entry of a dropdown menu.
type MenuItem struct {
	Kind      string
	Title     string
	URL       string
	Active    bool
	Disabled  bool
	Attrs     stringtemplate.Attrs
	LinkAttrs stringtemplate.Attrs
}

// Crumb is one breadcrumb entry. The last crumb is always rendered active.
type Crumb struct {
	Title string
	URL   string
}

// ProgressBar describes one bar of a (possibly stacked) progress element.
type ProgressBar struct {
	// Width is a percentage, clamped to 0..100.
	Width   float64
	Kind    string
	Striped bool
	Active  bool
	// Display shows the percentage inside the bar instead of a screen reader
	// only label.
	Display bool
	Attrs   stringtemplate.Attrs
}

// AlertOptions configures Alert.
type AlertOptions struct {
	Dismissible bool
	AllowHTML   bool
	Attrs       stringtemplate.Attrs
}

// TooltipOptions configures Tooltip.
type TooltipOptions struct {
	Placement string
	Attrs     stringtemplate.Attrs
}

func htmlTemplates() stringtemplate.Templates {
	return stringtemplate.Templates{
		"label":               `<span class="label label-{{type}}{{attrs.class}}"{{attrs}}>{{content}}</span>`,
		"badge":               `<span class="badge{{attrs.class}}"{{attrs}}>{{content}}</span>`,
		"alert":               `<div class="alert alert-{{type}}{{attrs.class}}" role="alert"{{attrs}}>{{close}}{{content}}</div>`,
		"alertClose":          `<button type="button" class="close" data-dismiss="alert" aria-label="Close"><span aria-hidden="true">&times;</span></button>`,
		"tooltip":             `<span data-toggle="tooltip" data-placement="{{placement}}" title="{{tooltip}}"{{attrs}}>{{content}}</span>`,
		"progress":            `<div class="progress{{attrs.class}}"{{attrs}}>{{content}}</div>`,
		"progressBar":         `<div class="progress-bar progress-bar-{{type}}{{attrs.class}}" role="progressbar" aria-valuenow="{{width}}" aria-valuemin="0" aria-valuemax="100" style="width: {{width}}%;"{{attrs}}>{{inner}}</div>`,
		"progressBarInner":    `<span class="sr-only">{{width}}%</span>`,
		"progressBarDisplay":  `{{width}}%`,
		"dropdownMenu":        `<ul class="dropdown-menu{{attrs.class}}"{{attrs}}>{{content}}</ul>`,
		"dropdownMenuItem":    `<li{{attrs}}>{{content}}</li>`,
		"dropdownMenuHeader":  `<li class="dropdown-header{{attrs.class}}"{{attrs}}>{{content}}</li>`,
		"dropdownMenuDivider": `<li role="separator" class="divider{{attrs.class}}"{{attrs}}></li>`,
		"breadcrumb":          `<ol class="breadcrumb{{attrs.class}}"{{attrs}}>{{content}}</ol>`,
		"breadcrumbItem":      `<li{{attrs}}>{{content}}</li>`,
		"link":                `<a href="{{url}}"{{attrs}}>{{content}}</a>`,
		"pageHeader":          `<div class="page-header{{attrs.class}}"{{attrs}}><h1>{{title}}{{subtitle}}</h1></div>`,
		"pageHeaderSubtitle":  ` <small>{{content}}</small>`,
	}
}

// HTMLHelper renders standalone Bootstrap components.
type HTMLHelper struct {
	base
}

// NewHTMLHelper constructs the HTML helper for view.
func NewHTMLHelper(view *View) *HTMLHelper {
	return &HTMLHelper{base: newBase(view, "html", htmlTemplates())}
}

// Icon renders a glyphicon.
func (h *HTMLHelper) Icon(name string, attrs stringtemplate.Attrs) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: icon name is required", ErrInvalidOptions)
	}
	return h.icon(name, attrs)
}

// Label renders a contextual label; kind defaults to "default".
func (h *HTMLHelper) Label(text, kind string, attrs stringtemplate.Attrs) (string, error) {
	content, err := h.title(text)
	if err != nil {
		return "", err
	}
	return h.format("label", stringtemplate.Data{
		"type":    kindOr(kind, "default"),
		"content": content,
		"attrs":   stringtemplate.FormatAttributes(attrs),
	})
}

// Badge renders a badge counter.
func (h *HTMLHelper) Badge(text string, attrs stringtemplate.Attrs) (string, error) {
	content, err := h.title(text)
	if err != nil {
		return "", err
	}
	return h.format("badge", stringtemplate.Data{
		"content": content,
		"attrs":   stringtemplate.FormatAttributes(attrs),
	})
}

// Alert renders an alert box; kind defaults to "warning".
func (h *HTMLHelper) Alert(text, kind string, opts AlertOptions) (string, error) {
	attrs := opts.Attrs.Clone()
	closeButton := ""
	if opts.Dismissible {
		stringtemplate.AddClass(attrs, "alert-dismissible")
		var err error
		if closeButton, err = h.format("alertClose", nil); err != nil {
			return "", err
		}
	}
	return h.format("alert", stringtemplate.Data{
		"type":    kindOr(kind, "warning"),
		"close":   closeButton,
		"content": h.content(text, opts.AllowHTML),
		"attrs":   stringtemplate.FormatAttributes(attrs),
	})
}

// Tooltip wraps text in a span carrying a tooltip.
func (h *HTMLHelper) Tooltip(text, tip string, opts TooltipOptions) (string, error) {
	placement := strings.TrimSpace(opts.Placement)
	switch placement {
	case "":
		placement = "top"
	case "top", "bottom", "left", "right", "auto":
	default:
		return "", fmt.Errorf("%w: tooltip placement %q", ErrInvalidOptions, placement)
	}
	content, err := h.title(text)
	if err != nil {
		return "", err
	}
	return h.format("tooltip", stringtemplate.Data{
		"placement": placement,
		"tooltip":   html.EscapeString(tip),
		"content":   content,
		"attrs":     stringtemplate.FormatAttributes(opts.Attrs, "title", "data-toggle", "data-placement"),
	})
}

// Progress renders a progress element with one or more stacked bars.
func (h *HTMLHelper) Progress(bars []ProgressBar, attrs stringtemplate.Attrs) (string, error) {
	if len(bars) == 0 {
		return "", fmt.Errorf("%w: progress requires at least one bar", ErrInvalidOptions)
	}

	var content strings.Builder
	for _, bar := range bars {
		width := strconv.FormatFloat(clamp(bar.Width, 0, 100), 'f', -1, 64)
		barAttrs := bar.Attrs.Clone()
		if bar.Striped || bar.Active {
			stringtemplate.AddClass(barAttrs, "progress-bar-striped")
		}
		if bar.Active {
			stringtemplate.AddClass(barAttrs, "active")
		}

		innerTemplate := "progressBarInner"
		if bar.Display {
			innerTemplate = "progressBarDisplay"
		}
		inner, err := h.format(innerTemplate, stringtemplate.Data{"width": width})
		if err != nil {
			return "", err
		}
		rendered, err := h.format("progressBar", stringtemplate.Data{
			"type":  kindOr(bar.Kind, "primary"),
			"width": width,
			"inner": inner,
			"attrs": stringtemplate.FormatAttributes(barAttrs, "style", "role"),
		})
		if err != nil {
			return "", err
		}
		content.WriteString(rendered)
	}

	return h.format("progress", stringtemplate.Data{
		"content": content.String(),
		"attrs":   stringtemplate.FormatAttributes(attrs),
	})
}

// Dropdown renders a dropdown menu list.
func (h *HTMLHelper) Dropdown(items []MenuItem, attrs stringtemplate.Attrs) (string, error) {
	var content strings.Builder
	for idx, item := range items {
		rendered, err := h.menuItem(item)
		if err != nil {
			return "", fmt.Errorf("dropdown item %d: %w", idx, err)
		}
		content.WriteString(rendered)
	}
	return h.format("dropdownMenu", stringtemplate.Data{
		"content": content.String(),
		"attrs":   stringtemplate.FormatAttributes(attrs),
	})
}

func (h *HTMLHelper) menuItem(item MenuItem) (string, error) {
	switch strings.TrimSpace(item.Kind) {
	case MenuDivider:
		return h.format("dropdownMenuDivider", stringtemplate.Data{
			"attrs": stringtemplate.FormatAttributes(item.Attrs),
		})
	case MenuHeader:
		title, err := h.title(item.Title)
		if err != nil {
			return "", err
		}
		return h.format("dropdownMenuHeader", stringtemplate.Data{
			"content": title,
			"attrs":   stringtemplate.FormatAttributes(item.Attrs),
		})
	case "", MenuLink:
		link, err := h.Link(item.Title, orDefault(item.URL, "#"), item.LinkAttrs)
		if err != nil {
			return "", err
		}
		attrs := item.Attrs.Clone()
		if item.Active {
			stringtemplate.AddClass(attrs, "active")
		}
		if item.Disabled {
			stringtemplate.AddClass(attrs, "disabled")
		}
		return h.format("dropdownMenuItem", stringtemplate.Data{
			"content": link,
			"attrs":   stringtemplate.FormatAttributes(attrs),
		})
	default:
		return "", fmt.Errorf("%w: unknown menu item kind %q", ErrInvalidOptions, item.Kind)
	}
}

// Breadcrumbs renders a breadcrumb trail. The last crumb is rendered as the
// active, unlinked entry.
func (h *HTMLHelper) Breadcrumbs(crumbs []Crumb, attrs stringtemplate.Attrs) (string, error) {
	if len(crumbs) == 0 {
		return "", nil
	}
	var content strings.Builder
	for idx, crumb := range crumbs {
		last := idx == len(crumbs)-1
		var (
			inner string
			err   error
		)
		if last || strings.TrimSpace(crumb.URL) == "" {
			inner, err = h.title(crumb.Title)
		} else {
			inner, err = h.Link(crumb.Title, crumb.URL, nil)
		}
		if err != nil {
			return "", err
		}
		itemAttrs := stringtemplate.Attrs{}
		if last {
			stringtemplate.AddClass(itemAttrs, "active")
		}
		rendered, err := h.format("breadcrumbItem", stringtemplate.Data{
			"content": inner,
			"attrs":   stringtemplate.FormatAttributes(itemAttrs),
		})
		if err != nil {
			return "", err
		}
		content.WriteString(rendered)
	}
	return h.format("breadcrumb", stringtemplate.Data{
		"content": content.String(),
		"attrs":   stringtemplate.FormatAttributes(attrs),
	})
}

// Link renders an anchor; the title may carry easy icon tokens.
func (h *HTMLHelper) Link(title, url string, attrs stringtemplate.Attrs) (string, error) {
	content, err := h.title(title)
	if err != nil {
		return "", err
	}
	return h.format("link", stringtemplate.Data{
		"url":     html.EscapeString(url),
		"content": content,
		"attrs":   stringtemplate.FormatAttributes(attrs, "href"),
	})
}

// PageHeader renders a page header with an optional subtitle.
func (h *HTMLHelper) PageHeader(title, subtitle string, attrs stringtemplate.Attrs) (string, error) {
	heading, err := h.title(title)
	if err != nil {
		return "", err
	}
	small := ""
	if strings.TrimSpace(subtitle) != "" {
		if small, err = h.format("pageHeaderSubtitle", stringtemplate.Data{"content": h.text(subtitle)}); err != nil {
			return "", err
		}
	}
	return h.format("pageHeader", stringtemplate.Data{
		"title":    heading,
		"subtitle": small,
		"attrs":    stringtemplate.FormatAttributes(attrs),
	})
}

func kindOr(kind, fallback string) string {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return fallback
	}
	return html.EscapeString(kind)
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func clamp(value, lower, upper float64) float64 {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
