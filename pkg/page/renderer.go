package page

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"

	gotheme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-bootstrap/pkg/config"
	"github.com/goliatone/go-bootstrap/pkg/helpers"
	"github.com/goliatone/go-bootstrap/pkg/stringtemplate"
	"github.com/goliatone/go-bootstrap/pkg/theme"
	"github.com/goliatone/go-bootstrap/pkg/widgets"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithConfig sets the helper configuration.
func WithConfig(cfg config.Config) Option {
	return func(r *Renderer) {
		r.config = cfg
	}
}

// WithLogger sets the logger passed down to the helpers.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithThemeSelector registers the go-theme selector used to resolve the
// document theme.
func WithThemeSelector(selector gotheme.ThemeSelector) Option {
	return func(r *Renderer) {
		r.selector = selector
	}
}

// WithHelperOptions appends options applied when building the helpers for
// each render, after the renderer's own.
func WithHelperOptions(options ...helpers.Option) Option {
	return func(r *Renderer) {
		r.helperOptions = append(r.helperOptions, options...)
	}
}

// Renderer turns documents into HTML pages.
type Renderer struct {
	config        config.Config
	logger        *zap.Logger
	selector      gotheme.ThemeSelector
	helperOptions []helpers.Option
}

// NewRenderer constructs a Renderer.
func NewRenderer(options ...Option) *Renderer {
	r := &Renderer{
		config: config.Default(),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Render builds every section with a fresh helper set and renders the
// layout template. The context is checked between sections.
func (r *Renderer) Render(ctx context.Context, doc Document) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}

	themeCfg, err := r.resolveTheme(doc.Theme)
	if err != nil {
		return nil, err
	}

	options := []helpers.Option{
		helpers.WithConfig(r.config),
		helpers.WithLogger(r.logger),
		helpers.WithRequestPath(doc.RequestPath),
		helpers.WithTheme(themeCfg),
	}
	h, err := helpers.New(append(options, r.helperOptions...)...)
	if err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}

	navbar := ""
	if doc.Navbar != nil {
		if navbar, err = renderNavbar(h, *doc.Navbar); err != nil {
			return nil, fmt.Errorf("page: navbar: %w", err)
		}
	}

	flash, err := h.Flash.Render(flashMessages(doc.Flash))
	if err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}

	sections := make([]string, 0, len(doc.Sections))
	for _, section := range doc.Sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rendered, err := renderSection(h, section)
		if err != nil {
			return nil, fmt.Errorf("page: section %q: %w", section.Name, err)
		}
		r.logger.Debug("rendered section",
			zap.String("name", section.Name),
			zap.String("kind", section.Kind),
			zap.Int("bytes", len(rendered)),
		)
		sections = append(sections, rendered)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stylesheets, scripts := h.Form.Assets()
	container := "container"
	if doc.Fluid {
		container = "container-fluid"
	}
	data := map[string]any{
		"title":       doc.Title,
		"lang":        doc.Lang,
		"head":        themeCfg.HeadTags(),
		"stylesheets": stylesheets,
		"navbar":      navbar,
		"flash":       flash,
		"container":   container,
		"sections":    sections,
		"scripts":     themeCfg.ScriptTags() + scriptTags(scripts),
	}

	layout := themeCfg.PartialFor("layout", "layout/default")
	out, err := h.View.Renderer().RenderTemplate(layout, data)
	if err != nil {
		return nil, fmt.Errorf("page: render layout %q: %w", layout, err)
	}
	return []byte(out), nil
}

func (r *Renderer) resolveTheme(ref ThemeRef) (*theme.Config, error) {
	name := strings.TrimSpace(ref.Name)
	variant := strings.TrimSpace(ref.Variant)
	if name == "" {
		name = r.config.Theme.Name
	}
	if variant == "" {
		variant = r.config.Theme.Variant
	}

	if r.selector == nil {
		if name != "" {
			return nil, fmt.Errorf("page: theme %q requested without a theme selector", name)
		}
		return theme.Default(), nil
	}
	cfg, err := theme.Resolve(r.selector, name, variant, nil)
	if err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}
	return cfg, nil
}

func renderNavbar(h *helpers.Helpers, doc Navbar) (string, error) {
	nav := h.Navbar.Create(doc.Brand, helpers.NavbarOptions{
		BrandURL: doc.BrandURL,
		Fixed:    doc.Fixed,
		Static:   doc.Static,
		Fluid:    doc.Fluid,
		Inverse:  doc.Inverse,
	})
	for _, menu := range doc.Menus {
		nav.BeginMenu("", "", helpers.MenuOptions{Align: menu.Align})
		for _, item := range menu.Items {
			addMenuItem(nav, item)
		}
		nav.EndMenu()
	}
	if doc.Text != "" {
		nav.Text(doc.Text, nil)
	}
	if doc.Search != nil {
		nav.SearchForm(doc.Search.Action, helpers.SearchOptions{
			Placeholder: doc.Search.Placeholder,
			Align:       doc.Search.Align,
		})
	}
	return nav.End()
}

func addMenuItem(nav *helpers.Navbar, item MenuItem) {
	switch {
	case item.Divider:
		nav.Divider()
	case item.Header != "":
		nav.Header(item.Header)
	case len(item.Items) > 0:
		nav.BeginMenu(item.Title, item.URL, helpers.MenuOptions{Align: item.Align})
		for _, child := range item.Items {
			addMenuItem(nav, child)
		}
		nav.EndMenu()
	default:
		nav.Link(item.Title, item.URL, helpers.LinkOptions{Active: item.Active})
	}
}

func flashMessages(entries []Flash) []helpers.FlashMessage {
	messages := make([]helpers.FlashMessage, 0, len(entries))
	for _, entry := range entries {
		messages = append(messages, helpers.FlashMessage{
			Element:   entry.Element,
			Message:   entry.Message,
			Params:    entry.Params,
			AllowHTML: entry.HTML,
		})
	}
	return messages
}

func renderSection(h *helpers.Helpers, section Section) (string, error) {
	switch section.Kind {
	case SectionHeader:
		return h.HTML.PageHeader(section.Title, section.Subtitle, nil)
	case SectionBreadcrumbs:
		crumbs := make([]helpers.Crumb, 0, len(section.Crumbs))
		for _, crumb := range section.Crumbs {
			crumbs = append(crumbs, helpers.Crumb{Title: crumb.Title, URL: crumb.URL})
		}
		return h.HTML.Breadcrumbs(crumbs, nil)
	case SectionAlert:
		return h.HTML.Alert(section.Text, section.Style, helpers.AlertOptions{
			Dismissible: section.Dismissible,
			AllowHTML:   section.HTML,
		})
	case SectionPanel:
		panel := h.Panel.Create(section.Title, helpers.PanelOptions{Kind: section.Style}).
			Body(html.EscapeString(section.Text))
		if section.Footer != "" {
			panel.Footer(html.EscapeString(section.Footer))
		}
		return panel.End()
	case SectionAccordion:
		group := h.Panel.Group(helpers.PanelGroupOptions{ID: section.Name})
		for _, entry := range section.Panels {
			if _, err := group.Panel(entry.Title, helpers.PanelOptions{Kind: entry.Style}).
				Body(html.EscapeString(entry.Text)).
				End(); err != nil {
				return "", err
			}
		}
		return group.End()
	case SectionProgress:
		bars := make([]helpers.ProgressBar, 0, len(section.Bars))
		for _, bar := range section.Bars {
			bars = append(bars, helpers.ProgressBar{
				Width:   bar.Width,
				Kind:    bar.Style,
				Striped: bar.Striped,
				Active:  bar.Active,
				Display: bar.Display,
			})
		}
		return h.HTML.Progress(bars, nil)
	case SectionForm:
		return renderForm(h.Form, *section.Form)
	case SectionPagination:
		pattern := section.URL
		paging := helpers.Paging{Page: section.Page, PageCount: section.PageCount}
		if pattern != "" {
			paging.URL = func(page int) string {
				return strings.ReplaceAll(pattern, "{page}", strconv.Itoa(page))
			}
		}
		return h.Paginator.Pagination(paging, helpers.PaginationOptions{})
	default:
		return "", fmt.Errorf("unknown kind %q", section.Kind)
	}
}

func renderForm(f *helpers.FormHelper, doc Form) (string, error) {
	layout := strings.ToLower(strings.TrimSpace(doc.Layout))
	if layout != "" && layout != "horizontal" && layout != "inline" {
		return "", fmt.Errorf("%w: form layout %q", helpers.ErrInvalidOptions, doc.Layout)
	}

	var out strings.Builder
	write := func(markup string, err error) error {
		if err != nil {
			return err
		}
		out.WriteString(markup)
		return nil
	}

	if err := write(f.Create(doc.Action, helpers.FormOptions{
		Method:     doc.Method,
		Horizontal: layout == "horizontal",
		Inline:     layout == "inline",
		Values:     doc.Values,
		Errors:     doc.Errors,
	})); err != nil {
		return "", err
	}
	for _, control := range doc.Controls {
		options := make([]widgets.Option, 0, len(control.Options))
		for _, opt := range control.Options {
			options = append(options, widgets.Option{Value: opt.Value, Text: opt.Text, Disabled: opt.Disabled})
		}
		err := write(f.Control(control.Name, helpers.ControlOptions{
			Type:        control.Type,
			Label:       control.Label,
			Value:       control.Value,
			Options:     options,
			Empty:       control.Empty,
			Multiple:    control.Multiple,
			Inline:      control.Inline,
			Placeholder: control.Placeholder,
			Help:        control.Help,
			Prepend:     control.Prepend,
			Append:      control.Append,
			Required:    control.Required,
		}))
		if err != nil {
			return "", errors.Join(err, closeForm(f))
		}
	}
	if doc.Submit != "" {
		if err := write(f.Submit(doc.Submit, helpers.ButtonOptions{})); err != nil {
			return "", errors.Join(err, closeForm(f))
		}
	}
	if err := write(f.End()); err != nil {
		return "", err
	}
	return out.String(), nil
}

func closeForm(f *helpers.FormHelper) error {
	_, err := f.End()
	return err
}

func scriptTags(scripts []widgets.Script) string {
	var builder strings.Builder
	for _, script := range scripts {
		builder.WriteString("<script")
		if script.Src != "" {
			builder.WriteString(` src="`)
			builder.WriteString(html.EscapeString(script.Src))
			builder.WriteByte('"')
		}
		if script.Type != "" {
			builder.WriteString(` type="`)
			builder.WriteString(html.EscapeString(script.Type))
			builder.WriteByte('"')
		}
		if script.Async {
			builder.WriteString(" async")
		}
		if script.Defer {
			builder.WriteString(" defer")
		}
		if len(script.Attrs) > 0 {
			attrs := make(stringtemplate.Attrs, len(script.Attrs))
			for key, value := range script.Attrs {
				attrs[key] = value
			}
			builder.WriteString(stringtemplate.FormatAttributes(attrs, "src", "type", "async", "defer"))
		}
		builder.WriteByte('>')
		builder.WriteString(script.Inline)
		builder.WriteString("</script>\n")
	}
	return builder.String()
}
