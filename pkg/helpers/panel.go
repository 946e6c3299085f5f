package helpers

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/goliatone/go-bootstrap/pkg/stringtemplate"
)

// PanelOptions configures PanelHelper.Create.
type PanelOptions struct {
	// Kind is the contextual class; defaults to "default".
	Kind string
	ID   string
	// Collapsible wraps body and footer in a collapse region toggled by the
	// heading. Open expands it initially.
	Collapsible bool
	Open        bool
	// Parent is the accordion id collapsible panels close each other in.
	Parent string
	Attrs  stringtemplate.Attrs
}

// PanelGroupOptions configures PanelHelper.Group.
type PanelGroupOptions struct {
	ID string
	// Open is the index of the panel expanded initially; negative keeps all
	// panels closed.
	Open  int
	Attrs stringtemplate.Attrs
}

func panelTemplates() stringtemplate.Templates {
	return stringtemplate.Templates{
		"panel":              `<div class="panel panel-{{type}}{{attrs.class}}"{{attrs}}>{{content}}</div>`,
		"heading":            `<div class="panel-heading"><h3 class="panel-title">{{title}}</h3></div>`,
		"collapsibleHeading": `<div class="panel-heading" role="tab" id="{{id}}-heading"><h4 class="panel-title"><a role="button" data-toggle="collapse"{{parent}} href="#{{id}}" aria-expanded="{{expanded}}" aria-controls="{{id}}"{{class}}>{{title}}</a></h4></div>`,
		"collapse":           `<div id="{{id}}" class="panel-collapse collapse{{in}}" role="tabpanel" aria-labelledby="{{id}}-heading">{{content}}</div>`,
		"body":               `<div class="panel-body">{{content}}</div>`,
		"footer":             `<div class="panel-footer">{{content}}</div>`,
		"group":              `<div class="panel-group{{attrs.class}}" id="{{id}}" role="tablist" aria-multiselectable="true"{{attrs}}>{{content}}</div>`,
	}
}

// PanelHelper creates panel builders and accordion groups.
type PanelHelper struct {
	base
	counter int
}

// NewPanelHelper constructs the panel helper for view.
func NewPanelHelper(view *View) *PanelHelper {
	return &PanelHelper{base: newBase(view, "panel", panelTemplates())}
}

func (h *PanelHelper) nextID(prefix string) string {
	h.counter++
	return prefix + "-" + strconv.Itoa(h.counter)
}

// Panel builds a panel. Sections follow the same header, body, footer order
// as modals.
type Panel struct {
	helper  *PanelHelper
	group   *PanelGroup
	id      string
	opts    PanelOptions
	heading string
	body    string
	footer  string
	state   part
	err     error
}

// Create starts a panel. An empty title omits the heading, which is not
// allowed for collapsible panels.
func (h *PanelHelper) Create(title string, opts PanelOptions) *Panel {
	panel := &Panel{helper: h, opts: opts, id: strings.TrimSpace(opts.ID)}
	if panel.id == "" && opts.Collapsible {
		panel.id = h.nextID("panel")
	}
	if strings.TrimSpace(title) == "" {
		if opts.Collapsible {
			panel.fail(fmt.Errorf("%w: collapsible panels need a title", ErrInvalidOptions))
		}
		return panel
	}

	heading, err := h.title(title)
	if err != nil {
		panel.fail(err)
		return panel
	}
	if !opts.Collapsible {
		panel.heading, err = h.format("heading", stringtemplate.Data{"title": heading})
		panel.fail(err)
		return panel
	}

	parent := ""
	if p := strings.TrimSpace(opts.Parent); p != "" {
		parent = ` data-parent="#` + html.EscapeString(p) + `"`
	}
	class := ""
	if !opts.Open {
		class = ` class="collapsed"`
	}
	panel.heading, err = h.format("collapsibleHeading", stringtemplate.Data{
		"id":       html.EscapeString(panel.id),
		"parent":   parent,
		"expanded": strconv.FormatBool(opts.Open),
		"class":    class,
		"title":    heading,
	})
	panel.fail(err)
	return panel
}

// ID returns the panel id, empty for plain panels without one.
func (p *Panel) ID() string { return p.id }

// Err returns the first error recorded by the builder.
func (p *Panel) Err() error { return p.err }

func (p *Panel) fail(err error) {
	if err != nil && p.err == nil {
		p.err = err
	}
}

// Body sets the panel body. content is trusted markup.
func (p *Panel) Body(content string) *Panel {
	if p.advance(partBody) {
		p.body, p.err = p.helper.format("body", stringtemplate.Data{"content": content})
	}
	return p
}

// Footer sets the panel footer. content is trusted markup.
func (p *Panel) Footer(content string) *Panel {
	if p.advance(partFooter) {
		p.footer, p.err = p.helper.format("footer", stringtemplate.Data{"content": content})
	}
	return p
}

// End renders the panel. Panels created through a PanelGroup are also
// appended to it.
func (p *Panel) End() (string, error) {
	if p.err != nil {
		return "", p.err
	}
	if p.state == partEnded {
		return "", fmt.Errorf("%w: panel already ended", ErrInvalidState)
	}
	p.state = partEnded

	h := p.helper
	content := p.body + p.footer
	if p.opts.Collapsible {
		in := ""
		if p.opts.Open {
			in = " in"
		}
		var err error
		content, err = h.format("collapse", stringtemplate.Data{
			"id":      html.EscapeString(p.id),
			"in":      in,
			"content": content,
		})
		if err != nil {
			return "", err
		}
	}

	attrs := p.opts.Attrs.Clone()
	if p.id != "" && !p.opts.Collapsible {
		attrs["id"] = p.id
	}
	rendered, err := h.format("panel", stringtemplate.Data{
		"type":    kindOr(p.opts.Kind, "default"),
		"content": p.heading + content,
		"attrs":   stringtemplate.FormatAttributes(attrs),
	})
	if err != nil {
		return "", err
	}
	if p.group != nil {
		p.group.release(p, rendered)
	}
	return rendered, nil
}

func (p *Panel) advance(next part) bool {
	if p.err != nil {
		return false
	}
	if p.state >= next {
		p.fail(fmt.Errorf("%w: panel %s after %s", ErrInvalidState, next, p.state))
		return false
	}
	p.state = next
	return true
}

// PanelGroup collects collapsible panels into an accordion.
type PanelGroup struct {
	helper  *PanelHelper
	id      string
	opts    PanelGroupOptions
	count   int
	open    []*Panel
	content strings.Builder
	err     error
	ended   bool
}

// Group starts an accordion.
func (h *PanelHelper) Group(opts PanelGroupOptions) *PanelGroup {
	id := strings.TrimSpace(opts.ID)
	if id == "" {
		id = h.nextID("accordion")
	}
	return &PanelGroup{helper: h, id: id, opts: opts}
}

// ID returns the accordion id.
func (g *PanelGroup) ID() string { return g.id }

// Panel creates a collapsible panel bound to the group. The panel at the
// group's Open index starts expanded.
func (g *PanelGroup) Panel(title string, opts PanelOptions) *Panel {
	opts.Collapsible = true
	opts.Parent = g.id
	opts.Open = g.count == g.opts.Open
	g.count++

	panel := g.helper.Create(title, opts)
	if g.ended {
		panel.fail(fmt.Errorf("%w: panel group already ended", ErrInvalidState))
	}
	panel.group = g
	g.open = append(g.open, panel)
	return panel
}

// Add appends pre-rendered markup to the group.
func (g *PanelGroup) Add(markup string) *PanelGroup {
	if g.ended {
		g.fail(fmt.Errorf("%w: panel group already ended", ErrInvalidState))
		return g
	}
	g.content.WriteString(markup)
	return g
}

// End renders the group. Every panel created through it must have ended.
func (g *PanelGroup) End() (string, error) {
	if g.err != nil {
		return "", g.err
	}
	if g.ended {
		return "", fmt.Errorf("%w: panel group already ended", ErrInvalidState)
	}
	if len(g.open) > 0 {
		return "", fmt.Errorf("%w: %d panel(s) in group %q not ended", ErrInvalidState, len(g.open), g.id)
	}
	g.ended = true
	return g.helper.format("group", stringtemplate.Data{
		"id":      html.EscapeString(g.id),
		"content": g.content.String(),
		"attrs":   stringtemplate.FormatAttributes(g.opts.Attrs, "id", "role"),
	})
}

func (g *PanelGroup) fail(err error) {
	if g.err == nil {
		g.err = err
	}
}

func (g *PanelGroup) release(panel *Panel, rendered string) {
	for idx, candidate := range g.open {
		if candidate == panel {
			g.open = append(g.open[:idx], g.open[idx+1:]...)
			break
		}
	}
	g.Add(rendered)
}
