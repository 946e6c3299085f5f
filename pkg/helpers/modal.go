package helpers

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/goliatone/go-bootstrap/pkg/stringtemplate"
)

// ModalOptions configures ModalHelper.Create.
type ModalOptions struct {
	// ID defaults to an auto generated "modal-N".
	ID string
	// Size is "lg", "sm" or empty.
	Size    string
	NoClose bool
	NoFade  bool
	Attrs   stringtemplate.Attrs
}

func modalTemplates() stringtemplate.Templates {
	return stringtemplate.Templates{
		"modal":            `<div class="modal{{fade}}{{attrs.class}}" id="{{id}}" tabindex="-1" role="dialog" aria-labelledby="{{id}}-label"{{attrs}}><div class="modal-dialog{{size}}" role="document"><div class="modal-content">{{content}}</div></div></div>`,
		"modalHeader":      `<div class="modal-header">{{close}}<h4 class="modal-title" id="{{id}}-label">{{title}}</h4></div>`,
		"modalClose":       `<button type="button" class="close" data-dismiss="modal" aria-label="Close"><span aria-hidden="true">&times;</span></button>`,
		"modalBody":        `<div class="modal-body">{{content}}</div>`,
		"modalFooter":      `<div class="modal-footer">{{content}}</div>`,
		"modalFooterClose": `<button type="button" class="btn btn-default" data-dismiss="modal">Close</button>`,
	}
}

// ModalHelper creates modal builders.
type ModalHelper struct {
	base
	counter int
}

// NewModalHelper constructs the modal helper for view.
func NewModalHelper(view *View) *ModalHelper {
	return &ModalHelper{base: newBase(view, "modal", modalTemplates())}
}

// part tracks which section of a modal or panel was written last.
type part int

const (
	partHeader part = iota
	partBody
	partFooter
	partEnded
)

func (p part) String() string {
	switch p {
	case partHeader:
		return "header"
	case partBody:
		return "body"
	case partFooter:
		return "footer"
	default:
		return "end"
	}
}

// Modal builds a modal dialog. Sections must be added in header, body,
// footer order.
type Modal struct {
	helper  *ModalHelper
	id      string
	opts    ModalOptions
	content strings.Builder
	state   part
	err     error
}

// Create starts a modal and renders its header.
func (h *ModalHelper) Create(title string, opts ModalOptions) *Modal {
	id := strings.TrimSpace(opts.ID)
	if id == "" {
		h.counter++
		id = "modal-" + strconv.Itoa(h.counter)
	}
	modal := &Modal{helper: h, id: id, opts: opts}

	switch strings.TrimSpace(opts.Size) {
	case "", "lg", "sm":
	default:
		modal.fail(fmt.Errorf("%w: modal size %q", ErrInvalidOptions, opts.Size))
		return modal
	}

	closeButton := ""
	if !opts.NoClose {
		var err error
		if closeButton, err = h.format("modalClose", nil); err != nil {
			modal.fail(err)
			return modal
		}
	}
	heading, err := h.title(title)
	if err != nil {
		modal.fail(err)
		return modal
	}
	header, err := h.format("modalHeader", stringtemplate.Data{
		"id":    html.EscapeString(id),
		"close": closeButton,
		"title": heading,
	})
	if err != nil {
		modal.fail(err)
		return modal
	}
	modal.content.WriteString(header)
	return modal
}

// Render builds a complete modal in one call. An empty footer is omitted.
func (h *ModalHelper) Render(title, body, footer string, opts ModalOptions) (string, error) {
	modal := h.Create(title, opts).Body(body)
	if footer != "" {
		modal.Footer(footer)
	}
	return modal.End()
}

// ID returns the modal element id.
func (m *Modal) ID() string { return m.id }

// Err returns the first error recorded by the builder.
func (m *Modal) Err() error { return m.err }

func (m *Modal) fail(err error) {
	if m.err == nil {
		m.err = err
	}
}

// Body adds the modal body. content is trusted markup.
func (m *Modal) Body(content string) *Modal {
	if !m.advance(partBody) {
		return m
	}
	m.write(m.helper.format("modalBody", stringtemplate.Data{"content": content}))
	return m
}

// Footer adds the modal footer. An empty content renders a close button.
func (m *Modal) Footer(content string) *Modal {
	if !m.advance(partFooter) {
		return m
	}
	if content == "" {
		var err error
		if content, err = m.helper.format("modalFooterClose", nil); err != nil {
			m.fail(err)
			return m
		}
	}
	m.write(m.helper.format("modalFooter", stringtemplate.Data{"content": content}))
	return m
}

// End renders the modal.
func (m *Modal) End() (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.state == partEnded {
		return "", fmt.Errorf("%w: modal already ended", ErrInvalidState)
	}
	m.state = partEnded

	fade := " fade"
	if m.opts.NoFade {
		fade = ""
	}
	size := ""
	if s := strings.TrimSpace(m.opts.Size); s != "" {
		size = " modal-" + s
	}
	return m.helper.format("modal", stringtemplate.Data{
		"id":      html.EscapeString(m.id),
		"fade":    fade,
		"size":    size,
		"content": m.content.String(),
		"attrs":   stringtemplate.FormatAttributes(m.opts.Attrs, "id", "role", "tabindex"),
	})
}

func (m *Modal) advance(next part) bool {
	if m.err != nil {
		return false
	}
	if m.state >= next {
		m.fail(fmt.Errorf("%w: modal %s after %s", ErrInvalidState, next, m.state))
		return false
	}
	m.state = next
	return true
}

func (m *Modal) write(rendered string, err error) {
	if err != nil {
		m.fail(err)
		return
	}
	m.content.WriteString(rendered)
}
