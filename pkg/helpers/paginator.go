package helpers

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/goliatone/go-bootstrap/pkg/stringtemplate"
)

// Paging describes the current position in a paged collection.
type Paging struct {
	// Page is 1 based.
	Page      int
	PageCount int
	// URL builds the link for a page; defaults to "?page=N".
	URL func(page int) string
}

func (p Paging) url(page int) string {
	if p.URL != nil {
		return p.URL(page)
	}
	return "?page=" + strconv.Itoa(page)
}

// PaginationOptions configures PaginatorHelper.Pagination. Labels are
// trusted markup.
type PaginationOptions struct {
	// Size is "lg", "sm" or empty.
	Size string
	// Modulus is the number of numbered links shown around the current page;
	// defaults to 8.
	Modulus int
	// First and Last render jump links when set.
	First string
	Last  string
	// Prev and Next default to &laquo; and &raquo;.
	Prev  string
	Next  string
	Attrs stringtemplate.Attrs
}

// PagerOptions configures PaginatorHelper.Pager. Labels are trusted markup.
type PagerOptions struct {
	// Aligned pushes the links to the edges of the pager.
	Aligned bool
	Prev    string
	Next    string
	Attrs   stringtemplate.Attrs
}

const defaultModulus = 8

func paginatorTemplates() stringtemplate.Templates {
	return stringtemplate.Templates{
		"pagination":   `<nav aria-label="Page navigation"><ul class="pagination{{attrs.class}}"{{attrs}}>{{content}}</ul></nav>`,
		"number":       `<li><a href="{{url}}">{{text}}</a></li>`,
		"current":      `<li class="active"><span>{{text}} <span class="sr-only">(current)</span></span></li>`,
		"edge":         `<li><a href="{{url}}" aria-label="{{label}}"><span aria-hidden="true">{{text}}</span></a></li>`,
		"edgeDisabled": `<li class="disabled"><span aria-label="{{label}}"><span aria-hidden="true">{{text}}</span></span></li>`,
		"ellipsis":     `<li class="disabled"><span>&hellip;</span></li>`,
		"pager":        `<nav aria-label="Pager"><ul class="pager{{attrs.class}}"{{attrs}}>{{content}}</ul></nav>`,
		"pagerItem":    `<li{{attrs}}><a href="{{url}}">{{text}}</a></li>`,
	}
}

// PaginatorHelper renders pagination controls.
type PaginatorHelper struct {
	base
}

// NewPaginatorHelper constructs the paginator helper for view.
func NewPaginatorHelper(view *View) *PaginatorHelper {
	return &PaginatorHelper{base: newBase(view, "paginator", paginatorTemplates())}
}

// Pagination renders a numbered pagination list. A single page renders
// nothing.
func (h *PaginatorHelper) Pagination(paging Paging, opts PaginationOptions) (string, error) {
	if paging.PageCount <= 1 {
		return "", nil
	}
	if paging.Page < 1 || paging.Page > paging.PageCount {
		return "", fmt.Errorf("%w: page %d outside 1..%d", ErrInvalidOptions, paging.Page, paging.PageCount)
	}
	modulus := opts.Modulus
	switch {
	case modulus == 0:
		modulus = defaultModulus
	case modulus < 0:
		return "", fmt.Errorf("%w: modulus %d", ErrInvalidOptions, opts.Modulus)
	}
	attrs := opts.Attrs.Clone()
	if size := strings.TrimSpace(opts.Size); size != "" {
		if size != "lg" && size != "sm" {
			return "", fmt.Errorf("%w: pagination size %q", ErrInvalidOptions, opts.Size)
		}
		stringtemplate.AddClass(attrs, "pagination-"+size)
	}

	var (
		list strings.Builder
		err  error
	)
	add := func(name string, data stringtemplate.Data) {
		if err != nil {
			return
		}
		var rendered string
		rendered, err = h.format(name, data)
		list.WriteString(rendered)
	}
	edge := func(label, text string, target int, enabled bool) {
		if text == "" {
			return
		}
		if !enabled {
			add("edgeDisabled", stringtemplate.Data{"label": label, "text": text})
			return
		}
		add("edge", stringtemplate.Data{
			"label": label,
			"text":  text,
			"url":   html.EscapeString(paging.url(target)),
		})
	}
	number := func(page int) {
		text := strconv.Itoa(page)
		if page == paging.Page {
			add("current", stringtemplate.Data{"text": text})
			return
		}
		add("number", stringtemplate.Data{"text": text, "url": html.EscapeString(paging.url(page))})
	}

	page, count := paging.Page, paging.PageCount
	edge("First", opts.First, 1, page > 1)
	edge("Previous", orDefault(opts.Prev, "&laquo;"), page-1, page > 1)

	start, end := pageWindow(page, count, modulus)
	if start > 1 {
		number(1)
		if start > 2 {
			add("ellipsis", nil)
		}
	}
	for current := start; current <= end; current++ {
		number(current)
	}
	if end < count {
		if end < count-1 {
			add("ellipsis", nil)
		}
		number(count)
	}

	edge("Next", orDefault(opts.Next, "&raquo;"), page+1, page < count)
	edge("Last", opts.Last, count, page < count)
	if err != nil {
		return "", err
	}

	return h.format("pagination", stringtemplate.Data{
		"content": list.String(),
		"attrs":   stringtemplate.FormatAttributes(attrs),
	})
}

// pageWindow returns the range of numbered links centred on page.
func pageWindow(page, count, modulus int) (int, int) {
	if count <= modulus {
		return 1, count
	}
	start := page - modulus/2
	if start < 1 {
		start = 1
	}
	end := start + modulus - 1
	if end > count {
		end = count
		start = end - modulus + 1
	}
	return start, end
}

// Pager renders previous/next links. Links at the edges are disabled.
func (h *PaginatorHelper) Pager(paging Paging, opts PagerOptions) (string, error) {
	if paging.PageCount <= 1 {
		return "", nil
	}
	if paging.Page < 1 || paging.Page > paging.PageCount {
		return "", fmt.Errorf("%w: page %d outside 1..%d", ErrInvalidOptions, paging.Page, paging.PageCount)
	}

	prev, next := opts.Prev, opts.Next
	if prev == "" {
		prev = "Previous"
		if opts.Aligned {
			prev = `<span aria-hidden="true">&larr;</span> Older`
		}
	}
	if next == "" {
		next = "Next"
		if opts.Aligned {
			next = `Newer <span aria-hidden="true">&rarr;</span>`
		}
	}

	item := func(class, text string, target int, enabled bool) (string, error) {
		attrs := stringtemplate.Attrs{}
		if opts.Aligned {
			stringtemplate.AddClass(attrs, class)
		}
		url := "#"
		if enabled {
			url = paging.url(target)
		} else {
			stringtemplate.AddClass(attrs, "disabled")
		}
		return h.format("pagerItem", stringtemplate.Data{
			"url":   html.EscapeString(url),
			"text":  text,
			"attrs": stringtemplate.FormatAttributes(attrs),
		})
	}

	before, err := item("previous", prev, paging.Page-1, paging.Page > 1)
	if err != nil {
		return "", err
	}
	after, err := item("next", next, paging.Page+1, paging.Page < paging.PageCount)
	if err != nil {
		return "", err
	}
	return h.format("pager", stringtemplate.Data{
		"content": before + after,
		"attrs":   stringtemplate.FormatAttributes(opts.Attrs),
	})
}
