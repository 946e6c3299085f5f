// Package page renders declarative page documents into complete Bootstrap
// pages using the view helpers.
package page

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Section kinds understood by the renderer.
const (
	SectionHeader      = "header"
	SectionBreadcrumbs = "breadcrumbs"
	SectionAlert       = "alert"
	SectionPanel       = "panel"
	SectionAccordion   = "accordion"
	SectionProgress    = "progress"
	SectionForm        = "form"
	SectionPagination  = "pagination"
)

var sectionKinds = []string{
	SectionHeader, SectionBreadcrumbs, SectionAlert, SectionPanel,
	SectionAccordion, SectionProgress, SectionForm, SectionPagination,
}

// Document describes a page.
type Document struct {
	Title       string    `json:"title" yaml:"title"`
	Lang        string    `json:"lang" yaml:"lang"`
	Theme       ThemeRef  `json:"theme" yaml:"theme"`
	RequestPath string    `json:"requestPath" yaml:"requestPath"`
	Fluid       bool      `json:"fluid" yaml:"fluid"`
	Navbar      *Navbar   `json:"navbar" yaml:"navbar"`
	Flash       []Flash   `json:"flash" yaml:"flash"`
	Sections    []Section `json:"sections" yaml:"sections"`
}

// ThemeRef names the go-theme selection for the page.
type ThemeRef struct {
	Name    string `json:"name" yaml:"name"`
	Variant string `json:"variant" yaml:"variant"`
}

// Navbar describes the page navbar.
type Navbar struct {
	Brand    string  `json:"brand" yaml:"brand"`
	BrandURL string  `json:"brandUrl" yaml:"brandUrl"`
	Fixed    string  `json:"fixed" yaml:"fixed"`
	Static   bool    `json:"static" yaml:"static"`
	Fluid    bool    `json:"fluid" yaml:"fluid"`
	Inverse  bool    `json:"inverse" yaml:"inverse"`
	Menus    []Menu  `json:"menus" yaml:"menus"`
	Text     string  `json:"text" yaml:"text"`
	Search   *Search `json:"search" yaml:"search"`
}

// Menu is a nav list.
type Menu struct {
	Align string     `json:"align" yaml:"align"`
	Items []MenuItem `json:"items" yaml:"items"`
}

// MenuItem is a link, or a dropdown when it has Items. Divider and Header
// entries are only valid inside dropdowns.
type MenuItem struct {
	Title   string     `json:"title" yaml:"title"`
	URL     string     `json:"url" yaml:"url"`
	Active  bool       `json:"active" yaml:"active"`
	Divider bool       `json:"divider" yaml:"divider"`
	Header  string     `json:"header" yaml:"header"`
	Align   string     `json:"align" yaml:"align"`
	Items   []MenuItem `json:"items" yaml:"items"`
}

// Search is a navbar search form.
type Search struct {
	Action      string `json:"action" yaml:"action"`
	Placeholder string `json:"placeholder" yaml:"placeholder"`
	Align       string `json:"align" yaml:"align"`
}

// Flash is a queued flash message.
type Flash struct {
	Element string         `json:"element" yaml:"element"`
	Message string         `json:"message" yaml:"message"`
	Params  map[string]any `json:"params" yaml:"params"`
	HTML    bool           `json:"html" yaml:"html"`
}

// Section is one block of page content. Kind selects which fields apply.
type Section struct {
	// Name identifies the section for selection; defaults to "<kind>-<n>".
	Name        string  `json:"name" yaml:"name"`
	Kind        string  `json:"kind" yaml:"kind"`
	Title       string  `json:"title" yaml:"title"`
	Subtitle    string  `json:"subtitle" yaml:"subtitle"`
	Text        string  `json:"text" yaml:"text"`
	Footer      string  `json:"footer" yaml:"footer"`
	Style       string  `json:"style" yaml:"style"`
	HTML        bool    `json:"html" yaml:"html"`
	Dismissible bool    `json:"dismissible" yaml:"dismissible"`
	Crumbs      []Crumb `json:"crumbs" yaml:"crumbs"`
	Panels      []Panel `json:"panels" yaml:"panels"`
	Bars        []Bar   `json:"bars" yaml:"bars"`
	Form        *Form   `json:"form" yaml:"form"`
	Page        int     `json:"page" yaml:"page"`
	PageCount   int     `json:"pageCount" yaml:"pageCount"`
	// URL is the pagination link pattern; `{page}` is replaced by the page
	// number.
	URL string `json:"url" yaml:"url"`
}

// Crumb is a breadcrumb entry.
type Crumb struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// Panel is an accordion entry.
type Panel struct {
	Title string `json:"title" yaml:"title"`
	Text  string `json:"text" yaml:"text"`
	Style string `json:"style" yaml:"style"`
}

// Bar is a progress bar.
type Bar struct {
	Width   float64 `json:"width" yaml:"width"`
	Style   string  `json:"style" yaml:"style"`
	Striped bool    `json:"striped" yaml:"striped"`
	Active  bool    `json:"active" yaml:"active"`
	Display bool    `json:"display" yaml:"display"`
}

// Form is a form section.
type Form struct {
	Action   string              `json:"action" yaml:"action"`
	Method   string              `json:"method" yaml:"method"`
	Layout   string              `json:"layout" yaml:"layout"`
	Values   map[string]any      `json:"values" yaml:"values"`
	Errors   map[string][]string `json:"errors" yaml:"errors"`
	Controls []Control           `json:"controls" yaml:"controls"`
	Submit   string              `json:"submit" yaml:"submit"`
}

// Control is one form control.
type Control struct {
	Name        string         `json:"name" yaml:"name"`
	Type        string         `json:"type" yaml:"type"`
	Label       string         `json:"label" yaml:"label"`
	Help        string         `json:"help" yaml:"help"`
	Placeholder string         `json:"placeholder" yaml:"placeholder"`
	Prepend     string         `json:"prepend" yaml:"prepend"`
	Append      string         `json:"append" yaml:"append"`
	Empty       string         `json:"empty" yaml:"empty"`
	Required    bool           `json:"required" yaml:"required"`
	Multiple    bool           `json:"multiple" yaml:"multiple"`
	Inline      bool           `json:"inline" yaml:"inline"`
	Value       any            `json:"value" yaml:"value"`
	Options     []ChoiceOption `json:"options" yaml:"options"`
}

// ChoiceOption is a select, radio or checkbox list entry.
type ChoiceOption struct {
	Value    string `json:"value" yaml:"value"`
	Text     string `json:"text" yaml:"text"`
	Disabled bool   `json:"disabled" yaml:"disabled"`
}

// Parse decodes a JSON or YAML page document. The source is only used in
// error messages.
func Parse(data []byte, source string) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("page: file %s is empty", source)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = Document{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("page: parse %s: invalid JSON or YAML", source)
		}
	}
	if err := doc.Validate(); err != nil {
		return Document{}, fmt.Errorf("page: %s: %w", source, err)
	}
	return doc, nil
}

// Load reads and parses path from fsys.
func Load(fsys fs.FS, path string) (Document, error) {
	if fsys == nil {
		return Document{}, fmt.Errorf("page: load %s: filesystem is nil", path)
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Document{}, fmt.Errorf("page: load %s: %w", path, err)
	}
	return Parse(data, path)
}

// Validate checks section kinds and names. Markup level problems are
// reported by the helpers during rendering.
func (d *Document) Validate() error {
	seen := make(map[string]struct{}, len(d.Sections))
	for idx := range d.Sections {
		section := &d.Sections[idx]
		section.Kind = strings.ToLower(strings.TrimSpace(section.Kind))
		if !slices.Contains(sectionKinds, section.Kind) {
			return fmt.Errorf("section %d: unknown kind %q", idx, section.Kind)
		}
		if section.Kind == SectionForm && section.Form == nil {
			return fmt.Errorf("section %d: form section without form", idx)
		}
		if strings.TrimSpace(section.Name) == "" {
			section.Name = section.Kind + "-" + strconv.Itoa(idx+1)
		}
		if _, dup := seen[section.Name]; dup {
			return fmt.Errorf("section %d: duplicate name %q", idx, section.Name)
		}
		seen[section.Name] = struct{}{}
	}
	return nil
}

// SectionNames lists section names in document order.
func (d Document) SectionNames() []string {
	names := make([]string, 0, len(d.Sections))
	for _, section := range d.Sections {
		names = append(names, section.Name)
	}
	return names
}

// Select returns a copy of the document keeping only the named sections,
// in document order.
func (d Document) Select(names []string) Document {
	out := d
	out.Sections = make([]Section, 0, len(names))
	for _, section := range d.Sections {
		if slices.Contains(names, section.Name) {
			out.Sections = append(out.Sections, section)
		}
	}
	return out
}
