package helpers

import (
	"bytes"
	"fmt"
	"html"
	"slices"
	"strconv"
	"strings"

	"github.com/goliatone/go-bootstrap/pkg/config"
	"github.com/goliatone/go-bootstrap/pkg/stringtemplate"
	"github.com/goliatone/go-bootstrap/pkg/widgets"
)

// FormOptions configures FormHelper.Create.
type FormOptions struct {
	// Method is GET or POST. PUT, PATCH and DELETE are sent as POST with a
	// hidden `_method` field.
	Method     string
	Horizontal bool
	Inline     bool
	// Columns overrides the configured horizontal grid widths.
	Columns   *config.Columns
	Values    map[string]any
	Errors    map[string][]string
	Multipart bool
	Attrs     stringtemplate.Attrs
}

// ControlOptions configures FormHelper.Control.
type ControlOptions struct {
	// Type names the widget; defaults to "select" when Options are present and
	// "text" otherwise.
	Type string
	// Label defaults to a humanised field name.
	Label     string
	HideLabel bool
	NoLabel   bool
	// Value takes precedence over FormOptions.Values.
	Value    any
	Options  []widgets.Option
	Empty    string
	Multiple bool
	Inline   bool

	Placeholder string
	Help        string
	// Prepend and Append render input-group addons. Values starting with "<"
	// are raw HTML; a `<button` value is wrapped in input-group-btn.
	Prepend  string
	Append   string
	Required bool
	ID       string
	Attrs    stringtemplate.Attrs
}

// ButtonOptions configures buttons rendered by forms and navbars.
type ButtonOptions struct {
	Kind  string
	Size  string
	Block bool
	// Type is the button type attribute; defaults to "button" ("submit" for
	// Submit).
	Type string
	// URL renders the button as an anchor.
	URL   string
	Attrs stringtemplate.Attrs
}

// ButtonGroupOptions configures FormHelper.ButtonGroup.
type ButtonGroupOptions struct {
	Vertical bool
	Size     string
	Attrs    stringtemplate.Attrs
}

func formTemplates() stringtemplate.Templates {
	return stringtemplate.Templates{
		"formStart":        `<form action="{{action}}" method="{{method}}"{{attrs}}>`,
		"formEnd":          `</form>`,
		"hiddenBlock":      `<div style="display:none;">{{content}}</div>`,
		"formErrors":       `<div class="alert alert-danger" role="alert">{{content}}</div>`,
		"formError":        `<p>{{content}}</p>`,
		"formGroup":        `<div class="form-group{{attrs.class}}"{{attrs}}>{{content}}</div>`,
		"label":            `<label{{attrs}}>{{content}}</label>`,
		"column":           `<div class="{{class}}">{{content}}</div>`,
		"help":             `<span class="help-block">{{content}}</span>`,
		"error":            `<span class="help-block error-message">{{content}}</span>`,
		"inputGroup":       `<div class="input-group">{{content}}</div>`,
		"inputGroupAddon":  `<span class="input-group-addon">{{content}}</span>`,
		"inputGroupButton": `<span class="input-group-btn">{{content}}</span>`,
		"button":           `<button type="{{type}}" class="btn btn-{{kind}}{{attrs.class}}"{{attrs}}>{{content}}</button>`,
		"linkButton":       `<a href="{{url}}" class="btn btn-{{kind}}{{attrs.class}}" role="button"{{attrs}}>{{content}}</a>`,
		"buttonGroup":      `<div class="{{group}}{{attrs.class}}" role="group"{{attrs}}>{{content}}</div>`,
		"buttonToolbar":    `<div class="btn-toolbar{{attrs.class}}" role="toolbar"{{attrs}}>{{content}}</div>`,
		"dropdownButton":   `<div class="btn-group">{{toggle}}{{menu}}</div>`,
		"dropdownToggle":   `<button type="button" class="btn btn-{{kind}} dropdown-toggle{{attrs.class}}" data-toggle="dropdown" aria-haspopup="true" aria-expanded="false"{{attrs}}>{{content}} <span class="caret"></span></button>`,
		"fieldset":         `<fieldset{{attrs}}>{{legend}}{{content}}</fieldset>`,
		"legend":           `<legend>{{content}}</legend>`,
	}
}

// FormHelper renders forms and their controls. It tracks the currently open
// form, so a single FormHelper renders one form at a time.
type FormHelper struct {
	base
	html *HTMLHelper

	open    bool
	layout  string
	columns config.Columns
	values  map[string]any
	errors  formErrors
	used    []string
}

// NewFormHelper constructs the form helper for view.
func NewFormHelper(view *View) *FormHelper {
	return newFormHelper(view, NewHTMLHelper(view))
}

func newFormHelper(view *View, htmlHelper *HTMLHelper) *FormHelper {
	return &FormHelper{
		base: newBase(view, "form", widgets.DefaultTemplates(), formTemplates()),
		html: htmlHelper,
	}
}

// Create opens a form.
func (f *FormHelper) Create(action string, opts FormOptions) (string, error) {
	if f.open {
		return "", fmt.Errorf("%w: form already open", ErrInvalidState)
	}
	if opts.Horizontal && opts.Inline {
		return "", fmt.Errorf("%w: form cannot be both horizontal and inline", ErrInvalidOptions)
	}

	method := strings.ToUpper(strings.TrimSpace(opts.Method))
	if method == "" {
		method = "POST"
	}
	override := ""
	switch method {
	case "GET", "POST":
	case "PUT", "PATCH", "DELETE":
		override = method
		method = "POST"
	default:
		return "", fmt.Errorf("%w: unsupported form method %q", ErrInvalidOptions, opts.Method)
	}

	columns := f.view.config.Form.Columns
	if opts.Columns != nil {
		columns = *opts.Columns
	}

	attrs := opts.Attrs.Clone()
	switch {
	case opts.Horizontal:
		if columns.Label <= 0 || columns.Input <= 0 || columns.Label+columns.Input > 12 {
			return "", fmt.Errorf("%w: form columns %d/%d", ErrInvalidOptions, columns.Label, columns.Input)
		}
		stringtemplate.AddClass(attrs, "form-horizontal")
		f.layout = "horizontal"
	case opts.Inline:
		stringtemplate.AddClass(attrs, "form-inline")
		f.layout = "inline"
	default:
		f.layout = ""
	}
	if opts.Multipart {
		attrs["enctype"] = "multipart/form-data"
	}

	out, err := f.format("formStart", stringtemplate.Data{
		"action": html.EscapeString(action),
		"method": strings.ToLower(method),
		"attrs":  stringtemplate.FormatAttributes(attrs, "action", "method"),
	})
	if err != nil {
		return "", err
	}

	if override != "" {
		hidden, err := f.format("input", stringtemplate.Data{
			"type":  widgets.NameHidden,
			"name":  "_method",
			"attrs": stringtemplate.FormatAttributes(stringtemplate.Attrs{"value": override}),
		})
		if err != nil {
			return "", err
		}
		block, err := f.format("hiddenBlock", stringtemplate.Data{"content": hidden})
		if err != nil {
			return "", err
		}
		out += block
	}

	errs := newFormErrors(opts.Errors)
	if len(errs.form) > 0 {
		var items strings.Builder
		for _, message := range errs.form {
			item, err := f.format("formError", stringtemplate.Data{"content": f.text(message)})
			if err != nil {
				return "", err
			}
			items.WriteString(item)
		}
		alert, err := f.format("formErrors", stringtemplate.Data{"content": items.String()})
		if err != nil {
			return "", err
		}
		out += alert
	}

	f.open = true
	f.columns = columns
	f.values = opts.Values
	f.errors = errs
	f.used = nil
	return out, nil
}

// End closes the open form and resets the helper state.
func (f *FormHelper) End() (string, error) {
	if !f.open {
		return "", fmt.Errorf("%w: no open form", ErrInvalidState)
	}
	f.open = false
	f.layout = ""
	f.values = nil
	f.errors = formErrors{}
	return f.format("formEnd", nil)
}

// Control renders a form control wrapped in Bootstrap form group markup.
// Controls may be rendered outside Create/End, in which case form values,
// errors and layout do not apply.
func (f *FormHelper) Control(name string, opts ControlOptions) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: control name is required", ErrInvalidOptions)
	}

	widgetName := strings.ToLower(strings.TrimSpace(opts.Type))
	if widgetName == "" {
		widgetName = widgets.NameText
		if len(opts.Options) > 0 {
			widgetName = widgets.NameSelect
		}
	}
	descriptor, ok := f.view.widgets.Descriptor(widgetName)
	if !ok {
		return "", fmt.Errorf("%w: unknown widget %q for control %q", ErrInvalidOptions, widgetName, name)
	}

	id := strings.TrimSpace(opts.ID)
	if id == "" {
		id = fieldID(name)
	}
	value := opts.Value
	if value == nil && f.values != nil {
		value = f.values[name]
	}

	attrs := opts.Attrs.Clone()
	if opts.Placeholder != "" {
		if _, set := attrs["placeholder"]; !set {
			attrs["placeholder"] = opts.Placeholder
		}
	}
	if opts.Required {
		attrs["required"] = true
	}

	options := opts.Options
	if widgetName == widgets.NameSelect && opts.Empty != "" {
		options = append([]widgets.Option{{Value: "", Text: opts.Empty}}, options...)
	}

	labelText := opts.Label
	if labelText == "" {
		labelText = fieldLabel(name)
	}
	label, err := f.title(labelText)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := descriptor.Renderer(&buf, widgets.Context{
		Name:      name,
		ID:        id,
		Type:      widgetName,
		Value:     value,
		Label:     label,
		Attrs:     attrs,
		Options:   options,
		Multiple:  opts.Multiple,
		Inline:    opts.Inline,
		Templates: f.templates,
	}); err != nil {
		return "", fmt.Errorf("helpers: render control %q: %w", name, err)
	}
	f.track(widgetName)

	if widgetName == widgets.NameHidden {
		return buf.String(), nil
	}

	control, err := f.inputGroup(buf.String(), opts.Prepend, opts.Append)
	if err != nil {
		return "", err
	}

	messages := f.errors.forField(name)
	var feedback strings.Builder
	feedback.WriteString(control)
	for _, message := range messages {
		rendered, err := f.format("error", stringtemplate.Data{"content": f.text(message)})
		if err != nil {
			return "", err
		}
		feedback.WriteString(rendered)
	}
	if strings.TrimSpace(opts.Help) != "" {
		rendered, err := f.format("help", stringtemplate.Data{"content": f.text(opts.Help)})
		if err != nil {
			return "", err
		}
		feedback.WriteString(rendered)
	}

	ownsLabel := descriptor.OwnsLabel && len(options) == 0
	withLabel := !ownsLabel && !opts.NoLabel

	var content strings.Builder
	if withLabel {
		labelAttrs := stringtemplate.Attrs{}
		if len(options) == 0 || widgetName == widgets.NameSelect {
			labelAttrs["for"] = id
		}
		if f.layout == "horizontal" {
			stringtemplate.AddClass(labelAttrs, f.columnClass(f.columns.Label), "control-label")
		}
		if opts.HideLabel {
			stringtemplate.AddClass(labelAttrs, "sr-only")
		}
		rendered, err := f.format("label", stringtemplate.Data{
			"content": label,
			"attrs":   stringtemplate.FormatAttributes(labelAttrs),
		})
		if err != nil {
			return "", err
		}
		content.WriteString(rendered)
	}

	if f.layout == "horizontal" {
		class := f.columnClass(f.columns.Input)
		if !withLabel {
			class = f.offsetClass() + " " + class
		}
		wrapped, err := f.format("column", stringtemplate.Data{"class": class, "content": feedback.String()})
		if err != nil {
			return "", err
		}
		content.WriteString(wrapped)
	} else {
		content.WriteString(feedback.String())
	}

	groupAttrs := stringtemplate.Attrs{}
	if opts.Required {
		stringtemplate.AddClass(groupAttrs, "required")
	}
	if len(messages) > 0 {
		stringtemplate.AddClass(groupAttrs, "has-error")
	}
	return f.format("formGroup", stringtemplate.Data{
		"content": content.String(),
		"attrs":   stringtemplate.FormatAttributes(groupAttrs),
	})
}

func (f *FormHelper) inputGroup(control, prepend, appendix string) (string, error) {
	if prepend == "" && appendix == "" {
		return control, nil
	}
	before, err := f.addon(prepend)
	if err != nil {
		return "", err
	}
	after, err := f.addon(appendix)
	if err != nil {
		return "", err
	}
	return f.format("inputGroup", stringtemplate.Data{"content": before + control + after})
}

func (f *FormHelper) addon(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if strings.HasPrefix(trimmed, "<button") {
		return f.format("inputGroupButton", stringtemplate.Data{"content": trimmed})
	}
	content := trimmed
	if !strings.HasPrefix(trimmed, "<") {
		var err error
		if content, err = f.title(trimmed); err != nil {
			return "", err
		}
	}
	return f.format("inputGroupAddon", stringtemplate.Data{"content": content})
}

func (f *FormHelper) columnClass(width int) string {
	return "col-" + f.columns.Size + "-" + strconv.Itoa(width)
}

func (f *FormHelper) offsetClass() string {
	return "col-" + f.columns.Size + "-offset-" + strconv.Itoa(f.columns.Label)
}

func (f *FormHelper) track(widget string) {
	if !slices.Contains(f.used, widget) {
		f.used = append(f.used, widget)
	}
}

// Submit renders a submit button, offset to the input column in horizontal
// forms. Kind defaults to "primary".
func (f *FormHelper) Submit(caption string, opts ButtonOptions) (string, error) {
	if opts.Kind == "" {
		opts.Kind = "primary"
	}
	if opts.Type == "" {
		opts.Type = "submit"
	}
	if caption == "" {
		caption = "Submit"
	}
	button, err := f.Button(caption, opts)
	if err != nil {
		return "", err
	}
	if f.open && f.layout == "horizontal" {
		column, err := f.format("column", stringtemplate.Data{
			"class":   f.offsetClass() + " " + f.columnClass(f.columns.Input),
			"content": button,
		})
		if err != nil {
			return "", err
		}
		return f.format("formGroup", stringtemplate.Data{"content": column})
	}
	return button, nil
}

// Button renders a button, or an anchor styled as one when URL is set.
func (f *FormHelper) Button(title string, opts ButtonOptions) (string, error) {
	return renderButton(&f.base, title, opts)
}

// ButtonGroup wraps pre-rendered buttons in a btn-group.
func (f *FormHelper) ButtonGroup(buttons []string, opts ButtonGroupOptions) (string, error) {
	group := "btn-group"
	if opts.Vertical {
		group = "btn-group-vertical"
	}
	attrs := opts.Attrs.Clone()
	if size := strings.TrimSpace(opts.Size); size != "" {
		if !validSize(size) {
			return "", fmt.Errorf("%w: button group size %q", ErrInvalidOptions, size)
		}
		stringtemplate.AddClass(attrs, "btn-group-"+size)
	}
	return f.format("buttonGroup", stringtemplate.Data{
		"group":   group,
		"content": strings.Join(buttons, ""),
		"attrs":   stringtemplate.FormatAttributes(attrs, "role"),
	})
}

// ButtonToolbar wraps pre-rendered button groups in a btn-toolbar.
func (f *FormHelper) ButtonToolbar(groups []string, attrs stringtemplate.Attrs) (string, error) {
	return f.format("buttonToolbar", stringtemplate.Data{
		"content": strings.Join(groups, ""),
		"attrs":   stringtemplate.FormatAttributes(attrs, "role"),
	})
}

// DropdownButton renders a button toggling a dropdown menu.
func (f *FormHelper) DropdownButton(title string, items []MenuItem, opts ButtonOptions) (string, error) {
	content, err := f.title(title)
	if err != nil {
		return "", err
	}
	attrs := opts.Attrs.Clone()
	if err := sizeButton(attrs, opts); err != nil {
		return "", err
	}
	toggle, err := f.format("dropdownToggle", stringtemplate.Data{
		"kind":    kindOr(opts.Kind, "default"),
		"content": content,
		"attrs":   stringtemplate.FormatAttributes(attrs, "type", "data-toggle"),
	})
	if err != nil {
		return "", err
	}
	menu, err := f.html.Dropdown(items, nil)
	if err != nil {
		return "", err
	}
	return f.format("dropdownButton", stringtemplate.Data{"toggle": toggle, "menu": menu})
}

// Fieldset groups pre-rendered controls under an optional legend.
func (f *FormHelper) Fieldset(legend string, controls ...string) (string, error) {
	legendHTML := ""
	if strings.TrimSpace(legend) != "" {
		title, err := f.title(legend)
		if err != nil {
			return "", err
		}
		if legendHTML, err = f.format("legend", stringtemplate.Data{"content": title}); err != nil {
			return "", err
		}
	}
	return f.format("fieldset", stringtemplate.Data{
		"legend":  legendHTML,
		"content": strings.Join(controls, ""),
	})
}

// Assets returns the deduplicated stylesheets and scripts required by the
// widgets rendered so far.
func (f *FormHelper) Assets() ([]string, []widgets.Script) {
	return f.view.widgets.Assets(f.used)
}

func renderButton(b *base, title string, opts ButtonOptions) (string, error) {
	content, err := b.title(title)
	if err != nil {
		return "", err
	}
	attrs := opts.Attrs.Clone()
	if err := sizeButton(attrs, opts); err != nil {
		return "", err
	}
	kind := kindOr(opts.Kind, "default")

	if url := strings.TrimSpace(opts.URL); url != "" {
		return b.format("linkButton", stringtemplate.Data{
			"url":     html.EscapeString(url),
			"kind":    kind,
			"content": content,
			"attrs":   stringtemplate.FormatAttributes(attrs, "href", "role"),
		})
	}

	buttonType := strings.TrimSpace(opts.Type)
	switch buttonType {
	case "":
		buttonType = "button"
	case "button", "submit", "reset":
	default:
		return "", fmt.Errorf("%w: button type %q", ErrInvalidOptions, opts.Type)
	}
	return b.format("button", stringtemplate.Data{
		"type":    buttonType,
		"kind":    kind,
		"content": content,
		"attrs":   stringtemplate.FormatAttributes(attrs, "type"),
	})
}

func sizeButton(attrs stringtemplate.Attrs, opts ButtonOptions) error {
	if size := strings.TrimSpace(opts.Size); size != "" {
		if !validSize(size) {
			return fmt.Errorf("%w: button size %q", ErrInvalidOptions, size)
		}
		stringtemplate.AddClass(attrs, "btn-"+size)
	}
	if opts.Block {
		stringtemplate.AddClass(attrs, "btn-block")
	}
	return nil
}

func validSize(size string) bool {
	switch size {
	case "lg", "sm", "xs":
		return true
	}
	return false
}
