package widgets

import (
	"bytes"
	"fmt"
	"html"
	"slices"
	"strconv"
	"strings"

	"github.com/goliatone/go-bootstrap/pkg/stringtemplate"
)

const (
	datepickerStylesheet = "https://cdnjs.cloudflare.com/ajax/libs/bootstrap-datepicker/1.9.0/css/bootstrap-datepicker3.min.css"
	datepickerScript     = "https://cdnjs.cloudflare.com/ajax/libs/bootstrap-datepicker/1.9.0/js/bootstrap-datepicker.min.js"
)

// DefaultTemplates returns the string templates used by the built-in
// widgets. Form helpers merge them into their own template set so overrides
// from configuration apply to widgets too.
func DefaultTemplates() stringtemplate.Templates {
	return stringtemplate.Templates{
		"input":           `<input type="{{type}}" name="{{name}}"{{attrs}}>`,
		"textarea":        `<textarea name="{{name}}"{{attrs}}>{{value}}</textarea>`,
		"select":          `<select name="{{name}}"{{attrs}}>{{content}}</select>`,
		"option":          `<option value="{{value}}"{{attrs}}>{{text}}</option>`,
		"checkbox":        `<input type="checkbox" name="{{name}}" value="{{value}}"{{attrs}}>`,
		"checkboxWrapper": `<div class="checkbox{{class}}"><label>{{input}} {{text}}</label></div>`,
		"checkboxInline":  `<label class="checkbox-inline{{class}}">{{input}} {{text}}</label>`,
		"radio":           `<input type="radio" name="{{name}}" value="{{value}}"{{attrs}}>`,
		"radioWrapper":    `<div class="radio{{class}}"><label>{{input}} {{text}}</label></div>`,
		"radioInline":     `<label class="radio-inline{{class}}">{{input}} {{text}}</label>`,
		"static":          `<p class="form-control-static{{attrs.class}}"{{attrs}}>{{value}}</p>`,
	}
}

// NewDefaultRegistry constructs a registry pre-populated with the built-in
// Bootstrap form widgets.
func NewDefaultRegistry() *Registry {
	registry := New()

	for _, name := range []string{NameText, NameEmail, NameNumber, NameURL, NameTel, NameSearch, NameDate, NameTime, NameColor} {
		registry.MustRegister(name, Descriptor{Renderer: inputRenderer(name, true, true)})
	}
	registry.MustRegister(NamePassword, Descriptor{Renderer: inputRenderer(NamePassword, true, false)})
	registry.MustRegister(NameHidden, Descriptor{Renderer: inputRenderer(NameHidden, false, true)})
	registry.MustRegister(NameFile, Descriptor{Renderer: inputRenderer(NameFile, false, false)})
	registry.MustRegister(NameTextarea, Descriptor{Renderer: textareaRenderer})
	registry.MustRegister(NameSelect, Descriptor{Renderer: selectRenderer})
	registry.MustRegister(NameCheckbox, Descriptor{Renderer: checkboxRenderer, OwnsLabel: true})
	registry.MustRegister(NameRadio, Descriptor{Renderer: radioRenderer})
	registry.MustRegister(NameStatic, Descriptor{Renderer: staticRenderer})
	registry.MustRegister(NameDatepicker, Descriptor{
		Renderer:    datepickerRenderer,
		Stylesheets: []string{datepickerStylesheet},
		Scripts:     []Script{{Src: datepickerScript}},
	})

	return registry
}

func inputRenderer(inputType string, control, withValue bool) Renderer {
	return func(buf *bytes.Buffer, ctx Context) error {
		attrs := baseAttrs(ctx)
		if control {
			stringtemplate.AddClass(attrs, "form-control")
		}
		if withValue {
			if value, ok := scalarValue(ctx.Value); ok {
				if _, set := attrs["value"]; !set {
					attrs["value"] = value
				}
			}
		} else {
			delete(attrs, "value")
		}
		return write(buf, ctx, "input", stringtemplate.Data{
			"type":  inputType,
			"name":  html.EscapeString(ctx.Name),
			"attrs": stringtemplate.FormatAttributes(attrs, "name", "type"),
		})
	}
}

func datepickerRenderer(buf *bytes.Buffer, ctx Context) error {
	attrs := baseAttrs(ctx)
	stringtemplate.AddClass(attrs, "form-control")
	if _, ok := attrs["data-provide"]; !ok {
		attrs["data-provide"] = "datepicker"
	}
	if _, ok := attrs["data-date-format"]; !ok {
		attrs["data-date-format"] = "yyyy-mm-dd"
	}
	if value, ok := scalarValue(ctx.Value); ok {
		attrs["value"] = value
	}
	return write(buf, ctx, "input", stringtemplate.Data{
		"type":  NameText,
		"name":  html.EscapeString(ctx.Name),
		"attrs": stringtemplate.FormatAttributes(attrs, "name", "type"),
	})
}

func textareaRenderer(buf *bytes.Buffer, ctx Context) error {
	attrs := baseAttrs(ctx)
	stringtemplate.AddClass(attrs, "form-control")
	value, _ := scalarValue(ctx.Value)
	if explicit, ok := attrs["value"]; ok {
		value = fmt.Sprint(explicit)
		delete(attrs, "value")
	}
	return write(buf, ctx, "textarea", stringtemplate.Data{
		"name":  html.EscapeString(ctx.Name),
		"value": html.EscapeString(value),
		"attrs": stringtemplate.FormatAttributes(attrs, "name"),
	})
}

func selectRenderer(buf *bytes.Buffer, ctx Context) error {
	attrs := baseAttrs(ctx)
	stringtemplate.AddClass(attrs, "form-control")
	delete(attrs, "value")

	name := ctx.Name
	if ctx.Multiple {
		attrs["multiple"] = true
		if !strings.HasSuffix(name, "[]") {
			name += "[]"
		}
	}

	selected := valueStrings(ctx.Value)
	var options strings.Builder
	for _, opt := range ctx.Options {
		optionAttrs := stringtemplate.Attrs{
			"selected": slices.Contains(selected, opt.Value),
			"disabled": opt.Disabled,
		}
		rendered, err := ctx.Templates.Format("option", stringtemplate.Data{
			"value": html.EscapeString(opt.Value),
			"text":  html.EscapeString(optionText(opt)),
			"attrs": stringtemplate.FormatAttributes(optionAttrs),
		})
		if err != nil {
			return fmt.Errorf("widgets: render option %q: %w", opt.Value, err)
		}
		options.WriteString(rendered)
	}

	return write(buf, ctx, "select", stringtemplate.Data{
		"name":    html.EscapeString(name),
		"content": options.String(),
		"attrs":   stringtemplate.FormatAttributes(attrs, "name"),
	})
}

func checkboxRenderer(buf *bytes.Buffer, ctx Context) error {
	if len(ctx.Options) > 0 {
		return choiceListRenderer(buf, ctx, "checkbox", "checkboxWrapper", "checkboxInline", true)
	}

	attrs := baseAttrs(ctx)
	checkedValue := "1"
	if raw := attrs.Pop("value"); raw != nil {
		checkedValue = fmt.Sprint(raw)
	}
	hiddenValue := "0"
	if raw := attrs.Pop("hiddenField"); raw != nil {
		if flag, ok := raw.(bool); ok && !flag {
			hiddenValue = ""
		} else if s, ok := raw.(string); ok {
			hiddenValue = s
		}
	}
	if _, ok := attrs["checked"]; !ok {
		attrs["checked"] = isChecked(ctx.Value, checkedValue)
	}

	var input strings.Builder
	if hiddenValue != "" {
		hidden, err := ctx.Templates.Format("input", stringtemplate.Data{
			"type":  NameHidden,
			"name":  html.EscapeString(ctx.Name),
			"attrs": stringtemplate.FormatAttributes(stringtemplate.Attrs{"value": hiddenValue}),
		})
		if err != nil {
			return fmt.Errorf("widgets: render checkbox hidden field: %w", err)
		}
		input.WriteString(hidden)
	}
	checkbox, err := ctx.Templates.Format("checkbox", stringtemplate.Data{
		"name":  html.EscapeString(ctx.Name),
		"value": html.EscapeString(checkedValue),
		"attrs": stringtemplate.FormatAttributes(attrs, "name", "type"),
	})
	if err != nil {
		return fmt.Errorf("widgets: render checkbox: %w", err)
	}
	input.WriteString(checkbox)

	wrapper := "checkboxWrapper"
	if ctx.Inline {
		wrapper = "checkboxInline"
	}
	class := ""
	if disabled, _ := attrs["disabled"].(bool); disabled {
		class = " disabled"
	}
	return write(buf, ctx, wrapper, stringtemplate.Data{
		"input": input.String(),
		"text":  ctx.Label,
		"class": class,
	})
}

func radioRenderer(buf *bytes.Buffer, ctx Context) error {
	return choiceListRenderer(buf, ctx, "radio", "radioWrapper", "radioInline", false)
}

func choiceListRenderer(buf *bytes.Buffer, ctx Context, inputTemplate, wrapperTemplate, inlineTemplate string, multiple bool) error {
	if len(ctx.Options) == 0 {
		return fmt.Errorf("widgets: %s list %q requires options", inputTemplate, ctx.Name)
	}

	name := ctx.Name
	if multiple && !strings.HasSuffix(name, "[]") {
		name += "[]"
	}
	wrapper := wrapperTemplate
	if ctx.Inline {
		wrapper = inlineTemplate
	}

	selected := valueStrings(ctx.Value)
	for idx, opt := range ctx.Options {
		attrs := baseAttrs(ctx)
		delete(attrs, "value")
		if ctx.ID != "" {
			attrs["id"] = ctx.ID + "-" + optionSuffix(opt.Value, idx)
		}
		attrs["checked"] = slices.Contains(selected, opt.Value)
		if opt.Disabled {
			attrs["disabled"] = true
		}

		input, err := ctx.Templates.Format(inputTemplate, stringtemplate.Data{
			"name":  html.EscapeString(name),
			"value": html.EscapeString(opt.Value),
			"attrs": stringtemplate.FormatAttributes(attrs, "name", "type"),
		})
		if err != nil {
			return fmt.Errorf("widgets: render %s option %q: %w", inputTemplate, opt.Value, err)
		}

		class := ""
		if opt.Disabled {
			class = " disabled"
		}
		if err := write(buf, ctx, wrapper, stringtemplate.Data{
			"input": input,
			"text":  html.EscapeString(optionText(opt)),
			"class": class,
		}); err != nil {
			return err
		}
	}
	return nil
}

func staticRenderer(buf *bytes.Buffer, ctx Context) error {
	attrs := baseAttrs(ctx)
	delete(attrs, "value")
	value, _ := scalarValue(ctx.Value)
	return write(buf, ctx, "static", stringtemplate.Data{
		"value": html.EscapeString(value),
		"attrs": stringtemplate.FormatAttributes(attrs, "name"),
	})
}

func write(buf *bytes.Buffer, ctx Context, template string, data stringtemplate.Data) error {
	if ctx.Templates == nil {
		return fmt.Errorf("widgets: templates not configured for %q", ctx.Name)
	}
	rendered, err := ctx.Templates.Format(template, data)
	if err != nil {
		return fmt.Errorf("widgets: render %q: %w", template, err)
	}
	buf.WriteString(rendered)
	return nil
}

func baseAttrs(ctx Context) stringtemplate.Attrs {
	attrs := ctx.Attrs.Clone()
	if ctx.ID != "" {
		if _, ok := attrs["id"]; !ok {
			attrs["id"] = ctx.ID
		}
	}
	return attrs
}

func optionText(opt Option) string {
	if opt.Text != "" {
		return opt.Text
	}
	return opt.Value
}

func optionSuffix(value string, idx int) string {
	var builder strings.Builder
	for _, r := range strings.ToLower(value) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			builder.WriteRune(r)
		case r == '-' || r == '_' || r == ' ':
			builder.WriteByte('-')
		}
	}
	if builder.Len() == 0 {
		return strconv.Itoa(idx)
	}
	return builder.String()
}

func scalarValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case []string:
		if len(v) == 0 {
			return "", false
		}
		return v[0], true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}

func valueStrings(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, entry := range v {
			out = append(out, fmt.Sprint(entry))
		}
		return out
	default:
		return []string{fmt.Sprint(v)}
	}
}

func isChecked(value any, checkedValue string) bool {
	switch v := value.(type) {
	case bool:
		return v
	case nil:
		return false
	}
	for _, candidate := range valueStrings(value) {
		if candidate == checkedValue {
			return true
		}
		switch strings.ToLower(candidate) {
		case "true", "on", "yes":
			return true
		}
	}
	return false
}
