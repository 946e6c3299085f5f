package stringtemplate

import (
	"fmt"
	"html"
	"slices"
	"strings"
)

// Attrs describes HTML attributes. Values may be strings, booleans, string
// slices (joined with spaces) or anything fmt can print.
type Attrs map[string]any

// Clone returns a shallow copy; string slices are copied.
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	for key, value := range a {
		if list, ok := value.([]string); ok {
			value = slices.Clone(list)
		}
		out[key] = value
	}
	return out
}

// Pop removes key and returns its previous value.
func (a Attrs) Pop(key string) any {
	if a == nil {
		return nil
	}
	value, ok := a[key]
	if !ok {
		return nil
	}
	delete(a, key)
	return value
}

// String returns the attribute rendered as a plain string, or "" when unset.
func (a Attrs) String(key string) string {
	if a == nil {
		return ""
	}
	value, ok := attributeValue(a[key])
	if !ok {
		return ""
	}
	return value
}

// FormatAttributes serialises attrs as ` key="value"` pairs sorted by key.
// Boolean true renders as key="key", false and nil values are dropped.
func FormatAttributes(attrs Attrs, exclude ...string) string {
	if len(attrs) == 0 {
		return ""
	}

	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		key = strings.TrimSpace(key)
		if key == "" || slices.Contains(exclude, key) {
			continue
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var builder strings.Builder
	for _, key := range keys {
		raw := attrs[key]
		if flag, ok := raw.(bool); ok {
			if !flag {
				continue
			}
			raw = key
		}
		value, ok := attributeValue(raw)
		if !ok {
			continue
		}
		builder.WriteByte(' ')
		builder.WriteString(html.EscapeString(key))
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(value))
		builder.WriteByte('"')
	}
	return builder.String()
}

// AddClass merges class tokens into attrs["class"], keeping the existing
// order and dropping duplicates. A nil map is allocated.
func AddClass(attrs Attrs, classes ...string) Attrs {
	if attrs == nil {
		attrs = Attrs{}
	}
	tokens := ClassTokens(attrs["class"])
	for _, class := range classes {
		for _, token := range strings.Fields(class) {
			if !slices.Contains(tokens, token) {
				tokens = append(tokens, token)
			}
		}
	}
	if len(tokens) == 0 {
		delete(attrs, "class")
		return attrs
	}
	attrs["class"] = strings.Join(tokens, " ")
	return attrs
}

// ClassTokens splits a class attribute value (string or []string) into
// unique tokens.
func ClassTokens(value any) []string {
	var raw []string
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		raw = strings.Fields(v)
	case []string:
		for _, entry := range v {
			raw = append(raw, strings.Fields(entry)...)
		}
	default:
		raw = strings.Fields(fmt.Sprint(v))
	}
	out := make([]string, 0, len(raw))
	for _, token := range raw {
		if !slices.Contains(out, token) {
			out = append(out, token)
		}
	}
	return out
}

func attributeValue(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case []string:
		parts := make([]string, 0, len(v))
		for _, entry := range v {
			if entry = strings.TrimSpace(entry); entry != "" {
				parts = append(parts, entry)
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, " "), true
	case bool:
		if v {
			return "true", true
		}
		return "false", true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}
