package stringtemplate

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

const (
	attrsKey    = "attrs"
	attrsPrefix = "attrs."
)

var placeholderPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_.\-]+)\}\}`)

// Templates maps template names to patterns.
type Templates map[string]string

// Clone returns a copy of the template map.
func (t Templates) Clone() Templates {
	if t == nil {
		return Templates{}
	}
	out := make(Templates, len(t))
	for name, pattern := range t {
		out[name] = pattern
	}
	return out
}

// Data holds placeholder values for Format.
type Data map[string]string

type compiled struct {
	// parts always holds len(keys)+1 literal fragments.
	parts []string
	keys  []string
}

// StringTemplate stores the active template set together with a stack of
// previously pushed sets. A StringTemplate is meant to be owned by a single
// helper and is not safe for concurrent mutation.
type StringTemplate struct {
	templates Templates
	stack     []Templates
	compiled  map[string]compiled
}

// New constructs a StringTemplate seeded with the provided templates.
func New(templates Templates) *StringTemplate {
	st := &StringTemplate{
		templates: Templates{},
		compiled:  make(map[string]compiled),
	}
	st.Add(templates)
	return st
}

// Add merges templates into the active set. Existing names are replaced.
func (s *StringTemplate) Add(templates Templates) {
	if len(templates) == 0 {
		return
	}
	for name, pattern := range templates {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		s.templates[name] = pattern
		delete(s.compiled, name)
	}
}

// Get returns the raw pattern registered under name.
func (s *StringTemplate) Get(name string) (string, bool) {
	pattern, ok := s.templates[name]
	return pattern, ok
}

// Remove deletes a template from the active set.
func (s *StringTemplate) Remove(name string) {
	delete(s.templates, name)
	delete(s.compiled, name)
}

// Names returns the sorted list of active template names.
func (s *StringTemplate) Names() []string {
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Push saves a copy of the active template set. Pair it with Pop to undo any
// temporary overrides.
func (s *StringTemplate) Push() {
	s.stack = append(s.stack, s.templates.Clone())
}

// Pop restores the most recently pushed template set.
func (s *StringTemplate) Pop() error {
	if len(s.stack) == 0 {
		return ErrEmptyStack
	}
	last := len(s.stack) - 1
	s.templates = s.stack[last]
	s.stack = s.stack[:last]
	s.compiled = make(map[string]compiled)
	return nil
}

// Placeholders lists the placeholder keys used by a template in order of
// appearance, duplicates included.
func (s *StringTemplate) Placeholders(name string) ([]string, error) {
	c, err := s.compile(name)
	if err != nil {
		return nil, err
	}
	return slices.Clone(c.keys), nil
}

// Format renders the named template. Missing values render as the empty
// string. When data carries an "attrs" entry, every `attrs.NAME` placeholder
// in the pattern pulls the NAME attribute out of it (prefixed with a space
// when non-empty) and the remaining attrs are normalised to either the empty
// string or a single leading space followed by the attributes.
func (s *StringTemplate) Format(name string, data Data) (string, error) {
	c, err := s.compile(name)
	if err != nil {
		return "", err
	}

	values := make(map[string]string, len(data)+len(c.keys))
	for key, value := range data {
		values[key] = value
	}

	if attrs, ok := values[attrsKey]; ok {
		extracted := make(map[string]struct{})
		for _, key := range c.keys {
			attr, found := strings.CutPrefix(key, attrsPrefix)
			if !found || attr == "" {
				continue
			}
			if _, done := extracted[key]; done {
				continue
			}
			value, rest, ok := extractAttribute(attrs, attr)
			if !ok {
				continue
			}
			extracted[key] = struct{}{}
			attrs = rest
			value = strings.TrimSpace(value)
			if value != "" {
				value = " " + value
			}
			values[key] = value
		}
		values[attrsKey] = padAttributes(attrs)
	}

	var builder strings.Builder
	size := 0
	for _, part := range c.parts {
		size += len(part)
	}
	builder.Grow(size + 64)
	for idx, key := range c.keys {
		builder.WriteString(c.parts[idx])
		builder.WriteString(values[key])
	}
	builder.WriteString(c.parts[len(c.parts)-1])
	return builder.String(), nil
}

// MustFormat mirrors Format but panics on error. Only use it with templates
// registered by the caller.
func (s *StringTemplate) MustFormat(name string, data Data) string {
	out, err := s.Format(name, data)
	if err != nil {
		panic(err)
	}
	return out
}

func (s *StringTemplate) compile(name string) (compiled, error) {
	if c, ok := s.compiled[name]; ok {
		return c, nil
	}
	pattern, ok := s.templates[name]
	if !ok {
		return compiled{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	matches := placeholderPattern.FindAllStringSubmatchIndex(pattern, -1)
	c := compiled{
		parts: make([]string, 0, len(matches)+1),
		keys:  make([]string, 0, len(matches)),
	}
	offset := 0
	for _, match := range matches {
		c.parts = append(c.parts, pattern[offset:match[0]])
		c.keys = append(c.keys, pattern[match[2]:match[3]])
		offset = match[1]
	}
	c.parts = append(c.parts, pattern[offset:])

	s.compiled[name] = c
	return c, nil
}

// extractAttribute finds name="value" in a serialised attribute string. The
// string is scanned one attribute at a time, so `class` never matches
// `data-class` or text inside another attribute's quoted value. Only double
// quoted values are extracted. The attribute and its leading whitespace are
// removed from the returned remainder.
func extractAttribute(attrs, name string) (string, string, bool) {
	i := 0
	for i < len(attrs) {
		start := i
		for i < len(attrs) && isSpace(attrs[i]) {
			i++
		}
		nameStart := i
		for i < len(attrs) && !isSpace(attrs[i]) && attrs[i] != '=' {
			i++
		}
		attrName := attrs[nameStart:i]
		if i >= len(attrs) || attrs[i] != '=' {
			continue
		}
		i++

		quote := byte(0)
		if i < len(attrs) && (attrs[i] == '"' || attrs[i] == '\'') {
			quote = attrs[i]
		}
		var valueStart, valueEnd int
		if quote != 0 {
			closing := strings.IndexByte(attrs[i+1:], quote)
			if closing < 0 {
				return "", attrs, false
			}
			valueStart = i + 1
			valueEnd = valueStart + closing
			i = valueEnd + 1
		} else {
			valueStart = i
			for i < len(attrs) && !isSpace(attrs[i]) {
				i++
			}
			valueEnd = i
		}

		if attrName == name && quote == '"' {
			return attrs[valueStart:valueEnd], attrs[:start] + attrs[i:], true
		}
	}
	return "", attrs, false
}

func padAttributes(attrs string) string {
	attrs = strings.TrimSpace(attrs)
	if attrs == "" {
		return ""
	}
	return " " + attrs
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	default:
		return false
	}
}
