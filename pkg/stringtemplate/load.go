package stringtemplate

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a JSON or YAML mapping of template names to patterns from fsys
// and merges it into the active set.
func (s *StringTemplate) Load(fsys fs.FS, path string) error {
	if fsys == nil {
		return fmt.Errorf("stringtemplate: load %s: filesystem is nil", path)
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("stringtemplate: load %s: %w", path, err)
	}
	templates, err := ParseTemplates(data, path)
	if err != nil {
		return err
	}
	s.Add(templates)
	return nil
}

// ParseTemplates decodes a JSON or YAML template mapping. The source is only
// used for error messages.
func ParseTemplates(data []byte, source string) (Templates, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("stringtemplate: file %s is empty", source)
	}

	var templates Templates
	if err := json.Unmarshal(data, &templates); err == nil {
		return templates, nil
	}
	if err := yaml.Unmarshal(data, &templates); err == nil {
		return templates, nil
	}
	return nil, fmt.Errorf("stringtemplate: parse %s: invalid JSON or YAML", source)
}
