package theme

import (
	"fmt"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// StaticSelector implements go-theme's ThemeSelector over manifests held in
// memory. Empty names fall back to the configured defaults.
type StaticSelector struct {
	manifests      map[string]*gotheme.Manifest
	defaultTheme   string
	defaultVariant string
}

var _ gotheme.ThemeSelector = (*StaticSelector)(nil)

// NewStaticSelector registers manifests by name.
func NewStaticSelector(defaultTheme, defaultVariant string, manifests ...*gotheme.Manifest) *StaticSelector {
	s := &StaticSelector{
		manifests:      make(map[string]*gotheme.Manifest, len(manifests)),
		defaultTheme:   strings.TrimSpace(defaultTheme),
		defaultVariant: strings.TrimSpace(defaultVariant),
	}
	for _, manifest := range manifests {
		if manifest == nil || strings.TrimSpace(manifest.Name) == "" {
			continue
		}
		s.manifests[manifest.Name] = manifest
	}
	return s
}

// Select returns the manifest registered as name.
func (s *StaticSelector) Select(name, variant string, _ ...gotheme.QueryOption) (*gotheme.Selection, error) {
	name = strings.TrimSpace(name)
	variant = strings.TrimSpace(variant)
	if name == "" {
		name = s.defaultTheme
		if variant == "" {
			variant = s.defaultVariant
		}
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("theme: %q not registered", name)
	}
	return &gotheme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}
