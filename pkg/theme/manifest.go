package theme

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	gotheme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

type manifestFile struct {
	Themes []manifestEntry `json:"themes" yaml:"themes"`
}

type manifestEntry struct {
	Name      string                  `json:"name" yaml:"name"`
	Version   string                  `json:"version" yaml:"version"`
	Tokens    map[string]string       `json:"tokens" yaml:"tokens"`
	Templates map[string]string       `json:"templates" yaml:"templates"`
	Assets    assetsEntry             `json:"assets" yaml:"assets"`
	Variants  map[string]variantEntry `json:"variants" yaml:"variants"`
}

type assetsEntry struct {
	Prefix string            `json:"prefix" yaml:"prefix"`
	Files  map[string]string `json:"files" yaml:"files"`
}

type variantEntry struct {
	Tokens    map[string]string `json:"tokens" yaml:"tokens"`
	Templates map[string]string `json:"templates" yaml:"templates"`
	Assets    assetsEntry       `json:"assets" yaml:"assets"`
}

// ParseManifests decodes a JSON or YAML document listing theme manifests
// under a `themes` key. The source is only used in error messages.
func ParseManifests(data []byte, source string) ([]*gotheme.Manifest, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("theme: manifest file %s is empty", source)
	}

	var file manifestFile
	if err := json.Unmarshal(data, &file); err != nil {
		file = manifestFile{}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("theme: parse %s: invalid JSON or YAML", source)
		}
	}

	manifests := make([]*gotheme.Manifest, 0, len(file.Themes))
	for idx, entry := range file.Themes {
		if strings.TrimSpace(entry.Name) == "" {
			return nil, fmt.Errorf("theme: %s: theme %d has no name", source, idx)
		}
		manifest := &gotheme.Manifest{
			Name:      entry.Name,
			Version:   entry.Version,
			Tokens:    entry.Tokens,
			Templates: entry.Templates,
			Assets:    gotheme.Assets{Prefix: entry.Assets.Prefix, Files: entry.Assets.Files},
		}
		if len(entry.Variants) > 0 {
			manifest.Variants = make(map[string]gotheme.Variant, len(entry.Variants))
			for name, variant := range entry.Variants {
				manifest.Variants[name] = gotheme.Variant{
					Tokens:    variant.Tokens,
					Templates: variant.Templates,
					Assets:    gotheme.Assets{Prefix: variant.Assets.Prefix, Files: variant.Assets.Files},
				}
			}
		}
		manifests = append(manifests, manifest)
	}
	return manifests, nil
}

// LoadManifests reads and parses path from fsys.
func LoadManifests(fsys fs.FS, path string) ([]*gotheme.Manifest, error) {
	if fsys == nil {
		return nil, fmt.Errorf("theme: load %s: filesystem is nil", path)
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("theme: load %s: %w", path, err)
	}
	return ParseManifests(data, path)
}
