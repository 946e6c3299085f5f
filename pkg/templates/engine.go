package templates

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gotemplate "github.com/goliatone/go-template"
)

const extension = ".tpl"

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir string
	files   fs.FS
	globals map[string]any
}

// WithBaseDir loads templates from a directory on disk. Templates found there
// take precedence over the ones served by WithFS.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.files = files
	}
}

// WithGlobalData seeds values visible to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globals[strings.TrimSpace(key)] = value
		}
	}
}

// Engine is a go-template renderer that reports missing templates with
// ErrTemplateNotFound instead of a loader error.
type Engine struct {
	*gotemplate.Engine
	baseDir string
	files   fs.FS
}

var _ TemplateRenderer = (*Engine)(nil)

// New constructs an Engine. At least one of WithBaseDir or WithFS is
// required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.baseDir == "" && cfg.files == nil {
		return nil, errors.New("templates: need to provide either base dir or fs.FS")
	}

	opts := []gotemplate.Option{gotemplate.WithExtension(extension)}
	if cfg.baseDir != "" {
		opts = append(opts, gotemplate.WithBaseDir(cfg.baseDir))
	}
	if cfg.files != nil {
		opts = append(opts, gotemplate.WithFS(cfg.files))
	}
	if len(cfg.globals) > 0 {
		opts = append(opts, gotemplate.WithGlobalData(cfg.globals))
	}

	engine, err := gotemplate.NewRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}
	return &Engine{Engine: engine, baseDir: cfg.baseDir, files: cfg.files}, nil
}

// Render renders inline template content when name looks like a template
// body, and a named template otherwise.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if strings.Contains(name, "{{") || strings.Contains(name, "{%") {
		return e.RenderString(name, data, out...)
	}
	return e.RenderTemplate(name, data, out...)
}

// RenderTemplate renders a named template. The ".tpl" extension is appended
// when missing.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	path := templatePath(name)
	if !e.Exists(path) {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, path)
	}
	rendered, err := e.Engine.RenderTemplate(path, data, out...)
	if err != nil {
		return "", fmt.Errorf("templates: %w", err)
	}
	return rendered, nil
}

// Exists reports whether a named template can be found in the configured
// sources.
func (e *Engine) Exists(name string) bool {
	path := templatePath(name)
	if e.baseDir != "" {
		if info, err := os.Stat(filepath.Join(e.baseDir, filepath.FromSlash(path))); err == nil && !info.IsDir() {
			return true
		}
	}
	if e.files != nil {
		if info, err := fs.Stat(e.files, path); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}

func templatePath(name string) string {
	path := strings.TrimPrefix(strings.TrimSpace(name), "/")
	if !strings.HasSuffix(path, extension) {
		path += extension
	}
	return path
}
