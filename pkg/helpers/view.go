package helpers

import (
	"fmt"
	"io/fs"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-bootstrap/pkg/config"
	"github.com/goliatone/go-bootstrap/pkg/templates"
	"github.com/goliatone/go-bootstrap/pkg/theme"
	"github.com/goliatone/go-bootstrap/pkg/widgets"
)

// Option configures a View.
type Option func(*viewConfig)

type viewConfig struct {
	config      config.Config
	logger      *zap.Logger
	requestPath string
	renderer    templates.TemplateRenderer
	templateFS  fs.FS
	widgets     *widgets.Registry
	theme       *theme.Config
}

// WithConfig replaces the default helper configuration.
func WithConfig(cfg config.Config) Option {
	return func(vc *viewConfig) {
		vc.config = cfg
	}
}

// WithLogger sets the logger helpers report fallbacks and sanitisation to.
func WithLogger(logger *zap.Logger) Option {
	return func(vc *viewConfig) {
		if logger != nil {
			vc.logger = logger
		}
	}
}

// WithRequestPath sets the path of the request being rendered. Navbar links
// pointing at it are marked active when AutoActiveLink is enabled.
func WithRequestPath(path string) Option {
	return func(vc *viewConfig) {
		vc.requestPath = path
	}
}

// WithTemplateRenderer injects the element template renderer.
func WithTemplateRenderer(renderer templates.TemplateRenderer) Option {
	return func(vc *viewConfig) {
		if renderer != nil {
			vc.renderer = renderer
		}
	}
}

// WithTemplatesFS replaces the embedded element templates.
func WithTemplatesFS(files fs.FS) Option {
	return func(vc *viewConfig) {
		vc.templateFS = files
	}
}

// WithWidgets replaces the default widget registry.
func WithWidgets(registry *widgets.Registry) Option {
	return func(vc *viewConfig) {
		if registry != nil {
			vc.widgets = registry
		}
	}
}

// WithTheme sets the resolved theme configuration.
func WithTheme(cfg *theme.Config) Option {
	return func(vc *viewConfig) {
		if cfg != nil {
			vc.theme = cfg
		}
	}
}

// View holds the state shared by the helpers rendering a single request.
type View struct {
	config      config.Config
	logger      *zap.Logger
	requestPath string
	renderer    templates.TemplateRenderer
	widgets     *widgets.Registry
	theme       *theme.Config
}

// NewView constructs a View applying any provided options.
func NewView(options ...Option) (*View, error) {
	vc := viewConfig{
		config: config.Default(),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&vc)
	}

	if err := vc.config.Validate(); err != nil {
		return nil, fmt.Errorf("helpers: %w", err)
	}

	themeCfg := vc.theme
	if themeCfg == nil {
		themeCfg = theme.Default()
	}

	renderer := vc.renderer
	if renderer == nil {
		files := vc.templateFS
		if files == nil {
			files = TemplatesFS()
		}
		engine, err := templates.New(
			templates.WithBaseDir(vc.config.TemplateDir),
			templates.WithFS(files),
			templates.WithGlobalData(themeGlobals(themeCfg)),
		)
		if err != nil {
			return nil, fmt.Errorf("helpers: configure template renderer: %w", err)
		}
		renderer = engine
	}

	registry := vc.widgets
	if registry == nil {
		registry = widgets.NewDefaultRegistry()
	}

	return &View{
		config:      vc.config,
		logger:      vc.logger,
		requestPath: normalizePath(vc.requestPath),
		renderer:    renderer,
		widgets:     registry,
		theme:       themeCfg,
	}, nil
}

// Config returns the helper configuration.
func (v *View) Config() config.Config { return v.config }

// Logger returns the view logger.
func (v *View) Logger() *zap.Logger { return v.logger }

// RequestPath returns the normalised request path.
func (v *View) RequestPath() string { return v.requestPath }

// Renderer returns the element template renderer.
func (v *View) Renderer() templates.TemplateRenderer { return v.renderer }

// Widgets returns the widget registry.
func (v *View) Widgets() *widgets.Registry { return v.widgets }

// Theme returns the resolved theme configuration.
func (v *View) Theme() *theme.Config { return v.theme }

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if idx := strings.IndexAny(path, "?#"); idx >= 0 {
		path = path[:idx]
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

// themeGlobals exposes the resolved theme to element templates as `theme`.
func themeGlobals(cfg *theme.Config) map[string]any {
	tokens := make(map[string]string, len(cfg.Tokens))
	for key, value := range cfg.Tokens {
		tokens[key] = value
	}
	return map[string]any{
		"theme": map[string]any{
			"name":    cfg.Theme,
			"variant": cfg.Variant,
			"tokens":  tokens,
		},
	}
}
