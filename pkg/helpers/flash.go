package helpers

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Built-in flash elements shipped in TemplatesFS.
const (
	FlashDefault = "default"
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
	FlashWarning = "warning"
)

var flashElementPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// FlashMessage is one queued message.
type FlashMessage struct {
	// Element selects the template, flash/<element>.tpl; defaults to
	// "default". Only letters, digits, '_' and '-' are accepted.
	Element string
	Message string
	// Params are exposed to the template; the built-in elements read
	// "class" and "dismissible".
	Params map[string]any
	// AllowHTML sanitises the message instead of escaping it.
	AllowHTML bool
}

// FlashHelper renders flash messages through element templates.
type FlashHelper struct {
	base
}

// NewFlashHelper constructs the flash helper for view.
func NewFlashHelper(view *View) *FlashHelper {
	return &FlashHelper{base: newBase(view, "flash")}
}

// Render renders every message in order. Theme partials named
// `flash.<element>` replace the built-in template paths.
func (h *FlashHelper) Render(messages []FlashMessage) (string, error) {
	var out strings.Builder
	for idx, message := range messages {
		rendered, err := h.renderOne(message)
		if err != nil {
			return "", fmt.Errorf("helpers: flash message %d: %w", idx, err)
		}
		out.WriteString(rendered)
	}
	return out.String(), nil
}

func (h *FlashHelper) renderOne(message FlashMessage) (string, error) {
	element := strings.TrimSpace(message.Element)
	if element == "" {
		element = FlashDefault
	}
	if !flashElementPattern.MatchString(element) {
		return "", fmt.Errorf("%w: flash element %q", ErrInvalidOptions, element)
	}
	path := h.view.theme.PartialFor("flash."+element, "flash/"+element)

	params := make(map[string]any, len(message.Params))
	for key, value := range message.Params {
		params[key] = value
	}
	data := map[string]any{
		"element": element,
		"message": h.content(message.Message, message.AllowHTML),
		"params":  params,
	}

	h.view.logger.Debug("rendering flash message",
		zap.String("element", element),
		zap.String("template", path),
	)
	rendered, err := h.view.renderer.RenderTemplate(path, data)
	if err != nil {
		return "", fmt.Errorf("render element %q: %w", element, err)
	}
	return rendered, nil
}
