package helpers

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	gotemplate "github.com/goliatone/go-template"

	"github.com/goliatone/go-bootstrap/pkg/config"
	"github.com/goliatone/go-bootstrap/pkg/templates"
	"github.com/goliatone/go-bootstrap/pkg/theme"
)

func TestFlashRendersBuiltInElements(t *testing.T) {
	h := newTestHelpers(t)

	out, err := h.Flash.Render([]FlashMessage{
		{Message: "Saved <b>"},
		{Element: FlashError, Message: "Failed", Params: map[string]any{"dismissible": true, "class": "x"}},
	})
	if err != nil {
		t.Fatalf("flash: %v", err)
	}
	want := `<div class="alert alert-info" role="alert">Saved &lt;b&gt;</div>` +
		`<div class="alert alert-danger x alert-dismissible" role="alert"><button type="button" class="close" data-dismiss="alert" aria-label="Close"><span aria-hidden="true">&times;</span></button>Failed</div>`
	assertHTML(t, "flash", out, want)
}

func TestFlashAllowHTMLIsSanitised(t *testing.T) {
	h := newTestHelpers(t)

	out, err := h.Flash.Render([]FlashMessage{{Element: FlashSuccess, Message: `<em>ok</em><script>x()</script>`, AllowHTML: true}})
	if err != nil {
		t.Fatalf("flash: %v", err)
	}
	assertHTML(t, "flash", out, `<div class="alert alert-success" role="alert"><em>ok</em></div>`)
}

func TestFlashMissingElement(t *testing.T) {
	h := newTestHelpers(t)

	_, err := h.Flash.Render([]FlashMessage{{Element: "nope", Message: "x"}})
	if !errors.Is(err, templates.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestFlashThemePartialOverride(t *testing.T) {
	cfg := theme.Default()
	cfg.Partials["flash.success"] = "flash/info"
	h := newTestHelpers(t, WithTheme(cfg))

	out, err := h.Flash.Render([]FlashMessage{{Element: FlashSuccess, Message: "Done"}})
	if err != nil {
		t.Fatalf("flash: %v", err)
	}
	assertHTML(t, "flash", out, `<div class="alert alert-info" role="alert">Done</div>`)
}

func TestFlashRendererFailure(t *testing.T) {
	stub := &stubRenderer{err: errors.New("boom")}
	h := newTestHelpers(t, WithTemplateRenderer(stub))

	if _, err := h.Flash.Render([]FlashMessage{{Message: "x"}}); err == nil {
		t.Fatalf("expected renderer failure to surface")
	}
	if len(stub.calls) != 1 || stub.calls[0] != "flash/default" {
		t.Fatalf("expected flash/default to be requested, got %v", stub.calls)
	}
}

func TestFlashRejectsUnsafeElementNames(t *testing.T) {
	stub := &stubRenderer{}
	h := newTestHelpers(t, WithTemplateRenderer(stub))

	for _, element := range []string{"../layout/default", "info/x", "a b", "info.tpl", "succès"} {
		t.Run(element, func(t *testing.T) {
			_, err := h.Flash.Render([]FlashMessage{{Element: element, Message: "x"}})
			if !errors.Is(err, ErrInvalidOptions) {
				t.Fatalf("expected ErrInvalidOptions, got %v", err)
			}
		})
	}
	if len(stub.calls) != 0 {
		t.Fatalf("expected no template lookups, got %v", stub.calls)
	}

	if _, err := h.Flash.Render([]FlashMessage{{Element: "custom_alert-2", Message: "x"}}); err != nil {
		t.Fatalf("expected word element to be accepted: %v", err)
	}
}

func TestFlashTemplateDirOverride(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "flash"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	body := `<p class="note {{ params.class|trim }}">{{ message|safe }}</p>`
	if err := os.WriteFile(filepath.Join(dir, "flash", "notice.tpl"), []byte(body), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	cfg := config.Default()
	cfg.TemplateDir = dir
	h := newTestHelpers(t, WithConfig(cfg))

	out, err := h.Flash.Render([]FlashMessage{
		{Element: "notice", Message: "Hi & bye", Params: map[string]any{"class": "  wide  "}},
		{Element: FlashWarning, Message: "Careful", Params: map[string]any{"class": " x "}},
	})
	if err != nil {
		t.Fatalf("flash: %v", err)
	}
	want := `<p class="note wide">Hi &amp; bye</p>` +
		`<div class="alert alert-warning x" role="alert">Careful</div>`
	assertHTML(t, "flash", out, want)
}

func TestFlashAcceptsGoTemplateEngine(t *testing.T) {
	engine, err := gotemplate.NewRenderer(gotemplate.WithFS(TemplatesFS()))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	h := newTestHelpers(t, WithTemplateRenderer(engine))

	out, err := h.Flash.Render([]FlashMessage{{Element: FlashInfo, Message: "Plain"}})
	if err != nil {
		t.Fatalf("flash: %v", err)
	}
	assertHTML(t, "flash", out, `<div class="alert alert-info" role="alert">Plain</div>`)
}
