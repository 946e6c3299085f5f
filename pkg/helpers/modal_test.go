package helpers

import (
	"errors"
	"strings"
	"testing"
)

func TestModalBuilder(t *testing.T) {
	h := newTestHelpers(t)

	out, err := h.Modal.Create("Confirm", ModalOptions{ID: "confirm", Size: "sm"}).
		Body("<p>Sure?</p>").
		Footer("").
		End()
	if err != nil {
		t.Fatalf("modal: %v", err)
	}
	want := `<div class="modal fade" id="confirm" tabindex="-1" role="dialog" aria-labelledby="confirm-label">` +
		`<div class="modal-dialog modal-sm" role="document"><div class="modal-content">` +
		`<div class="modal-header"><button type="button" class="close" data-dismiss="modal" aria-label="Close"><span aria-hidden="true">&times;</span></button>` +
		`<h4 class="modal-title" id="confirm-label">Confirm</h4></div>` +
		`<div class="modal-body"><p>Sure?</p></div>` +
		`<div class="modal-footer"><button type="button" class="btn btn-default" data-dismiss="modal">Close</button></div>` +
		`</div></div></div>`
	assertHTML(t, "modal", out, want)
}

func TestModalOrdering(t *testing.T) {
	h := newTestHelpers(t)

	if _, err := h.Modal.Create("x", ModalOptions{}).Footer("f").Body("b").End(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState for body after footer, got %v", err)
	}
	if _, err := h.Modal.Create("x", ModalOptions{}).Body("a").Body("b").End(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState for duplicated body, got %v", err)
	}
	if _, err := h.Modal.Create("x", ModalOptions{Size: "xl"}).End(); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("expected ErrInvalidOptions for size, got %v", err)
	}

	modal := h.Modal.Create("x", ModalOptions{})
	if _, err := modal.End(); err != nil {
		t.Fatalf("end: %v", err)
	}
	if _, err := modal.End(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState ending twice, got %v", err)
	}
}

func TestModalAutoIDsAndRender(t *testing.T) {
	h := newTestHelpers(t)

	first := h.Modal.Create("a", ModalOptions{})
	second := h.Modal.Create("b", ModalOptions{})
	if first.ID() != "modal-1" || second.ID() != "modal-2" {
		t.Fatalf("expected sequential ids, got %q and %q", first.ID(), second.ID())
	}

	out, err := h.Modal.Render("Plain", "body", "", ModalOptions{NoFade: true, NoClose: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(out, `<div class="modal" id="modal-3"`) {
		t.Fatalf("expected non-fading modal, got %s", out)
	}
	if strings.Contains(out, `class="close"`) || strings.Contains(out, "modal-footer") {
		t.Fatalf("expected no close button and no footer, got %s", out)
	}
}
