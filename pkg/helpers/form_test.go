package helpers

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bootstrap/pkg/config"
	"github.com/goliatone/go-bootstrap/pkg/stringtemplate"
	"github.com/goliatone/go-bootstrap/pkg/widgets"
)

func TestFormCreateWithMethodOverrideAndErrors(t *testing.T) {
	h := newTestHelpers(t)
	f := h.Form

	got, err := f.Create("/users", FormOptions{
		Method: "put",
		Values: map[string]any{"email": "a@b.c"},
		Errors: map[string][]string{
			"email":   {" Taken ", "Taken", ""},
			"__all__": {"Fix errors"},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	want := `<form action="/users" method="post">` +
		`<div style="display:none;"><input type="hidden" name="_method" value="PUT"></div>` +
		`<div class="alert alert-danger" role="alert"><p>Fix errors</p></div>`
	assertHTML(t, "create", got, want)

	control, err := f.Control("email", ControlOptions{Type: "email", Required: true, Help: "We never share it"})
	if err != nil {
		t.Fatalf("control: %v", err)
	}
	want = `<div class="form-group required has-error">` +
		`<label for="email">Email</label>` +
		`<input type="email" name="email" class="form-control" id="email" required="required" value="a@b.c">` +
		`<span class="help-block error-message">Taken</span>` +
		`<span class="help-block">We never share it</span>` +
		`</div>`
	assertHTML(t, "control", control, want)

	end, err := f.End()
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	assertHTML(t, "end", end, `</form>`)
}

func TestFormStateErrors(t *testing.T) {
	h := newTestHelpers(t)
	f := h.Form

	if _, err := f.End(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState closing an unopened form, got %v", err)
	}
	if _, err := f.Create("/x", FormOptions{Horizontal: true, Inline: true}); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("expected ErrInvalidOptions for horizontal+inline, got %v", err)
	}
	if _, err := f.Create("/x", FormOptions{Method: "TRACE"}); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("expected ErrInvalidOptions for unsupported method, got %v", err)
	}
	if _, err := f.Create("/x", FormOptions{}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.Create("/y", FormOptions{}); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState for nested form, got %v", err)
	}
	if _, err := f.Control("x", ControlOptions{Type: "slider"}); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("expected ErrInvalidOptions for unknown widget, got %v", err)
	}
	if _, err := f.Control("", ControlOptions{}); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("expected ErrInvalidOptions for empty name, got %v", err)
	}
}

func TestFormHorizontalLayout(t *testing.T) {
	h := newTestHelpers(t)
	f := h.Form

	var out strings.Builder
	write := func(markup string, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		out.WriteString(markup)
	}

	write(f.Create("/login", FormOptions{Horizontal: true}))
	write(f.Control("password", ControlOptions{Type: "password", Value: "secret"}))
	write(f.Control("remember_me", ControlOptions{Type: "checkbox"}))
	write(f.Submit("Sign in", ButtonOptions{}))
	write(f.End())

	want := `<form action="/login" method="post" class="form-horizontal">` +
		`<div class="form-group"><label class="col-md-2 control-label" for="password">Password</label>` +
		`<div class="col-md-10"><input type="password" name="password" class="form-control" id="password"></div></div>` +
		`<div class="form-group"><div class="col-md-offset-2 col-md-10">` +
		`<div class="checkbox"><label><input type="hidden" name="remember_me" value="0"><input type="checkbox" name="remember_me" value="1" id="remember_me"> Remember Me</label></div>` +
		`</div></div>` +
		`<div class="form-group"><div class="col-md-offset-2 col-md-10"><button type="submit" class="btn btn-primary">Sign in</button></div></div>` +
		`</form>`
	assertHTML(t, "horizontal form", out.String(), want)
}

func TestFormHorizontalColumnsOverride(t *testing.T) {
	h := newTestHelpers(t)
	f := h.Form

	if _, err := f.Create("/", FormOptions{Horizontal: true, Columns: &config.Columns{Size: "sm", Label: 4, Input: 8}}); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := f.Control("name", ControlOptions{})
	if err != nil {
		t.Fatalf("control: %v", err)
	}
	if !strings.Contains(got, `class="col-sm-4 control-label"`) || !strings.Contains(got, `<div class="col-sm-8">`) {
		t.Fatalf("expected sm 4/8 columns, got %s", got)
	}
}

func TestFormControlInputGroup(t *testing.T) {
	h := newTestHelpers(t)

	got, err := h.Form.Control("price", ControlOptions{
		Type:    "number",
		Prepend: "$",
		Append:  `<button class="btn btn-default" type="button">Go</button>`,
	})
	if err != nil {
		t.Fatalf("control: %v", err)
	}
	want := `<div class="form-group"><label for="price">Price</label>` +
		`<div class="input-group"><span class="input-group-addon">$</span>` +
		`<input type="number" name="price" class="form-control" id="price">` +
		`<span class="input-group-btn"><button class="btn btn-default" type="button">Go</button></span></div></div>`
	assertHTML(t, "input group", got, want)
}

func TestFormControlSelectWithEmptyOption(t *testing.T) {
	h := newTestHelpers(t)

	got, err := h.Form.Control("country", ControlOptions{
		Options: []widgets.Option{{Value: "es", Text: "Spain"}, {Value: "fr", Text: "France"}},
		Empty:   "Choose",
		Value:   "fr",
	})
	if err != nil {
		t.Fatalf("control: %v", err)
	}
	want := `<div class="form-group"><label for="country">Country</label>` +
		`<select name="country" class="form-control" id="country">` +
		`<option value="">Choose</option><option value="es">Spain</option><option value="fr" selected="selected">France</option>` +
		`</select></div>`
	assertHTML(t, "select", got, want)
}

func TestFormControlHiddenSkipsChrome(t *testing.T) {
	h := newTestHelpers(t)

	got, err := h.Form.Control("token", ControlOptions{Type: "hidden", Value: "abc"})
	if err != nil {
		t.Fatalf("control: %v", err)
	}
	assertHTML(t, "hidden", got, `<input type="hidden" name="token" id="token" value="abc">`)
}

func TestFormControlHideLabelAndPlaceholder(t *testing.T) {
	h := newTestHelpers(t)

	got, err := h.Form.Control("q", ControlOptions{Label: "Query", HideLabel: true, Placeholder: "Search"})
	if err != nil {
		t.Fatalf("control: %v", err)
	}
	want := `<div class="form-group"><label class="sr-only" for="q">Query</label>` +
		`<input type="text" name="q" class="form-control" id="q" placeholder="Search"></div>`
	assertHTML(t, "hidden label", got, want)
}

func TestFormErrorsMatchBracketedNames(t *testing.T) {
	h := newTestHelpers(t)
	f := h.Form

	if _, err := f.Create("/", FormOptions{Errors: map[string][]string{"user.email": {"bad"}}}); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := f.Control("user[email]", ControlOptions{})
	if err != nil {
		t.Fatalf("control: %v", err)
	}
	if !strings.Contains(got, "has-error") || !strings.Contains(got, `id="user-email"`) || !strings.Contains(got, ">Email</label>") {
		t.Fatalf("expected error state for bracketed name, got %s", got)
	}
}

func TestFormAssetsTrackUsedWidgets(t *testing.T) {
	h := newTestHelpers(t)
	f := h.Form

	for _, name := range []string{"start", "end"} {
		if _, err := f.Control(name, ControlOptions{Type: "datepicker"}); err != nil {
			t.Fatalf("control: %v", err)
		}
	}
	if _, err := f.Control("title", ControlOptions{}); err != nil {
		t.Fatalf("control: %v", err)
	}

	styles, scripts := f.Assets()
	if len(styles) != 1 || len(scripts) != 1 {
		t.Fatalf("expected one deduplicated stylesheet and script, got %v %v", styles, scripts)
	}
}

func TestFormButtons(t *testing.T) {
	h := newTestHelpers(t)
	f := h.Form

	button, err := f.Button("i:trash Delete", ButtonOptions{Kind: "danger", Size: "sm", Attrs: stringtemplate.Attrs{"data-id": "7"}})
	if err != nil {
		t.Fatalf("button: %v", err)
	}
	assertHTML(t, "button", button, `<button type="button" class="btn btn-danger btn-sm" data-id="7"><i aria-hidden="true" class="glyphicon glyphicon-trash"></i> Delete</button>`)

	link, err := f.Button("Docs", ButtonOptions{URL: "/docs"})
	if err != nil {
		t.Fatalf("link button: %v", err)
	}
	assertHTML(t, "link button", link, `<a href="/docs" class="btn btn-default" role="button">Docs</a>`)

	group, err := f.ButtonGroup([]string{"A", "B"}, ButtonGroupOptions{Vertical: true, Size: "lg"})
	if err != nil {
		t.Fatalf("group: %v", err)
	}
	assertHTML(t, "group", group, `<div class="btn-group-vertical btn-group-lg" role="group">AB</div>`)

	toolbar, err := f.ButtonToolbar([]string{group}, nil)
	if err != nil {
		t.Fatalf("toolbar: %v", err)
	}
	assertHTML(t, "toolbar", toolbar, `<div class="btn-toolbar" role="toolbar">`+group+`</div>`)

	if _, err := f.Button("x", ButtonOptions{Size: "huge"}); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("expected ErrInvalidOptions for size, got %v", err)
	}
	if _, err := f.Button("x", ButtonOptions{Type: "link"}); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("expected ErrInvalidOptions for type, got %v", err)
	}
}

func TestFormDropdownButtonAndFieldset(t *testing.T) {
	h := newTestHelpers(t)
	f := h.Form

	got, err := f.DropdownButton("Actions", []MenuItem{{Title: "One", URL: "/1"}}, ButtonOptions{Kind: "primary"})
	if err != nil {
		t.Fatalf("dropdown button: %v", err)
	}
	want := `<div class="btn-group">` +
		`<button type="button" class="btn btn-primary dropdown-toggle" data-toggle="dropdown" aria-haspopup="true" aria-expanded="false">Actions <span class="caret"></span></button>` +
		`<ul class="dropdown-menu"><li><a href="/1">One</a></li></ul></div>`
	assertHTML(t, "dropdown button", got, want)

	fieldset, err := f.Fieldset("Account", "A", "B")
	if err != nil {
		t.Fatalf("fieldset: %v", err)
	}
	assertHTML(t, "fieldset", fieldset, `<fieldset><legend>Account</legend>AB</fieldset>`)
}

func TestFormErrorNormalisation(t *testing.T) {
	errs := newFormErrors(map[string][]string{
		"/user/name": {"required", " required "},
		"form":       {"global", ""},
		"empty":      {" "},
	})
	if diff := cmp.Diff([]string{"required"}, errs.forField("user[name]")); diff != "" {
		t.Fatalf("field messages mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"global"}, errs.form); diff != "" {
		t.Fatalf("form messages mismatch (-want +got):\n%s", diff)
	}
	if got := errs.forField("empty"); got != nil {
		t.Fatalf("expected blank messages to be dropped, got %v", got)
	}
}

func TestFieldLabelAndID(t *testing.T) {
	cases := []struct {
		name  string
		label string
		id    string
	}{
		{"first_name", "First Name", "first_name"},
		{"user[emailAddress]", "Email Address", "user-emailAddress"},
		{"tags[]", "Tags", "tags"},
		{"address-line2", "Address Line 2", "address-line2"},
		{"émail", "Émail", "émail"},
		{"user[prénom]", "Prénom", "user-prénom"},
		{"ville_natale", "Ville Natale", "ville_natale"},
		{"straßeNr", "Straße Nr", "straßeNr"},
		{"étage2", "Étage 2", "étage2"},
	}
	for _, tc := range cases {
		if got := fieldLabel(tc.name); got != tc.label {
			t.Fatalf("fieldLabel(%q) = %q, want %q", tc.name, got, tc.label)
		}
		if got := fieldID(tc.name); got != tc.id {
			t.Fatalf("fieldID(%q) = %q, want %q", tc.name, got, tc.id)
		}
	}
}
