package widgets

// Canonical widget names registered by NewDefaultRegistry.
const (
	NameText       = "text"
	NameEmail      = "email"
	NamePassword   = "password"
	NameNumber     = "number"
	NameURL        = "url"
	NameTel        = "tel"
	NameSearch     = "search"
	NameDate       = "date"
	NameTime       = "time"
	NameColor      = "color"
	NameHidden     = "hidden"
	NameFile       = "file"
	NameTextarea   = "textarea"
	NameSelect     = "select"
	NameCheckbox   = "checkbox"
	NameRadio      = "radio"
	NameStatic     = "static"
	NameDatepicker = "datepicker"
)
