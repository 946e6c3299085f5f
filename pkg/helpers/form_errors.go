package helpers

import (
	"strings"
)

// formErrors indexes validation messages by canonical field path so that
// `user[email]`, `user.email` and `/user/email` address the same control.
// Messages under form level keys are kept apart and rendered once when the
// form opens.
type formErrors struct {
	fields map[string][]string
	form   []string
}

func newFormErrors(payload map[string][]string) formErrors {
	errs := formErrors{}
	for rawPath, messages := range payload {
		normalized := normalizeMessages(messages)
		if len(normalized) == 0 {
			continue
		}
		if isFormLevelKey(rawPath) {
			errs.form = append(errs.form, normalized...)
			continue
		}
		key := canonicalPath(rawPath)
		if key == "" {
			errs.form = append(errs.form, normalized...)
			continue
		}
		if errs.fields == nil {
			errs.fields = make(map[string][]string)
		}
		errs.fields[key] = normalizeMessages(append(errs.fields[key], normalized...))
	}
	errs.form = normalizeMessages(errs.form)
	return errs
}

func (e formErrors) forField(name string) []string {
	if len(e.fields) == 0 {
		return nil
	}
	return e.fields[canonicalPath(name)]
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func canonicalPath(path string) string {
	return strings.Join(pathSegments(path), ".")
}

// pathSegments splits bracket, dotted and JSON pointer style paths.
func pathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	clean = strings.TrimLeft(clean, "#$/.")
	replacer := strings.NewReplacer("[]", "", "[", ".", "]", "")
	clean = strings.Trim(replacer.Replace(clean), "./")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
