package helpers

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

// fieldLabel derives a human friendly label from a field name. Bracketed
// names use their last segment, so `user[first_name]` becomes "First Name".
func fieldLabel(name string) string {
	segments := pathSegments(name)
	if len(segments) == 0 {
		return ""
	}
	last := segments[len(segments)-1]

	var words []string
	for _, word := range splitWordsPattern.Split(last, -1) {
		if word == "" {
			continue
		}
		words = append(words, titleCase(splitCamel(word)))
	}
	return strings.TrimSpace(strings.Join(words, " "))
}

// fieldID derives a DOM id from a field name: `user[emails][]` becomes
// `user-emails`.
func fieldID(name string) string {
	var builder strings.Builder
	dash := false
	for _, r := range strings.TrimSpace(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			if dash && builder.Len() > 0 {
				builder.WriteByte('-')
			}
			dash = false
			builder.WriteRune(r)
			continue
		}
		dash = true
	}
	return builder.String()
}

func splitCamel(input string) string {
	var out strings.Builder
	for i, r := range input {
		if i > 0 && isBoundary(input, i, r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(input string, index int, r rune) bool {
	prev, _ := utf8.DecodeLastRuneInString(input[:index])
	return (unicode.IsLower(prev) && unicode.IsUpper(r)) ||
		(unicode.IsLetter(prev) && unicode.IsDigit(r)) ||
		(unicode.IsDigit(prev) && unicode.IsLetter(r))
}

func titleCase(word string) string {
	if word == "" {
		return ""
	}
	parts := strings.Fields(word)
	for idx, part := range parts {
		lower := strings.ToLower(part)
		first, size := utf8.DecodeRuneInString(lower)
		parts[idx] = string(unicode.ToUpper(first)) + lower[size:]
	}
	return strings.Join(parts, " ")
}
