package helpers

import (
	"regexp"
	"strings"
)

// An easy icon token is `i:name` at the start of the text or after
// whitespace. A leading backslash keeps the token literal.
var easyIconPattern = regexp.MustCompile(`(^|\s|\\)i:([A-Za-z0-9_-]+)`)

// easyIcon replaces easy icon tokens with glyphicons, escaping the text
// around them. The boolean reports whether any icon was produced.
func (b *base) easyIcon(value string) (string, bool, error) {
	matches := easyIconPattern.FindAllStringSubmatchIndex(value, -1)
	if len(matches) == 0 {
		return b.text(value), false, nil
	}

	var builder strings.Builder
	converted := false
	offset := 0
	for _, match := range matches {
		builder.WriteString(b.text(value[offset:match[0]]))
		lead := value[match[2]:match[3]]
		name := value[match[4]:match[5]]
		if lead == `\` {
			builder.WriteString(b.text("i:" + name))
		} else {
			icon, err := b.icon(name, nil)
			if err != nil {
				return "", false, err
			}
			builder.WriteString(b.text(lead))
			builder.WriteString(icon)
			converted = true
		}
		offset = match[1]
	}
	builder.WriteString(b.text(value[offset:]))
	return builder.String(), converted, nil
}
