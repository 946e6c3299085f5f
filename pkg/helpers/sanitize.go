package helpers

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

var (
	contentPolicyOnce sync.Once
	contentPolicy     *bluemonday.Policy
)

// sanitize strips unsafe markup from user supplied HTML content.
func (b *base) sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := contentSanitizer().Sanitize(trimmed)
	if cleaned != trimmed {
		b.view.logger.Debug("sanitized helper content",
			zap.String("helper", b.name),
			zap.Int("before", len(trimmed)),
			zap.Int("after", len(cleaned)),
		)
	}
	return cleaned
}

func contentSanitizer() *bluemonday.Policy {
	contentPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowElements("span", "i", "small", "strong", "em")
		policy.AllowAttrs("class").Globally()
		policy.AllowAttrs("aria-hidden", "title").OnElements("i", "span")
		contentPolicy = policy
	})
	return contentPolicy
}
