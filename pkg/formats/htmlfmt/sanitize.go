package htmlfmt

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	captionPolicyOnce sync.Once
	captionPolicy     *bluemonday.Policy
)

// sanitizeCaption strips everything from caption markup except the inline
// elements scientific captions legitimately use.
func sanitizeCaption(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(captionSanitizer().Sanitize(trimmed))
}

func captionSanitizer() *bluemonday.Policy {
	captionPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("em", "strong", "sub", "sup", "var", "abbr", "code")
		policy.AllowAttrs("title").OnElements("abbr")
		captionPolicy = policy
	})
	return captionPolicy
}
