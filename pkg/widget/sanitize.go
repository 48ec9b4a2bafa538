package widget

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// SanitizeLabel strips label markup down to inline formatting elements. Plain
// text is returned entity-escaped and otherwise unchanged.
func SanitizeLabel(raw string) string {
	if raw == "" {
		return ""
	}
	return labelSanitizer().Sanitize(raw)
}

func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "i", "em", "strong", "small", "span", "abbr", "sup", "sub")
		policy.AllowAttrs("class").OnElements("span", "abbr")
		policy.AllowAttrs("title").OnElements("abbr")
		labelPolicy = policy
	})
	return labelPolicy
}
