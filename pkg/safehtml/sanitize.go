package safehtml

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicyOnce sync.Once
	ugcPolicy     *bluemonday.Policy
)

// Sanitize cleans user supplied markup with a user generated content policy
// and returns the result as HTML. It is opt-in; the element renderer never
// calls it.
func Sanitize(raw string) HTML {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return HTML{}
	}
	return HTML{content: ugcSanitizer().Sanitize(trimmed)}
}

func ugcSanitizer() *bluemonday.Policy {
	ugcPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.RequireNoFollowOnLinks(true)
		policy.AllowAttrs("class").Globally()
		ugcPolicy = policy
	})
	return ugcPolicy
}
