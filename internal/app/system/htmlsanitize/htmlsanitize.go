// Package htmlsanitize strips markup from admin form input. Every
// content field on the site is stored and rendered as plain text, so
// any tags that arrive in a submission are noise or an injection
// attempt, never formatting to preserve.
package htmlsanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy     *bluemonday.Policy
	strictPolicyOnce sync.Once
)

// StripTags removes all HTML from input, leaving plain text. Script
// and style bodies are dropped along with their tags.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy.Sanitize(s)
}
