package render

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// DefaultActiveOutput is returned by ActiveURL when no output is given.
const DefaultActiveOutput = "active"

// Split breaks text on every occurrence of sep. An empty sep splits after
// each UTF-8 sequence.
func Split(text, sep string) []string {
	return strings.Split(text, sep)
}

// ActiveURL returns output (or "active") when url matches the request path
// exactly, otherwise "".
func ActiveURL(requestPath, url, output string) string {
	if url != requestPath {
		return ""
	}
	if output == "" {
		return DefaultActiveOutput
	}
	return output
}

var (
	helpTextPolicyOnce sync.Once
	helpTextPolicy     *bluemonday.Policy
)

// SanitizeHelpText strips markup that is unsafe to render unescaped from
// help text and message bodies. Links, emphasis and similar inline markup
// survive.
func SanitizeHelpText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	helpTextPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.RequireNoFollowOnLinks(true)
		helpTextPolicy = policy
	})
	return helpTextPolicy.Sanitize(text)
}
