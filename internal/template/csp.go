package template

import "strings"

const (
	unsafeInlinePolicy = "default-src 'self'; script-src 'unsafe-inline'; style-src 'unsafe-inline';"
	noneSource         = "'none'"
)

// ContentSecurityPolicy builds the Content-Security-Policy header value. With
// unsafeInline every inline block is allowed, otherwise only the hashed ones.
// An empty hash list yields 'none' for that directive.
func ContentSecurityPolicy(unsafeInline bool, hashes Hashes) string {
	if unsafeInline {
		return unsafeInlinePolicy
	}

	return "default-src 'self'; script-src " + sourceList(hashes.Script) +
		"; style-src " + sourceList(hashes.Style) + ";"
}

func sourceList(sources []string) string {
	if len(sources) == 0 {
		return noneSource
	}
	return strings.Join(sources, " ")
}
