package template

import (
	"html"
	"strings"
)

const (
	hostPlaceholder      = "{{ host }}"
	userAgentPlaceholder = "{{ user-agent }}"
)

// Render returns the page with the host and user agent of the current request
// substituted. Both values are HTML-escaped since they come straight from
// request headers. Any other placeholder left in the page is kept as is.
func (t *Template) Render(host, userAgent string) string {
	r := strings.NewReplacer(
		hostPlaceholder, html.EscapeString(host),
		userAgentPlaceholder, html.EscapeString(userAgent),
	)
	return r.Replace(t.text)
}
