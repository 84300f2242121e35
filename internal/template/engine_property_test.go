//go:build property
// +build property

package template

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestTemplateProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	blocks := gen.SliceOf(gen.RegexMatch(`^[a-z0-9 ;=()]{0,12}$`))

	// Property: one hash per block, in document order
	properties.Property("hash per block", prop.ForAll(
		func(css, js []string) bool {
			tmpl, hashes := Build("<head>{{ css }}</head><body>{{ js }}</body>", css, js,
				WithMinifier(identityMinifier{}))

			if len(hashes.Style) != len(css) || len(hashes.Script) != len(js) {
				return false
			}
			for i, c := range css {
				if hashes.Style[i] != HashSource(c) {
					return false
				}
			}
			for i, j := range js {
				if hashes.Script[i] != HashSource(j) {
					return false
				}
			}
			return strings.Count(tmpl.Text(), "<script>") == len(js)
		},
		blocks, blocks,
	))

	// Property: text without css/js placeholders or blocks survives unchanged
	properties.Property("unrelated placeholders intact", prop.ForAll(
		func(name, prefix string) bool {
			if strings.EqualFold(name, "css") || strings.EqualFold(name, "js") {
				return true
			}
			html := prefix + "{{ " + name + " }}"
			tmpl, _ := Build(html, nil, nil)
			return tmpl.Text() == html
		},
		gen.RegexMatch(`^[a-zA-Z-]{1,10}$`),
		gen.AlphaString(),
	))

	// Property: render replaces every host placeholder
	properties.Property("render host", prop.ForAll(
		func(host string) bool {
			tmpl, _ := Build("<p>{{ host }}</p>", nil, nil)
			return tmpl.Render(host, "ua") == "<p>"+host+"</p>"
		},
		gen.RegexMatch(`^[a-z0-9.-]{1,20}$`),
	))

	properties.TestingRun(t)
}
