//go:build property
// +build property

package mimetype

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestTableProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: a later line overrides an earlier one for the same extension
	properties.Property("later line wins", prop.ForAll(
		func(ext string, first, second string) bool {
			input := fmt.Sprintf("type/%s %s\ntype/%s %s\n", first, ext, second, ext)
			table, err := Parse(strings.NewReader(input))
			if err != nil {
				return false
			}
			got, ok := table.Get(ext)
			return ok && got == "type/"+second
		},
		gen.RegexMatch(`^[a-z0-9]{1,6}$`),
		gen.Identifier(),
		gen.Identifier(),
	))

	// Property: lookups are case-sensitive on the stored key
	properties.Property("case-sensitive keys", prop.ForAll(
		func(ext string) bool {
			table, err := Parse(strings.NewReader("type/x " + ext))
			if err != nil {
				return false
			}
			_, ok := table.Get(strings.ToUpper(ext))
			return !ok
		},
		gen.RegexMatch(`^[a-z]{1,6}$`),
	))

	properties.TestingRun(t)
}
