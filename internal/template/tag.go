package template

import (
	"fmt"
	"regexp"
)

// Tag identifies the kind of inline block the engine injects, minifies and
// hashes.
type Tag int

const (
	TagScript Tag = iota
	TagStyle
)

// Tag name matching is case-insensitive and tolerates whitespace inside the
// angle brackets, e.g. "< SCRIPT >".
var (
	scriptPattern = regexp.MustCompile(blockPattern("script"))
	stylePattern  = regexp.MustCompile(blockPattern("style"))
)

func blockPattern(name string) string {
	return fmt.Sprintf(`(?i)<\s*%[1]s\s*>([\s\S]*?)<\s*/\s*%[1]s\s*>`, name)
}

// Name returns the HTML element name of the tag.
func (t Tag) Name() string {
	switch t {
	case TagScript:
		return "script"
	case TagStyle:
		return "style"
	default:
		panic(fmt.Sprintf("template: unknown tag %d", int(t)))
	}
}

// Pattern returns the expression matching a whole block of this tag. The
// first submatch is the block content.
func (t Tag) Pattern() *regexp.Regexp {
	switch t {
	case TagScript:
		return scriptPattern
	case TagStyle:
		return stylePattern
	default:
		panic(fmt.Sprintf("template: unknown tag %d", int(t)))
	}
}

// Wrap encloses content in an opening and closing tag.
func (t Tag) Wrap(content string) string {
	return "<" + t.Name() + ">" + content + "</" + t.Name() + ">"
}

func (t Tag) mediaType() string {
	switch t {
	case TagScript:
		return jsMediaType
	case TagStyle:
		return cssMediaType
	default:
		panic(fmt.Sprintf("template: unknown tag %d", int(t)))
	}
}
