package template

import (
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"
)

const (
	jsMediaType  = "application/javascript"
	cssMediaType = "text/css"

	// minifyErrorMarker replaces the content of a style block the minifier
	// rejected.
	minifyErrorMarker = "ERR"
)

// Minifier minifies content of the given media type. *minify.M satisfies it.
type Minifier interface {
	String(mediatype string, s string) (string, error)
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc(cssMediaType, css.Minify)
	m.AddFunc(jsMediaType, js.Minify)
	return m
}

// minifyBlocks rewrites the content of every block of the given tag with its
// minified form. Rewritten blocks are emitted with canonical tags.
func (b *builder) minifyBlocks(text string, tag Tag) string {
	pattern := tag.Pattern()

	return pattern.ReplaceAllStringFunc(text, func(block string) string {
		content := pattern.FindStringSubmatch(block)[1]

		minified, err := b.minifier.String(tag.mediaType(), content)
		if err != nil {
			switch tag {
			case TagStyle:
				b.logger.Error().Err(err).Msg("failed to minify style block, content replaced with error marker")
				minified = minifyErrorMarker
			case TagScript:
				b.logger.Warn().Err(err).Msg("failed to minify script block, serving it unminified")
				minified = content
			}
		}

		if strings.Contains(minified, "\n") {
			b.newlineSurvived = true
		}

		return tag.Wrap(minified)
	})
}

// normalizeNewlines converts CRLF and bare CR line endings to LF, the same
// preprocessing a browser applies to the document before hashing inline
// blocks.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
