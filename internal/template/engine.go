package template

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/sstatic/internal/logger"
)

// placeholderPattern matches "{{ name }}". The name may not contain braces so
// that two placeholders on one line are matched separately.
var placeholderPattern = regexp.MustCompile(`\{\{ ([^{}]*?) \}\}`)

// Template is a compiled maintenance page.
type Template struct {
	text string

	// HasUnminifiedNewline reports that a line break survived minification
	// inside an inline block. Browsers may compute a different digest for
	// such a block, so hash based policies are unreliable for this page.
	HasUnminifiedNewline bool
}

// Text returns the compiled page before any per-request substitution.
func (t *Template) Text() string {
	return t.text
}

// Option configures [Build].
type Option func(*builder)

// WithLogger sets the logger used to report minification failures.
func WithLogger(l *logger.Logger) Option {
	return func(b *builder) {
		b.logger = l
	}
}

// WithMinifier replaces the default script and style minifier.
func WithMinifier(m Minifier) Option {
	return func(b *builder) {
		b.minifier = m
	}
}

type builder struct {
	logger   *logger.Logger
	minifier Minifier

	newlineSurvived bool
}

// Build compiles html into a [Template].
//
// Each stylesheet in css is wrapped in a <style> element and each script in js
// in a <script> element; the concatenated elements replace the {{ css }} and
// {{ js }} placeholders (names are case-insensitive). Other placeholders are
// kept verbatim for [Template.Render]. A nil slice means no such content.
//
// Line endings are normalized to LF, then all inline blocks are minified and
// hashed. The returned hashes are ready for [ContentSecurityPolicy].
func Build(html string, css, js []string, opts ...Option) (*Template, Hashes) {
	b := &builder{
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.minifier == nil {
		b.minifier = newMinifier()
	}

	styles := wrapAll(css, TagStyle)
	scripts := wrapAll(js, TagScript)

	text := injectBlocks(html, styles, scripts)
	text = normalizeNewlines(text)
	b.checkRenderPlaceholders(text)
	text = b.minifyBlocks(text, TagScript)
	text = b.minifyBlocks(text, TagStyle)

	hashes := Hashes{
		Script: collectHashes(text, TagScript),
		Style:  collectHashes(text, TagStyle),
	}

	return &Template{
		text:                 text,
		HasUnminifiedNewline: b.newlineSurvived,
	}, hashes
}

func wrapAll(contents []string, tag Tag) string {
	var sb strings.Builder
	for _, c := range contents {
		sb.WriteString(tag.Wrap(c))
	}
	return sb.String()
}

func injectBlocks(html, styles, scripts string) string {
	return placeholderPattern.ReplaceAllStringFunc(html, func(placeholder string) string {
		name := placeholderPattern.FindStringSubmatch(placeholder)[1]
		switch strings.ToLower(name) {
		case "css":
			return styles
		case "js":
			return scripts
		default:
			return placeholder
		}
	})
}

// checkRenderPlaceholders warns about {{ host }} and {{ user-agent }} inside
// inline blocks. Such a block is hashed before the request values are
// substituted, so browsers reject it under a hash based policy, and the
// minifier may rewrite the placeholder itself.
func (b *builder) checkRenderPlaceholders(text string) {
	for _, tag := range []Tag{TagScript, TagStyle} {
		for _, m := range tag.Pattern().FindAllStringSubmatch(text, -1) {
			for _, placeholder := range []string{hostPlaceholder, userAgentPlaceholder} {
				if strings.Contains(m[1], placeholder) {
					b.logger.Warn().
						Str("tag", tag.Name()).
						Str("placeholder", placeholder).
						Msg("render placeholder inside an inline block, the block will not match its hash")
				}
			}
		}
	}
}
