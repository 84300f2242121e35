package service

import (
	"context"

	"github.com/MKhiriev/sstatic/internal/logger"
	"github.com/MKhiriev/sstatic/internal/store"
	"github.com/MKhiriev/sstatic/internal/template"
)

type pageService struct {
	template *template.Template
	policy   string

	logger *logger.Logger
}

// NewPageService compiles content into the maintenance page and computes its
// Content-Security-Policy.
//
// When unsafeInline is off but a line break survived minification inside an
// inline block, the block hashes may not match what the browser computes, so
// the policy falls back to 'unsafe-inline' and a warning is logged.
//
// opts are passed on to [template.Build] after the logger option.
func NewPageService(content *store.Content, unsafeInline bool, logger *logger.Logger, opts ...template.Option) PageService {
	opts = append([]template.Option{template.WithLogger(logger)}, opts...)
	tmpl, hashes := template.Build(content.HTML, content.CSS, content.JS, opts...)

	if !unsafeInline && tmpl.HasUnminifiedNewline {
		logger.Warn().Msg("some newlines in script or style tags were not minified, " +
			"falling back to 'unsafe-inline' Content-Security-Policy; " +
			"use --unsafe-inline to silence this warning")
		unsafeInline = true
	}

	policy := template.ContentSecurityPolicy(unsafeInline, hashes)

	logger.Info().
		Int("script_hashes", len(hashes.Script)).
		Int("style_hashes", len(hashes.Style)).
		Bool("unsafe_inline", unsafeInline).
		Msg("maintenance page compiled")
	logger.Debug().Str("policy", policy).Msg("content security policy")

	return &pageService{
		template: tmpl,
		policy:   policy,
		logger:   logger,
	}
}

func (s *pageService) Render(_ context.Context, host, userAgent string) string {
	return s.template.Render(host, userAgent)
}

func (s *pageService) Policy() string {
	return s.policy
}
